// Package domain profile provides the preference profile that every voting
// rule reads from. A profile holds one strict ranking per voter over a shared
// candidate set and answers rank queries against it.
//
// Profile Architecture:
//   - Constructed once from raw rankings, never mutated afterwards
//   - Candidate and voter sets cached in ascending order for stable iteration
//   - Per-voter rank index built up front for constant-time lookups
//   - Rankings validated eagerly so rules never observe a malformed profile
package domain

import (
	"fmt"
	"slices"
)

// Voter identifies a single ballot in a profile.
type Voter int

// Candidate identifies an alternative that voters rank.
type Candidate int

// Profile is an immutable collection of strict rankings, one per voter.
// Safe for concurrent reads; nothing mutates it after NewProfile returns.
type Profile struct {
	rankings   map[Voter][]Candidate
	ranks      map[Voter]map[Candidate]int
	candidates []Candidate
	voters     []Voter
}

// NewProfile builds a profile from voter rankings ordered most to least preferred.
// Every ranking must be a permutation of the union of all ranked candidates;
// duplicates, omissions, empty rankings and an empty profile fail with
// ErrInconsistentProfile. The input map is copied and may be reused by the caller.
func NewProfile(rankings map[Voter][]Candidate) (*Profile, error) {
	if len(rankings) == 0 {
		return nil, fmt.Errorf("%w: no voters", ErrInconsistentProfile)
	}

	seen := make(map[Candidate]struct{})
	for _, ranking := range rankings {
		for _, c := range ranking {
			seen[c] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("%w: no candidates", ErrInconsistentProfile)
	}

	candidates := make([]Candidate, 0, len(seen))
	for c := range seen {
		candidates = append(candidates, c)
	}
	slices.Sort(candidates)

	voters := make([]Voter, 0, len(rankings))
	ranks := make(map[Voter]map[Candidate]int, len(rankings))
	for voter, ranking := range rankings {
		if len(ranking) != len(candidates) {
			return nil, fmt.Errorf("%w: voter %d ranks %d of %d candidates",
				ErrInconsistentProfile, voter, len(ranking), len(candidates))
		}

		index := make(map[Candidate]int, len(ranking))
		for pos, c := range ranking {
			if _, dup := index[c]; dup {
				return nil, fmt.Errorf("%w: voter %d ranks candidate %d twice",
					ErrInconsistentProfile, voter, c)
			}
			index[c] = pos
		}

		ranks[voter] = index
		voters = append(voters, voter)
	}
	slices.Sort(voters)

	return &Profile{
		rankings:   cloneRankings(rankings),
		ranks:      ranks,
		candidates: candidates,
		voters:     voters,
	}, nil
}

// Candidates returns every candidate in ascending order.
func (p *Profile) Candidates() []Candidate { return slices.Clone(p.candidates) }

// Voters returns every voter in ascending order.
func (p *Profile) Voters() []Voter { return slices.Clone(p.voters) }

// NumCandidates returns the size of the candidate set.
func (p *Profile) NumCandidates() int { return len(p.candidates) }

// NumVoters returns the number of voters.
func (p *Profile) NumVoters() int { return len(p.voters) }

// HasVoter reports whether voter cast a ranking in this profile.
func (p *Profile) HasVoter(voter Voter) bool {
	_, ok := p.ranks[voter]
	return ok
}

// HasCandidate reports whether candidate appears in the profile.
func (p *Profile) HasCandidate(candidate Candidate) bool {
	_, ok := slices.BinarySearch(p.candidates, candidate)
	return ok
}

// Rank returns the zero-based position of candidate in voter's ranking,
// where 0 is most preferred. The voter is checked before the candidate.
func (p *Profile) Rank(candidate Candidate, voter Voter) (int, error) {
	index, ok := p.ranks[voter]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidVoter, voter)
	}
	rank, ok := index[candidate]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCandidate, candidate)
	}
	return rank, nil
}

// Ranking returns a copy of voter's ranking, most preferred first.
func (p *Profile) Ranking(voter Voter) ([]Candidate, error) {
	ranking, ok := p.rankings[voter]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVoter, voter)
	}
	return slices.Clone(ranking), nil
}

// Rankings returns a deep copy of every voter's ranking.
func (p *Profile) Rankings() map[Voter][]Candidate { return cloneRankings(p.rankings) }

// EachRanking calls fn with every voter's ranking in ascending voter order.
// The slice passed to fn is shared with the profile and must not be modified.
func (p *Profile) EachRanking(fn func(voter Voter, ranking []Candidate)) {
	for _, voter := range p.voters {
		fn(voter, p.rankings[voter])
	}
}
