package voting

import (
	"fmt"

	"github.com/ahrav/go-ballot/internal/domain"
)

// Tally is the score table a rule builds before tie-breaking.
type Tally struct {
	// Scores maps every candidate to its accumulated score.
	Scores map[domain.Candidate]int

	// Top lists the candidates attaining the maximum score, in profile order.
	Top []domain.Candidate
}

// PluralityVector returns [1, 0, ..., 0] for n candidates.
func PluralityVector(n int) []int {
	if n <= 0 {
		return nil
	}
	v := make([]int, n)
	v[0] = 1
	return v
}

// VetoVector returns [1, ..., 1, 0] for n candidates.
func VetoVector(n int) []int {
	if n <= 0 {
		return nil
	}
	v := make([]int, n)
	for i := range n - 1 {
		v[i] = 1
	}
	return v
}

// BordaVector returns [n-1, n-2, ..., 0] for n candidates.
func BordaVector(n int) []int {
	if n <= 0 {
		return nil
	}
	v := make([]int, n)
	for i := range n {
		v[i] = n - 1 - i
	}
	return v
}

// ScoreTally accumulates vector[rank(c, v)] for every voter v and candidate c.
// The vector must hold exactly one entry per candidate.
func ScoreTally(profile *domain.Profile, vector []int) (Tally, error) {
	if len(vector) != profile.NumCandidates() {
		return Tally{}, fmt.Errorf("%w: got %d, want %d",
			domain.ErrDimensionMismatch, len(vector), profile.NumCandidates())
	}

	scores := zeroScores(profile.Candidates())
	profile.EachRanking(func(_ domain.Voter, ranking []domain.Candidate) {
		for rank, c := range ranking {
			scores[c] += vector[rank]
		}
	})

	return Tally{Scores: scores, Top: topCandidates(profile.Candidates(), scores)}, nil
}

// PluralityTally counts first-place votes. It agrees with
// ScoreTally(profile, PluralityVector(n)) without walking whole rankings.
func PluralityTally(profile *domain.Profile) Tally {
	scores := zeroScores(profile.Candidates())
	profile.EachRanking(func(_ domain.Voter, ranking []domain.Candidate) {
		scores[ranking[0]]++
	})
	return Tally{Scores: scores, Top: topCandidates(profile.Candidates(), scores)}
}

// ScoringRule elects the highest scorer under vector, breaking ties with tieBreak's ranking.
func ScoringRule(profile *domain.Profile, vector []int, tieBreak domain.Voter) (domain.Candidate, error) {
	tally, err := ScoreTally(profile, vector)
	if err != nil {
		return 0, err
	}
	return TieBreak(profile, tally.Top, tieBreak)
}

// Plurality elects the candidate with the most first-place votes.
func Plurality(profile *domain.Profile, tieBreak domain.Voter) (domain.Candidate, error) {
	return TieBreak(profile, PluralityTally(profile).Top, tieBreak)
}

// Veto elects the candidate ranked last by the fewest voters.
func Veto(profile *domain.Profile, tieBreak domain.Voter) (domain.Candidate, error) {
	return ScoringRule(profile, VetoVector(profile.NumCandidates()), tieBreak)
}

// Borda elects the candidate with the highest Borda count.
func Borda(profile *domain.Profile, tieBreak domain.Voter) (domain.Candidate, error) {
	return ScoringRule(profile, BordaVector(profile.NumCandidates()), tieBreak)
}

func zeroScores(candidates []domain.Candidate) map[domain.Candidate]int {
	scores := make(map[domain.Candidate]int, len(candidates))
	for _, c := range candidates {
		scores[c] = 0
	}
	return scores
}

// topCandidates returns the members of order whose score equals the maximum.
func topCandidates(order []domain.Candidate, scores map[domain.Candidate]int) []domain.Candidate {
	return candidatesAt(order, scores, func(score, best int) bool { return score > best })
}

// bottomCandidates returns the members of order whose score equals the minimum.
func bottomCandidates(order []domain.Candidate, scores map[domain.Candidate]int) []domain.Candidate {
	return candidatesAt(order, scores, func(score, best int) bool { return score < best })
}

func candidatesAt(
	order []domain.Candidate,
	scores map[domain.Candidate]int,
	better func(score, best int) bool,
) []domain.Candidate {
	var (
		best  int
		found bool
		out   []domain.Candidate
	)
	for _, c := range order {
		score := scores[c]
		switch {
		case !found || better(score, best):
			best, found = score, true
			out = append(out[:0], c)
		case score == best:
			out = append(out, c)
		}
	}
	return out
}
