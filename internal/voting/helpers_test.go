package voting

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-ballot/internal/domain"
)

// sampleRankings is the three-voter, three-candidate profile used across tests:
// voter 1 ranks [3,1,2], voter 2 ranks [1,3,2], voter 3 ranks [2,1,3].
func sampleRankings() map[domain.Voter][]domain.Candidate {
	return map[domain.Voter][]domain.Candidate{
		1: {3, 1, 2},
		2: {1, 3, 2},
		3: {2, 1, 3},
	}
}

func mustProfile(t testing.TB, rankings map[domain.Voter][]domain.Candidate) *domain.Profile {
	t.Helper()
	p, err := domain.NewProfile(rankings)
	require.NoError(t, err)
	return p
}

func sampleProfile(t testing.TB) *domain.Profile {
	t.Helper()
	return mustProfile(t, sampleRankings())
}

// randomRankings builds a well-formed profile of nv voters over candidates 1..nc.
func randomRankings(r *rand.Rand, nv, nc int) map[domain.Voter][]domain.Candidate {
	rankings := make(map[domain.Voter][]domain.Candidate, nv)
	for v := 1; v <= nv; v++ {
		ranking := make([]domain.Candidate, nc)
		for i, c := range r.Perm(nc) {
			ranking[i] = domain.Candidate(c + 1)
		}
		rankings[domain.Voter(v)] = ranking
	}
	return rankings
}

// bordaByFormula scores candidates with n-1-rank directly through Profile.Rank.
func bordaByFormula(t testing.TB, p *domain.Profile) map[domain.Candidate]int {
	t.Helper()
	n := p.NumCandidates()
	scores := make(map[domain.Candidate]int, n)
	for _, v := range p.Voters() {
		for _, c := range p.Candidates() {
			rank, err := p.Rank(c, v)
			require.NoError(t, err)
			scores[c] += n - 1 - rank
		}
	}
	return scores
}
