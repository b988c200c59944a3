package voting

import (
	"fmt"

	"github.com/ahrav/go-ballot/internal/domain"
)

// TieBreak returns the member of candidates that agent ranks highest.
// The agent is validated before the candidates are scanned, so an unknown
// agent fails with domain.ErrInvalidTieBreaker even for a single candidate.
func TieBreak(profile *domain.Profile, candidates []domain.Candidate, agent domain.Voter) (domain.Candidate, error) {
	if !profile.HasVoter(agent) {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidTieBreaker, agent)
	}
	if len(candidates) == 0 {
		return 0, domain.ErrNoCandidates
	}

	best := candidates[0]
	bestRank, err := profile.Rank(best, agent)
	if err != nil {
		return 0, err
	}
	for _, c := range candidates[1:] {
		rank, err := profile.Rank(c, agent)
		if err != nil {
			return 0, err
		}
		if rank < bestRank {
			best, bestRank = c, rank
		}
	}
	return best, nil
}
