package voting

import (
	"fmt"

	"github.com/ahrav/go-ballot/internal/domain"
)

// Dictatorship returns the candidate agent ranks first.
func Dictatorship(profile *domain.Profile, agent domain.Voter) (domain.Candidate, error) {
	if !profile.HasVoter(agent) {
		return 0, fmt.Errorf("%w: agent %d", domain.ErrInvalidVoter, agent)
	}
	ranking, err := profile.Ranking(agent)
	if err != nil {
		return 0, err
	}
	// NewProfile rejects empty rankings, so index 0 always exists.
	return ranking[0], nil
}
