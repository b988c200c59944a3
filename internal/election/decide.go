package election

import (
	"fmt"

	"github.com/ahrav/go-ballot/internal/domain"
	"github.com/ahrav/go-ballot/internal/voting"
)

// Decide applies the request's rule to profile and assembles the outcome.
// The request is assumed to have passed Validate; rule errors are returned
// unchanged so callers can match them with errors.Is.
func Decide(profile *domain.Profile, req domain.ElectionRequest) (*domain.ElectionOutcome, error) {
	outcome := &domain.ElectionOutcome{
		ElectionID:     domain.ElectionID(req.ClientIdempotencyKey),
		Rule:           req.Rule,
		VoterCount:     profile.NumVoters(),
		CandidateCount: profile.NumCandidates(),
	}

	var err error
	switch req.Rule {
	case domain.RuleDictatorship:
		outcome.Winner, err = voting.Dictatorship(profile, req.Agent)
		outcome.TopCandidates = []domain.Candidate{outcome.Winner}
	case domain.RuleScoring:
		err = decideByTally(profile, outcome, req.Agent, func() (voting.Tally, error) {
			return voting.ScoreTally(profile, req.ScoreVector)
		})
	case domain.RulePlurality:
		err = decideByTally(profile, outcome, req.Agent, func() (voting.Tally, error) {
			return voting.PluralityTally(profile), nil
		})
	case domain.RuleVeto:
		err = decideByTally(profile, outcome, req.Agent, func() (voting.Tally, error) {
			return voting.ScoreTally(profile, voting.VetoVector(profile.NumCandidates()))
		})
	case domain.RuleBorda:
		err = decideByTally(profile, outcome, req.Agent, func() (voting.Tally, error) {
			return voting.ScoreTally(profile, voting.BordaVector(profile.NumCandidates()))
		})
	case domain.RuleSTV:
		result := voting.STVTally(profile)
		outcome.Rounds = result.Rounds
		outcome.TopCandidates = result.Survivors
		outcome.TieBroken = len(result.Survivors) > 1
		outcome.Winner, err = voting.TieBreak(profile, result.Survivors, req.Agent)
	default:
		err = fmt.Errorf("%w: %q", domain.ErrUnknownRule, req.Rule)
	}
	if err != nil {
		return nil, err
	}

	return outcome, nil
}

func decideByTally(
	profile *domain.Profile,
	outcome *domain.ElectionOutcome,
	agent domain.Voter,
	tally func() (voting.Tally, error),
) error {
	t, err := tally()
	if err != nil {
		return err
	}
	outcome.Scores = t.Scores
	outcome.TopCandidates = t.Top
	outcome.TieBroken = len(t.Top) > 1
	outcome.Winner, err = voting.TieBreak(profile, t.Top, agent)
	return err
}
