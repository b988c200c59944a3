// Package domain election defines the operation contracts for deciding an
// election: which rule to apply, the rankings it runs over, and the outcome
// it produces.
//
// Election Contracts:
//   - ElectionRequest: rankings plus rule-specific parameters
//   - ElectionOutcome: winner, pre-tie-break winner set and score tables
//   - EliminationRound: per-round history for single transferable vote
package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Rule represents the social-choice rule used to pick a winner.
type Rule string

const (
	// RuleDictatorship selects the top choice of a single designated voter.
	RuleDictatorship Rule = "dictatorship"

	// RuleScoring applies a caller-supplied positional score vector.
	RuleScoring Rule = "scoring"

	// RulePlurality counts first-place votes only.
	RulePlurality Rule = "plurality"

	// RuleVeto awards a point for every position except last.
	RuleVeto Rule = "veto"

	// RuleBorda awards n-1-rank points per ballot.
	RuleBorda Rule = "borda"

	// RuleSTV eliminates the weakest plurality candidates round by round.
	RuleSTV Rule = "stv"
)

// String returns the string representation of the rule.
func (r Rule) String() string { return string(r) }

// Rules lists every supported rule in a stable order.
func Rules() []Rule {
	return []Rule{RuleDictatorship, RuleScoring, RulePlurality, RuleVeto, RuleBorda, RuleSTV}
}

// ParseRule converts a rule name into a Rule.
func ParseRule(name string) (Rule, error) {
	for _, r := range Rules() {
		if string(r) == name {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRule, name)
}

// electionNamespace scopes deterministic election IDs.
var electionNamespace = uuid.MustParse("9b7d3f4e-3c1a-5e0b-8f7d-2a6c4b1e9d30")

// ElectionID derives a stable election identifier from the client idempotency key.
// Retries and replays of the same request therefore report the same ID.
func ElectionID(clientIdempotencyKey string) string {
	return uuid.NewSHA1(electionNamespace, []byte(clientIdempotencyKey)).String()
}

// ElectionRequest represents the input for deciding one election.
type ElectionRequest struct {
	// Rankings maps each voter to a strict ranking, most preferred first.
	Rankings map[Voter][]Candidate `json:"rankings" validate:"required,min=1,dive,min=1"`

	// Rule selects the voting rule to apply.
	Rule Rule `json:"rule" validate:"required,oneof=dictatorship scoring plurality veto borda stv"`

	// Agent is the dictator for RuleDictatorship and the tie-breaking voter otherwise.
	Agent Voter `json:"agent"`

	// ScoreVector holds one score per rank position for RuleScoring.
	// Ignored by every other rule.
	ScoreVector []int `json:"score_vector,omitempty" validate:"required_if=Rule scoring"`

	// ClientIdempotencyKey enables deterministic election IDs and event keys.
	ClientIdempotencyKey string `json:"client_idempotency_key" validate:"required"`

	// TenantID scopes emitted events. Empty means activity.DefaultTenantID.
	TenantID string `json:"tenant_id,omitempty" validate:"omitempty,uuid"`
}

// Validate checks the request against its structural constraints.
// Profile consistency is checked separately by NewProfile.
func (r *ElectionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// EliminationRound records one round of single transferable vote.
type EliminationRound struct {
	// Number is the one-based round index.
	Number int `json:"number" validate:"min=1"`

	// Counts maps each surviving candidate to its first-preference tally.
	Counts map[Candidate]int `json:"counts" validate:"required"`

	// Eliminated lists the candidates removed this round.
	// Empty when every survivor tied at the minimum and elimination stopped.
	Eliminated []Candidate `json:"eliminated,omitempty"`
}

// ElectionOutcome represents the result of deciding one election.
type ElectionOutcome struct {
	// ElectionID identifies the election; derived from the client idempotency key.
	ElectionID string `json:"election_id" validate:"required,uuid"`

	// Rule is the rule that produced the winner.
	Rule Rule `json:"rule" validate:"required"`

	// Winner is the selected candidate.
	Winner Candidate `json:"winner"`

	// Scores maps candidates to their final tally. Nil for dictatorship and STV.
	Scores map[Candidate]int `json:"scores,omitempty"`

	// TopCandidates is the winner set handed to tie-breaking.
	TopCandidates []Candidate `json:"top_candidates" validate:"required,min=1"`

	// TieBroken reports whether more than one candidate reached tie-breaking.
	TieBroken bool `json:"tie_broken"`

	// Rounds holds the elimination history for STV.
	Rounds []EliminationRound `json:"rounds,omitempty" validate:"dive"`

	// VoterCount is the number of ballots evaluated.
	VoterCount int `json:"voter_count" validate:"min=1"`

	// CandidateCount is the size of the candidate set.
	CandidateCount int `json:"candidate_count" validate:"min=1"`
}

// Validate checks if the outcome meets all operation contract requirements.
func (o *ElectionOutcome) Validate() error { return validate.Struct(o) }
