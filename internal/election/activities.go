// Package election implements the Temporal activity that decides an election.
// It turns an ElectionRequest into a profile, applies the requested voting
// rule and reports the outcome as an ElectionDecided event.
package election

import (
	"context"
	"errors"

	"go.temporal.io/sdk/temporal"

	"github.com/ahrav/go-ballot/internal/domain"
	"github.com/ahrav/go-ballot/pkg/activity"
)

// DecideElectionActivity is the registered name of Activities.DecideElection.
const DecideElectionActivity = "DecideElection"

// Application error types attached to non-retryable activity failures.
const (
	ErrTypeValidation          = "Validation"
	ErrTypeInconsistentProfile = "InconsistentProfile"
	ErrTypeInvalidVoter        = "InvalidVoter"
	ErrTypeInvalidTieBreaker   = "InvalidTieBreaker"
	ErrTypeInvalidCandidate    = "InvalidCandidate"
	ErrTypeDimensionMismatch   = "DimensionMismatch"
	ErrTypeNoCandidates        = "NoCandidates"
	ErrTypeUnknownRule         = "UnknownRule"
	ErrTypeInvalidOutcome      = "InvalidOutcome"
)

// NonRetryableErrorTypes lists every error type DecideElection can fail with.
// Rule evaluation is deterministic, so retrying any of them cannot succeed.
func NonRetryableErrorTypes() []string {
	return []string{
		ErrTypeValidation,
		ErrTypeInconsistentProfile,
		ErrTypeInvalidVoter,
		ErrTypeInvalidTieBreaker,
		ErrTypeInvalidCandidate,
		ErrTypeDimensionMismatch,
		ErrTypeNoCandidates,
		ErrTypeUnknownRule,
		ErrTypeInvalidOutcome,
	}
}

// Activities handles election Temporal activities.
type Activities struct {
	activity.BaseActivities
	events *EventEmitter
}

// NewActivities creates election activities with the provided base infrastructure.
func NewActivities(base activity.BaseActivities) *Activities {
	return &Activities{
		BaseActivities: base,
		events:         NewEventEmitter(base),
	}
}

// DecideElection evaluates one election.
//
// The operation:
// 1. Validates the request
// 2. Builds the preference profile, rejecting inconsistent rankings
// 3. Applies the requested rule, tie-breaking where needed
// 4. Validates the outcome and emits ElectionDecided (best-effort)
//
// Every failure is non-retryable: the same input always fails the same way.
func (a *Activities) DecideElection(
	ctx context.Context,
	req domain.ElectionRequest,
) (*domain.ElectionOutcome, error) {
	if err := req.Validate(); err != nil {
		return nil, nonRetryable(ErrTypeValidation, err, "invalid input")
	}

	wfCtx := a.GetWorkflowContext(ctx)
	if req.TenantID != "" {
		wfCtx.TenantID = req.TenantID
	}
	activity.SafeLog(ctx, "Starting DecideElection activity",
		"workflow_id", wfCtx.WorkflowID,
		"activity_id", wfCtx.ActivityID,
		"tenant_id", wfCtx.TenantID,
		"rule", req.Rule,
		"voters", len(req.Rankings))

	profile, err := domain.NewProfile(req.Rankings)
	if err != nil {
		return nil, nonRetryable(ErrTypeInconsistentProfile, err, "invalid preference profile")
	}

	outcome, err := Decide(profile, req)
	if err != nil {
		return nil, nonRetryable(classify(err), err, "election could not be decided")
	}

	if err := outcome.Validate(); err != nil {
		return nil, nonRetryable(ErrTypeInvalidOutcome, err, "invalid output")
	}

	a.events.EmitElectionDecided(ctx, outcome, wfCtx, req.ClientIdempotencyKey)

	activity.SafeLog(ctx, "DecideElection completed",
		"election_id", outcome.ElectionID,
		"rule", outcome.Rule,
		"winner", outcome.Winner,
		"tie_broken", outcome.TieBroken,
		"rounds", len(outcome.Rounds))

	return outcome, nil
}

// classify maps a rule error onto its application error type.
// ErrInvalidTieBreaker is checked before ErrInvalidVoter because it wraps it.
func classify(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidTieBreaker):
		return ErrTypeInvalidTieBreaker
	case errors.Is(err, domain.ErrInvalidVoter):
		return ErrTypeInvalidVoter
	case errors.Is(err, domain.ErrInvalidCandidate):
		return ErrTypeInvalidCandidate
	case errors.Is(err, domain.ErrDimensionMismatch):
		return ErrTypeDimensionMismatch
	case errors.Is(err, domain.ErrNoCandidates):
		return ErrTypeNoCandidates
	case errors.Is(err, domain.ErrUnknownRule):
		return ErrTypeUnknownRule
	case errors.Is(err, domain.ErrInconsistentProfile):
		return ErrTypeInconsistentProfile
	default:
		return ErrTypeValidation
	}
}

func nonRetryable(tag string, cause error, msg string) error {
	return temporal.NewNonRetryableApplicationError(msg, tag, cause)
}
