package election

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ahrav/go-ballot/internal/domain"
	"github.com/ahrav/go-ballot/pkg/activity"
	"github.com/ahrav/go-ballot/pkg/events"
)

// EventEmitter builds and emits election events through the base activities.
type EventEmitter struct {
	base activity.BaseActivities
}

// NewEventEmitter creates a new EventEmitter.
func NewEventEmitter(base activity.BaseActivities) *EventEmitter {
	return &EventEmitter{base: base}
}

// EmitElectionDecided emits an ElectionDecided event for outcome.
// Emission is best-effort; failures are logged and never surface to the caller.
func (e *EventEmitter) EmitElectionDecided(
	ctx context.Context,
	outcome *domain.ElectionOutcome,
	wfCtx activity.WorkflowContext,
	clientIdemKey string,
) {
	tenantID, err := uuid.Parse(wfCtx.TenantID)
	if err != nil {
		activity.SafeLogError(ctx, "Failed to parse tenant ID for ElectionDecided event",
			"tenant_id", wfCtx.TenantID,
			"error", err)
		return
	}

	domainEvent, err := domain.NewElectionDecidedEvent(
		tenantID,
		wfCtx.WorkflowID,
		wfCtx.RunID,
		outcome,
		clientIdemKey,
	)
	if err != nil {
		activity.SafeLogError(ctx, "Failed to create ElectionDecided event",
			"election_id", outcome.ElectionID,
			"error", err)
		return
	}

	e.base.EmitEventSafe(ctx, toEnvelope(domainEvent), fmt.Sprintf("ElectionDecided[%s]", outcome.ElectionID))
}

// toEnvelope maps a domain event onto the transport envelope.
func toEnvelope(domainEvent domain.EventEnvelope) events.Envelope {
	return events.Envelope{
		ID:             uuid.NewString(),
		Type:           string(domainEvent.EventType),
		Source:         domainEvent.Producer,
		Version:        fmt.Sprintf("%d.0.0", domainEvent.Version),
		Timestamp:      domainEvent.OccurredAt,
		IdempotencyKey: domainEvent.IdempotencyKey,
		TenantID:       domainEvent.TenantID.String(),
		WorkflowID:     domainEvent.WorkflowID,
		RunID:          domainEvent.RunID,
		Payload:        domainEvent.Payload,
	}
}
