package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of event emitted by the system.
type EventType string

const (
	// EventTypeElectionDecided is emitted once an election has a winner.
	EventTypeElectionDecided EventType = "ElectionDecided"
)

// ElectionDecidedProducer identifies the activity that emits ElectionDecided events.
const ElectionDecidedProducer = "activity.decide_election"

// EventEnvelope wraps all events with consistent metadata for projection processing.
// Provides workflow context, idempotency and sequencing for downstream consumers.
type EventEnvelope struct {
	// IdempotencyKey ensures events are processed exactly once during retries.
	// Generated deterministically from the client key and event content.
	IdempotencyKey string `json:"idempotency_key" validate:"required"`

	// EventType identifies the specific type of event for routing and processing.
	EventType EventType `json:"event_type" validate:"required"`

	// Version enables event schema evolution and backward compatibility.
	Version int `json:"version" validate:"required,min=1"`

	// OccurredAt records when the event occurred in the system.
	OccurredAt time.Time `json:"occurred_at" validate:"required"`

	// TenantID identifies the tenant for multi-tenant event filtering.
	TenantID uuid.UUID `json:"tenant_id" validate:"required"`

	// WorkflowID identifies the Temporal workflow that generated this event.
	WorkflowID string `json:"workflow_id" validate:"required"`

	// RunID identifies the specific workflow execution run.
	RunID string `json:"run_id" validate:"required"`

	// Sequence enables ordered event processing for projections.
	Sequence int `json:"sequence" validate:"min=0"`

	// Payload contains the event-specific data as JSON.
	Payload json.RawMessage `json:"payload" validate:"required"`

	// Producer identifies the component that emitted this event.
	Producer string `json:"producer" validate:"required"`
}

// Validate checks if the event envelope meets all requirements.
func (e *EventEnvelope) Validate() error {
	return validate.Struct(e)
}

// ElectionDecidedPayload contains the data for ElectionDecided events.
type ElectionDecidedPayload struct {
	ElectionID     string      `json:"election_id" validate:"required,uuid"`
	Rule           Rule        `json:"rule" validate:"required"`
	Winner         Candidate   `json:"winner"`
	TopCandidates  []Candidate `json:"top_candidates" validate:"required,min=1"`
	TieBroken      bool        `json:"tie_broken"`
	Rounds         int         `json:"rounds" validate:"min=0"`
	VoterCount     int         `json:"voter_count" validate:"min=1"`
	CandidateCount int         `json:"candidate_count" validate:"min=1"`
}

// Validate checks if the payload meets all requirements.
func (p *ElectionDecidedPayload) Validate() error {
	return validate.Struct(p)
}

// NewEventEnvelope creates a new EventEnvelope with required fields populated.
// The payload should be marshaled JSON for the specific event type.
func NewEventEnvelope(
	eventType EventType,
	tenantID uuid.UUID,
	workflowID, runID string,
	payload json.RawMessage,
	producer string,
) EventEnvelope {
	return EventEnvelope{
		EventType:  eventType,
		Version:    1,
		TenantID:   tenantID,
		WorkflowID: workflowID,
		RunID:      runID,
		Payload:    payload,
		Producer:   producer,
		OccurredAt: time.Now(),
	}
}

// GenerateIdempotencyKey creates a deterministic key for event deduplication.
// Retries and replays of the same logical event produce identical keys.
func GenerateIdempotencyKey(clientIdempotencyKey, eventSuffix string) string {
	hasher := sha256.New()
	hasher.Write([]byte(clientIdempotencyKey + eventSuffix))
	return hex.EncodeToString(hasher.Sum(nil))
}

// ElectionDecidedIdempotencyKey returns H(client_idem_key || ":decided:" || rule).
func ElectionDecidedIdempotencyKey(clientIdempotencyKey string, rule Rule) string {
	return GenerateIdempotencyKey(clientIdempotencyKey, ":decided:"+string(rule))
}

// NewElectionDecidedEvent creates an ElectionDecided event envelope from an outcome.
func NewElectionDecidedEvent(
	tenantID uuid.UUID,
	workflowID, runID string,
	outcome *ElectionOutcome,
	clientIdempotencyKey string,
) (EventEnvelope, error) {
	if outcome == nil {
		return EventEnvelope{}, errors.New("nil election outcome")
	}

	payload := ElectionDecidedPayload{
		ElectionID:     outcome.ElectionID,
		Rule:           outcome.Rule,
		Winner:         outcome.Winner,
		TopCandidates:  outcome.TopCandidates,
		TieBroken:      outcome.TieBroken,
		Rounds:         len(outcome.Rounds),
		VoterCount:     outcome.VoterCount,
		CandidateCount: outcome.CandidateCount,
	}

	if err := payload.Validate(); err != nil {
		return EventEnvelope{}, fmt.Errorf("invalid election decided payload: %w", err)
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return EventEnvelope{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	envelope := NewEventEnvelope(
		EventTypeElectionDecided,
		tenantID,
		workflowID,
		runID,
		payloadJSON,
		ElectionDecidedProducer,
	)

	envelope.IdempotencyKey = ElectionDecidedIdempotencyKey(clientIdempotencyKey, outcome.Rule)

	if err := envelope.Validate(); err != nil {
		return EventEnvelope{}, fmt.Errorf("invalid event envelope: %w", err)
	}

	return envelope, nil
}
