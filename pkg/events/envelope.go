// Package events carries election outcomes to downstream consumers.
// Envelope is the wire form of an ElectionDecided event; EventSink is where
// activities hand it off (a Redis stream in production, nothing when events
// are disabled).
package events

import (
	"context"
	"encoding/json"
	"time"
)

// Envelope is one delivered election event.
type Envelope struct {
	// ID is a fresh UUID per emission; a retried activity emits a new ID
	// with the same IdempotencyKey.
	ID string `json:"id"`

	// Type is the event name, currently always "ElectionDecided".
	Type string `json:"type"`

	// Source names the emitting activity, e.g. "activity.decide_election".
	Source string `json:"source"`

	// Version is the payload schema version, "1.0.0" for the first schema.
	Version string `json:"version"`

	Timestamp time.Time `json:"timestamp"`

	// IdempotencyKey is derived from the election's client key and rule.
	// Sinks drop envelopes whose key they have already accepted.
	IdempotencyKey string `json:"idempotency_key"`

	TenantID   string `json:"tenant_id"`
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`

	// Payload is the JSON-encoded ElectionDecided payload: election ID, rule,
	// winner, pre-tie-break winner set and round count.
	Payload json.RawMessage `json:"payload"`
}

// EventSink delivers envelopes.
//
// Append treats a repeated idempotency key as a no-op. Elections never fail
// because a sink did.
type EventSink interface {
	Append(ctx context.Context, envelope Envelope) error
}

// NoOpEventSink discards every envelope. Used when events are disabled.
type NoOpEventSink struct{}

// Append implements EventSink.
func (n *NoOpEventSink) Append(_ context.Context, _ Envelope) error {
	return nil
}

// NewNoOpEventSink creates a sink that discards events.
func NewNoOpEventSink() EventSink {
	return &NoOpEventSink{}
}
