package election

import (
	"context"
	"errors"
	"sync"

	"github.com/ahrav/go-ballot/internal/domain"
	"github.com/ahrav/go-ballot/pkg/activity"
	"github.com/ahrav/go-ballot/pkg/events"
)

// CapturingEventSink captures emitted events for test assertions.
// Repeated idempotency keys are dropped, mirroring production sinks.
type CapturingEventSink struct {
	mu           sync.RWMutex
	events       []events.Envelope
	seenKeys     map[string]bool
	failuresLeft int
}

// NewCapturingEventSink creates a new capturing event sink for testing.
func NewCapturingEventSink() *CapturingEventSink {
	return &CapturingEventSink{seenKeys: make(map[string]bool)}
}

// NewFailingEventSink creates a sink that fails n times before succeeding.
func NewFailingEventSink(n int) *CapturingEventSink {
	s := NewCapturingEventSink()
	s.failuresLeft = n
	return s
}

// Append implements events.EventSink.
func (c *CapturingEventSink) Append(_ context.Context, envelope events.Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.failuresLeft > 0 {
		c.failuresLeft--
		return errors.New("simulated event sink failure")
	}
	if c.seenKeys[envelope.IdempotencyKey] {
		return nil
	}
	c.seenKeys[envelope.IdempotencyKey] = true
	c.events = append(c.events, envelope)
	return nil
}

// Events returns a copy of every captured event.
func (c *CapturingEventSink) Events() []events.Envelope {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]events.Envelope(nil), c.events...)
}

// CreateTestActivities builds activities wired to sink.
func CreateTestActivities(sink events.EventSink) *Activities {
	return NewActivities(activity.NewBaseActivities(sink))
}

// sampleRankings is voter 1 [3,1,2], voter 2 [1,3,2], voter 3 [2,1,3].
func sampleRankings() map[domain.Voter][]domain.Candidate {
	return map[domain.Voter][]domain.Candidate{
		1: {3, 1, 2},
		2: {1, 3, 2},
		3: {2, 1, 3},
	}
}

// createRequest builds a valid request for rule over the sample rankings.
func createRequest(rule domain.Rule, agent domain.Voter) domain.ElectionRequest {
	req := domain.ElectionRequest{
		Rankings:             sampleRankings(),
		Rule:                 rule,
		Agent:                agent,
		ClientIdempotencyKey: "test-election-" + string(rule),
	}
	if rule == domain.RuleScoring {
		req.ScoreVector = []int{2, 1, 0}
	}
	return req
}
