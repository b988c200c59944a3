package events

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedSink throttles appends to an underlying sink with a token bucket.
// Append blocks until a token is available or ctx ends.
type RateLimitedSink struct {
	next    EventSink
	limiter *rate.Limiter
}

// NewRateLimitedSink allows perSecond appends on average with bursts up to
// burst. A burst below one is raised to one.
func NewRateLimitedSink(next EventSink, perSecond float64, burst int) *RateLimitedSink {
	burst = max(burst, 1)
	return &RateLimitedSink{next: next, limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Append implements EventSink.
func (s *RateLimitedSink) Append(ctx context.Context, envelope Envelope) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("event rate limit: %w", err)
	}
	return s.next.Append(ctx, envelope)
}
