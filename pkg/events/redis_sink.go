package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultDedupTTL bounds how long an idempotency key suppresses duplicates.
const DefaultDedupTTL = 24 * time.Hour

// dedupKeyPrefix namespaces idempotency markers in Redis.
const dedupKeyPrefix = "ballot:events:seen:"

// ErrMissingIdempotencyKey indicates an envelope cannot be deduplicated.
var ErrMissingIdempotencyKey = errors.New("event envelope has no idempotency key")

// StreamClient is the subset of the go-redis client used by RedisStreamSink.
// *redis.Client, *redis.ClusterClient and redis.UniversalClient satisfy it.
type StreamClient interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStreamSink appends envelopes to a Redis stream.
//
// Each envelope's idempotency key is claimed with SET NX before XADD, so a
// retried activity that re-emits the same event is dropped. If XADD fails the
// claim is released so the next attempt can deliver it.
type RedisStreamSink struct {
	client   StreamClient
	stream   string
	dedupTTL time.Duration
}

// NewRedisStreamSink creates a sink writing to stream. A non-positive dedupTTL
// falls back to DefaultDedupTTL.
func NewRedisStreamSink(client StreamClient, stream string, dedupTTL time.Duration) *RedisStreamSink {
	if dedupTTL <= 0 {
		dedupTTL = DefaultDedupTTL
	}
	return &RedisStreamSink{client: client, stream: stream, dedupTTL: dedupTTL}
}

// Append implements EventSink.
func (s *RedisStreamSink) Append(ctx context.Context, envelope Envelope) error {
	if envelope.IdempotencyKey == "" {
		return ErrMissingIdempotencyKey
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	dedupKey := dedupKeyPrefix + envelope.IdempotencyKey
	claimed, err := s.client.SetNX(ctx, dedupKey, envelope.ID, s.dedupTTL).Result()
	if err != nil {
		return fmt.Errorf("claim idempotency key: %w", err)
	}
	if !claimed {
		return nil // Already delivered.
	}

	err = s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{
			"id":              envelope.ID,
			"type":            envelope.Type,
			"idempotency_key": envelope.IdempotencyKey,
			"envelope":        string(body),
		},
	}).Err()
	if err != nil {
		if delErr := s.client.Del(ctx, dedupKey).Err(); delErr != nil {
			return fmt.Errorf("append to stream %s: %w", s.stream, errors.Join(err, delErr))
		}
		return fmt.Errorf("append to stream %s: %w", s.stream, err)
	}

	return nil
}
