package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/ahrav/go-ballot/internal/configuration"
	"github.com/ahrav/go-ballot/pkg/events"
)

// InitializeEventSink builds the sink ElectionDecided events are delivered to.
// With events disabled it returns a no-op sink and a no-op close function.
// Otherwise it connects to Redis, verifies the connection with PING and
// returns a stream sink, throttled when MaxPerSecond is set, plus a function that closes the client.
func InitializeEventSink(ctx context.Context, cfg configuration.EventsConfig) (events.EventSink, func() error, error) {
	if !cfg.Enabled {
		slog.InfoContext(ctx, "Event delivery disabled")
		return events.NewNoOpEventSink(), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	var sink events.EventSink = events.NewRedisStreamSink(client, cfg.Stream, cfg.DedupTTL.Std())
	if cfg.MaxPerSecond > 0 {
		sink = events.NewRateLimitedSink(sink, cfg.MaxPerSecond, cfg.Burst)
	}

	slog.InfoContext(ctx, "Event delivery enabled",
		"redis_addr", cfg.RedisAddr,
		"stream", cfg.Stream,
		"max_per_second", cfg.MaxPerSecond)
	return sink, client.Close, nil
}
