package configuration

import "time"

// Temporal connection defaults.
const (
	DefaultHostPort  = "localhost:7233"
	DefaultNamespace = "default"
	DefaultTaskQueue = "ballot-elections"
)

// Activity scheduling defaults.
const (
	DefaultStartToCloseTimeout = 30 * time.Second
	DefaultMaxAttempts         = 3
	DefaultInitialInterval     = time.Second
	DefaultMaxInterval         = time.Minute
	DefaultBackoffCoefficient  = 2.0
)

// Event delivery defaults.
const (
	DefaultRedisAddr = "localhost:6379"
	DefaultStream    = "ballot:events"
	DefaultDedupTTL  = 24 * time.Hour
	DefaultEventRate = 100.0
	DefaultBurst     = 20
)

// DefaultConfig returns a configuration for a local development worker.
// Events are disabled until a Redis address is configured.
func DefaultConfig() *Config {
	return &Config{
		Temporal: TemporalConfig{
			HostPort:  DefaultHostPort,
			Namespace: DefaultNamespace,
			TaskQueue: DefaultTaskQueue,
		},
		Activity: ActivityConfig{
			StartToCloseTimeout: Duration(DefaultStartToCloseTimeout),
			MaxAttempts:         DefaultMaxAttempts,
			InitialInterval:     Duration(DefaultInitialInterval),
			MaxInterval:         Duration(DefaultMaxInterval),
			BackoffCoefficient:  DefaultBackoffCoefficient,
		},
		Events: EventsConfig{
			Enabled:      false,
			RedisAddr:    DefaultRedisAddr,
			Stream:       DefaultStream,
			DedupTTL:     Duration(DefaultDedupTTL),
			MaxPerSecond: DefaultEventRate,
			Burst:        DefaultBurst,
		},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "json",
		},
	}
}
