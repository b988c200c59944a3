// Package configuration holds the worker's runtime configuration: how to
// reach Temporal, how election activities are scheduled and retried, where
// outcome events go, and how logs are written.
package configuration

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the package-level validator instance used for struct validation.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds the complete worker configuration.
type Config struct {
	// Temporal connection and task queue.
	Temporal TemporalConfig `json:"temporal"`

	// Election activity scheduling and retry policy.
	Activity ActivityConfig `json:"activity"`

	// Outcome event delivery.
	Events EventsConfig `json:"events"`

	// Logging.
	Observability ObservabilityConfig `json:"observability"`
}

// TemporalConfig identifies the Temporal frontend and task queue.
type TemporalConfig struct {
	HostPort  string `json:"host_port" env:"BALLOT_TEMPORAL_HOST_PORT" validate:"required,hostname_port"`
	Namespace string `json:"namespace" env:"BALLOT_TEMPORAL_NAMESPACE" validate:"required"`
	TaskQueue string `json:"task_queue" env:"BALLOT_TEMPORAL_TASK_QUEUE" validate:"required"`
}

// ActivityConfig controls how the election workflow schedules DecideElection.
// Rule failures are never retried; the retry policy only covers worker
// crashes and timeouts.
type ActivityConfig struct {
	StartToCloseTimeout Duration `json:"start_to_close_timeout" env:"BALLOT_ACTIVITY_START_TO_CLOSE_TIMEOUT" validate:"gt=0"`
	MaxAttempts         int32    `json:"max_attempts" env:"BALLOT_ACTIVITY_MAX_ATTEMPTS" validate:"min=1"`
	InitialInterval     Duration `json:"initial_interval" env:"BALLOT_ACTIVITY_INITIAL_INTERVAL" validate:"gt=0"`
	MaxInterval         Duration `json:"max_interval" env:"BALLOT_ACTIVITY_MAX_INTERVAL" validate:"gtefield=InitialInterval"`
	BackoffCoefficient  float64  `json:"backoff_coefficient" env:"BALLOT_ACTIVITY_BACKOFF_COEFFICIENT" validate:"gte=1"`
}

// EventsConfig selects where ElectionDecided events are delivered.
// When Enabled is false events are discarded.
type EventsConfig struct {
	Enabled       bool     `json:"enabled" env:"BALLOT_EVENTS_ENABLED"`
	RedisAddr     string   `json:"redis_addr" env:"BALLOT_REDIS_ADDR" validate:"required_if=Enabled true"`
	RedisPassword string   `json:"-" env:"BALLOT_REDIS_PASSWORD"` // Sensitive, read from the environment only.
	RedisDB       int      `json:"redis_db" env:"BALLOT_REDIS_DB" validate:"min=0"`
	Stream        string   `json:"stream" env:"BALLOT_EVENTS_STREAM" validate:"required_if=Enabled true"`
	DedupTTL      Duration `json:"dedup_ttl" env:"BALLOT_EVENTS_DEDUP_TTL" validate:"min=0"`

	// MaxPerSecond throttles delivery; zero disables throttling.
	MaxPerSecond float64 `json:"max_per_second" env:"BALLOT_EVENTS_MAX_PER_SECOND" validate:"min=0"`
	Burst        int     `json:"burst" env:"BALLOT_EVENTS_BURST" validate:"min=0"`
}

// ObservabilityConfig controls structured logging.
type ObservabilityConfig struct {
	LogLevel  string `json:"log_level" env:"BALLOT_LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat string `json:"log_format" env:"BALLOT_LOG_FORMAT" validate:"oneof=json text"`
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
