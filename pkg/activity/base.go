// Package activity provides shared infrastructure for Temporal activities:
// workflow context extraction, context-safe logging and best-effort event
// emission. It works the same inside a Temporal worker and in plain unit tests.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"

	"github.com/ahrav/go-ballot/pkg/events"
)

// DefaultTenantID is reported for elections that name no tenant.
const DefaultTenantID = "550e8400-e29b-41d4-a716-446655440000"

// Event emission retry parameters.
const (
	emitMaxAttempts = 2
	emitRetryDelay  = 200 * time.Millisecond
)

// WorkflowContext contains metadata extracted from the Temporal activity context.
type WorkflowContext struct {
	WorkflowID string
	RunID      string
	TenantID   string
	ActivityID string
}

// BaseActivities carries the event sink shared by every activity type.
type BaseActivities struct {
	eventSink events.EventSink
}

// NewBaseActivities creates a BaseActivities with the provided event sink.
// A nil sink disables event emission.
func NewBaseActivities(sink events.EventSink) BaseActivities {
	return BaseActivities{eventSink: sink}
}

// GetWorkflowContext extracts workflow execution details from ctx. TenantID
// is always DefaultTenantID; activities whose input names a tenant override it.
// Outside an activity (activity.GetInfo panics there) it returns fixed test
// identifiers with a random run suffix.
func (b *BaseActivities) GetWorkflowContext(ctx context.Context) WorkflowContext {
	var wfCtx WorkflowContext

	func() {
		defer func() {
			if r := recover(); r != nil {
				wfCtx.WorkflowID = "test-election-workflow"
				wfCtx.RunID = "test-run-" + uuid.New().String()[:8]
				wfCtx.TenantID = DefaultTenantID
				wfCtx.ActivityID = "test-activity"
			}
		}()

		info := activity.GetInfo(ctx)
		wfCtx.WorkflowID = info.WorkflowExecution.ID
		wfCtx.RunID = info.WorkflowExecution.RunID
		wfCtx.ActivityID = info.ActivityID
		wfCtx.TenantID = DefaultTenantID
	}()

	return wfCtx
}

// EmitEventSafe delivers envelope with a short retry and never returns an error.
// Failures are logged; the caller's operation proceeds regardless.
func (b *BaseActivities) EmitEventSafe(
	ctx context.Context,
	envelope events.Envelope,
	description string,
) {
	if b.eventSink == nil {
		return
	}

	var lastErr error
	for attempt := range emitMaxAttempts {
		if attempt > 0 {
			select {
			case <-time.After(emitRetryDelay):
			case <-ctx.Done():
				SafeLogError(ctx, fmt.Sprintf("Event emission cancelled: %s", description),
					"event_type", envelope.Type)
				return
			}
		}

		if err := b.eventSink.Append(ctx, envelope); err != nil {
			lastErr = err
			continue
		}

		SafeLog(ctx, fmt.Sprintf("Event emitted: %s", description),
			"event_type", envelope.Type,
			"idempotency_key", envelope.IdempotencyKey)
		return
	}

	SafeLogError(ctx, fmt.Sprintf("Failed to emit %s after %d attempts", description, emitMaxAttempts),
		"event_type", envelope.Type,
		"error", lastErr)
}

// SafeLog logs at INFO through the Temporal activity logger. Outside an
// activity context it falls back to slog's default logger at DEBUG so unit
// tests stay quiet unless the default level is lowered.
func SafeLog(ctx context.Context, msg string, keyvals ...any) {
	defer func() {
		if recover() != nil {
			slog.Default().DebugContext(ctx, msg, keyvals...)
		}
	}()
	activity.GetLogger(ctx).Info(msg, keyvals...)
}

// SafeLogError logs at ERROR through the Temporal activity logger, falling
// back to slog's default logger outside an activity context.
func SafeLogError(ctx context.Context, msg string, keyvals ...any) {
	defer func() {
		if recover() != nil {
			slog.Default().ErrorContext(ctx, msg, keyvals...)
		}
	}()
	activity.GetLogger(ctx).Error(msg, keyvals...)
}
