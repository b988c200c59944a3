package election

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/ahrav/go-ballot/internal/domain"
	"github.com/ahrav/go-ballot/pkg/activity"
)

func TestDecideElection(t *testing.T) {
	t.Run("returns outcome and emits event", func(t *testing.T) {
		sink := NewCapturingEventSink()
		activities := CreateTestActivities(sink)

		req := createRequest(domain.RuleBorda, 1)
		outcome, err := activities.DecideElection(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, outcome)
		assert.Equal(t, domain.Candidate(1), outcome.Winner)

		captured := sink.Events()
		require.Len(t, captured, 1)
		env := captured[0]
		assert.Equal(t, string(domain.EventTypeElectionDecided), env.Type)
		assert.Equal(t, domain.ElectionDecidedProducer, env.Source)
		assert.Equal(t, "1.0.0", env.Version)
		assert.Equal(t, activity.DefaultTenantID, env.TenantID)
		assert.Equal(t, domain.ElectionDecidedIdempotencyKey(req.ClientIdempotencyKey, domain.RuleBorda), env.IdempotencyKey)
		assert.NotEqual(t, env.IdempotencyKey, env.ID)
		_, err = uuid.Parse(env.ID)
		assert.NoError(t, err, "envelope ID should be a UUID")

		var payload domain.ElectionDecidedPayload
		require.NoError(t, json.Unmarshal(env.Payload, &payload))
		assert.Equal(t, outcome.ElectionID, payload.ElectionID)
		assert.Equal(t, domain.Candidate(1), payload.Winner)
	})

	t.Run("request tenant scopes the event", func(t *testing.T) {
		sink := NewCapturingEventSink()
		activities := CreateTestActivities(sink)

		req := createRequest(domain.RulePlurality, 1)
		req.TenantID = "7f2c1d9e-4b3a-4c5d-9e8f-0a1b2c3d4e5f"
		_, err := activities.DecideElection(context.Background(), req)
		require.NoError(t, err)

		captured := sink.Events()
		require.Len(t, captured, 1)
		assert.Equal(t, req.TenantID, captured[0].TenantID)
	})

	t.Run("repeated requests produce one event", func(t *testing.T) {
		sink := NewCapturingEventSink()
		activities := CreateTestActivities(sink)
		req := createRequest(domain.RuleSTV, 2)

		first, err := activities.DecideElection(context.Background(), req)
		require.NoError(t, err)
		second, err := activities.DecideElection(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Len(t, sink.Events(), 1)
	})

	t.Run("sink failure does not fail the activity", func(t *testing.T) {
		sink := NewFailingEventSink(10)
		activities := CreateTestActivities(sink)

		outcome, err := activities.DecideElection(context.Background(), createRequest(domain.RulePlurality, 1))
		require.NoError(t, err)
		assert.Equal(t, domain.Candidate(3), outcome.Winner)
		assert.Empty(t, sink.Events())
	})

	t.Run("nil sink", func(t *testing.T) {
		activities := CreateTestActivities(nil)
		outcome, err := activities.DecideElection(context.Background(), createRequest(domain.RuleDictatorship, 3))
		require.NoError(t, err)
		assert.Equal(t, domain.Candidate(2), outcome.Winner)
	})
}

func TestDecideElection_Errors(t *testing.T) {
	tests := []struct {
		name     string
		req      domain.ElectionRequest
		wantType string
		wantErr  error
	}{
		{
			name:     "empty request",
			req:      domain.ElectionRequest{},
			wantType: ErrTypeValidation,
			wantErr:  domain.ErrInvalidRequest,
		},
		{
			name: "inconsistent rankings",
			req: func() domain.ElectionRequest {
				r := createRequest(domain.RuleBorda, 1)
				r.Rankings[2] = []domain.Candidate{1, 1, 2}
				return r
			}(),
			wantType: ErrTypeInconsistentProfile,
			wantErr:  domain.ErrInconsistentProfile,
		},
		{
			name:     "unknown dictator",
			req:      createRequest(domain.RuleDictatorship, 4),
			wantType: ErrTypeInvalidVoter,
			wantErr:  domain.ErrInvalidVoter,
		},
		{
			name:     "unknown tie breaker",
			req:      createRequest(domain.RuleSTV, 4),
			wantType: ErrTypeInvalidTieBreaker,
			wantErr:  domain.ErrInvalidTieBreaker,
		},
		{
			name: "vector length mismatch",
			req: func() domain.ElectionRequest {
				r := createRequest(domain.RuleScoring, 1)
				r.ScoreVector = []int{1, 0, 0, 0}
				return r
			}(),
			wantType: ErrTypeDimensionMismatch,
			wantErr:  domain.ErrDimensionMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := NewCapturingEventSink()
			activities := CreateTestActivities(sink)

			outcome, err := activities.DecideElection(context.Background(), tt.req)
			require.Error(t, err)
			assert.Nil(t, outcome)

			var appErr *temporal.ApplicationError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantType, appErr.Type())
			assert.True(t, appErr.NonRetryable())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, sink.Events(), "failed elections emit nothing")
		})
	}
}

func TestDecideElection_ActivityEnvironment(t *testing.T) {
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestActivityEnvironment()

	sink := NewCapturingEventSink()
	activities := CreateTestActivities(sink)
	env.RegisterActivity(activities.DecideElection)

	val, err := env.ExecuteActivity(activities.DecideElection, createRequest(domain.RuleBorda, 2))
	require.NoError(t, err)

	var outcome domain.ElectionOutcome
	require.NoError(t, val.Get(&outcome))
	assert.Equal(t, domain.Candidate(1), outcome.Winner)
	assert.Equal(t, map[domain.Candidate]int{1: 4, 2: 2, 3: 3}, outcome.Scores)

	captured := sink.Events()
	require.Len(t, captured, 1)
	assert.NotEqual(t, "test-election-workflow", captured[0].WorkflowID, "real activity info is used")
}
