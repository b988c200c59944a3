package workflow

import (
	"fmt"

	"go.temporal.io/sdk/converter"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ahrav/go-ballot/internal/configuration"
	"github.com/ahrav/go-ballot/internal/domain"
	"github.com/ahrav/go-ballot/internal/election"
)

// ElectionWorkflowName is the registered name of Workflows.ElectionWorkflow.
const ElectionWorkflowName = "ElectionWorkflow"

// TenantMemoKey is the workflow memo field naming the election's tenant.
// A tenant_id in the request itself takes precedence.
const TenantMemoKey = "tenant_id"

// electionVersionChange gates incompatible changes to ElectionWorkflow.
const electionVersionChange = "election.v"

// Workflows holds the settings election workflows schedule activities with.
type Workflows struct {
	activity configuration.ActivityConfig
}

// NewWorkflows creates election workflows using cfg for activity scheduling.
func NewWorkflows(cfg configuration.ActivityConfig) *Workflows {
	return &Workflows{activity: cfg}
}

// ElectionWorkflow decides one election by running DecideElection.
//
// Invalid requests fail before any activity is scheduled. Activity failures
// carrying one of election.NonRetryableErrorTypes are returned after the
// first attempt; only timeouts and worker failures are retried.
func (w *Workflows) ElectionWorkflow(
	ctx workflow.Context,
	req domain.ElectionRequest,
) (*domain.ElectionOutcome, error) {
	const currentVersion = 1
	_ = workflow.GetVersion(ctx, electionVersionChange, workflow.DefaultVersion, currentVersion)

	if req.TenantID == "" {
		tenant, err := tenantFromMemo(ctx)
		if err != nil {
			return nil, temporal.NewNonRetryableApplicationError(
				"invalid tenant memo",
				election.ErrTypeValidation,
				err,
			)
		}
		req.TenantID = tenant
	}

	if err := req.Validate(); err != nil {
		return nil, temporal.NewNonRetryableApplicationError(
			"invalid election request",
			election.ErrTypeValidation,
			err,
		)
	}

	ctx = workflow.WithActivityOptions(ctx, w.activityOptions())

	logger := workflow.GetLogger(ctx)
	logger.Info("Scheduling DecideElection",
		"rule", req.Rule,
		"voters", len(req.Rankings))

	var outcome domain.ElectionOutcome
	if err := workflow.ExecuteActivity(ctx, election.DecideElectionActivity, req).Get(ctx, &outcome); err != nil {
		logger.Error("DecideElection failed", "rule", req.Rule, "error", err)
		return nil, err
	}

	logger.Info("Election decided",
		"election_id", outcome.ElectionID,
		"winner", outcome.Winner)
	return &outcome, nil
}

// tenantFromMemo returns the TenantMemoKey memo value, or "" when absent.
func tenantFromMemo(ctx workflow.Context) (string, error) {
	memo := workflow.GetInfo(ctx).Memo
	if memo == nil {
		return "", nil
	}
	payload, ok := memo.GetFields()[TenantMemoKey]
	if !ok {
		return "", nil
	}
	var tenant string
	if err := converter.GetDefaultDataConverter().FromPayload(payload, &tenant); err != nil {
		return "", fmt.Errorf("decode memo %s: %w", TenantMemoKey, err)
	}
	return tenant, nil
}

func (w *Workflows) activityOptions() workflow.ActivityOptions {
	return workflow.ActivityOptions{
		StartToCloseTimeout: w.activity.StartToCloseTimeout.Std(),
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        w.activity.InitialInterval.Std(),
			BackoffCoefficient:     w.activity.BackoffCoefficient,
			MaximumInterval:        w.activity.MaxInterval.Std(),
			MaximumAttempts:        w.activity.MaxAttempts,
			NonRetryableErrorTypes: election.NonRetryableErrorTypes(),
		},
	}
}
