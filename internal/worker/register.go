// Package worker wires election workflows and activities into a Temporal worker.
package worker

import (
	"go.temporal.io/sdk/activity"
	sdkworker "go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/ahrav/go-ballot/internal/configuration"
	"github.com/ahrav/go-ballot/internal/election"
	electionwf "github.com/ahrav/go-ballot/internal/workflow"
	baseactivity "github.com/ahrav/go-ballot/pkg/activity"
	"github.com/ahrav/go-ballot/pkg/events"
)

// Registrar is the subset of a Temporal worker used for registration.
// sdkworker.Worker and the SDK's test environments satisfy it.
type Registrar interface {
	RegisterWorkflowWithOptions(w any, options workflow.RegisterOptions)
	RegisterActivityWithOptions(a any, options activity.RegisterOptions)
}

var _ Registrar = (sdkworker.Worker)(nil)

// RegisterAll registers ElectionWorkflow and DecideElection under their
// published names. It must be called once, before the worker starts.
func RegisterAll(w Registrar, cfg configuration.ActivityConfig, sink events.EventSink) {
	base := baseactivity.NewBaseActivities(sink)
	electionActivities := election.NewActivities(base)
	workflows := electionwf.NewWorkflows(cfg)

	w.RegisterWorkflowWithOptions(workflows.ElectionWorkflow,
		workflow.RegisterOptions{Name: electionwf.ElectionWorkflowName})
	w.RegisterActivityWithOptions(electionActivities.DecideElection,
		activity.RegisterOptions{Name: election.DecideElectionActivity})
}
