// Package workflow implements the Temporal workflow definitions for go-ballot.
//
// ElectionWorkflow validates an election request, schedules the
// DecideElection activity and returns its outcome. Rule evaluation never
// happens in workflow code; the workflow only owns scheduling, retry policy
// and error propagation.
//
// Workflows must stay deterministic: no random numbers, wall-clock reads or
// I/O. Anything of that kind belongs in an activity.
package workflow
