package interpreter

import (
	"context"
)

// Outcome is the terminal result an interpreter reports for one execution.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeFailed    Outcome = "failed"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeTimedOut  Outcome = "timed_out"
)

// ExecuteInput describes one run hand-off to the interpreter.
type ExecuteInput struct {
	RunID    string
	TenantID string
	AgentID  string
	Input    map[string]any

	// TimeoutS is a soft deadline hint persisted on the run; enforcement
	// is the interpreter's responsibility.
	TimeoutS int
}

// ExecuteResult is the interpreter's terminal report for one run.
type ExecuteResult struct {
	Outcome Outcome
	Output  map[string]any
	Reason  string
}

// Client executes agent runs. The coordinator owns all run state;
// implementations must poll run status at their own checkpoints to
// observe cancellation.
type Client interface {
	Execute(ctx context.Context, input *ExecuteInput) (*ExecuteResult, error)
	Close() error
}
