package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agentforge/arc/ent"
	"github.com/agentforge/arc/ent/run"
	"github.com/agentforge/arc/pkg/config"
	"github.com/agentforge/arc/pkg/interpreter"
)

// InterpreterExecutor executes runs by handing them to the external run
// interpreter. While the interpreter works, the executor polls the run's
// persisted status so a cancel_subtree transition interrupts execution at
// the next checkpoint.
type InterpreterExecutor struct {
	client *ent.Client
	interp interpreter.Client
	config *config.QueueConfig
}

// NewInterpreterExecutor creates a new InterpreterExecutor
func NewInterpreterExecutor(client *ent.Client, interp interpreter.Client, cfg *config.QueueConfig) *InterpreterExecutor {
	return &InterpreterExecutor{client: client, interp: interp, config: cfg}
}

// Execute implements RunExecutor.
func (e *InterpreterExecutor) Execute(ctx context.Context, r *ent.Run) *ExecutionResult {
	execCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Watch for kernel-side cancellation written by cancel_subtree.
	cancelledCh := make(chan struct{})
	go e.watchCancellation(execCtx, r.ID, cancel, cancelledCh)

	input := &interpreter.ExecuteInput{
		RunID:    r.ID,
		TenantID: r.TenantID,
		AgentID:  r.AgentID,
		Input:    r.Input,
	}
	if r.TimeoutS != nil {
		input.TimeoutS = *r.TimeoutS
	}

	result, err := e.interp.Execute(execCtx, input)
	if err != nil {
		select {
		case <-cancelledCh:
			return &ExecutionResult{Status: run.StatusCancelled, Error: err}
		default:
		}
		if execCtx.Err() == context.DeadlineExceeded {
			return &ExecutionResult{Status: run.StatusTimedOut, Error: err}
		}
		return &ExecutionResult{Status: run.StatusFailed, Error: err}
	}

	switch result.Outcome {
	case interpreter.OutcomeCompleted:
		return &ExecutionResult{Status: run.StatusCompleted, Output: result.Output}
	case interpreter.OutcomeCancelled:
		return &ExecutionResult{Status: run.StatusCancelled, Error: reasonError(result.Reason)}
	case interpreter.OutcomeTimedOut:
		return &ExecutionResult{Status: run.StatusTimedOut, Error: reasonError(result.Reason)}
	default:
		return &ExecutionResult{Status: run.StatusFailed, Output: result.Output, Error: reasonError(result.Reason)}
	}
}

// watchCancellation polls the run's status and cancels the execution
// context once the run leaves the running state (cancel_subtree or a
// competing terminal write).
func (e *InterpreterExecutor) watchCancellation(ctx context.Context, runID string, cancel context.CancelFunc, cancelledCh chan<- struct{}) {
	interval := e.config.CancelPollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current, err := e.client.Run.Query().
				Where(run.ID(runID)).
				Select(run.FieldStatus).
				Only(ctx)
			if err != nil {
				slog.Warn("Cancellation poll failed", "run_id", runID, "error", err)
				continue
			}
			if current.Status == run.StatusCancelled {
				slog.Info("Run cancelled externally, interrupting execution", "run_id", runID)
				close(cancelledCh)
				cancel()
				return
			}
		}
	}
}

func reasonError(reason string) error {
	if reason == "" {
		return nil
	}
	return fmt.Errorf("%s", reason)
}
