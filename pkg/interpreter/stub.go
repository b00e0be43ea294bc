package interpreter

import (
	"context"
	"log/slog"
	"sync"
)

// Stub is an in-process interpreter for development and tests: it reports
// every execution as completed, echoing the run input as output, and
// records the run ids it saw.
type Stub struct {
	mu       sync.Mutex
	executed []string

	// Result overrides the reported outcome when set.
	Result *ExecuteResult
}

// NewStub creates a new Stub
func NewStub() *Stub {
	return &Stub{}
}

// Execute records the run and reports a completed outcome.
func (s *Stub) Execute(ctx context.Context, input *ExecuteInput) (*ExecuteResult, error) {
	s.mu.Lock()
	s.executed = append(s.executed, input.RunID)
	s.mu.Unlock()

	slog.Debug("Stub interpreter executed run", "run_id", input.RunID)

	if s.Result != nil {
		return s.Result, nil
	}
	return &ExecuteResult{Outcome: OutcomeCompleted, Output: input.Input}, nil
}

// Executed returns the run ids executed so far.
func (s *Stub) Executed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.executed))
	copy(out, s.executed)
	return out
}

// Close implements Client.
func (s *Stub) Close() error { return nil }
