// Package queue provides run queue management and processing infrastructure.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/agentforge/arc/ent"
	"github.com/agentforge/arc/ent/run"
)

// Sentinel errors for queue operations.
var (
	// ErrNoRunsAvailable indicates no queued runs are waiting.
	ErrNoRunsAvailable = errors.New("no runs available")

	// ErrAtCapacity indicates the global concurrent run limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// RunExecutor executes one claimed run to a terminal state. The executor
// must observe cancellation by polling the run's persisted status at its
// own checkpoints; the worker only handles claiming, timeouts, and the
// terminal status write.
type RunExecutor interface {
	Execute(ctx context.Context, r *ent.Run) *ExecutionResult
}

// ExecutionResult is the terminal state of one execution.
type ExecutionResult struct {
	Status run.Status // completed, failed, timed_out, cancelled
	Output map[string]any
	Error  error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	PodID         string         `json:"pod_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	ActiveRuns    int            `json:"active_runs"`
	MaxConcurrent int            `json:"max_concurrent"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}

// terminalRunStatuses are the statuses a run never leaves.
var terminalRunStatuses = []run.Status{
	run.StatusCompleted,
	run.StatusFailed,
	run.StatusCancelled,
	run.StatusTimedOut,
}
