package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentforge/arc/ent"
	"github.com/agentforge/arc/ent/run"
	"github.com/agentforge/arc/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and executes runs.
type Worker struct {
	id          string
	podID       string
	client      *ent.Client
	config      *config.QueueConfig
	runExecutor RunExecutor
	pool        RunRegistry
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentRunID  string
	runsProcessed int
	lastActivity  time.Time
}

// RunRegistry is the subset of WorkerPool used by Worker for run
// registration and wake-ups.
type RunRegistry interface {
	RegisterRun(runID string, cancel context.CancelFunc)
	UnregisterRun(runID string)
	wake() <-chan struct{}
}

// wake exposes the pool's nudge channel to workers.
func (p *WorkerPool) wake() <-chan struct{} { return p.wakeCh }

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor RunExecutor, pool RunRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		runExecutor:  executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentRunID:  w.currentRunID,
		RunsProcessed: w.runsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoRunsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing run", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration, a pool wake-up, or stop.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-w.pool.wake():
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a run, and executes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers
	//    but bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Run.Query().
		Where(run.StatusEQ(run.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active runs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRuns {
		return ErrAtCapacity
	}

	// 2. Claim next run
	claimed, err := w.claimNextRun(ctx)
	if err != nil {
		return err
	}

	log := slog.With("run_id", claimed.ID, "worker_id", w.id)
	log.Info("Run claimed")

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Run context with timeout: the run's own timeout_s hint wins over
	// the pool default.
	timeout := w.config.RunTimeout
	if claimed.TimeoutS != nil && *claimed.TimeoutS > 0 {
		timeout = time.Duration(*claimed.TimeoutS) * time.Second
	}
	runCtx, cancelRun := context.WithTimeout(ctx, timeout)
	defer cancelRun()

	// 4. Register cancel function for kernel-triggered cancellation
	w.pool.RegisterRun(claimed.ID, cancelRun)
	defer w.pool.UnregisterRun(claimed.ID)

	// 5. Execute
	result := w.runExecutor.Execute(runCtx, claimed)

	// Normalize the outcome: a nil result or a missing status is attributed
	// to the run context when that expired, and counts as a failure
	// otherwise. Whatever happens, result.Status ends up terminal.
	if result == nil {
		result = &ExecutionResult{}
	}
	if result.Status == "" {
		switch {
		case errors.Is(runCtx.Err(), context.DeadlineExceeded):
			result.Status = run.StatusTimedOut
			result.Error = fmt.Errorf("run timed out after %v", timeout)
		case errors.Is(runCtx.Err(), context.Canceled):
			result.Status = run.StatusCancelled
			result.Error = context.Canceled
		default:
			result.Status = run.StatusFailed
			if result.Error == nil {
				result.Error = fmt.Errorf("executor returned no terminal status")
			}
		}
	}

	// 6. Update terminal status (background context — run ctx may be
	// cancelled). cancel_subtree may have beaten us to a terminal status;
	// the conditional update leaves that in place.
	if err := w.updateRunTerminalStatus(context.Background(), claimed, result); err != nil {
		log.Error("Failed to update run terminal status", "error", err)
		return err
	}

	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()

	log.Info("Run processing complete", "status", result.Status)
	return nil
}

// claimNextRun atomically claims the next queued run using FOR UPDATE
// SKIP LOCKED, ordered by created_at for FIFO processing.
func (w *Worker) claimNextRun(ctx context.Context) (*ent.Run, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	claimed, err := tx.Run.Query().
		Where(run.StatusEQ(run.StatusQueued)).
		Order(ent.Asc(run.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoRunsAvailable
		}
		return nil, fmt.Errorf("failed to query queued run: %w", err)
	}

	claimed, err = claimed.Update().
		SetStatus(run.StatusRunning).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return claimed, nil
}

// updateRunTerminalStatus writes the final run status. Terminal statuses
// already set by cancellation win; the update is a no-op then.
func (w *Worker) updateRunTerminalStatus(ctx context.Context, claimed *ent.Run, result *ExecutionResult) error {
	update := w.client.Run.Update().
		Where(
			run.ID(claimed.ID),
			run.StatusNotIn(terminalRunStatuses...),
		).
		SetStatus(result.Status).
		SetCompletedAt(time.Now())

	if result.Output != nil {
		update = update.SetOutput(result.Output)
	}
	if result.Error != nil {
		update = update.SetStatusReason(result.Error.Error())
	}

	_, err := update.Save(ctx)
	return err
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, runID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRunID = runID
	w.lastActivity = time.Now()
}
