package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/agentforge/arc/ent"
	"github.com/agentforge/arc/ent/run"
	"github.com/agentforge/arc/pkg/config"
	testdb "github.com/agentforge/arc/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor is a RunExecutor returning a canned result.
type fakeExecutor struct {
	mu       sync.Mutex
	executed []string
	result   *ExecutionResult

	// block, when non-nil, holds Execute until closed.
	block chan struct{}
}

func (f *fakeExecutor) Execute(ctx context.Context, r *ent.Run) *ExecutionResult {
	f.mu.Lock()
	f.executed = append(f.executed, r.ID)
	f.mu.Unlock()

	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil
		}
	}
	if f.result != nil {
		return f.result
	}
	return &ExecutionResult{Status: run.StatusCompleted, Output: map[string]any{"ok": true}}
}

func (f *fakeExecutor) executedRuns() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.executed))
	copy(out, f.executed)
	return out
}

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 20 * time.Millisecond
	cfg.PollIntervalJitter = 5 * time.Millisecond
	cfg.RunTimeout = 5 * time.Second
	cfg.CancelPollInterval = 20 * time.Millisecond
	return cfg
}

// enqueueRun inserts a queued run row directly; queue tests do not need
// the kernel's spawn path.
func enqueueRun(t *testing.T, ctx context.Context, client *ent.Client) *ent.Run {
	t.Helper()
	id := uuid.New().String()
	r, err := client.Run.Create().
		SetID(id).
		SetTenantID("tenant-a").
		SetAgentID("agent-1").
		SetInitiatorUserID("user-1").
		SetWorkloadPrincipalID("principal-1").
		SetDelegationGrantID("grant-1").
		SetRootRunID(id).
		SetDepth(0).
		Save(ctx)
	require.NoError(t, err)
	return r
}

func TestWorker_ClaimNextRun(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	cfg := testQueueConfig()
	pool := NewWorkerPool("test-pod", client, cfg, &fakeExecutor{})
	worker := NewWorker("w-0", "test-pod", client, cfg, &fakeExecutor{}, pool)

	first := enqueueRun(t, ctx, client)
	time.Sleep(10 * time.Millisecond) // distinct created_at for FIFO order
	second := enqueueRun(t, ctx, client)

	claimed, err := worker.claimNextRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, claimed.ID, "oldest queued run is claimed first")
	assert.Equal(t, run.StatusRunning, claimed.Status)
	assert.NotNil(t, claimed.StartedAt)

	claimed, err = worker.claimNextRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, claimed.ID)

	_, err = worker.claimNextRun(ctx)
	assert.ErrorIs(t, err, ErrNoRunsAvailable)
}

func TestWorker_PollAndProcess(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	cfg := testQueueConfig()
	executor := &fakeExecutor{}
	pool := NewWorkerPool("test-pod", client, cfg, executor)
	worker := NewWorker("w-0", "test-pod", client, cfg, executor, pool)

	queued := enqueueRun(t, ctx, client)

	require.NoError(t, worker.pollAndProcess(ctx))

	processed, err := client.Run.Get(ctx, queued.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCompleted, processed.Status)
	assert.Equal(t, map[string]any{"ok": true}, processed.Output)
	assert.NotNil(t, processed.CompletedAt)
	assert.Equal(t, []string{queued.ID}, executor.executedRuns())
	assert.Equal(t, 1, worker.Health().RunsProcessed)
}

func TestWorker_PollAndProcess_NoRuns(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	cfg := testQueueConfig()
	pool := NewWorkerPool("test-pod", client, cfg, &fakeExecutor{})
	worker := NewWorker("w-0", "test-pod", client, cfg, &fakeExecutor{}, pool)

	err := worker.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, ErrNoRunsAvailable)
}

func TestWorker_AtCapacity(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	cfg := testQueueConfig()
	cfg.MaxConcurrentRuns = 1
	pool := NewWorkerPool("test-pod", client, cfg, &fakeExecutor{})
	worker := NewWorker("w-0", "test-pod", client, cfg, &fakeExecutor{}, pool)

	running := enqueueRun(t, ctx, client)
	err := client.Run.UpdateOneID(running.ID).SetStatus(run.StatusRunning).Exec(ctx)
	require.NoError(t, err)
	enqueueRun(t, ctx, client)

	assert.ErrorIs(t, worker.pollAndProcess(ctx), ErrAtCapacity)
}

func TestWorker_TerminalStatusIsNotOverwritten(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	cfg := testQueueConfig()
	pool := NewWorkerPool("test-pod", client, cfg, &fakeExecutor{})
	worker := NewWorker("w-0", "test-pod", client, cfg, &fakeExecutor{}, pool)

	r := enqueueRun(t, ctx, client)

	// A cancellation landed while the worker was still executing.
	err := client.Run.UpdateOneID(r.ID).
		SetStatus(run.StatusCancelled).
		SetStatusReason("cancelled upstream").
		Exec(ctx)
	require.NoError(t, err)

	err = worker.updateRunTerminalStatus(ctx, r, &ExecutionResult{Status: run.StatusCompleted})
	require.NoError(t, err)

	final, err := client.Run.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCancelled, final.Status, "the first terminal status wins")
}

func TestWorker_ExecutorWithoutTerminalStatus(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	cfg := testQueueConfig()

	// An executor that yields a result with no status and no error must not
	// leave the run stuck; the worker records it as failed.
	executor := &fakeExecutor{result: &ExecutionResult{}}
	pool := NewWorkerPool("test-pod", client, cfg, executor)
	worker := NewWorker("w-0", "test-pod", client, cfg, executor, pool)

	r := enqueueRun(t, ctx, client)
	require.NoError(t, worker.pollAndProcess(ctx))

	final, err := client.Run.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, final.Status)
	require.NotNil(t, final.StatusReason)
	assert.Contains(t, *final.StatusReason, "no terminal status")
}

func TestWorker_RunTimeoutHint(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	cfg := testQueueConfig()
	cfg.RunTimeout = time.Hour
	executor := &fakeExecutor{block: make(chan struct{})}
	pool := NewWorkerPool("test-pod", client, cfg, executor)
	worker := NewWorker("w-0", "test-pod", client, cfg, executor, pool)

	r := enqueueRun(t, ctx, client)
	err := client.Run.UpdateOneID(r.ID).SetTimeoutS(1).Exec(ctx)
	require.NoError(t, err)

	// The blocked executor only returns when the run context expires; the
	// one second hint must win over the hour-long pool default.
	done := make(chan error, 1)
	go func() { done <- worker.pollAndProcess(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("worker did not honor the run's timeout hint")
	}

	final, err := client.Run.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusTimedOut, final.Status)
}
