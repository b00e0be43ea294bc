package queue

import (
	"context"
	"testing"
	"time"

	"github.com/agentforge/arc/ent/run"
	testdb "github.com/agentforge/arc/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool_ProcessesQueuedRuns(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	cfg := testQueueConfig()
	executor := &fakeExecutor{}
	pool := NewWorkerPool("test-pod", client, cfg, executor)

	var ids []string
	for i := 0; i < 3; i++ {
		ids = append(ids, enqueueRun(t, ctx, client).ID)
	}

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		n, err := client.Run.Query().
			Where(run.IDIn(ids...), run.StatusEQ(run.StatusCompleted)).
			Count(ctx)
		return err == nil && n == len(ids)
	}, 10*time.Second, 50*time.Millisecond, "all queued runs should complete")

	assert.Len(t, executor.executedRuns(), 3)
}

func TestWorkerPool_StartIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	pool := NewWorkerPool("test-pod", client, testQueueConfig(), &fakeExecutor{})

	require.NoError(t, pool.Start(ctx))
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	assert.Len(t, pool.workers, testQueueConfig().WorkerCount)
}

func TestWorkerPool_Launch(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	pool := NewWorkerPool("test-pod", client, testQueueConfig(), &fakeExecutor{})

	// Launch never blocks, even with no worker draining the channel.
	for i := 0; i < 100; i++ {
		pool.Launch("run-x")
	}
}

func TestWorkerPool_CancelRegistry(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	pool := NewWorkerPool("test-pod", client, testQueueConfig(), &fakeExecutor{})

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterRun("run-1", cancel)

	assert.False(t, pool.CancelRun("run-unknown"))
	assert.True(t, pool.CancelRun("run-1"))
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	pool.UnregisterRun("run-1")
	assert.False(t, pool.CancelRun("run-1"))
}

func TestWorkerPool_Health(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	cfg := testQueueConfig()
	pool := NewWorkerPool("test-pod", client, cfg, &fakeExecutor{})

	enqueueRun(t, ctx, client)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		health := pool.Health()
		return health.IsHealthy && health.QueueDepth == 0
	}, 10*time.Second, 50*time.Millisecond)

	health := pool.Health()
	assert.Equal(t, "test-pod", health.PodID)
	assert.Equal(t, cfg.WorkerCount, health.TotalWorkers)
	assert.True(t, health.DBReachable)
}
