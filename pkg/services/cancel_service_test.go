package services

import (
	"context"
	"testing"

	"github.com/agentforge/arc/ent"
	"github.com/agentforge/arc/ent/run"
	"github.com/agentforge/arc/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree spawns root -> mid -> {leafA, leafB} and returns the runs.
// The mid run's agent gets its own allowlist so it can spawn the leaves.
func buildTree(t *testing.T, ctx context.Context, f *kernelFixture) (root, mid, leafA, leafB *ent.Run) {
	t.Helper()
	root = f.createRootRun(t, ctx)

	spawn := func(callerRunID, targetID, key string) *ent.Run {
		result, err := f.spawns.SpawnRun(ctx, f.caller(), models.SpawnRunRequest{
			CallerRunID:    callerRunID,
			TargetAgentID:  targetID,
			ScopeSubset:    []string{"docs.read"},
			IdempotencyKey: key,
		})
		require.NoError(t, err)
		r, err := f.client.Run.Get(ctx, result.SpawnedRunIDs[0])
		require.NoError(t, err)
		return r
	}

	mid = spawn(root.ID, f.worker.ID, "mid")

	for _, target := range []*ent.Agent{f.worker, f.workerB} {
		err := f.client.OrchestratorTarget.Create().
			SetID(uuid.New().String()).
			SetTenantID(testTenant).
			SetOrchestratorAgentID(f.worker.ID).
			SetTargetAgentID(target.ID).
			Exec(ctx)
		require.NoError(t, err)
	}

	leafA = spawn(mid.ID, f.worker.ID, "leaf-a")
	leafB = spawn(mid.ID, f.workerB.ID, "leaf-b")
	return root, mid, leafA, leafB
}

func TestCancelService_CancelSubtree(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root, mid, leafA, leafB := buildTree(t, ctx, f)

	t.Run("cancels the whole subtree including its root", func(t *testing.T) {
		// A leaf that already finished keeps its status.
		f.finishRun(t, ctx, leafB.ID, run.StatusCompleted)

		result, err := f.cancels.CancelSubtree(ctx, f.caller(), models.CancelSubtreeRequest{
			CallerRunID: root.ID,
			RunID:       mid.ID,
			IncludeRoot: true,
			Reason:      "operator request",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, result.CancelledCount, "mid and leafA change, completed leafB does not")

		for _, id := range []string{mid.ID, leafA.ID} {
			r, err := f.client.Run.Get(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, run.StatusCancelled, r.Status)
			require.NotNil(t, r.StatusReason)
			assert.Equal(t, "operator request", *r.StatusReason)
			assert.NotNil(t, r.CompletedAt)
		}

		done, err := f.client.Run.Get(ctx, leafB.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCompleted, done.Status)

		rootRow, err := f.client.Run.Get(ctx, root.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusQueued, rootRow.Status, "ancestors above the subtree are untouched")
	})

	t.Run("a second cancel reports zero", func(t *testing.T) {
		result, err := f.cancels.CancelSubtree(ctx, f.caller(), models.CancelSubtreeRequest{
			CallerRunID: root.ID,
			RunID:       mid.ID,
			IncludeRoot: true,
		})
		require.NoError(t, err)
		assert.Zero(t, result.CancelledCount)
	})
}

func TestCancelService_ExcludeRoot(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root, mid, leafA, leafB := buildTree(t, ctx, f)

	result, err := f.cancels.CancelSubtree(ctx, f.caller(), models.CancelSubtreeRequest{
		CallerRunID: root.ID,
		RunID:       mid.ID,
		IncludeRoot: false,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.CancelledCount)

	midRow, err := f.client.Run.Get(ctx, mid.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusQueued, midRow.Status)

	for _, id := range []string{leafA.ID, leafB.ID} {
		r, err := f.client.Run.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCancelled, r.Status)
	}
}

func TestCancelService_AccessChecks(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root := f.createRootRun(t, ctx)

	t.Run("missing run", func(t *testing.T) {
		_, err := f.cancels.CancelSubtree(ctx, f.caller(), models.CancelSubtreeRequest{
			CallerRunID: root.ID,
			RunID:       "nope",
			IncludeRoot: true,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("cross-tenant caller", func(t *testing.T) {
		_, err := f.cancels.CancelSubtree(ctx, models.Caller{TenantID: "tenant-b"}, models.CancelSubtreeRequest{
			CallerRunID: root.ID,
			RunID:       root.ID,
			IncludeRoot: true,
		})
		assert.ErrorIs(t, err, ErrTenantMismatch)
	})
}

func TestCancelService_EvaluateAndReplan(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root, mid, leafA, leafB := buildTree(t, ctx, f)

	t.Run("no replan while children run", func(t *testing.T) {
		summary, err := f.cancels.EvaluateAndReplan(ctx, f.caller(), mid.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, summary.RunningCount)
		assert.False(t, summary.NeedsReplan)
	})

	t.Run("no replan when failures coexist with running children", func(t *testing.T) {
		f.finishRun(t, ctx, leafA.ID, run.StatusFailed)
		summary, err := f.cancels.EvaluateAndReplan(ctx, f.caller(), mid.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.FailedCount)
		assert.Equal(t, 1, summary.RunningCount)
		assert.False(t, summary.NeedsReplan)
	})

	t.Run("replan once every child settled with failures present", func(t *testing.T) {
		f.finishRun(t, ctx, leafB.ID, run.StatusCompleted)
		summary, err := f.cancels.EvaluateAndReplan(ctx, f.caller(), mid.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.FailedCount)
		assert.Equal(t, 1, summary.CompletedCount)
		assert.Zero(t, summary.RunningCount)
		assert.True(t, summary.NeedsReplan)
	})

	t.Run("no replan without failures", func(t *testing.T) {
		summary, err := f.cancels.EvaluateAndReplan(ctx, f.caller(), root.ID)
		require.NoError(t, err)
		assert.False(t, summary.NeedsReplan)
	})
}
