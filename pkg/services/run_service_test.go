package services

import (
	"context"
	"testing"

	"github.com/agentforge/arc/ent/run"
	"github.com/agentforge/arc/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunService_CreateRootRun(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()

	t.Run("creates a root run bound to a fresh grant", func(t *testing.T) {
		root := f.createRootRun(t, ctx)

		assert.Equal(t, 0, root.Depth)
		assert.Equal(t, root.ID, root.RootRunID)
		assert.Nil(t, root.ParentRunID)
		assert.Equal(t, run.StatusQueued, root.Status)

		grant, err := f.client.DelegationGrant.Get(ctx, root.DelegationGrantID)
		require.NoError(t, err)
		require.NotNil(t, grant.RunID)
		assert.Equal(t, root.ID, *grant.RunID)
		assert.Nil(t, grant.ParentGrantID, "root grants have no parent")
		assert.Equal(t, "user-1", grant.InitiatorUserID)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := f.runs.CreateRootRun(ctx, models.CreateRunRequest{
			TenantID: testTenant,
			AgentID:  f.orchestrator.ID,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects an unknown agent", func(t *testing.T) {
		_, err := f.runs.CreateRootRun(ctx, models.CreateRunRequest{
			TenantID:        testTenant,
			AgentSlug:       "no-such-agent",
			InitiatorUserID: "user-1",
			RequestedScopes: []string{"agents.execute"},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRunService_UpdateStatus(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root := f.createRootRun(t, ctx)

	t.Run("stamps started_at on the running transition", func(t *testing.T) {
		require.NoError(t, f.runs.UpdateStatus(ctx, root.ID, run.StatusRunning, ""))
		r, err := f.client.Run.Get(ctx, root.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusRunning, r.Status)
		assert.NotNil(t, r.StartedAt)
		assert.Nil(t, r.CompletedAt)
	})

	t.Run("stamps completed_at and a reason on the terminal transition", func(t *testing.T) {
		require.NoError(t, f.runs.UpdateStatus(ctx, root.ID, run.StatusCompleted, "done"))
		r, err := f.client.Run.Get(ctx, root.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCompleted, r.Status)
		assert.NotNil(t, r.CompletedAt)
		require.NotNil(t, r.StatusReason)
		assert.Equal(t, "done", *r.StatusReason)
	})

	t.Run("terminal status never changes", func(t *testing.T) {
		err := f.runs.UpdateStatus(ctx, root.ID, run.StatusCancelled, "too late")
		assert.ErrorIs(t, err, ErrTerminalStatus)

		// Re-asserting the current terminal status is a no-op, not an error.
		assert.NoError(t, f.runs.UpdateStatus(ctx, root.ID, run.StatusCompleted, ""))

		r, err := f.client.Run.Get(ctx, root.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCompleted, r.Status)
	})

	t.Run("unknown run", func(t *testing.T) {
		err := f.runs.UpdateStatus(ctx, "nope", run.StatusRunning, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRunService_QueryTree(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root, mid, leafA, leafB := buildTree(t, ctx, f)

	t.Run("returns the subtree in breadth-first order", func(t *testing.T) {
		tree, err := f.runs.QueryTree(ctx, f.caller(), root.ID)
		require.NoError(t, err)
		require.Len(t, tree.Nodes, 4)

		assert.Equal(t, root.ID, tree.Nodes[0].RunID)
		assert.Equal(t, mid.ID, tree.Nodes[1].RunID)

		leaves := []string{tree.Nodes[2].RunID, tree.Nodes[3].RunID}
		assert.ElementsMatch(t, []string{leafA.ID, leafB.ID}, leaves)
		assert.Equal(t, 2, tree.Nodes[2].Depth)
	})

	t.Run("subtree query starts below the root", func(t *testing.T) {
		tree, err := f.runs.QueryTree(ctx, f.caller(), mid.ID)
		require.NoError(t, err)
		require.Len(t, tree.Nodes, 3)
		assert.Equal(t, mid.ID, tree.Nodes[0].RunID)
		assert.Equal(t, root.ID, tree.Nodes[0].ParentRunID)
	})

	t.Run("cross-tenant callers are rejected", func(t *testing.T) {
		_, err := f.runs.QueryTree(ctx, models.Caller{TenantID: "tenant-b"}, root.ID)
		assert.ErrorIs(t, err, ErrTenantMismatch)
	})
}

func TestRunService_Counts(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root, _, _, _ := buildTree(t, ctx, f)

	children, err := f.runs.CountChildren(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, children)

	descendants, err := f.runs.CountDescendants(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, descendants)
}
