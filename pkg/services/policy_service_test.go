package services

import (
	"context"
	"testing"

	"github.com/agentforge/arc/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyService_GetSnapshot(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()

	t.Run("falls back to defaults when no policy row exists", func(t *testing.T) {
		tx, err := f.client.Tx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()

		snap, err := f.policy.GetSnapshot(ctx, tx, testTenant, f.orchestrator.ID)
		require.NoError(t, err)
		assert.True(t, snap.Defaulted)
		assert.Equal(t, 3, snap.MaxDepth)
		assert.Equal(t, 8, snap.MaxFanout)
		assert.Equal(t, 32, snap.MaxChildrenTotal)
		assert.True(t, snap.EnforcePublishedOnly)
	})

	t.Run("uses the policy row when present", func(t *testing.T) {
		err := f.client.OrchestratorPolicy.Create().
			SetID(uuid.New().String()).
			SetTenantID(testTenant).
			SetOrchestratorAgentID(f.orchestrator.ID).
			SetMaxDepth(5).
			SetMaxFanout(4).
			SetMaxChildrenTotal(16).
			SetAllowedScopeSubset([]string{"docs.read", "docs.read"}).
			Exec(ctx)
		require.NoError(t, err)

		tx, err := f.client.Tx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()

		snap, err := f.policy.GetSnapshot(ctx, tx, testTenant, f.orchestrator.ID)
		require.NoError(t, err)
		assert.False(t, snap.Defaulted)
		assert.Equal(t, 5, snap.MaxDepth)
		assert.Equal(t, 4, snap.MaxFanout)
		assert.Equal(t, []string{"docs.read"}, snap.AllowedScopeSubset, "scope subsets are normalized")
	})
}

func TestPolicyService_AssertTargetAllowed(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()

	t.Run("an orchestrator with no allowlist spawns nothing", func(t *testing.T) {
		lonely := f.createAgent(t, ctx, "lonely-orchestrator", "published")

		tx, err := f.client.Tx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()

		snap, err := f.policy.GetSnapshot(ctx, tx, testTenant, lonely.ID)
		require.NoError(t, err)

		err = f.policy.AssertTargetAllowed(ctx, tx, snap, f.worker)
		var pe *PolicyError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, ReasonAllowlistEmpty, pe.Reason)
	})

	t.Run("allowlist entries may match by slug", func(t *testing.T) {
		bySlug := f.createAgent(t, ctx, "by-slug-orchestrator", "published")
		err := f.client.OrchestratorTarget.Create().
			SetID(uuid.New().String()).
			SetTenantID(testTenant).
			SetOrchestratorAgentID(bySlug.ID).
			SetTargetAgentSlug(f.worker.Slug).
			Exec(ctx)
		require.NoError(t, err)

		tx, err := f.client.Tx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()

		snap, err := f.policy.GetSnapshot(ctx, tx, testTenant, bySlug.ID)
		require.NoError(t, err)
		assert.NoError(t, f.policy.AssertTargetAllowed(ctx, tx, snap, f.worker))

		err = f.policy.AssertTargetAllowed(ctx, tx, snap, f.workerB)
		var pe *PolicyError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, ReasonTargetNotAllowed, pe.Reason)
	})
}

func TestPolicyService_AssertScopeSubset(t *testing.T) {
	f := setupKernel(t)
	caller := []string{"docs.read", "docs.write"}

	t.Run("accepts a covered subset", func(t *testing.T) {
		err := f.policy.AssertScopeSubset([]string{"docs.read"}, caller, &models.PolicySnapshot{})
		assert.NoError(t, err)
	})

	t.Run("rejects empty and uncovered subsets", func(t *testing.T) {
		err := f.policy.AssertScopeSubset(nil, caller, &models.PolicySnapshot{})
		var pe *PolicyError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, ReasonScopeSubsetEmpty, pe.Reason)

		err = f.policy.AssertScopeSubset([]string{"admin.write"}, caller, &models.PolicySnapshot{})
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, ReasonScopeOutOfRange, pe.Reason)
	})

	t.Run("the policy allowed subset applies on top of caller scopes", func(t *testing.T) {
		snap := &models.PolicySnapshot{AllowedScopeSubset: []string{"docs.read"}}
		assert.NoError(t, f.policy.AssertScopeSubset([]string{"docs.read"}, caller, snap))

		err := f.policy.AssertScopeSubset([]string{"docs.write"}, caller, snap)
		var pe *PolicyError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, ReasonScopeOutsidePolicy, pe.Reason)
	})
}
