package services

import (
	"context"
	"testing"
	"time"

	"github.com/agentforge/arc/ent"
	"github.com/agentforge/arc/ent/delegationgrant"
	"github.com/agentforge/arc/ent/workloadprincipal"
	"github.com/agentforge/arc/ent/workloadscopepolicy"
	"github.com/agentforge/arc/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityService_EnsurePrincipal(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()

	t.Run("agent principals start with a pending scope policy", func(t *testing.T) {
		tx, err := f.client.Tx(ctx)
		require.NoError(t, err)
		principal, err := f.identity.EnsurePrincipal(
			ctx, tx, testTenant, "pending-agent", workloadprincipal.TypeAgent, []string{"docs.read"})
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		policy, err := f.client.WorkloadScopePolicy.Query().
			Where(workloadscopepolicy.PrincipalID(principal.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, workloadscopepolicy.StatusPending, policy.Status)
		assert.Equal(t, []string{"docs.read"}, policy.RequestedScopes)
		assert.Empty(t, policy.ApprovedScopes)
	})

	t.Run("system principals are auto-approved", func(t *testing.T) {
		tx, err := f.client.Tx(ctx)
		require.NoError(t, err)
		principal, err := f.identity.EnsurePrincipal(
			ctx, tx, testTenant, "sweeper", workloadprincipal.TypeSystem, []string{"runs.sweep"})
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		policy, err := f.client.WorkloadScopePolicy.Query().
			Where(workloadscopepolicy.PrincipalID(principal.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, workloadscopepolicy.StatusApproved, policy.Status)
		assert.Equal(t, []string{"runs.sweep"}, policy.ApprovedScopes)
	})

	t.Run("repeated ensure returns the existing principal", func(t *testing.T) {
		tx, err := f.client.Tx(ctx)
		require.NoError(t, err)
		first, err := f.identity.EnsurePrincipal(
			ctx, tx, testTenant, "stable", workloadprincipal.TypeAgent, []string{"docs.read"})
		require.NoError(t, err)
		second, err := f.identity.EnsurePrincipal(
			ctx, tx, testTenant, "stable", workloadprincipal.TypeAgent, []string{"docs.write"})
		require.NoError(t, err)
		require.NoError(t, tx.Commit())
		assert.Equal(t, first.ID, second.ID)
	})
}

func TestIdentityService_GrantDerivation(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()

	// Root grant with broad scopes for the orchestrator principal.
	root := f.createRootRun(t, ctx)
	parent, err := f.client.DelegationGrant.Get(ctx, root.DelegationGrantID)
	require.NoError(t, err)

	childPrincipal := func(t *testing.T, slug string) *ent.WorkloadPrincipal {
		tx, err := f.client.Tx(ctx)
		require.NoError(t, err)
		p, err := f.identity.EnsurePrincipal(ctx, tx, testTenant, slug, workloadprincipal.TypeAgent, nil)
		require.NoError(t, err)
		require.NoError(t, tx.Commit())
		return p
	}

	t.Run("root grant intersects requested with approved scopes", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"agents.execute", "docs.read", "docs.write"}, parent.EffectiveScopes)
	})

	t.Run("child grants attenuate, never widen", func(t *testing.T) {
		p := childPrincipal(t, "attenuated")
		tx, err := f.client.Tx(ctx)
		require.NoError(t, err)
		grant, err := f.identity.DeriveChildGrant(ctx, tx, parent, p.ID,
			[]string{"docs.read"}, &models.PolicySnapshot{})
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		assert.Equal(t, []string{"docs.read"}, grant.EffectiveScopes)
		assert.Equal(t, parent.InitiatorUserID, grant.InitiatorUserID)
		assert.Equal(t, parent.ExpiresAt.Unix(), grant.ExpiresAt.Unix(), "children inherit the parent's expiry")
	})

	t.Run("requests beyond the parent scopes fail", func(t *testing.T) {
		p := childPrincipal(t, "greedy")
		tx, err := f.client.Tx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()
		_, err = f.identity.DeriveChildGrant(ctx, tx, parent, p.ID,
			[]string{"docs.read", "admin.write"}, &models.PolicySnapshot{})
		var pe *PolicyError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, ReasonScopeOutOfRange, pe.Reason)
	})

	t.Run("the policy allowed subset further narrows the grant", func(t *testing.T) {
		p := childPrincipal(t, "narrowed")
		tx, err := f.client.Tx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()
		_, err = f.identity.DeriveChildGrant(ctx, tx, parent, p.ID,
			[]string{"docs.write"}, &models.PolicySnapshot{AllowedScopeSubset: []string{"docs.read"}})
		var pe *PolicyError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, ReasonScopeOutsidePolicy, pe.Reason)
	})

	t.Run("empty subset is rejected", func(t *testing.T) {
		p := childPrincipal(t, "empty")
		tx, err := f.client.Tx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()
		_, err = f.identity.DeriveChildGrant(ctx, tx, parent, p.ID, nil, &models.PolicySnapshot{})
		var pe *PolicyError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, ReasonScopeSubsetEmpty, pe.Reason)
	})
}

func TestIdentityService_RevocationAndTokens(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root := f.createRootRun(t, ctx)
	grantID := root.DelegationGrantID

	require.NoError(t, f.identity.RegisterToken(ctx, grantID, "jti-1", time.Now().Add(time.Hour)))
	require.NoError(t, f.identity.RegisterToken(ctx, grantID, "jti-2", time.Now().Add(time.Hour)))

	t.Run("duplicate jti registration conflicts", func(t *testing.T) {
		err := f.identity.RegisterToken(ctx, grantID, "jti-1", time.Now().Add(time.Hour))
		assert.ErrorIs(t, err, ErrStoreConflict)
	})

	t.Run("active before revocation", func(t *testing.T) {
		active, err := f.identity.IsTokenActive(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, active)
	})

	t.Run("revoking the grant revokes its tokens", func(t *testing.T) {
		require.NoError(t, f.identity.RevokeGrant(ctx, grantID, "compromised"))

		grant, err := f.client.DelegationGrant.Get(ctx, grantID)
		require.NoError(t, err)
		assert.Equal(t, delegationgrant.StatusRevoked, grant.Status)
		require.NotNil(t, grant.RevocationReason)
		assert.Equal(t, "compromised", *grant.RevocationReason)

		for _, jti := range []string{"jti-1", "jti-2"} {
			active, err := f.identity.IsTokenActive(ctx, jti)
			require.NoError(t, err)
			assert.False(t, active)
		}
	})

	t.Run("revocation is idempotent", func(t *testing.T) {
		assert.NoError(t, f.identity.RevokeGrant(ctx, grantID, "again"))
	})

	t.Run("revoking a missing grant fails", func(t *testing.T) {
		assert.ErrorIs(t, f.identity.RevokeGrant(ctx, "nope", "x"), ErrNotFound)
	})

	t.Run("unknown tokens are inactive", func(t *testing.T) {
		active, err := f.identity.IsTokenActive(ctx, "jti-unknown")
		require.NoError(t, err)
		assert.False(t, active)
	})
}

func TestIdentityService_SweepExpiredTokens(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root := f.createRootRun(t, ctx)
	grantID := root.DelegationGrantID

	require.NoError(t, f.identity.RegisterToken(ctx, grantID, "stale", time.Now().Add(-time.Hour)))
	require.NoError(t, f.identity.RegisterToken(ctx, grantID, "fresh", time.Now().Add(time.Hour)))

	swept, err := f.identity.SweepExpiredTokens(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	active, err := f.identity.IsTokenActive(ctx, "fresh")
	require.NoError(t, err)
	assert.True(t, active)
}
