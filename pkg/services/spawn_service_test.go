package services

import (
	"context"
	"sync"
	"testing"

	"github.com/agentforge/arc/ent"
	"github.com/agentforge/arc/ent/groupmember"
	"github.com/agentforge/arc/ent/orchestrationgroup"
	"github.com/agentforge/arc/ent/run"
	"github.com/agentforge/arc/pkg/config"
	"github.com/agentforge/arc/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnService_SpawnRun(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root := f.createRootRun(t, ctx)

	t.Run("spawns a child with lineage and an attenuated grant", func(t *testing.T) {
		result, err := f.spawns.SpawnRun(ctx, f.caller(), models.SpawnRunRequest{
			CallerRunID:    root.ID,
			TargetAgentID:  f.worker.ID,
			ScopeSubset:    []string{"docs.read"},
			IdempotencyKey: "research-1",
		})
		require.NoError(t, err)
		require.Len(t, result.SpawnedRunIDs, 1)
		assert.False(t, result.Idempotent)

		child, err := f.client.Run.Get(ctx, result.SpawnedRunIDs[0])
		require.NoError(t, err)
		assert.Equal(t, root.ID, *child.ParentRunID)
		assert.Equal(t, root.RootRunID, child.RootRunID)
		assert.Equal(t, root.Depth+1, child.Depth)
		assert.Equal(t, run.StatusQueued, child.Status)
		assert.Equal(t, "research-1", *child.SpawnKey)

		grant, err := f.client.DelegationGrant.Get(ctx, child.DelegationGrantID)
		require.NoError(t, err)
		assert.Equal(t, []string{"docs.read"}, grant.EffectiveScopes)
		require.NotNil(t, grant.RunID)
		assert.Equal(t, child.ID, *grant.RunID)
		require.NotNil(t, grant.ParentGrantID)
		assert.Equal(t, root.DelegationGrantID, *grant.ParentGrantID)
	})

	t.Run("replays the same idempotency key without a second child", func(t *testing.T) {
		first, err := f.spawns.SpawnRun(ctx, f.caller(), models.SpawnRunRequest{
			CallerRunID:    root.ID,
			TargetAgentID:  f.worker.ID,
			ScopeSubset:    []string{"docs.read"},
			IdempotencyKey: "research-replay",
		})
		require.NoError(t, err)

		second, err := f.spawns.SpawnRun(ctx, f.caller(), models.SpawnRunRequest{
			CallerRunID:    root.ID,
			TargetAgentID:  f.worker.ID,
			ScopeSubset:    []string{"docs.read"},
			IdempotencyKey: "research-replay",
		})
		require.NoError(t, err)
		assert.True(t, second.Idempotent)
		assert.Equal(t, first.SpawnedRunIDs, second.SpawnedRunIDs)
	})

	t.Run("rejects a draft target", func(t *testing.T) {
		f.allowTarget(t, ctx, f.draft)
		_, err := f.spawns.SpawnRun(ctx, f.caller(), models.SpawnRunRequest{
			CallerRunID:    root.ID,
			TargetAgentID:  f.draft.ID,
			ScopeSubset:    []string{"docs.read"},
			IdempotencyKey: "draft-1",
		})
		require.Error(t, err)
		var pe *PolicyError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, ReasonTargetNotPublished, pe.Reason)
	})

	t.Run("rejects a target off the allowlist", func(t *testing.T) {
		outsider := f.createAgent(t, ctx, "outsider", "published")
		_, err := f.spawns.SpawnRun(ctx, f.caller(), models.SpawnRunRequest{
			CallerRunID:    root.ID,
			TargetAgentID:  outsider.ID,
			ScopeSubset:    []string{"docs.read"},
			IdempotencyKey: "outsider-1",
		})
		var pe *PolicyError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, ReasonTargetNotAllowed, pe.Reason)
	})

	t.Run("rejects scope subsets beyond the caller's grant", func(t *testing.T) {
		_, err := f.spawns.SpawnRun(ctx, f.caller(), models.SpawnRunRequest{
			CallerRunID:    root.ID,
			TargetAgentID:  f.worker.ID,
			ScopeSubset:    []string{"admin.write"},
			IdempotencyKey: "too-broad",
		})
		var pe *PolicyError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, ReasonScopeOutOfRange, pe.Reason)
	})

	t.Run("rejects an empty scope subset", func(t *testing.T) {
		_, err := f.spawns.SpawnRun(ctx, f.caller(), models.SpawnRunRequest{
			CallerRunID:    root.ID,
			TargetAgentID:  f.worker.ID,
			IdempotencyKey: "no-scopes",
		})
		var pe *PolicyError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, ReasonScopeSubsetEmpty, pe.Reason)
	})

	t.Run("rejects a caller from another tenant", func(t *testing.T) {
		_, err := f.spawns.SpawnRun(ctx, models.Caller{TenantID: "tenant-b"}, models.SpawnRunRequest{
			CallerRunID:    root.ID,
			TargetAgentID:  f.worker.ID,
			ScopeSubset:    []string{"docs.read"},
			IdempotencyKey: "cross-tenant",
		})
		assert.ErrorIs(t, err, ErrTenantMismatch)
	})

	t.Run("rejects when the surface is disabled", func(t *testing.T) {
		disabled := &config.Features{}
		spawns := NewSpawnService(f.client, f.identity, f.policy, disabled, nil)
		_, err := spawns.SpawnRun(ctx, f.caller(), models.SpawnRunRequest{
			CallerRunID:    root.ID,
			TargetAgentID:  f.worker.ID,
			ScopeSubset:    []string{"docs.read"},
			IdempotencyKey: "gated",
		})
		assert.ErrorIs(t, err, ErrFeatureDisabled)
	})

	t.Run("validates the request shape", func(t *testing.T) {
		_, err := f.spawns.SpawnRun(ctx, f.caller(), models.SpawnRunRequest{
			CallerRunID:   root.ID,
			TargetAgentID: f.worker.ID,
			ScopeSubset:   []string{"docs.read"},
		})
		assert.True(t, IsValidationError(err), "missing idempotency key should be a validation error")

		_, err = f.spawns.SpawnRun(ctx, f.caller(), models.SpawnRunRequest{
			CallerRunID:     root.ID,
			TargetAgentID:   f.worker.ID,
			TargetAgentSlug: f.worker.Slug,
			ScopeSubset:     []string{"docs.read"},
			IdempotencyKey:  "both-targets",
		})
		assert.True(t, IsValidationError(err), "both target forms should be a validation error")
	})
}

func TestSpawnService_SpawnRun_ConcurrentIdempotency(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root := f.createRootRun(t, ctx)

	const callers = 20
	var wg sync.WaitGroup
	results := make([]*models.SpawnRunResult, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.spawns.SpawnRun(ctx, f.caller(), models.SpawnRunRequest{
				CallerRunID:    root.ID,
				TargetAgentID:  f.worker.ID,
				ScopeSubset:    []string{"docs.read"},
				IdempotencyKey: "storm",
			})
		}(i)
	}
	wg.Wait()

	var childID string
	nonIdempotent := 0
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.Len(t, results[i].SpawnedRunIDs, 1)
		if childID == "" {
			childID = results[i].SpawnedRunIDs[0]
		}
		assert.Equal(t, childID, results[i].SpawnedRunIDs[0], "all callers must observe the same child")
		if !results[i].Idempotent {
			nonIdempotent++
		}
	}
	assert.Equal(t, 1, nonIdempotent, "exactly one caller wins the insert")

	count, err := f.client.Run.Query().
		Where(run.ParentRunID(root.ID), run.SpawnKey("storm")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSpawnService_Limits(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root := f.createRootRun(t, ctx)

	// Tight policy row for the orchestrator: two children per parent.
	err := f.client.OrchestratorPolicy.Create().
		SetID(uuid.New().String()).
		SetTenantID(testTenant).
		SetOrchestratorAgentID(f.orchestrator.ID).
		SetMaxDepth(1).
		SetMaxFanout(2).
		SetMaxChildrenTotal(10).
		Exec(ctx)
	require.NoError(t, err)

	spawnOne := func(key string) (*models.SpawnRunResult, error) {
		return f.spawns.SpawnRun(ctx, f.caller(), models.SpawnRunRequest{
			CallerRunID:    root.ID,
			TargetAgentID:  f.worker.ID,
			ScopeSubset:    []string{"docs.read"},
			IdempotencyKey: key,
		})
	}

	t.Run("per-parent fanout is enforced", func(t *testing.T) {
		_, err := spawnOne("c1")
		require.NoError(t, err)
		_, err = spawnOne("c2")
		require.NoError(t, err)

		_, err = spawnOne("c3")
		var pe *PolicyError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, ReasonMaxFanoutExceeded, pe.Reason)
		assert.Contains(t, pe.Message, "max_fanout exceeded")
	})

	t.Run("replays do not consume fanout budget", func(t *testing.T) {
		result, err := spawnOne("c1")
		require.NoError(t, err)
		assert.True(t, result.Idempotent)
	})

	t.Run("depth limit blocks grandchildren", func(t *testing.T) {
		first, err := f.client.Run.Query().
			Where(run.ParentRunID(root.ID), run.SpawnKey("c1")).
			Only(ctx)
		require.NoError(t, err)

		// The child's agent becomes the orchestrator for the next level;
		// give it a policy of its own and an allowlist so only depth fails.
		err = f.client.OrchestratorPolicy.Create().
			SetID(uuid.New().String()).
			SetTenantID(testTenant).
			SetOrchestratorAgentID(f.worker.ID).
			SetMaxDepth(1).
			SetMaxFanout(2).
			SetMaxChildrenTotal(10).
			Exec(ctx)
		require.NoError(t, err)
		err = f.client.OrchestratorTarget.Create().
			SetID(uuid.New().String()).
			SetTenantID(testTenant).
			SetOrchestratorAgentID(f.worker.ID).
			SetTargetAgentID(f.workerB.ID).
			Exec(ctx)
		require.NoError(t, err)

		_, err = f.spawns.SpawnRun(ctx, f.caller(), models.SpawnRunRequest{
			CallerRunID:    first.ID,
			TargetAgentID:  f.workerB.ID,
			ScopeSubset:    []string{"docs.read"},
			IdempotencyKey: "too-deep",
		})
		var pe *PolicyError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, ReasonMaxDepthExceeded, pe.Reason)
		assert.Contains(t, pe.Message, "max_depth exceeded")
	})

	t.Run("group fanout is enforced in a single call", func(t *testing.T) {
		wide := f.createRootRun(t, ctx)
		_, err := f.spawns.SpawnGroup(ctx, f.caller(), models.SpawnGroupRequest{
			CallerRunID: wide.ID,
			Targets: []models.SpawnTarget{
				{TargetAgentID: f.worker.ID},
				{TargetAgentID: f.workerB.ID},
				{TargetAgentID: f.worker.ID},
			},
			JoinMode:             models.JoinModeAll,
			ScopeSubset:          []string{"docs.read"},
			IdempotencyKeyPrefix: "wide",
		})
		var pe *PolicyError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, ReasonMaxFanoutExceeded, pe.Reason)
		assert.Contains(t, pe.Message, "max_fanout exceeded")

		groups, err := f.client.OrchestrationGroup.Query().
			Where(orchestrationgroup.IdempotencyKeyPrefix("wide")).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, groups, "rejected group spawn must leave no group row")
	})
}

func TestSpawnService_SubtreeTotalLimit(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root := f.createRootRun(t, ctx)

	// Generous depth and fanout; the whole subtree may hold two runs.
	for _, agentID := range []string{f.orchestrator.ID, f.worker.ID} {
		err := f.client.OrchestratorPolicy.Create().
			SetID(uuid.New().String()).
			SetTenantID(testTenant).
			SetOrchestratorAgentID(agentID).
			SetMaxDepth(3).
			SetMaxFanout(8).
			SetMaxChildrenTotal(2).
			Exec(ctx)
		require.NoError(t, err)
	}
	err := f.client.OrchestratorTarget.Create().
		SetID(uuid.New().String()).
		SetTenantID(testTenant).
		SetOrchestratorAgentID(f.worker.ID).
		SetTargetAgentID(f.workerB.ID).
		Exec(ctx)
	require.NoError(t, err)

	first, err := f.spawns.SpawnRun(ctx, f.caller(), models.SpawnRunRequest{
		CallerRunID:    root.ID,
		TargetAgentID:  f.worker.ID,
		ScopeSubset:    []string{"docs.read"},
		IdempotencyKey: "c1",
	})
	require.NoError(t, err)

	// A grandchild counts against the same subtree budget as the child.
	_, err = f.spawns.SpawnRun(ctx, f.caller(), models.SpawnRunRequest{
		CallerRunID:    first.SpawnedRunIDs[0],
		TargetAgentID:  f.workerB.ID,
		ScopeSubset:    []string{"docs.read"},
		IdempotencyKey: "g1",
	})
	require.NoError(t, err)

	_, err = f.spawns.SpawnRun(ctx, f.caller(), models.SpawnRunRequest{
		CallerRunID:    root.ID,
		TargetAgentID:  f.worker.ID,
		ScopeSubset:    []string{"docs.read"},
		IdempotencyKey: "c2",
	})
	var pe *PolicyError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ReasonMaxChildrenExceeded, pe.Reason)
	assert.Contains(t, pe.Message, "max_children_total exceeded")

	// Replays of an existing child do not consume subtree budget.
	replay, err := f.spawns.SpawnRun(ctx, f.caller(), models.SpawnRunRequest{
		CallerRunID:    root.ID,
		TargetAgentID:  f.worker.ID,
		ScopeSubset:    []string{"docs.read"},
		IdempotencyKey: "c1",
	})
	require.NoError(t, err)
	assert.True(t, replay.Idempotent)
}

func TestSpawnService_SpawnGroup(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root := f.createRootRun(t, ctx)

	groupReq := func(prefix string) models.SpawnGroupRequest {
		return models.SpawnGroupRequest{
			CallerRunID: root.ID,
			Targets: []models.SpawnTarget{
				{TargetAgentID: f.worker.ID},
				{TargetAgentID: f.workerB.ID},
				{TargetAgentSlug: f.worker.Slug},
			},
			JoinMode:             models.JoinModeAll,
			ScopeSubset:          []string{"docs.read"},
			IdempotencyKeyPrefix: prefix,
		}
	}

	t.Run("spawns a group with ordinal members", func(t *testing.T) {
		result, err := f.spawns.SpawnGroup(ctx, f.caller(), groupReq("fanout"))
		require.NoError(t, err)
		require.Len(t, result.SpawnedRunIDs, 3)
		assert.False(t, result.Idempotent)

		group, err := f.client.OrchestrationGroup.Get(ctx, result.OrchestrationGroupID)
		require.NoError(t, err)
		assert.Equal(t, orchestrationgroup.StatusRunning, group.Status)
		assert.Equal(t, root.ID, group.OrchestratorRunID)
		assert.NotEmpty(t, group.PolicySnapshot)

		members, err := f.client.GroupMember.Query().
			Where(groupmember.GroupID(group.ID)).
			Order(ent.Asc(groupmember.FieldOrdinal)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, members, 3)
		for i, m := range members {
			assert.Equal(t, i, m.Ordinal)
			assert.Equal(t, result.SpawnedRunIDs[i], m.RunID)
		}

		// Per-child spawn keys derive from the prefix and ordinal.
		first, err := f.client.Run.Get(ctx, result.SpawnedRunIDs[0])
		require.NoError(t, err)
		assert.Equal(t, "fanout:0", *first.SpawnKey)
	})

	t.Run("replays the group and its member run ids", func(t *testing.T) {
		first, err := f.spawns.SpawnGroup(ctx, f.caller(), groupReq("replay"))
		require.NoError(t, err)

		second, err := f.spawns.SpawnGroup(ctx, f.caller(), groupReq("replay"))
		require.NoError(t, err)
		assert.True(t, second.Idempotent)
		assert.Equal(t, first.OrchestrationGroupID, second.OrchestrationGroupID)
		assert.Equal(t, first.SpawnedRunIDs, second.SpawnedRunIDs)
	})

	t.Run("quorum threshold must fit the member count", func(t *testing.T) {
		req := groupReq("bad-quorum")
		req.JoinMode = models.JoinModeQuorum
		threshold := 5
		req.QuorumThreshold = &threshold
		_, err := f.spawns.SpawnGroup(ctx, f.caller(), req)
		assert.True(t, IsValidationError(err))

		req.QuorumThreshold = nil
		_, err = f.spawns.SpawnGroup(ctx, f.caller(), req)
		assert.True(t, IsValidationError(err))
	})

	t.Run("a bad target rolls back the whole group", func(t *testing.T) {
		req := groupReq("atomic")
		req.Targets = append(req.Targets, models.SpawnTarget{TargetAgentID: f.draft.ID})
		f.allowTarget(t, ctx, f.draft)

		_, err := f.spawns.SpawnGroup(ctx, f.caller(), req)
		var pe *PolicyError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, ReasonTargetNotPublished, pe.Reason)

		groups, err := f.client.OrchestrationGroup.Query().
			Where(orchestrationgroup.IdempotencyKeyPrefix("atomic")).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, groups, "failed group spawn must leave no group row")

		orphans, err := f.client.Run.Query().
			Where(run.ParentRunID(root.ID), run.SpawnKeyHasPrefix("atomic:")).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, orphans, "failed group spawn must leave no children")
	})
}
