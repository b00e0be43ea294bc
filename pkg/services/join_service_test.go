package services

import (
	"context"
	"testing"

	"github.com/agentforge/arc/ent"
	"github.com/agentforge/arc/ent/orchestrationgroup"
	"github.com/agentforge/arc/ent/run"
	"github.com/agentforge/arc/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spawnTestGroup spawns a three-member group under a fresh root run and
// returns the root, the group id, and the member run ids in ordinal order.
func spawnTestGroup(t *testing.T, ctx context.Context, f *kernelFixture, mode models.JoinMode, threshold *int, prefix string) (*ent.Run, string, []string) {
	t.Helper()
	root := f.createRootRun(t, ctx)
	result, err := f.spawns.SpawnGroup(ctx, f.caller(), models.SpawnGroupRequest{
		CallerRunID: root.ID,
		Targets: []models.SpawnTarget{
			{TargetAgentID: f.worker.ID},
			{TargetAgentID: f.workerB.ID},
			{TargetAgentID: f.worker.ID},
		},
		JoinMode:             mode,
		QuorumThreshold:      threshold,
		ScopeSubset:          []string{"docs.read"},
		IdempotencyKeyPrefix: prefix,
	})
	require.NoError(t, err)
	require.Len(t, result.SpawnedRunIDs, 3)
	return root, result.OrchestrationGroupID, result.SpawnedRunIDs
}

// finishRun drives a member run to a terminal status the way a worker would.
func (f *kernelFixture) finishRun(t *testing.T, ctx context.Context, runID string, status run.Status) {
	t.Helper()
	require.NoError(t, f.runs.UpdateStatus(ctx, runID, status, "test"))
}

func (f *kernelFixture) join(t *testing.T, ctx context.Context, root *ent.Run, groupID string) *models.JoinResult {
	t.Helper()
	result, err := f.joins.Join(ctx, f.caller(), models.JoinRequest{
		CallerRunID:          root.ID,
		OrchestrationGroupID: groupID,
	})
	require.NoError(t, err)
	return result
}

func TestJoinService_AllMode(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root, groupID, memberIDs := spawnTestGroup(t, ctx, f, models.JoinModeAll, nil, "all")

	t.Run("undecided while members run", func(t *testing.T) {
		result := f.join(t, ctx, root, groupID)
		assert.False(t, result.Complete)
		assert.Equal(t, "running", result.Status)
		assert.Len(t, result.Results, 3)
	})

	t.Run("completes when every member completes", func(t *testing.T) {
		for _, id := range memberIDs {
			f.finishRun(t, ctx, id, run.StatusCompleted)
		}
		result := f.join(t, ctx, root, groupID)
		assert.True(t, result.Complete)
		assert.Equal(t, string(orchestrationgroup.StatusCompleted), result.Status)
		assert.Zero(t, result.CancellationPropagated.Count)
	})

	t.Run("terminal group replays without side effects", func(t *testing.T) {
		again := f.join(t, ctx, root, groupID)
		assert.True(t, again.Complete)
		assert.Equal(t, string(orchestrationgroup.StatusCompleted), again.Status)
		assert.Zero(t, again.CancellationPropagated.Count)
	})
}

func TestJoinService_AllMode_MixedOutcome(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root, groupID, memberIDs := spawnTestGroup(t, ctx, f, models.JoinModeAll, nil, "mixed")

	f.finishRun(t, ctx, memberIDs[0], run.StatusCompleted)
	f.finishRun(t, ctx, memberIDs[1], run.StatusFailed)
	f.finishRun(t, ctx, memberIDs[2], run.StatusCompleted)

	result := f.join(t, ctx, root, groupID)
	assert.True(t, result.Complete)
	assert.Equal(t, string(orchestrationgroup.StatusCompletedWithErrors), result.Status)
}

func TestJoinService_FailFast(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root, groupID, memberIDs := spawnTestGroup(t, ctx, f, models.JoinModeFailFast, nil, "ff")

	f.finishRun(t, ctx, memberIDs[1], run.StatusFailed)

	result := f.join(t, ctx, root, groupID)
	assert.True(t, result.Complete)
	assert.Equal(t, string(orchestrationgroup.StatusFailed), result.Status)
	assert.Equal(t, 2, result.CancellationPropagated.Count, "both in-flight siblings are cancelled")

	for _, id := range []string{memberIDs[0], memberIDs[2]} {
		r, err := f.client.Run.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCancelled, r.Status)
	}

	// A replay returns the deciding payload, including the propagated count.
	replay := f.join(t, ctx, root, groupID)
	assert.True(t, replay.Complete)
	assert.Equal(t, string(orchestrationgroup.StatusFailed), replay.Status)
	assert.Equal(t, 2, replay.CancellationPropagated.Count)
}

func TestJoinService_FirstSuccess(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root, groupID, memberIDs := spawnTestGroup(t, ctx, f, models.JoinModeFirstSuccess, nil, "fs")

	f.finishRun(t, ctx, memberIDs[2], run.StatusCompleted)

	result := f.join(t, ctx, root, groupID)
	assert.True(t, result.Complete)
	assert.Equal(t, string(orchestrationgroup.StatusCompleted), result.Status)
	assert.Equal(t, 2, result.CancellationPropagated.Count)

	// First success with nothing but failures fails.
	root2, group2, ids2 := spawnTestGroup(t, ctx, f, models.JoinModeFirstSuccess, nil, "fs2")
	for _, id := range ids2 {
		f.finishRun(t, ctx, id, run.StatusFailed)
	}
	result = f.join(t, ctx, root2, group2)
	assert.True(t, result.Complete)
	assert.Equal(t, string(orchestrationgroup.StatusFailed), result.Status)
}

func TestJoinService_Quorum(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	threshold := 2

	t.Run("meets the threshold", func(t *testing.T) {
		root, groupID, memberIDs := spawnTestGroup(t, ctx, f, models.JoinModeQuorum, &threshold, "q1")

		f.finishRun(t, ctx, memberIDs[0], run.StatusCompleted)
		result := f.join(t, ctx, root, groupID)
		assert.False(t, result.Complete, "one success of two required is undecided")

		f.finishRun(t, ctx, memberIDs[1], run.StatusCompleted)
		result = f.join(t, ctx, root, groupID)
		assert.True(t, result.Complete)
		assert.Equal(t, string(orchestrationgroup.StatusCompleted), result.Status)
		assert.Equal(t, 1, result.CancellationPropagated.Count)
	})

	t.Run("fails once the threshold is unreachable", func(t *testing.T) {
		root, groupID, memberIDs := spawnTestGroup(t, ctx, f, models.JoinModeQuorum, &threshold, "q2")

		f.finishRun(t, ctx, memberIDs[0], run.StatusFailed)
		f.finishRun(t, ctx, memberIDs[1], run.StatusFailed)

		result := f.join(t, ctx, root, groupID)
		assert.True(t, result.Complete)
		assert.Equal(t, string(orchestrationgroup.StatusFailed), result.Status)
	})
}

func TestJoinService_BestEffort(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root, groupID, memberIDs := spawnTestGroup(t, ctx, f, models.JoinModeBestEffort, nil, "be")

	f.finishRun(t, ctx, memberIDs[0], run.StatusFailed)
	result := f.join(t, ctx, root, groupID)
	assert.False(t, result.Complete, "best effort waits for every member")

	f.finishRun(t, ctx, memberIDs[1], run.StatusCompleted)
	f.finishRun(t, ctx, memberIDs[2], run.StatusFailed)

	result = f.join(t, ctx, root, groupID)
	assert.True(t, result.Complete)
	assert.Equal(t, string(orchestrationgroup.StatusCompletedWithErrors), result.Status)
}

func TestJoinService_Timeout(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root, groupID, memberIDs := spawnTestGroup(t, ctx, f, models.JoinModeAll, nil, "to")

	f.finishRun(t, ctx, memberIDs[0], run.StatusCompleted)

	// A zero timeout override has already elapsed relative to started_at.
	timeout := 0
	result, err := f.joins.Join(ctx, f.caller(), models.JoinRequest{
		CallerRunID:          root.ID,
		OrchestrationGroupID: groupID,
		TimeoutS:             &timeout,
	})
	require.NoError(t, err)
	assert.True(t, result.Complete)
	assert.Equal(t, string(orchestrationgroup.StatusTimedOut), result.Status)
	assert.Equal(t, 2, result.CancellationPropagated.Count)

	group, err := f.client.OrchestrationGroup.Get(ctx, groupID)
	require.NoError(t, err)
	assert.Equal(t, orchestrationgroup.StatusTimedOut, group.Status)
	require.NotNil(t, group.CompletedAt)

	// The completed member keeps its status; the others are cancelled.
	first, err := f.client.Run.Get(ctx, memberIDs[0])
	require.NoError(t, err)
	assert.Equal(t, run.StatusCompleted, first.Status)
}

func TestJoinService_AccessChecks(t *testing.T) {
	f := setupKernel(t)
	ctx := context.Background()
	root, groupID, _ := spawnTestGroup(t, ctx, f, models.JoinModeAll, nil, "acl")

	t.Run("unknown group", func(t *testing.T) {
		_, err := f.joins.Join(ctx, f.caller(), models.JoinRequest{
			CallerRunID:          root.ID,
			OrchestrationGroupID: "nope",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("only the spawning run may join", func(t *testing.T) {
		other := f.createRootRun(t, ctx)
		_, err := f.joins.Join(ctx, f.caller(), models.JoinRequest{
			CallerRunID:          other.ID,
			OrchestrationGroupID: groupID,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("cross-tenant caller is rejected", func(t *testing.T) {
		_, err := f.joins.Join(ctx, models.Caller{TenantID: "tenant-b"}, models.JoinRequest{
			CallerRunID:          root.ID,
			OrchestrationGroupID: groupID,
		})
		assert.ErrorIs(t, err, ErrTenantMismatch)
	})

	t.Run("quorum override needs a usable threshold", func(t *testing.T) {
		bad := 9
		_, err := f.joins.Join(ctx, f.caller(), models.JoinRequest{
			CallerRunID:          root.ID,
			OrchestrationGroupID: groupID,
			Mode:                 models.JoinModeQuorum,
			QuorumThreshold:      &bad,
		})
		assert.True(t, IsValidationError(err))
	})
}
