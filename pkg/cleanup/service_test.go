package cleanup

import (
	"context"
	"testing"
	"time"

	entagent "github.com/agentforge/arc/ent/agent"
	"github.com/agentforge/arc/ent/run"
	"github.com/agentforge/arc/ent/workloadprincipal"
	"github.com/agentforge/arc/pkg/config"
	"github.com/agentforge/arc/pkg/models"
	"github.com/agentforge/arc/pkg/services"
	testdb "github.com/agentforge/arc/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RunAll(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	identity := services.NewIdentityService(client, true)
	runs := services.NewRunService(client, identity)

	_, err := client.Agent.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-a").
		SetSlug("keeper").
		SetStatus(entagent.StatusPublished).
		Save(ctx)
	require.NoError(t, err)

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	principal, err := identity.EnsurePrincipal(ctx, tx, "tenant-a", "keeper", workloadprincipal.TypeAgent, []string{"docs.read"})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.NoError(t, identity.ApprovePrincipal(ctx, principal.ID, []string{"docs.read"}))

	fresh, err := runs.CreateRootRun(ctx, models.CreateRunRequest{
		TenantID:        "tenant-a",
		AgentSlug:       "keeper",
		InitiatorUserID: "user-1",
		RequestedScopes: []string{"docs.read"},
	})
	require.NoError(t, err)

	stale, err := runs.CreateRootRun(ctx, models.CreateRunRequest{
		TenantID:        "tenant-a",
		AgentSlug:       "keeper",
		InitiatorUserID: "user-1",
		RequestedScopes: []string{"docs.read"},
	})
	require.NoError(t, err)
	err = client.Run.UpdateOneID(stale.ID).
		SetStatus(run.StatusCompleted).
		SetCompletedAt(time.Now().AddDate(0, 0, -120)).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, identity.RegisterToken(ctx, fresh.DelegationGrantID, "expired", time.Now().Add(-time.Hour)))
	require.NoError(t, identity.RegisterToken(ctx, fresh.DelegationGrantID, "live", time.Now().Add(time.Hour)))

	svc := NewService(config.DefaultRetentionConfig(), identity, runs)
	svc.runAll(ctx)

	// The stale terminal run is gone, the fresh one survives.
	exists, err := client.Run.Query().Where(run.ID(stale.ID)).Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = client.Run.Query().Where(run.ID(fresh.ID)).Exist(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	// Only the expired token was swept.
	active, err := identity.IsTokenActive(ctx, "live")
	require.NoError(t, err)
	assert.True(t, active)
	active, err = identity.IsTokenActive(ctx, "expired")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	identity := services.NewIdentityService(client, true)
	runs := services.NewRunService(client, identity)

	cfg := config.DefaultRetentionConfig()
	cfg.CleanupInterval = 10 * time.Millisecond

	svc := NewService(cfg, identity, runs)
	svc.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	svc.Stop()
}
