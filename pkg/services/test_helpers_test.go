package services

import (
	"context"
	"testing"

	"github.com/agentforge/arc/ent"
	entagent "github.com/agentforge/arc/ent/agent"
	"github.com/agentforge/arc/ent/workloadprincipal"
	"github.com/agentforge/arc/pkg/config"
	"github.com/agentforge/arc/pkg/models"
	testdb "github.com/agentforge/arc/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testTenant = "tenant-a"

// kernelFixture wires the kernel services over one test database together
// with a small agent catalog: a published orchestrator, two published
// workers, and a draft agent, with the workers allowlisted for the
// orchestrator.
type kernelFixture struct {
	client   *ent.Client
	identity *IdentityService
	policy   *PolicyService
	runs     *RunService
	spawns   *SpawnService
	joins    *JoinService
	cancels  *CancelService

	orchestrator *ent.Agent
	worker       *ent.Agent
	workerB      *ent.Agent
	draft        *ent.Agent
}

func setupKernel(t *testing.T) *kernelFixture {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	features := config.DefaultFeatures()
	identity := NewIdentityService(client, true)
	policy := NewPolicyService(client, config.DefaultPolicyDefaults())

	f := &kernelFixture{
		client:   client,
		identity: identity,
		policy:   policy,
		runs:     NewRunService(client, identity),
		spawns:   NewSpawnService(client, identity, policy, features, nil),
		joins:    NewJoinService(client, features),
		cancels:  NewCancelService(client, features),
	}

	f.orchestrator = f.createAgent(t, ctx, "triage-orchestrator", entagent.StatusPublished)
	f.worker = f.createAgent(t, ctx, "researcher", entagent.StatusPublished)
	f.workerB = f.createAgent(t, ctx, "summarizer", entagent.StatusPublished)
	f.draft = f.createAgent(t, ctx, "drafty", entagent.StatusDraft)

	f.allowTarget(t, ctx, f.worker)
	f.allowTarget(t, ctx, f.workerB)
	f.allowTarget(t, ctx, f.orchestrator)

	return f
}

func (f *kernelFixture) createAgent(t *testing.T, ctx context.Context, slug string, status entagent.Status) *ent.Agent {
	t.Helper()
	a, err := f.client.Agent.Create().
		SetID(uuid.New().String()).
		SetTenantID(testTenant).
		SetSlug(slug).
		SetStatus(status).
		Save(ctx)
	require.NoError(t, err)
	return a
}

func (f *kernelFixture) allowTarget(t *testing.T, ctx context.Context, target *ent.Agent) {
	t.Helper()
	err := f.client.OrchestratorTarget.Create().
		SetID(uuid.New().String()).
		SetTenantID(testTenant).
		SetOrchestratorAgentID(f.orchestrator.ID).
		SetTargetAgentID(target.ID).
		Exec(ctx)
	require.NoError(t, err)
}

// createRootRun creates a root run for the orchestrator with broad scopes.
// Principals created through EnsurePrincipal start pending, so the scope
// policy is approved explicitly before the grant is derived.
func (f *kernelFixture) createRootRun(t *testing.T, ctx context.Context) *ent.Run {
	t.Helper()
	return f.createRootRunWithScopes(t, ctx, []string{"agents.execute", "docs.read", "docs.write"})
}

func (f *kernelFixture) createRootRunWithScopes(t *testing.T, ctx context.Context, scopes []string) *ent.Run {
	t.Helper()

	f.approvePrincipal(t, ctx, f.orchestrator.Slug, scopes)

	root, err := f.runs.CreateRootRun(ctx, models.CreateRunRequest{
		TenantID:        testTenant,
		AgentID:         f.orchestrator.ID,
		InitiatorUserID: "user-1",
		RequestedScopes: scopes,
	})
	require.NoError(t, err)
	return root
}

// approvePrincipal ensures the principal exists and approves the scopes,
// so grant derivation has something to intersect with.
func (f *kernelFixture) approvePrincipal(t *testing.T, ctx context.Context, slug string, scopes []string) {
	t.Helper()

	tx, err := f.client.Tx(ctx)
	require.NoError(t, err)
	principal, err := f.identity.EnsurePrincipal(ctx, tx, testTenant, slug, workloadprincipal.TypeAgent, scopes)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	require.NoError(t, f.identity.ApprovePrincipal(ctx, principal.ID, scopes))
}

func (f *kernelFixture) caller() models.Caller {
	return models.Caller{
		TenantID: testTenant,
		UserID:   "user-1",
		Scopes:   []string{"agents.execute"},
	}
}
