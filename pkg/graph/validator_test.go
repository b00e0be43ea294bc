package graph

import (
	"context"
	"testing"

	"github.com/agentforge/arc/ent"
	entagent "github.com/agentforge/arc/ent/agent"
	"github.com/agentforge/arc/pkg/config"
	"github.com/agentforge/arc/pkg/services"
	testdb "github.com/agentforge/arc/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTenant = "tenant-a"

type validatorFixture struct {
	client       *ent.Client
	validator    *Validator
	features     *config.Features
	orchestrator *ent.Agent
	worker       *ent.Agent
	draft        *ent.Agent
}

func setupValidator(t *testing.T) *validatorFixture {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	features := config.DefaultFeatures()
	policy := services.NewPolicyService(client, config.DefaultPolicyDefaults())

	f := &validatorFixture{
		client:    client,
		features:  features,
		validator: NewValidator(client, features, policy),
	}

	createAgent := func(slug string, status entagent.Status) *ent.Agent {
		a, err := client.Agent.Create().
			SetID(uuid.New().String()).
			SetTenantID(testTenant).
			SetSlug(slug).
			SetStatus(status).
			Save(ctx)
		require.NoError(t, err)
		return a
	}
	f.orchestrator = createAgent("planner", entagent.StatusPublished)
	f.worker = createAgent("researcher", entagent.StatusPublished)
	f.draft = createAgent("drafty", entagent.StatusDraft)

	err := client.OrchestratorTarget.Create().
		SetID(uuid.New().String()).
		SetTenantID(testTenant).
		SetOrchestratorAgentID(f.orchestrator.ID).
		SetTargetAgentID(f.worker.ID).
		Exec(ctx)
	require.NoError(t, err)

	return f
}

func (f *validatorFixture) validate(t *testing.T, spec *Spec) []Issue {
	t.Helper()
	issues, err := f.validator.Validate(context.Background(), testTenant, f.orchestrator.ID, spec)
	require.NoError(t, err)
	return issues
}

func messages(issues []Issue) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Message)
	}
	return out
}

func spawnNode(id, targetSlug string) Node {
	return Node{
		ID:          id,
		Type:        NodeTypeSpawnRun,
		Target:      &TargetRef{TargetAgentSlug: targetSlug},
		ScopeSubset: []string{"docs.read"},
	}
}

func TestValidator_SpecVersionGating(t *testing.T) {
	f := setupValidator(t)

	t.Run("v1 graphs may not carry orchestration nodes", func(t *testing.T) {
		spec := &Spec{
			SpecVersion: "1.0",
			Nodes:       []Node{spawnNode("s1", "researcher")},
		}
		issues := f.validate(t, spec)
		require.Len(t, issues, 1)
		assert.Equal(t, "s1", issues[0].NodeID)
		assert.Contains(t, issues[0].Message, "require spec_version='2.0'")
	})

	t.Run("plain v1 graphs pass untouched", func(t *testing.T) {
		spec := &Spec{
			SpecVersion: "1.0",
			Nodes:       []Node{{ID: "a", Type: "llm"}, {ID: "b", Type: "llm"}},
			Edges:       []Edge{{From: "a", To: "b"}},
		}
		assert.Empty(t, f.validate(t, spec))
	})

	t.Run("disabled v2 gate rejects every orchestration node", func(t *testing.T) {
		gated := &config.Features{
			GraphSpecV2:          config.Surface{Enabled: true, TenantAllowlist: []string{"tenant-z"}},
			RuntimeOrchestration: config.Surface{Enabled: true},
		}
		validator := NewValidator(f.client, gated, services.NewPolicyService(f.client, config.DefaultPolicyDefaults()))

		spec := &Spec{
			SpecVersion: SpecVersionV2,
			Nodes:       []Node{spawnNode("s1", "researcher")},
		}
		issues, err := validator.Validate(context.Background(), testTenant, f.orchestrator.ID, spec)
		require.NoError(t, err)
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0].Message, "disabled for this tenant")
	})
}

func TestValidator_Structure(t *testing.T) {
	f := setupValidator(t)

	t.Run("duplicate ids and dangling edges", func(t *testing.T) {
		spec := &Spec{
			SpecVersion: SpecVersionV2,
			Nodes:       []Node{{ID: "a", Type: "llm"}, {ID: "a", Type: "llm"}},
			Edges:       []Edge{{From: "a", To: "ghost"}},
		}
		issues := f.validate(t, spec)
		assert.Contains(t, messages(issues), "duplicate node id")
		assert.Contains(t, messages(issues), `edge references unknown node "ghost"`)
	})

	t.Run("cycles are rejected", func(t *testing.T) {
		spec := &Spec{
			SpecVersion: SpecVersionV2,
			Nodes:       []Node{spawnNode("a", "researcher"), spawnNode("b", "researcher")},
			Edges:       []Edge{{From: "a", To: "b"}, {From: "b", To: "a"}},
		}
		issues := f.validate(t, spec)
		assert.Contains(t, messages(issues), "graph contains a cycle")
	})
}

func TestValidator_PolicyChecks(t *testing.T) {
	f := setupValidator(t)

	t.Run("valid spawn and join pass", func(t *testing.T) {
		threshold := 1
		spec := &Spec{
			SpecVersion: SpecVersionV2,
			Nodes: []Node{
				{
					ID:   "fanout",
					Type: NodeTypeSpawnGroup,
					Targets: []TargetRef{
						{TargetAgentSlug: "researcher"},
						{TargetAgentID: f.worker.ID},
					},
					JoinMode:        "quorum",
					QuorumThreshold: &threshold,
					ScopeSubset:     []string{"docs.read"},
				},
				{ID: "gather", Type: NodeTypeJoin, GroupNodeID: "fanout"},
			},
			Edges: []Edge{{From: "fanout", To: "gather"}},
		}
		assert.Empty(t, f.validate(t, spec))
	})

	t.Run("unpublished and unknown targets", func(t *testing.T) {
		spec := &Spec{
			SpecVersion: SpecVersionV2,
			Nodes: []Node{
				spawnNode("s1", "drafty"),
				spawnNode("s2", "no-such-agent"),
			},
		}
		issues := f.validate(t, spec)
		assert.Contains(t, messages(issues), "target agent drafty is not published")
		// A draft agent is also absent from the allowlist.
		assert.Contains(t, messages(issues), "target agent drafty is not on the orchestrator's allowlist")
		assert.Contains(t, messages(issues), "target slug=no-such-agent is unknown")
	})

	t.Run("join linkage must name a spawn_group", func(t *testing.T) {
		spec := &Spec{
			SpecVersion: SpecVersionV2,
			Nodes: []Node{
				spawnNode("s1", "researcher"),
				{ID: "j1", Type: NodeTypeJoin},
				{ID: "j2", Type: NodeTypeJoin, GroupNodeID: "s1"},
			},
		}
		issues := f.validate(t, spec)
		assert.Contains(t, messages(issues), "join node must reference a spawn_group node via group_node_id")
		assert.Contains(t, messages(issues), `join references node "s1" which is not a spawn_group`)
	})

	t.Run("quorum threshold bounds", func(t *testing.T) {
		tooHigh := 3
		spec := &Spec{
			SpecVersion: SpecVersionV2,
			Nodes: []Node{
				{
					ID:              "g",
					Type:            NodeTypeSpawnGroup,
					Targets:         []TargetRef{{TargetAgentSlug: "researcher"}},
					JoinMode:        "quorum",
					QuorumThreshold: &tooHigh,
					ScopeSubset:     []string{"docs.read"},
				},
			},
		}
		issues := f.validate(t, spec)
		assert.Contains(t, messages(issues), "quorum_threshold exceeds the declared member count")
	})

	t.Run("empty scope subset", func(t *testing.T) {
		n := spawnNode("s1", "researcher")
		n.ScopeSubset = nil
		issues := f.validate(t, &Spec{SpecVersion: SpecVersionV2, Nodes: []Node{n}})
		assert.Contains(t, messages(issues), "scope_subset must not be empty")
	})
}

func TestValidator_Limits(t *testing.T) {
	f := setupValidator(t)
	ctx := context.Background()

	// Tight limits so small graphs trip them.
	err := f.client.OrchestratorPolicy.Create().
		SetID(uuid.New().String()).
		SetTenantID(testTenant).
		SetOrchestratorAgentID(f.orchestrator.ID).
		SetMaxDepth(1).
		SetMaxFanout(2).
		SetMaxChildrenTotal(3).
		Exec(ctx)
	require.NoError(t, err)

	t.Run("declared fanout beyond max_fanout", func(t *testing.T) {
		spec := &Spec{
			SpecVersion: SpecVersionV2,
			Nodes: []Node{
				{
					ID:   "g",
					Type: NodeTypeSpawnGroup,
					Targets: []TargetRef{
						{TargetAgentSlug: "researcher"},
						{TargetAgentSlug: "researcher"},
						{TargetAgentSlug: "researcher"},
					},
					JoinMode:    "all",
					ScopeSubset: []string{"docs.read"},
				},
			},
		}
		issues := f.validate(t, spec)
		assert.Contains(t, messages(issues), "node declares 3 targets, max_fanout is 2")
	})

	t.Run("declared total beyond max_children_total", func(t *testing.T) {
		spec := &Spec{
			SpecVersion: SpecVersionV2,
			Nodes: []Node{
				spawnNode("a", "researcher"),
				spawnNode("b", "researcher"),
				spawnNode("c", "researcher"),
				spawnNode("d", "researcher"),
			},
		}
		issues := f.validate(t, spec)
		assert.Contains(t, messages(issues), "graph declares 4 children under one parent, max_fanout is 2")
		assert.Contains(t, messages(issues), "graph declares 4 children, max_children_total is 3")
	})

	t.Run("spawn chains beyond max_depth", func(t *testing.T) {
		spec := &Spec{
			SpecVersion: SpecVersionV2,
			Nodes:       []Node{spawnNode("a", "researcher"), spawnNode("b", "researcher")},
			Edges:       []Edge{{From: "a", To: "b"}},
		}
		issues := f.validate(t, spec)
		assert.Contains(t, messages(issues), "graph declares a spawn chain of depth 2, max_depth is 1")
	})
}
