package graph

import (
	"context"
	"fmt"

	"github.com/agentforge/arc/ent"
	entagent "github.com/agentforge/arc/ent/agent"
	"github.com/agentforge/arc/ent/orchestratortarget"
	"github.com/agentforge/arc/pkg/config"
	"github.com/agentforge/arc/pkg/models"
	"github.com/agentforge/arc/pkg/services"
)

// Issue is one static validation finding, attributed to a node when the
// finding concerns a specific node.
type Issue struct {
	NodeID  string `json:"node_id,omitempty"`
	Message string `json:"message"`
}

// Validator statically checks agent graphs before any run starts. For
// spec_version 2.0 graphs it validates every orchestration node against
// the orchestrator's policy and allowlist, resolved once per graph.
// Validation is conservative: a graph that could exceed policy limits on
// any execution path is rejected.
type Validator struct {
	client   *ent.Client
	features *config.Features
	policy   *services.PolicyService
}

// NewValidator creates a new Validator
func NewValidator(client *ent.Client, features *config.Features, policy *services.PolicyService) *Validator {
	return &Validator{client: client, features: features, policy: policy}
}

// Validate checks a graph for the given orchestrator agent. The returned
// issues are empty when the graph is valid; the error return is reserved
// for infrastructure failures.
func (v *Validator) Validate(ctx context.Context, tenantID, orchestratorAgentID string, spec *Spec) ([]Issue, error) {
	var issues []Issue

	nodesByID := make(map[string]*Node, len(spec.Nodes))
	for i := range spec.Nodes {
		n := &spec.Nodes[i]
		if n.ID == "" {
			issues = append(issues, Issue{Message: "node without id"})
			continue
		}
		if _, dup := nodesByID[n.ID]; dup {
			issues = append(issues, Issue{NodeID: n.ID, Message: "duplicate node id"})
			continue
		}
		nodesByID[n.ID] = n
	}

	adjacency := make(map[string][]string)
	for _, e := range spec.Edges {
		if _, ok := nodesByID[e.From]; !ok {
			issues = append(issues, Issue{Message: fmt.Sprintf("edge references unknown node %q", e.From)})
			continue
		}
		if _, ok := nodesByID[e.To]; !ok {
			issues = append(issues, Issue{Message: fmt.Sprintf("edge references unknown node %q", e.To)})
			continue
		}
		adjacency[e.From] = append(adjacency[e.From], e.To)
	}

	acyclic := true
	if cycleNode := findCycle(nodesByID, adjacency); cycleNode != "" {
		issues = append(issues, Issue{NodeID: cycleNode, Message: "graph contains a cycle"})
		acyclic = false
	}

	// Orchestration nodes are a v2-only surface: a v1 graph that contains
	// any of them is rejected outright, with no policy resolution.
	if spec.SpecVersion != SpecVersionV2 {
		for _, n := range spec.Nodes {
			if IsOrchestrationNode(n.Type) {
				issues = append(issues, Issue{
					NodeID: n.ID,
					Message: fmt.Sprintf(
						"%s nodes require spec_version='2.0', graph declares %q", n.Type, spec.SpecVersion),
				})
			}
		}
		return issues, nil
	}

	if !v.features.GraphSpecV2.EnabledForTenant(tenantID) {
		for _, n := range spec.Nodes {
			if IsOrchestrationNode(n.Type) {
				issues = append(issues, Issue{
					NodeID:  n.ID,
					Message: "graph spec v2 is disabled for this tenant",
				})
			}
		}
		return issues, nil
	}

	hasOrchestration := false
	for _, n := range spec.Nodes {
		if IsOrchestrationNode(n.Type) {
			hasOrchestration = true
			break
		}
	}
	if !hasOrchestration {
		return issues, nil
	}

	tx, err := v.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	snap, err := v.policy.GetSnapshot(ctx, tx, tenantID, orchestratorAgentID)
	if err != nil {
		return nil, err
	}
	allowlist, err := loadAllowlist(ctx, tx, tenantID, orchestratorAgentID)
	if err != nil {
		return nil, err
	}

	totalFanout := 0
	for i := range spec.Nodes {
		n := &spec.Nodes[i]
		switch n.Type {
		case NodeTypeSpawnRun:
			issues = append(issues, v.checkSpawnTargets(ctx, tx, snap, allowlist, n, spawnRunTargets(n))...)
		case NodeTypeSpawnGroup:
			issues = append(issues, v.checkSpawnGroupNode(ctx, tx, snap, allowlist, n)...)
		case NodeTypeJoin:
			issues = append(issues, checkJoinNode(n, nodesByID)...)
		}
		totalFanout += n.fanout()
	}

	if totalFanout > snap.MaxFanout {
		issues = append(issues, Issue{
			Message: fmt.Sprintf(
				"graph declares %d children under one parent, max_fanout is %d",
				totalFanout, snap.MaxFanout),
		})
	}
	if totalFanout > snap.MaxChildrenTotal {
		issues = append(issues, Issue{
			Message: fmt.Sprintf(
				"graph declares %d children, max_children_total is %d",
				totalFanout, snap.MaxChildrenTotal),
		})
	}

	if acyclic {
		if chain := longestSpawnChain(nodesByID, adjacency); chain > snap.MaxDepth {
			issues = append(issues, Issue{
				Message: fmt.Sprintf(
					"graph declares a spawn chain of depth %d, max_depth is %d",
					chain, snap.MaxDepth),
			})
		}
	}

	return issues, nil
}

// checkSpawnGroupNode validates a spawn_group node: targets, join mode,
// quorum bounds, and every target against policy.
func (v *Validator) checkSpawnGroupNode(
	ctx context.Context,
	tx *ent.Tx,
	snap *models.PolicySnapshot,
	allowlist []*ent.OrchestratorTarget,
	n *Node,
) []Issue {
	var issues []Issue

	if len(n.Targets) == 0 {
		issues = append(issues, Issue{NodeID: n.ID, Message: "spawn_group declares no targets"})
	}
	if n.JoinMode != "" && !models.JoinMode(n.JoinMode).IsValid() {
		issues = append(issues, Issue{NodeID: n.ID, Message: fmt.Sprintf("unknown join mode %q", n.JoinMode)})
	}
	if n.JoinMode == string(models.JoinModeQuorum) {
		switch {
		case n.QuorumThreshold == nil || *n.QuorumThreshold < 1:
			issues = append(issues, Issue{NodeID: n.ID, Message: "quorum join mode requires a positive quorum_threshold"})
		case *n.QuorumThreshold > len(n.Targets):
			issues = append(issues, Issue{NodeID: n.ID, Message: "quorum_threshold exceeds the declared member count"})
		}
	}
	if len(n.Targets) > snap.MaxFanout {
		issues = append(issues, Issue{
			NodeID:  n.ID,
			Message: fmt.Sprintf("node declares %d targets, max_fanout is %d", len(n.Targets), snap.MaxFanout),
		})
	}

	issues = append(issues, v.checkSpawnTargets(ctx, tx, snap, allowlist, n, n.Targets)...)
	return issues
}

// checkSpawnTargets validates the targets and scope subset of one spawn
// node against the resolved policy snapshot and allowlist.
func (v *Validator) checkSpawnTargets(
	ctx context.Context,
	tx *ent.Tx,
	snap *models.PolicySnapshot,
	allowlist []*ent.OrchestratorTarget,
	n *Node,
	targets []TargetRef,
) []Issue {
	var issues []Issue

	if len(n.ScopeSubset) == 0 {
		issues = append(issues, Issue{NodeID: n.ID, Message: "scope_subset must not be empty"})
	} else if len(snap.AllowedScopeSubset) > 0 {
		for _, scope := range n.ScopeSubset {
			if !containsString(snap.AllowedScopeSubset, scope) {
				issues = append(issues, Issue{
					NodeID:  n.ID,
					Message: fmt.Sprintf("scope %q is outside the policy's allowed_scope_subset", scope),
				})
			}
		}
	}

	for _, t := range targets {
		if (t.TargetAgentID == "") == (t.TargetAgentSlug == "") {
			issues = append(issues, Issue{
				NodeID:  n.ID,
				Message: "target must set exactly one of target_agent_id or target_agent_slug",
			})
			continue
		}

		target, err := resolveTarget(ctx, tx, snap.TenantID, t)
		if err != nil {
			issues = append(issues, Issue{
				NodeID:  n.ID,
				Message: fmt.Sprintf("target %s is unknown", targetLabel(t)),
			})
			continue
		}

		if snap.EnforcePublishedOnly && target.Status != entagent.StatusPublished {
			issues = append(issues, Issue{
				NodeID:  n.ID,
				Message: fmt.Sprintf("target agent %s is not published", target.Slug),
			})
		}
		if len(allowlist) == 0 {
			issues = append(issues, Issue{
				NodeID:  n.ID,
				Message: "orchestrator has no target allowlist entries",
			})
		} else if !allowlistMatches(allowlist, target) {
			issues = append(issues, Issue{
				NodeID:  n.ID,
				Message: fmt.Sprintf("target agent %s is not on the orchestrator's allowlist", target.Slug),
			})
		}
	}

	return issues
}

// checkJoinNode validates a join node's linkage to exactly one upstream
// spawn_group node, so the group contract is known at compile time.
func checkJoinNode(n *Node, nodesByID map[string]*Node) []Issue {
	var issues []Issue

	if n.GroupNodeID == "" {
		return append(issues, Issue{NodeID: n.ID, Message: "join node must reference a spawn_group node via group_node_id"})
	}
	groupNode, ok := nodesByID[n.GroupNodeID]
	if !ok {
		return append(issues, Issue{
			NodeID:  n.ID,
			Message: fmt.Sprintf("join references unknown node %q", n.GroupNodeID),
		})
	}
	if groupNode.Type != NodeTypeSpawnGroup {
		return append(issues, Issue{
			NodeID:  n.ID,
			Message: fmt.Sprintf("join references node %q which is not a spawn_group", n.GroupNodeID),
		})
	}

	if n.JoinMode != "" && !models.JoinMode(n.JoinMode).IsValid() {
		issues = append(issues, Issue{NodeID: n.ID, Message: fmt.Sprintf("unknown join mode %q", n.JoinMode)})
	}
	mode := n.JoinMode
	if mode == "" {
		mode = groupNode.JoinMode
	}
	if mode == string(models.JoinModeQuorum) {
		threshold := n.QuorumThreshold
		if threshold == nil {
			threshold = groupNode.QuorumThreshold
		}
		switch {
		case threshold == nil || *threshold < 1:
			issues = append(issues, Issue{NodeID: n.ID, Message: "quorum join mode requires a positive quorum_threshold"})
		case len(groupNode.Targets) > 0 && *threshold > len(groupNode.Targets):
			issues = append(issues, Issue{NodeID: n.ID, Message: "quorum_threshold exceeds the referenced group's member count"})
		}
	}

	return issues
}

// loadAllowlist loads the orchestrator's allowlist rows once per graph.
func loadAllowlist(ctx context.Context, tx *ent.Tx, tenantID, orchestratorAgentID string) ([]*ent.OrchestratorTarget, error) {
	entries, err := tx.OrchestratorTarget.Query().
		Where(
			orchestratortarget.TenantID(tenantID),
			orchestratortarget.OrchestratorAgentID(orchestratorAgentID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load target allowlist: %w", err)
	}
	return entries, nil
}

// resolveTarget resolves one target reference within a tenant.
func resolveTarget(ctx context.Context, tx *ent.Tx, tenantID string, t TargetRef) (*ent.Agent, error) {
	q := tx.Agent.Query().Where(entagent.TenantID(tenantID))
	if t.TargetAgentID != "" {
		q = q.Where(entagent.ID(t.TargetAgentID))
	} else {
		q = q.Where(entagent.Slug(t.TargetAgentSlug))
	}
	return q.Only(ctx)
}

// targetLabel renders a target reference for issue messages.
func targetLabel(t TargetRef) string {
	if t.TargetAgentID != "" {
		return "id=" + t.TargetAgentID
	}
	return "slug=" + t.TargetAgentSlug
}

// allowlistMatches reports whether a target agent matches any allowlist
// entry by id or slug.
func allowlistMatches(entries []*ent.OrchestratorTarget, target *ent.Agent) bool {
	for _, e := range entries {
		if e.TargetAgentID != nil && *e.TargetAgentID == target.ID {
			return true
		}
		if e.TargetAgentSlug != nil && *e.TargetAgentSlug == target.Slug {
			return true
		}
	}
	return false
}

// spawnRunTargets adapts a spawn_run node's single target to the shared
// target checks.
func spawnRunTargets(n *Node) []TargetRef {
	if n.Target == nil {
		return []TargetRef{{}}
	}
	return []TargetRef{*n.Target}
}

// findCycle runs a DFS over the graph and returns a node on a cycle, or
// "" when the graph is acyclic.
func findCycle(nodes map[string]*Node, adjacency map[string][]string) string {
	const (
		unvisited = 0
		inStack   = 1
		done      = 2
	)
	state := make(map[string]int, len(nodes))

	var visit func(id string) string
	visit = func(id string) string {
		state[id] = inStack
		for _, next := range adjacency[id] {
			switch state[next] {
			case inStack:
				return next
			case unvisited:
				if hit := visit(next); hit != "" {
					return hit
				}
			}
		}
		state[id] = done
		return ""
	}

	for id := range nodes {
		if state[id] == unvisited {
			if hit := visit(id); hit != "" {
				return hit
			}
		}
	}
	return ""
}

// longestSpawnChain returns the maximum number of spawn nodes on any path
// through the DAG. Spawned agents may orchestrate further, so a chain of
// spawn nodes over-approximates the depth the subtree can reach.
func longestSpawnChain(nodes map[string]*Node, adjacency map[string][]string) int {
	memo := make(map[string]int, len(nodes))

	var visit func(id string) int
	visit = func(id string) int {
		if d, ok := memo[id]; ok {
			return d
		}
		best := 0
		for _, next := range adjacency[id] {
			if d := visit(next); d > best {
				best = d
			}
		}
		if n := nodes[id]; n != nil && (n.Type == NodeTypeSpawnRun || n.Type == NodeTypeSpawnGroup) {
			best++
		}
		memo[id] = best
		return best
	}

	max := 0
	for id := range nodes {
		if d := visit(id); d > max {
			max = d
		}
	}
	return max
}

// containsString reports membership in a small string set.
func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
