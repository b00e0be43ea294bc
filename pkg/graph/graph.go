package graph

// Node types an agent graph may contain. Orchestration node types are
// only legal in spec_version 2.0 graphs.
const (
	NodeTypeSpawnRun          = "spawn_run"
	NodeTypeSpawnGroup        = "spawn_group"
	NodeTypeJoin              = "join"
	NodeTypeCancelSubtree     = "cancel_subtree"
	NodeTypeEvaluateAndReplan = "evaluate_and_replan"
)

// SpecVersionV2 is the graph spec version that admits orchestration nodes.
const SpecVersionV2 = "2.0"

// orchestrationNodeTypes is the set of node types gated behind v2.
var orchestrationNodeTypes = map[string]bool{
	NodeTypeSpawnRun:          true,
	NodeTypeSpawnGroup:        true,
	NodeTypeJoin:              true,
	NodeTypeCancelSubtree:     true,
	NodeTypeEvaluateAndReplan: true,
}

// TargetRef names one spawn target by agent id or slug (exactly one set).
type TargetRef struct {
	TargetAgentID   string `json:"target_agent_id,omitempty" yaml:"target_agent_id,omitempty"`
	TargetAgentSlug string `json:"target_agent_slug,omitempty" yaml:"target_agent_slug,omitempty"`
}

// Node is one node of an agent graph. The orchestration fields are only
// meaningful for the matching node types and ignored otherwise.
type Node struct {
	ID   string `json:"id" yaml:"id"`
	Type string `json:"type" yaml:"type"`

	// spawn_run
	Target *TargetRef `json:"target,omitempty" yaml:"target,omitempty"`

	// spawn_group
	Targets []TargetRef `json:"targets,omitempty" yaml:"targets,omitempty"`

	// spawn_run + spawn_group
	ScopeSubset []string `json:"scope_subset,omitempty" yaml:"scope_subset,omitempty"`

	// spawn_group + join
	JoinMode        string `json:"join_mode,omitempty" yaml:"join_mode,omitempty"`
	QuorumThreshold *int   `json:"quorum_threshold,omitempty" yaml:"quorum_threshold,omitempty"`
	TimeoutS        *int   `json:"timeout_s,omitempty" yaml:"timeout_s,omitempty"`

	// join: the upstream spawn_group node whose group this join awaits.
	GroupNodeID string `json:"group_node_id,omitempty" yaml:"group_node_id,omitempty"`
}

// Edge is a directed edge between two nodes of the graph.
type Edge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Spec is an agent graph as stored on the agent row.
type Spec struct {
	SpecVersion string `json:"spec_version" yaml:"spec_version"`
	Nodes       []Node `json:"nodes" yaml:"nodes"`
	Edges       []Edge `json:"edges" yaml:"edges"`
}

// IsOrchestrationNode reports whether a node type is an orchestration
// primitive.
func IsOrchestrationNode(nodeType string) bool {
	return orchestrationNodeTypes[nodeType]
}

// fanout returns the number of children a node declares it will spawn.
func (n *Node) fanout() int {
	switch n.Type {
	case NodeTypeSpawnRun:
		return 1
	case NodeTypeSpawnGroup:
		return len(n.Targets)
	default:
		return 0
	}
}
