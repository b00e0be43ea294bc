package config

// PolicyDefaults are the fallback orchestrator policy values applied when a
// tenant has no OrchestratorPolicy row for an orchestrator agent.
type PolicyDefaults struct {
	MaxDepth             int    `yaml:"max_depth"`
	MaxFanout            int    `yaml:"max_fanout"`
	MaxChildrenTotal     int    `yaml:"max_children_total"`
	JoinTimeoutS         int    `yaml:"join_timeout_s"`
	DefaultFailurePolicy string `yaml:"default_failure_policy"`
	EnforcePublishedOnly bool   `yaml:"enforce_published_only"`
}

// DefaultPolicyDefaults returns the built-in policy fallback values.
func DefaultPolicyDefaults() *PolicyDefaults {
	return &PolicyDefaults{
		MaxDepth:             3,
		MaxFanout:            8,
		MaxChildrenTotal:     32,
		JoinTimeoutS:         60,
		DefaultFailurePolicy: "best_effort",
		EnforcePublishedOnly: true,
	}
}
