package models

// CancelSubtreeRequest is the input of the cancel_subtree operation.
type CancelSubtreeRequest struct {
	CallerRunID string `json:"caller_run_id"`
	RunID       string `json:"run_id"`
	IncludeRoot bool   `json:"include_root"`
	Reason      string `json:"reason,omitempty"`
}

// CancelSubtreeResult is the output of the cancel_subtree operation.
type CancelSubtreeResult struct {
	CancelledCount int `json:"cancelled_count"`
}

// ReplanSummary is the output of the evaluate_and_replan operation,
// computed over the direct children of a run. The caller's graph decides
// whether to spawn a replacement plan.
type ReplanSummary struct {
	FailedCount    int  `json:"failed_count"`
	CompletedCount int  `json:"completed_count"`
	RunningCount   int  `json:"running_count"`
	NeedsReplan    bool `json:"needs_replan"`
}

// TreeNode is one run in a query_tree result.
type TreeNode struct {
	RunID       string `json:"run_id"`
	ParentRunID string `json:"parent,omitempty"`
	Depth       int    `json:"depth"`
	Status      string `json:"status"`
}

// TreeResult is the output of the query_tree operation.
type TreeResult struct {
	Nodes []TreeNode `json:"nodes"`
}
