package services

import (
	"context"
	"fmt"
	"time"

	"github.com/agentforge/arc/ent"
	entagent "github.com/agentforge/arc/ent/agent"
	"github.com/agentforge/arc/ent/run"
	"github.com/agentforge/arc/ent/workloadprincipal"
	"github.com/agentforge/arc/pkg/models"
	"github.com/google/uuid"
)

// Terminal run statuses (I4: once terminal, a run's status never changes).
var terminalRunStatuses = []run.Status{
	run.StatusCompleted,
	run.StatusFailed,
	run.StatusCancelled,
	run.StatusTimedOut,
}

// isTerminalRunStatus reports whether a run status is terminal.
func isTerminalRunStatus(s run.Status) bool {
	for _, t := range terminalRunStatuses {
		if s == t {
			return true
		}
	}
	return false
}

// RunService owns the run store primitives: root run creation, loads,
// lineage counts, monotone status transitions, and subtree walks.
type RunService struct {
	client   *ent.Client
	identity *IdentityService
}

// NewRunService creates a new RunService
func NewRunService(client *ent.Client, identity *IdentityService) *RunService {
	return &RunService{client: client, identity: identity}
}

// CreateRootRun creates a root run (depth 0, root_run_id = id) together
// with its workload principal and delegation grant, in one transaction.
func (s *RunService) CreateRootRun(ctx context.Context, req models.CreateRunRequest) (*ent.Run, error) {
	if req.TenantID == "" {
		return nil, NewValidationError("tenant_id", "required")
	}
	if req.AgentID == "" && req.AgentSlug == "" {
		return nil, NewValidationError("agent_id", "agent_id or agent_slug is required")
	}
	if req.InitiatorUserID == "" {
		return nil, NewValidationError("initiator_user_id", "required")
	}
	if len(req.RequestedScopes) == 0 {
		return nil, NewValidationError("requested_scopes", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	agentRow, err := resolveAgent(ctx, tx, req.TenantID, req.AgentID, req.AgentSlug)
	if err != nil {
		return nil, err
	}

	principal, err := s.identity.EnsurePrincipal(
		ctx, tx, req.TenantID, agentRow.Slug, workloadprincipal.TypeAgent, req.RequestedScopes,
	)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(req.GrantTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	grant, err := s.identity.CreateDelegationGrant(
		ctx, tx, req.TenantID, principal.ID, req.InitiatorUserID, req.RequestedScopes, ttl,
	)
	if err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	create := tx.Run.Create().
		SetID(runID).
		SetTenantID(req.TenantID).
		SetAgentID(agentRow.ID).
		SetInitiatorUserID(req.InitiatorUserID).
		SetWorkloadPrincipalID(principal.ID).
		SetDelegationGrantID(grant.ID).
		SetRootRunID(runID).
		SetDepth(0)
	if req.Input != nil {
		create.SetInput(req.Input)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create root run: %w", err)
	}

	if err := tx.DelegationGrant.UpdateOneID(grant.ID).SetRunID(runID).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to bind grant to run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit root run: %w", err)
	}

	return created, nil
}

// GetRun loads a run by id.
func (s *RunService) GetRun(ctx context.Context, runID string) (*ent.Run, error) {
	r, err := s.client.Run.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	return r, nil
}

// loadRunForUpdate loads a run inside tx with a row lock. Spawn calls lock
// the parent so concurrent spawns under it serialize and fanout counts
// stay exact.
func loadRunForUpdate(ctx context.Context, tx *ent.Tx, runID string) (*ent.Run, error) {
	r, err := tx.Run.Query().
		Where(run.ID(runID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock run: %w", err)
	}
	return r, nil
}

// resolveAgent resolves a target agent by id or slug within a tenant.
func resolveAgent(ctx context.Context, tx *ent.Tx, tenantID, agentID, agentSlug string) (*ent.Agent, error) {
	q := tx.Agent.Query().Where(entagent.TenantID(tenantID))
	switch {
	case agentID != "":
		q = q.Where(entagent.ID(agentID))
	case agentSlug != "":
		q = q.Where(entagent.Slug(agentSlug))
	default:
		return nil, NewValidationError("target", "target_agent_id or target_agent_slug is required")
	}

	a, err := q.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve agent: %w", err)
	}
	return a, nil
}

// UpdateStatus transitions a run's status, enforcing terminal monotonicity:
// a terminal run is never moved to another status. started_at and
// completed_at are stamped on the matching transitions.
func (s *RunService) UpdateStatus(ctx context.Context, runID string, newStatus run.Status, reason string) error {
	now := time.Now()

	update := s.client.Run.Update().
		Where(
			run.ID(runID),
			run.StatusNotIn(terminalRunStatuses...),
		).
		SetStatus(newStatus)
	if reason != "" {
		update.SetStatusReason(reason)
	}
	if newStatus == run.StatusRunning {
		update.SetStartedAt(now)
	}
	if isTerminalRunStatus(newStatus) {
		update.SetCompletedAt(now)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update run status: %w", err)
	}
	if n == 0 {
		existing, err := s.client.Run.Get(ctx, runID)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load run: %w", err)
		}
		if existing.Status == newStatus {
			return nil
		}
		return ErrTerminalStatus
	}
	return nil
}

// CountChildren returns the number of direct children of a run.
func (s *RunService) CountChildren(ctx context.Context, parentRunID string) (int, error) {
	n, err := s.client.Run.Query().
		Where(run.ParentRunID(parentRunID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count children: %w", err)
	}
	return n, nil
}

// CountDescendants returns the number of runs under a root, excluding the
// root itself.
func (s *RunService) CountDescendants(ctx context.Context, rootRunID string) (int, error) {
	n, err := s.client.Run.Query().
		Where(
			run.RootRunID(rootRunID),
			run.IDNEQ(rootRunID),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count descendants: %w", err)
	}
	return n, nil
}

// PruneTerminalRuns deletes terminal runs that completed before the
// cutoff. Lineage counts only matter for live subtrees, so pruning old
// terminal rows does not affect policy enforcement.
func (s *RunService) PruneTerminalRuns(ctx context.Context, before time.Time) (int, error) {
	n, err := s.client.Run.Delete().
		Where(
			run.StatusIn(terminalRunStatuses...),
			run.CompletedAtLT(before),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune terminal runs: %w", err)
	}
	return n, nil
}

// bfsSubtree collects a run's subtree breadth-first over the
// (parent_run_id, created_at) index. The starting run is included iff
// includeRoot. Works inside the caller's transaction.
func bfsSubtree(ctx context.Context, tx *ent.Tx, startRunID string, includeRoot bool) ([]*ent.Run, error) {
	var result []*ent.Run

	if includeRoot {
		root, err := tx.Run.Query().Where(run.ID(startRunID)).Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to load subtree root: %w", err)
		}
		result = append(result, root)
	}

	frontier := []string{startRunID}
	for len(frontier) > 0 {
		children, err := tx.Run.Query().
			Where(run.ParentRunIDIn(frontier...)).
			Order(ent.Asc(run.FieldParentRunID), ent.Asc(run.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load subtree level: %w", err)
		}
		if len(children) == 0 {
			break
		}
		result = append(result, children...)
		frontier = frontier[:0]
		for _, c := range children {
			frontier = append(frontier, c.ID)
		}
	}

	return result, nil
}

// QueryTree returns the subtree of a run (root included) as flat nodes.
func (s *RunService) QueryTree(ctx context.Context, caller models.Caller, runID string) (*models.TreeResult, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	root, err := tx.Run.Query().Where(run.ID(runID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	if caller.TenantID != "" && caller.TenantID != root.TenantID {
		return nil, ErrTenantMismatch
	}

	runs, err := bfsSubtree(ctx, tx, runID, true)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit tree query: %w", err)
	}

	nodes := make([]models.TreeNode, 0, len(runs))
	for _, r := range runs {
		node := models.TreeNode{
			RunID:  r.ID,
			Depth:  r.Depth,
			Status: string(r.Status),
		}
		if r.ParentRunID != nil {
			node.ParentRunID = *r.ParentRunID
		}
		nodes = append(nodes, node)
	}

	return &models.TreeResult{Nodes: nodes}, nil
}
