package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agentforge/arc/ent"
	"github.com/agentforge/arc/ent/run"
	"github.com/agentforge/arc/pkg/config"
	"github.com/agentforge/arc/pkg/models"
)

// CancelService implements cancel_subtree and evaluate_and_replan.
type CancelService struct {
	client   *ent.Client
	features *config.Features
}

// NewCancelService creates a new CancelService
func NewCancelService(client *ent.Client, features *config.Features) *CancelService {
	return &CancelService{client: client, features: features}
}

// CancelSubtree cancels every non-terminal run in the subtree rooted at
// req.RunID (the root itself only when IncludeRoot). Terminal runs are
// left untouched, so repeated calls are idempotent: the second call
// reports zero cancellations.
func (s *CancelService) CancelSubtree(ctx context.Context, caller models.Caller, req models.CancelSubtreeRequest) (*models.CancelSubtreeResult, error) {
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Lock the subtree root so concurrent cancels of overlapping subtrees
	// serialize and each run is counted by exactly one caller.
	root, err := loadRunForUpdate(ctx, tx, req.RunID)
	if err != nil {
		return nil, err
	}
	if !s.features.RuntimeOrchestration.EnabledForTenant(root.TenantID) {
		return nil, ErrFeatureDisabled
	}
	if caller.TenantID != "" && caller.TenantID != root.TenantID {
		return nil, ErrTenantMismatch
	}

	reason := req.Reason
	if reason == "" {
		reason = "cancelled by " + req.CallerRunID
	}

	cancelled, err := cancelSubtreeTx(ctx, tx, req.RunID, req.IncludeRoot, reason)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cancellation: %w", err)
	}

	slog.Info("Cancelled subtree",
		"run_id", req.RunID, "include_root", req.IncludeRoot, "cancelled", cancelled)

	return &models.CancelSubtreeResult{CancelledCount: cancelled}, nil
}

// cancelSubtreeTx walks the subtree breadth-first and moves every
// non-terminal run to cancelled, returning how many runs changed status.
// Runs inside the caller's transaction so join decisions and their
// cancellations commit atomically.
func cancelSubtreeTx(ctx context.Context, tx *ent.Tx, startRunID string, includeRoot bool, reason string) (int, error) {
	subtree, err := bfsSubtree(ctx, tx, startRunID, includeRoot)
	if err != nil {
		return 0, err
	}
	if len(subtree) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(subtree))
	for _, r := range subtree {
		ids = append(ids, r.ID)
	}

	n, err := tx.Run.Update().
		Where(
			run.IDIn(ids...),
			run.StatusNotIn(terminalRunStatuses...),
		).
		SetStatus(run.StatusCancelled).
		SetStatusReason(reason).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel subtree runs: %w", err)
	}
	return n, nil
}

// EvaluateAndReplan summarizes the direct children of a run. Replanning
// is signalled only once the fan-out has settled: at least one child
// failed and none are still in flight.
func (s *CancelService) EvaluateAndReplan(ctx context.Context, caller models.Caller, runID string) (*models.ReplanSummary, error) {
	if runID == "" {
		return nil, NewValidationError("run_id", "required")
	}

	parent, err := s.client.Run.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	if !s.features.RuntimeOrchestration.EnabledForTenant(parent.TenantID) {
		return nil, ErrFeatureDisabled
	}
	if caller.TenantID != "" && caller.TenantID != parent.TenantID {
		return nil, ErrTenantMismatch
	}

	children, err := s.client.Run.Query().
		Where(run.ParentRunID(runID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load children: %w", err)
	}

	summary := &models.ReplanSummary{}
	for _, c := range children {
		switch {
		case c.Status == run.StatusCompleted:
			summary.CompletedCount++
		case isTerminalRunStatus(c.Status):
			summary.FailedCount++
		default:
			summary.RunningCount++
		}
	}
	summary.NeedsReplan = summary.FailedCount > 0 && summary.RunningCount == 0

	return summary, nil
}
