package services

import (
	"context"
	"fmt"

	"github.com/agentforge/arc/ent"
	entagent "github.com/agentforge/arc/ent/agent"
	"github.com/agentforge/arc/ent/orchestratorpolicy"
	"github.com/agentforge/arc/ent/orchestratortarget"
	"github.com/agentforge/arc/ent/run"
	"github.com/agentforge/arc/pkg/config"
	"github.com/agentforge/arc/pkg/models"
)

// PolicyService resolves orchestrator policies and asserts spawn requests
// against them. All assertions for one spawn call run against a single
// snapshot, so a policy update mid-call cannot produce a torn decision.
type PolicyService struct {
	client   *ent.Client
	defaults *config.PolicyDefaults
}

// NewPolicyService creates a new PolicyService
func NewPolicyService(client *ent.Client, defaults *config.PolicyDefaults) *PolicyService {
	return &PolicyService{client: client, defaults: defaults}
}

// GetSnapshot returns the effective policy for (tenant, orchestrator agent).
// When no policy row exists, a defaulted snapshot is returned.
func (s *PolicyService) GetSnapshot(
	ctx context.Context,
	tx *ent.Tx,
	tenantID, orchestratorAgentID string,
) (*models.PolicySnapshot, error) {
	row, err := tx.OrchestratorPolicy.Query().
		Where(
			orchestratorpolicy.TenantID(tenantID),
			orchestratorpolicy.OrchestratorAgentID(orchestratorAgentID),
		).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to load orchestrator policy: %w", err)
		}
		return &models.PolicySnapshot{
			TenantID:             tenantID,
			OrchestratorAgentID:  orchestratorAgentID,
			EnforcePublishedOnly: s.defaults.EnforcePublishedOnly,
			DefaultFailurePolicy: s.defaults.DefaultFailurePolicy,
			MaxDepth:             s.defaults.MaxDepth,
			MaxFanout:            s.defaults.MaxFanout,
			MaxChildrenTotal:     s.defaults.MaxChildrenTotal,
			JoinTimeoutS:         s.defaults.JoinTimeoutS,
			Defaulted:            true,
		}, nil
	}

	return &models.PolicySnapshot{
		TenantID:             row.TenantID,
		OrchestratorAgentID:  row.OrchestratorAgentID,
		EnforcePublishedOnly: row.EnforcePublishedOnly,
		DefaultFailurePolicy: string(row.DefaultFailurePolicy),
		MaxDepth:             row.MaxDepth,
		MaxFanout:            row.MaxFanout,
		MaxChildrenTotal:     row.MaxChildrenTotal,
		JoinTimeoutS:         row.JoinTimeoutS,
		AllowedScopeSubset:   normalizeScopes(row.AllowedScopeSubset),
		CapabilityManifest:   row.CapabilityManifestVersion,
	}, nil
}

// AssertTargetAllowed checks a spawn target against the snapshot:
// published-only enforcement and allowlist membership by id or slug.
// An orchestrator with no allowlist rows may spawn nothing (fail-closed).
func (s *PolicyService) AssertTargetAllowed(
	ctx context.Context,
	tx *ent.Tx,
	snap *models.PolicySnapshot,
	target *ent.Agent,
) error {
	if snap.EnforcePublishedOnly && target.Status != entagent.StatusPublished {
		return NewPolicyError(ReasonTargetNotPublished,
			"target agent %s is not published", target.ID)
	}

	entries, err := tx.OrchestratorTarget.Query().
		Where(
			orchestratortarget.TenantID(snap.TenantID),
			orchestratortarget.OrchestratorAgentID(snap.OrchestratorAgentID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load target allowlist: %w", err)
	}
	if len(entries) == 0 {
		return NewPolicyError(ReasonAllowlistEmpty,
			"orchestrator %s has no target allowlist entries", snap.OrchestratorAgentID)
	}

	for _, e := range entries {
		if e.TargetAgentID != nil && *e.TargetAgentID == target.ID {
			return nil
		}
		if e.TargetAgentSlug != nil && *e.TargetAgentSlug == target.Slug {
			return nil
		}
	}

	return NewPolicyError(ReasonTargetNotAllowed,
		"target agent %s (%s) is not on the orchestrator's allowlist", target.ID, target.Slug)
}

// AssertScopeSubset checks a requested child scope subset: it must be
// non-empty, covered by the caller's effective scopes, and — when the
// policy defines an allowed subset — covered by that subset too.
func (s *PolicyService) AssertScopeSubset(
	requestedSubset, callerEffective []string,
	snap *models.PolicySnapshot,
) error {
	requested := normalizeScopes(requestedSubset)
	if len(requested) == 0 {
		return NewPolicyError(ReasonScopeSubsetEmpty, "scope_subset must not be empty")
	}
	if !scopesSubset(requested, callerEffective) {
		return NewPolicyError(ReasonScopeOutOfRange,
			"scope_subset exceeds the caller's effective scopes")
	}
	if len(snap.AllowedScopeSubset) > 0 && !scopesSubset(requested, snap.AllowedScopeSubset) {
		return NewPolicyError(ReasonScopeOutsidePolicy,
			"scope_subset exceeds the orchestrator policy's allowed subset")
	}
	return nil
}

// AssertSpawnLimits checks depth, per-parent fanout, and whole-subtree
// totals for requestedChildren new children — all against one snapshot.
// Callers must hold the parent run's row lock so the counts are exact
// under concurrent spawns.
func (s *PolicyService) AssertSpawnLimits(
	ctx context.Context,
	tx *ent.Tx,
	snap *models.PolicySnapshot,
	rootRunID, parentRunID string,
	parentDepth, requestedChildren int,
) error {
	if parentDepth+1 > snap.MaxDepth {
		return NewPolicyError(ReasonMaxDepthExceeded,
			"max_depth exceeded: child depth %d > limit %d", parentDepth+1, snap.MaxDepth)
	}
	if requestedChildren < 1 {
		return NewValidationError("targets", "at least one spawn target is required")
	}
	if requestedChildren > snap.MaxFanout {
		return NewPolicyError(ReasonMaxFanoutExceeded,
			"max_fanout exceeded: %d children requested in one call, limit %d",
			requestedChildren, snap.MaxFanout)
	}

	childCount, err := tx.Run.Query().
		Where(run.ParentRunID(parentRunID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count children: %w", err)
	}
	if childCount+requestedChildren > snap.MaxFanout {
		return NewPolicyError(ReasonMaxFanoutExceeded,
			"max_fanout exceeded: parent has %d children, %d requested, limit %d",
			childCount, requestedChildren, snap.MaxFanout)
	}

	descendants, err := tx.Run.Query().
		Where(
			run.RootRunID(rootRunID),
			run.IDNEQ(rootRunID),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count descendants: %w", err)
	}
	if descendants+requestedChildren > snap.MaxChildrenTotal {
		return NewPolicyError(ReasonMaxChildrenExceeded,
			"max_children_total exceeded: subtree has %d runs, %d requested, limit %d",
			descendants, requestedChildren, snap.MaxChildrenTotal)
	}

	return nil
}
