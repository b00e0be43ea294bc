package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/agentforge/arc/ent"
	"github.com/agentforge/arc/ent/groupmember"
	"github.com/agentforge/arc/ent/orchestrationgroup"
	"github.com/agentforge/arc/ent/run"
	"github.com/agentforge/arc/ent/workloadprincipal"
	"github.com/agentforge/arc/pkg/config"
	"github.com/agentforge/arc/pkg/models"
	"github.com/google/uuid"
)

// Launcher hands committed child runs to the background execution path.
// Implementations must not block; the queue pool also discovers queued
// runs by polling, so a missed nudge is only a latency cost.
type Launcher interface {
	Launch(runID string)
}

// SpawnService implements spawn_run and spawn_group: policy-checked,
// idempotent creation of child runs under a row-locked parent. All writes
// of one call happen in a single transaction; a failed per-child check
// rolls back the whole call so no partial children are ever visible.
type SpawnService struct {
	client   *ent.Client
	identity *IdentityService
	policy   *PolicyService
	features *config.Features
	launcher Launcher
}

// NewSpawnService creates a new SpawnService. launcher may be nil
// (background launches then rely on queue polling alone).
func NewSpawnService(
	client *ent.Client,
	identity *IdentityService,
	policy *PolicyService,
	features *config.Features,
	launcher Launcher,
) *SpawnService {
	return &SpawnService{
		client:   client,
		identity: identity,
		policy:   policy,
		features: features,
		launcher: launcher,
	}
}

// SpawnRun spawns a single child run under the caller run. Replays with
// the same idempotency key return the existing child without
// re-authorizing, re-counting, or re-inserting.
func (s *SpawnService) SpawnRun(ctx context.Context, caller models.Caller, req models.SpawnRunRequest) (*models.SpawnRunResult, error) {
	if req.CallerRunID == "" {
		return nil, NewValidationError("caller_run_id", "required")
	}
	if req.IdempotencyKey == "" {
		return nil, NewValidationError("idempotency_key", "required")
	}
	if (req.TargetAgentID == "") == (req.TargetAgentSlug == "") {
		return nil, NewValidationError("target", "exactly one of target_agent_id or target_agent_slug is required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	parent, err := s.authorizeCaller(ctx, tx, caller, req.CallerRunID)
	if err != nil {
		return nil, err
	}

	// Replay fast path: the parent is locked, so this read cannot race a
	// concurrent insert under the same parent.
	existing, err := tx.Run.Query().
		Where(
			run.ParentRunID(parent.ID),
			run.SpawnKey(req.IdempotencyKey),
		).
		Only(ctx)
	if err == nil {
		return &models.SpawnRunResult{SpawnedRunIDs: []string{existing.ID}, Idempotent: true}, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check spawn key: %w", err)
	}

	target, err := resolveAgent(ctx, tx, parent.TenantID, req.TargetAgentID, req.TargetAgentSlug)
	if err != nil {
		return nil, err
	}

	snap, err := s.policy.GetSnapshot(ctx, tx, parent.TenantID, parent.AgentID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.AssertTargetAllowed(ctx, tx, snap, target); err != nil {
		return nil, err
	}

	parentGrant, err := loadActiveGrant(ctx, tx, parent.DelegationGrantID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.AssertScopeSubset(req.ScopeSubset, parentGrant.EffectiveScopes, snap); err != nil {
		return nil, err
	}
	if err := s.policy.AssertSpawnLimits(ctx, tx, snap, parent.RootRunID, parent.ID, parent.Depth, 1); err != nil {
		return nil, err
	}

	childID, err := s.spawnChild(ctx, tx, parent, parentGrant, target, snap, childSpec{
		input:        req.Input,
		spawnKey:     req.IdempotencyKey,
		parentNodeID: req.ParentNodeID,
		scopeSubset:  req.ScopeSubset,
		timeoutS:     req.TimeoutS,
	})
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a race with a non-locking writer: the transaction is
			// aborted, so look up the winner outside it.
			_ = tx.Rollback()
			winner, qerr := s.client.Run.Query().
				Where(
					run.ParentRunID(parent.ID),
					run.SpawnKey(req.IdempotencyKey),
				).
				Only(ctx)
			if qerr != nil {
				return nil, fmt.Errorf("failed to resolve idempotent spawn: %w", qerr)
			}
			return &models.SpawnRunResult{SpawnedRunIDs: []string{winner.ID}, Idempotent: true}, nil
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit spawn: %w", err)
	}

	slog.Info("Spawned child run",
		"parent_run_id", parent.ID, "child_run_id", childID, "target_agent", target.ID)

	if req.StartBackground && s.launcher != nil {
		s.launcher.Launch(childID)
	}

	return &models.SpawnRunResult{SpawnedRunIDs: []string{childID}, Idempotent: false}, nil
}

// SpawnGroup spawns an orchestration group of sibling runs. Per-child
// idempotency keys are derived as "<prefix>:<ordinal>", and the group
// itself is idempotent on (parent, parent_node_id, prefix): replays return
// the existing group and its member run ids.
func (s *SpawnService) SpawnGroup(ctx context.Context, caller models.Caller, req models.SpawnGroupRequest) (*models.SpawnGroupResult, error) {
	if req.CallerRunID == "" {
		return nil, NewValidationError("caller_run_id", "required")
	}
	if req.IdempotencyKeyPrefix == "" {
		return nil, NewValidationError("idempotency_key_prefix", "required")
	}
	if len(req.Targets) == 0 {
		return nil, NewValidationError("targets", "at least one spawn target is required")
	}
	if !req.JoinMode.IsValid() {
		return nil, NewValidationError("join_mode", fmt.Sprintf("unknown join mode %q", req.JoinMode))
	}
	if req.JoinMode == models.JoinModeQuorum {
		if req.QuorumThreshold == nil || *req.QuorumThreshold < 1 {
			return nil, NewValidationError("quorum_threshold", "quorum join mode requires a positive threshold")
		}
		if *req.QuorumThreshold > len(req.Targets) {
			return nil, NewValidationError("quorum_threshold", "threshold exceeds member count")
		}
	}
	if req.FailurePolicy != "" && !req.FailurePolicy.IsValid() {
		return nil, NewValidationError("failure_policy", fmt.Sprintf("unknown failure policy %q", req.FailurePolicy))
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	parent, err := s.authorizeCaller(ctx, tx, caller, req.CallerRunID)
	if err != nil {
		return nil, err
	}

	// Group replay fast path.
	groupQuery := tx.OrchestrationGroup.Query().
		Where(
			orchestrationgroup.OrchestratorRunID(parent.ID),
			orchestrationgroup.IdempotencyKeyPrefix(req.IdempotencyKeyPrefix),
		)
	if req.ParentNodeID != "" {
		groupQuery = groupQuery.Where(orchestrationgroup.ParentNodeID(req.ParentNodeID))
	} else {
		groupQuery = groupQuery.Where(orchestrationgroup.ParentNodeIDIsNil())
	}
	existingGroup, err := groupQuery.Only(ctx)
	if err == nil {
		memberRunIDs, merr := groupMemberRunIDs(ctx, tx, existingGroup.ID)
		if merr != nil {
			return nil, merr
		}
		return &models.SpawnGroupResult{
			OrchestrationGroupID: existingGroup.ID,
			SpawnedRunIDs:        memberRunIDs,
			Idempotent:           true,
		}, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check group idempotency: %w", err)
	}

	snap, err := s.policy.GetSnapshot(ctx, tx, parent.TenantID, parent.AgentID)
	if err != nil {
		return nil, err
	}

	parentGrant, err := loadActiveGrant(ctx, tx, parent.DelegationGrantID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.AssertScopeSubset(req.ScopeSubset, parentGrant.EffectiveScopes, snap); err != nil {
		return nil, err
	}
	if err := s.policy.AssertSpawnLimits(ctx, tx, snap, parent.RootRunID, parent.ID, parent.Depth, len(req.Targets)); err != nil {
		return nil, err
	}

	failurePolicy := orchestrationgroup.FailurePolicy(snap.DefaultFailurePolicy)
	if req.FailurePolicy != "" {
		failurePolicy = orchestrationgroup.FailurePolicy(req.FailurePolicy)
	}
	timeoutS := snap.JoinTimeoutS
	if req.TimeoutS != nil {
		timeoutS = *req.TimeoutS
	}

	snapJSON, err := policySnapshotJSON(snap)
	if err != nil {
		return nil, err
	}

	groupID := uuid.New().String()
	groupCreate := tx.OrchestrationGroup.Create().
		SetID(groupID).
		SetTenantID(parent.TenantID).
		SetOrchestratorRunID(parent.ID).
		SetFailurePolicy(failurePolicy).
		SetJoinMode(orchestrationgroup.JoinMode(req.JoinMode)).
		SetTimeoutS(timeoutS).
		SetPolicySnapshot(snapJSON).
		SetIdempotencyKeyPrefix(req.IdempotencyKeyPrefix)
	if req.ParentNodeID != "" {
		groupCreate.SetParentNodeID(req.ParentNodeID)
	}
	if req.QuorumThreshold != nil {
		groupCreate.SetQuorumThreshold(*req.QuorumThreshold)
	}

	if _, err := groupCreate.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrStoreConflict
		}
		return nil, fmt.Errorf("failed to create orchestration group: %w", err)
	}

	spawnedIDs := make([]string, 0, len(req.Targets))
	for ordinal, t := range req.Targets {
		if (t.TargetAgentID == "") == (t.TargetAgentSlug == "") {
			return nil, NewValidationError("targets",
				fmt.Sprintf("target %d: exactly one of target_agent_id or target_agent_slug is required", ordinal))
		}

		target, err := resolveAgent(ctx, tx, parent.TenantID, t.TargetAgentID, t.TargetAgentSlug)
		if err != nil {
			return nil, err
		}
		if err := s.policy.AssertTargetAllowed(ctx, tx, snap, target); err != nil {
			return nil, err
		}

		childID, err := s.spawnChild(ctx, tx, parent, parentGrant, target, snap, childSpec{
			input:        t.Input,
			spawnKey:     fmt.Sprintf("%s:%d", req.IdempotencyKeyPrefix, ordinal),
			parentNodeID: req.ParentNodeID,
			scopeSubset:  req.ScopeSubset,
			timeoutS:     req.TimeoutS,
			groupID:      groupID,
		})
		if err != nil {
			// The group is atomic: any per-child failure rolls back
			// everything, including the group row and earlier siblings.
			return nil, err
		}

		err = tx.GroupMember.Create().
			SetID(uuid.New().String()).
			SetGroupID(groupID).
			SetRunID(childID).
			SetOrdinal(ordinal).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create group member: %w", err)
		}

		spawnedIDs = append(spawnedIDs, childID)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit group spawn: %w", err)
	}

	slog.Info("Spawned orchestration group",
		"parent_run_id", parent.ID, "group_id", groupID, "members", len(spawnedIDs))

	if req.StartBackground && s.launcher != nil {
		for _, id := range spawnedIDs {
			s.launcher.Launch(id)
		}
	}

	return &models.SpawnGroupResult{
		OrchestrationGroupID: groupID,
		SpawnedRunIDs:        spawnedIDs,
		Idempotent:           false,
	}, nil
}

// childSpec carries the per-child parameters of one spawn.
type childSpec struct {
	input        map[string]any
	spawnKey     string
	parentNodeID string
	scopeSubset  []string
	timeoutS     *int
	groupID      string
}

// spawnChild creates the child's principal, derived grant, and run row
// inside the caller's transaction.
func (s *SpawnService) spawnChild(
	ctx context.Context,
	tx *ent.Tx,
	parent *ent.Run,
	parentGrant *ent.DelegationGrant,
	target *ent.Agent,
	snap *models.PolicySnapshot,
	spec childSpec,
) (string, error) {
	principal, err := s.identity.EnsurePrincipal(
		ctx, tx, parent.TenantID, target.Slug, workloadprincipal.TypeAgent, spec.scopeSubset,
	)
	if err != nil {
		return "", err
	}

	grant, err := s.identity.DeriveChildGrant(ctx, tx, parentGrant, principal.ID, spec.scopeSubset, snap)
	if err != nil {
		return "", err
	}

	childID := uuid.New().String()
	create := tx.Run.Create().
		SetID(childID).
		SetTenantID(parent.TenantID).
		SetAgentID(target.ID).
		SetInitiatorUserID(parent.InitiatorUserID).
		SetWorkloadPrincipalID(principal.ID).
		SetDelegationGrantID(grant.ID).
		SetRootRunID(parent.RootRunID).
		SetParentRunID(parent.ID).
		SetDepth(parent.Depth + 1).
		SetSpawnKey(spec.spawnKey)
	if spec.parentNodeID != "" {
		create.SetParentNodeID(spec.parentNodeID)
	}
	if spec.groupID != "" {
		create.SetOrchestrationGroupID(spec.groupID)
	}
	if spec.input != nil {
		create.SetInput(spec.input)
	}
	if spec.timeoutS != nil {
		create.SetTimeoutS(*spec.timeoutS)
	}

	if _, err := create.Save(ctx); err != nil {
		return "", err
	}

	if err := tx.DelegationGrant.UpdateOneID(grant.ID).SetRunID(childID).Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to bind child grant: %w", err)
	}

	return childID, nil
}

// authorizeCaller locks the caller run and applies the feature gate and
// tenant checks shared by spawn_run and spawn_group.
func (s *SpawnService) authorizeCaller(ctx context.Context, tx *ent.Tx, caller models.Caller, callerRunID string) (*ent.Run, error) {
	parent, err := loadRunForUpdate(ctx, tx, callerRunID)
	if err != nil {
		return nil, err
	}
	if !s.features.RuntimeOrchestration.EnabledForTenant(parent.TenantID) {
		return nil, ErrFeatureDisabled
	}
	if caller.TenantID != "" && caller.TenantID != parent.TenantID {
		return nil, ErrTenantMismatch
	}
	return parent, nil
}

// loadActiveGrant loads a delegation grant and requires it to be active.
func loadActiveGrant(ctx context.Context, tx *ent.Tx, grantID string) (*ent.DelegationGrant, error) {
	grant, err := tx.DelegationGrant.Get(ctx, grantID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load grant: %w", err)
	}
	if grant.Status != "active" {
		return nil, NewPolicyError(ReasonInvalidScope, "caller's delegation grant is %s", grant.Status)
	}
	return grant, nil
}

// groupMemberRunIDs returns the member run ids of a group in ordinal order.
func groupMemberRunIDs(ctx context.Context, tx *ent.Tx, groupID string) ([]string, error) {
	members, err := tx.GroupMember.Query().
		Where(groupmember.GroupID(groupID)).
		Order(ent.Asc(groupmember.FieldOrdinal)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load group members: %w", err)
	}
	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.RunID)
	}
	return ids, nil
}

// policySnapshotJSON converts a snapshot to the JSON object stored on the
// group row.
func policySnapshotJSON(snap *models.PolicySnapshot) (map[string]interface{}, error) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal policy snapshot: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal policy snapshot: %w", err)
	}
	return m, nil
}
