package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agentforge/arc/ent"
	"github.com/agentforge/arc/ent/groupmember"
	"github.com/agentforge/arc/ent/orchestrationgroup"
	"github.com/agentforge/arc/ent/run"
	"github.com/agentforge/arc/pkg/config"
	"github.com/agentforge/arc/pkg/models"
)

// JoinService implements the join operation: it evaluates an orchestration
// group's members against the join mode, propagates cancellations to
// members made redundant by the decision, and transitions the group to a
// terminal status exactly once. The group row is locked for the whole
// evaluation, so concurrent joins on one group serialize.
type JoinService struct {
	client   *ent.Client
	features *config.Features
}

// NewJoinService creates a new JoinService
func NewJoinService(client *ent.Client, features *config.Features) *JoinService {
	return &JoinService{client: client, features: features}
}

// memberState pairs a group member row with its run, in ordinal order.
type memberState struct {
	member *ent.GroupMember
	run    *ent.Run
}

// Join evaluates the group once. A terminal group replays its terminal
// payload with no further side effects; a non-terminal group either
// completes (possibly cancelling leftover members) or reports
// complete=false with status "running".
func (s *JoinService) Join(ctx context.Context, caller models.Caller, req models.JoinRequest) (*models.JoinResult, error) {
	if req.OrchestrationGroupID == "" {
		return nil, NewValidationError("orchestration_group_id", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	group, err := tx.OrchestrationGroup.Query().
		Where(orchestrationgroup.ID(req.OrchestrationGroupID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock group: %w", err)
	}

	if !s.features.RuntimeOrchestration.EnabledForTenant(group.TenantID) {
		return nil, ErrFeatureDisabled
	}
	if caller.TenantID != "" && caller.TenantID != group.TenantID {
		return nil, ErrTenantMismatch
	}
	if req.CallerRunID != "" && req.CallerRunID != group.OrchestratorRunID {
		// Only the orchestrator run that spawned the group may join it.
		return nil, ErrNotFound
	}

	members, err := loadMemberStates(ctx, tx, group.ID)
	if err != nil {
		return nil, err
	}

	mode := models.JoinMode(group.JoinMode)
	if req.Mode != "" {
		if !req.Mode.IsValid() {
			return nil, NewValidationError("mode", fmt.Sprintf("unknown join mode %q", req.Mode))
		}
		mode = req.Mode
	}

	// Terminal groups replay their decision without re-evaluating. The
	// propagated count was persisted by the deciding call, so a replay
	// reports the same payload.
	if group.Status != orchestrationgroup.StatusRunning {
		return &models.JoinResult{
			Complete:               true,
			Status:                 string(group.Status),
			Mode:                   models.JoinMode(group.JoinMode),
			Results:                memberResults(members),
			CancellationPropagated: models.CancellationPropagated{Count: group.CancellationPropagated},
		}, nil
	}

	threshold := 0
	if group.QuorumThreshold != nil {
		threshold = *group.QuorumThreshold
	}
	if req.QuorumThreshold != nil {
		threshold = *req.QuorumThreshold
	}
	if mode == models.JoinModeQuorum {
		if threshold < 1 {
			return nil, NewValidationError("quorum_threshold", "quorum join mode requires a positive threshold")
		}
		if threshold > len(members) {
			return nil, NewValidationError("quorum_threshold", "threshold exceeds member count")
		}
	}

	timeoutS := group.TimeoutS
	if req.TimeoutS != nil {
		timeoutS = *req.TimeoutS
	}

	var completed, failed, running int
	for _, m := range members {
		switch {
		case m.run.Status == run.StatusCompleted:
			completed++
		case isTerminalRunStatus(m.run.Status):
			failed++
		default:
			running++
		}
	}

	// Timeout overrides the mode: the group times out and every member
	// still in flight is cancelled.
	if time.Since(group.StartedAt) >= time.Duration(timeoutS)*time.Second {
		propagated, err := s.completeGroup(ctx, tx, group, members,
			orchestrationgroup.StatusTimedOut, "join timeout after "+fmt.Sprintf("%ds", timeoutS))
		if err != nil {
			return nil, err
		}
		return s.commitResult(ctx, tx, group, members, mode, string(orchestrationgroup.StatusTimedOut), propagated)
	}

	decided, groupStatus := evaluateJoinMode(mode, threshold, completed, failed, running)
	if !decided {
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit join evaluation: %w", err)
		}
		return &models.JoinResult{
			Complete: false,
			Status:   string(orchestrationgroup.StatusRunning),
			Mode:     mode,
			Results:  memberResults(members),
		}, nil
	}

	propagated, err := s.completeGroup(ctx, tx, group, members, groupStatus,
		"join decided "+string(groupStatus))
	if err != nil {
		return nil, err
	}
	return s.commitResult(ctx, tx, group, members, mode, string(groupStatus), propagated)
}

// evaluateJoinMode applies one join mode to the member counts and reports
// whether the group is decided and, if so, its terminal status.
func evaluateJoinMode(
	mode models.JoinMode,
	threshold, completed, failed, running int,
) (bool, orchestrationgroup.Status) {
	switch mode {
	case models.JoinModeAll:
		if running > 0 {
			return false, ""
		}
		switch {
		case failed == 0:
			return true, orchestrationgroup.StatusCompleted
		case completed > 0:
			return true, orchestrationgroup.StatusCompletedWithErrors
		default:
			return true, orchestrationgroup.StatusFailed
		}

	case models.JoinModeFailFast:
		if failed > 0 {
			return true, orchestrationgroup.StatusFailed
		}
		if running > 0 {
			return false, ""
		}
		return true, orchestrationgroup.StatusCompleted

	case models.JoinModeFirstSuccess:
		if completed > 0 {
			return true, orchestrationgroup.StatusCompleted
		}
		if running > 0 {
			return false, ""
		}
		return true, orchestrationgroup.StatusFailed

	case models.JoinModeQuorum:
		if completed >= threshold {
			return true, orchestrationgroup.StatusCompleted
		}
		if completed+running < threshold {
			return true, orchestrationgroup.StatusFailed
		}
		return false, ""

	case models.JoinModeBestEffort:
		if running > 0 {
			return false, ""
		}
		switch {
		case completed > 0 && failed > 0:
			return true, orchestrationgroup.StatusCompletedWithErrors
		case completed > 0:
			return true, orchestrationgroup.StatusCompleted
		default:
			return true, orchestrationgroup.StatusFailed
		}
	}
	return false, ""
}

// completeGroup cancels every member still in flight, mirrors run statuses
// onto the member rows, and transitions the group to its terminal status.
// Returns the number of members that were cancelled by this decision.
func (s *JoinService) completeGroup(
	ctx context.Context,
	tx *ent.Tx,
	group *ent.OrchestrationGroup,
	members []memberState,
	status orchestrationgroup.Status,
	reason string,
) (int, error) {
	propagated := 0
	for _, m := range members {
		if isTerminalRunStatus(m.run.Status) {
			continue
		}
		if _, err := cancelSubtreeTx(ctx, tx, m.run.ID, true, reason); err != nil {
			return 0, err
		}
		m.run.Status = run.StatusCancelled
		propagated++
	}

	for _, m := range members {
		memberStatus := mirrorMemberStatus(m.run.Status)
		if memberStatus == m.member.Status {
			continue
		}
		err := tx.GroupMember.UpdateOneID(m.member.ID).
			SetStatus(memberStatus).
			Exec(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to update group member: %w", err)
		}
		m.member.Status = memberStatus
	}

	// Conditional update keeps the terminal transition single-shot even if
	// a non-locking writer slipped in.
	n, err := tx.OrchestrationGroup.Update().
		Where(
			orchestrationgroup.ID(group.ID),
			orchestrationgroup.StatusEQ(orchestrationgroup.StatusRunning),
		).
		SetStatus(status).
		SetCancellationPropagated(propagated).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to complete group: %w", err)
	}
	if n == 0 {
		return 0, ErrStoreConflict
	}
	group.Status = status

	return propagated, nil
}

// commitResult commits the join transaction and builds the terminal payload.
func (s *JoinService) commitResult(
	ctx context.Context,
	tx *ent.Tx,
	group *ent.OrchestrationGroup,
	members []memberState,
	mode models.JoinMode,
	status string,
	propagated int,
) (*models.JoinResult, error) {
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit join: %w", err)
	}

	slog.Info("Join completed group",
		"group_id", group.ID, "status", status, "mode", mode, "cancelled_members", propagated)

	return &models.JoinResult{
		Complete:               true,
		Status:                 status,
		Mode:                   mode,
		Results:                memberResults(members),
		CancellationPropagated: models.CancellationPropagated{Count: propagated},
	}, nil
}

// loadMemberStates loads the group's members in ordinal order together
// with their runs.
func loadMemberStates(ctx context.Context, tx *ent.Tx, groupID string) ([]memberState, error) {
	members, err := tx.GroupMember.Query().
		Where(groupmember.GroupID(groupID)).
		Order(ent.Asc(groupmember.FieldOrdinal)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load group members: %w", err)
	}

	runIDs := make([]string, 0, len(members))
	for _, m := range members {
		runIDs = append(runIDs, m.RunID)
	}
	runs, err := tx.Run.Query().
		Where(run.IDIn(runIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load member runs: %w", err)
	}
	byID := make(map[string]*ent.Run, len(runs))
	for _, r := range runs {
		byID[r.ID] = r
	}

	states := make([]memberState, 0, len(members))
	for _, m := range members {
		r, ok := byID[m.RunID]
		if !ok {
			return nil, fmt.Errorf("group member %s references missing run %s", m.ID, m.RunID)
		}
		states = append(states, memberState{member: m, run: r})
	}
	return states, nil
}

// mirrorMemberStatus maps a run status onto the member row's status.
func mirrorMemberStatus(s run.Status) groupmember.Status {
	switch s {
	case run.StatusCompleted:
		return groupmember.StatusCompleted
	case run.StatusFailed:
		return groupmember.StatusFailed
	case run.StatusCancelled:
		return groupmember.StatusCancelled
	case run.StatusTimedOut:
		return groupmember.StatusTimedOut
	default:
		return groupmember.StatusPending
	}
}

// memberResults builds the per-member summaries of a join payload.
func memberResults(members []memberState) []models.MemberResult {
	results := make([]models.MemberResult, 0, len(members))
	for _, m := range members {
		results = append(results, models.MemberResult{
			RunID:   m.run.ID,
			Ordinal: m.member.Ordinal,
			Status:  string(m.run.Status),
			Output:  m.run.Output,
		})
	}
	return results
}
