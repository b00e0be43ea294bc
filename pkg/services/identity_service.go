package services

import (
	"context"
	"fmt"
	"time"

	"github.com/agentforge/arc/ent"
	"github.com/agentforge/arc/ent/delegationgrant"
	"github.com/agentforge/arc/ent/tokenjti"
	"github.com/agentforge/arc/ent/workloadprincipal"
	"github.com/agentforge/arc/ent/workloadscopepolicy"
	"github.com/agentforge/arc/pkg/models"
	"github.com/google/uuid"
)

// IdentityService manages workload principals, their scope policies, and
// the delegation grants that back runs. Grant revocation also invalidates
// issued bearer tokens through the JTI registry.
type IdentityService struct {
	client *ent.Client

	// autoApproveSystem approves SYSTEM principals at creation instead of
	// leaving them pending for explicit approval.
	autoApproveSystem bool
}

// NewIdentityService creates a new IdentityService
func NewIdentityService(client *ent.Client, autoApproveSystem bool) *IdentityService {
	return &IdentityService{client: client, autoApproveSystem: autoApproveSystem}
}

// EnsurePrincipal creates or returns the workload principal for
// (tenant, slug). New principals get a scope policy in pending status
// unless they are SYSTEM principals and auto-approval is on.
// Runs inside the caller's transaction.
func (s *IdentityService) EnsurePrincipal(
	ctx context.Context,
	tx *ent.Tx,
	tenantID, slug string,
	ptype workloadprincipal.Type,
	requestedScopes []string,
) (*ent.WorkloadPrincipal, error) {
	existing, err := tx.WorkloadPrincipal.Query().
		Where(
			workloadprincipal.TenantID(tenantID),
			workloadprincipal.Slug(slug),
		).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query principal: %w", err)
	}

	principal, err := tx.WorkloadPrincipal.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetSlug(slug).
		SetType(ptype).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrStoreConflict
		}
		return nil, fmt.Errorf("failed to create principal: %w", err)
	}

	requested := normalizeScopes(requestedScopes)
	policyCreate := tx.WorkloadScopePolicy.Create().
		SetID(uuid.New().String()).
		SetPrincipalID(principal.ID).
		SetRequestedScopes(requested)

	if ptype == workloadprincipal.TypeSystem && s.autoApproveSystem {
		policyCreate.
			SetApprovedScopes(requested).
			SetStatus(workloadscopepolicy.StatusApproved)
	}

	if _, err := policyCreate.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create scope policy: %w", err)
	}

	return principal, nil
}

// ApprovePrincipal approves a principal's scope policy with the given
// scope set and bumps the policy version.
func (s *IdentityService) ApprovePrincipal(ctx context.Context, principalID string, approvedScopes []string) error {
	policy, err := s.client.WorkloadScopePolicy.Query().
		Where(workloadscopepolicy.PrincipalID(principalID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load scope policy: %w", err)
	}

	err = policy.Update().
		SetApprovedScopes(normalizeScopes(approvedScopes)).
		SetStatus(workloadscopepolicy.StatusApproved).
		SetVersion(policy.Version + 1).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to approve scope policy: %w", err)
	}
	return nil
}

// ApprovedScopes returns the approved scope set of a principal, or an
// empty set when the policy is not approved.
func (s *IdentityService) ApprovedScopes(ctx context.Context, tx *ent.Tx, principalID string) ([]string, error) {
	policy, err := tx.WorkloadScopePolicy.Query().
		Where(workloadscopepolicy.PrincipalID(principalID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load scope policy: %w", err)
	}
	if policy.Status != workloadscopepolicy.StatusApproved {
		return nil, nil
	}
	return policy.ApprovedScopes, nil
}

// CreateDelegationGrant creates a root grant: the effective scopes are the
// intersection of the requested scopes and the principal's approved scopes.
// Fails with an invalid_scope policy error when the intersection is empty.
func (s *IdentityService) CreateDelegationGrant(
	ctx context.Context,
	tx *ent.Tx,
	tenantID, principalID, initiatorUserID string,
	requestedScopes []string,
	ttl time.Duration,
) (*ent.DelegationGrant, error) {
	approved, err := s.ApprovedScopes(ctx, tx, principalID)
	if err != nil {
		return nil, err
	}

	effective := intersectScopes(requestedScopes, approved)
	if len(effective) == 0 {
		return nil, NewPolicyError(ReasonInvalidScope,
			"no requested scope is approved for principal %s", principalID)
	}

	grant, err := tx.DelegationGrant.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetPrincipalID(principalID).
		SetInitiatorUserID(initiatorUserID).
		SetEffectiveScopes(effective).
		SetExpiresAt(time.Now().Add(ttl)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create delegation grant: %w", err)
	}
	return grant, nil
}

// DeriveChildGrant attenuates a parent grant for a child run:
//
//	effective = parent.effective ∩ requestedSubset ∩ policy.allowed_scope_subset
//
// (the policy subset participates only when non-empty). Fails with
// scope_out_of_range when the requested subset is not covered by the
// parent's effective scopes — scopes are never silently widened.
func (s *IdentityService) DeriveChildGrant(
	ctx context.Context,
	tx *ent.Tx,
	parent *ent.DelegationGrant,
	childPrincipalID string,
	requestedSubset []string,
	policy *models.PolicySnapshot,
) (*ent.DelegationGrant, error) {
	requested := normalizeScopes(requestedSubset)
	if len(requested) == 0 {
		return nil, NewPolicyError(ReasonScopeSubsetEmpty, "scope_subset must not be empty")
	}
	if !scopesSubset(requested, parent.EffectiveScopes) {
		return nil, NewPolicyError(ReasonScopeOutOfRange,
			"requested scope subset exceeds the caller's effective scopes")
	}

	effective := intersectScopes(requested, parent.EffectiveScopes)
	if len(policy.AllowedScopeSubset) > 0 {
		effective = intersectScopes(effective, policy.AllowedScopeSubset)
	}
	if len(effective) == 0 {
		return nil, NewPolicyError(ReasonScopeOutsidePolicy,
			"no requested scope survives the orchestrator policy's allowed subset")
	}

	grant, err := tx.DelegationGrant.Create().
		SetID(uuid.New().String()).
		SetTenantID(parent.TenantID).
		SetPrincipalID(childPrincipalID).
		SetInitiatorUserID(parent.InitiatorUserID).
		SetParentGrantID(parent.ID).
		SetEffectiveScopes(effective).
		SetExpiresAt(parent.ExpiresAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create child grant: %w", err)
	}
	return grant, nil
}

// RevokeGrant marks a grant revoked and revokes every registered token of
// the grant in the JTI registry, so downstream token checks fail fast.
func (s *IdentityService) RevokeGrant(ctx context.Context, grantID, reason string) error {
	now := time.Now()

	n, err := s.client.DelegationGrant.Update().
		Where(
			delegationgrant.ID(grantID),
			delegationgrant.StatusEQ(delegationgrant.StatusActive),
		).
		SetStatus(delegationgrant.StatusRevoked).
		SetRevocationReason(reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke grant: %w", err)
	}
	if n == 0 {
		// Already revoked or missing; revocation is idempotent for the
		// former, an error for the latter.
		exists, err := s.client.DelegationGrant.Query().
			Where(delegationgrant.ID(grantID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check grant: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
	}

	err = s.client.TokenJTI.Update().
		Where(
			tokenjti.GrantID(grantID),
			tokenjti.RevokedAtIsNil(),
		).
		SetRevokedAt(now).
		SetRevocationReason(reason).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke grant tokens: %w", err)
	}

	return nil
}

// RegisterToken records an issued bearer token id for a grant.
func (s *IdentityService) RegisterToken(ctx context.Context, grantID, jti string, expiresAt time.Time) error {
	err := s.client.TokenJTI.Create().
		SetID(jti).
		SetGrantID(grantID).
		SetExpiresAt(expiresAt).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrStoreConflict
		}
		return fmt.Errorf("failed to register token: %w", err)
	}
	return nil
}

// IsTokenActive reports whether a token id is known, unexpired, and not
// revoked.
func (s *IdentityService) IsTokenActive(ctx context.Context, jti string) (bool, error) {
	row, err := s.client.TokenJTI.Query().
		Where(tokenjti.ID(jti)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to query token: %w", err)
	}
	if row.RevokedAt != nil {
		return false, nil
	}
	return row.ExpiresAt.After(time.Now()), nil
}

// SweepExpiredTokens deletes registry rows whose expiry has passed.
// Supported by the index on expires_at.
func (s *IdentityService) SweepExpiredTokens(ctx context.Context, before time.Time) (int, error) {
	n, err := s.client.TokenJTI.Delete().
		Where(tokenjti.ExpiresAtLT(before)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired tokens: %w", err)
	}
	return n, nil
}
