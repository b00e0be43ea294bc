// Code generated by ent, DO NOT EDIT.

package delegationgrant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentforge/arc/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEQ(FieldTenantID, v))
}

// PrincipalID applies equality check predicate on the "principal_id" field. It's identical to PrincipalIDEQ.
func PrincipalID(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEQ(FieldPrincipalID, v))
}

// InitiatorUserID applies equality check predicate on the "initiator_user_id" field. It's identical to InitiatorUserIDEQ.
func InitiatorUserID(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEQ(FieldInitiatorUserID, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEQ(FieldRunID, v))
}

// ParentGrantID applies equality check predicate on the "parent_grant_id" field. It's identical to ParentGrantIDEQ.
func ParentGrantID(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEQ(FieldParentGrantID, v))
}

// RevocationReason applies equality check predicate on the "revocation_reason" field. It's identical to RevocationReasonEQ.
func RevocationReason(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEQ(FieldRevocationReason, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldContainsFold(FieldTenantID, v))
}

// PrincipalIDEQ applies the EQ predicate on the "principal_id" field.
func PrincipalIDEQ(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEQ(FieldPrincipalID, v))
}

// PrincipalIDNEQ applies the NEQ predicate on the "principal_id" field.
func PrincipalIDNEQ(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNEQ(FieldPrincipalID, v))
}

// PrincipalIDIn applies the In predicate on the "principal_id" field.
func PrincipalIDIn(vs ...string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldIn(FieldPrincipalID, vs...))
}

// PrincipalIDNotIn applies the NotIn predicate on the "principal_id" field.
func PrincipalIDNotIn(vs ...string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNotIn(FieldPrincipalID, vs...))
}

// PrincipalIDGT applies the GT predicate on the "principal_id" field.
func PrincipalIDGT(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldGT(FieldPrincipalID, v))
}

// PrincipalIDGTE applies the GTE predicate on the "principal_id" field.
func PrincipalIDGTE(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldGTE(FieldPrincipalID, v))
}

// PrincipalIDLT applies the LT predicate on the "principal_id" field.
func PrincipalIDLT(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldLT(FieldPrincipalID, v))
}

// PrincipalIDLTE applies the LTE predicate on the "principal_id" field.
func PrincipalIDLTE(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldLTE(FieldPrincipalID, v))
}

// PrincipalIDContains applies the Contains predicate on the "principal_id" field.
func PrincipalIDContains(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldContains(FieldPrincipalID, v))
}

// PrincipalIDHasPrefix applies the HasPrefix predicate on the "principal_id" field.
func PrincipalIDHasPrefix(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldHasPrefix(FieldPrincipalID, v))
}

// PrincipalIDHasSuffix applies the HasSuffix predicate on the "principal_id" field.
func PrincipalIDHasSuffix(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldHasSuffix(FieldPrincipalID, v))
}

// PrincipalIDEqualFold applies the EqualFold predicate on the "principal_id" field.
func PrincipalIDEqualFold(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEqualFold(FieldPrincipalID, v))
}

// PrincipalIDContainsFold applies the ContainsFold predicate on the "principal_id" field.
func PrincipalIDContainsFold(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldContainsFold(FieldPrincipalID, v))
}

// InitiatorUserIDEQ applies the EQ predicate on the "initiator_user_id" field.
func InitiatorUserIDEQ(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEQ(FieldInitiatorUserID, v))
}

// InitiatorUserIDNEQ applies the NEQ predicate on the "initiator_user_id" field.
func InitiatorUserIDNEQ(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNEQ(FieldInitiatorUserID, v))
}

// InitiatorUserIDIn applies the In predicate on the "initiator_user_id" field.
func InitiatorUserIDIn(vs ...string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldIn(FieldInitiatorUserID, vs...))
}

// InitiatorUserIDNotIn applies the NotIn predicate on the "initiator_user_id" field.
func InitiatorUserIDNotIn(vs ...string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNotIn(FieldInitiatorUserID, vs...))
}

// InitiatorUserIDGT applies the GT predicate on the "initiator_user_id" field.
func InitiatorUserIDGT(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldGT(FieldInitiatorUserID, v))
}

// InitiatorUserIDGTE applies the GTE predicate on the "initiator_user_id" field.
func InitiatorUserIDGTE(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldGTE(FieldInitiatorUserID, v))
}

// InitiatorUserIDLT applies the LT predicate on the "initiator_user_id" field.
func InitiatorUserIDLT(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldLT(FieldInitiatorUserID, v))
}

// InitiatorUserIDLTE applies the LTE predicate on the "initiator_user_id" field.
func InitiatorUserIDLTE(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldLTE(FieldInitiatorUserID, v))
}

// InitiatorUserIDContains applies the Contains predicate on the "initiator_user_id" field.
func InitiatorUserIDContains(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldContains(FieldInitiatorUserID, v))
}

// InitiatorUserIDHasPrefix applies the HasPrefix predicate on the "initiator_user_id" field.
func InitiatorUserIDHasPrefix(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldHasPrefix(FieldInitiatorUserID, v))
}

// InitiatorUserIDHasSuffix applies the HasSuffix predicate on the "initiator_user_id" field.
func InitiatorUserIDHasSuffix(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldHasSuffix(FieldInitiatorUserID, v))
}

// InitiatorUserIDEqualFold applies the EqualFold predicate on the "initiator_user_id" field.
func InitiatorUserIDEqualFold(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEqualFold(FieldInitiatorUserID, v))
}

// InitiatorUserIDContainsFold applies the ContainsFold predicate on the "initiator_user_id" field.
func InitiatorUserIDContainsFold(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldContainsFold(FieldInitiatorUserID, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDIsNil applies the IsNil predicate on the "run_id" field.
func RunIDIsNil() predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldIsNull(FieldRunID))
}

// RunIDNotNil applies the NotNil predicate on the "run_id" field.
func RunIDNotNil() predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNotNull(FieldRunID))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldContainsFold(FieldRunID, v))
}

// ParentGrantIDEQ applies the EQ predicate on the "parent_grant_id" field.
func ParentGrantIDEQ(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEQ(FieldParentGrantID, v))
}

// ParentGrantIDNEQ applies the NEQ predicate on the "parent_grant_id" field.
func ParentGrantIDNEQ(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNEQ(FieldParentGrantID, v))
}

// ParentGrantIDIn applies the In predicate on the "parent_grant_id" field.
func ParentGrantIDIn(vs ...string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldIn(FieldParentGrantID, vs...))
}

// ParentGrantIDNotIn applies the NotIn predicate on the "parent_grant_id" field.
func ParentGrantIDNotIn(vs ...string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNotIn(FieldParentGrantID, vs...))
}

// ParentGrantIDGT applies the GT predicate on the "parent_grant_id" field.
func ParentGrantIDGT(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldGT(FieldParentGrantID, v))
}

// ParentGrantIDGTE applies the GTE predicate on the "parent_grant_id" field.
func ParentGrantIDGTE(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldGTE(FieldParentGrantID, v))
}

// ParentGrantIDLT applies the LT predicate on the "parent_grant_id" field.
func ParentGrantIDLT(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldLT(FieldParentGrantID, v))
}

// ParentGrantIDLTE applies the LTE predicate on the "parent_grant_id" field.
func ParentGrantIDLTE(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldLTE(FieldParentGrantID, v))
}

// ParentGrantIDContains applies the Contains predicate on the "parent_grant_id" field.
func ParentGrantIDContains(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldContains(FieldParentGrantID, v))
}

// ParentGrantIDHasPrefix applies the HasPrefix predicate on the "parent_grant_id" field.
func ParentGrantIDHasPrefix(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldHasPrefix(FieldParentGrantID, v))
}

// ParentGrantIDHasSuffix applies the HasSuffix predicate on the "parent_grant_id" field.
func ParentGrantIDHasSuffix(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldHasSuffix(FieldParentGrantID, v))
}

// ParentGrantIDIsNil applies the IsNil predicate on the "parent_grant_id" field.
func ParentGrantIDIsNil() predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldIsNull(FieldParentGrantID))
}

// ParentGrantIDNotNil applies the NotNil predicate on the "parent_grant_id" field.
func ParentGrantIDNotNil() predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNotNull(FieldParentGrantID))
}

// ParentGrantIDEqualFold applies the EqualFold predicate on the "parent_grant_id" field.
func ParentGrantIDEqualFold(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEqualFold(FieldParentGrantID, v))
}

// ParentGrantIDContainsFold applies the ContainsFold predicate on the "parent_grant_id" field.
func ParentGrantIDContainsFold(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldContainsFold(FieldParentGrantID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNotIn(FieldStatus, vs...))
}

// RevocationReasonEQ applies the EQ predicate on the "revocation_reason" field.
func RevocationReasonEQ(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEQ(FieldRevocationReason, v))
}

// RevocationReasonNEQ applies the NEQ predicate on the "revocation_reason" field.
func RevocationReasonNEQ(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNEQ(FieldRevocationReason, v))
}

// RevocationReasonIn applies the In predicate on the "revocation_reason" field.
func RevocationReasonIn(vs ...string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldIn(FieldRevocationReason, vs...))
}

// RevocationReasonNotIn applies the NotIn predicate on the "revocation_reason" field.
func RevocationReasonNotIn(vs ...string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNotIn(FieldRevocationReason, vs...))
}

// RevocationReasonGT applies the GT predicate on the "revocation_reason" field.
func RevocationReasonGT(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldGT(FieldRevocationReason, v))
}

// RevocationReasonGTE applies the GTE predicate on the "revocation_reason" field.
func RevocationReasonGTE(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldGTE(FieldRevocationReason, v))
}

// RevocationReasonLT applies the LT predicate on the "revocation_reason" field.
func RevocationReasonLT(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldLT(FieldRevocationReason, v))
}

// RevocationReasonLTE applies the LTE predicate on the "revocation_reason" field.
func RevocationReasonLTE(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldLTE(FieldRevocationReason, v))
}

// RevocationReasonContains applies the Contains predicate on the "revocation_reason" field.
func RevocationReasonContains(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldContains(FieldRevocationReason, v))
}

// RevocationReasonHasPrefix applies the HasPrefix predicate on the "revocation_reason" field.
func RevocationReasonHasPrefix(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldHasPrefix(FieldRevocationReason, v))
}

// RevocationReasonHasSuffix applies the HasSuffix predicate on the "revocation_reason" field.
func RevocationReasonHasSuffix(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldHasSuffix(FieldRevocationReason, v))
}

// RevocationReasonIsNil applies the IsNil predicate on the "revocation_reason" field.
func RevocationReasonIsNil() predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldIsNull(FieldRevocationReason))
}

// RevocationReasonNotNil applies the NotNil predicate on the "revocation_reason" field.
func RevocationReasonNotNil() predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNotNull(FieldRevocationReason))
}

// RevocationReasonEqualFold applies the EqualFold predicate on the "revocation_reason" field.
func RevocationReasonEqualFold(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEqualFold(FieldRevocationReason, v))
}

// RevocationReasonContainsFold applies the ContainsFold predicate on the "revocation_reason" field.
func RevocationReasonContainsFold(v string) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldContainsFold(FieldRevocationReason, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldLTE(FieldExpiresAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DelegationGrant) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DelegationGrant) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DelegationGrant) predicate.DelegationGrant {
	return predicate.DelegationGrant(sql.NotPredicates(p))
}
