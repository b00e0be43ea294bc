// Code generated by ent, DO NOT EDIT.

package workloadscopepolicy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentforge/arc/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldContainsFold(FieldID, id))
}

// PrincipalID applies equality check predicate on the "principal_id" field. It's identical to PrincipalIDEQ.
func PrincipalID(v string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldEQ(FieldPrincipalID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldEQ(FieldVersion, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// PrincipalIDEQ applies the EQ predicate on the "principal_id" field.
func PrincipalIDEQ(v string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldEQ(FieldPrincipalID, v))
}

// PrincipalIDNEQ applies the NEQ predicate on the "principal_id" field.
func PrincipalIDNEQ(v string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldNEQ(FieldPrincipalID, v))
}

// PrincipalIDIn applies the In predicate on the "principal_id" field.
func PrincipalIDIn(vs ...string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldIn(FieldPrincipalID, vs...))
}

// PrincipalIDNotIn applies the NotIn predicate on the "principal_id" field.
func PrincipalIDNotIn(vs ...string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldNotIn(FieldPrincipalID, vs...))
}

// PrincipalIDGT applies the GT predicate on the "principal_id" field.
func PrincipalIDGT(v string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldGT(FieldPrincipalID, v))
}

// PrincipalIDGTE applies the GTE predicate on the "principal_id" field.
func PrincipalIDGTE(v string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldGTE(FieldPrincipalID, v))
}

// PrincipalIDLT applies the LT predicate on the "principal_id" field.
func PrincipalIDLT(v string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldLT(FieldPrincipalID, v))
}

// PrincipalIDLTE applies the LTE predicate on the "principal_id" field.
func PrincipalIDLTE(v string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldLTE(FieldPrincipalID, v))
}

// PrincipalIDContains applies the Contains predicate on the "principal_id" field.
func PrincipalIDContains(v string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldContains(FieldPrincipalID, v))
}

// PrincipalIDHasPrefix applies the HasPrefix predicate on the "principal_id" field.
func PrincipalIDHasPrefix(v string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldHasPrefix(FieldPrincipalID, v))
}

// PrincipalIDHasSuffix applies the HasSuffix predicate on the "principal_id" field.
func PrincipalIDHasSuffix(v string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldHasSuffix(FieldPrincipalID, v))
}

// PrincipalIDEqualFold applies the EqualFold predicate on the "principal_id" field.
func PrincipalIDEqualFold(v string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldEqualFold(FieldPrincipalID, v))
}

// PrincipalIDContainsFold applies the ContainsFold predicate on the "principal_id" field.
func PrincipalIDContainsFold(v string) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldContainsFold(FieldPrincipalID, v))
}

// ApprovedScopesIsNil applies the IsNil predicate on the "approved_scopes" field.
func ApprovedScopesIsNil() predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldIsNull(FieldApprovedScopes))
}

// ApprovedScopesNotNil applies the NotNil predicate on the "approved_scopes" field.
func ApprovedScopesNotNil() predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldNotNull(FieldApprovedScopes))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldNotIn(FieldStatus, vs...))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldLTE(FieldVersion, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkloadScopePolicy) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkloadScopePolicy) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkloadScopePolicy) predicate.WorkloadScopePolicy {
	return predicate.WorkloadScopePolicy(sql.NotPredicates(p))
}
