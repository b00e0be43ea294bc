// Code generated by ent, DO NOT EDIT.

package tokenjti

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentforge/arc/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldContainsFold(FieldID, id))
}

// GrantID applies equality check predicate on the "grant_id" field. It's identical to GrantIDEQ.
func GrantID(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldEQ(FieldGrantID, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldEQ(FieldExpiresAt, v))
}

// RevokedAt applies equality check predicate on the "revoked_at" field. It's identical to RevokedAtEQ.
func RevokedAt(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldEQ(FieldRevokedAt, v))
}

// RevocationReason applies equality check predicate on the "revocation_reason" field. It's identical to RevocationReasonEQ.
func RevocationReason(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldEQ(FieldRevocationReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldEQ(FieldCreatedAt, v))
}

// GrantIDEQ applies the EQ predicate on the "grant_id" field.
func GrantIDEQ(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldEQ(FieldGrantID, v))
}

// GrantIDNEQ applies the NEQ predicate on the "grant_id" field.
func GrantIDNEQ(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldNEQ(FieldGrantID, v))
}

// GrantIDIn applies the In predicate on the "grant_id" field.
func GrantIDIn(vs ...string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldIn(FieldGrantID, vs...))
}

// GrantIDNotIn applies the NotIn predicate on the "grant_id" field.
func GrantIDNotIn(vs ...string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldNotIn(FieldGrantID, vs...))
}

// GrantIDGT applies the GT predicate on the "grant_id" field.
func GrantIDGT(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldGT(FieldGrantID, v))
}

// GrantIDGTE applies the GTE predicate on the "grant_id" field.
func GrantIDGTE(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldGTE(FieldGrantID, v))
}

// GrantIDLT applies the LT predicate on the "grant_id" field.
func GrantIDLT(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldLT(FieldGrantID, v))
}

// GrantIDLTE applies the LTE predicate on the "grant_id" field.
func GrantIDLTE(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldLTE(FieldGrantID, v))
}

// GrantIDContains applies the Contains predicate on the "grant_id" field.
func GrantIDContains(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldContains(FieldGrantID, v))
}

// GrantIDHasPrefix applies the HasPrefix predicate on the "grant_id" field.
func GrantIDHasPrefix(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldHasPrefix(FieldGrantID, v))
}

// GrantIDHasSuffix applies the HasSuffix predicate on the "grant_id" field.
func GrantIDHasSuffix(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldHasSuffix(FieldGrantID, v))
}

// GrantIDEqualFold applies the EqualFold predicate on the "grant_id" field.
func GrantIDEqualFold(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldEqualFold(FieldGrantID, v))
}

// GrantIDContainsFold applies the ContainsFold predicate on the "grant_id" field.
func GrantIDContainsFold(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldContainsFold(FieldGrantID, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldLTE(FieldExpiresAt, v))
}

// RevokedAtEQ applies the EQ predicate on the "revoked_at" field.
func RevokedAtEQ(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldEQ(FieldRevokedAt, v))
}

// RevokedAtNEQ applies the NEQ predicate on the "revoked_at" field.
func RevokedAtNEQ(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldNEQ(FieldRevokedAt, v))
}

// RevokedAtIn applies the In predicate on the "revoked_at" field.
func RevokedAtIn(vs ...time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldIn(FieldRevokedAt, vs...))
}

// RevokedAtNotIn applies the NotIn predicate on the "revoked_at" field.
func RevokedAtNotIn(vs ...time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldNotIn(FieldRevokedAt, vs...))
}

// RevokedAtGT applies the GT predicate on the "revoked_at" field.
func RevokedAtGT(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldGT(FieldRevokedAt, v))
}

// RevokedAtGTE applies the GTE predicate on the "revoked_at" field.
func RevokedAtGTE(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldGTE(FieldRevokedAt, v))
}

// RevokedAtLT applies the LT predicate on the "revoked_at" field.
func RevokedAtLT(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldLT(FieldRevokedAt, v))
}

// RevokedAtLTE applies the LTE predicate on the "revoked_at" field.
func RevokedAtLTE(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldLTE(FieldRevokedAt, v))
}

// RevokedAtIsNil applies the IsNil predicate on the "revoked_at" field.
func RevokedAtIsNil() predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldIsNull(FieldRevokedAt))
}

// RevokedAtNotNil applies the NotNil predicate on the "revoked_at" field.
func RevokedAtNotNil() predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldNotNull(FieldRevokedAt))
}

// RevocationReasonEQ applies the EQ predicate on the "revocation_reason" field.
func RevocationReasonEQ(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldEQ(FieldRevocationReason, v))
}

// RevocationReasonNEQ applies the NEQ predicate on the "revocation_reason" field.
func RevocationReasonNEQ(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldNEQ(FieldRevocationReason, v))
}

// RevocationReasonIn applies the In predicate on the "revocation_reason" field.
func RevocationReasonIn(vs ...string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldIn(FieldRevocationReason, vs...))
}

// RevocationReasonNotIn applies the NotIn predicate on the "revocation_reason" field.
func RevocationReasonNotIn(vs ...string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldNotIn(FieldRevocationReason, vs...))
}

// RevocationReasonGT applies the GT predicate on the "revocation_reason" field.
func RevocationReasonGT(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldGT(FieldRevocationReason, v))
}

// RevocationReasonGTE applies the GTE predicate on the "revocation_reason" field.
func RevocationReasonGTE(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldGTE(FieldRevocationReason, v))
}

// RevocationReasonLT applies the LT predicate on the "revocation_reason" field.
func RevocationReasonLT(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldLT(FieldRevocationReason, v))
}

// RevocationReasonLTE applies the LTE predicate on the "revocation_reason" field.
func RevocationReasonLTE(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldLTE(FieldRevocationReason, v))
}

// RevocationReasonContains applies the Contains predicate on the "revocation_reason" field.
func RevocationReasonContains(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldContains(FieldRevocationReason, v))
}

// RevocationReasonHasPrefix applies the HasPrefix predicate on the "revocation_reason" field.
func RevocationReasonHasPrefix(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldHasPrefix(FieldRevocationReason, v))
}

// RevocationReasonHasSuffix applies the HasSuffix predicate on the "revocation_reason" field.
func RevocationReasonHasSuffix(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldHasSuffix(FieldRevocationReason, v))
}

// RevocationReasonIsNil applies the IsNil predicate on the "revocation_reason" field.
func RevocationReasonIsNil() predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldIsNull(FieldRevocationReason))
}

// RevocationReasonNotNil applies the NotNil predicate on the "revocation_reason" field.
func RevocationReasonNotNil() predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldNotNull(FieldRevocationReason))
}

// RevocationReasonEqualFold applies the EqualFold predicate on the "revocation_reason" field.
func RevocationReasonEqualFold(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldEqualFold(FieldRevocationReason, v))
}

// RevocationReasonContainsFold applies the ContainsFold predicate on the "revocation_reason" field.
func RevocationReasonContainsFold(v string) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldContainsFold(FieldRevocationReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TokenJTI {
	return predicate.TokenJTI(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TokenJTI) predicate.TokenJTI {
	return predicate.TokenJTI(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TokenJTI) predicate.TokenJTI {
	return predicate.TokenJTI(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TokenJTI) predicate.TokenJTI {
	return predicate.TokenJTI(sql.NotPredicates(p))
}
