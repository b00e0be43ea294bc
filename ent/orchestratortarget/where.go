// Code generated by ent, DO NOT EDIT.

package orchestratortarget

import (
	"entgo.io/ent/dialect/sql"
	"github.com/agentforge/arc/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldEQ(FieldTenantID, v))
}

// OrchestratorAgentID applies equality check predicate on the "orchestrator_agent_id" field. It's identical to OrchestratorAgentIDEQ.
func OrchestratorAgentID(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldEQ(FieldOrchestratorAgentID, v))
}

// TargetAgentID applies equality check predicate on the "target_agent_id" field. It's identical to TargetAgentIDEQ.
func TargetAgentID(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldEQ(FieldTargetAgentID, v))
}

// TargetAgentSlug applies equality check predicate on the "target_agent_slug" field. It's identical to TargetAgentSlugEQ.
func TargetAgentSlug(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldEQ(FieldTargetAgentSlug, v))
}

// Tag applies equality check predicate on the "tag" field. It's identical to TagEQ.
func Tag(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldEQ(FieldTag, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldContainsFold(FieldTenantID, v))
}

// OrchestratorAgentIDEQ applies the EQ predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDEQ(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldEQ(FieldOrchestratorAgentID, v))
}

// OrchestratorAgentIDNEQ applies the NEQ predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDNEQ(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldNEQ(FieldOrchestratorAgentID, v))
}

// OrchestratorAgentIDIn applies the In predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDIn(vs ...string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldIn(FieldOrchestratorAgentID, vs...))
}

// OrchestratorAgentIDNotIn applies the NotIn predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDNotIn(vs ...string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldNotIn(FieldOrchestratorAgentID, vs...))
}

// OrchestratorAgentIDGT applies the GT predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDGT(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldGT(FieldOrchestratorAgentID, v))
}

// OrchestratorAgentIDGTE applies the GTE predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDGTE(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldGTE(FieldOrchestratorAgentID, v))
}

// OrchestratorAgentIDLT applies the LT predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDLT(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldLT(FieldOrchestratorAgentID, v))
}

// OrchestratorAgentIDLTE applies the LTE predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDLTE(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldLTE(FieldOrchestratorAgentID, v))
}

// OrchestratorAgentIDContains applies the Contains predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDContains(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldContains(FieldOrchestratorAgentID, v))
}

// OrchestratorAgentIDHasPrefix applies the HasPrefix predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDHasPrefix(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldHasPrefix(FieldOrchestratorAgentID, v))
}

// OrchestratorAgentIDHasSuffix applies the HasSuffix predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDHasSuffix(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldHasSuffix(FieldOrchestratorAgentID, v))
}

// OrchestratorAgentIDEqualFold applies the EqualFold predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDEqualFold(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldEqualFold(FieldOrchestratorAgentID, v))
}

// OrchestratorAgentIDContainsFold applies the ContainsFold predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDContainsFold(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldContainsFold(FieldOrchestratorAgentID, v))
}

// TargetAgentIDEQ applies the EQ predicate on the "target_agent_id" field.
func TargetAgentIDEQ(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldEQ(FieldTargetAgentID, v))
}

// TargetAgentIDNEQ applies the NEQ predicate on the "target_agent_id" field.
func TargetAgentIDNEQ(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldNEQ(FieldTargetAgentID, v))
}

// TargetAgentIDIn applies the In predicate on the "target_agent_id" field.
func TargetAgentIDIn(vs ...string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldIn(FieldTargetAgentID, vs...))
}

// TargetAgentIDNotIn applies the NotIn predicate on the "target_agent_id" field.
func TargetAgentIDNotIn(vs ...string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldNotIn(FieldTargetAgentID, vs...))
}

// TargetAgentIDGT applies the GT predicate on the "target_agent_id" field.
func TargetAgentIDGT(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldGT(FieldTargetAgentID, v))
}

// TargetAgentIDGTE applies the GTE predicate on the "target_agent_id" field.
func TargetAgentIDGTE(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldGTE(FieldTargetAgentID, v))
}

// TargetAgentIDLT applies the LT predicate on the "target_agent_id" field.
func TargetAgentIDLT(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldLT(FieldTargetAgentID, v))
}

// TargetAgentIDLTE applies the LTE predicate on the "target_agent_id" field.
func TargetAgentIDLTE(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldLTE(FieldTargetAgentID, v))
}

// TargetAgentIDContains applies the Contains predicate on the "target_agent_id" field.
func TargetAgentIDContains(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldContains(FieldTargetAgentID, v))
}

// TargetAgentIDHasPrefix applies the HasPrefix predicate on the "target_agent_id" field.
func TargetAgentIDHasPrefix(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldHasPrefix(FieldTargetAgentID, v))
}

// TargetAgentIDHasSuffix applies the HasSuffix predicate on the "target_agent_id" field.
func TargetAgentIDHasSuffix(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldHasSuffix(FieldTargetAgentID, v))
}

// TargetAgentIDIsNil applies the IsNil predicate on the "target_agent_id" field.
func TargetAgentIDIsNil() predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldIsNull(FieldTargetAgentID))
}

// TargetAgentIDNotNil applies the NotNil predicate on the "target_agent_id" field.
func TargetAgentIDNotNil() predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldNotNull(FieldTargetAgentID))
}

// TargetAgentIDEqualFold applies the EqualFold predicate on the "target_agent_id" field.
func TargetAgentIDEqualFold(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldEqualFold(FieldTargetAgentID, v))
}

// TargetAgentIDContainsFold applies the ContainsFold predicate on the "target_agent_id" field.
func TargetAgentIDContainsFold(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldContainsFold(FieldTargetAgentID, v))
}

// TargetAgentSlugEQ applies the EQ predicate on the "target_agent_slug" field.
func TargetAgentSlugEQ(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldEQ(FieldTargetAgentSlug, v))
}

// TargetAgentSlugNEQ applies the NEQ predicate on the "target_agent_slug" field.
func TargetAgentSlugNEQ(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldNEQ(FieldTargetAgentSlug, v))
}

// TargetAgentSlugIn applies the In predicate on the "target_agent_slug" field.
func TargetAgentSlugIn(vs ...string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldIn(FieldTargetAgentSlug, vs...))
}

// TargetAgentSlugNotIn applies the NotIn predicate on the "target_agent_slug" field.
func TargetAgentSlugNotIn(vs ...string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldNotIn(FieldTargetAgentSlug, vs...))
}

// TargetAgentSlugGT applies the GT predicate on the "target_agent_slug" field.
func TargetAgentSlugGT(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldGT(FieldTargetAgentSlug, v))
}

// TargetAgentSlugGTE applies the GTE predicate on the "target_agent_slug" field.
func TargetAgentSlugGTE(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldGTE(FieldTargetAgentSlug, v))
}

// TargetAgentSlugLT applies the LT predicate on the "target_agent_slug" field.
func TargetAgentSlugLT(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldLT(FieldTargetAgentSlug, v))
}

// TargetAgentSlugLTE applies the LTE predicate on the "target_agent_slug" field.
func TargetAgentSlugLTE(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldLTE(FieldTargetAgentSlug, v))
}

// TargetAgentSlugContains applies the Contains predicate on the "target_agent_slug" field.
func TargetAgentSlugContains(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldContains(FieldTargetAgentSlug, v))
}

// TargetAgentSlugHasPrefix applies the HasPrefix predicate on the "target_agent_slug" field.
func TargetAgentSlugHasPrefix(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldHasPrefix(FieldTargetAgentSlug, v))
}

// TargetAgentSlugHasSuffix applies the HasSuffix predicate on the "target_agent_slug" field.
func TargetAgentSlugHasSuffix(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldHasSuffix(FieldTargetAgentSlug, v))
}

// TargetAgentSlugIsNil applies the IsNil predicate on the "target_agent_slug" field.
func TargetAgentSlugIsNil() predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldIsNull(FieldTargetAgentSlug))
}

// TargetAgentSlugNotNil applies the NotNil predicate on the "target_agent_slug" field.
func TargetAgentSlugNotNil() predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldNotNull(FieldTargetAgentSlug))
}

// TargetAgentSlugEqualFold applies the EqualFold predicate on the "target_agent_slug" field.
func TargetAgentSlugEqualFold(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldEqualFold(FieldTargetAgentSlug, v))
}

// TargetAgentSlugContainsFold applies the ContainsFold predicate on the "target_agent_slug" field.
func TargetAgentSlugContainsFold(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldContainsFold(FieldTargetAgentSlug, v))
}

// TagEQ applies the EQ predicate on the "tag" field.
func TagEQ(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldEQ(FieldTag, v))
}

// TagNEQ applies the NEQ predicate on the "tag" field.
func TagNEQ(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldNEQ(FieldTag, v))
}

// TagIn applies the In predicate on the "tag" field.
func TagIn(vs ...string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldIn(FieldTag, vs...))
}

// TagNotIn applies the NotIn predicate on the "tag" field.
func TagNotIn(vs ...string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldNotIn(FieldTag, vs...))
}

// TagGT applies the GT predicate on the "tag" field.
func TagGT(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldGT(FieldTag, v))
}

// TagGTE applies the GTE predicate on the "tag" field.
func TagGTE(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldGTE(FieldTag, v))
}

// TagLT applies the LT predicate on the "tag" field.
func TagLT(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldLT(FieldTag, v))
}

// TagLTE applies the LTE predicate on the "tag" field.
func TagLTE(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldLTE(FieldTag, v))
}

// TagContains applies the Contains predicate on the "tag" field.
func TagContains(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldContains(FieldTag, v))
}

// TagHasPrefix applies the HasPrefix predicate on the "tag" field.
func TagHasPrefix(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldHasPrefix(FieldTag, v))
}

// TagHasSuffix applies the HasSuffix predicate on the "tag" field.
func TagHasSuffix(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldHasSuffix(FieldTag, v))
}

// TagIsNil applies the IsNil predicate on the "tag" field.
func TagIsNil() predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldIsNull(FieldTag))
}

// TagNotNil applies the NotNil predicate on the "tag" field.
func TagNotNil() predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldNotNull(FieldTag))
}

// TagEqualFold applies the EqualFold predicate on the "tag" field.
func TagEqualFold(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldEqualFold(FieldTag, v))
}

// TagContainsFold applies the ContainsFold predicate on the "tag" field.
func TagContainsFold(v string) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.FieldContainsFold(FieldTag, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OrchestratorTarget) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OrchestratorTarget) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OrchestratorTarget) predicate.OrchestratorTarget {
	return predicate.OrchestratorTarget(sql.NotPredicates(p))
}
