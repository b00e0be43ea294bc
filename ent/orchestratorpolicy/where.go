// Code generated by ent, DO NOT EDIT.

package orchestratorpolicy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentforge/arc/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldTenantID, v))
}

// OrchestratorAgentID applies equality check predicate on the "orchestrator_agent_id" field. It's identical to OrchestratorAgentIDEQ.
func OrchestratorAgentID(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldOrchestratorAgentID, v))
}

// EnforcePublishedOnly applies equality check predicate on the "enforce_published_only" field. It's identical to EnforcePublishedOnlyEQ.
func EnforcePublishedOnly(v bool) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldEnforcePublishedOnly, v))
}

// MaxDepth applies equality check predicate on the "max_depth" field. It's identical to MaxDepthEQ.
func MaxDepth(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldMaxDepth, v))
}

// MaxFanout applies equality check predicate on the "max_fanout" field. It's identical to MaxFanoutEQ.
func MaxFanout(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldMaxFanout, v))
}

// MaxChildrenTotal applies equality check predicate on the "max_children_total" field. It's identical to MaxChildrenTotalEQ.
func MaxChildrenTotal(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldMaxChildrenTotal, v))
}

// JoinTimeoutS applies equality check predicate on the "join_timeout_s" field. It's identical to JoinTimeoutSEQ.
func JoinTimeoutS(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldJoinTimeoutS, v))
}

// CapabilityManifestVersion applies equality check predicate on the "capability_manifest_version" field. It's identical to CapabilityManifestVersionEQ.
func CapabilityManifestVersion(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldCapabilityManifestVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldContainsFold(FieldTenantID, v))
}

// OrchestratorAgentIDEQ applies the EQ predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDEQ(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldOrchestratorAgentID, v))
}

// OrchestratorAgentIDNEQ applies the NEQ predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDNEQ(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNEQ(FieldOrchestratorAgentID, v))
}

// OrchestratorAgentIDIn applies the In predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDIn(vs ...string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldIn(FieldOrchestratorAgentID, vs...))
}

// OrchestratorAgentIDNotIn applies the NotIn predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDNotIn(vs ...string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNotIn(FieldOrchestratorAgentID, vs...))
}

// OrchestratorAgentIDGT applies the GT predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDGT(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldGT(FieldOrchestratorAgentID, v))
}

// OrchestratorAgentIDGTE applies the GTE predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDGTE(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldGTE(FieldOrchestratorAgentID, v))
}

// OrchestratorAgentIDLT applies the LT predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDLT(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldLT(FieldOrchestratorAgentID, v))
}

// OrchestratorAgentIDLTE applies the LTE predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDLTE(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldLTE(FieldOrchestratorAgentID, v))
}

// OrchestratorAgentIDContains applies the Contains predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDContains(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldContains(FieldOrchestratorAgentID, v))
}

// OrchestratorAgentIDHasPrefix applies the HasPrefix predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDHasPrefix(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldHasPrefix(FieldOrchestratorAgentID, v))
}

// OrchestratorAgentIDHasSuffix applies the HasSuffix predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDHasSuffix(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldHasSuffix(FieldOrchestratorAgentID, v))
}

// OrchestratorAgentIDEqualFold applies the EqualFold predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDEqualFold(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEqualFold(FieldOrchestratorAgentID, v))
}

// OrchestratorAgentIDContainsFold applies the ContainsFold predicate on the "orchestrator_agent_id" field.
func OrchestratorAgentIDContainsFold(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldContainsFold(FieldOrchestratorAgentID, v))
}

// EnforcePublishedOnlyEQ applies the EQ predicate on the "enforce_published_only" field.
func EnforcePublishedOnlyEQ(v bool) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldEnforcePublishedOnly, v))
}

// EnforcePublishedOnlyNEQ applies the NEQ predicate on the "enforce_published_only" field.
func EnforcePublishedOnlyNEQ(v bool) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNEQ(FieldEnforcePublishedOnly, v))
}

// DefaultFailurePolicyEQ applies the EQ predicate on the "default_failure_policy" field.
func DefaultFailurePolicyEQ(v DefaultFailurePolicy) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldDefaultFailurePolicy, v))
}

// DefaultFailurePolicyNEQ applies the NEQ predicate on the "default_failure_policy" field.
func DefaultFailurePolicyNEQ(v DefaultFailurePolicy) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNEQ(FieldDefaultFailurePolicy, v))
}

// DefaultFailurePolicyIn applies the In predicate on the "default_failure_policy" field.
func DefaultFailurePolicyIn(vs ...DefaultFailurePolicy) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldIn(FieldDefaultFailurePolicy, vs...))
}

// DefaultFailurePolicyNotIn applies the NotIn predicate on the "default_failure_policy" field.
func DefaultFailurePolicyNotIn(vs ...DefaultFailurePolicy) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNotIn(FieldDefaultFailurePolicy, vs...))
}

// MaxDepthEQ applies the EQ predicate on the "max_depth" field.
func MaxDepthEQ(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldMaxDepth, v))
}

// MaxDepthNEQ applies the NEQ predicate on the "max_depth" field.
func MaxDepthNEQ(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNEQ(FieldMaxDepth, v))
}

// MaxDepthIn applies the In predicate on the "max_depth" field.
func MaxDepthIn(vs ...int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldIn(FieldMaxDepth, vs...))
}

// MaxDepthNotIn applies the NotIn predicate on the "max_depth" field.
func MaxDepthNotIn(vs ...int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNotIn(FieldMaxDepth, vs...))
}

// MaxDepthGT applies the GT predicate on the "max_depth" field.
func MaxDepthGT(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldGT(FieldMaxDepth, v))
}

// MaxDepthGTE applies the GTE predicate on the "max_depth" field.
func MaxDepthGTE(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldGTE(FieldMaxDepth, v))
}

// MaxDepthLT applies the LT predicate on the "max_depth" field.
func MaxDepthLT(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldLT(FieldMaxDepth, v))
}

// MaxDepthLTE applies the LTE predicate on the "max_depth" field.
func MaxDepthLTE(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldLTE(FieldMaxDepth, v))
}

// MaxFanoutEQ applies the EQ predicate on the "max_fanout" field.
func MaxFanoutEQ(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldMaxFanout, v))
}

// MaxFanoutNEQ applies the NEQ predicate on the "max_fanout" field.
func MaxFanoutNEQ(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNEQ(FieldMaxFanout, v))
}

// MaxFanoutIn applies the In predicate on the "max_fanout" field.
func MaxFanoutIn(vs ...int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldIn(FieldMaxFanout, vs...))
}

// MaxFanoutNotIn applies the NotIn predicate on the "max_fanout" field.
func MaxFanoutNotIn(vs ...int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNotIn(FieldMaxFanout, vs...))
}

// MaxFanoutGT applies the GT predicate on the "max_fanout" field.
func MaxFanoutGT(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldGT(FieldMaxFanout, v))
}

// MaxFanoutGTE applies the GTE predicate on the "max_fanout" field.
func MaxFanoutGTE(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldGTE(FieldMaxFanout, v))
}

// MaxFanoutLT applies the LT predicate on the "max_fanout" field.
func MaxFanoutLT(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldLT(FieldMaxFanout, v))
}

// MaxFanoutLTE applies the LTE predicate on the "max_fanout" field.
func MaxFanoutLTE(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldLTE(FieldMaxFanout, v))
}

// MaxChildrenTotalEQ applies the EQ predicate on the "max_children_total" field.
func MaxChildrenTotalEQ(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldMaxChildrenTotal, v))
}

// MaxChildrenTotalNEQ applies the NEQ predicate on the "max_children_total" field.
func MaxChildrenTotalNEQ(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNEQ(FieldMaxChildrenTotal, v))
}

// MaxChildrenTotalIn applies the In predicate on the "max_children_total" field.
func MaxChildrenTotalIn(vs ...int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldIn(FieldMaxChildrenTotal, vs...))
}

// MaxChildrenTotalNotIn applies the NotIn predicate on the "max_children_total" field.
func MaxChildrenTotalNotIn(vs ...int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNotIn(FieldMaxChildrenTotal, vs...))
}

// MaxChildrenTotalGT applies the GT predicate on the "max_children_total" field.
func MaxChildrenTotalGT(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldGT(FieldMaxChildrenTotal, v))
}

// MaxChildrenTotalGTE applies the GTE predicate on the "max_children_total" field.
func MaxChildrenTotalGTE(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldGTE(FieldMaxChildrenTotal, v))
}

// MaxChildrenTotalLT applies the LT predicate on the "max_children_total" field.
func MaxChildrenTotalLT(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldLT(FieldMaxChildrenTotal, v))
}

// MaxChildrenTotalLTE applies the LTE predicate on the "max_children_total" field.
func MaxChildrenTotalLTE(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldLTE(FieldMaxChildrenTotal, v))
}

// JoinTimeoutSEQ applies the EQ predicate on the "join_timeout_s" field.
func JoinTimeoutSEQ(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldJoinTimeoutS, v))
}

// JoinTimeoutSNEQ applies the NEQ predicate on the "join_timeout_s" field.
func JoinTimeoutSNEQ(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNEQ(FieldJoinTimeoutS, v))
}

// JoinTimeoutSIn applies the In predicate on the "join_timeout_s" field.
func JoinTimeoutSIn(vs ...int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldIn(FieldJoinTimeoutS, vs...))
}

// JoinTimeoutSNotIn applies the NotIn predicate on the "join_timeout_s" field.
func JoinTimeoutSNotIn(vs ...int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNotIn(FieldJoinTimeoutS, vs...))
}

// JoinTimeoutSGT applies the GT predicate on the "join_timeout_s" field.
func JoinTimeoutSGT(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldGT(FieldJoinTimeoutS, v))
}

// JoinTimeoutSGTE applies the GTE predicate on the "join_timeout_s" field.
func JoinTimeoutSGTE(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldGTE(FieldJoinTimeoutS, v))
}

// JoinTimeoutSLT applies the LT predicate on the "join_timeout_s" field.
func JoinTimeoutSLT(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldLT(FieldJoinTimeoutS, v))
}

// JoinTimeoutSLTE applies the LTE predicate on the "join_timeout_s" field.
func JoinTimeoutSLTE(v int) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldLTE(FieldJoinTimeoutS, v))
}

// AllowedScopeSubsetIsNil applies the IsNil predicate on the "allowed_scope_subset" field.
func AllowedScopeSubsetIsNil() predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldIsNull(FieldAllowedScopeSubset))
}

// AllowedScopeSubsetNotNil applies the NotNil predicate on the "allowed_scope_subset" field.
func AllowedScopeSubsetNotNil() predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNotNull(FieldAllowedScopeSubset))
}

// CapabilityManifestVersionEQ applies the EQ predicate on the "capability_manifest_version" field.
func CapabilityManifestVersionEQ(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldCapabilityManifestVersion, v))
}

// CapabilityManifestVersionNEQ applies the NEQ predicate on the "capability_manifest_version" field.
func CapabilityManifestVersionNEQ(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNEQ(FieldCapabilityManifestVersion, v))
}

// CapabilityManifestVersionIn applies the In predicate on the "capability_manifest_version" field.
func CapabilityManifestVersionIn(vs ...string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldIn(FieldCapabilityManifestVersion, vs...))
}

// CapabilityManifestVersionNotIn applies the NotIn predicate on the "capability_manifest_version" field.
func CapabilityManifestVersionNotIn(vs ...string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNotIn(FieldCapabilityManifestVersion, vs...))
}

// CapabilityManifestVersionGT applies the GT predicate on the "capability_manifest_version" field.
func CapabilityManifestVersionGT(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldGT(FieldCapabilityManifestVersion, v))
}

// CapabilityManifestVersionGTE applies the GTE predicate on the "capability_manifest_version" field.
func CapabilityManifestVersionGTE(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldGTE(FieldCapabilityManifestVersion, v))
}

// CapabilityManifestVersionLT applies the LT predicate on the "capability_manifest_version" field.
func CapabilityManifestVersionLT(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldLT(FieldCapabilityManifestVersion, v))
}

// CapabilityManifestVersionLTE applies the LTE predicate on the "capability_manifest_version" field.
func CapabilityManifestVersionLTE(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldLTE(FieldCapabilityManifestVersion, v))
}

// CapabilityManifestVersionContains applies the Contains predicate on the "capability_manifest_version" field.
func CapabilityManifestVersionContains(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldContains(FieldCapabilityManifestVersion, v))
}

// CapabilityManifestVersionHasPrefix applies the HasPrefix predicate on the "capability_manifest_version" field.
func CapabilityManifestVersionHasPrefix(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldHasPrefix(FieldCapabilityManifestVersion, v))
}

// CapabilityManifestVersionHasSuffix applies the HasSuffix predicate on the "capability_manifest_version" field.
func CapabilityManifestVersionHasSuffix(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldHasSuffix(FieldCapabilityManifestVersion, v))
}

// CapabilityManifestVersionIsNil applies the IsNil predicate on the "capability_manifest_version" field.
func CapabilityManifestVersionIsNil() predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldIsNull(FieldCapabilityManifestVersion))
}

// CapabilityManifestVersionNotNil applies the NotNil predicate on the "capability_manifest_version" field.
func CapabilityManifestVersionNotNil() predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNotNull(FieldCapabilityManifestVersion))
}

// CapabilityManifestVersionEqualFold applies the EqualFold predicate on the "capability_manifest_version" field.
func CapabilityManifestVersionEqualFold(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEqualFold(FieldCapabilityManifestVersion, v))
}

// CapabilityManifestVersionContainsFold applies the ContainsFold predicate on the "capability_manifest_version" field.
func CapabilityManifestVersionContainsFold(v string) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldContainsFold(FieldCapabilityManifestVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OrchestratorPolicy) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OrchestratorPolicy) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OrchestratorPolicy) predicate.OrchestratorPolicy {
	return predicate.OrchestratorPolicy(sql.NotPredicates(p))
}
