// Code generated by ent, DO NOT EDIT.

package run

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentforge/arc/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTenantID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldAgentID, v))
}

// InitiatorUserID applies equality check predicate on the "initiator_user_id" field. It's identical to InitiatorUserIDEQ.
func InitiatorUserID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldInitiatorUserID, v))
}

// WorkloadPrincipalID applies equality check predicate on the "workload_principal_id" field. It's identical to WorkloadPrincipalIDEQ.
func WorkloadPrincipalID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldWorkloadPrincipalID, v))
}

// DelegationGrantID applies equality check predicate on the "delegation_grant_id" field. It's identical to DelegationGrantIDEQ.
func DelegationGrantID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldDelegationGrantID, v))
}

// RootRunID applies equality check predicate on the "root_run_id" field. It's identical to RootRunIDEQ.
func RootRunID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldRootRunID, v))
}

// ParentRunID applies equality check predicate on the "parent_run_id" field. It's identical to ParentRunIDEQ.
func ParentRunID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldParentRunID, v))
}

// ParentNodeID applies equality check predicate on the "parent_node_id" field. It's identical to ParentNodeIDEQ.
func ParentNodeID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldParentNodeID, v))
}

// Depth applies equality check predicate on the "depth" field. It's identical to DepthEQ.
func Depth(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldDepth, v))
}

// SpawnKey applies equality check predicate on the "spawn_key" field. It's identical to SpawnKeyEQ.
func SpawnKey(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSpawnKey, v))
}

// OrchestrationGroupID applies equality check predicate on the "orchestration_group_id" field. It's identical to OrchestrationGroupIDEQ.
func OrchestrationGroupID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldOrchestrationGroupID, v))
}

// TimeoutS applies equality check predicate on the "timeout_s" field. It's identical to TimeoutSEQ.
func TimeoutS(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTimeoutS, v))
}

// StatusReason applies equality check predicate on the "status_reason" field. It's identical to StatusReasonEQ.
func StatusReason(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStatusReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCompletedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldTenantID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldAgentID, v))
}

// InitiatorUserIDEQ applies the EQ predicate on the "initiator_user_id" field.
func InitiatorUserIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldInitiatorUserID, v))
}

// InitiatorUserIDNEQ applies the NEQ predicate on the "initiator_user_id" field.
func InitiatorUserIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldInitiatorUserID, v))
}

// InitiatorUserIDIn applies the In predicate on the "initiator_user_id" field.
func InitiatorUserIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldInitiatorUserID, vs...))
}

// InitiatorUserIDNotIn applies the NotIn predicate on the "initiator_user_id" field.
func InitiatorUserIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldInitiatorUserID, vs...))
}

// InitiatorUserIDGT applies the GT predicate on the "initiator_user_id" field.
func InitiatorUserIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldInitiatorUserID, v))
}

// InitiatorUserIDGTE applies the GTE predicate on the "initiator_user_id" field.
func InitiatorUserIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldInitiatorUserID, v))
}

// InitiatorUserIDLT applies the LT predicate on the "initiator_user_id" field.
func InitiatorUserIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldInitiatorUserID, v))
}

// InitiatorUserIDLTE applies the LTE predicate on the "initiator_user_id" field.
func InitiatorUserIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldInitiatorUserID, v))
}

// InitiatorUserIDContains applies the Contains predicate on the "initiator_user_id" field.
func InitiatorUserIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldInitiatorUserID, v))
}

// InitiatorUserIDHasPrefix applies the HasPrefix predicate on the "initiator_user_id" field.
func InitiatorUserIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldInitiatorUserID, v))
}

// InitiatorUserIDHasSuffix applies the HasSuffix predicate on the "initiator_user_id" field.
func InitiatorUserIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldInitiatorUserID, v))
}

// InitiatorUserIDEqualFold applies the EqualFold predicate on the "initiator_user_id" field.
func InitiatorUserIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldInitiatorUserID, v))
}

// InitiatorUserIDContainsFold applies the ContainsFold predicate on the "initiator_user_id" field.
func InitiatorUserIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldInitiatorUserID, v))
}

// WorkloadPrincipalIDEQ applies the EQ predicate on the "workload_principal_id" field.
func WorkloadPrincipalIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldWorkloadPrincipalID, v))
}

// WorkloadPrincipalIDNEQ applies the NEQ predicate on the "workload_principal_id" field.
func WorkloadPrincipalIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldWorkloadPrincipalID, v))
}

// WorkloadPrincipalIDIn applies the In predicate on the "workload_principal_id" field.
func WorkloadPrincipalIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldWorkloadPrincipalID, vs...))
}

// WorkloadPrincipalIDNotIn applies the NotIn predicate on the "workload_principal_id" field.
func WorkloadPrincipalIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldWorkloadPrincipalID, vs...))
}

// WorkloadPrincipalIDGT applies the GT predicate on the "workload_principal_id" field.
func WorkloadPrincipalIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldWorkloadPrincipalID, v))
}

// WorkloadPrincipalIDGTE applies the GTE predicate on the "workload_principal_id" field.
func WorkloadPrincipalIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldWorkloadPrincipalID, v))
}

// WorkloadPrincipalIDLT applies the LT predicate on the "workload_principal_id" field.
func WorkloadPrincipalIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldWorkloadPrincipalID, v))
}

// WorkloadPrincipalIDLTE applies the LTE predicate on the "workload_principal_id" field.
func WorkloadPrincipalIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldWorkloadPrincipalID, v))
}

// WorkloadPrincipalIDContains applies the Contains predicate on the "workload_principal_id" field.
func WorkloadPrincipalIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldWorkloadPrincipalID, v))
}

// WorkloadPrincipalIDHasPrefix applies the HasPrefix predicate on the "workload_principal_id" field.
func WorkloadPrincipalIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldWorkloadPrincipalID, v))
}

// WorkloadPrincipalIDHasSuffix applies the HasSuffix predicate on the "workload_principal_id" field.
func WorkloadPrincipalIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldWorkloadPrincipalID, v))
}

// WorkloadPrincipalIDEqualFold applies the EqualFold predicate on the "workload_principal_id" field.
func WorkloadPrincipalIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldWorkloadPrincipalID, v))
}

// WorkloadPrincipalIDContainsFold applies the ContainsFold predicate on the "workload_principal_id" field.
func WorkloadPrincipalIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldWorkloadPrincipalID, v))
}

// DelegationGrantIDEQ applies the EQ predicate on the "delegation_grant_id" field.
func DelegationGrantIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldDelegationGrantID, v))
}

// DelegationGrantIDNEQ applies the NEQ predicate on the "delegation_grant_id" field.
func DelegationGrantIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldDelegationGrantID, v))
}

// DelegationGrantIDIn applies the In predicate on the "delegation_grant_id" field.
func DelegationGrantIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldDelegationGrantID, vs...))
}

// DelegationGrantIDNotIn applies the NotIn predicate on the "delegation_grant_id" field.
func DelegationGrantIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldDelegationGrantID, vs...))
}

// DelegationGrantIDGT applies the GT predicate on the "delegation_grant_id" field.
func DelegationGrantIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldDelegationGrantID, v))
}

// DelegationGrantIDGTE applies the GTE predicate on the "delegation_grant_id" field.
func DelegationGrantIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldDelegationGrantID, v))
}

// DelegationGrantIDLT applies the LT predicate on the "delegation_grant_id" field.
func DelegationGrantIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldDelegationGrantID, v))
}

// DelegationGrantIDLTE applies the LTE predicate on the "delegation_grant_id" field.
func DelegationGrantIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldDelegationGrantID, v))
}

// DelegationGrantIDContains applies the Contains predicate on the "delegation_grant_id" field.
func DelegationGrantIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldDelegationGrantID, v))
}

// DelegationGrantIDHasPrefix applies the HasPrefix predicate on the "delegation_grant_id" field.
func DelegationGrantIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldDelegationGrantID, v))
}

// DelegationGrantIDHasSuffix applies the HasSuffix predicate on the "delegation_grant_id" field.
func DelegationGrantIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldDelegationGrantID, v))
}

// DelegationGrantIDEqualFold applies the EqualFold predicate on the "delegation_grant_id" field.
func DelegationGrantIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldDelegationGrantID, v))
}

// DelegationGrantIDContainsFold applies the ContainsFold predicate on the "delegation_grant_id" field.
func DelegationGrantIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldDelegationGrantID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStatus, vs...))
}

// RootRunIDEQ applies the EQ predicate on the "root_run_id" field.
func RootRunIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldRootRunID, v))
}

// RootRunIDNEQ applies the NEQ predicate on the "root_run_id" field.
func RootRunIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldRootRunID, v))
}

// RootRunIDIn applies the In predicate on the "root_run_id" field.
func RootRunIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldRootRunID, vs...))
}

// RootRunIDNotIn applies the NotIn predicate on the "root_run_id" field.
func RootRunIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldRootRunID, vs...))
}

// RootRunIDGT applies the GT predicate on the "root_run_id" field.
func RootRunIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldRootRunID, v))
}

// RootRunIDGTE applies the GTE predicate on the "root_run_id" field.
func RootRunIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldRootRunID, v))
}

// RootRunIDLT applies the LT predicate on the "root_run_id" field.
func RootRunIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldRootRunID, v))
}

// RootRunIDLTE applies the LTE predicate on the "root_run_id" field.
func RootRunIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldRootRunID, v))
}

// RootRunIDContains applies the Contains predicate on the "root_run_id" field.
func RootRunIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldRootRunID, v))
}

// RootRunIDHasPrefix applies the HasPrefix predicate on the "root_run_id" field.
func RootRunIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldRootRunID, v))
}

// RootRunIDHasSuffix applies the HasSuffix predicate on the "root_run_id" field.
func RootRunIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldRootRunID, v))
}

// RootRunIDEqualFold applies the EqualFold predicate on the "root_run_id" field.
func RootRunIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldRootRunID, v))
}

// RootRunIDContainsFold applies the ContainsFold predicate on the "root_run_id" field.
func RootRunIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldRootRunID, v))
}

// ParentRunIDEQ applies the EQ predicate on the "parent_run_id" field.
func ParentRunIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldParentRunID, v))
}

// ParentRunIDNEQ applies the NEQ predicate on the "parent_run_id" field.
func ParentRunIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldParentRunID, v))
}

// ParentRunIDIn applies the In predicate on the "parent_run_id" field.
func ParentRunIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldParentRunID, vs...))
}

// ParentRunIDNotIn applies the NotIn predicate on the "parent_run_id" field.
func ParentRunIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldParentRunID, vs...))
}

// ParentRunIDGT applies the GT predicate on the "parent_run_id" field.
func ParentRunIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldParentRunID, v))
}

// ParentRunIDGTE applies the GTE predicate on the "parent_run_id" field.
func ParentRunIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldParentRunID, v))
}

// ParentRunIDLT applies the LT predicate on the "parent_run_id" field.
func ParentRunIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldParentRunID, v))
}

// ParentRunIDLTE applies the LTE predicate on the "parent_run_id" field.
func ParentRunIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldParentRunID, v))
}

// ParentRunIDContains applies the Contains predicate on the "parent_run_id" field.
func ParentRunIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldParentRunID, v))
}

// ParentRunIDHasPrefix applies the HasPrefix predicate on the "parent_run_id" field.
func ParentRunIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldParentRunID, v))
}

// ParentRunIDHasSuffix applies the HasSuffix predicate on the "parent_run_id" field.
func ParentRunIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldParentRunID, v))
}

// ParentRunIDIsNil applies the IsNil predicate on the "parent_run_id" field.
func ParentRunIDIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldParentRunID))
}

// ParentRunIDNotNil applies the NotNil predicate on the "parent_run_id" field.
func ParentRunIDNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldParentRunID))
}

// ParentRunIDEqualFold applies the EqualFold predicate on the "parent_run_id" field.
func ParentRunIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldParentRunID, v))
}

// ParentRunIDContainsFold applies the ContainsFold predicate on the "parent_run_id" field.
func ParentRunIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldParentRunID, v))
}

// ParentNodeIDEQ applies the EQ predicate on the "parent_node_id" field.
func ParentNodeIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldParentNodeID, v))
}

// ParentNodeIDNEQ applies the NEQ predicate on the "parent_node_id" field.
func ParentNodeIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldParentNodeID, v))
}

// ParentNodeIDIn applies the In predicate on the "parent_node_id" field.
func ParentNodeIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldParentNodeID, vs...))
}

// ParentNodeIDNotIn applies the NotIn predicate on the "parent_node_id" field.
func ParentNodeIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldParentNodeID, vs...))
}

// ParentNodeIDGT applies the GT predicate on the "parent_node_id" field.
func ParentNodeIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldParentNodeID, v))
}

// ParentNodeIDGTE applies the GTE predicate on the "parent_node_id" field.
func ParentNodeIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldParentNodeID, v))
}

// ParentNodeIDLT applies the LT predicate on the "parent_node_id" field.
func ParentNodeIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldParentNodeID, v))
}

// ParentNodeIDLTE applies the LTE predicate on the "parent_node_id" field.
func ParentNodeIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldParentNodeID, v))
}

// ParentNodeIDContains applies the Contains predicate on the "parent_node_id" field.
func ParentNodeIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldParentNodeID, v))
}

// ParentNodeIDHasPrefix applies the HasPrefix predicate on the "parent_node_id" field.
func ParentNodeIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldParentNodeID, v))
}

// ParentNodeIDHasSuffix applies the HasSuffix predicate on the "parent_node_id" field.
func ParentNodeIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldParentNodeID, v))
}

// ParentNodeIDIsNil applies the IsNil predicate on the "parent_node_id" field.
func ParentNodeIDIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldParentNodeID))
}

// ParentNodeIDNotNil applies the NotNil predicate on the "parent_node_id" field.
func ParentNodeIDNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldParentNodeID))
}

// ParentNodeIDEqualFold applies the EqualFold predicate on the "parent_node_id" field.
func ParentNodeIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldParentNodeID, v))
}

// ParentNodeIDContainsFold applies the ContainsFold predicate on the "parent_node_id" field.
func ParentNodeIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldParentNodeID, v))
}

// DepthEQ applies the EQ predicate on the "depth" field.
func DepthEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldDepth, v))
}

// DepthNEQ applies the NEQ predicate on the "depth" field.
func DepthNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldDepth, v))
}

// DepthIn applies the In predicate on the "depth" field.
func DepthIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldDepth, vs...))
}

// DepthNotIn applies the NotIn predicate on the "depth" field.
func DepthNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldDepth, vs...))
}

// DepthGT applies the GT predicate on the "depth" field.
func DepthGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldDepth, v))
}

// DepthGTE applies the GTE predicate on the "depth" field.
func DepthGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldDepth, v))
}

// DepthLT applies the LT predicate on the "depth" field.
func DepthLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldDepth, v))
}

// DepthLTE applies the LTE predicate on the "depth" field.
func DepthLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldDepth, v))
}

// SpawnKeyEQ applies the EQ predicate on the "spawn_key" field.
func SpawnKeyEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSpawnKey, v))
}

// SpawnKeyNEQ applies the NEQ predicate on the "spawn_key" field.
func SpawnKeyNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldSpawnKey, v))
}

// SpawnKeyIn applies the In predicate on the "spawn_key" field.
func SpawnKeyIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldSpawnKey, vs...))
}

// SpawnKeyNotIn applies the NotIn predicate on the "spawn_key" field.
func SpawnKeyNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldSpawnKey, vs...))
}

// SpawnKeyGT applies the GT predicate on the "spawn_key" field.
func SpawnKeyGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldSpawnKey, v))
}

// SpawnKeyGTE applies the GTE predicate on the "spawn_key" field.
func SpawnKeyGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldSpawnKey, v))
}

// SpawnKeyLT applies the LT predicate on the "spawn_key" field.
func SpawnKeyLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldSpawnKey, v))
}

// SpawnKeyLTE applies the LTE predicate on the "spawn_key" field.
func SpawnKeyLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldSpawnKey, v))
}

// SpawnKeyContains applies the Contains predicate on the "spawn_key" field.
func SpawnKeyContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldSpawnKey, v))
}

// SpawnKeyHasPrefix applies the HasPrefix predicate on the "spawn_key" field.
func SpawnKeyHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldSpawnKey, v))
}

// SpawnKeyHasSuffix applies the HasSuffix predicate on the "spawn_key" field.
func SpawnKeyHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldSpawnKey, v))
}

// SpawnKeyIsNil applies the IsNil predicate on the "spawn_key" field.
func SpawnKeyIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldSpawnKey))
}

// SpawnKeyNotNil applies the NotNil predicate on the "spawn_key" field.
func SpawnKeyNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldSpawnKey))
}

// SpawnKeyEqualFold applies the EqualFold predicate on the "spawn_key" field.
func SpawnKeyEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldSpawnKey, v))
}

// SpawnKeyContainsFold applies the ContainsFold predicate on the "spawn_key" field.
func SpawnKeyContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldSpawnKey, v))
}

// OrchestrationGroupIDEQ applies the EQ predicate on the "orchestration_group_id" field.
func OrchestrationGroupIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldOrchestrationGroupID, v))
}

// OrchestrationGroupIDNEQ applies the NEQ predicate on the "orchestration_group_id" field.
func OrchestrationGroupIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldOrchestrationGroupID, v))
}

// OrchestrationGroupIDIn applies the In predicate on the "orchestration_group_id" field.
func OrchestrationGroupIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldOrchestrationGroupID, vs...))
}

// OrchestrationGroupIDNotIn applies the NotIn predicate on the "orchestration_group_id" field.
func OrchestrationGroupIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldOrchestrationGroupID, vs...))
}

// OrchestrationGroupIDGT applies the GT predicate on the "orchestration_group_id" field.
func OrchestrationGroupIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldOrchestrationGroupID, v))
}

// OrchestrationGroupIDGTE applies the GTE predicate on the "orchestration_group_id" field.
func OrchestrationGroupIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldOrchestrationGroupID, v))
}

// OrchestrationGroupIDLT applies the LT predicate on the "orchestration_group_id" field.
func OrchestrationGroupIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldOrchestrationGroupID, v))
}

// OrchestrationGroupIDLTE applies the LTE predicate on the "orchestration_group_id" field.
func OrchestrationGroupIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldOrchestrationGroupID, v))
}

// OrchestrationGroupIDContains applies the Contains predicate on the "orchestration_group_id" field.
func OrchestrationGroupIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldOrchestrationGroupID, v))
}

// OrchestrationGroupIDHasPrefix applies the HasPrefix predicate on the "orchestration_group_id" field.
func OrchestrationGroupIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldOrchestrationGroupID, v))
}

// OrchestrationGroupIDHasSuffix applies the HasSuffix predicate on the "orchestration_group_id" field.
func OrchestrationGroupIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldOrchestrationGroupID, v))
}

// OrchestrationGroupIDIsNil applies the IsNil predicate on the "orchestration_group_id" field.
func OrchestrationGroupIDIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldOrchestrationGroupID))
}

// OrchestrationGroupIDNotNil applies the NotNil predicate on the "orchestration_group_id" field.
func OrchestrationGroupIDNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldOrchestrationGroupID))
}

// OrchestrationGroupIDEqualFold applies the EqualFold predicate on the "orchestration_group_id" field.
func OrchestrationGroupIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldOrchestrationGroupID, v))
}

// OrchestrationGroupIDContainsFold applies the ContainsFold predicate on the "orchestration_group_id" field.
func OrchestrationGroupIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldOrchestrationGroupID, v))
}

// InputIsNil applies the IsNil predicate on the "input" field.
func InputIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldInput))
}

// InputNotNil applies the NotNil predicate on the "input" field.
func InputNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldInput))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldOutput))
}

// TimeoutSEQ applies the EQ predicate on the "timeout_s" field.
func TimeoutSEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTimeoutS, v))
}

// TimeoutSNEQ applies the NEQ predicate on the "timeout_s" field.
func TimeoutSNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldTimeoutS, v))
}

// TimeoutSIn applies the In predicate on the "timeout_s" field.
func TimeoutSIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldTimeoutS, vs...))
}

// TimeoutSNotIn applies the NotIn predicate on the "timeout_s" field.
func TimeoutSNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldTimeoutS, vs...))
}

// TimeoutSGT applies the GT predicate on the "timeout_s" field.
func TimeoutSGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldTimeoutS, v))
}

// TimeoutSGTE applies the GTE predicate on the "timeout_s" field.
func TimeoutSGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldTimeoutS, v))
}

// TimeoutSLT applies the LT predicate on the "timeout_s" field.
func TimeoutSLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldTimeoutS, v))
}

// TimeoutSLTE applies the LTE predicate on the "timeout_s" field.
func TimeoutSLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldTimeoutS, v))
}

// TimeoutSIsNil applies the IsNil predicate on the "timeout_s" field.
func TimeoutSIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldTimeoutS))
}

// TimeoutSNotNil applies the NotNil predicate on the "timeout_s" field.
func TimeoutSNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldTimeoutS))
}

// StatusReasonEQ applies the EQ predicate on the "status_reason" field.
func StatusReasonEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStatusReason, v))
}

// StatusReasonNEQ applies the NEQ predicate on the "status_reason" field.
func StatusReasonNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStatusReason, v))
}

// StatusReasonIn applies the In predicate on the "status_reason" field.
func StatusReasonIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStatusReason, vs...))
}

// StatusReasonNotIn applies the NotIn predicate on the "status_reason" field.
func StatusReasonNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStatusReason, vs...))
}

// StatusReasonGT applies the GT predicate on the "status_reason" field.
func StatusReasonGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldStatusReason, v))
}

// StatusReasonGTE applies the GTE predicate on the "status_reason" field.
func StatusReasonGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldStatusReason, v))
}

// StatusReasonLT applies the LT predicate on the "status_reason" field.
func StatusReasonLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldStatusReason, v))
}

// StatusReasonLTE applies the LTE predicate on the "status_reason" field.
func StatusReasonLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldStatusReason, v))
}

// StatusReasonContains applies the Contains predicate on the "status_reason" field.
func StatusReasonContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldStatusReason, v))
}

// StatusReasonHasPrefix applies the HasPrefix predicate on the "status_reason" field.
func StatusReasonHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldStatusReason, v))
}

// StatusReasonHasSuffix applies the HasSuffix predicate on the "status_reason" field.
func StatusReasonHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldStatusReason, v))
}

// StatusReasonIsNil applies the IsNil predicate on the "status_reason" field.
func StatusReasonIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldStatusReason))
}

// StatusReasonNotNil applies the NotNil predicate on the "status_reason" field.
func StatusReasonNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldStatusReason))
}

// StatusReasonEqualFold applies the EqualFold predicate on the "status_reason" field.
func StatusReasonEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldStatusReason, v))
}

// StatusReasonContainsFold applies the ContainsFold predicate on the "status_reason" field.
func StatusReasonContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldStatusReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Run) predicate.Run {
	return predicate.Run(sql.NotPredicates(p))
}
