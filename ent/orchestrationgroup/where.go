// Code generated by ent, DO NOT EDIT.

package orchestrationgroup

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentforge/arc/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldTenantID, v))
}

// OrchestratorRunID applies equality check predicate on the "orchestrator_run_id" field. It's identical to OrchestratorRunIDEQ.
func OrchestratorRunID(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldOrchestratorRunID, v))
}

// ParentNodeID applies equality check predicate on the "parent_node_id" field. It's identical to ParentNodeIDEQ.
func ParentNodeID(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldParentNodeID, v))
}

// QuorumThreshold applies equality check predicate on the "quorum_threshold" field. It's identical to QuorumThresholdEQ.
func QuorumThreshold(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldQuorumThreshold, v))
}

// TimeoutS applies equality check predicate on the "timeout_s" field. It's identical to TimeoutSEQ.
func TimeoutS(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldTimeoutS, v))
}

// CancellationPropagated applies equality check predicate on the "cancellation_propagated" field. It's identical to CancellationPropagatedEQ.
func CancellationPropagated(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldCancellationPropagated, v))
}

// IdempotencyKeyPrefix applies equality check predicate on the "idempotency_key_prefix" field. It's identical to IdempotencyKeyPrefixEQ.
func IdempotencyKeyPrefix(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldIdempotencyKeyPrefix, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldCompletedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldContainsFold(FieldTenantID, v))
}

// OrchestratorRunIDEQ applies the EQ predicate on the "orchestrator_run_id" field.
func OrchestratorRunIDEQ(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldOrchestratorRunID, v))
}

// OrchestratorRunIDNEQ applies the NEQ predicate on the "orchestrator_run_id" field.
func OrchestratorRunIDNEQ(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNEQ(FieldOrchestratorRunID, v))
}

// OrchestratorRunIDIn applies the In predicate on the "orchestrator_run_id" field.
func OrchestratorRunIDIn(vs ...string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldIn(FieldOrchestratorRunID, vs...))
}

// OrchestratorRunIDNotIn applies the NotIn predicate on the "orchestrator_run_id" field.
func OrchestratorRunIDNotIn(vs ...string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNotIn(FieldOrchestratorRunID, vs...))
}

// OrchestratorRunIDGT applies the GT predicate on the "orchestrator_run_id" field.
func OrchestratorRunIDGT(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldGT(FieldOrchestratorRunID, v))
}

// OrchestratorRunIDGTE applies the GTE predicate on the "orchestrator_run_id" field.
func OrchestratorRunIDGTE(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldGTE(FieldOrchestratorRunID, v))
}

// OrchestratorRunIDLT applies the LT predicate on the "orchestrator_run_id" field.
func OrchestratorRunIDLT(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldLT(FieldOrchestratorRunID, v))
}

// OrchestratorRunIDLTE applies the LTE predicate on the "orchestrator_run_id" field.
func OrchestratorRunIDLTE(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldLTE(FieldOrchestratorRunID, v))
}

// OrchestratorRunIDContains applies the Contains predicate on the "orchestrator_run_id" field.
func OrchestratorRunIDContains(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldContains(FieldOrchestratorRunID, v))
}

// OrchestratorRunIDHasPrefix applies the HasPrefix predicate on the "orchestrator_run_id" field.
func OrchestratorRunIDHasPrefix(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldHasPrefix(FieldOrchestratorRunID, v))
}

// OrchestratorRunIDHasSuffix applies the HasSuffix predicate on the "orchestrator_run_id" field.
func OrchestratorRunIDHasSuffix(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldHasSuffix(FieldOrchestratorRunID, v))
}

// OrchestratorRunIDEqualFold applies the EqualFold predicate on the "orchestrator_run_id" field.
func OrchestratorRunIDEqualFold(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEqualFold(FieldOrchestratorRunID, v))
}

// OrchestratorRunIDContainsFold applies the ContainsFold predicate on the "orchestrator_run_id" field.
func OrchestratorRunIDContainsFold(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldContainsFold(FieldOrchestratorRunID, v))
}

// ParentNodeIDEQ applies the EQ predicate on the "parent_node_id" field.
func ParentNodeIDEQ(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldParentNodeID, v))
}

// ParentNodeIDNEQ applies the NEQ predicate on the "parent_node_id" field.
func ParentNodeIDNEQ(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNEQ(FieldParentNodeID, v))
}

// ParentNodeIDIn applies the In predicate on the "parent_node_id" field.
func ParentNodeIDIn(vs ...string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldIn(FieldParentNodeID, vs...))
}

// ParentNodeIDNotIn applies the NotIn predicate on the "parent_node_id" field.
func ParentNodeIDNotIn(vs ...string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNotIn(FieldParentNodeID, vs...))
}

// ParentNodeIDGT applies the GT predicate on the "parent_node_id" field.
func ParentNodeIDGT(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldGT(FieldParentNodeID, v))
}

// ParentNodeIDGTE applies the GTE predicate on the "parent_node_id" field.
func ParentNodeIDGTE(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldGTE(FieldParentNodeID, v))
}

// ParentNodeIDLT applies the LT predicate on the "parent_node_id" field.
func ParentNodeIDLT(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldLT(FieldParentNodeID, v))
}

// ParentNodeIDLTE applies the LTE predicate on the "parent_node_id" field.
func ParentNodeIDLTE(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldLTE(FieldParentNodeID, v))
}

// ParentNodeIDContains applies the Contains predicate on the "parent_node_id" field.
func ParentNodeIDContains(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldContains(FieldParentNodeID, v))
}

// ParentNodeIDHasPrefix applies the HasPrefix predicate on the "parent_node_id" field.
func ParentNodeIDHasPrefix(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldHasPrefix(FieldParentNodeID, v))
}

// ParentNodeIDHasSuffix applies the HasSuffix predicate on the "parent_node_id" field.
func ParentNodeIDHasSuffix(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldHasSuffix(FieldParentNodeID, v))
}

// ParentNodeIDIsNil applies the IsNil predicate on the "parent_node_id" field.
func ParentNodeIDIsNil() predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldIsNull(FieldParentNodeID))
}

// ParentNodeIDNotNil applies the NotNil predicate on the "parent_node_id" field.
func ParentNodeIDNotNil() predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNotNull(FieldParentNodeID))
}

// ParentNodeIDEqualFold applies the EqualFold predicate on the "parent_node_id" field.
func ParentNodeIDEqualFold(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEqualFold(FieldParentNodeID, v))
}

// ParentNodeIDContainsFold applies the ContainsFold predicate on the "parent_node_id" field.
func ParentNodeIDContainsFold(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldContainsFold(FieldParentNodeID, v))
}

// FailurePolicyEQ applies the EQ predicate on the "failure_policy" field.
func FailurePolicyEQ(v FailurePolicy) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldFailurePolicy, v))
}

// FailurePolicyNEQ applies the NEQ predicate on the "failure_policy" field.
func FailurePolicyNEQ(v FailurePolicy) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNEQ(FieldFailurePolicy, v))
}

// FailurePolicyIn applies the In predicate on the "failure_policy" field.
func FailurePolicyIn(vs ...FailurePolicy) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldIn(FieldFailurePolicy, vs...))
}

// FailurePolicyNotIn applies the NotIn predicate on the "failure_policy" field.
func FailurePolicyNotIn(vs ...FailurePolicy) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNotIn(FieldFailurePolicy, vs...))
}

// JoinModeEQ applies the EQ predicate on the "join_mode" field.
func JoinModeEQ(v JoinMode) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldJoinMode, v))
}

// JoinModeNEQ applies the NEQ predicate on the "join_mode" field.
func JoinModeNEQ(v JoinMode) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNEQ(FieldJoinMode, v))
}

// JoinModeIn applies the In predicate on the "join_mode" field.
func JoinModeIn(vs ...JoinMode) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldIn(FieldJoinMode, vs...))
}

// JoinModeNotIn applies the NotIn predicate on the "join_mode" field.
func JoinModeNotIn(vs ...JoinMode) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNotIn(FieldJoinMode, vs...))
}

// QuorumThresholdEQ applies the EQ predicate on the "quorum_threshold" field.
func QuorumThresholdEQ(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldQuorumThreshold, v))
}

// QuorumThresholdNEQ applies the NEQ predicate on the "quorum_threshold" field.
func QuorumThresholdNEQ(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNEQ(FieldQuorumThreshold, v))
}

// QuorumThresholdIn applies the In predicate on the "quorum_threshold" field.
func QuorumThresholdIn(vs ...int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldIn(FieldQuorumThreshold, vs...))
}

// QuorumThresholdNotIn applies the NotIn predicate on the "quorum_threshold" field.
func QuorumThresholdNotIn(vs ...int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNotIn(FieldQuorumThreshold, vs...))
}

// QuorumThresholdGT applies the GT predicate on the "quorum_threshold" field.
func QuorumThresholdGT(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldGT(FieldQuorumThreshold, v))
}

// QuorumThresholdGTE applies the GTE predicate on the "quorum_threshold" field.
func QuorumThresholdGTE(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldGTE(FieldQuorumThreshold, v))
}

// QuorumThresholdLT applies the LT predicate on the "quorum_threshold" field.
func QuorumThresholdLT(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldLT(FieldQuorumThreshold, v))
}

// QuorumThresholdLTE applies the LTE predicate on the "quorum_threshold" field.
func QuorumThresholdLTE(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldLTE(FieldQuorumThreshold, v))
}

// QuorumThresholdIsNil applies the IsNil predicate on the "quorum_threshold" field.
func QuorumThresholdIsNil() predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldIsNull(FieldQuorumThreshold))
}

// QuorumThresholdNotNil applies the NotNil predicate on the "quorum_threshold" field.
func QuorumThresholdNotNil() predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNotNull(FieldQuorumThreshold))
}

// TimeoutSEQ applies the EQ predicate on the "timeout_s" field.
func TimeoutSEQ(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldTimeoutS, v))
}

// TimeoutSNEQ applies the NEQ predicate on the "timeout_s" field.
func TimeoutSNEQ(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNEQ(FieldTimeoutS, v))
}

// TimeoutSIn applies the In predicate on the "timeout_s" field.
func TimeoutSIn(vs ...int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldIn(FieldTimeoutS, vs...))
}

// TimeoutSNotIn applies the NotIn predicate on the "timeout_s" field.
func TimeoutSNotIn(vs ...int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNotIn(FieldTimeoutS, vs...))
}

// TimeoutSGT applies the GT predicate on the "timeout_s" field.
func TimeoutSGT(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldGT(FieldTimeoutS, v))
}

// TimeoutSGTE applies the GTE predicate on the "timeout_s" field.
func TimeoutSGTE(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldGTE(FieldTimeoutS, v))
}

// TimeoutSLT applies the LT predicate on the "timeout_s" field.
func TimeoutSLT(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldLT(FieldTimeoutS, v))
}

// TimeoutSLTE applies the LTE predicate on the "timeout_s" field.
func TimeoutSLTE(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldLTE(FieldTimeoutS, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNotIn(FieldStatus, vs...))
}

// CancellationPropagatedEQ applies the EQ predicate on the "cancellation_propagated" field.
func CancellationPropagatedEQ(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldCancellationPropagated, v))
}

// CancellationPropagatedNEQ applies the NEQ predicate on the "cancellation_propagated" field.
func CancellationPropagatedNEQ(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNEQ(FieldCancellationPropagated, v))
}

// CancellationPropagatedIn applies the In predicate on the "cancellation_propagated" field.
func CancellationPropagatedIn(vs ...int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldIn(FieldCancellationPropagated, vs...))
}

// CancellationPropagatedNotIn applies the NotIn predicate on the "cancellation_propagated" field.
func CancellationPropagatedNotIn(vs ...int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNotIn(FieldCancellationPropagated, vs...))
}

// CancellationPropagatedGT applies the GT predicate on the "cancellation_propagated" field.
func CancellationPropagatedGT(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldGT(FieldCancellationPropagated, v))
}

// CancellationPropagatedGTE applies the GTE predicate on the "cancellation_propagated" field.
func CancellationPropagatedGTE(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldGTE(FieldCancellationPropagated, v))
}

// CancellationPropagatedLT applies the LT predicate on the "cancellation_propagated" field.
func CancellationPropagatedLT(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldLT(FieldCancellationPropagated, v))
}

// CancellationPropagatedLTE applies the LTE predicate on the "cancellation_propagated" field.
func CancellationPropagatedLTE(v int) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldLTE(FieldCancellationPropagated, v))
}

// IdempotencyKeyPrefixEQ applies the EQ predicate on the "idempotency_key_prefix" field.
func IdempotencyKeyPrefixEQ(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldIdempotencyKeyPrefix, v))
}

// IdempotencyKeyPrefixNEQ applies the NEQ predicate on the "idempotency_key_prefix" field.
func IdempotencyKeyPrefixNEQ(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNEQ(FieldIdempotencyKeyPrefix, v))
}

// IdempotencyKeyPrefixIn applies the In predicate on the "idempotency_key_prefix" field.
func IdempotencyKeyPrefixIn(vs ...string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldIn(FieldIdempotencyKeyPrefix, vs...))
}

// IdempotencyKeyPrefixNotIn applies the NotIn predicate on the "idempotency_key_prefix" field.
func IdempotencyKeyPrefixNotIn(vs ...string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNotIn(FieldIdempotencyKeyPrefix, vs...))
}

// IdempotencyKeyPrefixGT applies the GT predicate on the "idempotency_key_prefix" field.
func IdempotencyKeyPrefixGT(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldGT(FieldIdempotencyKeyPrefix, v))
}

// IdempotencyKeyPrefixGTE applies the GTE predicate on the "idempotency_key_prefix" field.
func IdempotencyKeyPrefixGTE(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldGTE(FieldIdempotencyKeyPrefix, v))
}

// IdempotencyKeyPrefixLT applies the LT predicate on the "idempotency_key_prefix" field.
func IdempotencyKeyPrefixLT(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldLT(FieldIdempotencyKeyPrefix, v))
}

// IdempotencyKeyPrefixLTE applies the LTE predicate on the "idempotency_key_prefix" field.
func IdempotencyKeyPrefixLTE(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldLTE(FieldIdempotencyKeyPrefix, v))
}

// IdempotencyKeyPrefixContains applies the Contains predicate on the "idempotency_key_prefix" field.
func IdempotencyKeyPrefixContains(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldContains(FieldIdempotencyKeyPrefix, v))
}

// IdempotencyKeyPrefixHasPrefix applies the HasPrefix predicate on the "idempotency_key_prefix" field.
func IdempotencyKeyPrefixHasPrefix(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldHasPrefix(FieldIdempotencyKeyPrefix, v))
}

// IdempotencyKeyPrefixHasSuffix applies the HasSuffix predicate on the "idempotency_key_prefix" field.
func IdempotencyKeyPrefixHasSuffix(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldHasSuffix(FieldIdempotencyKeyPrefix, v))
}

// IdempotencyKeyPrefixIsNil applies the IsNil predicate on the "idempotency_key_prefix" field.
func IdempotencyKeyPrefixIsNil() predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldIsNull(FieldIdempotencyKeyPrefix))
}

// IdempotencyKeyPrefixNotNil applies the NotNil predicate on the "idempotency_key_prefix" field.
func IdempotencyKeyPrefixNotNil() predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNotNull(FieldIdempotencyKeyPrefix))
}

// IdempotencyKeyPrefixEqualFold applies the EqualFold predicate on the "idempotency_key_prefix" field.
func IdempotencyKeyPrefixEqualFold(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEqualFold(FieldIdempotencyKeyPrefix, v))
}

// IdempotencyKeyPrefixContainsFold applies the ContainsFold predicate on the "idempotency_key_prefix" field.
func IdempotencyKeyPrefixContainsFold(v string) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldContainsFold(FieldIdempotencyKeyPrefix, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OrchestrationGroup) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OrchestrationGroup) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OrchestrationGroup) predicate.OrchestrationGroup {
	return predicate.OrchestrationGroup(sql.NotPredicates(p))
}
