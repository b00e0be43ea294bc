// Code generated by ent, DO NOT EDIT.

package orchestrationgroup

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the orchestrationgroup type in the database.
	Label = "orchestration_group"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "group_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldOrchestratorRunID holds the string denoting the orchestrator_run_id field in the database.
	FieldOrchestratorRunID = "orchestrator_run_id"
	// FieldParentNodeID holds the string denoting the parent_node_id field in the database.
	FieldParentNodeID = "parent_node_id"
	// FieldFailurePolicy holds the string denoting the failure_policy field in the database.
	FieldFailurePolicy = "failure_policy"
	// FieldJoinMode holds the string denoting the join_mode field in the database.
	FieldJoinMode = "join_mode"
	// FieldQuorumThreshold holds the string denoting the quorum_threshold field in the database.
	FieldQuorumThreshold = "quorum_threshold"
	// FieldTimeoutS holds the string denoting the timeout_s field in the database.
	FieldTimeoutS = "timeout_s"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCancellationPropagated holds the string denoting the cancellation_propagated field in the database.
	FieldCancellationPropagated = "cancellation_propagated"
	// FieldPolicySnapshot holds the string denoting the policy_snapshot field in the database.
	FieldPolicySnapshot = "policy_snapshot"
	// FieldIdempotencyKeyPrefix holds the string denoting the idempotency_key_prefix field in the database.
	FieldIdempotencyKeyPrefix = "idempotency_key_prefix"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the orchestrationgroup in the database.
	Table = "orchestration_groups"
)

// Columns holds all SQL columns for orchestrationgroup fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldOrchestratorRunID,
	FieldParentNodeID,
	FieldFailurePolicy,
	FieldJoinMode,
	FieldQuorumThreshold,
	FieldTimeoutS,
	FieldStatus,
	FieldCancellationPropagated,
	FieldPolicySnapshot,
	FieldIdempotencyKeyPrefix,
	FieldStartedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimeoutS holds the default value on creation for the "timeout_s" field.
	DefaultTimeoutS int
	// DefaultCancellationPropagated holds the default value on creation for the "cancellation_propagated" field.
	DefaultCancellationPropagated int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// FailurePolicy defines the type for the "failure_policy" enum field.
type FailurePolicy string

// FailurePolicyBestEffort is the default value of the FailurePolicy enum.
const DefaultFailurePolicy = FailurePolicyBestEffort

// FailurePolicy values.
const (
	FailurePolicyBestEffort FailurePolicy = "best_effort"
	FailurePolicyFailFast   FailurePolicy = "fail_fast"
)

func (fp FailurePolicy) String() string {
	return string(fp)
}

// FailurePolicyValidator is a validator for the "failure_policy" field enum values. It is called by the builders before save.
func FailurePolicyValidator(fp FailurePolicy) error {
	switch fp {
	case FailurePolicyBestEffort, FailurePolicyFailFast:
		return nil
	default:
		return fmt.Errorf("orchestrationgroup: invalid enum value for failure_policy field: %q", fp)
	}
}

// JoinMode defines the type for the "join_mode" enum field.
type JoinMode string

// JoinModeAll is the default value of the JoinMode enum.
const DefaultJoinMode = JoinModeAll

// JoinMode values.
const (
	JoinModeAll          JoinMode = "all"
	JoinModeQuorum       JoinMode = "quorum"
	JoinModeFirstSuccess JoinMode = "first_success"
	JoinModeBestEffort   JoinMode = "best_effort"
	JoinModeFailFast     JoinMode = "fail_fast"
)

func (jm JoinMode) String() string {
	return string(jm)
}

// JoinModeValidator is a validator for the "join_mode" field enum values. It is called by the builders before save.
func JoinModeValidator(jm JoinMode) error {
	switch jm {
	case JoinModeAll, JoinModeQuorum, JoinModeFirstSuccess, JoinModeBestEffort, JoinModeFailFast:
		return nil
	default:
		return fmt.Errorf("orchestrationgroup: invalid enum value for join_mode field: %q", jm)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning             Status = "running"
	StatusCompleted           Status = "completed"
	StatusCompletedWithErrors Status = "completed_with_errors"
	StatusFailed              Status = "failed"
	StatusTimedOut            Status = "timed_out"
	StatusCancelled           Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusCompletedWithErrors, StatusFailed, StatusTimedOut, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("orchestrationgroup: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the OrchestrationGroup queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByOrchestratorRunID orders the results by the orchestrator_run_id field.
func ByOrchestratorRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrchestratorRunID, opts...).ToFunc()
}

// ByParentNodeID orders the results by the parent_node_id field.
func ByParentNodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentNodeID, opts...).ToFunc()
}

// ByFailurePolicy orders the results by the failure_policy field.
func ByFailurePolicy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailurePolicy, opts...).ToFunc()
}

// ByJoinMode orders the results by the join_mode field.
func ByJoinMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJoinMode, opts...).ToFunc()
}

// ByQuorumThreshold orders the results by the quorum_threshold field.
func ByQuorumThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuorumThreshold, opts...).ToFunc()
}

// ByTimeoutS orders the results by the timeout_s field.
func ByTimeoutS(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutS, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCancellationPropagated orders the results by the cancellation_propagated field.
func ByCancellationPropagated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancellationPropagated, opts...).ToFunc()
}

// ByIdempotencyKeyPrefix orders the results by the idempotency_key_prefix field.
func ByIdempotencyKeyPrefix(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdempotencyKeyPrefix, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
