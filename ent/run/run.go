// Code generated by ent, DO NOT EDIT.

package run

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the run type in the database.
	Label = "run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldInitiatorUserID holds the string denoting the initiator_user_id field in the database.
	FieldInitiatorUserID = "initiator_user_id"
	// FieldWorkloadPrincipalID holds the string denoting the workload_principal_id field in the database.
	FieldWorkloadPrincipalID = "workload_principal_id"
	// FieldDelegationGrantID holds the string denoting the delegation_grant_id field in the database.
	FieldDelegationGrantID = "delegation_grant_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRootRunID holds the string denoting the root_run_id field in the database.
	FieldRootRunID = "root_run_id"
	// FieldParentRunID holds the string denoting the parent_run_id field in the database.
	FieldParentRunID = "parent_run_id"
	// FieldParentNodeID holds the string denoting the parent_node_id field in the database.
	FieldParentNodeID = "parent_node_id"
	// FieldDepth holds the string denoting the depth field in the database.
	FieldDepth = "depth"
	// FieldSpawnKey holds the string denoting the spawn_key field in the database.
	FieldSpawnKey = "spawn_key"
	// FieldOrchestrationGroupID holds the string denoting the orchestration_group_id field in the database.
	FieldOrchestrationGroupID = "orchestration_group_id"
	// FieldInput holds the string denoting the input field in the database.
	FieldInput = "input"
	// FieldOutput holds the string denoting the output field in the database.
	FieldOutput = "output"
	// FieldTimeoutS holds the string denoting the timeout_s field in the database.
	FieldTimeoutS = "timeout_s"
	// FieldStatusReason holds the string denoting the status_reason field in the database.
	FieldStatusReason = "status_reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the run in the database.
	Table = "runs"
)

// Columns holds all SQL columns for run fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldAgentID,
	FieldInitiatorUserID,
	FieldWorkloadPrincipalID,
	FieldDelegationGrantID,
	FieldStatus,
	FieldRootRunID,
	FieldParentRunID,
	FieldParentNodeID,
	FieldDepth,
	FieldSpawnKey,
	FieldOrchestrationGroupID,
	FieldInput,
	FieldOutput,
	FieldTimeoutS,
	FieldStatusReason,
	FieldCreatedAt,
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
	// DefaultDepth holds the default value on creation for the "depth" field.
	DefaultDepth int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
	StatusTimedOut  Status = "timed_out"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusRunning, StatusPaused, StatusCompleted, StatusFailed, StatusCancelled, StatusTimedOut:
		return nil
	default:
		return fmt.Errorf("run: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Run queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByInitiatorUserID orders the results by the initiator_user_id field.
func ByInitiatorUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitiatorUserID, opts...).ToFunc()
}

// ByWorkloadPrincipalID orders the results by the workload_principal_id field.
func ByWorkloadPrincipalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkloadPrincipalID, opts...).ToFunc()
}

// ByDelegationGrantID orders the results by the delegation_grant_id field.
func ByDelegationGrantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelegationGrantID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRootRunID orders the results by the root_run_id field.
func ByRootRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRootRunID, opts...).ToFunc()
}

// ByParentRunID orders the results by the parent_run_id field.
func ByParentRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentRunID, opts...).ToFunc()
}

// ByParentNodeID orders the results by the parent_node_id field.
func ByParentNodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentNodeID, opts...).ToFunc()
}

// ByDepth orders the results by the depth field.
func ByDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepth, opts...).ToFunc()
}

// BySpawnKey orders the results by the spawn_key field.
func BySpawnKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpawnKey, opts...).ToFunc()
}

// ByOrchestrationGroupID orders the results by the orchestration_group_id field.
func ByOrchestrationGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrchestrationGroupID, opts...).ToFunc()
}

// ByTimeoutS orders the results by the timeout_s field.
func ByTimeoutS(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutS, opts...).ToFunc()
}

// ByStatusReason orders the results by the status_reason field.
func ByStatusReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
