// Code generated by ent, DO NOT EDIT.

package orchestratorpolicy

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the orchestratorpolicy type in the database.
	Label = "orchestrator_policy"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "policy_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldOrchestratorAgentID holds the string denoting the orchestrator_agent_id field in the database.
	FieldOrchestratorAgentID = "orchestrator_agent_id"
	// FieldEnforcePublishedOnly holds the string denoting the enforce_published_only field in the database.
	FieldEnforcePublishedOnly = "enforce_published_only"
	// FieldDefaultFailurePolicy holds the string denoting the default_failure_policy field in the database.
	FieldDefaultFailurePolicy = "default_failure_policy"
	// FieldMaxDepth holds the string denoting the max_depth field in the database.
	FieldMaxDepth = "max_depth"
	// FieldMaxFanout holds the string denoting the max_fanout field in the database.
	FieldMaxFanout = "max_fanout"
	// FieldMaxChildrenTotal holds the string denoting the max_children_total field in the database.
	FieldMaxChildrenTotal = "max_children_total"
	// FieldJoinTimeoutS holds the string denoting the join_timeout_s field in the database.
	FieldJoinTimeoutS = "join_timeout_s"
	// FieldAllowedScopeSubset holds the string denoting the allowed_scope_subset field in the database.
	FieldAllowedScopeSubset = "allowed_scope_subset"
	// FieldCapabilityManifestVersion holds the string denoting the capability_manifest_version field in the database.
	FieldCapabilityManifestVersion = "capability_manifest_version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the orchestratorpolicy in the database.
	Table = "orchestrator_policies"
)

// Columns holds all SQL columns for orchestratorpolicy fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldOrchestratorAgentID,
	FieldEnforcePublishedOnly,
	FieldDefaultFailurePolicy,
	FieldMaxDepth,
	FieldMaxFanout,
	FieldMaxChildrenTotal,
	FieldJoinTimeoutS,
	FieldAllowedScopeSubset,
	FieldCapabilityManifestVersion,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultEnforcePublishedOnly holds the default value on creation for the "enforce_published_only" field.
	DefaultEnforcePublishedOnly bool
	// DefaultMaxDepth holds the default value on creation for the "max_depth" field.
	DefaultMaxDepth int
	// DefaultMaxFanout holds the default value on creation for the "max_fanout" field.
	DefaultMaxFanout int
	// DefaultMaxChildrenTotal holds the default value on creation for the "max_children_total" field.
	DefaultMaxChildrenTotal int
	// DefaultJoinTimeoutS holds the default value on creation for the "join_timeout_s" field.
	DefaultJoinTimeoutS int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// DefaultFailurePolicy defines the type for the "default_failure_policy" enum field.
type DefaultFailurePolicy string

// DefaultFailurePolicyBestEffort is the default value of the DefaultFailurePolicy enum.
const DefaultDefaultFailurePolicy = DefaultFailurePolicyBestEffort

// DefaultFailurePolicy values.
const (
	DefaultFailurePolicyBestEffort DefaultFailurePolicy = "best_effort"
	DefaultFailurePolicyFailFast   DefaultFailurePolicy = "fail_fast"
)

func (dfp DefaultFailurePolicy) String() string {
	return string(dfp)
}

// DefaultFailurePolicyValidator is a validator for the "default_failure_policy" field enum values. It is called by the builders before save.
func DefaultFailurePolicyValidator(dfp DefaultFailurePolicy) error {
	switch dfp {
	case DefaultFailurePolicyBestEffort, DefaultFailurePolicyFailFast:
		return nil
	default:
		return fmt.Errorf("orchestratorpolicy: invalid enum value for default_failure_policy field: %q", dfp)
	}
}

// OrderOption defines the ordering options for the OrchestratorPolicy queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByOrchestratorAgentID orders the results by the orchestrator_agent_id field.
func ByOrchestratorAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrchestratorAgentID, opts...).ToFunc()
}

// ByEnforcePublishedOnly orders the results by the enforce_published_only field.
func ByEnforcePublishedOnly(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnforcePublishedOnly, opts...).ToFunc()
}

// ByDefaultFailurePolicy orders the results by the default_failure_policy field.
func ByDefaultFailurePolicy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultFailurePolicy, opts...).ToFunc()
}

// ByMaxDepth orders the results by the max_depth field.
func ByMaxDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxDepth, opts...).ToFunc()
}

// ByMaxFanout orders the results by the max_fanout field.
func ByMaxFanout(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxFanout, opts...).ToFunc()
}

// ByMaxChildrenTotal orders the results by the max_children_total field.
func ByMaxChildrenTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxChildrenTotal, opts...).ToFunc()
}

// ByJoinTimeoutS orders the results by the join_timeout_s field.
func ByJoinTimeoutS(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJoinTimeoutS, opts...).ToFunc()
}

// ByCapabilityManifestVersion orders the results by the capability_manifest_version field.
func ByCapabilityManifestVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCapabilityManifestVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
