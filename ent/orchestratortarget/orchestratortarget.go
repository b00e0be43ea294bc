// Code generated by ent, DO NOT EDIT.

package orchestratortarget

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the orchestratortarget type in the database.
	Label = "orchestrator_target"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "target_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldOrchestratorAgentID holds the string denoting the orchestrator_agent_id field in the database.
	FieldOrchestratorAgentID = "orchestrator_agent_id"
	// FieldTargetAgentID holds the string denoting the target_agent_id field in the database.
	FieldTargetAgentID = "target_agent_id"
	// FieldTargetAgentSlug holds the string denoting the target_agent_slug field in the database.
	FieldTargetAgentSlug = "target_agent_slug"
	// FieldTag holds the string denoting the tag field in the database.
	FieldTag = "tag"
	// Table holds the table name of the orchestratortarget in the database.
	Table = "orchestrator_targets"
)

// Columns holds all SQL columns for orchestratortarget fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldOrchestratorAgentID,
	FieldTargetAgentID,
	FieldTargetAgentSlug,
	FieldTag,
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

// OrderOption defines the ordering options for the OrchestratorTarget queries.
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

// ByTargetAgentID orders the results by the target_agent_id field.
func ByTargetAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetAgentID, opts...).ToFunc()
}

// ByTargetAgentSlug orders the results by the target_agent_slug field.
func ByTargetAgentSlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetAgentSlug, opts...).ToFunc()
}

// ByTag orders the results by the tag field.
func ByTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTag, opts...).ToFunc()
}
