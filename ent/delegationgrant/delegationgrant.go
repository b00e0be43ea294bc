// Code generated by ent, DO NOT EDIT.

package delegationgrant

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the delegationgrant type in the database.
	Label = "delegation_grant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "grant_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldPrincipalID holds the string denoting the principal_id field in the database.
	FieldPrincipalID = "principal_id"
	// FieldInitiatorUserID holds the string denoting the initiator_user_id field in the database.
	FieldInitiatorUserID = "initiator_user_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldParentGrantID holds the string denoting the parent_grant_id field in the database.
	FieldParentGrantID = "parent_grant_id"
	// FieldEffectiveScopes holds the string denoting the effective_scopes field in the database.
	FieldEffectiveScopes = "effective_scopes"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRevocationReason holds the string denoting the revocation_reason field in the database.
	FieldRevocationReason = "revocation_reason"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the delegationgrant in the database.
	Table = "delegation_grants"
)

// Columns holds all SQL columns for delegationgrant fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldPrincipalID,
	FieldInitiatorUserID,
	FieldRunID,
	FieldParentGrantID,
	FieldEffectiveScopes,
	FieldStatus,
	FieldRevocationReason,
	FieldExpiresAt,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive  Status = "active"
	StatusRevoked Status = "revoked"
	StatusExpired Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusRevoked, StatusExpired:
		return nil
	default:
		return fmt.Errorf("delegationgrant: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DelegationGrant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByPrincipalID orders the results by the principal_id field.
func ByPrincipalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrincipalID, opts...).ToFunc()
}

// ByInitiatorUserID orders the results by the initiator_user_id field.
func ByInitiatorUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitiatorUserID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByParentGrantID orders the results by the parent_grant_id field.
func ByParentGrantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentGrantID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRevocationReason orders the results by the revocation_reason field.
func ByRevocationReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevocationReason, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
