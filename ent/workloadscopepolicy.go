// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentforge/arc/ent/workloadscopepolicy"
)

// WorkloadScopePolicy is the model entity for the WorkloadScopePolicy schema.
type WorkloadScopePolicy struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PrincipalID holds the value of the "principal_id" field.
	PrincipalID string `json:"principal_id,omitempty"`
	// RequestedScopes holds the value of the "requested_scopes" field.
	RequestedScopes []string `json:"requested_scopes,omitempty"`
	// ApprovedScopes holds the value of the "approved_scopes" field.
	ApprovedScopes []string `json:"approved_scopes,omitempty"`
	// Status holds the value of the "status" field.
	Status workloadscopepolicy.Status `json:"status,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkloadScopePolicy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workloadscopepolicy.FieldRequestedScopes, workloadscopepolicy.FieldApprovedScopes:
			values[i] = new([]byte)
		case workloadscopepolicy.FieldVersion:
			values[i] = new(sql.NullInt64)
		case workloadscopepolicy.FieldID, workloadscopepolicy.FieldPrincipalID, workloadscopepolicy.FieldStatus:
			values[i] = new(sql.NullString)
		case workloadscopepolicy.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkloadScopePolicy fields.
func (_m *WorkloadScopePolicy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workloadscopepolicy.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workloadscopepolicy.FieldPrincipalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field principal_id", values[i])
			} else if value.Valid {
				_m.PrincipalID = value.String
			}
		case workloadscopepolicy.FieldRequestedScopes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field requested_scopes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequestedScopes); err != nil {
					return fmt.Errorf("unmarshal field requested_scopes: %w", err)
				}
			}
		case workloadscopepolicy.FieldApprovedScopes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field approved_scopes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ApprovedScopes); err != nil {
					return fmt.Errorf("unmarshal field approved_scopes: %w", err)
				}
			}
		case workloadscopepolicy.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = workloadscopepolicy.Status(value.String)
			}
		case workloadscopepolicy.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case workloadscopepolicy.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkloadScopePolicy.
// This includes values selected through modifiers, order, etc.
func (_m *WorkloadScopePolicy) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WorkloadScopePolicy.
// Note that you need to call WorkloadScopePolicy.Unwrap() before calling this method if this WorkloadScopePolicy
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkloadScopePolicy) Update() *WorkloadScopePolicyUpdateOne {
	return NewWorkloadScopePolicyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkloadScopePolicy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkloadScopePolicy) Unwrap() *WorkloadScopePolicy {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkloadScopePolicy is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkloadScopePolicy) String() string {
	var builder strings.Builder
	builder.WriteString("WorkloadScopePolicy(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("principal_id=")
	builder.WriteString(_m.PrincipalID)
	builder.WriteString(", ")
	builder.WriteString("requested_scopes=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestedScopes))
	builder.WriteString(", ")
	builder.WriteString("approved_scopes=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApprovedScopes))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WorkloadScopePolicies is a parsable slice of WorkloadScopePolicy.
type WorkloadScopePolicies []*WorkloadScopePolicy
