// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentforge/arc/ent/delegationgrant"
)

// DelegationGrant is the model entity for the DelegationGrant schema.
type DelegationGrant struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// PrincipalID holds the value of the "principal_id" field.
	PrincipalID string `json:"principal_id,omitempty"`
	// InitiatorUserID holds the value of the "initiator_user_id" field.
	InitiatorUserID string `json:"initiator_user_id,omitempty"`
	// Set once the run row exists; grant is created first in the same transaction
	RunID *string `json:"run_id,omitempty"`
	// Grant of the spawning run, for derived child grants
	ParentGrantID *string `json:"parent_grant_id,omitempty"`
	// EffectiveScopes holds the value of the "effective_scopes" field.
	EffectiveScopes []string `json:"effective_scopes,omitempty"`
	// Status holds the value of the "status" field.
	Status delegationgrant.Status `json:"status,omitempty"`
	// RevocationReason holds the value of the "revocation_reason" field.
	RevocationReason *string `json:"revocation_reason,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DelegationGrant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case delegationgrant.FieldEffectiveScopes:
			values[i] = new([]byte)
		case delegationgrant.FieldID, delegationgrant.FieldTenantID, delegationgrant.FieldPrincipalID, delegationgrant.FieldInitiatorUserID, delegationgrant.FieldRunID, delegationgrant.FieldParentGrantID, delegationgrant.FieldStatus, delegationgrant.FieldRevocationReason:
			values[i] = new(sql.NullString)
		case delegationgrant.FieldExpiresAt, delegationgrant.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DelegationGrant fields.
func (_m *DelegationGrant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case delegationgrant.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case delegationgrant.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case delegationgrant.FieldPrincipalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field principal_id", values[i])
			} else if value.Valid {
				_m.PrincipalID = value.String
			}
		case delegationgrant.FieldInitiatorUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field initiator_user_id", values[i])
			} else if value.Valid {
				_m.InitiatorUserID = value.String
			}
		case delegationgrant.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = new(string)
				*_m.RunID = value.String
			}
		case delegationgrant.FieldParentGrantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_grant_id", values[i])
			} else if value.Valid {
				_m.ParentGrantID = new(string)
				*_m.ParentGrantID = value.String
			}
		case delegationgrant.FieldEffectiveScopes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field effective_scopes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EffectiveScopes); err != nil {
					return fmt.Errorf("unmarshal field effective_scopes: %w", err)
				}
			}
		case delegationgrant.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = delegationgrant.Status(value.String)
			}
		case delegationgrant.FieldRevocationReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field revocation_reason", values[i])
			} else if value.Valid {
				_m.RevocationReason = new(string)
				*_m.RevocationReason = value.String
			}
		case delegationgrant.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case delegationgrant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DelegationGrant.
// This includes values selected through modifiers, order, etc.
func (_m *DelegationGrant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DelegationGrant.
// Note that you need to call DelegationGrant.Unwrap() before calling this method if this DelegationGrant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DelegationGrant) Update() *DelegationGrantUpdateOne {
	return NewDelegationGrantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DelegationGrant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DelegationGrant) Unwrap() *DelegationGrant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DelegationGrant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DelegationGrant) String() string {
	var builder strings.Builder
	builder.WriteString("DelegationGrant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("principal_id=")
	builder.WriteString(_m.PrincipalID)
	builder.WriteString(", ")
	builder.WriteString("initiator_user_id=")
	builder.WriteString(_m.InitiatorUserID)
	builder.WriteString(", ")
	if v := _m.RunID; v != nil {
		builder.WriteString("run_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ParentGrantID; v != nil {
		builder.WriteString("parent_grant_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("effective_scopes=")
	builder.WriteString(fmt.Sprintf("%v", _m.EffectiveScopes))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.RevocationReason; v != nil {
		builder.WriteString("revocation_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DelegationGrants is a parsable slice of DelegationGrant.
type DelegationGrants []*DelegationGrant
