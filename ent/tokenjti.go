// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentforge/arc/ent/tokenjti"
)

// TokenJTI is the model entity for the TokenJTI schema.
type TokenJTI struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// GrantID holds the value of the "grant_id" field.
	GrantID string `json:"grant_id,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// RevokedAt holds the value of the "revoked_at" field.
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	// RevocationReason holds the value of the "revocation_reason" field.
	RevocationReason *string `json:"revocation_reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TokenJTI) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tokenjti.FieldID, tokenjti.FieldGrantID, tokenjti.FieldRevocationReason:
			values[i] = new(sql.NullString)
		case tokenjti.FieldExpiresAt, tokenjti.FieldRevokedAt, tokenjti.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TokenJTI fields.
func (_m *TokenJTI) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tokenjti.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tokenjti.FieldGrantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grant_id", values[i])
			} else if value.Valid {
				_m.GrantID = value.String
			}
		case tokenjti.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case tokenjti.FieldRevokedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field revoked_at", values[i])
			} else if value.Valid {
				_m.RevokedAt = new(time.Time)
				*_m.RevokedAt = value.Time
			}
		case tokenjti.FieldRevocationReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field revocation_reason", values[i])
			} else if value.Valid {
				_m.RevocationReason = new(string)
				*_m.RevocationReason = value.String
			}
		case tokenjti.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TokenJTI.
// This includes values selected through modifiers, order, etc.
func (_m *TokenJTI) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TokenJTI.
// Note that you need to call TokenJTI.Unwrap() before calling this method if this TokenJTI
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TokenJTI) Update() *TokenJTIUpdateOne {
	return NewTokenJTIClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TokenJTI entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TokenJTI) Unwrap() *TokenJTI {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TokenJTI is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TokenJTI) String() string {
	var builder strings.Builder
	builder.WriteString("TokenJTI(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("grant_id=")
	builder.WriteString(_m.GrantID)
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.RevokedAt; v != nil {
		builder.WriteString("revoked_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RevocationReason; v != nil {
		builder.WriteString("revocation_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TokenJTIs is a parsable slice of TokenJTI.
type TokenJTIs []*TokenJTI
