// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentforge/arc/ent/orchestratortarget"
)

// OrchestratorTarget is the model entity for the OrchestratorTarget schema.
type OrchestratorTarget struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// OrchestratorAgentID holds the value of the "orchestrator_agent_id" field.
	OrchestratorAgentID string `json:"orchestrator_agent_id,omitempty"`
	// TargetAgentID holds the value of the "target_agent_id" field.
	TargetAgentID *string `json:"target_agent_id,omitempty"`
	// TargetAgentSlug holds the value of the "target_agent_slug" field.
	TargetAgentSlug *string `json:"target_agent_slug,omitempty"`
	// Tag holds the value of the "tag" field.
	Tag          string `json:"tag,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OrchestratorTarget) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case orchestratortarget.FieldID, orchestratortarget.FieldTenantID, orchestratortarget.FieldOrchestratorAgentID, orchestratortarget.FieldTargetAgentID, orchestratortarget.FieldTargetAgentSlug, orchestratortarget.FieldTag:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OrchestratorTarget fields.
func (_m *OrchestratorTarget) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case orchestratortarget.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case orchestratortarget.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case orchestratortarget.FieldOrchestratorAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field orchestrator_agent_id", values[i])
			} else if value.Valid {
				_m.OrchestratorAgentID = value.String
			}
		case orchestratortarget.FieldTargetAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_agent_id", values[i])
			} else if value.Valid {
				_m.TargetAgentID = new(string)
				*_m.TargetAgentID = value.String
			}
		case orchestratortarget.FieldTargetAgentSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_agent_slug", values[i])
			} else if value.Valid {
				_m.TargetAgentSlug = new(string)
				*_m.TargetAgentSlug = value.String
			}
		case orchestratortarget.FieldTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tag", values[i])
			} else if value.Valid {
				_m.Tag = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OrchestratorTarget.
// This includes values selected through modifiers, order, etc.
func (_m *OrchestratorTarget) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this OrchestratorTarget.
// Note that you need to call OrchestratorTarget.Unwrap() before calling this method if this OrchestratorTarget
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OrchestratorTarget) Update() *OrchestratorTargetUpdateOne {
	return NewOrchestratorTargetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OrchestratorTarget entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OrchestratorTarget) Unwrap() *OrchestratorTarget {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OrchestratorTarget is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OrchestratorTarget) String() string {
	var builder strings.Builder
	builder.WriteString("OrchestratorTarget(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("orchestrator_agent_id=")
	builder.WriteString(_m.OrchestratorAgentID)
	builder.WriteString(", ")
	if v := _m.TargetAgentID; v != nil {
		builder.WriteString("target_agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TargetAgentSlug; v != nil {
		builder.WriteString("target_agent_slug=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("tag=")
	builder.WriteString(_m.Tag)
	builder.WriteByte(')')
	return builder.String()
}

// OrchestratorTargets is a parsable slice of OrchestratorTarget.
type OrchestratorTargets []*OrchestratorTarget
