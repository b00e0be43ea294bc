// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentforge/arc/ent/orchestratorpolicy"
)

// OrchestratorPolicy is the model entity for the OrchestratorPolicy schema.
type OrchestratorPolicy struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// OrchestratorAgentID holds the value of the "orchestrator_agent_id" field.
	OrchestratorAgentID string `json:"orchestrator_agent_id,omitempty"`
	// EnforcePublishedOnly holds the value of the "enforce_published_only" field.
	EnforcePublishedOnly bool `json:"enforce_published_only,omitempty"`
	// DefaultFailurePolicy holds the value of the "default_failure_policy" field.
	DefaultFailurePolicy orchestratorpolicy.DefaultFailurePolicy `json:"default_failure_policy,omitempty"`
	// MaxDepth holds the value of the "max_depth" field.
	MaxDepth int `json:"max_depth,omitempty"`
	// Per-parent and per-call child limit
	MaxFanout int `json:"max_fanout,omitempty"`
	// Whole-subtree limit, counted from the root run
	MaxChildrenTotal int `json:"max_children_total,omitempty"`
	// JoinTimeoutS holds the value of the "join_timeout_s" field.
	JoinTimeoutS int `json:"join_timeout_s,omitempty"`
	// Empty means no scope attenuation beyond the caller's grant
	AllowedScopeSubset []string `json:"allowed_scope_subset,omitempty"`
	// CapabilityManifestVersion holds the value of the "capability_manifest_version" field.
	CapabilityManifestVersion string `json:"capability_manifest_version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OrchestratorPolicy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case orchestratorpolicy.FieldAllowedScopeSubset:
			values[i] = new([]byte)
		case orchestratorpolicy.FieldEnforcePublishedOnly:
			values[i] = new(sql.NullBool)
		case orchestratorpolicy.FieldMaxDepth, orchestratorpolicy.FieldMaxFanout, orchestratorpolicy.FieldMaxChildrenTotal, orchestratorpolicy.FieldJoinTimeoutS:
			values[i] = new(sql.NullInt64)
		case orchestratorpolicy.FieldID, orchestratorpolicy.FieldTenantID, orchestratorpolicy.FieldOrchestratorAgentID, orchestratorpolicy.FieldDefaultFailurePolicy, orchestratorpolicy.FieldCapabilityManifestVersion:
			values[i] = new(sql.NullString)
		case orchestratorpolicy.FieldCreatedAt, orchestratorpolicy.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OrchestratorPolicy fields.
func (_m *OrchestratorPolicy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case orchestratorpolicy.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case orchestratorpolicy.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case orchestratorpolicy.FieldOrchestratorAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field orchestrator_agent_id", values[i])
			} else if value.Valid {
				_m.OrchestratorAgentID = value.String
			}
		case orchestratorpolicy.FieldEnforcePublishedOnly:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enforce_published_only", values[i])
			} else if value.Valid {
				_m.EnforcePublishedOnly = value.Bool
			}
		case orchestratorpolicy.FieldDefaultFailurePolicy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_failure_policy", values[i])
			} else if value.Valid {
				_m.DefaultFailurePolicy = orchestratorpolicy.DefaultFailurePolicy(value.String)
			}
		case orchestratorpolicy.FieldMaxDepth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_depth", values[i])
			} else if value.Valid {
				_m.MaxDepth = int(value.Int64)
			}
		case orchestratorpolicy.FieldMaxFanout:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_fanout", values[i])
			} else if value.Valid {
				_m.MaxFanout = int(value.Int64)
			}
		case orchestratorpolicy.FieldMaxChildrenTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_children_total", values[i])
			} else if value.Valid {
				_m.MaxChildrenTotal = int(value.Int64)
			}
		case orchestratorpolicy.FieldJoinTimeoutS:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field join_timeout_s", values[i])
			} else if value.Valid {
				_m.JoinTimeoutS = int(value.Int64)
			}
		case orchestratorpolicy.FieldAllowedScopeSubset:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allowed_scope_subset", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AllowedScopeSubset); err != nil {
					return fmt.Errorf("unmarshal field allowed_scope_subset: %w", err)
				}
			}
		case orchestratorpolicy.FieldCapabilityManifestVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field capability_manifest_version", values[i])
			} else if value.Valid {
				_m.CapabilityManifestVersion = value.String
			}
		case orchestratorpolicy.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case orchestratorpolicy.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the OrchestratorPolicy.
// This includes values selected through modifiers, order, etc.
func (_m *OrchestratorPolicy) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this OrchestratorPolicy.
// Note that you need to call OrchestratorPolicy.Unwrap() before calling this method if this OrchestratorPolicy
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OrchestratorPolicy) Update() *OrchestratorPolicyUpdateOne {
	return NewOrchestratorPolicyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OrchestratorPolicy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OrchestratorPolicy) Unwrap() *OrchestratorPolicy {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OrchestratorPolicy is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OrchestratorPolicy) String() string {
	var builder strings.Builder
	builder.WriteString("OrchestratorPolicy(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("orchestrator_agent_id=")
	builder.WriteString(_m.OrchestratorAgentID)
	builder.WriteString(", ")
	builder.WriteString("enforce_published_only=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnforcePublishedOnly))
	builder.WriteString(", ")
	builder.WriteString("default_failure_policy=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultFailurePolicy))
	builder.WriteString(", ")
	builder.WriteString("max_depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxDepth))
	builder.WriteString(", ")
	builder.WriteString("max_fanout=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxFanout))
	builder.WriteString(", ")
	builder.WriteString("max_children_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxChildrenTotal))
	builder.WriteString(", ")
	builder.WriteString("join_timeout_s=")
	builder.WriteString(fmt.Sprintf("%v", _m.JoinTimeoutS))
	builder.WriteString(", ")
	builder.WriteString("allowed_scope_subset=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowedScopeSubset))
	builder.WriteString(", ")
	builder.WriteString("capability_manifest_version=")
	builder.WriteString(_m.CapabilityManifestVersion)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// OrchestratorPolicies is a parsable slice of OrchestratorPolicy.
type OrchestratorPolicies []*OrchestratorPolicy
