// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentforge/arc/ent/run"
)

// Run is the model entity for the Run schema.
type Run struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Agent whose graph this run executes
	AgentID string `json:"agent_id,omitempty"`
	// End user on whose behalf the run acts
	InitiatorUserID string `json:"initiator_user_id,omitempty"`
	// WorkloadPrincipalID holds the value of the "workload_principal_id" field.
	WorkloadPrincipalID string `json:"workload_principal_id,omitempty"`
	// DelegationGrantID holds the value of the "delegation_grant_id" field.
	DelegationGrantID string `json:"delegation_grant_id,omitempty"`
	// Status holds the value of the "status" field.
	Status run.Status `json:"status,omitempty"`
	// Equals id for root runs; shared by the whole subtree
	RootRunID string `json:"root_run_id,omitempty"`
	// ParentRunID holds the value of the "parent_run_id" field.
	ParentRunID *string `json:"parent_run_id,omitempty"`
	// Graph node in the parent that spawned this run
	ParentNodeID *string `json:"parent_node_id,omitempty"`
	// Root is 0; child = parent + 1
	Depth int `json:"depth,omitempty"`
	// Idempotency key, unique within a parent when set
	SpawnKey *string `json:"spawn_key,omitempty"`
	// OrchestrationGroupID holds the value of the "orchestration_group_id" field.
	OrchestrationGroupID *string `json:"orchestration_group_id,omitempty"`
	// Input holds the value of the "input" field.
	Input map[string]interface{} `json:"input,omitempty"`
	// Output holds the value of the "output" field.
	Output map[string]interface{} `json:"output,omitempty"`
	// Interpreter deadline hint; not enforced by the kernel
	TimeoutS *int `json:"timeout_s,omitempty"`
	// Why the run reached its current status (e.g. cancellation reason)
	StatusReason *string `json:"status_reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Run) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case run.FieldInput, run.FieldOutput:
			values[i] = new([]byte)
		case run.FieldDepth, run.FieldTimeoutS:
			values[i] = new(sql.NullInt64)
		case run.FieldID, run.FieldTenantID, run.FieldAgentID, run.FieldInitiatorUserID, run.FieldWorkloadPrincipalID, run.FieldDelegationGrantID, run.FieldStatus, run.FieldRootRunID, run.FieldParentRunID, run.FieldParentNodeID, run.FieldSpawnKey, run.FieldOrchestrationGroupID, run.FieldStatusReason:
			values[i] = new(sql.NullString)
		case run.FieldCreatedAt, run.FieldStartedAt, run.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Run fields.
func (_m *Run) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case run.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case run.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case run.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case run.FieldInitiatorUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field initiator_user_id", values[i])
			} else if value.Valid {
				_m.InitiatorUserID = value.String
			}
		case run.FieldWorkloadPrincipalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workload_principal_id", values[i])
			} else if value.Valid {
				_m.WorkloadPrincipalID = value.String
			}
		case run.FieldDelegationGrantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delegation_grant_id", values[i])
			} else if value.Valid {
				_m.DelegationGrantID = value.String
			}
		case run.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = run.Status(value.String)
			}
		case run.FieldRootRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field root_run_id", values[i])
			} else if value.Valid {
				_m.RootRunID = value.String
			}
		case run.FieldParentRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_run_id", values[i])
			} else if value.Valid {
				_m.ParentRunID = new(string)
				*_m.ParentRunID = value.String
			}
		case run.FieldParentNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_node_id", values[i])
			} else if value.Valid {
				_m.ParentNodeID = new(string)
				*_m.ParentNodeID = value.String
			}
		case run.FieldDepth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field depth", values[i])
			} else if value.Valid {
				_m.Depth = int(value.Int64)
			}
		case run.FieldSpawnKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field spawn_key", values[i])
			} else if value.Valid {
				_m.SpawnKey = new(string)
				*_m.SpawnKey = value.String
			}
		case run.FieldOrchestrationGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field orchestration_group_id", values[i])
			} else if value.Valid {
				_m.OrchestrationGroupID = new(string)
				*_m.OrchestrationGroupID = value.String
			}
		case run.FieldInput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Input); err != nil {
					return fmt.Errorf("unmarshal field input: %w", err)
				}
			}
		case run.FieldOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Output); err != nil {
					return fmt.Errorf("unmarshal field output: %w", err)
				}
			}
		case run.FieldTimeoutS:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_s", values[i])
			} else if value.Valid {
				_m.TimeoutS = new(int)
				*_m.TimeoutS = int(value.Int64)
			}
		case run.FieldStatusReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_reason", values[i])
			} else if value.Valid {
				_m.StatusReason = new(string)
				*_m.StatusReason = value.String
			}
		case run.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case run.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case run.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Run.
// This includes values selected through modifiers, order, etc.
func (_m *Run) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Run.
// Note that you need to call Run.Unwrap() before calling this method if this Run
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Run) Update() *RunUpdateOne {
	return NewRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Run entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Run) Unwrap() *Run {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Run is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Run) String() string {
	var builder strings.Builder
	builder.WriteString("Run(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("initiator_user_id=")
	builder.WriteString(_m.InitiatorUserID)
	builder.WriteString(", ")
	builder.WriteString("workload_principal_id=")
	builder.WriteString(_m.WorkloadPrincipalID)
	builder.WriteString(", ")
	builder.WriteString("delegation_grant_id=")
	builder.WriteString(_m.DelegationGrantID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("root_run_id=")
	builder.WriteString(_m.RootRunID)
	builder.WriteString(", ")
	if v := _m.ParentRunID; v != nil {
		builder.WriteString("parent_run_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ParentNodeID; v != nil {
		builder.WriteString("parent_node_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.Depth))
	builder.WriteString(", ")
	if v := _m.SpawnKey; v != nil {
		builder.WriteString("spawn_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OrchestrationGroupID; v != nil {
		builder.WriteString("orchestration_group_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("input=")
	builder.WriteString(fmt.Sprintf("%v", _m.Input))
	builder.WriteString(", ")
	builder.WriteString("output=")
	builder.WriteString(fmt.Sprintf("%v", _m.Output))
	builder.WriteString(", ")
	if v := _m.TimeoutS; v != nil {
		builder.WriteString("timeout_s=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.StatusReason; v != nil {
		builder.WriteString("status_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Runs is a parsable slice of Run.
type Runs []*Run
