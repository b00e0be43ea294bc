// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentforge/arc/ent/orchestrationgroup"
)

// OrchestrationGroup is the model entity for the OrchestrationGroup schema.
type OrchestrationGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Parent run whose graph spawned this group
	OrchestratorRunID string `json:"orchestrator_run_id,omitempty"`
	// ParentNodeID holds the value of the "parent_node_id" field.
	ParentNodeID *string `json:"parent_node_id,omitempty"`
	// FailurePolicy holds the value of the "failure_policy" field.
	FailurePolicy orchestrationgroup.FailurePolicy `json:"failure_policy,omitempty"`
	// JoinMode holds the value of the "join_mode" field.
	JoinMode orchestrationgroup.JoinMode `json:"join_mode,omitempty"`
	// Required iff join_mode=quorum
	QuorumThreshold *int `json:"quorum_threshold,omitempty"`
	// Wall-clock join timeout from started_at
	TimeoutS int `json:"timeout_s,omitempty"`
	// Status holds the value of the "status" field.
	Status orchestrationgroup.Status `json:"status,omitempty"`
	// Members cancelled by the join decision; lets replays return the deciding payload
	CancellationPropagated int `json:"cancellation_propagated,omitempty"`
	// Effective orchestrator policy at creation time
	PolicySnapshot map[string]interface{} `json:"policy_snapshot,omitempty"`
	// Replays with the same prefix return this group
	IdempotencyKeyPrefix *string `json:"idempotency_key_prefix,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OrchestrationGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case orchestrationgroup.FieldPolicySnapshot:
			values[i] = new([]byte)
		case orchestrationgroup.FieldQuorumThreshold, orchestrationgroup.FieldTimeoutS, orchestrationgroup.FieldCancellationPropagated:
			values[i] = new(sql.NullInt64)
		case orchestrationgroup.FieldID, orchestrationgroup.FieldTenantID, orchestrationgroup.FieldOrchestratorRunID, orchestrationgroup.FieldParentNodeID, orchestrationgroup.FieldFailurePolicy, orchestrationgroup.FieldJoinMode, orchestrationgroup.FieldStatus, orchestrationgroup.FieldIdempotencyKeyPrefix:
			values[i] = new(sql.NullString)
		case orchestrationgroup.FieldStartedAt, orchestrationgroup.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OrchestrationGroup fields.
func (_m *OrchestrationGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case orchestrationgroup.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case orchestrationgroup.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case orchestrationgroup.FieldOrchestratorRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field orchestrator_run_id", values[i])
			} else if value.Valid {
				_m.OrchestratorRunID = value.String
			}
		case orchestrationgroup.FieldParentNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_node_id", values[i])
			} else if value.Valid {
				_m.ParentNodeID = new(string)
				*_m.ParentNodeID = value.String
			}
		case orchestrationgroup.FieldFailurePolicy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_policy", values[i])
			} else if value.Valid {
				_m.FailurePolicy = orchestrationgroup.FailurePolicy(value.String)
			}
		case orchestrationgroup.FieldJoinMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field join_mode", values[i])
			} else if value.Valid {
				_m.JoinMode = orchestrationgroup.JoinMode(value.String)
			}
		case orchestrationgroup.FieldQuorumThreshold:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quorum_threshold", values[i])
			} else if value.Valid {
				_m.QuorumThreshold = new(int)
				*_m.QuorumThreshold = int(value.Int64)
			}
		case orchestrationgroup.FieldTimeoutS:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_s", values[i])
			} else if value.Valid {
				_m.TimeoutS = int(value.Int64)
			}
		case orchestrationgroup.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = orchestrationgroup.Status(value.String)
			}
		case orchestrationgroup.FieldCancellationPropagated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cancellation_propagated", values[i])
			} else if value.Valid {
				_m.CancellationPropagated = int(value.Int64)
			}
		case orchestrationgroup.FieldPolicySnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field policy_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PolicySnapshot); err != nil {
					return fmt.Errorf("unmarshal field policy_snapshot: %w", err)
				}
			}
		case orchestrationgroup.FieldIdempotencyKeyPrefix:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field idempotency_key_prefix", values[i])
			} else if value.Valid {
				_m.IdempotencyKeyPrefix = new(string)
				*_m.IdempotencyKeyPrefix = value.String
			}
		case orchestrationgroup.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case orchestrationgroup.FieldCompletedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the OrchestrationGroup.
// This includes values selected through modifiers, order, etc.
func (_m *OrchestrationGroup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this OrchestrationGroup.
// Note that you need to call OrchestrationGroup.Unwrap() before calling this method if this OrchestrationGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OrchestrationGroup) Update() *OrchestrationGroupUpdateOne {
	return NewOrchestrationGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OrchestrationGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OrchestrationGroup) Unwrap() *OrchestrationGroup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OrchestrationGroup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OrchestrationGroup) String() string {
	var builder strings.Builder
	builder.WriteString("OrchestrationGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("orchestrator_run_id=")
	builder.WriteString(_m.OrchestratorRunID)
	builder.WriteString(", ")
	if v := _m.ParentNodeID; v != nil {
		builder.WriteString("parent_node_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("failure_policy=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailurePolicy))
	builder.WriteString(", ")
	builder.WriteString("join_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.JoinMode))
	builder.WriteString(", ")
	if v := _m.QuorumThreshold; v != nil {
		builder.WriteString("quorum_threshold=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("timeout_s=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeoutS))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("cancellation_propagated=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancellationPropagated))
	builder.WriteString(", ")
	builder.WriteString("policy_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.PolicySnapshot))
	builder.WriteString(", ")
	if v := _m.IdempotencyKeyPrefix; v != nil {
		builder.WriteString("idempotency_key_prefix=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// OrchestrationGroups is a parsable slice of OrchestrationGroup.
type OrchestrationGroups []*OrchestrationGroup
