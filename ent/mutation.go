// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentforge/arc/ent/agent"
	"github.com/agentforge/arc/ent/delegationgrant"
	"github.com/agentforge/arc/ent/groupmember"
	"github.com/agentforge/arc/ent/orchestrationgroup"
	"github.com/agentforge/arc/ent/orchestratorpolicy"
	"github.com/agentforge/arc/ent/orchestratortarget"
	"github.com/agentforge/arc/ent/predicate"
	"github.com/agentforge/arc/ent/run"
	"github.com/agentforge/arc/ent/tokenjti"
	"github.com/agentforge/arc/ent/workloadprincipal"
	"github.com/agentforge/arc/ent/workloadscopepolicy"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent               = "Agent"
	TypeDelegationGrant     = "DelegationGrant"
	TypeGroupMember         = "GroupMember"
	TypeOrchestrationGroup  = "OrchestrationGroup"
	TypeOrchestratorPolicy  = "OrchestratorPolicy"
	TypeOrchestratorTarget  = "OrchestratorTarget"
	TypeRun                 = "Run"
	TypeTokenJTI            = "TokenJTI"
	TypeWorkloadPrincipal   = "WorkloadPrincipal"
	TypeWorkloadScopePolicy = "WorkloadScopePolicy"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	slug          *string
	name          *string
	status        *agent.Status
	graph_spec    *map[string]interface{}
	spec_version  *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Agent, error)
	predicates    []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *AgentMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *AgentMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *AgentMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetSlug sets the "slug" field.
func (m *AgentMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *AgentMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *AgentMutation) ResetSlug() {
	m.slug = nil
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *AgentMutation) ClearName() {
	m.name = nil
	m.clearedFields[agent.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *AgentMutation) NameCleared() bool {
	_, ok := m.clearedFields[agent.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, agent.FieldName)
}

// SetStatus sets the "status" field.
func (m *AgentMutation) SetStatus(a agent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentMutation) Status() (r agent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStatus(ctx context.Context) (v agent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentMutation) ResetStatus() {
	m.status = nil
}

// SetGraphSpec sets the "graph_spec" field.
func (m *AgentMutation) SetGraphSpec(value map[string]interface{}) {
	m.graph_spec = &value
}

// GraphSpec returns the value of the "graph_spec" field in the mutation.
func (m *AgentMutation) GraphSpec() (r map[string]interface{}, exists bool) {
	v := m.graph_spec
	if v == nil {
		return
	}
	return *v, true
}

// OldGraphSpec returns the old "graph_spec" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldGraphSpec(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraphSpec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraphSpec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraphSpec: %w", err)
	}
	return oldValue.GraphSpec, nil
}

// ClearGraphSpec clears the value of the "graph_spec" field.
func (m *AgentMutation) ClearGraphSpec() {
	m.graph_spec = nil
	m.clearedFields[agent.FieldGraphSpec] = struct{}{}
}

// GraphSpecCleared returns if the "graph_spec" field was cleared in this mutation.
func (m *AgentMutation) GraphSpecCleared() bool {
	_, ok := m.clearedFields[agent.FieldGraphSpec]
	return ok
}

// ResetGraphSpec resets all changes to the "graph_spec" field.
func (m *AgentMutation) ResetGraphSpec() {
	m.graph_spec = nil
	delete(m.clearedFields, agent.FieldGraphSpec)
}

// SetSpecVersion sets the "spec_version" field.
func (m *AgentMutation) SetSpecVersion(s string) {
	m.spec_version = &s
}

// SpecVersion returns the value of the "spec_version" field in the mutation.
func (m *AgentMutation) SpecVersion() (r string, exists bool) {
	v := m.spec_version
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecVersion returns the old "spec_version" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSpecVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecVersion: %w", err)
	}
	return oldValue.SpecVersion, nil
}

// ResetSpecVersion resets all changes to the "spec_version" field.
func (m *AgentMutation) ResetSpecVersion() {
	m.spec_version = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant_id != nil {
		fields = append(fields, agent.FieldTenantID)
	}
	if m.slug != nil {
		fields = append(fields, agent.FieldSlug)
	}
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.status != nil {
		fields = append(fields, agent.FieldStatus)
	}
	if m.graph_spec != nil {
		fields = append(fields, agent.FieldGraphSpec)
	}
	if m.spec_version != nil {
		fields = append(fields, agent.FieldSpecVersion)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldTenantID:
		return m.TenantID()
	case agent.FieldSlug:
		return m.Slug()
	case agent.FieldName:
		return m.Name()
	case agent.FieldStatus:
		return m.Status()
	case agent.FieldGraphSpec:
		return m.GraphSpec()
	case agent.FieldSpecVersion:
		return m.SpecVersion()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldTenantID:
		return m.OldTenantID(ctx)
	case agent.FieldSlug:
		return m.OldSlug(ctx)
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldStatus:
		return m.OldStatus(ctx)
	case agent.FieldGraphSpec:
		return m.OldGraphSpec(ctx)
	case agent.FieldSpecVersion:
		return m.OldSpecVersion(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case agent.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldStatus:
		v, ok := value.(agent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agent.FieldGraphSpec:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraphSpec(v)
		return nil
	case agent.FieldSpecVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecVersion(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldName) {
		fields = append(fields, agent.FieldName)
	}
	if m.FieldCleared(agent.FieldGraphSpec) {
		fields = append(fields, agent.FieldGraphSpec)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldName:
		m.ClearName()
		return nil
	case agent.FieldGraphSpec:
		m.ClearGraphSpec()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldTenantID:
		m.ResetTenantID()
		return nil
	case agent.FieldSlug:
		m.ResetSlug()
		return nil
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldStatus:
		m.ResetStatus()
		return nil
	case agent.FieldGraphSpec:
		m.ResetGraphSpec()
		return nil
	case agent.FieldSpecVersion:
		m.ResetSpecVersion()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Agent edge %s", name)
}

// DelegationGrantMutation represents an operation that mutates the DelegationGrant nodes in the graph.
type DelegationGrantMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	tenant_id              *string
	principal_id           *string
	initiator_user_id      *string
	run_id                 *string
	parent_grant_id        *string
	effective_scopes       *[]string
	appendeffective_scopes []string
	status                 *delegationgrant.Status
	revocation_reason      *string
	expires_at             *time.Time
	created_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*DelegationGrant, error)
	predicates             []predicate.DelegationGrant
}

var _ ent.Mutation = (*DelegationGrantMutation)(nil)

// delegationgrantOption allows management of the mutation configuration using functional options.
type delegationgrantOption func(*DelegationGrantMutation)

// newDelegationGrantMutation creates new mutation for the DelegationGrant entity.
func newDelegationGrantMutation(c config, op Op, opts ...delegationgrantOption) *DelegationGrantMutation {
	m := &DelegationGrantMutation{
		config:        c,
		op:            op,
		typ:           TypeDelegationGrant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDelegationGrantID sets the ID field of the mutation.
func withDelegationGrantID(id string) delegationgrantOption {
	return func(m *DelegationGrantMutation) {
		var (
			err   error
			once  sync.Once
			value *DelegationGrant
		)
		m.oldValue = func(ctx context.Context) (*DelegationGrant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DelegationGrant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDelegationGrant sets the old DelegationGrant of the mutation.
func withDelegationGrant(node *DelegationGrant) delegationgrantOption {
	return func(m *DelegationGrantMutation) {
		m.oldValue = func(context.Context) (*DelegationGrant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DelegationGrantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DelegationGrantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DelegationGrant entities.
func (m *DelegationGrantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DelegationGrantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DelegationGrantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DelegationGrant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *DelegationGrantMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *DelegationGrantMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the DelegationGrant entity.
// If the DelegationGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationGrantMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *DelegationGrantMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetPrincipalID sets the "principal_id" field.
func (m *DelegationGrantMutation) SetPrincipalID(s string) {
	m.principal_id = &s
}

// PrincipalID returns the value of the "principal_id" field in the mutation.
func (m *DelegationGrantMutation) PrincipalID() (r string, exists bool) {
	v := m.principal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPrincipalID returns the old "principal_id" field's value of the DelegationGrant entity.
// If the DelegationGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationGrantMutation) OldPrincipalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrincipalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrincipalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrincipalID: %w", err)
	}
	return oldValue.PrincipalID, nil
}

// ResetPrincipalID resets all changes to the "principal_id" field.
func (m *DelegationGrantMutation) ResetPrincipalID() {
	m.principal_id = nil
}

// SetInitiatorUserID sets the "initiator_user_id" field.
func (m *DelegationGrantMutation) SetInitiatorUserID(s string) {
	m.initiator_user_id = &s
}

// InitiatorUserID returns the value of the "initiator_user_id" field in the mutation.
func (m *DelegationGrantMutation) InitiatorUserID() (r string, exists bool) {
	v := m.initiator_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInitiatorUserID returns the old "initiator_user_id" field's value of the DelegationGrant entity.
// If the DelegationGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationGrantMutation) OldInitiatorUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitiatorUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitiatorUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitiatorUserID: %w", err)
	}
	return oldValue.InitiatorUserID, nil
}

// ResetInitiatorUserID resets all changes to the "initiator_user_id" field.
func (m *DelegationGrantMutation) ResetInitiatorUserID() {
	m.initiator_user_id = nil
}

// SetRunID sets the "run_id" field.
func (m *DelegationGrantMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *DelegationGrantMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the DelegationGrant entity.
// If the DelegationGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationGrantMutation) OldRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ClearRunID clears the value of the "run_id" field.
func (m *DelegationGrantMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[delegationgrant.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *DelegationGrantMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[delegationgrant.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *DelegationGrantMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, delegationgrant.FieldRunID)
}

// SetParentGrantID sets the "parent_grant_id" field.
func (m *DelegationGrantMutation) SetParentGrantID(s string) {
	m.parent_grant_id = &s
}

// ParentGrantID returns the value of the "parent_grant_id" field in the mutation.
func (m *DelegationGrantMutation) ParentGrantID() (r string, exists bool) {
	v := m.parent_grant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentGrantID returns the old "parent_grant_id" field's value of the DelegationGrant entity.
// If the DelegationGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationGrantMutation) OldParentGrantID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentGrantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentGrantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentGrantID: %w", err)
	}
	return oldValue.ParentGrantID, nil
}

// ClearParentGrantID clears the value of the "parent_grant_id" field.
func (m *DelegationGrantMutation) ClearParentGrantID() {
	m.parent_grant_id = nil
	m.clearedFields[delegationgrant.FieldParentGrantID] = struct{}{}
}

// ParentGrantIDCleared returns if the "parent_grant_id" field was cleared in this mutation.
func (m *DelegationGrantMutation) ParentGrantIDCleared() bool {
	_, ok := m.clearedFields[delegationgrant.FieldParentGrantID]
	return ok
}

// ResetParentGrantID resets all changes to the "parent_grant_id" field.
func (m *DelegationGrantMutation) ResetParentGrantID() {
	m.parent_grant_id = nil
	delete(m.clearedFields, delegationgrant.FieldParentGrantID)
}

// SetEffectiveScopes sets the "effective_scopes" field.
func (m *DelegationGrantMutation) SetEffectiveScopes(s []string) {
	m.effective_scopes = &s
	m.appendeffective_scopes = nil
}

// EffectiveScopes returns the value of the "effective_scopes" field in the mutation.
func (m *DelegationGrantMutation) EffectiveScopes() (r []string, exists bool) {
	v := m.effective_scopes
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveScopes returns the old "effective_scopes" field's value of the DelegationGrant entity.
// If the DelegationGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationGrantMutation) OldEffectiveScopes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveScopes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveScopes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveScopes: %w", err)
	}
	return oldValue.EffectiveScopes, nil
}

// AppendEffectiveScopes adds s to the "effective_scopes" field.
func (m *DelegationGrantMutation) AppendEffectiveScopes(s []string) {
	m.appendeffective_scopes = append(m.appendeffective_scopes, s...)
}

// AppendedEffectiveScopes returns the list of values that were appended to the "effective_scopes" field in this mutation.
func (m *DelegationGrantMutation) AppendedEffectiveScopes() ([]string, bool) {
	if len(m.appendeffective_scopes) == 0 {
		return nil, false
	}
	return m.appendeffective_scopes, true
}

// ResetEffectiveScopes resets all changes to the "effective_scopes" field.
func (m *DelegationGrantMutation) ResetEffectiveScopes() {
	m.effective_scopes = nil
	m.appendeffective_scopes = nil
}

// SetStatus sets the "status" field.
func (m *DelegationGrantMutation) SetStatus(d delegationgrant.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DelegationGrantMutation) Status() (r delegationgrant.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DelegationGrant entity.
// If the DelegationGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationGrantMutation) OldStatus(ctx context.Context) (v delegationgrant.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DelegationGrantMutation) ResetStatus() {
	m.status = nil
}

// SetRevocationReason sets the "revocation_reason" field.
func (m *DelegationGrantMutation) SetRevocationReason(s string) {
	m.revocation_reason = &s
}

// RevocationReason returns the value of the "revocation_reason" field in the mutation.
func (m *DelegationGrantMutation) RevocationReason() (r string, exists bool) {
	v := m.revocation_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRevocationReason returns the old "revocation_reason" field's value of the DelegationGrant entity.
// If the DelegationGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationGrantMutation) OldRevocationReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevocationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevocationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevocationReason: %w", err)
	}
	return oldValue.RevocationReason, nil
}

// ClearRevocationReason clears the value of the "revocation_reason" field.
func (m *DelegationGrantMutation) ClearRevocationReason() {
	m.revocation_reason = nil
	m.clearedFields[delegationgrant.FieldRevocationReason] = struct{}{}
}

// RevocationReasonCleared returns if the "revocation_reason" field was cleared in this mutation.
func (m *DelegationGrantMutation) RevocationReasonCleared() bool {
	_, ok := m.clearedFields[delegationgrant.FieldRevocationReason]
	return ok
}

// ResetRevocationReason resets all changes to the "revocation_reason" field.
func (m *DelegationGrantMutation) ResetRevocationReason() {
	m.revocation_reason = nil
	delete(m.clearedFields, delegationgrant.FieldRevocationReason)
}

// SetExpiresAt sets the "expires_at" field.
func (m *DelegationGrantMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *DelegationGrantMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the DelegationGrant entity.
// If the DelegationGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationGrantMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *DelegationGrantMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DelegationGrantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DelegationGrantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DelegationGrant entity.
// If the DelegationGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationGrantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DelegationGrantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DelegationGrantMutation builder.
func (m *DelegationGrantMutation) Where(ps ...predicate.DelegationGrant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DelegationGrantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DelegationGrantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DelegationGrant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DelegationGrantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DelegationGrantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DelegationGrant).
func (m *DelegationGrantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DelegationGrantMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.tenant_id != nil {
		fields = append(fields, delegationgrant.FieldTenantID)
	}
	if m.principal_id != nil {
		fields = append(fields, delegationgrant.FieldPrincipalID)
	}
	if m.initiator_user_id != nil {
		fields = append(fields, delegationgrant.FieldInitiatorUserID)
	}
	if m.run_id != nil {
		fields = append(fields, delegationgrant.FieldRunID)
	}
	if m.parent_grant_id != nil {
		fields = append(fields, delegationgrant.FieldParentGrantID)
	}
	if m.effective_scopes != nil {
		fields = append(fields, delegationgrant.FieldEffectiveScopes)
	}
	if m.status != nil {
		fields = append(fields, delegationgrant.FieldStatus)
	}
	if m.revocation_reason != nil {
		fields = append(fields, delegationgrant.FieldRevocationReason)
	}
	if m.expires_at != nil {
		fields = append(fields, delegationgrant.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, delegationgrant.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DelegationGrantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case delegationgrant.FieldTenantID:
		return m.TenantID()
	case delegationgrant.FieldPrincipalID:
		return m.PrincipalID()
	case delegationgrant.FieldInitiatorUserID:
		return m.InitiatorUserID()
	case delegationgrant.FieldRunID:
		return m.RunID()
	case delegationgrant.FieldParentGrantID:
		return m.ParentGrantID()
	case delegationgrant.FieldEffectiveScopes:
		return m.EffectiveScopes()
	case delegationgrant.FieldStatus:
		return m.Status()
	case delegationgrant.FieldRevocationReason:
		return m.RevocationReason()
	case delegationgrant.FieldExpiresAt:
		return m.ExpiresAt()
	case delegationgrant.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DelegationGrantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case delegationgrant.FieldTenantID:
		return m.OldTenantID(ctx)
	case delegationgrant.FieldPrincipalID:
		return m.OldPrincipalID(ctx)
	case delegationgrant.FieldInitiatorUserID:
		return m.OldInitiatorUserID(ctx)
	case delegationgrant.FieldRunID:
		return m.OldRunID(ctx)
	case delegationgrant.FieldParentGrantID:
		return m.OldParentGrantID(ctx)
	case delegationgrant.FieldEffectiveScopes:
		return m.OldEffectiveScopes(ctx)
	case delegationgrant.FieldStatus:
		return m.OldStatus(ctx)
	case delegationgrant.FieldRevocationReason:
		return m.OldRevocationReason(ctx)
	case delegationgrant.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case delegationgrant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DelegationGrant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DelegationGrantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case delegationgrant.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case delegationgrant.FieldPrincipalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrincipalID(v)
		return nil
	case delegationgrant.FieldInitiatorUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitiatorUserID(v)
		return nil
	case delegationgrant.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case delegationgrant.FieldParentGrantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentGrantID(v)
		return nil
	case delegationgrant.FieldEffectiveScopes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveScopes(v)
		return nil
	case delegationgrant.FieldStatus:
		v, ok := value.(delegationgrant.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case delegationgrant.FieldRevocationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevocationReason(v)
		return nil
	case delegationgrant.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case delegationgrant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DelegationGrant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DelegationGrantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DelegationGrantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DelegationGrantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DelegationGrant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DelegationGrantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(delegationgrant.FieldRunID) {
		fields = append(fields, delegationgrant.FieldRunID)
	}
	if m.FieldCleared(delegationgrant.FieldParentGrantID) {
		fields = append(fields, delegationgrant.FieldParentGrantID)
	}
	if m.FieldCleared(delegationgrant.FieldRevocationReason) {
		fields = append(fields, delegationgrant.FieldRevocationReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DelegationGrantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DelegationGrantMutation) ClearField(name string) error {
	switch name {
	case delegationgrant.FieldRunID:
		m.ClearRunID()
		return nil
	case delegationgrant.FieldParentGrantID:
		m.ClearParentGrantID()
		return nil
	case delegationgrant.FieldRevocationReason:
		m.ClearRevocationReason()
		return nil
	}
	return fmt.Errorf("unknown DelegationGrant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DelegationGrantMutation) ResetField(name string) error {
	switch name {
	case delegationgrant.FieldTenantID:
		m.ResetTenantID()
		return nil
	case delegationgrant.FieldPrincipalID:
		m.ResetPrincipalID()
		return nil
	case delegationgrant.FieldInitiatorUserID:
		m.ResetInitiatorUserID()
		return nil
	case delegationgrant.FieldRunID:
		m.ResetRunID()
		return nil
	case delegationgrant.FieldParentGrantID:
		m.ResetParentGrantID()
		return nil
	case delegationgrant.FieldEffectiveScopes:
		m.ResetEffectiveScopes()
		return nil
	case delegationgrant.FieldStatus:
		m.ResetStatus()
		return nil
	case delegationgrant.FieldRevocationReason:
		m.ResetRevocationReason()
		return nil
	case delegationgrant.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case delegationgrant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DelegationGrant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DelegationGrantMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DelegationGrantMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DelegationGrantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DelegationGrantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DelegationGrantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DelegationGrantMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DelegationGrantMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DelegationGrant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DelegationGrantMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DelegationGrant edge %s", name)
}

// GroupMemberMutation represents an operation that mutates the GroupMember nodes in the graph.
type GroupMemberMutation struct {
	config
	op            Op
	typ           string
	id            *string
	group_id      *string
	run_id        *string
	ordinal       *int
	addordinal    *int
	status        *groupmember.Status
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GroupMember, error)
	predicates    []predicate.GroupMember
}

var _ ent.Mutation = (*GroupMemberMutation)(nil)

// groupmemberOption allows management of the mutation configuration using functional options.
type groupmemberOption func(*GroupMemberMutation)

// newGroupMemberMutation creates new mutation for the GroupMember entity.
func newGroupMemberMutation(c config, op Op, opts ...groupmemberOption) *GroupMemberMutation {
	m := &GroupMemberMutation{
		config:        c,
		op:            op,
		typ:           TypeGroupMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupMemberID sets the ID field of the mutation.
func withGroupMemberID(id string) groupmemberOption {
	return func(m *GroupMemberMutation) {
		var (
			err   error
			once  sync.Once
			value *GroupMember
		)
		m.oldValue = func(ctx context.Context) (*GroupMember, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GroupMember.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroupMember sets the old GroupMember of the mutation.
func withGroupMember(node *GroupMember) groupmemberOption {
	return func(m *GroupMemberMutation) {
		m.oldValue = func(context.Context) (*GroupMember, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupMemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupMemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GroupMember entities.
func (m *GroupMemberMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupMemberMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupMemberMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GroupMember.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGroupID sets the "group_id" field.
func (m *GroupMemberMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *GroupMemberMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the GroupMember entity.
// If the GroupMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMemberMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *GroupMemberMutation) ResetGroupID() {
	m.group_id = nil
}

// SetRunID sets the "run_id" field.
func (m *GroupMemberMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *GroupMemberMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the GroupMember entity.
// If the GroupMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMemberMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *GroupMemberMutation) ResetRunID() {
	m.run_id = nil
}

// SetOrdinal sets the "ordinal" field.
func (m *GroupMemberMutation) SetOrdinal(i int) {
	m.ordinal = &i
	m.addordinal = nil
}

// Ordinal returns the value of the "ordinal" field in the mutation.
func (m *GroupMemberMutation) Ordinal() (r int, exists bool) {
	v := m.ordinal
	if v == nil {
		return
	}
	return *v, true
}

// OldOrdinal returns the old "ordinal" field's value of the GroupMember entity.
// If the GroupMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMemberMutation) OldOrdinal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrdinal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrdinal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrdinal: %w", err)
	}
	return oldValue.Ordinal, nil
}

// AddOrdinal adds i to the "ordinal" field.
func (m *GroupMemberMutation) AddOrdinal(i int) {
	if m.addordinal != nil {
		*m.addordinal += i
	} else {
		m.addordinal = &i
	}
}

// AddedOrdinal returns the value that was added to the "ordinal" field in this mutation.
func (m *GroupMemberMutation) AddedOrdinal() (r int, exists bool) {
	v := m.addordinal
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrdinal resets all changes to the "ordinal" field.
func (m *GroupMemberMutation) ResetOrdinal() {
	m.ordinal = nil
	m.addordinal = nil
}

// SetStatus sets the "status" field.
func (m *GroupMemberMutation) SetStatus(gr groupmember.Status) {
	m.status = &gr
}

// Status returns the value of the "status" field in the mutation.
func (m *GroupMemberMutation) Status() (r groupmember.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the GroupMember entity.
// If the GroupMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMemberMutation) OldStatus(ctx context.Context) (v groupmember.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GroupMemberMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the GroupMemberMutation builder.
func (m *GroupMemberMutation) Where(ps ...predicate.GroupMember) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupMemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupMemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GroupMember, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupMemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupMemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GroupMember).
func (m *GroupMemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupMemberMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.group_id != nil {
		fields = append(fields, groupmember.FieldGroupID)
	}
	if m.run_id != nil {
		fields = append(fields, groupmember.FieldRunID)
	}
	if m.ordinal != nil {
		fields = append(fields, groupmember.FieldOrdinal)
	}
	if m.status != nil {
		fields = append(fields, groupmember.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupMemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case groupmember.FieldGroupID:
		return m.GroupID()
	case groupmember.FieldRunID:
		return m.RunID()
	case groupmember.FieldOrdinal:
		return m.Ordinal()
	case groupmember.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupMemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case groupmember.FieldGroupID:
		return m.OldGroupID(ctx)
	case groupmember.FieldRunID:
		return m.OldRunID(ctx)
	case groupmember.FieldOrdinal:
		return m.OldOrdinal(ctx)
	case groupmember.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown GroupMember field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case groupmember.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case groupmember.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case groupmember.FieldOrdinal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrdinal(v)
		return nil
	case groupmember.FieldStatus:
		v, ok := value.(groupmember.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown GroupMember field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupMemberMutation) AddedFields() []string {
	var fields []string
	if m.addordinal != nil {
		fields = append(fields, groupmember.FieldOrdinal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupMemberMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case groupmember.FieldOrdinal:
		return m.AddedOrdinal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	case groupmember.FieldOrdinal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrdinal(v)
		return nil
	}
	return fmt.Errorf("unknown GroupMember numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupMemberMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupMemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupMemberMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GroupMember nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupMemberMutation) ResetField(name string) error {
	switch name {
	case groupmember.FieldGroupID:
		m.ResetGroupID()
		return nil
	case groupmember.FieldRunID:
		m.ResetRunID()
		return nil
	case groupmember.FieldOrdinal:
		m.ResetOrdinal()
		return nil
	case groupmember.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown GroupMember field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupMemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupMemberMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupMemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupMemberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupMemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupMemberMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupMemberMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GroupMember unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupMemberMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GroupMember edge %s", name)
}

// OrchestrationGroupMutation represents an operation that mutates the OrchestrationGroup nodes in the graph.
type OrchestrationGroupMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	tenant_id                  *string
	orchestrator_run_id        *string
	parent_node_id             *string
	failure_policy             *orchestrationgroup.FailurePolicy
	join_mode                  *orchestrationgroup.JoinMode
	quorum_threshold           *int
	addquorum_threshold        *int
	timeout_s                  *int
	addtimeout_s               *int
	status                     *orchestrationgroup.Status
	cancellation_propagated    *int
	addcancellation_propagated *int
	policy_snapshot            *map[string]interface{}
	idempotency_key_prefix     *string
	started_at                 *time.Time
	completed_at               *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*OrchestrationGroup, error)
	predicates                 []predicate.OrchestrationGroup
}

var _ ent.Mutation = (*OrchestrationGroupMutation)(nil)

// orchestrationgroupOption allows management of the mutation configuration using functional options.
type orchestrationgroupOption func(*OrchestrationGroupMutation)

// newOrchestrationGroupMutation creates new mutation for the OrchestrationGroup entity.
func newOrchestrationGroupMutation(c config, op Op, opts ...orchestrationgroupOption) *OrchestrationGroupMutation {
	m := &OrchestrationGroupMutation{
		config:        c,
		op:            op,
		typ:           TypeOrchestrationGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrchestrationGroupID sets the ID field of the mutation.
func withOrchestrationGroupID(id string) orchestrationgroupOption {
	return func(m *OrchestrationGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *OrchestrationGroup
		)
		m.oldValue = func(ctx context.Context) (*OrchestrationGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrchestrationGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrchestrationGroup sets the old OrchestrationGroup of the mutation.
func withOrchestrationGroup(node *OrchestrationGroup) orchestrationgroupOption {
	return func(m *OrchestrationGroupMutation) {
		m.oldValue = func(context.Context) (*OrchestrationGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrchestrationGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrchestrationGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrchestrationGroup entities.
func (m *OrchestrationGroupMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrchestrationGroupMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrchestrationGroupMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrchestrationGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *OrchestrationGroupMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *OrchestrationGroupMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the OrchestrationGroup entity.
// If the OrchestrationGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestrationGroupMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *OrchestrationGroupMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetOrchestratorRunID sets the "orchestrator_run_id" field.
func (m *OrchestrationGroupMutation) SetOrchestratorRunID(s string) {
	m.orchestrator_run_id = &s
}

// OrchestratorRunID returns the value of the "orchestrator_run_id" field in the mutation.
func (m *OrchestrationGroupMutation) OrchestratorRunID() (r string, exists bool) {
	v := m.orchestrator_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrchestratorRunID returns the old "orchestrator_run_id" field's value of the OrchestrationGroup entity.
// If the OrchestrationGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestrationGroupMutation) OldOrchestratorRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrchestratorRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrchestratorRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrchestratorRunID: %w", err)
	}
	return oldValue.OrchestratorRunID, nil
}

// ResetOrchestratorRunID resets all changes to the "orchestrator_run_id" field.
func (m *OrchestrationGroupMutation) ResetOrchestratorRunID() {
	m.orchestrator_run_id = nil
}

// SetParentNodeID sets the "parent_node_id" field.
func (m *OrchestrationGroupMutation) SetParentNodeID(s string) {
	m.parent_node_id = &s
}

// ParentNodeID returns the value of the "parent_node_id" field in the mutation.
func (m *OrchestrationGroupMutation) ParentNodeID() (r string, exists bool) {
	v := m.parent_node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentNodeID returns the old "parent_node_id" field's value of the OrchestrationGroup entity.
// If the OrchestrationGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestrationGroupMutation) OldParentNodeID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentNodeID: %w", err)
	}
	return oldValue.ParentNodeID, nil
}

// ClearParentNodeID clears the value of the "parent_node_id" field.
func (m *OrchestrationGroupMutation) ClearParentNodeID() {
	m.parent_node_id = nil
	m.clearedFields[orchestrationgroup.FieldParentNodeID] = struct{}{}
}

// ParentNodeIDCleared returns if the "parent_node_id" field was cleared in this mutation.
func (m *OrchestrationGroupMutation) ParentNodeIDCleared() bool {
	_, ok := m.clearedFields[orchestrationgroup.FieldParentNodeID]
	return ok
}

// ResetParentNodeID resets all changes to the "parent_node_id" field.
func (m *OrchestrationGroupMutation) ResetParentNodeID() {
	m.parent_node_id = nil
	delete(m.clearedFields, orchestrationgroup.FieldParentNodeID)
}

// SetFailurePolicy sets the "failure_policy" field.
func (m *OrchestrationGroupMutation) SetFailurePolicy(op orchestrationgroup.FailurePolicy) {
	m.failure_policy = &op
}

// FailurePolicy returns the value of the "failure_policy" field in the mutation.
func (m *OrchestrationGroupMutation) FailurePolicy() (r orchestrationgroup.FailurePolicy, exists bool) {
	v := m.failure_policy
	if v == nil {
		return
	}
	return *v, true
}

// OldFailurePolicy returns the old "failure_policy" field's value of the OrchestrationGroup entity.
// If the OrchestrationGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestrationGroupMutation) OldFailurePolicy(ctx context.Context) (v orchestrationgroup.FailurePolicy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailurePolicy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailurePolicy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailurePolicy: %w", err)
	}
	return oldValue.FailurePolicy, nil
}

// ResetFailurePolicy resets all changes to the "failure_policy" field.
func (m *OrchestrationGroupMutation) ResetFailurePolicy() {
	m.failure_policy = nil
}

// SetJoinMode sets the "join_mode" field.
func (m *OrchestrationGroupMutation) SetJoinMode(om orchestrationgroup.JoinMode) {
	m.join_mode = &om
}

// JoinMode returns the value of the "join_mode" field in the mutation.
func (m *OrchestrationGroupMutation) JoinMode() (r orchestrationgroup.JoinMode, exists bool) {
	v := m.join_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldJoinMode returns the old "join_mode" field's value of the OrchestrationGroup entity.
// If the OrchestrationGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestrationGroupMutation) OldJoinMode(ctx context.Context) (v orchestrationgroup.JoinMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJoinMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJoinMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJoinMode: %w", err)
	}
	return oldValue.JoinMode, nil
}

// ResetJoinMode resets all changes to the "join_mode" field.
func (m *OrchestrationGroupMutation) ResetJoinMode() {
	m.join_mode = nil
}

// SetQuorumThreshold sets the "quorum_threshold" field.
func (m *OrchestrationGroupMutation) SetQuorumThreshold(i int) {
	m.quorum_threshold = &i
	m.addquorum_threshold = nil
}

// QuorumThreshold returns the value of the "quorum_threshold" field in the mutation.
func (m *OrchestrationGroupMutation) QuorumThreshold() (r int, exists bool) {
	v := m.quorum_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldQuorumThreshold returns the old "quorum_threshold" field's value of the OrchestrationGroup entity.
// If the OrchestrationGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestrationGroupMutation) OldQuorumThreshold(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuorumThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuorumThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuorumThreshold: %w", err)
	}
	return oldValue.QuorumThreshold, nil
}

// AddQuorumThreshold adds i to the "quorum_threshold" field.
func (m *OrchestrationGroupMutation) AddQuorumThreshold(i int) {
	if m.addquorum_threshold != nil {
		*m.addquorum_threshold += i
	} else {
		m.addquorum_threshold = &i
	}
}

// AddedQuorumThreshold returns the value that was added to the "quorum_threshold" field in this mutation.
func (m *OrchestrationGroupMutation) AddedQuorumThreshold() (r int, exists bool) {
	v := m.addquorum_threshold
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuorumThreshold clears the value of the "quorum_threshold" field.
func (m *OrchestrationGroupMutation) ClearQuorumThreshold() {
	m.quorum_threshold = nil
	m.addquorum_threshold = nil
	m.clearedFields[orchestrationgroup.FieldQuorumThreshold] = struct{}{}
}

// QuorumThresholdCleared returns if the "quorum_threshold" field was cleared in this mutation.
func (m *OrchestrationGroupMutation) QuorumThresholdCleared() bool {
	_, ok := m.clearedFields[orchestrationgroup.FieldQuorumThreshold]
	return ok
}

// ResetQuorumThreshold resets all changes to the "quorum_threshold" field.
func (m *OrchestrationGroupMutation) ResetQuorumThreshold() {
	m.quorum_threshold = nil
	m.addquorum_threshold = nil
	delete(m.clearedFields, orchestrationgroup.FieldQuorumThreshold)
}

// SetTimeoutS sets the "timeout_s" field.
func (m *OrchestrationGroupMutation) SetTimeoutS(i int) {
	m.timeout_s = &i
	m.addtimeout_s = nil
}

// TimeoutS returns the value of the "timeout_s" field in the mutation.
func (m *OrchestrationGroupMutation) TimeoutS() (r int, exists bool) {
	v := m.timeout_s
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutS returns the old "timeout_s" field's value of the OrchestrationGroup entity.
// If the OrchestrationGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestrationGroupMutation) OldTimeoutS(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutS is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutS requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutS: %w", err)
	}
	return oldValue.TimeoutS, nil
}

// AddTimeoutS adds i to the "timeout_s" field.
func (m *OrchestrationGroupMutation) AddTimeoutS(i int) {
	if m.addtimeout_s != nil {
		*m.addtimeout_s += i
	} else {
		m.addtimeout_s = &i
	}
}

// AddedTimeoutS returns the value that was added to the "timeout_s" field in this mutation.
func (m *OrchestrationGroupMutation) AddedTimeoutS() (r int, exists bool) {
	v := m.addtimeout_s
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutS resets all changes to the "timeout_s" field.
func (m *OrchestrationGroupMutation) ResetTimeoutS() {
	m.timeout_s = nil
	m.addtimeout_s = nil
}

// SetStatus sets the "status" field.
func (m *OrchestrationGroupMutation) SetStatus(o orchestrationgroup.Status) {
	m.status = &o
}

// Status returns the value of the "status" field in the mutation.
func (m *OrchestrationGroupMutation) Status() (r orchestrationgroup.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the OrchestrationGroup entity.
// If the OrchestrationGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestrationGroupMutation) OldStatus(ctx context.Context) (v orchestrationgroup.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *OrchestrationGroupMutation) ResetStatus() {
	m.status = nil
}

// SetCancellationPropagated sets the "cancellation_propagated" field.
func (m *OrchestrationGroupMutation) SetCancellationPropagated(i int) {
	m.cancellation_propagated = &i
	m.addcancellation_propagated = nil
}

// CancellationPropagated returns the value of the "cancellation_propagated" field in the mutation.
func (m *OrchestrationGroupMutation) CancellationPropagated() (r int, exists bool) {
	v := m.cancellation_propagated
	if v == nil {
		return
	}
	return *v, true
}

// OldCancellationPropagated returns the old "cancellation_propagated" field's value of the OrchestrationGroup entity.
// If the OrchestrationGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestrationGroupMutation) OldCancellationPropagated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancellationPropagated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancellationPropagated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancellationPropagated: %w", err)
	}
	return oldValue.CancellationPropagated, nil
}

// AddCancellationPropagated adds i to the "cancellation_propagated" field.
func (m *OrchestrationGroupMutation) AddCancellationPropagated(i int) {
	if m.addcancellation_propagated != nil {
		*m.addcancellation_propagated += i
	} else {
		m.addcancellation_propagated = &i
	}
}

// AddedCancellationPropagated returns the value that was added to the "cancellation_propagated" field in this mutation.
func (m *OrchestrationGroupMutation) AddedCancellationPropagated() (r int, exists bool) {
	v := m.addcancellation_propagated
	if v == nil {
		return
	}
	return *v, true
}

// ResetCancellationPropagated resets all changes to the "cancellation_propagated" field.
func (m *OrchestrationGroupMutation) ResetCancellationPropagated() {
	m.cancellation_propagated = nil
	m.addcancellation_propagated = nil
}

// SetPolicySnapshot sets the "policy_snapshot" field.
func (m *OrchestrationGroupMutation) SetPolicySnapshot(value map[string]interface{}) {
	m.policy_snapshot = &value
}

// PolicySnapshot returns the value of the "policy_snapshot" field in the mutation.
func (m *OrchestrationGroupMutation) PolicySnapshot() (r map[string]interface{}, exists bool) {
	v := m.policy_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicySnapshot returns the old "policy_snapshot" field's value of the OrchestrationGroup entity.
// If the OrchestrationGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestrationGroupMutation) OldPolicySnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicySnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicySnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicySnapshot: %w", err)
	}
	return oldValue.PolicySnapshot, nil
}

// ResetPolicySnapshot resets all changes to the "policy_snapshot" field.
func (m *OrchestrationGroupMutation) ResetPolicySnapshot() {
	m.policy_snapshot = nil
}

// SetIdempotencyKeyPrefix sets the "idempotency_key_prefix" field.
func (m *OrchestrationGroupMutation) SetIdempotencyKeyPrefix(s string) {
	m.idempotency_key_prefix = &s
}

// IdempotencyKeyPrefix returns the value of the "idempotency_key_prefix" field in the mutation.
func (m *OrchestrationGroupMutation) IdempotencyKeyPrefix() (r string, exists bool) {
	v := m.idempotency_key_prefix
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKeyPrefix returns the old "idempotency_key_prefix" field's value of the OrchestrationGroup entity.
// If the OrchestrationGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestrationGroupMutation) OldIdempotencyKeyPrefix(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKeyPrefix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKeyPrefix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKeyPrefix: %w", err)
	}
	return oldValue.IdempotencyKeyPrefix, nil
}

// ClearIdempotencyKeyPrefix clears the value of the "idempotency_key_prefix" field.
func (m *OrchestrationGroupMutation) ClearIdempotencyKeyPrefix() {
	m.idempotency_key_prefix = nil
	m.clearedFields[orchestrationgroup.FieldIdempotencyKeyPrefix] = struct{}{}
}

// IdempotencyKeyPrefixCleared returns if the "idempotency_key_prefix" field was cleared in this mutation.
func (m *OrchestrationGroupMutation) IdempotencyKeyPrefixCleared() bool {
	_, ok := m.clearedFields[orchestrationgroup.FieldIdempotencyKeyPrefix]
	return ok
}

// ResetIdempotencyKeyPrefix resets all changes to the "idempotency_key_prefix" field.
func (m *OrchestrationGroupMutation) ResetIdempotencyKeyPrefix() {
	m.idempotency_key_prefix = nil
	delete(m.clearedFields, orchestrationgroup.FieldIdempotencyKeyPrefix)
}

// SetStartedAt sets the "started_at" field.
func (m *OrchestrationGroupMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *OrchestrationGroupMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the OrchestrationGroup entity.
// If the OrchestrationGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestrationGroupMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *OrchestrationGroupMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *OrchestrationGroupMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *OrchestrationGroupMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the OrchestrationGroup entity.
// If the OrchestrationGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestrationGroupMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *OrchestrationGroupMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[orchestrationgroup.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *OrchestrationGroupMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[orchestrationgroup.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *OrchestrationGroupMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, orchestrationgroup.FieldCompletedAt)
}

// Where appends a list predicates to the OrchestrationGroupMutation builder.
func (m *OrchestrationGroupMutation) Where(ps ...predicate.OrchestrationGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrchestrationGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrchestrationGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrchestrationGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrchestrationGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrchestrationGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrchestrationGroup).
func (m *OrchestrationGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrchestrationGroupMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.tenant_id != nil {
		fields = append(fields, orchestrationgroup.FieldTenantID)
	}
	if m.orchestrator_run_id != nil {
		fields = append(fields, orchestrationgroup.FieldOrchestratorRunID)
	}
	if m.parent_node_id != nil {
		fields = append(fields, orchestrationgroup.FieldParentNodeID)
	}
	if m.failure_policy != nil {
		fields = append(fields, orchestrationgroup.FieldFailurePolicy)
	}
	if m.join_mode != nil {
		fields = append(fields, orchestrationgroup.FieldJoinMode)
	}
	if m.quorum_threshold != nil {
		fields = append(fields, orchestrationgroup.FieldQuorumThreshold)
	}
	if m.timeout_s != nil {
		fields = append(fields, orchestrationgroup.FieldTimeoutS)
	}
	if m.status != nil {
		fields = append(fields, orchestrationgroup.FieldStatus)
	}
	if m.cancellation_propagated != nil {
		fields = append(fields, orchestrationgroup.FieldCancellationPropagated)
	}
	if m.policy_snapshot != nil {
		fields = append(fields, orchestrationgroup.FieldPolicySnapshot)
	}
	if m.idempotency_key_prefix != nil {
		fields = append(fields, orchestrationgroup.FieldIdempotencyKeyPrefix)
	}
	if m.started_at != nil {
		fields = append(fields, orchestrationgroup.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, orchestrationgroup.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrchestrationGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orchestrationgroup.FieldTenantID:
		return m.TenantID()
	case orchestrationgroup.FieldOrchestratorRunID:
		return m.OrchestratorRunID()
	case orchestrationgroup.FieldParentNodeID:
		return m.ParentNodeID()
	case orchestrationgroup.FieldFailurePolicy:
		return m.FailurePolicy()
	case orchestrationgroup.FieldJoinMode:
		return m.JoinMode()
	case orchestrationgroup.FieldQuorumThreshold:
		return m.QuorumThreshold()
	case orchestrationgroup.FieldTimeoutS:
		return m.TimeoutS()
	case orchestrationgroup.FieldStatus:
		return m.Status()
	case orchestrationgroup.FieldCancellationPropagated:
		return m.CancellationPropagated()
	case orchestrationgroup.FieldPolicySnapshot:
		return m.PolicySnapshot()
	case orchestrationgroup.FieldIdempotencyKeyPrefix:
		return m.IdempotencyKeyPrefix()
	case orchestrationgroup.FieldStartedAt:
		return m.StartedAt()
	case orchestrationgroup.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrchestrationGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orchestrationgroup.FieldTenantID:
		return m.OldTenantID(ctx)
	case orchestrationgroup.FieldOrchestratorRunID:
		return m.OldOrchestratorRunID(ctx)
	case orchestrationgroup.FieldParentNodeID:
		return m.OldParentNodeID(ctx)
	case orchestrationgroup.FieldFailurePolicy:
		return m.OldFailurePolicy(ctx)
	case orchestrationgroup.FieldJoinMode:
		return m.OldJoinMode(ctx)
	case orchestrationgroup.FieldQuorumThreshold:
		return m.OldQuorumThreshold(ctx)
	case orchestrationgroup.FieldTimeoutS:
		return m.OldTimeoutS(ctx)
	case orchestrationgroup.FieldStatus:
		return m.OldStatus(ctx)
	case orchestrationgroup.FieldCancellationPropagated:
		return m.OldCancellationPropagated(ctx)
	case orchestrationgroup.FieldPolicySnapshot:
		return m.OldPolicySnapshot(ctx)
	case orchestrationgroup.FieldIdempotencyKeyPrefix:
		return m.OldIdempotencyKeyPrefix(ctx)
	case orchestrationgroup.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case orchestrationgroup.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OrchestrationGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrchestrationGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orchestrationgroup.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case orchestrationgroup.FieldOrchestratorRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrchestratorRunID(v)
		return nil
	case orchestrationgroup.FieldParentNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentNodeID(v)
		return nil
	case orchestrationgroup.FieldFailurePolicy:
		v, ok := value.(orchestrationgroup.FailurePolicy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailurePolicy(v)
		return nil
	case orchestrationgroup.FieldJoinMode:
		v, ok := value.(orchestrationgroup.JoinMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJoinMode(v)
		return nil
	case orchestrationgroup.FieldQuorumThreshold:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuorumThreshold(v)
		return nil
	case orchestrationgroup.FieldTimeoutS:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutS(v)
		return nil
	case orchestrationgroup.FieldStatus:
		v, ok := value.(orchestrationgroup.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case orchestrationgroup.FieldCancellationPropagated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancellationPropagated(v)
		return nil
	case orchestrationgroup.FieldPolicySnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicySnapshot(v)
		return nil
	case orchestrationgroup.FieldIdempotencyKeyPrefix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKeyPrefix(v)
		return nil
	case orchestrationgroup.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case orchestrationgroup.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OrchestrationGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrchestrationGroupMutation) AddedFields() []string {
	var fields []string
	if m.addquorum_threshold != nil {
		fields = append(fields, orchestrationgroup.FieldQuorumThreshold)
	}
	if m.addtimeout_s != nil {
		fields = append(fields, orchestrationgroup.FieldTimeoutS)
	}
	if m.addcancellation_propagated != nil {
		fields = append(fields, orchestrationgroup.FieldCancellationPropagated)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrchestrationGroupMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case orchestrationgroup.FieldQuorumThreshold:
		return m.AddedQuorumThreshold()
	case orchestrationgroup.FieldTimeoutS:
		return m.AddedTimeoutS()
	case orchestrationgroup.FieldCancellationPropagated:
		return m.AddedCancellationPropagated()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrchestrationGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	case orchestrationgroup.FieldQuorumThreshold:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuorumThreshold(v)
		return nil
	case orchestrationgroup.FieldTimeoutS:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutS(v)
		return nil
	case orchestrationgroup.FieldCancellationPropagated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCancellationPropagated(v)
		return nil
	}
	return fmt.Errorf("unknown OrchestrationGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrchestrationGroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(orchestrationgroup.FieldParentNodeID) {
		fields = append(fields, orchestrationgroup.FieldParentNodeID)
	}
	if m.FieldCleared(orchestrationgroup.FieldQuorumThreshold) {
		fields = append(fields, orchestrationgroup.FieldQuorumThreshold)
	}
	if m.FieldCleared(orchestrationgroup.FieldIdempotencyKeyPrefix) {
		fields = append(fields, orchestrationgroup.FieldIdempotencyKeyPrefix)
	}
	if m.FieldCleared(orchestrationgroup.FieldCompletedAt) {
		fields = append(fields, orchestrationgroup.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrchestrationGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrchestrationGroupMutation) ClearField(name string) error {
	switch name {
	case orchestrationgroup.FieldParentNodeID:
		m.ClearParentNodeID()
		return nil
	case orchestrationgroup.FieldQuorumThreshold:
		m.ClearQuorumThreshold()
		return nil
	case orchestrationgroup.FieldIdempotencyKeyPrefix:
		m.ClearIdempotencyKeyPrefix()
		return nil
	case orchestrationgroup.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown OrchestrationGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrchestrationGroupMutation) ResetField(name string) error {
	switch name {
	case orchestrationgroup.FieldTenantID:
		m.ResetTenantID()
		return nil
	case orchestrationgroup.FieldOrchestratorRunID:
		m.ResetOrchestratorRunID()
		return nil
	case orchestrationgroup.FieldParentNodeID:
		m.ResetParentNodeID()
		return nil
	case orchestrationgroup.FieldFailurePolicy:
		m.ResetFailurePolicy()
		return nil
	case orchestrationgroup.FieldJoinMode:
		m.ResetJoinMode()
		return nil
	case orchestrationgroup.FieldQuorumThreshold:
		m.ResetQuorumThreshold()
		return nil
	case orchestrationgroup.FieldTimeoutS:
		m.ResetTimeoutS()
		return nil
	case orchestrationgroup.FieldStatus:
		m.ResetStatus()
		return nil
	case orchestrationgroup.FieldCancellationPropagated:
		m.ResetCancellationPropagated()
		return nil
	case orchestrationgroup.FieldPolicySnapshot:
		m.ResetPolicySnapshot()
		return nil
	case orchestrationgroup.FieldIdempotencyKeyPrefix:
		m.ResetIdempotencyKeyPrefix()
		return nil
	case orchestrationgroup.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case orchestrationgroup.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown OrchestrationGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrchestrationGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrchestrationGroupMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrchestrationGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrchestrationGroupMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrchestrationGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrchestrationGroupMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrchestrationGroupMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OrchestrationGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrchestrationGroupMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OrchestrationGroup edge %s", name)
}

// OrchestratorPolicyMutation represents an operation that mutates the OrchestratorPolicy nodes in the graph.
type OrchestratorPolicyMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	tenant_id                   *string
	orchestrator_agent_id       *string
	enforce_published_only      *bool
	default_failure_policy      *orchestratorpolicy.DefaultFailurePolicy
	max_depth                   *int
	addmax_depth                *int
	max_fanout                  *int
	addmax_fanout               *int
	max_children_total          *int
	addmax_children_total       *int
	join_timeout_s              *int
	addjoin_timeout_s           *int
	allowed_scope_subset        *[]string
	appendallowed_scope_subset  []string
	capability_manifest_version *string
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*OrchestratorPolicy, error)
	predicates                  []predicate.OrchestratorPolicy
}

var _ ent.Mutation = (*OrchestratorPolicyMutation)(nil)

// orchestratorpolicyOption allows management of the mutation configuration using functional options.
type orchestratorpolicyOption func(*OrchestratorPolicyMutation)

// newOrchestratorPolicyMutation creates new mutation for the OrchestratorPolicy entity.
func newOrchestratorPolicyMutation(c config, op Op, opts ...orchestratorpolicyOption) *OrchestratorPolicyMutation {
	m := &OrchestratorPolicyMutation{
		config:        c,
		op:            op,
		typ:           TypeOrchestratorPolicy,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrchestratorPolicyID sets the ID field of the mutation.
func withOrchestratorPolicyID(id string) orchestratorpolicyOption {
	return func(m *OrchestratorPolicyMutation) {
		var (
			err   error
			once  sync.Once
			value *OrchestratorPolicy
		)
		m.oldValue = func(ctx context.Context) (*OrchestratorPolicy, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrchestratorPolicy.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrchestratorPolicy sets the old OrchestratorPolicy of the mutation.
func withOrchestratorPolicy(node *OrchestratorPolicy) orchestratorpolicyOption {
	return func(m *OrchestratorPolicyMutation) {
		m.oldValue = func(context.Context) (*OrchestratorPolicy, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrchestratorPolicyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrchestratorPolicyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrchestratorPolicy entities.
func (m *OrchestratorPolicyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrchestratorPolicyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrchestratorPolicyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrchestratorPolicy.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *OrchestratorPolicyMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *OrchestratorPolicyMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the OrchestratorPolicy entity.
// If the OrchestratorPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorPolicyMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *OrchestratorPolicyMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetOrchestratorAgentID sets the "orchestrator_agent_id" field.
func (m *OrchestratorPolicyMutation) SetOrchestratorAgentID(s string) {
	m.orchestrator_agent_id = &s
}

// OrchestratorAgentID returns the value of the "orchestrator_agent_id" field in the mutation.
func (m *OrchestratorPolicyMutation) OrchestratorAgentID() (r string, exists bool) {
	v := m.orchestrator_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrchestratorAgentID returns the old "orchestrator_agent_id" field's value of the OrchestratorPolicy entity.
// If the OrchestratorPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorPolicyMutation) OldOrchestratorAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrchestratorAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrchestratorAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrchestratorAgentID: %w", err)
	}
	return oldValue.OrchestratorAgentID, nil
}

// ResetOrchestratorAgentID resets all changes to the "orchestrator_agent_id" field.
func (m *OrchestratorPolicyMutation) ResetOrchestratorAgentID() {
	m.orchestrator_agent_id = nil
}

// SetEnforcePublishedOnly sets the "enforce_published_only" field.
func (m *OrchestratorPolicyMutation) SetEnforcePublishedOnly(b bool) {
	m.enforce_published_only = &b
}

// EnforcePublishedOnly returns the value of the "enforce_published_only" field in the mutation.
func (m *OrchestratorPolicyMutation) EnforcePublishedOnly() (r bool, exists bool) {
	v := m.enforce_published_only
	if v == nil {
		return
	}
	return *v, true
}

// OldEnforcePublishedOnly returns the old "enforce_published_only" field's value of the OrchestratorPolicy entity.
// If the OrchestratorPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorPolicyMutation) OldEnforcePublishedOnly(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnforcePublishedOnly is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnforcePublishedOnly requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnforcePublishedOnly: %w", err)
	}
	return oldValue.EnforcePublishedOnly, nil
}

// ResetEnforcePublishedOnly resets all changes to the "enforce_published_only" field.
func (m *OrchestratorPolicyMutation) ResetEnforcePublishedOnly() {
	m.enforce_published_only = nil
}

// SetDefaultFailurePolicy sets the "default_failure_policy" field.
func (m *OrchestratorPolicyMutation) SetDefaultFailurePolicy(ofp orchestratorpolicy.DefaultFailurePolicy) {
	m.default_failure_policy = &ofp
}

// DefaultFailurePolicy returns the value of the "default_failure_policy" field in the mutation.
func (m *OrchestratorPolicyMutation) DefaultFailurePolicy() (r orchestratorpolicy.DefaultFailurePolicy, exists bool) {
	v := m.default_failure_policy
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultFailurePolicy returns the old "default_failure_policy" field's value of the OrchestratorPolicy entity.
// If the OrchestratorPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorPolicyMutation) OldDefaultFailurePolicy(ctx context.Context) (v orchestratorpolicy.DefaultFailurePolicy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultFailurePolicy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultFailurePolicy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultFailurePolicy: %w", err)
	}
	return oldValue.DefaultFailurePolicy, nil
}

// ResetDefaultFailurePolicy resets all changes to the "default_failure_policy" field.
func (m *OrchestratorPolicyMutation) ResetDefaultFailurePolicy() {
	m.default_failure_policy = nil
}

// SetMaxDepth sets the "max_depth" field.
func (m *OrchestratorPolicyMutation) SetMaxDepth(i int) {
	m.max_depth = &i
	m.addmax_depth = nil
}

// MaxDepth returns the value of the "max_depth" field in the mutation.
func (m *OrchestratorPolicyMutation) MaxDepth() (r int, exists bool) {
	v := m.max_depth
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxDepth returns the old "max_depth" field's value of the OrchestratorPolicy entity.
// If the OrchestratorPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorPolicyMutation) OldMaxDepth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxDepth: %w", err)
	}
	return oldValue.MaxDepth, nil
}

// AddMaxDepth adds i to the "max_depth" field.
func (m *OrchestratorPolicyMutation) AddMaxDepth(i int) {
	if m.addmax_depth != nil {
		*m.addmax_depth += i
	} else {
		m.addmax_depth = &i
	}
}

// AddedMaxDepth returns the value that was added to the "max_depth" field in this mutation.
func (m *OrchestratorPolicyMutation) AddedMaxDepth() (r int, exists bool) {
	v := m.addmax_depth
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxDepth resets all changes to the "max_depth" field.
func (m *OrchestratorPolicyMutation) ResetMaxDepth() {
	m.max_depth = nil
	m.addmax_depth = nil
}

// SetMaxFanout sets the "max_fanout" field.
func (m *OrchestratorPolicyMutation) SetMaxFanout(i int) {
	m.max_fanout = &i
	m.addmax_fanout = nil
}

// MaxFanout returns the value of the "max_fanout" field in the mutation.
func (m *OrchestratorPolicyMutation) MaxFanout() (r int, exists bool) {
	v := m.max_fanout
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxFanout returns the old "max_fanout" field's value of the OrchestratorPolicy entity.
// If the OrchestratorPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorPolicyMutation) OldMaxFanout(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxFanout is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxFanout requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxFanout: %w", err)
	}
	return oldValue.MaxFanout, nil
}

// AddMaxFanout adds i to the "max_fanout" field.
func (m *OrchestratorPolicyMutation) AddMaxFanout(i int) {
	if m.addmax_fanout != nil {
		*m.addmax_fanout += i
	} else {
		m.addmax_fanout = &i
	}
}

// AddedMaxFanout returns the value that was added to the "max_fanout" field in this mutation.
func (m *OrchestratorPolicyMutation) AddedMaxFanout() (r int, exists bool) {
	v := m.addmax_fanout
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxFanout resets all changes to the "max_fanout" field.
func (m *OrchestratorPolicyMutation) ResetMaxFanout() {
	m.max_fanout = nil
	m.addmax_fanout = nil
}

// SetMaxChildrenTotal sets the "max_children_total" field.
func (m *OrchestratorPolicyMutation) SetMaxChildrenTotal(i int) {
	m.max_children_total = &i
	m.addmax_children_total = nil
}

// MaxChildrenTotal returns the value of the "max_children_total" field in the mutation.
func (m *OrchestratorPolicyMutation) MaxChildrenTotal() (r int, exists bool) {
	v := m.max_children_total
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxChildrenTotal returns the old "max_children_total" field's value of the OrchestratorPolicy entity.
// If the OrchestratorPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorPolicyMutation) OldMaxChildrenTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxChildrenTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxChildrenTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxChildrenTotal: %w", err)
	}
	return oldValue.MaxChildrenTotal, nil
}

// AddMaxChildrenTotal adds i to the "max_children_total" field.
func (m *OrchestratorPolicyMutation) AddMaxChildrenTotal(i int) {
	if m.addmax_children_total != nil {
		*m.addmax_children_total += i
	} else {
		m.addmax_children_total = &i
	}
}

// AddedMaxChildrenTotal returns the value that was added to the "max_children_total" field in this mutation.
func (m *OrchestratorPolicyMutation) AddedMaxChildrenTotal() (r int, exists bool) {
	v := m.addmax_children_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxChildrenTotal resets all changes to the "max_children_total" field.
func (m *OrchestratorPolicyMutation) ResetMaxChildrenTotal() {
	m.max_children_total = nil
	m.addmax_children_total = nil
}

// SetJoinTimeoutS sets the "join_timeout_s" field.
func (m *OrchestratorPolicyMutation) SetJoinTimeoutS(i int) {
	m.join_timeout_s = &i
	m.addjoin_timeout_s = nil
}

// JoinTimeoutS returns the value of the "join_timeout_s" field in the mutation.
func (m *OrchestratorPolicyMutation) JoinTimeoutS() (r int, exists bool) {
	v := m.join_timeout_s
	if v == nil {
		return
	}
	return *v, true
}

// OldJoinTimeoutS returns the old "join_timeout_s" field's value of the OrchestratorPolicy entity.
// If the OrchestratorPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorPolicyMutation) OldJoinTimeoutS(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJoinTimeoutS is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJoinTimeoutS requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJoinTimeoutS: %w", err)
	}
	return oldValue.JoinTimeoutS, nil
}

// AddJoinTimeoutS adds i to the "join_timeout_s" field.
func (m *OrchestratorPolicyMutation) AddJoinTimeoutS(i int) {
	if m.addjoin_timeout_s != nil {
		*m.addjoin_timeout_s += i
	} else {
		m.addjoin_timeout_s = &i
	}
}

// AddedJoinTimeoutS returns the value that was added to the "join_timeout_s" field in this mutation.
func (m *OrchestratorPolicyMutation) AddedJoinTimeoutS() (r int, exists bool) {
	v := m.addjoin_timeout_s
	if v == nil {
		return
	}
	return *v, true
}

// ResetJoinTimeoutS resets all changes to the "join_timeout_s" field.
func (m *OrchestratorPolicyMutation) ResetJoinTimeoutS() {
	m.join_timeout_s = nil
	m.addjoin_timeout_s = nil
}

// SetAllowedScopeSubset sets the "allowed_scope_subset" field.
func (m *OrchestratorPolicyMutation) SetAllowedScopeSubset(s []string) {
	m.allowed_scope_subset = &s
	m.appendallowed_scope_subset = nil
}

// AllowedScopeSubset returns the value of the "allowed_scope_subset" field in the mutation.
func (m *OrchestratorPolicyMutation) AllowedScopeSubset() (r []string, exists bool) {
	v := m.allowed_scope_subset
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowedScopeSubset returns the old "allowed_scope_subset" field's value of the OrchestratorPolicy entity.
// If the OrchestratorPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorPolicyMutation) OldAllowedScopeSubset(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowedScopeSubset is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowedScopeSubset requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowedScopeSubset: %w", err)
	}
	return oldValue.AllowedScopeSubset, nil
}

// AppendAllowedScopeSubset adds s to the "allowed_scope_subset" field.
func (m *OrchestratorPolicyMutation) AppendAllowedScopeSubset(s []string) {
	m.appendallowed_scope_subset = append(m.appendallowed_scope_subset, s...)
}

// AppendedAllowedScopeSubset returns the list of values that were appended to the "allowed_scope_subset" field in this mutation.
func (m *OrchestratorPolicyMutation) AppendedAllowedScopeSubset() ([]string, bool) {
	if len(m.appendallowed_scope_subset) == 0 {
		return nil, false
	}
	return m.appendallowed_scope_subset, true
}

// ClearAllowedScopeSubset clears the value of the "allowed_scope_subset" field.
func (m *OrchestratorPolicyMutation) ClearAllowedScopeSubset() {
	m.allowed_scope_subset = nil
	m.appendallowed_scope_subset = nil
	m.clearedFields[orchestratorpolicy.FieldAllowedScopeSubset] = struct{}{}
}

// AllowedScopeSubsetCleared returns if the "allowed_scope_subset" field was cleared in this mutation.
func (m *OrchestratorPolicyMutation) AllowedScopeSubsetCleared() bool {
	_, ok := m.clearedFields[orchestratorpolicy.FieldAllowedScopeSubset]
	return ok
}

// ResetAllowedScopeSubset resets all changes to the "allowed_scope_subset" field.
func (m *OrchestratorPolicyMutation) ResetAllowedScopeSubset() {
	m.allowed_scope_subset = nil
	m.appendallowed_scope_subset = nil
	delete(m.clearedFields, orchestratorpolicy.FieldAllowedScopeSubset)
}

// SetCapabilityManifestVersion sets the "capability_manifest_version" field.
func (m *OrchestratorPolicyMutation) SetCapabilityManifestVersion(s string) {
	m.capability_manifest_version = &s
}

// CapabilityManifestVersion returns the value of the "capability_manifest_version" field in the mutation.
func (m *OrchestratorPolicyMutation) CapabilityManifestVersion() (r string, exists bool) {
	v := m.capability_manifest_version
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilityManifestVersion returns the old "capability_manifest_version" field's value of the OrchestratorPolicy entity.
// If the OrchestratorPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorPolicyMutation) OldCapabilityManifestVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilityManifestVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilityManifestVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilityManifestVersion: %w", err)
	}
	return oldValue.CapabilityManifestVersion, nil
}

// ClearCapabilityManifestVersion clears the value of the "capability_manifest_version" field.
func (m *OrchestratorPolicyMutation) ClearCapabilityManifestVersion() {
	m.capability_manifest_version = nil
	m.clearedFields[orchestratorpolicy.FieldCapabilityManifestVersion] = struct{}{}
}

// CapabilityManifestVersionCleared returns if the "capability_manifest_version" field was cleared in this mutation.
func (m *OrchestratorPolicyMutation) CapabilityManifestVersionCleared() bool {
	_, ok := m.clearedFields[orchestratorpolicy.FieldCapabilityManifestVersion]
	return ok
}

// ResetCapabilityManifestVersion resets all changes to the "capability_manifest_version" field.
func (m *OrchestratorPolicyMutation) ResetCapabilityManifestVersion() {
	m.capability_manifest_version = nil
	delete(m.clearedFields, orchestratorpolicy.FieldCapabilityManifestVersion)
}

// SetCreatedAt sets the "created_at" field.
func (m *OrchestratorPolicyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrchestratorPolicyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OrchestratorPolicy entity.
// If the OrchestratorPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorPolicyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrchestratorPolicyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OrchestratorPolicyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OrchestratorPolicyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the OrchestratorPolicy entity.
// If the OrchestratorPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorPolicyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OrchestratorPolicyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the OrchestratorPolicyMutation builder.
func (m *OrchestratorPolicyMutation) Where(ps ...predicate.OrchestratorPolicy) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrchestratorPolicyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrchestratorPolicyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrchestratorPolicy, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrchestratorPolicyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrchestratorPolicyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrchestratorPolicy).
func (m *OrchestratorPolicyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrchestratorPolicyMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.tenant_id != nil {
		fields = append(fields, orchestratorpolicy.FieldTenantID)
	}
	if m.orchestrator_agent_id != nil {
		fields = append(fields, orchestratorpolicy.FieldOrchestratorAgentID)
	}
	if m.enforce_published_only != nil {
		fields = append(fields, orchestratorpolicy.FieldEnforcePublishedOnly)
	}
	if m.default_failure_policy != nil {
		fields = append(fields, orchestratorpolicy.FieldDefaultFailurePolicy)
	}
	if m.max_depth != nil {
		fields = append(fields, orchestratorpolicy.FieldMaxDepth)
	}
	if m.max_fanout != nil {
		fields = append(fields, orchestratorpolicy.FieldMaxFanout)
	}
	if m.max_children_total != nil {
		fields = append(fields, orchestratorpolicy.FieldMaxChildrenTotal)
	}
	if m.join_timeout_s != nil {
		fields = append(fields, orchestratorpolicy.FieldJoinTimeoutS)
	}
	if m.allowed_scope_subset != nil {
		fields = append(fields, orchestratorpolicy.FieldAllowedScopeSubset)
	}
	if m.capability_manifest_version != nil {
		fields = append(fields, orchestratorpolicy.FieldCapabilityManifestVersion)
	}
	if m.created_at != nil {
		fields = append(fields, orchestratorpolicy.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, orchestratorpolicy.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrchestratorPolicyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orchestratorpolicy.FieldTenantID:
		return m.TenantID()
	case orchestratorpolicy.FieldOrchestratorAgentID:
		return m.OrchestratorAgentID()
	case orchestratorpolicy.FieldEnforcePublishedOnly:
		return m.EnforcePublishedOnly()
	case orchestratorpolicy.FieldDefaultFailurePolicy:
		return m.DefaultFailurePolicy()
	case orchestratorpolicy.FieldMaxDepth:
		return m.MaxDepth()
	case orchestratorpolicy.FieldMaxFanout:
		return m.MaxFanout()
	case orchestratorpolicy.FieldMaxChildrenTotal:
		return m.MaxChildrenTotal()
	case orchestratorpolicy.FieldJoinTimeoutS:
		return m.JoinTimeoutS()
	case orchestratorpolicy.FieldAllowedScopeSubset:
		return m.AllowedScopeSubset()
	case orchestratorpolicy.FieldCapabilityManifestVersion:
		return m.CapabilityManifestVersion()
	case orchestratorpolicy.FieldCreatedAt:
		return m.CreatedAt()
	case orchestratorpolicy.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrchestratorPolicyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orchestratorpolicy.FieldTenantID:
		return m.OldTenantID(ctx)
	case orchestratorpolicy.FieldOrchestratorAgentID:
		return m.OldOrchestratorAgentID(ctx)
	case orchestratorpolicy.FieldEnforcePublishedOnly:
		return m.OldEnforcePublishedOnly(ctx)
	case orchestratorpolicy.FieldDefaultFailurePolicy:
		return m.OldDefaultFailurePolicy(ctx)
	case orchestratorpolicy.FieldMaxDepth:
		return m.OldMaxDepth(ctx)
	case orchestratorpolicy.FieldMaxFanout:
		return m.OldMaxFanout(ctx)
	case orchestratorpolicy.FieldMaxChildrenTotal:
		return m.OldMaxChildrenTotal(ctx)
	case orchestratorpolicy.FieldJoinTimeoutS:
		return m.OldJoinTimeoutS(ctx)
	case orchestratorpolicy.FieldAllowedScopeSubset:
		return m.OldAllowedScopeSubset(ctx)
	case orchestratorpolicy.FieldCapabilityManifestVersion:
		return m.OldCapabilityManifestVersion(ctx)
	case orchestratorpolicy.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case orchestratorpolicy.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OrchestratorPolicy field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrchestratorPolicyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orchestratorpolicy.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case orchestratorpolicy.FieldOrchestratorAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrchestratorAgentID(v)
		return nil
	case orchestratorpolicy.FieldEnforcePublishedOnly:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnforcePublishedOnly(v)
		return nil
	case orchestratorpolicy.FieldDefaultFailurePolicy:
		v, ok := value.(orchestratorpolicy.DefaultFailurePolicy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultFailurePolicy(v)
		return nil
	case orchestratorpolicy.FieldMaxDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxDepth(v)
		return nil
	case orchestratorpolicy.FieldMaxFanout:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxFanout(v)
		return nil
	case orchestratorpolicy.FieldMaxChildrenTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxChildrenTotal(v)
		return nil
	case orchestratorpolicy.FieldJoinTimeoutS:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJoinTimeoutS(v)
		return nil
	case orchestratorpolicy.FieldAllowedScopeSubset:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowedScopeSubset(v)
		return nil
	case orchestratorpolicy.FieldCapabilityManifestVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilityManifestVersion(v)
		return nil
	case orchestratorpolicy.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case orchestratorpolicy.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OrchestratorPolicy field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrchestratorPolicyMutation) AddedFields() []string {
	var fields []string
	if m.addmax_depth != nil {
		fields = append(fields, orchestratorpolicy.FieldMaxDepth)
	}
	if m.addmax_fanout != nil {
		fields = append(fields, orchestratorpolicy.FieldMaxFanout)
	}
	if m.addmax_children_total != nil {
		fields = append(fields, orchestratorpolicy.FieldMaxChildrenTotal)
	}
	if m.addjoin_timeout_s != nil {
		fields = append(fields, orchestratorpolicy.FieldJoinTimeoutS)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrchestratorPolicyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case orchestratorpolicy.FieldMaxDepth:
		return m.AddedMaxDepth()
	case orchestratorpolicy.FieldMaxFanout:
		return m.AddedMaxFanout()
	case orchestratorpolicy.FieldMaxChildrenTotal:
		return m.AddedMaxChildrenTotal()
	case orchestratorpolicy.FieldJoinTimeoutS:
		return m.AddedJoinTimeoutS()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrchestratorPolicyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case orchestratorpolicy.FieldMaxDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxDepth(v)
		return nil
	case orchestratorpolicy.FieldMaxFanout:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxFanout(v)
		return nil
	case orchestratorpolicy.FieldMaxChildrenTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxChildrenTotal(v)
		return nil
	case orchestratorpolicy.FieldJoinTimeoutS:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddJoinTimeoutS(v)
		return nil
	}
	return fmt.Errorf("unknown OrchestratorPolicy numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrchestratorPolicyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(orchestratorpolicy.FieldAllowedScopeSubset) {
		fields = append(fields, orchestratorpolicy.FieldAllowedScopeSubset)
	}
	if m.FieldCleared(orchestratorpolicy.FieldCapabilityManifestVersion) {
		fields = append(fields, orchestratorpolicy.FieldCapabilityManifestVersion)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrchestratorPolicyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrchestratorPolicyMutation) ClearField(name string) error {
	switch name {
	case orchestratorpolicy.FieldAllowedScopeSubset:
		m.ClearAllowedScopeSubset()
		return nil
	case orchestratorpolicy.FieldCapabilityManifestVersion:
		m.ClearCapabilityManifestVersion()
		return nil
	}
	return fmt.Errorf("unknown OrchestratorPolicy nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrchestratorPolicyMutation) ResetField(name string) error {
	switch name {
	case orchestratorpolicy.FieldTenantID:
		m.ResetTenantID()
		return nil
	case orchestratorpolicy.FieldOrchestratorAgentID:
		m.ResetOrchestratorAgentID()
		return nil
	case orchestratorpolicy.FieldEnforcePublishedOnly:
		m.ResetEnforcePublishedOnly()
		return nil
	case orchestratorpolicy.FieldDefaultFailurePolicy:
		m.ResetDefaultFailurePolicy()
		return nil
	case orchestratorpolicy.FieldMaxDepth:
		m.ResetMaxDepth()
		return nil
	case orchestratorpolicy.FieldMaxFanout:
		m.ResetMaxFanout()
		return nil
	case orchestratorpolicy.FieldMaxChildrenTotal:
		m.ResetMaxChildrenTotal()
		return nil
	case orchestratorpolicy.FieldJoinTimeoutS:
		m.ResetJoinTimeoutS()
		return nil
	case orchestratorpolicy.FieldAllowedScopeSubset:
		m.ResetAllowedScopeSubset()
		return nil
	case orchestratorpolicy.FieldCapabilityManifestVersion:
		m.ResetCapabilityManifestVersion()
		return nil
	case orchestratorpolicy.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case orchestratorpolicy.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown OrchestratorPolicy field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrchestratorPolicyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrchestratorPolicyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrchestratorPolicyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrchestratorPolicyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrchestratorPolicyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrchestratorPolicyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrchestratorPolicyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OrchestratorPolicy unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrchestratorPolicyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OrchestratorPolicy edge %s", name)
}

// OrchestratorTargetMutation represents an operation that mutates the OrchestratorTarget nodes in the graph.
type OrchestratorTargetMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	tenant_id             *string
	orchestrator_agent_id *string
	target_agent_id       *string
	target_agent_slug     *string
	tag                   *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*OrchestratorTarget, error)
	predicates            []predicate.OrchestratorTarget
}

var _ ent.Mutation = (*OrchestratorTargetMutation)(nil)

// orchestratortargetOption allows management of the mutation configuration using functional options.
type orchestratortargetOption func(*OrchestratorTargetMutation)

// newOrchestratorTargetMutation creates new mutation for the OrchestratorTarget entity.
func newOrchestratorTargetMutation(c config, op Op, opts ...orchestratortargetOption) *OrchestratorTargetMutation {
	m := &OrchestratorTargetMutation{
		config:        c,
		op:            op,
		typ:           TypeOrchestratorTarget,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrchestratorTargetID sets the ID field of the mutation.
func withOrchestratorTargetID(id string) orchestratortargetOption {
	return func(m *OrchestratorTargetMutation) {
		var (
			err   error
			once  sync.Once
			value *OrchestratorTarget
		)
		m.oldValue = func(ctx context.Context) (*OrchestratorTarget, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrchestratorTarget.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrchestratorTarget sets the old OrchestratorTarget of the mutation.
func withOrchestratorTarget(node *OrchestratorTarget) orchestratortargetOption {
	return func(m *OrchestratorTargetMutation) {
		m.oldValue = func(context.Context) (*OrchestratorTarget, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrchestratorTargetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrchestratorTargetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrchestratorTarget entities.
func (m *OrchestratorTargetMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrchestratorTargetMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrchestratorTargetMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrchestratorTarget.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *OrchestratorTargetMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *OrchestratorTargetMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the OrchestratorTarget entity.
// If the OrchestratorTarget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorTargetMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *OrchestratorTargetMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetOrchestratorAgentID sets the "orchestrator_agent_id" field.
func (m *OrchestratorTargetMutation) SetOrchestratorAgentID(s string) {
	m.orchestrator_agent_id = &s
}

// OrchestratorAgentID returns the value of the "orchestrator_agent_id" field in the mutation.
func (m *OrchestratorTargetMutation) OrchestratorAgentID() (r string, exists bool) {
	v := m.orchestrator_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrchestratorAgentID returns the old "orchestrator_agent_id" field's value of the OrchestratorTarget entity.
// If the OrchestratorTarget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorTargetMutation) OldOrchestratorAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrchestratorAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrchestratorAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrchestratorAgentID: %w", err)
	}
	return oldValue.OrchestratorAgentID, nil
}

// ResetOrchestratorAgentID resets all changes to the "orchestrator_agent_id" field.
func (m *OrchestratorTargetMutation) ResetOrchestratorAgentID() {
	m.orchestrator_agent_id = nil
}

// SetTargetAgentID sets the "target_agent_id" field.
func (m *OrchestratorTargetMutation) SetTargetAgentID(s string) {
	m.target_agent_id = &s
}

// TargetAgentID returns the value of the "target_agent_id" field in the mutation.
func (m *OrchestratorTargetMutation) TargetAgentID() (r string, exists bool) {
	v := m.target_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetAgentID returns the old "target_agent_id" field's value of the OrchestratorTarget entity.
// If the OrchestratorTarget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorTargetMutation) OldTargetAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetAgentID: %w", err)
	}
	return oldValue.TargetAgentID, nil
}

// ClearTargetAgentID clears the value of the "target_agent_id" field.
func (m *OrchestratorTargetMutation) ClearTargetAgentID() {
	m.target_agent_id = nil
	m.clearedFields[orchestratortarget.FieldTargetAgentID] = struct{}{}
}

// TargetAgentIDCleared returns if the "target_agent_id" field was cleared in this mutation.
func (m *OrchestratorTargetMutation) TargetAgentIDCleared() bool {
	_, ok := m.clearedFields[orchestratortarget.FieldTargetAgentID]
	return ok
}

// ResetTargetAgentID resets all changes to the "target_agent_id" field.
func (m *OrchestratorTargetMutation) ResetTargetAgentID() {
	m.target_agent_id = nil
	delete(m.clearedFields, orchestratortarget.FieldTargetAgentID)
}

// SetTargetAgentSlug sets the "target_agent_slug" field.
func (m *OrchestratorTargetMutation) SetTargetAgentSlug(s string) {
	m.target_agent_slug = &s
}

// TargetAgentSlug returns the value of the "target_agent_slug" field in the mutation.
func (m *OrchestratorTargetMutation) TargetAgentSlug() (r string, exists bool) {
	v := m.target_agent_slug
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetAgentSlug returns the old "target_agent_slug" field's value of the OrchestratorTarget entity.
// If the OrchestratorTarget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorTargetMutation) OldTargetAgentSlug(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetAgentSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetAgentSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetAgentSlug: %w", err)
	}
	return oldValue.TargetAgentSlug, nil
}

// ClearTargetAgentSlug clears the value of the "target_agent_slug" field.
func (m *OrchestratorTargetMutation) ClearTargetAgentSlug() {
	m.target_agent_slug = nil
	m.clearedFields[orchestratortarget.FieldTargetAgentSlug] = struct{}{}
}

// TargetAgentSlugCleared returns if the "target_agent_slug" field was cleared in this mutation.
func (m *OrchestratorTargetMutation) TargetAgentSlugCleared() bool {
	_, ok := m.clearedFields[orchestratortarget.FieldTargetAgentSlug]
	return ok
}

// ResetTargetAgentSlug resets all changes to the "target_agent_slug" field.
func (m *OrchestratorTargetMutation) ResetTargetAgentSlug() {
	m.target_agent_slug = nil
	delete(m.clearedFields, orchestratortarget.FieldTargetAgentSlug)
}

// SetTag sets the "tag" field.
func (m *OrchestratorTargetMutation) SetTag(s string) {
	m.tag = &s
}

// Tag returns the value of the "tag" field in the mutation.
func (m *OrchestratorTargetMutation) Tag() (r string, exists bool) {
	v := m.tag
	if v == nil {
		return
	}
	return *v, true
}

// OldTag returns the old "tag" field's value of the OrchestratorTarget entity.
// If the OrchestratorTarget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorTargetMutation) OldTag(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTag: %w", err)
	}
	return oldValue.Tag, nil
}

// ClearTag clears the value of the "tag" field.
func (m *OrchestratorTargetMutation) ClearTag() {
	m.tag = nil
	m.clearedFields[orchestratortarget.FieldTag] = struct{}{}
}

// TagCleared returns if the "tag" field was cleared in this mutation.
func (m *OrchestratorTargetMutation) TagCleared() bool {
	_, ok := m.clearedFields[orchestratortarget.FieldTag]
	return ok
}

// ResetTag resets all changes to the "tag" field.
func (m *OrchestratorTargetMutation) ResetTag() {
	m.tag = nil
	delete(m.clearedFields, orchestratortarget.FieldTag)
}

// Where appends a list predicates to the OrchestratorTargetMutation builder.
func (m *OrchestratorTargetMutation) Where(ps ...predicate.OrchestratorTarget) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrchestratorTargetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrchestratorTargetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrchestratorTarget, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrchestratorTargetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrchestratorTargetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrchestratorTarget).
func (m *OrchestratorTargetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrchestratorTargetMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.tenant_id != nil {
		fields = append(fields, orchestratortarget.FieldTenantID)
	}
	if m.orchestrator_agent_id != nil {
		fields = append(fields, orchestratortarget.FieldOrchestratorAgentID)
	}
	if m.target_agent_id != nil {
		fields = append(fields, orchestratortarget.FieldTargetAgentID)
	}
	if m.target_agent_slug != nil {
		fields = append(fields, orchestratortarget.FieldTargetAgentSlug)
	}
	if m.tag != nil {
		fields = append(fields, orchestratortarget.FieldTag)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrchestratorTargetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orchestratortarget.FieldTenantID:
		return m.TenantID()
	case orchestratortarget.FieldOrchestratorAgentID:
		return m.OrchestratorAgentID()
	case orchestratortarget.FieldTargetAgentID:
		return m.TargetAgentID()
	case orchestratortarget.FieldTargetAgentSlug:
		return m.TargetAgentSlug()
	case orchestratortarget.FieldTag:
		return m.Tag()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrchestratorTargetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orchestratortarget.FieldTenantID:
		return m.OldTenantID(ctx)
	case orchestratortarget.FieldOrchestratorAgentID:
		return m.OldOrchestratorAgentID(ctx)
	case orchestratortarget.FieldTargetAgentID:
		return m.OldTargetAgentID(ctx)
	case orchestratortarget.FieldTargetAgentSlug:
		return m.OldTargetAgentSlug(ctx)
	case orchestratortarget.FieldTag:
		return m.OldTag(ctx)
	}
	return nil, fmt.Errorf("unknown OrchestratorTarget field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrchestratorTargetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orchestratortarget.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case orchestratortarget.FieldOrchestratorAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrchestratorAgentID(v)
		return nil
	case orchestratortarget.FieldTargetAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetAgentID(v)
		return nil
	case orchestratortarget.FieldTargetAgentSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetAgentSlug(v)
		return nil
	case orchestratortarget.FieldTag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTag(v)
		return nil
	}
	return fmt.Errorf("unknown OrchestratorTarget field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrchestratorTargetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrchestratorTargetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrchestratorTargetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OrchestratorTarget numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrchestratorTargetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(orchestratortarget.FieldTargetAgentID) {
		fields = append(fields, orchestratortarget.FieldTargetAgentID)
	}
	if m.FieldCleared(orchestratortarget.FieldTargetAgentSlug) {
		fields = append(fields, orchestratortarget.FieldTargetAgentSlug)
	}
	if m.FieldCleared(orchestratortarget.FieldTag) {
		fields = append(fields, orchestratortarget.FieldTag)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrchestratorTargetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrchestratorTargetMutation) ClearField(name string) error {
	switch name {
	case orchestratortarget.FieldTargetAgentID:
		m.ClearTargetAgentID()
		return nil
	case orchestratortarget.FieldTargetAgentSlug:
		m.ClearTargetAgentSlug()
		return nil
	case orchestratortarget.FieldTag:
		m.ClearTag()
		return nil
	}
	return fmt.Errorf("unknown OrchestratorTarget nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrchestratorTargetMutation) ResetField(name string) error {
	switch name {
	case orchestratortarget.FieldTenantID:
		m.ResetTenantID()
		return nil
	case orchestratortarget.FieldOrchestratorAgentID:
		m.ResetOrchestratorAgentID()
		return nil
	case orchestratortarget.FieldTargetAgentID:
		m.ResetTargetAgentID()
		return nil
	case orchestratortarget.FieldTargetAgentSlug:
		m.ResetTargetAgentSlug()
		return nil
	case orchestratortarget.FieldTag:
		m.ResetTag()
		return nil
	}
	return fmt.Errorf("unknown OrchestratorTarget field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrchestratorTargetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrchestratorTargetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrchestratorTargetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrchestratorTargetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrchestratorTargetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrchestratorTargetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrchestratorTargetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OrchestratorTarget unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrchestratorTargetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OrchestratorTarget edge %s", name)
}

// RunMutation represents an operation that mutates the Run nodes in the graph.
type RunMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	tenant_id              *string
	agent_id               *string
	initiator_user_id      *string
	workload_principal_id  *string
	delegation_grant_id    *string
	status                 *run.Status
	root_run_id            *string
	parent_run_id          *string
	parent_node_id         *string
	depth                  *int
	adddepth               *int
	spawn_key              *string
	orchestration_group_id *string
	input                  *map[string]interface{}
	output                 *map[string]interface{}
	timeout_s              *int
	addtimeout_s           *int
	status_reason          *string
	created_at             *time.Time
	started_at             *time.Time
	completed_at           *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Run, error)
	predicates             []predicate.Run
}

var _ ent.Mutation = (*RunMutation)(nil)

// runOption allows management of the mutation configuration using functional options.
type runOption func(*RunMutation)

// newRunMutation creates new mutation for the Run entity.
func newRunMutation(c config, op Op, opts ...runOption) *RunMutation {
	m := &RunMutation{
		config:        c,
		op:            op,
		typ:           TypeRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunID sets the ID field of the mutation.
func withRunID(id string) runOption {
	return func(m *RunMutation) {
		var (
			err   error
			once  sync.Once
			value *Run
		)
		m.oldValue = func(ctx context.Context) (*Run, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Run.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRun sets the old Run of the mutation.
func withRun(node *Run) runOption {
	return func(m *RunMutation) {
		m.oldValue = func(context.Context) (*Run, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Run entities.
func (m *RunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Run.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *RunMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *RunMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *RunMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetAgentID sets the "agent_id" field.
func (m *RunMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *RunMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *RunMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetInitiatorUserID sets the "initiator_user_id" field.
func (m *RunMutation) SetInitiatorUserID(s string) {
	m.initiator_user_id = &s
}

// InitiatorUserID returns the value of the "initiator_user_id" field in the mutation.
func (m *RunMutation) InitiatorUserID() (r string, exists bool) {
	v := m.initiator_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInitiatorUserID returns the old "initiator_user_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldInitiatorUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitiatorUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitiatorUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitiatorUserID: %w", err)
	}
	return oldValue.InitiatorUserID, nil
}

// ResetInitiatorUserID resets all changes to the "initiator_user_id" field.
func (m *RunMutation) ResetInitiatorUserID() {
	m.initiator_user_id = nil
}

// SetWorkloadPrincipalID sets the "workload_principal_id" field.
func (m *RunMutation) SetWorkloadPrincipalID(s string) {
	m.workload_principal_id = &s
}

// WorkloadPrincipalID returns the value of the "workload_principal_id" field in the mutation.
func (m *RunMutation) WorkloadPrincipalID() (r string, exists bool) {
	v := m.workload_principal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkloadPrincipalID returns the old "workload_principal_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldWorkloadPrincipalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkloadPrincipalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkloadPrincipalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkloadPrincipalID: %w", err)
	}
	return oldValue.WorkloadPrincipalID, nil
}

// ResetWorkloadPrincipalID resets all changes to the "workload_principal_id" field.
func (m *RunMutation) ResetWorkloadPrincipalID() {
	m.workload_principal_id = nil
}

// SetDelegationGrantID sets the "delegation_grant_id" field.
func (m *RunMutation) SetDelegationGrantID(s string) {
	m.delegation_grant_id = &s
}

// DelegationGrantID returns the value of the "delegation_grant_id" field in the mutation.
func (m *RunMutation) DelegationGrantID() (r string, exists bool) {
	v := m.delegation_grant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDelegationGrantID returns the old "delegation_grant_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldDelegationGrantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelegationGrantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelegationGrantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelegationGrantID: %w", err)
	}
	return oldValue.DelegationGrantID, nil
}

// ResetDelegationGrantID resets all changes to the "delegation_grant_id" field.
func (m *RunMutation) ResetDelegationGrantID() {
	m.delegation_grant_id = nil
}

// SetStatus sets the "status" field.
func (m *RunMutation) SetStatus(r run.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunMutation) Status() (r run.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStatus(ctx context.Context) (v run.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunMutation) ResetStatus() {
	m.status = nil
}

// SetRootRunID sets the "root_run_id" field.
func (m *RunMutation) SetRootRunID(s string) {
	m.root_run_id = &s
}

// RootRunID returns the value of the "root_run_id" field in the mutation.
func (m *RunMutation) RootRunID() (r string, exists bool) {
	v := m.root_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRootRunID returns the old "root_run_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldRootRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRootRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRootRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRootRunID: %w", err)
	}
	return oldValue.RootRunID, nil
}

// ResetRootRunID resets all changes to the "root_run_id" field.
func (m *RunMutation) ResetRootRunID() {
	m.root_run_id = nil
}

// SetParentRunID sets the "parent_run_id" field.
func (m *RunMutation) SetParentRunID(s string) {
	m.parent_run_id = &s
}

// ParentRunID returns the value of the "parent_run_id" field in the mutation.
func (m *RunMutation) ParentRunID() (r string, exists bool) {
	v := m.parent_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentRunID returns the old "parent_run_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldParentRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentRunID: %w", err)
	}
	return oldValue.ParentRunID, nil
}

// ClearParentRunID clears the value of the "parent_run_id" field.
func (m *RunMutation) ClearParentRunID() {
	m.parent_run_id = nil
	m.clearedFields[run.FieldParentRunID] = struct{}{}
}

// ParentRunIDCleared returns if the "parent_run_id" field was cleared in this mutation.
func (m *RunMutation) ParentRunIDCleared() bool {
	_, ok := m.clearedFields[run.FieldParentRunID]
	return ok
}

// ResetParentRunID resets all changes to the "parent_run_id" field.
func (m *RunMutation) ResetParentRunID() {
	m.parent_run_id = nil
	delete(m.clearedFields, run.FieldParentRunID)
}

// SetParentNodeID sets the "parent_node_id" field.
func (m *RunMutation) SetParentNodeID(s string) {
	m.parent_node_id = &s
}

// ParentNodeID returns the value of the "parent_node_id" field in the mutation.
func (m *RunMutation) ParentNodeID() (r string, exists bool) {
	v := m.parent_node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentNodeID returns the old "parent_node_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldParentNodeID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentNodeID: %w", err)
	}
	return oldValue.ParentNodeID, nil
}

// ClearParentNodeID clears the value of the "parent_node_id" field.
func (m *RunMutation) ClearParentNodeID() {
	m.parent_node_id = nil
	m.clearedFields[run.FieldParentNodeID] = struct{}{}
}

// ParentNodeIDCleared returns if the "parent_node_id" field was cleared in this mutation.
func (m *RunMutation) ParentNodeIDCleared() bool {
	_, ok := m.clearedFields[run.FieldParentNodeID]
	return ok
}

// ResetParentNodeID resets all changes to the "parent_node_id" field.
func (m *RunMutation) ResetParentNodeID() {
	m.parent_node_id = nil
	delete(m.clearedFields, run.FieldParentNodeID)
}

// SetDepth sets the "depth" field.
func (m *RunMutation) SetDepth(i int) {
	m.depth = &i
	m.adddepth = nil
}

// Depth returns the value of the "depth" field in the mutation.
func (m *RunMutation) Depth() (r int, exists bool) {
	v := m.depth
	if v == nil {
		return
	}
	return *v, true
}

// OldDepth returns the old "depth" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldDepth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepth: %w", err)
	}
	return oldValue.Depth, nil
}

// AddDepth adds i to the "depth" field.
func (m *RunMutation) AddDepth(i int) {
	if m.adddepth != nil {
		*m.adddepth += i
	} else {
		m.adddepth = &i
	}
}

// AddedDepth returns the value that was added to the "depth" field in this mutation.
func (m *RunMutation) AddedDepth() (r int, exists bool) {
	v := m.adddepth
	if v == nil {
		return
	}
	return *v, true
}

// ResetDepth resets all changes to the "depth" field.
func (m *RunMutation) ResetDepth() {
	m.depth = nil
	m.adddepth = nil
}

// SetSpawnKey sets the "spawn_key" field.
func (m *RunMutation) SetSpawnKey(s string) {
	m.spawn_key = &s
}

// SpawnKey returns the value of the "spawn_key" field in the mutation.
func (m *RunMutation) SpawnKey() (r string, exists bool) {
	v := m.spawn_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSpawnKey returns the old "spawn_key" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldSpawnKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpawnKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpawnKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpawnKey: %w", err)
	}
	return oldValue.SpawnKey, nil
}

// ClearSpawnKey clears the value of the "spawn_key" field.
func (m *RunMutation) ClearSpawnKey() {
	m.spawn_key = nil
	m.clearedFields[run.FieldSpawnKey] = struct{}{}
}

// SpawnKeyCleared returns if the "spawn_key" field was cleared in this mutation.
func (m *RunMutation) SpawnKeyCleared() bool {
	_, ok := m.clearedFields[run.FieldSpawnKey]
	return ok
}

// ResetSpawnKey resets all changes to the "spawn_key" field.
func (m *RunMutation) ResetSpawnKey() {
	m.spawn_key = nil
	delete(m.clearedFields, run.FieldSpawnKey)
}

// SetOrchestrationGroupID sets the "orchestration_group_id" field.
func (m *RunMutation) SetOrchestrationGroupID(s string) {
	m.orchestration_group_id = &s
}

// OrchestrationGroupID returns the value of the "orchestration_group_id" field in the mutation.
func (m *RunMutation) OrchestrationGroupID() (r string, exists bool) {
	v := m.orchestration_group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrchestrationGroupID returns the old "orchestration_group_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldOrchestrationGroupID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrchestrationGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrchestrationGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrchestrationGroupID: %w", err)
	}
	return oldValue.OrchestrationGroupID, nil
}

// ClearOrchestrationGroupID clears the value of the "orchestration_group_id" field.
func (m *RunMutation) ClearOrchestrationGroupID() {
	m.orchestration_group_id = nil
	m.clearedFields[run.FieldOrchestrationGroupID] = struct{}{}
}

// OrchestrationGroupIDCleared returns if the "orchestration_group_id" field was cleared in this mutation.
func (m *RunMutation) OrchestrationGroupIDCleared() bool {
	_, ok := m.clearedFields[run.FieldOrchestrationGroupID]
	return ok
}

// ResetOrchestrationGroupID resets all changes to the "orchestration_group_id" field.
func (m *RunMutation) ResetOrchestrationGroupID() {
	m.orchestration_group_id = nil
	delete(m.clearedFields, run.FieldOrchestrationGroupID)
}

// SetInput sets the "input" field.
func (m *RunMutation) SetInput(value map[string]interface{}) {
	m.input = &value
}

// Input returns the value of the "input" field in the mutation.
func (m *RunMutation) Input() (r map[string]interface{}, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldInput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ClearInput clears the value of the "input" field.
func (m *RunMutation) ClearInput() {
	m.input = nil
	m.clearedFields[run.FieldInput] = struct{}{}
}

// InputCleared returns if the "input" field was cleared in this mutation.
func (m *RunMutation) InputCleared() bool {
	_, ok := m.clearedFields[run.FieldInput]
	return ok
}

// ResetInput resets all changes to the "input" field.
func (m *RunMutation) ResetInput() {
	m.input = nil
	delete(m.clearedFields, run.FieldInput)
}

// SetOutput sets the "output" field.
func (m *RunMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *RunMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *RunMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[run.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *RunMutation) OutputCleared() bool {
	_, ok := m.clearedFields[run.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *RunMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, run.FieldOutput)
}

// SetTimeoutS sets the "timeout_s" field.
func (m *RunMutation) SetTimeoutS(i int) {
	m.timeout_s = &i
	m.addtimeout_s = nil
}

// TimeoutS returns the value of the "timeout_s" field in the mutation.
func (m *RunMutation) TimeoutS() (r int, exists bool) {
	v := m.timeout_s
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutS returns the old "timeout_s" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldTimeoutS(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutS is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutS requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutS: %w", err)
	}
	return oldValue.TimeoutS, nil
}

// AddTimeoutS adds i to the "timeout_s" field.
func (m *RunMutation) AddTimeoutS(i int) {
	if m.addtimeout_s != nil {
		*m.addtimeout_s += i
	} else {
		m.addtimeout_s = &i
	}
}

// AddedTimeoutS returns the value that was added to the "timeout_s" field in this mutation.
func (m *RunMutation) AddedTimeoutS() (r int, exists bool) {
	v := m.addtimeout_s
	if v == nil {
		return
	}
	return *v, true
}

// ClearTimeoutS clears the value of the "timeout_s" field.
func (m *RunMutation) ClearTimeoutS() {
	m.timeout_s = nil
	m.addtimeout_s = nil
	m.clearedFields[run.FieldTimeoutS] = struct{}{}
}

// TimeoutSCleared returns if the "timeout_s" field was cleared in this mutation.
func (m *RunMutation) TimeoutSCleared() bool {
	_, ok := m.clearedFields[run.FieldTimeoutS]
	return ok
}

// ResetTimeoutS resets all changes to the "timeout_s" field.
func (m *RunMutation) ResetTimeoutS() {
	m.timeout_s = nil
	m.addtimeout_s = nil
	delete(m.clearedFields, run.FieldTimeoutS)
}

// SetStatusReason sets the "status_reason" field.
func (m *RunMutation) SetStatusReason(s string) {
	m.status_reason = &s
}

// StatusReason returns the value of the "status_reason" field in the mutation.
func (m *RunMutation) StatusReason() (r string, exists bool) {
	v := m.status_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusReason returns the old "status_reason" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStatusReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusReason: %w", err)
	}
	return oldValue.StatusReason, nil
}

// ClearStatusReason clears the value of the "status_reason" field.
func (m *RunMutation) ClearStatusReason() {
	m.status_reason = nil
	m.clearedFields[run.FieldStatusReason] = struct{}{}
}

// StatusReasonCleared returns if the "status_reason" field was cleared in this mutation.
func (m *RunMutation) StatusReasonCleared() bool {
	_, ok := m.clearedFields[run.FieldStatusReason]
	return ok
}

// ResetStatusReason resets all changes to the "status_reason" field.
func (m *RunMutation) ResetStatusReason() {
	m.status_reason = nil
	delete(m.clearedFields, run.FieldStatusReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[run.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, run.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *RunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[run.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, run.FieldCompletedAt)
}

// Where appends a list predicates to the RunMutation builder.
func (m *RunMutation) Where(ps ...predicate.Run) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Run, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Run).
func (m *RunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.tenant_id != nil {
		fields = append(fields, run.FieldTenantID)
	}
	if m.agent_id != nil {
		fields = append(fields, run.FieldAgentID)
	}
	if m.initiator_user_id != nil {
		fields = append(fields, run.FieldInitiatorUserID)
	}
	if m.workload_principal_id != nil {
		fields = append(fields, run.FieldWorkloadPrincipalID)
	}
	if m.delegation_grant_id != nil {
		fields = append(fields, run.FieldDelegationGrantID)
	}
	if m.status != nil {
		fields = append(fields, run.FieldStatus)
	}
	if m.root_run_id != nil {
		fields = append(fields, run.FieldRootRunID)
	}
	if m.parent_run_id != nil {
		fields = append(fields, run.FieldParentRunID)
	}
	if m.parent_node_id != nil {
		fields = append(fields, run.FieldParentNodeID)
	}
	if m.depth != nil {
		fields = append(fields, run.FieldDepth)
	}
	if m.spawn_key != nil {
		fields = append(fields, run.FieldSpawnKey)
	}
	if m.orchestration_group_id != nil {
		fields = append(fields, run.FieldOrchestrationGroupID)
	}
	if m.input != nil {
		fields = append(fields, run.FieldInput)
	}
	if m.output != nil {
		fields = append(fields, run.FieldOutput)
	}
	if m.timeout_s != nil {
		fields = append(fields, run.FieldTimeoutS)
	}
	if m.status_reason != nil {
		fields = append(fields, run.FieldStatusReason)
	}
	if m.created_at != nil {
		fields = append(fields, run.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, run.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case run.FieldTenantID:
		return m.TenantID()
	case run.FieldAgentID:
		return m.AgentID()
	case run.FieldInitiatorUserID:
		return m.InitiatorUserID()
	case run.FieldWorkloadPrincipalID:
		return m.WorkloadPrincipalID()
	case run.FieldDelegationGrantID:
		return m.DelegationGrantID()
	case run.FieldStatus:
		return m.Status()
	case run.FieldRootRunID:
		return m.RootRunID()
	case run.FieldParentRunID:
		return m.ParentRunID()
	case run.FieldParentNodeID:
		return m.ParentNodeID()
	case run.FieldDepth:
		return m.Depth()
	case run.FieldSpawnKey:
		return m.SpawnKey()
	case run.FieldOrchestrationGroupID:
		return m.OrchestrationGroupID()
	case run.FieldInput:
		return m.Input()
	case run.FieldOutput:
		return m.Output()
	case run.FieldTimeoutS:
		return m.TimeoutS()
	case run.FieldStatusReason:
		return m.StatusReason()
	case run.FieldCreatedAt:
		return m.CreatedAt()
	case run.FieldStartedAt:
		return m.StartedAt()
	case run.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case run.FieldTenantID:
		return m.OldTenantID(ctx)
	case run.FieldAgentID:
		return m.OldAgentID(ctx)
	case run.FieldInitiatorUserID:
		return m.OldInitiatorUserID(ctx)
	case run.FieldWorkloadPrincipalID:
		return m.OldWorkloadPrincipalID(ctx)
	case run.FieldDelegationGrantID:
		return m.OldDelegationGrantID(ctx)
	case run.FieldStatus:
		return m.OldStatus(ctx)
	case run.FieldRootRunID:
		return m.OldRootRunID(ctx)
	case run.FieldParentRunID:
		return m.OldParentRunID(ctx)
	case run.FieldParentNodeID:
		return m.OldParentNodeID(ctx)
	case run.FieldDepth:
		return m.OldDepth(ctx)
	case run.FieldSpawnKey:
		return m.OldSpawnKey(ctx)
	case run.FieldOrchestrationGroupID:
		return m.OldOrchestrationGroupID(ctx)
	case run.FieldInput:
		return m.OldInput(ctx)
	case run.FieldOutput:
		return m.OldOutput(ctx)
	case run.FieldTimeoutS:
		return m.OldTimeoutS(ctx)
	case run.FieldStatusReason:
		return m.OldStatusReason(ctx)
	case run.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case run.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case run.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Run field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case run.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case run.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case run.FieldInitiatorUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitiatorUserID(v)
		return nil
	case run.FieldWorkloadPrincipalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkloadPrincipalID(v)
		return nil
	case run.FieldDelegationGrantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelegationGrantID(v)
		return nil
	case run.FieldStatus:
		v, ok := value.(run.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case run.FieldRootRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRootRunID(v)
		return nil
	case run.FieldParentRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentRunID(v)
		return nil
	case run.FieldParentNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentNodeID(v)
		return nil
	case run.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepth(v)
		return nil
	case run.FieldSpawnKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpawnKey(v)
		return nil
	case run.FieldOrchestrationGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrchestrationGroupID(v)
		return nil
	case run.FieldInput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case run.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case run.FieldTimeoutS:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutS(v)
		return nil
	case run.FieldStatusReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusReason(v)
		return nil
	case run.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case run.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case run.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunMutation) AddedFields() []string {
	var fields []string
	if m.adddepth != nil {
		fields = append(fields, run.FieldDepth)
	}
	if m.addtimeout_s != nil {
		fields = append(fields, run.FieldTimeoutS)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case run.FieldDepth:
		return m.AddedDepth()
	case run.FieldTimeoutS:
		return m.AddedTimeoutS()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case run.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDepth(v)
		return nil
	case run.FieldTimeoutS:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutS(v)
		return nil
	}
	return fmt.Errorf("unknown Run numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(run.FieldParentRunID) {
		fields = append(fields, run.FieldParentRunID)
	}
	if m.FieldCleared(run.FieldParentNodeID) {
		fields = append(fields, run.FieldParentNodeID)
	}
	if m.FieldCleared(run.FieldSpawnKey) {
		fields = append(fields, run.FieldSpawnKey)
	}
	if m.FieldCleared(run.FieldOrchestrationGroupID) {
		fields = append(fields, run.FieldOrchestrationGroupID)
	}
	if m.FieldCleared(run.FieldInput) {
		fields = append(fields, run.FieldInput)
	}
	if m.FieldCleared(run.FieldOutput) {
		fields = append(fields, run.FieldOutput)
	}
	if m.FieldCleared(run.FieldTimeoutS) {
		fields = append(fields, run.FieldTimeoutS)
	}
	if m.FieldCleared(run.FieldStatusReason) {
		fields = append(fields, run.FieldStatusReason)
	}
	if m.FieldCleared(run.FieldStartedAt) {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.FieldCleared(run.FieldCompletedAt) {
		fields = append(fields, run.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunMutation) ClearField(name string) error {
	switch name {
	case run.FieldParentRunID:
		m.ClearParentRunID()
		return nil
	case run.FieldParentNodeID:
		m.ClearParentNodeID()
		return nil
	case run.FieldSpawnKey:
		m.ClearSpawnKey()
		return nil
	case run.FieldOrchestrationGroupID:
		m.ClearOrchestrationGroupID()
		return nil
	case run.FieldInput:
		m.ClearInput()
		return nil
	case run.FieldOutput:
		m.ClearOutput()
		return nil
	case run.FieldTimeoutS:
		m.ClearTimeoutS()
		return nil
	case run.FieldStatusReason:
		m.ClearStatusReason()
		return nil
	case run.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Run nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunMutation) ResetField(name string) error {
	switch name {
	case run.FieldTenantID:
		m.ResetTenantID()
		return nil
	case run.FieldAgentID:
		m.ResetAgentID()
		return nil
	case run.FieldInitiatorUserID:
		m.ResetInitiatorUserID()
		return nil
	case run.FieldWorkloadPrincipalID:
		m.ResetWorkloadPrincipalID()
		return nil
	case run.FieldDelegationGrantID:
		m.ResetDelegationGrantID()
		return nil
	case run.FieldStatus:
		m.ResetStatus()
		return nil
	case run.FieldRootRunID:
		m.ResetRootRunID()
		return nil
	case run.FieldParentRunID:
		m.ResetParentRunID()
		return nil
	case run.FieldParentNodeID:
		m.ResetParentNodeID()
		return nil
	case run.FieldDepth:
		m.ResetDepth()
		return nil
	case run.FieldSpawnKey:
		m.ResetSpawnKey()
		return nil
	case run.FieldOrchestrationGroupID:
		m.ResetOrchestrationGroupID()
		return nil
	case run.FieldInput:
		m.ResetInput()
		return nil
	case run.FieldOutput:
		m.ResetOutput()
		return nil
	case run.FieldTimeoutS:
		m.ResetTimeoutS()
		return nil
	case run.FieldStatusReason:
		m.ResetStatusReason()
		return nil
	case run.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case run.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Run unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Run edge %s", name)
}

// TokenJTIMutation represents an operation that mutates the TokenJTI nodes in the graph.
type TokenJTIMutation struct {
	config
	op                Op
	typ               string
	id                *string
	grant_id          *string
	expires_at        *time.Time
	revoked_at        *time.Time
	revocation_reason *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*TokenJTI, error)
	predicates        []predicate.TokenJTI
}

var _ ent.Mutation = (*TokenJTIMutation)(nil)

// tokenjtiOption allows management of the mutation configuration using functional options.
type tokenjtiOption func(*TokenJTIMutation)

// newTokenJTIMutation creates new mutation for the TokenJTI entity.
func newTokenJTIMutation(c config, op Op, opts ...tokenjtiOption) *TokenJTIMutation {
	m := &TokenJTIMutation{
		config:        c,
		op:            op,
		typ:           TypeTokenJTI,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTokenJTIID sets the ID field of the mutation.
func withTokenJTIID(id string) tokenjtiOption {
	return func(m *TokenJTIMutation) {
		var (
			err   error
			once  sync.Once
			value *TokenJTI
		)
		m.oldValue = func(ctx context.Context) (*TokenJTI, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TokenJTI.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTokenJTI sets the old TokenJTI of the mutation.
func withTokenJTI(node *TokenJTI) tokenjtiOption {
	return func(m *TokenJTIMutation) {
		m.oldValue = func(context.Context) (*TokenJTI, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TokenJTIMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TokenJTIMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TokenJTI entities.
func (m *TokenJTIMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TokenJTIMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TokenJTIMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TokenJTI.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGrantID sets the "grant_id" field.
func (m *TokenJTIMutation) SetGrantID(s string) {
	m.grant_id = &s
}

// GrantID returns the value of the "grant_id" field in the mutation.
func (m *TokenJTIMutation) GrantID() (r string, exists bool) {
	v := m.grant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGrantID returns the old "grant_id" field's value of the TokenJTI entity.
// If the TokenJTI object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenJTIMutation) OldGrantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrantID: %w", err)
	}
	return oldValue.GrantID, nil
}

// ResetGrantID resets all changes to the "grant_id" field.
func (m *TokenJTIMutation) ResetGrantID() {
	m.grant_id = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *TokenJTIMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *TokenJTIMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the TokenJTI entity.
// If the TokenJTI object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenJTIMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *TokenJTIMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetRevokedAt sets the "revoked_at" field.
func (m *TokenJTIMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *TokenJTIMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the TokenJTI entity.
// If the TokenJTI object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenJTIMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *TokenJTIMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[tokenjti.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *TokenJTIMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[tokenjti.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *TokenJTIMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, tokenjti.FieldRevokedAt)
}

// SetRevocationReason sets the "revocation_reason" field.
func (m *TokenJTIMutation) SetRevocationReason(s string) {
	m.revocation_reason = &s
}

// RevocationReason returns the value of the "revocation_reason" field in the mutation.
func (m *TokenJTIMutation) RevocationReason() (r string, exists bool) {
	v := m.revocation_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRevocationReason returns the old "revocation_reason" field's value of the TokenJTI entity.
// If the TokenJTI object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenJTIMutation) OldRevocationReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevocationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevocationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevocationReason: %w", err)
	}
	return oldValue.RevocationReason, nil
}

// ClearRevocationReason clears the value of the "revocation_reason" field.
func (m *TokenJTIMutation) ClearRevocationReason() {
	m.revocation_reason = nil
	m.clearedFields[tokenjti.FieldRevocationReason] = struct{}{}
}

// RevocationReasonCleared returns if the "revocation_reason" field was cleared in this mutation.
func (m *TokenJTIMutation) RevocationReasonCleared() bool {
	_, ok := m.clearedFields[tokenjti.FieldRevocationReason]
	return ok
}

// ResetRevocationReason resets all changes to the "revocation_reason" field.
func (m *TokenJTIMutation) ResetRevocationReason() {
	m.revocation_reason = nil
	delete(m.clearedFields, tokenjti.FieldRevocationReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *TokenJTIMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TokenJTIMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TokenJTI entity.
// If the TokenJTI object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenJTIMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TokenJTIMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TokenJTIMutation builder.
func (m *TokenJTIMutation) Where(ps ...predicate.TokenJTI) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TokenJTIMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TokenJTIMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TokenJTI, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TokenJTIMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TokenJTIMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TokenJTI).
func (m *TokenJTIMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TokenJTIMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.grant_id != nil {
		fields = append(fields, tokenjti.FieldGrantID)
	}
	if m.expires_at != nil {
		fields = append(fields, tokenjti.FieldExpiresAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, tokenjti.FieldRevokedAt)
	}
	if m.revocation_reason != nil {
		fields = append(fields, tokenjti.FieldRevocationReason)
	}
	if m.created_at != nil {
		fields = append(fields, tokenjti.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TokenJTIMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tokenjti.FieldGrantID:
		return m.GrantID()
	case tokenjti.FieldExpiresAt:
		return m.ExpiresAt()
	case tokenjti.FieldRevokedAt:
		return m.RevokedAt()
	case tokenjti.FieldRevocationReason:
		return m.RevocationReason()
	case tokenjti.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TokenJTIMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tokenjti.FieldGrantID:
		return m.OldGrantID(ctx)
	case tokenjti.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case tokenjti.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	case tokenjti.FieldRevocationReason:
		return m.OldRevocationReason(ctx)
	case tokenjti.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TokenJTI field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenJTIMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tokenjti.FieldGrantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrantID(v)
		return nil
	case tokenjti.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case tokenjti.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	case tokenjti.FieldRevocationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevocationReason(v)
		return nil
	case tokenjti.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TokenJTI field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TokenJTIMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TokenJTIMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenJTIMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TokenJTI numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TokenJTIMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tokenjti.FieldRevokedAt) {
		fields = append(fields, tokenjti.FieldRevokedAt)
	}
	if m.FieldCleared(tokenjti.FieldRevocationReason) {
		fields = append(fields, tokenjti.FieldRevocationReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TokenJTIMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TokenJTIMutation) ClearField(name string) error {
	switch name {
	case tokenjti.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	case tokenjti.FieldRevocationReason:
		m.ClearRevocationReason()
		return nil
	}
	return fmt.Errorf("unknown TokenJTI nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TokenJTIMutation) ResetField(name string) error {
	switch name {
	case tokenjti.FieldGrantID:
		m.ResetGrantID()
		return nil
	case tokenjti.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case tokenjti.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	case tokenjti.FieldRevocationReason:
		m.ResetRevocationReason()
		return nil
	case tokenjti.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TokenJTI field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TokenJTIMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TokenJTIMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TokenJTIMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TokenJTIMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TokenJTIMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TokenJTIMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TokenJTIMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TokenJTI unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TokenJTIMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TokenJTI edge %s", name)
}

// WorkloadPrincipalMutation represents an operation that mutates the WorkloadPrincipal nodes in the graph.
type WorkloadPrincipalMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	slug          *string
	_type         *workloadprincipal.Type
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*WorkloadPrincipal, error)
	predicates    []predicate.WorkloadPrincipal
}

var _ ent.Mutation = (*WorkloadPrincipalMutation)(nil)

// workloadprincipalOption allows management of the mutation configuration using functional options.
type workloadprincipalOption func(*WorkloadPrincipalMutation)

// newWorkloadPrincipalMutation creates new mutation for the WorkloadPrincipal entity.
func newWorkloadPrincipalMutation(c config, op Op, opts ...workloadprincipalOption) *WorkloadPrincipalMutation {
	m := &WorkloadPrincipalMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkloadPrincipal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkloadPrincipalID sets the ID field of the mutation.
func withWorkloadPrincipalID(id string) workloadprincipalOption {
	return func(m *WorkloadPrincipalMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkloadPrincipal
		)
		m.oldValue = func(ctx context.Context) (*WorkloadPrincipal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkloadPrincipal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkloadPrincipal sets the old WorkloadPrincipal of the mutation.
func withWorkloadPrincipal(node *WorkloadPrincipal) workloadprincipalOption {
	return func(m *WorkloadPrincipalMutation) {
		m.oldValue = func(context.Context) (*WorkloadPrincipal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkloadPrincipalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkloadPrincipalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkloadPrincipal entities.
func (m *WorkloadPrincipalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkloadPrincipalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkloadPrincipalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkloadPrincipal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *WorkloadPrincipalMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *WorkloadPrincipalMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the WorkloadPrincipal entity.
// If the WorkloadPrincipal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkloadPrincipalMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *WorkloadPrincipalMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetSlug sets the "slug" field.
func (m *WorkloadPrincipalMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *WorkloadPrincipalMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the WorkloadPrincipal entity.
// If the WorkloadPrincipal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkloadPrincipalMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *WorkloadPrincipalMutation) ResetSlug() {
	m.slug = nil
}

// SetType sets the "type" field.
func (m *WorkloadPrincipalMutation) SetType(w workloadprincipal.Type) {
	m._type = &w
}

// GetType returns the value of the "type" field in the mutation.
func (m *WorkloadPrincipalMutation) GetType() (r workloadprincipal.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the WorkloadPrincipal entity.
// If the WorkloadPrincipal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkloadPrincipalMutation) OldType(ctx context.Context) (v workloadprincipal.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *WorkloadPrincipalMutation) ResetType() {
	m._type = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkloadPrincipalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkloadPrincipalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkloadPrincipal entity.
// If the WorkloadPrincipal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkloadPrincipalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkloadPrincipalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the WorkloadPrincipalMutation builder.
func (m *WorkloadPrincipalMutation) Where(ps ...predicate.WorkloadPrincipal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkloadPrincipalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkloadPrincipalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkloadPrincipal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkloadPrincipalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkloadPrincipalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkloadPrincipal).
func (m *WorkloadPrincipalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkloadPrincipalMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.tenant_id != nil {
		fields = append(fields, workloadprincipal.FieldTenantID)
	}
	if m.slug != nil {
		fields = append(fields, workloadprincipal.FieldSlug)
	}
	if m._type != nil {
		fields = append(fields, workloadprincipal.FieldType)
	}
	if m.created_at != nil {
		fields = append(fields, workloadprincipal.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkloadPrincipalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workloadprincipal.FieldTenantID:
		return m.TenantID()
	case workloadprincipal.FieldSlug:
		return m.Slug()
	case workloadprincipal.FieldType:
		return m.GetType()
	case workloadprincipal.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkloadPrincipalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workloadprincipal.FieldTenantID:
		return m.OldTenantID(ctx)
	case workloadprincipal.FieldSlug:
		return m.OldSlug(ctx)
	case workloadprincipal.FieldType:
		return m.OldType(ctx)
	case workloadprincipal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkloadPrincipal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkloadPrincipalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workloadprincipal.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case workloadprincipal.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case workloadprincipal.FieldType:
		v, ok := value.(workloadprincipal.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case workloadprincipal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkloadPrincipal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkloadPrincipalMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkloadPrincipalMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkloadPrincipalMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkloadPrincipal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkloadPrincipalMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkloadPrincipalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkloadPrincipalMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WorkloadPrincipal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkloadPrincipalMutation) ResetField(name string) error {
	switch name {
	case workloadprincipal.FieldTenantID:
		m.ResetTenantID()
		return nil
	case workloadprincipal.FieldSlug:
		m.ResetSlug()
		return nil
	case workloadprincipal.FieldType:
		m.ResetType()
		return nil
	case workloadprincipal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkloadPrincipal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkloadPrincipalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkloadPrincipalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkloadPrincipalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkloadPrincipalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkloadPrincipalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkloadPrincipalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkloadPrincipalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WorkloadPrincipal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkloadPrincipalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WorkloadPrincipal edge %s", name)
}

// WorkloadScopePolicyMutation represents an operation that mutates the WorkloadScopePolicy nodes in the graph.
type WorkloadScopePolicyMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	principal_id           *string
	requested_scopes       *[]string
	appendrequested_scopes []string
	approved_scopes        *[]string
	appendapproved_scopes  []string
	status                 *workloadscopepolicy.Status
	version                *int
	addversion             *int
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*WorkloadScopePolicy, error)
	predicates             []predicate.WorkloadScopePolicy
}

var _ ent.Mutation = (*WorkloadScopePolicyMutation)(nil)

// workloadscopepolicyOption allows management of the mutation configuration using functional options.
type workloadscopepolicyOption func(*WorkloadScopePolicyMutation)

// newWorkloadScopePolicyMutation creates new mutation for the WorkloadScopePolicy entity.
func newWorkloadScopePolicyMutation(c config, op Op, opts ...workloadscopepolicyOption) *WorkloadScopePolicyMutation {
	m := &WorkloadScopePolicyMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkloadScopePolicy,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkloadScopePolicyID sets the ID field of the mutation.
func withWorkloadScopePolicyID(id string) workloadscopepolicyOption {
	return func(m *WorkloadScopePolicyMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkloadScopePolicy
		)
		m.oldValue = func(ctx context.Context) (*WorkloadScopePolicy, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkloadScopePolicy.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkloadScopePolicy sets the old WorkloadScopePolicy of the mutation.
func withWorkloadScopePolicy(node *WorkloadScopePolicy) workloadscopepolicyOption {
	return func(m *WorkloadScopePolicyMutation) {
		m.oldValue = func(context.Context) (*WorkloadScopePolicy, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkloadScopePolicyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkloadScopePolicyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkloadScopePolicy entities.
func (m *WorkloadScopePolicyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkloadScopePolicyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkloadScopePolicyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkloadScopePolicy.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPrincipalID sets the "principal_id" field.
func (m *WorkloadScopePolicyMutation) SetPrincipalID(s string) {
	m.principal_id = &s
}

// PrincipalID returns the value of the "principal_id" field in the mutation.
func (m *WorkloadScopePolicyMutation) PrincipalID() (r string, exists bool) {
	v := m.principal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPrincipalID returns the old "principal_id" field's value of the WorkloadScopePolicy entity.
// If the WorkloadScopePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkloadScopePolicyMutation) OldPrincipalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrincipalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrincipalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrincipalID: %w", err)
	}
	return oldValue.PrincipalID, nil
}

// ResetPrincipalID resets all changes to the "principal_id" field.
func (m *WorkloadScopePolicyMutation) ResetPrincipalID() {
	m.principal_id = nil
}

// SetRequestedScopes sets the "requested_scopes" field.
func (m *WorkloadScopePolicyMutation) SetRequestedScopes(s []string) {
	m.requested_scopes = &s
	m.appendrequested_scopes = nil
}

// RequestedScopes returns the value of the "requested_scopes" field in the mutation.
func (m *WorkloadScopePolicyMutation) RequestedScopes() (r []string, exists bool) {
	v := m.requested_scopes
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedScopes returns the old "requested_scopes" field's value of the WorkloadScopePolicy entity.
// If the WorkloadScopePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkloadScopePolicyMutation) OldRequestedScopes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedScopes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedScopes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedScopes: %w", err)
	}
	return oldValue.RequestedScopes, nil
}

// AppendRequestedScopes adds s to the "requested_scopes" field.
func (m *WorkloadScopePolicyMutation) AppendRequestedScopes(s []string) {
	m.appendrequested_scopes = append(m.appendrequested_scopes, s...)
}

// AppendedRequestedScopes returns the list of values that were appended to the "requested_scopes" field in this mutation.
func (m *WorkloadScopePolicyMutation) AppendedRequestedScopes() ([]string, bool) {
	if len(m.appendrequested_scopes) == 0 {
		return nil, false
	}
	return m.appendrequested_scopes, true
}

// ResetRequestedScopes resets all changes to the "requested_scopes" field.
func (m *WorkloadScopePolicyMutation) ResetRequestedScopes() {
	m.requested_scopes = nil
	m.appendrequested_scopes = nil
}

// SetApprovedScopes sets the "approved_scopes" field.
func (m *WorkloadScopePolicyMutation) SetApprovedScopes(s []string) {
	m.approved_scopes = &s
	m.appendapproved_scopes = nil
}

// ApprovedScopes returns the value of the "approved_scopes" field in the mutation.
func (m *WorkloadScopePolicyMutation) ApprovedScopes() (r []string, exists bool) {
	v := m.approved_scopes
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedScopes returns the old "approved_scopes" field's value of the WorkloadScopePolicy entity.
// If the WorkloadScopePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkloadScopePolicyMutation) OldApprovedScopes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedScopes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedScopes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedScopes: %w", err)
	}
	return oldValue.ApprovedScopes, nil
}

// AppendApprovedScopes adds s to the "approved_scopes" field.
func (m *WorkloadScopePolicyMutation) AppendApprovedScopes(s []string) {
	m.appendapproved_scopes = append(m.appendapproved_scopes, s...)
}

// AppendedApprovedScopes returns the list of values that were appended to the "approved_scopes" field in this mutation.
func (m *WorkloadScopePolicyMutation) AppendedApprovedScopes() ([]string, bool) {
	if len(m.appendapproved_scopes) == 0 {
		return nil, false
	}
	return m.appendapproved_scopes, true
}

// ClearApprovedScopes clears the value of the "approved_scopes" field.
func (m *WorkloadScopePolicyMutation) ClearApprovedScopes() {
	m.approved_scopes = nil
	m.appendapproved_scopes = nil
	m.clearedFields[workloadscopepolicy.FieldApprovedScopes] = struct{}{}
}

// ApprovedScopesCleared returns if the "approved_scopes" field was cleared in this mutation.
func (m *WorkloadScopePolicyMutation) ApprovedScopesCleared() bool {
	_, ok := m.clearedFields[workloadscopepolicy.FieldApprovedScopes]
	return ok
}

// ResetApprovedScopes resets all changes to the "approved_scopes" field.
func (m *WorkloadScopePolicyMutation) ResetApprovedScopes() {
	m.approved_scopes = nil
	m.appendapproved_scopes = nil
	delete(m.clearedFields, workloadscopepolicy.FieldApprovedScopes)
}

// SetStatus sets the "status" field.
func (m *WorkloadScopePolicyMutation) SetStatus(w workloadscopepolicy.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkloadScopePolicyMutation) Status() (r workloadscopepolicy.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkloadScopePolicy entity.
// If the WorkloadScopePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkloadScopePolicyMutation) OldStatus(ctx context.Context) (v workloadscopepolicy.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkloadScopePolicyMutation) ResetStatus() {
	m.status = nil
}

// SetVersion sets the "version" field.
func (m *WorkloadScopePolicyMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *WorkloadScopePolicyMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the WorkloadScopePolicy entity.
// If the WorkloadScopePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkloadScopePolicyMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *WorkloadScopePolicyMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *WorkloadScopePolicyMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *WorkloadScopePolicyMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkloadScopePolicyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkloadScopePolicyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkloadScopePolicy entity.
// If the WorkloadScopePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkloadScopePolicyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkloadScopePolicyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the WorkloadScopePolicyMutation builder.
func (m *WorkloadScopePolicyMutation) Where(ps ...predicate.WorkloadScopePolicy) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkloadScopePolicyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkloadScopePolicyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkloadScopePolicy, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkloadScopePolicyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkloadScopePolicyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkloadScopePolicy).
func (m *WorkloadScopePolicyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkloadScopePolicyMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.principal_id != nil {
		fields = append(fields, workloadscopepolicy.FieldPrincipalID)
	}
	if m.requested_scopes != nil {
		fields = append(fields, workloadscopepolicy.FieldRequestedScopes)
	}
	if m.approved_scopes != nil {
		fields = append(fields, workloadscopepolicy.FieldApprovedScopes)
	}
	if m.status != nil {
		fields = append(fields, workloadscopepolicy.FieldStatus)
	}
	if m.version != nil {
		fields = append(fields, workloadscopepolicy.FieldVersion)
	}
	if m.updated_at != nil {
		fields = append(fields, workloadscopepolicy.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkloadScopePolicyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workloadscopepolicy.FieldPrincipalID:
		return m.PrincipalID()
	case workloadscopepolicy.FieldRequestedScopes:
		return m.RequestedScopes()
	case workloadscopepolicy.FieldApprovedScopes:
		return m.ApprovedScopes()
	case workloadscopepolicy.FieldStatus:
		return m.Status()
	case workloadscopepolicy.FieldVersion:
		return m.Version()
	case workloadscopepolicy.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkloadScopePolicyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workloadscopepolicy.FieldPrincipalID:
		return m.OldPrincipalID(ctx)
	case workloadscopepolicy.FieldRequestedScopes:
		return m.OldRequestedScopes(ctx)
	case workloadscopepolicy.FieldApprovedScopes:
		return m.OldApprovedScopes(ctx)
	case workloadscopepolicy.FieldStatus:
		return m.OldStatus(ctx)
	case workloadscopepolicy.FieldVersion:
		return m.OldVersion(ctx)
	case workloadscopepolicy.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkloadScopePolicy field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkloadScopePolicyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workloadscopepolicy.FieldPrincipalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrincipalID(v)
		return nil
	case workloadscopepolicy.FieldRequestedScopes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedScopes(v)
		return nil
	case workloadscopepolicy.FieldApprovedScopes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedScopes(v)
		return nil
	case workloadscopepolicy.FieldStatus:
		v, ok := value.(workloadscopepolicy.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workloadscopepolicy.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case workloadscopepolicy.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkloadScopePolicy field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkloadScopePolicyMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, workloadscopepolicy.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkloadScopePolicyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workloadscopepolicy.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkloadScopePolicyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workloadscopepolicy.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown WorkloadScopePolicy numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkloadScopePolicyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workloadscopepolicy.FieldApprovedScopes) {
		fields = append(fields, workloadscopepolicy.FieldApprovedScopes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkloadScopePolicyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkloadScopePolicyMutation) ClearField(name string) error {
	switch name {
	case workloadscopepolicy.FieldApprovedScopes:
		m.ClearApprovedScopes()
		return nil
	}
	return fmt.Errorf("unknown WorkloadScopePolicy nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkloadScopePolicyMutation) ResetField(name string) error {
	switch name {
	case workloadscopepolicy.FieldPrincipalID:
		m.ResetPrincipalID()
		return nil
	case workloadscopepolicy.FieldRequestedScopes:
		m.ResetRequestedScopes()
		return nil
	case workloadscopepolicy.FieldApprovedScopes:
		m.ResetApprovedScopes()
		return nil
	case workloadscopepolicy.FieldStatus:
		m.ResetStatus()
		return nil
	case workloadscopepolicy.FieldVersion:
		m.ResetVersion()
		return nil
	case workloadscopepolicy.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkloadScopePolicy field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkloadScopePolicyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkloadScopePolicyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkloadScopePolicyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkloadScopePolicyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkloadScopePolicyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkloadScopePolicyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkloadScopePolicyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WorkloadScopePolicy unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkloadScopePolicyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WorkloadScopePolicy edge %s", name)
}
