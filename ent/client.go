// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/agentforge/arc/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/agentforge/arc/ent/agent"
	"github.com/agentforge/arc/ent/delegationgrant"
	"github.com/agentforge/arc/ent/groupmember"
	"github.com/agentforge/arc/ent/orchestrationgroup"
	"github.com/agentforge/arc/ent/orchestratorpolicy"
	"github.com/agentforge/arc/ent/orchestratortarget"
	"github.com/agentforge/arc/ent/run"
	"github.com/agentforge/arc/ent/tokenjti"
	"github.com/agentforge/arc/ent/workloadprincipal"
	"github.com/agentforge/arc/ent/workloadscopepolicy"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// DelegationGrant is the client for interacting with the DelegationGrant builders.
	DelegationGrant *DelegationGrantClient
	// GroupMember is the client for interacting with the GroupMember builders.
	GroupMember *GroupMemberClient
	// OrchestrationGroup is the client for interacting with the OrchestrationGroup builders.
	OrchestrationGroup *OrchestrationGroupClient
	// OrchestratorPolicy is the client for interacting with the OrchestratorPolicy builders.
	OrchestratorPolicy *OrchestratorPolicyClient
	// OrchestratorTarget is the client for interacting with the OrchestratorTarget builders.
	OrchestratorTarget *OrchestratorTargetClient
	// Run is the client for interacting with the Run builders.
	Run *RunClient
	// TokenJTI is the client for interacting with the TokenJTI builders.
	TokenJTI *TokenJTIClient
	// WorkloadPrincipal is the client for interacting with the WorkloadPrincipal builders.
	WorkloadPrincipal *WorkloadPrincipalClient
	// WorkloadScopePolicy is the client for interacting with the WorkloadScopePolicy builders.
	WorkloadScopePolicy *WorkloadScopePolicyClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.DelegationGrant = NewDelegationGrantClient(c.config)
	c.GroupMember = NewGroupMemberClient(c.config)
	c.OrchestrationGroup = NewOrchestrationGroupClient(c.config)
	c.OrchestratorPolicy = NewOrchestratorPolicyClient(c.config)
	c.OrchestratorTarget = NewOrchestratorTargetClient(c.config)
	c.Run = NewRunClient(c.config)
	c.TokenJTI = NewTokenJTIClient(c.config)
	c.WorkloadPrincipal = NewWorkloadPrincipalClient(c.config)
	c.WorkloadScopePolicy = NewWorkloadScopePolicyClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		Agent:               NewAgentClient(cfg),
		DelegationGrant:     NewDelegationGrantClient(cfg),
		GroupMember:         NewGroupMemberClient(cfg),
		OrchestrationGroup:  NewOrchestrationGroupClient(cfg),
		OrchestratorPolicy:  NewOrchestratorPolicyClient(cfg),
		OrchestratorTarget:  NewOrchestratorTargetClient(cfg),
		Run:                 NewRunClient(cfg),
		TokenJTI:            NewTokenJTIClient(cfg),
		WorkloadPrincipal:   NewWorkloadPrincipalClient(cfg),
		WorkloadScopePolicy: NewWorkloadScopePolicyClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		Agent:               NewAgentClient(cfg),
		DelegationGrant:     NewDelegationGrantClient(cfg),
		GroupMember:         NewGroupMemberClient(cfg),
		OrchestrationGroup:  NewOrchestrationGroupClient(cfg),
		OrchestratorPolicy:  NewOrchestratorPolicyClient(cfg),
		OrchestratorTarget:  NewOrchestratorTargetClient(cfg),
		Run:                 NewRunClient(cfg),
		TokenJTI:            NewTokenJTIClient(cfg),
		WorkloadPrincipal:   NewWorkloadPrincipalClient(cfg),
		WorkloadScopePolicy: NewWorkloadScopePolicyClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Agent, c.DelegationGrant, c.GroupMember, c.OrchestrationGroup,
		c.OrchestratorPolicy, c.OrchestratorTarget, c.Run, c.TokenJTI,
		c.WorkloadPrincipal, c.WorkloadScopePolicy,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Agent, c.DelegationGrant, c.GroupMember, c.OrchestrationGroup,
		c.OrchestratorPolicy, c.OrchestratorTarget, c.Run, c.TokenJTI,
		c.WorkloadPrincipal, c.WorkloadScopePolicy,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *DelegationGrantMutation:
		return c.DelegationGrant.mutate(ctx, m)
	case *GroupMemberMutation:
		return c.GroupMember.mutate(ctx, m)
	case *OrchestrationGroupMutation:
		return c.OrchestrationGroup.mutate(ctx, m)
	case *OrchestratorPolicyMutation:
		return c.OrchestratorPolicy.mutate(ctx, m)
	case *OrchestratorTargetMutation:
		return c.OrchestratorTarget.mutate(ctx, m)
	case *RunMutation:
		return c.Run.mutate(ctx, m)
	case *TokenJTIMutation:
		return c.TokenJTI.mutate(ctx, m)
	case *WorkloadPrincipalMutation:
		return c.WorkloadPrincipal.mutate(ctx, m)
	case *WorkloadScopePolicyMutation:
		return c.WorkloadScopePolicy.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id string) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id string) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id string) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id string) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// DelegationGrantClient is a client for the DelegationGrant schema.
type DelegationGrantClient struct {
	config
}

// NewDelegationGrantClient returns a client for the DelegationGrant from the given config.
func NewDelegationGrantClient(c config) *DelegationGrantClient {
	return &DelegationGrantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `delegationgrant.Hooks(f(g(h())))`.
func (c *DelegationGrantClient) Use(hooks ...Hook) {
	c.hooks.DelegationGrant = append(c.hooks.DelegationGrant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `delegationgrant.Intercept(f(g(h())))`.
func (c *DelegationGrantClient) Intercept(interceptors ...Interceptor) {
	c.inters.DelegationGrant = append(c.inters.DelegationGrant, interceptors...)
}

// Create returns a builder for creating a DelegationGrant entity.
func (c *DelegationGrantClient) Create() *DelegationGrantCreate {
	mutation := newDelegationGrantMutation(c.config, OpCreate)
	return &DelegationGrantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DelegationGrant entities.
func (c *DelegationGrantClient) CreateBulk(builders ...*DelegationGrantCreate) *DelegationGrantCreateBulk {
	return &DelegationGrantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DelegationGrantClient) MapCreateBulk(slice any, setFunc func(*DelegationGrantCreate, int)) *DelegationGrantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DelegationGrantCreateBulk{err: fmt.Errorf("calling to DelegationGrantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DelegationGrantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DelegationGrantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DelegationGrant.
func (c *DelegationGrantClient) Update() *DelegationGrantUpdate {
	mutation := newDelegationGrantMutation(c.config, OpUpdate)
	return &DelegationGrantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DelegationGrantClient) UpdateOne(_m *DelegationGrant) *DelegationGrantUpdateOne {
	mutation := newDelegationGrantMutation(c.config, OpUpdateOne, withDelegationGrant(_m))
	return &DelegationGrantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DelegationGrantClient) UpdateOneID(id string) *DelegationGrantUpdateOne {
	mutation := newDelegationGrantMutation(c.config, OpUpdateOne, withDelegationGrantID(id))
	return &DelegationGrantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DelegationGrant.
func (c *DelegationGrantClient) Delete() *DelegationGrantDelete {
	mutation := newDelegationGrantMutation(c.config, OpDelete)
	return &DelegationGrantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DelegationGrantClient) DeleteOne(_m *DelegationGrant) *DelegationGrantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DelegationGrantClient) DeleteOneID(id string) *DelegationGrantDeleteOne {
	builder := c.Delete().Where(delegationgrant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DelegationGrantDeleteOne{builder}
}

// Query returns a query builder for DelegationGrant.
func (c *DelegationGrantClient) Query() *DelegationGrantQuery {
	return &DelegationGrantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDelegationGrant},
		inters: c.Interceptors(),
	}
}

// Get returns a DelegationGrant entity by its id.
func (c *DelegationGrantClient) Get(ctx context.Context, id string) (*DelegationGrant, error) {
	return c.Query().Where(delegationgrant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DelegationGrantClient) GetX(ctx context.Context, id string) *DelegationGrant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DelegationGrantClient) Hooks() []Hook {
	return c.hooks.DelegationGrant
}

// Interceptors returns the client interceptors.
func (c *DelegationGrantClient) Interceptors() []Interceptor {
	return c.inters.DelegationGrant
}

func (c *DelegationGrantClient) mutate(ctx context.Context, m *DelegationGrantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DelegationGrantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DelegationGrantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DelegationGrantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DelegationGrantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DelegationGrant mutation op: %q", m.Op())
	}
}

// GroupMemberClient is a client for the GroupMember schema.
type GroupMemberClient struct {
	config
}

// NewGroupMemberClient returns a client for the GroupMember from the given config.
func NewGroupMemberClient(c config) *GroupMemberClient {
	return &GroupMemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `groupmember.Hooks(f(g(h())))`.
func (c *GroupMemberClient) Use(hooks ...Hook) {
	c.hooks.GroupMember = append(c.hooks.GroupMember, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `groupmember.Intercept(f(g(h())))`.
func (c *GroupMemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.GroupMember = append(c.inters.GroupMember, interceptors...)
}

// Create returns a builder for creating a GroupMember entity.
func (c *GroupMemberClient) Create() *GroupMemberCreate {
	mutation := newGroupMemberMutation(c.config, OpCreate)
	return &GroupMemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GroupMember entities.
func (c *GroupMemberClient) CreateBulk(builders ...*GroupMemberCreate) *GroupMemberCreateBulk {
	return &GroupMemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GroupMemberClient) MapCreateBulk(slice any, setFunc func(*GroupMemberCreate, int)) *GroupMemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GroupMemberCreateBulk{err: fmt.Errorf("calling to GroupMemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GroupMemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GroupMemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GroupMember.
func (c *GroupMemberClient) Update() *GroupMemberUpdate {
	mutation := newGroupMemberMutation(c.config, OpUpdate)
	return &GroupMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GroupMemberClient) UpdateOne(_m *GroupMember) *GroupMemberUpdateOne {
	mutation := newGroupMemberMutation(c.config, OpUpdateOne, withGroupMember(_m))
	return &GroupMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GroupMemberClient) UpdateOneID(id string) *GroupMemberUpdateOne {
	mutation := newGroupMemberMutation(c.config, OpUpdateOne, withGroupMemberID(id))
	return &GroupMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GroupMember.
func (c *GroupMemberClient) Delete() *GroupMemberDelete {
	mutation := newGroupMemberMutation(c.config, OpDelete)
	return &GroupMemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GroupMemberClient) DeleteOne(_m *GroupMember) *GroupMemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GroupMemberClient) DeleteOneID(id string) *GroupMemberDeleteOne {
	builder := c.Delete().Where(groupmember.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GroupMemberDeleteOne{builder}
}

// Query returns a query builder for GroupMember.
func (c *GroupMemberClient) Query() *GroupMemberQuery {
	return &GroupMemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGroupMember},
		inters: c.Interceptors(),
	}
}

// Get returns a GroupMember entity by its id.
func (c *GroupMemberClient) Get(ctx context.Context, id string) (*GroupMember, error) {
	return c.Query().Where(groupmember.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GroupMemberClient) GetX(ctx context.Context, id string) *GroupMember {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GroupMemberClient) Hooks() []Hook {
	return c.hooks.GroupMember
}

// Interceptors returns the client interceptors.
func (c *GroupMemberClient) Interceptors() []Interceptor {
	return c.inters.GroupMember
}

func (c *GroupMemberClient) mutate(ctx context.Context, m *GroupMemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GroupMemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GroupMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GroupMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GroupMemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GroupMember mutation op: %q", m.Op())
	}
}

// OrchestrationGroupClient is a client for the OrchestrationGroup schema.
type OrchestrationGroupClient struct {
	config
}

// NewOrchestrationGroupClient returns a client for the OrchestrationGroup from the given config.
func NewOrchestrationGroupClient(c config) *OrchestrationGroupClient {
	return &OrchestrationGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orchestrationgroup.Hooks(f(g(h())))`.
func (c *OrchestrationGroupClient) Use(hooks ...Hook) {
	c.hooks.OrchestrationGroup = append(c.hooks.OrchestrationGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orchestrationgroup.Intercept(f(g(h())))`.
func (c *OrchestrationGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrchestrationGroup = append(c.inters.OrchestrationGroup, interceptors...)
}

// Create returns a builder for creating a OrchestrationGroup entity.
func (c *OrchestrationGroupClient) Create() *OrchestrationGroupCreate {
	mutation := newOrchestrationGroupMutation(c.config, OpCreate)
	return &OrchestrationGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrchestrationGroup entities.
func (c *OrchestrationGroupClient) CreateBulk(builders ...*OrchestrationGroupCreate) *OrchestrationGroupCreateBulk {
	return &OrchestrationGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrchestrationGroupClient) MapCreateBulk(slice any, setFunc func(*OrchestrationGroupCreate, int)) *OrchestrationGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrchestrationGroupCreateBulk{err: fmt.Errorf("calling to OrchestrationGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrchestrationGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrchestrationGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrchestrationGroup.
func (c *OrchestrationGroupClient) Update() *OrchestrationGroupUpdate {
	mutation := newOrchestrationGroupMutation(c.config, OpUpdate)
	return &OrchestrationGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrchestrationGroupClient) UpdateOne(_m *OrchestrationGroup) *OrchestrationGroupUpdateOne {
	mutation := newOrchestrationGroupMutation(c.config, OpUpdateOne, withOrchestrationGroup(_m))
	return &OrchestrationGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrchestrationGroupClient) UpdateOneID(id string) *OrchestrationGroupUpdateOne {
	mutation := newOrchestrationGroupMutation(c.config, OpUpdateOne, withOrchestrationGroupID(id))
	return &OrchestrationGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrchestrationGroup.
func (c *OrchestrationGroupClient) Delete() *OrchestrationGroupDelete {
	mutation := newOrchestrationGroupMutation(c.config, OpDelete)
	return &OrchestrationGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrchestrationGroupClient) DeleteOne(_m *OrchestrationGroup) *OrchestrationGroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrchestrationGroupClient) DeleteOneID(id string) *OrchestrationGroupDeleteOne {
	builder := c.Delete().Where(orchestrationgroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrchestrationGroupDeleteOne{builder}
}

// Query returns a query builder for OrchestrationGroup.
func (c *OrchestrationGroupClient) Query() *OrchestrationGroupQuery {
	return &OrchestrationGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrchestrationGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a OrchestrationGroup entity by its id.
func (c *OrchestrationGroupClient) Get(ctx context.Context, id string) (*OrchestrationGroup, error) {
	return c.Query().Where(orchestrationgroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrchestrationGroupClient) GetX(ctx context.Context, id string) *OrchestrationGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OrchestrationGroupClient) Hooks() []Hook {
	return c.hooks.OrchestrationGroup
}

// Interceptors returns the client interceptors.
func (c *OrchestrationGroupClient) Interceptors() []Interceptor {
	return c.inters.OrchestrationGroup
}

func (c *OrchestrationGroupClient) mutate(ctx context.Context, m *OrchestrationGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrchestrationGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrchestrationGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrchestrationGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrchestrationGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrchestrationGroup mutation op: %q", m.Op())
	}
}

// OrchestratorPolicyClient is a client for the OrchestratorPolicy schema.
type OrchestratorPolicyClient struct {
	config
}

// NewOrchestratorPolicyClient returns a client for the OrchestratorPolicy from the given config.
func NewOrchestratorPolicyClient(c config) *OrchestratorPolicyClient {
	return &OrchestratorPolicyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orchestratorpolicy.Hooks(f(g(h())))`.
func (c *OrchestratorPolicyClient) Use(hooks ...Hook) {
	c.hooks.OrchestratorPolicy = append(c.hooks.OrchestratorPolicy, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orchestratorpolicy.Intercept(f(g(h())))`.
func (c *OrchestratorPolicyClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrchestratorPolicy = append(c.inters.OrchestratorPolicy, interceptors...)
}

// Create returns a builder for creating a OrchestratorPolicy entity.
func (c *OrchestratorPolicyClient) Create() *OrchestratorPolicyCreate {
	mutation := newOrchestratorPolicyMutation(c.config, OpCreate)
	return &OrchestratorPolicyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrchestratorPolicy entities.
func (c *OrchestratorPolicyClient) CreateBulk(builders ...*OrchestratorPolicyCreate) *OrchestratorPolicyCreateBulk {
	return &OrchestratorPolicyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrchestratorPolicyClient) MapCreateBulk(slice any, setFunc func(*OrchestratorPolicyCreate, int)) *OrchestratorPolicyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrchestratorPolicyCreateBulk{err: fmt.Errorf("calling to OrchestratorPolicyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrchestratorPolicyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrchestratorPolicyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrchestratorPolicy.
func (c *OrchestratorPolicyClient) Update() *OrchestratorPolicyUpdate {
	mutation := newOrchestratorPolicyMutation(c.config, OpUpdate)
	return &OrchestratorPolicyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrchestratorPolicyClient) UpdateOne(_m *OrchestratorPolicy) *OrchestratorPolicyUpdateOne {
	mutation := newOrchestratorPolicyMutation(c.config, OpUpdateOne, withOrchestratorPolicy(_m))
	return &OrchestratorPolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrchestratorPolicyClient) UpdateOneID(id string) *OrchestratorPolicyUpdateOne {
	mutation := newOrchestratorPolicyMutation(c.config, OpUpdateOne, withOrchestratorPolicyID(id))
	return &OrchestratorPolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrchestratorPolicy.
func (c *OrchestratorPolicyClient) Delete() *OrchestratorPolicyDelete {
	mutation := newOrchestratorPolicyMutation(c.config, OpDelete)
	return &OrchestratorPolicyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrchestratorPolicyClient) DeleteOne(_m *OrchestratorPolicy) *OrchestratorPolicyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrchestratorPolicyClient) DeleteOneID(id string) *OrchestratorPolicyDeleteOne {
	builder := c.Delete().Where(orchestratorpolicy.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrchestratorPolicyDeleteOne{builder}
}

// Query returns a query builder for OrchestratorPolicy.
func (c *OrchestratorPolicyClient) Query() *OrchestratorPolicyQuery {
	return &OrchestratorPolicyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrchestratorPolicy},
		inters: c.Interceptors(),
	}
}

// Get returns a OrchestratorPolicy entity by its id.
func (c *OrchestratorPolicyClient) Get(ctx context.Context, id string) (*OrchestratorPolicy, error) {
	return c.Query().Where(orchestratorpolicy.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrchestratorPolicyClient) GetX(ctx context.Context, id string) *OrchestratorPolicy {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OrchestratorPolicyClient) Hooks() []Hook {
	return c.hooks.OrchestratorPolicy
}

// Interceptors returns the client interceptors.
func (c *OrchestratorPolicyClient) Interceptors() []Interceptor {
	return c.inters.OrchestratorPolicy
}

func (c *OrchestratorPolicyClient) mutate(ctx context.Context, m *OrchestratorPolicyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrchestratorPolicyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrchestratorPolicyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrchestratorPolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrchestratorPolicyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrchestratorPolicy mutation op: %q", m.Op())
	}
}

// OrchestratorTargetClient is a client for the OrchestratorTarget schema.
type OrchestratorTargetClient struct {
	config
}

// NewOrchestratorTargetClient returns a client for the OrchestratorTarget from the given config.
func NewOrchestratorTargetClient(c config) *OrchestratorTargetClient {
	return &OrchestratorTargetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orchestratortarget.Hooks(f(g(h())))`.
func (c *OrchestratorTargetClient) Use(hooks ...Hook) {
	c.hooks.OrchestratorTarget = append(c.hooks.OrchestratorTarget, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orchestratortarget.Intercept(f(g(h())))`.
func (c *OrchestratorTargetClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrchestratorTarget = append(c.inters.OrchestratorTarget, interceptors...)
}

// Create returns a builder for creating a OrchestratorTarget entity.
func (c *OrchestratorTargetClient) Create() *OrchestratorTargetCreate {
	mutation := newOrchestratorTargetMutation(c.config, OpCreate)
	return &OrchestratorTargetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrchestratorTarget entities.
func (c *OrchestratorTargetClient) CreateBulk(builders ...*OrchestratorTargetCreate) *OrchestratorTargetCreateBulk {
	return &OrchestratorTargetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrchestratorTargetClient) MapCreateBulk(slice any, setFunc func(*OrchestratorTargetCreate, int)) *OrchestratorTargetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrchestratorTargetCreateBulk{err: fmt.Errorf("calling to OrchestratorTargetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrchestratorTargetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrchestratorTargetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrchestratorTarget.
func (c *OrchestratorTargetClient) Update() *OrchestratorTargetUpdate {
	mutation := newOrchestratorTargetMutation(c.config, OpUpdate)
	return &OrchestratorTargetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrchestratorTargetClient) UpdateOne(_m *OrchestratorTarget) *OrchestratorTargetUpdateOne {
	mutation := newOrchestratorTargetMutation(c.config, OpUpdateOne, withOrchestratorTarget(_m))
	return &OrchestratorTargetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrchestratorTargetClient) UpdateOneID(id string) *OrchestratorTargetUpdateOne {
	mutation := newOrchestratorTargetMutation(c.config, OpUpdateOne, withOrchestratorTargetID(id))
	return &OrchestratorTargetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrchestratorTarget.
func (c *OrchestratorTargetClient) Delete() *OrchestratorTargetDelete {
	mutation := newOrchestratorTargetMutation(c.config, OpDelete)
	return &OrchestratorTargetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrchestratorTargetClient) DeleteOne(_m *OrchestratorTarget) *OrchestratorTargetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrchestratorTargetClient) DeleteOneID(id string) *OrchestratorTargetDeleteOne {
	builder := c.Delete().Where(orchestratortarget.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrchestratorTargetDeleteOne{builder}
}

// Query returns a query builder for OrchestratorTarget.
func (c *OrchestratorTargetClient) Query() *OrchestratorTargetQuery {
	return &OrchestratorTargetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrchestratorTarget},
		inters: c.Interceptors(),
	}
}

// Get returns a OrchestratorTarget entity by its id.
func (c *OrchestratorTargetClient) Get(ctx context.Context, id string) (*OrchestratorTarget, error) {
	return c.Query().Where(orchestratortarget.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrchestratorTargetClient) GetX(ctx context.Context, id string) *OrchestratorTarget {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OrchestratorTargetClient) Hooks() []Hook {
	return c.hooks.OrchestratorTarget
}

// Interceptors returns the client interceptors.
func (c *OrchestratorTargetClient) Interceptors() []Interceptor {
	return c.inters.OrchestratorTarget
}

func (c *OrchestratorTargetClient) mutate(ctx context.Context, m *OrchestratorTargetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrchestratorTargetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrchestratorTargetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrchestratorTargetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrchestratorTargetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrchestratorTarget mutation op: %q", m.Op())
	}
}

// RunClient is a client for the Run schema.
type RunClient struct {
	config
}

// NewRunClient returns a client for the Run from the given config.
func NewRunClient(c config) *RunClient {
	return &RunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `run.Hooks(f(g(h())))`.
func (c *RunClient) Use(hooks ...Hook) {
	c.hooks.Run = append(c.hooks.Run, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `run.Intercept(f(g(h())))`.
func (c *RunClient) Intercept(interceptors ...Interceptor) {
	c.inters.Run = append(c.inters.Run, interceptors...)
}

// Create returns a builder for creating a Run entity.
func (c *RunClient) Create() *RunCreate {
	mutation := newRunMutation(c.config, OpCreate)
	return &RunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Run entities.
func (c *RunClient) CreateBulk(builders ...*RunCreate) *RunCreateBulk {
	return &RunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunClient) MapCreateBulk(slice any, setFunc func(*RunCreate, int)) *RunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunCreateBulk{err: fmt.Errorf("calling to RunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Run.
func (c *RunClient) Update() *RunUpdate {
	mutation := newRunMutation(c.config, OpUpdate)
	return &RunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunClient) UpdateOne(_m *Run) *RunUpdateOne {
	mutation := newRunMutation(c.config, OpUpdateOne, withRun(_m))
	return &RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunClient) UpdateOneID(id string) *RunUpdateOne {
	mutation := newRunMutation(c.config, OpUpdateOne, withRunID(id))
	return &RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Run.
func (c *RunClient) Delete() *RunDelete {
	mutation := newRunMutation(c.config, OpDelete)
	return &RunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunClient) DeleteOne(_m *Run) *RunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunClient) DeleteOneID(id string) *RunDeleteOne {
	builder := c.Delete().Where(run.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunDeleteOne{builder}
}

// Query returns a query builder for Run.
func (c *RunClient) Query() *RunQuery {
	return &RunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRun},
		inters: c.Interceptors(),
	}
}

// Get returns a Run entity by its id.
func (c *RunClient) Get(ctx context.Context, id string) (*Run, error) {
	return c.Query().Where(run.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunClient) GetX(ctx context.Context, id string) *Run {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RunClient) Hooks() []Hook {
	return c.hooks.Run
}

// Interceptors returns the client interceptors.
func (c *RunClient) Interceptors() []Interceptor {
	return c.inters.Run
}

func (c *RunClient) mutate(ctx context.Context, m *RunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Run mutation op: %q", m.Op())
	}
}

// TokenJTIClient is a client for the TokenJTI schema.
type TokenJTIClient struct {
	config
}

// NewTokenJTIClient returns a client for the TokenJTI from the given config.
func NewTokenJTIClient(c config) *TokenJTIClient {
	return &TokenJTIClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tokenjti.Hooks(f(g(h())))`.
func (c *TokenJTIClient) Use(hooks ...Hook) {
	c.hooks.TokenJTI = append(c.hooks.TokenJTI, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tokenjti.Intercept(f(g(h())))`.
func (c *TokenJTIClient) Intercept(interceptors ...Interceptor) {
	c.inters.TokenJTI = append(c.inters.TokenJTI, interceptors...)
}

// Create returns a builder for creating a TokenJTI entity.
func (c *TokenJTIClient) Create() *TokenJTICreate {
	mutation := newTokenJTIMutation(c.config, OpCreate)
	return &TokenJTICreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TokenJTI entities.
func (c *TokenJTIClient) CreateBulk(builders ...*TokenJTICreate) *TokenJTICreateBulk {
	return &TokenJTICreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TokenJTIClient) MapCreateBulk(slice any, setFunc func(*TokenJTICreate, int)) *TokenJTICreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TokenJTICreateBulk{err: fmt.Errorf("calling to TokenJTIClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TokenJTICreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TokenJTICreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TokenJTI.
func (c *TokenJTIClient) Update() *TokenJTIUpdate {
	mutation := newTokenJTIMutation(c.config, OpUpdate)
	return &TokenJTIUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TokenJTIClient) UpdateOne(_m *TokenJTI) *TokenJTIUpdateOne {
	mutation := newTokenJTIMutation(c.config, OpUpdateOne, withTokenJTI(_m))
	return &TokenJTIUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TokenJTIClient) UpdateOneID(id string) *TokenJTIUpdateOne {
	mutation := newTokenJTIMutation(c.config, OpUpdateOne, withTokenJTIID(id))
	return &TokenJTIUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TokenJTI.
func (c *TokenJTIClient) Delete() *TokenJTIDelete {
	mutation := newTokenJTIMutation(c.config, OpDelete)
	return &TokenJTIDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TokenJTIClient) DeleteOne(_m *TokenJTI) *TokenJTIDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TokenJTIClient) DeleteOneID(id string) *TokenJTIDeleteOne {
	builder := c.Delete().Where(tokenjti.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TokenJTIDeleteOne{builder}
}

// Query returns a query builder for TokenJTI.
func (c *TokenJTIClient) Query() *TokenJTIQuery {
	return &TokenJTIQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTokenJTI},
		inters: c.Interceptors(),
	}
}

// Get returns a TokenJTI entity by its id.
func (c *TokenJTIClient) Get(ctx context.Context, id string) (*TokenJTI, error) {
	return c.Query().Where(tokenjti.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TokenJTIClient) GetX(ctx context.Context, id string) *TokenJTI {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TokenJTIClient) Hooks() []Hook {
	return c.hooks.TokenJTI
}

// Interceptors returns the client interceptors.
func (c *TokenJTIClient) Interceptors() []Interceptor {
	return c.inters.TokenJTI
}

func (c *TokenJTIClient) mutate(ctx context.Context, m *TokenJTIMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TokenJTICreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TokenJTIUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TokenJTIUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TokenJTIDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TokenJTI mutation op: %q", m.Op())
	}
}

// WorkloadPrincipalClient is a client for the WorkloadPrincipal schema.
type WorkloadPrincipalClient struct {
	config
}

// NewWorkloadPrincipalClient returns a client for the WorkloadPrincipal from the given config.
func NewWorkloadPrincipalClient(c config) *WorkloadPrincipalClient {
	return &WorkloadPrincipalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workloadprincipal.Hooks(f(g(h())))`.
func (c *WorkloadPrincipalClient) Use(hooks ...Hook) {
	c.hooks.WorkloadPrincipal = append(c.hooks.WorkloadPrincipal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workloadprincipal.Intercept(f(g(h())))`.
func (c *WorkloadPrincipalClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkloadPrincipal = append(c.inters.WorkloadPrincipal, interceptors...)
}

// Create returns a builder for creating a WorkloadPrincipal entity.
func (c *WorkloadPrincipalClient) Create() *WorkloadPrincipalCreate {
	mutation := newWorkloadPrincipalMutation(c.config, OpCreate)
	return &WorkloadPrincipalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkloadPrincipal entities.
func (c *WorkloadPrincipalClient) CreateBulk(builders ...*WorkloadPrincipalCreate) *WorkloadPrincipalCreateBulk {
	return &WorkloadPrincipalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkloadPrincipalClient) MapCreateBulk(slice any, setFunc func(*WorkloadPrincipalCreate, int)) *WorkloadPrincipalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkloadPrincipalCreateBulk{err: fmt.Errorf("calling to WorkloadPrincipalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkloadPrincipalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkloadPrincipalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkloadPrincipal.
func (c *WorkloadPrincipalClient) Update() *WorkloadPrincipalUpdate {
	mutation := newWorkloadPrincipalMutation(c.config, OpUpdate)
	return &WorkloadPrincipalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkloadPrincipalClient) UpdateOne(_m *WorkloadPrincipal) *WorkloadPrincipalUpdateOne {
	mutation := newWorkloadPrincipalMutation(c.config, OpUpdateOne, withWorkloadPrincipal(_m))
	return &WorkloadPrincipalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkloadPrincipalClient) UpdateOneID(id string) *WorkloadPrincipalUpdateOne {
	mutation := newWorkloadPrincipalMutation(c.config, OpUpdateOne, withWorkloadPrincipalID(id))
	return &WorkloadPrincipalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkloadPrincipal.
func (c *WorkloadPrincipalClient) Delete() *WorkloadPrincipalDelete {
	mutation := newWorkloadPrincipalMutation(c.config, OpDelete)
	return &WorkloadPrincipalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkloadPrincipalClient) DeleteOne(_m *WorkloadPrincipal) *WorkloadPrincipalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkloadPrincipalClient) DeleteOneID(id string) *WorkloadPrincipalDeleteOne {
	builder := c.Delete().Where(workloadprincipal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkloadPrincipalDeleteOne{builder}
}

// Query returns a query builder for WorkloadPrincipal.
func (c *WorkloadPrincipalClient) Query() *WorkloadPrincipalQuery {
	return &WorkloadPrincipalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkloadPrincipal},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkloadPrincipal entity by its id.
func (c *WorkloadPrincipalClient) Get(ctx context.Context, id string) (*WorkloadPrincipal, error) {
	return c.Query().Where(workloadprincipal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkloadPrincipalClient) GetX(ctx context.Context, id string) *WorkloadPrincipal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkloadPrincipalClient) Hooks() []Hook {
	return c.hooks.WorkloadPrincipal
}

// Interceptors returns the client interceptors.
func (c *WorkloadPrincipalClient) Interceptors() []Interceptor {
	return c.inters.WorkloadPrincipal
}

func (c *WorkloadPrincipalClient) mutate(ctx context.Context, m *WorkloadPrincipalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkloadPrincipalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkloadPrincipalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkloadPrincipalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkloadPrincipalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkloadPrincipal mutation op: %q", m.Op())
	}
}

// WorkloadScopePolicyClient is a client for the WorkloadScopePolicy schema.
type WorkloadScopePolicyClient struct {
	config
}

// NewWorkloadScopePolicyClient returns a client for the WorkloadScopePolicy from the given config.
func NewWorkloadScopePolicyClient(c config) *WorkloadScopePolicyClient {
	return &WorkloadScopePolicyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workloadscopepolicy.Hooks(f(g(h())))`.
func (c *WorkloadScopePolicyClient) Use(hooks ...Hook) {
	c.hooks.WorkloadScopePolicy = append(c.hooks.WorkloadScopePolicy, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workloadscopepolicy.Intercept(f(g(h())))`.
func (c *WorkloadScopePolicyClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkloadScopePolicy = append(c.inters.WorkloadScopePolicy, interceptors...)
}

// Create returns a builder for creating a WorkloadScopePolicy entity.
func (c *WorkloadScopePolicyClient) Create() *WorkloadScopePolicyCreate {
	mutation := newWorkloadScopePolicyMutation(c.config, OpCreate)
	return &WorkloadScopePolicyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkloadScopePolicy entities.
func (c *WorkloadScopePolicyClient) CreateBulk(builders ...*WorkloadScopePolicyCreate) *WorkloadScopePolicyCreateBulk {
	return &WorkloadScopePolicyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkloadScopePolicyClient) MapCreateBulk(slice any, setFunc func(*WorkloadScopePolicyCreate, int)) *WorkloadScopePolicyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkloadScopePolicyCreateBulk{err: fmt.Errorf("calling to WorkloadScopePolicyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkloadScopePolicyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkloadScopePolicyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkloadScopePolicy.
func (c *WorkloadScopePolicyClient) Update() *WorkloadScopePolicyUpdate {
	mutation := newWorkloadScopePolicyMutation(c.config, OpUpdate)
	return &WorkloadScopePolicyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkloadScopePolicyClient) UpdateOne(_m *WorkloadScopePolicy) *WorkloadScopePolicyUpdateOne {
	mutation := newWorkloadScopePolicyMutation(c.config, OpUpdateOne, withWorkloadScopePolicy(_m))
	return &WorkloadScopePolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkloadScopePolicyClient) UpdateOneID(id string) *WorkloadScopePolicyUpdateOne {
	mutation := newWorkloadScopePolicyMutation(c.config, OpUpdateOne, withWorkloadScopePolicyID(id))
	return &WorkloadScopePolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkloadScopePolicy.
func (c *WorkloadScopePolicyClient) Delete() *WorkloadScopePolicyDelete {
	mutation := newWorkloadScopePolicyMutation(c.config, OpDelete)
	return &WorkloadScopePolicyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkloadScopePolicyClient) DeleteOne(_m *WorkloadScopePolicy) *WorkloadScopePolicyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkloadScopePolicyClient) DeleteOneID(id string) *WorkloadScopePolicyDeleteOne {
	builder := c.Delete().Where(workloadscopepolicy.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkloadScopePolicyDeleteOne{builder}
}

// Query returns a query builder for WorkloadScopePolicy.
func (c *WorkloadScopePolicyClient) Query() *WorkloadScopePolicyQuery {
	return &WorkloadScopePolicyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkloadScopePolicy},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkloadScopePolicy entity by its id.
func (c *WorkloadScopePolicyClient) Get(ctx context.Context, id string) (*WorkloadScopePolicy, error) {
	return c.Query().Where(workloadscopepolicy.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkloadScopePolicyClient) GetX(ctx context.Context, id string) *WorkloadScopePolicy {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkloadScopePolicyClient) Hooks() []Hook {
	return c.hooks.WorkloadScopePolicy
}

// Interceptors returns the client interceptors.
func (c *WorkloadScopePolicyClient) Interceptors() []Interceptor {
	return c.inters.WorkloadScopePolicy
}

func (c *WorkloadScopePolicyClient) mutate(ctx context.Context, m *WorkloadScopePolicyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkloadScopePolicyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkloadScopePolicyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkloadScopePolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkloadScopePolicyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkloadScopePolicy mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, DelegationGrant, GroupMember, OrchestrationGroup, OrchestratorPolicy,
		OrchestratorTarget, Run, TokenJTI, WorkloadPrincipal,
		WorkloadScopePolicy []ent.Hook
	}
	inters struct {
		Agent, DelegationGrant, GroupMember, OrchestrationGroup, OrchestratorPolicy,
		OrchestratorTarget, Run, TokenJTI, WorkloadPrincipal,
		WorkloadScopePolicy []ent.Interceptor
	}
)
