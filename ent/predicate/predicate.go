// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// DelegationGrant is the predicate function for delegationgrant builders.
type DelegationGrant func(*sql.Selector)

// GroupMember is the predicate function for groupmember builders.
type GroupMember func(*sql.Selector)

// OrchestrationGroup is the predicate function for orchestrationgroup builders.
type OrchestrationGroup func(*sql.Selector)

// OrchestratorPolicy is the predicate function for orchestratorpolicy builders.
type OrchestratorPolicy func(*sql.Selector)

// OrchestratorTarget is the predicate function for orchestratortarget builders.
type OrchestratorTarget func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// TokenJTI is the predicate function for tokenjti builders.
type TokenJTI func(*sql.Selector)

// WorkloadPrincipal is the predicate function for workloadprincipal builders.
type WorkloadPrincipal func(*sql.Selector)

// WorkloadScopePolicy is the predicate function for workloadscopepolicy builders.
type WorkloadScopePolicy func(*sql.Selector)
