// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/agentforge/arc/ent/agent"
	"github.com/agentforge/arc/ent/delegationgrant"
	"github.com/agentforge/arc/ent/orchestrationgroup"
	"github.com/agentforge/arc/ent/orchestratorpolicy"
	"github.com/agentforge/arc/ent/run"
	"github.com/agentforge/arc/ent/schema"
	"github.com/agentforge/arc/ent/tokenjti"
	"github.com/agentforge/arc/ent/workloadprincipal"
	"github.com/agentforge/arc/ent/workloadscopepolicy"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescSpecVersion is the schema descriptor for spec_version field.
	agentDescSpecVersion := agentFields[6].Descriptor()
	// agent.DefaultSpecVersion holds the default value on creation for the spec_version field.
	agent.DefaultSpecVersion = agentDescSpecVersion.Default.(string)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[7].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[8].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	delegationgrantFields := schema.DelegationGrant{}.Fields()
	_ = delegationgrantFields
	// delegationgrantDescCreatedAt is the schema descriptor for created_at field.
	delegationgrantDescCreatedAt := delegationgrantFields[10].Descriptor()
	// delegationgrant.DefaultCreatedAt holds the default value on creation for the created_at field.
	delegationgrant.DefaultCreatedAt = delegationgrantDescCreatedAt.Default.(func() time.Time)
	groupmemberFields := schema.GroupMember{}.Fields()
	_ = groupmemberFields
	orchestrationgroupFields := schema.OrchestrationGroup{}.Fields()
	_ = orchestrationgroupFields
	// orchestrationgroupDescTimeoutS is the schema descriptor for timeout_s field.
	orchestrationgroupDescTimeoutS := orchestrationgroupFields[7].Descriptor()
	// orchestrationgroup.DefaultTimeoutS holds the default value on creation for the timeout_s field.
	orchestrationgroup.DefaultTimeoutS = orchestrationgroupDescTimeoutS.Default.(int)
	// orchestrationgroupDescCancellationPropagated is the schema descriptor for cancellation_propagated field.
	orchestrationgroupDescCancellationPropagated := orchestrationgroupFields[9].Descriptor()
	// orchestrationgroup.DefaultCancellationPropagated holds the default value on creation for the cancellation_propagated field.
	orchestrationgroup.DefaultCancellationPropagated = orchestrationgroupDescCancellationPropagated.Default.(int)
	// orchestrationgroupDescStartedAt is the schema descriptor for started_at field.
	orchestrationgroupDescStartedAt := orchestrationgroupFields[12].Descriptor()
	// orchestrationgroup.DefaultStartedAt holds the default value on creation for the started_at field.
	orchestrationgroup.DefaultStartedAt = orchestrationgroupDescStartedAt.Default.(func() time.Time)
	orchestratorpolicyFields := schema.OrchestratorPolicy{}.Fields()
	_ = orchestratorpolicyFields
	// orchestratorpolicyDescEnforcePublishedOnly is the schema descriptor for enforce_published_only field.
	orchestratorpolicyDescEnforcePublishedOnly := orchestratorpolicyFields[3].Descriptor()
	// orchestratorpolicy.DefaultEnforcePublishedOnly holds the default value on creation for the enforce_published_only field.
	orchestratorpolicy.DefaultEnforcePublishedOnly = orchestratorpolicyDescEnforcePublishedOnly.Default.(bool)
	// orchestratorpolicyDescMaxDepth is the schema descriptor for max_depth field.
	orchestratorpolicyDescMaxDepth := orchestratorpolicyFields[5].Descriptor()
	// orchestratorpolicy.DefaultMaxDepth holds the default value on creation for the max_depth field.
	orchestratorpolicy.DefaultMaxDepth = orchestratorpolicyDescMaxDepth.Default.(int)
	// orchestratorpolicyDescMaxFanout is the schema descriptor for max_fanout field.
	orchestratorpolicyDescMaxFanout := orchestratorpolicyFields[6].Descriptor()
	// orchestratorpolicy.DefaultMaxFanout holds the default value on creation for the max_fanout field.
	orchestratorpolicy.DefaultMaxFanout = orchestratorpolicyDescMaxFanout.Default.(int)
	// orchestratorpolicyDescMaxChildrenTotal is the schema descriptor for max_children_total field.
	orchestratorpolicyDescMaxChildrenTotal := orchestratorpolicyFields[7].Descriptor()
	// orchestratorpolicy.DefaultMaxChildrenTotal holds the default value on creation for the max_children_total field.
	orchestratorpolicy.DefaultMaxChildrenTotal = orchestratorpolicyDescMaxChildrenTotal.Default.(int)
	// orchestratorpolicyDescJoinTimeoutS is the schema descriptor for join_timeout_s field.
	orchestratorpolicyDescJoinTimeoutS := orchestratorpolicyFields[8].Descriptor()
	// orchestratorpolicy.DefaultJoinTimeoutS holds the default value on creation for the join_timeout_s field.
	orchestratorpolicy.DefaultJoinTimeoutS = orchestratorpolicyDescJoinTimeoutS.Default.(int)
	// orchestratorpolicyDescCreatedAt is the schema descriptor for created_at field.
	orchestratorpolicyDescCreatedAt := orchestratorpolicyFields[11].Descriptor()
	// orchestratorpolicy.DefaultCreatedAt holds the default value on creation for the created_at field.
	orchestratorpolicy.DefaultCreatedAt = orchestratorpolicyDescCreatedAt.Default.(func() time.Time)
	// orchestratorpolicyDescUpdatedAt is the schema descriptor for updated_at field.
	orchestratorpolicyDescUpdatedAt := orchestratorpolicyFields[12].Descriptor()
	// orchestratorpolicy.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	orchestratorpolicy.DefaultUpdatedAt = orchestratorpolicyDescUpdatedAt.Default.(func() time.Time)
	// orchestratorpolicy.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	orchestratorpolicy.UpdateDefaultUpdatedAt = orchestratorpolicyDescUpdatedAt.UpdateDefault.(func() time.Time)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescDepth is the schema descriptor for depth field.
	runDescDepth := runFields[10].Descriptor()
	// run.DefaultDepth holds the default value on creation for the depth field.
	run.DefaultDepth = runDescDepth.Default.(int)
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[17].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
	tokenjtiFields := schema.TokenJTI{}.Fields()
	_ = tokenjtiFields
	// tokenjtiDescCreatedAt is the schema descriptor for created_at field.
	tokenjtiDescCreatedAt := tokenjtiFields[5].Descriptor()
	// tokenjti.DefaultCreatedAt holds the default value on creation for the created_at field.
	tokenjti.DefaultCreatedAt = tokenjtiDescCreatedAt.Default.(func() time.Time)
	workloadprincipalFields := schema.WorkloadPrincipal{}.Fields()
	_ = workloadprincipalFields
	// workloadprincipalDescCreatedAt is the schema descriptor for created_at field.
	workloadprincipalDescCreatedAt := workloadprincipalFields[4].Descriptor()
	// workloadprincipal.DefaultCreatedAt holds the default value on creation for the created_at field.
	workloadprincipal.DefaultCreatedAt = workloadprincipalDescCreatedAt.Default.(func() time.Time)
	workloadscopepolicyFields := schema.WorkloadScopePolicy{}.Fields()
	_ = workloadscopepolicyFields
	// workloadscopepolicyDescVersion is the schema descriptor for version field.
	workloadscopepolicyDescVersion := workloadscopepolicyFields[5].Descriptor()
	// workloadscopepolicy.DefaultVersion holds the default value on creation for the version field.
	workloadscopepolicy.DefaultVersion = workloadscopepolicyDescVersion.Default.(int)
	// workloadscopepolicyDescUpdatedAt is the schema descriptor for updated_at field.
	workloadscopepolicyDescUpdatedAt := workloadscopepolicyFields[6].Descriptor()
	// workloadscopepolicy.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workloadscopepolicy.DefaultUpdatedAt = workloadscopepolicyDescUpdatedAt.Default.(func() time.Time)
	// workloadscopepolicy.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workloadscopepolicy.UpdateDefaultUpdatedAt = workloadscopepolicyDescUpdatedAt.UpdateDefault.(func() time.Time)
}
