// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "published", "archived"}, Default: "draft"},
		{Name: "graph_spec", Type: field.TypeJSON, Nullable: true},
		{Name: "spec_version", Type: field.TypeString, Default: "1.0"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_tenant_id_slug",
				Unique:  true,
				Columns: []*schema.Column{AgentsColumns[1], AgentsColumns[2]},
			},
			{
				Name:    "agent_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[1], AgentsColumns[4]},
			},
		},
	}
	// DelegationGrantsColumns holds the columns for the "delegation_grants" table.
	DelegationGrantsColumns = []*schema.Column{
		{Name: "grant_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "principal_id", Type: field.TypeString},
		{Name: "initiator_user_id", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "parent_grant_id", Type: field.TypeString, Nullable: true},
		{Name: "effective_scopes", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "revoked", "expired"}, Default: "active"},
		{Name: "revocation_reason", Type: field.TypeString, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DelegationGrantsTable holds the schema information for the "delegation_grants" table.
	DelegationGrantsTable = &schema.Table{
		Name:       "delegation_grants",
		Columns:    DelegationGrantsColumns,
		PrimaryKey: []*schema.Column{DelegationGrantsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "delegationgrant_principal_id",
				Unique:  false,
				Columns: []*schema.Column{DelegationGrantsColumns[2]},
			},
			{
				Name:    "delegationgrant_run_id",
				Unique:  false,
				Columns: []*schema.Column{DelegationGrantsColumns[4]},
			},
			{
				Name:    "delegationgrant_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{DelegationGrantsColumns[1]},
			},
		},
	}
	// GroupMembersColumns holds the columns for the "group_members" table.
	GroupMembersColumns = []*schema.Column{
		{Name: "member_id", Type: field.TypeString, Unique: true},
		{Name: "group_id", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString},
		{Name: "ordinal", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "completed", "failed", "cancelled", "timed_out"}, Default: "pending"},
	}
	// GroupMembersTable holds the schema information for the "group_members" table.
	GroupMembersTable = &schema.Table{
		Name:       "group_members",
		Columns:    GroupMembersColumns,
		PrimaryKey: []*schema.Column{GroupMembersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "groupmember_group_id_run_id",
				Unique:  true,
				Columns: []*schema.Column{GroupMembersColumns[1], GroupMembersColumns[2]},
			},
			{
				Name:    "groupmember_group_id_ordinal",
				Unique:  true,
				Columns: []*schema.Column{GroupMembersColumns[1], GroupMembersColumns[3]},
			},
		},
	}
	// OrchestrationGroupsColumns holds the columns for the "orchestration_groups" table.
	OrchestrationGroupsColumns = []*schema.Column{
		{Name: "group_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "orchestrator_run_id", Type: field.TypeString},
		{Name: "parent_node_id", Type: field.TypeString, Nullable: true},
		{Name: "failure_policy", Type: field.TypeEnum, Enums: []string{"best_effort", "fail_fast"}, Default: "best_effort"},
		{Name: "join_mode", Type: field.TypeEnum, Enums: []string{"all", "quorum", "first_success", "best_effort", "fail_fast"}, Default: "all"},
		{Name: "quorum_threshold", Type: field.TypeInt, Nullable: true},
		{Name: "timeout_s", Type: field.TypeInt, Default: 60},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "completed_with_errors", "failed", "timed_out", "cancelled"}, Default: "running"},
		{Name: "cancellation_propagated", Type: field.TypeInt, Default: 0},
		{Name: "policy_snapshot", Type: field.TypeJSON},
		{Name: "idempotency_key_prefix", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// OrchestrationGroupsTable holds the schema information for the "orchestration_groups" table.
	OrchestrationGroupsTable = &schema.Table{
		Name:       "orchestration_groups",
		Columns:    OrchestrationGroupsColumns,
		PrimaryKey: []*schema.Column{OrchestrationGroupsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "orchestrationgroup_orchestrator_run_id",
				Unique:  false,
				Columns: []*schema.Column{OrchestrationGroupsColumns[2]},
			},
			{
				Name:    "orchestrationgroup_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{OrchestrationGroupsColumns[1]},
			},
			{
				Name:    "orchestrationgroup_status",
				Unique:  false,
				Columns: []*schema.Column{OrchestrationGroupsColumns[8]},
			},
		},
	}
	// OrchestratorPoliciesColumns holds the columns for the "orchestrator_policies" table.
	OrchestratorPoliciesColumns = []*schema.Column{
		{Name: "policy_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "orchestrator_agent_id", Type: field.TypeString},
		{Name: "enforce_published_only", Type: field.TypeBool, Default: true},
		{Name: "default_failure_policy", Type: field.TypeEnum, Enums: []string{"best_effort", "fail_fast"}, Default: "best_effort"},
		{Name: "max_depth", Type: field.TypeInt, Default: 3},
		{Name: "max_fanout", Type: field.TypeInt, Default: 8},
		{Name: "max_children_total", Type: field.TypeInt, Default: 32},
		{Name: "join_timeout_s", Type: field.TypeInt, Default: 60},
		{Name: "allowed_scope_subset", Type: field.TypeJSON, Nullable: true},
		{Name: "capability_manifest_version", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OrchestratorPoliciesTable holds the schema information for the "orchestrator_policies" table.
	OrchestratorPoliciesTable = &schema.Table{
		Name:       "orchestrator_policies",
		Columns:    OrchestratorPoliciesColumns,
		PrimaryKey: []*schema.Column{OrchestratorPoliciesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "orchestratorpolicy_tenant_id_orchestrator_agent_id",
				Unique:  true,
				Columns: []*schema.Column{OrchestratorPoliciesColumns[1], OrchestratorPoliciesColumns[2]},
			},
		},
	}
	// OrchestratorTargetsColumns holds the columns for the "orchestrator_targets" table.
	OrchestratorTargetsColumns = []*schema.Column{
		{Name: "target_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "orchestrator_agent_id", Type: field.TypeString},
		{Name: "target_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "target_agent_slug", Type: field.TypeString, Nullable: true},
		{Name: "tag", Type: field.TypeString, Nullable: true},
	}
	// OrchestratorTargetsTable holds the schema information for the "orchestrator_targets" table.
	OrchestratorTargetsTable = &schema.Table{
		Name:       "orchestrator_targets",
		Columns:    OrchestratorTargetsColumns,
		PrimaryKey: []*schema.Column{OrchestratorTargetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "orchestratortarget_tenant_id_orchestrator_agent_id",
				Unique:  false,
				Columns: []*schema.Column{OrchestratorTargetsColumns[1], OrchestratorTargetsColumns[2]},
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "initiator_user_id", Type: field.TypeString},
		{Name: "workload_principal_id", Type: field.TypeString},
		{Name: "delegation_grant_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "paused", "completed", "failed", "cancelled", "timed_out"}, Default: "queued"},
		{Name: "root_run_id", Type: field.TypeString},
		{Name: "parent_run_id", Type: field.TypeString, Nullable: true},
		{Name: "parent_node_id", Type: field.TypeString, Nullable: true},
		{Name: "depth", Type: field.TypeInt, Default: 0},
		{Name: "spawn_key", Type: field.TypeString, Nullable: true},
		{Name: "orchestration_group_id", Type: field.TypeString, Nullable: true},
		{Name: "input", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "timeout_s", Type: field.TypeInt, Nullable: true},
		{Name: "status_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "run_parent_run_id_spawn_key",
				Unique:  true,
				Columns: []*schema.Column{RunsColumns[8], RunsColumns[11]},
			},
			{
				Name:    "run_root_run_id",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[7]},
			},
			{
				Name:    "run_parent_run_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[8], RunsColumns[17]},
			},
			{
				Name:    "run_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[1]},
			},
			{
				Name:    "run_orchestration_group_id",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[12]},
			},
			{
				Name:    "run_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[6], RunsColumns[17]},
			},
		},
	}
	// TokenJtiRegistryColumns holds the columns for the "token_jti_registry" table.
	TokenJtiRegistryColumns = []*schema.Column{
		{Name: "jti", Type: field.TypeString, Unique: true},
		{Name: "grant_id", Type: field.TypeString},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "revocation_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TokenJtiRegistryTable holds the schema information for the "token_jti_registry" table.
	TokenJtiRegistryTable = &schema.Table{
		Name:       "token_jti_registry",
		Columns:    TokenJtiRegistryColumns,
		PrimaryKey: []*schema.Column{TokenJtiRegistryColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tokenjti_grant_id",
				Unique:  false,
				Columns: []*schema.Column{TokenJtiRegistryColumns[1]},
			},
			{
				Name:    "tokenjti_expires_at",
				Unique:  false,
				Columns: []*schema.Column{TokenJtiRegistryColumns[2]},
			},
		},
	}
	// WorkloadPrincipalsColumns holds the columns for the "workload_principals" table.
	WorkloadPrincipalsColumns = []*schema.Column{
		{Name: "principal_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"agent", "tool", "system"}, Default: "agent"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WorkloadPrincipalsTable holds the schema information for the "workload_principals" table.
	WorkloadPrincipalsTable = &schema.Table{
		Name:       "workload_principals",
		Columns:    WorkloadPrincipalsColumns,
		PrimaryKey: []*schema.Column{WorkloadPrincipalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workloadprincipal_tenant_id_slug",
				Unique:  true,
				Columns: []*schema.Column{WorkloadPrincipalsColumns[1], WorkloadPrincipalsColumns[2]},
			},
		},
	}
	// WorkloadScopePoliciesColumns holds the columns for the "workload_scope_policies" table.
	WorkloadScopePoliciesColumns = []*schema.Column{
		{Name: "scope_policy_id", Type: field.TypeString, Unique: true},
		{Name: "principal_id", Type: field.TypeString},
		{Name: "requested_scopes", Type: field.TypeJSON},
		{Name: "approved_scopes", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkloadScopePoliciesTable holds the schema information for the "workload_scope_policies" table.
	WorkloadScopePoliciesTable = &schema.Table{
		Name:       "workload_scope_policies",
		Columns:    WorkloadScopePoliciesColumns,
		PrimaryKey: []*schema.Column{WorkloadScopePoliciesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workloadscopepolicy_principal_id",
				Unique:  true,
				Columns: []*schema.Column{WorkloadScopePoliciesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		DelegationGrantsTable,
		GroupMembersTable,
		OrchestrationGroupsTable,
		OrchestratorPoliciesTable,
		OrchestratorTargetsTable,
		RunsTable,
		TokenJtiRegistryTable,
		WorkloadPrincipalsTable,
		WorkloadScopePoliciesTable,
	}
)

func init() {
	TokenJtiRegistryTable.Annotation = &entsql.Annotation{
		Table: "token_jti_registry",
	}
}
