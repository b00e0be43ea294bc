package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These must match the constraints in
// pkg/database/migrations/0001_init.up.sql.
//
// Group-level idempotency: one orchestration group per
// (orchestrator_run_id, parent_node_id, idempotency_key_prefix). Because
// parent_node_id is nullable, a plain unique index would not collapse
// replays that omit it — two partial indexes cover both shapes.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS orchestrationgroup_idempotency_with_node
		ON orchestration_groups (orchestrator_run_id, parent_node_id, idempotency_key_prefix)
		WHERE parent_node_id IS NOT NULL AND idempotency_key_prefix IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create group idempotency index (with node): %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS orchestrationgroup_idempotency_no_node
		ON orchestration_groups (orchestrator_run_id, idempotency_key_prefix)
		WHERE parent_node_id IS NULL AND idempotency_key_prefix IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create group idempotency index (no node): %w", err)
	}

	return nil
}
