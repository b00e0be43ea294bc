package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "arc.yaml"), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestInitialize_Defaults(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Features.GraphSpecV2.Enabled)
	assert.True(t, cfg.Features.RuntimeOrchestration.Enabled)
	assert.Equal(t, 3, cfg.PolicyDefaults.MaxDepth)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, "localhost:50051", cfg.Interpreter.GRPCAddr)
}

func TestInitialize_FileOverridesDefaults(t *testing.T) {
	dir := writeConfig(t, `
features:
  graph_spec_v2:
    enabled: true
    tenant_allowlist:
      - tenant-a
policy_defaults:
  max_fanout: 4
queue:
  worker_count: 2
  poll_interval: 250ms
interpreter:
  use_stub: true
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"tenant-a"}, cfg.Features.GraphSpecV2.TenantAllowlist)
	assert.Equal(t, 4, cfg.PolicyDefaults.MaxFanout)
	assert.Equal(t, 3, cfg.PolicyDefaults.MaxDepth, "unset fields keep their defaults")
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 250*time.Millisecond, cfg.Queue.PollInterval)
	assert.True(t, cfg.Interpreter.UseStub)
	assert.Equal(t, "localhost:50051", cfg.Interpreter.GRPCAddr)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_INTERPRETER_ADDR", "interp.internal:50051")
	dir := writeConfig(t, `
interpreter:
  grpc_addr: "{{.TEST_INTERPRETER_ADDR}}"
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "interp.internal:50051", cfg.Interpreter.GRPCAddr)
}

func TestInitialize_Validation(t *testing.T) {
	dir := writeConfig(t, `
policy_defaults:
  max_depth: -1
`)
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_depth")
}

func TestInitialize_MalformedYAML(t *testing.T) {
	dir := writeConfig(t, "queue: [not a map")
	_, err := Initialize(context.Background(), dir)
	assert.Error(t, err)
}

func TestExpandEnv_PassThrough(t *testing.T) {
	plain := []byte("queue:\n  worker_count: 3\n")
	assert.Equal(t, plain, ExpandEnv(plain))
}

func TestSurface_EnabledForTenant(t *testing.T) {
	s := Surface{Enabled: true}
	assert.True(t, s.EnabledForTenant("anyone"))

	s.TenantAllowlist = []string{"tenant-a"}
	assert.True(t, s.EnabledForTenant("tenant-a"))
	assert.False(t, s.EnabledForTenant("tenant-b"))

	s.Enabled = false
	assert.False(t, s.EnabledForTenant("tenant-a"))
}
