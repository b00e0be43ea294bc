package database_test

import (
	"context"
	"testing"

	"github.com/agentforge/arc/pkg/database"
	testdb "github.com/agentforge/arc/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	status, err := database.Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.GreaterOrEqual(t, status.ResponseTime, int64(0))
	assert.Greater(t, status.OpenConnections, 0)
}

func TestHealth_CancelledContext(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	status, err := database.Health(ctx, client.DB())
	require.Error(t, err)
	assert.Equal(t, "unhealthy", status.Status)
}
