package queue

import (
	"context"
	"testing"
	"time"

	"github.com/agentforge/arc/ent/run"
	"github.com/agentforge/arc/pkg/interpreter"
	testdb "github.com/agentforge/arc/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingInterpreter holds Execute until its context ends.
type blockingInterpreter struct {
	started chan struct{}
}

func (b *blockingInterpreter) Execute(ctx context.Context, input *interpreter.ExecuteInput) (*interpreter.ExecuteResult, error) {
	close(b.started)
	<-ctx.Done()
	return nil, ctx.Err()
}

func (b *blockingInterpreter) Close() error { return nil }

func TestInterpreterExecutor_Completed(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	stub := interpreter.NewStub()
	executor := NewInterpreterExecutor(client, stub, testQueueConfig())

	r := enqueueRun(t, ctx, client)
	err := client.Run.UpdateOneID(r.ID).SetInput(map[string]any{"q": "hello"}).Exec(ctx)
	require.NoError(t, err)
	r, err = client.Run.Get(ctx, r.ID)
	require.NoError(t, err)

	result := executor.Execute(ctx, r)
	require.NotNil(t, result)
	assert.Equal(t, run.StatusCompleted, result.Status)
	assert.Equal(t, map[string]any{"q": "hello"}, result.Output, "the stub echoes the input")
	assert.Equal(t, []string{r.ID}, stub.Executed())
}

func TestInterpreterExecutor_OutcomeMapping(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	cases := []struct {
		outcome interpreter.Outcome
		status  run.Status
	}{
		{interpreter.OutcomeFailed, run.StatusFailed},
		{interpreter.OutcomeCancelled, run.StatusCancelled},
		{interpreter.OutcomeTimedOut, run.StatusTimedOut},
	}
	for _, tc := range cases {
		stub := interpreter.NewStub()
		stub.Result = &interpreter.ExecuteResult{Outcome: tc.outcome, Reason: "because"}
		executor := NewInterpreterExecutor(client, stub, testQueueConfig())

		r := enqueueRun(t, ctx, client)
		result := executor.Execute(ctx, r)
		require.NotNil(t, result)
		assert.Equal(t, tc.status, result.Status)
		require.Error(t, result.Error)
		assert.Equal(t, "because", result.Error.Error())
	}
}

func TestInterpreterExecutor_ExternalCancellation(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	cfg := testQueueConfig()
	interp := &blockingInterpreter{started: make(chan struct{})}
	executor := NewInterpreterExecutor(client, interp, cfg)

	r := enqueueRun(t, ctx, client)
	err := client.Run.UpdateOneID(r.ID).SetStatus(run.StatusRunning).Exec(ctx)
	require.NoError(t, err)

	// Flip the run to cancelled once execution is underway; the status
	// watcher must interrupt the interpreter call.
	go func() {
		<-interp.started
		_ = client.Run.UpdateOneID(r.ID).
			SetStatus(run.StatusCancelled).
			SetStatusReason("cancelled by kernel").
			Exec(context.Background())
	}()

	done := make(chan *ExecutionResult, 1)
	go func() { done <- executor.Execute(ctx, r) }()

	select {
	case result := <-done:
		require.NotNil(t, result)
		assert.Equal(t, run.StatusCancelled, result.Status)
		assert.ErrorIs(t, result.Error, context.Canceled)
	case <-time.After(10 * time.Second):
		t.Fatal("executor did not observe the cancellation")
	}
}
