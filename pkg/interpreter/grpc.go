package interpreter

import (
	"context"
	"fmt"

	interpreterv1 "github.com/agentforge/arc/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
)

// GRPCClient implements Client by calling the external run interpreter
// service via gRPC.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client interpreterv1.RunInterpreterClient
}

// NewGRPCClient creates a new gRPC interpreter client.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to interpreter service at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: interpreterv1.NewRunInterpreterClient(conn),
	}, nil
}

// Execute hands one run to the interpreter and waits for its terminal
// report.
func (c *GRPCClient) Execute(ctx context.Context, input *ExecuteInput) (*ExecuteResult, error) {
	req, err := toProtoRequest(input)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Execute(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("gRPC Execute call failed: %w", err)
	}

	return fromProtoResponse(resp), nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func toProtoRequest(input *ExecuteInput) (*interpreterv1.ExecuteRequest, error) {
	req := &interpreterv1.ExecuteRequest{
		RunId:    input.RunID,
		TenantId: input.TenantID,
		AgentId:  input.AgentID,
		TimeoutS: int32(input.TimeoutS),
	}
	if input.Input != nil {
		s, err := structpb.NewStruct(input.Input)
		if err != nil {
			return nil, fmt.Errorf("failed to encode run input: %w", err)
		}
		req.Input = s
	}
	return req, nil
}

func fromProtoResponse(resp *interpreterv1.ExecuteResponse) *ExecuteResult {
	result := &ExecuteResult{Reason: resp.Reason}
	if resp.Output != nil {
		result.Output = resp.Output.AsMap()
	}
	switch resp.Outcome {
	case interpreterv1.ExecuteResponse_OUTCOME_COMPLETED:
		result.Outcome = OutcomeCompleted
	case interpreterv1.ExecuteResponse_OUTCOME_CANCELLED:
		result.Outcome = OutcomeCancelled
	case interpreterv1.ExecuteResponse_OUTCOME_TIMED_OUT:
		result.Outcome = OutcomeTimedOut
	default:
		result.Outcome = OutcomeFailed
	}
	return result
}
