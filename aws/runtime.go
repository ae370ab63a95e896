package aws

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/document"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
	"github.com/entigolabs/entigo-flow-agent/model"
)

type runtimeAPI interface {
	InvokeFlow(ctx context.Context, params *bedrockagentruntime.InvokeFlowInput, optFns ...func(*bedrockagentruntime.Options)) (*bedrockagentruntime.InvokeFlowOutput, error)
}

type Runtime struct {
	client runtimeAPI
}

func NewRuntime(config aws.Config) *Runtime {
	return &Runtime{
		client: bedrockagentruntime.NewFromConfig(config),
	}
}

func (r *Runtime) InvokeFlow(ctx context.Context, request model.InvocationRequest) (*model.Invocation, error) {
	output, err := r.client.InvokeFlow(ctx, &bedrockagentruntime.InvokeFlowInput{
		FlowIdentifier:      aws.String(request.FlowID),
		FlowAliasIdentifier: aws.String(request.AliasID),
		Inputs: []types.FlowInput{{
			Content:        &types.FlowInputContentMemberDocument{Value: document.NewLazyDocument(request.Document)},
			NodeName:       aws.String(request.NodeName),
			NodeOutputName: aws.String(request.OutputName),
		}},
	})
	if err != nil {
		return nil, classify("InvokeFlow", err)
	}
	invocation := &model.Invocation{
		FlowID:      request.FlowID,
		ExecutionID: aws.ToString(output.ExecutionId),
		Outputs:     make([]model.InvocationOutput, 0),
	}
	stream := output.GetStream()
	defer stream.Close()
	if err = collectEvents(stream.Events(), invocation); err != nil {
		return invocation, classify("InvokeFlow", err)
	}
	if err = stream.Err(); err != nil {
		return invocation, classify("InvokeFlow", err)
	}
	return invocation, nil
}

func collectEvents(events <-chan types.FlowResponseStream, invocation *model.Invocation) error {
	for event := range events {
		switch e := event.(type) {
		case *types.FlowResponseStreamMemberFlowOutputEvent:
			content, err := decodeOutput(e.Value.Content)
			if err != nil {
				return fmt.Errorf("failed to decode output of node %s: %w", aws.ToString(e.Value.NodeName), err)
			}
			invocation.Outputs = append(invocation.Outputs, model.InvocationOutput{
				NodeName: aws.ToString(e.Value.NodeName),
				NodeType: string(e.Value.NodeType),
				Document: content,
			})
		case *types.FlowResponseStreamMemberFlowCompletionEvent:
			invocation.CompletionReason = string(e.Value.CompletionReason)
		case *types.FlowResponseStreamMemberFlowMultiTurnInputRequestEvent:
			invocation.InputRequests = append(invocation.InputRequests, aws.ToString(e.Value.NodeName))
		case *types.FlowResponseStreamMemberFlowTraceEvent:
			invocation.Traces++
		default:
			slog.Debug(fmt.Sprintf("Skipping flow stream event %T", event))
		}
	}
	return nil
}

func decodeOutput(content types.FlowOutputContent) (any, error) {
	documentContent, ok := content.(*types.FlowOutputContentMemberDocument)
	if !ok || documentContent.Value == nil {
		return nil, nil
	}
	var value any
	if err := documentContent.Value.UnmarshalSmithyDocument(&value); err != nil {
		return nil, err
	}
	return value, nil
}
