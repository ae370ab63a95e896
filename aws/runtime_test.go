package aws

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/document"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
	"github.com/entigolabs/entigo-flow-agent/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectEvents(t *testing.T) {
	events := make(chan types.FlowResponseStream, 4)
	events <- &types.FlowResponseStreamMemberFlowTraceEvent{Value: types.FlowTraceEvent{}}
	events <- &types.FlowResponseStreamMemberFlowOutputEvent{Value: types.FlowOutputEvent{
		NodeName: aws.String("FlowOutputNode"),
		NodeType: types.NodeTypeFlowOutputNode,
		Content:  &types.FlowOutputContentMemberDocument{Value: document.NewLazyDocument("Please verify your identity")},
	}}
	events <- &types.FlowResponseStreamMemberFlowCompletionEvent{Value: types.FlowCompletionEvent{
		CompletionReason: types.FlowCompletionReasonSuccess,
	}}
	close(events)

	invocation := &model.Invocation{}
	require.NoError(t, collectEvents(events, invocation))
	require.Len(t, invocation.Outputs, 1)
	assert.Equal(t, "FlowOutputNode", invocation.Outputs[0].NodeName)
	assert.Equal(t, "FlowOutputNode", invocation.Outputs[0].NodeType)
	assert.Equal(t, "Please verify your identity", invocation.Outputs[0].Document)
	assert.Equal(t, "SUCCESS", invocation.CompletionReason)
	assert.Equal(t, 1, invocation.Traces)
}

func TestCollectEventsEmptyStream(t *testing.T) {
	events := make(chan types.FlowResponseStream)
	close(events)

	invocation := &model.Invocation{}
	require.NoError(t, collectEvents(events, invocation))
	assert.Empty(t, invocation.Outputs)
	assert.Empty(t, invocation.CompletionReason)
}

func TestCollectEventsInputRequest(t *testing.T) {
	events := make(chan types.FlowResponseStream, 2)
	events <- &types.FlowResponseStreamMemberFlowMultiTurnInputRequestEvent{Value: types.FlowMultiTurnInputRequestEvent{
		NodeName: aws.String("PlayerSupportAgent"),
	}}
	events <- &types.FlowResponseStreamMemberFlowCompletionEvent{Value: types.FlowCompletionEvent{
		CompletionReason: types.FlowCompletionReason("INPUT_REQUIRED"),
	}}
	close(events)

	invocation := &model.Invocation{}
	require.NoError(t, collectEvents(events, invocation))
	assert.Equal(t, []string{"PlayerSupportAgent"}, invocation.InputRequests)
	assert.Equal(t, "INPUT_REQUIRED", invocation.CompletionReason)
	assert.Empty(t, invocation.Outputs)
}
