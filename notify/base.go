package notify

import (
	"bytes"
	"fmt"

	"github.com/entigolabs/entigo-flow-agent/model"
)

type BaseNotifier struct {
	model.BaseNotifier
	MessageFunc func(message string) error
}

func (b *BaseNotifier) Message(messageType model.MessageType, message string) error {
	if messageType == model.MessageTypeFailure {
		message = fmt.Sprintf("ERROR %s", message)
	}
	return b.MessageFunc(b.withContext(message))
}

func (b *BaseNotifier) Deployment(deployment model.Deployment) error {
	var buffer bytes.Buffer
	buffer.WriteString(fmt.Sprintf("Flow %s created", deployment.FlowID))
	buffer.WriteString(fmt.Sprintf("\nFlow ARN: %s", deployment.FlowArn))
	if deployment.ExecutionRoleArn != "" {
		buffer.WriteString(fmt.Sprintf("\nExecution role: %s", deployment.ExecutionRoleArn))
	}
	if deployment.PrepareInitiated {
		buffer.WriteString(fmt.Sprintf("\nPreparation initiated, status: %s", deployment.Status))
	}
	return b.MessageFunc(b.withContext(buffer.String()))
}

func (b *BaseNotifier) TestResult(invocation model.Invocation) error {
	var buffer bytes.Buffer
	buffer.WriteString(fmt.Sprintf("Flow %s test query: %s", invocation.FlowID, invocation.Query))
	for _, output := range invocation.Outputs {
		buffer.WriteString(fmt.Sprintf("\nNode '%s' output: %v", output.NodeName, output.Document))
	}
	for _, node := range invocation.InputRequests {
		buffer.WriteString(fmt.Sprintf("\nNode '%s' requested more input", node))
	}
	if invocation.CompletionReason != "" {
		buffer.WriteString(fmt.Sprintf("\nCompletion: %s", invocation.CompletionReason))
	}
	return b.MessageFunc(b.withContext(buffer.String()))
}

func (b *BaseNotifier) withContext(message string) string {
	if b.Context == "" {
		return message
	}
	return fmt.Sprintf("%s %s", b.Context, message)
}
