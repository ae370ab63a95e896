package aws

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent/types"
	"github.com/entigolabs/entigo-flow-agent/model"
)

type flowAPI interface {
	CreateFlow(ctx context.Context, params *bedrockagent.CreateFlowInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.CreateFlowOutput, error)
	PrepareFlow(ctx context.Context, params *bedrockagent.PrepareFlowInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.PrepareFlowOutput, error)
	GetFlow(ctx context.Context, params *bedrockagent.GetFlowInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.GetFlowOutput, error)
}

type Flows struct {
	client flowAPI
}

func NewFlows(config aws.Config) *Flows {
	return &Flows{
		client: bedrockagent.NewFromConfig(config),
	}
}

func (f *Flows) CreateFlow(ctx context.Context, request model.FlowRequest) (model.Deployment, error) {
	definition, err := toFlowDefinition(request.Definition)
	if err != nil {
		return model.Deployment{}, model.NewRemoteError("CreateFlow", model.ErrorKindValidation,
			fmt.Errorf("invalid flow definition: %w", err))
	}
	output, err := f.client.CreateFlow(ctx, &bedrockagent.CreateFlowInput{
		Name:             aws.String(request.Name),
		Description:      optionalString(request.Description),
		ExecutionRoleArn: aws.String(request.ExecutionRoleArn),
		Definition:       definition,
		Tags:             request.Tags,
		ClientToken:      optionalString(request.ClientToken),
	})
	if err != nil {
		return model.Deployment{}, classify("CreateFlow", err)
	}
	return model.Deployment{
		FlowID:           aws.ToString(output.Id),
		FlowArn:          aws.ToString(output.Arn),
		Status:           string(output.Status),
		ExecutionRoleArn: aws.ToString(output.ExecutionRoleArn),
	}, nil
}

func (f *Flows) PrepareFlow(ctx context.Context, flowID string) (model.FlowStatus, error) {
	output, err := f.client.PrepareFlow(ctx, &bedrockagent.PrepareFlowInput{
		FlowIdentifier: aws.String(flowID),
	})
	if err != nil {
		return "", classify("PrepareFlow", err)
	}
	slog.Debug(fmt.Sprintf("Flow %s prepare status: %s", flowID, output.Status))
	return model.FlowStatus(output.Status), nil
}

func (f *Flows) GetFlowState(ctx context.Context, flowID string) (model.FlowState, error) {
	output, err := f.client.GetFlow(ctx, &bedrockagent.GetFlowInput{
		FlowIdentifier: aws.String(flowID),
	})
	if err != nil {
		return model.FlowState{}, classify("GetFlow", err)
	}
	return model.FlowState{
		Status:      model.FlowStatus(output.Status),
		Validations: validationMessages(output.Validations),
	}, nil
}

func validationMessages(validations []types.FlowValidation) []string {
	messages := make([]string, 0, len(validations))
	for _, validation := range validations {
		messages = append(messages, fmt.Sprintf("%s: %s", validation.Severity, aws.ToString(validation.Message)))
	}
	return messages
}
