package aws

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent/types"
	"github.com/entigolabs/entigo-flow-agent/model"
)

func toFlowDefinition(definition model.FlowDefinition) (*types.FlowDefinition, error) {
	nodes := make([]types.FlowNode, 0, len(definition.Nodes))
	for _, node := range definition.Nodes {
		flowNode, err := toFlowNode(node)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, flowNode)
	}
	connections := make([]types.FlowConnection, 0, len(definition.Connections))
	for _, connection := range definition.Connections {
		flowConnection, err := toFlowConnection(connection)
		if err != nil {
			return nil, err
		}
		connections = append(connections, flowConnection)
	}
	return &types.FlowDefinition{
		Nodes:       nodes,
		Connections: connections,
	}, nil
}

func toFlowNode(node model.FlowNode) (types.FlowNode, error) {
	configuration, err := toNodeConfiguration(node)
	if err != nil {
		return types.FlowNode{}, err
	}
	inputs := make([]types.FlowNodeInput, 0, len(node.Inputs))
	for _, input := range node.Inputs {
		inputs = append(inputs, types.FlowNodeInput{
			Name:       aws.String(input.Name),
			Type:       types.FlowNodeIODataType(input.Type),
			Expression: optionalString(input.Expression),
			Category:   types.FlowNodeInputCategory(input.Category),
		})
	}
	outputs := make([]types.FlowNodeOutput, 0, len(node.Outputs))
	for _, output := range node.Outputs {
		outputs = append(outputs, types.FlowNodeOutput{
			Name: aws.String(output.Name),
			Type: types.FlowNodeIODataType(output.Type),
		})
	}
	return types.FlowNode{
		Name:          aws.String(node.Name),
		Type:          types.FlowNodeType(node.Type),
		Configuration: configuration,
		Inputs:        inputs,
		Outputs:       outputs,
	}, nil
}

func toNodeConfiguration(node model.FlowNode) (types.FlowNodeConfiguration, error) {
	config := node.Configuration
	switch node.Type {
	case model.NodeTypeInput:
		return &types.FlowNodeConfigurationMemberInput{Value: types.InputFlowNodeConfiguration{}}, nil
	case model.NodeTypeOutput:
		return &types.FlowNodeConfigurationMemberOutput{Value: types.OutputFlowNodeConfiguration{}}, nil
	case model.NodeTypeIterator:
		return &types.FlowNodeConfigurationMemberIterator{Value: types.IteratorFlowNodeConfiguration{}}, nil
	case model.NodeTypeCollector:
		return &types.FlowNodeConfigurationMemberCollector{Value: types.CollectorFlowNodeConfiguration{}}, nil
	case model.NodeTypeLoopInput:
		return &types.FlowNodeConfigurationMemberLoopInput{Value: types.LoopInputFlowNodeConfiguration{}}, nil
	case model.NodeTypeInlineCode:
		if config.InlineCode == nil {
			return nil, missingConfiguration(node, "inlineCode")
		}
		return &types.FlowNodeConfigurationMemberInlineCode{Value: types.InlineCodeFlowNodeConfiguration{
			Code:     aws.String(config.InlineCode.Code),
			Language: types.SupportedLanguages(config.InlineCode.Language),
		}}, nil
	case model.NodeTypeStorage:
		if config.Storage == nil || config.Storage.ServiceConfiguration.S3 == nil {
			return nil, missingConfiguration(node, "storage")
		}
		return &types.FlowNodeConfigurationMemberStorage{Value: types.StorageFlowNodeConfiguration{
			ServiceConfiguration: &types.StorageFlowNodeServiceConfigurationMemberS3{Value: types.StorageFlowNodeS3Configuration{
				BucketName: aws.String(config.Storage.ServiceConfiguration.S3.BucketName),
			}},
		}}, nil
	case model.NodeTypeRetrieval:
		if config.Retrieval == nil || config.Retrieval.ServiceConfiguration.S3 == nil {
			return nil, missingConfiguration(node, "retrieval")
		}
		return &types.FlowNodeConfigurationMemberRetrieval{Value: types.RetrievalFlowNodeConfiguration{
			ServiceConfiguration: &types.RetrievalFlowNodeServiceConfigurationMemberS3{Value: types.RetrievalFlowNodeS3Configuration{
				BucketName: aws.String(config.Retrieval.ServiceConfiguration.S3.BucketName),
			}},
		}}, nil
	case model.NodeTypeLoop:
		if config.Loop == nil || config.Loop.Definition == nil {
			return nil, missingConfiguration(node, "loop")
		}
		definition, err := toFlowDefinition(*config.Loop.Definition)
		if err != nil {
			return nil, fmt.Errorf("loop node %s: %w", node.Name, err)
		}
		return &types.FlowNodeConfigurationMemberLoop{Value: types.LoopFlowNodeConfiguration{
			Definition: definition,
		}}, nil
	case model.NodeTypeLoopController:
		if config.LoopController == nil {
			return nil, missingConfiguration(node, "loopController")
		}
		controller := types.LoopControllerFlowNodeConfiguration{
			MaxIterations: config.LoopController.MaxIterations,
		}
		if condition := config.LoopController.ContinueCondition; condition != nil {
			controller.ContinueCondition = &types.FlowCondition{
				Name:       aws.String(condition.Name),
				Expression: optionalString(condition.Expression),
			}
		}
		return &types.FlowNodeConfigurationMemberLoopController{Value: controller}, nil
	case model.NodeTypeAgent:
		if config.Agent == nil {
			return nil, missingConfiguration(node, "agent")
		}
		return &types.FlowNodeConfigurationMemberAgent{Value: types.AgentFlowNodeConfiguration{
			AgentAliasArn: aws.String(config.Agent.AgentAliasArn),
		}}, nil
	case model.NodeTypeKnowledgeBase:
		if config.KnowledgeBase == nil {
			return nil, missingConfiguration(node, "knowledgeBase")
		}
		knowledgeBase := config.KnowledgeBase
		kbConfig := types.KnowledgeBaseFlowNodeConfiguration{
			KnowledgeBaseId:        aws.String(knowledgeBase.KnowledgeBaseId),
			ModelId:                optionalString(knowledgeBase.ModelId),
			NumberOfResults:        knowledgeBase.NumberOfResults,
			GuardrailConfiguration: toGuardrail(knowledgeBase.GuardrailConfiguration),
			InferenceConfiguration: toInference(knowledgeBase.InferenceConfiguration),
		}
		if knowledgeBase.PromptTemplate != nil {
			kbConfig.PromptTemplate = &types.KnowledgeBasePromptTemplate{
				TextPromptTemplate: aws.String(knowledgeBase.PromptTemplate.TextPromptTemplate),
			}
		}
		return &types.FlowNodeConfigurationMemberKnowledgeBase{Value: kbConfig}, nil
	case model.NodeTypeLambdaFunction:
		if config.LambdaFunction == nil {
			return nil, missingConfiguration(node, "lambdaFunction")
		}
		return &types.FlowNodeConfigurationMemberLambdaFunction{Value: types.LambdaFunctionFlowNodeConfiguration{
			LambdaArn: aws.String(config.LambdaFunction.LambdaArn),
		}}, nil
	case model.NodeTypeLex:
		if config.Lex == nil {
			return nil, missingConfiguration(node, "lex")
		}
		return &types.FlowNodeConfigurationMemberLex{Value: types.LexFlowNodeConfiguration{
			BotAliasArn: aws.String(config.Lex.BotAliasArn),
			LocaleId:    aws.String(config.Lex.LocaleId),
		}}, nil
	case model.NodeTypeCondition:
		if config.Condition == nil {
			return nil, missingConfiguration(node, "condition")
		}
		conditions := make([]types.FlowCondition, 0, len(config.Condition.Conditions))
		for _, condition := range config.Condition.Conditions {
			conditions = append(conditions, types.FlowCondition{
				Name:       aws.String(condition.Name),
				Expression: optionalString(condition.Expression),
			})
		}
		return &types.FlowNodeConfigurationMemberCondition{Value: types.ConditionFlowNodeConfiguration{
			Conditions: conditions,
		}}, nil
	case model.NodeTypePrompt:
		if config.Prompt == nil {
			return nil, missingConfiguration(node, "prompt")
		}
		source, err := toPromptSource(node.Name, config.Prompt.SourceConfiguration)
		if err != nil {
			return nil, err
		}
		return &types.FlowNodeConfigurationMemberPrompt{Value: types.PromptFlowNodeConfiguration{
			SourceConfiguration:    source,
			GuardrailConfiguration: toGuardrail(config.Prompt.GuardrailConfiguration),
		}}, nil
	}
	return nil, &model.UnsupportedNodeError{Node: node.Name, Type: node.Type}
}

func toPromptSource(nodeName string, source model.PromptSourceConfiguration) (types.PromptFlowNodeSourceConfiguration, error) {
	if source.Resource != nil {
		return &types.PromptFlowNodeSourceConfigurationMemberResource{Value: types.PromptFlowNodeResourceConfiguration{
			PromptArn: aws.String(source.Resource.PromptArn),
		}}, nil
	}
	if source.Inline == nil || source.Inline.TemplateConfiguration.Text == nil {
		return nil, fmt.Errorf("prompt node %s needs a resource or an inline text template", nodeName)
	}
	templateType := types.PromptTemplateTypeText
	if source.Inline.TemplateType != "" {
		templateType = types.PromptTemplateType(source.Inline.TemplateType)
	}
	text := source.Inline.TemplateConfiguration.Text
	var variables []types.PromptInputVariable
	for _, variable := range text.InputVariables {
		variables = append(variables, types.PromptInputVariable{Name: aws.String(variable.Name)})
	}
	return &types.PromptFlowNodeSourceConfigurationMemberInline{Value: types.PromptFlowNodeInlineConfiguration{
		ModelId:      aws.String(source.Inline.ModelId),
		TemplateType: templateType,
		TemplateConfiguration: &types.PromptTemplateConfigurationMemberText{Value: types.TextPromptTemplateConfiguration{
			Text:           aws.String(text.Text),
			InputVariables: variables,
		}},
		InferenceConfiguration: toInference(source.Inline.InferenceConfiguration),
	}}, nil
}

func toGuardrail(guardrail *model.GuardrailConfiguration) *types.GuardrailConfiguration {
	if guardrail == nil {
		return nil
	}
	return &types.GuardrailConfiguration{
		GuardrailIdentifier: aws.String(guardrail.GuardrailIdentifier),
		GuardrailVersion:    optionalString(guardrail.GuardrailVersion),
	}
}

func toInference(inference *model.InferenceConfiguration) types.PromptInferenceConfiguration {
	if inference == nil || inference.Text == nil {
		return nil
	}
	return &types.PromptInferenceConfigurationMemberText{Value: types.PromptModelInferenceConfiguration{
		MaxTokens:     inference.Text.MaxTokens,
		StopSequences: inference.Text.StopSequences,
		Temperature:   inference.Text.Temperature,
		TopP:          inference.Text.TopP,
	}}
}

func toFlowConnection(connection model.FlowConnection) (types.FlowConnection, error) {
	flowConnection := types.FlowConnection{
		Name:   aws.String(connection.Name),
		Source: aws.String(connection.Source),
		Target: aws.String(connection.Target),
		Type:   types.FlowConnectionType(connection.Type),
	}
	switch connection.Type {
	case model.ConnectionTypeData:
		data := connection.Configuration.Data
		if data == nil {
			return flowConnection, fmt.Errorf("data connection %s has no data configuration", connection.Name)
		}
		flowConnection.Configuration = &types.FlowConnectionConfigurationMemberData{Value: types.FlowDataConnectionConfiguration{
			SourceOutput: aws.String(data.SourceOutput),
			TargetInput:  aws.String(data.TargetInput),
		}}
	case model.ConnectionTypeConditional:
		conditional := connection.Configuration.Conditional
		if conditional == nil {
			return flowConnection, fmt.Errorf("conditional connection %s has no conditional configuration", connection.Name)
		}
		flowConnection.Configuration = &types.FlowConnectionConfigurationMemberConditional{Value: types.FlowConditionalConnectionConfiguration{
			Condition: aws.String(conditional.Condition),
		}}
	default:
		return flowConnection, fmt.Errorf("connection %s has unsupported type %q", connection.Name, connection.Type)
	}
	return flowConnection, nil
}

func missingConfiguration(node model.FlowNode, member string) error {
	return fmt.Errorf("%s node %s has no %s configuration", node.Type, node.Name, member)
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return aws.String(value)
}
