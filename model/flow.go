package model

const (
	NodeTypeInput          = "Input"
	NodeTypeOutput         = "Output"
	NodeTypeAgent          = "Agent"
	NodeTypePrompt         = "Prompt"
	NodeTypeKnowledgeBase  = "KnowledgeBase"
	NodeTypeCondition      = "Condition"
	NodeTypeLambdaFunction = "LambdaFunction"
	NodeTypeLex            = "Lex"
	NodeTypeIterator       = "Iterator"
	NodeTypeCollector      = "Collector"
	NodeTypeInlineCode     = "InlineCode"
	NodeTypeStorage        = "Storage"
	NodeTypeRetrieval      = "Retrieval"
	NodeTypeLoop           = "Loop"
	NodeTypeLoopInput      = "LoopInput"
	NodeTypeLoopController = "LoopController"

	ConnectionTypeData        = "Data"
	ConnectionTypeConditional = "Conditional"
)

// FlowDocument is the local definition file: flow metadata plus the
// definition submitted to CreateFlow.
type FlowDocument struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Definition  FlowDefinition    `json:"definition"`
	Tags        map[string]string `json:"tags"`
}

type FlowDefinition struct {
	Nodes       []FlowNode       `json:"nodes"`
	Connections []FlowConnection `json:"connections"`
}

type FlowNode struct {
	Name          string                `json:"name"`
	Type          string                `json:"type"`
	Configuration FlowNodeConfiguration `json:"configuration"`
	Inputs        []FlowNodeInput       `json:"inputs,omitempty"`
	Outputs       []FlowNodeOutput      `json:"outputs,omitempty"`
}

type FlowNodeInput struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Expression string `json:"expression,omitempty"`
	Category   string `json:"category,omitempty"`
}

type FlowNodeOutput struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// FlowNodeConfiguration holds exactly one member matching the node type.
type FlowNodeConfiguration struct {
	Input          *EmptyConfiguration          `json:"input,omitempty"`
	Output         *EmptyConfiguration          `json:"output,omitempty"`
	Agent          *AgentConfiguration          `json:"agent,omitempty"`
	Prompt         *PromptConfiguration         `json:"prompt,omitempty"`
	KnowledgeBase  *KnowledgeBaseConfiguration  `json:"knowledgeBase,omitempty"`
	Condition      *ConditionConfiguration      `json:"condition,omitempty"`
	LambdaFunction *LambdaFunctionConfiguration `json:"lambdaFunction,omitempty"`
	Lex            *LexConfiguration            `json:"lex,omitempty"`
	Iterator       *EmptyConfiguration          `json:"iterator,omitempty"`
	Collector      *EmptyConfiguration          `json:"collector,omitempty"`
	InlineCode     *InlineCodeConfiguration     `json:"inlineCode,omitempty"`
	Storage        *S3ServiceConfiguration      `json:"storage,omitempty"`
	Retrieval      *S3ServiceConfiguration      `json:"retrieval,omitempty"`
	Loop           *LoopConfiguration           `json:"loop,omitempty"`
	LoopInput      *EmptyConfiguration          `json:"loopInput,omitempty"`
	LoopController *LoopControllerConfiguration `json:"loopController,omitempty"`
}

type EmptyConfiguration struct{}

type AgentConfiguration struct {
	AgentAliasArn string `json:"agentAliasArn"`
}

type PromptConfiguration struct {
	SourceConfiguration    PromptSourceConfiguration `json:"sourceConfiguration"`
	GuardrailConfiguration *GuardrailConfiguration   `json:"guardrailConfiguration,omitempty"`
}

type GuardrailConfiguration struct {
	GuardrailIdentifier string `json:"guardrailIdentifier"`
	GuardrailVersion    string `json:"guardrailVersion"`
}

type PromptSourceConfiguration struct {
	Resource *PromptResource `json:"resource,omitempty"`
	Inline   *PromptInline   `json:"inline,omitempty"`
}

type PromptResource struct {
	PromptArn string `json:"promptArn"`
}

type PromptInline struct {
	ModelId                string                  `json:"modelId"`
	TemplateType           string                  `json:"templateType"`
	TemplateConfiguration  PromptTemplateConfig    `json:"templateConfiguration"`
	InferenceConfiguration *InferenceConfiguration `json:"inferenceConfiguration,omitempty"`
}

type PromptTemplateConfig struct {
	Text *TextPromptTemplate `json:"text,omitempty"`
}

type TextPromptTemplate struct {
	Text           string                `json:"text"`
	InputVariables []PromptInputVariable `json:"inputVariables,omitempty"`
}

type PromptInputVariable struct {
	Name string `json:"name"`
}

type InferenceConfiguration struct {
	Text *ModelInferenceConfiguration `json:"text,omitempty"`
}

type ModelInferenceConfiguration struct {
	MaxTokens     *int32   `json:"maxTokens,omitempty"`
	StopSequences []string `json:"stopSequences,omitempty"`
	Temperature   *float32 `json:"temperature,omitempty"`
	TopP          *float32 `json:"topP,omitempty"`
}

type KnowledgeBaseConfiguration struct {
	KnowledgeBaseId        string                       `json:"knowledgeBaseId"`
	ModelId                string                       `json:"modelId,omitempty"`
	NumberOfResults        *int32                       `json:"numberOfResults,omitempty"`
	GuardrailConfiguration *GuardrailConfiguration      `json:"guardrailConfiguration,omitempty"`
	PromptTemplate         *KnowledgeBasePromptTemplate `json:"promptTemplate,omitempty"`
	InferenceConfiguration *InferenceConfiguration      `json:"inferenceConfiguration,omitempty"`
}

type KnowledgeBasePromptTemplate struct {
	TextPromptTemplate string `json:"textPromptTemplate"`
}

type InlineCodeConfiguration struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// S3ServiceConfiguration backs both Storage and Retrieval nodes.
type S3ServiceConfiguration struct {
	ServiceConfiguration S3Service `json:"serviceConfiguration"`
}

type S3Service struct {
	S3 *S3Bucket `json:"s3,omitempty"`
}

type S3Bucket struct {
	BucketName string `json:"bucketName"`
}

type LoopConfiguration struct {
	Definition *FlowDefinition `json:"definition"`
}

type LoopControllerConfiguration struct {
	ContinueCondition *FlowCondition `json:"continueCondition,omitempty"`
	MaxIterations     *int32         `json:"maxIterations,omitempty"`
}

type ConditionConfiguration struct {
	Conditions []FlowCondition `json:"conditions"`
}

type FlowCondition struct {
	Name       string `json:"name"`
	Expression string `json:"expression,omitempty"`
}

type LambdaFunctionConfiguration struct {
	LambdaArn string `json:"lambdaArn"`
}

type LexConfiguration struct {
	BotAliasArn string `json:"botAliasArn"`
	LocaleId    string `json:"localeId"`
}

type FlowConnection struct {
	Name          string                  `json:"name"`
	Source        string                  `json:"source"`
	Target        string                  `json:"target"`
	Type          string                  `json:"type"`
	Configuration ConnectionConfiguration `json:"configuration"`
}

type ConnectionConfiguration struct {
	Data        *DataConnection        `json:"data,omitempty"`
	Conditional *ConditionalConnection `json:"conditional,omitempty"`
}

type DataConnection struct {
	SourceOutput string `json:"sourceOutput"`
	TargetInput  string `json:"targetInput"`
}

type ConditionalConnection struct {
	Condition string `json:"condition"`
}

// AgentAliasArns lists the alias references of all Agent nodes in order.
func (d FlowDefinition) AgentAliasArns() []string {
	arns := make([]string, 0)
	for _, node := range d.Nodes {
		if node.Type != NodeTypeAgent || node.Configuration.Agent == nil {
			continue
		}
		arns = append(arns, node.Configuration.Agent.AgentAliasArn)
	}
	return arns
}
