package model

type Deployment struct {
	FlowID           string
	FlowArn          string
	Status           string
	ExecutionRoleArn string
	PrepareInitiated bool
}

type FlowStatus string

const (
	FlowStatusPrepared    FlowStatus = "Prepared"
	FlowStatusPreparing   FlowStatus = "Preparing"
	FlowStatusNotPrepared FlowStatus = "NotPrepared"
	FlowStatusFailed      FlowStatus = "Failed"
)

// FlowState is the readiness snapshot returned by the control plane.
type FlowState struct {
	Status      FlowStatus
	Validations []string
}

type InvocationRequest struct {
	FlowID     string
	AliasID    string
	NodeName   string
	OutputName string
	Document   any
}

type Invocation struct {
	FlowID           string             `json:"flowId"`
	Query            string             `json:"query"`
	ExecutionID      string             `json:"executionId,omitempty"`
	Outputs          []InvocationOutput `json:"outputs"`
	CompletionReason string             `json:"completionReason,omitempty"`
	// InputRequests names the nodes that asked for another conversation turn.
	InputRequests []string `json:"inputRequests,omitempty"`
	Traces        int      `json:"traces"`
}

type InvocationOutput struct {
	NodeName string `json:"nodeName"`
	NodeType string `json:"nodeType,omitempty"`
	Document any    `json:"document"`
}
