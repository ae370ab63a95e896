package model

type FlowRequest struct {
	Name             string
	Description      string
	ExecutionRoleArn string
	Definition       FlowDefinition
	Tags             map[string]string
	ClientToken      string
}
