package service

import (
	"context"

	"github.com/entigolabs/entigo-flow-agent/model"
)

type AccountResolver interface {
	GetAccountID(ctx context.Context) (string, error)
}

type DefinitionLoader interface {
	Load(ctx context.Context, source string) ([]byte, error)
}

type FlowManager interface {
	CreateFlow(ctx context.Context, request model.FlowRequest) (model.Deployment, error)
	PrepareFlow(ctx context.Context, flowID string) (model.FlowStatus, error)
	FlowStateGetter
}

type FlowStateGetter interface {
	GetFlowState(ctx context.Context, flowID string) (model.FlowState, error)
}

type RoleFinder interface {
	FindRoleByPrefix(ctx context.Context, prefix string) (string, error)
}

type FlowInvoker interface {
	InvokeFlow(ctx context.Context, request model.InvocationRequest) (*model.Invocation, error)
}
