package test

import (
	"context"

	"github.com/entigolabs/entigo-flow-agent/model"
	"github.com/stretchr/testify/mock"
)

type MockAccount struct {
	mock.Mock
}

func (m *MockAccount) GetAccountID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type MockFlows struct {
	mock.Mock
}

func (m *MockFlows) CreateFlow(ctx context.Context, request model.FlowRequest) (model.Deployment, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(model.Deployment), args.Error(1)
}

func (m *MockFlows) PrepareFlow(ctx context.Context, flowID string) (model.FlowStatus, error) {
	args := m.Called(ctx, flowID)
	return args.Get(0).(model.FlowStatus), args.Error(1)
}

func (m *MockFlows) GetFlowState(ctx context.Context, flowID string) (model.FlowState, error) {
	args := m.Called(ctx, flowID)
	return args.Get(0).(model.FlowState), args.Error(1)
}

type MockRoles struct {
	mock.Mock
}

func (m *MockRoles) FindRoleByPrefix(ctx context.Context, prefix string) (string, error) {
	args := m.Called(ctx, prefix)
	return args.String(0), args.Error(1)
}

type MockInvoker struct {
	mock.Mock
}

func (m *MockInvoker) InvokeFlow(ctx context.Context, request model.InvocationRequest) (*model.Invocation, error) {
	args := m.Called(ctx, request)
	invocation, _ := args.Get(0).(*model.Invocation)
	return invocation, args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Message(messageType model.MessageType, message string) {
	m.Called(messageType, message)
}

func (m *MockNotifier) Deployment(deployment model.Deployment) {
	m.Called(deployment)
}

func (m *MockNotifier) TestResult(invocation model.Invocation) {
	m.Called(invocation)
}
