package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/entigolabs/entigo-flow-agent/common"
	"github.com/entigolabs/entigo-flow-agent/definition"
	"github.com/entigolabs/entigo-flow-agent/model"
	"github.com/entigolabs/entigo-flow-agent/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type runnerFixture struct {
	account  *test.MockAccount
	flows    *test.MockFlows
	invoker  *test.MockInvoker
	notifier *test.MockNotifier
	flags    *common.Flags
	out      *bytes.Buffer
}

func newRunnerFixture(t *testing.T, testFlag bool) *runnerFixture {
	test.ChangeRunDir()
	flags := &common.Flags{Definition: test.FlowDefinitionFile, Test: testFlag,
		Flow: common.Flow{ReadyTimeout: time.Second}}
	require.NoError(t, flags.Setup(common.DeployCommand))
	return &runnerFixture{
		account:  new(test.MockAccount),
		flows:    new(test.MockFlows),
		invoker:  new(test.MockInvoker),
		notifier: new(test.MockNotifier),
		flags:    flags,
		out:      new(bytes.Buffer),
	}
}

func (f *runnerFixture) runner() *Runner {
	deployer := NewDeployer(f.flows, nil, "")
	waiter := newTestWaiter(f.flows, f.flags.Flow.ReadyTimeout)
	tester := NewTester(f.invoker, f.flags.Flow)
	tester.out = f.out
	return NewRunner(f.account, definition.NewLoader(nil), deployer, waiter, tester, f.notifier, f.flags)
}

func TestRunDeploysAndTests(t *testing.T) {
	captureLog(t)
	fixture := newRunnerFixture(t, true)
	accountID := test.AccountID()
	created := test.Deployment(accountID)
	invocation := &model.Invocation{FlowID: created.FlowID, CompletionReason: "SUCCESS"}
	fixture.account.On("GetAccountID", mock.Anything).Return(accountID, nil)
	fixture.flows.On("CreateFlow", mock.Anything, mock.MatchedBy(func(request model.FlowRequest) bool {
		arns := request.Definition.AgentAliasArns()
		return request.Name == "iGamingPlayerInquiryFlow" && len(arns) == 1 &&
			arns[0] == "arn:aws:bedrock:us-east-1:"+accountID+":agent-alias/PLAYERSUPPORT/TSTALIASID"
	})).Return(created, nil)
	fixture.flows.On("PrepareFlow", mock.Anything, created.FlowID).Return(model.FlowStatusPreparing, nil)
	fixture.flows.On("GetFlowState", mock.Anything, created.FlowID).Return(model.FlowState{Status: model.FlowStatusPrepared}, nil)
	fixture.invoker.On("InvokeFlow", mock.Anything, mock.MatchedBy(func(request model.InvocationRequest) bool {
		return request.FlowID == created.FlowID && request.Document == common.DefaultTestQuery
	})).Return(invocation, nil)
	fixture.notifier.On("Deployment", mock.Anything).Return()
	fixture.notifier.On("TestResult", mock.Anything).Return()

	result, err := fixture.runner().Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, accountID, result.AccountID)
	assert.NoError(t, result.DeployErr)
	assert.NoError(t, result.TestErr)
	assert.Equal(t, created.FlowID, result.Deployment.FlowID)
	assert.Equal(t, "SUCCESS", result.Invocation.CompletionReason)
	assert.Contains(t, fixture.out.String(), "Test Query")
	fixture.flows.AssertExpectations(t)
	fixture.invoker.AssertExpectations(t)
	fixture.notifier.AssertExpectations(t)
}

func TestRunWithoutTestFlagSkipsInvocation(t *testing.T) {
	captureLog(t)
	fixture := newRunnerFixture(t, false)
	created := test.Deployment(test.AccountID())
	fixture.account.On("GetAccountID", mock.Anything).Return(test.AccountID(), nil)
	fixture.flows.On("CreateFlow", mock.Anything, mock.Anything).Return(created, nil)
	fixture.flows.On("PrepareFlow", mock.Anything, created.FlowID).Return(model.FlowStatusPreparing, nil)
	fixture.notifier.On("Deployment", mock.Anything).Return()

	result, err := fixture.runner().Run(context.Background())
	require.NoError(t, err)
	assert.Nil(t, result.Invocation)
	fixture.flows.AssertNotCalled(t, "GetFlowState", mock.Anything, mock.Anything)
	fixture.invoker.AssertNotCalled(t, "InvokeFlow", mock.Anything, mock.Anything)
}

func TestRunIdentityFailureStopsBeforeCreation(t *testing.T) {
	captureLog(t)
	fixture := newRunnerFixture(t, true)
	fixture.account.On("GetAccountID", mock.Anything).
		Return("", model.NewRemoteError("GetCallerIdentity", model.ErrorKindAuth, errors.New("no credentials")))

	result, err := fixture.runner().Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, model.ErrorKindAuth, model.KindOf(err))
	fixture.flows.AssertNotCalled(t, "CreateFlow", mock.Anything, mock.Anything)
	fixture.notifier.AssertNotCalled(t, "Message", mock.Anything, mock.Anything)
}

func TestRunCreationFailureNeverTests(t *testing.T) {
	captureLog(t)
	fixture := newRunnerFixture(t, true)
	fixture.account.On("GetAccountID", mock.Anything).Return(test.AccountID(), nil)
	fixture.flows.On("CreateFlow", mock.Anything, mock.Anything).
		Return(model.Deployment{}, model.NewRemoteError("CreateFlow", model.ErrorKindConflict, errors.New("name taken")))
	fixture.notifier.On("Message", model.MessageTypeFailure, mock.AnythingOfType("string")).Return()

	result, err := fixture.runner().Run(context.Background())
	require.NoError(t, err)
	assert.Nil(t, result.Deployment)
	assert.Equal(t, model.ErrorKindConflict, model.KindOf(result.DeployErr))
	fixture.invoker.AssertNotCalled(t, "InvokeFlow", mock.Anything, mock.Anything)
	fixture.notifier.AssertExpectations(t)
}

// Preparation failing after a successful creation still leaves the flow id
// reported to the operator while the run treats the deployment as failed.
func TestRunPrepareFailureReportsFlowButSkipsTest(t *testing.T) {
	output := captureLog(t)
	fixture := newRunnerFixture(t, true)
	created := test.Deployment(test.AccountID())
	fixture.account.On("GetAccountID", mock.Anything).Return(test.AccountID(), nil)
	fixture.flows.On("CreateFlow", mock.Anything, mock.Anything).Return(created, nil)
	fixture.flows.On("PrepareFlow", mock.Anything, created.FlowID).
		Return(model.FlowStatus(""), model.NewRemoteError("PrepareFlow", model.ErrorKindUnknown, errors.New("internal")))
	fixture.notifier.On("Message", model.MessageTypeFailure, mock.MatchedBy(func(message string) bool {
		return bytes.Contains([]byte(message), []byte(created.FlowID))
	})).Return()

	result, err := fixture.runner().Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result.Deployment)
	assert.Equal(t, created.FlowID, result.Deployment.FlowID)
	assert.Error(t, result.DeployErr)
	assert.Contains(t, output.String(), "Flow ID: "+created.FlowID)
	fixture.invoker.AssertNotCalled(t, "InvokeFlow", mock.Anything, mock.Anything)
	fixture.notifier.AssertExpectations(t)
}

func TestRunNotReadySkipsTest(t *testing.T) {
	captureLog(t)
	fixture := newRunnerFixture(t, true)
	created := test.Deployment(test.AccountID())
	fixture.account.On("GetAccountID", mock.Anything).Return(test.AccountID(), nil)
	fixture.flows.On("CreateFlow", mock.Anything, mock.Anything).Return(created, nil)
	fixture.flows.On("PrepareFlow", mock.Anything, created.FlowID).Return(model.FlowStatusPreparing, nil)
	fixture.flows.On("GetFlowState", mock.Anything, created.FlowID).
		Return(model.FlowState{Status: model.FlowStatusFailed, Validations: []string{"Error: unknown alias"}}, nil)
	fixture.notifier.On("Deployment", mock.Anything).Return()
	fixture.notifier.On("Message", model.MessageTypeFailure, mock.AnythingOfType("string")).Return()

	result, err := fixture.runner().Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.ErrorKindValidation, model.KindOf(result.TestErr))
	fixture.invoker.AssertNotCalled(t, "InvokeFlow", mock.Anything, mock.Anything)
}

func TestRunMissingDefinition(t *testing.T) {
	captureLog(t)
	fixture := newRunnerFixture(t, false)
	fixture.flags.Definition = "missing_flow.json"
	fixture.account.On("GetAccountID", mock.Anything).Return(test.AccountID(), nil)

	_, err := fixture.runner().Run(context.Background())
	require.Error(t, err)
	fixture.flows.AssertNotCalled(t, "CreateFlow", mock.Anything, mock.Anything)
}
