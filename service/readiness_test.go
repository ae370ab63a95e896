package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/entigolabs/entigo-flow-agent/model"
	"github.com/entigolabs/entigo-flow-agent/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestWaiter(flows FlowStateGetter, timeout time.Duration) *ReadinessWaiter {
	waiter := NewReadinessWaiter(flows, timeout, 0)
	waiter.newBackOff = func() backoff.BackOff {
		return backoff.NewConstantBackOff(time.Millisecond)
	}
	return waiter
}

func TestWaitUntilPrepared(t *testing.T) {
	captureLog(t)
	flows := new(test.MockFlows)
	flows.On("GetFlowState", mock.Anything, "FLOW").Return(model.FlowState{Status: model.FlowStatusPreparing}, nil).Twice()
	flows.On("GetFlowState", mock.Anything, "FLOW").Return(model.FlowState{Status: model.FlowStatusPrepared}, nil).Once()

	require.NoError(t, newTestWaiter(flows, time.Second).Wait(context.Background(), "FLOW"))
	flows.AssertNumberOfCalls(t, "GetFlowState", 3)
}

func TestWaitPreparationFailed(t *testing.T) {
	captureLog(t)
	flows := new(test.MockFlows)
	flows.On("GetFlowState", mock.Anything, "FLOW").Return(model.FlowState{
		Status:      model.FlowStatusFailed,
		Validations: []string{"Error: agent alias not found"},
	}, nil)

	err := newTestWaiter(flows, time.Second).Wait(context.Background(), "FLOW")
	require.Error(t, err)
	assert.Equal(t, model.ErrorKindValidation, model.KindOf(err))
	assert.Contains(t, err.Error(), "agent alias not found")
	flows.AssertNumberOfCalls(t, "GetFlowState", 1)
}

func TestWaitTimeout(t *testing.T) {
	captureLog(t)
	flows := new(test.MockFlows)
	flows.On("GetFlowState", mock.Anything, "FLOW").Return(model.FlowState{Status: model.FlowStatusPreparing}, nil)

	err := newTestWaiter(flows, 30*time.Millisecond).Wait(context.Background(), "FLOW")
	require.Error(t, err)
	assert.Equal(t, model.ErrorKindTimeout, model.KindOf(err))
}

func TestWaitRetriesThrottling(t *testing.T) {
	captureLog(t)
	flows := new(test.MockFlows)
	flows.On("GetFlowState", mock.Anything, "FLOW").
		Return(model.FlowState{}, model.NewRemoteError("GetFlow", model.ErrorKindThrottling, errors.New("slow down"))).Once()
	flows.On("GetFlowState", mock.Anything, "FLOW").Return(model.FlowState{Status: model.FlowStatusPrepared}, nil).Once()

	require.NoError(t, newTestWaiter(flows, time.Second).Wait(context.Background(), "FLOW"))
}

func TestWaitStopsOnAuthError(t *testing.T) {
	captureLog(t)
	flows := new(test.MockFlows)
	flows.On("GetFlowState", mock.Anything, "FLOW").
		Return(model.FlowState{}, model.NewRemoteError("GetFlow", model.ErrorKindAuth, errors.New("denied")))

	err := newTestWaiter(flows, time.Second).Wait(context.Background(), "FLOW")
	assert.Equal(t, model.ErrorKindAuth, model.KindOf(err))
	flows.AssertNumberOfCalls(t, "GetFlowState", 1)
}

func TestWaitFixedDelay(t *testing.T) {
	captureLog(t)
	flows := new(test.MockFlows)
	waiter := NewReadinessWaiter(flows, 0, 5*time.Millisecond)

	start := time.Now()
	require.NoError(t, waiter.Wait(context.Background(), "FLOW"))
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
	flows.AssertNotCalled(t, "GetFlowState", mock.Anything, mock.Anything)
}

func TestWaitFixedDelayCancelled(t *testing.T) {
	captureLog(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewReadinessWaiter(new(test.MockFlows), 0, time.Hour).Wait(ctx, "FLOW")
	assert.ErrorIs(t, err, context.Canceled)
}
