package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/entigolabs/entigo-flow-agent/model"
)

var errNotPrepared = errors.New("flow is not prepared yet")

// ReadinessWaiter blocks until a prepared flow can be invoked. With a zero
// timeout it falls back to sleeping for a fixed delay.
type ReadinessWaiter struct {
	flows      FlowStateGetter
	timeout    time.Duration
	delay      time.Duration
	newBackOff func() backoff.BackOff
}

func NewReadinessWaiter(flows FlowStateGetter, timeout, delay time.Duration) *ReadinessWaiter {
	return &ReadinessWaiter{
		flows:      flows,
		timeout:    timeout,
		delay:      delay,
		newBackOff: newExponentialBackOff,
	}
}

func newExponentialBackOff() backoff.BackOff {
	exponential := backoff.NewExponentialBackOff()
	exponential.InitialInterval = 2 * time.Second
	exponential.MaxInterval = 15 * time.Second
	return exponential
}

func (w *ReadinessWaiter) Wait(ctx context.Context, flowID string) error {
	if w.timeout == 0 {
		return w.sleep(ctx)
	}
	log.Printf("Waiting up to %s for flow %s to be prepared...\n", w.timeout, flowID)
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	_, err := backoff.Retry(ctx, func() (model.FlowState, error) {
		return w.checkState(ctx, flowID)
	},
		backoff.WithBackOff(w.newBackOff()),
		backoff.WithMaxElapsedTime(w.timeout),
		backoff.WithNotify(func(err error, next time.Duration) {
			slog.Debug(fmt.Sprintf("Flow %s not ready: %s, next check in %s", flowID, err, next))
		}))
	if err == nil {
		log.Printf("Flow %s is prepared\n", flowID)
		return nil
	}
	if errors.Is(err, errNotPrepared) || errors.Is(err, context.DeadlineExceeded) {
		return model.NewRemoteError("GetFlow", model.ErrorKindTimeout,
			fmt.Errorf("flow %s was not prepared within %s: %w", flowID, w.timeout, err))
	}
	return err
}

func (w *ReadinessWaiter) checkState(ctx context.Context, flowID string) (model.FlowState, error) {
	state, err := w.flows.GetFlowState(ctx, flowID)
	if err != nil {
		switch model.KindOf(err) {
		case model.ErrorKindThrottling, model.ErrorKindNetwork:
			return state, err
		}
		return state, backoff.Permanent(err)
	}
	switch state.Status {
	case model.FlowStatusPrepared:
		return state, nil
	case model.FlowStatusFailed:
		return state, backoff.Permanent(model.NewRemoteError("GetFlow", model.ErrorKindValidation,
			fmt.Errorf("flow %s preparation failed: %s", flowID, strings.Join(state.Validations, "; "))))
	}
	return state, fmt.Errorf("%w, status %s", errNotPrepared, state.Status)
}

func (w *ReadinessWaiter) sleep(ctx context.Context) error {
	log.Printf("Waiting %s for flow to be ready...\n", w.delay)
	timer := time.NewTimer(w.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
