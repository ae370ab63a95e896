package common

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
)

type HttpClient struct {
	client     *http.Client
	retries    int
	newBackOff func() backoff.BackOff
}

func NewHttpClient(timeout time.Duration, retries int) *HttpClient {
	if retries < 1 {
		retries = 1
	}
	return &HttpClient{
		client: &http.Client{
			Timeout: timeout,
		},
		retries: retries,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 2 * time.Second
			return b
		},
	}
}

func (c *HttpClient) Post(ctx context.Context, url string, headers http.Header, object any) (*http.Response, error) {
	var payload []byte
	if object != nil {
		var err error
		payload, err = json.Marshal(object)
		if err != nil {
			return nil, err
		}
	}
	return c.doWithRetry(ctx, http.MethodPost, url, headers, payload)
}

// doWithRetry rebuilds the request for every attempt so the body is resent.
func (c *HttpClient) doWithRetry(ctx context.Context, method, url string, headers http.Header, payload []byte) (*http.Response, error) {
	operation := func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.Header = headers.Clone()
		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode/100 != 2 {
			return nil, getFailedResponseError(resp)
		}
		return resp, nil
	}
	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(uint(c.retries)),
		backoff.WithNotify(func(err error, next time.Duration) {
			slog.Debug(fmt.Sprintf("Retrying %s %s in %s: %v", method, url, next, err))
		}))
}

func getFailedResponseError(resp *http.Response) error {
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("request failed with status code %d, body: %s", resp.StatusCode, body)
}
