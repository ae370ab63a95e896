package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/entigolabs/entigo-flow-agent/common"
	"github.com/entigolabs/entigo-flow-agent/model"
)

const urlErrorFormat = "error joining url: %v"

type MessageRequest struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type DeploymentRequest struct {
	FlowID           string `json:"flow_id"`
	FlowArn          string `json:"flow_arn"`
	Status           string `json:"status"`
	ExecutionRoleArn string `json:"execution_role_arn,omitempty"`
	PrepareInitiated bool   `json:"prepare_initiated"`
}

type API struct {
	model.BaseNotifier
	ctx    context.Context
	client *common.HttpClient
	url    string
	key    string
}

func newApi(ctx context.Context, baseNotifier model.BaseNotifier, apiUrl, key string) *API {
	return &API{
		BaseNotifier: baseNotifier,
		ctx:          ctx,
		client:       common.NewHttpClient(30*time.Second, 2),
		url:          apiUrl,
		key:          key,
	}
}

func (a *API) Message(messageType model.MessageType, message string) error {
	requestType := "INFO"
	if messageType == model.MessageTypeFailure {
		requestType = "ERROR"
	}
	return a.post(MessageRequest{Type: requestType, Message: message}, "message")
}

func (a *API) Deployment(deployment model.Deployment) error {
	return a.post(DeploymentRequest{
		FlowID:           deployment.FlowID,
		FlowArn:          deployment.FlowArn,
		Status:           deployment.Status,
		ExecutionRoleArn: deployment.ExecutionRoleArn,
		PrepareInitiated: deployment.PrepareInitiated,
	}, "flows")
}

func (a *API) TestResult(invocation model.Invocation) error {
	return a.post(invocation, "flows", invocation.FlowID, "tests")
}

func (a *API) post(body any, elem ...string) error {
	fullUrl, err := url.JoinPath(a.url, elem...)
	if err != nil {
		return fmt.Errorf(urlErrorFormat, err)
	}
	resp, err := a.client.Post(a.ctx, fullUrl, a.getHeaders(), body)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

func (a *API) getHeaders() http.Header {
	headers := http.Header{
		"Content-Type": []string{"application/json"},
	}
	if a.key != "" {
		headers.Set("Api-Key", a.key)
	}
	return headers
}
