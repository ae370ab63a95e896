package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/entigolabs/entigo-flow-agent/common"
	"github.com/entigolabs/entigo-flow-agent/model"
)

type Tester struct {
	invoker  FlowInvoker
	settings common.Flow
	out      io.Writer
}

func NewTester(invoker FlowInvoker, settings common.Flow) *Tester {
	return &Tester{
		invoker:  invoker,
		settings: settings,
		out:      os.Stdout,
	}
}

// Test invokes the flow once through the test alias and prints the response
// as received. The response is not checked.
func (t *Tester) Test(ctx context.Context, flowID, query string) (*model.Invocation, error) {
	invocation, err := t.invoker.InvokeFlow(ctx, model.InvocationRequest{
		FlowID:     flowID,
		AliasID:    t.settings.Alias,
		NodeName:   t.settings.InputNode,
		OutputName: t.settings.InputOutput,
		Document:   query,
	})
	if err != nil {
		common.PrintError(fmt.Errorf("error testing flow: %w", err))
		return nil, err
	}
	invocation.Query = query
	response, err := json.MarshalIndent(invocation, "", "  ")
	if err != nil {
		return invocation, fmt.Errorf("failed to format flow response: %w", err)
	}
	_, _ = fmt.Fprintf(t.out, "\nTest Query: %s\n", query)
	_, _ = fmt.Fprintf(t.out, "Response: %s\n", response)
	return invocation, nil
}
