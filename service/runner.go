package service

import (
	"context"
	"fmt"
	"log"

	"github.com/entigolabs/entigo-flow-agent/common"
	"github.com/entigolabs/entigo-flow-agent/definition"
	"github.com/entigolabs/entigo-flow-agent/model"
)

type Runner struct {
	account  AccountResolver
	loader   DefinitionLoader
	deployer *Deployer
	waiter   *ReadinessWaiter
	tester   *Tester
	notifier model.NotificationManager
	flags    *common.Flags
}

type Result struct {
	AccountID  string
	Deployment *model.Deployment
	DeployErr  error
	Invocation *model.Invocation
	TestErr    error
}

func NewRunner(account AccountResolver, loader DefinitionLoader, deployer *Deployer, waiter *ReadinessWaiter,
	tester *Tester, notifier model.NotificationManager, flags *common.Flags) *Runner {
	return &Runner{
		account:  account,
		loader:   loader,
		deployer: deployer,
		waiter:   waiter,
		tester:   tester,
		notifier: notifier,
		flags:    flags,
	}
}

// Run performs one create-and-test pass. Identity and definition errors are
// returned; deployment and test failures are reported and kept in the result.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	accountID, err := r.account.GetAccountID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get AWS account id: %w", err)
	}
	log.Printf("AWS account id: %s\n", accountID)

	flow, err := r.loadFlow(ctx, accountID)
	if err != nil {
		return nil, err
	}

	result := &Result{AccountID: accountID}
	result.Deployment, result.DeployErr = r.deployer.Deploy(ctx, flow, accountID)
	if result.DeployErr != nil {
		r.notifier.Message(model.MessageTypeFailure, deployFailureMessage(flow.Name, result))
		return result, nil
	}
	r.notifier.Deployment(*result.Deployment)

	if !r.flags.Test {
		return result, nil
	}
	result.Invocation, result.TestErr = r.test(ctx, result.Deployment.FlowID)
	if result.TestErr != nil {
		r.notifier.Message(model.MessageTypeFailure,
			fmt.Sprintf("Testing flow %s failed: %s", result.Deployment.FlowID, result.TestErr))
		return result, nil
	}
	r.notifier.TestResult(*result.Invocation)
	return result, nil
}

func (r *Runner) loadFlow(ctx context.Context, accountID string) (model.FlowDocument, error) {
	content, err := r.loader.Load(ctx, r.flags.Definition)
	if err != nil {
		return model.FlowDocument{}, fmt.Errorf("failed to load flow definition: %w", err)
	}
	content, patched, err := definition.PatchAgentAliases(content, accountID)
	if err != nil {
		return model.FlowDocument{}, err
	}
	log.Printf("Updated %d agent alias references with account id\n", patched)
	return definition.Decode(content)
}

func (r *Runner) test(ctx context.Context, flowID string) (*model.Invocation, error) {
	if err := r.waiter.Wait(ctx, flowID); err != nil {
		common.PrintError(fmt.Errorf("flow %s is not ready for testing: %w", flowID, err))
		return nil, err
	}
	return r.tester.Test(ctx, flowID, r.flags.Flow.Query)
}

func deployFailureMessage(name string, result *Result) string {
	if result.Deployment != nil {
		return fmt.Sprintf("Flow %s was created as %s but preparing it failed: %s",
			name, result.Deployment.FlowID, result.DeployErr)
	}
	return fmt.Sprintf("Creating flow %s failed: %s", name, result.DeployErr)
}
