package deploy

import (
	"context"
	"fmt"
	"log"

	"github.com/entigolabs/entigo-flow-agent/aws"
	"github.com/entigolabs/entigo-flow-agent/common"
	"github.com/entigolabs/entigo-flow-agent/definition"
	"github.com/entigolabs/entigo-flow-agent/model"
	"github.com/entigolabs/entigo-flow-agent/notify"
	"github.com/entigolabs/entigo-flow-agent/service"
)

func Deploy(ctx context.Context, flags *common.Flags) {
	common.PrintVersion()
	provider, err := aws.NewProvider(ctx, flags.AWS)
	if err != nil {
		log.Fatal(&common.PrefixedError{Reason: err})
	}
	manager := notify.NewNotificationManager(ctx, flags.Notify)
	runner := NewRunner(provider, manager, flags)
	result, err := runner.Run(ctx)
	if err != nil {
		manager.Message(model.MessageTypeFailure, err.Error())
		log.Fatal(&common.PrefixedError{Reason: err})
	}
	if err = resultError(result); err != nil {
		common.PrintWarning(err.Error())
	}
}

// NewRunner wires the AWS backed clients into a runner.
func NewRunner(provider *aws.Provider, manager model.NotificationManager, flags *common.Flags) *service.Runner {
	var roles service.RoleFinder
	if flags.AWS.ResolveRole {
		roles = provider.GetIAM()
	}
	return service.NewRunner(
		provider.GetAccount(),
		definition.NewLoader(provider.GetS3()),
		service.NewDeployer(provider.GetFlows(), roles, flags.AWS.ExecutionRoleArn),
		service.NewReadinessWaiter(provider.GetFlows(), flags.Flow.ReadyTimeout, flags.Flow.ReadyDelay),
		service.NewTester(provider.GetRuntime(), flags.Flow),
		manager,
		flags,
	)
}

// resultError summarizes remote failures. They are already reported and do
// not change the exit status.
func resultError(result *service.Result) error {
	if result.DeployErr != nil {
		return fmt.Errorf("flow deployment failed (%s)", model.KindOf(result.DeployErr))
	}
	if result.TestErr != nil {
		return fmt.Errorf("flow test failed (%s)", model.KindOf(result.TestErr))
	}
	return nil
}
