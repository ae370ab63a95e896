package cli

import (
	"github.com/entigolabs/entigo-flow-agent/common"
	"github.com/urfave/cli/v3"
)

func cliFlags(cmd common.Command) []cli.Flag {
	var flags []cli.Flag
	flags = appendBaseFlags(flags)
	flags = appendCmdSpecificFlags(flags, cmd)
	return flags
}

func appendBaseFlags(flags []cli.Flag) []cli.Flag {
	return append(flags,
		&loggingFlag,
	)
}

func appendCmdSpecificFlags(baseFlags []cli.Flag, cmd common.Command) []cli.Flag {
	switch cmd {
	case common.DeployCommand:
		baseFlags = deploySpecificFlags(baseFlags)
	}
	return baseFlags
}

func deploySpecificFlags(baseFlags []cli.Flag) []cli.Flag {
	return append(baseFlags,
		&testFlag,
		&definitionFlag,
		&regionFlag,
		&roleArnFlag,
		&executionRoleArnFlag,
		&resolveRoleFlag,
		&queryFlag,
		&aliasFlag,
		&inputNodeFlag,
		&inputOutputFlag,
		&readyTimeoutFlag,
		&readyDelayFlag,
		&notifyContextFlag,
		&slackTokenFlag,
		&slackChannelFlag,
		&teamsWebhookFlag,
		&apiUrlFlag,
		&apiKeyFlag,
	)
}

var loggingFlag = cli.StringFlag{
	Name:        "logging",
	Aliases:     []string{"l"},
	Sources:     cli.EnvVars("LOGGING"),
	Value:       string(common.ProdLogLevel),
	Usage:       "set `logging level` (debug | warn | error | prod)",
	Destination: &flags.LoggingLevel,
}

var testFlag = cli.BoolFlag{
	Name:        "test",
	Usage:       "invoke the flow with a test query after deploying it",
	Destination: &flags.Test,
}

var definitionFlag = cli.StringFlag{
	Name:        "definition",
	Aliases:     []string{"d"},
	Sources:     cli.EnvVars("FLOW_DEFINITION"),
	Value:       common.DefaultDefinition,
	Usage:       "flow definition `source`, local json/yaml file or s3://bucket/key",
	Destination: &flags.Definition,
}

var regionFlag = cli.StringFlag{
	Name:        "region",
	Aliases:     []string{"r"},
	Sources:     cli.EnvVars("AWS_REGION"),
	Value:       common.DefaultRegion,
	Usage:       "aws region of the flow service",
	Destination: &flags.AWS.Region,
}

var roleArnFlag = cli.StringFlag{
	Name:        "role-arn",
	Sources:     cli.EnvVars("ROLE_ARN"),
	Usage:       "role to assume for all aws calls",
	Destination: &flags.AWS.RoleArn,
}

var executionRoleArnFlag = cli.StringFlag{
	Name:        "execution-role-arn",
	Sources:     cli.EnvVars("EXECUTION_ROLE_ARN"),
	Usage:       "flow execution role, defaults to the account's AmazonBedrockExecutionRoleForFlows role",
	Destination: &flags.AWS.ExecutionRoleArn,
}

var resolveRoleFlag = cli.BoolFlag{
	Name:        "resolve-role",
	Sources:     cli.EnvVars("RESOLVE_ROLE"),
	Usage:       "look up the flow execution role from iam by its name prefix",
	Destination: &flags.AWS.ResolveRole,
}

var queryFlag = cli.StringFlag{
	Name:        "query",
	Aliases:     []string{"q"},
	Sources:     cli.EnvVars("TEST_QUERY"),
	Value:       common.DefaultTestQuery,
	Usage:       "test query sent to the flow",
	Destination: &flags.Flow.Query,
}

var aliasFlag = cli.StringFlag{
	Name:        "alias",
	Sources:     cli.EnvVars("FLOW_ALIAS"),
	Value:       common.DefaultTestAlias,
	Usage:       "flow alias used for the test invocation",
	Destination: &flags.Flow.Alias,
}

var inputNodeFlag = cli.StringFlag{
	Name:        "input-node",
	Sources:     cli.EnvVars("FLOW_INPUT_NODE"),
	Value:       common.DefaultInputNode,
	Usage:       "input node receiving the test query",
	Destination: &flags.Flow.InputNode,
}

var inputOutputFlag = cli.StringFlag{
	Name:        "input-output",
	Sources:     cli.EnvVars("FLOW_INPUT_OUTPUT"),
	Value:       common.DefaultInputOutput,
	Usage:       "output name of the input node",
	Destination: &flags.Flow.InputOutput,
}

var readyTimeoutFlag = cli.DurationFlag{
	Name:        "ready-timeout",
	Sources:     cli.EnvVars("READY_TIMEOUT"),
	Value:       common.DefaultReadyTimeout,
	Usage:       "how long to poll the flow status before testing, 0 waits a fixed delay instead",
	Destination: &flags.Flow.ReadyTimeout,
}

var readyDelayFlag = cli.DurationFlag{
	Name:        "ready-delay",
	Sources:     cli.EnvVars("READY_DELAY"),
	Value:       common.DefaultReadyDelay,
	Usage:       "fixed delay before testing when ready-timeout is 0",
	Destination: &flags.Flow.ReadyDelay,
}

var notifyContextFlag = cli.StringFlag{
	Name:        "notify-context",
	Sources:     cli.EnvVars("NOTIFY_CONTEXT"),
	Usage:       "text prepended to every notification",
	Destination: &flags.Notify.Context,
}

var slackTokenFlag = cli.StringFlag{
	Name:        "slack-token",
	Sources:     cli.EnvVars("SLACK_TOKEN"),
	Usage:       "slack bot token",
	Destination: &flags.Notify.SlackToken,
}

var slackChannelFlag = cli.StringFlag{
	Name:        "slack-channel",
	Sources:     cli.EnvVars("SLACK_CHANNEL"),
	Usage:       "slack channel id",
	Destination: &flags.Notify.SlackChannel,
}

var teamsWebhookFlag = cli.StringFlag{
	Name:        "teams-webhook",
	Sources:     cli.EnvVars("TEAMS_WEBHOOK"),
	Usage:       "microsoft teams webhook url",
	Destination: &flags.Notify.TeamsWebhook,
}

var apiUrlFlag = cli.StringFlag{
	Name:        "api-url",
	Sources:     cli.EnvVars("NOTIFY_API_URL"),
	Usage:       "notification api base url",
	Destination: &flags.Notify.ApiURL,
}

var apiKeyFlag = cli.StringFlag{
	Name:        "api-key",
	Sources:     cli.EnvVars("NOTIFY_API_KEY"),
	Usage:       "notification api key",
	Destination: &flags.Notify.ApiKey,
}
