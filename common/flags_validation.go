package common

import "fmt"

func (f *Flags) validate(cmd Command) error {
	switch cmd {
	case DeployCommand:
		if f.Flow.ReadyTimeout < 0 || f.Flow.ReadyDelay < 0 {
			return fmt.Errorf("ready timeout and delay must not be negative")
		}
		if f.AWS.ExecutionRoleArn != "" && f.AWS.ResolveRole {
			return fmt.Errorf("execution role arn and resolve role can't be used together")
		}
		if (f.Notify.SlackToken == "") != (f.Notify.SlackChannel == "") {
			return fmt.Errorf("slack token and channel must be set together")
		}
		if f.Notify.ApiKey != "" && f.Notify.ApiURL == "" {
			return fmt.Errorf("api url must be set when api key is set")
		}
		return nil
	default:
		return fmt.Errorf("unsupported command %s", cmd)
	}
}
