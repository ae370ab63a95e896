package common

import "time"

const (
	DefaultDefinition   = "igaming_player_inquiry_flow.json"
	DefaultRegion       = "us-east-1"
	DefaultTestQuery    = "I can't withdraw my winnings"
	DefaultTestAlias    = "TSTALIASID"
	DefaultInputNode    = "PlayerInputNode"
	DefaultInputOutput  = "document"
	DefaultReadyTimeout = 2 * time.Minute
	DefaultReadyDelay   = 10 * time.Second
)

type Flags struct {
	LoggingLevel string
	Definition   string
	Test         bool
	AWS          AWS
	Flow         Flow
	Notify       Notify
}

type AWS struct {
	Region           string
	RoleArn          string
	ExecutionRoleArn string
	ResolveRole      bool
}

type Flow struct {
	Query        string
	Alias        string
	InputNode    string
	InputOutput  string
	ReadyTimeout time.Duration
	ReadyDelay   time.Duration
}

type Notify struct {
	Context      string
	SlackToken   string
	SlackChannel string
	TeamsWebhook string
	ApiURL       string
	ApiKey       string
}

func (f *Flags) Setup(cmd Command) error {
	if err := f.validate(cmd); err != nil {
		return err
	}
	f.cmdSpecificSetup(cmd)
	return nil
}

func (f *Flags) cmdSpecificSetup(cmd Command) {
	if cmd != DeployCommand {
		return
	}
	if f.Definition == "" {
		f.Definition = DefaultDefinition
	}
	if f.AWS.Region == "" {
		f.AWS.Region = DefaultRegion
	}
	if f.Flow.Query == "" {
		f.Flow.Query = DefaultTestQuery
	}
	if f.Flow.Alias == "" {
		f.Flow.Alias = DefaultTestAlias
	}
	if f.Flow.InputNode == "" {
		f.Flow.InputNode = DefaultInputNode
	}
	if f.Flow.InputOutput == "" {
		f.Flow.InputOutput = DefaultInputOutput
	}
}
