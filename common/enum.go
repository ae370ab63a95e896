package common

type Command string

const (
	DeployCommand Command = "deploy"
)

type LogLevel string

const (
	DebugLogLevel LogLevel = "debug"
	WarnLogLevel  LogLevel = "warn"
	ErrorLogLevel LogLevel = "error"
	ProdLogLevel  LogLevel = "prod"
)
