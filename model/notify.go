package model

type MessageType string

const (
	MessageTypeDeployment MessageType = "deployment"
	MessageTypeTest       MessageType = "test"
	MessageTypeFailure    MessageType = "failure"
)

var AllMessageTypes = []MessageType{MessageTypeDeployment, MessageTypeTest, MessageTypeFailure}

type BaseNotifier struct {
	Name         string
	Context      string
	MessageTypes Set[MessageType]
}

func (b BaseNotifier) GetName() string {
	return b.Name
}

func (b BaseNotifier) Includes(messageType MessageType) bool {
	return b.MessageTypes.Contains(messageType)
}

type Notifier interface {
	GetName() string
	Includes(messageType MessageType) bool
	Message(messageType MessageType, message string) error
	Deployment(deployment Deployment) error
	TestResult(invocation Invocation) error
}

type NotificationManager interface {
	Message(messageType MessageType, message string)
	Deployment(deployment Deployment)
	TestResult(invocation Invocation)
}
