package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/entigolabs/entigo-flow-agent/common"
	"github.com/entigolabs/entigo-flow-agent/model"
)

type NotificationManager struct {
	notifiers []model.Notifier
}

// NewNotificationManager creates notifiers for every channel configured in
// flags. Without configuration the manager sends nothing.
func NewNotificationManager(ctx context.Context, flags common.Notify) *NotificationManager {
	return &NotificationManager{
		notifiers: createNotifiers(ctx, flags),
	}
}

func createNotifiers(ctx context.Context, flags common.Notify) []model.Notifier {
	notifiers := make([]model.Notifier, 0)
	if flags.SlackToken != "" {
		notifiers = append(notifiers, newSlackClient(baseNotifier("slack", flags.Context), flags.SlackToken, flags.SlackChannel))
	}
	if flags.TeamsWebhook != "" {
		notifiers = append(notifiers, newTeamsClient(baseNotifier("teams", flags.Context), flags.TeamsWebhook))
	}
	if flags.ApiURL != "" {
		notifiers = append(notifiers, newApi(ctx, baseNotifier("api", flags.Context), flags.ApiURL, flags.ApiKey))
	}
	return notifiers
}

func baseNotifier(name, context string) model.BaseNotifier {
	return model.BaseNotifier{
		Name:         name,
		Context:      context,
		MessageTypes: model.NewSet(model.AllMessageTypes...),
	}
}

func (n *NotificationManager) Message(messageType model.MessageType, message string) {
	n.notify(messageType, func(notifier model.Notifier) error {
		return notifier.Message(messageType, message)
	})
}

func (n *NotificationManager) Deployment(deployment model.Deployment) {
	n.notify(model.MessageTypeDeployment, func(notifier model.Notifier) error {
		return notifier.Deployment(deployment)
	})
}

func (n *NotificationManager) TestResult(invocation model.Invocation) {
	n.notify(model.MessageTypeTest, func(notifier model.Notifier) error {
		return notifier.TestResult(invocation)
	})
}

func (n *NotificationManager) notify(messageType model.MessageType, action func(notifier model.Notifier) error) {
	var wg sync.WaitGroup
	for _, notifier := range n.notifiers {
		if !notifier.Includes(messageType) {
			continue
		}
		wg.Add(1)
		go func(notifier model.Notifier) {
			defer wg.Done()
			slog.Debug(fmt.Sprintf("Sending %s notification to %s notifier", messageType, notifier.GetName()))
			err := action(notifier)
			if err != nil {
				slog.Error(common.PrefixError(fmt.Errorf("failed to notify '%s': %v", notifier.GetName(), err)))
			}
		}(notifier)
	}
	wg.Wait()
}
