package notify

import (
	"fmt"
	"strings"

	goteamsnotify "github.com/atc0005/go-teams-notify/v2"
	"github.com/atc0005/go-teams-notify/v2/adaptivecard"
	"github.com/entigolabs/entigo-flow-agent/model"
)

func newTeamsClient(baseNotifier model.BaseNotifier, webhookUrl string) *BaseNotifier {
	client := goteamsnotify.NewTeamsClient()
	return &BaseNotifier{
		BaseNotifier: baseNotifier,
		MessageFunc: func(message string) error {
			msg, err := teamsCard(message)
			if err != nil {
				return err
			}
			return client.Send(webhookUrl, msg)
		},
	}
}

func teamsCard(message string) (*adaptivecard.Message, error) {
	var body []adaptivecard.Element
	for _, text := range strings.Split(message, "\n") {
		body = append(body, adaptivecard.Element{
			Type: adaptivecard.TypeElementTextBlock,
			Wrap: true,
			Text: text,
		})
	}
	card := adaptivecard.Card{
		Type:    adaptivecard.TypeAdaptiveCard,
		Schema:  adaptivecard.AdaptiveCardSchema,
		Version: fmt.Sprintf(adaptivecard.AdaptiveCardVersionTmpl, adaptivecard.AdaptiveCardMaxVersion),
		Body:    body,
	}
	msg := &adaptivecard.Message{
		Type: adaptivecard.TypeMessage,
	}
	if err := msg.Attach(card); err != nil {
		return nil, err
	}
	return msg, nil
}
