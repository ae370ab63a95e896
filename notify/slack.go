package notify

import (
	"strings"

	"github.com/entigolabs/entigo-flow-agent/model"
	"github.com/slack-go/slack"
)

func newSlackClient(baseNotifier model.BaseNotifier, token, channelId string) *BaseNotifier {
	client := slack.New(token)
	return &BaseNotifier{
		BaseNotifier: baseNotifier,
		MessageFunc: func(message string) error {
			_, _, err := client.PostMessage(channelId, slack.MsgOptionText(message, false),
				slack.MsgOptionBlocks(slackBlocks(message)...))
			return err
		},
	}
}

// slackBlocks renders the first line as a bold headline and the flow details
// below it as a context block.
func slackBlocks(message string) []slack.Block {
	headline, details, _ := strings.Cut(message, "\n")
	blocks := []slack.Block{
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, "*"+headline+"*", false, false), nil, nil),
	}
	if details == "" {
		return blocks
	}
	var elements []slack.MixedElement
	for _, line := range strings.Split(details, "\n") {
		elements = append(elements, slack.NewTextBlockObject(slack.MarkdownType, line, false, false))
	}
	return append(blocks, slack.NewContextBlock("", elements...))
}
