package test

import (
	"os"
	"path"
	"runtime"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/entigolabs/entigo-flow-agent/model"
)

const FlowDefinitionFile = "igaming_player_inquiry_flow.json"

func ChangeRunDir() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func AccountID() string {
	return gofakeit.DigitN(12)
}

func FlowID() string {
	return gofakeit.LetterN(10)
}

func Deployment(accountID string) model.Deployment {
	flowID := FlowID()
	return model.Deployment{
		FlowID:  flowID,
		FlowArn: "arn:aws:bedrock:us-east-1:" + accountID + ":flow/" + flowID,
		Status:  string(model.FlowStatusNotPrepared),
	}
}

func FlowDocument() model.FlowDocument {
	return model.FlowDocument{
		Name:        gofakeit.AppName(),
		Description: gofakeit.Sentence(6),
		Tags:        map[string]string{"Project": gofakeit.Word()},
		Definition: model.FlowDefinition{
			Nodes: []model.FlowNode{{
				Name: "Agent",
				Type: model.NodeTypeAgent,
				Configuration: model.FlowNodeConfiguration{Agent: &model.AgentConfiguration{
					AgentAliasArn: "arn:aws:bedrock:us-east-1:" + AccountID() + ":agent-alias/A/B",
				}},
			}},
		},
	}
}
