package definition

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const AccountPlaceholder = "ACCOUNT_ID"

const agentAliasPath = "configuration.agent.agentAliasArn"

// PatchAgentAliases replaces the account placeholder in the agent alias
// reference of every Agent node. Everything else in the document, including
// formatting, is left untouched. Returns the number of patched nodes.
func PatchAgentAliases(document []byte, accountID string) ([]byte, int, error) {
	patched := document
	count := 0
	var err error
	gjson.GetBytes(document, "definition.nodes").ForEach(func(index, node gjson.Result) bool {
		if node.Get("type").String() != "Agent" {
			return true
		}
		arn := node.Get(agentAliasPath)
		if arn.Type != gjson.String || !strings.Contains(arn.Str, AccountPlaceholder) {
			return true
		}
		nodePath := fmt.Sprintf("definition.nodes.%d.%s", index.Int(), agentAliasPath)
		patched, err = sjson.SetBytes(patched, nodePath, strings.ReplaceAll(arn.Str, AccountPlaceholder, accountID))
		if err != nil {
			err = fmt.Errorf("failed to patch node %s: %w", node.Get("name").String(), err)
			return false
		}
		count++
		return true
	})
	if err != nil {
		return nil, 0, err
	}
	return patched, count, nil
}
