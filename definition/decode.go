package definition

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/entigolabs/entigo-flow-agent/model"
)

// Decode fails on fields the flow model can't carry, so nothing in the file
// is dropped on its way to CreateFlow.
func Decode(document []byte) (model.FlowDocument, error) {
	var flow model.FlowDocument
	decoder := json.NewDecoder(bytes.NewReader(document))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&flow); err != nil {
		return model.FlowDocument{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if flow.Name == "" {
		return model.FlowDocument{}, fmt.Errorf("%w: name is empty", ErrMalformed)
	}
	return flow, nil
}
