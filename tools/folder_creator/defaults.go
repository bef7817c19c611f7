package folder_creator

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed defaults.json
var defaultsJSON []byte

// toolDefaults carries the externally-authored form defaults shipped
// with the tool.
type toolDefaults struct {
	Count   int    `json:"count"`
	Prefix  string `json:"prefix"`
	Suffix  string `json:"suffix"`
	Padding int    `json:"padding"`
	Start   int    `json:"start_index"`
}

func loadDefaults() (toolDefaults, error) {
	var d toolDefaults
	if err := json.Unmarshal(defaultsJSON, &d); err != nil {
		return d, fmt.Errorf("tool defaults: %w", err)
	}
	return d, nil
}
