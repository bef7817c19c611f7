package renamer

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed defaults.json
var defaultsJSON []byte

// choiceSet is one combo box definition: the labels shown to the user
// and, when labels differ from values, the label-to-value mapping.
type choiceSet struct {
	Display []string          `json:"display"`
	Mapping map[string]string `json:"mapping,omitempty"`
}

// value resolves a display label to its mapped value, falling back to
// the label itself.
func (c choiceSet) value(label string) string {
	if v, ok := c.Mapping[label]; ok {
		return v
	}
	return label
}

// toolDefaults carries the externally-authored form defaults and choice
// lists shipped with the tool.
type toolDefaults struct {
	Pattern     string  `json:"pattern"`
	Prefix      string  `json:"prefix"`
	Postfix     string  `json:"postfix"`
	PadWidth    int     `json:"pad_width"`
	IndexMul    float64 `json:"index_mul"`
	IndexOffset int     `json:"index_offset"`
	SelOffset   int     `json:"sel_offset"`
	SelDivision int     `json:"sel_division"`

	RenameModes      choiceSet `json:"rename_modes"`
	OutputModes      choiceSet `json:"output_modes"`
	IndexBaseOptions choiceSet `json:"index_base_options"`
}

func loadDefaults() (toolDefaults, error) {
	var d toolDefaults
	if err := json.Unmarshal(defaultsJSON, &d); err != nil {
		return d, fmt.Errorf("tool defaults: %w", err)
	}
	return d, nil
}
