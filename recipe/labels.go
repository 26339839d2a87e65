package recipe

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gateflow-xyz/go-gateflow/gate"
)

// Labels maps slots to human-readable names.
type Labels map[gate.Slot]string

// labelsDoc is the on-disk YAML shape:
//
//	slots:
//	  0: default
//	  1: vegan
type labelsDoc struct {
	Slots map[gate.Slot]string `yaml:"slots"`
}

// LoadLabels reads a slot label table from a YAML file.
func LoadLabels(path string) (Labels, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("recipe: read labels %s: %w", path, err)
	}
	var doc labelsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("recipe: parse labels %s: %w", path, err)
	}
	return Labels(doc.Slots), nil
}

// SaveLabels writes a slot label table as YAML.
func SaveLabels(path string, l Labels) error {
	data, err := yaml.Marshal(labelsDoc{Slots: l})
	if err != nil {
		return fmt.Errorf("recipe: encode labels: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("recipe: write labels %s: %w", path, err)
	}
	return nil
}

// Name returns the label for a slot, falling back to the numeric form
// when the table has no entry.
func (l Labels) Name(s gate.Slot) string {
	if name, ok := l[s]; ok {
		return name
	}
	return strconv.Itoa(int(s))
}

// Lookup returns the label for a slot, erroring when the table has no
// entry.
func (l Labels) Lookup(s gate.Slot) (string, error) {
	name, ok := l[s]
	if !ok {
		return "", fmt.Errorf("%w: slot %d", ErrNoLabel, s)
	}
	return name, nil
}
