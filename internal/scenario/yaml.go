package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the layout of a YAML project file.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadYAML reads scenarios from a YAML project file.
func LoadYAML(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML decodes a YAML project document.
func ParseYAML(data []byte) ([]Scenario, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}
	for i := range f.Scenarios {
		if f.Scenarios[i].Name == "" {
			f.Scenarios[i].Name = fmt.Sprintf("scenario %d", i+1)
		}
	}
	return f.Scenarios, nil
}
