// Package scenario loads named parameter sets from YAML project files and
// XLSX workbooks so several structures can be analyzed in one run.
package scenario

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexiusacademia/gowind/internal/params"
)

// ErrUnsupportedFormat is returned by Load for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported scenario file format")

// Scenario is one named set of input values. Values are keyed by parameter
// label; wind velocity is in km/h as entered.
type Scenario struct {
	Name     string             `yaml:"name"`
	Material string             `yaml:"material,omitempty"`
	Values   map[string]float64 `yaml:"values"`
}

// Apply checks every value against the store's matching spec, when there is
// one, and assigns it. Labels naming no parameter are skipped. Labels are
// applied in sorted order so the first rejected value is reported
// deterministically.
func (s Scenario) Apply(store *params.Store) error {
	labels := make([]string, 0, len(s.Values))
	for label := range s.Values {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		v := s.Values[label]
		f := params.Resolve(label)
		if f == params.FieldUnknown {
			continue
		}
		if spec, ok := store.SpecFor(f); ok {
			if err := spec.Check(v); err != nil {
				return fmt.Errorf("scenario %q: %w", s.Name, err)
			}
		}
		store.Assign(label, v)
	}
	return nil
}

// Load reads scenarios from a .yaml/.yml or .xlsx file.
func Load(path string) ([]Scenario, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".xlsx":
		return LoadWorkbook(path)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}
