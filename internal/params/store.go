package params

import (
	"io"
	"log/slog"
)

// Store holds the active parameter specs and the values assigned so far.
//
// A Store is owned by a single caller; it is not safe for concurrent use.
type Store struct {
	specs    []Spec
	params   StructuralParameters
	assigned map[Field]bool
	logger   *slog.Logger
}

// NewStore creates a store over specs with no values assigned.
// A nil logger discards.
func NewStore(specs []Spec, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Store{
		assigned: make(map[Field]bool),
		logger:   logger,
	}
	s.Replace(specs)
	return s
}

// Specs returns a copy of the active specs.
func (s *Store) Specs() []Spec {
	out := make([]Spec, len(s.specs))
	copy(out, s.specs)
	return out
}

// Replace discards the current specs and adopts specs. Values already
// assigned are kept until a matching label overwrites them.
func (s *Store) Replace(specs []Spec) {
	s.specs = make([]Spec, len(specs))
	copy(s.specs, specs)
	s.logger.Debug("parameter specs replaced", "count", len(specs))
}

// Lookup returns the active spec with the given name.
func (s *Store) Lookup(name string) (Spec, bool) {
	for _, sp := range s.specs {
		if sp.Name == name {
			return sp, true
		}
	}
	return Spec{}, false
}

// SpecFor returns the first active spec whose label resolves to f. No spec
// is returned for FieldUnknown.
func (s *Store) SpecFor(f Field) (Spec, bool) {
	if f == FieldUnknown {
		return Spec{}, false
	}
	for _, sp := range s.specs {
		if sp.Field() == f {
			return sp, true
		}
	}
	return Spec{}, false
}

// Assign stores value under the field that name resolves to and returns
// the resulting parameters. Unknown labels are ignored.
func (s *Store) Assign(name string, value float64) StructuralParameters {
	f := Resolve(name)
	if f == FieldUnknown {
		s.logger.Debug("ignoring unknown parameter label", "label", name)
		return s.params
	}
	s.params.Set(f, value)
	s.assigned[f] = true
	s.logger.Debug("parameter assigned", "field", f.String(), "value", value)
	return s.params
}

// Apply validates raw against spec and assigns the accepted value.
func (s *Store) Apply(spec Spec, raw string) (float64, error) {
	v, err := spec.Validate(raw)
	if err != nil {
		return 0, err
	}
	s.Assign(spec.Name, v)
	return v, nil
}

// Params returns a copy of the current parameters.
func (s *Store) Params() StructuralParameters {
	return s.params
}

// Assigned reports whether f has received a value.
func (s *Store) Assigned(f Field) bool {
	return s.assigned[f]
}

// Missing lists the fields not yet assigned, in canonical order.
func (s *Store) Missing() []Field {
	var missing []Field
	for _, f := range Fields {
		if !s.assigned[f] {
			missing = append(missing, f)
		}
	}
	return missing
}
