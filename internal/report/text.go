package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexiusacademia/gowind/internal/params"
)

// Header is the first line of a saved parameter report.
const Header = "User Inputs for Wind Loading Calculations:"

// PersistenceError reports a report file that could not be written.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("saving parameters to %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ParameterLine formats one field the way the report file lists it,
// e.g. "Wind Velocity: 20.00 m/s".
func ParameterLine(f params.Field, p params.StructuralParameters) string {
	return strings.TrimSpace(fmt.Sprintf("%s: %.2f %s", f.Label(), p.Get(f), f.Unit()))
}

// WriteParameters writes the parameter report to w.
func WriteParameters(w io.Writer, p params.StructuralParameters) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, Header)
	for _, f := range params.Fields {
		fmt.Fprintln(bw, ParameterLine(f, p))
	}
	return bw.Flush()
}

// SaveParameters writes the parameter report to path, replacing any
// previous content. Every failure is returned as a *PersistenceError.
func SaveParameters(path string, p params.StructuralParameters) (err error) {
	if info, statErr := os.Stat(path); statErr == nil && info.Mode().Perm()&0o200 == 0 {
		return &PersistenceError{Path: path, Err: os.ErrPermission}
	}

	f, err := os.Create(path)
	if err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &PersistenceError{Path: path, Err: cerr}
		}
	}()

	if err := WriteParameters(f, p); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	return nil
}
