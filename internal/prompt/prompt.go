// Package prompt collects parameter values from a console, asking again
// until each value passes validation.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gowind/internal/params"
)

// Session reads answers line by line from in and writes prompts to out.
type Session struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewSession returns a session over in and out.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{in: bufio.NewScanner(in), out: out}
}

// ReadLine prints question and returns the trimmed answer. It returns
// io.EOF when input is exhausted.
func (s *Session) ReadLine(question string) (string, error) {
	fmt.Fprint(s.out, question)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// Value asks for spec until an accepted value is entered.
func (s *Session) Value(spec params.Spec) (float64, error) {
	for {
		answer, err := s.ReadLine(fmt.Sprintf("Enter the value for %s (%g - %g %s): ",
			spec.Name, spec.Min, spec.Max, spec.Unit))
		if err != nil {
			return 0, err
		}
		v, err := spec.Validate(answer)
		if err == nil {
			return v, nil
		}
		var verr *params.ValidationError
		if !errors.As(err, &verr) {
			return 0, err
		}
		fmt.Fprintf(s.out, "Invalid input. Enter a value between %g and %g %s.\n\n", spec.Min, spec.Max, spec.Unit)
	}
}

// Collect asks for every spec in the store, in order, and assigns each
// accepted value. Running out of input mid-way returns io.ErrUnexpectedEOF.
func (s *Session) Collect(store *params.Store) error {
	return s.CollectSpecs(store, store.Specs())
}

// CollectSpecs is Collect restricted to specs.
func (s *Session) CollectSpecs(store *params.Store, specs []params.Spec) error {
	fmt.Fprintln(s.out, "Please enter the values for the following parameters:")
	for _, spec := range specs {
		v, err := s.Value(spec)
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s: %w", spec.Name, io.ErrUnexpectedEOF)
		}
		if err != nil {
			return err
		}
		store.Assign(spec.Name, v)
		fmt.Fprintf(s.out, "%s set to: %s %s\n\n", spec.Name, strconv.FormatFloat(v, 'f', -1, 64), spec.Unit)
	}
	return nil
}

// Confirm asks a yes/no question. Anything starting with y or Y is yes.
func (s *Session) Confirm(question string) (bool, error) {
	answer, err := s.ReadLine(question + " (y/n)? ")
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(answer), "y"), nil
}

// Choose asks question until the answer names one of options, either by
// its text (case-insensitive) or by its 1-based position. It returns the
// index of the chosen option.
func (s *Session) Choose(question string, options []string) (int, error) {
	for {
		answer, err := s.ReadLine(question)
		if err != nil {
			return -1, err
		}
		for i, o := range options {
			if strings.EqualFold(answer, o) {
				return i, nil
			}
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintf(s.out, "Invalid choice. Enter one of: %s.\n\n", strings.Join(options, ", "))
	}
}
