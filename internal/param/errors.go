package param

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBadName is returned for an option name that no descriptor matches.
	ErrBadName = errors.New("unknown option")
	// ErrBadValue is returned when a value does not parse for its option, or
	// a value-taking option was given none.
	ErrBadValue = errors.New("invalid value")

	// ErrUnknownPreset is returned by New and ApplyPreset for a preset
	// name outside the speed ladder.
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrUnknownTune is returned by New and ApplyTune for an unrecognized
	// tune name.
	ErrUnknownTune = errors.New("unknown tune")
)

// OptionError reports a failed dispatch of one name/value pair.
type OptionError struct {
	Name  string
	Value string
	Err   error
}

func (e *OptionError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%v: %s", e.Err, e.Name)
	}
	return fmt.Sprintf("%v: %s = %s", e.Err, e.Name, e.Value)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}

// ValidationError carries every failed cross-field check of one Check run.
type ValidationError struct {
	Failures []string
}

// Count returns the number of failed checks.
func (e *ValidationError) Count() int {
	return len(e.Failures)
}

func (e *ValidationError) Error() string {
	if len(e.Failures) == 1 {
		return "invalid configuration: " + e.Failures[0]
	}
	return fmt.Sprintf("invalid configuration: %d problems: %s",
		len(e.Failures), strings.Join(e.Failures, "; "))
}
