package argparse

import (
	"errors"
	"strings"
)

var (
	ErrUnknownOption      = errors.New("unrecognized option")
	ErrAmbiguousOption    = errors.New("ambiguous option")
	ErrMissingArgument    = errors.New("option requires an argument")
	ErrUnexpectedArgument = errors.New("option doesn't allow an argument")
	ErrPositional         = errors.New("positional arguments are not accepted")
	ErrMalformedNumber    = errors.New("malformed number")
)

// UsageError is a fatal problem with the argument vector. The caller prints
// it together with the usage text and exits with status 1.
type UsageError struct {
	// Option is the flag as written by the user, if one is involved.
	Option string
	Err    error
}

func (e *UsageError) Error() string {
	if e.Option == "" {
		return e.Err.Error()
	}
	return e.Option + ": " + e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func usageErr(option string, err error) *UsageError {
	return &UsageError{Option: option, Err: err}
}

type ambiguousError struct {
	candidates []string
}

func (e *ambiguousError) Error() string {
	return ErrAmbiguousOption.Error() + "; possibilities: " + strings.Join(e.candidates, " ")
}

func (e *ambiguousError) Is(target error) bool {
	return target == ErrAmbiguousOption
}
