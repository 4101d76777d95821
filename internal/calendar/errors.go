package calendar

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownDesignator = errors.New("unrecognized term designator")
	ErrUnknownZone       = errors.New("unknown time zone")
	ErrInvalidRange      = errors.New("term start is after term end")
	ErrMissingZone       = errors.New("term has no time zone")
)

// TermError reports a term string that could not be turned into a term.
// Use errors.Is with the Err* values above to tell the causes apart.
type TermError struct {
	Input string
	Err   error
}

func (e *TermError) Error() string {
	return fmt.Sprintf("invalid term %q: %v", e.Input, e.Err)
}

func (e *TermError) Unwrap() error { return e.Err }
