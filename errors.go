package sexpcalc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidExpression is the only failure kind reported by Evaluate.
	ErrInvalidExpression = errors.New("invalid expression")

	// ErrLimitExceeded is wrapped alongside ErrInvalidExpression when the
	// input is longer or deeper than the evaluator allows.
	ErrLimitExceeded = errors.New("limit exceeded")
)

// Error describes why an input was rejected. Pos is a byte offset into
// Input, or -1 when the failure is not tied to one position.
type Error struct {
	Input  string
	Pos    int
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("%v: %s", ErrInvalidExpression, e.Reason)
	}
	return fmt.Sprintf("%v: %s (%d)", ErrInvalidExpression, e.Reason, e.Pos)
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidExpression, e.Err}
	}
	return []error{ErrInvalidExpression}
}

func invalid(input string, pos int, format string, args ...interface{}) *Error {
	return &Error{
		Input:  input,
		Pos:    pos,
		Reason: fmt.Sprintf(format, args...),
	}
}

func limit(input string, format string, args ...interface{}) *Error {
	return &Error{
		Input:  input,
		Pos:    -1,
		Reason: fmt.Sprintf(format, args...),
		Err:    ErrLimitExceeded,
	}
}
