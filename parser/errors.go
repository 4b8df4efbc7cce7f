package parser

import (
	"errors"
	"fmt"
)

var (
	ErrInputType      = errors.New("input is not a string")
	ErrSyntax         = errors.New("syntax error")
	ErrPropertyCasing = errors.New("property identifier is not upper case")

	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
)

// Error describes a parse failure. Err is either ErrSyntax or
// ErrPropertyCasing; Cause, when set, tells what went wrong.
type Error struct {
	Err   error
	Cause error

	Line int
	Col  int
	Text string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%d:%d: %v", e.Line, e.Col, e.Err)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Text != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Text)
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}
