package jsoniter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEnd is reported when the input ends before a value starts.
	ErrUnexpectedEnd = errors.New("unexpected end of input")
	// ErrUnknownValueStart is reported when the first significant byte
	// can not start any JSON value.
	ErrUnknownValueStart = errors.New("unknown value start")
	// ErrSyntax is the generic cause for errors raised by the readers.
	ErrSyntax = errors.New("syntax error")
)

// ParseError describes a failure found while reading the input.
type ParseError struct {
	Op      string // operation that failed, e.g. "Skip"
	Msg     string
	Offset  int64 // offset of the offending byte in the input stream
	Byte    byte  // offending byte, 0 at end of input
	Context string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s, error found in #%d byte of ...|%s|...",
		e.Op, e.Msg, e.Offset, e.Context)
}

func (e *ParseError) Unwrap() error { return e.Err }
