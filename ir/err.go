package ir

import (
	"errors"
	"strconv"

	"github.com/ezrec/bfc/translate"
)

var f = translate.From

// ParseErrorKind is the reason a translation failed.
type ParseErrorKind int

//go:generate go tool stringer -linecomment -type=ParseErrorKind
const (
	PARSE_UNCLOSED_LOOP       = ParseErrorKind(0) // unclosed loop
	PARSE_UNEXPECTED_LOOP_END = ParseErrorKind(1) // unexpected loop end
)

var (
	// Translation errors
	ErrUnclosedLoop      = errors.New(f("[ without matching ]"))
	ErrUnexpectedLoopEnd = errors.New(f("] without matching ["))

	// IR validation errors
	ErrOpInvalid  = errors.New(f("instruction invalid"))
	ErrJumpTable  = errors.New(f("jump table invalid"))
	ErrIRMismatch = errors.New(f("instruction and table lengths differ"))
)

// ErrParse is a translation failure at a source character position.
type ErrParse struct {
	Position int            // Index of the offending character in the source.
	Kind     ParseErrorKind // Reason for the failure.
}

func (err *ErrParse) Error() string {
	return f("position %s: %v", strconv.Itoa(err.Position), err.Kind)
}

// Unwrap returns the sentinel error for the failure kind.
func (err *ErrParse) Unwrap() error {
	switch err.Kind {
	case PARSE_UNCLOSED_LOOP:
		return ErrUnclosedLoop
	case PARSE_UNEXPECTED_LOOP_END:
		return ErrUnexpectedLoopEnd
	}
	return nil
}

// Is matches any other parse error.
func (err *ErrParse) Is(target error) (ok bool) {
	_, ok = target.(*ErrParse)
	return
}

// ErrIndex locates an IR validation error.
type ErrIndex struct {
	Index int
	Err   error
}

func (err *ErrIndex) Error() string {
	return f("instruction %s: %v", strconv.Itoa(err.Index), err.Err)
}

func (err *ErrIndex) Unwrap() error {
	return err.Err
}
