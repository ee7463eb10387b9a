package vm

import (
	"errors"
	"strconv"

	"github.com/ezrec/bfc/ir"
	"github.com/ezrec/bfc/translate"
)

var f = translate.From

var (
	// Construction errors
	ErrTapeSize = errors.New(f("tape size must be positive"))
	ErrIRNil    = errors.New(f("no program"))
)

// ErrTapeBounds is a tape pointer move outside of the tape.
type ErrTapeBounds struct {
	Pointer int // Rejected tape pointer.
	Size    int // Tape size.
}

func (err *ErrTapeBounds) Error() string {
	return f("tape pointer %s outside tape of %s cells", strconv.Itoa(err.Pointer), strconv.Itoa(err.Size))
}

// Is matches any other tape bounds error.
func (err *ErrTapeBounds) Is(target error) (ok bool) {
	_, ok = target.(*ErrTapeBounds)
	return
}

// ErrPort is a failure reported by an I/O port.
type ErrPort struct {
	Op  ir.Op // Instruction using the port.
	Err error
}

func (err *ErrPort) Error() string {
	return f("port %v: %v", err.Op, err.Err)
}

func (err *ErrPort) Unwrap() error {
	return err.Err
}

// Is matches any other port error.
func (err *ErrPort) Is(target error) (ok bool) {
	_, ok = target.(*ErrPort)
	return
}

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip       int   // Faulting instruction index.
	Position int   // Source position of the faulting instruction.
	Op       ir.Op // Faulting instruction.
	Err      error
}

func (err *ErrRuntime) Error() string {
	return f("ip %s (position %s '%v') %v", strconv.Itoa(err.Ip), strconv.Itoa(err.Position), err.Op, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
