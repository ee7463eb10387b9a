// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"context"
	"fmt"
	"log"
	"slices"

	"github.com/ezrec/bfc/io"
	"github.com/ezrec/bfc/ir"
)

const (
	TAPE_SIZE = 30000 // Default tape size, in cells.
)

// Options configure a new VM.
type Options struct {
	TapeSize int       // Tape size in cells. Zero selects TAPE_SIZE.
	Output   io.Sink   // Receives bytes from '.'.
	Input    io.Source // Provides bytes for ','.
}

// VM is the execution engine for a single program run.
type VM struct {
	Verbose bool        // Set to enable verbose logging.
	Logger  *log.Logger // Verbose output. Nil selects log.Default().

	Program *ir.IR // Program being executed.

	Ip    int // Index of the next instruction to execute.
	Ptr   int // Index of the current tape cell.
	Ticks int // Instructions executed.

	tape   []byte
	output io.Sink
	input  io.Source
	err    error
}

// New translates source and creates a VM to run it.
// Translation errors are returned as *ir.ErrParse.
func New(source string, opts Options) (vm *VM, err error) {
	prog, err := ir.Parse(source)
	if err != nil {
		return
	}

	return NewFromIR(prog, opts)
}

// NewFromIR creates a VM to run a translated program.
// The program must not be modified while the VM is in use.
func NewFromIR(prog *ir.IR, opts Options) (vm *VM, err error) {
	if prog == nil {
		err = ErrIRNil
		return
	}

	err = prog.Validate()
	if err != nil {
		return
	}

	size := opts.TapeSize
	switch {
	case size == 0:
		size = TAPE_SIZE
	case size < 0:
		err = ErrTapeSize
		return
	}

	vm = &VM{
		Program: prog,
		tape:    make([]byte, size),
		output:  opts.Output,
		input:   opts.Input,
	}

	if vm.output == nil {
		vm.output = io.NoPort{}
	}
	if vm.input == nil {
		vm.input = io.NoPort{}
	}

	return
}

// Halted returns true once the program has run off its end, or faulted.
func (vm *VM) Halted() bool {
	return vm.err != nil || vm.Ip >= len(vm.Program.Ops)
}

// Err returns the runtime fault that stopped the VM, if any.
func (vm *VM) Err() error {
	return vm.err
}

// Cell returns the value of the current tape cell.
func (vm *VM) Cell() byte {
	return vm.tape[vm.Ptr]
}

// Tape returns a copy of the tape.
func (vm *VM) Tape() []byte {
	return slices.Clone(vm.tape)
}

// String returns the current VM state as a string.
func (vm *VM) String() (text string) {
	op := "-"
	if vm.Ip < len(vm.Program.Ops) {
		op = vm.Program.Ops[vm.Ip].String()
	}

	text += fmt.Sprintf("%5s: %05d\n", "ip", vm.Ip)
	text += fmt.Sprintf("%5s: %v\n", "op", op)
	text += fmt.Sprintf("%5s: %05d\n", "ptr", vm.Ptr)
	text += fmt.Sprintf("%5s: 0x%02x\n", "cell", vm.Cell())
	text += fmt.Sprintf("%5s: %d\n", "ticks", vm.Ticks)

	return
}

func (vm *VM) logger() *log.Logger {
	if vm.Logger == nil {
		return log.Default()
	}
	return vm.Logger
}

// fault records a runtime error for the current instruction.
func (vm *VM) fault(op ir.Op, err error) error {
	vm.err = &ErrRuntime{
		Ip:       vm.Ip,
		Position: vm.Program.Position[vm.Ip],
		Op:       op,
		Err:      err,
	}

	if vm.Verbose {
		vm.logger().Printf("vm: %v", vm.err)
	}

	return vm.err
}

// Step executes a single instruction.
//
// Returns false for more once the instruction pointer is past the end of
// the program. Stepping a halted VM does nothing; stepping a faulted VM
// returns its fault again.
func (vm *VM) Step() (more bool, err error) {
	if vm.err != nil {
		err = vm.err
		return
	}

	ops := vm.Program.Ops
	if vm.Ip >= len(ops) {
		return
	}

	op := ops[vm.Ip]
	next := vm.Ip
	cell := &vm.tape[vm.Ptr]

	if vm.Verbose {
		vm.logger().Printf("%05d: %v ptr=%d cell=0x%02x", vm.Ip, op, vm.Ptr, *cell)
	}

	switch op {
	case ir.OP_INC_PTR:
		if vm.Ptr+1 >= len(vm.tape) {
			err = vm.fault(op, &ErrTapeBounds{Pointer: vm.Ptr + 1, Size: len(vm.tape)})
			return
		}
		vm.Ptr++
	case ir.OP_DEC_PTR:
		if vm.Ptr == 0 {
			err = vm.fault(op, &ErrTapeBounds{Pointer: -1, Size: len(vm.tape)})
			return
		}
		vm.Ptr--
	case ir.OP_INC_CELL:
		*cell++
	case ir.OP_DEC_CELL:
		*cell--
	case ir.OP_OUTPUT:
		perr := vm.output.WriteByte(*cell)
		if perr != nil {
			err = vm.fault(op, &ErrPort{Op: op, Err: perr})
			return
		}
	case ir.OP_INPUT:
		value, perr := vm.input.ReadByte()
		if perr != nil {
			err = vm.fault(op, &ErrPort{Op: op, Err: perr})
			return
		}
		*cell = value
	case ir.OP_LOOP_START:
		if *cell == 0 {
			next = vm.Program.JumpTable[vm.Ip]
		}
	case ir.OP_LOOP_END:
		if *cell != 0 {
			next = vm.Program.JumpTable[vm.Ip]
		}
	}

	vm.Ip = next + 1
	vm.Ticks++

	more = vm.Ip < len(ops)
	return
}

// Run steps the VM until the program halts or faults.
func (vm *VM) Run() (err error) {
	for more := true; more; {
		more, err = vm.Step()
		if err != nil {
			return
		}
	}

	return
}

// RunContext is Run, checking for cancellation between instructions.
// A blocked port is not interrupted.
func (vm *VM) RunContext(ctx context.Context) (err error) {
	for more := true; more; {
		err = ctx.Err()
		if err != nil {
			return
		}
		more, err = vm.Step()
		if err != nil {
			return
		}
	}

	return
}
