// Package vm implements the bfc execution engine.
//
// The engine holds a fixed size, zero filled byte tape, an instruction
// pointer (Ip), and a tape pointer (Ptr). Step executes one instruction;
// Run steps until the program halts.
//
// Cell arithmetic wraps: 255 increments to 0 and 0 decrements to 255.
// Moving the tape pointer off either end of the tape is rejected with
// ErrTapeBounds, and a failing port is reported as ErrPort. Either fault
// leaves the engine state as it was before the instruction, and is
// returned again by every later Step.
package vm
