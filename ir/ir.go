package ir

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ezrec/bfc/internal"
)

// IR is a translated program.
//
// JumpTable[i] is the index of the matching loop instruction for a [ or ]
// at Ops[i]; for any other instruction the entry is unused.
// Position[i] is the source character index that produced Ops[i].
//
// An IR must not be modified once handed to an engine.
type IR struct {
	Ops       []Op
	JumpTable []int
	Position  []int
}

// loopStart is a pending [ during translation.
type loopStart struct {
	index    int // Index in the instruction sequence.
	position int // Character index in the source.
}

// builder accumulates an IR one instruction at a time.
type builder struct {
	ir    IR
	stack internal.Stack[loopStart]
}

// add appends an instruction, pairing loops as they close.
func (b *builder) add(op Op, position int) (err error) {
	here := len(b.ir.Ops)
	target := 0

	switch op {
	case OP_LOOP_START:
		b.stack.Push(loopStart{index: here, position: position})
	case OP_LOOP_END:
		open, ok := b.stack.Pop()
		if !ok {
			err = &ErrParse{Position: position, Kind: PARSE_UNEXPECTED_LOOP_END}
			return
		}
		b.ir.JumpTable[open.index] = here
		target = open.index
	}

	b.ir.Ops = append(b.ir.Ops, op)
	b.ir.JumpTable = append(b.ir.JumpTable, target)
	b.ir.Position = append(b.ir.Position, position)

	return
}

// finish checks for unclosed loops and returns the IR.
func (b *builder) finish() (prog *IR, err error) {
	open, ok := b.stack.Peek()
	if ok {
		err = &ErrParse{Position: open.position, Kind: PARSE_UNCLOSED_LOOP}
		return
	}

	prog = &b.ir
	return
}

// Parse translates source text in a single pass.
// Characters that are not instruction symbols are comments.
// Error positions are character (not byte) indices into the source.
func Parse(source string) (prog *IR, err error) {
	b := &builder{}

	position := 0
	for _, ch := range source {
		op, ok := OpOf(ch)
		if ok {
			err = b.add(op, position)
			if err != nil {
				return
			}
		}
		position++
	}

	return b.finish()
}

// FromOps builds an IR from an instruction sequence.
// Positions, including those of parse errors, are instruction indices.
func FromOps(ops []Op) (prog *IR, err error) {
	b := &builder{}

	for n, op := range ops {
		if !op.Valid() {
			err = &ErrIndex{Index: n, Err: ErrOpInvalid}
			return
		}
		err = b.add(op, n)
		if err != nil {
			return
		}
	}

	return b.finish()
}

// Validate checks that the IR is safe to execute.
func (prog *IR) Validate() (err error) {
	count := len(prog.Ops)
	if len(prog.JumpTable) != count || len(prog.Position) != count {
		return ErrIRMismatch
	}

	for n, op := range prog.Ops {
		if !op.Valid() {
			return &ErrIndex{Index: n, Err: ErrOpInvalid}
		}
		if !op.Loop() {
			continue
		}
		target := prog.JumpTable[n]
		if target < 0 || target >= count || prog.JumpTable[target] != n {
			return &ErrIndex{Index: n, Err: ErrJumpTable}
		}
		var want Op
		var ordered bool
		if op == OP_LOOP_START {
			want, ordered = OP_LOOP_END, target > n
		} else {
			want, ordered = OP_LOOP_START, target < n
		}
		if prog.Ops[target] != want || !ordered {
			return &ErrIndex{Index: n, Err: ErrJumpTable}
		}
	}

	return
}

// Len returns the number of instructions.
func (prog *IR) Len() int {
	return len(prog.Ops)
}

// Codes iterates over the instructions by index.
func (prog *IR) Codes() iter.Seq2[int, Op] {
	return func(yield func(ip int, op Op) bool) {
		for ip, op := range prog.Ops {
			if !yield(ip, op) {
				return
			}
		}
	}
}

// Source returns the instruction symbols as source text, without comments.
func (prog *IR) Source() string {
	var sb strings.Builder
	sb.Grow(len(prog.Ops))
	for _, op := range prog.Codes() {
		sb.WriteByte(op.Symbol())
	}
	return sb.String()
}

// Listing writes one line per instruction: index, source position,
// symbol, and the jump target of loop instructions.
func (prog *IR) Listing(w io.Writer) (err error) {
	for ip, op := range prog.Codes() {
		line := fmt.Sprintf("%05d %6d  %v", ip, prog.Position[ip], op)
		if op.Loop() {
			line += fmt.Sprintf("  -> %05d", prog.JumpTable[ip])
		}
		_, err = fmt.Fprintln(w, line)
		if err != nil {
			return
		}
	}

	return
}
