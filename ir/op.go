package ir

// Op is a single instruction.
type Op uint8

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_INC_PTR    = Op(0) // >
	OP_DEC_PTR    = Op(1) // <
	OP_INC_CELL   = Op(2) // +
	OP_DEC_CELL   = Op(3) // -
	OP_OUTPUT     = Op(4) // .
	OP_INPUT      = Op(5) // ,
	OP_LOOP_START = Op(6) // [
	OP_LOOP_END   = Op(7) // ]
)

// OP_COUNT is the number of instructions in the language.
const OP_COUNT = 8

// opMap is a map of source symbols to instructions.
var opMap = map[rune]Op{
	'>': OP_INC_PTR,
	'<': OP_DEC_PTR,
	'+': OP_INC_CELL,
	'-': OP_DEC_CELL,
	'.': OP_OUTPUT,
	',': OP_INPUT,
	'[': OP_LOOP_START,
	']': OP_LOOP_END,
}

// OpOf returns the instruction for a source symbol.
// Returns false if the symbol is a comment.
func OpOf(ch rune) (op Op, ok bool) {
	op, ok = opMap[ch]
	return
}

// Valid returns true if the op is one of the eight instructions.
func (op Op) Valid() bool {
	return op < OP_COUNT
}

// Symbol returns the source symbol of the instruction, or '?' if invalid.
func (op Op) Symbol() byte {
	if !op.Valid() {
		return '?'
	}
	return op.String()[0]
}

// Loop returns true for the instructions that use the jump table.
func (op Op) Loop() bool {
	return op == OP_LOOP_START || op == OP_LOOP_END
}
