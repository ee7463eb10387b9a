package ir

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const helloWorld = `
>++++++++[<+++++++++>-]<.
>++++[<+++++++>-]<+.
+++++++..
+++.
>>++++++[<+++++++>-]<++.
------------.
>++++++[<+++++++++>-]<+.
<.
+++.
------.
--------.
>>>++++[<++++++++>-]<+.`

// checkPairs verifies every loop instruction is symmetrically paired.
func checkPairs(t *testing.T, prog *IR) {
	assert := assert.New(t)

	assert.Equal(len(prog.Ops), len(prog.JumpTable))
	assert.Equal(len(prog.Ops), len(prog.Position))
	for ip, op := range prog.Codes() {
		if op != OP_LOOP_START {
			continue
		}
		end := prog.JumpTable[ip]
		assert.Equal(OP_LOOP_END, prog.Ops[end], "ip %d", ip)
		assert.Equal(ip, prog.JumpTable[end], "ip %d", ip)
	}
}

func TestParse_Symbols(t *testing.T) {
	assert := assert.New(t)

	table := []string{
		"",
		"+",
		"><+-.,[]",
		"[[][]]",
		"+[->+<]>.",
		",[.,]",
	}

	for _, source := range table {
		prog, err := Parse(source)
		assert.NoError(err, source)
		assert.Equal(source, prog.Source(), source)
		assert.Equal(len(source), prog.Len(), source)
		checkPairs(t, prog)
	}
}

func TestParse_Comments(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("add: + then [ loop - ] # done.")
	assert.NoError(err)
	assert.Equal("+[-].", prog.Source())
	assert.Equal([]int{5, 12, 19, 21, 29}, prog.Position)
	assert.Equal(3, prog.JumpTable[1])
	assert.Equal(1, prog.JumpTable[3])
}

func TestParse_HelloWorld(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse(helloWorld)
	assert.NoError(err)
	assert.NoError(prog.Validate())
	checkPairs(t, prog)

	stripped := strings.NewReplacer("\n", "").Replace(helloWorld)
	assert.Equal(stripped, prog.Source())
}

func TestParse_Nested(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("[[+]-[.]]")
	assert.NoError(err)
	assert.Equal([]int{8, 3, 0, 1, 0, 7, 0, 5, 0}, prog.JumpTable)
}

func TestParse_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		source   string
		position int
		kind     ParseErrorKind
		sentinel error
	}){
		{"open", "[", 0, PARSE_UNCLOSED_LOOP, ErrUnclosedLoop},
		{"close", "]", 0, PARSE_UNEXPECTED_LOOP_END, ErrUnexpectedLoopEnd},
		{"comment_close", "ab]", 2, PARSE_UNEXPECTED_LOOP_END, ErrUnexpectedLoopEnd},
		{"rune_close", "é]", 1, PARSE_UNEXPECTED_LOOP_END, ErrUnexpectedLoopEnd},
		{"outer_open", "[[]", 0, PARSE_UNCLOSED_LOOP, ErrUnclosedLoop},
		{"inner_open", "[][", 2, PARSE_UNCLOSED_LOOP, ErrUnclosedLoop},
		{"innermost", "[ [ [ ]", 2, PARSE_UNCLOSED_LOOP, ErrUnclosedLoop},
		{"close_first", "][", 0, PARSE_UNEXPECTED_LOOP_END, ErrUnexpectedLoopEnd},
		{"close_early", "[]]", 2, PARSE_UNEXPECTED_LOOP_END, ErrUnexpectedLoopEnd},
		{"stops_at_close", "+]]]", 1, PARSE_UNEXPECTED_LOOP_END, ErrUnexpectedLoopEnd},
	}

	for _, entry := range table {
		prog, err := Parse(entry.source)
		assert.Nil(prog, entry.name)

		var perr *ErrParse
		if !assert.True(errors.As(err, &perr), entry.name) {
			continue
		}
		assert.Equal(entry.position, perr.Position, entry.name)
		assert.Equal(entry.kind, perr.Kind, entry.name)
		assert.ErrorIs(err, entry.sentinel, entry.name)
		assert.ErrorIs(err, &ErrParse{}, entry.name)
	}
}

func TestParseError_Message(t *testing.T) {
	assert := assert.New(t)

	var err error = &ErrParse{Position: 7, Kind: PARSE_UNCLOSED_LOOP}
	assert.Contains(err.Error(), "7")
	assert.Contains(err.Error(), "unclosed loop")

	// Positions are printed without digit grouping.
	_, err = Parse(strings.Repeat("+", 12345) + "]")
	assert.ErrorIs(err, ErrUnexpectedLoopEnd)
	assert.Equal("position 12345: unexpected loop end", err.Error())

	ierr := &ErrIndex{Index: 23456, Err: ErrJumpTable}
	assert.Equal("instruction 23456: jump table invalid", ierr.Error())
}

func TestFromOps(t *testing.T) {
	assert := assert.New(t)

	ops := []Op{OP_INC_CELL, OP_LOOP_START, OP_DEC_CELL, OP_LOOP_END, OP_OUTPUT}
	prog, err := FromOps(ops)
	assert.NoError(err)
	assert.Equal("+[-].", prog.Source())
	assert.Equal([]int{0, 1, 2, 3, 4}, prog.Position)
	assert.NoError(prog.Validate())
	checkPairs(t, prog)

	_, err = FromOps([]Op{OP_LOOP_END})
	assert.ErrorIs(err, ErrUnexpectedLoopEnd)

	_, err = FromOps([]Op{OP_INC_CELL, Op(8)})
	assert.ErrorIs(err, ErrOpInvalid)
	var ierr *ErrIndex
	assert.True(errors.As(err, &ierr))
	assert.Equal(1, ierr.Index)
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		prog IR
		err  error
	}){
		{"empty", IR{}, nil},
		{"plain", IR{
			Ops:       []Op{OP_INC_CELL, OP_OUTPUT},
			JumpTable: []int{0, 0},
			Position:  []int{0, 1},
		}, nil},
		{"loop", IR{
			Ops:       []Op{OP_LOOP_START, OP_DEC_CELL, OP_LOOP_END},
			JumpTable: []int{2, 0, 0},
			Position:  []int{0, 1, 2},
		}, nil},
		{"short_table", IR{
			Ops:       []Op{OP_INC_CELL, OP_OUTPUT},
			JumpTable: []int{0},
			Position:  []int{0, 1},
		}, ErrIRMismatch},
		{"bad_op", IR{
			Ops:       []Op{Op(42)},
			JumpTable: []int{0},
			Position:  []int{0},
		}, ErrOpInvalid},
		{"asymmetric", IR{
			Ops:       []Op{OP_LOOP_START, OP_LOOP_START, OP_LOOP_END, OP_LOOP_END},
			JumpTable: []int{3, 2, 1, 1},
			Position:  []int{0, 1, 2, 3},
		}, ErrJumpTable},
		{"out_of_range", IR{
			Ops:       []Op{OP_LOOP_START, OP_LOOP_END},
			JumpTable: []int{5, 0},
			Position:  []int{0, 1},
		}, ErrJumpTable},
		{"not_a_loop", IR{
			Ops:       []Op{OP_LOOP_START, OP_INC_CELL},
			JumpTable: []int{1, 0},
			Position:  []int{0, 1},
		}, ErrJumpTable},
		{"backwards", IR{
			Ops:       []Op{OP_LOOP_END, OP_LOOP_START},
			JumpTable: []int{1, 0},
			Position:  []int{0, 1},
		}, ErrJumpTable},
	}

	for _, entry := range table {
		err := entry.prog.Validate()
		if entry.err == nil {
			assert.NoError(err, entry.name)
		} else {
			assert.ErrorIs(err, entry.err, entry.name)
		}
	}
}

func TestListing(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("+ [-]")
	assert.NoError(err)

	var buf bytes.Buffer
	assert.NoError(prog.Listing(&buf))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal([]string{
		"00000      0  +",
		"00001      2  [  -> 00003",
		"00002      3  -",
		"00003      4  ]  -> 00001",
	}, lines)
}
