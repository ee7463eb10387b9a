// Package ir implements the instruction set and translator for bfc.
//
// The language has eight instructions, each a single source symbol:
//
//	>  move the tape pointer right
//	<  move the tape pointer left
//	+  increment the current cell
//	-  decrement the current cell
//	.  output the current cell
//	,  input into the current cell
//	[  jump past the matching ] if the current cell is zero
//	]  jump back past the matching [ if the current cell is non-zero
//
// Every other character is a comment. The translator produces an IR: the
// instruction sequence plus a jump table pairing each [ with its ], built
// in a single pass over the source.
package ir
