// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package macro expands $(...) compile-time expressions in bfc source.
//
// Each $(expr) is evaluated as a Starlark expression and replaced by its
// string result, so $("+" * 65 + ".") writes an 'A'. Defines are bound as
// Starlark globals, along with LINENO for the line being expanded.
package macro

import (
	"log"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Expander rewrites $(...) spans in source text.
type Expander struct {
	Verbose bool              // If set, logs each expansion.
	Logger  *log.Logger       // Verbose output. Nil selects log.Default().
	Define  map[string]string // Names bound during evaluation.
}

func (ex *Expander) logger() *log.Logger {
	if ex.Logger == nil {
		return log.Default()
	}
	return ex.Logger
}

// SetDefine parses a NAME=VALUE definition.
func (ex *Expander) SetDefine(text string) (err error) {
	name, value, ok := strings.Cut(text, "=")
	if !ok || len(name) == 0 {
		err = ErrDefineSyntax
		return
	}

	if ex.Define == nil {
		ex.Define = map[string]string{}
	}
	ex.Define[name] = value

	return
}

// globals returns the Starlark bindings for a line.
// Defines that parse as integers are bound as ints, others as strings.
func (ex *Expander) globals(lineno int) starlark.StringDict {
	pred := starlark.StringDict{
		"LINENO": starlark.MakeInt(lineno),
	}

	for key, str := range ex.Define {
		v64, err := strconv.ParseInt(str, 0, 64)
		if err == nil {
			pred[key] = starlark.MakeInt64(v64)
		} else {
			pred[key] = starlark.String(str)
		}
	}

	return pred
}

// eval evaluates a single expression.
func (ex *Expander) eval(expr string, lineno int) (text string, err error) {
	thread := starlark.Thread{Name: "macro"}
	opts := syntax.FileOptions{}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, ex.globals(lineno))
	if err != nil {
		return
	}

	st_str, ok := dict["rc"].(starlark.String)
	if !ok {
		err = ErrResultType
		return
	}

	text = st_str.GoString()
	return
}

// closing returns the index of the ')' that balances the '(' at
// line[open], or -1. Parentheses inside string literals do not count.
func closing(line string, open int) int {
	depth := 0
	var quote byte

	for n := open; n < len(line); n++ {
		ch := line[n]
		if quote != 0 {
			switch ch {
			case '\\':
				n++
			case quote:
				quote = 0
			}
			continue
		}
		switch ch {
		case '"', '\'':
			quote = ch
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				if ch != ')' {
					return -1
				}
				return n
			}
		}
	}

	return -1
}

// expandLine replaces the $(...) spans in a single line.
func (ex *Expander) expandLine(line string, lineno int) (text string, err error) {
	var sb strings.Builder

	for {
		start := strings.Index(line, "$(")
		if start < 0 {
			break
		}
		end := closing(line, start+1)
		if end < 0 {
			err = &ErrExpression{Expr: line[start+2:], Line: lineno, Err: ErrUnbalanced}
			return
		}

		expr := line[start+2 : end]
		value, _err := ex.eval(expr, lineno)
		if _err != nil {
			err = &ErrExpression{Expr: expr, Line: lineno, Err: _err}
			return
		}
		if ex.Verbose {
			ex.logger().Printf("macro: line %d $(%v) => %d bytes", lineno, expr, len(value))
		}

		sb.WriteString(line[:start])
		sb.WriteString(value)
		line = line[end+1:]
	}

	sb.WriteString(line)
	text = sb.String()
	return
}

// Expand replaces every $(...) span in the source.
// An expression ends at the ')' that balances its '(', and may not span lines.
// Expanded text is not rescanned.
func (ex *Expander) Expand(source string) (text string, err error) {
	lines := strings.Split(source, "\n")

	for n, line := range lines {
		lines[n], err = ex.expandLine(line, n+1)
		if err != nil {
			return
		}
	}

	text = strings.Join(lines, "\n")
	return
}
