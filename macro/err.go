package macro

import (
	"errors"
	"strconv"

	"github.com/ezrec/bfc/translate"
)

var f = translate.From

var (
	ErrDefineSyntax = errors.New(f("define syntax, expected NAME=VALUE"))
	ErrResultType   = errors.New(f("expression result is not a string"))
	ErrUnbalanced   = errors.New(f("unbalanced parentheses"))
)

// ErrExpression is a failed $(...) expansion.
type ErrExpression struct {
	Expr string
	Line int
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("line %s $(%v) %v", strconv.Itoa(err.Line), err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}
