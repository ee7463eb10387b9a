package io

import (
	"errors"

	"github.com/ezrec/bfc/translate"
)

var f = translate.From

var (
	// Port errors
	ErrNoPort    = errors.New(f("port not connected"))
	ErrEOFPolicy = errors.New(f("unknown eof policy"))
)
