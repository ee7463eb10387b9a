package io

import (
	"errors"
	"io"
	"strings"
)

// EOFPolicy selects what a Source produces once its input is exhausted.
type EOFPolicy int

//go:generate go tool stringer -linecomment -type=EOFPolicy
const (
	EOF_ERROR = EOFPolicy(0) // error
	EOF_ZERO  = EOFPolicy(1) // zero
	EOF_MAX   = EOFPolicy(2) // max
)

// ParseEOF returns the policy named by text.
func ParseEOF(text string) (policy EOFPolicy, err error) {
	for policy = EOF_ERROR; policy <= EOF_MAX; policy++ {
		if strings.EqualFold(text, policy.String()) {
			return
		}
	}

	policy = EOF_ERROR
	err = ErrEOFPolicy
	return
}

// eofSource applies an EOF policy to a Source.
type eofSource struct {
	Source
	policy EOFPolicy
}

// WithEOF wraps src so that io.EOF, even when wrapped, is handled by policy.
// EOF_ZERO produces 0 and EOF_MAX produces 255 instead of the error.
func WithEOF(src Source, policy EOFPolicy) Source {
	if policy == EOF_ERROR {
		return src
	}

	return &eofSource{Source: src, policy: policy}
}

func (es *eofSource) ReadByte() (value byte, err error) {
	value, err = es.Source.ReadByte()
	if !errors.Is(err, io.EOF) {
		return
	}

	err = nil
	switch es.policy {
	case EOF_ZERO:
		value = 0
	case EOF_MAX:
		value = 0xff
	}

	return
}
