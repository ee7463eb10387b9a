// Package io provides the byte ports used by the bfc engine.
//
// A Sink consumes the bytes written by the '.' instruction, and a Source
// produces the bytes read by the ',' instruction. The method sets match
// io.ByteWriter and io.ByteReader, so *bytes.Buffer, *bufio.Writer and
// *bufio.Reader can be used directly.
//
// Ports are owned by the caller. An engine only holds a port for its own
// lifetime, so a port must stay valid for as long as its engine is in use.
package io

// Sink consumes one byte at a time.
type Sink interface {
	WriteByte(value byte) error
}

// Source produces one byte at a time, and may block.
type Source interface {
	ReadByte() (byte, error)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(value byte) error

func (fn SinkFunc) WriteByte(value byte) error {
	return fn(value)
}

// SourceFunc adapts a function to a Source.
type SourceFunc func() (byte, error)

func (fn SourceFunc) ReadByte() (byte, error) {
	return fn()
}

// NoPort is a Sink and Source that is not connected to anything.
type NoPort struct{}

func (NoPort) WriteByte(value byte) error {
	return ErrNoPort
}

func (NoPort) ReadByte() (byte, error) {
	return 0, ErrNoPort
}
