package io

import (
	"bufio"
	"io"
)

// Console connects the engine to a terminal-like reader and writer.
//
// Output is buffered. Any pending output is flushed before each read, so
// a prompt is visible before the program waits for input. Input is read
// a byte at a time; nothing past the requested byte is consumed.
type Console struct {
	Input  io.Reader
	Output io.Writer

	writer *bufio.Writer
}

// WriteByte buffers a byte for output.
func (con *Console) WriteByte(value byte) error {
	if con.Output == nil {
		return ErrNoPort
	}
	if con.writer == nil {
		con.writer = bufio.NewWriter(con.Output)
	}

	return con.writer.WriteByte(value)
}

// ReadByte flushes pending output, then reads one byte of input.
// Returns io.EOF at the end of input.
func (con *Console) ReadByte() (value byte, err error) {
	err = con.Flush()
	if err != nil {
		return
	}

	if con.Input == nil {
		err = ErrNoPort
		return
	}

	var one [1]byte
	_, err = io.ReadFull(con.Input, one[:])
	if err != nil {
		return
	}

	value = one[0]
	return
}

// Flush writes any buffered output.
func (con *Console) Flush() (err error) {
	if con.writer == nil {
		return
	}

	return con.writer.Flush()
}
