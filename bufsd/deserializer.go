// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bufsd

import (
	"fmt"

	"github.com/bufsd/bufsd-go/internal/binaryutil"
)

// OutOfBoundsError occurs when a read, skip or seek asks for more bytes than
// remain in the buffer. The cursor is left where it was.
type OutOfBoundsError struct {
	// Requested is the number of bytes the operation asked for.
	Requested int
	// Remaining is the number of bytes that were actually left.
	Remaining int
}

// Error implements the error interface.
func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("requested %d bytes, but only %d remain in the buffer", e.Requested, e.Remaining)
}

// Deserializer extracts typed values from a fixed byte buffer through a
// forward-moving cursor. The underlying buffer is never mutated. Every
// consuming operation is bounds-checked before the cursor moves, so a failed
// call leaves the Deserializer exactly as it was.
type Deserializer struct {
	buf    []byte
	cursor int
}

// NewDeserializer returns a Deserializer positioned at the start of buf. The
// buffer is used as-is, not copied; callers must not mutate it while the
// Deserializer is in use.
func NewDeserializer(buf []byte) *Deserializer {
	return &Deserializer{buf: buf}
}

// require checks that n bytes can be consumed without moving the cursor.
func (d *Deserializer) require(n int) error {
	if rem := d.Remaining(); n > rem {
		return OutOfBoundsError{Requested: n, Remaining: rem}
	}
	return nil
}

func (d *Deserializer) readFixed(width Width, order ByteOrder) (uint64, error) {
	w := int(width)
	if err := d.require(w); err != nil {
		return 0, err
	}
	var v uint64
	if order == BigEndian {
		v = binaryutil.UintBE(d.buf[d.cursor:], w)
	} else {
		v = binaryutil.UintLE(d.buf[d.cursor:], w)
	}
	d.cursor += w
	return v, nil
}

// ReadByte returns the next byte and advances the cursor by 1.
func (d *Deserializer) ReadByte() (byte, error) {
	if err := d.require(1); err != nil {
		return 0, err
	}
	b := d.buf[d.cursor]
	d.cursor++
	return b, nil
}

// ReadUint16 decodes the next 2 bytes in the given order and advances the
// cursor by 2.
func (d *Deserializer) ReadUint16(order ByteOrder) (uint16, error) {
	v, err := d.readFixed(Width16, order)
	return uint16(v), err
}

// ReadUint32 decodes the next 4 bytes in the given order and advances the
// cursor by 4.
func (d *Deserializer) ReadUint32(order ByteOrder) (uint32, error) {
	v, err := d.readFixed(Width32, order)
	return uint32(v), err
}

// ReadUint64 decodes the next 8 bytes in the given order and advances the
// cursor by 8.
func (d *Deserializer) ReadUint64(order ByteOrder) (uint64, error) {
	return d.readFixed(Width64, order)
}

// ReadFixed decodes the next width bytes in the given order and advances the
// cursor by width. The decoded value is returned in a uint64 regardless of
// width.
func (d *Deserializer) ReadFixed(width Width, order ByteOrder) (uint64, error) {
	return d.readFixed(width, order)
}

// ReadBytes returns the next n bytes verbatim and advances the cursor by n.
// n of zero is legal and returns an empty slice without consuming input, even
// when nothing remains. The returned slice shares memory with the underlying
// buffer.
func (d *Deserializer) ReadBytes(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	if err := d.require(n); err != nil {
		return nil, err
	}
	b := d.buf[d.cursor : d.cursor+n : d.cursor+n]
	d.cursor += n
	return b, nil
}

// Skip advances the cursor by n bytes without returning data.
func (d *Deserializer) Skip(n int) error {
	if err := d.require(n); err != nil {
		return err
	}
	d.cursor += n
	return nil
}

// Cursor returns the current cursor position, starting from 0.
func (d *Deserializer) Cursor() int { return d.cursor }

// Remaining returns the number of unconsumed bytes.
func (d *Deserializer) Remaining() int { return len(d.buf) - d.cursor }

// Len returns the full buffer length.
func (d *Deserializer) Len() int { return len(d.buf) }

// Reset moves the cursor back to the start of the buffer.
func (d *Deserializer) Reset() { d.cursor = 0 }

// Seek moves the cursor to an absolute position. It is a Reset followed by a
// Skip, and fails with the same OutOfBoundsError as Skip when pos exceeds
// Len, leaving the cursor unchanged.
func (d *Deserializer) Seek(pos int) error {
	prev := d.cursor
	d.Reset()
	if err := d.Skip(pos); err != nil {
		d.cursor = prev
		return err
	}
	return nil
}

// String returns the full underlying buffer as a lowercase hex string,
// regardless of cursor position.
func (d *Deserializer) String() string {
	return BufferString(d.buf)
}
