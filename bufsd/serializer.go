// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bufsd

import (
	"fmt"
	"reflect"

	"github.com/bufsd/bufsd-go/internal/binaryutil"
)

// SizeMismatchError occurs when a width-tagged push is called with a value
// whose declared type does not store exactly that many bits.
type SizeMismatchError struct {
	// Expected is the bit width named by the call.
	Expected int
	// Actual is the bit width of the value's declared type.
	Actual int
}

// Error implements the error interface.
func (e SizeMismatchError) Error() string {
	return fmt.Sprintf("tried to push a %d bits value, but the input contains %d bits", e.Expected, e.Actual)
}

// deferredSize records a reserved length field awaiting the final buffer
// size. offset+width bytes are already present in the buffer.
type deferredSize struct {
	offset int
	width  Width
	order  ByteOrder
}

// Serializer incrementally builds a byte buffer. Push methods that cannot
// fail return the Serializer so calls can be chained. The zero value is
// usable; NewSerializer preallocates capacity.
type Serializer struct {
	buf      []byte
	deferred []deferredSize
}

// NewSerializer returns an empty Serializer. The internal buffer reserves
// 1024 bytes up front to avoid early reallocations.
func NewSerializer() *Serializer {
	return &Serializer{buf: make([]byte, 0, 1024)}
}

// NewSerializerSize returns a Serializer whose buffer starts with size bytes
// all set to fill.
func NewSerializerSize(size int, fill byte) *Serializer {
	buf := make([]byte, size)
	if fill != 0 {
		for i := range buf {
			buf[i] = fill
		}
	}
	return &Serializer{buf: buf}
}

// PushByte appends a single byte.
func (s *Serializer) PushByte(v byte) *Serializer {
	s.buf = append(s.buf, v)
	return s
}

// PushUint16 appends v as 2 bytes in the given order.
func (s *Serializer) PushUint16(v uint16, order ByteOrder) *Serializer {
	s.appendFixed(uint64(v), Width16, order)
	return s
}

// PushUint32 appends v as 4 bytes in the given order.
func (s *Serializer) PushUint32(v uint32, order ByteOrder) *Serializer {
	s.appendFixed(uint64(v), Width32, order)
	return s
}

// PushUint64 appends v as 8 bytes in the given order.
func (s *Serializer) PushUint64(v uint64, order ByteOrder) *Serializer {
	s.appendFixed(v, Width64, order)
	return s
}

// PushFixed appends value as width bytes in the given order. The value must
// be a uint8, uint16, uint32 or uint64 whose storage size is exactly width;
// otherwise nothing is appended and a SizeMismatchError describing the
// expected and actual bit widths is returned. This is the guard against
// pushing a value through a call tagged with the wrong width.
func (s *Serializer) PushFixed(value interface{}, width Width, order ByteOrder) error {
	var v uint64
	var natural Width
	switch t := value.(type) {
	case uint8:
		v, natural = uint64(t), Width8
	case uint16:
		v, natural = uint64(t), Width16
	case uint32:
		v, natural = uint64(t), Width32
	case uint64:
		v, natural = t, Width64
	default:
		var bits int
		if rt := reflect.TypeOf(value); rt != nil {
			bits = int(rt.Size()) * 8
		}
		return SizeMismatchError{Expected: width.Bits(), Actual: bits}
	}
	if !validWidth(width) || natural != width {
		return SizeMismatchError{Expected: width.Bits(), Actual: natural.Bits()}
	}
	s.appendFixed(v, width, order)
	return nil
}

func (s *Serializer) appendFixed(v uint64, width Width, order ByteOrder) {
	if order == BigEndian {
		s.buf = binaryutil.AppendUintBE(s.buf, v, int(width))
		return
	}
	s.buf = binaryutil.AppendUintLE(s.buf, v, int(width))
}

// PushBytes appends b verbatim. Any length, including zero, is accepted.
func (s *Serializer) PushBytes(b []byte) *Serializer {
	s.buf = append(s.buf, b...)
	return s
}

// PushObject appends the serialized form of obj.
func (s *Serializer) PushObject(obj Serializable) *Serializer {
	return s.PushBytes(obj.Serialize())
}

// DeferSize reserves width zero bytes at the current end of the buffer and
// records them as a length field. When the buffer is materialized with Bytes,
// the reserved bytes are overwritten with the total buffer length at that
// moment, encoded as a width-byte unsigned integer in the given order.
//
// The written length counts the whole buffer, including the field itself and
// everything appended after it. This mirrors the wire formats the package was
// built for; it is a documented contract, not the common
// "length of what follows" framing.
func (s *Serializer) DeferSize(width Width, order ByteOrder) *Serializer {
	s.deferred = append(s.deferred, deferredSize{offset: len(s.buf), width: width, order: order})
	for i := 0; i < int(width); i++ {
		s.buf = append(s.buf, 0x00)
	}
	return s
}

// DeferSize32BigEndian reserves a 4-byte big-endian length field, the most
// common framing.
func (s *Serializer) DeferSize32BigEndian() *Serializer {
	return s.DeferSize(Width32, BigEndian)
}

// Bytes patches every reserved length field with the current total buffer
// length, in registration order, and returns the buffer. The patch list is
// kept, and patches are recomputed from the current length on every call, so
// Bytes is idempotent and may be interleaved with further pushes.
//
// The returned slice is the Serializer's internal buffer, not a copy.
func (s *Serializer) Bytes() []byte {
	size := uint64(len(s.buf))
	for _, d := range s.deferred {
		if d.order == BigEndian {
			binaryutil.PutUintBE(s.buf, d.offset, size, int(d.width))
		} else {
			binaryutil.PutUintLE(s.buf, d.offset, size, int(d.width))
		}
	}
	return s.buf
}

// Len returns the current buffer length in bytes.
func (s *Serializer) Len() int { return len(s.buf) }

// String returns the finalized buffer as a lowercase hex string.
func (s *Serializer) String() string {
	return BufferString(s.Bytes())
}
