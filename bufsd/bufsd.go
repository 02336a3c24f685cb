// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package bufsd implements a cursor-based binary serializer and deserializer
// pair for hand-built wire formats.
//
// A Serializer accumulates bytes with explicit endianness control and can
// reserve length fields that are back-patched with the final buffer size. A
// Deserializer consumes a fixed buffer through a forward-moving cursor with
// strict bounds checking. The two types are independent; an application
// composes them by writing and later reading the same byte layout.
//
// Neither type is safe for concurrent use. An instance assumes exclusive
// ownership by a single goroutine at a time.
package bufsd

// ByteOrder selects the byte order of a fixed-width push or read.
type ByteOrder uint8

// The two supported byte orders. BigEndian emits the most-significant byte
// first, LittleEndian the least-significant byte first.
const (
	BigEndian ByteOrder = iota
	LittleEndian
)

// String implements the fmt.Stringer interface.
func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "BigEndian"
	case LittleEndian:
		return "LittleEndian"
	default:
		return "<invalid byte order>"
	}
}

// Width is the byte width of a fixed-width value on the wire.
type Width uint8

// The widths the format supports. The constant value is the width in bytes.
const (
	Width8  Width = 1
	Width16 Width = 2
	Width32 Width = 4
	Width64 Width = 8
)

// Bits returns the width in bits.
func (w Width) Bits() int { return int(w) * 8 }

// String implements the fmt.Stringer interface.
func (w Width) String() string {
	switch w {
	case Width8:
		return "Width8"
	case Width16:
		return "Width16"
	case Width32:
		return "Width32"
	case Width64:
		return "Width64"
	default:
		return "<invalid width>"
	}
}

func validWidth(w Width) bool {
	switch w {
	case Width8, Width16, Width32, Width64:
		return true
	default:
		return false
	}
}
