// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bufsd

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// InvalidFormatError occurs when a hex string cannot be decoded into bytes,
// either because it contains a character that is neither a hex digit nor
// whitespace, or because the number of hex digits is odd.
type InvalidFormatError struct {
	// Char is the offending character, when one exists.
	Char byte
	// OddLength is the digit count, when the problem is an odd number of
	// digits rather than a bad character.
	OddLength int
}

// Error implements the error interface.
func (e InvalidFormatError) Error() string {
	if e.OddLength != 0 {
		return fmt.Sprintf("hex string has an odd number of digits (%d)", e.OddLength)
	}
	return fmt.Sprintf("invalid character %q in hex string", e.Char)
}

// BufferString returns b as a lowercase hex string, two digits per byte, no
// separators.
func BufferString(b []byte) string {
	return hex.EncodeToString(b)
}

// FormatBytes returns b as a lowercase hex string with sep between bytes.
// Useful for human-readable dumps of wire buffers.
func FormatBytes(b []byte, sep string) string {
	if len(b) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(b) * (2 + len(sep)))
	for i, v := range b {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteByte(hextable[v>>4])
		sb.WriteByte(hextable[v&0x0f])
	}
	return sb.String()
}

const hextable = "0123456789abcdef"

// ParseBufferString decodes a hex string into bytes. Whitespace anywhere in
// the string is ignored, so "dead beef" and "deadbeef" decode identically;
// both digit cases are accepted. Any other non-digit character, or an odd
// number of digits after cleaning, fails with an InvalidFormatError.
func ParseBufferString(s string) ([]byte, error) {
	clean := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isSpace(c):
		case isHexDigit(c):
			clean = append(clean, c)
		default:
			return nil, InvalidFormatError{Char: c}
		}
	}
	if len(clean)%2 != 0 {
		return nil, InvalidFormatError{OddLength: len(clean)}
	}
	dst := make([]byte, len(clean)/2)
	if _, err := hex.Decode(dst, clean); err != nil {
		// Unreachable: every character was validated above.
		return nil, err
	}
	return dst, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isHexDigit(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	default:
		return false
	}
}
