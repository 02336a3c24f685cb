// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package binaryutil

// AppendUintBE appends the low width bytes of v to dst most-significant byte
// first and returns the extended slice.
func AppendUintBE(dst []byte, v uint64, width int) []byte {
	for i := width - 1; i >= 0; i-- {
		dst = append(dst, byte(v>>(8*uint(i))))
	}
	return dst
}

// AppendUintLE appends the low width bytes of v to dst least-significant byte
// first and returns the extended slice.
func AppendUintLE(dst []byte, v uint64, width int) []byte {
	for i := 0; i < width; i++ {
		dst = append(dst, byte(v>>(8*uint(i))))
	}
	return dst
}

// PutUintBE writes the low width bytes of v into dst starting at offset,
// most-significant byte first. The caller must ensure capacity.
func PutUintBE(dst []byte, offset int, v uint64, width int) {
	_ = dst[offset+width-1] // bounds check hint to compiler; see golang.org/issue/14808
	for i := 0; i < width; i++ {
		dst[offset+i] = byte(v >> (8 * uint(width-1-i)))
	}
}

// PutUintLE writes the low width bytes of v into dst starting at offset,
// least-significant byte first. The caller must ensure capacity.
func PutUintLE(dst []byte, offset int, v uint64, width int) {
	_ = dst[offset+width-1] // bounds check hint to compiler; see golang.org/issue/14808
	for i := 0; i < width; i++ {
		dst[offset+i] = byte(v >> (8 * uint(i)))
	}
}

// UintBE decodes width bytes of src as a big-endian unsigned integer. The
// caller must ensure src holds at least width bytes.
func UintBE(src []byte, width int) uint64 {
	_ = src[width-1] // bounds check hint to compiler; see golang.org/issue/14808
	var v uint64
	for i := 0; i < width; i++ {
		v |= uint64(src[i]) << (8 * uint(width-1-i))
	}
	return v
}

// UintLE decodes width bytes of src as a little-endian unsigned integer. The
// caller must ensure src holds at least width bytes.
func UintLE(src []byte, width int) uint64 {
	_ = src[width-1] // bounds check hint to compiler; see golang.org/issue/14808
	var v uint64
	for i := 0; i < width; i++ {
		v |= uint64(src[i]) << (8 * uint(i))
	}
	return v
}
