// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bufsd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializerPush(t *testing.T) {
	testCases := []struct {
		name  string
		build func(s *Serializer)
		want  []byte
	}{
		{
			"PushByte",
			func(s *Serializer) { s.PushByte(0x20) },
			[]byte{0x20},
		},
		{
			"PushUint16 big-endian",
			func(s *Serializer) { s.PushUint16(0x1234, BigEndian) },
			[]byte{0x12, 0x34},
		},
		{
			"PushUint16 little-endian",
			func(s *Serializer) { s.PushUint16(0x1234, LittleEndian) },
			[]byte{0x34, 0x12},
		},
		{
			"PushUint32 big-endian",
			func(s *Serializer) { s.PushUint32(0x56789abc, BigEndian) },
			[]byte{0x56, 0x78, 0x9a, 0xbc},
		},
		{
			"PushUint32 little-endian",
			func(s *Serializer) { s.PushUint32(0x56789abc, LittleEndian) },
			[]byte{0xbc, 0x9a, 0x78, 0x56},
		},
		{
			"PushUint64 big-endian",
			func(s *Serializer) { s.PushUint64(0xdef0123456789abc, BigEndian) },
			[]byte{0xde, 0xf0, 0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc},
		},
		{
			"PushUint64 little-endian",
			func(s *Serializer) { s.PushUint64(0xdef0123456789abc, LittleEndian) },
			[]byte{0xbc, 0x9a, 0x78, 0x56, 0x34, 0x12, 0xf0, 0xde},
		},
		{
			"PushBytes",
			func(s *Serializer) { s.PushBytes([]byte{0xde, 0xad, 0xbe, 0xef}) },
			[]byte{0xde, 0xad, 0xbe, 0xef},
		},
		{
			"PushBytes empty",
			func(s *Serializer) { s.PushBytes(nil) },
			[]byte{},
		},
		{
			"chained pushes",
			func(s *Serializer) {
				s.PushByte(0x01).PushUint16(0x0203, BigEndian).PushBytes([]byte{0x04})
			},
			[]byte{0x01, 0x02, 0x03, 0x04},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSerializer()
			tc.build(s)
			got := s.Bytes()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("buffer mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tc.want), s.Len())
		})
	}
}

func TestNewSerializerSize(t *testing.T) {
	s := NewSerializerSize(4, 0xff)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, s.Bytes())

	s = NewSerializerSize(3, 0x00)
	assert.Equal(t, []byte{0x00, 0x00, 0x00}, s.Bytes())

	s = NewSerializerSize(0, 0xaa)
	assert.Equal(t, 0, s.Len())
}

func TestPushFixed(t *testing.T) {
	t.Run("matching widths", func(t *testing.T) {
		s := NewSerializer()
		require.NoError(t, s.PushFixed(uint8(0x01), Width8, BigEndian))
		require.NoError(t, s.PushFixed(uint16(0x0203), Width16, BigEndian))
		require.NoError(t, s.PushFixed(uint32(0x04050607), Width32, LittleEndian))
		require.NoError(t, s.PushFixed(uint64(0x08090a0b0c0d0e0f), Width64, BigEndian))
		want := []byte{
			0x01,
			0x02, 0x03,
			0x07, 0x06, 0x05, 0x04,
			0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
		}
		assert.Equal(t, want, s.Bytes())
	})

	t.Run("width mismatch", func(t *testing.T) {
		testCases := []struct {
			name  string
			value interface{}
			width Width
			want  SizeMismatchError
		}{
			{"uint32 through a 2-byte push", uint32(1), Width16, SizeMismatchError{Expected: 16, Actual: 32}},
			{"uint8 through an 8-byte push", uint8(1), Width64, SizeMismatchError{Expected: 64, Actual: 8}},
			{"uint16 through a 4-byte push", uint16(1), Width32, SizeMismatchError{Expected: 32, Actual: 16}},
			{"uint64 through a 1-byte push", uint64(1), Width8, SizeMismatchError{Expected: 8, Actual: 64}},
			{"signed value", int32(1), Width32, SizeMismatchError{Expected: 32, Actual: 32}},
			{"nil value", nil, Width16, SizeMismatchError{Expected: 16, Actual: 0}},
			{"invalid width tag", uint32(1), Width(3), SizeMismatchError{Expected: 24, Actual: 32}},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				s := NewSerializer()
				err := s.PushFixed(tc.value, tc.width, BigEndian)
				require.Error(t, err)
				assert.Equal(t, tc.want, err)
				assert.Equal(t, 0, s.Len(), "a failed push must not append")
			})
		}
	})
}

func TestDeferSize(t *testing.T) {
	t.Run("length counts the whole buffer", func(t *testing.T) {
		s := NewSerializer()
		// 3 bytes, the 4-byte field, then 5 more bytes.
		s.PushBytes([]byte{0xaa, 0xbb, 0xcc}).
			DeferSize(Width32, BigEndian).
			PushBytes([]byte{0x01, 0x02, 0x03, 0x04, 0x05})

		got := s.Bytes()
		require.Equal(t, 3+4+5, len(got))
		assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x0c}, got[3:7], "field must hold a+4+b = 12")
	})

	t.Run("little-endian field", func(t *testing.T) {
		s := NewSerializer()
		s.DeferSize(Width16, LittleEndian).PushBytes([]byte{0xff, 0xff})
		assert.Equal(t, []byte{0x04, 0x00, 0xff, 0xff}, s.Bytes())
	})

	t.Run("8-byte field", func(t *testing.T) {
		s := NewSerializer()
		s.DeferSize(Width64, BigEndian)
		assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x08}, s.Bytes())
	})

	t.Run("multiple fields patched in registration order", func(t *testing.T) {
		s := NewSerializer()
		s.DeferSize(Width16, BigEndian).
			PushByte(0x7f).
			DeferSize(Width16, LittleEndian)
		// total = 2 + 1 + 2 = 5
		assert.Equal(t, []byte{0x00, 0x05, 0x7f, 0x05, 0x00}, s.Bytes())
	})

	t.Run("DeferSize32BigEndian", func(t *testing.T) {
		s := NewSerializer()
		s.PushByte(0x01).DeferSize32BigEndian()
		assert.Equal(t, []byte{0x01, 0x00, 0x00, 0x00, 0x05}, s.Bytes())
	})
}

func TestBytesIdempotent(t *testing.T) {
	s := NewSerializer()
	s.PushUint16(0xbeef, BigEndian).DeferSize32BigEndian().PushByte(0x00)

	first := append([]byte(nil), s.Bytes()...)
	second := s.Bytes()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("finalize is not idempotent (-first +second):\n%s", diff)
	}

	// Pushing more bytes and finalizing again must re-patch with the new
	// total length.
	s.PushBytes([]byte{0x11, 0x22})
	got := s.Bytes()
	require.Equal(t, 9, len(got))
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x09}, got[2:6])
}

func TestSerializerString(t *testing.T) {
	s := NewSerializer()
	s.PushBytes([]byte{0xde, 0xad}).DeferSize(Width16, BigEndian)
	assert.Equal(t, "dead0004", s.String())
}
