// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bufsd

// Serializable is the capability contract for types that can emit their own
// wire form. A Serializable can be appended to a Serializer with PushObject.
type Serializable interface {
	// Serialize returns the byte representation of the value.
	Serialize() []byte
}

// Deserializable is the capability contract for types that can restore
// themselves from a Deserializer. FillFrom consumes bytes through the
// Deserializer's cursor, so it moves the cursor forward.
type Deserializable interface {
	FillFrom(d *Deserializer) error
}

// FillFromBytes restores obj from a raw byte buffer by wrapping it in a fresh
// Deserializer.
func FillFromBytes(obj Deserializable, buf []byte) error {
	return obj.FillFrom(NewDeserializer(buf))
}

// SerializableString returns the serialized form of obj as a lowercase hex
// string.
func SerializableString(obj Serializable) string {
	return BufferString(obj.Serialize())
}
