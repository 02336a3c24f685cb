// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package binaryutil provides the unsigned integer encode and decode
// primitives shared by the serializer and deserializer.
//
// Each routine is parameterized by byte width (1 through 8) instead of being
// instantiated per fixed-size type. Manual bit-shifting is used rather than
// encoding/binary so that one loop covers every width the format allows;
// values always travel through a uint64 accumulator, so width-8 round trips
// cannot overflow.
//
// None of the functions in this package bounds-check their inputs beyond the
// hints left for the compiler. Callers own the cursor arithmetic.
package binaryutil
