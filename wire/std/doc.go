// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package std implements the standard adapter layer: wire.FieldCodec
// implementations for stdlib-like composite types (optional, result,
// boxed, tuples up to 5, ordered/unordered maps and sets, a priority
// heap, fixed arrays, and the Reverse/Wrapping/Bounded/Cow/NotNaN
// wrappers). Every type here is frozen at revision 1: none of them ever
// writes or expects a revision preamble, since they compose only wire
// primitives and each other.
//
// The ordered map and ordered set are backed by github.com/biogo/store/llrb,
// the same left-leaning red-black tree the teacher repo uses for sorted
// shard lookups (encoding/bampair/shard_info.go), generalized here from a
// single concrete key type to any Ordered key.
package std
