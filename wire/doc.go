// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package wire implements the primitive binary codec that the revision
// framework builds on: deterministic little-endian encoding of fixed-width
// integers, floats, booleans, chars, variable-length unsigned lengths and
// discriminants, and byte-counted strings and sequences. Package wire has
// no notion of revisions; it is the leaf layer every higher layer
// (wire/std, the adapter/* packages, and package revision) delegates to.
//
// The variable-length unsigned scheme ("varint" in this package) uses a
// single tag byte: values 0-250 are encoded inline as that byte; 251, 252
// and 253 select a 2, 4 or 8 byte little-endian payload respectively for
// values that don't fit in a single byte. This mirrors the teacher
// repo's own fixed-width little-endian binaryWriter
// (encoding/bam/marshal.go), generalized into a reusable, always-checked
// codec with explicit error returns.
package wire
