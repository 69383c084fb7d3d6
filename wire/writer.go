// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"io"
	"math"
)

const (
	varintTag2 = 251
	varintTag4 = 252
	varintTag8 = 253
	varintMax1 = 250
)

// Writer encodes primitive values to an underlying io.Writer using the
// fixed-int little-endian + tagged-varint scheme described in package doc.
// A Writer holds no revision state; it is reused by every layer above it.
type Writer struct {
	w   io.Writer
	buf [8]byte
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) write(n int) error {
	_, err := w.w.Write(w.buf[:n])
	return err
}

// WriteBool writes a single byte, 0 or 1.
func (w *Writer) WriteBool(v bool) error {
	if v {
		w.buf[0] = 1
	} else {
		w.buf[0] = 0
	}
	return w.write(1)
}

// WriteUint8 writes a single byte.
func (w *Writer) WriteUint8(v uint8) error {
	w.buf[0] = v
	return w.write(1)
}

// WriteUint16 writes v little-endian.
func (w *Writer) WriteUint16(v uint16) error {
	binary.LittleEndian.PutUint16(w.buf[:2], v)
	return w.write(2)
}

// WriteUint32 writes v little-endian.
func (w *Writer) WriteUint32(v uint32) error {
	binary.LittleEndian.PutUint32(w.buf[:4], v)
	return w.write(4)
}

// WriteUint64 writes v little-endian.
func (w *Writer) WriteUint64(v uint64) error {
	binary.LittleEndian.PutUint64(w.buf[:8], v)
	return w.write(8)
}

// WriteInt8 writes v little-endian (one byte).
func (w *Writer) WriteInt8(v int8) error { return w.WriteUint8(uint8(v)) }

// WriteInt16 writes v little-endian.
func (w *Writer) WriteInt16(v int16) error { return w.WriteUint16(uint16(v)) }

// WriteInt32 writes v little-endian.
func (w *Writer) WriteInt32(v int32) error { return w.WriteUint32(uint32(v)) }

// WriteInt64 writes v little-endian.
func (w *Writer) WriteInt64(v int64) error { return w.WriteUint64(uint64(v)) }

// WriteFloat32 writes v little-endian, IEEE-754 bit pattern.
func (w *Writer) WriteFloat32(v float32) error {
	return w.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes v little-endian, IEEE-754 bit pattern.
func (w *Writer) WriteFloat64(v float64) error {
	return w.WriteUint64(math.Float64bits(v))
}

// WriteChar writes a Unicode scalar value as a 32-bit little-endian
// integer. The caller is responsible for ensuring r is a valid scalar
// value (not a surrogate, <= U+10FFFF); WriteChar does not itself reject
// invalid runes since writers never produce Malformed (spec: write errors
// are only the sink's own I/O failures).
func (w *Writer) WriteChar(r rune) error {
	return w.WriteUint32(uint32(r))
}

// WriteVarint writes v using the tagged variable-length unsigned scheme:
// values <= 250 are a single byte; larger values are preceded by a tag
// byte (251/252/253) selecting a 2/4/8-byte little-endian payload.
func (w *Writer) WriteVarint(v uint64) error {
	switch {
	case v <= varintMax1:
		return w.WriteUint8(uint8(v))
	case v <= math.MaxUint16:
		if err := w.WriteUint8(varintTag2); err != nil {
			return err
		}
		return w.WriteUint16(uint16(v))
	case v <= math.MaxUint32:
		if err := w.WriteUint8(varintTag4); err != nil {
			return err
		}
		return w.WriteUint32(uint32(v))
	default:
		if err := w.WriteUint8(varintTag8); err != nil {
			return err
		}
		return w.WriteUint64(v)
	}
}

// WriteBytes writes a length prefix (WriteVarint) followed by b.
func (w *Writer) WriteBytes(b []byte) error {
	if err := w.WriteVarint(uint64(len(b))); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	_, err := w.w.Write(b)
	return err
}

// WriteString writes a length prefix followed by the UTF-8 bytes of s.
func (w *Writer) WriteString(s string) error {
	return w.WriteBytes([]byte(s))
}
