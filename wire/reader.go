// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"
)

// defaultMaxLength bounds WriteVarint-prefixed lengths read by ReadBytes,
// ReadString and any sequence/map/set codec built on them, absent an
// explicit ReaderOpts.MaxLength. It exists so a corrupt or adversarial
// length prefix cannot force an unbounded allocation.
const defaultMaxLength = 1 << 32

// ReaderOpts configures a Reader. The zero value is a usable default,
// following the teacher's own plain-struct-of-options convention
// (recordio.WriterOpts / recordio.ScannerOpts in
// encoding/pam/pamutil/index.go) rather than functional options.
type ReaderOpts struct {
	// MaxLength caps any length value read through ReadLength (ReadBytes,
	// ReadString, and sequence/map/set element counts in wire/std); plain
	// ReadVarint values such as union discriminants are not capped. Zero means
	// defaultMaxLength. Exceeding it is a Malformed error, not
	// Truncated, since the prefix itself decoded fine.
	MaxLength uint64
}

// Reader decodes primitive values from an underlying io.Reader using the
// scheme documented in package doc. A Reader holds no revision state.
type Reader struct {
	r    io.Reader
	opts ReaderOpts
	buf  [8]byte
}

// NewReader returns a Reader that reads from r with the given options.
func NewReader(r io.Reader, opts ReaderOpts) *Reader {
	if opts.MaxLength == 0 {
		opts.MaxLength = defaultMaxLength
	}
	return &Reader{r: r, opts: opts}
}

// MaxLength returns the effective length cap in force for r.
func (r *Reader) MaxLength() uint64 { return r.opts.MaxLength }

func (r *Reader) read(n int) error {
	if _, err := io.ReadFull(r.r, r.buf[:n]); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return ErrTruncated
		}
		return Truncated("read", err)
	}
	return nil
}

// ReadBool reads one byte and rejects anything but 0 or 1.
func (r *Reader) ReadBool() (bool, error) {
	if err := r.read(1); err != nil {
		return false, err
	}
	switch r.buf[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, Malformed("invalid bool byte %#x", r.buf[0])
	}
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if err := r.read(1); err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

// ReadUint16 reads a little-endian uint16.
func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.read(2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.buf[:2]), nil
}

// ReadUint32 reads a little-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.read(4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.buf[:4]), nil
}

// ReadUint64 reads a little-endian uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	if err := r.read(8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(r.buf[:8]), nil
}

// ReadInt8 reads a little-endian int8.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err
}

// ReadInt16 reads a little-endian int16.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadInt32 reads a little-endian int32.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadInt64 reads a little-endian int64.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadFloat32 reads a little-endian IEEE-754 float32.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFloat64 reads a little-endian IEEE-754 float64.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadChar reads a 32-bit little-endian Unicode scalar value, rejecting
// surrogates and values beyond U+10FFFF.
func (r *Reader) ReadChar() (rune, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	if v > utf8.MaxRune || (v >= 0xD800 && v <= 0xDFFF) {
		return 0, Malformed("invalid char scalar value %#x", v)
	}
	return rune(v), nil
}

// ReadVarint reads the tagged variable-length unsigned scheme written by
// Writer.WriteVarint.
func (r *Reader) ReadVarint() (uint64, error) {
	tag, err := r.ReadUint8()
	if err != nil {
		return 0, err
	}
	switch {
	case tag <= varintMax1:
		return uint64(tag), nil
	case tag == varintTag2:
		v, err := r.ReadUint16()
		return uint64(v), err
	case tag == varintTag4:
		v, err := r.ReadUint32()
		return uint64(v), err
	case tag == varintTag8:
		return r.ReadUint64()
	default:
		return 0, Malformed("invalid varint tag %#x", tag)
	}
}

// ReadLength reads a varint and rejects it if it exceeds MaxLength.
func (r *Reader) ReadLength() (uint64, error) {
	n, err := r.ReadVarint()
	if err != nil {
		return 0, err
	}
	if n > r.opts.MaxLength {
		return 0, Malformed("length %d exceeds cap %d", n, r.opts.MaxLength)
	}
	return n, nil
}

// ReadBytes reads a length prefix (capped by MaxLength) followed by that
// many raw bytes.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadLength()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return nil, Truncated("bytes", err)
	}
	return buf, nil
}

// ReadString reads a length-prefixed UTF-8 string, validating encoding.
func (r *Reader) ReadString() (string, error) {
	b, err := r.ReadBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", Malformed("invalid utf8 string")
	}
	return string(b), nil
}
