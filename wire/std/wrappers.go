// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package std

import "github.com/grailbio/revwire/wire"

// WrapperCodec implements the four "encode as the inner value" wrappers
// the spec groups together: Reverse (a comparator-flipping wrapper around
// an ordered type), Wrapping (a wraparound-arithmetic integer), Bounded
// (a clamped-range value) and Boxed (a heap-indirected value, used to
// break the reference cycle a recursive aggregate type would otherwise
// require -- see the framework's design notes on cycles). None of these
// change the wire representation of the value they wrap; they exist so
// that a field's Go type can differ from its wire type.
type WrapperCodec struct {
	Inner wire.FieldCodec
}

func (c WrapperCodec) Encode(w *wire.Writer, value interface{}) error { return c.Inner.Encode(w, value) }
func (c WrapperCodec) Decode(r *wire.Reader) (interface{}, error)     { return c.Inner.Decode(r) }

// ReverseCodec, WrappingCodec, BoundedCodec and BoxedCodec are
// WrapperCodec under names that match the spec's vocabulary; generated
// code picks whichever name documents intent best, they behave
// identically.
type (
	ReverseCodec  = WrapperCodec
	WrappingCodec = WrapperCodec
	BoundedCodec  = WrapperCodec
	BoxedCodec    = WrapperCodec
)

// CowCodec adapts a copy-on-write borrow: on the wire it is simply the
// inner value (a CoW wrapper has no observable effect on serialized
// bytes, only on whether encoding clones its argument).
type CowCodec = WrapperCodec

// NotNaNCodec adapts a float that is asserted never to be NaN, rejecting
// NaN on decode (spec 4.2: "NotNan additionally rejects NaN on decode").
type NotNaNCodec struct {
	Bits64 bool // true for float64, false for float32
}

func (c NotNaNCodec) Encode(w *wire.Writer, value interface{}) error {
	if c.Bits64 {
		return w.WriteFloat64(value.(float64))
	}
	return w.WriteFloat32(value.(float32))
}

func (c NotNaNCodec) Decode(r *wire.Reader) (interface{}, error) {
	if c.Bits64 {
		v, err := r.ReadFloat64()
		if err != nil {
			return nil, err
		}
		if v != v { // NaN check without importing math
			return nil, wire.Malformed("NotNaN: decoded NaN")
		}
		return v, nil
	}
	v, err := r.ReadFloat32()
	if err != nil {
		return nil, err
	}
	if v != v {
		return nil, wire.Malformed("NotNaN: decoded NaN")
	}
	return v, nil
}
