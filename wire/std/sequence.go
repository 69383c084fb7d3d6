// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package std

import "github.com/grailbio/revwire/wire"

// SequenceCodec adapts a variable-length homogeneous sequence: a length
// prefix followed by the concatenated element encodings, in iteration
// order. Used directly for Heap (the wire layout of a priority heap is
// indistinguishable from a plain sequence: heap order is a property of
// how the runtime value is used, not of its encoding) and, as SetCodec,
// for unordered sets. The runtime value is a []interface{}.
type SequenceCodec struct {
	Elem wire.FieldCodec
}

func (c SequenceCodec) Encode(w *wire.Writer, value interface{}) error {
	vs := value.([]interface{})
	if err := w.WriteVarint(uint64(len(vs))); err != nil {
		return err
	}
	for _, v := range vs {
		if err := c.Elem.Encode(w, v); err != nil {
			return err
		}
	}
	return nil
}

func (c SequenceCodec) Decode(r *wire.Reader) (interface{}, error) {
	n, err := r.ReadLength()
	if err != nil {
		return nil, err
	}
	vs := make([]interface{}, 0, n)
	for i := uint64(0); i < n; i++ {
		v, err := c.Elem.Decode(r)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// HeapCodec is SequenceCodec under a clearer name for a priority heap
// field: the wire layout carries no ordering guarantee of its own, so a
// decoder that cares about heap order must container/heap.Init the
// resulting slice itself.
type HeapCodec = SequenceCodec

// CharSequenceCodec adapts a sequence of runes (runtime value []rune) as
// a length prefix followed by one 32-bit char per rune, distinct from String (which is the common case of a char
// sequence encoded as UTF-8 bytes with no per-rune framing).
type CharSequenceCodec struct{}

func (CharSequenceCodec) Encode(w *wire.Writer, value interface{}) error {
	rs := value.([]rune)
	if err := w.WriteVarint(uint64(len(rs))); err != nil {
		return err
	}
	for _, r := range rs {
		if err := w.WriteChar(r); err != nil {
			return err
		}
	}
	return nil
}

func (CharSequenceCodec) Decode(r *wire.Reader) (interface{}, error) {
	n, err := r.ReadLength()
	if err != nil {
		return nil, err
	}
	rs := make([]rune, n)
	for i := range rs {
		ch, err := r.ReadChar()
		if err != nil {
			return nil, err
		}
		rs[i] = ch
	}
	return rs, nil
}
