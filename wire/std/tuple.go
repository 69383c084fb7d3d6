// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package std

import "github.com/grailbio/revwire/wire"

// TupleCodec adapts a fixed-arity tuple of up to 5 elements: the fields
// in order, with no framing of its own (spec: "Tuples: fields in order,
// no framing"). The runtime value is a []interface{} of exactly
// len(Elems) entries.
type TupleCodec struct {
	Elems []wire.FieldCodec
}

func (c TupleCodec) Encode(w *wire.Writer, value interface{}) error {
	vs := value.([]interface{})
	if len(vs) != len(c.Elems) {
		return wire.Malformed("tuple arity mismatch: got %d want %d", len(vs), len(c.Elems))
	}
	for i, elem := range c.Elems {
		if err := elem.Encode(w, vs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (c TupleCodec) Decode(r *wire.Reader) (interface{}, error) {
	vs := make([]interface{}, len(c.Elems))
	for i, elem := range c.Elems {
		v, err := elem.Decode(r)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}

// Tuple2 through Tuple5 construct a TupleCodec of the given arity; they
// exist only for readability at the call site.
func Tuple2(a, b wire.FieldCodec) TupleCodec { return TupleCodec{Elems: []wire.FieldCodec{a, b}} }
func Tuple3(a, b, c wire.FieldCodec) TupleCodec {
	return TupleCodec{Elems: []wire.FieldCodec{a, b, c}}
}
func Tuple4(a, b, c, d wire.FieldCodec) TupleCodec {
	return TupleCodec{Elems: []wire.FieldCodec{a, b, c, d}}
}
func Tuple5(a, b, c, d, e wire.FieldCodec) TupleCodec {
	return TupleCodec{Elems: []wire.FieldCodec{a, b, c, d, e}}
}
