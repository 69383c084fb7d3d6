// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package std

import "github.com/grailbio/revwire/wire"

// ArrayCodec adapts a fixed-size array: N elements in declaration order,
// no length prefix (the arity is part of the type, not the wire data).
// The runtime value is a []interface{} of exactly N entries.
type ArrayCodec struct {
	Elem wire.FieldCodec
	N    int
}

func (c ArrayCodec) Encode(w *wire.Writer, value interface{}) error {
	vs := value.([]interface{})
	if len(vs) != c.N {
		return wire.Malformed("array arity mismatch: got %d want %d", len(vs), c.N)
	}
	for _, v := range vs {
		if err := c.Elem.Encode(w, v); err != nil {
			return err
		}
	}
	return nil
}

func (c ArrayCodec) Decode(r *wire.Reader) (interface{}, error) {
	vs := make([]interface{}, c.N)
	for i := range vs {
		v, err := c.Elem.Decode(r)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}
