// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package std

import "github.com/grailbio/revwire/wire"

// Result is the untyped payload ResultCodec round-trips: either an Ok
// value or an Err value, never both.
type Result struct {
	IsErr bool
	Ok    interface{}
	Err   interface{}
}

// ResultCodec adapts a two-variant result: one discriminant byte (0 Ok, 1
// Err), then the corresponding payload.
type ResultCodec struct {
	Ok  wire.FieldCodec
	Err wire.FieldCodec
}

func (c ResultCodec) Encode(w *wire.Writer, value interface{}) error {
	res := value.(Result)
	if !res.IsErr {
		if err := w.WriteUint8(0); err != nil {
			return err
		}
		return c.Ok.Encode(w, res.Ok)
	}
	if err := w.WriteUint8(1); err != nil {
		return err
	}
	return c.Err.Encode(w, res.Err)
}

func (c ResultCodec) Decode(r *wire.Reader) (interface{}, error) {
	tag, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	switch tag {
	case 0:
		v, err := c.Ok.Decode(r)
		if err != nil {
			return nil, err
		}
		return Result{Ok: v}, nil
	case 1:
		v, err := c.Err.Decode(r)
		if err != nil {
			return nil, err
		}
		return Result{IsErr: true, Err: v}, nil
	default:
		return nil, wire.Malformed("invalid result discriminant %#x", tag)
	}
}
