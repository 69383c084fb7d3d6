// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package std

import "github.com/grailbio/revwire/wire"

// OptionalCodec adapts a pointer-shaped optional value: one discriminant
// byte (0 absent, 1 present), followed by the payload if present.
type OptionalCodec struct {
	Elem wire.FieldCodec
}

func (c OptionalCodec) Encode(w *wire.Writer, value interface{}) error {
	opt := value.(Optional)
	if !opt.Present {
		return w.WriteUint8(0)
	}
	if err := w.WriteUint8(1); err != nil {
		return err
	}
	return c.Elem.Encode(w, opt.Value)
}

func (c OptionalCodec) Decode(r *wire.Reader) (interface{}, error) {
	tag, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	switch tag {
	case 0:
		return Optional{}, nil
	case 1:
		v, err := c.Elem.Decode(r)
		if err != nil {
			return nil, err
		}
		return Optional{Present: true, Value: v}, nil
	default:
		return nil, wire.Malformed("invalid optional discriminant %#x", tag)
	}
}

// Optional is the untyped payload OptionalCodec round-trips. Generated
// field accessors (FieldDescriptor.Get/Set) are expected to translate to
// and from whatever option type the aggregate's Go representation uses
// (e.g. a Go generic Option[T], or a *T).
type Optional struct {
	Present bool
	Value   interface{}
}
