// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package uuidwire adapts github.com/satori/go.uuid's UUID type to
// wire.FieldCodec: a UUID is written as its frozen 16-byte form,
// matching the Standard Adapter Layer rule that composite adapters
// never carry their own revision preamble.
package uuidwire

import (
	uuid "github.com/satori/go.uuid"

	"github.com/grailbio/revwire/wire"
)

// Codec round-trips uuid.UUID as a length-prefixed 16-byte sequence.
var Codec = wire.FieldCodecFuncs{
	EncodeFunc: func(w *wire.Writer, v interface{}) error {
		u := v.(uuid.UUID)
		return w.WriteBytes(u.Bytes())
	},
	DecodeFunc: func(r *wire.Reader) (interface{}, error) {
		b, err := r.ReadBytes()
		if err != nil {
			return nil, err
		}
		u, err := uuid.FromBytes(b)
		if err != nil {
			return nil, wire.Malformed("uuidwire: %v", err)
		}
		return u, nil
	},
}
