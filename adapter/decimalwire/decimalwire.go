// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package decimalwire adapts github.com/shopspring/decimal's Decimal
// type to wire.FieldCodec via the library's own MarshalBinary /
// UnmarshalBinary, frozen at revision 1 like every Standard Adapter
// Layer composite.
package decimalwire

import (
	"github.com/shopspring/decimal"

	"github.com/grailbio/revwire/wire"
)

// Codec round-trips decimal.Decimal as a length-prefixed binary blob.
var Codec = wire.FieldCodecFuncs{
	EncodeFunc: func(w *wire.Writer, v interface{}) error {
		b, err := v.(decimal.Decimal).MarshalBinary()
		if err != nil {
			return wire.Malformed("decimalwire: %v", err)
		}
		return w.WriteBytes(b)
	},
	DecodeFunc: func(r *wire.Reader) (interface{}, error) {
		b, err := r.ReadBytes()
		if err != nil {
			return nil, err
		}
		var d decimal.Decimal
		if err := d.UnmarshalBinary(b); err != nil {
			return nil, wire.Malformed("decimalwire: %v", err)
		}
		return d, nil
	},
}
