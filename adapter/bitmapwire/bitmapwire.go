// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package bitmapwire adapts github.com/RoaringBitmap/roaring/v2's
// Bitmap to wire.FieldCodec using the library's own compressed
// serialization, frozen at revision 1 like every Standard Adapter Layer
// composite.
package bitmapwire

import (
	"bytes"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/grailbio/revwire/wire"
)

// Codec round-trips *roaring.Bitmap as a length-prefixed blob in the
// library's own wire format.
var Codec = wire.FieldCodecFuncs{
	EncodeFunc: func(w *wire.Writer, v interface{}) error {
		bm := v.(*roaring.Bitmap)
		var buf bytes.Buffer
		if _, err := bm.WriteTo(&buf); err != nil {
			return err
		}
		return w.WriteBytes(buf.Bytes())
	},
	DecodeFunc: func(r *wire.Reader) (interface{}, error) {
		b, err := r.ReadBytes()
		if err != nil {
			return nil, err
		}
		bm := roaring.New()
		if _, err := bm.ReadFrom(bytes.NewReader(b)); err != nil {
			return nil, wire.Malformed("bitmapwire: %v", err)
		}
		return bm, nil
	},
}
