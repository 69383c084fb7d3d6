// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package geomwire adapts seehuhn.de/go/geom/matrix's Matrix (a 2-D
// affine transform, six float64 coefficients) to wire.FieldCodec,
// frozen at revision 1 like every Standard Adapter Layer composite.
package geomwire

import (
	"seehuhn.de/go/geom/matrix"

	"github.com/grailbio/revwire/wire"
)

// Codec round-trips matrix.Matrix as six little-endian float64s.
var Codec = wire.FieldCodecFuncs{
	EncodeFunc: func(w *wire.Writer, v interface{}) error {
		m := v.(matrix.Matrix)
		for _, c := range m {
			if err := w.WriteFloat64(c); err != nil {
				return err
			}
		}
		return nil
	},
	DecodeFunc: func(r *wire.Reader) (interface{}, error) {
		var m matrix.Matrix
		for i := range m {
			c, err := r.ReadFloat64()
			if err != nil {
				return nil, err
			}
			m[i] = c
		}
		return m, nil
	},
}
