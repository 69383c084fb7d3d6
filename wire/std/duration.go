// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package std

import (
	"time"

	"github.com/grailbio/revwire/wire"
)

// DurationCodec adapts time.Duration as its int64 nanosecond count.
var DurationCodec = wire.FieldCodecFuncs{
	EncodeFunc: func(w *wire.Writer, v interface{}) error {
		return w.WriteInt64(int64(v.(time.Duration)))
	},
	DecodeFunc: func(r *wire.Reader) (interface{}, error) {
		v, err := r.ReadInt64()
		if err != nil {
			return nil, err
		}
		return time.Duration(v), nil
	},
}
