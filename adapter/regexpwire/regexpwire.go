// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package regexpwire adapts github.com/dlclark/regexp2's Regexp to
// wire.FieldCodec. Only the pattern source and compile options are
// wire content; the compiled machine is rebuilt on decode, frozen at
// revision 1 like every Standard Adapter Layer composite.
package regexpwire

import (
	"github.com/dlclark/regexp2"

	"github.com/grailbio/revwire/wire"
)

// Codec round-trips *regexp2.Regexp as its pattern string plus its
// RegexOptions bitmask.
var Codec = wire.FieldCodecFuncs{
	EncodeFunc: func(w *wire.Writer, v interface{}) error {
		re := v.(*regexp2.Regexp)
		if err := w.WriteString(re.String()); err != nil {
			return err
		}
		return w.WriteUint32(uint32(re.Options))
	},
	DecodeFunc: func(r *wire.Reader) (interface{}, error) {
		pattern, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		opts, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		re, err := regexp2.Compile(pattern, regexp2.RegexOptions(opts))
		if err != nil {
			return nil, wire.Malformed("regexpwire: %v", err)
		}
		return re, nil
	},
}
