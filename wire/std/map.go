// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package std

import "github.com/grailbio/revwire/wire"

// MapEntry is one key/value pair of an unordered Map's runtime value,
// used instead of a native Go map so the key type need not be a
// comparable Go type (it only needs to be whatever the caller's Key codec
// accepts).
type MapEntry struct {
	Key   interface{}
	Value interface{}
}

// MapCodec adapts an unordered map: a length prefix followed by
// concatenated key/value entries in the slice's order. Spec: "unordered
// containers emit in their current iteration order (reader does not
// require sorting)" -- callers that want a deterministic byte encoding
// should sort entries themselves before encoding, or use OrderedMap.
type MapCodec struct {
	Key   wire.FieldCodec
	Value wire.FieldCodec
}

func (c MapCodec) Encode(w *wire.Writer, value interface{}) error {
	entries := value.([]MapEntry)
	if err := w.WriteVarint(uint64(len(entries))); err != nil {
		return err
	}
	for _, e := range entries {
		if err := c.Key.Encode(w, e.Key); err != nil {
			return err
		}
		if err := c.Value.Encode(w, e.Value); err != nil {
			return err
		}
	}
	return nil
}

func (c MapCodec) Decode(r *wire.Reader) (interface{}, error) {
	n, err := r.ReadLength()
	if err != nil {
		return nil, err
	}
	entries := make([]MapEntry, 0, n)
	for i := uint64(0); i < n; i++ {
		k, err := c.Key.Decode(r)
		if err != nil {
			return nil, err
		}
		v, err := c.Value.Decode(r)
		if err != nil {
			return nil, err
		}
		entries = append(entries, MapEntry{Key: k, Value: v})
	}
	return entries, nil
}

// SetCodec adapts an unordered set as a length-prefixed element stream,
// the same wire shape as a Sequence; distinguished by name so generated
// code can tell, at the descriptor level, that duplicate-detection is the
// caller's concern rather than the wire format's.
type SetCodec = SequenceCodec
