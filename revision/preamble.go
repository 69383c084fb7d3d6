// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package revision

import "github.com/grailbio/revwire/wire"

// WritePreamble writes the revision preamble: a single variable-length
// unsigned integer naming the writer's current revision. It is written
// at the very start of every user-defined aggregate's body, and nested
// aggregates carry their own preamble independently -- a field of type T
// does not force T to synchronize its own revision with the enclosing
// aggregate.
func WritePreamble(w *wire.Writer, rev uint16) error {
	return w.WriteVarint(uint64(rev))
}

// ReadPreamble reads the revision preamble written by WritePreamble. It
// does not itself validate the revision against any aggregate's current
// revision N; callers (package revision/engine) do that, since only the
// engine knows which aggregate's plan is in play.
func ReadPreamble(r *wire.Reader) (uint16, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return 0, err
	}
	if v > 0xFFFF {
		return 0, wire.Malformed("revision %d overflows uint16", v)
	}
	return uint16(v), nil
}
