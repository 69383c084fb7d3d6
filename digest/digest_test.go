// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package digest_test

import (
	"testing"

	"github.com/grailbio/revwire/digest"
	"github.com/stretchr/testify/require"
)

func TestHashersAreDeterministic(t *testing.T) {
	data := []byte("revwire plan cache key")
	for name, h := range map[string]digest.Hasher{
		"farm":        digest.Farm,
		"highwayhash": digest.HighwayHash,
		"seahash":     digest.Seahash,
	} {
		t.Run(name, func(t *testing.T) {
			a := h.Sum64(data)
			b := h.Sum64(append([]byte(nil), data...))
			require.Equal(t, a, b)
		})
	}
}

func TestHashersDistinguishInputs(t *testing.T) {
	for name, h := range map[string]digest.Hasher{
		"farm":        digest.Farm,
		"highwayhash": digest.HighwayHash,
		"seahash":     digest.Seahash,
	} {
		t.Run(name, func(t *testing.T) {
			require.NotEqual(t, h.Sum64([]byte("a")), h.Sum64([]byte("b")))
			require.NotEqual(t, h.Sum64(nil), h.Sum64([]byte("x")))
		})
	}
}
