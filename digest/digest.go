// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package digest

import (
	"encoding/binary"

	"blainsmith.com/go/seahash"
	farm "github.com/dgryski/go-farm"
	"github.com/minio/highwayhash"
)

// Hasher computes a 64-bit content fingerprint of b. Implementations are
// not required to be cryptographically secure; they exist to key a
// cache, not to authenticate data.
type Hasher interface {
	Sum64(b []byte) uint64
}

// Farm hashes with github.com/dgryski/go-farm, the algorithm the teacher
// repo uses for k-mer indexing (fusion/kmer_index.go).
var Farm Hasher = farmHasher{}

type farmHasher struct{}

func (farmHasher) Sum64(b []byte) uint64 { return farm.Hash64WithSeed(b, 0) }

// HighwayHash hashes with github.com/minio/highwayhash, the algorithm the
// teacher repo uses to group fusion candidates by gene pair
// (fusion/postprocess.go). It requires a 32-byte key; Sum64 uses the
// zero key, which is fine for a non-adversarial cache key.
var HighwayHash Hasher = highwayHasher{}

type highwayHasher struct{}

var highwayZeroKey = make([]byte, 32)

func (highwayHasher) Sum64(b []byte) uint64 {
	sum := highwayhash.Sum(b, highwayZeroKey)
	return binary.LittleEndian.Uint64(sum[:8])
}

// Seahash hashes with blainsmith.com/go/seahash, a third interchangeable
// algorithm wired in alongside the teacher's own two choices.
var Seahash Hasher = seahashHasher{}

type seahashHasher struct{}

func (seahashHasher) Sum64(b []byte) uint64 { return seahash.Sum64(b) }
