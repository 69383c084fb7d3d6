// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package digest provides pluggable, non-cryptographic content hashing
// used by package revision/plan to fingerprint an aggregate descriptor
// as its plan-cache key. It is
// deliberately not used anywhere in the wire format itself: spec.md
// section 6 is explicit that the format has "no checksums, no trailer".
//
// Three interchangeable algorithms are wired in, each grounded on the
// teacher repo's own choice of fast hash for a different purpose:
// dgryski/go-farm (fusion/kmer_index.go, k-mer indexing), minio/highwayhash
// (fusion/postprocess.go, duplicate-read detection) and
// blainsmith.com/go/seahash as the third interchangeable implementation.
package digest
