// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package plan is the revision planner: given an aggregate descriptor it
// validates the descriptor (spec.md section 4.4's validation pass, a
// programmer error surfaced at build time) and computes the writer plan
// at the aggregate's current revision N plus one reader plan per
// revision in [1, N], each carrying the fill-in actions that bring a
// partially-built value forward to N.
//
// Built plans are cached in a process-wide sync.Map keyed by a content
// digest of the descriptor (package digest), so that repeated calls to
// Build for the same descriptor -- which spec.md section 8 property 7
// requires to be idempotent -- return the identical cached *Plan rather
// than recomputing it. A cache miss recomputes byte-for-byte the same
// plan a cache hit would have returned; the cache is purely an
// optimization layered on top of the spec, not a semantic device.
package plan
