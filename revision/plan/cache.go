// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package plan

import (
	"bytes"
	"fmt"
	"sync"

	"v.io/x/lib/vlog"

	"github.com/grailbio/revwire/digest"
	"github.com/grailbio/revwire/revision"
)

// cache maps a descriptor's content digest to its already-built Plan.
// Descriptors are ordinarily package-level vars built once by generated
// code, so in practice this is keyed by a stable fingerprint of that one
// value -- but keying by content rather than by pointer also lets two
// independently-constructed, field-for-field identical descriptors
// (e.g. in tests) share a Plan, which is what spec.md section 8
// property 7 (idempotence of plan construction) actually asks for. The
// fingerprint is trusted as-is: it already covers every field the Plan
// is built from (see fingerprint below), so two descriptors that
// fingerprint the same compile to the same Plan regardless of identity.
var cache sync.Map // map[uint64]*Plan

func lookup(desc *revision.AggregateDescriptor) (*Plan, bool) {
	v, ok := cache.Load(fingerprint(desc))
	if !ok {
		vlog.VI(1).Infof("plan: %s: cache miss", desc.Name)
		return nil, false
	}
	vlog.VI(1).Infof("plan: %s: cache hit", desc.Name)
	return v.(*Plan), true
}

func store(desc *revision.AggregateDescriptor, p *Plan) {
	cache.Store(fingerprint(desc), p)
}

// fingerprint summarizes the parts of desc that affect the built Plan:
// kind, revision, and each field/variant's name, lifetime interval, and
// (for Default/Convert/Upgrade/Build) whether the migration hook is set.
// Codec and the other closures are deliberately excluded -- two
// descriptors with the same shape but different closures would still
// compile to the same Plan.
func fingerprint(desc *revision.AggregateDescriptor) uint64 {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s|%d|%d|", desc.Name, desc.Kind, desc.Revision)
	for _, f := range desc.Fields {
		fmt.Fprintf(&buf, "F(%s,%d,%d,%t,%t);", f.Name, f.Start, f.End, f.Default != nil, f.Convert != nil)
	}
	for _, v := range desc.Variants {
		fmt.Fprintf(&buf, "V(%s,%d,%d,%t,%t);", v.Name, v.Start, v.End, v.Build != nil, v.Upgrade != nil)
		for _, f := range v.Fields {
			fmt.Fprintf(&buf, "  F(%s,%d,%d,%t,%t);", f.Name, f.Start, f.End, f.Default != nil, f.Convert != nil)
		}
	}
	return digest.Farm.Sum64(buf.Bytes())
}
