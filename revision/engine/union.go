// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package engine

import (
	"v.io/x/lib/vlog"

	"github.com/grailbio/revwire/revision"
	"github.com/grailbio/revwire/revision/plan"
	"github.com/grailbio/revwire/wire"
)

// EncodeUnion writes value, a fully-built current-revision value of the
// tagged union described by desc, as a revision preamble, a
// variable-length discriminant (value's position within the variants
// live at desc.Revision, in declaration order), and the matching
// variant's live payload fields.
func EncodeUnion(w *wire.Writer, desc *revision.AggregateDescriptor, value interface{}) error {
	p, err := plan.Build(desc)
	if err != nil {
		return err
	}
	if err := revision.WritePreamble(w, desc.Revision); err != nil {
		return err
	}
	variantIdx, payload, err := matchVariant(desc, p.WriterLive, value)
	if err != nil {
		return err
	}
	discriminant := -1
	for i, idx := range p.WriterLive {
		if idx == variantIdx {
			discriminant = i
			break
		}
	}
	if err := w.WriteVarint(uint64(discriminant)); err != nil {
		return err
	}
	fp := p.VariantReaders[desc.Revision][variantIdx]
	variant := desc.Variants[variantIdx]
	for _, idx := range fp.Live {
		f := variant.Fields[idx]
		if err := f.Codec.Encode(w, f.Get(payload)); err != nil {
			return err
		}
	}
	return nil
}

func matchVariant(desc *revision.AggregateDescriptor, live []int, value interface{}) (variantIdx int, payload interface{}, err error) {
	for _, idx := range live {
		v := desc.Variants[idx]
		if p, ok := v.Match(value); ok {
			return idx, p, nil
		}
	}
	return 0, nil, revision.Unsupported("%s: value does not match any variant live at revision %d", desc.Name, desc.Revision)
}

// DecodeUnion reads a union preamble and body written by EncodeUnion at
// any revision in [1, desc.Revision], and returns a fully-migrated
// current-revision value.
func DecodeUnion(r *wire.Reader, desc *revision.AggregateDescriptor) (interface{}, error) {
	p, err := plan.Build(desc)
	if err != nil {
		return nil, err
	}
	rev, err := revision.ReadPreamble(r)
	if err != nil {
		return nil, err
	}
	if rev < 1 || rev > desc.Revision {
		return nil, revision.UnknownRevision(desc.Name, rev, desc.Revision)
	}
	live := p.DiscriminantLive[rev]
	d, err := r.ReadVarint()
	if err != nil {
		return nil, err
	}
	if d >= uint64(len(live)) {
		return nil, wire.Malformed("%s: revision %d: discriminant %d outside [0, %d)", desc.Name, rev, d, len(live))
	}
	variantIdx := live[d]
	variant := desc.Variants[variantIdx]
	fp := p.VariantReaders[rev][variantIdx]

	retired := variant.End != revision.NoEnd && variant.End <= desc.Revision
	vlog.VI(1).Infof("revision/engine: %s: revision %d decoded as variant %q (retired=%t)", desc.Name, rev, variant.Name, retired)
	if retired {
		tuple := make([]interface{}, len(variant.Fields))
		for _, idx := range fp.Live {
			v, err := variant.Fields[idx].Codec.Decode(r)
			if err != nil {
				return nil, err
			}
			tuple[idx] = v
		}
		result, err := variant.Upgrade(tuple)
		if err != nil {
			return nil, revision.Conversion(desc.Name+"."+variant.Name+": upgrade", err)
		}
		return result, nil
	}

	partial := variant.NewPartial()
	built, err := decodeBody(r, desc.Name+"."+variant.Name, variant.Fields, fp, rev, partial)
	if err != nil {
		return nil, err
	}
	return variant.Build(built), nil
}
