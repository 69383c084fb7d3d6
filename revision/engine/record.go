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

// EncodeRecord writes value, a fully-built current-revision value of the
// record described by desc, as a revision preamble followed by its
// live fields in declaration order.
func EncodeRecord(w *wire.Writer, desc *revision.AggregateDescriptor, value interface{}) error {
	p, err := plan.Build(desc)
	if err != nil {
		return err
	}
	if err := revision.WritePreamble(w, desc.Revision); err != nil {
		return err
	}
	for _, idx := range p.WriterLive {
		f := desc.Fields[idx]
		if err := f.Codec.Encode(w, f.Get(value)); err != nil {
			return err
		}
	}
	return nil
}

// DecodeRecord reads a record preamble and body written by EncodeRecord
// at any revision in [1, desc.Revision], and returns a fully-migrated
// current-revision value built by newCurrent.
func DecodeRecord(r *wire.Reader, desc *revision.AggregateDescriptor, newCurrent func() interface{}) (interface{}, error) {
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
	fp := p.Readers[rev]
	vlog.VI(1).Infof("revision/engine: %s: selected reader plan for revision %d (%d fills)", desc.Name, rev, len(fp.Fills))
	current := newCurrent()
	return decodeBody(r, desc.Name, desc.Fields, fp, rev, current)
}

// decodeBody decodes one record body (an aggregate's own fields, or one
// union variant's payload fields) at source revision rev into dst,
// applying the field plan's fill-in actions afterward in declaration
// order. It is shared by DecodeRecord and the non-retired-variant path
// of DecodeUnion.
func decodeBody(r *wire.Reader, aggregate string, fields []revision.FieldDescriptor, fp plan.FieldPlan, rev uint16, dst interface{}) (interface{}, error) {
	decoded := make(map[int]interface{}, len(fp.Live))
	convertIdx := make(map[int]bool, len(fp.Fills))
	for _, a := range fp.Fills {
		if a.Kind == plan.FillConvert {
			convertIdx[a.FieldIndex] = true
		}
	}
	for _, idx := range fp.Live {
		f := fields[idx]
		v, err := f.Codec.Decode(r)
		if err != nil {
			return nil, err
		}
		if convertIdx[idx] {
			decoded[idx] = v
			continue
		}
		f.Set(dst, v)
	}
	for _, a := range fp.Fills {
		f := fields[a.FieldIndex]
		switch a.Kind {
		case plan.FillDefault:
			v, err := f.Default(rev)
			if err != nil {
				return nil, revision.Conversion(aggregate+"."+f.Name+": default", err)
			}
			f.Set(dst, v)
		case plan.FillConvert:
			vlog.VI(2).Infof("revision/engine: %s.%s: converting from revision %d", aggregate, f.Name, rev)
			if err := f.Convert(dst, rev, decoded[a.FieldIndex]); err != nil {
				return nil, revision.Conversion(aggregate+"."+f.Name+": convert", err)
			}
		}
	}
	return dst, nil
}
