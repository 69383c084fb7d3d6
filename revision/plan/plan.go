// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package plan

import "github.com/grailbio/revwire/revision"

// FillKind distinguishes the two reasons a reader plan applies a fill-in
// action after decoding a revision-r body, per spec.md section 4.4.
type FillKind int

const (
	// FillDefault invokes a field's default provider because it was
	// added after revision r.
	FillDefault FillKind = iota + 1
	// FillConvert invokes a field's converter because it was live at
	// r but retired by the aggregate's current revision N.
	FillConvert
)

// FillAction is one step of a reader plan's post-decode fix-up sequence,
// executed in the field descriptor's declaration order.
type FillAction struct {
	Kind       FillKind
	FieldIndex int // index into the relevant []FieldDescriptor
}

// FieldPlan is the reader plan for one record body (the aggregate's own
// body, or one union variant's payload) at one revision r: the ordered
// list of live field indices to decode, and the fill-in actions to apply
// afterward to bring the partial value to the aggregate's current
// revision N.
type FieldPlan struct {
	Revision uint16
	Live     []int // indices into []FieldDescriptor, declaration order, live at Revision
	Fills    []FillAction
}

// Plan is the compiled, validated output of Build for one aggregate
// descriptor: the writer plan at the aggregate's current revision N, and
// one reader plan per revision in [1, N].
type Plan struct {
	Descriptor *revision.AggregateDescriptor

	// WriterLive holds, for a record, the indices of fields live at N;
	// for a union, the indices of variants live at N.
	WriterLive []int

	// Readers holds, for a record, the per-revision FieldPlan over the
	// aggregate's own Fields.
	Readers map[uint16]FieldPlan

	// DiscriminantLive holds, for a union, the indices (into
	// Descriptor.Variants) of variants live at r, in declaration order;
	// the position within this slice is the r-era wire discriminant.
	DiscriminantLive map[uint16][]int

	// VariantReaders holds, for a union, the per-revision FieldPlan over
	// each variant's own payload Fields, keyed by variant index.
	VariantReaders map[uint16]map[int]FieldPlan
}
