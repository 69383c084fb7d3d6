// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

//go:generate protoc -I. -I../vendor -I../vendor/github.com/gogo/protobuf/protobuf --gogofaster_out=. aggregate.proto

package revision

import "github.com/grailbio/revwire/wire"

// Kind distinguishes a record aggregate from a tagged-union aggregate.
type Kind int

const (
	KindRecord Kind = iota + 1
	KindUnion
)

// NoEnd is the End value meaning "this field/variant has not been
// retired": it is still live at the aggregate's current revision N.
const NoEnd uint16 = 0

// FieldDescriptor describes one field of a record, or one field of a
// union variant's payload. See spec.md section 3 ("Field descriptor").
type FieldDescriptor struct {
	// Name is used only for code generation / diagnostics.
	Name string

	// Start is the first revision at which the field exists, inclusive.
	// Zero means "not set"; Build treats it as 1.
	Start uint16

	// End is the first revision at which the field is gone, exclusive.
	// NoEnd means the field is still live at the aggregate's current
	// revision.
	End uint16

	// Codec encodes/decodes the field's one declared Go type. It never
	// changes across the field's lifetime, even though the field's
	// presence does.
	Codec wire.FieldCodec

	// Get reads the field's current value out of a fully-built
	// current-revision aggregate value, for the writer plan.
	Get func(current interface{}) interface{}

	// Set stores a value into a partially- or fully-built
	// current-revision aggregate value, for the reader plan.
	Set func(current interface{}, v interface{})

	// Default is required iff Start > 1. It synthesizes the field's
	// value when decoding a revision that predates the field, given the
	// source revision being decoded.
	Default func(sourceRevision uint16) (interface{}, error)

	// Convert is required iff End is set to a revision <= N (End == N+1,
	// like NoEnd, leaves the field live at N). It folds a decoded
	// old-typed value into the partially-built current aggregate.
	Convert func(current interface{}, sourceRevision uint16, old interface{}) error
}

// liveAt reports whether the field is part of the record/variant body at
// revision r: Start <= r < effectiveEnd(n).
func (f FieldDescriptor) liveAt(r, n uint16) bool {
	start := f.Start
	if start == 0 {
		start = 1
	}
	end := f.End
	if end == NoEnd {
		end = n + 1
	}
	return start <= r && r < end
}

func (f FieldDescriptor) effectiveStart() uint16 {
	if f.Start == 0 {
		return 1
	}
	return f.Start
}

func (f FieldDescriptor) effectiveEnd(n uint16) uint16 {
	if f.End == NoEnd {
		return n + 1
	}
	return f.End
}

// VariantDescriptor describes one variant of a tagged union. See
// spec.md section 3 ("Variant descriptor").
type VariantDescriptor struct {
	Name  string
	Start uint16
	End   uint16

	// Fields is this variant's payload, encoded/decoded as a record
	// body at the active revision.
	Fields []FieldDescriptor

	// NewPartial allocates a zero-state partial payload value for
	// decoding a variant that is still live at the aggregate's current
	// revision.
	NewPartial func() interface{}

	// Build wraps a fully-built, fully-migrated payload value into the
	// union's current-revision Go representation.
	Build func(payload interface{}) interface{}

	// Match reports whether current (a fully-built current-revision
	// union value) holds this variant, extracting its payload if so.
	// Used by the writer plan.
	Match func(current interface{}) (payload interface{}, ok bool)

	// Upgrade is required for a retired variant (End set to a revision
	// <= N): given
	// the decoded payload tuple ([]interface{}, one entry per
	// FieldDescriptor in declaration order, with defaults/converters
	// NOT yet applied -- a retired variant's payload has no "current
	// revision" shape of its own), it produces the final current
	// aggregate value directly, bypassing the partial-value path.
	Upgrade func(payload []interface{}) (interface{}, error)
}

func (v VariantDescriptor) liveAt(r, n uint16) bool {
	start := v.Start
	if start == 0 {
		start = 1
	}
	end := v.End
	if end == NoEnd {
		end = n + 1
	}
	return start <= r && r < end
}

func (v VariantDescriptor) effectiveStart() uint16 {
	if v.Start == 0 {
		return 1
	}
	return v.Start
}

func (v VariantDescriptor) effectiveEnd(n uint16) uint16 {
	if v.End == NoEnd {
		return n + 1
	}
	return v.End
}

// AggregateDescriptor is the static metadata for one user-defined record
// or tagged union: its kind, its current revision N, and its ordered
// field/variant list.
type AggregateDescriptor struct {
	Name     string
	Kind     Kind
	Revision uint16 // N
	Fields   []FieldDescriptor   // KindRecord
	Variants []VariantDescriptor // KindUnion

	// AllowEmpty permits a record with no live fields (or a union with
	// no live variants) at some revision in [1, N]. Spec.md section 4.4
	// validates against this by default ("or the empty record is
	// explicitly permitted").
	AllowEmpty bool
}
