// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package plan

import (
	"fmt"

	"github.com/grailbio/revwire/revision"
)

// Build validates desc and computes its writer plan and per-revision
// reader plans. A validation failure is a programmer error, per spec.md
// section 4.4: it is returned as a plain error (not one of the runtime
// ErrorKinds in package revision), since it can only arise from a
// descriptor that was authored incorrectly, never from untrusted input.
//
// Build is cached (see cache.go): calling it twice with an
// equal-by-digest descriptor returns the same *Plan, satisfying spec.md
// section 8 property 7 (idempotence of plan construction) without
// recomputing.
func Build(desc *revision.AggregateDescriptor) (*Plan, error) {
	if cached, ok := lookup(desc); ok {
		return cached, nil
	}
	p, err := build(desc)
	if err != nil {
		return nil, err
	}
	store(desc, p)
	return p, nil
}

func build(desc *revision.AggregateDescriptor) (*Plan, error) {
	if desc.Revision < 1 {
		return nil, fmt.Errorf("plan: %s: revision must be >= 1, got %d", desc.Name, desc.Revision)
	}
	switch desc.Kind {
	case revision.KindRecord:
		return buildRecord(desc)
	case revision.KindUnion:
		return buildUnion(desc)
	default:
		return nil, fmt.Errorf("plan: %s: unknown kind %v", desc.Name, desc.Kind)
	}
}

func validateFields(aggregate string, n uint16, fields []revision.FieldDescriptor) error {
	for i, f := range fields {
		start := f.Start
		if start == 0 {
			start = 1
		}
		end := f.End
		if end == revision.NoEnd {
			end = n + 1
		}
		if start < 1 {
			return fmt.Errorf("plan: %s: field %q: start must be >= 1", aggregate, f.Name)
		}
		if end <= start {
			return fmt.Errorf("plan: %s: field %q: end (%d) must be > start (%d)", aggregate, f.Name, end, start)
		}
		if end > n+1 {
			return fmt.Errorf("plan: %s: field %q: end (%d) exceeds N+1 (%d)", aggregate, f.Name, end, n+1)
		}
		if start > 1 && f.Default == nil {
			return fmt.Errorf("plan: %s: field %q: start %d > 1 requires a default provider", aggregate, f.Name, start)
		}
		if f.End != revision.NoEnd && f.End <= n && f.Convert == nil {
			return fmt.Errorf("plan: %s: field %q: end %d <= N requires a converter", aggregate, f.Name, f.End)
		}
		_ = i
	}
	return nil
}

// fieldPlanAt computes the FieldPlan for fields at revision r, given the
// aggregate's current revision n.
func fieldPlanAt(r, n uint16, fields []revision.FieldDescriptor) FieldPlan {
	fp := FieldPlan{Revision: r}
	for i, f := range fields {
		live := fieldLiveAt(f, r, n)
		if live {
			fp.Live = append(fp.Live, i)
		}
		startEff := f.Start
		if startEff == 0 {
			startEff = 1
		}
		endEff := f.End
		if endEff == revision.NoEnd {
			endEff = n + 1
		}
		switch {
		case startEff > r:
			// Added after r: needs a default, regardless of whether the
			// field is still live at n. Only the default runs: a field
			// added after r was not decoded at r, so no converter runs
			// for it even if it has since been retired.
			fp.Fills = append(fp.Fills, FillAction{Kind: FillDefault, FieldIndex: i})
		case live && endEff <= n:
			// Live at r but retired by n: fold into the partial value.
			fp.Fills = append(fp.Fills, FillAction{Kind: FillConvert, FieldIndex: i})
		}
	}
	return fp
}

func fieldLiveAt(f revision.FieldDescriptor, r, n uint16) bool {
	start := f.Start
	if start == 0 {
		start = 1
	}
	end := f.End
	if end == revision.NoEnd {
		end = n + 1
	}
	return start <= r && r < end
}

func buildRecord(desc *revision.AggregateDescriptor) (*Plan, error) {
	n := desc.Revision
	if err := validateFields(desc.Name, n, desc.Fields); err != nil {
		return nil, err
	}
	p := &Plan{Descriptor: desc, Readers: make(map[uint16]FieldPlan, n)}
	for i, f := range desc.Fields {
		if fieldLiveAt(f, n, n) {
			p.WriterLive = append(p.WriterLive, i)
		}
	}
	if !desc.AllowEmpty && len(desc.Fields) > 0 {
		for r := uint16(1); r <= n; r++ {
			anyLive := false
			for _, f := range desc.Fields {
				if fieldLiveAt(f, r, n) {
					anyLive = true
					break
				}
			}
			if !anyLive {
				return nil, fmt.Errorf("plan: %s: no live field at revision %d", desc.Name, r)
			}
		}
	}
	for r := uint16(1); r <= n; r++ {
		p.Readers[r] = fieldPlanAt(r, n, desc.Fields)
	}
	return p, nil
}

func variantLiveAt(v revision.VariantDescriptor, r, n uint16) bool {
	start := v.Start
	if start == 0 {
		start = 1
	}
	end := v.End
	if end == revision.NoEnd {
		end = n + 1
	}
	return start <= r && r < end
}

func buildUnion(desc *revision.AggregateDescriptor) (*Plan, error) {
	n := desc.Revision
	for _, v := range desc.Variants {
		start := v.Start
		if start == 0 {
			start = 1
		}
		end := v.End
		if end == revision.NoEnd {
			end = n + 1
		}
		if start < 1 {
			return nil, fmt.Errorf("plan: %s: variant %q: start must be >= 1", desc.Name, v.Name)
		}
		if end <= start {
			return nil, fmt.Errorf("plan: %s: variant %q: end (%d) must be > start (%d)", desc.Name, v.Name, end, start)
		}
		if end > n+1 {
			return nil, fmt.Errorf("plan: %s: variant %q: end (%d) exceeds N+1 (%d)", desc.Name, v.Name, end, n+1)
		}
		if v.End != revision.NoEnd && v.End <= n && v.Upgrade == nil {
			return nil, fmt.Errorf("plan: %s: variant %q: end %d <= N requires an upgrade function", desc.Name, v.Name, v.End)
		}
		if end > n && v.Build == nil {
			return nil, fmt.Errorf("plan: %s: variant %q: live at N requires a Build function", desc.Name, v.Name)
		}
		if err := validateFields(desc.Name+"."+v.Name, n, v.Fields); err != nil {
			return nil, err
		}
	}

	p := &Plan{
		Descriptor:       desc,
		DiscriminantLive: make(map[uint16][]int, n),
		VariantReaders:   make(map[uint16]map[int]FieldPlan, n),
	}
	for i, v := range desc.Variants {
		if variantLiveAt(v, n, n) {
			p.WriterLive = append(p.WriterLive, i)
		}
	}
	if !desc.AllowEmpty && len(desc.Variants) > 0 {
		for r := uint16(1); r <= n; r++ {
			anyLive := false
			for _, v := range desc.Variants {
				if variantLiveAt(v, r, n) {
					anyLive = true
					break
				}
			}
			if !anyLive {
				return nil, fmt.Errorf("plan: %s: no live variant at revision %d", desc.Name, r)
			}
		}
	}
	for r := uint16(1); r <= n; r++ {
		var live []int
		variants := make(map[int]FieldPlan, len(desc.Variants))
		for i, v := range desc.Variants {
			if !variantLiveAt(v, r, n) {
				continue
			}
			live = append(live, i)
			variants[i] = fieldPlanAt(r, n, v.Fields)
		}
		p.DiscriminantLive[r] = live
		p.VariantReaders[r] = variants
	}
	return p, nil
}
