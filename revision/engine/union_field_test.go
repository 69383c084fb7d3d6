// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package engine_test

import (
	"bytes"
	"testing"

	"github.com/grailbio/revwire/revision"
	"github.com/grailbio/revwire/revision/engine"
	"github.com/grailbio/revwire/wire"
	"github.com/stretchr/testify/require"
)

// Click is a live variant payload that itself evolves across revisions:
// Button is added at revision 2, independent of the enclosing union's
// own variant set changing.
type Click struct {
	X, Y   int32
	Button string
}

type Event struct {
	Click *Click
}

func eventDescriptor() *revision.AggregateDescriptor {
	return &revision.AggregateDescriptor{
		Name:     "Event",
		Kind:     revision.KindUnion,
		Revision: 2,
		Variants: []revision.VariantDescriptor{
			{
				Name:  "Click",
				Start: 1,
				Fields: []revision.FieldDescriptor{
					{
						Name: "X", Start: 1, Codec: wire.Int32,
						Get: func(p interface{}) interface{} { return p.(*Click).X },
						Set: func(p interface{}, v interface{}) { p.(*Click).X = v.(int32) },
					},
					{
						Name: "Y", Start: 1, Codec: wire.Int32,
						Get: func(p interface{}) interface{} { return p.(*Click).Y },
						Set: func(p interface{}, v interface{}) { p.(*Click).Y = v.(int32) },
					},
					{
						Name: "Button", Start: 2, Codec: wire.String,
						Get:     func(p interface{}) interface{} { return p.(*Click).Button },
						Set:     func(p interface{}, v interface{}) { p.(*Click).Button = v.(string) },
						Default: func(uint16) (interface{}, error) { return "left", nil },
					},
				},
				NewPartial: func() interface{} { return &Click{} },
				Build:      func(p interface{}) interface{} { return Event{Click: p.(*Click)} },
				Match: func(v interface{}) (interface{}, bool) {
					e := v.(Event)
					if e.Click == nil {
						return nil, false
					}
					return e.Click, true
				},
			},
		},
	}
}

func TestUnionVariantFieldEvolutionRoundTrip(t *testing.T) {
	desc := eventDescriptor()
	want := Event{Click: &Click{X: 10, Y: 20, Button: "right"}}

	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	require.NoError(t, engine.EncodeUnion(w, desc, want))
	r := wire.NewReader(&buf, wire.ReaderOpts{})
	got, err := engine.DecodeUnion(r, desc)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestUnionVariantFieldDefaultsForOlderRevision(t *testing.T) {
	desc := eventDescriptor()

	// A revision-1 Click only wrote X and Y; Button did not exist yet.
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	require.NoError(t, revision.WritePreamble(w, 1))
	require.NoError(t, w.WriteVarint(0)) // Click is the only variant live at revision 1
	require.NoError(t, w.WriteInt32(10))
	require.NoError(t, w.WriteInt32(20))

	r := wire.NewReader(&buf, wire.ReaderOpts{})
	got, err := engine.DecodeUnion(r, desc)
	require.NoError(t, err)
	require.Equal(t, Event{Click: &Click{X: 10, Y: 20, Button: "left"}}, got)
}
