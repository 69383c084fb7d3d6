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

// Inner is a record nested as a field inside Outer. It carries its own
// revision preamble, independent of Outer's: Outer can stay at revision
// 1 forever while Inner evolves underneath it, or vice versa.
type Inner struct {
	Label string
	Count int32
}

func innerDescriptor() *revision.AggregateDescriptor {
	return &revision.AggregateDescriptor{
		Name:     "Inner",
		Kind:     revision.KindRecord,
		Revision: 2,
		Fields: []revision.FieldDescriptor{
			{
				Name: "Label", Start: 1, Codec: wire.String,
				Get: func(c interface{}) interface{} { return c.(*Inner).Label },
				Set: func(c interface{}, v interface{}) { c.(*Inner).Label = v.(string) },
			},
			{
				Name: "Count", Start: 2, Codec: wire.Int32,
				Get:     func(c interface{}) interface{} { return c.(*Inner).Count },
				Set:     func(c interface{}, v interface{}) { c.(*Inner).Count = v.(int32) },
				Default: func(uint16) (interface{}, error) { return int32(0), nil },
			},
		},
	}
}

func innerCodec() wire.FieldCodec {
	desc := innerDescriptor()
	return wire.FieldCodecFuncs{
		EncodeFunc: func(w *wire.Writer, v interface{}) error {
			return engine.EncodeRecord(w, desc, v)
		},
		DecodeFunc: func(r *wire.Reader) (interface{}, error) {
			return engine.DecodeRecord(r, desc, func() interface{} { return &Inner{} })
		},
	}
}

// Outer never itself evolves (revision stays 1), but its Payload field's
// nested preamble still lets Inner evolve independently.
type Outer struct {
	Payload *Inner
}

func outerDescriptor() *revision.AggregateDescriptor {
	return &revision.AggregateDescriptor{
		Name:     "Outer",
		Kind:     revision.KindRecord,
		Revision: 1,
		Fields: []revision.FieldDescriptor{
			{
				Name: "Payload", Start: 1, Codec: innerCodec(),
				Get: func(c interface{}) interface{} { return c.(*Outer).Payload },
				Set: func(c interface{}, v interface{}) { c.(*Outer).Payload = v.(*Inner) },
			},
		},
	}
}

func TestNestedAggregateRoundTrip(t *testing.T) {
	desc := outerDescriptor()
	want := &Outer{Payload: &Inner{Label: "x", Count: 7}}

	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	require.NoError(t, engine.EncodeRecord(w, desc, want))
	r := wire.NewReader(&buf, wire.ReaderOpts{})
	got, err := engine.DecodeRecord(r, desc, func() interface{} { return &Outer{} })
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestNestedAggregateInnerEvolvesIndependently(t *testing.T) {
	desc := outerDescriptor()

	// Outer at revision 1, wrapping an Inner payload written at Inner's
	// own revision 1 (Count did not exist yet at that point).
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	require.NoError(t, revision.WritePreamble(w, 1)) // Outer's preamble
	require.NoError(t, revision.WritePreamble(w, 1))  // Inner's own, independent preamble
	require.NoError(t, w.WriteString("legacy"))

	r := wire.NewReader(&buf, wire.ReaderOpts{})
	got, err := engine.DecodeRecord(r, desc, func() interface{} { return &Outer{} })
	require.NoError(t, err)
	out := got.(*Outer)
	require.Equal(t, "legacy", out.Payload.Label)
	require.Equal(t, int32(0), out.Payload.Count)
}
