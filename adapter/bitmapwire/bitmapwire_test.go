// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package bitmapwire_test

import (
	"bytes"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/grailbio/revwire/adapter/bitmapwire"
	"github.com/grailbio/revwire/wire"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	want := roaring.New()
	want.AddMany([]uint32{1, 2, 3, 100, 1000, 1 << 20})

	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	require.NoError(t, bitmapwire.Codec.Encode(w, want))

	r := wire.NewReader(&buf, wire.ReaderOpts{})
	got, err := bitmapwire.Codec.Decode(r)
	require.NoError(t, err)
	require.True(t, want.Equals(got.(*roaring.Bitmap)))
}

func TestEmptyBitmap(t *testing.T) {
	want := roaring.New()

	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	require.NoError(t, bitmapwire.Codec.Encode(w, want))

	r := wire.NewReader(&buf, wire.ReaderOpts{})
	got, err := bitmapwire.Codec.Decode(r)
	require.NoError(t, err)
	require.True(t, want.Equals(got.(*roaring.Bitmap)))
}
