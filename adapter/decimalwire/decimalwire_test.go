// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package decimalwire_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/grailbio/revwire/adapter/decimalwire"
	"github.com/grailbio/revwire/wire"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	want, err := decimal.NewFromString("1234.5678")
	require.NoError(t, err)

	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	require.NoError(t, decimalwire.Codec.Encode(w, want))

	r := wire.NewReader(&buf, wire.ReaderOpts{})
	got, err := decimalwire.Codec.Decode(r)
	require.NoError(t, err)
	require.True(t, want.Equal(got.(decimal.Decimal)))
}

func TestNegativeAndZero(t *testing.T) {
	for _, s := range []string{"-99.01", "0", "0.0000001"} {
		want, err := decimal.NewFromString(s)
		require.NoError(t, err)

		var buf bytes.Buffer
		w := wire.NewWriter(&buf)
		require.NoError(t, decimalwire.Codec.Encode(w, want))

		r := wire.NewReader(&buf, wire.ReaderOpts{})
		got, err := decimalwire.Codec.Decode(r)
		require.NoError(t, err)
		require.True(t, want.Equal(got.(decimal.Decimal)))
	}
}
