// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package streamio_test

import (
	"bytes"
	"io"
	"io/ioutil"
	"testing"

	"github.com/grailbio/revwire/streamio"
	"github.com/grailbio/revwire/wire"
	"github.com/stretchr/testify/require"
)

func TestGzipRoundTripsWireEncodedStream(t *testing.T) {
	var buf bytes.Buffer
	gw, err := streamio.GzipWriter(&buf)
	require.NoError(t, err)
	w := wire.NewWriter(gw)
	for i := 0; i < 100; i++ {
		require.NoError(t, w.WriteString("record"))
		require.NoError(t, w.WriteInt32(int32(i)))
	}
	require.NoError(t, gw.Close())

	gr, err := streamio.GzipReader(&buf)
	require.NoError(t, err)
	defer gr.Close()
	r := wire.NewReader(gr, wire.ReaderOpts{})
	for i := 0; i < 100; i++ {
		s, err := r.ReadString()
		require.NoError(t, err)
		require.Equal(t, "record", s)
		n, err := r.ReadInt32()
		require.NoError(t, err)
		require.Equal(t, int32(i), n)
	}
}

func TestSnappyRoundTripsWireEncodedStream(t *testing.T) {
	var buf bytes.Buffer
	sw := streamio.SnappyWriter(&buf)
	w := wire.NewWriter(sw)
	require.NoError(t, w.WriteString("hello"))
	require.NoError(t, w.WriteBool(true))
	require.NoError(t, sw.Close())

	sr := streamio.SnappyReader(&buf)
	r := wire.NewReader(sr, wire.ReaderOpts{})
	s, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "hello", s)
	b, err := r.ReadBool()
	require.NoError(t, err)
	require.True(t, b)

	_, err = io.Copy(ioutil.Discard, sr)
	require.NoError(t, err)
}
