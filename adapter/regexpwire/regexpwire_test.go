// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package regexpwire_test

import (
	"bytes"
	"testing"

	"github.com/dlclark/regexp2"

	"github.com/grailbio/revwire/adapter/regexpwire"
	"github.com/grailbio/revwire/wire"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	want, err := regexp2.Compile(`(?i)^foo\d+$`, regexp2.None)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	require.NoError(t, regexpwire.Codec.Encode(w, want))

	r := wire.NewReader(&buf, wire.ReaderOpts{})
	got, err := regexpwire.Codec.Decode(r)
	require.NoError(t, err)

	re := got.(*regexp2.Regexp)
	m, err := re.MatchString("FOO123")
	require.NoError(t, err)
	require.True(t, m)
}

func TestRejectsMalformedPattern(t *testing.T) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	require.NoError(t, w.WriteString("("))
	require.NoError(t, w.WriteUint32(0))

	r := wire.NewReader(&buf, wire.ReaderOpts{})
	_, err := regexpwire.Codec.Decode(r)
	require.Error(t, err)
}
