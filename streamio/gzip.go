// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package streamio

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipWriter returns an io.WriteCloser that gzip-compresses everything
// written to it before forwarding to w. Close flushes the gzip trailer;
// it does not close w.
func GzipWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriterLevel(w, gzip.DefaultCompression)
}

// GzipReader returns an io.ReadCloser that decompresses a gzip stream
// read from r.
func GzipReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}
