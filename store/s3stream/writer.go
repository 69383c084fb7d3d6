// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package s3stream

import (
	"io"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// Writer is an io.WriteCloser that uploads everything written to it as
// a single S3 object, via s3manager.Uploader's streaming multipart
// upload. Close blocks until the upload completes (or fails) and
// reports the first error encountered by either the writer or the
// uploader.
type Writer struct {
	pw    *io.PipeWriter
	errCh chan error
}

// NewWriter starts a background upload to bucket/key using sess, and
// returns a Writer whose bytes become the object's body.
func NewWriter(sess *session.Session, bucket, key string) *Writer {
	pr, pw := io.Pipe()
	w := &Writer{pw: pw, errCh: make(chan error, 1)}
	uploader := s3manager.NewUploader(sess)
	go func() {
		_, err := uploader.Upload(&s3manager.UploadInput{
			Bucket: &bucket,
			Key:    &key,
			Body:   pr,
		})
		pr.CloseWithError(err)
		w.errCh <- err
	}()
	return w
}

func (w *Writer) Write(p []byte) (int, error) { return w.pw.Write(p) }

// Close finishes the object body and waits for the upload to complete.
func (w *Writer) Close() error {
	if err := w.pw.Close(); err != nil {
		return err
	}
	return <-w.errCh
}
