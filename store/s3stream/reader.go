// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package s3stream

import (
	"bytes"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// NewReader downloads bucket/key in full via s3manager.Downloader's
// concurrent ranged GETs and returns an io.Reader over the result. The
// whole object is buffered in memory, matching the way the framework's
// callers already buffer a decoded stream before use.
func NewReader(sess *session.Session, bucket, key string) (io.Reader, error) {
	buf := aws.NewWriteAtBuffer(nil)
	downloader := s3manager.NewDownloader(sess)
	if _, err := downloader.Download(buf, &s3manager.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}); err != nil {
		return nil, err
	}
	return bytes.NewReader(buf.Bytes()), nil
}
