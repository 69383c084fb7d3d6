// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package streamio wraps the framework's wire.Writer/wire.Reader pair
// around a compressed underlying stream, so a whole stream of encoded
// records (not any one record's bytes) can be gzip- or snappy-
// compressed in transit or at rest. Grounded on the teacher's own use
// of github.com/klauspost/compress/gzip (pileup/common.go,
// encoding/bam/gindex.go) and github.com/golang/snappy
// (encoding/bampair/disk_mate_shard.go).
package streamio
