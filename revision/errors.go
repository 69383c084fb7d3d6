// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package revision

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies the runtime (not programmer) errors this
// framework can return once a plan has been built successfully.
type ErrorKind int

const (
	// KindUnknownRevision means the preamble named a revision outside
	// [1, N] for the aggregate being decoded.
	KindUnknownRevision ErrorKind = iota + 1
	// KindConversion means a default provider or converter returned a
	// failure; the underlying cause is reachable via errors.Unwrap /
	// errors.Cause.
	KindConversion
	// KindUnsupported means the caller asked an adapter to handle a
	// value outside what it guarantees to round-trip (spec: "attempt to
	// use an adapter the build omits", generalized to any adapter that
	// declines a value for the same reason).
	KindUnsupported
)

type revisionError struct {
	kind  ErrorKind
	msg   string
	cause error
}

func (e *revisionError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *revisionError) Unwrap() error { return e.cause }

func (e *revisionError) Is(target error) bool {
	t, ok := target.(*revisionError)
	return ok && t.kind == e.kind
}

// Cause implements the github.com/pkg/errors Causer interface so
// errors.Cause(err) (pkg/errors, not the stdlib errors package) also
// reaches the underlying callback failure.
func (e *revisionError) Cause() error { return e.cause }

// ErrUnknownRevision matches every UnknownRevision error via errors.Is.
var ErrUnknownRevision error = &revisionError{kind: KindUnknownRevision, msg: "revision: unknown revision"}

// UnknownRevision builds a KindUnknownRevision error naming the
// aggregate and the offending revision.
func UnknownRevision(aggregate string, got, max uint16) error {
	return &revisionError{
		kind: KindUnknownRevision,
		msg:  fmt.Sprintf("revision: %s: revision %d outside [1, %d]", aggregate, got, max),
	}
}

// Conversion wraps a default provider's or converter's failure.
func Conversion(context string, cause error) error {
	return &revisionError{
		kind:  KindConversion,
		msg:   fmt.Sprintf("revision: conversion failed: %s", context),
		cause: cause,
	}
}

// Unsupported builds a KindUnsupported error.
func Unsupported(format string, args ...interface{}) error {
	return &revisionError{kind: KindUnsupported, msg: "revision: unsupported: " + fmt.Sprintf(format, args...)}
}

// Kind reports the ErrorKind of err if it (or something in its cause
// chain, per github.com/pkg/errors.Cause) is a revision error.
func Kind(err error) (kind ErrorKind, ok bool) {
	for err != nil {
		if re, is := err.(*revisionError); is {
			return re.kind, true
		}
		next := errors.Cause(err)
		if next == err {
			return 0, false
		}
		err = next
	}
	return 0, false
}
