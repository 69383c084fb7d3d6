// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package wire

import "fmt"

// ErrorKind classifies the errors package wire can return, per the
// taxonomy in the framework's wire-format specification; package revision
// classifies its own errors with revision.ErrorKind.
type ErrorKind int

const (
	// KindTruncated means the stream was exhausted mid-value.
	KindTruncated ErrorKind = iota + 1
	// KindMalformed means a primitive decode produced an illegal value:
	// bad UTF-8, a boolean byte other than 0/1, a char outside the
	// Unicode scalar range, or a length beyond the caller-tunable cap.
	// Package revision/engine also reports a union discriminant outside
	// the variants live at its revision as Malformed.
	KindMalformed
)

// ErrTruncated is returned (possibly wrapped with context) when a decode
// reads past the end of the stream. Writers never produce it; io.Writer
// failures are surfaced as-is.
var ErrTruncated error = &wireError{kind: KindTruncated, msg: "wire: truncated"}

// ErrMalformed is returned (possibly wrapped with context) when a decoded
// primitive value is illegal for its type.
var ErrMalformed error = &wireError{kind: KindMalformed, msg: "wire: malformed"}

type wireError struct {
	kind  ErrorKind
	msg   string
	cause error
}

func (e *wireError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *wireError) Unwrap() error { return e.cause }

// Is lets errors.Is(err, ErrTruncated) and errors.Is(err, ErrMalformed)
// match any wireError of the same kind, regardless of context/cause.
func (e *wireError) Is(target error) bool {
	t, ok := target.(*wireError)
	return ok && t.kind == e.kind
}

// Truncated builds a KindTruncated error, with context describing what
// was being decoded and the underlying I/O error (may be nil).
func Truncated(context string, cause error) error {
	return &wireError{kind: KindTruncated, msg: "wire: truncated: " + context, cause: cause}
}

// Malformed builds a KindMalformed error.
func Malformed(format string, args ...interface{}) error {
	return &wireError{kind: KindMalformed, msg: "wire: malformed: " + fmt.Sprintf(format, args...)}
}

// Kind reports the ErrorKind of err if it (or something in its Unwrap
// chain) is a wire error, and ok=false otherwise.
func Kind(err error) (kind ErrorKind, ok bool) {
	for err != nil {
		if we, is := err.(*wireError); is {
			return we.kind, true
		}
		u, is := err.(interface{ Unwrap() error })
		if !is {
			return 0, false
		}
		err = u.Unwrap()
	}
	return 0, false
}
