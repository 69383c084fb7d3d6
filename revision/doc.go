// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package revision holds the static metadata of the revision algebra --
// field and variant descriptors, aggregate descriptors, the revision
// preamble framing, and the error taxonomy -- that package revision/plan
// validates and compiles into plans, and that package revision/engine
// drives against a byte stream.
//
// A real declarative front end (the "generator contract" in the
// framework's external-interfaces section) would emit the descriptors
// below as generated Go code, with monomorphic Get/Set/Build/Match
// closures bound directly to struct fields. That front end's syntax is
// out of scope for this core; the descriptors here are instead built by
// hand, standing in for what generated code would produce -- the
// "interpreter over a runtime descriptor" alternative the framework's
// design notes call out as observably equivalent.
package revision
