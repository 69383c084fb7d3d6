// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package engine drives a *plan.Plan against a wire.Writer/wire.Reader:
// it is the part of the framework a real code generator would emit as
// monomorphic, per-type Encode/Decode functions (spec.md section 9).
// Here it is a pair of interpreters, EncodeRecord/DecodeRecord and
// EncodeUnion/DecodeUnion, each walking the plan generically over
// interface{} values via the descriptor's closures.
package engine
