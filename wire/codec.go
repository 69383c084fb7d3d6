// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package wire

// FieldCodec is the capability contract every field, variant payload and
// standard-adapter type implements: encode a value of one fixed Go type to
// a Writer, and decode a value of that same type from a Reader. It is the
// "trait-like polymorphism" the framework's design notes describe as a
// capability contract realizable as an interface, a vtable, or
// monomorphic call sites; this is the interface form.
//
// Implementations must be pure and deterministic, and must never emit or
// expect a revision preamble themselves -- that framing belongs to
// package revision alone.
type FieldCodec interface {
	Encode(w *Writer, value interface{}) error
	Decode(r *Reader) (interface{}, error)
}

// FieldCodecFuncs builds a FieldCodec out of two closures, for callers who
// would rather not declare a named type per field.
type FieldCodecFuncs struct {
	EncodeFunc func(w *Writer, value interface{}) error
	DecodeFunc func(r *Reader) (interface{}, error)
}

func (f FieldCodecFuncs) Encode(w *Writer, value interface{}) error { return f.EncodeFunc(w, value) }
func (f FieldCodecFuncs) Decode(r *Reader) (interface{}, error)     { return f.DecodeFunc(r) }

// Primitive codecs for the scalar types wire itself knows how to encode.
// These are frozen: they never carry a preamble, exactly like every
// wire/std adapter.
var (
	Bool = FieldCodecFuncs{
		EncodeFunc: func(w *Writer, v interface{}) error { return w.WriteBool(v.(bool)) },
		DecodeFunc: func(r *Reader) (interface{}, error) { return r.ReadBool() },
	}
	Uint8 = FieldCodecFuncs{
		EncodeFunc: func(w *Writer, v interface{}) error { return w.WriteUint8(v.(uint8)) },
		DecodeFunc: func(r *Reader) (interface{}, error) { return r.ReadUint8() },
	}
	Uint16 = FieldCodecFuncs{
		EncodeFunc: func(w *Writer, v interface{}) error { return w.WriteUint16(v.(uint16)) },
		DecodeFunc: func(r *Reader) (interface{}, error) { return r.ReadUint16() },
	}
	Uint32 = FieldCodecFuncs{
		EncodeFunc: func(w *Writer, v interface{}) error { return w.WriteUint32(v.(uint32)) },
		DecodeFunc: func(r *Reader) (interface{}, error) { return r.ReadUint32() },
	}
	Uint64 = FieldCodecFuncs{
		EncodeFunc: func(w *Writer, v interface{}) error { return w.WriteUint64(v.(uint64)) },
		DecodeFunc: func(r *Reader) (interface{}, error) { return r.ReadUint64() },
	}
	Int8 = FieldCodecFuncs{
		EncodeFunc: func(w *Writer, v interface{}) error { return w.WriteInt8(v.(int8)) },
		DecodeFunc: func(r *Reader) (interface{}, error) { return r.ReadInt8() },
	}
	Int16 = FieldCodecFuncs{
		EncodeFunc: func(w *Writer, v interface{}) error { return w.WriteInt16(v.(int16)) },
		DecodeFunc: func(r *Reader) (interface{}, error) { return r.ReadInt16() },
	}
	Int32 = FieldCodecFuncs{
		EncodeFunc: func(w *Writer, v interface{}) error { return w.WriteInt32(v.(int32)) },
		DecodeFunc: func(r *Reader) (interface{}, error) { return r.ReadInt32() },
	}
	Int64 = FieldCodecFuncs{
		EncodeFunc: func(w *Writer, v interface{}) error { return w.WriteInt64(v.(int64)) },
		DecodeFunc: func(r *Reader) (interface{}, error) { return r.ReadInt64() },
	}
	Float32 = FieldCodecFuncs{
		EncodeFunc: func(w *Writer, v interface{}) error { return w.WriteFloat32(v.(float32)) },
		DecodeFunc: func(r *Reader) (interface{}, error) { return r.ReadFloat32() },
	}
	Float64 = FieldCodecFuncs{
		EncodeFunc: func(w *Writer, v interface{}) error { return w.WriteFloat64(v.(float64)) },
		DecodeFunc: func(r *Reader) (interface{}, error) { return r.ReadFloat64() },
	}
	Char = FieldCodecFuncs{
		EncodeFunc: func(w *Writer, v interface{}) error { return w.WriteChar(v.(rune)) },
		DecodeFunc: func(r *Reader) (interface{}, error) { return r.ReadChar() },
	}
	String = FieldCodecFuncs{
		EncodeFunc: func(w *Writer, v interface{}) error { return w.WriteString(v.(string)) },
		DecodeFunc: func(r *Reader) (interface{}, error) { return r.ReadString() },
	}
	Bytes = FieldCodecFuncs{
		EncodeFunc: func(w *Writer, v interface{}) error { return w.WriteBytes(v.([]byte)) },
		DecodeFunc: func(r *Reader) (interface{}, error) { return r.ReadBytes() },
	}
)
