// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package std

import (
	"github.com/biogo/store/llrb"

	"github.com/grailbio/revwire/wire"
)

// Ordered is implemented by keys usable in an OrderedMap or OrderedSet.
// CompareTo follows the usual <0/0/>0 convention. It is deliberately
// independent of llrb.Comparable so that callers of this package never
// need to import biogo/store/llrb themselves.
type Ordered interface {
	CompareTo(other interface{}) int
}

// Int64Key and StringKey are Ordered wrappers for the two most common key
// types; larger programs will usually generate their own.
type Int64Key int64

func (k Int64Key) CompareTo(other interface{}) int {
	o := other.(Int64Key)
	switch {
	case k < o:
		return -1
	case k > o:
		return 1
	default:
		return 0
	}
}

type StringKey string

func (k StringKey) CompareTo(other interface{}) int {
	o := other.(StringKey)
	switch {
	case k < o:
		return -1
	case k > o:
		return 1
	default:
		return 0
	}
}

type llrbEntry struct {
	key   Ordered
	value interface{}
}

func (e llrbEntry) Compare(o llrb.Comparable) int {
	return e.key.CompareTo(o.(llrbEntry).key)
}

// OrderedMap is a map keyed by an Ordered type, backed by a left-leaning
// red-black tree (github.com/biogo/store/llrb) so that iteration -- and
// therefore wire encoding -- happens in a stable, deterministic key
// order. Grounded on the teacher's own llrb.Tree-backed ShardInfo
// (encoding/bampair/shard_info.go), generalized from one concrete key
// type to any Ordered key.
type OrderedMap struct {
	tree llrb.Tree
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap() *OrderedMap { return &OrderedMap{} }

// Insert adds or replaces the value stored at key.
func (m *OrderedMap) Insert(key Ordered, value interface{}) {
	m.tree.Insert(llrbEntry{key: key, value: value})
}

// Get returns the value at key, if any.
func (m *OrderedMap) Get(key Ordered) (interface{}, bool) {
	got := m.tree.Get(llrbEntry{key: key})
	if got == nil {
		return nil, false
	}
	return got.(llrbEntry).value, true
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int { return m.tree.Len() }

// Do visits every entry in ascending key order, stopping early if fn
// returns false.
func (m *OrderedMap) Do(fn func(key Ordered, value interface{}) bool) {
	// llrb's Do stops when its callback returns true ("done"), the
	// opposite of fn's convention.
	m.tree.Do(func(c llrb.Comparable) bool {
		e := c.(llrbEntry)
		return !fn(e.key, e.value)
	})
}

// OrderedMapCodec adapts an OrderedMap: a length prefix followed by
// key/value entries in ascending key order, which makes its byte
// encoding deterministic (unlike MapCodec's).
type OrderedMapCodec struct {
	Key   wire.FieldCodec
	Value wire.FieldCodec
}

func (c OrderedMapCodec) Encode(w *wire.Writer, value interface{}) error {
	m := value.(*OrderedMap)
	if err := w.WriteVarint(uint64(m.Len())); err != nil {
		return err
	}
	var encErr error
	m.Do(func(key Ordered, v interface{}) bool {
		if err := c.Key.Encode(w, key); err != nil {
			encErr = err
			return false
		}
		if err := c.Value.Encode(w, v); err != nil {
			encErr = err
			return false
		}
		return true
	})
	return encErr
}

func (c OrderedMapCodec) Decode(r *wire.Reader) (interface{}, error) {
	n, err := r.ReadLength()
	if err != nil {
		return nil, err
	}
	m := NewOrderedMap()
	for i := uint64(0); i < n; i++ {
		k, err := c.Key.Decode(r)
		if err != nil {
			return nil, err
		}
		v, err := c.Value.Decode(r)
		if err != nil {
			return nil, err
		}
		m.Insert(k.(Ordered), v)
	}
	return m, nil
}

// OrderedSet is a set of Ordered elements, backed by the same llrb tree
// as OrderedMap with the value half unused.
type OrderedSet struct {
	m OrderedMap
}

// NewOrderedSet returns an empty OrderedSet.
func NewOrderedSet() *OrderedSet { return &OrderedSet{} }

// Insert adds key to the set.
func (s *OrderedSet) Insert(key Ordered) { s.m.Insert(key, nil) }

// Contains reports whether key is in the set.
func (s *OrderedSet) Contains(key Ordered) bool { _, ok := s.m.Get(key); return ok }

// Len returns the number of elements.
func (s *OrderedSet) Len() int { return s.m.Len() }

// Do visits every element in ascending order.
func (s *OrderedSet) Do(fn func(key Ordered) bool) {
	s.m.Do(func(key Ordered, _ interface{}) bool { return fn(key) })
}

// OrderedSetCodec adapts an OrderedSet as a length-prefixed sequence of
// elements in ascending order.
type OrderedSetCodec struct {
	Elem wire.FieldCodec
}

func (c OrderedSetCodec) Encode(w *wire.Writer, value interface{}) error {
	s := value.(*OrderedSet)
	if err := w.WriteVarint(uint64(s.Len())); err != nil {
		return err
	}
	var encErr error
	s.Do(func(key Ordered) bool {
		if err := c.Elem.Encode(w, key); err != nil {
			encErr = err
			return false
		}
		return true
	})
	return encErr
}

func (c OrderedSetCodec) Decode(r *wire.Reader) (interface{}, error) {
	n, err := r.ReadLength()
	if err != nil {
		return nil, err
	}
	s := NewOrderedSet()
	for i := uint64(0); i < n; i++ {
		v, err := c.Elem.Decode(r)
		if err != nil {
			return nil, err
		}
		s.Insert(v.(Ordered))
	}
	return s, nil
}
