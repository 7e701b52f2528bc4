// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package statmap provides an insertion-ordered map from statistic
// keys to values.
//
// Iteration follows the order in which keys were first set, so every
// report built from a Map is deterministic for a given input.
package statmap

import "sort"

// An Entry is a single key/value pair of a Map.
type Entry struct {
	Key   string
	Value uint64
}

// A Map is an insertion-ordered map from string keys to uint64 values.
// The zero Map is empty and ready to use.
type Map struct {
	entries []Entry
	pos     map[string]int
}

// New returns an empty Map.
func New() *Map {
	return &Map{pos: make(map[string]int)}
}

// Set sets key to v. If key is already present its value is replaced
// but it keeps its original position.
func (m *Map) Set(key string, v uint64) {
	if i, ok := m.pos[key]; ok {
		m.entries[i].Value = v
		return
	}
	if m.pos == nil {
		m.pos = make(map[string]int)
	}
	m.pos[key] = len(m.entries)
	m.entries = append(m.entries, Entry{key, v})
}

// Get returns the value of key and whether it is present.
func (m *Map) Get(key string) (uint64, bool) {
	i, ok := m.pos[key]
	if !ok {
		return 0, false
	}
	return m.entries[i].Value, true
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.pos[key]
	return ok
}

// Len returns the number of keys in m.
func (m *Map) Len() int {
	return len(m.entries)
}

// Keys returns the keys of m in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries of m in insertion order.
func (m *Map) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// SortedDesc returns the entries of m ordered by descending value.
// Entries with equal values stay in insertion order.
func (m *Map) SortedDesc() []Entry {
	out := m.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out
}
