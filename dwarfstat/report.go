// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarfstat

import (
	"github.com/dwarfstat/dwarfstat/dwarfkey"
	"github.com/dwarfstat/dwarfstat/statmap"
)

// wholeUnitKeys are copied into every report under their own names.
var wholeUnitKeys = []string{dwarfkey.CU, dwarfkey.Abbrev}

// A Report is the size breakdown of one namespace.
type Report struct {
	Namespace dwarfkey.Namespace

	// Entries are ordered by descending size. Entries of equal
	// size keep stream order, with the whole-unit entries last.
	Entries []Entry
}

// An Entry is one row of a Report.
type Entry struct {
	Name  string
	Count uint64
	Size  uint64
}

// Report builds the report for namespace ns. Every key in ns
// contributes an entry named by its local name; the CU and abbrev
// keys are added verbatim. If either of those is missing, Report
// returns a *MissingKeyError.
func (s *Stats) Report(ns dwarfkey.Namespace) (*Report, error) {
	sizes := statmap.New()
	for _, e := range s.Sizes.Entries() {
		k := dwarfkey.Classify(e.Key)
		if k.Namespace != ns || ns == dwarfkey.Other {
			continue
		}
		sizes.Set(k.Local, e.Value)
	}
	for _, key := range wholeUnitKeys {
		v, ok := s.Sizes.Get(key)
		if !ok {
			return nil, &MissingKeyError{s.Path, key}
		}
		sizes.Set(key, v)
	}

	r := &Report{Namespace: ns}
	for _, e := range sizes.SortedDesc() {
		r.Entries = append(r.Entries, Entry{
			Name:  e.Key,
			Count: s.count(ns, e.Key),
			Size:  e.Value,
		})
	}
	return r, nil
}

// count returns the record count behind the report entry name.
func (s *Stats) count(ns dwarfkey.Namespace, name string) uint64 {
	for _, key := range wholeUnitKeys {
		if name == key {
			c, _ := s.Counts.Get(key)
			return c
		}
	}
	c, _ := s.Counts.Get(ns.Prefix() + name)
	return c
}

// Reports returns the DW_AT and DW_FORM reports, in that order.
func (s *Stats) Reports() ([]*Report, error) {
	var out []*Report
	for _, ns := range dwarfkey.Namespaces {
		r, err := s.Report(ns)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Total returns the sum of all entry sizes.
func (r *Report) Total() uint64 {
	var t uint64
	for _, e := range r.Entries {
		t += e.Size
	}
	return t
}

// Top returns the n largest entries, or all entries if n <= 0.
func (r *Report) Top(n int) []Entry {
	if n <= 0 || n >= len(r.Entries) {
		return r.Entries
	}
	return r.Entries[:n]
}

// Share returns e's fraction of the report total, in percent.
func (r *Report) Share(e Entry) float64 {
	t := r.Total()
	if t == 0 {
		return 0
	}
	return float64(e.Size) * 100.0 / float64(t)
}
