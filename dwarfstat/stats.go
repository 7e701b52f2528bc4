// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dwarfstat aggregates the output of the dwarfstat analyzer
// into per-namespace size reports.
//
// A run of the analyzer is read with ReadStats, which enforces the
// header-then-records structure of the stream. Stats.Report then
// groups sizes by attribute (DW_AT) or form (DW_FORM) and adds the
// compilation unit header and abbreviation number totals, which are
// part of .debug_info but belong to neither namespace.
package dwarfstat

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dwarfstat/dwarfstat/statfmt"
	"github.com/dwarfstat/dwarfstat/statmap"
)

// Stats is one complete analyzer run.
type Stats struct {
	// Path is the analyzed file, used as a label in reports.
	Path string

	// TotalSize is the size of .debug_info in bytes.
	TotalSize uint64

	// Counts and Sizes map every key of the stream to its count
	// and size, in stream order. A key that appears twice keeps
	// the last value.
	Counts *statmap.Map
	Sizes  *statmap.Map
}

// NewStats returns an empty Stats for path.
func NewStats(path string, h statfmt.Header) *Stats {
	return &Stats{
		Path:      path,
		TotalSize: h.TotalSize,
		Counts:    statmap.New(),
		Sizes:     statmap.New(),
	}
}

// Add records st in s.
func (s *Stats) Add(st *statfmt.Stat) {
	s.Counts.Set(st.Key, st.Count)
	s.Sizes.Set(st.Key, st.Size)
}

// ReadStats reads a complete analyzer stream from r. The first line
// must be a "total size" header and every following line a record;
// anything else is returned as a *statfmt.SyntaxError holding the
// offending line. fileName is used both in error messages and as
// Stats.Path.
func ReadStats(r io.Reader, fileName string) (*Stats, error) {
	return readStats(statfmt.NewReader(r, fileName), fileName, nil)
}

// ReadStatsTo is like ReadStats but also writes the normalized stream
// to w as it is read.
func ReadStatsTo(r io.Reader, fileName string, w *statfmt.Writer) (*Stats, error) {
	return readStats(statfmt.NewReader(r, fileName), fileName, w)
}

func readStats(r *statfmt.Reader, path string, w *statfmt.Writer) (*Stats, error) {
	h, err := r.ReadHeader()
	if err != nil {
		return nil, err
	}
	if w != nil {
		if err := w.WriteHeader(h); err != nil {
			return nil, err
		}
	}
	s := NewStats(path, h)
	for r.Scan() {
		switch rec := r.Result().(type) {
		case *statfmt.SyntaxError:
			return nil, rec
		case *statfmt.Stat:
			s.Add(rec)
			if w != nil {
				if err := w.Write(rec); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// Megabytes returns TotalSize in decimal megabytes. The byte count is
// truncated to whole kilobytes before the final division, so
// 1234567 bytes is 1.234 MB.
func (s *Stats) Megabytes() float64 {
	return float64(s.TotalSize/1000) / 1000.0
}

// FormatMegabytes formats Megabytes with as many digits as needed and
// at least one after the decimal point.
func (s *Stats) FormatMegabytes() string {
	f := strconv.FormatFloat(s.Megabytes(), 'f', -1, 64)
	if !strings.Contains(f, ".") {
		f += ".0"
	}
	return f
}

// A MissingKeyError reports that a key a report requires is absent
// from the analyzer output.
type MissingKeyError struct {
	Path string
	Key  string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s: missing %q in analyzer output", e.Path, e.Key)
}
