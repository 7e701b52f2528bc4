// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ratio compares pairs of related statistics.
//
// For a dwarfkey.Family such as ref4/udata, every base key
// ref4_DW_AT_<attr> is paired with its companion
// ref4_udata_DW_AT_<attr>, and the companion size is reported as a
// percentage of the base size. This answers how much smaller the
// DW_FORM_ref4 references of each attribute would be if they were
// encoded as ULEB128 instead.
package ratio

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/dwarfstat/dwarfstat/dwarfkey"
	"github.com/dwarfstat/dwarfstat/statfmt"
	"github.com/dwarfstat/dwarfstat/statmap"
)

// A Pair is a base value and its companion value.
type Pair struct {
	Name      string
	Base      uint64
	Companion uint64
}

// Percent returns Companion as a percentage of Base.
func (p Pair) Percent() float64 {
	return float64(p.Companion) * 100.0 / float64(p.Base)
}

func (p Pair) String() string {
	return fmt.Sprintf("%s %d => %d (%.2f%%)", p.Name, p.Base, p.Companion, p.Percent())
}

// A Comparison is the result of comparing every pair of a family.
type Comparison struct {
	Family dwarfkey.Family

	// Pairs are in the order their base keys were read.
	Pairs []Pair

	// Total sums the bases and companions of all Pairs.
	Total Pair
}

// A MissingCompanionError reports a base key without a companion.
type MissingCompanionError struct {
	Base      string
	Companion string
}

func (e *MissingCompanionError) Error() string {
	return fmt.Sprintf("%s has no companion %s", e.Base, e.Companion)
}

var (
	// ErrZeroBase is returned when a base value is 0, which would
	// make its ratio undefined.
	ErrZeroBase = errors.New("base value is zero")

	// ErrNoPairs is returned when no key of the family is present.
	ErrNoPairs = errors.New("no matching keys")
)

// Compare pairs every base key of fam in sizes with its companion.
// A base key without a companion is an error; so is a base of zero.
func Compare(sizes *statmap.Map, fam dwarfkey.Family) (*Comparison, error) {
	if err := fam.Validate(); err != nil {
		return nil, err
	}
	c := &Comparison{Family: fam, Total: Pair{Name: "total"}}
	for _, e := range sizes.Entries() {
		attr, ok := fam.Base(e.Key)
		if !ok {
			continue
		}
		ckey := fam.Companion(attr)
		cv, ok := sizes.Get(ckey)
		if !ok {
			return nil, &MissingCompanionError{e.Key, ckey}
		}
		if e.Value == 0 {
			return nil, fmt.Errorf("%s: %w", e.Key, ErrZeroBase)
		}
		c.Pairs = append(c.Pairs, Pair{attr, e.Value, cv})
		c.Total.Base += e.Value
		c.Total.Companion += cv
	}
	if len(c.Pairs) == 0 {
		return nil, fmt.Errorf("%s_%s: %w", fam.Name, dwarfkey.AttrNS.Prefix(), ErrNoPairs)
	}
	return c, nil
}

// WriteTo writes one line per pair followed by the total line.
func (c *Comparison) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, p := range c.Pairs {
		m, err := fmt.Fprintln(w, p)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	m, err := fmt.Fprintln(w, c.Total)
	return n + int64(m), err
}

// Summary describes the distribution of per-pair percentages.
type Summary struct {
	GeoMean  float64
	Min, Max float64
}

func (s Summary) String() string {
	return fmt.Sprintf("geomean %.2f%% (min %.2f%%, max %.2f%%)", s.GeoMean, s.Min, s.Max)
}

// Summarize returns the geometric mean and bounds of the per-pair
// percentages of c. If any companion is zero the geometric mean is
// undefined and Summarize returns an error.
func Summarize(c *Comparison) (Summary, error) {
	pcts := make([]float64, len(c.Pairs))
	for i, p := range c.Pairs {
		pcts[i] = p.Percent()
	}
	gm := stats.GeoMean(pcts)
	if math.IsNaN(gm) || gm == 0 {
		return Summary{}, fmt.Errorf("ratios must be >0 to compute geomean")
	}
	lo, hi := stats.Bounds(pcts)
	return Summary{GeoMean: gm, Min: lo, Max: hi}, nil
}

// A Scanner is a source of statistics records, such as a
// *statfmt.Reader or *statfmt.Files.
type Scanner interface {
	Scan() bool
	Result() statfmt.Record
	Err() error
}

// Load reads every record from s into a key to size map. Lines that
// are not records, including a "total size" header, are skipped.
func Load(s Scanner) (*statmap.Map, error) {
	sizes := statmap.New()
	for s.Scan() {
		if st, ok := s.Result().(*statfmt.Stat); ok {
			sizes.Set(st.Key, st.Size)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return sizes, nil
}
