// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ratio

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/dwarfstat/dwarfstat/dwarfkey"
	"github.com/dwarfstat/dwarfstat/statfmt"
	"github.com/dwarfstat/dwarfstat/statmap"
	"github.com/google/go-cmp/cmp"
)

func load(t *testing.T, input string) *statmap.Map {
	t.Helper()
	sizes, err := Load(statfmt.NewReader(strings.NewReader(input), "test"))
	if err != nil {
		t.Fatal(err)
	}
	return sizes
}

func compare(t *testing.T, input string, fam dwarfkey.Family) string {
	t.Helper()
	c, err := Compare(load(t, input), fam)
	if err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	if _, err := c.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestSinglePair(t *testing.T) {
	got := compare(t, "ref4_DW_AT_foo: 5 10\nref4_udata_DW_AT_foo: 5 4\n", dwarfkey.Ref4Udata)
	want := "DW_AT_foo 10 => 4 (40.00%)\ntotal 10 => 4 (40.00%)\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzerOutput(t *testing.T) {
	const input = `total size: 1234567
CU: 4 44
abbrev: 310 330
DW_AT_type: 250 1000
ref4_DW_AT_type: 250 1000
ref4_sdata_DW_AT_type: 250 480
ref4_udata_DW_AT_type: 250 470
ref4_DW_AT_sibling: 300 1200
ref4_sdata_DW_AT_sibling: 300 600
ref4_udata_DW_AT_sibling: 300 540
`
	got := compare(t, input, dwarfkey.Ref4Udata)
	want := `DW_AT_type 1000 => 470 (47.00%)
DW_AT_sibling 1200 => 540 (45.00%)
total 2200 => 1010 (45.91%)
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("udata mismatch (-want +got):\n%s", diff)
	}

	got = compare(t, input, dwarfkey.Family{Name: "ref4", Marker: "sdata"})
	want = `DW_AT_type 1000 => 480 (48.00%)
DW_AT_sibling 1200 => 600 (50.00%)
total 2200 => 1080 (49.09%)
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sdata mismatch (-want +got):\n%s", diff)
	}
}

func TestRerunIsIdentical(t *testing.T) {
	var input strings.Builder
	for _, attr := range []string{"z", "a", "m", "b", "y", "c"} {
		input.WriteString("ref4_DW_AT_" + attr + ": 1 8\n")
		input.WriteString("ref4_udata_DW_AT_" + attr + ": 1 3\n")
	}
	first := compare(t, input.String(), dwarfkey.Ref4Udata)
	for i := 0; i < 5; i++ {
		if got := compare(t, input.String(), dwarfkey.Ref4Udata); got != first {
			t.Fatalf("run %d differs:\n%s\nvs\n%s", i, got, first)
		}
	}
	if !strings.HasPrefix(first, "DW_AT_z ") {
		t.Errorf("output not in input order:\n%s", first)
	}
}

func TestMissingCompanion(t *testing.T) {
	sizes := load(t, "ref4_DW_AT_foo: 5 10\nref4_DW_AT_bar: 1 4\nref4_udata_DW_AT_foo: 5 4\n")
	_, err := Compare(sizes, dwarfkey.Ref4Udata)
	var mc *MissingCompanionError
	if !errors.As(err, &mc) {
		t.Fatalf("want *MissingCompanionError, got %v", err)
	}
	if mc.Base != "ref4_DW_AT_bar" || mc.Companion != "ref4_udata_DW_AT_bar" {
		t.Errorf("got %+v", mc)
	}
}

func TestZeroBase(t *testing.T) {
	sizes := load(t, "ref4_DW_AT_foo: 0 0\nref4_udata_DW_AT_foo: 0 0\n")
	if _, err := Compare(sizes, dwarfkey.Ref4Udata); !errors.Is(err, ErrZeroBase) {
		t.Errorf("want ErrZeroBase, got %v", err)
	}
}

func TestNoPairs(t *testing.T) {
	sizes := load(t, "DW_AT_foo: 5 10\n")
	if _, err := Compare(sizes, dwarfkey.Ref4Udata); !errors.Is(err, ErrNoPairs) {
		t.Errorf("want ErrNoPairs, got %v", err)
	}
}

func TestBadFamily(t *testing.T) {
	if _, err := Compare(statmap.New(), dwarfkey.Family{Name: "ref4"}); err == nil {
		t.Error("empty marker accepted")
	}
}

func TestSummarize(t *testing.T) {
	c := &Comparison{Pairs: []Pair{{"a", 10, 4}, {"b", 10, 9}}}
	s, err := Summarize(c)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(s.GeoMean-60) > 1e-9 || s.Min != 40 || s.Max != 90 {
		t.Errorf("got %+v", s)
	}
	if got, want := s.String(), "geomean 60.00% (min 40.00%, max 90.00%)"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}

	c.Pairs = append(c.Pairs, Pair{"c", 10, 0})
	if _, err := Summarize(c); err == nil {
		t.Error("zero companion summarized")
	}
}
