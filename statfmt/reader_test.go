// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statfmt

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseLine(t *testing.T) {
	for _, test := range []struct {
		line string
		want *Stat
		msg  string
	}{
		{"DW_AT_name: 3 200", &Stat{Key: "DW_AT_name", Count: 3, Size: 200}, ""},
		{"CU: 1 0", &Stat{Key: "CU", Count: 1, Size: 0}, ""},
		{"ref4_udata_DW_AT_type: 12 30", &Stat{Key: "ref4_udata_DW_AT_type", Count: 12, Size: 30}, ""},
		{"odd: key: 1 2", &Stat{Key: "odd: key", Count: 1, Size: 2}, ""},
		{"with space: 4 5", &Stat{Key: "with space", Count: 4, Size: 5}, ""},

		{"", nil, "missing \": \" separator"},
		{"DW_AT_name 3 200", nil, "missing \": \" separator"},
		{": 1 2", nil, "empty key"},
		{"total size: 1000", nil, "expected count and size"},
		{"k: 1", nil, "expected count and size"},
		{"k: x 2", nil, "parsing count"},
		{"k: -1 2", nil, "parsing count"},
		{"k: 1 +2", nil, "parsing size"},
		{"k: 1  2", nil, "parsing size"},
		{"k: 1 2 3", nil, "parsing size"},
		{"k: 1 99999999999999999999", nil, "parsing size"},
	} {
		rec := ParseLine(test.line)
		switch rec := rec.(type) {
		case *Stat:
			if test.want == nil {
				t.Errorf("%q: got %+v, want syntax error %q", test.line, rec, test.msg)
				continue
			}
			if diff := cmp.Diff(test.want, rec, cmpopts.IgnoreUnexported(Stat{})); diff != "" {
				t.Errorf("%q: mismatch (-want +got):\n%s", test.line, diff)
			}
		case *SyntaxError:
			if test.want != nil {
				t.Errorf("%q: unexpected error %s", test.line, rec)
				continue
			}
			if rec.Msg != test.msg {
				t.Errorf("%q: got message %q, want %q", test.line, rec.Msg, test.msg)
			}
			if rec.Text != test.line {
				t.Errorf("%q: error text is %q", test.line, rec.Text)
			}
		default:
			t.Fatalf("unexpected record type %T", rec)
		}
	}
}

func TestParseHeader(t *testing.T) {
	for _, test := range []struct {
		line string
		want uint64
		ok   bool
	}{
		{"total size: 1000000", 1000000, true},
		{"total size: 0", 0, true},
		{"total size:1000", 0, false},
		{"total size: ", 0, false},
		{"total size: 12 34", 0, false},
		{"CU: 1 100", 0, false},
	} {
		h, ok := ParseHeader(test.line)
		if ok != test.ok || h.TotalSize != test.want {
			t.Errorf("ParseHeader(%q) = %d, %v; want %d, %v", test.line, h.TotalSize, ok, test.want, test.ok)
		}
	}
}

func TestReader(t *testing.T) {
	const input = "total size: 1000000\nDW_AT_foo: 3 200\nbogus\nDW_FORM_bar: 2 50\n"
	r := NewReader(strings.NewReader(input), "in.txt")
	h, err := r.ReadHeader()
	if err != nil {
		t.Fatal(err)
	}
	if h.TotalSize != 1000000 {
		t.Errorf("total size = %d, want 1000000", h.TotalSize)
	}

	var keys []string
	var errs []string
	for r.Scan() {
		switch rec := r.Result().(type) {
		case *Stat:
			keys = append(keys, rec.Key)
			if rec.Key == "DW_FORM_bar" {
				if name, line := rec.Pos(); name != "in.txt" || line != 4 {
					t.Errorf("DW_FORM_bar at %s:%d, want in.txt:4", name, line)
				}
			}
		case *SyntaxError:
			errs = append(errs, rec.Error())
		}
	}
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"DW_AT_foo", "DW_FORM_bar"}, keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{`in.txt:3: missing ": " separator: "bogus"`}, errs); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestReaderBadHeader(t *testing.T) {
	r := NewReader(strings.NewReader("DW_AT_foo: 3 200\nDW_AT_bar: 1 2\n"), "in.txt")
	_, err := r.ReadHeader()
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("want *SyntaxError, got %v", err)
	}
	if se.Line != 1 || se.Text != "DW_AT_foo: 3 200" {
		t.Errorf("got %+v", se)
	}

	// Only the header line was consumed.
	if !r.Scan() {
		t.Fatal("Scan returned false")
	}
	if st, ok := r.Result().(*Stat); !ok || st.Key != "DW_AT_bar" {
		t.Errorf("next record = %v, want DW_AT_bar", r.Result())
	}
}

func TestReaderEmpty(t *testing.T) {
	r := NewReader(strings.NewReader(""), "empty")
	if _, err := r.ReadHeader(); !errors.Is(err, ErrNoHeader) {
		t.Errorf("want ErrNoHeader, got %v", err)
	}
}

func TestReaderHeaderAfterScan(t *testing.T) {
	r := NewReader(strings.NewReader("a: 1 2\ntotal size: 3\n"), "in")
	r.Scan()
	if _, err := r.ReadHeader(); err == nil {
		t.Error("ReadHeader after Scan succeeded")
	}
}

func TestResultBeforeScan(t *testing.T) {
	r := NewReader(strings.NewReader("a: 1 2\n"), "in")
	if r.Result() != noResult {
		t.Errorf("Result before Scan = %v", r.Result())
	}
}

func TestWriter(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf)
	if err := w.WriteHeader(Header{TotalSize: 42}); err != nil {
		t.Fatal(err)
	}
	for _, rec := range []Record{
		&Stat{Key: "CU", Count: 1, Size: 11},
		&SyntaxError{Msg: "dropped", Text: "junk"},
		&Stat{Key: "DW_AT_name", Count: 2, Size: 31},
	} {
		if err := w.Write(rec); err != nil {
			t.Fatal(err)
		}
	}
	const want = "total size: 42\nCU: 1 11\nDW_AT_name: 2 31\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	// What we write, we can read back.
	r := NewReader(strings.NewReader(buf.String()), "")
	if h, err := r.ReadHeader(); err != nil || h.TotalSize != 42 {
		t.Fatalf("ReadHeader = %v, %v", h, err)
	}
	n := 0
	for r.Scan() {
		if _, ok := r.Result().(*Stat); !ok {
			t.Errorf("unexpected %v", r.Result())
		}
		n++
	}
	if n != 2 {
		t.Errorf("read back %d records, want 2", n)
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0666); err != nil {
			t.Fatal(err)
		}
		return path
	}
	a := write("a.txt", "total size: 10\nx: 1 2\n")
	b := write("b.txt", "y: 3 4\n")

	f := &Files{Paths: []string{a, b}}
	var got []string
	for f.Scan() {
		switch rec := f.Result().(type) {
		case *Stat:
			name, _ := rec.Pos()
			got = append(got, filepath.Base(name)+":"+rec.Key)
		case *SyntaxError:
			got = append(got, "error:"+rec.Text)
		}
	}
	if err := f.Err(); err != nil {
		t.Fatal(err)
	}
	want := []string{"error:total size: 10", "a.txt:x", "b.txt:y"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	f = &Files{Paths: []string{filepath.Join(dir, "missing.txt")}}
	if f.Scan() {
		t.Error("Scan of missing file succeeded")
	}
	if f.Err() == nil {
		t.Error("missing file produced no error")
	}
}
