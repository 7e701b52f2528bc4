// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package statfmt provides a reader and writer for the DWARF statistics
// format emitted by the dwarfstat analyzer.
//
// The format is line-oriented. An analyzer run starts with a header line
//
//	total size: <bytes>
//
// followed by one record per line:
//
//	<key>: <count> <size>
//
// where count and size are unsigned decimal integers. Keys are
// attribute names (DW_AT_*), form names (DW_FORM_*), whole-unit
// counters (CU, abbrev, attr) and derived counters such as
// ref4_DW_AT_* and ref4_udata_DW_AT_*.
//
// The Reader reports each line as a Record, which is either a *Stat or
// a *SyntaxError. Whether a syntax error is fatal is up to the caller.
package statfmt

import (
	"strconv"
	"strings"
)

// A Stat is a single key: count size record.
type Stat struct {
	Key   string
	Count uint64
	Size  uint64

	// fileName and line record where this Stat was read from.
	fileName string
	line     int
}

func (s *Stat) Pos() (fileName string, line int) {
	return s.fileName, s.line
}

// A Header is the leading line of an analyzer run.
type Header struct {
	// TotalSize is the size in bytes of the analyzed .debug_info.
	TotalSize uint64
}

// A Record is a single record read from a statistics stream. It is
// either a *Stat or a *SyntaxError.
type Record interface {
	// Pos returns the position of this record as a file name and a
	// 1-based line number within that file. If this record was not read
	// from a file, it returns "", 0.
	Pos() (fileName string, line int)
}

var _ Record = (*Stat)(nil)
var _ Record = (*SyntaxError)(nil)

const headerPrefix = "total size: "

// ParseLine parses a single record line. It returns a *Stat on success
// and a *SyntaxError otherwise. The returned record has no position.
func ParseLine(line string) Record {
	st, msg := parseStat(line)
	if msg != "" {
		return &SyntaxError{Msg: msg, Text: line}
	}
	return &st
}

// ParseHeader parses line as a "total size: <n>" header.
func ParseHeader(line string) (Header, bool) {
	if !strings.HasPrefix(line, headerPrefix) {
		return Header{}, false
	}
	n, ok := parseUint(line[len(headerPrefix):])
	if !ok {
		return Header{}, false
	}
	return Header{TotalSize: n}, true
}

// parseStat parses line as "<key>: <count> <size>". On failure it
// returns a non-empty message describing the problem.
func parseStat(line string) (Stat, string) {
	// The key may itself contain ": ", but the trailing fields never
	// do, so the last separator is the one that ends the key.
	i := strings.LastIndex(line, ": ")
	if i < 0 {
		return Stat{}, "missing \": \" separator"
	}
	if i == 0 {
		return Stat{}, "empty key"
	}
	key, rest := line[:i], line[i+2:]

	countField, sizeField, ok := strings.Cut(rest, " ")
	if !ok {
		return Stat{}, "expected count and size"
	}
	count, ok := parseUint(countField)
	if !ok {
		return Stat{}, "parsing count"
	}
	size, ok := parseUint(sizeField)
	if !ok {
		return Stat{}, "parsing size"
	}
	return Stat{Key: key, Count: count, Size: size}, ""
}

// parseUint parses a non-empty string of ASCII digits.
func parseUint(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
