// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symtab generates the DWARF name table from the macro
// definitions in dwarf.h.
//
// The input is the output of "cpp -dM dwarf.h". For each requested
// prefix, such as DW_AT or DW_FORM, every macro
//
//	#define DW_AT_name 0x03
//
// contributes one table entry
//
//	DEFINE_DW_AT(DW_AT_name);
//
// Aliases (macros whose value was already defined under another name
// with the same prefix) are dropped, so each value maps to exactly one
// name: the first one in the input.
package symtab

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"regexp"
)

// DefaultPrefixes are the namespaces the analyzer needs names for.
var DefaultPrefixes = []string{"DW_AT", "DW_FORM"}

// A Duplicate is a macro dropped because its value was already taken.
type Duplicate struct {
	Prefix string
	Name   string // the dropped macro
	Kept   string // the macro that defined Value first
	Value  string
	Line   string
}

func (d Duplicate) String() string {
	return fmt.Sprintf("dup %s: %s (same value as %s)", d.Prefix, d.Line, d.Kept)
}

// A Block is the table entries of one prefix.
type Block struct {
	Prefix string
	// Names are in order of first definition.
	Names []string
}

// A Table is a generated name table.
type Table struct {
	Blocks []Block
}

// Generate builds the name table for prefixes from the macro
// definitions in r. Lines that are not definitions of a macro with
// one of the prefixes are ignored. Each dropped alias is passed to
// warn, if it is non-nil.
func Generate(r io.Reader, prefixes []string, warn func(Duplicate)) (*Table, error) {
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	t := new(Table)
	for _, prefix := range prefixes {
		if prefix == "" {
			return nil, errors.New("empty prefix")
		}
		re := regexp.MustCompile(`^#define (` + regexp.QuoteMeta(prefix) + `_\S+) (.*)`)
		b := Block{Prefix: prefix}
		seen := make(map[string]string) // value -> first name
		for _, line := range lines {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			name, value := m[1], m[2]
			if kept, ok := seen[value]; ok {
				if warn != nil {
					warn(Duplicate{prefix, name, kept, value, line})
				}
				continue
			}
			seen[value] = name
			b.Names = append(b.Names, name)
		}
		t.Blocks = append(t.Blocks, b)
	}
	return t, nil
}

// WriteTo writes t in the form consumed by the analyzer's name table:
// one DEFINE_<prefix>(<name>); line per entry and a blank line after
// each block.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, b := range t.Blocks {
		for _, name := range b.Names {
			fmt.Fprintf(&buf, "DEFINE_%s(%s);\n", b.Prefix, name)
		}
		buf.WriteByte('\n')
	}
	return buf.WriteTo(w)
}

// Preprocess runs "cpp -dM header" and returns the macro definitions
// it prints.
func Preprocess(ctx context.Context, cpp, header string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, cpp, "-dM", header).Output()
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) && len(ee.Stderr) > 0 {
			return nil, fmt.Errorf("%s -dM %s: %w\n%s", cpp, header, err, bytes.TrimSpace(ee.Stderr))
		}
		return nil, fmt.Errorf("%s -dM %s: %w", cpp, header, err)
	}
	return out, nil
}
