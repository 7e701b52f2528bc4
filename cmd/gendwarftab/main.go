// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gendwarftab generates the DWARF attribute and form name table used to
// build the dwarfstat analyzer.
//
// Usage:
//
//	gendwarftab [-cpp cpp] [-header dwarf.h] [-i macros.txt] [-o dwarf.tab] [-prefix DW_AT,DW_FORM]
//
// Gendwarftab runs "cpp -dM" on the system dwarf.h and writes one
//
//	DEFINE_DW_AT(DW_AT_<name>);
//
// line per attribute, a blank line, then one DEFINE_DW_FORM line per
// form, and a final blank line. When several macros share a value
// only the first is kept and the others are reported on standard
// error.
//
// The -i flag reads already-preprocessed macro definitions from a file
// (- for stdin) instead of running cpp.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dwarfstat/dwarfstat/internal/outfile"
	"github.com/dwarfstat/dwarfstat/symtab"
)

var errUsage = errors.New("bad usage")

func main() {
	log.SetPrefix("gendwarftab: ")
	log.SetFlags(0)
	if err := gendwarftab(os.Stdin, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func gendwarftab(stdin io.Reader, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("gendwarftab", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: gendwarftab [flags]\n\n")
		flags.PrintDefaults()
	}
	flagCPP := flags.String("cpp", "cpp", "C preprocessor `command`")
	flagHeader := flags.String("header", "/usr/include/dwarf.h", "DWARF `header` to preprocess")
	flagIn := flags.String("i", "", "read preprocessed macro definitions from `file` instead of running cpp")
	flagOut := flags.String("o", "dwarf.tab", "write the table to `file`")
	flagPrefix := flags.String("prefix", strings.Join(symtab.DefaultPrefixes, ","), "comma-separated macro `prefixes`")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 0 || *flagPrefix == "" {
		flags.Usage()
		return errUsage
	}

	var in io.Reader
	switch *flagIn {
	case "":
		out, err := symtab.Preprocess(context.Background(), *flagCPP, *flagHeader)
		if err != nil {
			return err
		}
		in = bytes.NewReader(out)
	case "-":
		in = stdin
	default:
		f, err := os.Open(*flagIn)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	tab, err := symtab.Generate(in, strings.Split(*flagPrefix, ","), func(d symtab.Duplicate) {
		fmt.Fprintln(wErr, d)
	})
	if err != nil {
		return err
	}
	return outfile.Write(*flagOut, func(w io.Writer) error {
		_, err := tab.WriteTo(w)
		return err
	})
}
