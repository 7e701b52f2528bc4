// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Ref4stat reports how much smaller DW_FORM_ref4 attribute values would
// be with a variable-length encoding.
//
// Usage:
//
//	ref4stat [-family name] [-marker name] [-geomean] [stats.txt ...]
//
// Ref4stat reads the output of the dwarfstat analyzer from the named
// files, or from standard input if none are given. For each
// ref4_DW_AT_<attr> record it looks up the ref4_udata_DW_AT_<attr>
// record for the same attribute and prints
//
//	DW_AT_<attr> <ref4 bytes> => <udata bytes> (<percent>%)
//
// followed by a total line over all attributes. Lines that are not
// records are ignored. A ref4 record without its udata companion is a
// fatal error.
//
// The -marker flag selects another companion, such as sdata for
// SLEB128. The -family flag selects another base family. The -geomean
// flag adds the geometric mean and range of the per-attribute
// percentages.
//
// Example:
//
//	$ dwarfstat a.out > a.stats
//	$ ref4stat a.stats
//	DW_AT_type 1000 => 470 (47.00%)
//	DW_AT_sibling 1200 => 540 (45.00%)
//	total 2200 => 1010 (45.91%)
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dwarfstat/dwarfstat/dwarfkey"
	"github.com/dwarfstat/dwarfstat/ratio"
	"github.com/dwarfstat/dwarfstat/statfmt"
)

var errUsage = errors.New("bad usage")

func main() {
	log.SetPrefix("ref4stat: ")
	log.SetFlags(0)
	if err := ref4stat(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func ref4stat(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("ref4stat", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: ref4stat [flags] [stats.txt...]\n\n")
		flags.PrintDefaults()
	}
	flagFamily := flags.String("family", dwarfkey.Ref4Udata.Name, "compare keys of the form `name`_DW_AT_*")
	flagMarker := flags.String("marker", dwarfkey.Ref4Udata.Marker, "against keys of the form <family>_`marker`_DW_AT_*")
	flagGeomean := flags.Bool("geomean", false, "print the geometric mean of the per-attribute ratios")
	if err := flags.Parse(args); err != nil {
		return err
	}

	fam := dwarfkey.Family{Name: *flagFamily, Marker: *flagMarker}
	if err := fam.Validate(); err != nil {
		fmt.Fprintln(wErr, err)
		flags.Usage()
		return errUsage
	}

	files := &statfmt.Files{Paths: flags.Args(), AllowStdin: true}
	sizes, err := ratio.Load(files)
	if err != nil {
		return err
	}
	c, err := ratio.Compare(sizes, fam)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(w); err != nil {
		return err
	}
	if *flagGeomean {
		s, err := ratio.Summarize(c)
		if err != nil {
			// Non-fatal: the per-attribute output stands.
			fmt.Fprintln(wErr, "warning:", err)
			return nil
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
