// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Dwarfvis charts where the bytes of a binary's .debug_info go.
//
// Usage:
//
//	dwarfvis [flags] binary
//
// Dwarfvis runs the dwarfstat analyzer on binary and writes out.html,
// a page with two pie charts: .debug_info size broken down by
// attribute (DW_AT) and by form (DW_FORM). Both charts also show the
// bytes spent on compilation unit headers (CU) and abbreviation
// numbers (abbrev).
//
// Any analyzer output that does not fit the expected format, and any
// analyzer failure, aborts the run.
//
// The -stats flag reads analyzer output saved earlier (for example with
// -save) instead of running the analyzer; binary is then only used as
// a label and may be omitted.
//
// The -text flag also prints each breakdown as a table, and -png writes
// DW_AT.png and DW_FORM.png bar charts into a directory. The -top flag
// limits both to the largest entries.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/dwarfstat/dwarfstat/analyzer"
	"github.com/dwarfstat/dwarfstat/dwarfstat"
	"github.com/dwarfstat/dwarfstat/internal/outfile"
	"github.com/dwarfstat/dwarfstat/vis"
)

var errUsage = errors.New("bad usage")

func main() {
	log.SetPrefix("dwarfvis: ")
	log.SetFlags(0)
	if err := dwarfvis(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func dwarfvis(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("dwarfvis", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: dwarfvis [flags] binary\n\n")
		flags.PrintDefaults()
	}
	flagAnalyzer := flags.String("analyzer", analyzer.DefaultPath, "analyzer `executable`")
	flagOut := flags.String("o", "out.html", "write the HTML report to `file`")
	flagStats := flags.String("stats", "", "read saved analyzer output from `file` instead of running the analyzer (- for stdin)")
	flagSave := flags.String("save", "", "save the analyzer output to `file`")
	flagText := flags.Bool("text", false, "print the breakdowns as text tables")
	flagTop := flags.Int("top", 0, "limit text and PNG output to the `n` largest entries (0 for all)")
	flagPNG := flags.String("png", "", "write PNG bar charts to `dir`")
	flagV := flags.Bool("v", false, "pass the analyzer's stderr through")
	if err := flags.Parse(args); err != nil {
		return err
	}

	var stats *dwarfstat.Stats
	var err error
	switch {
	case *flagStats != "" && flags.NArg() <= 1:
		if *flagSave != "" {
			fmt.Fprintln(wErr, "-save requires running the analyzer")
			flags.Usage()
			return errUsage
		}
		label := *flagStats
		if flags.NArg() == 1 {
			label = flags.Arg(0)
		}
		stats, err = readStats(*flagStats, label)
	case *flagStats == "" && flags.NArg() == 1:
		c := &analyzer.Command{Path: *flagAnalyzer}
		if *flagV {
			c.Stderr = wErr
		}
		run := func(save io.Writer) error {
			c.Save = save
			stats, err = c.Run(context.Background(), flags.Arg(0))
			return err
		}
		if *flagSave != "" {
			err = outfile.Write(*flagSave, run)
		} else {
			err = run(nil)
		}
	default:
		flags.Usage()
		return errUsage
	}
	if err != nil {
		return err
	}

	reports, err := stats.Reports()
	if err != nil {
		return err
	}
	err = outfile.Write(*flagOut, func(w io.Writer) error {
		return vis.WriteHTML(w, stats, reports)
	})
	if err != nil {
		return err
	}
	if *flagText {
		if err := vis.WriteText(w, reports, *flagTop); err != nil {
			return err
		}
	}
	if *flagPNG != "" {
		if err := os.MkdirAll(*flagPNG, 0777); err != nil {
			return err
		}
		for _, r := range reports {
			path := filepath.Join(*flagPNG, r.Namespace.String()+".png")
			err := outfile.Write(path, func(w io.Writer) error {
				return vis.WriteChart(w, r, *flagTop)
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func readStats(path, label string) (*dwarfstat.Stats, error) {
	if path == "-" {
		return analyzer.ReadFile(io.NopCloser(os.Stdin), label)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return analyzer.ReadFile(f, label)
}
