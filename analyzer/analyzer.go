// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package analyzer runs the external dwarfstat analyzer and collects
// its output.
//
// The analyzer takes the path of a binary as its only argument and
// writes a statistics stream (see package statfmt) to stdout. Its
// stderr carries progress messages only.
package analyzer

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/dwarfstat/dwarfstat/dwarfstat"
	"github.com/dwarfstat/dwarfstat/statfmt"
	"go.uber.org/multierr"
)

// DefaultPath is where the analyzer is looked for by default.
const DefaultPath = "./dwarfstat"

// A Command describes how to run the analyzer.
type Command struct {
	// Path is the analyzer executable. If empty, DefaultPath is used.
	Path string

	// Stderr receives the analyzer's stderr. If nil, it is
	// discarded.
	Stderr io.Writer

	// Save, if non-nil, receives a copy of the statistics stream.
	Save io.Writer

	// Env, if non-nil, is the analyzer's environment.
	Env []string
}

// Run analyzes target and returns the parsed statistics. Any output
// line that does not fit the statistics format, and any non-zero exit
// status, is an error. Run waits for the analyzer to finish; it does
// not time out on its own.
func (c *Command) Run(ctx context.Context, target string) (*dwarfstat.Stats, error) {
	path := c.Path
	if path == "" {
		path = DefaultPath
	}
	cmd := exec.CommandContext(ctx, path, target)
	cmd.Stderr = c.Stderr
	cmd.Env = c.Env
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting analyzer: %w", err)
	}

	var w *statfmt.Writer
	if c.Save != nil {
		w = statfmt.NewWriter(c.Save)
	}
	stats, readErr := dwarfstat.ReadStatsTo(stdout, target, w)
	if readErr != nil {
		// Drain the rest so the analyzer can exit on its own and its
		// status still says whether it failed.
		io.Copy(io.Discard, stdout)
	}
	if err := cmd.Wait(); err != nil {
		return nil, multierr.Combine(readErr, fmt.Errorf("%s %s: %w", path, target, err))
	}
	if readErr != nil {
		return nil, readErr
	}
	return stats, nil
}

// ReadFile loads a previously saved statistics stream, as written by
// Command.Save, from r. label is used as the analyzed path.
func ReadFile(r io.ReadCloser, label string) (stats *dwarfstat.Stats, err error) {
	defer func() {
		err = multierr.Append(err, r.Close())
	}()
	return dwarfstat.ReadStats(r, label)
}
