// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package outfile writes generated documents.
package outfile

import (
	"bufio"
	"io"
	"os"

	"go.uber.org/multierr"
)

// Write creates (or truncates) the file at path and fills it with
// write. Errors from write, flushing and closing are all reported.
// A failure can leave a partial file behind.
func Write(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return err
	}
	return bw.Flush()
}
