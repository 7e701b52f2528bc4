// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statfmt

import (
	"bytes"
	"fmt"
	"io"
)

// A Writer writes the DWARF statistics format.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewWriter returns a writer that writes statistics records to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader writes a "total size" header line.
func (w *Writer) WriteHeader(h Header) error {
	fmt.Fprintf(&w.buf, "%s%d\n", headerPrefix, h.TotalSize)
	return w.flush()
}

// Write writes Record rec to w. Syntax errors are dropped.
func (w *Writer) Write(rec Record) error {
	switch rec := rec.(type) {
	case *Stat:
		fmt.Fprintf(&w.buf, "%s: %d %d\n", rec.Key, rec.Count, rec.Size)
	case *SyntaxError:
		// Ignore
		return nil
	default:
		return fmt.Errorf("unknown Record type %T", rec)
	}
	return w.flush()
}

func (w *Writer) flush() error {
	// Write to the buffer can't fail, so we only have to check if
	// this fails.
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}
