// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statfmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// A Reader reads the DWARF statistics format.
//
// Its API is modeled on bufio.Scanner. A stream that starts with a
// "total size" header must have it consumed with ReadHeader before the
// first call to Scan.
//
// To construct a new Reader, either call NewReader, or call Reset on
// a zeroed Reader.
type Reader struct {
	s   *bufio.Scanner
	err error // current I/O error

	fileName string
	line     int

	rec Record
}

// A SyntaxError represents a line of a statistics stream that does
// not match the expected format.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string

	// Text is the raw offending line.
	Text string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	if e.FileName == "" && e.Line == 0 {
		return fmt.Sprintf("%s: %q", e.Msg, e.Text)
	}
	return fmt.Sprintf("%s:%d: %s: %q", e.FileName, e.Line, e.Msg, e.Text)
}

// ErrNoHeader is returned by ReadHeader when the input is empty.
var ErrNoHeader = errors.New("missing \"total size\" header")

var noResult = &SyntaxError{"", 0, "Reader.Scan has not been called", ""}

// NewReader constructs a reader to parse the statistics format from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.line = 0
	r.err = nil
	r.rec = nil
}

func (r *Reader) newSyntaxError(msg, text string) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, msg, text}
}

// ReadHeader reads the first line of the input and parses it as a
// "total size: <n>" header. It must be called before Scan.
//
// If the first line is not a header, ReadHeader returns a
// *SyntaxError holding the line; no record lines are consumed.
func (r *Reader) ReadHeader() (Header, error) {
	if r.line != 0 {
		return Header{}, fmt.Errorf("%s: ReadHeader called after line %d", r.fileName, r.line)
	}
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			r.err = fmt.Errorf("%s: %w", r.fileName, err)
			return Header{}, r.err
		}
		return Header{}, fmt.Errorf("%s: %w", r.fileName, ErrNoHeader)
	}
	r.line++
	text := r.s.Text()
	h, ok := ParseHeader(text)
	if !ok {
		return Header{}, r.newSyntaxError("expected \"total size: <n>\" header", text)
	}
	return h, nil
}

// Scan advances the reader to the next line and reports whether a
// record was read. The caller should use the Result method to get the
// record. If Scan reaches EOF or an I/O error occurs, it returns false,
// in which case the caller should use the Err method to check for
// errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
		}
		r.rec = nil
		return false
	}
	r.line++
	text := r.s.Text()
	st, msg := parseStat(text)
	if msg != "" {
		r.rec = r.newSyntaxError(msg, text)
		return true
	}
	st.fileName, st.line = r.fileName, r.line
	r.rec = &st
	return true
}

// Result returns the record that was just read by Scan. This is either
// a *Stat or a *SyntaxError indicating a parse error.
//
// Parse errors are non-fatal as far as the Reader is concerned, so the
// caller can continue to call Scan.
func (r *Reader) Result() Record {
	if r.rec == nil {
		// This should only happen if Scan has never been called.
		return noResult
	}
	return r.rec
}

// Err returns the first non-EOF I/O error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}
