// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/dwarfstat/dwarfstat/dwarfstat"
)

// WriteText writes a fixed-width table of each report to w. If top is
// positive, only the top largest entries of each report are listed;
// shares are always relative to the whole report.
func WriteText(w io.Writer, reports []*dwarfstat.Report, top int) error {
	var buf bytes.Buffer
	for i, r := range reports {
		if i > 0 {
			buf.WriteByte('\n')
		}
		total := r.Total()
		rows := [][]string{{r.Namespace.String(), "count", "size", "share"}}
		for _, e := range r.Top(top) {
			rows = append(rows, []string{
				e.Name,
				comma(e.Count),
				comma(e.Size),
				fmt.Sprintf("%.2f%%", r.Share(e)),
			})
		}
		rows = append(rows, []string{"total", "", comma(total), humanize.Bytes(total)})
		formatRows(&buf, rows)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func comma(v uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(v))
}

// formatRows lays out rows with the first column left-aligned and the
// others right-aligned.
func formatRows(buf *bytes.Buffer, rows [][]string) {
	var max []int
	for _, row := range rows {
		for len(max) < len(row) {
			max = append(max, 0)
		}
		for i, s := range row {
			if n := utf8.RuneCountInString(s); max[i] < n {
				max[i] = n
			}
		}
	}
	for _, row := range rows {
		for i, s := range row {
			if i == 0 {
				fmt.Fprintf(buf, "%-*s", max[i], s)
			} else {
				fmt.Fprintf(buf, "  %*s", max[i], s)
			}
		}
		buf.WriteByte('\n')
	}
}
