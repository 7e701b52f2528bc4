// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vis renders dwarfstat reports as an HTML page of pie charts,
// as fixed-width text, or as PNG bar charts.
package vis
