// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"io"

	"github.com/dwarfstat/dwarfstat/dwarfstat"
	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
)

const pageTemplate = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>.debug_info breakdown</title>
<script src="{{.Loader}}"></script>
<script>{{.Charts}}</script>
</head>
<body>
<p>.debug_info in {{.Path}} - {{.Megabytes}}MB</p>
<div id="charts"></div>
<p>CU and abbrev mean CU header and abbrev number, specifically</p>
</body>
</html>
`

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// drawCharts draws one pie chart per element of the charts variable.
const drawCharts = `google.charts.load('current', {packages: ['corechart']});
google.charts.setOnLoadCallback(function() {
  var root = document.getElementById('charts');
  charts.forEach(function(c) {
    var data = new google.visualization.DataTable();
    data.addColumn('string', c.namespace);
    data.addColumn('number', 'size');
    c.entries.forEach(function(e) { data.addRow([e.name, e.size]); });
    var div = document.createElement('div');
    div.id = c.namespace;
    root.appendChild(div);
    new google.visualization.PieChart(div).draw(data, {width: 800, height: 600, title: c.namespace});
  });
});
`

type chartEntry struct {
	Name string `json:"name"`
	Size uint64 `json:"size"`
}

type chartData struct {
	Namespace string       `json:"namespace"`
	Entries   []chartEntry `json:"entries"`
}

type page struct {
	Loader    safehtml.TrustedResourceURL
	Charts    safehtml.Script
	Path      string
	Megabytes string
}

// WriteHTML writes a standalone HTML document charting reports.
// Every report entry is included, in report order.
func WriteHTML(w io.Writer, stats *dwarfstat.Stats, reports []*dwarfstat.Report) error {
	var charts []chartData
	for _, r := range reports {
		c := chartData{Namespace: r.Namespace.String(), Entries: []chartEntry{}}
		for _, e := range r.Entries {
			c.Entries = append(c.Entries, chartEntry{e.Name, e.Size})
		}
		charts = append(charts, c)
	}
	script, err := safehtml.ScriptFromDataAndConstant("charts", charts, drawCharts)
	if err != nil {
		return err
	}
	return pageTmpl.Execute(w, page{
		Loader:    safehtml.TrustedResourceURLFromConstant("https://www.gstatic.com/charts/loader.js"),
		Charts:    script,
		Path:      stats.Path,
		Megabytes: stats.FormatMegabytes(),
	})
}
