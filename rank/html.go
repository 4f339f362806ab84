// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rank

import (
	"io"

	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("").Funcs(htmlFuncs).Parse(`
<table class='benchrank'>
<tbody>
<tr><th>name<th>total time<th>rows
{{range .Totals -}}
<tr><td>{{.Name}}<td>{{value .Total}}<td>{{.Rows}}
{{end -}}
</tbody>
<tbody>
<tr><th>name<th>wins<th>ties
{{range .Wins -}}
<tr{{if eq .Wins 0}} class='nowins'{{end}}><td>{{.Name}}<td>{{.Wins}}<td>{{.Ties}}
{{end -}}
</tbody>
</table>
`))

var htmlFuncs = template.FuncMap{
	"value": formatValue,
}

// FormatHTML writes r to w as an HTML table fragment.
func (r *Report) FormatHTML(w io.Writer) error {
	return htmlTemplate.Execute(w, r)
}
