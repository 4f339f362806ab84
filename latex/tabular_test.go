// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latex

import (
	"strings"
	"testing"

	"github.com/groupbench/benchtools/resultfmt"
)

func TestFormat(t *testing.T) {
	for _, test := range []struct {
		name string
		tab  *Table
		want string
	}{
		{
			name: "basic",
			tab: &Table{
				Header: []string{"n", "time"},
				Rows:   [][]string{{"64", "10"}, {"128", "25"}},
			},
			want: `
\begin{tabular}{|c|c|}
\hline
n & time \\
\hline
64 & 10 \\
128 & 25 \\
\hline
\end{tabular}
`,
		},
		{
			name: "align and ragged",
			tab: &Table{
				Align: "l r r",
				Rows:  [][]string{{"a", "1", "2"}, {"b"}},
			},
			want: `
\begin{tabular}{l r r}
\hline
a & 1 & 2 \\
b &  &  \\
\hline
\end{tabular}
`,
		},
		{
			name: "escaping",
			tab: &Table{
				Header: []string{"file_name", "50%"},
				Rows:   [][]string{{"a&b", "#1"}},
			},
			want: `
\begin{tabular}{|c|c|}
\hline
file\_name & 50\% \\
\hline
a\&b & \#1 \\
\hline
\end{tabular}
`,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			want := strings.TrimPrefix(test.want, "\n")
			if got := test.tab.String(); got != want {
				t.Errorf("got:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}

func TestFromSet(t *testing.T) {
	set := &resultfmt.Set{Rows: []resultfmt.Row{{64, 1, 11, 3, 1520}, {128, 2, 1.5, 3, 40}}}
	tab := FromSet(set, []string{"size", "id", "classes", "degree", "time"})
	if got := tab.Columns(); got != 5 {
		t.Errorf("Columns() = %d, want 5", got)
	}
	if got, want := strings.Join(tab.Rows[1], " "), "128 2 1.5 3 40"; got != want {
		t.Errorf("row 1 = %q, want %q", got, want)
	}
}
