// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/groupbench/benchtools/internal/fs"
	"github.com/groupbench/benchtools/resultfmt"
)

func sizeSet(name string) *resultfmt.Set {
	return &resultfmt.Set{Name: name, Rows: []resultfmt.Row{
		{16, 5, 120},
		{32, 11, 460},
		{64, 11, 1520},
	}}
}

func TestFigures(t *testing.T) {
	var figs Figures
	for want := 1; want <= 3; want++ {
		if got := figs.Next(); got != want {
			t.Errorf("Next() = %d, want %d", got, want)
		}
	}
}

func TestScatter(t *testing.T) {
	var figs Figures
	layout := Layouts["size"]
	var names []string
	for _, pair := range layout.Pairs() {
		c, err := Scatter(&figs, sizeSet("data/fast.txt"), layout, pair)
		if err != nil {
			t.Fatal(err)
		}
		names = append(names, c.FileName(PNG))
	}
	want := []string{
		"fig01-fast-group-size-vs-time-taken.png",
		"fig02-fast-number-of-classes-vs-time-taken.png",
	}
	if strings.Join(names, " ") != strings.Join(want, " ") {
		t.Errorf("file names = %v, want %v", names, want)
	}

	c, err := Scatter(&figs, sizeSet("fast.txt"), layout, Pair{0, 2})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.Plot.Title.Text, "fast.txt: group size vs time taken"; got != want {
		t.Errorf("title = %q, want %q", got, want)
	}
	if c.Figure != 3 {
		t.Errorf("figure = %d, want 3", c.Figure)
	}
}

func TestScatterWrongLayout(t *testing.T) {
	var figs Figures
	if _, err := Scatter(&figs, sizeSet("x"), Layouts["degree"], Pair{0, 1}); err == nil {
		t.Errorf("Scatter with mismatched layout succeeded")
	}
	if got := figs.Next(); got != 1 {
		t.Errorf("failed Scatter consumed a figure number")
	}
}

func TestSave(t *testing.T) {
	ctx := context.Background()
	mem := fs.NewMemFS()
	var figs Figures

	c, err := Overlay(&figs, []*resultfmt.Set{sizeSet("serre.txt"), sizeSet("fast.txt"), {Name: "empty.txt"}}, Layouts["size"], Pair{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []Format{PNG, SVG, PDF} {
		if _, err := c.Save(ctx, mem, f); err != nil {
			t.Fatalf("Save(%s): %v", f, err)
		}
	}

	files := mem.Files()
	if len(files) != 3 {
		t.Fatalf("got files %v, want 3", files)
	}
	magic := map[string][]byte{
		"png": []byte("\x89PNG"),
		"svg": []byte("<?xml"),
		"pdf": []byte("%PDF"),
	}
	for _, name := range files {
		data, meta, _ := mem.Content(name)
		ext := name[strings.LastIndex(name, ".")+1:]
		if !bytes.HasPrefix(data, magic[ext]) {
			t.Errorf("%s does not start with %q", name, magic[ext])
		}
		if meta["source"] != "overlay" || meta["figure"] != "1" {
			t.Errorf("%s: metadata %v", name, meta)
		}
	}
}

func TestLayout(t *testing.T) {
	l := Layouts["full"]
	for _, test := range []struct {
		in   string
		want int
		ok   bool
	}{
		{"degree", 3, true},
		{"Time Taken", 4, true},
		{"0", 0, true},
		{"5", 0, false},
		{"speed", 0, false},
	} {
		got, err := l.Column(test.in)
		if (err == nil) != test.ok || (test.ok && got != test.want) {
			t.Errorf("Column(%q) = %d, %v", test.in, got, err)
		}
	}

	custom := NewLayout("custom", []string{"a", "b", "t"})
	if got := custom.Pairs(); len(got) != 2 || got[0] != (Pair{0, 2}) || got[1] != (Pair{1, 2}) {
		t.Errorf("Pairs() = %v", got)
	}
	if got := LayoutNames(); strings.Join(got, ",") != "degree,full,size" {
		t.Errorf("LayoutNames() = %v", got)
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("SVG"); err != nil || f != SVG {
		t.Errorf("ParseFormat(SVG) = %q, %v", f, err)
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Errorf("ParseFormat(gif) succeeded")
	}
}

func TestMarkWidth(t *testing.T) {
	for _, test := range []struct{ r, want vg.Length }{
		{vg.Points(3), vg.Points(1)},
		{vg.Points(1), vg.Points(1)},
		{vg.Points(6), vg.Points(2)},
	} {
		if got := markWidth(test.r); got != test.want {
			t.Errorf("markWidth(%v) = %v, want %v", test.r, got, test.want)
		}
	}
}
