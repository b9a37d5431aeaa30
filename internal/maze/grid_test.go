package maze

import (
	"strings"
	"testing"
)

func TestNewGridIsAllWall(t *testing.T) {
	g := NewGrid(4, 3)
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", g.Width(), g.Height())
	}
	if n := g.CountPaths(); n != 0 {
		t.Errorf("CountPaths() = %d, want 0", n)
	}
}

func TestParseGridRoundTrip(t *testing.T) {
	rows := []string{
		"#####",
		"#..##",
		"##..#",
		"#####",
	}
	g, err := ParseGrid(rows...)
	if err != nil {
		t.Fatalf("ParseGrid() failed: %v", err)
	}
	if got := g.String(); got != strings.Join(rows, "\n") {
		t.Errorf("String() =\n%s\nwant\n%s", got, strings.Join(rows, "\n"))
	}
	if g.CountPaths() != 4 {
		t.Errorf("CountPaths() = %d, want 4", g.CountPaths())
	}
	if !g.IsPath(Point{1, 1}) || g.IsPath(Point{3, 1}) {
		t.Error("cells parsed at the wrong coordinates")
	}
	if got := g.Rows(); len(got) != 4 || got[2] != "##..#" {
		t.Errorf("Rows() = %v", got)
	}
}

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"empty", nil},
		{"ragged", []string{"###", "##"}},
		{"bad rune", []string{"#x#"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseGrid(tc.rows...); err == nil {
				t.Error("ParseGrid() should fail")
			}
		})
	}
}

func TestGridBoundsAndBorder(t *testing.T) {
	g := NewGrid(5, 4)

	tests := []struct {
		p              Point
		inBounds, edge bool
	}{
		{Point{0, 0}, true, true},
		{Point{4, 3}, true, true},
		{Point{2, 0}, true, true},
		{Point{0, 2}, true, true},
		{Point{2, 2}, true, false},
		{Point{-1, 2}, false, false},
		{Point{5, 1}, false, false},
		{Point{1, 4}, false, false},
	}
	for _, tc := range tests {
		if got := g.InBounds(tc.p); got != tc.inBounds {
			t.Errorf("InBounds(%v) = %v, want %v", tc.p, got, tc.inBounds)
		}
		if tc.inBounds {
			if got := g.IsBorder(tc.p); got != tc.edge {
				t.Errorf("IsBorder(%v) = %v, want %v", tc.p, got, tc.edge)
			}
		}
	}

	// Reading outside the grid must not panic and reads as wall.
	if g.At(Point{-3, 9}) != Wall {
		t.Error("out-of-bounds At() should be Wall")
	}
}

func TestPointStep(t *testing.T) {
	p := Point{3, 3}
	want := map[Direction]Point{
		DirUp:    {3, 2},
		DirDown:  {3, 4},
		DirLeft:  {2, 3},
		DirRight: {4, 3},
	}
	for d, w := range want {
		if got := p.Step(d); got != w {
			t.Errorf("Step(%s) = %v, want %v", d, got, w)
		}
	}
}

func TestGridEqual(t *testing.T) {
	a, _ := ParseGrid("###", "#.#", "###")
	b, _ := ParseGrid("###", "#.#", "###")
	c, _ := ParseGrid("###", "###", "###")

	if !a.Equal(b) {
		t.Error("identical grids should be equal")
	}
	if a.Equal(c) {
		t.Error("different grids should not be equal")
	}
	if a.Equal(nil) {
		t.Error("grid should not equal nil")
	}
}
