package maze

import "testing"

func mustParse(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := ParseGrid(rows...)
	if err != nil {
		t.Fatalf("ParseGrid() failed: %v", err)
	}
	return g
}

func TestIsSolvable(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		start Point
		goal  Point
		want  bool
	}{
		{
			name: "straight corridor",
			rows: []string{
				"#####",
				"#...#",
				"#####",
			},
			start: Point{1, 1},
			goal:  Point{3, 1},
			want:  true,
		},
		{
			name: "winding path",
			rows: []string{
				"#######",
				"#..#..#",
				"##.#.##",
				"##...##",
				"#######",
			},
			start: Point{1, 1},
			goal:  Point{5, 1},
			want:  true,
		},
		{
			name: "blocked by wall",
			rows: []string{
				"#####",
				"#.#.#",
				"#####",
			},
			start: Point{1, 1},
			goal:  Point{3, 1},
			want:  false,
		},
		{
			name: "diagonal only",
			rows: []string{
				"####",
				"#.##",
				"##.#",
				"####",
			},
			start: Point{1, 1},
			goal:  Point{2, 2},
			want:  false,
		},
		{
			name: "start equals goal",
			rows: []string{
				"###",
				"#.#",
				"###",
			},
			start: Point{1, 1},
			goal:  Point{1, 1},
			want:  true,
		},
		{
			name: "goal on wall",
			rows: []string{
				"#####",
				"#..##",
				"#####",
			},
			start: Point{1, 1},
			goal:  Point{3, 1},
			want:  false,
		},
		{
			name: "start out of bounds",
			rows: []string{
				"#####",
				"#...#",
				"#####",
			},
			start: Point{-1, 1},
			goal:  Point{3, 1},
			want:  false,
		},
		{
			name: "open edge does not leak",
			rows: []string{
				"..#..",
				"..#..",
			},
			start: Point{0, 0},
			goal:  Point{4, 1},
			want:  false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.rows...)
			if got := IsSolvable(g, tc.start, tc.goal); got != tc.want {
				t.Errorf("IsSolvable(%v -> %v) = %v, want %v", tc.start, tc.goal, got, tc.want)
			}
		})
	}
}

func TestIsSolvableNilGrid(t *testing.T) {
	if IsSolvable(nil, Point{1, 1}, Point{1, 1}) {
		t.Error("nil grid should not be solvable")
	}
}

func TestIsSolvableLargeOpenGrid(t *testing.T) {
	g := NewGrid(201, 201)
	for y := 1; y < 200; y++ {
		for x := 1; x < 200; x++ {
			g.set(Point{x, y}, Path)
		}
	}
	if !IsSolvable(g, Point{1, 1}, Point{199, 199}) {
		t.Error("open grid should be solvable")
	}
}
