package maze

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDensityFor(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{1, 0.35},
		{2, 0.37},
		{5, 0.43},
		{10, 0.53},
		{11, 0.55},
		{12, 0.55},
		{1000, 0.55},
		{0, 0.35},
		{-4, 0.35},
	}
	for _, tc := range tests {
		if got := DensityFor(tc.level); !approx(got, tc.want) {
			t.Errorf("DensityFor(%d) = %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestDensityMonotonicAndCapped(t *testing.T) {
	prev := DensityFor(1)
	for level := 2; level <= 500; level++ {
		d := DensityFor(level)
		if d < prev {
			t.Fatalf("DensityFor(%d) = %v dropped below level %d (%v)", level, d, level-1, prev)
		}
		if d > MaxWallDensity {
			t.Fatalf("DensityFor(%d) = %v exceeds cap %v", level, d, MaxWallDensity)
		}
		prev = d
	}
	if d := DensityFor(math.MaxInt32); d > MaxWallDensity {
		t.Errorf("DensityFor(MaxInt32) = %v exceeds cap", d)
	}
}

func TestDensityPolicyLevelAtCap(t *testing.T) {
	tests := []struct {
		name   string
		policy DensityPolicy
		want   int
	}{
		{"default", DefaultDensityPolicy(), 11},
		{"flat", DensityPolicy{Base: 0.3, Step: 0, Cap: 0.5}, 0},
		{"starts capped", DensityPolicy{Base: 0.6, Step: 0.1, Cap: 0.5}, 1},
		{"coarse steps", DensityPolicy{Base: 0.2, Step: 0.15, Cap: 0.5}, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.policy.LevelAtCap(); got != tc.want {
				t.Errorf("LevelAtCap() = %d, want %d", got, tc.want)
			}
		})
	}
}
