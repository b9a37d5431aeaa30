package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrGenerationFailed is returned when MaxAttempts candidates were
	// drawn and none of them was solvable.
	ErrGenerationFailed = errors.New("maze: generation failed")

	// ErrInvalidParams is returned for dimensions, endpoints or densities
	// that can never produce a valid maze.
	ErrInvalidParams = errors.New("maze: invalid generation parameters")
)

// RandomSource supplies uniform draws in [0, 1).
// *math/rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// GenParams describes one maze to generate.
type GenParams struct {
	Width   int
	Height  int
	Start   Point
	Goal    Point
	Density float64 // Probability that an interior cell is a Wall, in [0, 1)
}

// GenerationStats reports how a maze was obtained.
type GenerationStats struct {
	Attempts int     // Candidates drawn, including the accepted one
	Density  float64 // Wall probability used for every candidate
}

// Generator draws random grids until one is solvable.
//
// A Generator owns no state between calls except its random source, so
// a failed or abandoned Generate leaves nothing behind.
type Generator struct {
	rng         RandomSource
	maxAttempts int // 0 = retry forever
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithMaxAttempts caps the number of candidates per Generate call.
// Zero or a negative value keeps the retry loop unbounded.
func WithMaxAttempts(n int) GeneratorOption {
	return func(g *Generator) {
		if n < 0 {
			n = 0
		}
		g.maxAttempts = n
	}
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng RandomSource, opts ...GeneratorOption) *Generator {
	g := &Generator{rng: rng}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// MaxAttempts returns the configured attempt guard (0 = unbounded).
func (g *Generator) MaxAttempts() int {
	return g.maxAttempts
}

// Generate returns a grid whose border is all Wall, whose start and goal
// cells are Path, and in which goal is reachable from start.
func (g *Generator) Generate(p GenParams) (*Grid, GenerationStats, error) {
	stats := GenerationStats{Density: p.Density}
	if err := p.validate(); err != nil {
		return nil, stats, err
	}

	for g.maxAttempts == 0 || stats.Attempts < g.maxAttempts {
		stats.Attempts++
		grid := g.candidate(p)
		if IsSolvable(grid, p.Start, p.Goal) {
			return grid, stats, nil
		}
	}

	return nil, stats, fmt.Errorf("%w: no solvable %dx%d maze after %d attempts at density %.2f",
		ErrGenerationFailed, p.Width, p.Height, stats.Attempts, p.Density)
}

// candidate fills a fresh grid: border cells are Wall, every interior cell
// is Wall with probability Density, then start and goal are carved open.
// Draws happen row by row, left to right, interior cells only.
func (g *Generator) candidate(p GenParams) *Grid {
	grid := NewGrid(p.Width, p.Height)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			pt := Point{x, y}
			if grid.IsBorder(pt) {
				continue // already Wall
			}
			if g.rng.Float64() >= p.Density {
				grid.set(pt, Path)
			}
		}
	}
	grid.set(p.Start, Path)
	grid.set(p.Goal, Path)
	return grid
}

func (p GenParams) validate() error {
	if p.Width < 3 || p.Height < 3 {
		return fmt.Errorf("%w: grid %dx%d is smaller than 3x3", ErrInvalidParams, p.Width, p.Height)
	}
	if p.Density < 0 || p.Density >= 1 {
		return fmt.Errorf("%w: density %v outside [0, 1)", ErrInvalidParams, p.Density)
	}
	probe := Grid{width: p.Width, height: p.Height}
	for _, pt := range []Point{p.Start, p.Goal} {
		if !probe.InBounds(pt) || probe.IsBorder(pt) {
			return fmt.Errorf("%w: endpoint %v must be an interior cell", ErrInvalidParams, pt)
		}
	}
	return nil
}
