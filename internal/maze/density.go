package maze

import "math"

// Default density policy: 35% walls on level 1, two points more per level,
// never above 55%.
const (
	DefaultBaseDensity = 0.35
	DefaultDensityStep = 0.02
	MaxWallDensity     = 0.55
)

// DensityPolicy maps a level to the probability that an interior cell
// becomes a Wall.
type DensityPolicy struct {
	Base float64
	Step float64
	Cap  float64
}

// DefaultDensityPolicy returns the standard 0.35 / 0.02 / 0.55 policy.
func DefaultDensityPolicy() DensityPolicy {
	return DensityPolicy{
		Base: DefaultBaseDensity,
		Step: DefaultDensityStep,
		Cap:  MaxWallDensity,
	}
}

// For returns min(Base + (level-1)*Step, Cap).
// Levels below 1 are treated as level 1.
func (p DensityPolicy) For(level int) float64 {
	if level < 1 {
		level = 1
	}
	return math.Min(p.Base+float64(level-1)*p.Step, p.Cap)
}

// LevelAtCap returns the first level whose density reaches Cap,
// or 0 if the policy never gets there.
func (p DensityPolicy) LevelAtCap() int {
	if p.Base >= p.Cap {
		return 1
	}
	if p.Step <= 0 {
		return 0
	}
	return int(math.Ceil((p.Cap-p.Base)/p.Step-1e-9)) + 1
}

// DensityFor applies the default policy.
func DensityFor(level int) float64 {
	return DefaultDensityPolicy().For(level)
}
