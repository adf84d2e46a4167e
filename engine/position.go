package engine

import (
	"math"
	"math/rand"
)

// Numeric field domains for generated positions.
const (
	MinMaterial, MaxMaterial = 200, 2000
	MinMobility, MaxMobility = 5, 60
	MinControl, MaxControl   = 0, 100
)

// GeneratePosition produces the synthetic position for a ply. The first ply
// (prev == nil) draws each field uniformly; later plies take a bounded random
// walk from the previous position. All fields are clamped to their domains.
func GeneratePosition(rng *rand.Rand, ply int, prev *Position) Position {
	var material, mobility, control int
	if prev == nil {
		material = 500 + rng.Intn(1001)
		mobility = 10 + rng.Intn(51)
		control = rng.Intn(101)
	} else {
		material = walk(rng, prev.Material, 50)
		mobility = walk(rng, prev.Mobility, 5)
		control = walk(rng, prev.Control, 10)
	}

	return Position{
		Material: clampInt(material, MinMaterial, MaxMaterial),
		Mobility: clampInt(mobility, MinMobility, MaxMobility),
		Control:  clampInt(control, MinControl, MaxControl),
		Ply:      ply,
		Phase:    PhaseForPly(ply),
	}
}

// walk draws a continuous step in (-span, +span) and rounds to the nearest
// integer.
func walk(rng *rand.Rand, from, span int) int {
	step := (rng.Float64() - 0.5) * 2 * float64(span)
	return int(math.Round(float64(from) + step))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
