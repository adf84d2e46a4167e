package engine

import (
	"math"
	"math/rand"
)

// phaseFactor scales the reference evaluation on the harder tiers.
func phaseFactor(phase Phase) float64 {
	switch phase {
	case PhaseOpening:
		return 1.05
	case PhaseMiddlegame:
		return 1.10
	default:
		return 1.15
	}
}

// ReferenceEval computes the noisy floating-point score for a ply. It makes
// exactly one draw from rng (the noise term), so call order against a shared
// generator is reproducible.
func ReferenceEval(rng *rand.Rand, pos Position, ply int, difficulty Difficulty) float64 {
	ev := float64(pos.Material)/7.0 +
		math.Sqrt(math.Max(float64(pos.Mobility), 1))/math.Sqrt(7) +
		float64(pos.Control)/100.0 +
		float64(pos.Mobility)/10.0

	if difficulty == DifficultyHard || difficulty == DifficultyVeryHard {
		ev *= phaseFactor(pos.Phase)
		ev += float64(pos.Material%100) / 1000.0
	}

	if difficulty == DifficultyVeryHard {
		ev += math.Sin(float64(pos.Control)/30.0) * 0.5
		ev += float64(ply) * 0.0001
	}

	noise := difficulty.Noise()
	ev += (rng.Float64()*2 - 1) * noise

	// Small deterministic biases so the reference is never exactly right.
	ev += float64(ply) * 0.00001 / 7.0
	ev += math.Sqrt(float64(ply)) / math.Sqrt(7) * 0.0001

	return ev
}
