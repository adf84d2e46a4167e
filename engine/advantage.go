package engine

import "math"

// AdvantageInput carries one ply's evaluation results into the accumulator.
type AdvantageInput struct {
	Position       Position
	Ply            int
	Mode           Mode
	Difficulty     Difficulty
	ModularScore   int
	ReferenceScore float64
	GapDetected    bool
	GapMagnitude   float64
}

// AdvantageDelta is the point award for one ply, one field per side. Both
// fields start at zero and never go negative: every step is additive with
// non-negative amounts except the documented 0.85 damping, which cannot flip
// sign.
type AdvantageDelta struct {
	Mod float64
	Ref float64
}

// advantageStep is one entry in the ordered accumulation table. Steps apply
// in the listed order; the damping step must run after all additive mod
// steps that precede it.
type advantageStep struct {
	name  string
	apply func(in AdvantageInput, d *AdvantageDelta)
}

var advantageSteps = []advantageStep{
	{
		// Detected gaps award the modular side. Only the first matching
		// branch applies.
		name: "gap-bounty",
		apply: func(in AdvantageInput, d *AdvantageDelta) {
			if !in.GapDetected {
				return
			}
			switch {
			case in.Mode == ModeAtacar && in.GapMagnitude > 10:
				d.Mod += 4.0
			case in.Mode == ModePensar && in.GapMagnitude > 6:
				d.Mod += 2.0
			case in.GapMagnitude > 8:
				d.Mod += 1.5
			}
		},
	},
	{
		name: "strong-score",
		apply: func(in AdvantageInput, d *AdvantageDelta) {
			if in.Mode == ModeAtacar && in.ModularScore >= 35 {
				d.Mod += 1.5
			}
			if in.Mode == ModePensar && in.ModularScore >= 12 {
				d.Mod += 1.0
			}
		},
	},
	{
		// On the harder tiers the reference side earns positional credit,
		// and VERY_HARD damps the whole mod delta accumulated so far in
		// the late game.
		name: "difficulty-pressure",
		apply: func(in AdvantageInput, d *AdvantageDelta) {
			if in.Difficulty != DifficultyHard && in.Difficulty != DifficultyVeryHard {
				return
			}
			if in.Position.Phase == PhaseMiddlegame {
				d.Ref += 0.8
			}
			if in.Position.Control > 60 && in.Position.Mobility > 30 {
				d.Ref += 1.0
			}
			if in.Ply > 20 && in.Difficulty == DifficultyVeryHard {
				d.Mod *= 0.85
			}
		},
	},
	{
		// The reference score's distance from its nearest integer decides
		// who collects the rounding error.
		name: "rounding-error",
		apply: func(in AdvantageInput, d *AdvantageDelta) {
			if math.Abs(in.ReferenceScore-math.Round(in.ReferenceScore)) > 0.4 {
				d.Mod += 0.5
			} else {
				d.Ref += 0.3
			}
		},
	},
}

// Accumulate computes the per-ply advantage deltas by running the ordered
// step table. Callers add the result to their running game totals.
func Accumulate(in AdvantageInput) AdvantageDelta {
	var d AdvantageDelta
	for _, step := range advantageSteps {
		step.apply(in, &d)
	}
	return d
}
