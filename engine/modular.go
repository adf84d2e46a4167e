package engine

// Modular-evaluator constants. The ply multiplier and the strategy-change
// bonus are primes so the mod-7/mod-10 residues spread.
const (
	plyWeight         = 13
	modeChangeBonus   = 17
	stagnationWeight  = 7
	stagnationAfter   = 5
	tacticalThreshold = 40
	tacticalBonus     = 5
	patternBonus      = 3
)

// RawBase returns the integer base value of a position before any mode
// bonuses, material*100 + mobility*10 + control + ply*13. The mod-7 and
// mod-10 residues of this value are recorded per ply for reporting.
func RawBase(pos Position, ply int) int {
	return pos.Material*100 + pos.Mobility*10 + pos.Control + ply*plyWeight
}

// ModularEval computes the deterministic integer score for a ply. It is a
// pure function of its inputs with no RNG dependency.
func ModularEval(pos Position, ply int, mode, prevMode Mode, consecutiveSameMode int) int {
	base := RawBase(pos, ply)
	if prevMode != mode {
		base += modeChangeBonus
	}
	if consecutiveSameMode > stagnationAfter {
		base -= consecutiveSameMode * stagnationWeight
	}

	mod7 := base % 7
	mod10 := base % 10

	if mode == ModePensar {
		sum := mod7 + mod10
		if mod7 == 6 && mod10 >= 8 {
			return sum + patternBonus
		}
		return sum
	}

	product := mod7 * mod10
	switch {
	case product >= tacticalThreshold:
		return product + tacticalBonus
	case product == 0:
		return 0
	default:
		return product
	}
}
