package engine

import "math"

// Gap-detection thresholds. The attacking mode demands a larger discrepancy
// before a gap counts as exploitable.
const (
	atacarGapThreshold = 8
	pensarGapThreshold = 5
)

// DetectGap compares the two scores on a common integer scale (the reference
// score rounded at one decimal of precision) and reports whether the
// discrepancy is exploitable for the given mode, along with its magnitude.
func DetectGap(modularScore int, referenceScore float64, mode Mode) (bool, float64) {
	scaled := math.Round(referenceScore * 10)
	gap := math.Abs(float64(modularScore) - scaled)
	switch mode {
	case ModeAtacar:
		return gap > atacarGapThreshold, gap
	default:
		return gap > pensarGapThreshold, gap
	}
}
