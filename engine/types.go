// Package engine implements the per-ply evaluation core: synthetic position
// generation, the mode-decision policy, the modular and reference evaluators,
// gap detection and advantage accumulation.
package engine

import "fmt"

// Phase is the stage of the game, derived purely from the ply number.
type Phase string

const (
	PhaseOpening    Phase = "OPENING"
	PhaseMiddlegame Phase = "MIDDLEGAME"
	PhaseEndgame    Phase = "ENDGAME"
)

// PhaseForPly maps a ply number to its game phase.
func PhaseForPly(ply int) Phase {
	switch {
	case ply < 15:
		return PhaseOpening
	case ply < 40:
		return PhaseMiddlegame
	default:
		return PhaseEndgame
	}
}

// Mode is the behavioral stance of the acting side for one ply.
type Mode string

const (
	ModePensar Mode = "PENSAR" // conservative
	ModeAtacar Mode = "ATACAR" // aggressive
)

// Difficulty scales reference-evaluator noise, bonus terms and the win margin.
type Difficulty string

const (
	DifficultyNormal   Difficulty = "NORMAL"
	DifficultyHard     Difficulty = "HARD"
	DifficultyVeryHard Difficulty = "VERY_HARD"
)

// ParseDifficulty validates a difficulty name. Unknown values are a
// configuration error and must be rejected before any game starts.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyNormal, DifficultyHard, DifficultyVeryHard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want NORMAL, HARD or VERY_HARD)", s)
}

// Noise returns the half-width of the uniform noise band added by the
// reference evaluator. Higher tiers are less noisy.
func (d Difficulty) Noise() float64 {
	switch d {
	case DifficultyHard:
		return 0.18
	case DifficultyVeryHard:
		return 0.12
	default:
		return 0.25
	}
}

// Margin returns the multiplicative lead one side needs over the other for a
// decisive game outcome.
func (d Difficulty) Margin() float64 {
	switch d {
	case DifficultyHard:
		return 1.25
	case DifficultyVeryHard:
		return 1.15
	default:
		return 1.35
	}
}

// Position is a synthetic board-state descriptor. It is created once per ply
// and never mutated afterwards.
type Position struct {
	Material int   `json:"material"` // 200..2000
	Mobility int   `json:"mobility"` // 5..60
	Control  int   `json:"control"`  // 0..100
	Ply      int   `json:"ply"`
	Phase    Phase `json:"phase"`
}

// EvalRecord captures everything computed for a single ply. Records are
// appended to a game's history in ply order and never mutated.
type EvalRecord struct {
	Ply            int      `json:"ply"`
	Position       Position `json:"position"`
	Mode           Mode     `json:"mode"`
	ModularScore   int      `json:"modular_score"`
	ReferenceScore float64  `json:"reference_score"`
	GapMagnitude   float64  `json:"gap"`
	GapDetected    bool     `json:"gap_detected"`
	Mod7           int      `json:"mod7"`
	Mod10          int      `json:"mod10"`
	ModAdvantage   float64  `json:"mod_advantage"`
	RefAdvantage   float64  `json:"ref_advantage"`
}
