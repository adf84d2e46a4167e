// Package simulation drives whole games of the evaluator duel and aggregates
// batch statistics over many games.
package simulation

import (
	"math/rand"

	"github.com/anonimus/gapsim/engine"
)

// Outcome is the final result of one game.
type Outcome string

const (
	ModWin Outcome = "MOD_WIN"
	RefWin Outcome = "REF_WIN"
	Draw   Outcome = "DRAW"
)

// Game length bounds; the total ply count is drawn once per game.
const (
	minPlies = 35
	maxPlies = 65
)

// GameResult holds the outcome of a single game together with its full
// per-ply history.
type GameResult struct {
	Difficulty     engine.Difficulty   `json:"difficulty"`
	TotalPlies     int                 `json:"total_plies"`
	ModularTotal   float64             `json:"modular_total"`
	ReferenceTotal float64             `json:"reference_total"`
	Outcome        Outcome             `json:"outcome"`
	History        []engine.EvalRecord `json:"history"`
}

// GapsDetected counts the plies on which an exploitable gap was flagged.
func (r *GameResult) GapsDetected() int {
	n := 0
	for i := range r.History {
		if r.History[i].GapDetected {
			n++
		}
	}
	return n
}

// runState is the mutable per-game state threaded through the ply loop.
type runState struct {
	prevMode     engine.Mode
	prevPosition *engine.Position
	sameModeRun  int
}

// observe updates the consecutive-same-mode counter for the ply's chosen
// mode: reset to 1 on a mode change, otherwise increment. The counter gates
// the modular evaluator's stagnation penalty and must only ever be derived
// this way.
func (s *runState) observe(mode engine.Mode) int {
	if mode == s.prevMode {
		s.sameModeRun++
	} else {
		s.sameModeRun = 1
	}
	return s.sameModeRun
}

// SimulateGame plays one full game at the given difficulty, drawing all
// randomness from rng. Given the same generator state and difficulty it
// reproduces the identical sequence of positions, modes, scores and outcome.
func SimulateGame(rng *rand.Rand, difficulty engine.Difficulty) GameResult {
	totalPlies := minPlies + rng.Intn(maxPlies-minPlies+1)

	state := runState{prevMode: engine.ModePensar}
	history := make([]engine.EvalRecord, 0, totalPlies)
	modTotal := 0.0
	refTotal := 0.0

	for ply := 1; ply <= totalPlies; ply++ {
		pos := engine.GeneratePosition(rng, ply, state.prevPosition)
		mode := engine.DecideMode(pos, state.prevMode, history)
		sameRun := state.observe(mode)

		modScore := engine.ModularEval(pos, ply, mode, state.prevMode, sameRun)
		refScore := engine.ReferenceEval(rng, pos, ply, difficulty)
		detected, gap := engine.DetectGap(modScore, refScore, mode)

		delta := engine.Accumulate(engine.AdvantageInput{
			Position:       pos,
			Ply:            ply,
			Mode:           mode,
			Difficulty:     difficulty,
			ModularScore:   modScore,
			ReferenceScore: refScore,
			GapDetected:    detected,
			GapMagnitude:   gap,
		})
		modTotal += delta.Mod
		refTotal += delta.Ref

		base := engine.RawBase(pos, ply)
		history = append(history, engine.EvalRecord{
			Ply:            ply,
			Position:       pos,
			Mode:           mode,
			ModularScore:   modScore,
			ReferenceScore: refScore,
			GapMagnitude:   gap,
			GapDetected:    detected,
			Mod7:           base % 7,
			Mod10:          base % 10,
			ModAdvantage:   delta.Mod,
			RefAdvantage:   delta.Ref,
		})

		state.prevMode = mode
		state.prevPosition = &pos
	}

	return GameResult{
		Difficulty:     difficulty,
		TotalPlies:     totalPlies,
		ModularTotal:   modTotal,
		ReferenceTotal: refTotal,
		Outcome:        determineOutcome(modTotal, refTotal, difficulty),
		History:        history,
	}
}

// determineOutcome applies the difficulty-dependent win margin to the
// accumulated totals.
func determineOutcome(modTotal, refTotal float64, difficulty engine.Difficulty) Outcome {
	margin := difficulty.Margin()
	switch {
	case modTotal > refTotal*margin:
		return ModWin
	case refTotal > modTotal*margin:
		return RefWin
	default:
		return Draw
	}
}
