package simulation

import (
	"math/rand"
	"testing"

	"github.com/anonimus/gapsim/engine"
)

func TestSimulateGameReproducible(t *testing.T) {
	a := SimulateGame(rand.New(rand.NewSource(42)), engine.DifficultyHard)
	b := SimulateGame(rand.New(rand.NewSource(42)), engine.DifficultyHard)

	if a.TotalPlies != b.TotalPlies {
		t.Fatalf("ply counts differ: %d vs %d", a.TotalPlies, b.TotalPlies)
	}
	if a.Outcome != b.Outcome {
		t.Errorf("outcomes differ: %s vs %s", a.Outcome, b.Outcome)
	}
	if a.ModularTotal != b.ModularTotal || a.ReferenceTotal != b.ReferenceTotal {
		t.Errorf("totals differ: (%v, %v) vs (%v, %v)",
			a.ModularTotal, a.ReferenceTotal, b.ModularTotal, b.ReferenceTotal)
	}
	for i := range a.History {
		ra, rb := a.History[i], b.History[i]
		if ra.Mode != rb.Mode || ra.ModularScore != rb.ModularScore || ra.ReferenceScore != rb.ReferenceScore {
			t.Fatalf("ply %d diverged: %+v vs %+v", i+1, ra, rb)
		}
	}
}

func TestSimulateGameShape(t *testing.T) {
	r := SimulateGame(rand.New(rand.NewSource(7)), engine.DifficultyNormal)

	if r.TotalPlies < minPlies || r.TotalPlies > maxPlies {
		t.Errorf("total plies expected in [%d,%d], got %d", minPlies, maxPlies, r.TotalPlies)
	}
	if len(r.History) != r.TotalPlies {
		t.Fatalf("history length %d expected %d", len(r.History), r.TotalPlies)
	}
	if r.Difficulty != engine.DifficultyNormal {
		t.Errorf("difficulty expected NORMAL, got %s", r.Difficulty)
	}
	for i := range r.History {
		rec := &r.History[i]
		if rec.Ply != i+1 {
			t.Fatalf("record %d expected ply %d, got %d", i, i+1, rec.Ply)
		}
		if rec.Position.Phase != engine.PhaseForPly(rec.Ply) {
			t.Errorf("ply %d phase mismatch", rec.Ply)
		}
		detected, gap := engine.DetectGap(rec.ModularScore, rec.ReferenceScore, rec.Mode)
		if detected != rec.GapDetected || gap != rec.GapMagnitude {
			t.Errorf("ply %d recorded gap (%v, %v) expected (%v, %v)",
				rec.Ply, rec.GapDetected, rec.GapMagnitude, detected, gap)
		}
		if rec.ModAdvantage < 0 || rec.RefAdvantage < 0 {
			t.Errorf("ply %d negative advantage delta", rec.Ply)
		}
	}
}

func TestSimulateGameTotalsMatchHistory(t *testing.T) {
	r := SimulateGame(rand.New(rand.NewSource(3)), engine.DifficultyVeryHard)
	modSum, refSum := 0.0, 0.0
	for i := range r.History {
		modSum += r.History[i].ModAdvantage
		refSum += r.History[i].RefAdvantage
	}
	if modSum != r.ModularTotal || refSum != r.ReferenceTotal {
		t.Errorf("totals (%v, %v) expected to equal history sums (%v, %v)",
			r.ModularTotal, r.ReferenceTotal, modSum, refSum)
	}
}

func TestDetermineOutcome(t *testing.T) {
	cases := []struct {
		name       string
		mod, ref   float64
		difficulty engine.Difficulty
		want       Outcome
	}{
		{"mod clears normal margin", 140, 100, engine.DifficultyNormal, ModWin},
		{"inside normal margin is a draw", 130, 100, engine.DifficultyNormal, Draw},
		{"ref clears normal margin", 100, 140, engine.DifficultyNormal, RefWin},
		{"very hard margin is tighter", 120, 100, engine.DifficultyVeryHard, ModWin},
		{"equal totals draw", 100, 100, engine.DifficultyHard, Draw},
	}
	for _, c := range cases {
		if got := determineOutcome(c.mod, c.ref, c.difficulty); got != c.want {
			t.Errorf("%s: expected %s, got %s", c.name, c.want, got)
		}
	}
}

func TestRunStateStreak(t *testing.T) {
	script := []engine.Mode{
		engine.ModePensar, engine.ModePensar, engine.ModeAtacar,
		engine.ModeAtacar, engine.ModeAtacar, engine.ModePensar,
	}
	// Games start with PENSAR as the previous mode. The counter is only
	// ever reset to 1 on a change or incremented by 1 otherwise.
	want := []int{1, 2, 1, 2, 3, 1}

	state := runState{prevMode: engine.ModePensar}
	for i, mode := range script {
		got := state.observe(mode)
		if got != want[i] {
			t.Errorf("step %d (%s): expected run %d, got %d", i, mode, want[i], got)
		}
		state.prevMode = mode
	}
}

func TestGapsDetectedCount(t *testing.T) {
	r := GameResult{History: []engine.EvalRecord{
		{GapDetected: true}, {GapDetected: false}, {GapDetected: true},
	}}
	if got := r.GapsDetected(); got != 2 {
		t.Errorf("expected 2 detected gaps, got %d", got)
	}
}
