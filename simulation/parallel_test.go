package simulation

import (
	"testing"

	"github.com/anonimus/gapsim/engine"
)

func TestRunBatchParallelWorkerCountInvariant(t *testing.T) {
	const games = 24
	const seed = 1234

	one := RunBatchParallel(games, engine.DifficultyHard, seed, 1)
	four := RunBatchParallel(games, engine.DifficultyHard, seed, 4)

	if len(one) != games || len(four) != games {
		t.Fatalf("expected %d results, got %d and %d", games, len(one), len(four))
	}
	for i := range one {
		a, b := &one[i], &four[i]
		if a.Outcome != b.Outcome || a.TotalPlies != b.TotalPlies ||
			a.ModularTotal != b.ModularTotal || a.ReferenceTotal != b.ReferenceTotal {
			t.Fatalf("game %d differs across worker counts: %+v vs %+v", i, a, b)
		}
	}
}

func TestRunBatchParallelReproducible(t *testing.T) {
	a := RunBatchParallel(10, engine.DifficultyNormal, 77, 3)
	b := RunBatchParallel(10, engine.DifficultyNormal, 77, 3)
	for i := range a {
		if a[i].Outcome != b[i].Outcome || a[i].ModularTotal != b[i].ModularTotal {
			t.Fatalf("game %d not reproducible", i)
		}
	}
}

func TestRunBatchReproducible(t *testing.T) {
	a := RunBatch(10, engine.DifficultyHard, 42)
	b := RunBatch(10, engine.DifficultyHard, 42)
	for i := range a {
		if a[i].Outcome != b[i].Outcome ||
			a[i].ModularTotal != b[i].ModularTotal ||
			a[i].ReferenceTotal != b[i].ReferenceTotal {
			t.Fatalf("game %d not reproducible", i)
		}
	}
}

func TestAggregate(t *testing.T) {
	results := []GameResult{
		{Outcome: ModWin, TotalPlies: 40, ModularTotal: 50, ReferenceTotal: 20},
		{Outcome: RefWin, TotalPlies: 50, ModularTotal: 10, ReferenceTotal: 40},
		{Outcome: Draw, TotalPlies: 60, ModularTotal: 30, ReferenceTotal: 30},
		{Outcome: ModWin, TotalPlies: 38, ModularTotal: 60, ReferenceTotal: 10},
	}
	stats := Aggregate(results)

	if stats.TotalGames != 4 || stats.ModWins != 2 || stats.RefWins != 1 || stats.Draws != 1 {
		t.Errorf("counts expected (4,2,1,1), got (%d,%d,%d,%d)",
			stats.TotalGames, stats.ModWins, stats.RefWins, stats.Draws)
	}
	if stats.WinRate != 50.0 {
		t.Errorf("win rate expected 50.0, got %v", stats.WinRate)
	}
	if stats.AvgPlies != 47.0 {
		t.Errorf("avg plies expected 47.0, got %v", stats.AvgPlies)
	}
	if stats.MedianPlies != 45 {
		t.Errorf("median plies expected 45, got %d", stats.MedianPlies)
	}
	if stats.AvgModularTotal != 37.5 || stats.AvgReferenceTotal != 25.0 {
		t.Errorf("avg totals expected (37.5, 25.0), got (%v, %v)",
			stats.AvgModularTotal, stats.AvgReferenceTotal)
	}
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)
	if stats.TotalGames != 0 || stats.WinRate != 0 {
		t.Errorf("empty batch expected zero stats, got %+v", stats)
	}
}

func TestMedian(t *testing.T) {
	cases := []struct {
		values []int
		want   int
	}{
		{[]int{5}, 5},
		{[]int{3, 1, 2}, 2},
		{[]int{4, 1, 3, 2}, 2},
		{nil, 0},
	}
	for _, c := range cases {
		if got := median(c.values); got != c.want {
			t.Errorf("median(%v) expected %d, got %d", c.values, c.want, got)
		}
	}
}
