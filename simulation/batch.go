package simulation

import (
	"math/rand"
	"sort"

	"github.com/anonimus/gapsim/engine"
)

// BatchStats summarizes a batch of game results.
type BatchStats struct {
	TotalGames        int     `json:"total_games"`
	ModWins           int     `json:"mod_wins"`
	RefWins           int     `json:"ref_wins"`
	Draws             int     `json:"draws"`
	WinRate           float64 `json:"win_rate"` // modular wins, percent
	AvgPlies          float64 `json:"avg_plies"`
	MedianPlies       int     `json:"median_plies"`
	AvgModularTotal   float64 `json:"avg_modular_total"`
	AvgReferenceTotal float64 `json:"avg_reference_total"`
	GapsDetected      int     `json:"gaps_detected"`
}

// RunBatch simulates numGames games sequentially on one evolving generator
// seeded from seed. Every draw site runs in a fixed order, so a given seed
// reproduces the batch byte for byte.
func RunBatch(numGames int, difficulty engine.Difficulty, seed int64) []GameResult {
	rng := rand.New(rand.NewSource(seed))
	results := make([]GameResult, numGames)
	for i := 0; i < numGames; i++ {
		results[i] = SimulateGame(rng, difficulty)
	}
	return results
}

// Aggregate computes summary statistics over a batch of results.
func Aggregate(results []GameResult) BatchStats {
	stats := BatchStats{TotalGames: len(results)}
	if len(results) == 0 {
		return stats
	}

	plies := make([]int, 0, len(results))
	plySum := 0
	modSum := 0.0
	refSum := 0.0

	for i := range results {
		r := &results[i]
		switch r.Outcome {
		case ModWin:
			stats.ModWins++
		case RefWin:
			stats.RefWins++
		default:
			stats.Draws++
		}
		plies = append(plies, r.TotalPlies)
		plySum += r.TotalPlies
		modSum += r.ModularTotal
		refSum += r.ReferenceTotal
		stats.GapsDetected += r.GapsDetected()
	}

	n := float64(len(results))
	stats.WinRate = float64(stats.ModWins) / n * 100.0
	stats.AvgPlies = float64(plySum) / n
	stats.MedianPlies = median(plies)
	stats.AvgModularTotal = modSum / n
	stats.AvgReferenceTotal = refSum / n
	return stats
}

// median returns the median ply count of a batch.
func median(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
