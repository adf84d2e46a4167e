// Package report renders batch results as console output and as a JSON
// results document.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/anonimus/gapsim/engine"
	"github.com/anonimus/gapsim/simulation"
)

// maxSampleRows caps the sample-game listing.
const maxSampleRows = 20

// PrintSummary writes the batch summary block.
func PrintSummary(w io.Writer, stats simulation.BatchStats, difficulty engine.Difficulty, when time.Time) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== ANONIMUS Chess Simulation ===")
	fmt.Fprintf(w, "Date:             %s\n", when.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Difficulty:       %s\n", difficulty)
	fmt.Fprintf(w, "Games:            %d\n", stats.TotalGames)
	fmt.Fprintf(w, "ANONIMUS wins:    %d\n", stats.ModWins)
	fmt.Fprintf(w, "Reference wins:   %d\n", stats.RefWins)
	fmt.Fprintf(w, "Draws:            %d\n", stats.Draws)
	fmt.Fprintf(w, "ANONIMUS win rate: %.2f%%\n", stats.WinRate)
	fmt.Fprintf(w, "Avg plies:        %.1f (median %d)\n", stats.AvgPlies, stats.MedianPlies)
	fmt.Fprintf(w, "Gaps detected:    %d\n", stats.GapsDetected)
}

// PrintSample writes one game's detected gaps, at most maxSampleRows of them.
func PrintSample(w io.Writer, result simulation.GameResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Sample game (detected gaps) ---")
	rows := 0
	for i := range result.History {
		rec := &result.History[i]
		if !rec.GapDetected {
			continue
		}
		rows++
		if rows > maxSampleRows {
			break
		}
		fmt.Fprintf(w, "#%02d [%c] %-6s mod7=%d mod10=%d Eval=%d Ref=%.3f Gap=%.1f Advantage=+%.1f\n",
			rec.Ply, rec.Position.Phase[0], rec.Mode,
			rec.Mod7, rec.Mod10, rec.ModularScore, rec.ReferenceScore,
			rec.GapMagnitude, rec.ModAdvantage)
	}
	if rows == 0 {
		fmt.Fprintln(w, "(no gaps detected)")
	}
}
