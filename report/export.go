package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/anonimus/gapsim/engine"
	"github.com/anonimus/gapsim/simulation"
)

// ExportVersion is the current results-document format version.
const ExportVersion = "1.0"

// Meta describes the run that produced an export.
type Meta struct {
	Date       time.Time         `json:"date"`
	Difficulty engine.Difficulty `json:"difficulty"`
	Games      int               `json:"games"`
	Seed       int64             `json:"seed"`
	Version    string            `json:"version"`
}

// Export is the full results document: run metadata, the aggregate summary
// and every game with its per-ply history.
type Export struct {
	Meta    Meta                    `json:"meta"`
	Summary simulation.BatchStats   `json:"summary"`
	Results []simulation.GameResult `json:"results"`
}

// NewExport assembles a results document from a finished batch.
func NewExport(results []simulation.GameResult, stats simulation.BatchStats, difficulty engine.Difficulty, seed int64, when time.Time) Export {
	return Export{
		Meta: Meta{
			Date:       when,
			Difficulty: difficulty,
			Games:      len(results),
			Seed:       seed,
			Version:    ExportVersion,
		},
		Summary: stats,
		Results: results,
	}
}

// WriteFile saves an export as indented JSON. It writes to a temp file in the
// target directory and renames into place so a crash never leaves a partial
// document.
func WriteFile(path string, export Export) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("finalize export: %w", err)
	}
	return nil
}

// ReadFile loads a results document written by WriteFile.
func ReadFile(path string) (Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Export{}, fmt.Errorf("read export: %w", err)
	}
	var export Export
	if err := json.Unmarshal(data, &export); err != nil {
		return Export{}, fmt.Errorf("unmarshal export: %w", err)
	}
	return export, nil
}
