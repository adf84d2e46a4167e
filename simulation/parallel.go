package simulation

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/anonimus/gapsim/engine"
)

// gameJob is one game assignment for the worker pool.
type gameJob struct {
	index int
	seed  int64
}

// RunBatchParallel simulates numGames games across a worker pool. Each game
// runs on its own generator seeded deterministically from the master seed and
// the game index, so the batch is reproducible for any worker count. The
// per-game streams differ from RunBatch's single evolving stream.
func RunBatchParallel(numGames int, difficulty engine.Difficulty, seed int64, numWorkers int) []GameResult {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	// Derive all game seeds up front from the master stream; dispatch order
	// then cannot affect them.
	seeder := rand.New(rand.NewSource(seed))
	jobs := make(chan gameJob, numGames)
	for i := 0; i < numGames; i++ {
		jobs <- gameJob{index: i, seed: seeder.Int63()}
	}
	close(jobs)

	results := make([]GameResult, numGames)
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				rng := rand.New(rand.NewSource(job.seed))
				results[job.index] = SimulateGame(rng, difficulty)
			}
		}()
	}
	wg.Wait()

	return results
}
