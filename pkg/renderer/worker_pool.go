package renderer

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// TileTask is one tile queued for a worker
type TileTask struct {
	Tile   *Tile
	TaskID int
}

// TileResult is what a worker reports after finishing a tile
type TileResult struct {
	TaskID   int
	WorkerID int
	Pixels   int
	Duration time.Duration
}

// WorkerPool renders tiles on a fixed number of goroutines
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a pool. numWorkers <= 0 means one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Run feeds every tile to the workers and collects their results. It stops
// handing out tiles once ctx is done and returns ctx's error.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, render func(*Tile) TileResult) ([]TileResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	taskQueue := make(chan TileTask)
	resultQueue := make(chan TileResult, len(tiles)) // every result fits, so workers never block

	g.Go(func() error {
		defer close(taskQueue)
		for i, tile := range tiles {
			select {
			case taskQueue <- TileTask{Tile: tile, TaskID: i}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for id := 0; id < wp.numWorkers; id++ {
		g.Go(func() error {
			for task := range taskQueue {
				if err := ctx.Err(); err != nil {
					return err
				}
				result := render(task.Tile)
				result.TaskID = task.TaskID
				result.WorkerID = id
				resultQueue <- result
			}
			return nil
		})
	}

	err := g.Wait()
	close(resultQueue)

	results := make([]TileResult, 0, len(tiles))
	for result := range resultQueue {
		results = append(results, result)
	}
	return results, err
}
