package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-pathtracer/pkg/core"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile       *Tile
	TaskID     int            // Index into the result slice
	PixelStats [][]PixelStats // Shared pixel stats array to write to
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Stats  RenderStats
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	tileRenderer *TileRenderer
	numWorkers   int
	seed         int64
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID   int
	pool *WorkerPool
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Each tile is sampled with its own generator seeded from seed and the tile
// ID, so results do not depend on which worker renders which tile.
func NewWorkerPool(tileRenderer *TileRenderer, numWorkers int, seed int64) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		tileRenderer: tileRenderer,
		numWorkers:   numWorkers,
		seed:         seed,
	}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Run renders all tasks and returns their results indexed by TaskID. The
// first error, including cancellation of ctx, stops the remaining work.
func (wp *WorkerPool) Run(ctx context.Context, tasks []TileTask) ([]TileResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	taskQueue := make(chan TileTask, wp.numWorkers)
	results := make([]TileResult, len(tasks))

	g.Go(func() error {
		defer close(taskQueue)
		for _, task := range tasks {
			select {
			case taskQueue <- task:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < wp.numWorkers; i++ {
		worker := &Worker{ID: i, pool: wp}
		g.Go(func() error {
			return worker.run(ctx, taskQueue, results)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// run is the main worker loop. Tasks own disjoint pixel ranges and result
// slots, so no locking is needed.
func (w *Worker) run(ctx context.Context, taskQueue <-chan TileTask, results []TileResult) error {
	for task := range taskQueue {
		sampler := core.NewSeededSampler(w.pool.seed + int64(task.Tile.ID))
		stats, err := w.pool.tileRenderer.RenderTileBounds(ctx, task.Tile.Bounds, task.PixelStats, sampler)
		if err != nil {
			return err
		}
		results[task.TaskID] = TileResult{TaskID: task.TaskID, Stats: stats}
	}
	return nil
}
