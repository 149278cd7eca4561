package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// WorkerPool renders tiles in parallel with a bounded number of goroutines.
// The first tile error cancels the remaining tiles.
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool. numWorkers <= 0 uses the CPU count.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// NumWorkers returns the maximum number of concurrently rendered tiles
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Run renders every tile and returns the combined statistics. Results are
// stored by tile ID so no locking is needed.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, tr *TileRenderer) (RenderStats, error) {
	results := make([]RenderStats, len(tiles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	for i, tile := range tiles {
		i, tile := i, tile
		g.Go(func() error {
			stats, err := tr.RenderTile(gctx, tile)
			results[i] = stats
			return err
		})
	}

	err := g.Wait()

	var total RenderStats
	for _, r := range results {
		total.add(r)
	}
	total.Workers = wp.numWorkers
	return total, err
}
