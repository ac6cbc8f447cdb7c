package renderer

import (
	"math/rand"
	"runtime"
	"sync"

	"pathtracer/pkg/core"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile       Tile
	PixelStats [][]PixelStats // Shared pixel stats array to write to
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	Stats RenderStats
}

// WorkerPool manages parallel tile rendering. Each worker renders whole
// tiles; the tile's own seed drives its random stream, so output does not
// depend on how tasks land on workers.
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	renderer    *TileRenderer
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers
// (0 means one per CPU)
func NewWorkerPool(renderer *TileRenderer, maxTiles, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan TileTask, maxTiles),
		resultQueue: make(chan TileResult, maxTiles),
		numWorkers:  numWorkers,
		renderer:    renderer,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop signals that no more tasks are coming and waits for the workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(task.Tile.Seed)))
		stats := wp.renderer.RenderBounds(task.Tile.Bounds, task.PixelStats, sampler)
		wp.resultQueue <- TileResult{Stats: stats}
	}
}
