package renderer

import (
	"runtime"
	"sync"
)

// bandTask is one row band to render.
type bandTask struct {
	id     int // for deterministic accounting
	y0, y1 int // rows [y0, y1)
}

// bandResult is the outcome of rendering one band.
type bandResult struct {
	id   int
	rays int
}

// workerPool renders row bands on parallel goroutines. Bands cover
// disjoint rows, so workers write to the shared framebuffer without
// synchronization.
type workerPool struct {
	taskQueue   chan bandTask
	resultQueue chan bandResult
	numWorkers  int
	render      func(bandTask) bandResult
	wg          sync.WaitGroup
}

// newWorkerPool creates a pool with the given number of workers and
// buffers sized for maxTasks outstanding bands, so submitting every band
// up front never blocks. numWorkers <= 0 uses one worker per CPU.
func newWorkerPool(numWorkers, maxTasks int, render func(bandTask) bandResult) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &workerPool{
		taskQueue:   make(chan bandTask, maxTasks),
		resultQueue: make(chan bandResult, maxTasks),
		numWorkers:  numWorkers,
		render:      render,
	}
}

// start begins all workers
func (wp *workerPool) start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// submit queues a band for rendering
func (wp *workerPool) submit(task bandTask) {
	wp.taskQueue <- task
}

// stop signals that no more tasks are coming and waits for the workers to
// drain the queue.
func (wp *workerPool) stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// result retrieves a completed band result
func (wp *workerPool) result() (bandResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// run is the main worker loop
func (wp *workerPool) run() {
	defer wp.wg.Done()
	for task := range wp.taskQueue {
		wp.resultQueue <- wp.render(task)
	}
}
