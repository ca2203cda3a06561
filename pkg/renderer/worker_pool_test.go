package renderer

import (
	"sync"
	"testing"
)

func TestWorkerPool_ProcessesEveryTaskOnce(t *testing.T) {
	const tasks = 37

	var mu sync.Mutex
	seen := make(map[int]int)

	pool := newWorkerPool(4, tasks, func(task bandTask) bandResult {
		mu.Lock()
		seen[task.id]++
		mu.Unlock()
		return bandResult{id: task.id, rays: task.y1 - task.y0}
	})
	pool.start()

	for i := 0; i < tasks; i++ {
		pool.submit(bandTask{id: i, y0: i, y1: i + 2})
	}
	pool.stop()

	totalRays := 0
	for i := 0; i < tasks; i++ {
		result, ok := pool.result()
		if !ok {
			t.Fatalf("Result queue closed after %d of %d results", i, tasks)
		}
		totalRays += result.rays
	}
	if _, ok := pool.result(); ok {
		t.Error("Expected result queue to be drained")
	}

	if totalRays != tasks*2 {
		t.Errorf("Expected %d rays, got %d", tasks*2, totalRays)
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("Task %d processed %d times", id, count)
		}
	}
	if len(seen) != tasks {
		t.Errorf("Expected %d distinct tasks, got %d", tasks, len(seen))
	}
}

func TestWorkerPool_DefaultWorkerCount(t *testing.T) {
	pool := newWorkerPool(0, 1, func(task bandTask) bandResult {
		return bandResult{id: task.id}
	})
	if pool.numWorkers < 1 {
		t.Errorf("Expected at least one worker, got %d", pool.numWorkers)
	}
}
