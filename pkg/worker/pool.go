package worker

import (
	"errors"
	"sync"
)

// WorkerPool contains a sync.WaitGroup as 'Wg' which is
// automatically controlled by the pool. The 'workers'
// field is a slice that contains all the workers
// attached to this WorkerPool.
type WorkerPool struct {
	sync.Mutex
	workers []Worker
	Wg      sync.WaitGroup
	started bool
}

// NewWorkerPool creates a new WorkerPool struct
// and initialises the 'workers' slice.
func NewWorkerPool() *WorkerPool {
	return &WorkerPool{workers: make([]Worker, 0)}
}

// Start cycles through all the workers
// currently inside the WorkerPool and creates
// a goroutine for each. The 'Start' method of
// each worker is executed concurrently.
//
// Start does NOT block, however consumers
// can wait on the WaitGroup in the pool if they
// wish.
func (pool *WorkerPool) Start() error {
	pool.Lock()
	defer pool.Unlock()

	if pool.started {
		return errors.New("cannot start an already started worker pool")
	}

	pool.started = true
	for _, worker := range pool.workers {
		pool.Wg.Add(1)
		go func(wg *sync.WaitGroup, w Worker) {
			defer wg.Done()
			w.Start()
		}(&pool.Wg, worker)
	}

	return nil
}

// PushWorker inserts the worker provided in to the worker pool. Workers
// cannot be added once the pool has started.
func (pool *WorkerPool) PushWorker(workers ...Worker) error {
	pool.Lock()
	defer pool.Unlock()

	if pool.started {
		return errors.New("cannot push worker to already started worker pool")
	}

	pool.workers = append(pool.workers, workers...)
	return nil
}

// WakeupWorkers sends a non-blocking wakeup to every worker which has not
// finished. The wakeup channels are buffered, so a worker that is part-way
// through deciding to sleep will still observe the wakeup.
func (pool *WorkerPool) WakeupWorkers() error {
	pool.Lock()
	defer pool.Unlock()

	if !pool.started {
		return errors.New("cannot wakeup workers on worker pool that is not started")
	}

	for _, w := range pool.workers {
		if w.Status() != FINISHED {
			select {
			case w.WakeupChan() <- 1:
			default:
			}
		}
	}

	return nil
}

// Close will cycle through all the workers inside this
// worker pool and close their wakeup channels, then waits
// for every worker to return.
func (pool *WorkerPool) Close() {
	pool.Lock()
	if !pool.started {
		pool.Unlock()
		return
	}

	for _, w := range pool.workers {
		w.Close()
	}
	pool.started = false
	pool.Unlock()

	pool.Wg.Wait()
}

// Size returns the number of workers attached to this pool
func (pool *WorkerPool) Size() int {
	pool.Lock()
	defer pool.Unlock()
	return len(pool.workers)
}
