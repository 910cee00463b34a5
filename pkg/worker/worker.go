package worker

import (
	"sync"

	"github.com/hbomb79/Videomania/pkg/logger"
)

var workerLogger = logger.Get("Worker")

type (
	WorkerWakeupChan chan int
	WorkerStatus     int

	// WorkerTask is the function a worker executes repeatedly. The boolean
	// return indicates whether the task found work to do; when it did not, the
	// worker sleeps until woken by the pool. A non-nil error is logged and the
	// worker goes to sleep.
	WorkerTask func(Worker) (bool, error)
)

const (
	SLEEPING WorkerStatus = iota
	WORKING
	FINISHED
)

type Worker interface {
	Start()
	Status() WorkerStatus
	WakeupChan() WorkerWakeupChan
	Label() string
	Sleep() bool
	Close()
}

type taskWorker struct {
	sync.Mutex
	label         string
	task          WorkerTask
	wakeupChan    WorkerWakeupChan
	currentStatus WorkerStatus
	closeOnce     sync.Once
}

func NewWorker(label string, task WorkerTask) *taskWorker {
	return &taskWorker{
		label:         label,
		task:          task,
		wakeupChan:    make(WorkerWakeupChan, 1),
		currentStatus: SLEEPING,
	}
}

// Start runs the workers task until the wakeup channel is closed. Each
// time the task reports that no work was found, the worker sleeps.
func (worker *taskWorker) Start() {
	workerLogger.Emit(logger.NEW, "Starting worker with label %v\n", worker.label)
	defer workerLogger.Emit(logger.STOP, "Worker with label %v has stopped\n", worker.label)

	worker.setStatus(WORKING)
	for {
		found, err := worker.task(worker)
		if err != nil {
			workerLogger.Emit(logger.ERROR, "Worker with label %v has reported an error(%T): %v\n", worker.label, err, err.Error())
		}

		if found && err == nil {
			continue
		}

		if !worker.Sleep() {
			return
		}
	}
}

// Status returns the current status of this worker
func (worker *taskWorker) Status() WorkerStatus {
	worker.Lock()
	defer worker.Unlock()
	return worker.currentStatus
}

func (worker *taskWorker) WakeupChan() WorkerWakeupChan {
	return worker.wakeupChan
}

// Close closes the Worker by closing the WakeChan.
// Note that this does not interupt currently running
// tasks.
func (worker *taskWorker) Close() {
	worker.closeOnce.Do(func() { close(worker.wakeupChan) })
}

// Label returns the label for this worker
func (worker *taskWorker) Label() string {
	return worker.label
}

// Sleep puts a worker to sleep until it's wakeupChan is
// signalled from another goroutine. Returns a boolean that
// is 'false' if the wakeup channel was closed - indicating
// the worker should quit.
func (worker *taskWorker) Sleep() (isAlive bool) {
	worker.setStatus(SLEEPING)

	if _, isAlive = <-worker.wakeupChan; isAlive {
		worker.setStatus(WORKING)
	} else {
		workerLogger.Emit(logger.STOP, "Wakeup channel for worker '%v' has been closed - worker is exiting\n", worker.label)
		worker.setStatus(FINISHED)
	}

	return isAlive
}

func (worker *taskWorker) setStatus(status WorkerStatus) {
	worker.Lock()
	defer worker.Unlock()
	worker.currentStatus = status
}

func (s WorkerStatus) String() string {
	switch s {
	case SLEEPING:
		return "SLEEPING"
	case WORKING:
		return "WORKING"
	case FINISHED:
		return "FINISHED"
	}

	return "UNKNOWN"
}
