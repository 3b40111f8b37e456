// Package workers runs independent discovery tasks on a small goroutine pool.
// Each task owns its accumulator, so no locking is needed until results are
// merged by the caller.
package workers

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"mustgather-discover/v1/pkg/logger"
)

// Task is a unit of work to be processed by the pool.
type Task interface {
	// ID returns a unique identifier for the task.
	ID() string
	// Execute performs the task.
	Execute(ctx context.Context) error
}

// Result captures the outcome of one task execution.
type Result struct {
	TaskID   string
	Err      error
	Duration time.Duration
}

// Pool executes tasks on a fixed number of workers. A collector goroutine
// drains the result channel for the pool's whole lifetime, so workers never
// block on it regardless of how many tasks complete.
type Pool struct {
	workers       int
	taskQueue     chan Task
	resultQueue   chan Result
	results       []Result
	collected     chan struct{}
	wg            sync.WaitGroup
	tasksTotal    atomic.Int64
	tasksComplete atomic.Int64
	tasksFailed   atomic.Int64
	started       atomic.Bool
	log           *logger.NamedLogger
}

// NewPool creates a pool with the given number of workers; queue depth is
// sized so a capacity's worth of submissions never blocks.
func NewPool(workers, capacity int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if capacity < workers {
		capacity = workers
	}
	return &Pool{
		workers:     workers,
		taskQueue:   make(chan Task, capacity),
		resultQueue: make(chan Result, capacity),
		collected:   make(chan struct{}),
		log:         logger.WithName("worker-pool"),
	}
}

// Start launches the workers and the result collector. It is an error to
// start a pool twice.
func (p *Pool) Start(ctx context.Context) error {
	if !p.started.CompareAndSwap(false, true) {
		return fmt.Errorf("pool is already running")
	}

	go p.collect()
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	p.log.V(2).InfoS("Pool started", "workers", p.workers)
	return nil
}

// collect owns p.results until the result queue closes; Wait reads the slice
// only after the collector signals completion.
func (p *Pool) collect() {
	defer close(p.collected)
	for r := range p.resultQueue {
		p.results = append(p.results, r)
	}
}

// Submit queues a task. It fails once the queue is full rather than blocking
// the caller.
func (p *Pool) Submit(task Task) error {
	select {
	case p.taskQueue <- task:
		p.tasksTotal.Add(1)
		p.log.V(4).InfoS("Task submitted", "taskID", task.ID())
		return nil
	default:
		return fmt.Errorf("task queue is full, failed to submit task %s", task.ID())
	}
}

// Wait closes the queue, waits for the workers to drain it, and returns all
// results. The pool cannot be reused afterwards. Waiting on a pool that was
// never started returns nil.
func (p *Pool) Wait() []Result {
	close(p.taskQueue)
	if !p.started.Load() {
		return nil
	}

	p.wg.Wait()
	close(p.resultQueue)
	<-p.collected

	p.log.V(2).InfoS("Pool drained",
		"total", p.tasksTotal.Load(),
		"completed", p.tasksComplete.Load(),
		"failed", p.tasksFailed.Load())
	return p.results
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		select {
		case task, ok := <-p.taskQueue:
			if !ok {
				p.log.V(4).InfoS("Worker done", "workerID", id)
				return
			}
			p.run(ctx, task)
		case <-ctx.Done():
			// Drain remaining tasks as cancelled so Wait observes every
			// submission.
			for task := range p.taskQueue {
				p.tasksFailed.Add(1)
				p.resultQueue <- Result{TaskID: task.ID(), Err: ctx.Err()}
			}
			return
		}
	}
}

func (p *Pool) run(ctx context.Context, task Task) {
	start := time.Now()
	err := task.Execute(ctx)
	duration := time.Since(start)

	if err != nil {
		p.tasksFailed.Add(1)
		p.log.V(2).InfoS("Task failed", "taskID", task.ID(), "error", err, "duration", duration)
	} else {
		p.tasksComplete.Add(1)
		p.log.V(3).InfoS("Task completed", "taskID", task.ID(), "duration", duration)
	}

	p.resultQueue <- Result{TaskID: task.ID(), Err: err, Duration: duration}
}
