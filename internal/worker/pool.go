package worker

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/osse101/CarloSlots_Go/internal/logger"
)

// ErrPoolStopped is returned by Enqueue after Stop
var ErrPoolStopped = errors.New("worker pool stopped")

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to the Job interface
type JobFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool represents a worker pool. Jobs run with the context given to Start;
// once it is cancelled queued jobs are drained without running.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once

	queueMu sync.RWMutex
	closed  bool

	errMu  sync.Mutex
	errs   []error
	failed int
}

// NewPool creates a new worker pool. workers <= 0 uses one worker per CPU.
func NewPool(workers int, queueSize int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Workers returns the number of worker goroutines
func (p *Pool) Workers() int {
	return p.workers
}

// Start starts the workers
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
	logger.FromContext(ctx).Debug(LogMsgPoolStarted, "workers", p.workers)
}

// worker is the worker loop
func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			p.run(ctx, job)
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) run(ctx context.Context, job Job) {
	if err := ctx.Err(); err != nil {
		logger.FromContext(ctx).Debug(LogMsgWorkerJobSkipped)
		p.record(err)
		return
	}
	if err := job.Process(ctx); err != nil {
		// Log error but don't crash worker
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
		p.record(err)
	}
}

func (p *Pool) record(err error) {
	p.errMu.Lock()
	defer p.errMu.Unlock()
	p.failed++
	p.errs = append(p.errs, err)
}

// Enqueue adds a job to the queue, blocking while it is full
func (p *Pool) Enqueue(job Job) error {
	p.queueMu.RLock()
	defer p.queueMu.RUnlock()
	if p.closed {
		return ErrPoolStopped
	}
	select {
	case p.jobQueue <- job:
		return nil
	case <-p.quit:
		return ErrPoolStopped
	}
}

// Wait closes the queue and blocks until every queued job has finished. It
// returns the joined job errors. The pool cannot be reused afterwards.
func (p *Pool) Wait() error {
	p.queueMu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobQueue)
	}
	p.queueMu.Unlock()
	p.wg.Wait()

	p.errMu.Lock()
	defer p.errMu.Unlock()
	return errors.Join(p.errs...)
}

// Failed returns how many jobs returned an error so far
func (p *Pool) Failed() int {
	p.errMu.Lock()
	defer p.errMu.Unlock()
	return p.failed
}

// Stop stops the workers without draining the queue and waits for them to finish
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
	p.wg.Wait()
	logger.FromContext(context.Background()).Debug(LogMsgPoolStopped)
}
