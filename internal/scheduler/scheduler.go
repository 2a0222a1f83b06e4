package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/CarloSlots_Go/internal/logger"
	"github.com/osse101/CarloSlots_Go/internal/worker"
)

const (
	LogMsgEnqueueFailed = "Scheduled job could not be enqueued"
	LogMsgJobSkipped    = "Scheduled job skipped, previous run still queued"
)

// Scheduler enqueues jobs into a worker pool at fixed intervals. A tick is
// skipped while the previous run of the same job has not started yet, so a
// slow pool never accumulates a backlog of progress reports.
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule runs job every interval until ctx is cancelled or Stop is called
func (s *Scheduler) Schedule(ctx context.Context, interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		pending := make(chan struct{}, 1)
		for {
			select {
			case <-ticker.C:
				select {
				case pending <- struct{}{}:
				default:
					logger.FromContext(ctx).Debug(LogMsgJobSkipped)
					continue
				}
				wrapped := worker.JobFunc(func(ctx context.Context) error {
					<-pending
					return job.Process(ctx)
				})
				if err := s.workerPool.Enqueue(wrapped); err != nil {
					<-pending
					logger.FromContext(ctx).Warn(LogMsgEnqueueFailed, "error", err)
					return
				}
			case <-ctx.Done():
				return
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs and waits for their loops to exit
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
