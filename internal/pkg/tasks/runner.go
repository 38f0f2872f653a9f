// Package tasks provides fire-and-forget execution of background tasks.
//
// A task is a one-shot unit of work scheduled by a command handler and run
// on its own goroutine, detached from the request that scheduled it. The
// scheduling call returns immediately; task failures are logged, never
// propagated back to the caller.
package tasks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Runner executes scheduled tasks on dedicated goroutines.
// Implements ports.TaskScheduler for command handlers that need
// work to continue after their request has been acknowledged.
type Runner struct {
	logger *zap.Logger

	wg   sync.WaitGroup
	mu   sync.Mutex
	done bool
}

// NewRunner creates a task runner.
func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{
		logger: logger.With(zap.String("component", "task_runner")),
	}
}

// Schedule starts the task on its own goroutine and returns immediately.
// Each run gets a generated task id for log correlation. The task receives
// a fresh context: it must not inherit the request context, which is
// cancelled as soon as the scheduling request completes.
//
// After Shutdown has begun, new tasks are rejected and logged.
func (r *Runner) Schedule(name string, task func(ctx context.Context) error) {
	taskID := uuid.NewString()
	logger := r.logger.With(
		zap.String("task", name),
		zap.String("task_id", taskID),
	)

	r.mu.Lock()
	if r.done {
		r.mu.Unlock()
		logger.Warn("Task rejected: runner is shut down")
		return
	}
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Task panicked", zap.Any("panic", rec))
			}
		}()

		logger.Debug("Task started")
		if err := task(context.Background()); err != nil {
			logger.Error("Task failed", zap.Error(err))
			return
		}
		logger.Debug("Task finished")
	}()
}

// Shutdown stops accepting new tasks and waits for running tasks to finish,
// or until the context is cancelled.
func (r *Runner) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	r.done = true
	r.mu.Unlock()

	finished := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
