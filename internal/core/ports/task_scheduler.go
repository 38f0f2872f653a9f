package ports

import "context"

// TaskScheduler enqueues fire-and-forget background work. The task runs on
// an independent goroutine after the scheduling call returns; its outcome is
// never observable by the caller. Failures are logged and swallowed by the
// scheduler implementation.
//
// No ordering is guaranteed between a scheduled task and operations issued
// after scheduling, and a scheduled task cannot be cancelled: once accepted
// it runs to completion.
type TaskScheduler interface {
	Schedule(name string, task func(ctx context.Context) error)
}
