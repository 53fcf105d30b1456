package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Runner runs a task immediately and then again every interval after the
// previous run finished. Runs never overlap; a failed or panicking run is
// logged and the loop keeps going until ctx is cancelled.
type Runner struct {
	task     Task
	interval time.Duration
	now      func() time.Time
}

func NewRunner(task Task, interval time.Duration) *Runner {
	return &Runner{
		task:     task,
		interval: interval,
		now:      time.Now,
	}
}

// Run blocks until ctx is cancelled and then returns nil.
func (r *Runner) Run(ctx context.Context) error {
	if r.interval <= 0 {
		return fmt.Errorf("invalid interval %s for task %q", r.interval, r.task.Name())
	}

	for {
		r.runOnce(ctx)
		if !r.sleep(ctx) {
			break
		}
	}

	slog.Info("task stopped", "task", r.task.Name())
	return nil
}

// sleep waits one interval and reports false if ctx was cancelled meanwhile.
func (r *Runner) sleep(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}

	now := r.now()
	slog.Info("sleeping for the next time", "task", r.task.Name(),
		"timestamp", now.Unix(), "next_run", now.Add(r.interval).Format(time.RFC3339))

	timer := time.NewTimer(r.interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (r *Runner) runOnce(ctx context.Context) {
	start := r.now()
	defer func() {
		if p := recover(); p != nil {
			slog.Error("task panicked", "task", r.task.Name(), "panic", p)
		}
	}()

	if err := r.task.Run(ctx); err != nil {
		slog.Error("task run failed", "task", r.task.Name(), "error", err)
		return
	}
	slog.Debug("task run finished", "task", r.task.Name(), "cost", r.now().Sub(start))
}
