// Package loop runs callbacks one at a time on a single goroutine.
//
// Everything posted to a Loop, including the callbacks of scheduled tasks,
// executes sequentially on the goroutine that calls Run, so state owned by
// that goroutine needs no locking.
package loop

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Task is a pending scheduled callback.
type Task interface {
	// Cancel prevents the callback from running. It reports whether the
	// task was still pending.
	Cancel() bool
}

// Scheduler runs fn once after d has elapsed.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Task
}

var ErrClosed = errors.New("loop closed")

// Loop is a real-time event loop.
type Loop struct {
	events chan func()

	closeOnce sync.Once
	done      chan struct{}
}

func New() *Loop {
	return &Loop{
		events: make(chan func(), 64),
		done:   make(chan struct{}),
	}
}

// Post queues fn to run on the loop goroutine. It can be called from any
// goroutine and fails once the loop is closed.
func (l *Loop) Post(fn func()) error {
	select {
	case <-l.done:
		return ErrClosed
	default:
	}
	select {
	case l.events <- fn:
		return nil
	case <-l.done:
		return ErrClosed
	}
}

// Run executes posted callbacks until ctx is done or Close is called.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case fn := <-l.events:
			fn()
		case <-ctx.Done():
			l.Close()
			return ctx.Err()
		case <-l.done:
			return nil
		}
	}
}

// Close stops the loop. Pending callbacks are dropped.
func (l *Loop) Close() {
	l.closeOnce.Do(func() { close(l.done) })
}

// Done is closed once the loop has been closed.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Schedule implements Scheduler. The timer fires on its own goroutine and
// posts fn back to the loop; Cancel must be called from the loop goroutine,
// where it also suppresses a firing that is already queued.
func (l *Loop) Schedule(d time.Duration, fn func()) Task {
	t := &timerTask{}
	t.timer = time.AfterFunc(d, func() {
		_ = l.Post(func() {
			if t.cancelled || t.fired {
				return
			}
			t.fired = true
			fn()
		})
	})
	return t
}

type timerTask struct {
	timer *time.Timer

	// loop goroutine only
	cancelled bool
	fired     bool
}

func (t *timerTask) Cancel() bool {
	t.timer.Stop()
	if t.cancelled || t.fired {
		return false
	}
	t.cancelled = true
	return true
}
