package loop

import (
	"context"
	"errors"
	"testing"
	"time"
)

// on runs fn on the loop goroutine and waits for it.
func on(t *testing.T, l *Loop, fn func()) {
	t.Helper()
	done := make(chan struct{})
	if err := l.Post(func() { fn(); close(done) }); err != nil {
		t.Fatalf("Post: %v", err)
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("posted callback did not run")
	}
}

func startLoop(t *testing.T) *Loop {
	t.Helper()
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-errc
	})
	return l
}

func TestLoopRunsInOrder(t *testing.T) {
	l := startLoop(t)
	var got []int
	for i := range 5 {
		if err := l.Post(func() { got = append(got, i) }); err != nil {
			t.Fatal(err)
		}
	}
	var n int
	on(t, l, func() { n = len(got) })
	if n != 5 {
		t.Fatalf("ran %d callbacks, want 5", n)
	}
	for i, v := range got {
		if v != i {
			t.Errorf("callback %d ran as %d", i, v)
		}
	}
}

func TestLoopSchedule(t *testing.T) {
	l := startLoop(t)
	fired := make(chan struct{})
	on(t, l, func() {
		l.Schedule(5*time.Millisecond, func() { close(fired) })
	})
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled task did not fire")
	}
}

func TestLoopCancel(t *testing.T) {
	l := startLoop(t)
	fired := make(chan struct{}, 1)
	var task Task
	on(t, l, func() {
		task = l.Schedule(20*time.Millisecond, func() { fired <- struct{}{} })
	})
	var cancelled bool
	on(t, l, func() { cancelled = task.Cancel() })
	if !cancelled {
		t.Fatal("Cancel reported the task as not pending")
	}
	select {
	case <-fired:
		t.Fatal("cancelled task fired")
	case <-time.After(60 * time.Millisecond):
	}
	on(t, l, func() { cancelled = task.Cancel() })
	if cancelled {
		t.Error("second Cancel reported the task as pending")
	}
}

// A firing that is already queued behind a busy callback must still be
// suppressed by a Cancel issued from that callback.
func TestLoopCancelQueuedFiring(t *testing.T) {
	l := startLoop(t)
	ran := false
	on(t, l, func() {
		task := l.Schedule(time.Millisecond, func() { ran = true })
		time.Sleep(20 * time.Millisecond) // the timer posts while we hold the loop
		task.Cancel()
	})
	on(t, l, func() {})
	var got bool
	on(t, l, func() { got = ran })
	if got {
		t.Error("queued firing ran after Cancel")
	}
}

func TestLoopClosed(t *testing.T) {
	l := New()
	l.Close()
	if err := l.Post(func() {}); !errors.Is(err, ErrClosed) {
		t.Errorf("Post after Close = %v, want ErrClosed", err)
	}
	if err := l.Run(context.Background()); err != nil {
		t.Errorf("Run after Close = %v", err)
	}
}

func TestLoopDone(t *testing.T) {
	l := New()
	select {
	case <-l.Done():
		t.Fatal("Done closed on a fresh loop")
	default:
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
	select {
	case <-l.Done():
	default:
		t.Error("Done still open after Run ended on its context")
	}
}
