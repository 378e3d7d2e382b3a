package anim

import (
	"testing"
	"time"

	"github.com/marben/dist_fractal/loop"
)

type counter struct {
	depth, max int
	draws      []int
}

func (c *counter) Depth() int    { return c.depth }
func (c *counter) MaxDepth() int { return c.max }
func (c *counter) StepTo(d int) {
	c.depth = d
	c.draws = append(c.draws, d)
}

func fixed(d time.Duration) func() time.Duration {
	return func() time.Duration { return d }
}

func TestPlayRunsToMax(t *testing.T) {
	m := loop.NewManual()
	c := &counter{max: 3}
	var states []bool
	d := New(m, c, fixed(100*time.Millisecond))
	d.OnState = func(r bool) { states = append(states, r) }

	d.Play()
	if c.depth != 1 {
		t.Fatalf("first step did not run immediately: depth %d", c.depth)
	}
	m.Advance(100 * time.Millisecond)
	m.Advance(100 * time.Millisecond)
	if c.depth != 3 || !d.Running() {
		t.Fatalf("depth %d running %v after two delays", c.depth, d.Running())
	}
	// the step after the maximum stops the driver
	m.Advance(100 * time.Millisecond)
	if d.Running() {
		t.Fatal("driver still running at max depth")
	}
	if m.Pending() != 0 {
		t.Errorf("%d tasks pending after stop", m.Pending())
	}
	if want := []int{1, 2, 3}; !equal(c.draws, want) {
		t.Errorf("draws = %v, want %v", c.draws, want)
	}
	if len(states) != 2 || !states[0] || states[1] {
		t.Errorf("state transitions = %v", states)
	}
}

func TestPlayAtMaxRestarts(t *testing.T) {
	m := loop.NewManual()
	c := &counter{depth: 2, max: 2}
	d := New(m, c, fixed(time.Second))
	d.Play()
	if want := []int{0, 1}; !equal(c.draws, want) {
		t.Errorf("draws = %v, want %v", c.draws, want)
	}
}

func TestPauseCancelsPendingStep(t *testing.T) {
	m := loop.NewManual()
	c := &counter{max: 10}
	d := New(m, c, fixed(500*time.Millisecond))
	d.Play()
	m.Advance(200 * time.Millisecond)
	d.Pause()

	n := len(c.draws)
	m.Advance(5 * time.Second)
	if len(c.draws) != n {
		t.Errorf("redraws went from %d to %d after pause", n, len(c.draws))
	}
	if m.Pending() != 0 {
		t.Errorf("%d tasks pending after pause", m.Pending())
	}
}

// A step whose task escaped cancellation must not act on a later run.
func TestStaleStepIsNoop(t *testing.T) {
	c := &counter{max: 10}
	var captured []func()
	s := schedFunc(func(_ time.Duration, fn func()) loop.Task {
		captured = append(captured, fn)
		return noCancel{}
	})
	d := New(s, c, fixed(time.Second))
	d.Play()  // draws 1, schedules captured[0]
	d.Pause() // cancel is a no-op here
	d.Play()  // draws 2, schedules captured[1]

	captured[0]()
	if c.depth != 2 {
		t.Errorf("stale step advanced depth to %d", c.depth)
	}
	captured[1]()
	if c.depth != 3 {
		t.Errorf("current step did not advance: depth %d", c.depth)
	}
}

func TestDelayReadEveryStep(t *testing.T) {
	m := loop.NewManual()
	c := &counter{max: 10}
	delay := time.Second
	d := New(m, c, func() time.Duration { return delay })
	d.Play()

	// the step already scheduled keeps its delay, the next one uses the new one
	delay = 100 * time.Millisecond
	m.Advance(time.Second)
	if c.depth != 2 {
		t.Fatalf("depth %d after first delay", c.depth)
	}
	m.Advance(100 * time.Millisecond)
	if c.depth != 3 {
		t.Errorf("new delay not applied: depth %d", c.depth)
	}
}

func TestToggle(t *testing.T) {
	m := loop.NewManual()
	c := &counter{max: 5}
	d := New(m, c, fixed(time.Second))
	d.Toggle()
	if !d.Running() {
		t.Fatal("Toggle did not start")
	}
	d.Toggle()
	if d.Running() {
		t.Fatal("Toggle did not stop")
	}
}

type schedFunc func(time.Duration, func()) loop.Task

func (f schedFunc) Schedule(d time.Duration, fn func()) loop.Task { return f(d, fn) }

type noCancel struct{}

func (noCancel) Cancel() bool { return false }

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
