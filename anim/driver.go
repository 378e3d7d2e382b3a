// Package anim advances a fractal's depth step by step on a scheduler.
package anim

import (
	"time"

	"github.com/marben/dist_fractal/loop"
)

// Target is what the driver animates.
type Target interface {
	Depth() int
	MaxDepth() int
	// StepTo sets the depth and redraws without stopping the animation.
	StepTo(depth int)
}

// Driver is the animation state machine. It has two states, idle and
// running, and owns at most one pending step. All methods must be called
// from the goroutine that runs the scheduler's callbacks.
type Driver struct {
	sched  loop.Scheduler
	target Target
	delay  func() time.Duration

	running bool
	pending loop.Task
	// gen identifies the current run. A step scheduled by an earlier run
	// does nothing even if its task was not cancelled in time.
	gen uint64

	// OnState, when set, is called after every idle/running transition.
	OnState func(running bool)
}

// New returns an idle driver. delay is read before every step, so speed
// changes apply to the next step.
func New(sched loop.Scheduler, target Target, delay func() time.Duration) *Driver {
	return &Driver{sched: sched, target: target, delay: delay}
}

func (d *Driver) Running() bool { return d.running }

// Play starts the animation. When the target is already at its maximum
// depth it restarts from zero. The first step runs immediately.
func (d *Driver) Play() {
	if d.running {
		return
	}
	d.running = true
	d.gen++
	d.notify()

	if d.target.Depth() >= d.target.MaxDepth() {
		d.target.StepTo(0)
	}
	d.step(d.gen)
}

// Pause stops the animation and cancels the pending step.
func (d *Driver) Pause() {
	if !d.running {
		return
	}
	d.running = false
	d.gen++
	if d.pending != nil {
		d.pending.Cancel()
		d.pending = nil
	}
	d.notify()
}

// Toggle switches between Play and Pause.
func (d *Driver) Toggle() {
	if d.running {
		d.Pause()
	} else {
		d.Play()
	}
}

func (d *Driver) step(gen uint64) {
	if !d.running || gen != d.gen {
		return
	}
	d.pending = nil
	cur := d.target.Depth()
	if cur >= d.target.MaxDepth() {
		d.Pause()
		return
	}
	d.target.StepTo(cur + 1)
	if !d.running || gen != d.gen {
		// the redraw stopped us
		return
	}
	d.pending = d.sched.Schedule(d.delay(), func() { d.step(gen) })
}

func (d *Driver) notify() {
	if d.OnState != nil {
		d.OnState(d.running)
	}
}
