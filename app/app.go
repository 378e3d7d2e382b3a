// Package app coordinates the fractal selection, the depth control, the
// animation and the redraws that follow from them.
package app

import (
	"fmt"
	"time"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/anim"
	"github.com/marben/dist_fractal/loop"
)

// Speed control bounds.
const (
	MinSpeed     = 100 * time.Millisecond
	MaxSpeed     = 2000 * time.Millisecond
	DefaultSpeed = time.Second
)

// Controls is the state the control surface displays.
type Controls struct {
	Kind     fractal.Kind `json:"kind"`
	Depth    int          `json:"depth"`
	MaxDepth int          `json:"maxDepth"`
	Playing  bool         `json:"playing"`
	SpeedMS  int          `json:"speedMs"`
}

// ControlView is told about every control state change, including the ones
// the animation makes on its own.
type ControlView interface {
	SyncControls(c Controls)
}

type Config struct {
	Surface fractal.Surface
	Panel   fractal.Panel
	// Controls is optional.
	Controls  ControlView
	Scheduler loop.Scheduler

	Width, Height float64

	Kind  fractal.Kind
	Depth int
	// Speed is the step delay; zero means DefaultSpeed.
	Speed time.Duration
}

// App is the orchestrator. Like the animation driver it owns, it must only
// be used from the goroutine running the scheduler's callbacks.
type App struct {
	surface  fractal.Surface
	panel    fractal.Panel
	controls ControlView

	width, height float64

	kind  fractal.Kind
	depth int
	speed time.Duration

	anim    *anim.Driver
	redraws int
}

// New creates the orchestrator. It does not draw; call Redraw for the
// initial frame.
func New(cfg Config) *App {
	kind := cfg.Kind
	if !kind.Valid() {
		kind = fractal.Sierpinski
	}
	a := &App{
		surface:  cfg.Surface,
		panel:    cfg.Panel,
		controls: cfg.Controls,
		width:    cfg.Width,
		height:   cfg.Height,
		kind:     kind,
		depth:    kind.ClampDepth(cfg.Depth),
		speed:    DefaultSpeed,
	}
	if cfg.Speed != 0 {
		a.speed = clampSpeed(cfg.Speed)
	}
	a.anim = anim.New(cfg.Scheduler, (*target)(a), a.Speed)
	a.anim.OnState = func(bool) { a.sync() }
	return a
}

func (a *App) Kind() fractal.Kind   { return a.kind }
func (a *App) Depth() int           { return a.depth }
func (a *App) Speed() time.Duration { return a.speed }
func (a *App) Playing() bool        { return a.anim.Running() }

// Redraws returns how many frames have been drawn.
func (a *App) Redraws() int { return a.redraws }

func (a *App) Controls() Controls {
	return Controls{
		Kind:     a.kind,
		Depth:    a.depth,
		MaxDepth: a.kind.MaxDepth(),
		Playing:  a.anim.Running(),
		SpeedMS:  int(a.speed / time.Millisecond),
	}
}

// SelectKind switches the fractal. The animation stops and the current
// depth is clamped to the new kind's bound.
func (a *App) SelectKind(k fractal.Kind) error {
	if !k.Valid() {
		return fmt.Errorf("select: %w: %d", fractal.ErrUnknownKind, int(k))
	}
	a.anim.Pause()
	a.kind = k
	a.depth = k.ClampDepth(a.depth)
	a.Redraw()
	return nil
}

// SetDepth is a manual depth change: it stops the animation.
func (a *App) SetDepth(depth int) {
	a.anim.Pause()
	a.depth = a.kind.ClampDepth(depth)
	a.Redraw()
}

// SetSpeed sets the delay between animation steps. A running animation
// picks it up at its next step.
func (a *App) SetSpeed(d time.Duration) {
	a.speed = clampSpeed(d)
	a.sync()
}

func (a *App) Play()       { a.anim.Play() }
func (a *App) Pause()      { a.anim.Pause() }
func (a *App) TogglePlay() { a.anim.Toggle() }

// Resize changes the surface size and redraws.
func (a *App) Resize(w, h float64) {
	a.width, a.height = w, h
	a.Redraw()
}

// Redraw draws the current kind and depth, refreshes the panel and the
// controls.
func (a *App) Redraw() {
	fractal.Draw(a.surface, a.kind, a.depth, a.width, a.height)
	a.redraws++
	if a.panel != nil {
		a.panel.ShowInfo(fractal.Describe(a.kind, a.depth))
	}
	a.sync()
}

func (a *App) sync() {
	if a.controls != nil {
		a.controls.SyncControls(a.Controls())
	}
}

func clampSpeed(d time.Duration) time.Duration {
	switch {
	case d < MinSpeed:
		return MinSpeed
	case d > MaxSpeed:
		return MaxSpeed
	}
	return d
}

// target is the App as seen by the animation driver: its depth changes
// redraw without pausing.
type target App

func (t *target) Depth() int    { return t.depth }
func (t *target) MaxDepth() int { return t.kind.MaxDepth() }

func (t *target) StepTo(depth int) {
	a := (*App)(t)
	a.depth = a.kind.ClampDepth(depth)
	a.Redraw()
}
