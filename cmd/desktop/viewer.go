package main

import (
	"time"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/app"
	"github.com/marben/dist_fractal/loop"
	"github.com/marben/dist_fractal/render"
)

type action int

const (
	selectSierpinski action = iota
	selectKoch
	selectPythagoras
	selectDragon
	deeper
	shallower
	togglePlay
	faster
	slower
	toggleInfo
)

const speedStep = 100 * time.Millisecond

// viewer is the desktop side of the orchestrator: a raster surface, the
// panel and control state it shows, and a virtual clock the game advances
// every tick.
type viewer struct {
	app    *app.App
	clock  *loop.Manual
	raster *render.Raster

	info     fractal.Info
	controls app.Controls
	showInfo bool
	dirty    bool
}

func newViewer(cfg config) *viewer {
	v := &viewer{
		clock:    loop.NewManual(),
		raster:   render.NewRaster(cfg.width, cfg.height),
		showInfo: true,
	}
	v.app = app.New(app.Config{
		Surface:   v.raster,
		Panel:     v,
		Controls:  v,
		Scheduler: v.clock,
		Width:     float64(cfg.width),
		Height:    float64(cfg.height),
		Kind:      cfg.kind,
		Depth:     cfg.depth,
		Speed:     cfg.speed,
	})
	return v
}

// ShowInfo implements fractal.Panel.
func (v *viewer) ShowInfo(info fractal.Info) {
	v.info = info
	v.dirty = true
}

// SyncControls implements app.ControlView.
func (v *viewer) SyncControls(c app.Controls) {
	v.controls = c
}

func (v *viewer) tick(d time.Duration) {
	v.clock.Advance(d)
}

func (v *viewer) apply(a action) {
	switch a {
	case selectSierpinski, selectKoch, selectPythagoras, selectDragon:
		// the actions are in kind order
		_ = v.app.SelectKind(fractal.Kinds[a-selectSierpinski])
	case deeper:
		v.app.SetDepth(v.app.Depth() + 1)
	case shallower:
		v.app.SetDepth(v.app.Depth() - 1)
	case togglePlay:
		v.app.TogglePlay()
	case faster:
		v.app.SetSpeed(v.app.Speed() - speedStep)
	case slower:
		v.app.SetSpeed(v.app.Speed() + speedStep)
	case toggleInfo:
		v.showInfo = !v.showInfo
		v.dirty = true
	}
}

// panelLines is the text drawn over the fractal.
func (v *viewer) panelLines() []string {
	state := "paused"
	if v.controls.Playing {
		state = "playing"
	}
	lines := []string{
		"1-4 fractal  Up/Down depth  Space play  +/- speed  I info",
		state + ", step " + (time.Duration(v.controls.SpeedMS) * time.Millisecond).String(),
	}
	if v.showInfo {
		lines = append(lines, render.InfoLines(v.info)...)
	}
	return lines
}
