//go:build js && wasm

package main

import (
	"fmt"
	"strconv"
	"syscall/js"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/app"
	"github.com/marben/dist_fractal/wire"
)

func byID(id string) js.Value {
	return js.Global().Get("document").Call("getElementById", id)
}

func logScreen(msg string) {
	log := byID("log")
	log.Set("textContent", log.Get("textContent").String()+msg+"\n")
}

// controls is the DOM control surface: kind selector, depth slider, play
// button and speed slider.
type controls struct {
	kind       js.Value
	depth      js.Value
	depthValue js.Value
	play       js.Value
	speed      js.Value
	speedValue js.Value
}

func newControls() *controls {
	c := &controls{
		kind:       byID("kind"),
		depth:      byID("depth"),
		depthValue: byID("depthValue"),
		play:       byID("play"),
		speed:      byID("speed"),
		speedValue: byID("speedValue"),
	}

	doc := js.Global().Get("document")
	for _, k := range fractal.Kinds {
		opt := doc.Call("createElement", "option")
		opt.Set("value", k.String())
		opt.Set("textContent", fractal.Describe(k, 0).Title)
		c.kind.Call("appendChild", opt)
	}
	c.speed.Set("min", int(app.MinSpeed.Milliseconds()))
	c.speed.Set("max", int(app.MaxSpeed.Milliseconds()))
	c.speed.Set("step", 100)
	return c
}

// bind wires the DOM events to session calls. The callbacks only queue
// the calls; send must not block.
func (c *controls) bind(send func(call)) {
	on := func(el js.Value, event string, fn func()) {
		el.Call("addEventListener", event, js.FuncOf(func(js.Value, []js.Value) any {
			fn()
			return nil
		}))
	}
	on(c.kind, "change", func() {
		name := c.kind.Get("value").String()
		send(call{"select", func(s wire.Session) (wire.Update, error) {
			k, err := fractal.ParseKind(name)
			if err != nil {
				// not one of ours: resync the selector
				return s.Redraw()
			}
			return s.Select(k)
		}})
	})
	on(c.depth, "input", func() {
		depth := atoi(c.depth.Get("value").String())
		send(call{"depth", func(s wire.Session) (wire.Update, error) { return s.SetDepth(depth) }})
	})
	on(c.play, "click", func() {
		send(call{"toggle", wire.Session.Toggle})
	})
	on(c.speed, "input", func() {
		ms := atoi(c.speed.Get("value").String())
		send(call{"speed", func(s wire.Session) (wire.Update, error) { return s.SetSpeed(ms) }})
	})
}

// SyncControls implements app.ControlView.
func (c *controls) SyncControls(s app.Controls) {
	c.kind.Set("value", s.Kind.String())
	c.depth.Set("max", s.MaxDepth)
	c.depth.Set("value", s.Depth)
	c.depthValue.Set("textContent", fmt.Sprintf("%d / %d", s.Depth, s.MaxDepth))
	if s.Playing {
		c.play.Set("textContent", "Pause")
	} else {
		c.play.Set("textContent", "Play")
	}
	c.speed.Set("value", s.SpeedMS)
	c.speedValue.Set("textContent", fmt.Sprintf("%d ms", s.SpeedMS))
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// panel renders the info record into the #info element.
type panel struct {
	root js.Value
}

var _ fractal.Panel = panel{}

// ShowInfo implements fractal.Panel.
func (p panel) ShowInfo(info fractal.Info) {
	doc := js.Global().Get("document")
	el := func(tag, text string) js.Value {
		e := doc.Call("createElement", tag)
		e.Set("textContent", text)
		return e
	}

	p.root.Set("textContent", "")
	p.root.Call("appendChild", el("h2", info.Title))
	p.root.Call("appendChild", el("p", info.Rule))
	p.root.Call("appendChild", el("p", fmt.Sprintf("Depth %d of %d", info.Depth, info.MaxDepth)))

	m := info.Metrics
	for _, q := range []struct {
		name string
		q    fractal.Quantity
	}{
		{"Perimeter", m.Perimeter},
		{"Area", m.Area},
		{"Dimension", m.Dimension},
	} {
		p.root.Call("appendChild", el("h3", q.name))
		p.root.Call("appendChild", el("code", q.q.Formula))
		if q.q.Limit != "" {
			p.root.Call("appendChild", el("p", q.q.Limit))
		}
	}
	p.root.Call("appendChild", el("p", fmt.Sprintf("Primitives drawn: %d", m.Primitives)))

	p.root.Call("appendChild", el("h3", "Applications"))
	list := el("ul", "")
	for _, a := range info.Applications {
		list.Call("appendChild", el("li", a.Field+": "+a.Text))
	}
	p.root.Call("appendChild", list)
}
