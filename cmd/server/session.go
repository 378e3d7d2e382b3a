package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/marben/irpc"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/app"
	"github.com/marben/dist_fractal/loop"
	"github.com/marben/dist_fractal/render"
	"github.com/marben/dist_fractal/wire"
)

type sessionConfig struct {
	width, height int
	kind          fractal.Kind
	depth         int
	speed         time.Duration
}

// sessions tracks the connected clients.
type sessions struct {
	cfg sessionConfig

	m      sync.Mutex
	active map[*session]struct{}
	served int
}

func newSessions(cfg sessionConfig) *sessions {
	return &sessions{
		cfg:    cfg,
		active: make(map[*session]struct{}),
	}
}

func (reg *sessions) count() int {
	reg.m.Lock()
	defer reg.m.Unlock()
	return len(reg.active)
}

type sessionStats struct {
	Active int `json:"active"`
	Served int `json:"served"`
}

func (reg *sessions) stats() sessionStats {
	reg.m.Lock()
	defer reg.m.Unlock()
	return sessionStats{Active: len(reg.active), Served: reg.served}
}

// serve registers a Session on ep and runs it until the endpoint closes.
// The endpoint is closed on return.
func (reg *sessions) serve(ep *irpc.Endpoint) error {
	defer ep.Close()

	viewer, err := wire.NewViewerIrpcClient(ep)
	if err != nil {
		return err
	}
	s := newSession(ep.Context(), viewer, reg.cfg)
	ep.RegisterService(wire.NewSessionIrpcService(s))

	reg.m.Lock()
	reg.active[s] = struct{}{}
	reg.served++
	log.Printf("sessions active: %d (served: %d)", len(reg.active), reg.served)
	reg.m.Unlock()

	defer func() {
		reg.m.Lock()
		delete(reg.active, s)
		log.Printf("sessions active: %d", len(reg.active))
		reg.m.Unlock()
	}()

	err = s.run()
	if errors.Is(err, irpc.ErrEndpointClosedByCounterpart) || errors.Is(err, irpc.ErrEndpointClosed) {
		return nil
	}
	return err
}

// session owns one orchestrator and implements wire.Session. Calls arrive
// on irpc workers and are applied on the session's loop, where the
// animation runs too.
type session struct {
	ctx    context.Context
	viewer wire.Viewer
	loop   *loop.Loop
	app    *app.App
	rec    render.Recorder

	// loop goroutine only
	width, height int
	seq           uint64
	frame         *wire.Frame
	changed       bool
	showErr       error
}

func newSession(ctx context.Context, v wire.Viewer, cfg sessionConfig) *session {
	s := &session{
		ctx:    ctx,
		viewer: v,
		loop:   loop.New(),
		width:  cfg.width,
		height: cfg.height,
	}
	s.app = app.New(app.Config{
		Surface:   &s.rec,
		Panel:     s,
		Controls:  s,
		Scheduler: pushing{s: s.loop, push: s.push},
		Width:     float64(cfg.width),
		Height:    float64(cfg.height),
		Kind:      cfg.kind,
		Depth:     cfg.depth,
		Speed:     cfg.speed,
	})
	return s
}

// run greets the viewer with the first frame and runs the loop until ctx
// ends or a push fails.
func (s *session) run() error {
	if err := s.loop.Post(func() {
		s.app.Redraw()
		s.push()
	}); err != nil {
		return err
	}
	err := s.loop.Run(s.ctx)
	if s.showErr != nil {
		return s.showErr
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// do applies fn on the loop and answers with what it changed.
func (s *session) do(fn func() error) (wire.Update, error) {
	type result struct {
		u   wire.Update
		err error
	}
	res := make(chan result, 1)
	if err := s.loop.Post(func() {
		err := fn()
		res <- result{u: s.take(), err: err}
	}); err != nil {
		return wire.Update{}, err
	}
	select {
	case r := <-res:
		return r.u, r.err
	case <-s.loop.Done():
		select {
		case r := <-res:
			return r.u, r.err
		default:
			return wire.Update{}, loop.ErrClosed
		}
	}
}

func (s *session) Hello(width, height int) (wire.Update, error) {
	return s.do(func() error {
		if width > 0 && height > 0 {
			s.width, s.height = width, height
		}
		s.app.Resize(float64(s.width), float64(s.height))
		return nil
	})
}

func (s *session) Select(kind fractal.Kind) (wire.Update, error) {
	return s.do(func() error { return s.app.SelectKind(kind) })
}

func (s *session) SetDepth(depth int) (wire.Update, error) {
	return s.do(func() error {
		s.app.SetDepth(depth)
		return nil
	})
}

func (s *session) Play() (wire.Update, error) {
	return s.do(func() error {
		s.app.Play()
		return nil
	})
}

func (s *session) Pause() (wire.Update, error) {
	return s.do(func() error {
		s.app.Pause()
		return nil
	})
}

func (s *session) Toggle() (wire.Update, error) {
	return s.do(func() error {
		s.app.TogglePlay()
		return nil
	})
}

func (s *session) SetSpeed(ms int) (wire.Update, error) {
	return s.do(func() error {
		s.app.SetSpeed(time.Duration(ms) * time.Millisecond)
		return nil
	})
}

func (s *session) Redraw() (wire.Update, error) {
	return s.do(func() error {
		s.app.Redraw()
		return nil
	})
}

// ShowInfo implements fractal.Panel. It is called right after every
// redraw, so the recorder holds exactly that frame.
func (s *session) ShowInfo(info fractal.Info) {
	s.seq++
	s.frame = &wire.Frame{
		Seq:      s.seq,
		Width:    s.width,
		Height:   s.height,
		Commands: s.rec.Take(),
		Info:     info,
	}
}

// SyncControls implements app.ControlView.
func (s *session) SyncControls(app.Controls) {
	s.changed = true
}

// take hands out the pending frame together with the current controls.
func (s *session) take() wire.Update {
	u := wire.Update{Frame: s.frame, Controls: s.app.Controls()}
	s.frame, s.changed = nil, false
	return u
}

// push shows the viewer what a callback changed. A viewer that cannot be
// reached ends the session.
func (s *session) push() {
	if s.frame == nil && !s.changed {
		return
	}
	if err := s.viewer.Show(s.ctx, s.take()); err != nil {
		s.showErr = fmt.Errorf("show: %w", err)
		s.loop.Close()
	}
}

// pushing pushes whatever a scheduled callback produced once it returns.
type pushing struct {
	s    loop.Scheduler
	push func()
}

func (p pushing) Schedule(d time.Duration, fn func()) loop.Task {
	return p.s.Schedule(d, func() {
		fn()
		p.push()
	})
}
