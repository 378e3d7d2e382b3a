//go:build js && wasm

// webclient is the browser client of the fractal server. It replays the
// draw commands of every frame on a canvas and shows the info panel and
// the controls next to it.
package main

import (
	"context"
	"log"
	"sync"
	"syscall/js"

	"github.com/marben/irpc"

	"github.com/marben/dist_fractal/wire"
)

func main() {
	log.Println("main is running.")
	logScreen("main is running")

	// Figure out the server address to open WebSocket
	loc := js.Global().Get("window").Get("location")
	host := loc.Get("host").String()
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	wsURL := proto + "://" + host + "/ws"

	ws := js.Global().Get("WebSocket").New(wsURL)
	v := newView(newCanvasSurface("canvas"), newControls(), panel{root: byID("info")})
	ep := irpc.NewEndpoint(NewWSReadWriteCloser(ws), irpc.WithEndpointServices(wire.NewViewerIrpcService(v)))

	session, err := wire.NewSessionIrpcClient(ep)
	if err != nil {
		log.Fatalf("failed to create session client: %v", err)
	}

	// js callbacks must not block, so session calls go through a worker
	calls := make(chan call, 16)
	go callLoop(ep.Context(), session, v, calls)
	v.ctrl.bind(func(c call) {
		select {
		case calls <- c:
		default:
			logScreen("dropped " + c.name + ": connection busy")
		}
	})

	w, h := v.canvas.size()
	calls <- call{"hello", func(s wire.Session) (wire.Update, error) { return s.Hello(w, h) }}

	<-ep.Context().Done()
	logScreen("disconnected: " + context.Cause(ep.Context()).Error())

	// Prevent Go program from exiting
	select {}
}

// call is one session call queued by the controls.
type call struct {
	name string
	do   func(wire.Session) (wire.Update, error)
}

// callLoop runs the queued calls once the server has greeted us. Failed
// calls still carry the server's control state, which puts the controls
// back in sync.
func callLoop(ctx context.Context, session wire.Session, v *view, calls <-chan call) {
	select {
	case <-v.greeted:
	case <-ctx.Done():
		return
	}
	for c := range calls {
		u, err := c.do(session)
		if err != nil {
			logScreen(c.name + ": " + err.Error())
			if ctx.Err() != nil {
				return
			}
		}
		v.apply(u)
	}
}

// view implements wire.Viewer on the page. Replies and pushes can arrive
// out of order, so frames older than the one on screen are dropped.
type view struct {
	canvas *canvasSurface
	ctrl   *controls
	info   panel

	mu  sync.Mutex
	seq uint64

	greetOnce sync.Once
	greeted   chan struct{}
}

func newView(canvas *canvasSurface, ctrl *controls, info panel) *view {
	return &view{
		canvas:  canvas,
		ctrl:    ctrl,
		info:    info,
		greeted: make(chan struct{}),
	}
}

func (v *view) Show(_ context.Context, u wire.Update) error {
	v.apply(u)
	v.greetOnce.Do(func() { close(v.greeted) })
	return nil
}

func (v *view) apply(u wire.Update) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if f := u.Frame; f != nil && f.Seq > v.seq {
		v.seq = f.Seq
		v.canvas.resize(f.Width, f.Height)
		f.Draw(v.canvas)
		v.info.ShowInfo(f.Info)
	}
	v.ctrl.SyncControls(u.Controls)
}
