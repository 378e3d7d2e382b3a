// Package wire is the remote API between the fractal server and its
// clients.
//
// The server serves a Session on every connection. Each client serves a
// Viewer in return: the server greets it with the first frame and later
// pushes the frames the animation produces. Clients must not call the
// Session before the greeting arrives.
package wire

import (
	"context"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/app"
	"github.com/marben/dist_fractal/render"
)

//go:generate go run github.com/marben/irpc/cmd/irpc api.go

// Session drives one orchestrator. Every call answers with the control
// state, and with the frame when the call redrew.
type Session interface {
	// Hello sets the surface size the frames are laid out on.
	Hello(width, height int) (Update, error)
	Select(kind fractal.Kind) (Update, error)
	SetDepth(depth int) (Update, error)
	Play() (Update, error)
	Pause() (Update, error)
	Toggle() (Update, error)
	// SetSpeed sets the delay between animation steps in milliseconds.
	SetSpeed(ms int) (Update, error)
	Redraw() (Update, error)
}

// Viewer is served by clients.
type Viewer interface {
	Show(ctx context.Context, u Update) error
}

// Update is what changed after a call or an animation step.
type Update struct {
	// Frame is nil when nothing was redrawn.
	Frame    *Frame
	Controls app.Controls
}

// Frame is one complete redraw.
type Frame struct {
	Seq           uint64
	Width, Height int
	Commands      []render.Command
	Info          fractal.Info
}

// Draw replays the frame onto s.
func (f *Frame) Draw(s fractal.Surface) {
	render.Replay(s, f.Commands)
}

// ViewerFunc adapts a function to Viewer.
type ViewerFunc func(ctx context.Context, u Update) error

func (f ViewerFunc) Show(ctx context.Context, u Update) error { return f(ctx, u) }

// Inbox is a Viewer that queues what it is shown for a reader.
type Inbox struct {
	ch chan Update
}

func NewInbox(size int) *Inbox {
	return &Inbox{ch: make(chan Update, size)}
}

// Show blocks while the queue is full.
func (in *Inbox) Show(ctx context.Context, u Update) error {
	select {
	case in.ch <- u:
		return nil
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}

// Next waits for the next update.
func (in *Inbox) Next(ctx context.Context) (Update, error) {
	select {
	case u := <-in.ch:
		return u, nil
	case <-ctx.Done():
		return Update{}, context.Cause(ctx)
	}
}
