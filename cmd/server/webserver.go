package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

// gateway is the http side of the server. It serves the web client and
// session stats, and it is the net.Listener handing websocket upgrades on
// /ws to the irpc server as binary connections.
type gateway struct {
	port    int
	origins []string

	conns  chan net.Conn
	ctx    context.Context
	cancel context.CancelFunc
}

// newGateway accepts websockets from the served host only, unless origins
// lists further patterns.
func newGateway(ctx context.Context, port int, origins []string) *gateway {
	ctx, cancel := context.WithCancel(ctx)
	return &gateway{
		port:    port,
		origins: origins,
		conns:   make(chan net.Conn),
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (g *gateway) httpServer(staticDir string, reg *sessions) *http.Server {
	log.Printf("listening on http://localhost:%d", g.port)
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", g.port),
		Handler:           g.handler(staticDir, reg),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func (g *gateway) handler(staticDir string, reg *sessions) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", g.upgrade)
	mux.HandleFunc("GET /sessions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reg.stats()); err != nil {
			log.Printf("err: /sessions: %v", err)
		}
	})
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	return mux
}

// upgrade hands the websocket to Accept. It blocks until the gateway took
// it or closed.
func (g *gateway) upgrade(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: g.origins,
	})
	if err != nil {
		log.Printf("err: websocket accept from %s: %v", r.RemoteAddr, err)
		return
	}
	// frames can be large at high depths
	c.SetReadLimit(-1)

	select {
	case g.conns <- websocket.NetConn(g.ctx, c, websocket.MessageBinary):
	case <-g.ctx.Done():
		c.Close(websocket.StatusGoingAway, "server closing")
	}
}

func (g *gateway) Accept() (net.Conn, error) {
	select {
	case c := <-g.conns:
		return c, nil
	case <-g.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (g *gateway) Addr() net.Addr {
	return wsAddr(fmt.Sprintf(":%d/ws", g.port))
}

func (g *gateway) Close() error {
	g.cancel()
	return nil
}

// wsAddr implements net.Addr
type wsAddr string

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return string(a)
}
