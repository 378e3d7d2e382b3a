package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"strings"
	"time"

	"github.com/marben/irpc"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/app"
)

// main is the entry point for the fractal server.
// Every connected client gets its own orchestrator; the server draws into a
// recorder and pushes the commands, clients rasterize them.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

type config struct {
	httpPort  int
	tcpPort   int
	staticDir string
	origins   []string

	session sessionConfig
}

func parseFlags(args []string) (config, error) {
	var (
		cfg     config
		kind    string
		origins string
		speed   time.Duration
	)
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.IntVar(&cfg.httpPort, "http", 8080, "port serving ./static, /sessions and the /ws endpoint")
	fs.IntVar(&cfg.tcpPort, "tcp", 8081, "port for raw tcp clients")
	fs.StringVar(&cfg.staticDir, "static", "./static", "directory with index.html and main.wasm")
	fs.StringVar(&origins, "origin", "", "comma separated origin patterns allowed to open /ws; empty allows only the served host")
	fs.IntVar(&cfg.session.width, "width", 800, "surface width until the client says hello")
	fs.IntVar(&cfg.session.height, "height", 600, "surface height until the client says hello")
	fs.StringVar(&kind, "kind", fractal.Sierpinski.String(), "initial fractal")
	fs.IntVar(&cfg.session.depth, "depth", 0, "initial depth")
	fs.DurationVar(&speed, "speed", app.DefaultSpeed, "delay between animation steps")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	k, err := fractal.ParseKind(kind)
	if err != nil {
		return config{}, fmt.Errorf("-kind: %w", err)
	}
	cfg.session.kind = k
	cfg.session.speed = speed
	for o := range strings.SplitSeq(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.origins = append(cfg.origins, o)
		}
	}
	return cfg, nil
}

// newServer returns an irpc server giving every connection, tcp or
// websocket, its own session.
func newServer(reg *sessions) *irpc.Server {
	return irpc.NewServer(irpc.WithOnConnect(func(ep *irpc.Endpoint) {
		log.Printf("got connection from: %s", ep.RemoteAddr())
		if err := reg.serve(ep); err != nil {
			log.Printf("err: session %s: %v", ep.RemoteAddr(), err)
		}
	}))
}

func run() error {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		return err
	}

	reg := newSessions(cfg.session)
	irpcServer := newServer(reg)

	// TCP
	log.Printf("tcp listening on port: %d", cfg.tcpPort)
	tcpListener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.tcpPort))
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	// WEBSOCKET
	gw := newGateway(context.Background(), cfg.httpPort, cfg.origins)
	httpServer := gw.httpServer(cfg.staticDir, reg)

	// httpServer provides index.html, main.wasm along with websocket endpoint
	go func() {
		if err := httpServer.ListenAndServe(); err != nil {
			log.Fatalf("httpServer: %v", err)
		}
	}()

	errc := make(chan error, 2)
	go func() { errc <- serve(irpcServer, tcpListener, "tcp") }()
	go func() { errc <- serve(irpcServer, gw, "ws") }()

	log.Printf("fractal server waiting for tcp and websocket connections")
	return <-errc
}

func serve(s *irpc.Server, l net.Listener, name string) error {
	if err := s.Serve(l); err != nil && !errors.Is(err, irpc.ErrServerClosed) {
		return fmt.Errorf("irpcServer.Serve %s: %w", name, err)
	}
	return nil
}
