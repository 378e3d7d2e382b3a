// cliclient connects to the fractal server, asks for a fractal and saves
// the frames it receives as PNG files. Rasterization happens here; the
// server only sends draw commands.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"net"
	"os"
	"strings"
	"time"

	"github.com/marben/irpc"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/render"
	"github.com/marben/dist_fractal/wire"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

type config struct {
	addr          string
	kind          string
	depth         int
	width, height int
	backend       string
	out           string
	animate       bool
	speed         time.Duration
	info          bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("cliclient", flag.ContinueOnError)
	fs.StringVar(&cfg.addr, "addr", ":8081", "server tcp address")
	fs.StringVar(&cfg.kind, "kind", fractal.Sierpinski.String(), "fractal: "+kindList())
	fs.IntVar(&cfg.depth, "depth", 4, "recursion depth, clamped to the fractal's bound")
	fs.IntVar(&cfg.width, "width", 800, "image width")
	fs.IntVar(&cfg.height, "height", 600, "image height")
	fs.StringVar(&cfg.backend, "backend", "raster", "rasterizer: raster or gg")
	fs.StringVar(&cfg.out, "out", "fractal.png", "output file; with -animate a step number is inserted before the extension")
	fs.BoolVar(&cfg.animate, "animate", false, "play the animation from depth 0 and save every step")
	fs.DurationVar(&cfg.speed, "speed", 100*time.Millisecond, "delay between animation steps")
	fs.BoolVar(&cfg.info, "info", true, "print the info record onto the image")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if _, err := fractal.ParseKind(cfg.kind); err != nil {
		return config{}, fmt.Errorf("-kind: %w", err)
	}
	if cfg.backend != "raster" && cfg.backend != "gg" {
		return config{}, fmt.Errorf("-backend: unknown rasterizer %q", cfg.backend)
	}
	return cfg, nil
}

func kindList() string {
	names := make([]string, len(fractal.Kinds))
	for i, k := range fractal.Kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

func run() error {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		return err
	}
	kind, err := fractal.ParseKind(cfg.kind)
	if err != nil {
		return err
	}

	log.Printf("connecting to %s", cfg.addr)
	tcpConn, err := net.Dial("tcp", cfg.addr)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	inbox := wire.NewInbox(64)
	ep := irpc.NewEndpoint(tcpConn, irpc.WithEndpointServices(wire.NewViewerIrpcService(inbox)))
	defer ep.Close()

	session, err := wire.NewSessionIrpcClient(ep)
	if err != nil {
		return fmt.Errorf("failed to create session client: %w", err)
	}

	// the server greets with a frame of its defaults before it takes calls
	ctx, cancel := context.WithTimeout(ep.Context(), greetTimeout)
	_, err = inbox.Next(ctx)
	cancel()
	if err != nil {
		return fmt.Errorf("initial frame: %w", err)
	}

	if _, err := session.Hello(cfg.width, cfg.height); err != nil {
		return fmt.Errorf("hello: %w", err)
	}
	if _, err := session.Select(kind); err != nil {
		return fmt.Errorf("select: %w", err)
	}

	if cfg.animate {
		return animate(ep.Context(), session, inbox, cfg)
	}

	u, err := session.SetDepth(cfg.depth)
	if err != nil {
		return fmt.Errorf("depth: %w", err)
	}
	return save(u.Frame, cfg, cfg.out)
}

const greetTimeout = 10 * time.Second

// animate restarts from depth 0 and saves every frame until the animation
// stops at the depth bound. Frames after the first step are pushed to the
// inbox by the server.
func animate(ctx context.Context, session wire.Session, inbox *wire.Inbox, cfg config) error {
	if _, err := session.SetSpeed(int(cfg.speed / time.Millisecond)); err != nil {
		return fmt.Errorf("speed: %w", err)
	}
	u, err := session.SetDepth(0)
	if err != nil {
		return fmt.Errorf("depth: %w", err)
	}
	if err := save(u.Frame, cfg, stepName(cfg.out, 0)); err != nil {
		return err
	}

	u, err = session.Play()
	for {
		if err != nil {
			return fmt.Errorf("animation: %w", err)
		}
		if u.Frame != nil {
			if err := save(u.Frame, cfg, stepName(cfg.out, u.Frame.Info.Depth)); err != nil {
				return err
			}
		}
		if !u.Controls.Playing {
			log.Printf("animation finished at depth %d", u.Controls.Depth)
			return nil
		}
		u, err = inbox.Next(ctx)
	}
}

func stepName(out string, depth int) string {
	dot := strings.LastIndex(out, ".")
	if dot < 0 {
		return fmt.Sprintf("%s-%02d", out, depth)
	}
	return fmt.Sprintf("%s-%02d%s", out[:dot], depth, out[dot:])
}

func save(f *wire.Frame, cfg config, filename string) error {
	if f == nil {
		return fmt.Errorf("%s: server sent no frame", filename)
	}
	img, err := rasterize(f, cfg.backend)
	if err != nil {
		return err
	}
	if cfg.info {
		render.Annotate(img, f.Info, color.White)
	}

	out, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	log.Printf("%s depth %d (%d primitives) saved to %q",
		f.Info.Title, f.Info.Depth, f.Info.Metrics.Primitives, filename)
	return nil
}

func rasterize(f *wire.Frame, backend string) (*image.RGBA, error) {
	if backend == "raster" {
		r := render.NewRaster(f.Width, f.Height)
		f.Draw(r)
		return r.Image(), nil
	}

	g := render.NewGG(f.Width, f.Height)
	defer g.Close()
	f.Draw(g)
	if err := g.Err(); err != nil {
		return nil, fmt.Errorf("gg: %w", err)
	}
	src := g.Image()
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	return img, nil
}
