// desktop runs the fractals in a local window, without a server.
//
// Keys: 1-4 select the fractal, Up/Down change the depth, Space plays or
// pauses, +/- change the animation speed, I toggles the info panel.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/app"
)

const tps = 60

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

type config struct {
	width, height int
	kind          fractal.Kind
	depth         int
	speed         time.Duration
}

func parseFlags(args []string) (config, error) {
	var (
		cfg  config
		kind string
	)
	fs := flag.NewFlagSet("desktop", flag.ContinueOnError)
	fs.IntVar(&cfg.width, "width", 800, "window width")
	fs.IntVar(&cfg.height, "height", 600, "window height")
	fs.StringVar(&kind, "kind", fractal.Sierpinski.String(), "initial fractal")
	fs.IntVar(&cfg.depth, "depth", 0, "initial depth")
	fs.DurationVar(&cfg.speed, "speed", app.DefaultSpeed, "delay between animation steps")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	k, err := fractal.ParseKind(kind)
	if err != nil {
		return config{}, fmt.Errorf("-kind: %w", err)
	}
	cfg.kind = k
	return cfg, nil
}

func run() error {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		return err
	}

	v := newViewer(cfg)
	v.app.Redraw()

	ebiten.SetWindowTitle("Fractals")
	ebiten.SetWindowSize(cfg.width, cfg.height)
	ebiten.SetTPS(tps)
	return ebiten.RunGame(&game{v: v})
}
