package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyActions = []struct {
	key ebiten.Key
	a   action
}{
	{ebiten.Key1, selectSierpinski},
	{ebiten.Key2, selectKoch},
	{ebiten.Key3, selectPythagoras},
	{ebiten.Key4, selectDragon},
	{ebiten.KeyArrowUp, deeper},
	{ebiten.KeyArrowDown, shallower},
	{ebiten.KeySpace, togglePlay},
	{ebiten.KeyEqual, faster},
	{ebiten.KeyNumpadAdd, faster},
	{ebiten.KeyMinus, slower},
	{ebiten.KeyNumpadSubtract, slower},
	{ebiten.KeyI, toggleInfo},
}

type game struct {
	v   *viewer
	img *ebiten.Image
}

func (g *game) Update() error {
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			g.v.apply(ka.a)
		}
	}
	g.v.tick(time.Second / tps)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	src := g.v.raster.Image()
	b := src.Bounds()
	if g.img == nil {
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
		g.v.dirty = true
	}
	if g.v.dirty {
		g.img.WritePixels(src.Pix)
		g.v.dirty = false
	}
	screen.DrawImage(g.img, nil)

	for i, line := range g.v.panelLines() {
		ebitenutil.DebugPrintAt(screen, line, 8, 4+16*i)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.v.raster.Bounds()
	return b.Dx(), b.Dy()
}
