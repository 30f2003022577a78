package main

import (
	"flag"
	"log"

	"github.com/Garsondee/Touchline/internal/game"
	"github.com/Garsondee/Touchline/internal/tactics"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	opts := tactics.DefaultOptions()
	var scale float64
	var readOnly bool

	flag.IntVar(&opts.Width, "width", tactics.DefaultWidth, "pitch canvas width in pixels")
	flag.IntVar(&opts.Height, "height", tactics.DefaultHeight, "pitch canvas height in pixels")
	flag.Float64Var(&scale, "scale", 0.85, "on-screen scale of the pitch")
	flag.StringVar(&opts.Formation, "formation", tactics.DefaultFormation, "initial formation")
	flag.BoolVar(&opts.ShowConnections, "connections", true, "draw connection lines")
	flag.BoolVar(&opts.ShowZones, "zones", true, "draw tactical zones")
	flag.BoolVar(&opts.RealTimeAnalysis, "analysis", true, "draw the analysis panel")
	flag.BoolVar(&readOnly, "read-only", false, "ignore pointer input")
	flag.Parse()
	opts.Interactive = !readOnly

	g, err := game.New(opts, scale)
	if err != nil {
		log.Fatal(err)
	}
	w, h := g.Size()
	ebiten.SetWindowTitle("Touchline")
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
