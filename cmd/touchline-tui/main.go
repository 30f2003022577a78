package main

import (
	"flag"
	"log"

	"github.com/Garsondee/Touchline/internal/tactics"
	"github.com/Garsondee/Touchline/internal/tui"
	"github.com/gdamore/tcell/v2"
)

func main() {
	opts := tactics.DefaultOptions()
	var cfg tui.Config

	flag.StringVar(&opts.Formation, "formation", tactics.DefaultFormation, "initial formation")
	flag.BoolVar(&opts.ShowConnections, "connections", true, "draw connection lines")
	flag.BoolVar(&opts.ShowZones, "zones", true, "draw tactical zones")
	flag.BoolVar(&opts.RealTimeAnalysis, "analysis", true, "draw the analysis panel")
	flag.BoolVar(&cfg.Sound, "sound", true, "click on pickup and drop")
	flag.DurationVar(&cfg.Tick, "tick", tui.DefaultTick, "frame interval")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	h, err := tui.New(screen, opts, cfg)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	h.Run()
	screen.Fini()
}
