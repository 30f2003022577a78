package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/Garsondee/Touchline/internal/tactics"
	"github.com/atotto/clipboard"
	"github.com/fatih/color"
)

// palette styles report lines. The plain palette is used for clipboard text.
type palette struct {
	heading func(a ...interface{}) string
	good    func(a ...interface{}) string
	bad     func(a ...interface{}) string
}

func plainPalette() palette {
	id := func(a ...interface{}) string { return fmt.Sprint(a...) }
	return palette{heading: id, good: id, bad: id}
}

func colorPalette() palette {
	return palette{
		heading: color.New(color.FgCyan, color.Bold).SprintFunc(),
		good:    color.New(color.FgGreen).SprintFunc(),
		bad:     color.New(color.FgRed).SprintFunc(),
	}
}

type runStats struct {
	formation string
	id        string
	analysis  tactics.Analysis

	dragSlot    string
	dragOffset  float64 // px from rest at release
	settled     bool
	settleFrame int // frames from release to rest
	settleLogs  int

	lowest  tactics.Player
	highest tactics.Player
	report  string
}

func main() {
	var only string
	var drag string
	var dx, dy float64
	var maxFrames int
	var copyOut bool
	var noColor bool

	flag.StringVar(&only, "formation", "", "report a single formation (default: all)")
	flag.StringVar(&drag, "drag", "", "slot to drag away and release, e.g. GK")
	flag.Float64Var(&dx, "dx", 120, "drag offset x in canvas pixels")
	flag.Float64Var(&dy, "dy", -80, "drag offset y in canvas pixels")
	flag.IntVar(&maxFrames, "frames", 600, "max frames to wait for the dragged player to settle")
	flag.BoolVar(&copyOut, "copy", false, "copy the full report to the clipboard")
	flag.BoolVar(&noColor, "no-color", false, "disable coloured output")
	flag.Parse()
	if noColor {
		color.NoColor = true
	}

	if maxFrames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}
	names := tactics.FormationNames()
	if only != "" {
		if _, ok := tactics.Lookup(only); !ok {
			fmt.Printf("error: unknown formation %q (known: %s)\n", only, strings.Join(names, ", "))
			return
		}
		names = []string{only}
	}

	all := make([]runStats, 0, len(names))
	for _, name := range names {
		rs, err := runFormation(name, drag, dx, dy, maxFrames)
		if err != nil {
			log.Fatal(err)
		}
		all = append(all, rs)
	}

	header := fmt.Sprintf("formations=%d drag=%q offset=(%.0f,%.0f) frames=%d", len(names), drag, dx, dy, maxFrames)
	fmt.Print(render(header, all, colorPalette()))
	if copyOut {
		full := render(header, all, plainPalette())
		for _, rs := range all {
			full += "\n" + rs.report
		}
		if err := clipboard.WriteAll(full); err != nil {
			log.Println("clipboard copy failed:", err)
		}
	}
}

func render(header string, all []runStats, pal palette) string {
	var out strings.Builder
	fmt.Fprintf(&out, "%s\n", pal.heading("=== Formation Report ==="))
	fmt.Fprintf(&out, "%s\n\n", header)
	for _, rs := range all {
		printRun(&out, rs, pal)
	}
	printRanking(&out, all, pal)
	return out.String()
}

// runFormation mounts a designer on a headless host, optionally drags one
// slot away and waits for it to spring back.
func runFormation(name, drag string, dx, dy float64, maxFrames int) (runStats, error) {
	host := tactics.NewHeadlessHost()
	opts := tactics.DefaultOptions()
	opts.Formation = name
	d, err := tactics.Init(host, opts)
	if err != nil {
		return runStats{}, fmt.Errorf("init %s: %w", name, err)
	}
	defer d.Destroy()

	rs := runStats{formation: name, id: d.ID(), dragSlot: drag, settleFrame: -1}
	if drag != "" {
		p, ok := d.Scene().Player(drag)
		if !ok {
			return rs, fmt.Errorf("formation %s has no slot %q", name, drag)
		}
		d.Press(p.Pos.X, p.Pos.Y)
		d.Move(p.Pos.X+dx, p.Pos.Y+dy)
		host.Step()
		if held, ok := d.Scene().Held(); ok {
			rs.dragOffset = held.Pos.Dist(held.Rest)
		}
		d.Release()
		rs.settled, rs.settleFrame = host.RunUntil(maxFrames, func() bool {
			q, _ := d.Scene().Player(drag)
			return q.State() == tactics.StateAtRest
		})
		rs.settleLogs = d.Log().CountCategory("physics", "settled")
	} else {
		host.Step()
	}

	sc := d.Scene()
	rs.analysis = sc.Analysis
	rs.lowest, rs.highest = extremes(sc.Players)
	rs.report = tactics.Report(d.ID(), sc)
	return rs, nil
}

// extremes returns the least and most effective players.
func extremes(players []tactics.Player) (lo, hi tactics.Player) {
	if len(players) == 0 {
		return lo, hi
	}
	lo, hi = players[0], players[0]
	for _, p := range players[1:] {
		if p.Effectiveness < lo.Effectiveness {
			lo = p
		}
		if p.Effectiveness > hi.Effectiveness {
			hi = p
		}
	}
	return lo, hi
}

func printRun(out *strings.Builder, rs runStats, pal palette) {
	a := rs.analysis
	fmt.Fprintf(out, "%s\n", pal.heading(fmt.Sprintf("--- %s ---", rs.formation)))
	fmt.Fprintf(out, "width=%.1f compactness=%.1f balance=%.1f overall=%.1f\n", a.Width, a.Compactness, a.Balance, a.Overall)
	fmt.Fprintf(out, "lowest=%s(%.2f) highest=%s(%.2f)\n",
		rs.lowest.SlotID, rs.lowest.Effectiveness, rs.highest.SlotID, rs.highest.Effectiveness)
	if rs.dragSlot != "" {
		status := pal.good(fmt.Sprintf("settled after %d frames", rs.settleFrame))
		if !rs.settled {
			status = pal.bad("did not settle")
		}
		fmt.Fprintf(out, "drag %s %.0fpx: %s (settle events=%d)\n", rs.dragSlot, rs.dragOffset, status, rs.settleLogs)
	}
	fmt.Fprintln(out)
}

func printRanking(out *strings.Builder, all []runStats, pal palette) {
	ranked := append([]runStats(nil), all...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].analysis.Overall > ranked[j].analysis.Overall
	})
	fmt.Fprintf(out, "%s\n", pal.heading("=== Ranking (overall) ==="))
	for i, rs := range ranked {
		fmt.Fprintf(out, "%d. %-8s %.1f\n", i+1, rs.formation, rs.analysis.Overall)
	}
}
