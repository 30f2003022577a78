package game

import (
	"log"

	"github.com/Garsondee/Touchline/internal/tactics"
	"github.com/atotto/clipboard"
)

// copyReport puts the current analysis report on the system clipboard.
func (g *Game) copyReport() {
	report := tactics.Report(g.designer.ID(), g.designer.Scene())
	if err := clipboard.WriteAll(report); err != nil {
		// Linux needs xclip, xsel or wl-clipboard installed.
		log.Println("clipboard copy failed:", err)
		g.setStatus("clipboard unavailable")
		return
	}
	g.setStatus("report copied to clipboard")
}
