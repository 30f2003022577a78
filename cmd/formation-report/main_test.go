package main

import (
	"strings"
	"testing"

	"github.com/Garsondee/Touchline/internal/tactics"
)

func TestRunFormation_NoDrag(t *testing.T) {
	rs, err := runFormation("4-4-2", "", 0, 0, 10)
	if err != nil {
		t.Fatalf("runFormation: %v", err)
	}
	if rs.formation != "4-4-2" || rs.id == "" {
		t.Fatalf("unexpected run header: %+v", rs)
	}
	if rs.analysis.Overall <= 0 || rs.analysis.Overall > 100 {
		t.Fatalf("overall should be a percentage, got %.2f", rs.analysis.Overall)
	}
	if !strings.Contains(rs.report, "4-4-2") {
		t.Fatalf("report should name the formation:\n%s", rs.report)
	}
}

func TestRunFormation_DragSettles(t *testing.T) {
	rs, err := runFormation("4-2-3-1", "ST", 120, 80, 300)
	if err != nil {
		t.Fatalf("runFormation: %v", err)
	}
	if rs.dragOffset < 100 {
		t.Fatalf("expected the striker dragged ~144px, got %.1f", rs.dragOffset)
	}
	if !rs.settled || rs.settleFrame <= 0 || rs.settleFrame > 200 {
		t.Fatalf("expected settle within 200 frames, got settled=%v frames=%d", rs.settled, rs.settleFrame)
	}
	if rs.settleLogs != 1 {
		t.Fatalf("expected one settle event, got %d", rs.settleLogs)
	}
}

func TestRunFormation_UnknownSlot(t *testing.T) {
	if _, err := runFormation("4-4-2", "CAM", 10, 10, 10); err == nil {
		t.Fatal("4-4-2 has no CAM slot; expected an error")
	}
}

func TestExtremes(t *testing.T) {
	players := []tactics.Player{
		{SlotID: "A", Effectiveness: 0.5},
		{SlotID: "B", Effectiveness: 0.9},
		{SlotID: "C", Effectiveness: 0.2},
	}
	lo, hi := extremes(players)
	if lo.SlotID != "C" || hi.SlotID != "B" {
		t.Fatalf("expected lo=C hi=B, got lo=%s hi=%s", lo.SlotID, hi.SlotID)
	}
	if lo, hi := extremes(nil); lo.SlotID != "" || hi.SlotID != "" {
		t.Fatal("empty input should give zero players")
	}
}

func TestPrintRanking_SortsByOverall(t *testing.T) {
	all := []runStats{
		{formation: "a", analysis: tactics.Analysis{Overall: 40}},
		{formation: "b", analysis: tactics.Analysis{Overall: 70}},
	}
	var out strings.Builder
	printRanking(&out, all, plainPalette())
	s := out.String()
	if strings.Index(s, "1. b") < 0 || strings.Index(s, "2. a") < 0 {
		t.Fatalf("expected b ranked above a:\n%s", s)
	}
}

func TestRender_PlainHasNoEscapes(t *testing.T) {
	rs, err := runFormation("3-5-2", "GK", 0, -60, 200)
	if err != nil {
		t.Fatalf("runFormation: %v", err)
	}
	s := render("header", []runStats{rs}, plainPalette())
	if strings.Contains(s, "\x1b[") {
		t.Fatalf("plain output should carry no ANSI escapes:\n%s", s)
	}
	for _, want := range []string{"=== Formation Report ===", "--- 3-5-2 ---", "drag GK 60px: settled after", "1. 3-5-2"} {
		if !strings.Contains(s, want) {
			t.Fatalf("missing %q in:\n%s", want, s)
		}
	}
}
