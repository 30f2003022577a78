package tactics

import (
	"fmt"
	"strings"
	"testing"
)

func TestEventLog_RingOverwritesOldest(t *testing.T) {
	el := NewEventLog(4)
	for i := 0; i < 6; i++ {
		el.Add(i, "--", "test", "tick", fmt.Sprintf("n=%d", i), float64(i))
	}
	if el.Len() != 4 || el.Total() != 6 {
		t.Fatalf("expected len=4 total=6, got len=%d total=%d", el.Len(), el.Total())
	}
	entries := el.Entries()
	if entries[0].Frame != 2 || entries[3].Frame != 5 {
		t.Fatalf("expected frames 2..5 oldest first, got %d..%d", entries[0].Frame, entries[3].Frame)
	}
	if recent := el.Recent(2); len(recent) != 2 || recent[1].Value != "n=5" {
		t.Fatalf("unexpected recent entries: %v", recent)
	}
}

func TestEventLog_FilterHelpers(t *testing.T) {
	el := NewEventLog(0)
	el.Add(1, "ST#9", "input", "press", "(400,187)", 0)
	el.Add(2, "ST#9", "input", "release", "120px from rest", 120)
	el.Add(9, "ST#9", "physics", "settled", "at rest", 0)
	el.Add(9, "--", "formation", "load", "4-2-3-1", 11)

	if n := el.CountCategory("input", ""); n != 2 {
		t.Fatalf("expected 2 input events, got %d", n)
	}
	if n := len(el.FilterPlayer("ST#9")); n != 3 {
		t.Fatalf("expected 3 events for ST#9, got %d", n)
	}
	last, ok := el.LastOf("input", "release")
	if !ok || last.NumVal != 120 {
		t.Fatalf("expected release with 120px, got %+v ok=%v", last, ok)
	}
	if !el.HasEntry("formation", "load", "4-2") {
		t.Fatal("expected formation load entry")
	}
	if _, ok := el.LastOf("transition", "start"); ok {
		t.Fatal("did not expect a transition entry")
	}
	if !strings.Contains(el.Dump(), "settled") {
		t.Fatalf("dump missing settled line:\n%s", el.Dump())
	}
}
