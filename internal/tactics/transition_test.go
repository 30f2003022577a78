package tactics

import (
	"math"
	"testing"
	"time"
)

func TestEaseInOutCubic_Shape(t *testing.T) {
	if EaseInOutCubic(0) != 0 || EaseInOutCubic(1) != 1 {
		t.Fatal("ease must pin both endpoints")
	}
	if math.Abs(EaseInOutCubic(0.5)-0.5) > 1e-12 {
		t.Fatalf("ease should pass through the midpoint, got %.6f", EaseInOutCubic(0.5))
	}
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseInOutCubic(float64(i) / 100)
		if v < prev {
			t.Fatalf("ease not monotonic at %d: %.4f < %.4f", i, v, prev)
		}
		prev = v
	}
	if EaseInOutCubic(-3) != 0 || EaseInOutCubic(7) != 1 {
		t.Fatal("ease should clamp outside [0,1]")
	}
}

func TestTransition_StepReachesTargets(t *testing.T) {
	cur, _ := Load("4-2-3-1", 800, 1040, DefaultRadius)
	next, _ := Load("4-4-2", 800, 1040, DefaultRadius)
	rests := make([]Vec2, len(cur))
	for i, p := range cur {
		rests[i] = p.Rest
	}
	tr := newTransition(cur, next, "4-4-2", 300*time.Millisecond)

	if tr.Step(100 * time.Millisecond) {
		t.Fatal("transition finished too early")
	}
	if !tr.Step(200 * time.Millisecond) {
		t.Fatalf("expected transition to finish, progress %.2f", tr.Progress())
	}
	targets := map[Vec2]bool{}
	for _, n := range next {
		targets[n.Rest] = true
	}
	for i, p := range cur {
		if !targets[p.Pos] {
			t.Fatalf("%s ended at %v, which is not a 4-4-2 slot", p.SlotID, p.Pos)
		}
		if p.Rest != rests[i] {
			t.Fatalf("%s: rest moved during the animation", p.SlotID)
		}
	}
	if len(tr.Next()) != len(next) || tr.Next()[0] != next[0] {
		t.Fatal("Next should hand back the incoming player set")
	}
}
