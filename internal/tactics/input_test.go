package tactics

import "testing"

func TestPress_HeldExclusivity(t *testing.T) {
	players, _ := Load("4-2-3-1", 800, 1040, DefaultRadius)
	for _, target := range players {
		hit := Press(players, target.Pos.X+3, target.Pos.Y-2, DefaultRadius)
		if hit != target {
			t.Fatalf("press on %s picked %v", target.SlotID, hit)
		}
		if n := heldCount(players); n != 1 {
			t.Fatalf("after pressing %s, %d players are held", target.SlotID, n)
		}
	}
}

func TestPress_ClearsPreviousHolder(t *testing.T) {
	players, _ := Load("4-3-3", 800, 1040, DefaultRadius)
	players[0].Held = true
	hit := Press(players, players[5].Pos.X, players[5].Pos.Y, DefaultRadius)
	if hit != players[5] || players[0].Held {
		t.Fatalf("expected %s held and GK released", players[5].SlotID)
	}
}

func TestPress_MissIsNoOp(t *testing.T) {
	players, _ := Load("4-3-3", 800, 1040, DefaultRadius)
	if hit := Press(players, -500, -500, DefaultRadius); hit != nil {
		t.Fatalf("press outside canvas should hit nothing, got %s", hit.SlotID)
	}
	if n := heldCount(players); n != 0 {
		t.Fatalf("expected no held players after a miss, got %d", n)
	}
}

func TestPress_ClosestWinsOnOverlap(t *testing.T) {
	a := &Player{SlotID: "A", Pos: Vec2{100, 100}}
	b := &Player{SlotID: "B", Pos: Vec2{110, 100}}
	if hit := Press([]*Player{a, b}, 108, 100, DefaultRadius); hit != b {
		t.Fatalf("expected closest marker B, got %v", hit)
	}
}

func TestMove_ClampsAndZeroesVelocity(t *testing.T) {
	b := testBounds()
	players, _ := Load("4-2-3-1", b.Width, b.Height, b.Radius)
	st := players[len(players)-1]
	Press(players, st.Pos.X, st.Pos.Y, b.Radius)
	st.Vel = Vec2{5, 5}

	Move(players, -100, 5000, b)
	if st.Pos != (Vec2{b.Radius, b.Height - b.Radius}) {
		t.Fatalf("expected clamped corner, got %v", st.Pos)
	}
	if st.Vel != (Vec2{}) {
		t.Fatalf("expected zero velocity while dragging, got %v", st.Vel)
	}
	if st.Rest == st.Pos {
		t.Fatal("dragging must not touch the rest position")
	}
}

func TestMove_WithoutHolderIsNoOp(t *testing.T) {
	b := testBounds()
	players, _ := Load("4-2-3-1", b.Width, b.Height, b.Radius)
	if p := Move(players, 10, 10, b); p != nil {
		t.Fatalf("move with nothing held returned %s", p.SlotID)
	}
}

func TestRelease_SpringsBackToRest(t *testing.T) {
	b := testBounds()
	players, _ := Load("4-2-3-1", b.Width, b.Height, b.Radius)
	lb := players[1]
	rest := lb.Rest
	Press(players, lb.Pos.X, lb.Pos.Y, b.Radius)
	Move(players, 600, 200, b)
	if lb.State() != StateHeld {
		t.Fatalf("expected held, got %s", lb.State())
	}
	if r := Release(players); r != lb {
		t.Fatalf("release returned %v", r)
	}
	if lb.State() != StateSpringing {
		t.Fatalf("expected springing after release, got %s", lb.State())
	}
	for i := 0; i < 200 && lb.State() != StateAtRest; i++ {
		Advance(players, testStep, b)
	}
	if lb.Pos != rest || lb.Rest != rest {
		t.Fatalf("expected LB back at %v, got pos=%v rest=%v", rest, lb.Pos, lb.Rest)
	}
}
