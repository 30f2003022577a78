package tactics

import (
	"math"
	"testing"
)

func TestScorePlayer_Bounds(t *testing.T) {
	const w = 800.0
	cases := map[string][]*Player{
		"coincident": {
			{SlotID: "A", Role: RoleMidfielder, Pos: Vec2{100, 100}},
			{SlotID: "B", Role: RoleDefender, Pos: Vec2{100, 100}},
		},
		"lone": {
			{SlotID: "A", Role: RoleAttacker, Pos: Vec2{400, 400}},
		},
		"far": {
			{SlotID: "A", Role: RoleGoalkeeper, Pos: Vec2{0, 0}},
			{SlotID: "B", Role: RoleAttacker, Pos: Vec2{1e6, 1e6}},
		},
		"ideal": {
			{SlotID: "A", Role: RoleMidfielder, Pos: Vec2{0, 0}},
			{SlotID: "B", Role: RoleMidfielder, Pos: Vec2{w / Phi, 0}},
		},
	}
	for name, players := range cases {
		for _, p := range players {
			s := ScorePlayer(p, players, w)
			if s < 0.1 || s > 1.0 || math.IsNaN(s) {
				t.Fatalf("%s/%s: score %.4f outside [0.1,1]", name, p.SlotID, s)
			}
		}
	}
}

func TestScorePlayer_IdealSpacingMaxesMidfielder(t *testing.T) {
	const w = 800.0
	a := &Player{Role: RoleMidfielder, Pos: Vec2{0, 0}}
	b := &Player{Role: RoleMidfielder, Pos: Vec2{w / Phi, 0}}
	if s := ScorePlayer(a, []*Player{a, b}, w); math.Abs(s-1.0) > 1e-9 {
		t.Fatalf("midfielder at ideal spacing should score 1.0, got %.6f", s)
	}
}

func TestScorePlayer_RoleWeightShape(t *testing.T) {
	const w = 800.0
	other := &Player{Role: RoleMidfielder, Pos: Vec2{w / Phi, 0}}
	want := map[Role]float64{
		RoleGoalkeeper: 0.9,
		RoleDefender:   0.8,
		RoleMidfielder: 1.0,
		RoleAttacker:   0.85,
	}
	for role, weight := range want {
		p := &Player{Role: role, Pos: Vec2{0, 0}}
		if s := ScorePlayer(p, []*Player{p, other}, w); math.Abs(s-weight) > 1e-9 {
			t.Fatalf("%s: expected %.2f at ideal spacing, got %.4f", role, weight, s)
		}
	}
}

func TestScorePlayer_ClusteredScoresLowerThanSpread(t *testing.T) {
	const w = 800.0
	a := &Player{Role: RoleMidfielder, Pos: Vec2{400, 400}}
	near := &Player{Role: RoleMidfielder, Pos: Vec2{405, 400}}
	far := &Player{Role: RoleMidfielder, Pos: Vec2{400 + w/Phi, 400}}
	clustered := ScorePlayer(a, []*Player{a, near}, w)
	spread := ScorePlayer(a, []*Player{a, far}, w)
	if clustered >= spread {
		t.Fatalf("clustered %.3f should score below ideal spread %.3f", clustered, spread)
	}
}

func TestScorePlayer_DegenerateInputs(t *testing.T) {
	p := &Player{Role: RoleMidfielder, Pos: Vec2{1, 1}}
	if s := ScorePlayer(p, []*Player{p}, 0); s != 0.1 {
		t.Fatalf("zero width should floor at 0.1, got %.3f", s)
	}
	nan := &Player{Role: RoleMidfielder, Pos: Vec2{math.NaN(), 1}}
	if s := ScorePlayer(nan, []*Player{nan, p}, 800); s != 0.1 {
		t.Fatalf("NaN position should floor at 0.1, got %.3f", s)
	}
}

func TestScoreFormation_DefaultShape(t *testing.T) {
	players, _ := Load("4-2-3-1", 800, 1040, DefaultRadius)
	ScoreAll(players, 800)
	a := ScoreFormation(players, 800, 1040)
	if a.Balance != 100 {
		t.Fatalf("symmetric 4-2-3-1 should be balanced, got %.1f", a.Balance)
	}
	if a.Width <= 50 || a.Width > 100 {
		t.Fatalf("expected width between 50%% and 100%%, got %.1f", a.Width)
	}
	if a.Compactness <= 0 || a.Compactness >= 100 {
		t.Fatalf("expected compactness inside (0,100), got %.1f", a.Compactness)
	}
	sum := 0.0
	for _, p := range players {
		sum += p.Effectiveness
	}
	if want := sum / float64(len(players)) * 100; math.Abs(a.Overall-want) > 1e-9 {
		t.Fatalf("overall %.3f should be mean effectiveness x100 (%.3f)", a.Overall, want)
	}
}

func TestScoreFormation_Imbalance(t *testing.T) {
	players := []*Player{
		{Pos: Vec2{100, 100}, Effectiveness: 0.5},
		{Pos: Vec2{150, 200}, Effectiveness: 0.5},
		{Pos: Vec2{200, 300}, Effectiveness: 0.5},
		{Pos: Vec2{400, 300}, Effectiveness: 0.5}, // on the centre line
		{Pos: Vec2{700, 300}, Effectiveness: 0.5},
	}
	a := ScoreFormation(players, 800, 1000)
	if a.Balance != 80 {
		t.Fatalf("3 left vs 1 right should give balance 80, got %.1f", a.Balance)
	}
	if math.Abs(a.Width-75) > 1e-9 {
		t.Fatalf("expected width 75%%, got %.3f", a.Width)
	}
	if a.Overall != 50 {
		t.Fatalf("expected overall 50, got %.1f", a.Overall)
	}
}

func TestScoreFormation_Empty(t *testing.T) {
	if a := ScoreFormation(nil, 800, 1000); a != (Analysis{}) {
		t.Fatalf("empty formation should yield zero analysis, got %+v", a)
	}
}
