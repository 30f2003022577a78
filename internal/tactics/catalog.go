package tactics

// Slot is one catalog position. X runs left to right, Y runs from the
// opponent's goal line (0) to our own goal line (1).
type Slot struct {
	ID     string
	X, Y   float64
	Role   Role
	Name   string
	Number int
}

// Formation is a named, fixed layout of eleven slots.
type Formation struct {
	Name  string
	Slots []Slot
}

// DefaultFormation is used when a requested name is not in the catalog.
const DefaultFormation = "4-2-3-1"

func gk() Slot { return Slot{"GK", 0.50, 0.92, RoleGoalkeeper, "Okafor", 1} }

// backFour is shared by every four-at-the-back shape.
func backFour() []Slot {
	return []Slot{
		{"LB", 0.15, 0.72, RoleDefender, "Moreau", 3},
		{"LCB", 0.38, 0.77, RoleDefender, "Brennan", 5},
		{"RCB", 0.62, 0.77, RoleDefender, "Santos", 4},
		{"RB", 0.85, 0.72, RoleDefender, "Lindqvist", 2},
	}
}

func shape(name string, outfield ...[]Slot) Formation {
	f := Formation{Name: name, Slots: []Slot{gk()}}
	for _, line := range outfield {
		f.Slots = append(f.Slots, line...)
	}
	return f
}

// catalog lists formations in menu order; keys 1..n in the frontends follow it.
var catalog = []Formation{
	shape("4-2-3-1", backFour(), []Slot{
		{"LDM", 0.38, 0.58, RoleMidfielder, "Keane", 6},
		{"RDM", 0.62, 0.58, RoleMidfielder, "Vidal", 8},
		{"LW", 0.18, 0.38, RoleAttacker, "Nakamura", 11},
		{"CAM", 0.50, 0.40, RoleMidfielder, "Costa", 10},
		{"RW", 0.82, 0.38, RoleAttacker, "Adeyemi", 7},
		{"ST", 0.50, 0.18, RoleAttacker, "Haraldsen", 9},
	}),
	shape("4-3-3", backFour(), []Slot{
		{"LCM", 0.30, 0.52, RoleMidfielder, "Vidal", 8},
		{"CM", 0.50, 0.57, RoleMidfielder, "Keane", 6},
		{"RCM", 0.70, 0.52, RoleMidfielder, "Costa", 10},
		{"LW", 0.18, 0.26, RoleAttacker, "Nakamura", 11},
		{"ST", 0.50, 0.20, RoleAttacker, "Haraldsen", 9},
		{"RW", 0.82, 0.26, RoleAttacker, "Adeyemi", 7},
	}),
	shape("4-4-2", backFour(), []Slot{
		{"LM", 0.15, 0.48, RoleMidfielder, "Nakamura", 11},
		{"LCM", 0.38, 0.54, RoleMidfielder, "Keane", 6},
		{"RCM", 0.62, 0.54, RoleMidfielder, "Vidal", 8},
		{"RM", 0.85, 0.48, RoleMidfielder, "Adeyemi", 7},
		{"LS", 0.38, 0.22, RoleAttacker, "Costa", 10},
		{"RS", 0.62, 0.22, RoleAttacker, "Haraldsen", 9},
	}),
	shape("3-5-2", []Slot{
		{"LCB", 0.28, 0.76, RoleDefender, "Brennan", 5},
		{"CB", 0.50, 0.79, RoleDefender, "Santos", 4},
		{"RCB", 0.72, 0.76, RoleDefender, "Moreau", 3},
		{"LWB", 0.10, 0.52, RoleMidfielder, "Nakamura", 11},
		{"LCM", 0.35, 0.52, RoleMidfielder, "Vidal", 8},
		{"CDM", 0.50, 0.60, RoleMidfielder, "Keane", 6},
		{"RCM", 0.65, 0.52, RoleMidfielder, "Costa", 10},
		{"RWB", 0.90, 0.52, RoleMidfielder, "Lindqvist", 2},
		{"LS", 0.38, 0.22, RoleAttacker, "Adeyemi", 7},
		{"RS", 0.62, 0.22, RoleAttacker, "Haraldsen", 9},
	}),
	shape("5-3-2", []Slot{
		{"LWB", 0.10, 0.66, RoleDefender, "Moreau", 3},
		{"LCB", 0.30, 0.76, RoleDefender, "Brennan", 5},
		{"CB", 0.50, 0.79, RoleDefender, "Santos", 4},
		{"RCB", 0.70, 0.76, RoleDefender, "Keane", 6},
		{"RWB", 0.90, 0.66, RoleDefender, "Lindqvist", 2},
		{"LCM", 0.30, 0.50, RoleMidfielder, "Vidal", 8},
		{"CM", 0.50, 0.54, RoleMidfielder, "Costa", 10},
		{"RCM", 0.70, 0.50, RoleMidfielder, "Nakamura", 11},
		{"LS", 0.38, 0.22, RoleAttacker, "Adeyemi", 7},
		{"RS", 0.62, 0.22, RoleAttacker, "Haraldsen", 9},
	}),
	shape("4-1-4-1", backFour(), []Slot{
		{"CDM", 0.50, 0.62, RoleMidfielder, "Keane", 6},
		{"LM", 0.15, 0.44, RoleMidfielder, "Nakamura", 11},
		{"LCM", 0.38, 0.46, RoleMidfielder, "Vidal", 8},
		{"RCM", 0.62, 0.46, RoleMidfielder, "Costa", 10},
		{"RM", 0.85, 0.44, RoleMidfielder, "Adeyemi", 7},
		{"ST", 0.50, 0.20, RoleAttacker, "Haraldsen", 9},
	}),
}

// Lookup returns the named formation.
func Lookup(name string) (Formation, bool) {
	for _, f := range catalog {
		if f.Name == name {
			return f, true
		}
	}
	return Formation{}, false
}

// FormationNames lists the catalog in menu order.
func FormationNames() []string {
	names := make([]string, len(catalog))
	for i, f := range catalog {
		names[i] = f.Name
	}
	return names
}
