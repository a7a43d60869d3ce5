package engine

import "testing"

func TestVisibleFleetIsHomeFleetOnly(t *testing.T) {
	p := PlayerState{Fleet: FleetComposition{Frigates: 20, Cruisers: 5}}

	m, err := NewFleetMovement(FleetComposition{Frigates: 8}, "enemy_home", 3)
	if err != nil {
		t.Fatal(err)
	}
	p.Fleet = p.Fleet.Subtract(m.Composition)
	p.Movements = append(p.Movements, *m)

	got := p.VisibleFleet()
	want := FleetComposition{Frigates: 12, Cruisers: 5}
	if got != want {
		t.Errorf("visible fleet = %s, want %s (transit ships hidden)", got, want)
	}
}

func TestIsVulnerableTracksTransitWindow(t *testing.T) {
	m, err := NewFleetMovement(FleetComposition{Cruisers: 3}, "enemy_home", 5)
	if err != nil {
		t.Fatal(err)
	}
	p := PlayerState{Movements: []FleetMovement{*m}}

	cases := []struct {
		turn int
		want bool
	}{
		{4, false}, // before departure takes effect
		{5, true},  // departure turn
		{6, true},  // arrival turn
		{7, true},  // returning
		{8, false}, // home again
	}
	for _, c := range cases {
		if got := p.IsVulnerable(c.turn); got != c.want {
			t.Errorf("IsVulnerable(turn %d) = %v, want %v", c.turn, got, c.want)
		}
	}
}

func TestIsVulnerableWithNoMovements(t *testing.T) {
	p := PlayerState{Fleet: FleetComposition{Battleships: 2}}
	if p.IsVulnerable(10) {
		t.Error("side with no movements reported vulnerable")
	}
}
