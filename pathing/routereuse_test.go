package pathing

import "testing"

type fakeFormations struct {
	formation FormationID
	ok        bool
}

func (f fakeFormations) FormationAt(w WorldCoord) (FormationID, bool) { return f.formation, f.ok }

type fakeUnits struct{ units []*Unit }

func (f fakeUnits) PlayerUnits(player int) []*Unit { return f.units }
func (f fakeUnits) NextInLine() (*Unit, bool)      { return nil, false }

func TestFirstBetweenIndexFindsCrossingWaypoint(t *testing.T) {
	path := []TileCoord{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}}
	s := TileCenter(TileCoord{X: 0, Y: 0})
	p := TileCenter(TileCoord{X: 10, Y: 0})

	idx, found := firstBetweenIndex(path, s, p)
	if !found {
		t.Fatalf("expected a between index to be found")
	}
	if idx != 1 {
		t.Errorf("expected waypoint index 1 to split start and teammate, got %d", idx)
	}
}

func TestFindReusableRouteAdoptsTeammateSuffix(t *testing.T) {
	formation := "alpha"
	leader := &Unit{ID: "leader", PlayerID: 1, Alive: true, Formation: formation, Position: TileCenter(TileCoord{X: 10, Y: 0})}
	leader.Move.Waypoints = []TileCoord{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}}

	self := &Unit{ID: "follower", PlayerID: 1, Alive: true, Formation: formation, Position: TileCenter(TileCoord{X: 0, Y: 0})}

	formations := fakeFormations{formation: formation, ok: true}
	units := fakeUnits{units: []*Unit{leader, self}}
	rc := fakeRayCaster{}
	blocked := func(tx, ty int32) bool { return false }

	ok := findReusableRoute(self, nil, self.Position, TileCenter(TileCoord{X: 20, Y: 0}), formations, units, rc, blocked)
	if !ok {
		t.Fatalf("expected a reusable route to be found")
	}
	if len(self.Move.Waypoints) == 0 {
		t.Errorf("expected the follower to adopt a waypoint suffix")
	}
}

func TestFindReusableRouteSkipsOtherFormations(t *testing.T) {
	self := &Unit{ID: "self", PlayerID: 1, Alive: true, Formation: "alpha"}
	other := &Unit{ID: "other", PlayerID: 1, Alive: true, Formation: "beta"}
	other.Move.Waypoints = []TileCoord{{X: 1, Y: 1}}

	formations := fakeFormations{formation: "alpha", ok: true}
	units := fakeUnits{units: []*Unit{self, other}}
	rc := fakeRayCaster{}
	blocked := func(tx, ty int32) bool { return false }

	if findReusableRoute(self, nil, self.Position, WorldCoord{}, formations, units, rc, blocked) {
		t.Errorf("expected no reuse across different formations")
	}
}
