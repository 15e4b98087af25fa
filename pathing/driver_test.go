package pathing_test

import (
	"testing"

	"github.com/turnforge/ironfront/gridmap"
	"github.com/turnforge/ironfront/pathing"
)

type fixedClock struct{ frame int64 }

func (c *fixedClock) FrameNumber() int64 { return c.frame }

type noFormations struct{}

func (noFormations) FormationAt(w pathing.WorldCoord) (pathing.FormationID, bool) { return nil, false }

type noUnits struct{}

func (noUnits) PlayerUnits(player int) []*pathing.Unit { return nil }
func (noUnits) NextInLine() (*pathing.Unit, bool)      { return nil, false }

func newTestDriver(grid *gridmap.Grid, gateways []*pathing.Gateway, clock *fixedClock) *pathing.Driver {
	return pathing.NewDriver(
		gridmap.NewGatewayRouter(grid, gateways),
		gridmap.NewTileRouter(grid),
		grid,
		gridmap.NewRayCaster(),
		noFormations{},
		noUnits{},
		clock,
		nil,
		nil,
	)
}

func TestDriverRoutesDirectlyOnClearLineOfSight(t *testing.T) {
	grid := gridmap.NewGrid(30, 30)
	clock := &fixedClock{}
	d := newTestDriver(grid, nil, clock)
	budget := &pathing.SearchBudget{Limit: 500}

	unit := &pathing.Unit{ID: "u1", Alive: true, Position: pathing.TileCenter(pathing.TileCoord{X: 2, Y: 2})}
	target := pathing.TileCenter(pathing.TileCoord{X: 5, Y: 2})

	rv := d.Route(unit, target.X, target.Y, budget)
	if rv != pathing.OK {
		t.Fatalf("expected OK on a clear line of sight, got %v", rv)
	}
	if len(unit.Move.Waypoints) != 1 {
		t.Errorf("expected the direct-route shortcut to emit a single waypoint, got %v", unit.Move.Waypoints)
	}
}

func TestDriverRoutesAroundAWallViaTileAStar(t *testing.T) {
	grid := gridmap.NewGrid(30, 30)
	for y := int32(0); y < 30; y++ {
		if y != 15 {
			grid.SetTerrain(10, y, pathing.TerrainCliff)
		}
	}
	clock := &fixedClock{}
	d := newTestDriver(grid, nil, clock)
	budget := &pathing.SearchBudget{Limit: 5000}

	unit := &pathing.Unit{ID: "u1", Alive: true, Position: pathing.TileCenter(pathing.TileCoord{X: 2, Y: 2})}
	target := pathing.TileCenter(pathing.TileCoord{X: 20, Y: 2})

	rv := d.Route(unit, target.X, target.Y, budget)
	if rv != pathing.OK {
		t.Fatalf("expected OK once the tile A* threads the gap, got %v", rv)
	}
	if len(unit.Move.Waypoints) < 2 {
		t.Errorf("expected a multi-waypoint detour around the wall, got %v", unit.Move.Waypoints)
	}
}

func TestDriverParksOnExhaustedBudgetAndResumes(t *testing.T) {
	grid := gridmap.NewGrid(60, 60)
	// The wall sits inside the endpoint raycast's 20-tile reach, so the
	// direct-route shortcut sees it and the tile A* has to run.
	for y := int32(0); y < 60; y++ {
		if y != 30 {
			grid.SetTerrain(10, y, pathing.TerrainCliff)
		}
	}
	clock := &fixedClock{}
	d := newTestDriver(grid, nil, clock)

	unit := &pathing.Unit{ID: "u1", Alive: true, Position: pathing.TileCenter(pathing.TileCoord{X: 2, Y: 2})}
	target := pathing.TileCenter(pathing.TileCoord{X: 55, Y: 2})

	budget := &pathing.SearchBudget{Limit: 3}
	rv := d.Route(unit, target.X, target.Y, budget)
	if rv != pathing.WAIT {
		t.Fatalf("expected WAIT with a tiny budget, got %v", rv)
	}
	if unit.Move.Status != pathing.StatusWaitRoute {
		t.Errorf("expected the unit's status to flip to StatusWaitRoute while parked")
	}

	for i := 0; i < 200 && rv == pathing.WAIT; i++ {
		clock.frame++
		d.UpdateTick(budget)
		rv = d.Route(unit, target.X, target.Y, budget)
	}
	if rv != pathing.OK {
		t.Fatalf("expected the parked search to eventually complete, got %v", rv)
	}
}

func TestDriverLiftUnitIgnoresTerrainWalls(t *testing.T) {
	grid := gridmap.NewGrid(10, 10)
	// A cliff column a ground unit could never cross directly.
	for y := int32(0); y < 10; y++ {
		grid.SetTerrain(5, y, pathing.TerrainCliff)
	}
	clock := &fixedClock{}
	d := newTestDriver(grid, nil, clock)
	budget := &pathing.SearchBudget{Limit: 500}

	// Start and target stay off the outermost ring of tiles, which the lift
	// predicate blocks as the map-edge margin.
	unit := &pathing.Unit{
		ID: "v1", Alive: true, Propulsion: pathing.PropLift,
		Position: pathing.TileCenter(pathing.TileCoord{X: 1, Y: 1}),
	}
	target := pathing.TileCenter(pathing.TileCoord{X: 8, Y: 1})

	rv := d.Route(unit, target.X, target.Y, budget)
	if rv != pathing.OK {
		t.Fatalf("expected OK since lift propulsion ignores terrain entirely, got %v", rv)
	}
	if len(unit.Move.Waypoints) != 1 {
		t.Errorf("expected the lift unit to take the direct-route shortcut straight through the cliff, got %v", unit.Move.Waypoints)
	}
}

func TestSetBlockingPredicateOverridesUnitPropulsion(t *testing.T) {
	grid := gridmap.NewGrid(20, 20)
	// A water column a ground unit can only cross by detouring around it,
	// but a hover unit ignores entirely.
	for y := int32(0); y < 20; y++ {
		if y != 15 {
			grid.SetTerrain(10, y, pathing.TerrainWater)
		}
	}
	clock := &fixedClock{}
	d := newTestDriver(grid, nil, clock)

	start := pathing.TileCenter(pathing.TileCoord{X: 2, Y: 2})
	target := pathing.TileCenter(pathing.TileCoord{X: 18, Y: 2})

	d.SetBlockingPredicate(pathing.PropHover)
	unit := &pathing.Unit{ID: "g1", Alive: true, Propulsion: pathing.PropGround, Position: start}
	rv := d.Route(unit, target.X, target.Y, &pathing.SearchBudget{Limit: 500})
	if rv != pathing.OK {
		t.Fatalf("expected OK with the forced hover predicate ignoring water, got %v", rv)
	}
	if len(unit.Move.Waypoints) != 1 {
		t.Errorf("expected a direct shortcut once water stops blocking, got %v", unit.Move.Waypoints)
	}

	d.Initialise()
	unit2 := &pathing.Unit{ID: "g2", Alive: true, Propulsion: pathing.PropGround, Position: start}
	budget := &pathing.SearchBudget{Limit: 5000}
	rv = d.Route(unit2, target.X, target.Y, budget)
	for i := 0; i < 200 && rv == pathing.WAIT; i++ {
		clock.frame++
		d.UpdateTick(budget)
		rv = d.Route(unit2, target.X, target.Y, budget)
	}
	if rv != pathing.OK {
		t.Fatalf("expected OK once ground blocking routes around the water column, got %v", rv)
	}
	if len(unit2.Move.Waypoints) <= 1 {
		t.Errorf("expected Initialise to clear the forced predicate, reintroducing the water detour, got %v", unit2.Move.Waypoints)
	}
}
