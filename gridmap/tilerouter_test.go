package gridmap

import (
	"testing"

	"github.com/turnforge/ironfront/pathing"
)

func TestTileRouterFindsStraightPath(t *testing.T) {
	grid := NewGrid(20, 20)
	r := NewTileRouter(grid)
	budget := &pathing.SearchBudget{Limit: 1000}
	blocked := func(tx, ty int32) bool { return !grid.OnMap(tx, ty) }

	verdict, route := r.Route(pathing.SearchNew, budget, 2, 2, 8, 2, blocked)
	if verdict != pathing.TileOK {
		t.Fatalf("expected TileOK on an open grid, got %v", verdict)
	}
	if route.FinalX != 8 || route.FinalY != 2 {
		t.Errorf("expected the route to end at the target tile, got (%d,%d)", route.FinalX, route.FinalY)
	}
	if len(route.Waypoints) == 0 {
		t.Errorf("expected a non-empty waypoint list")
	}
}

func TestTileRouterReportsNearestWhenUnreachable(t *testing.T) {
	grid := NewGrid(20, 20)
	for y := int32(0); y < 20; y++ {
		grid.SetTerrain(10, y, pathing.TerrainCliff)
	}
	r := NewTileRouter(grid)
	budget := &pathing.SearchBudget{Limit: 2000}
	blocked := func(tx, ty int32) bool {
		return !grid.OnMap(tx, ty) || grid.Terrain(tx, ty) == pathing.TerrainCliff
	}

	verdict, route := r.Route(pathing.SearchNew, budget, 2, 2, 18, 2, blocked)
	if verdict != pathing.TileNearest {
		t.Fatalf("expected TileNearest with a complete wall in the way, got %v", verdict)
	}
	if route == nil || len(route.Waypoints) == 0 {
		t.Errorf("expected a best-effort route to the closest reachable tile")
	}
}

func TestTileRouterParksAndResumesOnBudget(t *testing.T) {
	grid := NewGrid(20, 20)
	r := NewTileRouter(grid)
	blocked := func(tx, ty int32) bool { return !grid.OnMap(tx, ty) }

	tiny := &pathing.SearchBudget{Limit: 1}
	verdict, route := r.Route(pathing.SearchNew, tiny, 0, 0, 15, 15, blocked)
	if verdict != pathing.TilePartial {
		t.Fatalf("expected TilePartial with a tiny budget, got %v", verdict)
	}
	if route != nil {
		t.Errorf("expected no route on a partial result")
	}

	verdict = pathing.TilePartial
	for i := 0; i < 500 && verdict == pathing.TilePartial; i++ {
		tiny.Consumed = 0
		verdict, route = r.Route(pathing.SearchContinue, tiny, 0, 0, 15, 15, blocked)
	}
	if verdict != pathing.TileOK {
		t.Fatalf("expected the resumed search to eventually finish, got %v", verdict)
	}
	if route.FinalX != 15 || route.FinalY != 15 {
		t.Errorf("expected the resumed route to reach the target, got (%d,%d)", route.FinalX, route.FinalY)
	}
}
