package pathing

import "testing"

func TestRepairStartPicksNearestOpenNeighbor(t *testing.T) {
	blocked := func(tx, ty int32) bool {
		return tx == 5 && ty == 5 // only the start tile itself is blocked
	}
	pos := TileCenter(TileCoord{X: 5, Y: 5})

	repaired, ok := repairStart(pos, blocked)
	if !ok {
		t.Fatalf("expected repairStart to find an open neighbor")
	}
	tile := WorldTile(repaired)
	if tile.X == 5 && tile.Y == 5 {
		t.Errorf("expected repairStart to move off the blocked tile, got %v", tile)
	}
}

func TestRepairStartFailsWhenFullySurrounded(t *testing.T) {
	blocked := func(tx, ty int32) bool { return true }
	pos := TileCenter(TileCoord{X: 5, Y: 5})

	if _, ok := repairStart(pos, blocked); ok {
		t.Errorf("expected repairStart to fail when every neighbor is blocked")
	}
}

// fakeRayCaster samples along the straight world-space line in fixed steps,
// just enough fidelity for endpointRaycast's tests.
type fakeRayCaster struct{ step int32 }

func (r fakeRayCaster) Cast(sx, sy, fx, fy, maxLen int32) []WorldCoord {
	steps := 8
	var out []WorldCoord
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		out = append(out, WorldCoord{
			X: sx + int32(float64(fx-sx)*t),
			Y: sy + int32(float64(fy-sy)*t),
		})
	}
	return out
}

func TestEndpointRaycastClearPath(t *testing.T) {
	rc := fakeRayCaster{}
	start := TileCenter(TileCoord{X: 0, Y: 0})
	target := TileCenter(TileCoord{X: 10, Y: 0})
	blocked := func(tx, ty int32) bool { return false }

	clear, obstruction := endpointRaycast(rc, start, target, 20*TileUnits, blocked)
	if obstruction {
		t.Errorf("expected no obstruction on a fully clear line")
	}
	// The sample on the target itself ends the fold, so clear is the centre
	// of the last tile sampled before it: (9,0), beside the target's (10,0).
	if want := TileCenter(TileCoord{X: 9, Y: 0}); clear != want {
		t.Errorf("expected clear to settle on the last tile before the target %v, got %v", want, clear)
	}
}

func TestEndpointRaycastStopsAtObstruction(t *testing.T) {
	rc := fakeRayCaster{}
	start := TileCenter(TileCoord{X: 0, Y: 0})
	target := TileCenter(TileCoord{X: 10, Y: 0})
	blocked := func(tx, ty int32) bool { return tx >= 5 }

	_, obstruction := endpointRaycast(rc, start, target, 20*TileUnits, blocked)
	if !obstruction {
		t.Errorf("expected the blocked half of the line to report an obstruction")
	}
}
