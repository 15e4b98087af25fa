package tracedump

import (
	"testing"

	"github.com/turnforge/ironfront/pathing"
)

func TestNewSnapshotCapturesUnitState(t *testing.T) {
	unit := &pathing.Unit{
		ID:       "alpha",
		Position: pathing.WorldCoord{X: 300, Y: 40},
	}
	unit.Move.Waypoints = []pathing.TileCoord{{X: 1, Y: 1}, {X: 2, Y: 1}}

	snap := NewSnapshot(unit, "FAILED", 900, 40, 42)

	if snap.UnitID != "alpha" {
		t.Errorf("UnitID = %q, want %q", snap.UnitID, "alpha")
	}
	if snap.Verdict != "FAILED" {
		t.Errorf("Verdict = %q, want %q", snap.Verdict, "FAILED")
	}
	wantTile := pathing.WorldTile(unit.Position)
	if snap.StartTile != wantTile {
		t.Errorf("StartTile = %v, want %v", snap.StartTile, wantTile)
	}
	if snap.TargetX != 900 || snap.TargetY != 40 {
		t.Errorf("target = (%d,%d), want (900,40)", snap.TargetX, snap.TargetY)
	}
	if snap.Frame != 42 {
		t.Errorf("Frame = %d, want 42", snap.Frame)
	}
	if len(snap.Waypoints) != 2 {
		t.Fatalf("Waypoints = %v, want 2 entries", snap.Waypoints)
	}

	// NewSnapshot must copy, not alias, the unit's waypoint slice.
	unit.Move.Waypoints[0] = pathing.TileCoord{X: 99, Y: 99}
	if snap.Waypoints[0] == unit.Move.Waypoints[0] {
		t.Errorf("snapshot aliased the unit's live waypoint slice")
	}
}

func TestUploadKeyFormat(t *testing.T) {
	snap := Snapshot{UnitID: "bravo", Verdict: "TIMEOUT", Frame: 7}
	key := objectKey(snap)
	if key != "traces/TIMEOUT/7-bravo.json" {
		t.Errorf("key = %q, want %q", key, "traces/TIMEOUT/7-bravo.json")
	}
}
