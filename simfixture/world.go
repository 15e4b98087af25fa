package simfixture

import "github.com/turnforge/ironfront/pathing"

// World is the in-memory unit roster and frame counter a Driver needs as
// its FormationIndex/UnitIndex/FrameClock/ActionBlockingCheck collaborators.
// A real simulation would back these with the live game state; here they
// are thin slices built straight from a Scenario.
type World struct {
	Units []*pathing.Unit
	frame int64
	queue []*pathing.Unit // units parked RESCHEDULE, waiting their turn
}

func NewWorld(units []*pathing.Unit) *World {
	return &World{Units: units}
}

func (w *World) ByID(id string) *pathing.Unit {
	for _, u := range w.Units {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (w *World) FormationAt(pos pathing.WorldCoord) (pathing.FormationID, bool) {
	for _, u := range w.Units {
		if u.Alive && u.Position == pos && u.Formation != nil {
			return u.Formation, true
		}
	}
	return nil, false
}

func (w *World) PlayerUnits(player int) []*pathing.Unit {
	var out []*pathing.Unit
	for _, u := range w.Units {
		if u.PlayerID == player {
			out = append(out, u)
		}
	}
	return out
}

// NextInLine hands back the oldest unit queued for a rescheduled search,
// FIFO. It is a demo stand-in for the externally-owned next-in-line
// cursor, not a model of how a real game arbitrates that turn.
func (w *World) NextInLine() (*pathing.Unit, bool) {
	if len(w.queue) == 0 {
		return nil, false
	}
	u := w.queue[0]
	w.queue = w.queue[1:]
	return u, true
}

func (w *World) Enqueue(u *pathing.Unit) { w.queue = append(w.queue, u) }

func (w *World) FrameNumber() int64 { return w.frame }

func (w *World) Tick() { w.frame++ }

// IsRouteBlockingWall treats any NEAREST landing as action-relevant: a CLI
// harness has no action layer of its own to consult, so it reports every
// short landing as a wall, the conservative choice.
func (w *World) IsRouteBlockingWall(tx, ty int32) bool { return true }
