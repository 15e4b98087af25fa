package pathing

import "log/slog"

// slotStaleFrames is how many frames a parked search may sit in the slot
// before UpdateTick expires it, freeing the slot for another unit even if
// nothing ever resumed it (a unit that died or was reassigned mid-search).
const slotStaleFrames = 5

// partialRouteSlot is the single resumable continuation the Driver holds at
// a time, replacing fpath.c's per-droid static locals with one explicit,
// owned object (spec.md §5).
type partialRouteSlot struct {
	unit        *Unit
	state       *resumeState
	parkedFrame int64

	// goalX, goalY are the caller's world-coordinate target at the moment
	// this slot was created. A unit changing its target frees the slot on
	// its own next call (spec.md §4.7/§5) instead of silently continuing a
	// stale search toward the old goal.
	goalX, goalY int32
}

// Driver is the frame-budgeted top-level entry point (spec.md §4.7): it
// repairs and shortcuts a request before ever falling through to the
// hierarchical planner, and owns the one partial-route slot that lets a
// search spill across frames without re-running from scratch.
type Driver struct {
	gw         GatewayRouter
	tiles      TileRouter
	mapr       MapReader
	rc         RayCaster
	formations FormationIndex
	units      UnitIndex
	clock      FrameClock
	actions    ActionBlockingCheck
	log        *slog.Logger

	planner *planner
	slot    *partialRouteSlot

	// forced, when non-nil, overrides blockingPredicateFor's derivation
	// from each unit's own Propulsion for every subsequent Route call.
	// Mirrors fpath.c's fpathSetBlockingTile global install (spec.md §6),
	// redesigned per spec.md §5 into explicit state the Driver owns
	// instead of a process-wide function pointer: an editor tool probing
	// "what would a hovercraft see as blocked here" calls
	// SetBlockingPredicate(PropHover) instead of reaching for a global.
	forced *Propulsion
}

// NewDriver wires the planner and its collaborators. log may be nil.
func NewDriver(gw GatewayRouter, tiles TileRouter, mapr MapReader, rc RayCaster, formations FormationIndex, units UnitIndex, clock FrameClock, actions ActionBlockingCheck, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.Default()
	}
	return &Driver{
		gw:         gw,
		tiles:      tiles,
		mapr:       mapr,
		rc:         rc,
		formations: formations,
		units:      units,
		clock:      clock,
		actions:    actions,
		log:        log,
		planner:    &planner{gw: gw, tiles: tiles, mapr: mapr, actions: actions},
	}
}

// Initialise drops any parked search and any forced blocking-predicate
// override, for use at level load / game start.
func (d *Driver) Initialise() {
	d.slot = nil
	d.forced = nil
}

// SetBlockingPredicate forces every subsequent Route call to classify
// tiles using class instead of deriving it from each unit's own
// Propulsion, until cleared by Initialise or another SetBlockingPredicate
// call. For editor tools and other callers that need to probe a
// propulsion class's blocking rules independent of any live unit.
func (d *Driver) SetBlockingPredicate(class Propulsion) {
	d.forced = &class
}

func (d *Driver) blockingFor(unit *Unit) BlockingPredicate {
	class := unit.Propulsion
	if d.forced != nil {
		class = *d.forced
	}
	return blockingPredicateFor(class, d.mapr)
}

// UpdateTick resets the shared per-frame search budget and expires a parked
// search whose unit died, left WAIT-ROUTE on its own, or has sat unresumed
// for too long (fpath.c's fpathUpdate, spec.md §4.7's update-tick rule).
func (d *Driver) UpdateTick(budget *SearchBudget) {
	budget.Consumed = 0
	if d.slot == nil {
		return
	}
	dead := !d.slot.unit.Alive
	abandoned := d.slot.unit.Move.Status != StatusWaitRoute
	stale := d.clock.FrameNumber()-d.slot.parkedFrame > slotStaleFrames
	if dead || abandoned || stale {
		d.log.Debug("pathing: parked search expired", "unit", d.slot.unit.ID)
		d.slot = nil
	}
}

// Route is the external entry point: plan (or continue planning) a path for
// unit towards (targetX, targetY), spending at most budget's remaining
// iterations this call.
func (d *Driver) Route(unit *Unit, targetX, targetY int32, budget *SearchBudget) Retval {
	assertf(unit != nil, "Route: invalid unit pointer")
	if !unit.Alive {
		return FAILED
	}

	blocked := d.blockingFor(unit)

	if d.slot != nil && d.slot.unit == unit {
		if d.slot.goalX == targetX && d.slot.goalY == targetY {
			return d.continueParked(unit, budget, blocked)
		}
		// The caller asked for a different target than the one this unit
		// parked toward; the stale search is abandoned rather than resumed
		// (spec.md §4.7/§5: a changed goal frees the slot immediately).
		d.log.Debug("pathing: parked goal changed, restarting", "unit", unit.ID)
		d.slot = nil
	}

	if budget.exceeded() {
		// The frame's shared budget is spent; no new search may start,
		// parked or not (fpath.c's fpathBudget check at fpathRoute's top).
		return WAIT
	}

	rawTarget := WorldCoord{X: targetX, Y: targetY}
	start := unit.Position

	if blocked(WorldTile(start).X, WorldTile(start).Y) {
		if repaired, ok := repairStart(start, blocked); ok {
			start = repaired
		}
	}

	clear, obstruction := endpointRaycast(d.rc, start, rawTarget, rayMaxLen, blocked)
	if !obstruction {
		setDirectRoute(unit, rawTarget)
		unit.Move.Status = StatusMoving
		return OK
	}

	targetTile := WorldTile(rawTarget)
	if blocked(targetTile.X, targetTile.Y) {
		rawTarget = clear
	}

	if findReusableRoute(unit, nil, start, rawTarget, d.formations, d.units, d.rc, blocked) {
		unit.Move.Status = StatusMoving
		return OK
	}

	effectiveClass := unit.Propulsion
	if d.forced != nil {
		effectiveClass = *d.forced
	}
	sTile, tTile := WorldTile(start), WorldTile(rawTarget)
	terrain := gatewayTerrainFor(effectiveClass)

	rv, resume := d.planner.plan(unit, terrain, sTile.X, sTile.Y, tTile.X, tTile.Y, budget, blocked)
	return d.settle(unit, rv, resume, targetX, targetY)
}

// continueParked resumes this unit's own previously-parked search.
func (d *Driver) continueParked(unit *Unit, budget *SearchBudget, blocked BlockingPredicate) Retval {
	if budget.exceeded() {
		return WAIT
	}
	rv, resume := d.planner.resume(d.slot.state, budget, blocked)
	return d.settle(unit, rv, resume, d.slot.goalX, d.slot.goalY)
}

// settle applies a planner verdict: parks a WAIT (arbitrating for the slot
// if another unit already holds it), falls a FAILED VTOL back to a direct
// route, and clears the slot on any terminal outcome.
func (d *Driver) settle(unit *Unit, rv Retval, resume *resumeState, rawTX, rawTY int32) Retval {
	switch rv {
	case WAIT:
		return d.park(unit, resume, rawTX, rawTY)

	case FAILED:
		if d.slot != nil && d.slot.unit == unit {
			d.slot = nil
		}
		if unit.Propulsion == PropLift {
			setDirectRoute(unit, WorldCoord{X: rawTX, Y: rawTY})
			unit.Move.Status = StatusMoving
			return OK
		}
		unit.Move.Status = StatusIdle
		d.log.Debug("pathing: route failed", "unit", unit.ID)
		return FAILED

	default: // OK
		if d.slot != nil && d.slot.unit == unit {
			d.slot = nil
		}
		unit.Move.Status = StatusMoving
		return OK
	}
}

// park either claims the single slot for unit's parked search or, if
// another unit already holds it, arbitrates via the externally-owned
// NextInLine cursor: the loser is told to RESCHEDULE (try again next frame,
// from scratch) instead of silently dropping its request. goalX, goalY is
// only meaningful when claiming a fresh slot (a re-park of the same unit
// already holding the slot keeps its originally recorded goal).
func (d *Driver) park(unit *Unit, resume *resumeState, goalX, goalY int32) Retval {
	if d.slot != nil && d.slot.unit == unit {
		d.slot.state = resume
		d.slot.parkedFrame = d.clock.FrameNumber()
		unit.Move.Status = StatusWaitRoute
		return WAIT
	}

	if d.slot == nil {
		d.slot = &partialRouteSlot{unit: unit, state: resume, parkedFrame: d.clock.FrameNumber(), goalX: goalX, goalY: goalY}
		unit.Move.Status = StatusWaitRoute
		return WAIT
	}

	next, ok := d.units.NextInLine()
	if ok && next == unit {
		d.log.Debug("pathing: slot reassigned", "from", d.slot.unit.ID, "to", unit.ID)
		d.slot = &partialRouteSlot{unit: unit, state: resume, parkedFrame: d.clock.FrameNumber(), goalX: goalX, goalY: goalY}
		unit.Move.Status = StatusWaitRoute
		return WAIT
	}

	unit.Move.Status = StatusIdle
	return RESCHEDULE
}
