package pathing

const rayMaxLen = 20 * TileUnits

// firstBetweenIndex finds the first waypoint index i in path such that our
// start s and the teammate's current position p lie on opposite sides of
// the half-plane through path[i] — i.e. the dot product of (s - p_i) and
// (p - p_i) is negative. This is fpathFindFirstRoutePoint from fpath.c,
// read against tile-centre world coordinates for dimensional consistency.
func firstBetweenIndex(path []TileCoord, s, p WorldCoord) (int, bool) {
	for i, wp := range path {
		c := TileCenter(wp)
		vx1, vy1 := int64(s.X-c.X), int64(s.Y-c.Y)
		vx2, vy2 := int64(p.X-c.X), int64(p.Y-c.Y)
		if vx1*vx2+vy1*vy2 < 0 {
			return i, true
		}
	}
	return 0, false
}

// findReusableRoute looks for a same-formation teammate whose existing
// path this unit can adopt a suffix of. It is the opportunistic
// route-reuse shortcut of spec.md §4.3: the first teammate with a usable,
// line-of-sight-reachable waypoint wins, and its suffix is copied wholesale
// into self's move control.
func findReusableRoute(self *Unit, parked *Unit, start, rawTarget WorldCoord, formations FormationIndex, units UnitIndex, rc RayCaster, blocked BlockingPredicate) bool {
	formation, ok := formations.FormationAt(rawTarget)
	if !ok {
		return false
	}

	for _, other := range units.PlayerUnits(self.PlayerID) {
		if other == self || other == parked || !other.Alive {
			continue
		}
		if other.Formation != formation || len(other.Move.Waypoints) == 0 {
			continue
		}

		index, found := firstBetweenIndex(other.Move.Waypoints, start, other.Position)
		if !found {
			continue
		}

		target := TileCenter(other.Move.Waypoints[index])
		_, obstruction := endpointRaycast(rc, start, target, rayMaxLen, blocked)
		if obstruction {
			continue
		}

		// Destination is deliberately left untouched here, matching
		// fpath.c's fpathFindRoute: only the waypoint suffix is copied.
		self.Move.Waypoints = append([]TileCoord(nil), other.Move.Waypoints[index:]...)
		return true
	}
	return false
}
