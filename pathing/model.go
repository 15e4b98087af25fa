package pathing

// setDirectRoute forces a one-waypoint plan straight at the raw target,
// bypassing the planner entirely.
func setDirectRoute(u *Unit, target WorldCoord) {
	u.Move.Waypoints = []TileCoord{WorldTile(target)}
	u.Move.DestinationX = target.X
	u.Move.DestinationY = target.Y
}

// SetDirectRoute is the external entry point editor tools and the driver's
// VTOL safety net use to force a direct route.
func SetDirectRoute(u *Unit, targetX, targetY int32) {
	assertf(u != nil, "SetDirectRoute: invalid unit pointer")
	setDirectRoute(u, WorldCoord{X: targetX, Y: targetY})
}

// appendRoute appends an A* hop's waypoints onto the move control's plan,
// bounded by TravelSize, and advances the destination to the hop's final
// tile centre.
func appendRoute(mc *MoveControl, route *AStarRoute) {
	for _, w := range route.Waypoints {
		if len(mc.Waypoints) >= TravelSize {
			break
		}
		mc.Waypoints = append(mc.Waypoints, w)
	}
	center := TileCenter(TileCoord{X: route.FinalX, Y: route.FinalY})
	mc.DestinationX = center.X
	mc.DestinationY = center.Y
}

// routeCloser reports whether route's final tile is strictly closer
// (squared Euclidean distance) to the raw target than the move control's
// current last waypoint. A nil or empty route is never closer; any other
// route is closer when the move control has no waypoints yet.
func routeCloser(mc *MoveControl, route *AStarRoute, tx, ty int32) bool {
	if route == nil || len(route.Waypoints) == 0 {
		return false
	}
	if len(mc.Waypoints) == 0 {
		return true
	}
	prev := TileCenter(mc.Waypoints[len(mc.Waypoints)-1])
	pdx, pdy := int64(prev.X-tx), int64(prev.Y-ty)
	prevDist := pdx*pdx + pdy*pdy

	next := TileCenter(TileCoord{X: route.FinalX, Y: route.FinalY})
	ndx, ndy := int64(next.X-tx), int64(next.Y-ty)
	nextDist := ndx*ndx + ndy*ndy

	return nextDist < prevDist
}

// adoptIfCloser truncates mc's plan and replaces it with route's waypoints
// when route is closer to the target, per spec.md §4.5's "adopt the closer
// suffix" step. Reports whether it adopted.
func adoptIfCloser(mc *MoveControl, route *AStarRoute, tx, ty int32) bool {
	if !routeCloser(mc, route, tx, ty) {
		return false
	}
	mc.Waypoints = mc.Waypoints[:0]
	appendRoute(mc, route)
	return true
}
