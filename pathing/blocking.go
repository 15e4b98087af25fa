package pathing

// groundBlockingTile blocks on off-map margin, the FPATHBLOCK scratch bit,
// occupied-and-not-overridden tiles, cliffs, and water.
func groundBlockingTile(m MapReader, tx, ty int32) bool {
	if offMargin(m, tx, ty) {
		return true
	}
	if m.ScratchBlocked(tx, ty) {
		return true
	}
	if m.Occupied(tx, ty) && !m.NotBlocking(tx, ty) {
		return true
	}
	terrain := m.Terrain(tx, ty)
	return terrain == TerrainCliff || terrain == TerrainWater
}

// hoverBlockingTile is groundBlockingTile minus the water check.
func hoverBlockingTile(m MapReader, tx, ty int32) bool {
	if offMargin(m, tx, ty) {
		return true
	}
	if m.ScratchBlocked(tx, ty) {
		return true
	}
	if m.Occupied(tx, ty) && !m.NotBlocking(tx, ty) {
		return true
	}
	return m.Terrain(tx, ty) == TerrainCliff
}

// liftBlockingTile (VTOL) only cares about the off-map margin and tall
// structures.
func liftBlockingTile(m MapReader, tx, ty int32) bool {
	if offMapBounds(m, tx, ty) {
		return true
	}
	return m.TallStructure(tx, ty)
}

// liftSlideBlockingTile exists for map-edge sliding: it blocks only the
// off-map margin, never terrain or structures.
func liftSlideBlockingTile(m MapReader, tx, ty int32) bool {
	return offMapBounds(m, tx, ty)
}

// offMargin blocks anything within 1 tile of the scroll bounds (the
// visible/active region), used by the ground and hover predicates.
func offMargin(m MapReader, tx, ty int32) bool {
	minX, minY, maxX, maxY := m.ScrollBounds()
	return tx < minX+1 || ty < minY+1 || tx >= maxX-1 || ty >= maxY-1
}

// offMapBounds blocks anything within 1 tile of the true map edge, used by
// the lift predicates (VTOLs ignore the scroll-bound margin).
func offMapBounds(m MapReader, tx, ty int32) bool {
	width, height := m.Bounds()
	return tx < 1 || ty < 1 || tx >= width-1 || ty >= height-1
}

// blockingPredicateFor returns the pure predicate for a propulsion class,
// bound to a map reader, with no installed global state — callers pass it
// explicitly down the call chain.
func blockingPredicateFor(class Propulsion, m MapReader) BlockingPredicate {
	switch class {
	case PropHover:
		return func(tx, ty int32) bool { return hoverBlockingTile(m, tx, ty) }
	case PropLift:
		return func(tx, ty int32) bool { return liftBlockingTile(m, tx, ty) }
	default:
		return func(tx, ty int32) bool { return groundBlockingTile(m, tx, ty) }
	}
}

func gatewayTerrainFor(class Propulsion) GatewayTerrainMask {
	if class == PropGround {
		return GatewayTerrainLand
	}
	return GatewayTerrainAll
}

// GroundBlockingTile, HoverBlockingTile and LiftSlideBlockingTile are the
// query helpers editor tools and other callers may use directly, per the
// external interface in spec.md §6.
func GroundBlockingTile(m MapReader, tx, ty int32) bool {
	width, height := m.Bounds()
	assertf(tx >= 0 && ty >= 0 && tx < width && ty < height, "GroundBlockingTile: off map (%d,%d)", tx, ty)
	return groundBlockingTile(m, tx, ty)
}

func HoverBlockingTile(m MapReader, tx, ty int32) bool {
	width, height := m.Bounds()
	assertf(tx >= 0 && ty >= 0 && tx < width && ty < height, "HoverBlockingTile: off map (%d,%d)", tx, ty)
	return hoverBlockingTile(m, tx, ty)
}

func LiftSlideBlockingTile(m MapReader, tx, ty int32) bool { return liftSlideBlockingTile(m, tx, ty) }
