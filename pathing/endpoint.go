package pathing

// neighborOffsets is the fixed 8-neighborhood scan order used by start
// repair: S, SW, W, NW, N, NE, E, SE.
var neighborOffsets = [8]TileCoord{
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: -1, Y: -1},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
}

// repairStart relocates a blocked start position to the nearest walkable
// neighbor (by squared Euclidean distance from the original world
// position, ties broken by scan order). Reports false if every neighbor is
// blocked.
func repairStart(pos WorldCoord, blocked BlockingPredicate) (WorldCoord, bool) {
	startTile := WorldTile(pos)
	best := -1
	bestDistSq := int64(-1)
	for i, off := range neighborOffsets {
		tx, ty := startTile.X+off.X, startTile.Y+off.Y
		if blocked(tx, ty) {
			continue
		}
		center := TileCenter(TileCoord{X: tx, Y: ty})
		dx, dy := int64(center.X-pos.X), int64(center.Y-pos.Y)
		distSq := dx*dx + dy*dy
		if best == -1 || distSq < bestDistSq {
			best = i
			bestDistSq = distSq
		}
	}
	if best == -1 {
		return WorldCoord{}, false
	}
	off := neighborOffsets[best]
	return TileCenter(TileCoord{X: startTile.X + off.X, Y: startTile.Y + off.Y}), true
}

// endpointRaycast casts from start towards target and returns the centre
// of the last sampled tile that was walkable ("clear", or target itself if
// none was) plus whether any sampled tile before the cutoff was blocked
// ("obstruction"). The fold stops at the first sample at or past the target
// (by dot-product sign), so the target's own sample is never recorded. This
// replaces the original's mutable-file-scope callback with a plain fold
// over RayCaster.Cast.
func endpointRaycast(rc RayCaster, start, target WorldCoord, maxLen int32, blocked BlockingPredicate) (clear WorldCoord, obstruction bool) {
	vx, vy := int64(start.X-target.X), int64(start.Y-target.Y)
	clear = target
	for _, p := range rc.Cast(start.X, start.Y, target.X, target.Y, maxLen) {
		px, py := int64(p.X-target.X), int64(p.Y-target.Y)
		if px*vx+py*vy <= 0 {
			break
		}
		tile := WorldTile(p)
		if blocked(tile.X, tile.Y) {
			obstruction = true
		} else {
			clear = WorldCoord{X: TileOrigin(p.X) + TileUnits/2, Y: TileOrigin(p.Y) + TileUnits/2}
		}
	}
	return clear, obstruction
}
