package pathing

// gatewayCoords picks the crossing tile for a gateway: the walkable tile on
// its segment nearest the segment's midpoint, falling back to the raw
// midpoint tile if every tile on the segment is blocked. This is
// fpathGatewayCoords from fpath.c; the tile A* it feeds works in tile
// coordinates throughout, so unlike the original (which converts to world
// units immediately) this stays in tile space until a caller needs a
// world-space point.
func gatewayCoords(g *Gateway, blocked BlockingPredicate) TileCoord {
	mid := TileCoord{X: (g.X1 + g.X2) / 2, Y: (g.Y1 + g.Y2) / 2}

	best := -1
	var bestX, bestY int32
	var bestDist int32 = -1

	if g.Vertical() {
		for y := g.Y1; y <= g.Y2; y++ {
			if blocked(g.X1, y) {
				continue
			}
			d := y - mid.Y
			if d < 0 {
				d = -d
			}
			if best == -1 || d < bestDist {
				best, bestDist = 1, d
				bestX, bestY = g.X1, y
			}
		}
	} else {
		for x := g.X1; x <= g.X2; x++ {
			if blocked(x, g.Y1) {
				continue
			}
			d := x - mid.X
			if d < 0 {
				d = -d
			}
			if best == -1 || d < bestDist {
				best, bestDist = 1, d
				bestX, bestY = x, g.Y1
			}
		}
	}

	if best == -1 {
		return mid
	}
	return TileCoord{X: bestX, Y: bestY}
}
