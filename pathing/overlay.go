package pathing

// gatewaySegmentTiles enumerates the tiles making up a gateway's segment.
func gatewaySegmentTiles(g *Gateway) []TileCoord {
	var tiles []TileCoord
	if g.Vertical() {
		for y := g.Y1; y <= g.Y2; y++ {
			tiles = append(tiles, TileCoord{X: g.X1, Y: y})
		}
	} else {
		for x := g.X1; x <= g.X2; x++ {
			tiles = append(tiles, TileCoord{X: x, Y: g.Y1})
		}
	}
	return tiles
}

// sideZone resolves which of a gateway's two zones is "this" side and
// which is the opposite side, per the ZONE1 flag.
func sideZone(g *Gateway) (this, opposite int) {
	if g.Flags&GatewayZone1 != 0 {
		return g.Zone1, g.Zone2
	}
	return g.Zone2, g.Zone1
}

// gatewayOverlay applies and later undoes the FPATHBLOCK scratch bits that
// funnel a tile A* hop through the chosen gateway pair (spec.md §4.4). It
// records exactly the tiles it set so clear() can undo precisely that set,
// even if the caller never reaches the matching clear on its own (the
// Driver always pairs apply/clear within one Route call, see §5).
type gatewayOverlay struct {
	touched []TileCoord
}

// apply sets FPATHBLOCK on every other non-water-link gateway touching
// zone, plus the 1-tile ring on the chosen side of psLast and the opposite
// side of psNext.
func (o *gatewayOverlay) apply(m MapReader, gateways []*Gateway, zone int, psLast, psNext *Gateway) {
	for _, g := range gateways {
		if g == psLast || g == psNext {
			continue
		}
		if g.Flags&GatewayWaterLink != 0 {
			continue
		}
		if g.Zone1 != zone && g.Zone2 != zone {
			continue
		}
		for _, t := range gatewaySegmentTiles(g) {
			o.set(m, t.X, t.Y)
		}
	}

	if psLast != nil {
		blockZone, _ := sideZone(psLast)
		o.ring(m, psLast, blockZone)
	}
	if psNext != nil {
		_, blockZone := sideZone(psNext)
		o.ring(m, psNext, blockZone)
	}
}

// ring marks the 1-tile border around a gateway's segment that lies in
// blockZone, skipping tiles inside the gateway itself and off-map tiles.
func (o *gatewayOverlay) ring(m MapReader, g *Gateway, blockZone int) {
	for tx := g.X1 - 1; tx <= g.X2+1; tx++ {
		for ty := g.Y1 - 1; ty <= g.Y2+1; ty++ {
			if g.ContainsWorld(TileCenter(TileCoord{X: tx, Y: ty})) {
				continue
			}
			if !m.OnMap(tx, ty) {
				continue
			}
			zone, ok := m.GatewayZone(tx, ty)
			if !ok || zone != blockZone {
				continue
			}
			o.set(m, tx, ty)
		}
	}
}

func (o *gatewayOverlay) set(m MapReader, tx, ty int32) {
	if m.ScratchBlocked(tx, ty) {
		return // already set by an earlier overlapping gateway/ring
	}
	m.SetScratchBlock(tx, ty, true)
	o.touched = append(o.touched, TileCoord{X: tx, Y: ty})
}

// clear undoes exactly the tiles this overlay set.
func (o *gatewayOverlay) clear(m MapReader) {
	for _, t := range o.touched {
		m.SetScratchBlock(t.X, t.Y, false)
	}
	o.touched = nil
}
