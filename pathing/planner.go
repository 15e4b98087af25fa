package pathing

// planner runs the hierarchical cascade of spec.md §4.5: gateway-graph A*
// to get a chain of gateways, then a bounded tile A* across each hop,
// stitched together with the overlay of §4.4 and the link-blaming retry of
// fpathGatewayRoute.
type planner struct {
	gw      GatewayRouter
	tiles   TileRouter
	mapr    MapReader
	actions ActionBlockingCheck
}

// maxGatewayRetries bounds the blame-and-retry loop. fpath.c relies on the
// monotonically growing set of ignored gateways/links to terminate on its
// own; this cap only guards against a pathological collaborator that keeps
// handing back the same failed chain.
const maxGatewayRetries = 64

// plan is the entry point for a brand-new (non-resumed) route request. It
// returns the verdict for this call plus, on WAIT, the resumeState needed to
// continue the same search on a later frame.
func (p *planner) plan(unit *Unit, terrain GatewayTerrainMask, sx, sy, tx, ty int32, budget *SearchBudget, blocked BlockingPredicate) (Retval, *resumeState) {
	gateways := p.gw.AllGateways()
	clearGatewayIgnore(gateways)

	// A brand-new route replaces whatever the unit was previously following
	// instead of appending onto it (spec.md §4.5 step 1's "empty the move
	// control waypoints").
	unit.Move.Waypoints = unit.Move.Waypoints[:0]

	for tries := 0; ; tries++ {
		if tries > maxGatewayRetries {
			return FAILED, nil
		}

		verdict, chain := p.gw.Route(unit.PlayerID, terrain, sx, sy, tx, ty)
		noChain := false
		switch verdict {
		case GWNoZone, GWSameZone:
			chain = nil
			noChain = true
		case GWFailed:
			// fpath.c's isVtolDroid branch (original_source/src/fpath.c:652):
			// a VTOL has nowhere sensible to fall back to short of a direct
			// route, so the whole search fails; everyone else still tries an
			// intra-zone tile route.
			if unit.Propulsion == PropLift {
				return FAILED, nil
			}
			chain = nil
			noChain = true
		case GWOK, GWNearest:
			// walk chain below
		}

		rv, resume, blamed := p.walkChain(unit, nil, chain, noChain, sx, sy, tx, ty, budget, blocked)
		if blamed {
			continue // a link was blamed; ask the gateway router again
		}
		if rv != WAIT {
			clearGatewayIgnore(gateways)
		}
		return rv, resume
	}
}

// resume continues a previously-parked search at the hop it was parked at,
// without re-querying the gateway router.
func (p *planner) resume(state *resumeState, budget *SearchBudget, blocked BlockingPredicate) (Retval, *resumeState) {
	verdict, route := p.tiles.Route(SearchContinue, budget, state.linkX, state.linkY, state.hopX, state.hopY, blocked)
	rv, next := p.afterHop(state.unit, verdict, route, state, budget, blocked)
	if rv != WAIT {
		clearGatewayIgnore(p.gw.AllGateways())
	}
	return rv, next
}

// walkChain drives the per-hop tile A* across a gateway chain plus the
// final hop to the true target, starting from startGW as the "last gateway
// crossed" (nil if this is the very first hop of the route). noChain
// reports whether the gateway router returned no chain at all for this
// attempt (NO-ZONE/SAME-ZONE/a non-lift GWFailed fallback) — it governs
// whether a NEAREST or FAILED hop is the end of the line (spec.md §4.5 step
// 4c) or a candidate for the blame-and-retry cascade (step 4d). It returns
// (verdict, resumeState-on-WAIT, blamed-a-link-so-retry-from-scratch).
func (p *planner) walkChain(unit *Unit, startGW *Gateway, chain []*Gateway, noChain bool, sx, sy, tx, ty int32, budget *SearchBudget, blocked BlockingPredicate) (Retval, *resumeState, bool) {
	linkX, linkY := sx, sy
	lastGW := startGW
	// adoptIfCloser/routeCloser compare against world-space tile centres, but
	// sx,sy,tx,ty here are tile coordinates (spec.md §3) — convert once.
	targetWorld := TileCenter(TileCoord{X: tx, Y: ty})

	for i := 0; i <= len(chain); i++ {
		var hopX, hopY int32
		var next *Gateway
		last := i == len(chain)
		if last {
			hopX, hopY = tx, ty
		} else {
			next = chain[i]
			crossing := gatewayCoords(next, blocked)
			hopX, hopY = crossing.X, crossing.Y
		}

		zone := hopZone(lastGW, next)
		overlay := &gatewayOverlay{}
		overlay.apply(p.mapr, p.gw.AllGateways(), zone, lastGW, next)
		verdict, route := p.tiles.Route(SearchNew, budget, linkX, linkY, hopX, hopY, blocked)
		overlay.clear(p.mapr)

		switch verdict {
		case TilePartial:
			state := &resumeState{
				unit:    unit,
				chain:   chain,
				noChain: noChain,
				index:   i,
				lastGW:  lastGW,
				linkX:   linkX,
				linkY:   linkY,
				hopX:    hopX,
				hopY:    hopY,
				rawTX:   tx,
				rawTY:   ty,
			}
			return WAIT, state, false

		case TileOK:
			appendRoute(&unit.Move, route)
			linkX, linkY = hopX, hopY
			lastGW = next
			if last {
				adoptIfCloser(&unit.Move, route, targetWorld.X, targetWorld.Y)
				return OK, nil, false
			}
			continue

		case TileNearest:
			if p.actions != nil && p.actions.IsRouteBlockingWall(route.FinalX, route.FinalY) {
				appendRoute(&unit.Move, route)
				return OK, nil, false
			}
			adoptIfCloser(&unit.Move, route, targetWorld.X, targetWorld.Y)
			if noChain {
				return OK, nil, false
			}
			blameLink(lastGW, next)
			return FAILED, nil, true

		case TileFailed:
			adoptIfCloser(&unit.Move, route, targetWorld.X, targetWorld.Y)
			if noChain {
				return FAILED, nil, false
			}
			blameLink(lastGW, next)
			return FAILED, nil, true
		}
	}
	return OK, nil, false
}

// afterHop applies a resumed hop's verdict using the same rules as the
// first pass through walkChain, then continues walking any remaining
// chain entries. One difference: a NEAREST or FAILED hop on a real chain
// blames the link and ends this call with FAILED; no fresh gateway route
// is requested on the resume path, unlike plan's retry loop.
func (p *planner) afterHop(unit *Unit, verdict TileVerdict, route *AStarRoute, state *resumeState, budget *SearchBudget, blocked BlockingPredicate) (Retval, *resumeState) {
	// adoptIfCloser/routeCloser compare against world-space tile centres, but
	// state.rawTX/rawTY are tile coordinates (spec.md §3) — convert once.
	targetWorld := TileCenter(TileCoord{X: state.rawTX, Y: state.rawTY})

	switch verdict {
	case TilePartial:
		return WAIT, state

	case TileNearest:
		if p.actions != nil && p.actions.IsRouteBlockingWall(route.FinalX, route.FinalY) {
			appendRoute(&unit.Move, route)
			return OK, nil
		}
		adoptIfCloser(&unit.Move, route, targetWorld.X, targetWorld.Y)
		if state.noChain {
			return OK, nil
		}
		blameLink(state.lastGW, hopGateway(state))
		return FAILED, nil

	case TileFailed:
		adoptIfCloser(&unit.Move, route, targetWorld.X, targetWorld.Y)
		if state.noChain {
			return FAILED, nil
		}
		blameLink(state.lastGW, hopGateway(state))
		return FAILED, nil

	case TileOK:
		appendRoute(&unit.Move, route)
	}

	if state.index >= len(state.chain) {
		// Clean exit from the chain walk (spec.md §4.5 step 5): the final
		// hop just completed normally.
		adoptIfCloser(&unit.Move, route, targetWorld.X, targetWorld.Y)
		return OK, nil
	}

	remaining := state.chain[state.index+1:]
	startGW := hopGateway(state)
	rv, resume, blamed := p.walkChain(unit, startGW, remaining, state.noChain, state.hopX, state.hopY, state.rawTX, state.rawTY, budget, blocked)
	if blamed {
		return FAILED, nil
	}
	return rv, resume
}

func hopGateway(state *resumeState) *Gateway {
	if state.index < len(state.chain) {
		return state.chain[state.index]
	}
	return nil
}

// hopZone resolves which zone the overlay should wall off for a hop between
// lastGW and next, using whichever endpoint is present to read the side
// flag (spec.md §4.4).
func hopZone(lastGW, next *Gateway) int {
	if next != nil {
		zone, _ := sideZone(next)
		return zone
	}
	if lastGW != nil {
		_, zone := sideZone(lastGW)
		return zone
	}
	return 0
}

// clearGatewayIgnore resets the IGNORE gateway flag and BLOCKED link flags
// left by a previous blame-and-retry cycle. Called before every brand-new
// gateway route attempt and on every non-WAIT exit (spec.md §5).
func clearGatewayIgnore(gateways []*Gateway) {
	for _, g := range gateways {
		g.Flags &^= GatewayIgnore
		for i := range g.Links {
			g.Links[i].Flags &^= LinkBlocked
		}
	}
}

// blameLink marks the gateway(s) responsible for a failed hop so the next
// gateway-route attempt avoids the same chain. This is fpathBlockGatewayLink
// from fpath.c: a missing endpoint means the other one is simply
// unreachable and gets ignored outright; two present endpoints mean the
// specific link between them is blocked instead.
func blameLink(lastGW, next *Gateway) {
	switch {
	case lastGW == nil && next != nil:
		next.Flags |= GatewayIgnore
	case next == nil && lastGW != nil:
		lastGW.Flags |= GatewayIgnore
	case lastGW != nil && next != nil:
		for i := range lastGW.Links {
			if lastGW.Links[i].Flags&LinkChild != 0 {
				lastGW.Links[i].Flags |= LinkBlocked
			}
		}
		for i := range next.Links {
			if next.Links[i].Flags&LinkParent != 0 {
				next.Links[i].Flags |= LinkBlocked
			}
		}
	}
}

// resumeState is the explicit, driver-owned object that replaces the
// original's file-scope static locals (bFirstRoute, psGWRoute, psCurrRoute,
// psLastGW, linkx, linky) so a parked search can resume without any hidden
// state surviving between calls.
type resumeState struct {
	unit    *Unit
	chain   []*Gateway
	noChain bool
	index   int
	lastGW  *Gateway
	linkX   int32
	linkY   int32
	hopX    int32
	hopY    int32
	rawTX   int32
	rawTY   int32
}
