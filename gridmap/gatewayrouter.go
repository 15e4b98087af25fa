package gridmap

import "github.com/turnforge/ironfront/pathing"

// GatewayRouter is the gateway-graph A*, implemented as a breadth-first
// search over the shared Gateway/Link records a *Grid was built with: the
// graph is small and unweighted (one hop per gateway crossing), so BFS
// finds the shortest gateway chain exactly as well as A* would.
type GatewayRouter struct {
	grid     *Grid
	gateways []*pathing.Gateway
}

// NewGatewayRouter builds a router over a precomputed gateway set. Each
// Gateway's Links should already point at its graph neighbours; Flags and
// per-link Flags are mutated in place by Route (GatewayZone1 to record
// traversal direction) and by the pathing planner's blame/ignore logic.
func NewGatewayRouter(grid *Grid, gateways []*pathing.Gateway) *GatewayRouter {
	return &GatewayRouter{grid: grid, gateways: gateways}
}

func (r *GatewayRouter) AllGateways() []*pathing.Gateway { return r.gateways }

func (r *GatewayRouter) eligible(g *pathing.Gateway, terrain pathing.GatewayTerrainMask) bool {
	if g.Flags&pathing.GatewayIgnore != 0 {
		return false
	}
	if terrain == pathing.GatewayTerrainLand && g.Flags&pathing.GatewayWaterLink != 0 {
		return false
	}
	return true
}

func (r *GatewayRouter) touchesZone(g *pathing.Gateway, zone int) bool {
	return g.Zone1 == zone || g.Zone2 == zone
}

// setDirection marks which of a gateway's two zones is "this side" for the
// traversal that just crossed it coming FROM fromZone, so the planner's
// sideZone() reads back the zone the current hop is walling off.
func setDirection(g *pathing.Gateway, fromZone int) {
	if g.Zone1 == fromZone {
		g.Flags |= pathing.GatewayZone1
	} else {
		g.Flags &^= pathing.GatewayZone1
	}
}

func otherZone(g *pathing.Gateway, zone int) int {
	if g.Zone1 == zone {
		return g.Zone2
	}
	return g.Zone1
}

func (r *GatewayRouter) Route(player int, terrain pathing.GatewayTerrainMask, sx, sy, fx, fy int32) (pathing.GatewayVerdict, []*pathing.Gateway) {
	startZone, ok1 := r.grid.GatewayZone(sx, sy)
	targetZone, ok2 := r.grid.GatewayZone(fx, fy)
	if !ok1 || !ok2 {
		return pathing.GWNoZone, nil
	}
	if startZone == targetZone {
		return pathing.GWSameZone, nil
	}

	type frontierEntry struct {
		gw       *pathing.Gateway
		fromZone int // the zone we were in when we crossed into gw
	}

	visited := map[*pathing.Gateway]bool{}
	parent := map[*pathing.Gateway]*pathing.Gateway{}
	var queue []frontierEntry

	for _, g := range r.gateways {
		if !r.eligible(g, terrain) || !r.touchesZone(g, startZone) {
			continue
		}
		visited[g] = true
		setDirection(g, startZone)
		parent[g] = nil
		queue = append(queue, frontierEntry{gw: g, fromZone: startZone})
	}

	var goal *pathing.Gateway
	for _, e := range queue {
		if r.touchesZone(e.gw, targetZone) {
			goal = e.gw
			break
		}
	}

	for head := 0; head < len(queue) && goal == nil; head++ {
		cur := queue[head]
		arrivedZone := otherZone(cur.gw, cur.fromZone)

		for _, link := range cur.gw.Links {
			if link.Flags&pathing.LinkBlocked != 0 {
				continue
			}
			next := link.To
			if next == nil || visited[next] || !r.eligible(next, terrain) {
				continue
			}
			if !r.touchesZone(next, arrivedZone) {
				continue
			}
			visited[next] = true
			setDirection(next, arrivedZone)
			parent[next] = cur.gw
			queue = append(queue, frontierEntry{gw: next, fromZone: arrivedZone})
			if r.touchesZone(next, targetZone) {
				goal = next
				break
			}
		}
	}

	if goal == nil {
		if len(queue) == 0 {
			return pathing.GWFailed, nil
		}
		// Reachable zones exhausted without finding the target's zone:
		// hand back the best partial chain, to the nearest gateway found.
		nearest := queue[len(queue)-1].gw
		return pathing.GWNearest, buildChain(parent, nearest)
	}

	return pathing.GWOK, buildChain(parent, goal)
}

func buildChain(parent map[*pathing.Gateway]*pathing.Gateway, goal *pathing.Gateway) []*pathing.Gateway {
	var chain []*pathing.Gateway
	for g := goal; g != nil; g = parent[g] {
		chain = append([]*pathing.Gateway{g}, chain...)
	}
	return chain
}
