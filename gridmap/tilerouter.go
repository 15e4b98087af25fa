package gridmap

import "github.com/turnforge/ironfront/pathing"

// node is one tile A* open/closed-list entry, named and scored the way
// board.go's PathfindingNode is, with a pointer parent chain for
// reconstruction.
type node struct {
	x, y   int32
	g, h   int32
	parent *node
}

func (n *node) f() int32 { return n.g + n.h }

// straightCost and diagCost give the 8-neighbour move costs (the familiar
// 10/14 approximation of 1 and sqrt(2)), matching the relative weighting a
// grid A* needs without floating point.
const straightCost = 10
const diagCost = 14

var neighbourSteps = [8][3]int32{
	{0, 1, straightCost}, {0, -1, straightCost}, {1, 0, straightCost}, {-1, 0, straightCost},
	{1, 1, diagCost}, {1, -1, diagCost}, {-1, 1, diagCost}, {-1, -1, diagCost},
}

func heuristic(x, y, fx, fy int32) int32 {
	dx, dy := x-fx, y-fy
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dy*diagCost + (dx-dy)*straightCost
	}
	return dx*diagCost + (dy-dx)*straightCost
}

// tileSearch is one in-flight A* run, kept across TilePartial returns so a
// SearchContinue call resumes the same open/closed sets instead of
// restarting.
type tileSearch struct {
	sx, sy, fx, fy int32
	open           []*node
	closed         map[[2]int32]*node
}

func searchKey(sx, sy, fx, fy int32) [4]int32 { return [4]int32{sx, sy, fx, fy} }

// TileRouter is the per-hop tile A*, implementing pathing.TileRouter over a
// *Grid. It holds at most one parked search at a time, matching the single
// resumable slot the pathing.Driver itself owns.
type TileRouter struct {
	grid    *Grid
	parked  *tileSearch
	parkKey [4]int32
}

func NewTileRouter(grid *Grid) *TileRouter { return &TileRouter{grid: grid} }

func (r *TileRouter) Route(mode pathing.SearchMode, budget *pathing.SearchBudget, sx, sy, fx, fy int32, blocked pathing.BlockingPredicate) (pathing.TileVerdict, *pathing.AStarRoute) {
	key := searchKey(sx, sy, fx, fy)

	var s *tileSearch
	if mode == pathing.SearchContinue && r.parked != nil && r.parkKey == key {
		s = r.parked
	} else {
		if blocked(sx, sy) {
			return pathing.TileFailed, nil
		}
		start := &node{x: sx, y: sy, g: 0, h: heuristic(sx, sy, fx, fy)}
		s = &tileSearch{
			sx: sx, sy: sy, fx: fx, fy: fy,
			open:   []*node{start},
			closed: make(map[[2]int32]*node),
		}
	}
	r.parked, r.parkKey = nil, [4]int32{}

	for len(s.open) > 0 {
		if budget.Consumed > budget.Limit {
			r.parked, r.parkKey = s, key
			return pathing.TilePartial, nil
		}

		bestIdx := 0
		for i, n := range s.open {
			if n.f() < s.open[bestIdx].f() || (n.f() == s.open[bestIdx].f() && n.h < s.open[bestIdx].h) {
				bestIdx = i
			}
		}
		current := s.open[bestIdx]
		s.open = append(s.open[:bestIdx], s.open[bestIdx+1:]...)
		s.closed[[2]int32{current.x, current.y}] = current
		budget.Consumed++

		if current.x == fx && current.y == fy {
			return pathing.TileOK, reconstruct(current, fx, fy)
		}

		for _, step := range neighbourSteps {
			nx, ny := current.x+step[0], current.y+step[1]
			if _, done := s.closed[[2]int32{nx, ny}]; done {
				continue
			}
			if blocked(nx, ny) {
				continue
			}
			newG := current.g + step[2]

			var existing *node
			for _, n := range s.open {
				if n.x == nx && n.y == ny {
					existing = n
					break
				}
			}
			if existing == nil {
				s.open = append(s.open, &node{x: nx, y: ny, g: newG, h: heuristic(nx, ny, fx, fy), parent: current})
			} else if newG < existing.g {
				existing.g = newG
				existing.parent = current
			}
		}
	}

	// Open set exhausted without reaching the target: report the closest
	// node visited, mirroring fpath.c's ASR_NEAREST.
	if len(s.closed) == 0 {
		return pathing.TileFailed, nil
	}
	var nearest *node
	for _, n := range s.closed {
		if nearest == nil || n.h < nearest.h {
			nearest = n
		}
	}
	return pathing.TileNearest, reconstruct(nearest, nearest.x, nearest.y)
}

func reconstruct(n *node, finalX, finalY int32) *pathing.AStarRoute {
	var waypoints []pathing.TileCoord
	for cur := n; cur != nil; cur = cur.parent {
		waypoints = append([]pathing.TileCoord{{X: cur.x, Y: cur.y}}, waypoints...)
	}
	return &pathing.AStarRoute{Waypoints: waypoints, FinalX: finalX, FinalY: finalY}
}
