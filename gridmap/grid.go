// Package gridmap is a concrete, in-memory implementation of the
// collaborator interfaces pathing.Driver needs: the terrain/occupancy grid
// itself, the per-hop tile A*, the gateway-graph A*, and the line-of-sight
// raycaster. It plays the role the original's map.c/astar.c/gateway.cpp
// played alongside fpath.c, rebuilt for a square tile grid in the style of
// the teacher's HexBoard/HexPathfinder (board.go).
package gridmap

import "github.com/turnforge/ironfront/pathing"

// Grid is a fixed-size rectangular map of tiles. It implements
// pathing.MapReader directly; callers needing the richer collaborator
// interfaces (GatewayRouter, TileRouter, RayCaster) build those on top of
// a *Grid.
type Grid struct {
	width, height int32

	terrain   []pathing.TerrainType
	occupied  []bool
	noBlock   []bool // NOT_BLOCKING override, set per tile by the caller
	tall      []bool // tall structures, relevant to VTOL blocking only
	scratch   []bool // FPATHBLOCK scratch bit the gateway overlay toggles
	zones     []int32
	hasZone   []bool

	scrollMinX, scrollMinY, scrollMaxX, scrollMaxY int32
}

// NewGrid allocates a width x height grid with no scroll margin (the full
// map is "on screen"); call SetScrollBounds to narrow it.
func NewGrid(width, height int32) *Grid {
	n := int(width * height)
	g := &Grid{
		width: width, height: height,
		terrain:  make([]pathing.TerrainType, n),
		occupied: make([]bool, n),
		noBlock:  make([]bool, n),
		tall:     make([]bool, n),
		scratch:  make([]bool, n),
		zones:    make([]int32, n),
		hasZone:  make([]bool, n),
	}
	g.scrollMinX, g.scrollMinY = 0, 0
	g.scrollMaxX, g.scrollMaxY = width, height
	return g
}

func (g *Grid) index(tx, ty int32) (int, bool) {
	if tx < 0 || ty < 0 || tx >= g.width || ty >= g.height {
		return 0, false
	}
	return int(ty*g.width + tx), true
}

// SetScrollBounds narrows the "on-screen" margin the ground/hover blocking
// predicates respect, independent of the true map edge the lift predicates
// use.
func (g *Grid) SetScrollBounds(minX, minY, maxX, maxY int32) {
	g.scrollMinX, g.scrollMinY, g.scrollMaxX, g.scrollMaxY = minX, minY, maxX, maxY
}

func (g *Grid) SetTerrain(tx, ty int32, t pathing.TerrainType) {
	if i, ok := g.index(tx, ty); ok {
		g.terrain[i] = t
	}
}

func (g *Grid) SetOccupied(tx, ty int32, occupied bool) {
	if i, ok := g.index(tx, ty); ok {
		g.occupied[i] = occupied
	}
}

func (g *Grid) SetNotBlocking(tx, ty int32, notBlocking bool) {
	if i, ok := g.index(tx, ty); ok {
		g.noBlock[i] = notBlocking
	}
}

func (g *Grid) SetTallStructure(tx, ty int32, tall bool) {
	if i, ok := g.index(tx, ty); ok {
		g.tall[i] = tall
	}
}

func (g *Grid) SetGatewayZone(tx, ty int32, zone int32) {
	if i, ok := g.index(tx, ty); ok {
		g.zones[i], g.hasZone[i] = zone, true
	}
}

func (g *Grid) OnMap(tx, ty int32) bool {
	_, ok := g.index(tx, ty)
	return ok
}

func (g *Grid) Bounds() (width, height int32) { return g.width, g.height }

func (g *Grid) ScrollBounds() (minX, minY, maxX, maxY int32) {
	return g.scrollMinX, g.scrollMinY, g.scrollMaxX, g.scrollMaxY
}

func (g *Grid) Terrain(tx, ty int32) pathing.TerrainType {
	if i, ok := g.index(tx, ty); ok {
		return g.terrain[i]
	}
	return pathing.TerrainCliff
}

func (g *Grid) Occupied(tx, ty int32) bool {
	i, ok := g.index(tx, ty)
	return ok && g.occupied[i]
}

func (g *Grid) NotBlocking(tx, ty int32) bool {
	i, ok := g.index(tx, ty)
	return ok && g.noBlock[i]
}

func (g *Grid) TallStructure(tx, ty int32) bool {
	i, ok := g.index(tx, ty)
	return ok && g.tall[i]
}

func (g *Grid) ScratchBlocked(tx, ty int32) bool {
	i, ok := g.index(tx, ty)
	return ok && g.scratch[i]
}

func (g *Grid) SetScratchBlock(tx, ty int32, blocked bool) {
	if i, ok := g.index(tx, ty); ok {
		g.scratch[i] = blocked
	}
}

func (g *Grid) GatewayZone(tx, ty int32) (zone int, ok bool) {
	i, exists := g.index(tx, ty)
	if !exists || !g.hasZone[i] {
		return 0, false
	}
	return int(g.zones[i]), true
}
