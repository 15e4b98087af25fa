package pathing

// fakeMap is a minimal in-memory MapReader for unit tests: an open field
// with a configurable blocked set, no scroll margin narrower than the map
// itself unless a test says otherwise.
type fakeMap struct {
	width, height int32
	blocked       map[TileCoord]bool
	scratch       map[TileCoord]bool
	zones         map[TileCoord]int
	scrollMinX    int32
	scrollMinY    int32
	scrollMaxX    int32
	scrollMaxY    int32
}

func newFakeMap(width, height int32) *fakeMap {
	return &fakeMap{
		width: width, height: height,
		blocked:    map[TileCoord]bool{},
		scratch:    map[TileCoord]bool{},
		zones:      map[TileCoord]int{},
		scrollMinX: 0, scrollMinY: 0,
		scrollMaxX: width, scrollMaxY: height,
	}
}

func (m *fakeMap) OnMap(tx, ty int32) bool {
	return tx >= 0 && ty >= 0 && tx < m.width && ty < m.height
}

func (m *fakeMap) Bounds() (int32, int32) { return m.width, m.height }

func (m *fakeMap) ScrollBounds() (int32, int32, int32, int32) {
	return m.scrollMinX, m.scrollMinY, m.scrollMaxX, m.scrollMaxY
}

func (m *fakeMap) Terrain(tx, ty int32) TerrainType {
	if m.blocked[TileCoord{X: tx, Y: ty}] {
		return TerrainCliff
	}
	return TerrainLand
}

func (m *fakeMap) Occupied(tx, ty int32) bool      { return false }
func (m *fakeMap) NotBlocking(tx, ty int32) bool    { return false }
func (m *fakeMap) TallStructure(tx, ty int32) bool  { return false }
func (m *fakeMap) ScratchBlocked(tx, ty int32) bool { return m.scratch[TileCoord{X: tx, Y: ty}] }

func (m *fakeMap) SetScratchBlock(tx, ty int32, blocked bool) {
	t := TileCoord{X: tx, Y: ty}
	if blocked {
		m.scratch[t] = true
	} else {
		delete(m.scratch, t)
	}
}

func (m *fakeMap) GatewayZone(tx, ty int32) (int, bool) {
	z, ok := m.zones[TileCoord{X: tx, Y: ty}]
	return z, ok
}

func (m *fakeMap) block(tx, ty int32) { m.blocked[TileCoord{X: tx, Y: ty}] = true }
