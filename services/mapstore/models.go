package mapstore

import "time"

// MapFixture is a named gridmap snapshot: terrain and zone ids packed as
// flat run-length strings so a whole map round-trips in one row.
type MapFixture struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex"`
	Width     int32
	Height    int32
	TerrainRL string // run-length encoded terrain, "value:count" pairs of TerrainType numbers
	ZonesRL   string // run-length encoded zone ids, -1 meaning "no zone"
	CreatedAt time.Time
}

// GatewayRecord is one persisted Gateway, with its graph edges stored as a
// comma-separated list of neighbour gateway IDs (within the same fixture)
// rather than live pointers.
type GatewayRecord struct {
	ID         uint `gorm:"primarykey"`
	FixtureID  uint `gorm:"index"`
	GatewayID  int
	X1, Y1     int32
	X2, Y2     int32
	Zone1      int
	Zone2      int
	Flags      uint8
	LinkToIDs  string // comma-separated GatewayID list, parallel to LinkFlags
	LinkFlags  string // comma-separated GatewayLinkFlags, one per LinkToIDs entry
}
