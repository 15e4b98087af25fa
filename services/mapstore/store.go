package mapstore

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/turnforge/ironfront/gridmap"
	"github.com/turnforge/ironfront/pathing"
)

// Store wraps a *gorm.DB with the encode/decode steps needed to move a
// *gridmap.Grid and its gateway set in and out of postgres.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

// Save persists grid and gateways under name, overwriting any existing
// fixture of the same name.
func (s *Store) Save(name string, grid *gridmap.Grid, gateways []*pathing.Gateway) error {
	width, height := grid.Bounds()
	fixture := MapFixture{
		Name:      name,
		Width:     width,
		Height:    height,
		TerrainRL: encodeTerrain(grid, width, height),
		ZonesRL:   encodeZones(grid, width, height),
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("name = ?", name).Delete(&MapFixture{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&fixture).Error; err != nil {
			return err
		}
		for _, g := range gateways {
			var toIDs, flags []string
			for _, link := range g.Links {
				if link.To == nil {
					continue
				}
				toIDs = append(toIDs, strconv.Itoa(link.To.ID))
				flags = append(flags, strconv.Itoa(int(link.Flags)))
			}
			rec := GatewayRecord{
				FixtureID: fixture.ID,
				GatewayID: g.ID,
				X1:        g.X1, Y1: g.Y1, X2: g.X2, Y2: g.Y2,
				Zone1: g.Zone1, Zone2: g.Zone2,
				Flags:     uint8(g.Flags),
				LinkToIDs: strings.Join(toIDs, ","),
				LinkFlags: strings.Join(flags, ","),
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Load rebuilds a *gridmap.Grid and the gateway set previously saved under
// name, re-linking GatewayRecord.LinkToIDs back into live pointers.
func (s *Store) Load(name string) (*gridmap.Grid, []*pathing.Gateway, error) {
	var fixture MapFixture
	if err := s.db.Where("name = ?", name).First(&fixture).Error; err != nil {
		return nil, nil, fmt.Errorf("mapstore: load %q: %w", name, err)
	}

	grid := gridmap.NewGrid(fixture.Width, fixture.Height)
	if err := decodeTerrain(grid, fixture.TerrainRL, fixture.Width, fixture.Height); err != nil {
		return nil, nil, fmt.Errorf("mapstore: decode terrain for %q: %w", name, err)
	}
	decodeZones(grid, fixture.ZonesRL, fixture.Width, fixture.Height)

	var records []GatewayRecord
	if err := s.db.Where("fixture_id = ?", fixture.ID).Find(&records).Error; err != nil {
		return nil, nil, fmt.Errorf("mapstore: load gateways for %q: %w", name, err)
	}

	byID := make(map[int]*pathing.Gateway, len(records))
	gateways := make([]*pathing.Gateway, 0, len(records))
	for _, rec := range records {
		g := &pathing.Gateway{
			ID: rec.GatewayID,
			X1: rec.X1, Y1: rec.Y1, X2: rec.X2, Y2: rec.Y2,
			Zone1: rec.Zone1, Zone2: rec.Zone2,
			Flags: pathing.GatewayFlags(rec.Flags),
		}
		byID[g.ID] = g
		gateways = append(gateways, g)
	}
	for i, rec := range records {
		g := gateways[i]
		toIDs := splitInts(rec.LinkToIDs)
		flags := splitInts(rec.LinkFlags)
		for j, toID := range toIDs {
			to, ok := byID[toID]
			if !ok {
				continue
			}
			linkFlags := pathing.GatewayLinkFlags(0)
			if j < len(flags) {
				linkFlags = pathing.GatewayLinkFlags(flags[j])
			}
			g.Links = append(g.Links, pathing.GatewayLink{To: to, Flags: linkFlags})
		}
	}

	return grid, gateways, nil
}

func splitInts(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err == nil {
			out = append(out, n)
		}
	}
	return out
}
