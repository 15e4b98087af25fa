// Package simfixture loads scenario fixtures — a grid, its gateways and
// zones, a unit roster, and a list of moves — and realizes them into the
// live collaborators pathing.Driver needs. It is shared by ironfront-sim
// and ironfront-repl so both entrypoints build a Driver the same way.
package simfixture

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/turnforge/ironfront/gridmap"
	"github.com/turnforge/ironfront/pathing"
)

// Scenario is a fixture file describing a grid, its gateways and zones, a
// roster of units, and the moves to issue against the Driver. It is read
// with viper so the same file can be YAML, JSON, or TOML.
type Scenario struct {
	Width    int32             `mapstructure:"width"`
	Height   int32             `mapstructure:"height"`
	Blocked  [][2]int32        `mapstructure:"blocked"`
	Zones    []ScenarioZone    `mapstructure:"zones"`
	Gateways []ScenarioGateway `mapstructure:"gateways"`
	Units    []ScenarioUnit    `mapstructure:"units"`
	Moves    []ScenarioMove    `mapstructure:"moves"`
	Ticks    int               `mapstructure:"ticks"`
	Budget   int               `mapstructure:"budget"`
}

type ScenarioZone struct {
	Zone int   `mapstructure:"zone"`
	X1   int32 `mapstructure:"x1"`
	Y1   int32 `mapstructure:"y1"`
	X2   int32 `mapstructure:"x2"`
	Y2   int32 `mapstructure:"y2"`
}

type ScenarioGateway struct {
	ID    int   `mapstructure:"id"`
	X1    int32 `mapstructure:"x1"`
	Y1    int32 `mapstructure:"y1"`
	X2    int32 `mapstructure:"x2"`
	Y2    int32 `mapstructure:"y2"`
	Zone1 int   `mapstructure:"zone1"`
	Zone2 int   `mapstructure:"zone2"`
	Water bool  `mapstructure:"water"`
	Links []int `mapstructure:"links"`
}

type ScenarioUnit struct {
	ID         string `mapstructure:"id"`
	Player     int    `mapstructure:"player"`
	Propulsion string `mapstructure:"propulsion"`
	X          int32  `mapstructure:"x"`
	Y          int32  `mapstructure:"y"`
	Formation  string `mapstructure:"formation"`
}

type ScenarioMove struct {
	Unit    string `mapstructure:"unit"`
	TargetX int32  `mapstructure:"targetx"`
	TargetY int32  `mapstructure:"targety"`
}

// Load reads and unmarshals a scenario fixture at path.
func Load(path string) (*Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("simfixture: read scenario %s: %w", path, err)
	}

	var s Scenario
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("simfixture: parse scenario %s: %w", path, err)
	}
	if s.Width == 0 || s.Height == 0 {
		return nil, fmt.Errorf("simfixture: scenario %s needs a non-zero width and height", path)
	}
	if s.Budget == 0 {
		s.Budget = 200
	}
	if s.Ticks == 0 {
		s.Ticks = 20
	}
	return &s, nil
}

func propulsionFor(name string) pathing.Propulsion {
	switch name {
	case "hover":
		return pathing.PropHover
	case "lift", "vtol":
		return pathing.PropLift
	default:
		return pathing.PropGround
	}
}

// Build realizes a Scenario into a live grid, gateway set, and unit roster.
func (s *Scenario) Build() (*gridmap.Grid, []*pathing.Gateway, []*pathing.Unit) {
	grid := gridmap.NewGrid(s.Width, s.Height)
	grid.SetScrollBounds(0, 0, s.Width, s.Height)

	for _, b := range s.Blocked {
		grid.SetTerrain(b[0], b[1], pathing.TerrainCliff)
	}
	for _, z := range s.Zones {
		for y := z.Y1; y <= z.Y2; y++ {
			for x := z.X1; x <= z.X2; x++ {
				grid.SetGatewayZone(x, y, int32(z.Zone))
			}
		}
	}

	byID := make(map[int]*pathing.Gateway, len(s.Gateways))
	gateways := make([]*pathing.Gateway, 0, len(s.Gateways))
	for _, sg := range s.Gateways {
		g := &pathing.Gateway{
			ID: sg.ID,
			X1: sg.X1, Y1: sg.Y1, X2: sg.X2, Y2: sg.Y2,
			Zone1: sg.Zone1, Zone2: sg.Zone2,
		}
		if sg.Water {
			g.Flags |= pathing.GatewayWaterLink
		}
		byID[sg.ID] = g
		gateways = append(gateways, g)
	}
	for _, sg := range s.Gateways {
		g := byID[sg.ID]
		for _, toID := range sg.Links {
			to, ok := byID[toID]
			if !ok {
				continue
			}
			g.Links = append(g.Links, pathing.GatewayLink{To: to})
			to.Links = append(to.Links, pathing.GatewayLink{To: g})
		}
	}

	units := make([]*pathing.Unit, 0, len(s.Units))
	for _, su := range s.Units {
		units = append(units, &pathing.Unit{
			ID:         su.ID,
			PlayerID:   su.Player,
			Propulsion: propulsionFor(su.Propulsion),
			Position:   pathing.WorldCoord{X: su.X, Y: su.Y},
			Alive:      true,
			Formation:  su.Formation,
		})
	}

	return grid, gateways, units
}

// NewDriver wires grid/gateways/units into a ready pathing.Driver over a
// fresh World, the same collaborator set ironfront-sim and ironfront-repl
// both need.
func NewDriver(sc *Scenario) (*pathing.Driver, *World) {
	grid, gateways, units := sc.Build()
	w := NewWorld(units)
	driver := pathing.NewDriver(
		gridmap.NewGatewayRouter(grid, gateways),
		gridmap.NewTileRouter(grid),
		grid,
		gridmap.NewRayCaster(),
		w, w, w, w,
		nil,
	)
	driver.Initialise()
	return driver, w
}
