package gridmap

import (
	"testing"

	"github.com/turnforge/ironfront/pathing"
)

func zoneGrid() (*Grid, []*pathing.Gateway) {
	grid := NewGrid(30, 10)
	for y := int32(0); y < 10; y++ {
		for x := int32(0); x < 10; x++ {
			grid.SetGatewayZone(x, y, 1)
		}
		for x := int32(10); x < 20; x++ {
			grid.SetGatewayZone(x, y, 2)
		}
		for x := int32(20); x < 30; x++ {
			grid.SetGatewayZone(x, y, 3)
		}
	}

	g12 := &pathing.Gateway{ID: 1, X1: 10, Y1: 0, X2: 10, Y2: 9, Zone1: 1, Zone2: 2}
	g23 := &pathing.Gateway{ID: 2, X1: 20, Y1: 0, X2: 20, Y2: 9, Zone1: 2, Zone2: 3}
	g12.Links = []pathing.GatewayLink{{To: g23, Flags: pathing.LinkChild}}
	g23.Links = []pathing.GatewayLink{{To: g12, Flags: pathing.LinkParent}}

	return grid, []*pathing.Gateway{g12, g23}
}

func TestGatewayRouterSameZoneShortCircuits(t *testing.T) {
	grid, gateways := zoneGrid()
	r := NewGatewayRouter(grid, gateways)

	verdict, chain := r.Route(0, pathing.GatewayTerrainLand, 1, 1, 5, 5)
	if verdict != pathing.GWSameZone {
		t.Fatalf("expected GWSameZone within zone 1, got %v", verdict)
	}
	if chain != nil {
		t.Errorf("expected no chain for a same-zone route")
	}
}

func TestGatewayRouterFindsTwoHopChain(t *testing.T) {
	grid, gateways := zoneGrid()
	r := NewGatewayRouter(grid, gateways)

	verdict, chain := r.Route(0, pathing.GatewayTerrainLand, 1, 1, 25, 1)
	if verdict != pathing.GWOK {
		t.Fatalf("expected GWOK crossing zones 1->2->3, got %v", verdict)
	}
	if len(chain) != 2 {
		t.Fatalf("expected a two-gateway chain, got %d", len(chain))
	}
	if chain[0].ID != 1 || chain[1].ID != 2 {
		t.Errorf("expected chain [g12, g23], got %v", chain)
	}
}

func TestGatewayRouterRespectsIgnoreFlag(t *testing.T) {
	grid, gateways := zoneGrid()
	gateways[0].Flags |= pathing.GatewayIgnore
	r := NewGatewayRouter(grid, gateways)

	verdict, _ := r.Route(0, pathing.GatewayTerrainLand, 1, 1, 25, 1)
	if verdict != pathing.GWFailed {
		t.Fatalf("expected GWFailed once the only crossing gateway is ignored, got %v", verdict)
	}
}
