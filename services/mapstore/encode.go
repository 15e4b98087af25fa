package mapstore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/turnforge/ironfront/gridmap"
	"github.com/turnforge/ironfront/pathing"
)

// encodeTerrain/encodeZones run-length encode a grid's per-tile terrain and
// zone data in row-major order, as "value:count" pairs, so a large mostly-
// uniform map stays small as a single text column.

func encodeTerrain(grid *gridmap.Grid, width, height int32) string {
	var b strings.Builder
	var run int
	var cur pathing.TerrainType = -1
	flush := func() {
		if run > 0 {
			fmt.Fprintf(&b, "%d:%d,", cur, run)
		}
	}
	for y := int32(0); y < height; y++ {
		for x := int32(0); x < width; x++ {
			t := grid.Terrain(x, y)
			if t == cur {
				run++
				continue
			}
			flush()
			cur, run = t, 1
		}
	}
	flush()
	return strings.TrimSuffix(b.String(), ",")
}

func decodeTerrain(grid *gridmap.Grid, rl string, width, height int32) error {
	values, err := decodeRL(rl)
	if err != nil {
		return err
	}
	x, y := int32(0), int32(0)
	for _, run := range values {
		for i := 0; i < run.count; i++ {
			if y >= height {
				return fmt.Errorf("mapstore: terrain run-length overflows %dx%d grid", width, height)
			}
			grid.SetTerrain(x, y, pathing.TerrainType(run.value))
			x++
			if x >= width {
				x = 0
				y++
			}
		}
	}
	return nil
}

func encodeZones(grid *gridmap.Grid, width, height int32) string {
	var b strings.Builder
	var run int
	cur := -2 // sentinel distinct from "no zone" (-1) and any real zone
	flush := func() {
		if run > 0 {
			fmt.Fprintf(&b, "%d:%d,", cur, run)
		}
	}
	for y := int32(0); y < height; y++ {
		for x := int32(0); x < width; x++ {
			zone := -1
			if z, ok := grid.GatewayZone(x, y); ok {
				zone = z
			}
			if zone == cur {
				run++
				continue
			}
			flush()
			cur, run = zone, 1
		}
	}
	flush()
	return strings.TrimSuffix(b.String(), ",")
}

func decodeZones(grid *gridmap.Grid, rl string, width, height int32) {
	values, err := decodeRL(rl)
	if err != nil {
		return
	}
	x, y := int32(0), int32(0)
	for _, run := range values {
		for i := 0; i < run.count; i++ {
			if y >= height {
				return
			}
			if run.value != -1 {
				grid.SetGatewayZone(x, y, int32(run.value))
			}
			x++
			if x >= width {
				x = 0
				y++
			}
		}
	}
}

type rlRun struct {
	value int
	count int
}

func decodeRL(rl string) ([]rlRun, error) {
	if rl == "" {
		return nil, nil
	}
	pairs := strings.Split(rl, ",")
	runs := make([]rlRun, 0, len(pairs))
	for _, pair := range pairs {
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("mapstore: malformed run-length pair %q", pair)
		}
		value, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("mapstore: malformed run-length value %q: %w", pair, err)
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("mapstore: malformed run-length count %q: %w", pair, err)
		}
		runs = append(runs, rlRun{value: value, count: count})
	}
	return runs, nil
}
