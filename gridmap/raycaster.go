package gridmap

import "github.com/turnforge/ironfront/pathing"

// RayCaster samples a straight line in world space at half-tile steps, the
// square-grid equivalent of board.go's hex LineDraw/hexLerp.
type RayCaster struct{}

func NewRayCaster() *RayCaster { return &RayCaster{} }

const sampleStep = pathing.TileUnits / 2

func (RayCaster) Cast(sx, sy, fx, fy, maxLen int32) []pathing.WorldCoord {
	dx, dy := int64(fx-sx), int64(fy-sy)
	distSq := dx*dx + dy*dy
	if distSq == 0 {
		return []pathing.WorldCoord{{X: sx, Y: sy}}
	}

	fullLength := isqrt(distSq)
	length := fullLength
	if maxLen > 0 && length > int64(maxLen) {
		length = int64(maxLen)
	}
	// frac shortens the endpoint itself when the line is clamped, not just
	// the sample density towards the original (fx, fy).
	frac := float64(length) / float64(fullLength)
	ex, ey := float64(dx)*frac, float64(dy)*frac

	steps := int(length / sampleStep)
	if steps < 1 {
		steps = 1
	}

	samples := make([]pathing.WorldCoord, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		samples = append(samples, pathing.WorldCoord{
			X: sx + int32(ex*t),
			Y: sy + int32(ey*t),
		})
	}
	return samples
}

// isqrt is an integer square root via Newton's method, avoiding a
// math.Sqrt float round-trip for a plain distance clamp.
func isqrt(n int64) int64 {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
