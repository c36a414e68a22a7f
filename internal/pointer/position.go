package pointer

import "math"

// Position is a 2-D point in the input coordinate space (pixels or cells).
type Position struct {
	X float64
	Y float64
}

// Delta is the displacement between two positions.
type Delta struct {
	DX float64
	DY float64
}

// Sub returns the displacement from o to p.
func (p Position) Sub(o Position) Delta {
	return Delta{DX: p.X - o.X, DY: p.Y - o.Y}
}

// Distance returns the straight-line length of the displacement.
func (d Delta) Distance() float64 {
	return math.Hypot(d.DX, d.DY)
}

// Angle returns the direction of the displacement in radians, in (-pi, pi].
func (d Delta) Angle() float64 {
	return math.Atan2(d.DY, d.DX)
}
