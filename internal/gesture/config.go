package gesture

import "math"

// Default thresholds
const (
	DefaultMinDistanceX = 20.0
	DefaultMinDistanceY = 20.0
	DefaultTapZones     = 3
	DefaultYAngleWindow = math.Pi / 2
)

// Config holds the recognizer thresholds. It is captured at construction and
// immutable for the recognizer's lifetime.
type Config struct {
	// MinDistanceX and MinDistanceY are the per-axis thresholds below which a
	// completed drag on that axis is reported as a cancel instead of a slide.
	MinDistanceX float64
	MinDistanceY float64

	// TapZones is the number of equal-width horizontal zones a stationary tap
	// is classified into. Only 2 and 3 produce positional touch actions; any
	// other value yields the generic touch action.
	TapZones int

	// YAngleWindow is the full angular window, in radians, centered on the
	// vertical axis within which a drag direction counts as vertical.
	YAngleWindow float64
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		MinDistanceX: DefaultMinDistanceX,
		MinDistanceY: DefaultMinDistanceY,
		TapZones:     DefaultTapZones,
		YAngleWindow: DefaultYAngleWindow,
	}
}

// normalized fills zero-valued fields with defaults so a partially populated
// Config behaves like the stock one.
func (c Config) normalized() Config {
	if c.MinDistanceX <= 0 {
		c.MinDistanceX = DefaultMinDistanceX
	}
	if c.MinDistanceY <= 0 {
		c.MinDistanceY = DefaultMinDistanceY
	}
	if c.TapZones == 0 {
		c.TapZones = DefaultTapZones
	}
	if c.YAngleWindow <= 0 {
		c.YAngleWindow = DefaultYAngleWindow
	}
	return c
}

// minDistance is the combined gate that decides whether an axis locks at all.
// It is deliberately distinct from the per-axis cancel thresholds: a short
// diagonal can lock an axis and still end in a cancel.
func (c Config) minDistance() float64 {
	return math.Min(c.MinDistanceX, c.MinDistanceY)
}
