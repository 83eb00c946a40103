package canvas

import "math"

// SweepGradient represents an angular (conic) color transition around a
// center point. Colors sweep from StartAngle to EndAngle.
// It implements the Brush interface and supports multiple color stops
// and configurable extend modes.
//
// Example:
//
//	wheel := canvas.NewSweepGradient(50, 50, 0).
//	    AddColorStop(0, canvas.RGB(1, 0, 0)).
//	    AddColorStop(0.5, canvas.RGB(0, 0, 1)).
//	    AddColorStop(1, canvas.RGB(1, 0, 0))
type SweepGradient struct {
	Center     Point       // Center of the sweep
	StartAngle float64     // Start angle in radians
	EndAngle   float64     // End angle in radians
	Stops      []ColorStop // Color stops defining the gradient
	Extend     ExtendMode  // How gradient extends beyond bounds
}

// NewSweepGradient creates a new sweep (conic) gradient centered at (cx, cy).
// startAngle is the angle where the gradient begins (in radians).
// The gradient sweeps a full 360 degrees by default.
func NewSweepGradient(cx, cy, startAngle float64) *SweepGradient {
	return &SweepGradient{
		Center:     Point{X: cx, Y: cy},
		StartAngle: startAngle,
		EndAngle:   startAngle + 2*math.Pi,
		Stops:      nil,
		Extend:     ExtendPad,
	}
}

// SetEndAngle sets the end angle of the sweep.
// Returns the gradient for method chaining.
func (g *SweepGradient) SetEndAngle(endAngle float64) *SweepGradient {
	g.EndAngle = endAngle
	return g
}

// AddColorStop adds a color stop at the specified offset.
// Offset should be in the range [0, 1].
// Returns the gradient for method chaining.
func (g *SweepGradient) AddColorStop(offset float64, c RGBA) *SweepGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode for the gradient.
// Returns the gradient for method chaining.
func (g *SweepGradient) SetExtend(mode ExtendMode) *SweepGradient {
	g.Extend = mode
	return g
}

// brushMarker implements the Brush interface marker.
func (SweepGradient) brushMarker() {}

// ColorAt returns the color at the given point.
func (g *SweepGradient) ColorAt(x, y float64) RGBA {
	// Handle point at center (undefined angle)
	dx := x - g.Center.X
	dy := y - g.Center.Y
	if dx == 0 && dy == 0 {
		return firstStopColor(g.Stops)
	}

	// atan2 returns angle in range [-Pi, Pi]
	angle := math.Atan2(dy, dx)

	t := g.angleToT(angle)

	return colorAtOffset(g.Stops, t, g.Extend)
}

// angleToT converts an angle to a gradient parameter t in [0, 1].
func (g *SweepGradient) angleToT(angle float64) float64 {
	sweepRange := g.EndAngle - g.StartAngle

	// Handle zero sweep (degenerate case)
	if sweepRange == 0 {
		return 0
	}

	relativeAngle := angle - g.StartAngle
	relativeAngle = normalizeAngle(relativeAngle, sweepRange)

	return relativeAngle / sweepRange
}

// normalizeAngle normalizes an angle relative to a sweep direction.
func normalizeAngle(angle float64, sweepRange float64) float64 {
	twoPi := 2 * math.Pi

	if sweepRange > 0 {
		// Positive sweep: normalize to [0, 2*Pi)
		for angle < 0 {
			angle += twoPi
		}
		for angle >= twoPi {
			angle -= twoPi
		}
	} else {
		// Negative sweep: normalize to (-2*Pi, 0]
		for angle > 0 {
			angle -= twoPi
		}
		for angle <= -twoPi {
			angle += twoPi
		}
	}

	return angle
}
