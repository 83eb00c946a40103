package canvas

import "math"

// RadialGradient represents a radial color transition.
// Colors radiate from the center out to the end radius.
// It implements the Brush interface and supports multiple color stops
// and configurable extend modes.
//
// Example:
//
//	gradient := canvas.NewRadialGradient(50, 50, 0, 50).
//	    AddColorStop(0, canvas.White).
//	    AddColorStop(1, canvas.Black)
type RadialGradient struct {
	Center      Point       // Center of the gradient circle
	StartRadius float64     // Inner radius where gradient begins (t=0)
	EndRadius   float64     // Outer radius where gradient ends (t=1)
	Stops       []ColorStop // Color stops defining the gradient
	Extend      ExtendMode  // How gradient extends beyond bounds
}

// NewRadialGradient creates a new radial gradient.
// The gradient transitions from startRadius to endRadius around (cx, cy).
func NewRadialGradient(cx, cy, startRadius, endRadius float64) *RadialGradient {
	return &RadialGradient{
		Center:      Point{X: cx, Y: cy},
		StartRadius: startRadius,
		EndRadius:   endRadius,
		Stops:       nil,
		Extend:      ExtendPad,
	}
}

// AddColorStop adds a color stop at the specified offset.
// Offset should be in the range [0, 1].
// Returns the gradient for method chaining.
func (g *RadialGradient) AddColorStop(offset float64, c RGBA) *RadialGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode for the gradient.
// Returns the gradient for method chaining.
func (g *RadialGradient) SetExtend(mode ExtendMode) *RadialGradient {
	g.Extend = mode
	return g
}

// brushMarker implements the Brush interface marker.
func (RadialGradient) brushMarker() {}

// ColorAt returns the color at the given point.
func (g *RadialGradient) ColorAt(x, y float64) RGBA {
	// Handle degenerate gradient (zero radius difference)
	radiusDiff := g.EndRadius - g.StartRadius
	if radiusDiff == 0 {
		return firstStopColor(g.Stops)
	}

	dx := x - g.Center.X
	dy := y - g.Center.Y
	distance := math.Sqrt(dx*dx + dy*dy)

	t := (distance - g.StartRadius) / radiusDiff

	return colorAtOffset(g.Stops, t, g.Extend)
}
