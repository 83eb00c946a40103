package canvas

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Paint represents the styling information for drawing.
type Paint struct {
	// Brush is the fill or stroke brush.
	Brush Brush

	// LineWidth is the width of strokes.
	LineWidth float64

	// FillRule is the fill rule for paths.
	FillRule FillRule
}

// NewPaint creates a new Paint with default values.
func NewPaint() *Paint {
	return &Paint{
		Brush:     Solid(Black),
		LineWidth: 1.0,
		FillRule:  FillRuleNonZero,
	}
}

// ColorAt returns the brush color at the given position.
func (p *Paint) ColorAt(x, y float64) RGBA {
	if p.Brush != nil {
		return p.Brush.ColorAt(x, y)
	}
	return Black
}
