package canvas

import (
	"image"
	"io"
)

// Canvas is a 2D drawing surface. It owns a pixel buffer, a renderer,
// the current path, paint state, and a transformation matrix stack.
//
// A Canvas is not safe for concurrent use. Draw on separate canvases
// from separate goroutines instead.
type Canvas struct {
	width    int
	height   int
	pixmap   *Pixmap
	renderer Renderer
	path     *Path
	paint    *Paint
	matrix   Matrix
	stack    []Matrix
}

// New creates a new drawing canvas with the given dimensions.
// Optional Option arguments can be used for dependency injection:
//
//	// Default software rendering
//	dc := canvas.New(800, 600)
//
//	// Custom renderer
//	dc := canvas.New(800, 600, canvas.WithRenderer(r))
func New(width, height int, opts ...Option) *Canvas {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pixmap := options.pixmap
	if pixmap == nil {
		pixmap = NewPixmap(width, height)
	}

	renderer := options.renderer
	if renderer == nil {
		renderer = NewSoftwareRenderer(width, height)
	}

	return &Canvas{
		width:    width,
		height:   height,
		pixmap:   pixmap,
		renderer: renderer,
		path:     NewPath(),
		paint:    NewPaint(),
		matrix:   Identity(),
		stack:    make([]Matrix, 0, 8),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Pixmap returns the underlying pixel buffer.
func (c *Canvas) Pixmap() *Pixmap {
	return c.pixmap
}

// Image returns the canvas contents as an image.
func (c *Canvas) Image() image.Image {
	return c.pixmap.ToImage()
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}

// EncodePNG writes the canvas to w in PNG format.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.pixmap.EncodePNG(w)
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col RGBA) {
	c.pixmap.Clear(col)
}

// SetBrush sets the brush used for fill and stroke operations.
func (c *Canvas) SetBrush(b Brush) {
	c.paint.Brush = b
}

// SetColor sets a solid color for fill and stroke operations.
func (c *Canvas) SetColor(col RGBA) {
	c.paint.Brush = Solid(col)
}

// SetRGB sets a solid opaque color from components in [0, 1].
func (c *Canvas) SetRGB(r, g, b float64) {
	c.SetColor(RGB(r, g, b))
}

// SetRGBA sets a solid color from components in [0, 1].
func (c *Canvas) SetRGBA(r, g, b, a float64) {
	c.SetColor(RGBA2(r, g, b, a))
}

// SetLineWidth sets the line width for stroking.
func (c *Canvas) SetLineWidth(width float64) {
	c.paint.LineWidth = width
}

// LineWidth returns the current line width.
func (c *Canvas) LineWidth() float64 {
	return c.paint.LineWidth
}

// SetFillRule sets the fill rule for paths.
func (c *Canvas) SetFillRule(rule FillRule) {
	c.paint.FillRule = rule
}

// MoveTo starts a new subpath at the given point.
func (c *Canvas) MoveTo(x, y float64) {
	p := c.matrix.TransformPoint(Pt(x, y))
	c.path.MoveTo(p.X, p.Y)
}

// LineTo adds a line to the current path.
func (c *Canvas) LineTo(x, y float64) {
	p := c.matrix.TransformPoint(Pt(x, y))
	c.path.LineTo(p.X, p.Y)
}

// QuadraticTo adds a quadratic Bezier curve to the current path.
func (c *Canvas) QuadraticTo(cx, cy, x, y float64) {
	cp := c.matrix.TransformPoint(Pt(cx, cy))
	p := c.matrix.TransformPoint(Pt(x, y))
	c.path.QuadraticTo(cp.X, cp.Y, p.X, p.Y)
}

// CubicTo adds a cubic Bezier curve to the current path.
func (c *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	cp1 := c.matrix.TransformPoint(Pt(c1x, c1y))
	cp2 := c.matrix.TransformPoint(Pt(c2x, c2y))
	p := c.matrix.TransformPoint(Pt(x, y))
	c.path.CubicTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p.X, p.Y)
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	c.path.Close()
}

// ClearPath clears the current path.
func (c *Canvas) ClearPath() {
	c.path.Clear()
}

// Fill fills the current path and clears it.
// Returns an error if the rendering operation fails.
func (c *Canvas) Fill() error {
	err := c.renderer.Fill(c.pixmap, c.path, c.paint)
	c.path.Clear()
	return err
}

// FillPreserve fills the current path without clearing it.
func (c *Canvas) FillPreserve() error {
	return c.renderer.Fill(c.pixmap, c.path, c.paint)
}

// Stroke strokes the current path and clears it.
// Returns an error if the rendering operation fails.
func (c *Canvas) Stroke() error {
	err := c.renderer.Stroke(c.pixmap, c.path, c.paint)
	c.path.Clear()
	return err
}

// StrokePreserve strokes the current path without clearing it.
func (c *Canvas) StrokePreserve() error {
	return c.renderer.Stroke(c.pixmap, c.path, c.paint)
}

// Push saves the current transformation matrix.
func (c *Canvas) Push() {
	c.stack = append(c.stack, c.matrix)
}

// Pop restores the most recently saved transformation matrix.
func (c *Canvas) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.matrix = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Identity resets the transformation matrix.
func (c *Canvas) Identity() {
	c.matrix = Identity()
}

// Translate applies a translation to the current matrix.
func (c *Canvas) Translate(x, y float64) {
	c.matrix = c.matrix.Multiply(Translate(x, y))
}

// Scale applies a scale to the current matrix.
func (c *Canvas) Scale(x, y float64) {
	c.matrix = c.matrix.Multiply(Scale(x, y))
}

// Rotate applies a rotation (in radians) to the current matrix.
func (c *Canvas) Rotate(angle float64) {
	c.matrix = c.matrix.Multiply(Rotate(angle))
}

// TransformPoint transforms a point by the current matrix.
func (c *Canvas) TransformPoint(x, y float64) (float64, float64) {
	p := c.matrix.TransformPoint(Pt(x, y))
	return p.X, p.Y
}

// appendTransformed appends a user-space path to the current path,
// applying the current transformation matrix.
func (c *Canvas) appendTransformed(p *Path) {
	if !c.matrix.IsIdentity() {
		p = p.Transform(c.matrix)
	}
	c.path.Append(p)
}

// DrawLine adds a line between two points to the current path.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) {
	c.MoveTo(x1, y1)
	c.LineTo(x2, y2)
}

// DrawRectangle adds a rectangle to the current path.
func (c *Canvas) DrawRectangle(x, y, w, h float64) {
	p := NewPath()
	p.Rectangle(x, y, w, h)
	c.appendTransformed(p)
}

// DrawCircle adds a circle to the current path.
func (c *Canvas) DrawCircle(x, y, r float64) {
	p := NewPath()
	p.Circle(x, y, r)
	c.appendTransformed(p)
}

// DrawArc adds a circular arc to the current path.
// Angles are in radians; the arc runs from angle1 to angle2.
func (c *Canvas) DrawArc(x, y, r, angle1, angle2 float64) {
	p := NewPath()
	p.Arc(x, y, r, angle1, angle2)
	c.appendTransformed(p)
}
