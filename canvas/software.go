package canvas

import (
	"github.com/somnia-art/somna/internal/path"
	"github.com/somnia-art/somna/internal/raster"
)

// SoftwareRenderer is a CPU-based scanline rasterizer.
type SoftwareRenderer struct {
	rasterizer *raster.Rasterizer
}

// NewSoftwareRenderer creates a new software renderer.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	return &SoftwareRenderer{
		rasterizer: raster.NewRasterizer(width, height),
	}
}

// pixmapAdapter adapts canvas.Pixmap to the raster.Surface interface.
type pixmapAdapter struct {
	pixmap *Pixmap
}

func (p *pixmapAdapter) Width() int {
	return p.pixmap.Width()
}

func (p *pixmapAdapter) Height() int {
	return p.pixmap.Height()
}

// BlendPixel blends a color with the existing pixel using the given
// coverage fraction. Compositing is source-over on straight alpha.
func (p *pixmapAdapter) BlendPixel(x, y int, c raster.RGBA, coverage float64) {
	if coverage <= 0 {
		return
	}
	if x < 0 || x >= p.pixmap.Width() || y < 0 || y >= p.pixmap.Height() {
		return
	}

	srcAlpha := c.A * coverage
	if srcAlpha <= 0 {
		return
	}
	if srcAlpha >= 1 {
		p.pixmap.SetPixel(x, y, RGBA{R: c.R, G: c.G, B: c.B, A: 1})
		return
	}

	existing := p.pixmap.GetPixel(x, y)
	invSrcAlpha := 1.0 - srcAlpha

	outA := srcAlpha + existing.A*invSrcAlpha
	if outA > 0 {
		outR := (c.R*srcAlpha + existing.R*existing.A*invSrcAlpha) / outA
		outG := (c.G*srcAlpha + existing.G*existing.A*invSrcAlpha) / outA
		outB := (c.B*srcAlpha + existing.B*existing.A*invSrcAlpha) / outA
		p.pixmap.SetPixel(x, y, RGBA{R: outR, G: outG, B: outB, A: outA})
	}
}

// paintShader adapts a Paint's brush to the raster.Shader interface.
type paintShader struct {
	paint *Paint
}

func (s paintShader) ShadeAt(x, y float64) raster.RGBA {
	c := s.paint.ColorAt(x, y)
	return raster.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// convertPath converts canvas.Path elements to path.PathElement for flattening.
func convertPath(p *Path) []path.PathElement {
	var elements []path.PathElement
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			elements = append(elements, path.MoveTo{Point: path.Point{X: e.Point.X, Y: e.Point.Y}})
		case LineTo:
			elements = append(elements, path.LineTo{Point: path.Point{X: e.Point.X, Y: e.Point.Y}})
		case QuadTo:
			elements = append(elements, path.QuadTo{
				Control: path.Point{X: e.Control.X, Y: e.Control.Y},
				Point:   path.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case CubicTo:
			elements = append(elements, path.CubicTo{
				Control1: path.Point{X: e.Control1.X, Y: e.Control1.Y},
				Control2: path.Point{X: e.Control2.X, Y: e.Control2.Y},
				Point:    path.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case Close:
			elements = append(elements, path.Close{})
		}
	}
	return elements
}

// convertSubpaths converts flattened path.Point subpaths to raster.Point.
func convertSubpaths(subpaths [][]path.Point) [][]raster.Point {
	result := make([][]raster.Point, len(subpaths))
	for i, points := range subpaths {
		converted := make([]raster.Point, len(points))
		for j, p := range points {
			converted[j] = raster.Point{X: p.X, Y: p.Y}
		}
		result[i] = converted
	}
	return result
}

// Fill implements Renderer.Fill with anti-aliasing.
func (r *SoftwareRenderer) Fill(pixmap *Pixmap, p *Path, paint *Paint) error {
	elements := convertPath(p)
	subpaths := convertSubpaths(path.Flatten(elements))
	if len(subpaths) == 0 {
		return nil
	}

	fillRule := raster.FillRuleNonZero
	if paint.FillRule == FillRuleEvenOdd {
		fillRule = raster.FillRuleEvenOdd
	}

	adapter := &pixmapAdapter{pixmap: pixmap}
	r.rasterizer.Fill(adapter, subpaths, fillRule, paintShader{paint: paint})

	return nil
}

// Stroke implements Renderer.Stroke.
func (r *SoftwareRenderer) Stroke(pixmap *Pixmap, p *Path, paint *Paint) error {
	elements := convertPath(p)
	subpaths := convertSubpaths(path.Flatten(elements))
	if len(subpaths) == 0 {
		return nil
	}

	adapter := &pixmapAdapter{pixmap: pixmap}
	r.rasterizer.Stroke(adapter, subpaths, paint.LineWidth, paintShader{paint: paint})

	return nil
}
