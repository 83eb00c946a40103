// Package raster provides scanline rasterization for 2D paths.
package raster

import (
	"math"
	"sort"
)

// RGBA represents a color (internal copy to avoid import cycle).
type RGBA struct {
	R, G, B, A float64
}

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Shader supplies the source color for a pixel center.
type Shader interface {
	ShadeAt(x, y float64) RGBA
}

// Surface is an interface for writing pixels (avoids import cycle).
// Coverage is the fraction of the pixel covered by the shape, in [0, 1].
type Surface interface {
	Width() int
	Height() int
	BlendPixel(x, y int, c RGBA, coverage float64)
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// samplesPerPixel is the number of vertical subsamples per pixel row.
const samplesPerPixel = 4

// Edge represents a line segment for scanline rasterization.
type Edge struct {
	x0, y0 float64 // Start point (y0 < y1)
	x1, y1 float64 // End point
	dir    int     // Winding direction: +1 or -1
}

// NewEdge creates a new edge from two points.
func NewEdge(p0, p1 Point) Edge {
	// Determine direction BEFORE swap (for non-zero winding rule)
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0 // Swap to ensure y0 < y1
	}

	return Edge{
		x0:  p0.X,
		y0:  p0.Y,
		x1:  p1.X,
		y1:  p1.Y,
		dir: dir,
	}
}

// XAtY calculates the x coordinate at the given y coordinate.
func (e *Edge) XAtY(y float64) float64 {
	if e.y1 == e.y0 {
		return e.x0
	}
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}

// crossing is an edge intersection with a subsample scanline.
type crossing struct {
	x   float64
	dir int
}

// Rasterizer performs scanline rasterization with vertical supersampling
// and fractional horizontal coverage. A Rasterizer reuses internal scratch
// buffers and must not be shared between goroutines.
type Rasterizer struct {
	edges     []Edge
	crossings []crossing
	coverage  []float64
}

// NewRasterizer creates a rasterizer with scratch buffers sized for the
// given surface dimensions. The buffers grow if a wider surface is
// rasterized later.
func NewRasterizer(width, height int) *Rasterizer {
	r := &Rasterizer{}
	if width > 0 {
		r.coverage = make([]float64, width)
	}
	return r
}

// Fill rasterizes filled polyline subpaths onto a surface.
// Each subpath is treated as a closed polygon. The shader is sampled
// once per covered pixel at the pixel center.
func (r *Rasterizer) Fill(dst Surface, subpaths [][]Point, fillRule FillRule, shader Shader) {
	r.edges = r.edges[:0]
	for _, points := range subpaths {
		r.appendEdges(points)
	}
	if len(r.edges) == 0 {
		return
	}

	// Find y bounds
	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for _, e := range r.edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}

	yMinInt := int(math.Floor(yMin))
	yMaxInt := int(math.Ceil(yMax))

	// Clamp to surface bounds
	if yMinInt < 0 {
		yMinInt = 0
	}
	if h := dst.Height(); yMaxInt > h {
		yMaxInt = h
	}

	width := dst.Width()
	if width <= 0 {
		return
	}
	if cap(r.coverage) < width {
		r.coverage = make([]float64, width)
	}
	cov := r.coverage[:width]

	for y := yMinInt; y < yMaxInt; y++ {
		for i := range cov {
			cov[i] = 0
		}

		for s := 0; s < samplesPerPixel; s++ {
			scanY := float64(y) + (float64(s)+0.5)/samplesPerPixel
			r.accumulateScanline(cov, scanY, fillRule)
		}

		for x := 0; x < width; x++ {
			c := cov[x]
			if c <= 0 {
				continue
			}
			if c > 1 {
				c = 1
			}
			src := shader.ShadeAt(float64(x)+0.5, float64(y)+0.5)
			dst.BlendPixel(x, y, src, c)
		}
	}
}

// appendEdges converts a polyline into edges, closing it implicitly.
// Horizontal and non-finite segments are skipped.
func (r *Rasterizer) appendEdges(points []Point) {
	if len(points) < 2 {
		return
	}
	n := len(points)
	for i := 0; i < n; i++ {
		p0 := points[i]
		p1 := points[(i+1)%n]

		if p0.Y == p1.Y {
			continue
		}
		if !isFinite(p0.X) || !isFinite(p0.Y) || !isFinite(p1.X) || !isFinite(p1.Y) {
			continue
		}

		r.edges = append(r.edges, NewEdge(p0, p1))
	}
}

// accumulateScanline adds one subsample row's coverage contribution.
// Each inside span contributes its horizontal pixel overlap divided by
// the subsample count.
func (r *Rasterizer) accumulateScanline(cov []float64, scanY float64, fillRule FillRule) {
	r.crossings = r.crossings[:0]
	for i := range r.edges {
		e := &r.edges[i]
		// Half-open [y0, y1) so shared vertices count once
		if scanY < e.y0 || scanY >= e.y1 {
			continue
		}
		r.crossings = append(r.crossings, crossing{x: e.XAtY(scanY), dir: e.dir})
	}
	if len(r.crossings) < 2 {
		return
	}

	sort.Slice(r.crossings, func(i, j int) bool {
		return r.crossings[i].x < r.crossings[j].x
	})

	winding := 0
	spanStart := 0.0
	inside := false
	for _, c := range r.crossings {
		wasInside := inside
		winding += c.dir
		switch fillRule {
		case FillRuleEvenOdd:
			inside = winding%2 != 0
		default:
			inside = winding != 0
		}

		if !wasInside && inside {
			spanStart = c.x
		} else if wasInside && !inside {
			addSpan(cov, spanStart, c.x)
		}
	}
}

// addSpan accumulates fractional coverage for the horizontal span [x0, x1).
func addSpan(cov []float64, x0, x1 float64) {
	width := float64(len(cov))
	if x1 <= 0 || x0 >= width || x1 <= x0 {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > width {
		x1 = width
	}

	i0 := int(x0)
	i1 := int(math.Ceil(x1))
	for i := i0; i < i1 && i < len(cov); i++ {
		left := math.Max(x0, float64(i))
		right := math.Min(x1, float64(i+1))
		if right > left {
			cov[i] += (right - left) / samplesPerPixel
		}
	}
}

// Stroke rasterizes stroked polyline subpaths onto a surface.
// Each subpath is expanded to a closed outline with round caps and
// joins, then filled with the non-zero rule so translucent strokes
// blend exactly once.
func (r *Rasterizer) Stroke(dst Surface, subpaths [][]Point, width float64, shader Shader) {
	if width <= 0 {
		return
	}
	var outlines [][]Point
	for _, points := range subpaths {
		outlines = append(outlines, StrokeOutline(points, width)...)
	}
	if len(outlines) == 0 {
		return
	}
	r.Fill(dst, outlines, FillRuleNonZero, shader)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
