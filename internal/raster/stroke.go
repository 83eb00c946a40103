package raster

import "math"

// capStep is the angular resolution of round caps and joins.
const capStep = math.Pi / 8

// StrokeOutline expands a polyline into closed outline polygons for a
// stroke of the given width with round caps and joins. Open polylines
// produce a single loop; closed polylines produce an outer and an inner
// loop whose opposite orientations leave an annulus under the non-zero
// rule. Filling the result with FillRuleNonZero paints every stroked
// pixel exactly once.
func StrokeOutline(points []Point, width float64) [][]Point {
	hw := width / 2
	if hw <= 0 {
		return nil
	}

	pts := dedupe(points)
	if len(pts) == 0 {
		return nil
	}

	closed := false
	if len(pts) >= 3 && pts[0] == pts[len(pts)-1] {
		closed = true
		pts = pts[:len(pts)-1]
	}

	if len(pts) == 1 {
		// Degenerate stroke: a round cap dot
		return [][]Point{circlePolygon(pts[0], hw)}
	}

	if closed {
		return strokeClosed(pts, hw)
	}
	return [][]Point{strokeOpen(pts, hw)}
}

// dedupe removes consecutive duplicate and near-zero-length segments.
func dedupe(points []Point) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			continue
		}
		if len(out) > 0 {
			last := out[len(out)-1]
			dx := p.X - last.X
			dy := p.Y - last.Y
			if dx*dx+dy*dy < 1e-24 {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// normalAngles returns the angle of the offset normal for each segment.
// segs is len(pts)-1 for open polylines, len(pts) (with wraparound) for
// closed ones.
func normalAngles(pts []Point, segs int) []float64 {
	angles := make([]float64, segs)
	n := len(pts)
	for i := 0; i < segs; i++ {
		p0 := pts[i]
		p1 := pts[(i+1)%n]
		dx := p1.X - p0.X
		dy := p1.Y - p0.Y
		// Normal (dy, -dx), rotated 90 degrees from direction
		angles[i] = math.Atan2(-dx, dy)
	}
	return angles
}

// strokeOpen builds a single closed loop around an open polyline:
// offset side forward, round end cap, opposite side backward, round
// start cap (closed implicitly by the fill).
func strokeOpen(pts []Point, hw float64) []Point {
	segs := len(pts) - 1
	angles := normalAngles(pts, segs)

	var out []Point

	for i := 0; i < segs; i++ {
		out = append(out, offsetPoint(pts[i], hw, angles[i]))
		out = append(out, offsetPoint(pts[i+1], hw, angles[i]))
		if i+1 < segs {
			out = appendJoin(out, pts[i+1], hw, angles[i], angles[i+1])
		}
	}

	// End cap sweeps through the forward direction to the far side
	out = appendFan(out, pts[segs], hw, angles[segs-1], angles[segs-1]+math.Pi)

	for i := segs - 1; i >= 0; i-- {
		out = append(out, offsetPoint(pts[i+1], hw, angles[i]+math.Pi))
		out = append(out, offsetPoint(pts[i], hw, angles[i]+math.Pi))
		if i > 0 {
			out = appendJoin(out, pts[i], hw, angles[i]+math.Pi, angles[i-1]+math.Pi)
		}
	}

	// Start cap sweeps through the backward direction
	out = appendFan(out, pts[0], hw, angles[0]+math.Pi, angles[0]+2*math.Pi)

	return out
}

// strokeClosed builds two loops around a closed polyline. Traversing the
// inner offsets in reverse gives the loops opposite orientations.
func strokeClosed(pts []Point, hw float64) [][]Point {
	segs := len(pts)
	angles := normalAngles(pts, segs)

	var outer []Point
	for i := 0; i < segs; i++ {
		outer = append(outer, offsetPoint(pts[i], hw, angles[i]))
		outer = append(outer, offsetPoint(pts[(i+1)%segs], hw, angles[i]))
		outer = appendJoin(outer, pts[(i+1)%segs], hw, angles[i], angles[(i+1)%segs])
	}

	var inner []Point
	for i := segs - 1; i >= 0; i-- {
		inner = append(inner, offsetPoint(pts[(i+1)%segs], hw, angles[i]+math.Pi))
		inner = append(inner, offsetPoint(pts[i], hw, angles[i]+math.Pi))
		prev := (i - 1 + segs) % segs
		inner = appendJoin(inner, pts[i], hw, angles[i]+math.Pi, angles[prev]+math.Pi)
	}

	return [][]Point{outer, inner}
}

// appendJoin inserts a round join fan between two segment normals,
// taking the shorter angular route.
func appendJoin(out []Point, center Point, hw, a1, a2 float64) []Point {
	return appendFan(out, center, hw, a1, a1+shortestDelta(a1, a2))
}

// appendFan appends the interior points of an arc fan from a1 to a2
// around center. The endpoints themselves come from the adjacent
// segment offsets.
func appendFan(out []Point, center Point, hw, a1, a2 float64) []Point {
	delta := a2 - a1
	if delta == 0 {
		return out
	}
	steps := int(math.Ceil(math.Abs(delta) / capStep))
	if steps < 1 {
		steps = 1
	}
	step := delta / float64(steps)
	for k := 1; k < steps; k++ {
		out = append(out, offsetPoint(center, hw, a1+float64(k)*step))
	}
	return out
}

// circlePolygon approximates a full circle as a closed polygon.
func circlePolygon(center Point, r float64) []Point {
	steps := int(math.Ceil(2 * math.Pi / capStep))
	out := make([]Point, 0, steps)
	for k := 0; k < steps; k++ {
		out = append(out, offsetPoint(center, r, float64(k)*capStep))
	}
	return out
}

// shortestDelta returns the signed angular difference from a1 to a2
// wrapped to (-pi, pi].
func shortestDelta(a1, a2 float64) float64 {
	d := math.Mod(a2-a1, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

func offsetPoint(p Point, hw, angle float64) Point {
	return Point{
		X: p.X + hw*math.Cos(angle),
		Y: p.Y + hw*math.Sin(angle),
	}
}
