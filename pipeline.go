package somna

import (
	"math"

	"github.com/somnia-art/somna/canvas"
)

// backdropEdge is the near-black rim color of the primary background
// gradient, shared by all palettes.
const backdropEdge = "#050510"

// gold is the accent color of streak rewards.
const gold = "#ffd700"

// The layer functions below run in a fixed order against one shared
// Source. Every call to src.Float is part of the reproducibility
// contract: reordering or dropping a draw changes every pixel that
// follows it.

// drawBackground lays the primary radial gradient and a soft accent
// overlay across the whole surface. Consumes 4 draws.
func drawBackground(dc *canvas.Canvas, src *Source, p Params) {
	w := float64(dc.Width())
	h := float64(dc.Height())
	longest := math.Max(w, h)

	// Primary gradient center lands in the middle 40% band of each axis
	cx := w * (0.3 + 0.4*src.Float())
	cy := h * (0.3 + 0.4*src.Float())

	base := canvas.NewRadialGradient(cx, cy, 0, 0.9*longest).
		AddColorStop(0, tint(p.Palette[1], 1)).
		AddColorStop(0.55, tint(p.Palette[0], 1)).
		AddColorStop(1, tint(backdropEdge, 1))
	dc.SetBrush(base)
	dc.DrawRectangle(0, 0, w, h)
	_ = dc.Fill()

	ox := w * src.Float()
	oy := h * src.Float()

	overlay := canvas.NewRadialGradient(ox, oy, 0, 0.7*longest).
		AddColorStop(0, tint(p.Palette[2], 0.18)).
		AddColorStop(1, tint(p.Palette[2], 0))
	dc.SetBrush(overlay)
	dc.DrawRectangle(0, 0, w, h)
	_ = dc.Fill()

	Logger().Debug("background layer", "primary", p.Palette[1], "overlay", p.Palette[2])
}

// drawAurora fills translucent sine bands across the surface.
// Consumes 5 draws per curve.
func drawAurora(dc *canvas.Canvas, src *Source, p Params) {
	w := float64(dc.Width())
	h := float64(dc.Height())

	count := 3 + int(math.Floor(p.Complexity*4))
	for i := 0; i < count; i++ {
		amp := h * (0.04 + 0.10*src.Float())
		freq := 1.5 + 2.5*src.Float()
		phase := 2 * math.Pi * src.Float()
		baseY := h * (0.15 + 0.6*src.Float())

		var idx int
		if p.Quality > 0.7 {
			idx = 2 + int(math.Floor(src.Float()*3))
		} else {
			idx = int(math.Floor(src.Float() * 8))
			if idx > 7 {
				idx = 7
			}
		}
		color := p.Palette[idx]

		// Sample every 2px, with the final sample pinned to the right edge
		dc.MoveTo(0, auroraY(0, w, amp, freq, phase, baseY))
		for x := 2.0; x < w; x += 2 {
			dc.LineTo(x, auroraY(x, w, amp, freq, phase, baseY))
		}
		dc.LineTo(w, auroraY(w, w, amp, freq, phase, baseY))
		dc.LineTo(w, h)
		dc.LineTo(0, h)
		dc.ClosePath()

		grad := canvas.NewLinearGradient(0, baseY-amp, 0, h).
			AddColorStop(0, tint(color, 0.20)).
			AddColorStop(1, tint(color, 0))
		dc.SetBrush(grad)
		_ = dc.Fill()
	}

	Logger().Debug("aurora layer", "curves", count)
}

// auroraY evaluates a band's articulated sine at x. The second harmonic
// at 2.3x the frequency keeps crests from looking mechanical.
func auroraY(x, w, amp, freq, phase, baseY float64) float64 {
	tx := 0.0
	if w > 0 {
		tx = x / w
	}
	theta := 2*math.Pi*freq*tx + phase
	return baseY + amp*(math.Sin(theta)+0.3*math.Sin(2.3*theta))
}

// drawBokeh scatters soft out-of-focus orbs. The count follows the
// slept duration directly. Consumes 5 draws per orb.
func drawBokeh(dc *canvas.Canvas, src *Source, p Params, duration float64) {
	w := float64(dc.Width())
	h := float64(dc.Height())
	m := math.Min(w, h)

	count := 5 + int(math.Floor(duration*2.5))
	for i := 0; i < count; i++ {
		x := src.Float() * w
		y := src.Float() * h
		radius := m * (0.02 + 0.06*src.Float()) * (0.5 + 0.5*p.Quality)

		idx := int(math.Floor(src.Float() * 8))
		if idx > 7 {
			idx = 7
		}
		alpha := 0.15 + 0.15*src.Float()
		color := p.Palette[idx]

		grad := canvas.NewRadialGradient(x, y, 0, radius).
			AddColorStop(0, tint(color, alpha)).
			AddColorStop(1, tint(color, 0))
		dc.SetBrush(grad)
		dc.DrawCircle(x, y, radius)
		_ = dc.Fill()
	}

	Logger().Debug("bokeh layer", "orbs", count)
}

// drawGeometry strokes jittered spokes radiating from the center,
// tipped with dots, then three concentric rings. Consumes 1 draw for
// the global rotation, 3 per spoke, and 2 per ring.
func drawGeometry(dc *canvas.Canvas, src *Source, p Params) {
	w := float64(dc.Width())
	h := float64(dc.Height())
	m := math.Min(w, h)
	cx := w / 2
	cy := h / 2

	spokes := 4 + int(math.Floor(p.Quality*8))
	rotation := 2 * math.Pi * src.Float()
	length := m * 0.28

	for i := 0; i < spokes; i++ {
		angle := rotation + 2*math.Pi*float64(i)/float64(spokes)
		dirX := math.Cos(angle)
		dirY := math.Sin(angle)
		perpX := -dirY
		perpY := dirX

		j1 := (src.Float() - 0.5) * 0.35 * length
		j2 := (src.Float() - 0.5) * 0.35 * length
		idx := 2 + int(math.Floor(src.Float()*6))
		color := p.Palette[idx]

		tipX := cx + dirX*length
		tipY := cy + dirY*length

		dc.MoveTo(cx, cy)
		dc.CubicTo(
			cx+dirX*length*0.33+perpX*j1, cy+dirY*length*0.33+perpY*j1,
			cx+dirX*length*0.66+perpX*j2, cy+dirY*length*0.66+perpY*j2,
			tipX, tipY,
		)
		dc.SetColor(tint(color, 0.55))
		dc.SetLineWidth(1.5)
		_ = dc.Stroke()

		dc.SetColor(tint(color, 0.85))
		dc.DrawCircle(tipX, tipY, 2.5)
		_ = dc.Fill()
	}

	for i := 0; i < 3; i++ {
		radius := m * (0.12 + 0.25*src.Float())
		idx := 2 + int(math.Floor(src.Float()*6))
		alpha := (0.10 + 0.06*float64(i)) * (0.25 + 0.75*p.Quality)

		dc.SetColor(tint(p.Palette[idx], alpha))
		dc.SetLineWidth(1.2)
		dc.DrawCircle(cx, cy, radius)
		_ = dc.Stroke()
	}

	Logger().Debug("geometry layer", "spokes", spokes)
}

// drawStarfield scatters white pinpricks, a minority with sparkle
// crosses. Consumes 5 draws per star; the sparkle gate always draws so
// the sequence stays aligned whether or not the cross renders.
func drawStarfield(dc *canvas.Canvas, src *Source, p Params) {
	w := float64(dc.Width())
	h := float64(dc.Height())

	count := 30 + int(math.Floor(p.Complexity*120))
	for i := 0; i < count; i++ {
		x := src.Float() * w
		y := src.Float() * h
		size := 0.5 + 1.5*src.Float()
		brightness := 0.3 + 0.7*src.Float()
		sparkle := src.Float() > 0.85

		dc.SetColor(canvas.RGBA{R: 1, G: 1, B: 1, A: brightness})
		dc.DrawCircle(x, y, size)
		_ = dc.Fill()

		if sparkle {
			dc.SetColor(canvas.RGBA{R: 1, G: 1, B: 1, A: 0.5 * brightness})
			dc.SetLineWidth(0.6)
			dc.DrawLine(x-3*size, y, x+3*size, y)
			_ = dc.Stroke()
			dc.DrawLine(x, y-3*size, x, y+3*size)
			_ = dc.Stroke()
		}
	}

	Logger().Debug("starfield layer", "stars", count)
}

// drawStreakEffects layers cumulative streak rewards: gold glows from
// 3 nights, a rainbow ring from 7, a rotated diamond from 14. Earlier
// tiers consume their draws before later tiers, so a higher streak
// shifts, never reorders, the shared sequence.
func drawStreakEffects(dc *canvas.Canvas, src *Source, streak int) {
	if streak < 3 {
		return
	}
	w := float64(dc.Width())
	h := float64(dc.Height())
	m := math.Min(w, h)
	cx := w / 2
	cy := h / 2

	glows := 2 * streak
	if glows > 20 {
		glows = 20
	}
	for i := 0; i < glows; i++ {
		x := src.Float() * w
		y := src.Float() * h
		radius := m * (0.03 + 0.05*src.Float())

		grad := canvas.NewRadialGradient(x, y, 0, radius).
			AddColorStop(0, tint(gold, 0.25)).
			AddColorStop(1, tint(gold, 0))
		dc.SetBrush(grad)
		dc.DrawCircle(x, y, radius)
		_ = dc.Fill()
	}

	if streak >= 7 {
		ringRadius := m * (0.30 + 0.06*src.Float())

		dc.SetColor(tint(gold, 0.5))
		dc.SetLineWidth(2)
		dc.DrawCircle(cx, cy, ringRadius)
		_ = dc.Stroke()

		arcRadius := ringRadius * 1.12
		segment := 2 * math.Pi / 36
		for i := 0; i < 36; i++ {
			start := -math.Pi/2 + float64(i)*segment
			hue := float64((i * 10) % 360)

			dc.SetColor(hslaRGBA(hue, 70, 60, 0.5))
			dc.SetLineWidth(3)
			dc.DrawArc(cx, cy, arcRadius, start, start+0.7*segment)
			_ = dc.Stroke()
		}
	}

	if streak >= 14 {
		rot := math.Pi/4 + (src.Float()-0.5)*0.2
		half := m * 0.13 / math.Sqrt2

		grad := canvas.NewRadialGradient(cx, cy, 0, m*0.13).
			AddColorStop(0, tint("#fff8e1", 0.9)).
			AddColorStop(1, tint(gold, 0.15))
		dc.SetBrush(grad)

		dc.Push()
		dc.Translate(cx, cy)
		dc.Rotate(rot)
		dc.DrawRectangle(-half, -half, 2*half, 2*half)
		_ = dc.Fill()
		dc.Pop()
	}

	Logger().Debug("streak layer", "streak", streak, "glows", glows)
}

// drawVignette darkens the frame edges with a fixed radial falloff.
// Consumes no draws.
func drawVignette(dc *canvas.Canvas) {
	w := float64(dc.Width())
	h := float64(dc.Height())
	m := math.Min(w, h)
	longest := math.Max(w, h)

	grad := canvas.NewRadialGradient(w/2, h/2, 0.3*m, 0.7*longest).
		AddColorStop(0, canvas.RGBA{A: 0}).
		AddColorStop(1, canvas.RGBA{A: 0.4})
	dc.SetBrush(grad)
	dc.DrawRectangle(0, 0, w, h)
	_ = dc.Fill()

	Logger().Debug("vignette layer")
}
