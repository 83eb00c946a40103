package somna

import (
	"testing"

	"github.com/somnia-art/somna/canvas"
)

// countingRenderer tallies draw operations without touching pixels.
type countingRenderer struct {
	fills   int
	strokes int
}

var _ canvas.Renderer = (*countingRenderer)(nil)

func (r *countingRenderer) Fill(*canvas.Pixmap, *canvas.Path, *canvas.Paint) error {
	r.fills++
	return nil
}

func (r *countingRenderer) Stroke(*canvas.Pixmap, *canvas.Path, *canvas.Paint) error {
	r.strokes++
	return nil
}

func countingCanvas(size int) (*canvas.Canvas, *countingRenderer) {
	cr := &countingRenderer{}
	return canvas.New(size, size, canvas.WithRenderer(cr)), cr
}

func TestDrawBackgroundDrawCount(t *testing.T) {
	dc, cr := countingCanvas(64)
	src := NewSource(5)
	drawBackground(dc, &src, Params{Quality: 1, Complexity: 0.75, Palette: paletteSerene})

	if cr.fills != 2 || cr.strokes != 0 {
		t.Errorf("got %d fills, %d strokes, want 2 fills, 0 strokes", cr.fills, cr.strokes)
	}
}

func TestDrawAuroraCurveCount(t *testing.T) {
	tests := []struct {
		name       string
		complexity float64
		wantFills  int
	}{
		{"low complexity", 0, 3},
		{"mid complexity", 0.5, 5},
		{"high complexity", 0.75, 6},
		{"full complexity", 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc, cr := countingCanvas(64)
			src := NewSource(5)
			drawAurora(dc, &src, Params{Quality: 0.5, Complexity: tt.complexity, Palette: paletteSerene})

			if cr.fills != tt.wantFills {
				t.Errorf("got %d fills, want %d", cr.fills, tt.wantFills)
			}
			if cr.strokes != 0 {
				t.Errorf("got %d strokes, want 0", cr.strokes)
			}
		})
	}
}

func TestDrawBokehOrbCount(t *testing.T) {
	tests := []struct {
		name      string
		duration  float64
		wantFills int
	}{
		{"eight hours", 8, 25},
		{"seven and a half", 7.5, 23},
		{"zero duration", 0, 5},
		{"negative duration skips", -4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc, cr := countingCanvas(64)
			src := NewSource(5)
			drawBokeh(dc, &src, Params{Quality: 1, Complexity: 0.8, Palette: paletteTwilight}, tt.duration)

			if cr.fills != tt.wantFills {
				t.Errorf("duration %v: got %d fills, want %d", tt.duration, cr.fills, tt.wantFills)
			}
		})
	}
}

func TestDrawGeometrySpokeCounts(t *testing.T) {
	tests := []struct {
		name        string
		quality     float64
		wantFills   int
		wantStrokes int
	}{
		{"full quality", 1, 12, 15},
		{"zero quality", 0, 4, 7},
		{"mid quality", 0.5, 8, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc, cr := countingCanvas(64)
			src := NewSource(5)
			drawGeometry(dc, &src, Params{Quality: tt.quality, Complexity: 0.5, Palette: paletteMidnight})

			if cr.fills != tt.wantFills || cr.strokes != tt.wantStrokes {
				t.Errorf("quality %v: got %d fills, %d strokes, want %d fills, %d strokes",
					tt.quality, cr.fills, cr.strokes, tt.wantFills, tt.wantStrokes)
			}
		})
	}
}

func TestDrawStarfieldStarCount(t *testing.T) {
	dc, cr := countingCanvas(64)
	src := NewSource(5)
	drawStarfield(dc, &src, Params{Quality: 1, Complexity: 0.75, Palette: paletteSerene})

	wantStars := 30 + 90
	if cr.fills != wantStars {
		t.Errorf("got %d fills, want %d", cr.fills, wantStars)
	}
	// Sparkle crosses are two strokes each.
	if cr.strokes%2 != 0 {
		t.Errorf("got odd stroke count %d", cr.strokes)
	}
	if cr.strokes > 2*wantStars {
		t.Errorf("got %d strokes for %d stars", cr.strokes, wantStars)
	}
}

func TestDrawStreakEffectsTiers(t *testing.T) {
	tests := []struct {
		name        string
		streak      int
		wantFills   int
		wantStrokes int
	}{
		{"no streak", 0, 0, 0},
		{"below threshold", 2, 0, 0},
		{"glow tier", 3, 6, 0},
		{"ring tier", 7, 14, 37},
		{"glow cap", 11, 20, 37},
		{"diamond tier", 14, 21, 37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc, cr := countingCanvas(64)
			src := NewSource(5)
			drawStreakEffects(dc, &src, tt.streak)

			if cr.fills != tt.wantFills || cr.strokes != tt.wantStrokes {
				t.Errorf("streak %d: got %d fills, %d strokes, want %d fills, %d strokes",
					tt.streak, cr.fills, cr.strokes, tt.wantFills, tt.wantStrokes)
			}
		})
	}
}

func TestDrawVignetteDrawCount(t *testing.T) {
	dc, cr := countingCanvas(64)
	drawVignette(dc)

	if cr.fills != 1 || cr.strokes != 0 {
		t.Errorf("got %d fills, %d strokes, want 1 fill, 0 strokes", cr.fills, cr.strokes)
	}
}

// Layer draws consume the shared source in a fixed order, so the fill
// total of a whole render depends only on the derived parameters,
// never on which values the seed happens to produce.
func TestGenerateFillCountSeedIndependent(t *testing.T) {
	record := func(seed int32) SleepRecord {
		return SleepRecord{
			ID:       "2024-01-15",
			Bedtime:  bedtimeAt(22),
			Duration: 7.5,
			ArtSeed:  seed,
		}
	}

	// background 2 + aurora 6 + bokeh 23 + geometry 12 + starfield 120
	// + vignette 1
	const wantFills = 164

	for _, seed := range []int32{1, 42, -5} {
		dc, cr := countingCanvas(64)
		Generate(dc, record(seed))

		if cr.fills != wantFills {
			t.Errorf("seed %d: got %d fills, want %d", seed, cr.fills, wantFills)
		}
		if cr.strokes < 15 {
			t.Errorf("seed %d: got %d strokes, want at least 15", seed, cr.strokes)
		}
		if (cr.strokes-15)%2 != 0 {
			t.Errorf("seed %d: got %d strokes, want 15 plus an even sparkle count", seed, cr.strokes)
		}
	}
}

func TestGenerateStreakDrawDeltas(t *testing.T) {
	render := func(streak int) (int, int) {
		dc, cr := countingCanvas(64)
		rec := SleepRecord{Bedtime: bedtimeAt(22), Duration: 7.5, ArtSeed: 9}
		Generate(dc, rec, WithStreak(streak))
		return cr.fills, cr.strokes
	}

	baseFills, baseStrokes := render(0)

	tests := []struct {
		name        string
		streak      int
		deltaFill   int
		deltaStroke int
	}{
		{"streak 2 adds nothing", 2, 0, 0},
		{"streak 3 adds glows", 3, 6, 0},
		{"streak 7 adds ring and arcs", 7, 14, 37},
		{"streak 14 adds diamond", 14, 21, 37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fills, strokes := render(tt.streak)
			if fills-baseFills != tt.deltaFill {
				t.Errorf("fill delta = %d, want %d", fills-baseFills, tt.deltaFill)
			}
			if strokes-baseStrokes != tt.deltaStroke {
				t.Errorf("stroke delta = %d, want %d", strokes-baseStrokes, tt.deltaStroke)
			}
		})
	}
}
