package somna

import "github.com/somnia-art/somna/canvas"

// Generate renders a sleep record's art onto the lent canvas, mutating
// it in place. The record is not validated: degenerate inputs degrade
// to sparser or skipped layers, never to a panic.
//
// The output is a pure function of the record's ArtSeed, bedtime hour
// and duration, the options, and the canvas dimensions; identical
// inputs reproduce identical pixel bytes. Concurrent calls are safe as
// long as each call gets its own canvas.
func Generate(dc *canvas.Canvas, rec SleepRecord, opts ...RenderOption) {
	var cfg renderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	src := NewSource(rec.ArtSeed)
	params := ParamsFor(rec)

	drawBackground(dc, &src, params)
	drawAurora(dc, &src, params)
	drawBokeh(dc, &src, params, rec.Duration)
	drawGeometry(dc, &src, params)
	drawStarfield(dc, &src, params)
	drawStreakEffects(dc, &src, cfg.streak)
	drawVignette(dc)

	Logger().Debug("render complete",
		"id", rec.ID,
		"seed", rec.ArtSeed,
		"streak", cfg.streak,
		"width", dc.Width(),
		"height", dc.Height(),
	)
}
