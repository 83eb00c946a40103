package somna

import "math"

// Quality maps a sleep duration in hours onto [0, 1]. It peaks at 1 for
// exactly 7.5 hours and falls off linearly, reaching 0 at 2.5 and 12.5
// hours; outside that band it stays 0.
func Quality(duration float64) float64 {
	return math.Max(0, 1-math.Abs(duration-7.5)/5)
}

// Complexity maps a sleep duration in hours onto a layer-density factor.
// It grows linearly and saturates at 1 for 10 hours and beyond. Negative
// durations pass through negative, which downstream floored layer counts
// turn into skipped layers.
func Complexity(duration float64) float64 {
	return math.Min(1, duration/10)
}

// Params are the derived inputs of one render. They are recomputed for
// every render and never cached.
type Params struct {
	Quality    float64
	Complexity float64
	Palette    Palette
}

// ParamsFor derives render parameters from a record: the palette from
// the bedtime hour and both metrics from the duration.
func ParamsFor(rec SleepRecord) Params {
	return Params{
		Quality:    Quality(rec.Duration),
		Complexity: Complexity(rec.Duration),
		Palette:    PaletteFor(rec.Bedtime),
	}
}
