package somna

import "time"

// SleepRecord is one recorded sleep session. It is the sole input to
// art generation and is never mutated by this package.
//
// ArtSeed pins the generated composition: together with the bedtime
// hour, the duration, and the surface size it fully determines the
// output pixels, so a record rendered years later reproduces the same
// image byte for byte.
type SleepRecord struct {
	// ID identifies the session, conventionally the date as "YYYY-MM-DD".
	ID string

	// Bedtime is when the session started. Only the local hour
	// participates in rendering (palette selection).
	Bedtime time.Time

	// WakeTime is when the session ended. Informational; rendering
	// uses Duration directly.
	WakeTime time.Time

	// Duration is the slept time in hours. Fractional values are
	// meaningful (7.5 means seven and a half hours).
	Duration float64

	// ArtSeed seeds the procedural pipeline.
	ArtSeed int32
}
