// Package somna turns recorded sleep into reproducible abstract art.
//
// A sleep session (bedtime, duration, a 32-bit seed) deterministically
// selects a palette, derives quality and complexity metrics, and drives
// a seven-layer procedural pipeline: background gradients, aurora
// bands, bokeh orbs, radial geometry, a starfield, streak rewards, and
// a vignette. The same record always renders the same image, byte for
// byte, on every platform.
//
//	dc := canvas.New(1024, 1024)
//	somna.Generate(dc, somna.SleepRecord{
//	    ID:       "2024-03-01",
//	    Bedtime:  bedtime,
//	    Duration: 7.5,
//	    ArtSeed:  91,
//	}, somna.WithStreak(7))
//	_ = dc.SavePNG("art.png")
//
// Rendering draws on the canvas substrate in the sibling canvas
// package; somna itself holds only the generative logic.
package somna
