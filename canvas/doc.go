// Package canvas provides a small 2D drawing surface for Go.
//
// # Overview
//
// canvas offers an immediate-mode drawing API similar to HTML Canvas,
// backed by a deterministic CPU scanline rasterizer. Paths are built
// from lines and Bezier curves, painted with solid colors or gradient
// brushes, and composited source-over onto an RGBA pixel buffer.
//
// # Quick Start
//
//	import "github.com/somnia-art/somna/canvas"
//
//	// Create a drawing canvas (dc = drawing context convention)
//	dc := canvas.New(512, 512)
//
//	// Draw shapes
//	dc.SetRGB(1, 0, 0)
//	dc.DrawCircle(256, 256, 100)
//	_ = dc.Fill()
//
//	// Save to PNG
//	_ = dc.SavePNG("output.png")
//
// # Determinism
//
// Rendering is single-threaded and uses no table lookups, hashing, or
// platform-dependent fast paths, so identical draw sequences produce
// identical pixel bytes on every platform. This property is what makes
// the package suitable as a substrate for reproducible generative art.
//
// # Architecture
//
// The package is organized into:
//   - Public API: Canvas, Path, Paint, Brush, Matrix, Point, Pixmap
//   - Internal: raster (scanline fill and stroke), path (flattening)
package canvas
