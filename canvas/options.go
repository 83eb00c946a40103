package canvas

// Option configures a Canvas during creation.
//
// Example:
//
//	// Default software rendering
//	dc := canvas.New(800, 600)
//
//	// Custom renderer (dependency injection)
//	dc := canvas.New(800, 600, canvas.WithRenderer(myRenderer))
type Option func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	renderer Renderer
	pixmap   *Pixmap
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		renderer: nil, // Will be set to SoftwareRenderer if nil
		pixmap:   nil, // Will be created if nil
	}
}

// WithRenderer sets a custom renderer for the Canvas.
// Use this for dependency injection of instrumented or custom renderers.
func WithRenderer(r Renderer) Option {
	return func(o *canvasOptions) {
		o.renderer = r
	}
}

// WithPixmap sets a custom pixmap for the Canvas.
// The pixmap dimensions should match the Canvas dimensions.
func WithPixmap(pm *Pixmap) Option {
	return func(o *canvasOptions) {
		o.pixmap = pm
	}
}
