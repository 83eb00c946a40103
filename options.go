package somna

// RenderOption configures a single Generate call.
type RenderOption func(*renderConfig)

type renderConfig struct {
	streak int
}

// WithStreak sets the consecutive-nights streak for streak-gated
// layers. Negative values read as 0. The default is 0, which disables
// every streak effect.
func WithStreak(n int) RenderOption {
	return func(c *renderConfig) {
		if n < 0 {
			n = 0
		}
		c.streak = n
	}
}
