package somna

import "time"

// Palette is a mood's color scheme as #RRGGBB literals. Indices 0 and 1
// are background colors; indices 2 and up are accent colors the layers
// draw with.
type Palette [8]string

// The four bedtime moods. The literals are process-wide constants:
// changing them changes every previously generated image, so they are
// part of the reproducibility contract.
var (
	// paletteSerene: cool blues for early bedtimes.
	paletteSerene = Palette{
		"#0d1b2a", "#1b263b", "#415a77", "#778da9",
		"#89c2d9", "#a9d6e5", "#61a5c2", "#468faf",
	}

	// paletteTwilight: deep purples for late-evening bedtimes.
	paletteTwilight = Palette{
		"#10002b", "#240046", "#3c096c", "#5a189a",
		"#7b2cbf", "#9d4edd", "#c77dff", "#e0aaff",
	}

	// paletteMidnight: dark navies with teal accents.
	paletteMidnight = Palette{
		"#030712", "#0b132b", "#1c2541", "#3a506b",
		"#5bc0be", "#6fffe9", "#4ea8de", "#80ffdb",
	}

	// paletteLatenight: muted warm tones for small-hours bedtimes.
	paletteLatenight = Palette{
		"#1a1423", "#372549", "#774c60", "#b75d69",
		"#eacdc2", "#e0afa0", "#bc8a5f", "#99582a",
	}
)

// PaletteFor buckets the bedtime's local hour into one of the four
// moods: [20,22) serene, [22,24) twilight, [0,2) midnight, and
// everything else late night.
func PaletteFor(bedtime time.Time) Palette {
	hour := bedtime.Hour()
	switch {
	case hour >= 20 && hour < 22:
		return paletteSerene
	case hour >= 22:
		return paletteTwilight
	case hour < 2:
		return paletteMidnight
	default:
		return paletteLatenight
	}
}
