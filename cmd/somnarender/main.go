// Command somnarender renders a sleep record to a PNG image.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/somnia-art/somna"
	"github.com/somnia-art/somna/canvas"
)

func main() {
	var (
		width    = flag.Int("width", 1024, "image width")
		height   = flag.Int("height", 1024, "image height")
		bedtime  = flag.String("bedtime", "2024-01-15T22:30:00Z", "bedtime (RFC 3339)")
		wake     = flag.String("wake", "", "wake time (RFC 3339); when set, duration is derived")
		duration = flag.Float64("duration", 7.5, "slept hours")
		seed     = flag.Int("seed", 1, "art seed (32-bit)")
		streak   = flag.Int("streak", 0, "consecutive-nights streak")
		output   = flag.String("output", "somna.png", "output file")
		thumb    = flag.Int("thumb", 0, "thumbnail width (0 disables)")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		somna.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	bed, err := time.Parse(time.RFC3339, *bedtime)
	if err != nil {
		log.Fatalf("Invalid -bedtime: %v", err)
	}

	rec := somna.SleepRecord{
		ID:       bed.Format("2006-01-02"),
		Bedtime:  bed,
		Duration: *duration,
		ArtSeed:  int32(*seed),
	}
	if *wake != "" {
		wakeAt, err := time.Parse(time.RFC3339, *wake)
		if err != nil {
			log.Fatalf("Invalid -wake: %v", err)
		}
		rec.WakeTime = wakeAt
		rec.Duration = wakeAt.Sub(bed).Hours()
	}

	dc := canvas.New(*width, *height)
	somna.Generate(dc, rec, somna.WithStreak(*streak))

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Art saved to %s (%dx%d)\n", *output, *width, *height)

	if *thumb > 0 && *width > 0 && *height > 0 {
		th := int(math.Round(float64(*thumb) * float64(*height) / float64(*width)))
		if th < 1 {
			th = 1
		}
		small := dc.Pixmap().Scaled(*thumb, th)

		thumbPath := strings.TrimSuffix(*output, ".png") + "_thumb.png"
		if err := small.SavePNG(thumbPath); err != nil {
			log.Fatalf("Failed to save thumbnail: %v", err)
		}
		log.Printf("Thumbnail saved to %s (%dx%d)\n", thumbPath, *thumb, th)
	}
}
