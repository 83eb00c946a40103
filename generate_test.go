package somna

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/somnia-art/somna/canvas"
)

func testRecord() SleepRecord {
	return SleepRecord{
		ID:       "2024-03-02",
		Bedtime:  time.Date(2024, 3, 2, 23, 15, 0, 0, time.UTC),
		Duration: 7.5,
		ArtSeed:  7,
	}
}

func renderBytes(rec SleepRecord, size int, opts ...RenderOption) []byte {
	dc := canvas.New(size, size)
	Generate(dc, rec, opts...)
	data := dc.Pixmap().Data()
	out := make([]byte, len(data))
	copy(out, data)
	return out
}

func TestGenerateDeterministic(t *testing.T) {
	tests := []struct {
		name string
		opts []RenderOption
	}{
		{"no streak", nil},
		{"all streak tiers", []RenderOption{WithStreak(14)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := renderBytes(testRecord(), 48, tt.opts...)
			b := renderBytes(testRecord(), 48, tt.opts...)
			if !bytes.Equal(a, b) {
				t.Error("two renders of the same record produced different bytes")
			}
		})
	}
}

func TestGenerateSeedChangesOutput(t *testing.T) {
	rec := testRecord()
	a := renderBytes(rec, 48)
	rec.ArtSeed = 8
	b := renderBytes(rec, 48)
	if bytes.Equal(a, b) {
		t.Error("different seeds produced identical bytes")
	}
}

func TestGenerateDurationChangesOutput(t *testing.T) {
	rec := testRecord()
	a := renderBytes(rec, 48)
	rec.Duration = 4
	b := renderBytes(rec, 48)
	if bytes.Equal(a, b) {
		t.Error("different durations produced identical bytes")
	}
}

func TestGenerateBedtimeHourChangesOutput(t *testing.T) {
	rec := testRecord()
	a := renderBytes(rec, 48)
	rec.Bedtime = time.Date(2024, 3, 2, 1, 15, 0, 0, time.UTC)
	b := renderBytes(rec, 48)
	if bytes.Equal(a, b) {
		t.Error("different palettes produced identical bytes")
	}
}

func TestGenerateStreakThreshold(t *testing.T) {
	rec := testRecord()
	base := renderBytes(rec, 48)

	// Below 3 nights the streak layer adds nothing at all.
	if !bytes.Equal(base, renderBytes(rec, 48, WithStreak(2))) {
		t.Error("streak 2 changed the output")
	}
	if !bytes.Equal(base, renderBytes(rec, 48, WithStreak(-6))) {
		t.Error("negative streak changed the output")
	}
	if bytes.Equal(base, renderBytes(rec, 48, WithStreak(3))) {
		t.Error("streak 3 did not change the output")
	}
}

func TestGenerateDegenerateCanvas(t *testing.T) {
	for _, size := range []int{0, 1} {
		dc := canvas.New(size, size)
		Generate(dc, testRecord(), WithStreak(14))
		if got, want := len(dc.Pixmap().Data()), size*size*4; got != want {
			t.Errorf("size %d: data length %d, want %d", size, got, want)
		}
	}
}

func TestGenerateConcurrent(t *testing.T) {
	rec := testRecord()
	want := renderBytes(rec, 32, WithStreak(7))

	const workers = 4
	got := make([][]byte, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = renderBytes(rec, 32, WithStreak(7))
		}(i)
	}
	wg.Wait()

	for i, g := range got {
		if !bytes.Equal(g, want) {
			t.Errorf("worker %d produced bytes differing from the serial render", i)
		}
	}
}

// The vignette is defined relative to the surface size, so the corner
// darkening lands at the same level at any resolution.
func TestDrawVignetteDarkensCorners(t *testing.T) {
	corner := func(size int) byte {
		dc := canvas.New(size, size)
		dc.Clear(canvas.White)
		drawVignette(dc)
		return dc.Pixmap().Data()[0]
	}

	center := func(size int) byte {
		dc := canvas.New(size, size)
		dc.Clear(canvas.White)
		drawVignette(dc)
		mid := size / 2
		return dc.Pixmap().Data()[(mid*size+mid)*4]
	}

	c64 := corner(64)
	c128 := corner(128)

	if center(64) != 255 {
		t.Errorf("center darkened to %d, want untouched 255", center(64))
	}
	// Stop 1 is black at alpha 0.4: 255 * 0.6 = 153, give or take the
	// sub-pixel offset of the corner sample.
	if c64 < 152 || c64 > 155 {
		t.Errorf("corner at 64 = %d, want near 153", c64)
	}
	if d := int(c64) - int(c128); d < -2 || d > 2 {
		t.Errorf("corner darkening differs across sizes: %d at 64, %d at 128", c64, c128)
	}
}

func TestWithStreakClampsNegative(t *testing.T) {
	var cfg renderConfig
	WithStreak(-5)(&cfg)
	if cfg.streak != 0 {
		t.Errorf("streak = %d, want 0", cfg.streak)
	}
	WithStreak(9)(&cfg)
	if cfg.streak != 9 {
		t.Errorf("streak = %d, want 9", cfg.streak)
	}
}
