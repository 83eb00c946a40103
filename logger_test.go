package somna

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultsSilent(t *testing.T) {
	SetLogger(nil) // ensure the default state
	l := Logger()
	if l == nil {
		t.Fatal("Logger returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger enabled at error level")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	Logger().Debug("probe", "k", 1)
	if !strings.Contains(buf.String(), "probe") {
		t.Errorf("log output %q missing record", buf.String())
	}

	SetLogger(nil)
	buf.Reset()
	Logger().Debug("after reset")
	if buf.Len() != 0 {
		t.Errorf("nil reset still wrote %q", buf.String())
	}
}

func TestGenerateLogsLayers(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	dc, _ := countingCanvas(16)
	Generate(dc, testRecord(), WithStreak(3))

	out := buf.String()
	for _, layer := range []string{"background", "aurora", "bokeh", "geometry", "starfield", "streak", "vignette", "render complete"} {
		if !strings.Contains(out, layer) {
			t.Errorf("log output missing %q", layer)
		}
	}
}
