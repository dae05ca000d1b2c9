package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	now := time.Now()
	logger.Info("loaded archive", "systems", 3)

	output := buf.String()
	for _, want := range []string{"INFO", "loaded archive", "systems=3", now.Format(time.Kitchen)} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %q", want, output)
		}
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).With("root", "/mnt/roms")

	logger.Info("listing games", "system", "wii")

	output := buf.String()
	if !strings.Contains(output, "root=/mnt/roms") {
		t.Errorf("expected common attribute in output, got: %q", output)
	}
	if !strings.Contains(output, "system=wii") {
		t.Errorf("expected local attribute in output, got: %q", output)
	}
}

func TestHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).WithGroup("archive")

	logger.Info("loaded", "root", "/mnt/roms")

	if output := buf.String(); !strings.Contains(output, "archive.root=/mnt/roms") {
		t.Errorf("expected grouped key in output, got: %q", output)
	}
}

func TestHandler_QuotesValues(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil))

	logger.Info("game", "name", "Super Mario Galaxy")

	if output := buf.String(); !strings.Contains(output, `name="Super Mario Galaxy"`) {
		t.Errorf("expected quoted value in output, got: %q", output)
	}
}

func TestHandler_Enabled(t *testing.T) {
	h := NewHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	ctx := context.Background()
	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("expected Info level to be disabled when min level is Warn")
	}
	if !h.Enabled(ctx, slog.LevelWarn) {
		t.Error("expected Warn level to be enabled")
	}
}

func TestHandler_NoTime(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "no time", 0)
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	if output := buf.String(); !strings.HasPrefix(output, "INFO") {
		t.Errorf("expected output to start with the level, got: %q", output)
	}
}

func TestHandler_TraceLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))

	logger.Log(context.Background(), LevelTrace, "system loaded", "system", "wii")

	output := buf.String()
	if !strings.Contains(output, "TRACE system loaded") {
		t.Errorf("expected TRACE label, got: %q", output)
	}
	if strings.Contains(output, "DEBUG-4") {
		t.Errorf("raw slog level name leaked into output: %q", output)
	}
}

func TestHandler_GroupValues(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).WithGroup("archive")

	logger.Info("loaded",
		slog.Group("system", "label", "wii", "games", 12),
		slog.Group("", "inline", true),
	)

	output := buf.String()
	for _, want := range []string{"archive.system.label=wii", "archive.system.games=12", "archive.inline=true"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %q", want, output)
		}
	}
}

func TestHandler_WithAttrsKeepsGroupAtTimeOfCall(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).
		With("root", "/mnt/roms").
		WithGroup("system").
		With("label", "wii")

	logger.Info("listing games", "count", 2)

	output := buf.String()
	for _, want := range []string{" root=/mnt/roms", " system.label=wii", " system.count=2"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %q", want, output)
		}
	}
}

func TestHandler_EmptyAndSpecialValues(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil))

	logger.Info("edit", "editor", "", "err", errors.New("exit status=1"))

	output := buf.String()
	if !strings.Contains(output, `editor=""`) {
		t.Errorf("expected empty string to be quoted, got: %q", output)
	}
	if !strings.Contains(output, `err="exit status=1"`) {
		t.Errorf("expected error text to be quoted, got: %q", output)
	}
}

func TestHandler_SingleWritePerRecord(t *testing.T) {
	w := &countingWriter{}
	logger := slog.New(NewHandler(w, nil)).With("root", "/mnt/roms")

	logger.Info("loaded", "systems", 3)

	if w.writes != 1 {
		t.Errorf("expected one write per record, got %d", w.writes)
	}
}

type countingWriter struct {
	bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}
