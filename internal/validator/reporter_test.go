package validator

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestReporter_Report(t *testing.T) {
	oldNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = oldNoColor })

	result := &Result{Config: "/archive/config.yaml", Valid: true, Systems: 2}
	result.AddWarning("gc", `systems gc, wii share path "games"`)
	result.AddInfo("ds", "no games found in ds")
	result.Issues[0].Context = map[string]string{"path": "games"}

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewReporter(&buf, FormatText).Report(result); err != nil {
			t.Fatalf("Report() error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"✓ /archive/config.yaml is valid (2 systems)",
			`warning: systems gc, wii share path "games" (path=games)`,
			"note: ds: no games found in ds",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q\nGot:\n%s", want, output)
			}
		}
	})

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewReporter(&buf, FormatJSON).Report(result); err != nil {
			t.Fatalf("Report() error: %v", err)
		}

		var decoded Result
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("failed to decode JSON output: %v", err)
		}
		if len(decoded.Issues) != 2 {
			t.Errorf("decoded issues count = %d, want 2", len(decoded.Issues))
		}
		if decoded.Issues[0].Severity != SeverityWarning {
			t.Errorf("first issue severity = %v, want warning", decoded.Issues[0].Severity)
		}
		if !decoded.Valid || decoded.Systems != 2 {
			t.Errorf("decoded = %+v", decoded)
		}
	})

	t.Run("failed load prints nothing in text", func(t *testing.T) {
		failed := &Result{}
		failed.Add(Issue{Severity: SeverityError, Message: "config.yaml not found"})

		var buf bytes.Buffer
		if err := NewReporter(&buf, FormatText).Report(failed); err != nil {
			t.Fatalf("Report() error: %v", err)
		}
		if buf.Len() != 0 {
			t.Errorf("output = %q, want empty", buf.String())
		}
	})

	t.Run("nil result", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewReporter(&buf, FormatText).Report(nil); err != nil {
			t.Fatalf("Report() error: %v", err)
		}
		if buf.Len() != 0 {
			t.Error("nil result should print nothing")
		}
	})
}
