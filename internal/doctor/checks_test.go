package doctor

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

const root = "/archive"

const config = `systems:
  ds:
    display_name: DS
    color: [0, 255, 55]
    path: ds
    games_are_directories: false
  nds:
    display_name: NDS
    color: [0, 255, 55]
    path: ds
    games_are_directories: false
`

func newArchive(t *testing.T, content string, dirs ...string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, d := range append([]string{""}, dirs...) {
		if err := fs.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if content != "" {
		if err := afero.WriteFile(fs, filepath.Join(root, "config.yaml"), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return fs
}

func TestSettingsCheck(t *testing.T) {
	tests := []struct {
		name  string
		check SettingsCheck
		want  Severity
	}{
		{name: "loaded", check: SettingsCheck{Path: "/cfg/settings.yaml", Exists: true}, want: SeverityPass},
		{name: "defaults", check: SettingsCheck{Path: "/cfg/settings.yaml"}, want: SeverityInfo},
		{name: "broken", check: SettingsCheck{Path: "/cfg/settings.yaml", Exists: true, Err: errors.New("bad yaml")}, want: SeverityError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.check.Run()
			if got.Status != tt.want {
				t.Errorf("Status = %v, want %v", got.Status, tt.want)
			}
			if tt.want == SeverityError && !strings.Contains(got.FixHint, "/cfg/settings.yaml") {
				t.Errorf("FixHint = %q, should name the settings file", got.FixHint)
			}
		})
	}
}

func TestArchiveCheck(t *testing.T) {
	t.Run("duplicates warn", func(t *testing.T) {
		c := &ArchiveCheck{Fs: newArchive(t, config, "ds"), Root: root}
		got := c.Run()
		if got.Status != SeverityWarning {
			t.Fatalf("Status = %v (%s), want warning", got.Status, got.Message)
		}
		if got.Details["systems"] != 2 {
			t.Errorf("systems = %v, want 2", got.Details["systems"])
		}
	})

	t.Run("missing config errors", func(t *testing.T) {
		c := &ArchiveCheck{Fs: newArchive(t, ""), Root: root}
		got := c.Run()
		if got.Status != SeverityError {
			t.Fatalf("Status = %v, want error", got.Status)
		}
		if got.FixHint == "" {
			t.Error("FixHint should be set")
		}
	})

	t.Run("clean archive passes", func(t *testing.T) {
		c := &ArchiveCheck{Fs: newArchive(t, "systems: {}\n"), Root: root}
		if got := c.Run(); got.Status != SeverityPass {
			t.Errorf("Status = %v (%s), want pass", got.Status, got.Message)
		}
	})
}

func TestSystemsCheck(t *testing.T) {
	fs := newArchive(t, config, "ds")

	got := (&SystemsCheck{Fs: fs, Root: root}).Run()
	if got.Status != SeverityInfo {
		t.Fatalf("Status = %v, want info", got.Status)
	}
	if !strings.Contains(got.Message, "2 of 2") {
		t.Errorf("Message = %q", got.Message)
	}

	if err := afero.WriteFile(fs, filepath.Join(root, "ds", "game.nds"), []byte("rom"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := (&SystemsCheck{Fs: fs, Root: root}).Run(); got.Status != SeverityPass {
		t.Errorf("Status = %v, want pass", got.Status)
	}

	broken := newArchive(t, "nope: 1\n")
	if got := (&SystemsCheck{Fs: broken, Root: root}).Run(); got.Status != SeverityInfo {
		t.Errorf("Status = %v, want info for skipped check", got.Status)
	}
}

func TestEditorCheck(t *testing.T) {
	t.Setenv("EDITOR", "my-editor")

	found := &EditorCheck{LookPath: func(string) (string, error) { return "/usr/bin/my-editor", nil }}
	if got := found.Run(); got.Status != SeverityPass {
		t.Errorf("Status = %v, want pass", got.Status)
	}

	missing := &EditorCheck{LookPath: func(string) (string, error) { return "", errors.New("not found") }}
	got := missing.Run()
	if got.Status != SeverityWarning {
		t.Errorf("Status = %v, want warning", got.Status)
	}
	if !strings.Contains(got.Message, "my-editor") {
		t.Errorf("Message = %q, should name the editor", got.Message)
	}
}
