package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/thoreinstein/romshelf/internal/errors"
)

func TestInit(t *testing.T) {
	t.Setenv("ROMSHELF_CONFIG_DIR", t.TempDir())
	Init()

	if got := viper.GetString("color"); got != "auto" {
		t.Errorf("expected color default auto, got %q", got)
	}
	if got := viper.GetString("log_format"); got != "text" {
		t.Errorf("expected log_format default text, got %q", got)
	}
}

func TestPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ROMSHELF_CONFIG_DIR", dir)

	if got, want := Path(), filepath.Join(dir, "settings.yaml"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	// Point the search path at an empty directory to avoid loading user settings
	t.Setenv("ROMSHELF_CONFIG_DIR", t.TempDir())
	Init()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() with no settings file should not error: %v", err)
	}
	if cfg.Color != "auto" {
		t.Errorf("Color = %q, want auto", cfg.Color)
	}
	if cfg.ArchiveRoot != "" {
		t.Errorf("ArchiveRoot = %q, want empty", cfg.ArchiveRoot)
	}
}

func TestLoad_DefaultLocation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ROMSHELF_CONFIG_DIR", dir)
	content := []byte("archive_root: /mnt/roms\ncolor: never\n")
	if err := os.WriteFile(filepath.Join(dir, "settings.yaml"), content, 0600); err != nil {
		t.Fatal(err)
	}

	Init()
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ArchiveRoot != "/mnt/roms" {
		t.Errorf("ArchiveRoot = %q, want /mnt/roms", cfg.ArchiveRoot)
	}
	if cfg.Color != "never" {
		t.Errorf("Color = %q, want never", cfg.Color)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ROMSHELF_CONFIG_DIR", t.TempDir())
	t.Setenv("ROMSHELF_ARCHIVE_ROOT", "/srv/archive")

	Init()
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ArchiveRoot != "/srv/archive" {
		t.Errorf("ArchiveRoot = %q, want /srv/archive", cfg.ArchiveRoot)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("ROMSHELF_CONFIG_DIR", t.TempDir())
	Init()

	if _, err := Load("/non/existent/path/settings.yaml"); err == nil {
		t.Error("Load() with non-existent explicit path should error")
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "invalid color mode",
			content: "color: rainbow\n",
			wantErr: ErrInvalidColorMode,
		},
		{
			name:    "invalid log format",
			content: "log_format: xml\n",
			wantErr: ErrInvalidLogFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ROMSHELF_CONFIG_DIR", t.TempDir())
			Init()

			path := filepath.Join(t.TempDir(), "settings.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if errs := Validate(nil); len(errs) != 1 {
		t.Errorf("Validate(nil) returned %d errors, want 1", len(errs))
	}

	valid := &Config{Color: "always", LogFormat: "json", ArchiveRoot: "~/roms"}
	if errs := Validate(valid); len(errs) != 0 {
		t.Errorf("Validate(valid) = %v, want no errors", errs)
	}

	invalid := &Config{Color: "x", LogFormat: "y", ArchiveRoot: "a\x00b"}
	errs := Validate(invalid)
	if len(errs) != 3 {
		t.Fatalf("Validate(invalid) returned %d errors, want 3", len(errs))
	}

	var fieldErr *FieldError
	if !errors.As(errs[0], &fieldErr) || fieldErr.Field != "color" {
		t.Errorf("first error = %v, want color FieldError", errs[0])
	}
	if got := errs[1].Error(); got != "log_format: invalid log format: y" {
		t.Errorf("errs[1].Error() = %q", got)
	}
}
