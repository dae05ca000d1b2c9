// Package archive loads the systems declared in a ROM archive's config.yaml.
//
// Loading is fail-fast: the first problem found aborts the load and is
// returned as a *ConfigError naming the offending system and property.
package archive

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/thoreinstein/romshelf/internal/document"
	"github.com/thoreinstein/romshelf/internal/system"
	"github.com/thoreinstein/romshelf/pkg/fileutil"
)

// ConfigFileName is the name of the config file in the archive root.
const ConfigFileName = "config.yaml"

// Keys of the config schema.
const (
	KeySystems              = "systems"
	PropDisplayName         = "display_name"
	PropColor               = "color"
	PropPath                = "path"
	PropGamesAreDirectories = "games_are_directories"
)

// Loader reads archive configs through a filesystem capability.
type Loader struct {
	fs afero.Fs
}

// Option configures a Loader.
type Option func(*Loader)

// WithFS sets the filesystem used for existence checks and reads.
func WithFS(fs afero.Fs) Option {
	return func(l *Loader) {
		l.fs = fs
	}
}

// NewLoader creates a Loader backed by the OS filesystem unless overridden.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadConfig loads the systems of the archive at root from the OS filesystem.
func LoadConfig(root string) ([]system.Descriptor, error) {
	return NewLoader().Load(root)
}

// Load reads root/config.yaml and returns one descriptor per declared
// system, in document order. Every call re-reads the file.
func (l *Loader) Load(root string) ([]system.Descriptor, error) {
	if !fileutil.Exists(l.fs, root) {
		return nil, &ConfigError{Kind: KindRootNotFound, Root: root}
	}

	data, err := fileutil.ReadFileWithLimit(l.fs, ConfigPath(root))
	if err != nil {
		return nil, &ConfigError{Kind: KindConfigFileMissing, Root: root, Err: err}
	}

	doc, err := document.Parse(data)
	if err != nil {
		return nil, &ConfigError{Kind: KindConfigParse, Root: root, Err: err}
	}

	declared, ok := doc.Lookup(KeySystems)
	if !ok {
		return nil, &ConfigError{Kind: KindMissingSystemsKey, Root: root}
	}
	entries, ok := declared.AsMapping()
	if !ok {
		return nil, &ConfigError{Kind: KindMissingSystemsKey, Root: root, Line: declared.Line()}
	}

	systems := make([]system.Descriptor, 0, len(entries))
	for _, entry := range entries {
		d, err := l.loadSystem(root, entry)
		if err != nil {
			return nil, err
		}
		systems = append(systems, d)
	}

	return systems, nil
}

// ConfigPath returns the location of config.yaml in the archive at root.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigFileName)
}

func (l *Loader) loadSystem(root string, entry document.Pair) (system.Descriptor, error) {
	label, ok := entry.Key.AsString()
	if !ok {
		return system.Descriptor{}, &ConfigError{Kind: KindInvalidLabel, Root: root, Line: entry.Key.Line()}
	}

	props := entry.Value
	missing := func(property string) error {
		return &ConfigError{
			Kind:     KindMissingProperty,
			Root:     root,
			Label:    label,
			Property: property,
			Line:     entry.Key.Line(),
		}
	}

	displayName, ok := lookupString(props, PropDisplayName)
	if !ok {
		return system.Descriptor{}, missing(PropDisplayName)
	}
	colorValue, ok := props.Lookup(PropColor)
	if !ok {
		return system.Descriptor{}, missing(PropColor)
	}
	components, ok := colorValue.AsSequence()
	if !ok {
		return system.Descriptor{}, missing(PropColor)
	}
	path, ok := lookupString(props, PropPath)
	if !ok {
		return system.Descriptor{}, missing(PropPath)
	}
	gamesAreDirs, ok := lookupBool(props, PropGamesAreDirectories)
	if !ok {
		return system.Descriptor{}, missing(PropGamesAreDirectories)
	}

	color, ok := parseColor(components)
	if !ok {
		return system.Descriptor{}, &ConfigError{
			Kind:  KindInvalidColor,
			Root:  root,
			Label: label,
			Line:  colorValue.Line(),
		}
	}

	resolved := filepath.Join(root, path)
	if !fileutil.Exists(l.fs, resolved) {
		return system.Descriptor{}, &ConfigError{
			Kind:  KindSystemPathNotFound,
			Root:  root,
			Label: label,
			Path:  resolved,
		}
	}

	return system.New(label, displayName, color, path, gamesAreDirs), nil
}

// parseColor reads the first three components as [0,255] integers.
// Components past the third are ignored.
func parseColor(components []*document.Value) (system.Color, bool) {
	if len(components) < 3 {
		return system.Color{}, false
	}
	var rgb [3]uint8
	for i := range rgb {
		c, ok := components[i].AsUint8()
		if !ok {
			return system.Color{}, false
		}
		rgb[i] = c
	}
	return system.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, true
}

func lookupString(v *document.Value, key string) (string, bool) {
	prop, ok := v.Lookup(key)
	if !ok {
		return "", false
	}
	return prop.AsString()
}

func lookupBool(v *document.Value, key string) (bool, bool) {
	prop, ok := v.Lookup(key)
	if !ok {
		return false, false
	}
	return prop.AsBool()
}
