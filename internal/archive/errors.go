package archive

import (
	"fmt"

	"github.com/thoreinstein/romshelf/internal/errors"
)

// ErrorKind classifies a ConfigError.
type ErrorKind string

// Error kinds, one per way loading an archive config can fail.
const (
	KindRootNotFound       ErrorKind = "root_not_found"
	KindConfigFileMissing  ErrorKind = "config_file_missing"
	KindConfigParse        ErrorKind = "config_parse"
	KindMissingSystemsKey  ErrorKind = "missing_systems_key"
	KindInvalidLabel       ErrorKind = "invalid_label"
	KindMissingProperty    ErrorKind = "missing_property"
	KindInvalidColor       ErrorKind = "invalid_color"
	KindSystemPathNotFound ErrorKind = "system_path_not_found"
)

// Sentinel errors matching each ErrorKind. A *ConfigError reports true from
// errors.Is for the sentinel of its kind.
var (
	ErrRootNotFound       = errors.New("archive root not found")
	ErrConfigFileMissing  = errors.New("config file missing")
	ErrConfigParse        = errors.New("config file could not be parsed")
	ErrMissingSystemsKey  = errors.New("missing systems key")
	ErrInvalidLabel       = errors.New("invalid system label")
	ErrMissingProperty    = errors.New("missing system property")
	ErrInvalidColor       = errors.New("invalid system color")
	ErrSystemPathNotFound = errors.New("system path not found")
)

var sentinels = map[ErrorKind]error{
	KindRootNotFound:       ErrRootNotFound,
	KindConfigFileMissing:  ErrConfigFileMissing,
	KindConfigParse:        ErrConfigParse,
	KindMissingSystemsKey:  ErrMissingSystemsKey,
	KindInvalidLabel:       ErrInvalidLabel,
	KindMissingProperty:    ErrMissingProperty,
	KindInvalidColor:       ErrInvalidColor,
	KindSystemPathNotFound: ErrSystemPathNotFound,
}

// ConfigError describes why an archive config could not be loaded.
// Only the fields relevant to Kind are set.
type ConfigError struct {
	Kind ErrorKind

	// Root is the archive root the load was attempted against.
	Root string

	// Label is the offending system label.
	Label string

	// Property is the offending property name within a system entry.
	Property string

	// Path is the resolved filesystem path that does not exist.
	Path string

	// Line is the 1-based line in config.yaml, when known.
	Line int

	// Err is the underlying cause (I/O or YAML syntax error), if any.
	Err error
}

func (e *ConfigError) Error() string {
	switch e.Kind {
	case KindRootNotFound:
		return fmt.Sprintf("archive root %q does not exist", e.Root)
	case KindConfigFileMissing:
		if e.Err != nil {
			return fmt.Sprintf("%s not found in archive root %q: %v", ConfigFileName, e.Root, e.Err)
		}
		return fmt.Sprintf("%s not found in archive root %q", ConfigFileName, e.Root)
	case KindConfigParse:
		return fmt.Sprintf("%s could not be parsed: %v", ConfigFileName, e.Err)
	case KindMissingSystemsKey:
		return fmt.Sprintf("%s does not contain a %q mapping", ConfigFileName, KeySystems)
	case KindInvalidLabel:
		if e.Line > 0 {
			return fmt.Sprintf("system label on line %d is not a string", e.Line)
		}
		return "system label is not a string"
	case KindMissingProperty:
		return fmt.Sprintf("system %q: missing %q property", e.Label, e.Property)
	case KindInvalidColor:
		return fmt.Sprintf("system %q: unexpected %q value, expected [u8, u8, u8]", e.Label, PropColor)
	case KindSystemPathNotFound:
		return fmt.Sprintf("system %q: path %q does not exist", e.Label, e.Path)
	default:
		return fmt.Sprintf("archive config error: %s", e.Kind)
	}
}

// ErrorHint returns a suggestion for fixing the config. It is picked up by
// errors.GetAllHints.
func (e *ConfigError) ErrorHint() string {
	switch e.Kind {
	case KindRootNotFound:
		return "Pass an existing directory with --root or set ROMSHELF_ARCHIVE_ROOT"
	case KindConfigFileMissing:
		return fmt.Sprintf("Create %s in the archive root with a top-level %q mapping", ConfigFileName, KeySystems)
	case KindConfigParse:
		return fmt.Sprintf("Check %s for YAML syntax errors", ConfigFileName)
	case KindMissingSystemsKey:
		return fmt.Sprintf("Declare systems under a top-level %q key", KeySystems)
	case KindInvalidLabel:
		return "Use plain text for system labels, e.g. wii or ds"
	case KindMissingProperty:
		return fmt.Sprintf("Add %q to system %q (required: %s, %s, %s, %s)",
			e.Property, e.Label, PropDisplayName, PropColor, PropPath, PropGamesAreDirectories)
	case KindInvalidColor:
		return "Use three integers between 0 and 255, e.g. color: [0, 215, 255]"
	case KindSystemPathNotFound:
		return fmt.Sprintf("Create %s or fix the %q property of system %q", e.Path, PropPath, e.Label)
	default:
		return ""
	}
}

// Is reports whether target is the sentinel error for e.Kind.
func (e *ConfigError) Is(target error) bool {
	sentinel, ok := sentinels[e.Kind]
	return ok && target == sentinel
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsSystemError reports whether err stems from the filesystem rather than
// from the contents of config.yaml.
func IsSystemError(err error) bool {
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		return false
	}
	switch cfgErr.Kind {
	case KindRootNotFound, KindConfigFileMissing, KindSystemPathNotFound:
		return true
	default:
		return false
	}
}
