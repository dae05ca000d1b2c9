// Package render turns color-annotated display names into terminal output.
package render

import (
	"github.com/fatih/color"

	"github.com/thoreinstein/romshelf/internal/system"
)

// Colorize wraps text with a 24-bit foreground color. When color output is
// disabled (color.NoColor, set for NO_COLOR or non-TTY stdout) the text is
// returned unchanged.
func Colorize(text string, c system.Color) string {
	return color.RGB(int(c.R), int(c.G), int(c.B)).Sprint(text)
}

// DisplayName renders a display name in its own color.
func DisplayName(n system.DisplayName) string {
	return Colorize(n.Text, n.Color)
}

// Name renders the display name of a descriptor.
func Name(d system.Descriptor) string {
	return DisplayName(d.DisplayName())
}

// Mode controls when colors are emitted.
type Mode string

// Color modes accepted by SetMode.
const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// SetMode applies a color mode globally. ModeAuto keeps fatih/color's own
// terminal detection. Unknown modes are treated as ModeAuto.
func SetMode(m Mode) {
	switch m {
	case ModeAlways:
		color.NoColor = false
	case ModeNever:
		color.NoColor = true
	}
}

// ValidMode reports whether m is a recognized color mode.
func ValidMode(m Mode) bool {
	switch m {
	case ModeAuto, ModeAlways, ModeNever:
		return true
	default:
		return false
	}
}
