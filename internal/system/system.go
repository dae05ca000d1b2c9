// Package system defines the validated descriptor of one game platform
// stored in a ROM archive.
package system

import "fmt"

// Color is a 24-bit RGB foreground color.
type Color struct {
	R, G, B uint8
}

// String returns the color as "rgb(r,g,b)".
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// DisplayName is a human-readable name annotated with the color it should be
// rendered in. Rendering is left to the presentation layer.
type DisplayName struct {
	Text  string
	Color Color
}

// String returns the plain, uncolored text.
func (n DisplayName) String() string {
	return n.Text
}

// Key identifies a descriptor by storage location.
// It is comparable and can be used as a map key.
type Key struct {
	Directory           string
	GamesAreDirectories bool
}

// Descriptor describes one game platform known to the archive.
// It is immutable after construction.
type Descriptor struct {
	label               string
	displayName         DisplayName
	directory           string
	gamesAreDirectories bool
}

// New creates a Descriptor. It performs no validation and no I/O; callers
// are responsible for passing values that describe a real system.
func New(label, displayName string, color Color, directory string, gamesAreDirectories bool) Descriptor {
	return Descriptor{
		label:               label,
		displayName:         DisplayName{Text: displayName, Color: color},
		directory:           directory,
		gamesAreDirectories: gamesAreDirectories,
	}
}

// Label returns the identifier the system was declared under.
func (d Descriptor) Label() string { return d.label }

// DisplayName returns the color-annotated display name.
func (d Descriptor) DisplayName() DisplayName { return d.displayName }

// Color returns the display color.
func (d Descriptor) Color() Color { return d.displayName.Color }

// Directory returns the games directory, relative to the archive root.
func (d Descriptor) Directory() string { return d.directory }

// GamesAreDirectories reports whether each game is a directory rather than
// a single file.
func (d Descriptor) GamesAreDirectories() bool { return d.gamesAreDirectories }

// Key returns the identity of the descriptor.
func (d Descriptor) Key() Key {
	return Key{Directory: d.directory, GamesAreDirectories: d.gamesAreDirectories}
}

// Equal reports whether d and other refer to the same storage location.
// Label, display name and color are metadata and do not take part.
func (d Descriptor) Equal(other Descriptor) bool {
	return d.Key() == other.Key()
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s (%s) -> %s", d.label, d.displayName.Text, d.directory)
}

// Dedupe returns descriptors with duplicate keys removed, keeping the first
// occurrence and preserving order.
func Dedupe(descriptors []Descriptor) []Descriptor {
	seen := make(map[Key]struct{}, len(descriptors))
	out := make([]Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		if _, ok := seen[d.Key()]; ok {
			continue
		}
		seen[d.Key()] = struct{}{}
		out = append(out, d)
	}
	return out
}

// Duplicates groups descriptors that share a key. Only groups with more than
// one member are returned, in order of first appearance.
func Duplicates(descriptors []Descriptor) [][]Descriptor {
	groups := make(map[Key][]Descriptor)
	var order []Key
	for _, d := range descriptors {
		k := d.Key()
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], d)
	}

	var dups [][]Descriptor
	for _, k := range order {
		if len(groups[k]) > 1 {
			dups = append(dups, groups[k])
		}
	}
	return dups
}
