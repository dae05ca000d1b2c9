package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	d := New("wii", "WII", Color{0, 215, 255}, "wbfs", true)

	assert.Equal(t, "wii", d.Label())
	assert.Equal(t, "WII", d.DisplayName().Text)
	assert.Equal(t, Color{R: 0, G: 215, B: 255}, d.Color())
	assert.Equal(t, "wbfs", d.Directory())
	assert.True(t, d.GamesAreDirectories())
}

func TestDescriptor_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Descriptor
		want bool
	}{
		{
			name: "same location different metadata",
			a:    New("wii", "WII", Color{0, 215, 255}, "wbfs", true),
			b:    New("gc", "GameCube", Color{62, 255, 0}, "wbfs", true),
			want: true,
		},
		{
			name: "different directory",
			a:    New("wii", "WII", Color{0, 215, 255}, "wbfs", true),
			b:    New("wii", "WII", Color{0, 215, 255}, "games", true),
			want: false,
		},
		{
			name: "different directory mode",
			a:    New("ds", "DS", Color{}, "ds", false),
			b:    New("ds", "DS", Color{}, "ds", true),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
			assert.Equal(t, tt.want, tt.a.Key() == tt.b.Key())
		})
	}
}

func TestKey_AsMapKey(t *testing.T) {
	index := map[Key]string{}
	index[New("wii", "WII", Color{}, "wbfs", true).Key()] = "first"
	index[New("other", "Other", Color{1, 2, 3}, "wbfs", true).Key()] = "second"

	assert.Len(t, index, 1)
	assert.Equal(t, "second", index[Key{Directory: "wbfs", GamesAreDirectories: true}])
}

func TestDedupe(t *testing.T) {
	in := []Descriptor{
		New("wii", "WII", Color{}, "wbfs", true),
		New("ds", "DS", Color{}, "ds", false),
		New("wii2", "WII again", Color{}, "wbfs", true),
	}

	out := Dedupe(in)
	if assert.Len(t, out, 2) {
		assert.Equal(t, "wii", out[0].Label())
		assert.Equal(t, "ds", out[1].Label())
	}
}

func TestDuplicates(t *testing.T) {
	in := []Descriptor{
		New("ds", "DS", Color{}, "ds", false),
		New("wii", "WII", Color{}, "wbfs", true),
		New("wii2", "WII again", Color{}, "wbfs", true),
	}

	dups := Duplicates(in)
	if assert.Len(t, dups, 1) {
		assert.Len(t, dups[0], 2)
		assert.Equal(t, "wii", dups[0][0].Label())
		assert.Equal(t, "wii2", dups[0][1].Label())
	}

	assert.Empty(t, Duplicates(in[:2]))
}

func TestDescriptor_String(t *testing.T) {
	d := New("wii", "WII", Color{}, "wbfs", true)
	assert.Equal(t, "wii (WII) -> wbfs", d.String())
	assert.Equal(t, "rgb(0,215,255)", Color{0, 215, 255}.String())
}
