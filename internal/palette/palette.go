// Package palette maps the color names used by style commands to
// concrete hex values for decoration consumers. Palettes are loaded
// from a TOML file; a missing file is not an error, and user entries
// override the defaults name by name.
package palette

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Palette is the named color table plus box defaults.
type Palette struct {
	// Colors maps style color names to hex values.
	Colors map[string]string `toml:"colors"`

	// DefaultBorder is the box border color used when a command does
	// not name one.
	DefaultBorder string `toml:"default_border"`
}

// Default returns the built-in palette.
func Default() *Palette {
	return &Palette{
		Colors: map[string]string{
			"red":    "#d33682",
			"green":  "#859900",
			"blue":   "#268bd2",
			"orange": "#cb4b16",
			"violet": "#6c71c4",
			"gray":   "#839496",
		},
		DefaultBorder: "#586e75",
	}
}

// Load reads a palette file and merges it over the defaults. A path
// that does not exist returns the defaults unchanged.
func Load(path string) (*Palette, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, fmt.Errorf("reading palette %s: %w", path, err)
	}

	var user Palette
	if err := toml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("parsing palette %s: %w", path, err)
	}
	for name, hex := range user.Colors {
		p.Colors[name] = hex
	}
	if user.DefaultBorder != "" {
		p.DefaultBorder = user.DefaultBorder
	}
	return p, nil
}

// Resolve returns the hex value for a color name. Unknown names pass
// through unchanged so raw hex values and engine-native names keep
// working.
func (p *Palette) Resolve(name string) string {
	if hex, ok := p.Colors[name]; ok {
		return hex
	}
	return name
}
