package renderer

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ParseHex parses "#rrggbb" or "#rrggbbaa" into a color.
func ParseHex(s string) (rl.Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return rl.Color{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return rl.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return rl.Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// ColorCache memoizes parsed cell colors. Unparseable colors draw magenta.
type ColorCache struct {
	colors map[string]rl.Color
}

// NewColorCache creates an empty cache.
func NewColorCache() *ColorCache {
	return &ColorCache{colors: make(map[string]rl.Color)}
}

// Get returns the parsed color for s.
func (c *ColorCache) Get(s string) rl.Color {
	if col, ok := c.colors[s]; ok {
		return col
	}
	col, err := ParseHex(s)
	if err != nil {
		col = rl.Magenta
	}
	c.colors[s] = col
	return col
}
