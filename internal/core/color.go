package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a packed 32-bit pixel value: R<<24 | G<<16 | B<<8 | A.
// The buffer treats it as opaque; only presenters unpack it.
type Color uint32

// Predefined colors used by the default palette.
var (
	ColorBlack = RGB(0, 0, 0)
	ColorField = RGB(0, 128, 0) // Playfield background
	ColorInk   = RGB(128, 0, 0) // Sprite foreground
	ColorWhite = RGB(255, 255, 255)
)

// RGB packs an opaque color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | 255)
}

// RGBA unpacks the color into its four channels.
func (c Color) RGBA() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as "#rrggbb" (alpha dropped).
func (c Color) Hex() string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return Color(uint32(v)<<8 | 255), nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return Color(v), nil
	default:
		return 0, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
}
