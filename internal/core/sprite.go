package core

import "fmt"

// Sprite is an immutable 1-bit stencil. Row 0 is the top visual row.
type Sprite struct {
	width  int
	height int
	bits   []bool
}

// NewSprite builds a sprite from a row-major 0/1 mask.
// Panics if len(mask) != width*height; sprites are compile-time assets.
func NewSprite(width, height int, mask []uint8) *Sprite {
	if width <= 0 || height <= 0 || len(mask) != width*height {
		panic(fmt.Sprintf("core: sprite mask has %d cells, want %dx%d", len(mask), width, height))
	}
	bits := make([]bool, len(mask))
	for i, v := range mask {
		bits[i] = v != 0
	}
	return &Sprite{width: width, height: height, bits: bits}
}

// ParseSprite builds a sprite from art rows where '@' is set and anything
// else is clear. All rows must have the same length.
func ParseSprite(rows ...string) (*Sprite, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("core: empty sprite")
	}
	w := len(rows[0])
	mask := make([]uint8, 0, w*len(rows))
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("core: sprite row %d has width %d, want %d", i, len(row), w)
		}
		for _, ch := range row {
			if ch == '@' {
				mask = append(mask, 1)
			} else {
				mask = append(mask, 0)
			}
		}
	}
	return NewSprite(w, len(rows), mask), nil
}

// MustParseSprite is ParseSprite for package-level asset literals.
func MustParseSprite(rows ...string) *Sprite {
	s, err := ParseSprite(rows...)
	if err != nil {
		panic(err)
	}
	return s
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int {
	return s.width
}

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int {
	return s.height
}

// Bit reports whether the pixel at column x, row y (row 0 = top) is set.
func (s *Sprite) Bit(x, y int) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	return s.bits[y*s.width+x]
}

// Mask returns a copy of the sprite as a row-major 0/1 slice.
func (s *Sprite) Mask() []uint8 {
	out := make([]uint8, len(s.bits))
	for i, b := range s.bits {
		if b {
			out[i] = 1
		}
	}
	return out
}

// Bounds returns the rectangle the sprite covers when stamped at (x, y).
func (s *Sprite) Bounds(x, y int) Rect {
	return NewRect(x, y, s.width, s.height)
}
