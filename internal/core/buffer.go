package core

// Buffer is an owned 2D grid of packed colors used as the render target.
// Rows are stored bottom-up: row 0 is the bottom of the playfield.
// Its size never changes after creation.
type Buffer struct {
	width  int
	height int
	pixels []Color
}

// NewBuffer creates a buffer with the given dimensions, cleared to zero.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Clear sets every pixel to c.
func (b *Buffer) Clear(c Color) {
	for i := range b.pixels {
		b.pixels[i] = c
	}
}

// Stamp draws the set bits of sprite with color c, with the sprite's
// bottom-left corner at (x, y). Sprite row 0 is the top visual row, so rows
// are flipped on the way in. Pixels that land outside the buffer are skipped.
func (b *Buffer) Stamp(s *Sprite, x, y int, c Color) {
	visible := s.Bounds(x, y).Intersect(b.Bounds())
	if visible.Empty() {
		return
	}
	for sy := visible.Y; sy < visible.Top(); sy++ {
		yi := s.height - 1 - (sy - y)
		for sx := visible.X; sx < visible.Right(); sx++ {
			if s.bits[yi*s.width+(sx-x)] {
				b.pixels[sy*b.width+sx] = c
			}
		}
	}
}

// Bounds returns the rectangle covered by the buffer.
func (b *Buffer) Bounds() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// At returns the pixel at (x, y), or 0 when out of range.
func (b *Buffer) At(x, y int) Color {
	if !b.Bounds().Contains(x, y) {
		return 0
	}
	return b.pixels[y*b.width+x]
}

// Pixels returns the underlying row-major storage.
// Callers must not retain it across ticks; use Snapshot for that.
func (b *Buffer) Pixels() []Color {
	return b.pixels
}

// CopyTo copies the pixels into dst, which must have the same dimensions.
// Returns false if the sizes differ.
func (b *Buffer) CopyTo(dst *Buffer) bool {
	if dst.width != b.width || dst.height != b.height {
		return false
	}
	copy(dst.pixels, b.pixels)
	return true
}

// Snapshot returns an independent copy of the buffer.
func (b *Buffer) Snapshot() *Buffer {
	s := NewBuffer(b.width, b.height)
	copy(s.pixels, b.pixels)
	return s
}

// RGBA writes the buffer as 8-bit RGBA bytes in top-down row order, the
// layout image.RGBA and GPU textures expect. dst is reused when it is large
// enough; the filled slice is returned.
func (b *Buffer) RGBA(dst []byte) []byte {
	n := b.width * b.height * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]

	i := 0
	for y := b.height - 1; y >= 0; y-- {
		for _, c := range b.pixels[y*b.width : (y+1)*b.width] {
			dst[i] = byte(c >> 24)
			dst[i+1] = byte(c >> 16)
			dst[i+2] = byte(c >> 8)
			dst[i+3] = byte(c)
			i += 4
		}
	}
	return dst
}
