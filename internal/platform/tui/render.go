package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// halfBlock draws the upper pixel as foreground and the lower one as background.
const halfBlock = "▀"

// Renderer converts a pixel buffer to a styled string of half-block cells.
// Each terminal cell covers step columns and 2*step rows of the buffer;
// buffer row 0 ends up on the bottom line.
type Renderer struct {
	lg     *lipgloss.Renderer
	step   int
	styles *intmap.Map[uint64, lipgloss.Style] // Keyed by fg<<32 | bg
}

// NewRenderer creates a renderer using lipgloss's default output.
func NewRenderer(step int) *Renderer {
	return NewRendererWith(lipgloss.DefaultRenderer(), step)
}

// NewRendererWith creates a renderer bound to a specific lipgloss renderer,
// such as one per SSH session.
func NewRendererWith(lg *lipgloss.Renderer, step int) *Renderer {
	if step < 1 {
		step = 1
	}
	return &Renderer{
		lg:     lg,
		step:   step,
		styles: intmap.New[uint64, lipgloss.Style](16),
	}
}

// Step returns the downsample factor.
func (r *Renderer) Step() int {
	return r.step
}

// Size returns the number of terminal columns and lines needed for a buffer.
func (r *Renderer) Size(width, height int) (cols, lines int) {
	cols = (width + r.step - 1) / r.step
	lines = (height + 2*r.step - 1) / (2 * r.step)
	return cols, lines
}

// Render draws the buffer. Adjacent cells with the same color pair are
// grouped to minimize ANSI escape sequences.
func (r *Renderer) Render(b *core.Buffer) string {
	cols, lines := r.Size(b.Width(), b.Height())

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(cols*lines*4 + lines)

	var run strings.Builder
	for line := range lines {
		if line > 0 {
			sb.WriteRune('\n')
		}
		upper := b.Height() - 1 - 2*line*r.step
		lower := upper - r.step

		x := 0
		for x < cols {
			fg, bg := r.sample(b, x, upper), r.sample(b, x, lower)

			run.Reset()
			for x < cols && r.sample(b, x, upper) == fg && r.sample(b, x, lower) == bg {
				run.WriteString(halfBlock)
				x++
			}
			sb.WriteString(r.style(fg, bg).Render(run.String()))
		}
	}
	return sb.String()
}

// sample returns the buffer pixel under terminal column col at buffer row y.
func (r *Renderer) sample(b *core.Buffer, col, y int) core.Color {
	return b.At(col*r.step, y)
}

// style returns the cached style for a color pair.
func (r *Renderer) style(fg, bg core.Color) lipgloss.Style {
	k := uint64(fg)<<32 | uint64(bg)
	if s, ok := r.styles.Get(k); ok {
		return s
	}
	s := r.lg.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
	r.styles.Put(k, s)
	return s
}

// CachedStyles returns the number of distinct color pairs seen so far.
func (r *Renderer) CachedStyles() int {
	return r.styles.Len()
}
