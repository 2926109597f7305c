package tui

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// BufferImage converts a buffer to an RGBA image with row 0 at the bottom.
func BufferImage(b *core.Buffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width(), b.Height()))
	img.Pix = b.RGBA(img.Pix)
	return img
}

// WritePNG encodes the buffer as PNG.
func WritePNG(w io.Writer, b *core.Buffer) error {
	if err := png.Encode(w, BufferImage(b)); err != nil {
		return fmt.Errorf("screenshot: cannot encode png: %w", err)
	}
	return nil
}

// SaveScreenshot writes the buffer to dir as <prefix>_<timestamp>.png.
// Returns the path of the written file.
func SaveScreenshot(dir, prefix string, b *core.Buffer) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: cannot create directory %s: %w", dir, err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", prefix, timestamp))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("screenshot: cannot create file: %w", err)
	}
	defer f.Close()

	if err := WritePNG(f, b); err != nil {
		return "", err
	}
	return path, nil
}

// DefaultScreenshotDir returns ~/.invaders/screenshots.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".invaders", "screenshots")
}
