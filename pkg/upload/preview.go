package upload

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // register gif
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register webp
)

// RenderPreview draws image bytes as terminal block art, width cells wide.
// Each cell shows two vertical pixels using the upper half block.
func RenderPreview(data []byte, width int) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode picture: %w", err)
	}
	return renderImage(img, width), nil
}

func renderImage(img image.Image, width int) string {
	if width <= 0 {
		width = 24
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return ""
	}

	// Terminal cells are roughly twice as tall as wide; two pixel rows per cell
	// restores the aspect ratio.
	height := width * b.Dy() / b.Dx()
	if height%2 == 1 {
		height++
	}
	if height < 2 {
		height = 2
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	var sb strings.Builder
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			top := hexColor(dst, x, y)
			bottom := hexColor(dst, x, y+1)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀"))
		}
		if y+2 < height {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func hexColor(img *image.RGBA, x, y int) string {
	c := img.RGBAAt(x, y)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
