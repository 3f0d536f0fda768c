package components

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// Backdrop renders an image as half-block art: each terminal cell shows two
// vertically stacked pixels, the upper one as foreground of "▀" and the
// lower one as background.
func Backdrop(img image.Image, width, maxHeight int) string {
	if img == nil || width <= 0 || maxHeight <= 0 {
		return ""
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return ""
	}

	// two pixel rows per cell keep the aspect ratio of square-ish cells
	rows := width * b.Dy() / b.Dx() / 2
	rows = min(max(rows, 1), maxHeight)

	dst := image.NewRGBA(image.Rect(0, 0, width, rows*2))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	Fade(dst, fadeColor, 0.5)

	var sb strings.Builder
	for y := 0; y < rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			top := hex(dst, x, 2*y)
			bottom := hex(dst, x, 2*y+1)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀"))
		}
	}
	return sb.String()
}

// fadeColor matches the page background so the art melts into it.
var fadeColor = color.RGBA{R: 0x14, G: 0x14, B: 0x14, A: 0xFF}

// Fade blends the rows below from (a fraction of the height) towards c,
// reaching c on the last row.
func Fade(img *image.RGBA, c color.RGBA, from float64) {
	b := img.Bounds()
	start := b.Min.Y + int(float64(b.Dy())*from)
	span := b.Max.Y - 1 - start
	if span <= 0 {
		return
	}
	for y := start; y < b.Max.Y; y++ {
		t := float64(y-start) / float64(span)
		for x := b.Min.X; x < b.Max.X; x++ {
			p := img.RGBAAt(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: blend(p.R, c.R, t),
				G: blend(p.G, c.G, t),
				B: blend(p.B, c.B, t),
				A: 0xFF,
			})
		}
	}
}

func blend(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func hex(img *image.RGBA, x, y int) string {
	c := img.RGBAAt(x, y)
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
