package termui

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/gg"
)

const (
	iconCell    = 32
	iconsPerRow = 16
	iconSize    = 8
)

// loadIconSheet reads the icon sheet PNG. A missing sheet is not an error;
// the preview then draws no icon art.
func loadIconSheet(path string) (image.Image, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	img, err := gg.LoadPNG(path)
	if err != nil {
		return nil, fmt.Errorf("loading icon sheet: %w", err)
	}
	return img, nil
}

// renderIcon scales icon index from sheet down to size×size pixels and
// returns it as size/2 rows of half-block cells.
func renderIcon(sheet image.Image, index int, size int) string {
	if sheet == nil || index <= 0 || size < 2 {
		return ""
	}
	col := index % iconsPerRow
	row := index / iconsPerRow

	dc := gg.NewContext(size, size)
	dc.SetRGBA(0, 0, 0, 0)
	dc.Clear()
	scale := float64(size) / iconCell
	dc.Scale(scale, scale)
	dc.DrawImage(sheet, -col*iconCell, -row*iconCell)
	return imageToHalfBlocks(dc.Image())
}

func imageToHalfBlocks(img image.Image) string {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return ""
	}

	lines := make([]string, 0, (height+1)/2)
	for y := 0; y < height; y += 2 {
		var out strings.Builder
		for x := 0; x < width; x++ {
			tr, tg, tb, ta := rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			br, bg, bb, ba := uint8(0), uint8(0), uint8(0), uint8(0)
			if y+1 < height {
				br, bg, bb, ba = rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y+1))
			}

			if ta < 8 && ba < 8 {
				out.WriteByte(' ')
				continue
			}

			st := lipgloss.NewStyle().
				Foreground(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", tr, tg, tb))).
				Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", br, bg, bb)))
			out.WriteString(st.Render("▀"))
		}
		lines = append(lines, out.String())
	}
	return strings.Join(lines, "\n")
}

func rgba8(c color.Color) (r, g, b, a uint8) {
	r16, g16, b16, a16 := c.RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8), uint8(a16 >> 8)
}
