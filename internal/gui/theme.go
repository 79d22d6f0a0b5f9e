package gui

import (
	"github.com/appengine-ltd/itemdetail/internal/richtext"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Theme struct {
	Background    rl.Color
	Panel         rl.Color
	Border        rl.Color
	TextPrimary   rl.Color
	TextSecondary rl.Color
	TextMuted     rl.Color
	Accent        rl.Color
}

const (
	cornerRadius     = float32(0.04)
	cornerSegments   = int32(8)
	borderWidth      = float32(1.2)
	borderWidthFocus = float32(2.0)
	accentStripWidth = float32(4)
)

var AppTheme = Theme{
	Background:    rl.NewColor(0x14, 0x1A, 0x1F, 255),
	Panel:         rl.NewColor(0x1C, 0x23, 0x29, 235),
	Border:        rl.NewColor(0x2E, 0x3A, 0x40, 255),
	TextPrimary:   rl.NewColor(0xE8, 0xE2, 0xD8, 255),
	TextSecondary: rl.NewColor(0xA6, 0xAD, 0xB1, 255),
	TextMuted:     rl.NewColor(0x7D, 0x85, 0x8A, 255),
	Accent:        rl.NewColor(0xD4, 0x6A, 0x1E, 255),
}

var textPalette = buildTextPalette()

func buildTextPalette() [len(richtext.Palette)]rl.Color {
	var out [len(richtext.Palette)]rl.Color
	for i, hex := range richtext.Palette {
		r, g, b, err := richtext.RGB(hex)
		if err != nil {
			out[i] = rl.White
			continue
		}
		out[i] = rl.NewColor(r, g, b, 255)
	}
	return out
}

// textColor maps a palette index to a colour. Index 0 follows the theme so
// plain text matches the rest of the UI.
func textColor(n int) rl.Color {
	if n == 0 {
		return AppTheme.TextPrimary
	}
	if n < 0 {
		n = -n
	}
	return textPalette[n%len(textPalette)]
}

func fadeAlpha(c rl.Color, alpha float32) rl.Color {
	if alpha >= 1 {
		return c
	}
	return rl.Fade(c, alpha*float32(c.A)/255)
}
