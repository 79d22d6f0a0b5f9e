package gui

import (
	"math"
	"os"
	"path/filepath"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type typographyScale struct {
	Body  int32
	Small int32
	Min   int32
	Max   int32
	Step  int32
}

type typographyState struct {
	base       rl.Font
	ownsBase   bool
	lineFactor float32
}

var (
	typeScale = typographyScale{
		Body:  26,
		Small: 20,
		Min:   14,
		Max:   96,
		Step:  12,
	}
	uiType = typographyState{lineFactor: 1.38}
)

// initTypography loads the first usable font. glyphText lists the text the
// font must cover; CJK descriptions need their glyphs baked in up front.
func initTypography(fontFile string, glyphText string) {
	uiType.base = rl.GetFontDefault()

	fontCandidates := []string{
		filepath.Join("assets", "fonts", "NotoSansJP-Regular.ttf"),
		filepath.Join("assets", "fonts", "NotoSans-Regular.ttf"),
	}
	if fontFile != "" {
		fontCandidates = append([]string{fontFile}, fontCandidates...)
	}
	if f, ok := loadFontFromCandidates(fontCandidates, 48, glyphRunes(glyphText)); ok {
		uiType.base = f
		uiType.ownsBase = true
	}

	rl.SetTextureFilter(uiType.base.Texture, rl.FilterBilinear)
}

func shutdownTypography() {
	if uiType.ownsBase && uiType.base.Texture.ID != 0 {
		rl.UnloadFont(uiType.base)
	}
	uiType = typographyState{lineFactor: 1.38}
}

func glyphRunes(text string) []rune {
	seen := map[rune]bool{}
	for r := rune(32); r < 127; r++ {
		seen[r] = true
	}
	for _, r := range text {
		seen[r] = true
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

func loadFontFromCandidates(candidates []string, fontSize int32, runes []rune) (rl.Font, bool) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, fontSize, runes, int32(len(runes)))
		if font.Texture.ID == 0 {
			continue
		}
		return font, true
	}
	return rl.Font{}, false
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	if uiType.base.Texture.ID == 0 {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(uiType.base, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), 1, clr)
}

func measureText(text string, fontSize int32) int32 {
	if uiType.base.Texture.ID == 0 {
		return int32(rl.MeasureText(text, fontSize))
	}
	return int32(math.Round(float64(rl.MeasureTextEx(uiType.base, text, float32(fontSize), 1).X)))
}

func textLineHeight(size int32) int32 {
	if size < 1 {
		size = 1
	}
	return int32(math.Round(float64(size) * float64(uiType.lineFactor)))
}
