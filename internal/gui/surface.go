package gui

import (
	"github.com/appengine-ltd/itemdetail/internal/detail"
	"github.com/appengine-ltd/itemdetail/internal/richtext"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawOp replays one recorded draw call relative to the window origin.
type drawOp func(origin rl.Vector2, alpha float32)

// windowSurface records draw calls made while binding an entry and replays
// them every frame. Colour and size changes made by control sequences
// persist across calls until reset, as they do on a real window.
type windowSurface struct {
	width   int32
	padding int32
	ops     []drawOp

	color int
	size  int32
}

func newWindowSurface(width int32) *windowSurface {
	return &windowSurface{width: width, padding: 6, size: typeScale.Body}
}

func (s *windowSurface) Clear() {
	s.ops = nil
	s.color = detail.ColorNormal
	s.size = typeScale.Body
}

func (s *windowSurface) LineHeight() int    { return int(textLineHeight(typeScale.Body)) }
func (s *windowSurface) TextPadding() int   { return int(s.padding) }
func (s *windowSurface) ContentsWidth() int { return int(s.width) }

func (s *windowSurface) DrawItemName(icon int, name string, x, y, width int) {
	s.ops = append(s.ops, func(o rl.Vector2, alpha float32) {
		drawIcon(icon, o.X+float32(x)+2, o.Y+float32(y)+2, alpha)
	})
	s.drawString(name, int32(x)+iconBoxWidth, int32(y), detail.ColorNormal, typeScale.Body)
}

func (s *windowSurface) DrawText(text string, x, y, width int, align detail.Align) {
	w := measureText(text, s.size)
	xx := int32(x)
	switch align {
	case detail.AlignCenter:
		xx += (int32(width) - w) / 2
	case detail.AlignRight:
		xx += int32(width) - w
	}
	s.drawString(text, xx, int32(y), s.color, s.size)
}

func (s *windowSurface) DrawTextEx(text string, x, y int) int {
	cx := int32(x)
	for _, tok := range richtext.Parse(text) {
		switch tok.Kind {
		case richtext.Text:
			s.drawString(tok.Text, cx, int32(y), s.color, s.size)
			cx += measureText(tok.Text, s.size)
		case richtext.Color:
			s.color = tok.Param
		case richtext.Icon:
			icon, ix := tok.Param, cx
			s.ops = append(s.ops, func(o rl.Vector2, alpha float32) {
				drawIcon(icon, o.X+float32(ix)+2, o.Y+float32(y)+2, alpha)
			})
			cx += iconBoxWidth
		case richtext.Larger:
			s.size = min(typeScale.Max, s.size+typeScale.Step)
		case richtext.Smaller:
			s.size = max(typeScale.Min, s.size-typeScale.Step)
		}
	}
	return int(cx) - x
}

func (s *windowSurface) ChangeTextColor(color int) { s.color = color }

func (s *windowSurface) ResetTextColor() { s.color = detail.ColorNormal }

func (s *windowSurface) drawString(text string, x, y int32, color int, size int32) {
	if text == "" {
		return
	}
	clr := textColor(color)
	ty := y + (textLineHeight(typeScale.Body)-size)/2
	s.ops = append(s.ops, func(o rl.Vector2, alpha float32) {
		drawText(text, int32(o.X)+x, int32(o.Y)+ty, size, fadeAlpha(clr, alpha))
	})
}

func (s *windowSurface) Draw(origin rl.Vector2, alpha float32) {
	for _, op := range s.ops {
		op(origin, alpha)
	}
}
