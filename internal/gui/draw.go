package gui

import (
	"github.com/appengine-ltd/itemdetail/internal/data"
	"github.com/appengine-ltd/itemdetail/internal/detail"
	"github.com/appengine-ltd/itemdetail/internal/scene"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	windowPadding = float32(18)
	rowHeight     = float32(36)
)

// boxRect is the letterboxed game box in screen coordinates.
func boxRect(v detail.Viewport) rl.Rectangle {
	dx, dy := v.Offset()
	return rl.NewRectangle(float32(dx), float32(dy), float32(v.BoxWidth), float32(v.BoxHeight))
}

func toScreen(box rl.Rectangle, r detail.Rect) rl.Rectangle {
	return rl.NewRectangle(box.X+float32(r.X), box.Y+float32(r.Y), float32(r.Width), float32(r.Height))
}

// drawScene paints the help window, every open list side by side below it,
// and the detail window on top.
func drawScene(s scene.Scene, surface *windowSurface, v detail.Viewport) {
	box := boxRect(v)
	rl.DrawRectangleRec(box, AppTheme.Background)

	top := box.Y
	if h := s.Help(); h != nil && h.Visible() {
		r := toScreen(box, h.Rect)
		drawHelp(h, r)
		top = r.Y + r.Height
	}
	body := rl.NewRectangle(box.X, top, box.Width, box.Y+box.Height-top)

	var open []*scene.ListWindow
	for _, l := range s.Lists() {
		if l.IsOpen() {
			open = append(open, l)
		}
	}
	if len(open) > 0 {
		w := body.Width / float32(len(open))
		for i, l := range open {
			drawList(l, rl.NewRectangle(body.X+float32(i)*w, body.Y, w, body.Height))
		}
	} else {
		drawHint("Nothing to browse. Esc returns to the menu.", body)
	}

	drawDetail(s.Detail(), surface, body)
}

func drawHelp(h *scene.HelpWindow, r rl.Rectangle) {
	drawNineSlice(skin.Window, r, rl.White)
	surface := newWindowSurface(int32(r.Width - 2*windowPadding))
	y := 0
	for _, line := range splitHelp(h.Text) {
		surface.DrawTextEx(line, int(surface.padding), y)
		y += surface.LineHeight()
	}
	surface.Draw(rl.Vector2{X: r.X + windowPadding, Y: r.Y + windowPadding}, 1)
}

func drawList(l *scene.ListWindow, r rl.Rectangle) {
	drawNineSlice(skin.Window, r, rl.White)
	if l.Active() {
		rl.DrawRectangleRoundedLinesEx(r, cornerRadius, cornerSegments, borderWidthFocus, AppTheme.Accent)
	}

	items := l.Items()
	visible := int((r.Height - 2*windowPadding) / rowHeight)
	if visible < 1 {
		visible = 1
	}
	first := 0
	if l.Index() >= visible {
		first = l.Index() - visible + 1
	}
	for i := first; i < len(items) && i < first+visible; i++ {
		row := rl.NewRectangle(r.X+windowPadding, r.Y+windowPadding+float32(i-first)*rowHeight, r.Width-2*windowPadding, rowHeight)
		drawListRow(items[i], row, i == l.Index() && l.Active())
	}
}

func drawListRow(e *data.Entry, r rl.Rectangle, selected bool) {
	if selected {
		rl.DrawRectangleRec(r, rl.Fade(AppTheme.Accent, 0.18))
		rl.DrawRectangle(int32(r.X), int32(r.Y), int32(accentStripWidth), int32(r.Height), AppTheme.Accent)
	}
	if e == nil {
		drawText("(empty)", int32(r.X)+iconBoxWidth, int32(r.Y)+(int32(rowHeight)-typeScale.Small)/2, typeScale.Small, AppTheme.TextMuted)
		return
	}
	drawIcon(e.IconIndex, r.X+2, r.Y+2, 1)
	clr := AppTheme.TextPrimary
	if !selected {
		clr = AppTheme.TextSecondary
	}
	drawText(e.Name, int32(r.X)+iconBoxWidth, int32(r.Y)+(int32(rowHeight)-typeScale.Body)/2, typeScale.Body, clr)
}

// drawDetail grows the detail window from its vertical centre as it opens.
func drawDetail(c *detail.Controller, surface *windowSurface, area rl.Rectangle) {
	if c == nil || surface == nil || c.Openness() == 0 {
		return
	}
	open := float32(c.Openness()) / 255
	h := area.Height * open
	r := rl.NewRectangle(area.X, area.Y+(area.Height-h)/2, area.Width, h)
	drawNineSlice(skin.Window, r, fadeAlpha(rl.White, 0.96))
	if c.Openness() < 255 {
		return
	}
	surface.Draw(rl.Vector2{X: area.X + windowPadding, Y: area.Y + windowPadding}, 1)
}

func drawHint(text string, r rl.Rectangle) {
	w := measureText(text, typeScale.Small)
	drawText(text, int32(r.X+(r.Width-float32(w))/2), int32(r.Y+r.Height/2), typeScale.Small, AppTheme.TextMuted)
}

func splitHelp(text string) []string {
	lines := detail.SplitLines(text)
	if len(lines) > 2 {
		lines = lines[:2]
	}
	return lines
}
