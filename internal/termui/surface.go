package termui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/itemdetail/internal/detail"
	"github.com/appengine-ltd/itemdetail/internal/richtext"
)

const iconGlyph = "◆"

type span struct {
	x     int
	text  string
	style lipgloss.Style
}

// cellSurface lays the detail window out on a character grid: one row per
// line and one column per cell.
type cellSurface struct {
	width int
	rows  map[int][]span

	color int
	size  int
}

func newCellSurface(width int) *cellSurface {
	return &cellSurface{width: width, rows: map[int][]span{}}
}

func (s *cellSurface) Clear() {
	s.rows = map[int][]span{}
	s.color = detail.ColorNormal
	s.size = 0
}

func (s *cellSurface) LineHeight() int    { return 1 }
func (s *cellSurface) TextPadding() int   { return 1 }
func (s *cellSurface) ContentsWidth() int { return s.width }

func (s *cellSurface) DrawItemName(icon int, name string, x, y, width int) {
	if icon > 0 {
		s.put(x, y, iconGlyph, textStyle(detail.ColorSystem, 0))
	}
	s.put(x+2, y, name, textStyle(detail.ColorNormal, 0))
}

func (s *cellSurface) DrawText(text string, x, y, width int, align detail.Align) {
	w := lipgloss.Width(text)
	switch align {
	case detail.AlignCenter:
		x += (width - w) / 2
	case detail.AlignRight:
		x += width - w
	}
	s.put(x, y, text, textStyle(s.color, s.size))
}

func (s *cellSurface) DrawTextEx(text string, x, y int) int {
	cx := x
	for _, tok := range richtext.Parse(text) {
		switch tok.Kind {
		case richtext.Text:
			s.put(cx, y, tok.Text, textStyle(s.color, s.size))
			cx += lipgloss.Width(tok.Text)
		case richtext.Color:
			s.color = tok.Param
		case richtext.Icon:
			s.put(cx, y, iconGlyph, textStyle(s.color, s.size))
			cx += 2
		case richtext.Larger:
			s.size++
		case richtext.Smaller:
			s.size--
		}
	}
	return cx - x
}

func (s *cellSurface) ChangeTextColor(color int) { s.color = color }

func (s *cellSurface) ResetTextColor() { s.color = detail.ColorNormal }

func (s *cellSurface) put(x, y int, text string, style lipgloss.Style) {
	if text == "" {
		return
	}
	s.rows[y] = append(s.rows[y], span{x: max(x, 0), text: text, style: style})
}

// Render returns height lines. Spans that would overlap an earlier span on
// the same row start where it ends.
func (s *cellSurface) Render(height int) string {
	lines := make([]string, height)
	for y := 0; y < height; y++ {
		spans := append([]span(nil), s.rows[y]...)
		sort.SliceStable(spans, func(i, j int) bool { return spans[i].x < spans[j].x })
		var b strings.Builder
		cursor := 0
		for _, sp := range spans {
			if sp.x > cursor {
				b.WriteString(strings.Repeat(" ", sp.x-cursor))
				cursor = sp.x
			}
			b.WriteString(sp.style.Render(sp.text))
			cursor += lipgloss.Width(sp.text)
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// textStyle maps a palette index and size step onto a terminal style. Larger
// text is bold, smaller text faint.
func textStyle(color, size int) lipgloss.Style {
	st := lipgloss.NewStyle()
	if color != detail.ColorNormal {
		st = st.Foreground(lipgloss.Color(richtext.ColorHex(color)))
	}
	switch {
	case size > 0:
		st = st.Bold(true)
	case size < 0:
		st = st.Faint(true)
	}
	return st
}
