package scene

import (
	"github.com/appengine-ltd/itemdetail/internal/config"
	"github.com/appengine-ltd/itemdetail/internal/detail"
	"github.com/appengine-ltd/itemdetail/internal/input"
)

// Deps is what every browsing context needs to host a detail window.
type Deps struct {
	Config     config.Config
	Tables     detail.TypeTables
	Cues       *detail.AudioCueRegistry
	Viewport   detail.Viewport
	NewSurface func() detail.Surface
}

// Scene is the host-facing view of a browsing context.
type Scene interface {
	Update(in detail.InputState)
	Detail() *detail.Controller
	Lists() []*ListWindow
	Help() *HelpWindow
	Done() bool
}

// Base owns a scene's detail window and the list it returns focus to.
type Base struct {
	detail     *detail.Controller
	dispatcher *detail.Dispatcher
	cues       *detail.AudioCueRegistry
	help       *HelpWindow
	lists      []*ListWindow
	main       *ListWindow
	lineHeight int
	done       bool
}

const helpLines = 2

func newBase(deps Deps) *Base {
	b := &Base{
		dispatcher: detail.NewDispatcher(deps.Viewport, deps.Cues),
		cues:       deps.Cues,
	}
	b.createDetailWindow(deps)
	return b
}

func (b *Base) createDetailWindow(deps Deps) {
	var surface detail.Surface
	if deps.NewSurface != nil {
		surface = deps.NewSurface()
	}
	if surface == nil {
		surface = nopSurface{}
	}
	b.lineHeight = surface.LineHeight()
	b.detail = detail.NewController(surface, deps.Config, deps.Tables)
	b.detail.SetCloseHandler(b.DescriptionClose)
}

// createHelpWindow places the help window across the top of the box.
func (b *Base) createHelpWindow(v detail.Viewport) *HelpWindow {
	width := v.BoxWidth
	if width <= 0 {
		width = defaultBoxWidth
	}
	b.help = NewHelpWindow(detail.Rect{Width: width, Height: b.lineHeight*helpLines + b.lineHeight})
	return b.help
}

const (
	defaultLineHeight = 36
	defaultBoxWidth   = 816
)

// addList registers l for input and binds the detail trigger to it.
func (b *Base) addList(l *ListWindow) *ListWindow {
	l.SetHandler(input.OpenDetail, b.DescriptionOpen)
	b.lists = append(b.lists, l)
	return l
}

// DescriptionOpen shows the detail window for l's highlighted entry.
func (b *Base) DescriptionOpen(l *ListWindow) {
	b.main = l
	b.detail.SetReturnFocus(l)
	b.detail.Bind(l.Item())
	b.detail.Open()
	b.detail.Activate()
}

// DescriptionClose hides the detail window; the list that opened it takes
// focus back.
func (b *Base) DescriptionClose() {
	b.detail.Close()
}

// Update runs one tick: only the focused window sees input.
func (b *Base) Update(in detail.InputState) {
	switch {
	case b.detail.Active():
		b.detail.ProcessHandling(in, b.dispatcher)
	default:
		for _, l := range b.lists {
			if l.Active() {
				l.ProcessHandling(in, b.dispatcher)
				break
			}
		}
	}
	b.detail.Update()
}

func (b *Base) Detail() *detail.Controller { return b.detail }
func (b *Base) Lists() []*ListWindow       { return b.lists }
func (b *Base) Help() *HelpWindow          { return b.help }
func (b *Base) Done() bool                 { return b.done }

// MainList is the list the detail window was last opened from.
func (b *Base) MainList() *ListWindow { return b.main }

func (b *Base) finish() { b.done = true }

// activate moves focus to l, opening it if needed.
func activate(l *ListWindow) {
	l.Open()
	l.Activate()
}

type nopSurface struct{}

func (nopSurface) Clear()                                       {}
func (nopSurface) LineHeight() int                              { return defaultLineHeight }
func (nopSurface) TextPadding() int                             { return 6 }
func (nopSurface) ContentsWidth() int                           { return 0 }
func (nopSurface) DrawItemName(int, string, int, int, int)      {}
func (nopSurface) DrawText(string, int, int, int, detail.Align) {}
func (nopSurface) DrawTextEx(string, int, int) int              { return 0 }
func (nopSurface) ChangeTextColor(int)                          {}
func (nopSurface) ResetTextColor()                              {}
