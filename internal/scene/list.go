package scene

import (
	"github.com/appengine-ltd/itemdetail/internal/data"
	"github.com/appengine-ltd/itemdetail/internal/detail"
	"github.com/appengine-ltd/itemdetail/internal/input"
)

// HelpWindow shows the highlighted entry's short description. Its rectangle
// doubles as the tap target for opening the detail window.
type HelpWindow struct {
	Rect    detail.Rect
	Text    string
	visible bool
}

func NewHelpWindow(r detail.Rect) *HelpWindow {
	return &HelpWindow{Rect: r, visible: true}
}

func (h *HelpWindow) SetItem(e *data.Entry) {
	if e == nil {
		h.Text = ""
		return
	}
	h.Text = e.Description
}

func (h *HelpWindow) Show()         { h.visible = true }
func (h *HelpWindow) Hide()         { h.visible = false }
func (h *HelpWindow) Visible() bool { return h.visible }

// ListWindow is a selectable list of entries. A nil row is a blank
// selection (an empty equipment slot or the "remove" row).
type ListWindow struct {
	Name string

	items    []*data.Entry
	index    int
	open     bool
	active   bool
	help     *HelpWindow
	handlers map[input.Action]func(*ListWindow)
	hook     detail.Hook
	cues     *detail.AudioCueRegistry
}

func NewListWindow(name string, gate detail.Gate, cues *detail.AudioCueRegistry) *ListWindow {
	return &ListWindow{
		Name:     name,
		handlers: map[input.Action]func(*ListWindow){},
		hook:     detail.Hook{Gate: gate},
		cues:     cues,
	}
}

func (l *ListWindow) SetItems(items []*data.Entry) {
	l.items = items
	l.Select(min(l.index, len(items)-1))
}

func (l *ListWindow) Items() []*data.Entry { return l.items }

func (l *ListWindow) Select(i int) {
	if len(l.items) == 0 {
		l.index = -1
	} else {
		l.index = clampInt(i, 0, len(l.items)-1)
	}
	l.updateHelp()
}

func (l *ListWindow) Index() int { return l.index }

// Item returns the highlighted entry, nil for a blank row or empty list.
func (l *ListWindow) Item() *data.Entry {
	if l.index < 0 || l.index >= len(l.items) {
		return nil
	}
	return l.items[l.index]
}

func (l *ListWindow) SetHelpWindow(h *HelpWindow) {
	l.help = h
	l.updateHelp()
}

func (l *ListWindow) updateHelp() {
	if l.help != nil && l.active {
		l.help.SetItem(l.Item())
	}
}

// SetHandler binds fn to action. Binding input.OpenDetail wires the detail
// trigger for this list.
func (l *ListWindow) SetHandler(a input.Action, fn func(*ListWindow)) {
	if a == input.OpenDetail {
		if fn == nil {
			l.hook.Handler = nil
		} else {
			l.hook.Handler = func(detail.SupportsDetailTrigger) { fn(l) }
		}
	}
	if fn == nil {
		delete(l.handlers, a)
		return
	}
	l.handlers[a] = fn
}

func (l *ListWindow) IsHandled(a input.Action) bool {
	_, ok := l.handlers[a]
	return ok
}

func (l *ListWindow) Open()        { l.open = true }
func (l *ListWindow) Close()       { l.open = false }
func (l *ListWindow) IsOpen() bool { return l.open }

func (l *ListWindow) Activate() {
	l.active = true
	l.updateHelp()
}

func (l *ListWindow) Deactivate()  { l.active = false }
func (l *ListWindow) Active() bool { return l.active }

func (l *ListWindow) IsOpenAndActive() bool { return l.open && l.active }

func (l *ListWindow) Highlighted() *data.Entry { return l.Item() }

func (l *ListWindow) HelpBounds() *detail.Rect {
	if l.help == nil || !l.help.Visible() {
		return nil
	}
	r := l.help.Rect
	return &r
}

func (l *ListWindow) DetailHook() *detail.Hook { return &l.hook }

// ProcessHandling handles one tick of input. The detail trigger is checked
// before anything else.
func (l *ListWindow) ProcessHandling(in detail.InputState, d *detail.Dispatcher) {
	if d.Process(l, in) {
		return
	}
	if !l.IsOpenAndActive() {
		return
	}
	switch {
	case in.IsRepeated(input.Down) && len(l.items) > 0:
		l.Select(wrapIndex(l.index+1, len(l.items)))
		l.cues.PlayCursor()
	case in.IsRepeated(input.Up) && len(l.items) > 0:
		l.Select(wrapIndex(l.index-1, len(l.items)))
		l.cues.PlayCursor()
	case in.IsTriggered(input.OK) && l.IsHandled(input.OK):
		l.cues.PlayOK()
		in.Clear()
		l.Deactivate()
		l.handlers[input.OK](l)
	case in.IsRepeated(input.Cancel) && l.IsHandled(input.Cancel):
		l.cues.PlayCancel()
		in.Clear()
		l.Deactivate()
		l.handlers[input.Cancel](l)
	}
}

func wrapIndex(i int, size int) int {
	if size <= 0 {
		return 0
	}
	for i < 0 {
		i += size
	}
	for i >= size {
		i -= size
	}
	return i
}

func clampInt(v int, min int, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
