package detail

import (
	"github.com/appengine-ltd/itemdetail/internal/config"
	"github.com/appengine-ltd/itemdetail/internal/data"
	"github.com/appengine-ltd/itemdetail/internal/input"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Text colour indices as understood by the hosts' palettes.
const (
	ColorNormal = 0
	ColorSystem = 16
)

// Surface is the content area of the detail window. Hosts implement it on
// top of their own font, icon and rich-text machinery.
type Surface interface {
	Clear()
	LineHeight() int
	TextPadding() int
	ContentsWidth() int
	DrawItemName(icon int, name string, x, y, width int)
	DrawText(text string, x, y, width int, align Align)
	// DrawTextEx renders text with control sequences and returns the width used.
	DrawTextEx(text string, x, y int) int
	ChangeTextColor(color int)
	ResetTextColor()
}

type State int

const (
	StateClosed State = iota
	StateOpening
	StateOpen
	StateActive
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateActive:
		return "active"
	case StateClosing:
		return "closing"
	default:
		return "closed"
	}
}

const (
	maxOpenness  = 255
	opennessStep = 32
)

// Controller is the detail window: a modal overlay that renders one entry's
// description and takes input focus from the list that opened it.
type Controller struct {
	surface Surface
	cfg     config.Config
	tables  TypeTables

	entry    *data.Entry
	visible  bool
	active   bool
	openness int
	renders  int

	returnFocus Focusable
	hook        Hook
	onCancel    func()
}

func NewController(s Surface, cfg config.Config, tables TypeTables) *Controller {
	return &Controller{
		surface: s,
		cfg:     cfg,
		tables:  tables,
		hook:    Hook{Gate: AlwaysEligible},
	}
}

// Bind shows e. Binding the entry already shown does nothing.
func (c *Controller) Bind(e *data.Entry) {
	if c.entry == e {
		return
	}
	c.entry = e
	c.renders++
	c.surface.Clear()
	if e == nil {
		return
	}
	c.render(ResolveWithFallback(e, c.cfg, c.tables, ""))
}

func (c *Controller) render(desc Description) {
	s := c.surface
	lh := s.LineHeight()
	pad := s.TextPadding()

	s.DrawItemName(desc.IconIndex, desc.Name, 0, 0, s.ContentsWidth())
	s.ChangeTextColor(ColorSystem)
	s.DrawText(desc.Category, 0, 0, s.ContentsWidth()-pad, AlignRight)
	s.ResetTextColor()

	s.DrawTextEx(desc.Profile, pad, lh)

	if len(desc.DetailLines) == 0 {
		return
	}
	y := lh * 3
	for _, line := range desc.DetailLines {
		// Blank lines only advance; drawing them would apply a colour reset
		// the author did not write.
		if line != "" {
			s.DrawTextEx(line, pad, y)
		}
		y += lh
	}
	s.ResetTextColor()
}

func (c *Controller) Entry() *data.Entry { return c.entry }

// RenderCount is how many times the content was redrawn.
func (c *Controller) RenderCount() int { return c.renders }

func (c *Controller) Open() {
	c.visible = true
}

// Activate gives the window input focus. It has no effect while hidden.
func (c *Controller) Activate() {
	if !c.visible {
		return
	}
	if c.returnFocus != nil && c.returnFocus.Active() {
		c.returnFocus.Deactivate()
	}
	c.active = true
}

func (c *Controller) Deactivate() {
	c.active = false
}

func (c *Controller) Active() bool { return c.active }

// Close hides the window and hands focus back to the return target. Closing
// a window that is already closing or closed does nothing.
func (c *Controller) Close() {
	if !c.visible {
		return
	}
	c.visible = false
	c.active = false
	if c.returnFocus != nil {
		c.returnFocus.Activate()
	}
}

// SetReturnFocus sets the widget that regains focus on Close.
func (c *Controller) SetReturnFocus(f Focusable) {
	c.returnFocus = f
}

func (c *Controller) ReturnFocus() Focusable { return c.returnFocus }

// SetCloseHandler routes both cancel and the open action to fn while the
// window has focus.
func (c *Controller) SetCloseHandler(fn func()) {
	c.onCancel = fn
	if fn == nil {
		c.hook.Handler = nil
		return
	}
	c.hook.Handler = func(SupportsDetailTrigger) { fn() }
}

// Update advances the open/close animation by one tick.
func (c *Controller) Update() {
	switch {
	case c.visible && c.openness < maxOpenness:
		c.openness = min(maxOpenness, c.openness+opennessStep)
	case !c.visible && c.openness > 0:
		c.openness = max(0, c.openness-opennessStep)
	}
}

// Openness is the animation progress, 0 closed to 255 fully open.
func (c *Controller) Openness() int { return c.openness }

func (c *Controller) Visible() bool { return c.visible }

func (c *Controller) State() State {
	switch {
	case !c.visible && c.openness > 0:
		return StateClosing
	case !c.visible:
		return StateClosed
	case c.active:
		return StateActive
	case c.openness < maxOpenness:
		return StateOpening
	default:
		return StateOpen
	}
}

func (c *Controller) IsOpenAndActive() bool {
	return c.visible && c.openness >= maxOpenness && c.active
}

func (c *Controller) Highlighted() *data.Entry { return c.entry }

func (c *Controller) HelpBounds() *Rect { return nil }

func (c *Controller) DetailHook() *Hook { return &c.hook }

// ProcessHandling handles one tick of input while the window has focus.
func (c *Controller) ProcessHandling(in InputState, d *Dispatcher) {
	if d.Process(c, in) {
		return
	}
	if !c.IsOpenAndActive() || c.onCancel == nil {
		return
	}
	if in.IsRepeated(input.Cancel) {
		d.Cues.PlayCancel()
		in.Clear()
		c.Deactivate()
		c.onCancel()
	}
}
