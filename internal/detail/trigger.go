package detail

import "github.com/appengine-ltd/itemdetail/internal/input"

// InputState is the per-tick input view the overlay consumes.
// *input.State implements it.
type InputState interface {
	IsTriggered(a input.Action) bool
	IsRepeated(a input.Action) bool
	PointerTriggered() bool
	PointerPosition() (int, int)
	Clear()
}

// Rect is a rectangle in box coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Viewport describes letterboxing: the game box is centred inside the screen.
type Viewport struct {
	ScreenWidth, ScreenHeight int
	BoxWidth, BoxHeight       int
}

func (v Viewport) Offset() (int, int) {
	return (v.ScreenWidth - v.BoxWidth) / 2, (v.ScreenHeight - v.BoxHeight) / 2
}

type TriggerDetector struct {
	Action   input.Action
	Viewport Viewport
}

func NewTriggerDetector(v Viewport) TriggerDetector {
	return TriggerDetector{Action: input.OpenDetail, Viewport: v}
}

// Detect reports whether the open action fired this tick. When a help region
// is bound, a pointer press decides the outcome on its own and key state is
// not consulted.
func (d TriggerDetector) Detect(in InputState, help *Rect) bool {
	if help != nil && in.PointerTriggered() {
		dx, dy := d.Viewport.Offset()
		x, y := in.PointerPosition()
		return help.Translate(dx, dy).Contains(x, y)
	}
	return in.IsRepeated(d.Action)
}
