package detail

import "github.com/appengine-ltd/itemdetail/internal/data"

// Focusable takes part in the per-scene input focus protocol.
type Focusable interface {
	Activate()
	Deactivate()
	Active() bool
}

// SupportsDetailTrigger is implemented by any list or grid that can open
// the detail window. Widgets carry a Hook by composition.
type SupportsDetailTrigger interface {
	Focusable
	IsOpenAndActive() bool
	Highlighted() *data.Entry
	// HelpBounds is the help region shown for the widget, or nil.
	HelpBounds() *Rect
	DetailHook() *Hook
}

// Hook is the per-widget binding of the open action.
type Hook struct {
	Gate    Gate
	Handler func(SupportsDetailTrigger)
}

func (h *Hook) Handled() bool {
	return h != nil && h.Handler != nil
}

// Dispatcher runs the overlay check ahead of a widget's own input handling.
type Dispatcher struct {
	Detector TriggerDetector
	Cues     *AudioCueRegistry
}

func NewDispatcher(v Viewport, cues *AudioCueRegistry) *Dispatcher {
	return &Dispatcher{Detector: NewTriggerDetector(v), Cues: cues}
}

// Process reports whether the open action consumed this tick. A rejected
// open still consumes the tick; it only plays the buzzer.
func (d *Dispatcher) Process(w SupportsDetailTrigger, in InputState) bool {
	h := w.DetailHook()
	if !h.Handled() || !w.IsOpenAndActive() {
		return false
	}
	if !d.Detector.Detect(in, w.HelpBounds()) {
		return false
	}
	if !IsEligible(h.Gate, w.Highlighted()) {
		d.Cues.PlayBuzzer()
		return true
	}
	d.Cues.PlayOpen()
	in.Clear()
	w.Deactivate()
	h.Handler(w)
	return true
}
