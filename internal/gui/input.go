package gui

import (
	"github.com/appengine-ltd/itemdetail/internal/input"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// pollInput samples the mapped keys and the left mouse button for one frame.
func pollInput(km input.Keymap) input.Sample {
	var s input.Sample
	for _, key := range km.Keys() {
		if rl.IsKeyDown(key) {
			s.Down = append(s.Down, key)
		}
	}
	pos := rl.GetMousePosition()
	s.Pointer = input.Pointer{
		X:       int(pos.X),
		Y:       int(pos.Y),
		Pressed: rl.IsMouseButtonPressed(rl.MouseButtonLeft),
	}
	return s
}
