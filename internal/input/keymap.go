package input

// Action names a logical input. Lists bind handlers to actions, not keys.
type Action string

const (
	OK         Action = "ok"
	Cancel     Action = "cancel"
	Up         Action = "up"
	Down       Action = "down"
	OpenDetail Action = "detailDescriptionWindowOpenKey"
)

// Key codes follow raylib's numbering so the raylib host can poll them
// directly.
const (
	KeySpace  int32 = 32
	KeyX      int32 = 88
	KeyZ      int32 = 90
	KeyEscape int32 = 256
	KeyEnter  int32 = 257
	KeyDown   int32 = 264
	KeyUp     int32 = 265
)

// Keymap binds physical key codes to actions.
type Keymap map[int32]Action

func DefaultKeymap(openKey int32) Keymap {
	km := Keymap{
		KeyEnter:  OK,
		KeySpace:  OK,
		KeyZ:      OK,
		KeyEscape: Cancel,
		KeyX:      Cancel,
		KeyUp:     Up,
		KeyDown:   Down,
	}
	km[openKey] = OpenDetail
	return km
}

// Keys returns every bound key code.
func (km Keymap) Keys() []int32 {
	keys := make([]int32, 0, len(km))
	for k := range km {
		keys = append(keys, k)
	}
	return keys
}
