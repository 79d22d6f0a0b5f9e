package detail

import "github.com/appengine-ltd/itemdetail/internal/config"

// Player plays a sound effect. Hosts own decoding and caching.
type Player interface {
	Play(cue config.Cue)
	Close() error
}

// SystemCues are the stock list sounds the overlay shares with its host.
type SystemCues struct {
	Cursor config.Cue
	OK     config.Cue
	Cancel config.Cue
	Buzzer config.Cue
}

func DefaultSystemCues() SystemCues {
	return SystemCues{
		Cursor: config.Cue{Name: "Cursor1", Volume: 90, Pitch: 100},
		OK:     config.Cue{Name: "Decision1", Volume: 90, Pitch: 100},
		Cancel: config.Cue{Name: "Cancel2", Volume: 90, Pitch: 100},
		Buzzer: config.Cue{Name: "Buzzer1", Volume: 90, Pitch: 100},
	}
}

// AudioCueRegistry is created once at startup and handed to every scene
// that can open the detail window.
type AudioCueRegistry struct {
	player Player
	open   config.Cue
	system SystemCues
	closed bool
}

func NewAudioCueRegistry(p Player, open config.Cue, system SystemCues) *AudioCueRegistry {
	return &AudioCueRegistry{player: p, open: open, system: system}
}

func (r *AudioCueRegistry) OpenCue() config.Cue {
	if r == nil {
		return config.Cue{}
	}
	return r.open
}

func (r *AudioCueRegistry) PlayOpen() {
	if r != nil {
		r.play(r.open)
	}
}

func (r *AudioCueRegistry) PlayBuzzer() {
	if r != nil {
		r.play(r.system.Buzzer)
	}
}

func (r *AudioCueRegistry) PlayCancel() {
	if r != nil {
		r.play(r.system.Cancel)
	}
}

func (r *AudioCueRegistry) PlayCursor() {
	if r != nil {
		r.play(r.system.Cursor)
	}
}

func (r *AudioCueRegistry) PlayOK() {
	if r != nil {
		r.play(r.system.OK)
	}
}

func (r *AudioCueRegistry) play(cue config.Cue) {
	if r.closed || r.player == nil {
		return
	}
	r.player.Play(cue)
}

// Close releases the player. Later plays are silent.
func (r *AudioCueRegistry) Close() error {
	if r == nil {
		return nil
	}
	if r.closed {
		return nil
	}
	r.closed = true
	if r.player == nil {
		return nil
	}
	return r.player.Close()
}
