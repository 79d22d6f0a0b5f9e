package gui

import (
	"os"
	"path/filepath"

	"github.com/appengine-ltd/itemdetail/internal/config"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var soundExtensions = []string{".ogg", ".wav", ".mp3"}

// soundPlayer plays cues from dir/<name>.<ext>, loading each file on first
// use. Missing files are remembered and stay silent.
type soundPlayer struct {
	dir    string
	sounds map[string]rl.Sound
	ready  bool
}

func newSoundPlayer(dir string) *soundPlayer {
	rl.InitAudioDevice()
	return &soundPlayer{
		dir:    dir,
		sounds: map[string]rl.Sound{},
		ready:  rl.IsAudioDeviceReady(),
	}
}

func (p *soundPlayer) Play(cue config.Cue) {
	if !p.ready || cue.Name == "" {
		return
	}
	snd, ok := p.sounds[cue.Name]
	if !ok {
		snd = p.load(cue.Name)
		p.sounds[cue.Name] = snd
	}
	if snd.FrameCount == 0 {
		return
	}
	rl.SetSoundVolume(snd, float32(cue.Volume)/100)
	rl.SetSoundPitch(snd, float32(cue.Pitch)/100)
	rl.SetSoundPan(snd, soundPan(cue.Pan))
	rl.PlaySound(snd)
}

func (p *soundPlayer) load(name string) rl.Sound {
	for _, ext := range soundExtensions {
		path := filepath.Join(p.dir, name+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return rl.LoadSound(path)
	}
	return rl.Sound{}
}

func (p *soundPlayer) Close() error {
	for name, snd := range p.sounds {
		if snd.FrameCount != 0 {
			rl.UnloadSound(snd)
		}
		delete(p.sounds, name)
	}
	if p.ready {
		rl.CloseAudioDevice()
		p.ready = false
	}
	return nil
}

// soundPan maps -100 (left) .. 100 (right) onto raylib's 0..1 with 0.5 centred.
func soundPan(pan int) float32 {
	return 0.5 + float32(pan)/200
}
