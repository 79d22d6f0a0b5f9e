package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const DefaultSettingsFile = "itemdetail.toml"

// Settings configures the demo hosts, not the overlay itself.
type Settings struct {
	DataDir    string `toml:"data_dir"`
	ParamsFile string `toml:"params_file"`
	SoundDir   string `toml:"sound_dir"`
	FontFile   string `toml:"font_file"`
	Width      int32  `toml:"width"`
	Height     int32  `toml:"height"`
	BoxWidth   int32  `toml:"box_width"`
	BoxHeight  int32  `toml:"box_height"`
}

func DefaultSettings() Settings {
	return Settings{
		DataDir:    "data",
		ParamsFile: filepath.Join("data", "plugin_params.json"),
		SoundDir:   filepath.Join("audio", "se"),
		Width:      1280,
		Height:     720,
		BoxWidth:   1280,
		BoxHeight:  720,
	}
}

func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("reading settings: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("parsing settings: %w", err)
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return s, fmt.Errorf("resolving settings directory: %w", err)
	}
	for _, p := range []*string{&s.DataDir, &s.ParamsFile, &s.SoundDir, &s.FontFile} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}

	def := DefaultSettings()
	if s.Width <= 0 {
		s.Width = def.Width
	}
	if s.Height <= 0 {
		s.Height = def.Height
	}
	if s.BoxWidth <= 0 || s.BoxWidth > s.Width {
		s.BoxWidth = s.Width
	}
	if s.BoxHeight <= 0 || s.BoxHeight > s.Height {
		s.BoxHeight = s.Height
	}
	return s, nil
}

// ProjectDir is the game project root, the parent of the data directory.
func (s Settings) ProjectDir() string {
	return filepath.Dir(s.DataDir)
}

// IconSheet is the 16-column icon sheet inside the project.
func (s Settings) IconSheet() string {
	return filepath.Join(s.ProjectDir(), "img", "system", "IconSet.png")
}

// WindowFrame is the nine-slice window frame image inside the project.
func (s Settings) WindowFrame() string {
	return filepath.Join(s.ProjectDir(), "img", "system", "window_9slice.png")
}
