package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeParametersFallsBackToLiteralStrings(t *testing.T) {
	got := NormalizeParameters(map[string]string{
		"num":    "65",
		"quoted": `"Book1"`,
		"null":   "null",
		"plain":  "隠しアイテムＡ",
		"empty":  "",
		"struct": `{"name":"Book1","volume":"90"}`,
	})

	if v, ok := got["num"].(float64); !ok || v != 65 {
		t.Fatalf("expected num to decode to 65, got %#v", got["num"])
	}
	if got["quoted"] != `"Book1"` {
		t.Fatalf("expected quoted value kept verbatim, got %#v", got["quoted"])
	}
	if got["null"] != "null" {
		t.Fatalf("expected null literal kept as string, got %#v", got["null"])
	}
	if got["plain"] != "隠しアイテムＡ" {
		t.Fatalf("expected unparseable value kept, got %#v", got["plain"])
	}
	if got["empty"] != "" {
		t.Fatalf("expected empty value kept, got %#v", got["empty"])
	}
	se, ok := got["struct"].(map[string]any)
	if !ok {
		t.Fatalf("expected struct parameter to decode to an object, got %#v", got["struct"])
	}
	if se["volume"] != "90" {
		t.Fatalf("expected nested values to stay strings, got %#v", se["volume"])
	}
}

func TestFromParametersMapsPluginNames(t *testing.T) {
	cfg := FromParameters(map[string]string{
		ParamOpenKey:       "68",
		ParamHiddenLabelA:  "Relic",
		ParamHiddenLabelB:  "Curio",
		ParamDetailTextTag: "DetailText",
		ParamDetailTypeTag: "DetailType",
		ParamSecretText:    "3",
		ParamSoundEffect:   `{"name":"Cursor2","volume":"250","pitch":"40","pan":"-20"}`,
	})

	if cfg.OpenKey != 68 {
		t.Fatalf("expected open key 68, got %d", cfg.OpenKey)
	}
	if cfg.HiddenLabelA != "Relic" || cfg.HiddenLabelB != "Curio" {
		t.Fatalf("unexpected hidden labels: %q %q", cfg.HiddenLabelA, cfg.HiddenLabelB)
	}
	if cfg.DetailTextTag != "DetailText" || cfg.DetailTypeTag != "DetailType" {
		t.Fatalf("unexpected tags: %q %q", cfg.DetailTextTag, cfg.DetailTypeTag)
	}
	if cfg.SecretText != SecretPost {
		t.Fatalf("expected post policy, got %v", cfg.SecretText)
	}
	want := Cue{Name: "Cursor2", Volume: 100, Pitch: 50, Pan: -20}
	if cfg.Cue != want {
		t.Fatalf("expected clamped cue %+v, got %+v", want, cfg.Cue)
	}
}

func TestFromParametersKeepsDefaultsForUnusableValues(t *testing.T) {
	cfg := FromParameters(map[string]string{
		ParamOpenKey:     "abc",
		ParamSecretText:  "9",
		ParamSoundEffect: "",
	})
	def := Default()
	if cfg != def {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadParametersMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadParameters(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadParametersReadsExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	body := `{"WindowOpenKey":"70","detailTypeTagName":"T","soundEffect":"{\"name\":\"Book2\",\"volume\":\"80\",\"pitch\":\"110\",\"pan\":\"5\"}"}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadParameters(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OpenKey != 70 || cfg.DetailTypeTag != "T" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Cue != (Cue{Name: "Book2", Volume: 80, Pitch: 110, Pan: 5}) {
		t.Fatalf("unexpected cue: %+v", cfg.Cue)
	}
}

func TestLoadParametersRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadParameters(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadSettingsResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultSettingsFile)
	body := "data_dir = \"db\"\nwidth = 816\nheight = 624\nbox_width = 2000\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	abs, _ := filepath.Abs(dir)
	if s.DataDir != filepath.Join(abs, "db") {
		t.Fatalf("expected resolved data dir, got %q", s.DataDir)
	}
	if s.Width != 816 || s.Height != 624 {
		t.Fatalf("unexpected size %dx%d", s.Width, s.Height)
	}
	if s.BoxWidth != 816 {
		t.Fatalf("expected box width clamped to screen width, got %d", s.BoxWidth)
	}
	if s.BoxHeight != 624 {
		t.Fatalf("expected box height to default to screen height, got %d", s.BoxHeight)
	}
}

func TestSettingsProjectPaths(t *testing.T) {
	s := Settings{DataDir: filepath.Join("game", "data")}
	if got, want := s.IconSheet(), filepath.Join("game", "img", "system", "IconSet.png"); got != want {
		t.Fatalf("IconSheet() = %q, want %q", got, want)
	}
	if got, want := s.WindowFrame(), filepath.Join("game", "img", "system", "window_9slice.png"); got != want {
		t.Fatalf("WindowFrame() = %q, want %q", got, want)
	}
}
