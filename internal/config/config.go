package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SecretTextPolicy selects how text hidden behind a reveal switch would be
// handled. The value is carried through configuration but nothing reads it yet.
type SecretTextPolicy int

const (
	SecretOmit    SecretTextPolicy = 1
	SecretReplace SecretTextPolicy = 2
	SecretPost    SecretTextPolicy = 3
)

func (p SecretTextPolicy) String() string {
	switch p {
	case SecretOmit:
		return "omit"
	case SecretReplace:
		return "replace"
	case SecretPost:
		return "post"
	default:
		return fmt.Sprintf("SecretTextPolicy(%d)", int(p))
	}
}

// Cue is a sound effect descriptor. Volume is 0..100, Pitch 50..150 and
// Pan -100..100, all in percent as authored.
type Cue struct {
	Name   string
	Volume int
	Pitch  int
	Pan    int
}

type Config struct {
	OpenKey       int32
	HiddenLabelA  string
	HiddenLabelB  string
	DetailTextTag string
	DetailTypeTag string
	SecretText    SecretTextPolicy
	Cue           Cue
}

const (
	DefaultOpenKey       = int32(65)
	DefaultHiddenLabelA  = "隠しアイテムＡ"
	DefaultHiddenLabelB  = "隠しアイテムＢ"
	DefaultDetailTextTag = "詳細説明テキスト"
	DefaultDetailTypeTag = "詳細分類ワード"
)

// Parameter names as exported by the plugin manager.
const (
	ParamOpenKey       = "WindowOpenKey"
	ParamHiddenLabelA  = "secretItemA"
	ParamHiddenLabelB  = "secretItemB"
	ParamDetailTextTag = "detailTextTagName"
	ParamDetailTypeTag = "detailTypeTagName"
	ParamSecretText    = "secretTextType"
	ParamSoundEffect   = "soundEffect"
)

func Default() Config {
	return Config{
		OpenKey:       DefaultOpenKey,
		HiddenLabelA:  DefaultHiddenLabelA,
		HiddenLabelB:  DefaultHiddenLabelB,
		DetailTextTag: DefaultDetailTextTag,
		DetailTypeTag: DefaultDetailTypeTag,
		SecretText:    SecretOmit,
		Cue:           DefaultCue(),
	}
}

func DefaultCue() Cue {
	return Cue{Name: "Book1", Volume: 90, Pitch: 100, Pan: 0}
}

// FromParameters builds a Config from raw plugin parameters. Values that
// cannot be used leave the corresponding default in place.
func FromParameters(raw map[string]string) Config {
	cfg := Default()
	params := NormalizeParameters(raw)

	if v, ok := intValue(params[ParamOpenKey]); ok && v > 0 {
		cfg.OpenKey = int32(v)
	}
	if s, ok := stringValue(params[ParamHiddenLabelA]); ok {
		cfg.HiddenLabelA = s
	}
	if s, ok := stringValue(params[ParamHiddenLabelB]); ok {
		cfg.HiddenLabelB = s
	}
	if s, ok := stringValue(params[ParamDetailTextTag]); ok && s != "" {
		cfg.DetailTextTag = s
	}
	if s, ok := stringValue(params[ParamDetailTypeTag]); ok && s != "" {
		cfg.DetailTypeTag = s
	}
	if v, ok := intValue(params[ParamSecretText]); ok && v >= int(SecretOmit) && v <= int(SecretPost) {
		cfg.SecretText = SecretTextPolicy(v)
	}
	if se, ok := params[ParamSoundEffect].(map[string]any); ok {
		cfg.Cue = cueValue(se)
	}
	return cfg
}

func cueValue(se map[string]any) Cue {
	cue := DefaultCue()
	if s, ok := stringValue(se["name"]); ok {
		cue.Name = s
	}
	if v, ok := intValue(se["volume"]); ok {
		cue.Volume = clampInt(v, 0, 100)
	}
	if v, ok := intValue(se["pitch"]); ok {
		cue.Pitch = clampInt(v, 50, 150)
	}
	if v, ok := intValue(se["pan"]); ok {
		cue.Pan = clampInt(v, -100, 100)
	}
	return cue
}

func stringValue(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	default:
		return "", false
	}
}

// intValue mirrors integer parsing of authored parameters: numbers are
// truncated and numeric strings are accepted with surrounding whitespace.
func intValue(v any) (int, bool) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return int(x), true
	case string:
		s := strings.TrimSpace(x)
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int(f), true
		}
		return 0, false
	default:
		return 0, false
	}
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
