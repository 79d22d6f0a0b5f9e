package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// NormalizeParameters decodes each raw parameter value as JSON where it is
// valid JSON. The literal "null" and values already wrapped in double quotes
// are kept verbatim, and anything that fails to parse stays a plain string.
func NormalizeParameters(raw map[string]string) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(raw string) any {
	if raw == "null" || (raw != "" && raw[0] == '"' && raw[len(raw)-1] == '"') {
		return raw
	}
	if !gjson.Valid(raw) {
		return raw
	}
	return gjson.Parse(raw).Value()
}

// LoadParameters reads a plugin-manager export: a flat JSON object of
// parameter name to string value. A missing file yields Default().
func LoadParameters(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read parameters: %w", err)
	}
	raw, err := parseParameterObject(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse parameters %s: %w", path, err)
	}
	return FromParameters(raw), nil
}

func parseParameterObject(data []byte) (map[string]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid json")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.New("expected a json object")
	}
	raw := map[string]string{}
	root.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.String {
			raw[key.String()] = value.String()
		} else {
			raw[key.String()] = value.Raw
		}
		return true
	})
	return raw, nil
}
