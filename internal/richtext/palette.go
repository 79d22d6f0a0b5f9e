package richtext

import (
	"fmt"
	"strconv"
)

// Palette is the 32-colour text palette addressed by \C[n].
var Palette = [32]string{
	"#FFFFFF", "#20A0D6", "#FF784C", "#66CC40", "#99CCFF", "#CCC0FF", "#FFFFA0", "#808080",
	"#C0C0C0", "#2080CC", "#FF3810", "#00A010", "#3E9ADE", "#A098FF", "#FFCC20", "#000000",
	"#84AAFF", "#FFFF40", "#FF2020", "#202040", "#E08040", "#F0C040", "#4080C0", "#40C0F0",
	"#80FF80", "#C08080", "#8080FF", "#FF80FF", "#00A040", "#00E060", "#A060E0", "#C080FF",
}

// ColorHex returns the palette entry for n, wrapping out-of-range indices.
func ColorHex(n int) string {
	if n < 0 {
		n = -n
	}
	return Palette[n%len(Palette)]
}

// RGB decodes a "#RRGGBB" palette entry.
func RGB(hex string) (uint8, uint8, uint8, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, fmt.Errorf("bad colour %q", hex)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad colour %q: %w", hex, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}
