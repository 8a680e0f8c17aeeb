package scene

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ARGBHex formats an alpha value (0..1) and a color as "#aarrggbb", the
// color convention of the document format.
func ARGBHex(alpha float64, c colorful.Color) string {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	a := uint8(math.Round(alpha * 255))
	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02x%02x%02x%02x", a, r, g, b)
}

// ParseARGB parses "#aarrggbb" or "#rrggbb" (alpha defaults to opaque).
// Returns the alpha in 0..1 and the opaque color component.
func ParseARGB(s string) (float64, colorful.Color, error) {
	raw := strings.TrimPrefix(s, "#")
	switch len(raw) {
	case 6:
		c, err := colorful.Hex("#" + raw)
		if err != nil {
			return 0, colorful.Color{}, err
		}
		return 1, c, nil
	case 8:
		a, err := strconv.ParseUint(raw[:2], 16, 8)
		if err != nil {
			return 0, colorful.Color{}, fmt.Errorf("invalid alpha in %q: %w", s, err)
		}
		c, err := colorful.Hex("#" + raw[2:])
		if err != nil {
			return 0, colorful.Color{}, err
		}
		return float64(a) / 255, c, nil
	default:
		return 0, colorful.Color{}, fmt.Errorf("invalid color %q: want #rrggbb or #aarrggbb", s)
	}
}
