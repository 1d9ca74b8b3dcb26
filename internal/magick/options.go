package magick

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit color triple.
type RGB [3]uint8

// String renders the color in ImageMagick's rgb() notation.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c[0], c[1], c[2])
}

// ParseRGB parses "R,G,B" with components in 0..255, or a "#rrggbb" hex
// triple.
func ParseRGB(value string) (RGB, error) {
	if trimmed := strings.TrimSpace(value); strings.HasPrefix(trimmed, "#") {
		c, err := colorful.Hex(trimmed)
		if err != nil {
			return RGB{}, fmt.Errorf("color %q: %w", value, err)
		}
		r, g, b := c.RGB255()
		return RGB{r, g, b}, nil
	}
	parts := strings.Split(strings.TrimSpace(value), ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("color %q: expected R,G,B", value)
	}
	var c RGB
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 255 {
			return RGB{}, fmt.Errorf("color %q: component %d out of range", value, i+1)
		}
		c[i] = uint8(n)
	}
	return c, nil
}

// Options holds the per-image settings applied to tool invocations.
// PencilColor and TextColor are carried for drawing and text annotation;
// no operation reads them yet.
type Options struct {
	Quality     int
	ScaleMethod string
	CanvasColor RGB
	PencilColor RGB
	TextColor   RGB
}

// DefaultOptions returns the baked-in settings.
func DefaultOptions() Options {
	return Options{
		Quality:     90,
		ScaleMethod: "smooth",
		CanvasColor: RGB{255, 255, 255},
		PencilColor: RGB{0, 0, 0},
		TextColor:   RGB{0, 0, 0},
	}
}

// scaleFilter maps a scale method to an ImageMagick -filter name. "smooth"
// (or empty) keeps ImageMagick's own choice and yields "".
func scaleFilter(method string) string {
	switch method = strings.ToLower(strings.TrimSpace(method)); method {
	case "", "smooth":
		return ""
	case "fast":
		return "point"
	default:
		return method
	}
}

func validQuality(q int) bool {
	return q >= 1 && q <= 100
}
