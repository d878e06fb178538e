package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an ARGB color with 0..255 channels. Its text form is "a;r;g;b".
type Color struct {
	Alpha uint8 `json:"alpha"`
	Red   uint8 `json:"red"`
	Green uint8 `json:"green"`
	Blue  uint8 `json:"blue"`
}

// String renders the "a;r;g;b" text form used by the item codec.
func (c Color) String() string {
	return fmt.Sprintf("%d;%d;%d;%d", c.Alpha, c.Red, c.Green, c.Blue)
}

// ParseColor parses the "a;r;g;b" text form.
func ParseColor(s string) (Color, error) {
	parts := strings.Split(s, ";")
	if len(parts) != 4 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var channels [4]uint8
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v < 0 || v > 255 {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		channels[i] = uint8(v)
	}

	return Color{Alpha: channels[0], Red: channels[1], Green: channels[2], Blue: channels[3]}, nil
}
