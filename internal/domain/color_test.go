package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_String(t *testing.T) {
	c := Color{Alpha: 255, Red: 10, Green: 20, Blue: 30}
	assert.Equal(t, "255;10;20;30", c.String())
}

func TestParseColor_RoundTrip(t *testing.T) {
	colors := []Color{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{128, 1, 2, 3},
	}
	for _, want := range colors {
		got, err := ParseColor(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseColor_AllowsWhitespace(t *testing.T) {
	got, err := ParseColor("255; 10 ;20;30")
	require.NoError(t, err)
	assert.Equal(t, Color{255, 10, 20, 30}, got)
}

func TestParseColor_Invalid(t *testing.T) {
	for _, input := range []string{"", "255;10;20", "255;10;20;30;40", "255;10;20;blue", "256;0;0;0", "-1;0;0;0"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseColor(input)
			assert.ErrorIs(t, err, ErrInvalidColor)
		})
	}
}
