package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSON_Plain(t *testing.T) {
	s, err := ToJSON(Plain("hello"))
	require.NoError(t, err)
	assert.Equal(t, `{"text":"hello"}`, s)
}

func TestFromJSON_RoundTrip(t *testing.T) {
	c := Component{
		Text:  "Epic ",
		Color: "gold",
		Bold:  true,
		Extra: []Component{{Text: "Sword", Color: "red"}},
	}

	s, err := ToJSON(c)
	require.NoError(t, err)
	restored, err := FromJSON(s)
	require.NoError(t, err)
	assert.Equal(t, c, restored)
}

func TestFromJSON_Malformed(t *testing.T) {
	_, err := FromJSON(`{"text": unterminated`)
	assert.Error(t, err)
}

func TestTranslateColors_NoCodes(t *testing.T) {
	c := TranslateColors("plain text")
	assert.Equal(t, Plain("plain text"), c)
}

func TestTranslateColors_SingleColor(t *testing.T) {
	c := TranslateColors("&cAlert")
	assert.Equal(t, "red", c.Color)
	assert.Equal(t, "Alert", c.Text)
}

func TestTranslateColors_MultipleSegments(t *testing.T) {
	c := TranslateColors("&aGo &lnow&r please")

	require.Len(t, c.Extra, 3)
	assert.Equal(t, "Go ", c.Extra[0].Text)
	assert.Equal(t, "green", c.Extra[0].Color)

	assert.Equal(t, "now", c.Extra[1].Text)
	assert.Equal(t, "green", c.Extra[1].Color)
	assert.True(t, c.Extra[1].Bold)

	assert.Equal(t, " please", c.Extra[2].Text)
	assert.Empty(t, c.Extra[2].Color)
	assert.False(t, c.Extra[2].Bold)
}

func TestTranslateColors_SectionSign(t *testing.T) {
	c := TranslateColors("§bOcean")
	assert.Equal(t, "aqua", c.Color)
	assert.Equal(t, "Ocean", c.Text)
}

func TestTranslateColors_UppercaseCode(t *testing.T) {
	c := TranslateColors("&CLoud")
	assert.Equal(t, "red", c.Color)
	assert.Equal(t, "Loud", c.Text)
}

func TestTranslateColors_UnknownCodeKeptVerbatim(t *testing.T) {
	c := TranslateColors("5 &x 3")
	assert.Equal(t, "5 &x 3", PlainText(c))
}

func TestPlainText_Nested(t *testing.T) {
	c := Component{
		Text: "a",
		Extra: []Component{
			{Text: "b", Extra: []Component{{Text: "c"}}},
			{Text: "d"},
		},
	}
	assert.Equal(t, "abcd", PlainText(c))
}
