// Package richtext implements the rich-text component codec used by the item
// serializer: components are stored as their JSON string form, and plain
// strings with legacy &-style color codes are upgraded to components.
package richtext

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Component is a rich-text node. Children in Extra inherit the parent's
// formatting in renderers; the codec only cares about structure.
type Component struct {
	Text          string      `json:"text"`
	Color         string      `json:"color,omitempty"`
	Bold          bool        `json:"bold,omitempty"`
	Italic        bool        `json:"italic,omitempty"`
	Underlined    bool        `json:"underlined,omitempty"`
	Strikethrough bool        `json:"strikethrough,omitempty"`
	Obfuscated    bool        `json:"obfuscated,omitempty"`
	Extra         []Component `json:"extra,omitempty"`
}

// Plain returns an unformatted text component.
func Plain(text string) Component {
	return Component{Text: text}
}

// ToJSON renders the component as its canonical JSON string form.
func ToJSON(c Component) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal component: %w", err)
	}
	return string(data), nil
}

// FromJSON parses the JSON string form of a component.
func FromJSON(s string) (Component, error) {
	var c Component
	if err := json.Unmarshal([]byte(s), &c); err != nil {
		return Component{}, fmt.Errorf("failed to unmarshal component: %w", err)
	}
	return c, nil
}

// legacy color code -> component color name
var legacyColors = map[byte]string{
	'0': "black", '1': "dark_blue", '2': "dark_green", '3': "dark_aqua",
	'4': "dark_red", '5': "dark_purple", '6': "gold", '7': "gray",
	'8': "dark_gray", '9': "blue", 'a': "green", 'b': "aqua",
	'c': "red", 'd': "light_purple", 'e': "yellow", 'f': "white",
}

// TranslateColors converts a legacy string with &-style (or section-sign)
// formatting codes into a component tree. Strings without codes come back as
// a single plain component.
func TranslateColors(s string) Component {
	normalized := strings.ReplaceAll(s, "§", "&")
	if !strings.Contains(normalized, "&") {
		return Plain(s)
	}

	root := Component{}
	current := Component{}
	var text strings.Builder

	flush := func() {
		if text.Len() == 0 {
			return
		}
		current.Text = text.String()
		root.Extra = append(root.Extra, current)
		next := Component{
			Color:         current.Color,
			Bold:          current.Bold,
			Italic:        current.Italic,
			Underlined:    current.Underlined,
			Strikethrough: current.Strikethrough,
			Obfuscated:    current.Obfuscated,
		}
		current = next
		text.Reset()
	}

	for i := 0; i < len(normalized); i++ {
		ch := normalized[i]
		if ch != '&' || i+1 >= len(normalized) {
			text.WriteByte(ch)
			continue
		}

		code := normalized[i+1] | 0x20 // lowercase ASCII
		if color, ok := legacyColors[code]; ok {
			flush()
			current = Component{Color: color}
			i++
			continue
		}

		switch code {
		case 'l':
			flush()
			current.Bold = true
		case 'o':
			flush()
			current.Italic = true
		case 'n':
			flush()
			current.Underlined = true
		case 'm':
			flush()
			current.Strikethrough = true
		case 'k':
			flush()
			current.Obfuscated = true
		case 'r':
			flush()
			current = Component{}
		default:
			text.WriteByte(ch)
			continue
		}
		i++
	}
	flush()

	if len(root.Extra) == 1 && root.Text == "" {
		return root.Extra[0]
	}
	return root
}

// PlainText flattens a component tree into its unformatted text.
func PlainText(c Component) string {
	var b strings.Builder
	b.WriteString(c.Text)
	for _, child := range c.Extra {
		b.WriteString(PlainText(child))
	}
	return b.String()
}
