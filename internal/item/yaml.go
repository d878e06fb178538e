package item

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/TavstalDev/MineCoreLib/internal/domain"
)

// SerializeItemToYAML renders one item as a YAML document.
func (c *codec) SerializeItemToYAML(it domain.Item) (string, []Diagnostic, error) {
	data, diags := c.SerializeItem(it)
	doc, err := encodeYAML(data)
	return doc, diags, err
}

// SerializeItemListToYAML renders a list of items as one YAML sequence
// document, preserving order.
func (c *codec) SerializeItemListToYAML(items []domain.Item) (string, []Diagnostic, error) {
	list, diags := c.SerializeItemList(items)
	doc, err := encodeYAML(list)
	return doc, diags, err
}

// DeserializeItemFromYAML parses a YAML document holding exactly one item.
func (c *codec) DeserializeItemFromYAML(doc string) (*domain.Item, []Diagnostic, error) {
	var root any
	if err := yaml.Unmarshal([]byte(doc), &root); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	data, ok := root.(map[string]any)
	if !ok {
		return nil, nil, fmt.Errorf("%w: expected a mapping document, got %s", domain.ErrInvalidShape, typeName(root))
	}
	return c.DeserializeItem(data)
}

// DeserializeItemListFromYAML parses a YAML sequence document of items.
// Entries that fail to decode are dropped and reported as diagnostics.
func (c *codec) DeserializeItemListFromYAML(doc string) ([]domain.Item, []Diagnostic, error) {
	var root any
	if err := yaml.Unmarshal([]byte(doc), &root); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if _, ok := root.([]any); !ok {
		return nil, nil, fmt.Errorf("%w: expected a sequence document, got %s", domain.ErrInvalidShape, typeName(root))
	}

	list, _ := asMapList(root, c.log)
	items, diags := c.DeserializeItemList(list)
	return items, diags, nil
}

func encodeYAML(v any) (string, error) {
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
