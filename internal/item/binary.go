package item

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/TavstalDev/MineCoreLib/internal/domain"
)

// The binary object stream is canonical CBOR: map keys are sorted on encode
// so equal items yield byte-identical blobs, and decoded maps come back
// string-keyed so the IR readers see the same shapes as the YAML path.
var (
	binaryEnc cbor.EncMode
	binaryDec cbor.DecMode
)

func init() {
	var err error
	binaryEnc, err = cbor.EncOptions{Sort: cbor.SortCanonical}.EncMode()
	if err != nil {
		panic(err)
	}
	binaryDec, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// SerializeItemToBytes encodes one item as a binary blob.
func (c *codec) SerializeItemToBytes(it domain.Item) ([]byte, []Diagnostic, error) {
	data, diags := c.SerializeItem(it)
	blob, err := binaryEnc.Marshal(data)
	return blob, diags, err
}

// SerializeItemListToBytes encodes a list of items as one binary blob,
// preserving order.
func (c *codec) SerializeItemListToBytes(items []domain.Item) ([]byte, []Diagnostic, error) {
	list, diags := c.SerializeItemList(items)
	blob, err := binaryEnc.Marshal(list)
	return blob, diags, err
}

// DeserializeItemFromBytes decodes a binary blob holding exactly one item.
func (c *codec) DeserializeItemFromBytes(blob []byte) (*domain.Item, []Diagnostic, error) {
	var root any
	if err := binaryDec.Unmarshal(blob, &root); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	data, ok := root.(map[string]any)
	if !ok {
		return nil, nil, fmt.Errorf("%w: expected an object, got %s", domain.ErrInvalidShape, typeName(root))
	}
	return c.DeserializeItem(data)
}

// DeserializeItemListFromBytes decodes a binary blob holding a list of
// items. Entries that fail to decode are dropped and reported as
// diagnostics.
func (c *codec) DeserializeItemListFromBytes(blob []byte) ([]domain.Item, []Diagnostic, error) {
	var root any
	if err := binaryDec.Unmarshal(blob, &root); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if _, ok := root.([]any); !ok {
		return nil, nil, fmt.Errorf("%w: expected a list of objects, got %s", domain.ErrInvalidShape, typeName(root))
	}

	list, _ := asMapList(root, c.log)
	items, diags := c.DeserializeItemList(list)
	return items, diags, nil
}
