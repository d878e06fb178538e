package item

import (
	"fmt"

	"github.com/TavstalDev/MineCoreLib/internal/domain"
)

// Crossbow projectiles are items themselves; the whole list is encoded
// recursively as one binary blob IR value.

func serializeCrossbow(c *codec, it *domain.Item, data IR) error {
	v := it.Variant
	if v == nil || v.Kind != domain.KindCrossbow || v.Crossbow == nil || len(v.Crossbow.Projectiles) == 0 {
		return nil
	}

	blob, _, err := c.SerializeItemListToBytes(v.Crossbow.Projectiles)
	if err != nil {
		return fmt.Errorf("failed to encode projectiles: %w", err)
	}
	data[keyProjectiles] = blob
	return nil
}

func deserializeCrossbow(c *codec, it *domain.Item, data IR) error {
	if it.Variant == nil || it.Variant.Kind != domain.KindCrossbow {
		return nil
	}
	raw, present := data[keyProjectiles]
	if !present {
		return nil
	}

	blob, ok := asBytes(raw)
	if !ok {
		return fmt.Errorf("%w: expected projectiles to be a byte array", domain.ErrInvalidShape)
	}

	projectiles, _, err := c.DeserializeItemListFromBytes(blob)
	if err != nil {
		return fmt.Errorf("failed to decode projectiles: %w", err)
	}
	it.Variant.Crossbow = &domain.CrossbowMeta{Projectiles: projectiles}
	return nil
}
