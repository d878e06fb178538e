package item

import (
	"github.com/TavstalDev/MineCoreLib/internal/domain"
)

func serializeSpawnEgg(c *codec, it *domain.Item, data IR) error {
	v := it.Variant
	if v == nil || v.Kind != domain.KindSpawnEgg || v.SpawnEgg == nil || v.SpawnEgg.CustomEntityType == nil {
		return nil
	}
	data[keyCustomEntityType] = *v.SpawnEgg.CustomEntityType
	return nil
}

func deserializeSpawnEgg(c *codec, it *domain.Item, data IR) error {
	if it.Variant == nil || it.Variant.Kind != domain.KindSpawnEgg {
		return nil
	}
	s, ok := asString(data[keyCustomEntityType])
	if !ok {
		return nil
	}

	entity, found := c.reg.ResolveEntityType(s)
	if !found {
		c.log.Warn("Skipping unknown custom entity type", "id", s)
		return nil
	}
	id := entity.Key.String()
	it.Variant.SpawnEgg = &domain.SpawnEggMeta{CustomEntityType: &id}
	return nil
}
