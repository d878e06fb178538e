package item

import "github.com/TavstalDev/MineCoreLib/internal/domain"

// Enchantment maps serialize as namespaced id -> level. Unknown ids are
// skipped on restore; they are a schema-drift symptom, not an error.

func serializeEnchantments(c *codec, it *domain.Item, data IR) error {
	v := it.Variant
	if v == nil || v.Kind != domain.KindEnchantments || len(v.Enchantments) == 0 {
		return nil
	}
	data[keyEnchantments] = enchantmentMap(v.Enchantments)
	return nil
}

func deserializeEnchantments(c *codec, it *domain.Item, data IR) error {
	if it.Variant == nil || it.Variant.Kind != domain.KindEnchantments {
		return nil
	}
	raw, present := data[keyEnchantments]
	if !present {
		return nil
	}

	levels := c.readEnchantmentMap(raw)
	if len(levels) > 0 {
		it.Variant.Enchantments = levels
	}
	return nil
}

func serializeEnchantmentStorage(c *codec, it *domain.Item, data IR) error {
	v := it.Variant
	if v == nil || v.Kind != domain.KindEnchantmentStorage || len(v.StoredEnchantments) == 0 {
		return nil
	}
	data[keyEnchantmentStorage] = enchantmentMap(v.StoredEnchantments)
	return nil
}

func deserializeEnchantmentStorage(c *codec, it *domain.Item, data IR) error {
	if it.Variant == nil || it.Variant.Kind != domain.KindEnchantmentStorage {
		return nil
	}
	raw, present := data[keyEnchantmentStorage]
	if !present {
		return nil
	}

	levels := c.readEnchantmentMap(raw)
	if len(levels) > 0 {
		it.Variant.StoredEnchantments = levels
	}
	return nil
}

func enchantmentMap(levels map[string]int) map[string]any {
	out := make(map[string]any, len(levels))
	for id, level := range levels {
		out[id] = level
	}
	return out
}

// readEnchantmentMap restores an id -> level map, resolving each id through
// the enchantment registry and skipping any that fail to resolve.
func (c *codec) readEnchantmentMap(raw any) map[string]int {
	entries, ok := asStringMap(raw, c.log)
	if !ok {
		return nil
	}

	levels := make(map[string]int)
	for id, rawLevel := range entries {
		enchantment, ok := c.reg.ResolveEnchantment(id)
		if !ok {
			c.log.Debug("Skipping unknown enchantment", "id", id)
			continue
		}
		level, ok := asInt(rawLevel)
		if !ok {
			continue
		}
		levels[enchantment.Key.String()] = int(level)
	}
	if len(levels) == 0 {
		return nil
	}
	return levels
}
