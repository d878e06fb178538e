package item

import (
	"github.com/TavstalDev/MineCoreLib/internal/domain"
)

func serializeLeatherArmor(c *codec, it *domain.Item, data IR) error {
	v := it.Variant
	if v == nil || v.Kind != domain.KindLeatherArmor || v.LeatherArmor == nil {
		return nil
	}
	data[keyColor] = v.LeatherArmor.Color.String()
	return nil
}

func deserializeLeatherArmor(c *codec, it *domain.Item, data IR) error {
	if it.Variant == nil || it.Variant.Kind != domain.KindLeatherArmor {
		return nil
	}
	raw, present := data[keyColor]
	if !present {
		return nil
	}

	s, ok := asString(raw)
	if !ok {
		return nil
	}
	col, err := domain.ParseColor(s)
	if err != nil {
		return err
	}
	it.Variant.LeatherArmor = &domain.LeatherArmorMeta{Color: col}
	return nil
}
