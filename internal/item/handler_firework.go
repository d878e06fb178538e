package item

import (
	"fmt"

	"github.com/TavstalDev/MineCoreLib/internal/domain"
)

func serializeFireworkEffect(c *codec, it *domain.Item, data IR) error {
	v := it.Variant
	if v == nil || v.Kind != domain.KindFireworkEffect || v.FireworkEffect == nil {
		return nil
	}
	data[keyEffect] = effectMap(*v.FireworkEffect)
	return nil
}

func deserializeFireworkEffect(c *codec, it *domain.Item, data IR) error {
	if it.Variant == nil || it.Variant.Kind != domain.KindFireworkEffect {
		return nil
	}
	raw, present := data[keyEffect]
	if !present {
		return nil
	}

	m, ok := asStringMap(raw, c.log)
	if !ok {
		return fmt.Errorf("%w: expected effect to be a map", domain.ErrInvalidShape)
	}
	effect, err := c.readEffect(m)
	if err != nil {
		return err
	}
	it.Variant.FireworkEffect = effect
	return nil
}

func serializeFirework(c *codec, it *domain.Item, data IR) error {
	v := it.Variant
	if v == nil || v.Kind != domain.KindFirework || v.Firework == nil {
		return nil
	}

	if len(v.Firework.Effects) > 0 {
		effects := make([]any, 0, len(v.Firework.Effects))
		for _, e := range v.Firework.Effects {
			effects = append(effects, effectMap(e))
		}
		data[keyEffects] = effects
	}
	if v.Firework.Power != nil {
		data[keyPower] = *v.Firework.Power
	}
	return nil
}

func deserializeFirework(c *codec, it *domain.Item, data IR) error {
	if it.Variant == nil || it.Variant.Kind != domain.KindFirework {
		return nil
	}

	meta := &domain.FireworkMeta{}
	populated := false

	if raw, present := data[keyEffects]; present {
		entries, ok := asMapList(raw, c.log)
		if !ok {
			return fmt.Errorf("%w: expected effects to be a list", domain.ErrInvalidShape)
		}
		for _, entry := range entries {
			effect, err := c.readEffect(entry)
			if err != nil {
				return err
			}
			meta.Effects = append(meta.Effects, *effect)
		}
		populated = populated || len(meta.Effects) > 0
	}

	if raw, present := data[keyPower]; present {
		if power, ok := asInt(raw); ok {
			p := int(power)
			meta.Power = &p
			populated = true
		}
	}

	if populated {
		it.Variant.Firework = meta
	}
	return nil
}

// effectMap flattens one explosion effect into IR form. Colors keep the
// "a;r;g;b" text encoding shared with the other color-bearing variants.
func effectMap(e domain.Effect) map[string]any {
	m := map[string]any{
		keyEffectType: string(e.Type),
		keyFlicker:    e.Flicker,
		keyTrail:      e.Trail,
	}
	if len(e.Colors) > 0 {
		m[keyColors] = colorStrings(e.Colors)
	}
	if len(e.FadeColors) > 0 {
		m[keyFadeColors] = colorStrings(e.FadeColors)
	}
	return m
}

func colorStrings(colors []domain.Color) []any {
	out := make([]any, 0, len(colors))
	for _, col := range colors {
		out = append(out, col.String())
	}
	return out
}

func (c *codec) readEffect(m map[string]any) (*domain.Effect, error) {
	name, ok := asString(m[keyEffectType])
	if !ok || !domain.ValidEffectType(name) {
		return nil, fmt.Errorf("unknown firework effect type: %v", m[keyEffectType])
	}

	effect := &domain.Effect{Type: domain.EffectType(name)}
	if flicker, ok := asBool(m[keyFlicker]); ok {
		effect.Flicker = flicker
	}
	if trail, ok := asBool(m[keyTrail]); ok {
		effect.Trail = trail
	}

	var err error
	if effect.Colors, err = c.readColors(m, keyColors); err != nil {
		return nil, err
	}
	if effect.FadeColors, err = c.readColors(m, keyFadeColors); err != nil {
		return nil, err
	}
	return effect, nil
}

func (c *codec) readColors(m map[string]any, key string) ([]domain.Color, error) {
	raw, present := m[key]
	if !present {
		return nil, nil
	}
	list, ok := asList(raw, c.log)
	if !ok {
		return nil, fmt.Errorf("%w: expected %s to be a list", domain.ErrInvalidShape, key)
	}

	var colors []domain.Color
	for _, entry := range list {
		s, ok := asString(entry)
		if !ok {
			continue
		}
		col, err := domain.ParseColor(s)
		if err != nil {
			return nil, err
		}
		colors = append(colors, col)
	}
	return colors, nil
}
