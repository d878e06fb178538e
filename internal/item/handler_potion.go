package item

import (
	"github.com/TavstalDev/MineCoreLib/internal/domain"
)

func serializePotion(c *codec, it *domain.Item, data IR) error {
	v := it.Variant
	if v == nil || v.Kind != domain.KindPotion || v.Potion == nil {
		return nil
	}
	p := v.Potion

	if p.CustomName != nil && c.probe.Available() {
		data[keyCustomPotionName] = *p.CustomName
	}
	if p.Color != nil {
		data[keyColor] = p.Color.String()
	}
	if p.BaseType != nil {
		if base, ok := c.reg.ResolvePotionType(*p.BaseType); ok {
			data[keyBasePotionType] = base.Key.String()
		} else {
			c.log.Warn("Skipping unknown base potion type", "id", *p.BaseType)
		}
	}
	if len(p.Effects) > 0 {
		effects := make(map[string]any, len(p.Effects))
		for id, effect := range p.Effects {
			effects[id] = map[string]any{
				keyDuration:  effect.Duration,
				keyAmplifier: effect.Amplifier,
				keyAmbient:   effect.Ambient,
				keyParticles: effect.Particles,
			}
		}
		data[keyCustomEffects] = effects
	}
	return nil
}

func deserializePotion(c *codec, it *domain.Item, data IR) error {
	if it.Variant == nil || it.Variant.Kind != domain.KindPotion {
		return nil
	}

	meta := &domain.PotionMeta{}
	populated := false

	if c.probe.Available() {
		if name, ok := asString(data[keyCustomPotionName]); ok {
			meta.CustomName = &name
			populated = true
		}
	}

	if s, ok := asString(data[keyColor]); ok {
		col, err := domain.ParseColor(s)
		if err != nil {
			return err
		}
		meta.Color = &col
		populated = true
	}

	if s, ok := asString(data[keyBasePotionType]); ok {
		if base, found := c.reg.ResolvePotionType(s); found {
			id := base.Key.String()
			meta.BaseType = &id
			populated = true
		} else {
			c.log.Warn("Skipping unknown base potion type", "id", s)
		}
	}

	if raw, present := data[keyCustomEffects]; present {
		entries, ok := asStringMap(raw, c.log)
		if ok {
			meta.Effects = c.readPotionEffects(entries)
			populated = populated || len(meta.Effects) > 0
		}
	}

	if populated {
		it.Variant.Potion = meta
	}
	return nil
}

// readPotionEffects rebuilds the custom effect map. Effect ids that do not
// resolve against the registry are skipped; absent sub-fields fall back to
// their defaults.
func (c *codec) readPotionEffects(entries map[string]any) map[string]domain.PotionEffect {
	effects := make(map[string]domain.PotionEffect, len(entries))
	for id, raw := range entries {
		mob, found := c.reg.ResolveMobEffect(id)
		if !found {
			c.log.Warn("Skipping unknown potion effect", "id", id)
			continue
		}

		effect := domain.PotionEffect{
			Duration:  domain.DefaultPotionDuration,
			Amplifier: domain.DefaultPotionAmplifier,
			Particles: true,
		}
		if m, ok := asStringMap(raw, c.log); ok {
			if d, ok := asInt(m[keyDuration]); ok {
				effect.Duration = int(d)
			}
			if a, ok := asInt(m[keyAmplifier]); ok {
				effect.Amplifier = int(a)
			}
			if ambient, ok := asBool(m[keyAmbient]); ok {
				effect.Ambient = ambient
			}
			if particles, ok := asBool(m[keyParticles]); ok {
				effect.Particles = particles
			}
		}
		effects[mob.Key.String()] = effect
	}
	if len(effects) == 0 {
		return nil
	}
	return effects
}
