package item

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/TavstalDev/MineCoreLib/internal/domain"
)

func serializeSkull(c *codec, it *domain.Item, data IR) error {
	v := it.Variant
	if v == nil || v.Kind != domain.KindSkull || v.Skull == nil {
		return nil
	}

	if v.Skull.Owner != nil {
		data[keyOwner] = v.Skull.Owner.String()
	}
	if v.Skull.Profile != nil {
		data[keyProfile] = v.Skull.Profile.ID.String()
		if v.Skull.Profile.TextureURL != "" {
			data[keyProfileURL] = v.Skull.Profile.TextureURL
		}
	}
	return nil
}

func deserializeSkull(c *codec, it *domain.Item, data IR) error {
	if it.Variant == nil || it.Variant.Kind != domain.KindSkull {
		return nil
	}

	meta := &domain.SkullMeta{}
	populated := false

	if s, ok := asString(data[keyOwner]); ok {
		owner, err := uuid.Parse(s)
		if err != nil {
			return fmt.Errorf("invalid skull owner id: %w", err)
		}
		meta.Owner = &owner
		populated = true
	}

	if s, ok := asString(data[keyProfile]); ok {
		id, err := uuid.Parse(s)
		if err != nil {
			return fmt.Errorf("invalid skull profile id: %w", err)
		}
		profile := &domain.SkullProfile{ID: id}
		if url, ok := asString(data[keyProfileURL]); ok {
			profile.TextureURL = url
		}
		meta.Profile = profile
		populated = true
	}

	if populated {
		it.Variant.Skull = meta
	}
	return nil
}
