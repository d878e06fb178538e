package domain

import (
	"github.com/google/uuid"

	"github.com/TavstalDev/MineCoreLib/internal/richtext"
)

// Item represents a stackable item with an optional display name, lore,
// durability, persistent tags and at most one variant-specific metadata block.
type Item struct {
	Type            string                 `json:"type"`
	Quantity        int                    `json:"quantity"`
	Name            *richtext.Component    `json:"name,omitempty"`
	Lore            []richtext.Component   `json:"lore,omitempty"`
	Durability      *int                   `json:"durability,omitempty"`
	CustomModelData *int                   `json:"custom_model_data,omitempty"`
	Tags            map[string]TaggedValue `json:"tags,omitempty"`
	Variant         *VariantMeta           `json:"variant,omitempty"`
}

// TagType discriminates which codec path a persistent tag value uses.
type TagType string

const (
	TagString       TagType = "STRING"
	TagInteger      TagType = "INTEGER"
	TagDouble       TagType = "DOUBLE"
	TagFloat        TagType = "FLOAT"
	TagLong         TagType = "LONG"
	TagByte         TagType = "BYTE"
	TagByteArray    TagType = "BYTE_ARRAY"
	TagIntegerArray TagType = "INTEGER_ARRAY"
	TagLongArray    TagType = "LONG_ARRAY"
	TagShort        TagType = "SHORT"
	TagBoolean      TagType = "BOOLEAN"
)

// TagTypes lists every tag discriminant in serialization order.
var TagTypes = []TagType{
	TagString, TagInteger, TagDouble, TagFloat, TagLong, TagByte,
	TagByteArray, TagIntegerArray, TagLongArray, TagShort, TagBoolean,
}

// TaggedValue is a persistent tag entry. Value holds the canonical Go type
// for the tag: string, int32, float64, float32, int64, byte, []byte,
// []int32, []int64, int16 or bool.
type TaggedValue struct {
	Type  TagType     `json:"type"`
	Value interface{} `json:"value"`
}

// Matches reports whether Value carries the canonical type for the tag.
// A mismatched pair is dropped by the codec rather than treated as an error.
func (t TaggedValue) Matches() bool {
	switch t.Type {
	case TagString:
		_, ok := t.Value.(string)
		return ok
	case TagInteger:
		_, ok := t.Value.(int32)
		return ok
	case TagDouble:
		_, ok := t.Value.(float64)
		return ok
	case TagFloat:
		_, ok := t.Value.(float32)
		return ok
	case TagLong:
		_, ok := t.Value.(int64)
		return ok
	case TagByte:
		_, ok := t.Value.(byte)
		return ok
	case TagByteArray:
		_, ok := t.Value.([]byte)
		return ok
	case TagIntegerArray:
		_, ok := t.Value.([]int32)
		return ok
	case TagLongArray:
		_, ok := t.Value.([]int64)
		return ok
	case TagShort:
		_, ok := t.Value.(int16)
		return ok
	case TagBoolean:
		_, ok := t.Value.(bool)
		return ok
	}
	return false
}

// VariantKind names the variant-specific metadata block an item carries.
type VariantKind string

const (
	KindNone               VariantKind = "NONE"
	KindEnchantments       VariantKind = "ENCHANTMENTS"
	KindEnchantmentStorage VariantKind = "ENCHANTMENT_STORAGE"
	KindBook               VariantKind = "BOOK"
	KindCrossbow           VariantKind = "CROSSBOW"
	KindFireworkEffect     VariantKind = "FIREWORK_EFFECT"
	KindFirework           VariantKind = "FIREWORK"
	KindLeatherArmor       VariantKind = "LEATHER_ARMOR"
	KindPotion             VariantKind = "POTION"
	KindSkull              VariantKind = "SKULL"
	KindSpawnEgg           VariantKind = "SPAWN_EGG"
)

// VariantMeta is a tagged union: exactly one block is populated, selected by
// Kind. An item carries at most one variant.
type VariantMeta struct {
	Kind VariantKind `json:"kind"`

	Enchantments       map[string]int    `json:"enchantments,omitempty"`
	StoredEnchantments map[string]int    `json:"stored_enchantments,omitempty"`
	Book               *BookMeta         `json:"book,omitempty"`
	Crossbow           *CrossbowMeta     `json:"crossbow,omitempty"`
	FireworkEffect     *Effect           `json:"firework_effect,omitempty"`
	Firework           *FireworkMeta     `json:"firework,omitempty"`
	LeatherArmor       *LeatherArmorMeta `json:"leather_armor,omitempty"`
	Potion             *PotionMeta       `json:"potion,omitempty"`
	Skull              *SkullMeta        `json:"skull,omitempty"`
	SpawnEgg           *SpawnEggMeta     `json:"spawn_egg,omitempty"`
}

// BookMeta holds a written book's title, author and ordered pages.
type BookMeta struct {
	Title  *string              `json:"title,omitempty"`
	Author *string              `json:"author,omitempty"`
	Pages  []richtext.Component `json:"pages,omitempty"`
}

// CrossbowMeta holds the charged projectiles of a crossbow. Projectiles are
// items themselves, so the block is recursive.
type CrossbowMeta struct {
	Projectiles []Item `json:"projectiles,omitempty"`
}

// EffectType is a firework explosion shape.
type EffectType string

const (
	EffectBall      EffectType = "BALL"
	EffectBallLarge EffectType = "BALL_LARGE"
	EffectStar      EffectType = "STAR"
	EffectBurst     EffectType = "BURST"
	EffectCreeper   EffectType = "CREEPER"
)

// ValidEffectType reports whether s names a known firework effect shape.
func ValidEffectType(s string) bool {
	switch EffectType(s) {
	case EffectBall, EffectBallLarge, EffectStar, EffectBurst, EffectCreeper:
		return true
	}
	return false
}

// Effect is a single firework explosion effect.
type Effect struct {
	Type       EffectType `json:"type"`
	Flicker    bool       `json:"flicker"`
	Trail      bool       `json:"trail"`
	Colors     []Color    `json:"colors"`
	FadeColors []Color    `json:"fade_colors"`
}

// FireworkMeta holds a firework rocket's effects and flight power.
type FireworkMeta struct {
	Effects []Effect `json:"effects,omitempty"`
	Power   *int     `json:"power,omitempty"`
}

// LeatherArmorMeta holds the dye color of a piece of leather armor.
type LeatherArmorMeta struct {
	Color Color `json:"color"`
}

// PotionEffect is one custom effect on a potion.
type PotionEffect struct {
	Duration  int  `json:"duration"`
	Amplifier int  `json:"amplifier"`
	Ambient   bool `json:"ambient"`
	Particles bool `json:"particles"`
}

// Default potion effect sub-field values applied on decode when absent.
const (
	DefaultPotionDuration  = 200
	DefaultPotionAmplifier = 0
)

// PotionMeta holds a potion's display name, color, base type and custom
// effects keyed by namespaced effect id.
type PotionMeta struct {
	CustomName *string                 `json:"custom_name,omitempty"`
	Color      *Color                  `json:"color,omitempty"`
	BaseType   *string                 `json:"base_type,omitempty"`
	Effects    map[string]PotionEffect `json:"effects,omitempty"`
}

// SkullProfile reconstructs a player profile purely from its stored id and
// optional texture URL.
type SkullProfile struct {
	ID         uuid.UUID `json:"id"`
	TextureURL string    `json:"texture_url,omitempty"`
}

// SkullMeta holds a player head's owner and profile.
type SkullMeta struct {
	Owner   *uuid.UUID    `json:"owner,omitempty"`
	Profile *SkullProfile `json:"profile,omitempty"`
}

// SpawnEggMeta holds the custom entity type a spawn egg produces.
type SpawnEggMeta struct {
	CustomEntityType *string `json:"custom_entity_type,omitempty"`
}

// Snapshot is a named, persisted loadout: the codec's YAML document for
// inspection and the binary blob for lossless restore.
type Snapshot struct {
	Name      string `json:"name"`
	YAML      string `json:"yaml"`
	Blob      []byte `json:"blob"`
	ItemCount int    `json:"item_count"`
}
