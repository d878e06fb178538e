// Package item implements the item-metadata serialization engine: it
// converts items to and from an intermediate representation (IR) and
// round-trips that IR through YAML text and a binary object stream.
package item

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/TavstalDev/MineCoreLib/internal/domain"
	"github.com/TavstalDev/MineCoreLib/internal/logger"
	"github.com/TavstalDev/MineCoreLib/internal/metrics"
	"github.com/TavstalDev/MineCoreLib/internal/registry"
	"github.com/TavstalDev/MineCoreLib/internal/richtext"
	"github.com/TavstalDev/MineCoreLib/internal/version"
)

// IR is the ordered, string-keyed intermediate representation every encoding
// adapter reads and writes. Values are scalars, strings, nested maps,
// ordered lists or raw byte sequences; both adapters emit keys in a
// deterministic (sorted) order.
type IR = map[string]any

// Diagnostic records one isolated handler failure. The item's remaining
// attributes are unaffected by the failure it describes.
type Diagnostic struct {
	Variant string
	Err     error
}

// Codec converts items to and from the IR and its YAML/binary encodings.
// All operations are reentrant; the codec holds no mutable state besides the
// idempotent potion-name capability probe.
type Codec interface {
	SerializeItem(item domain.Item) (IR, []Diagnostic)
	DeserializeItem(data IR) (*domain.Item, []Diagnostic, error)
	SerializeItemList(items []domain.Item) ([]IR, []Diagnostic)
	DeserializeItemList(list []IR) ([]domain.Item, []Diagnostic)

	SerializeItemToYAML(item domain.Item) (string, []Diagnostic, error)
	SerializeItemListToYAML(items []domain.Item) (string, []Diagnostic, error)
	DeserializeItemFromYAML(doc string) (*domain.Item, []Diagnostic, error)
	DeserializeItemListFromYAML(doc string) ([]domain.Item, []Diagnostic, error)

	SerializeItemToBytes(item domain.Item) ([]byte, []Diagnostic, error)
	SerializeItemListToBytes(items []domain.Item) ([]byte, []Diagnostic, error)
	DeserializeItemFromBytes(data []byte) (*domain.Item, []Diagnostic, error)
	DeserializeItemListFromBytes(data []byte) ([]domain.Item, []Diagnostic, error)
}

type codec struct {
	reg      *registry.Registry
	versions *version.Service
	probe    *version.PotionNameProbe
	log      *slog.Logger
}

// NewCodec creates a codec resolving ids against reg and gating
// version-dependent fields on versions.
func NewCodec(reg *registry.Registry, versions *version.Service) Codec {
	return &codec{
		reg:      reg,
		versions: versions,
		probe:    version.NewPotionNameProbe(versions),
		log:      logger.WithModule("item.Codec"),
	}
}

// metaHandler is one variant's serialize/deserialize pair. Handlers check
// the item's variant (or the IR's keys) themselves and are a guaranteed
// no-op when the item carries nothing for them.
type metaHandler struct {
	variant     string
	serialize   func(c *codec, item *domain.Item, data IR) error
	deserialize func(c *codec, item *domain.Item, data IR) error
}

// metaHandlers is the fixed, deterministic handler invocation order.
// Assigned in init: the crossbow handler re-enters the codec for nested
// projectiles, so a composite literal here would form an initialization
// cycle.
var metaHandlers []metaHandler

func init() {
	metaHandlers = []metaHandler{
		{variantEnchantments, serializeEnchantments, deserializeEnchantments},
		{variantEnchantmentStorage, serializeEnchantmentStorage, deserializeEnchantmentStorage},
		{variantBook, serializeBook, deserializeBook},
		{variantCrossbow, serializeCrossbow, deserializeCrossbow},
		{variantFireworkEffect, serializeFireworkEffect, deserializeFireworkEffect},
		{variantFirework, serializeFirework, deserializeFirework},
		{variantLeatherArmor, serializeLeatherArmor, deserializeLeatherArmor},
		{variantPotion, serializePotion, deserializePotion},
		{variantSkull, serializeSkull, deserializeSkull},
		{variantSpawnEgg, serializeSpawnEgg, deserializeSpawnEgg},
	}
}

// SerializeItem converts one item into its IR. Each handler runs under
// fault isolation: a failing variant is reported as a diagnostic and the
// remaining handlers still run, so the call always returns the IR
// accumulated so far.
func (c *codec) SerializeItem(it domain.Item) (IR, []Diagnostic) {
	c.log.Debug("Serializing item", "material", it.Type)
	metrics.ItemSerializations.Inc()

	data := IR{
		keyMaterial: it.Type,
		keyAmount:   it.Quantity,
	}

	c.writeCommonFields(&it, data)

	var diags []Diagnostic
	for _, h := range metaHandlers {
		if err := h.serialize(c, &it, data); err != nil {
			c.log.Error(LogMsgSerializeFailed, "variant", h.variant, "error", err)
			metrics.MetaHandlerFailures.WithLabelValues(h.variant).Inc()
			diags = append(diags, Diagnostic{Variant: h.variant, Err: err})
		}
	}
	return data, diags
}

func (c *codec) writeCommonFields(it *domain.Item, data IR) {
	if it.Name != nil {
		if s, err := richtext.ToJSON(*it.Name); err == nil {
			data[keyName] = s
		}
	}
	if len(it.Lore) > 0 {
		lore := make([]any, 0, len(it.Lore))
		for _, line := range it.Lore {
			s, err := richtext.ToJSON(line)
			if err != nil {
				continue
			}
			lore = append(lore, s)
		}
		data[keyLore] = lore
	}
	if it.Durability != nil {
		data[keyDurability] = *it.Durability
	}

	if len(it.Tags) > 0 {
		tags := make(map[string]any, len(it.Tags))
		for key, tag := range it.Tags {
			tags[key] = map[string]any{
				keyTagType:  string(tag.Type),
				keyTagValue: tag.Value,
			}
		}
		data[keyPersistentData] = tags
	}

	if it.CustomModelData != nil {
		if c.versions.AtLeast(1, 21, 5) {
			// Structured custom-model-data components are a known gap; the
			// legacy integer field is dropped on these engines.
			c.log.Debug(LogMsgModelDataNotSupported)
		} else {
			data[keyCustomModelData] = *it.CustomModelData
		}
	}
}

// DeserializeItem converts an IR back into an item. An unresolvable
// material is the only condition that fails the whole call; handler
// failures surface as diagnostics with that variant's attributes lost.
func (c *codec) DeserializeItem(data IR) (*domain.Item, []Diagnostic, error) {
	rawMaterial, ok := asString(data[keyMaterial])
	if !ok {
		metrics.ItemDeserializations.WithLabelValues(metrics.OutcomeFailure).Inc()
		return nil, nil, fmt.Errorf("%w: missing material", domain.ErrUnknownMaterial)
	}
	material, ok := c.reg.ResolveMaterial(rawMaterial)
	if !ok {
		metrics.ItemDeserializations.WithLabelValues(metrics.OutcomeFailure).Inc()
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnknownMaterial, rawMaterial)
	}

	quantity := 1
	if n, ok := asInt(data[keyAmount]); ok && n > 0 {
		quantity = int(n)
	}

	it := &domain.Item{Type: material.Key.String(), Quantity: quantity}
	if material.Meta != domain.KindNone {
		it.Variant = &domain.VariantMeta{Kind: material.Meta}
	}

	c.readCommonFields(it, data)

	var diags []Diagnostic
	for _, h := range metaHandlers {
		if err := h.deserialize(c, it, data); err != nil {
			c.log.Error(LogMsgDeserializeFailed, "variant", h.variant, "error", err)
			metrics.MetaHandlerFailures.WithLabelValues(h.variant).Inc()
			diags = append(diags, Diagnostic{Variant: h.variant, Err: err})
		}
	}

	metrics.ItemDeserializations.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return it, diags, nil
}

func (c *codec) readCommonFields(it *domain.Item, data IR) {
	if raw, ok := asString(data[keyName]); ok {
		name := c.decodeText(raw)
		it.Name = &name
	}

	if rawLore, present := data[keyLore]; present {
		if lines, ok := asList(rawLore, c.log); ok {
			lore := make([]richtext.Component, 0, len(lines))
			for _, line := range lines {
				s, ok := asString(line)
				if !ok {
					continue
				}
				lore = append(lore, c.decodeText(s))
			}
			it.Lore = lore
		}
	}

	if n, ok := asInt(data[keyDurability]); ok {
		durability := int(n)
		it.Durability = &durability
	}

	if rawTags, present := data[keyPersistentData]; present {
		if tags, ok := asStringMap(rawTags, c.log); ok {
			c.readTags(it, tags)
		}
	}

	if n, ok := asInt(data[keyCustomModelData]); ok {
		if c.versions.AtLeast(1, 21, 5) {
			c.log.Debug(LogMsgModelDataNotSupported)
		} else {
			modelData := int(n)
			it.CustomModelData = &modelData
		}
	}
}

// readTags restores persistent tags. Each {type, value} pair is matched
// against the tag discriminant; a mismatch is silently skipped, never an
// error.
func (c *codec) readTags(it *domain.Item, tags map[string]any) {
	for key, rawEntry := range tags {
		entry, ok := asStringMap(rawEntry, nil)
		if !ok {
			continue
		}
		rawType, ok := asString(entry[keyTagType])
		if !ok {
			continue
		}
		value, ok := decodeTagValue(domain.TagType(rawType), entry[keyTagValue])
		if !ok {
			continue
		}
		if it.Tags == nil {
			it.Tags = make(map[string]domain.TaggedValue)
		}
		it.Tags[key] = domain.TaggedValue{Type: domain.TagType(rawType), Value: value}
	}
}

// decodeText restores a stored string: component JSON when it looks like
// JSON, legacy color codes otherwise. A malformed component falls back to
// the legacy path instead of failing the item.
func (c *codec) decodeText(s string) richtext.Component {
	if looksLikeComponent(s) {
		if comp, err := richtext.FromJSON(s); err == nil {
			return comp
		}
		c.log.Warn("Malformed text component, treating as legacy text", "text", s)
	}
	return richtext.TranslateColors(s)
}

func looksLikeComponent(s string) bool {
	return strings.Contains(s, "{") && strings.Contains(s, "}")
}

// SerializeItemList applies SerializeItem across the input in order.
func (c *codec) SerializeItemList(items []domain.Item) ([]IR, []Diagnostic) {
	list := make([]IR, 0, len(items))
	var diags []Diagnostic
	for _, it := range items {
		data, itemDiags := c.SerializeItem(it)
		list = append(list, data)
		diags = append(diags, itemDiags...)
	}
	return list, diags
}

// DeserializeItemList applies DeserializeItem across the input in order.
// Elements that fail to produce an item are dropped: the result is shorter,
// not padded, and surviving elements keep their relative order.
func (c *codec) DeserializeItemList(list []IR) ([]domain.Item, []Diagnostic) {
	items := make([]domain.Item, 0, len(list))
	var diags []Diagnostic
	for _, data := range list {
		it, itemDiags, err := c.DeserializeItem(data)
		diags = append(diags, itemDiags...)
		if err != nil {
			c.log.Warn(LogMsgItemDropped, "error", err)
			diags = append(diags, Diagnostic{Variant: variantItem, Err: err})
			continue
		}
		items = append(items, *it)
	}
	return items, diags
}
