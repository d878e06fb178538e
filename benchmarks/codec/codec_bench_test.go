package codec_bench

import (
	"testing"

	"github.com/TavstalDev/MineCoreLib/internal/domain"
	"github.com/TavstalDev/MineCoreLib/internal/item"
	"github.com/TavstalDev/MineCoreLib/internal/registry"
	"github.com/TavstalDev/MineCoreLib/internal/richtext"
	"github.com/TavstalDev/MineCoreLib/internal/version"
)

func newBenchCodec(b *testing.B) item.Codec {
	b.Helper()
	versions, err := version.NewService("1.21.4")
	if err != nil {
		b.Fatal(err)
	}
	return item.NewCodec(registry.NewDefault(), versions)
}

func benchItem() domain.Item {
	name := richtext.Plain("Excalibur")
	durability := 120
	return domain.Item{
		Type:       "minecraft:diamond_sword",
		Quantity:   1,
		Name:       &name,
		Lore:       []richtext.Component{richtext.Plain("An old blade"), richtext.Plain("Forged in fire")},
		Durability: &durability,
		Tags: map[string]domain.TaggedValue{
			"mcl:label": {Type: domain.TagString, Value: "keepsake"},
			"mcl:count": {Type: domain.TagInteger, Value: int32(7)},
			"mcl:slots": {Type: domain.TagIntegerArray, Value: []int32{9, 18, 27}},
		},
		Variant: &domain.VariantMeta{
			Kind: domain.KindEnchantments,
			Enchantments: map[string]int{
				"minecraft:sharpness":  5,
				"minecraft:unbreaking": 3,
				"minecraft:looting":    2,
			},
		},
	}
}

func benchItemList(n int) []domain.Item {
	items := make([]domain.Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, benchItem())
	}
	return items
}

func BenchmarkSerializeItem(b *testing.B) {
	c := newBenchCodec(b)
	it := benchItem()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, diags := c.SerializeItem(it); len(diags) != 0 {
			b.Fatal("unexpected diagnostics")
		}
	}
}

func BenchmarkDeserializeItem(b *testing.B) {
	c := newBenchCodec(b)
	data, _ := c.SerializeItem(benchItem())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := c.DeserializeItem(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSerializeItemListToYAML(b *testing.B) {
	c := newBenchCodec(b)
	items := benchItemList(36)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := c.SerializeItemListToYAML(items); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDeserializeItemListFromYAML(b *testing.B) {
	c := newBenchCodec(b)
	doc, _, err := c.SerializeItemListToYAML(benchItemList(36))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := c.DeserializeItemListFromYAML(doc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSerializeItemListToBytes(b *testing.B) {
	c := newBenchCodec(b)
	items := benchItemList(36)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := c.SerializeItemListToBytes(items); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDeserializeItemListFromBytes(b *testing.B) {
	c := newBenchCodec(b)
	blob, _, err := c.SerializeItemListToBytes(benchItemList(36))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := c.DeserializeItemListFromBytes(blob); err != nil {
			b.Fatal(err)
		}
	}
}
