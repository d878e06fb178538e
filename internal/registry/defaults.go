package registry

import "github.com/TavstalDev/MineCoreLib/internal/domain"

// NewDefault creates a registry seeded with the vanilla ids the codec's
// variant handlers resolve against.
func NewDefault() *Registry {
	r := New()

	for id, maxLevel := range vanillaEnchantments {
		r.RegisterEnchantment(id, maxLevel)
	}
	for _, id := range vanillaPotionTypes {
		r.RegisterPotionType(id)
	}
	for _, id := range vanillaMobEffects {
		r.RegisterMobEffect(id)
	}
	for _, id := range vanillaEntityTypes {
		r.RegisterEntityType(id)
	}
	for _, m := range vanillaMaterials {
		r.RegisterMaterial(m.id, m.maxStack, m.meta)
	}

	return r
}

var vanillaEnchantments = map[string]int{
	"aqua_affinity":    1,
	"bane_of_arthropods": 5,
	"blast_protection": 4,
	"efficiency":       5,
	"feather_falling":  4,
	"fire_aspect":      2,
	"fire_protection":  4,
	"flame":            1,
	"fortune":          3,
	"infinity":         1,
	"knockback":        2,
	"looting":          3,
	"mending":          1,
	"power":            5,
	"protection":       4,
	"punch":            2,
	"respiration":      3,
	"sharpness":        5,
	"silk_touch":       1,
	"smite":            5,
	"sweeping_edge":    3,
	"thorns":           3,
	"unbreaking":       3,
}

var vanillaPotionTypes = []string{
	"awkward", "fire_resistance", "harming", "healing", "invisibility",
	"leaping", "luck", "mundane", "night_vision", "poison", "regeneration",
	"slow_falling", "slowness", "strength", "swiftness", "thick", "turtle_master",
	"water", "water_breathing", "weakness",
}

var vanillaMobEffects = []string{
	"absorption", "blindness", "fire_resistance", "glowing", "haste",
	"hunger", "instant_damage", "instant_health", "invisibility", "jump_boost",
	"levitation", "luck", "mining_fatigue", "nausea", "night_vision", "poison",
	"regeneration", "resistance", "saturation", "slow_falling", "slowness",
	"speed", "strength", "water_breathing", "weakness", "wither",
}

var vanillaEntityTypes = []string{
	"blaze", "cat", "chicken", "cow", "creeper", "enderman", "fox", "horse",
	"pig", "sheep", "skeleton", "slime", "spider", "villager", "witch",
	"wolf", "zombie",
}

var vanillaMaterials = []struct {
	id       string
	maxStack int
	meta     domain.VariantKind
}{
	// Plain stackables
	{"stone", 64, domain.KindNone},
	{"dirt", 64, domain.KindNone},
	{"oak_planks", 64, domain.KindNone},
	{"diamond", 64, domain.KindNone},
	{"emerald", 64, domain.KindNone},
	{"stick", 64, domain.KindNone},
	{"arrow", 64, domain.KindNone},
	{"apple", 64, domain.KindNone},
	{"bread", 64, domain.KindNone},
	{"paper", 64, domain.KindNone},

	// Enchantable gear
	{"diamond_sword", 1, domain.KindEnchantments},
	{"iron_sword", 1, domain.KindEnchantments},
	{"diamond_pickaxe", 1, domain.KindEnchantments},
	{"iron_pickaxe", 1, domain.KindEnchantments},
	{"bow", 1, domain.KindEnchantments},
	{"fishing_rod", 1, domain.KindEnchantments},
	{"trident", 1, domain.KindEnchantments},
	{"shears", 1, domain.KindEnchantments},

	// Variant carriers
	{"enchanted_book", 1, domain.KindEnchantmentStorage},
	{"written_book", 16, domain.KindBook},
	{"writable_book", 1, domain.KindBook},
	{"crossbow", 1, domain.KindCrossbow},
	{"firework_star", 64, domain.KindFireworkEffect},
	{"firework_rocket", 64, domain.KindFirework},
	{"leather_helmet", 1, domain.KindLeatherArmor},
	{"leather_chestplate", 1, domain.KindLeatherArmor},
	{"leather_leggings", 1, domain.KindLeatherArmor},
	{"leather_boots", 1, domain.KindLeatherArmor},
	{"leather_horse_armor", 1, domain.KindLeatherArmor},
	{"potion", 1, domain.KindPotion},
	{"splash_potion", 1, domain.KindPotion},
	{"lingering_potion", 1, domain.KindPotion},
	{"tipped_arrow", 64, domain.KindPotion},
	{"player_head", 64, domain.KindSkull},
	{"zombie_spawn_egg", 64, domain.KindSpawnEgg},
	{"pig_spawn_egg", 64, domain.KindSpawnEgg},
	{"creeper_spawn_egg", 64, domain.KindSpawnEgg},
}
