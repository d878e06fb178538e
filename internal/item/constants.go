package item

// IR keys shared by every encoding adapter
const (
	keyMaterial        = "material"
	keyAmount          = "amount"
	keyName            = "name"
	keyLore            = "lore"
	keyDurability      = "durability"
	keyCustomModelData = "customModelData"
	keyPersistentData  = "persistent-data"
	keyTagType         = "type"
	keyTagValue        = "value"
)

// Variant IR keys
const (
	keyEnchantments       = "enchantments"
	keyEnchantmentStorage = "enchantmentStorage"
	keyTitle              = "title"
	keyAuthor             = "author"
	keyPages              = "pages"
	keyProjectiles        = "projectiles"
	keyEffect             = "effect"
	keyEffects            = "effects"
	keyPower              = "power"
	keyColor              = "color"
	keyCustomPotionName   = "customPotionName"
	keyBasePotionType     = "basePotionType"
	keyCustomEffects      = "customEffects"
	keyDuration           = "duration"
	keyAmplifier          = "amplifier"
	keyAmbient            = "ambient"
	keyParticles          = "particles"
	keyOwner              = "owner"
	keyProfile            = "profile"
	keyProfileURL         = "profileUrl"
	keyCustomEntityType   = "customEntityType"
	keyEffectType         = "type"
	keyFlicker            = "flicker"
	keyTrail              = "trail"
	keyColors             = "colors"
	keyFadeColors         = "fadeColors"
)

// Variant names used in diagnostics and logs
const (
	variantItem               = "item"
	variantEnchantments       = "enchant"
	variantEnchantmentStorage = "enchantment storage"
	variantBook               = "book"
	variantCrossbow           = "crossbow"
	variantFireworkEffect     = "firework effect"
	variantFirework           = "firework"
	variantLeatherArmor       = "leather armor"
	variantPotion             = "potion"
	variantSkull              = "skull"
	variantSpawnEgg           = "spawn egg"
)

// Log messages
const (
	LogMsgSerializeFailed       = "An error occurred while serializing meta"
	LogMsgDeserializeFailed     = "An error occurred while deserializing meta"
	LogMsgItemDropped           = "Dropping item that failed to deserialize"
	LogMsgModelDataNotSupported = "Not implemented yet: customModelDataComponent"
)
