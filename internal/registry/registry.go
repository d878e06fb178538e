// Package registry resolves namespaced ids ("minecraft:sharpness") to the
// enchantment, potion-type, mob-effect, entity-type and material objects the
// item codec restores metadata against. Unknown ids resolve to a missing
// result, never an error: the codec skips them.
package registry

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/TavstalDev/MineCoreLib/internal/domain"
)

// DefaultNamespace is assumed when an id carries no namespace.
const DefaultNamespace = "minecraft"

// Key cache sizing. A decode batch hits the same handful of ids repeatedly,
// so a small cache with a generous TTL is enough.
const (
	keyCacheSize = 512
	keyCacheTTL  = 10 * time.Minute
)

// Key is a parsed namespaced id.
type Key struct {
	Namespace string
	Path      string
}

// String renders the canonical "namespace:path" form.
func (k Key) String() string {
	return k.Namespace + ":" + k.Path
}

// ParseKey normalizes and validates a namespaced id. Ids without a namespace
// get the minecraft namespace; casing is folded to lower. Returns false for
// empty or malformed ids.
func ParseKey(id string) (Key, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return Key{}, false
	}

	namespace, path := DefaultNamespace, id
	if idx := strings.IndexByte(id, ':'); idx >= 0 {
		namespace, path = id[:idx], id[idx+1:]
	}
	if namespace == "" || path == "" || strings.ContainsAny(path, ": ") {
		return Key{}, false
	}
	return Key{Namespace: namespace, Path: path}, true
}

// Enchantment is a registered enchantment definition.
type Enchantment struct {
	Key      Key
	MaxLevel int
}

// PotionType is a registered base potion type.
type PotionType struct {
	Key Key
}

// MobEffect is a registered potion/mob effect type.
type MobEffect struct {
	Key Key
}

// EntityType is a registered spawnable entity type.
type EntityType struct {
	Key Key
}

// Material is a registered item material. Meta names the variant metadata
// block items of this material carry, KindNone for plain stackables.
type Material struct {
	Key         Key
	DisplayName string
	MaxStack    int
	Meta        domain.VariantKind
}

// Registry holds the id tables the codec resolves against. Lookups after
// construction are read-only, so the registry is safe for concurrent use;
// the key cache is internally synchronized.
type Registry struct {
	enchantments map[string]*Enchantment
	potionTypes  map[string]*PotionType
	mobEffects   map[string]*MobEffect
	entityTypes  map[string]*EntityType
	materials    map[string]*Material

	keyCache *expirable.LRU[string, Key]
	titler   cases.Caser
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		enchantments: make(map[string]*Enchantment),
		potionTypes:  make(map[string]*PotionType),
		mobEffects:   make(map[string]*MobEffect),
		entityTypes:  make(map[string]*EntityType),
		materials:    make(map[string]*Material),
		keyCache:     expirable.NewLRU[string, Key](keyCacheSize, nil, keyCacheTTL),
		titler:       cases.Title(language.English),
	}
}

// normalize parses an id through the key cache.
func (r *Registry) normalize(id string) (Key, bool) {
	if key, ok := r.keyCache.Get(id); ok {
		return key, key.Path != ""
	}
	key, ok := ParseKey(id)
	if !ok {
		// Negative entries are cached as the zero Key.
		r.keyCache.Add(id, Key{})
		return Key{}, false
	}
	r.keyCache.Add(id, key)
	return key, true
}

// RegisterEnchantment adds an enchantment definition.
func (r *Registry) RegisterEnchantment(id string, maxLevel int) {
	if key, ok := ParseKey(id); ok {
		r.enchantments[key.String()] = &Enchantment{Key: key, MaxLevel: maxLevel}
	}
}

// RegisterPotionType adds a base potion type.
func (r *Registry) RegisterPotionType(id string) {
	if key, ok := ParseKey(id); ok {
		r.potionTypes[key.String()] = &PotionType{Key: key}
	}
}

// RegisterMobEffect adds a mob effect type.
func (r *Registry) RegisterMobEffect(id string) {
	if key, ok := ParseKey(id); ok {
		r.mobEffects[key.String()] = &MobEffect{Key: key}
	}
}

// RegisterEntityType adds a spawnable entity type.
func (r *Registry) RegisterEntityType(id string) {
	if key, ok := ParseKey(id); ok {
		r.entityTypes[key.String()] = &EntityType{Key: key}
	}
}

// RegisterMaterial adds a material with the variant metadata block its items
// carry. The display name is derived from the key path.
func (r *Registry) RegisterMaterial(id string, maxStack int, meta domain.VariantKind) {
	key, ok := ParseKey(id)
	if !ok {
		return
	}
	display := r.titler.String(strings.ReplaceAll(key.Path, "_", " "))
	r.materials[key.String()] = &Material{
		Key:         key,
		DisplayName: display,
		MaxStack:    maxStack,
		Meta:        meta,
	}
}

// ResolveEnchantment looks up an enchantment by namespaced id.
func (r *Registry) ResolveEnchantment(id string) (*Enchantment, bool) {
	key, ok := r.normalize(id)
	if !ok {
		return nil, false
	}
	e, ok := r.enchantments[key.String()]
	return e, ok
}

// ResolvePotionType looks up a base potion type by namespaced id.
func (r *Registry) ResolvePotionType(id string) (*PotionType, bool) {
	key, ok := r.normalize(id)
	if !ok {
		return nil, false
	}
	p, ok := r.potionTypes[key.String()]
	return p, ok
}

// ResolveMobEffect looks up a mob effect type by namespaced id.
func (r *Registry) ResolveMobEffect(id string) (*MobEffect, bool) {
	key, ok := r.normalize(id)
	if !ok {
		return nil, false
	}
	m, ok := r.mobEffects[key.String()]
	return m, ok
}

// ResolveEntityType looks up an entity type by namespaced id.
func (r *Registry) ResolveEntityType(id string) (*EntityType, bool) {
	key, ok := r.normalize(id)
	if !ok {
		return nil, false
	}
	e, ok := r.entityTypes[key.String()]
	return e, ok
}

// ResolveMaterial looks up a material by namespaced id.
func (r *Registry) ResolveMaterial(id string) (*Material, bool) {
	key, ok := r.normalize(id)
	if !ok {
		return nil, false
	}
	m, ok := r.materials[key.String()]
	return m, ok
}
