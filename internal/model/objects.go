package model

// MapColor is an entry of the map color palette.
type MapColor struct {
	ID    int
	Color int
}

// Fluid is a fluid type.
type Fluid struct {
	// Bucket is the item that carries this fluid; empty fluids point at the
	// item registry's sentinel.
	Bucket *Item
	Source bool
}

// EntityTrait is a closed set of implementation traits an entity type's
// instances carry. Traits drive the spawn packet classification.
type EntityTrait uint8

const (
	TraitLiving EntityTrait = 1 << iota
	TraitPlayer
	TraitPainting
	TraitExperienceOrb
)

// Has reports whether all bits of t are set.
func (e EntityTrait) Has(t EntityTrait) bool {
	return e&t == t
}

// EntityType is an entity type.
type EntityType struct {
	Traits     EntityTrait
	FireImmune bool
	Width      float64
	Height     float64
}

// BlockEntityType is a block entity type. The set of blocks it may attach
// to is implementation-private.
type BlockEntityType struct {
	validBlocks []*Block
	// Serializable mirrors the data-fixer type presence flag.
	Serializable bool
}

// NewBlockEntityType creates a block entity type valid for blocks.
func NewBlockEntityType(blocks ...*Block) *BlockEntityType {
	return &BlockEntityType{validBlocks: blocks, Serializable: true}
}

// MobEffect is a status effect.
type MobEffect struct {
	Color         int
	Instantaneous bool
	Beneficial    bool
}

// MobEffectInstance is an applied effect with strength and duration.
type MobEffectInstance struct {
	Effect    *MobEffect
	Amplifier int
	Duration  int
}

// Potion is a named bundle of effect instances.
type Potion struct {
	Effects []MobEffectInstance
}

// Attribute is an entity attribute. The bounds of ranged attributes are
// implementation-private.
type Attribute struct {
	Default    float64
	ClientSync bool
	Ranged     bool
	minValue   float64
	maxValue   float64
}

// NewAttribute creates an unbounded attribute.
func NewAttribute(def float64, clientSync bool) *Attribute {
	return &Attribute{Default: def, ClientSync: clientSync}
}

// NewRangedAttribute creates an attribute clamped to [min, max].
func NewRangedAttribute(def, min, max float64, clientSync bool) *Attribute {
	return &Attribute{Default: def, ClientSync: clientSync, Ranged: true, minValue: min, maxValue: max}
}

// Enchantment is an enchantment type.
type Enchantment struct {
	MinLevel     int
	MaxLevel     int
	Rarity       string
	Category     string
	Curse        bool
	Discoverable bool
	Tradeable    bool
	TreasureOnly bool
}

// ParticleType is a particle type.
type ParticleType struct {
	OverrideLimiter bool
}

// SoundEvent is a sound event.
type SoundEvent struct {
	Location Identifier
}

// VillagerProfession is a villager profession; WorkSound may be nil.
type VillagerProfession struct {
	WorkSound *SoundEvent
}

// VillagerType is a villager biome variant.
type VillagerType struct {
	Key string
}

// DimensionType describes the rules of a dimension.
type DimensionType struct {
	BedWorks           bool
	CoordinateScale    float64
	Ceiling            bool
	FixedTime          bool
	Raids              bool
	SkyLight           bool
	PiglinSafe         bool
	LogicalHeight      int
	Natural            bool
	UltraWarm          bool
	RespawnAnchorWorks bool
}

// FoodEffect is an effect a food applies with a probability.
type FoodEffect struct {
	Effect MobEffectInstance
	Chance float64
}

// FoodProperties describes an edible item.
type FoodProperties struct {
	Nutrition          int
	SaturationModifier float64
	AlwaysEdible       bool
	FastFood           bool
	Effects            []FoodEffect
}

// ArmorProperties describes a wearable armor item.
type ArmorProperties struct {
	Defense   int
	Toughness float64
	Slot      string
}

// Item is an item type.
type Item struct {
	MaxStackSize  int
	MaxDamage     int
	FireResistant bool
	Food          *FoodProperties
	Armor         *ArmorProperties
	// SpawnEgg is the entity type a spawn egg item spawns.
	SpawnEgg *EntityType
	// Block is the block a block item places.
	Block         *Block
	EatingSound   *SoundEvent
	DrinkingSound *SoundEvent
}

// Depletes reports whether the item takes damage.
func (i *Item) Depletes() bool { return i.MaxDamage > 0 }

// Edible reports whether the item is food.
func (i *Item) Edible() bool { return i.Food != nil }
