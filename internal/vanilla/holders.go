package vanilla

import "github.com/mvp-joe/datagen/internal/model"

// The holder structs below declare the named constants of each object kind.
// The symbol tag carries the constant name the game declares.

// Blocks holds the named block constants.
type Blocks struct {
	Air          *model.Block `symbol:"AIR"`
	Stone        *model.Block `symbol:"STONE"`
	Granite      *model.Block `symbol:"GRANITE"`
	GrassBlock   *model.Block `symbol:"GRASS_BLOCK"`
	Dirt         *model.Block `symbol:"DIRT"`
	OakPlanks    *model.Block `symbol:"OAK_PLANKS"`
	Water        *model.Block `symbol:"WATER"`
	Lava         *model.Block `symbol:"LAVA"`
	Sand         *model.Block `symbol:"SAND"`
	OakLog       *model.Block `symbol:"OAK_LOG"`
	Glass        *model.Block `symbol:"GLASS"`
	Chest        *model.Block `symbol:"CHEST"`
	Furnace      *model.Block `symbol:"FURNACE"`
	OakSlab      *model.Block `symbol:"OAK_SLAB"`
	RedstoneLamp *model.Block `symbol:"REDSTONE_LAMP"`
	CaveAir      *model.Block `symbol:"CAVE_AIR"`
}

// BlockProperties holds the shared block state properties.
type BlockProperties struct {
	Snowy                *model.BoolProperty `symbol:"SNOWY"`
	Lit                  *model.BoolProperty `symbol:"LIT"`
	Waterlogged          *model.BoolProperty `symbol:"WATERLOGGED"`
	Axis                 *model.EnumProperty `symbol:"AXIS"`
	HorizontalFacing     *model.EnumProperty `symbol:"HORIZONTAL_FACING"`
	ChestType            *model.EnumProperty `symbol:"CHEST_TYPE"`
	SlabType             *model.EnumProperty `symbol:"SLAB_TYPE"`
	Level                *model.IntProperty  `symbol:"LEVEL"`
	StabilityMaxDistance int                 `symbol:"STABILITY_MAX_DISTANCE"`
}

// Fluids holds the named fluid constants.
type Fluids struct {
	Empty        *model.Fluid `symbol:"EMPTY"`
	FlowingWater *model.Fluid `symbol:"FLOWING_WATER"`
	Water        *model.Fluid `symbol:"WATER"`
	FlowingLava  *model.Fluid `symbol:"FLOWING_LAVA"`
	Lava         *model.Fluid `symbol:"LAVA"`
}

// EntityTypes holds the named entity type constants.
type EntityTypes struct {
	ExperienceOrb *model.EntityType `symbol:"EXPERIENCE_ORB"`
	Item          *model.EntityType `symbol:"ITEM"`
	Painting      *model.EntityType `symbol:"PAINTING"`
	Arrow         *model.EntityType `symbol:"ARROW"`
	Pig           *model.EntityType `symbol:"PIG"`
	Zombie        *model.EntityType `symbol:"ZOMBIE"`
	Villager      *model.EntityType `symbol:"VILLAGER"`
	Player        *model.EntityType `symbol:"PLAYER"`
}

// BlockEntityTypes holds the named block entity type constants.
type BlockEntityTypes struct {
	Furnace *model.BlockEntityType `symbol:"FURNACE"`
	Chest   *model.BlockEntityType `symbol:"CHEST"`
}

// Items holds the named item constants.
type Items struct {
	Air                 *model.Item `symbol:"AIR"`
	Stone               *model.Item `symbol:"STONE"`
	Granite             *model.Item `symbol:"GRANITE"`
	GrassBlock          *model.Item `symbol:"GRASS_BLOCK"`
	Dirt                *model.Item `symbol:"DIRT"`
	OakPlanks           *model.Item `symbol:"OAK_PLANKS"`
	Sand                *model.Item `symbol:"SAND"`
	OakLog              *model.Item `symbol:"OAK_LOG"`
	Glass               *model.Item `symbol:"GLASS"`
	Chest               *model.Item `symbol:"CHEST"`
	Furnace             *model.Item `symbol:"FURNACE"`
	OakSlab             *model.Item `symbol:"OAK_SLAB"`
	RedstoneLamp        *model.Item `symbol:"REDSTONE_LAMP"`
	IronSword           *model.Item `symbol:"IRON_SWORD"`
	IronHelmet          *model.Item `symbol:"IRON_HELMET"`
	NetheriteChestplate *model.Item `symbol:"NETHERITE_CHESTPLATE"`
	Apple               *model.Item `symbol:"APPLE"`
	GoldenApple         *model.Item `symbol:"GOLDEN_APPLE"`
	DriedKelp           *model.Item `symbol:"DRIED_KELP"`
	Bucket              *model.Item `symbol:"BUCKET"`
	WaterBucket         *model.Item `symbol:"WATER_BUCKET"`
	LavaBucket          *model.Item `symbol:"LAVA_BUCKET"`
	MilkBucket          *model.Item `symbol:"MILK_BUCKET"`
	PigSpawnEgg         *model.Item `symbol:"PIG_SPAWN_EGG"`
	ZombieSpawnEgg      *model.Item `symbol:"ZOMBIE_SPAWN_EGG"`
}

// Effects holds the named mob effect constants.
type Effects struct {
	Speed        *model.MobEffect `symbol:"MOVEMENT_SPEED"`
	Slowness     *model.MobEffect `symbol:"MOVEMENT_SLOWDOWN"`
	InstantHeal  *model.MobEffect `symbol:"HEAL"`
	InstantHarm  *model.MobEffect `symbol:"HARM"`
	Regeneration *model.MobEffect `symbol:"REGENERATION"`
	Poison       *model.MobEffect `symbol:"POISON"`
	Absorption   *model.MobEffect `symbol:"ABSORPTION"`
}

// Potions holds the named potion constants.
type Potions struct {
	Empty        *model.Potion `symbol:"EMPTY"`
	Water        *model.Potion `symbol:"WATER"`
	Swiftness    *model.Potion `symbol:"SWIFTNESS"`
	Healing      *model.Potion `symbol:"HEALING"`
	Regeneration *model.Potion `symbol:"REGENERATION"`
}

// Attributes holds the named attribute constants.
type Attributes struct {
	MaxHealth      *model.Attribute `symbol:"MAX_HEALTH"`
	FollowRange    *model.Attribute `symbol:"FOLLOW_RANGE"`
	MovementSpeed  *model.Attribute `symbol:"MOVEMENT_SPEED"`
	AttackDamage   *model.Attribute `symbol:"ATTACK_DAMAGE"`
	Armor          *model.Attribute `symbol:"ARMOR"`
	Luck           *model.Attribute `symbol:"LUCK"`
	SpawnReinforce *model.Attribute `symbol:"SPAWN_REINFORCEMENTS_CHANCE"`
}

// Enchantments holds the named enchantment constants.
type Enchantments struct {
	Protection   *model.Enchantment `symbol:"ALL_DAMAGE_PROTECTION"`
	Sharpness    *model.Enchantment `symbol:"SHARPNESS"`
	Efficiency   *model.Enchantment `symbol:"BLOCK_EFFICIENCY"`
	Unbreaking   *model.Enchantment `symbol:"UNBREAKING"`
	Mending      *model.Enchantment `symbol:"MENDING"`
	BindingCurse *model.Enchantment `symbol:"BINDING_CURSE"`
	SoulSpeed    *model.Enchantment `symbol:"SOUL_SPEED"`
}

// Particles holds the named particle type constants.
type Particles struct {
	AmbientEntityEffect *model.ParticleType `symbol:"AMBIENT_ENTITY_EFFECT"`
	Block               *model.ParticleType `symbol:"BLOCK"`
	Explosion           *model.ParticleType `symbol:"EXPLOSION"`
	Flame               *model.ParticleType `symbol:"FLAME"`
	Heart               *model.ParticleType `symbol:"HEART"`
}

// Sounds holds the named sound event constants.
type Sounds struct {
	GenericEat    *model.SoundEvent `symbol:"GENERIC_EAT"`
	GenericDrink  *model.SoundEvent `symbol:"GENERIC_DRINK"`
	HoneyDrink    *model.SoundEvent `symbol:"HONEY_DRINK"`
	StoneBreak    *model.SoundEvent `symbol:"STONE_BREAK"`
	ArmorerWork   *model.SoundEvent `symbol:"VILLAGER_WORK_ARMORER"`
	FarmerWork    *model.SoundEvent `symbol:"VILLAGER_WORK_FARMER"`
	LibrarianWork *model.SoundEvent `symbol:"VILLAGER_WORK_LIBRARIAN"`
}

// VillagerProfessions holds the named villager profession constants.
type VillagerProfessions struct {
	None      *model.VillagerProfession `symbol:"NONE"`
	Armorer   *model.VillagerProfession `symbol:"ARMORER"`
	Farmer    *model.VillagerProfession `symbol:"FARMER"`
	Librarian *model.VillagerProfession `symbol:"LIBRARIAN"`
	Nitwit    *model.VillagerProfession `symbol:"NITWIT"`
}

// VillagerTypes holds the named villager type constants.
type VillagerTypes struct {
	Desert *model.VillagerType `symbol:"DESERT"`
	Plains *model.VillagerType `symbol:"PLAINS"`
	Snow   *model.VillagerType `symbol:"SNOW"`
	Taiga  *model.VillagerType `symbol:"TAIGA"`
}

// Stats holds the named custom statistic constants.
type Stats struct {
	LeaveGame   model.Identifier `symbol:"LEAVE_GAME"`
	PlayTime    model.Identifier `symbol:"PLAY_ONE_MINUTE"`
	WalkOneCm   model.Identifier `symbol:"WALK_ONE_CM"`
	Jump        model.Identifier `symbol:"JUMP"`
	DamageDealt model.Identifier `symbol:"DAMAGE_DEALT"`
}

// MapColors holds the named map color palette entries.
type MapColors struct {
	None  *model.MapColor `symbol:"NONE"`
	Grass *model.MapColor `symbol:"GRASS"`
	Sand  *model.MapColor `symbol:"SAND"`
	Fire  *model.MapColor `symbol:"FIRE"`
	Dirt  *model.MapColor `symbol:"DIRT"`
	Stone *model.MapColor `symbol:"STONE"`
	Water *model.MapColor `symbol:"WATER"`
	Wood  *model.MapColor `symbol:"WOOD"`
}
