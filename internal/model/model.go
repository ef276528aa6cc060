package model

// Holders are the NamespaceHolders of the model: structs whose exported
// fields are the declared constants of one object kind. They exist only so
// symbolic names can be recovered.
type Holders struct {
	Blocks              any
	BlockProperties     any
	Fluids              any
	EntityTypes         any
	BlockEntityTypes    any
	Items               any
	Effects             any
	Potions             any
	Attributes          any
	Enchantments        any
	Particles           any
	Sounds              any
	VillagerProfessions any
	VillagerTypes       any
	CustomStats         any
	MapColors           any
}

// Tag is a generator input: a named set of registry entries.
type Tag struct {
	// Registry is the tag directory: blocks, fluids, entity_types or items.
	Registry string   `json:"-"`
	Name     string   `json:"-"`
	Replace  bool     `json:"replace"`
	Values   []string `json:"values"`
}

// LootEntry is one weighted entry of a loot pool.
type LootEntry struct {
	Type   string `json:"type"`
	Name   string `json:"name,omitempty"`
	Weight int    `json:"weight,omitempty"`
}

// LootPool is one roll group of a loot table.
type LootPool struct {
	Rolls   float64     `json:"rolls"`
	Entries []LootEntry `json:"entries"`
}

// LootTable is a generator input: a loot table definition.
type LootTable struct {
	// Category is the loot table directory: blocks, chests, entities or gameplay.
	Category string     `json:"-"`
	// Path is slash separated and may be nested (e.g. village/village_armorer).
	Path  string     `json:"-"`
	Type  string     `json:"type"`
	Pools []LootPool `json:"pools,omitempty"`
}

// Model is a fully initialized, read-only game definition snapshot.
type Model struct {
	Blocks              *Registry[*Block]
	BlockStates         *IDMap[*BlockState]
	Fluids              *Registry[*Fluid]
	EntityTypes         *Registry[*EntityType]
	BlockEntityTypes    *Registry[*BlockEntityType]
	Items               *Registry[*Item]
	Effects             *Registry[*MobEffect]
	Potions             *Registry[*Potion]
	Attributes          *Registry[*Attribute]
	Enchantments        *Registry[*Enchantment]
	Particles           *Registry[*ParticleType]
	Sounds              *Registry[*SoundEvent]
	Biomes              *Registry[*Biome]
	VillagerProfessions *Registry[*VillagerProfession]
	VillagerTypes       *Registry[*VillagerType]
	DimensionTypes      *Registry[*DimensionType]
	CustomStats         *Registry[Identifier]
	// MapColors is indexed by color id; unused ids are nil.
	MapColors []*MapColor

	Holders    Holders
	Tags       []Tag
	LootTables []LootTable

	itemsByBlock map[*Block]*Item
}

// New creates a model with empty registries.
func New() *Model {
	return &Model{
		Blocks:              NewDefaultedRegistry[*Block]("block", Minecraft("air")),
		BlockStates:         NewIDMap[*BlockState](),
		Fluids:              NewDefaultedRegistry[*Fluid]("fluid", Minecraft("empty")),
		EntityTypes:         NewRegistry[*EntityType]("entity_type"),
		BlockEntityTypes:    NewRegistry[*BlockEntityType]("block_entity_type"),
		Items:               NewDefaultedRegistry[*Item]("item", Minecraft("air")),
		Effects:             NewRegistry[*MobEffect]("mob_effect"),
		Potions:             NewDefaultedRegistry[*Potion]("potion", Minecraft("empty")),
		Attributes:          NewRegistry[*Attribute]("attribute"),
		Enchantments:        NewRegistry[*Enchantment]("enchantment"),
		Particles:           NewRegistry[*ParticleType]("particle_type"),
		Sounds:              NewRegistry[*SoundEvent]("sound_event"),
		Biomes:              NewRegistry[*Biome]("biome"),
		VillagerProfessions: NewDefaultedRegistry[*VillagerProfession]("villager_profession", Minecraft("none")),
		VillagerTypes:       NewDefaultedRegistry[*VillagerType]("villager_type", Minecraft("plains")),
		DimensionTypes:      NewRegistry[*DimensionType]("dimension_type"),
		CustomStats:         NewRegistry[Identifier]("custom_stat"),
		itemsByBlock:        make(map[*Block]*Item),
	}
}

// Index assigns global block state ids in block registration order and
// builds the block -> item association. When several items place the same
// block, the last registered item wins.
func (m *Model) Index() {
	for _, b := range m.Blocks.All() {
		for _, s := range b.States() {
			m.BlockStates.Add(s)
		}
	}
	m.itemsByBlock = make(map[*Block]*Item)
	for _, it := range m.Items.All() {
		if it.Block != nil {
			m.itemsByBlock[it.Block] = it
		}
	}
}

// ItemForBlock returns the item placing b, or the item sentinel.
func (m *Model) ItemForBlock(b *Block) *Item {
	if it, ok := m.itemsByBlock[b]; ok {
		return it
	}
	air, _ := m.Items.Default()
	return air
}

// BlockForItem returns the block an item places, or the block sentinel.
func (m *Model) BlockForItem(it *Item) *Block {
	if it.Block != nil {
		return it.Block
	}
	air, _ := m.Blocks.Default()
	return air
}
