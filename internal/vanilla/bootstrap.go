// Package vanilla builds the built-in game definition model: a
// representative subset of every registry the extractor reads, wired the
// way the game wires them.
package vanilla

import "github.com/mvp-joe/datagen/internal/model"

const mapColorCount = 64

var id = model.Minecraft

// Bootstrap returns a fresh, fully initialized model. Every call builds an
// independent model.
func Bootstrap() *model.Model {
	m := model.New()

	colors := registerMapColors(m)
	props := newBlockProperties()
	sounds := registerSounds(m)
	blocks := registerBlocks(m, props, colors)
	entities := registerEntityTypes(m)
	effects := registerEffects(m)
	items := registerItems(m, blocks, entities, effects, sounds)

	m.Holders = model.Holders{
		Blocks:              blocks,
		BlockProperties:     props,
		Fluids:              registerFluids(m, items),
		EntityTypes:         entities,
		BlockEntityTypes:    registerBlockEntityTypes(m, blocks),
		Items:               items,
		Effects:             effects,
		Potions:             registerPotions(m, effects),
		Attributes:          registerAttributes(m),
		Enchantments:        registerEnchantments(m),
		Particles:           registerParticles(m),
		Sounds:              sounds,
		VillagerProfessions: registerVillagerProfessions(m, sounds),
		VillagerTypes:       registerVillagerTypes(m),
		CustomStats:         registerCustomStats(m),
		MapColors:           colors,
	}
	registerBiomes(m)
	registerDimensionTypes(m)

	m.Tags = tags()
	m.LootTables = lootTables()
	m.Index()
	return m
}

func registerMapColors(m *model.Model) *MapColors {
	m.MapColors = make([]*model.MapColor, mapColorCount)
	add := func(i, color int) *model.MapColor {
		c := &model.MapColor{ID: i, Color: color}
		m.MapColors[i] = c
		return c
	}
	return &MapColors{
		None:  add(0, 0),
		Grass: add(1, 8368696),
		Sand:  add(2, 16247203),
		Fire:  add(4, 16711680),
		Dirt:  add(10, 9923917),
		Stone: add(11, 7368816),
		Water: add(12, 4210943),
		Wood:  add(13, 9402184),
	}
}

func newBlockProperties() *BlockProperties {
	return &BlockProperties{
		Snowy:                model.NewBoolProperty("snowy"),
		Lit:                  model.NewBoolProperty("lit"),
		Waterlogged:          model.NewBoolProperty("waterlogged"),
		Axis:                 model.NewEnumProperty("axis", "X", "Y", "Z"),
		HorizontalFacing:     model.NewEnumProperty("facing", "NORTH", "SOUTH", "WEST", "EAST"),
		ChestType:            model.NewEnumProperty("type", "SINGLE", "LEFT", "RIGHT"),
		SlabType:             model.NewEnumProperty("type", "TOP", "BOTTOM", "DOUBLE"),
		Level:                model.NewIntProperty("level", 0, 15),
		StabilityMaxDistance: 7,
	}
}

func registerSounds(m *model.Model) *Sounds {
	add := func(path string) *model.SoundEvent {
		return m.Sounds.MustRegister(id(path), &model.SoundEvent{Location: id(path)})
	}
	return &Sounds{
		GenericEat:    add("entity.generic.eat"),
		GenericDrink:  add("entity.generic.drink"),
		HoneyDrink:    add("item.honey_bottle.drink"),
		StoneBreak:    add("block.stone.break"),
		ArmorerWork:   add("entity.villager.work_armorer"),
		FarmerWork:    add("entity.villager.work_farmer"),
		LibrarianWork: add("entity.villager.work_librarian"),
	}
}

func registerBlocks(m *model.Model, p *BlockProperties, c *MapColors) *Blocks {
	air := &model.Material{Color: c.None, PushReaction: model.PushNormal, Replaceable: true}
	stone := &model.Material{Color: c.Stone, PushReaction: model.PushNormal, BlocksMotion: true, Solid: true, SolidBlocking: true}
	dirt := &model.Material{Color: c.Dirt, PushReaction: model.PushNormal, BlocksMotion: true, Solid: true, SolidBlocking: true}
	grass := &model.Material{Color: c.Grass, PushReaction: model.PushNormal, BlocksMotion: true, Solid: true, SolidBlocking: true}
	sand := &model.Material{Color: c.Sand, PushReaction: model.PushNormal, BlocksMotion: true, Solid: true, SolidBlocking: true}
	wood := &model.Material{Color: c.Wood, PushReaction: model.PushNormal, BlocksMotion: true, Flammable: true, Solid: true, SolidBlocking: true}
	glass := &model.Material{Color: c.None, PushReaction: model.PushNormal, BlocksMotion: true, Solid: true, SolidBlocking: true}
	water := &model.Material{Color: c.Water, PushReaction: model.PushDestroy, Liquid: true, Replaceable: true}
	lava := &model.Material{Color: c.Fire, PushReaction: model.PushDestroy, Liquid: true, Replaceable: true}

	full := []model.AABB{model.FullCube}
	add := func(path string, s model.BlockSettings, props ...model.Property) *model.Block {
		return m.Blocks.MustRegister(id(path), model.NewBlock(s, props...))
	}
	solid := func(mat *model.Material, hardness, resistance float64) model.BlockSettings {
		return model.BlockSettings{Material: mat, DestroyTime: hardness, ExplosionResistance: resistance, Occludes: true, Shape: full}
	}
	airSettings := model.BlockSettings{Material: air, Air: true}

	b := &Blocks{
		Air:        add("air", airSettings),
		Stone:      add("stone", solid(stone, 1.5, 6)),
		Granite:    add("granite", solid(stone, 1.5, 6)),
		GrassBlock: add("grass_block", solid(grass, 0.6, 0.6), p.Snowy),
		Dirt:       add("dirt", solid(dirt, 0.5, 0.5)),
		OakPlanks:  add("oak_planks", solid(wood, 2, 3)),
		Water:      add("water", model.BlockSettings{Material: water, DestroyTime: 100, ExplosionResistance: 100}, p.Level),
		Lava:       add("lava", model.BlockSettings{Material: lava, DestroyTime: 100, ExplosionResistance: 100, LightEmission: 15}, p.Level),
		Sand:       add("sand", solid(sand, 0.5, 0.5)),
		OakLog:     add("oak_log", solid(wood, 2, 2), p.Axis),
		Glass: add("glass", model.BlockSettings{
			Material: glass, DestroyTime: 0.3, ExplosionResistance: 0.3, Shape: full,
		}),
		Chest: add("chest", model.BlockSettings{
			Material: wood, DestroyTime: 2.5, ExplosionResistance: 2.5, EntityBlock: true,
			Shape: []model.AABB{{MinX: 0.0625, MaxX: 0.9375, MaxY: 0.875, MinZ: 0.0625, MaxZ: 0.9375}},
		}, p.HorizontalFacing, p.ChestType, p.Waterlogged),
		Furnace: add("furnace", model.BlockSettings{
			Material: stone, DestroyTime: 3.5, ExplosionResistance: 3.5, EntityBlock: true, Occludes: true, Shape: full,
		}, p.HorizontalFacing, p.Lit),
		OakSlab: add("oak_slab", model.BlockSettings{
			Material: wood, DestroyTime: 2, ExplosionResistance: 3,
			Shape: []model.AABB{{MaxX: 1, MaxY: 0.5, MaxZ: 1}},
		}, p.SlabType, p.Waterlogged),
		RedstoneLamp: add("redstone_lamp", model.BlockSettings{
			Material: glass, DestroyTime: 0.3, ExplosionResistance: 0.3, Occludes: true, Shape: full,
		}, p.Lit),
	}
	// void_air has no holder slot and stays unnamed.
	add("void_air", airSettings)
	b.CaveAir = add("cave_air", airSettings)
	return b
}

func registerEntityTypes(m *model.Model) *EntityTypes {
	add := func(path string, e *model.EntityType) *model.EntityType {
		return m.EntityTypes.MustRegister(id(path), e)
	}
	return &EntityTypes{
		ExperienceOrb: add("experience_orb", &model.EntityType{Traits: model.TraitExperienceOrb, Width: 0.5, Height: 0.5}),
		Item:          add("item", &model.EntityType{Width: 0.25, Height: 0.25}),
		Painting:      add("painting", &model.EntityType{Traits: model.TraitPainting, Width: 0.5, Height: 0.5}),
		Arrow:         add("arrow", &model.EntityType{Width: 0.5, Height: 0.5}),
		Pig:           add("pig", &model.EntityType{Traits: model.TraitLiving, Width: 0.9, Height: 0.9}),
		Zombie:        add("zombie", &model.EntityType{Traits: model.TraitLiving, Width: 0.6, Height: 1.95}),
		Villager:      add("villager", &model.EntityType{Traits: model.TraitLiving, Width: 0.6, Height: 1.95}),
		Player:        add("player", &model.EntityType{Traits: model.TraitPlayer | model.TraitLiving, Width: 0.6, Height: 1.8}),
	}
}

func registerEffects(m *model.Model) *Effects {
	add := func(path string, e *model.MobEffect) *model.MobEffect {
		return m.Effects.MustRegister(id(path), e)
	}
	return &Effects{
		Speed:        add("speed", &model.MobEffect{Color: 8171462, Beneficial: true}),
		Slowness:     add("slowness", &model.MobEffect{Color: 5926017}),
		InstantHeal:  add("instant_health", &model.MobEffect{Color: 16262179, Instantaneous: true, Beneficial: true}),
		InstantHarm:  add("instant_damage", &model.MobEffect{Color: 4393481, Instantaneous: true}),
		Regeneration: add("regeneration", &model.MobEffect{Color: 13458603, Beneficial: true}),
		Poison:       add("poison", &model.MobEffect{Color: 5149489}),
		Absorption:   add("absorption", &model.MobEffect{Color: 2445989, Beneficial: true}),
	}
}

func registerItems(m *model.Model, b *Blocks, e *EntityTypes, fx *Effects, s *Sounds) *Items {
	add := func(path string, it model.Item) *model.Item {
		if it.MaxStackSize == 0 {
			it.MaxStackSize = 64
		}
		it.EatingSound = s.GenericEat
		it.DrinkingSound = s.GenericDrink
		return m.Items.MustRegister(id(path), &it)
	}
	block := func(path string, bl *model.Block) *model.Item {
		return add(path, model.Item{Block: bl})
	}
	tool := func(path string, durability int, armor *model.ArmorProperties, fireResistant bool) *model.Item {
		return add(path, model.Item{MaxStackSize: 1, MaxDamage: durability, Armor: armor, FireResistant: fireResistant})
	}

	return &Items{
		Air:          add("air", model.Item{}),
		Stone:        block("stone", b.Stone),
		Granite:      block("granite", b.Granite),
		GrassBlock:   block("grass_block", b.GrassBlock),
		Dirt:         block("dirt", b.Dirt),
		OakPlanks:    block("oak_planks", b.OakPlanks),
		Sand:         block("sand", b.Sand),
		OakLog:       block("oak_log", b.OakLog),
		Glass:        block("glass", b.Glass),
		Chest:        block("chest", b.Chest),
		Furnace:      block("furnace", b.Furnace),
		OakSlab:      block("oak_slab", b.OakSlab),
		RedstoneLamp: block("redstone_lamp", b.RedstoneLamp),
		IronSword:    tool("iron_sword", 250, nil, false),
		IronHelmet:   tool("iron_helmet", 165, &model.ArmorProperties{Defense: 2, Slot: "head"}, false),
		NetheriteChestplate: tool("netherite_chestplate", 592,
			&model.ArmorProperties{Defense: 8, Toughness: 3, Slot: "chest"}, true),
		Apple: add("apple", model.Item{Food: &model.FoodProperties{Nutrition: 4, SaturationModifier: 0.3}}),
		GoldenApple: add("golden_apple", model.Item{Food: &model.FoodProperties{
			Nutrition: 4, SaturationModifier: 1.2, AlwaysEdible: true,
			Effects: []model.FoodEffect{
				{Effect: model.MobEffectInstance{Effect: fx.Regeneration, Duration: 100, Amplifier: 1}, Chance: 1},
				{Effect: model.MobEffectInstance{Effect: fx.Absorption, Duration: 2400}, Chance: 1},
			},
		}}),
		DriedKelp:      add("dried_kelp", model.Item{Food: &model.FoodProperties{Nutrition: 1, SaturationModifier: 0.3, FastFood: true}}),
		Bucket:         add("bucket", model.Item{MaxStackSize: 16}),
		WaterBucket:    add("water_bucket", model.Item{MaxStackSize: 1}),
		LavaBucket:     add("lava_bucket", model.Item{MaxStackSize: 1}),
		MilkBucket:     add("milk_bucket", model.Item{MaxStackSize: 1}),
		PigSpawnEgg:    add("pig_spawn_egg", model.Item{SpawnEgg: e.Pig}),
		ZombieSpawnEgg: add("zombie_spawn_egg", model.Item{SpawnEgg: e.Zombie}),
	}
}

func registerFluids(m *model.Model, items *Items) *Fluids {
	add := func(path string, f *model.Fluid) *model.Fluid {
		return m.Fluids.MustRegister(id(path), f)
	}
	return &Fluids{
		Empty:        add("empty", &model.Fluid{Bucket: items.Air}),
		FlowingWater: add("flowing_water", &model.Fluid{Bucket: items.WaterBucket}),
		Water:        add("water", &model.Fluid{Bucket: items.WaterBucket, Source: true}),
		FlowingLava:  add("flowing_lava", &model.Fluid{Bucket: items.LavaBucket}),
		Lava:         add("lava", &model.Fluid{Bucket: items.LavaBucket, Source: true}),
	}
}

func registerBlockEntityTypes(m *model.Model, b *Blocks) *BlockEntityTypes {
	return &BlockEntityTypes{
		Furnace: m.BlockEntityTypes.MustRegister(id("furnace"), model.NewBlockEntityType(b.Furnace)),
		Chest:   m.BlockEntityTypes.MustRegister(id("chest"), model.NewBlockEntityType(b.Chest)),
	}
}

func registerPotions(m *model.Model, fx *Effects) *Potions {
	add := func(path string, effects ...model.MobEffectInstance) *model.Potion {
		return m.Potions.MustRegister(id(path), &model.Potion{Effects: effects})
	}
	return &Potions{
		Empty:        add("empty"),
		Water:        add("water"),
		Swiftness:    add("swiftness", model.MobEffectInstance{Effect: fx.Speed, Duration: 3600}),
		Healing:      add("healing", model.MobEffectInstance{Effect: fx.InstantHeal, Duration: 1}),
		Regeneration: add("regeneration", model.MobEffectInstance{Effect: fx.Regeneration, Duration: 900}),
	}
}

func registerAttributes(m *model.Model) *Attributes {
	add := func(path string, a *model.Attribute) *model.Attribute {
		return m.Attributes.MustRegister(id(path), a)
	}
	return &Attributes{
		MaxHealth:      add("generic.max_health", model.NewRangedAttribute(20, 1, 1024, true)),
		FollowRange:    add("generic.follow_range", model.NewRangedAttribute(32, 0, 2048, false)),
		MovementSpeed:  add("generic.movement_speed", model.NewRangedAttribute(0.7, 0, 1024, true)),
		AttackDamage:   add("generic.attack_damage", model.NewRangedAttribute(2, 0, 2048, false)),
		Armor:          add("generic.armor", model.NewRangedAttribute(0, 0, 30, true)),
		Luck:           add("generic.luck", model.NewRangedAttribute(0, -1024, 1024, true)),
		SpawnReinforce: add("zombie.spawn_reinforcements", model.NewRangedAttribute(0, 0, 1, false)),
	}
}

func registerEnchantments(m *model.Model) *Enchantments {
	add := func(path string, e model.Enchantment) *model.Enchantment {
		if e.MinLevel == 0 {
			e.MinLevel = 1
		}
		return m.Enchantments.MustRegister(id(path), &e)
	}
	return &Enchantments{
		Protection: add("protection", model.Enchantment{MaxLevel: 4, Rarity: "COMMON", Category: "ARMOR", Discoverable: true, Tradeable: true}),
		Sharpness:  add("sharpness", model.Enchantment{MaxLevel: 5, Rarity: "COMMON", Category: "WEAPON", Discoverable: true, Tradeable: true}),
		Efficiency: add("efficiency", model.Enchantment{MaxLevel: 5, Rarity: "COMMON", Category: "DIGGER", Discoverable: true, Tradeable: true}),
		Unbreaking: add("unbreaking", model.Enchantment{MaxLevel: 3, Rarity: "UNCOMMON", Category: "BREAKABLE", Discoverable: true, Tradeable: true}),
		Mending: add("mending", model.Enchantment{
			MaxLevel: 1, Rarity: "RARE", Category: "BREAKABLE", Discoverable: true, Tradeable: true, TreasureOnly: true,
		}),
		BindingCurse: add("binding_curse", model.Enchantment{
			MaxLevel: 1, Rarity: "VERY_RARE", Category: "WEARABLE", Curse: true, Discoverable: true, Tradeable: true, TreasureOnly: true,
		}),
		SoulSpeed: add("soul_speed", model.Enchantment{MaxLevel: 3, Rarity: "VERY_RARE", Category: "ARMOR_FEET", TreasureOnly: true}),
	}
}

func registerParticles(m *model.Model) *Particles {
	add := func(path string, overrideLimiter bool) *model.ParticleType {
		return m.Particles.MustRegister(id(path), &model.ParticleType{OverrideLimiter: overrideLimiter})
	}
	return &Particles{
		AmbientEntityEffect: add("ambient_entity_effect", false),
		Block:               add("block", false),
		Explosion:           add("explosion", true),
		Flame:               add("flame", false),
		Heart:               add("heart", false),
	}
}

func registerVillagerProfessions(m *model.Model, s *Sounds) *VillagerProfessions {
	add := func(path string, work *model.SoundEvent) *model.VillagerProfession {
		return m.VillagerProfessions.MustRegister(id(path), &model.VillagerProfession{WorkSound: work})
	}
	return &VillagerProfessions{
		None:      add("none", nil),
		Armorer:   add("armorer", s.ArmorerWork),
		Farmer:    add("farmer", s.FarmerWork),
		Librarian: add("librarian", s.LibrarianWork),
		Nitwit:    add("nitwit", nil),
	}
}

func registerVillagerTypes(m *model.Model) *VillagerTypes {
	add := func(path string) *model.VillagerType {
		return m.VillagerTypes.MustRegister(id(path), &model.VillagerType{Key: path})
	}
	return &VillagerTypes{
		Desert: add("desert"),
		Plains: add("plains"),
		Snow:   add("snow"),
		Taiga:  add("taiga"),
	}
}

func registerCustomStats(m *model.Model) *Stats {
	add := func(path string) model.Identifier {
		return m.CustomStats.MustRegister(id(path), id(path))
	}
	return &Stats{
		LeaveGame:   add("leave_game"),
		PlayTime:    add("play_one_minute"),
		WalkOneCm:   add("walk_one_cm"),
		Jump:        add("jump"),
		DamageDealt: add("damage_dealt"),
	}
}

func registerBiomes(m *model.Model) {
	add := func(path string, b model.Biome, fx *model.BiomeSpecialEffects) {
		b.Humid = b.Downfall > 0.85
		m.Biomes.MustRegister(id(path), model.NewBiome(b, fx))
	}
	add("plains",
		model.Biome{Scale: 0.05, Depth: 0.125, Temperature: 0.8, Downfall: 0.4, Precipitation: "RAIN", Category: "PLAINS"},
		model.NewEffects(12638463, 4159204, 329011, 7907327).Build())
	add("desert",
		model.Biome{Scale: 0.05, Depth: 0.125, Temperature: 2, Downfall: 0, Precipitation: "NONE", Category: "DESERT"},
		model.NewEffects(12638463, 4159204, 329011, 7254527).Build())
	add("swamp",
		model.Biome{Scale: 0.1, Depth: -0.2, Temperature: 0.8, Downfall: 0.9, Precipitation: "RAIN", Category: "SWAMP"},
		model.NewEffects(12638463, 6388580, 2302743, 7907327).Foliage(6975545).GrassModifier("SWAMP").Build())
	add("dark_forest",
		model.Biome{Scale: 0.2, Depth: 0.1, Temperature: 0.7, Downfall: 0.8, Precipitation: "RAIN", Category: "FOREST"},
		model.NewEffects(12638463, 4159204, 329011, 7972607).GrassModifier("DARK_FOREST").Build())
	add("snowy_tundra",
		model.Biome{Scale: 0.05, Depth: 0.125, Temperature: 0, Downfall: 0.5, Precipitation: "SNOW", Category: "ICY"},
		model.NewEffects(12638463, 4159204, 329011, 8364543).Build())
	add("badlands",
		model.Biome{Scale: 0.2, Depth: 0.1, Temperature: 2, Downfall: 0, Precipitation: "NONE", Category: "MESA"},
		model.NewEffects(12638463, 4159204, 329011, 7254527).Foliage(10387789).Grass(9470285).Build())
}

func registerDimensionTypes(m *model.Model) {
	overworld := model.DimensionType{
		BedWorks: true, CoordinateScale: 1, Raids: true, SkyLight: true, LogicalHeight: 256, Natural: true,
	}
	caves := overworld
	caves.Ceiling = true

	m.DimensionTypes.MustRegister(id("overworld"), &overworld)
	m.DimensionTypes.MustRegister(id("overworld_caves"), &caves)
	m.DimensionTypes.MustRegister(id("the_nether"), &model.DimensionType{
		CoordinateScale: 8, Ceiling: true, FixedTime: true, PiglinSafe: true, LogicalHeight: 128,
		UltraWarm: true, RespawnAnchorWorks: true,
	})
	m.DimensionTypes.MustRegister(id("the_end"), &model.DimensionType{
		CoordinateScale: 1, FixedTime: true, Raids: true, LogicalHeight: 256,
	})
}
