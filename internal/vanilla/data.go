package vanilla

import "github.com/mvp-joe/datagen/internal/model"

func tags() []model.Tag {
	tag := func(registry, name string, values ...string) model.Tag {
		return model.Tag{Registry: registry, Name: name, Values: values}
	}
	return []model.Tag{
		tag("blocks", "logs", "minecraft:oak_log"),
		tag("blocks", "planks", "minecraft:oak_planks"),
		tag("blocks", "sand", "minecraft:sand"),
		tag("blocks", "mineable/axe", "#minecraft:logs", "#minecraft:planks", "minecraft:chest", "minecraft:oak_slab"),
		tag("blocks", "mineable/pickaxe", "minecraft:stone", "minecraft:granite", "minecraft:furnace"),
		tag("fluids", "water", "minecraft:water", "minecraft:flowing_water"),
		tag("fluids", "lava", "minecraft:lava", "minecraft:flowing_lava"),
		tag("entity_types", "arrows", "minecraft:arrow"),
		tag("entity_types", "impact_projectiles", "#minecraft:arrows"),
		tag("items", "logs", "minecraft:oak_log"),
		tag("items", "planks", "minecraft:oak_planks"),
		tag("items", "sand", "minecraft:sand"),
		tag("items", "piglin_loved", "minecraft:golden_apple"),
	}
}

func lootTables() []model.LootTable {
	items := func(names ...string) []model.LootPool {
		entries := make([]model.LootEntry, len(names))
		for i, n := range names {
			entries[i] = model.LootEntry{Type: "minecraft:item", Name: n, Weight: 1}
		}
		return []model.LootPool{{Rolls: 1, Entries: entries}}
	}
	block := func(path, drop string) model.LootTable {
		return model.LootTable{Category: "blocks", Path: path, Type: "minecraft:block", Pools: items(drop)}
	}
	return []model.LootTable{
		block("stone", "minecraft:stone"),
		block("granite", "minecraft:granite"),
		block("grass_block", "minecraft:dirt"),
		block("dirt", "minecraft:dirt"),
		block("oak_planks", "minecraft:oak_planks"),
		block("sand", "minecraft:sand"),
		block("oak_log", "minecraft:oak_log"),
		{Category: "blocks", Path: "glass", Type: "minecraft:block"},
		block("chest", "minecraft:chest"),
		block("furnace", "minecraft:furnace"),
		block("oak_slab", "minecraft:oak_slab"),
		block("redstone_lamp", "minecraft:redstone_lamp"),

		{Category: "chests", Path: "simple_dungeon", Type: "minecraft:chest", Pools: items("minecraft:golden_apple", "minecraft:iron_sword")},
		{Category: "chests", Path: "village/village_armorer", Type: "minecraft:chest", Pools: items("minecraft:iron_helmet")},
		{Category: "chests", Path: "village/village_plains_house", Type: "minecraft:chest", Pools: items("minecraft:apple", "minecraft:oak_planks")},

		{Category: "entities", Path: "pig", Type: "minecraft:entity"},
		{Category: "entities", Path: "zombie", Type: "minecraft:entity"},

		{Category: "gameplay", Path: "fishing", Type: "minecraft:fishing", Pools: []model.LootPool{{Rolls: 1, Entries: []model.LootEntry{
			{Type: "minecraft:loot_table", Name: "minecraft:gameplay/fishing/junk", Weight: 10},
			{Type: "minecraft:loot_table", Name: "minecraft:gameplay/fishing/fish", Weight: 85},
		}}}},
		{Category: "gameplay", Path: "fishing/fish", Type: "minecraft:fishing"},
		{Category: "gameplay", Path: "fishing/junk", Type: "minecraft:fishing", Pools: items("minecraft:bucket")},
		{Category: "gameplay", Path: "cat_morning_gift", Type: "minecraft:gift", Pools: items("minecraft:apple")},
	}
}
