package merge

import "path"

// Category configures how one auxiliary file tree is merged.
type Category struct {
	// Group is both the directory under the merge root and the output group.
	Group string
	// Dir is the category directory inside Group.
	Dir string
	// Output names the output document.
	Output string
	// KeyField is the field the derived key is stored under.
	KeyField string
	// Namespace, when set, turns the key into a namespaced identifier.
	Namespace string
	// NestedKey keeps the directories below Dir in the key
	// (mineable/axe instead of axe).
	NestedKey bool
}

// Path returns the category directory relative to the merge root.
func (c Category) Path() string {
	return path.Join(c.Group, c.Dir)
}

// TagCategories are the tag trees, in output order.
func TagCategories(nestedKeys bool) []Category {
	tag := func(dir, output string) Category {
		return Category{Group: "tags", Dir: dir, Output: output, KeyField: "tagName", NestedKey: nestedKeys}
	}
	return []Category{
		tag("blocks", "block_tags"),
		tag("fluids", "fluid_tags"),
		tag("entity_types", "entity_type_tags"),
		tag("items", "item_tags"),
	}
}

// LootTableCategories are the loot table trees, in output order. Block and
// entity tables are keyed by the identifier of their subject.
func LootTableCategories() []Category {
	return []Category{
		{Group: "loot_tables", Dir: "blocks", Output: "block_loot_tables", KeyField: "blockId", Namespace: "minecraft"},
		{Group: "loot_tables", Dir: "chests", Output: "chest_loot_tables", KeyField: "chestType"},
		{Group: "loot_tables", Dir: "entities", Output: "entity_loot_tables", KeyField: "entityId", Namespace: "minecraft"},
		{Group: "loot_tables", Dir: "gameplay", Output: "gameplay_loot_tables", KeyField: "gameplayType"},
	}
}
