package extract

import (
	"fmt"
	"iter"
	"slices"

	"github.com/mvp-joe/datagen/internal/flatten"
	"github.com/mvp-joe/datagen/internal/model"
	"github.com/mvp-joe/datagen/internal/privileged"
	"github.com/mvp-joe/datagen/internal/record"
	"github.com/mvp-joe/datagen/internal/symbols"
	"github.com/mvp-joe/datagen/internal/xref"
	"go.uber.org/zap"
)

// env is the auxiliary lookup set every shape function receives.
type env struct {
	m     *model.Model
	names *Names
	log   *zap.Logger
}

// category is one registry-derived output document.
type category struct {
	name     string
	keyField string
	run      func(e *env) *flatten.Result
}

func fromRegistry[T comparable](name string, reg func(*model.Model) *model.Registry[T], shape flatten.ShapeFunc[model.Identifier, T, *env]) category {
	return category{name: name, keyField: "id", run: func(e *env) *flatten.Result {
		return flatten.Flatten(e.log, name, reg(e.m).All(), shape, e)
	}}
}

// registryCategories lists the registry documents in emission order.
func registryCategories() []category {
	return []category{
		fromRegistry("blocks", func(m *model.Model) *model.Registry[*model.Block] { return m.Blocks }, shapeBlock),
		{name: "block_properties", keyField: "name", run: func(e *env) *flatten.Result {
			return flatten.Flatten(e.log, "block_properties", e.names.BlockProperties.Slots(), shapeBlockProperty, e)
		}},
		fromRegistry("fluids", func(m *model.Model) *model.Registry[*model.Fluid] { return m.Fluids }, shapeFluid),
		fromRegistry("entities", func(m *model.Model) *model.Registry[*model.EntityType] { return m.EntityTypes }, shapeEntity),
		fromRegistry("block_entities", func(m *model.Model) *model.Registry[*model.BlockEntityType] { return m.BlockEntityTypes }, shapeBlockEntity),
		fromRegistry("items", func(m *model.Model) *model.Registry[*model.Item] { return m.Items }, shapeItem),
		fromRegistry("potion_effects", func(m *model.Model) *model.Registry[*model.MobEffect] { return m.Effects }, shapeEffect),
		fromRegistry("potions", func(m *model.Model) *model.Registry[*model.Potion] { return m.Potions }, shapePotion),
		fromRegistry("attributes", func(m *model.Model) *model.Registry[*model.Attribute] { return m.Attributes }, shapeAttribute),
		fromRegistry("enchantments", func(m *model.Model) *model.Registry[*model.Enchantment] { return m.Enchantments }, shapeEnchantment),
		fromRegistry("particles", func(m *model.Model) *model.Registry[*model.ParticleType] { return m.Particles }, shapeParticle),
		fromRegistry("sounds", func(m *model.Model) *model.Registry[*model.SoundEvent] { return m.Sounds }, shapeSound),
		fromRegistry("biomes", func(m *model.Model) *model.Registry[*model.Biome] { return m.Biomes }, shapeBiome),
		fromRegistry("villager_professions", func(m *model.Model) *model.Registry[*model.VillagerProfession] { return m.VillagerProfessions }, shapeVillagerProfession),
		fromRegistry("villager_types", func(m *model.Model) *model.Registry[*model.VillagerType] { return m.VillagerTypes }, shapeVillagerType),
		fromRegistry("dimension_types", func(m *model.Model) *model.Registry[*model.DimensionType] { return m.DimensionTypes }, shapeDimensionType),
		fromRegistry("custom_statistics", func(m *model.Model) *model.Registry[model.Identifier] { return m.CustomStats }, shapeCustomStat),
		{name: "map_colors", keyField: "id", run: func(e *env) *flatten.Result {
			return flatten.Flatten(e.log, "map_colors", mapColors(e.m.MapColors), shapeMapColor, e)
		}},
	}
}

// base starts a record with the canonical identifier and, when the object
// is named, its symbolic name.
func base[T comparable](id model.Identifier, names *symbols.Table[T], v T) *record.Record {
	name, ok := names.Name(v)
	return record.New().
		Set("id", id.String()).
		SetOptional("name", name, ok)
}

func shapeBlock(id model.Identifier, b *model.Block, e *env) (*record.Record, error) {
	def := b.DefaultState()
	if def == nil {
		return nil, fmt.Errorf("block %s has no states", id)
	}
	name, named := e.names.Blocks.Name(b)
	itemID, hasItem := xref.ResolveString(b, xref.ItemForBlock(e.m), e.m.Items)

	// Unnamed properties keep their slot as null so positions line up with
	// the declared properties.
	properties := []any{}
	for i, p := range b.Properties() {
		n, ok := e.names.BlockProperties.Name(p)
		if !ok {
			e.log.Debug("unnamed block property",
				zap.String("block", id.String()),
				zap.Int("index", i),
				zap.String("property", p.Name()))
			properties = append(properties, nil)
			continue
		}
		properties = append(properties, n)
	}

	scope := "blocks " + id.String() + " states"
	states := flatten.Each(e.log, scope, slices.Values(b.States()), func(s *model.BlockState) (*record.Record, error) {
		return shapeBlockState(s, e)
	})

	return record.New().
		Set("id", id.String()).
		Set("numericalID", e.m.Blocks.ID(b)).
		SetOptional("name", name, named).
		Set("explosionResistance", b.ExplosionResistance).
		Set("friction", b.Friction).
		Set("speedFactor", b.SpeedFactor).
		Set("jumpFactor", b.JumpFactor).
		Set("defaultBlockState", e.m.BlockStates.ID(def)).
		SetOptional("itemId", itemID, hasItem).
		Set("blockEntity", b.EntityBlock).
		Set("properties", properties).
		Set("states", states), nil
}

func shapeBlockState(s *model.BlockState, e *env) (*record.Record, error) {
	mat := s.Material()
	if mat == nil {
		return nil, fmt.Errorf("block state %d has no material", e.m.BlockStates.ID(s))
	}
	mapColor := 0
	if mat.Color != nil {
		mapColor = mat.Color.ID
	}

	values := record.New()
	for _, pv := range s.Values {
		values.Set(pv.Property.Name(), model.FormatPropertyValue(pv.Property, pv.Value))
	}

	return record.New().
		Set("id", e.m.BlockStates.ID(s)).
		Set("destroySpeed", s.DestroySpeed()).
		Set("lightEmission", s.LightEmission()).
		Set("doesOcclude", s.CanOcclude()).
		Set("properties", values).
		Set("pushReaction", string(mat.PushReaction)).
		Set("blocksMotion", mat.BlocksMotion).
		Set("isFlammable", mat.Flammable).
		Set("isAir", s.IsAir()).
		Set("isLiquid", mat.Liquid).
		Set("isReplaceable", mat.Replaceable).
		Set("isSolid", mat.Solid).
		Set("isSolidBlocking", mat.SolidBlocking).
		Set("mapColorId", mapColor).
		Set("boundingBox", model.FormatShape(s.CollisionShape())), nil
}

// shapeBlockProperty renders a declared property. Values keep their native
// form: booleans and integers as such, enum constants by declared name.
func shapeBlockProperty(name string, p model.Property, _ *env) (*record.Record, error) {
	values := p.Values()
	if values == nil {
		values = []any{}
	}
	return record.New().
		Set("name", name).
		Set("key", p.Name()).
		Set("values", values), nil
}

func shapeFluid(id model.Identifier, f *model.Fluid, e *env) (*record.Record, error) {
	bucket, ok := xref.ResolveString(f, xref.FluidBucket, e.m.Items)
	return base(id, e.names.Fluids, f).
		SetOptional("bucketId", bucket, ok), nil
}

func shapeEntity(id model.Identifier, et *model.EntityType, e *env) (*record.Record, error) {
	return base(id, e.names.EntityTypes, et).
		Set("packetType", PacketTypeOf(et.Traits).String()).
		Set("fireImmune", et.FireImmune).
		Set("height", et.Height).
		Set("width", et.Width), nil
}

func shapeBlockEntity(id model.Identifier, bet *model.BlockEntityType, e *env) (*record.Record, error) {
	valid, err := privileged.ValidBlocks(bet)
	if err != nil {
		return nil, err
	}
	scope := "block_entities " + id.String() + " blocks"
	blocks := flatten.Each(e.log, scope, slices.Values(valid), func(b *model.Block) (*record.Record, error) {
		key, ok := e.m.Blocks.Key(b)
		if !ok {
			return nil, fmt.Errorf("valid block is not registered")
		}
		return record.New().Set("id", key.String()), nil
	})
	return base(id, e.names.BlockEntityTypes, bet).
		Set("blocks", blocks), nil
}

func shapeItem(id model.Identifier, it *model.Item, e *env) (*record.Record, error) {
	blockID, hasBlock := xref.ResolveString(it, xref.BlockForItem(e.m), e.m.Blocks)
	eating, hasEating := xref.ResolveString(it, xref.EatingSound, e.m.Sounds)
	drinking, hasDrinking := xref.ResolveString(it, xref.DrinkingSound, e.m.Sounds)

	rec := base(id, e.names.Items, it).
		Set("depletes", it.Depletes()).
		Set("maxStackSize", it.MaxStackSize).
		Set("maxDamage", it.MaxDamage).
		Set("edible", it.Edible()).
		Set("fireResistant", it.FireResistant).
		SetOptional("blockId", blockID, hasBlock).
		SetOptional("eatingSound", eating, hasEating).
		SetOptional("drinkingSound", drinking, hasDrinking)

	if fp := it.Food; fp != nil {
		scope := "items " + id.String() + " food effects"
		effects := flatten.Each(e.log, scope, slices.Values(fp.Effects), func(fe model.FoodEffect) (*record.Record, error) {
			effectID, ok := xref.ResolveString(fe.Effect, xref.EffectOf, e.m.Effects)
			if !ok {
				return nil, fmt.Errorf("food effect is not registered")
			}
			return record.New().
				Set("id", effectID).
				Set("amplifier", fe.Effect.Amplifier).
				Set("duration", fe.Effect.Duration).
				Set("chance", fe.Chance), nil
		})
		rec.Set("foodProperties", record.New().
			Set("alwaysEdible", fp.AlwaysEdible).
			Set("isFastFood", fp.FastFood).
			Set("nutrition", fp.Nutrition).
			Set("saturationModifier", fp.SaturationModifier).
			Set("effects", effects))
	}

	if ap := it.Armor; ap != nil {
		rec.Set("armorProperties", record.New().
			Set("defense", ap.Defense).
			Set("toughness", ap.Toughness).
			Set("slot", ap.Slot))
	}

	if entity, ok := xref.ResolveString(it, xref.SpawnEggType, e.m.EntityTypes); ok {
		rec.Set("spawnEggProperties", record.New().Set("entityType", entity))
	}
	return rec, nil
}

func shapeEffect(id model.Identifier, me *model.MobEffect, e *env) (*record.Record, error) {
	return base(id, e.names.Effects, me).
		Set("color", me.Color).
		Set("instantaneous", me.Instantaneous), nil
}

func shapePotion(id model.Identifier, p *model.Potion, e *env) (*record.Record, error) {
	return base(id, e.names.Potions, p), nil
}

func shapeAttribute(id model.Identifier, a *model.Attribute, e *env) (*record.Record, error) {
	r, ranged, err := privileged.AttributeRange(a)
	if err != nil {
		return nil, err
	}
	rec := base(id, e.names.Attributes, a).
		Set("defaultValue", a.Default).
		Set("clientSync", a.ClientSync)
	if ranged {
		rec.Set("range", record.New().
			Set("maxValue", r.Max).
			Set("minValue", r.Min))
	}
	return rec, nil
}

func shapeEnchantment(id model.Identifier, en *model.Enchantment, e *env) (*record.Record, error) {
	return base(id, e.names.Enchantments, en).
		Set("maxLevel", en.MaxLevel).
		Set("minLevel", en.MinLevel).
		Set("rarity", en.Rarity).
		Set("curse", en.Curse).
		Set("discoverable", en.Discoverable).
		Set("tradeable", en.Tradeable).
		Set("treasureOnly", en.TreasureOnly).
		Set("category", en.Category), nil
}

func shapeParticle(id model.Identifier, p *model.ParticleType, e *env) (*record.Record, error) {
	return base(id, e.names.Particles, p), nil
}

func shapeSound(id model.Identifier, s *model.SoundEvent, e *env) (*record.Record, error) {
	return base(id, e.names.Sounds, s), nil
}

func shapeBiome(id model.Identifier, b *model.Biome, _ *env) (*record.Record, error) {
	fx, err := privileged.SpecialEffects(b)
	if err != nil {
		return nil, err
	}
	effects := record.New().
		Set("fogColor", fx.FogColor).
		Set("waterColor", fx.WaterColor).
		Set("waterFogColor", fx.WaterFogColor).
		Set("skyColor", fx.SkyColor)
	if fx.FoliageColorOverride != nil {
		effects.Set("foliageColorOverride", *fx.FoliageColorOverride)
	}
	if fx.GrassColorOverride != nil {
		effects.Set("grassColorOverride", *fx.GrassColorOverride)
	}
	effects.Set("grassColorModifier", fx.GrassColorModifier)

	return record.New().
		Set("id", id.String()).
		Set("humid", b.Humid).
		Set("scale", b.Scale).
		Set("depth", b.Depth).
		Set("temperature", b.Temperature).
		Set("downfall", b.Downfall).
		Set("precipitation", b.Precipitation).
		Set("category", b.Category).
		Set("effects", effects), nil
}

func shapeVillagerProfession(id model.Identifier, vp *model.VillagerProfession, e *env) (*record.Record, error) {
	sound, ok := xref.ResolveString(vp, xref.WorkSound, e.m.Sounds)
	return base(id, e.names.VillagerProfessions, vp).
		SetOptional("workSound", sound, ok), nil
}

func shapeVillagerType(id model.Identifier, vt *model.VillagerType, e *env) (*record.Record, error) {
	return base(id, e.names.VillagerTypes, vt), nil
}

func shapeDimensionType(id model.Identifier, dt *model.DimensionType, _ *env) (*record.Record, error) {
	return record.New().
		Set("id", id.String()).
		Set("bedWorks", dt.BedWorks).
		Set("coordinateScale", dt.CoordinateScale).
		Set("ceiling", dt.Ceiling).
		Set("fixedTime", dt.FixedTime).
		Set("raids", dt.Raids).
		Set("skyLight", dt.SkyLight).
		Set("piglinSafe", dt.PiglinSafe).
		Set("logicalHeight", dt.LogicalHeight).
		Set("natural", dt.Natural).
		Set("ultraWarm", dt.UltraWarm).
		Set("respawnAnchorWorks", dt.RespawnAnchorWorks), nil
}

func shapeCustomStat(id model.Identifier, stat model.Identifier, e *env) (*record.Record, error) {
	return base(id, e.names.CustomStats, stat), nil
}

// mapColors iterates the populated palette entries by color id.
func mapColors(palette []*model.MapColor) iter.Seq2[int, *model.MapColor] {
	return func(yield func(int, *model.MapColor) bool) {
		for i, c := range palette {
			if c == nil {
				continue
			}
			if !yield(i, c) {
				return
			}
		}
	}
}

func shapeMapColor(_ int, c *model.MapColor, e *env) (*record.Record, error) {
	name, ok := e.names.MapColors.Name(c)
	return record.New().
		SetOptional("name", name, ok).
		Set("id", c.ID).
		Set("color", c.Color), nil
}
