package model

// Biome is a worldgen biome.
type Biome struct {
	Humid         bool
	Scale         float64
	Depth         float64
	Temperature   float64
	Downfall      float64
	Precipitation string
	Category      string
	effects       *BiomeSpecialEffects
}

// NewBiome creates a biome with the given special effects.
func NewBiome(b Biome, effects *BiomeSpecialEffects) *Biome {
	b.effects = effects
	return &b
}

// SpecialEffects returns the biome's effects; their fields are
// implementation-private.
func (b *Biome) SpecialEffects() *BiomeSpecialEffects {
	return b.effects
}

// BiomeSpecialEffects holds a biome's render colors.
type BiomeSpecialEffects struct {
	fogColor             int
	waterColor           int
	waterFogColor        int
	skyColor             int
	foliageColorOverride *int
	grassColorOverride   *int
	grassColorModifier   string
}

// EffectsBuilder assembles BiomeSpecialEffects.
type EffectsBuilder struct {
	e BiomeSpecialEffects
}

// NewEffects starts an effects builder with the mandatory colors.
func NewEffects(fog, water, waterFog, sky int) *EffectsBuilder {
	return &EffectsBuilder{e: BiomeSpecialEffects{
		fogColor:           fog,
		waterColor:         water,
		waterFogColor:      waterFog,
		skyColor:           sky,
		grassColorModifier: "NONE",
	}}
}

// Foliage overrides the foliage color.
func (b *EffectsBuilder) Foliage(color int) *EffectsBuilder {
	b.e.foliageColorOverride = &color
	return b
}

// Grass overrides the grass color.
func (b *EffectsBuilder) Grass(color int) *EffectsBuilder {
	b.e.grassColorOverride = &color
	return b
}

// GrassModifier sets the grass color modifier (NONE, DARK_FOREST, SWAMP).
func (b *EffectsBuilder) GrassModifier(m string) *EffectsBuilder {
	b.e.grassColorModifier = m
	return b
}

// Build returns the effects.
func (b *EffectsBuilder) Build() *BiomeSpecialEffects {
	e := b.e
	return &e
}
