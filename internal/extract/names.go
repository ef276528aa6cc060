package extract

import (
	"errors"
	"fmt"

	"github.com/mvp-joe/datagen/internal/model"
	"github.com/mvp-joe/datagen/internal/symbols"
)

// ErrSymbolTables indicates a symbol table could not be built. The model
// no longer matches the extractor and the run must stop.
var ErrSymbolTables = errors.New("failed to build symbol tables")

// Names holds the symbol table of every named object kind.
type Names struct {
	Blocks              *symbols.Table[*model.Block]
	BlockProperties     *symbols.Table[model.Property]
	Fluids              *symbols.Table[*model.Fluid]
	EntityTypes         *symbols.Table[*model.EntityType]
	BlockEntityTypes    *symbols.Table[*model.BlockEntityType]
	Items               *symbols.Table[*model.Item]
	Effects             *symbols.Table[*model.MobEffect]
	Potions             *symbols.Table[*model.Potion]
	Attributes          *symbols.Table[*model.Attribute]
	Enchantments        *symbols.Table[*model.Enchantment]
	Particles           *symbols.Table[*model.ParticleType]
	Sounds              *symbols.Table[*model.SoundEvent]
	VillagerProfessions *symbols.Table[*model.VillagerProfession]
	VillagerTypes       *symbols.Table[*model.VillagerType]
	CustomStats         *symbols.Table[model.Identifier]
	MapColors           *symbols.Table[*model.MapColor]
}

// BuildNames builds every symbol table from h. The first failure aborts the
// build and wraps ErrSymbolTables.
func BuildNames(h model.Holders) (*Names, error) {
	n := &Names{}
	steps := []struct {
		kind  string
		build func() error
	}{
		{"blocks", table(&n.Blocks, h.Blocks)},
		{"block properties", table(&n.BlockProperties, h.BlockProperties)},
		{"fluids", table(&n.Fluids, h.Fluids)},
		{"entity types", table(&n.EntityTypes, h.EntityTypes)},
		{"block entity types", table(&n.BlockEntityTypes, h.BlockEntityTypes)},
		{"items", table(&n.Items, h.Items)},
		{"effects", table(&n.Effects, h.Effects)},
		{"potions", table(&n.Potions, h.Potions)},
		{"attributes", table(&n.Attributes, h.Attributes)},
		{"enchantments", table(&n.Enchantments, h.Enchantments)},
		{"particles", table(&n.Particles, h.Particles)},
		{"sounds", table(&n.Sounds, h.Sounds)},
		{"villager professions", table(&n.VillagerProfessions, h.VillagerProfessions)},
		{"villager types", table(&n.VillagerTypes, h.VillagerTypes)},
		{"custom statistics", table(&n.CustomStats, h.CustomStats)},
		{"map colors", table(&n.MapColors, h.MapColors)},
	}
	for _, s := range steps {
		if err := s.build(); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrSymbolTables, s.kind, err)
		}
	}
	return n, nil
}

func table[T comparable](dst **symbols.Table[T], holder any) func() error {
	return func() error {
		t, err := symbols.Build[T](holder)
		if err != nil {
			return err
		}
		*dst = t
		return nil
	}
}
