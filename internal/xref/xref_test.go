package xref

import (
	"testing"

	"github.com/mvp-joe/datagen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	m      *model.Model
	stone  *model.Block
	fire   *model.Block
	stoneI *model.Item
	apple  *model.Item
	egg    *model.Item
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	m := model.New()
	f := &fixture{m: m}
	m.Blocks.MustRegister(model.Minecraft("air"), model.NewBlock(model.BlockSettings{Air: true}))
	f.stone = m.Blocks.MustRegister(model.Minecraft("stone"), model.NewBlock(model.BlockSettings{}))
	f.fire = m.Blocks.MustRegister(model.Minecraft("fire"), model.NewBlock(model.BlockSettings{}))

	pig := m.EntityTypes.MustRegister(model.Minecraft("pig"), &model.EntityType{Traits: model.TraitLiving})

	m.Items.MustRegister(model.Minecraft("air"), &model.Item{})
	f.stoneI = m.Items.MustRegister(model.Minecraft("stone"), &model.Item{Block: f.stone})
	f.apple = m.Items.MustRegister(model.Minecraft("apple"), &model.Item{})
	f.egg = m.Items.MustRegister(model.Minecraft("pig_spawn_egg"), &model.Item{SpawnEgg: pig})
	m.Index()
	return f
}

func TestResolve_ItemForBlock(t *testing.T) {
	f := newFixture(t)

	id, ok := Resolve(f.stone, ItemForBlock(f.m), f.m.Items)
	require.True(t, ok)
	assert.Equal(t, "minecraft:stone", id.String())

	_, ok = Resolve(f.fire, ItemForBlock(f.m), f.m.Items)
	assert.False(t, ok, "the air item sentinel resolves to absent")
}

func TestResolve_BlockForItem(t *testing.T) {
	f := newFixture(t)

	s, ok := ResolveString(f.stoneI, BlockForItem(f.m), f.m.Blocks)
	require.True(t, ok)
	assert.Equal(t, "minecraft:stone", s)

	s, ok = ResolveString(f.apple, BlockForItem(f.m), f.m.Blocks)
	assert.False(t, ok)
	assert.Empty(t, s)
}

func TestResolve_NonDefaultedTarget(t *testing.T) {
	f := newFixture(t)

	id, ok := Resolve(f.egg, SpawnEggType, f.m.EntityTypes)
	require.True(t, ok)
	assert.Equal(t, model.Minecraft("pig"), id)

	_, ok = Resolve(f.apple, SpawnEggType, f.m.EntityTypes)
	assert.False(t, ok)
}

func TestResolve_UnregisteredTarget(t *testing.T) {
	f := newFixture(t)
	orphan := &model.Item{EatingSound: &model.SoundEvent{Location: model.Minecraft("entity.generic.eat")}}

	_, ok := Resolve(orphan, EatingSound, f.m.Sounds)
	assert.False(t, ok, "objects missing from the target registry resolve to absent")

	_, ok = Resolve(f.apple, DrinkingSound, f.m.Sounds)
	assert.False(t, ok)
}
