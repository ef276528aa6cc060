package generator

// Test Plan for Generators:
// - Command substitutes {output} in every argument
// - Command succeeds when the process exits zero
// - Command reports ErrGenerator for non-zero exit and launch failure
// - NewCommand rejects an empty command line
// - Builtin writes nested tag and loot table paths under data/minecraft
// - Builtin output has the definition fields only

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mvp-joe/datagen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCommand_Args(t *testing.T) {
	t.Parallel()
	c, err := NewCommand(zap.NewNop(), "java -cp server.jar net.minecraft.data.Main --all --output={output}", "")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"java", "-cp", "server.jar", "net.minecraft.data.Main", "--all", "--output=/tmp/1_16_5_gen_data"},
		c.Args("/tmp/1_16_5_gen_data"))
}

func TestCommand_Generate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		out := t.TempDir()
		c, err := NewCommand(zap.NewNop(), "mkdir -p {output}/data/minecraft/tags", "")
		require.NoError(t, err)
		require.NoError(t, c.Generate(ctx, out))
		assert.DirExists(t, filepath.Join(out, "data", "minecraft", "tags"))
	})

	t.Run("non-zero exit", func(t *testing.T) {
		t.Parallel()
		c, err := NewCommand(zap.NewNop(), "false", "")
		require.NoError(t, err)
		assert.ErrorIs(t, c.Generate(ctx, t.TempDir()), ErrGenerator)
	})

	t.Run("launch failure", func(t *testing.T) {
		t.Parallel()
		c, err := NewCommand(zap.NewNop(), "datagen-no-such-binary --output={output}", "")
		require.NoError(t, err)
		assert.ErrorIs(t, c.Generate(ctx, t.TempDir()), ErrGenerator)
	})
}

func TestNewCommand_Empty(t *testing.T) {
	t.Parallel()
	_, err := NewCommand(zap.NewNop(), "   ", "")
	assert.ErrorIs(t, err, ErrGenerator)
}

func TestBuiltin_Generate(t *testing.T) {
	t.Parallel()
	m := model.New()
	m.Tags = []model.Tag{
		{Registry: "blocks", Name: "mineable/axe", Values: []string{"minecraft:oak_log"}},
		{Registry: "items", Name: "logs", Values: []string{}},
	}
	m.LootTables = []model.LootTable{
		{Category: "chests", Path: "village/village_armorer", Type: "minecraft:chest"},
		{Category: "gameplay", Path: "fishing", Type: "minecraft:fishing", Pools: []model.LootPool{
			{Rolls: 1, Entries: []model.LootEntry{{Type: "minecraft:item", Name: "minecraft:cod", Weight: 60}}},
		}},
	}

	out := t.TempDir()
	require.NoError(t, NewBuiltin(m).Generate(context.Background(), out))

	root := filepath.Join(out, "data", "minecraft")
	axe, err := os.ReadFile(filepath.Join(root, "tags", "blocks", "mineable", "axe.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"replace":false,"values":["minecraft:oak_log"]}`, string(axe))

	assert.FileExists(t, filepath.Join(root, "tags", "items", "logs.json"))
	assert.FileExists(t, filepath.Join(root, "loot_tables", "chests", "village", "village_armorer.json"))

	fishing, err := os.ReadFile(filepath.Join(root, "loot_tables", "gameplay", "fishing.json"))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"type":"minecraft:fishing","pools":[{"rolls":1,"entries":[{"type":"minecraft:item","name":"minecraft:cod","weight":60}]}]}`,
		string(fishing))
}
