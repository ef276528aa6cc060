package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mvp-joe/datagen/internal/model"
)

// DataRoot is the namespace directory every generated file lives under.
var DataRoot = filepath.Join("data", "minecraft")

// Builtin writes the tag and loot table definitions carried by a model.
type Builtin struct {
	model *model.Model
}

// NewBuiltin creates a generator for m.
func NewBuiltin(m *model.Model) *Builtin {
	return &Builtin{model: m}
}

// Generate writes tags/<registry>/<name>.json and
// loot_tables/<category>/<path>.json under <outDir>/data/minecraft.
func (b *Builtin) Generate(ctx context.Context, outDir string) error {
	root := filepath.Join(outDir, DataRoot)

	for _, tag := range b.model.Tags {
		if err := ctx.Err(); err != nil {
			return err
		}
		p := filepath.Join(root, "tags", tag.Registry, filepath.FromSlash(tag.Name)+".json")
		if err := writeJSON(p, tag); err != nil {
			return fmt.Errorf("%w: tag %s/%s: %v", ErrGenerator, tag.Registry, tag.Name, err)
		}
	}

	for _, table := range b.model.LootTables {
		if err := ctx.Err(); err != nil {
			return err
		}
		p := filepath.Join(root, "loot_tables", table.Category, filepath.FromSlash(table.Path)+".json")
		if err := writeJSON(p, table); err != nil {
			return fmt.Errorf("%w: loot table %s/%s: %v", ErrGenerator, table.Category, table.Path, err)
		}
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
