// Package extract drives an extraction run: it flattens every registry of
// the model into its own document, runs the data generator into a scratch
// directory and merges the generated tags and loot tables.
package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mvp-joe/datagen/internal/generator"
	"github.com/mvp-joe/datagen/internal/merge"
	"github.com/mvp-joe/datagen/internal/model"
	"github.com/mvp-joe/datagen/internal/sink"
	"go.uber.org/zap"
)

// Options configure a pipeline run.
type Options struct {
	// Version labels the run and names the scratch directory.
	Version string
	// ScratchParent is where the scratch directory is created; empty means
	// the system temp directory.
	ScratchParent string
	// KeepScratch leaves the generated tree on disk after the run.
	KeepScratch bool
	// NestedTagKeys keys tags by their full relative path (mineable/axe)
	// instead of the base name (axe).
	NestedTagKeys bool
	// IgnorePatterns exclude generated files from the merge.
	IgnorePatterns []string
}

// Pipeline extracts one model into a sink.
type Pipeline struct {
	log       *zap.Logger
	model     *model.Model
	generator generator.Generator
	sink      sink.Sink
	progress  ProgressReporter
	opts      Options
}

// New creates a pipeline. A nil progress reporter reports nothing.
func New(log *zap.Logger, m *model.Model, gen generator.Generator, s sink.Sink, progress ProgressReporter, opts Options) *Pipeline {
	if progress == nil {
		progress = &NoOpProgressReporter{}
	}
	return &Pipeline{
		log:       log,
		model:     m,
		generator: gen,
		sink:      s,
		progress:  progress,
		opts:      opts,
	}
}

// ScratchPattern returns the scratch directory name pattern for a version
// label: dots become underscores and a random suffix is appended.
func ScratchPattern(version string) string {
	return strings.ReplaceAll(version, ".", "_") + "_gen_data*"
}

// Run performs a single forward pass. Symbol table failures, generator
// failures and sink failures abort the run; documents emitted before the
// failure stay on disk. Skipped entries, files and categories are logged
// and recorded in the returned stats.
func (p *Pipeline) Run(ctx context.Context) (*Stats, error) {
	start := time.Now()
	stats := &Stats{RunID: uuid.NewString(), Version: p.opts.Version}
	log := p.log.With(zap.String("run_id", stats.RunID), zap.String("version", p.opts.Version))

	names, err := BuildNames(p.model.Holders)
	if err != nil {
		return nil, err
	}
	log.Debug("built symbol tables", zap.Int("blocks", names.Blocks.Len()), zap.Int("items", names.Items.Len()))

	if err := p.flattenRegistries(ctx, log, names, stats); err != nil {
		return nil, err
	}
	if err := p.mergeGenerated(ctx, log, stats); err != nil {
		return nil, err
	}

	stats.Duration = time.Since(start)
	p.progress.OnComplete(stats)
	log.Info("extraction complete",
		zap.Int("documents", stats.Documents),
		zap.Int("records", stats.Records),
		zap.Int("skipped_entries", len(stats.SkippedEntries)),
		zap.Int("skipped_files", len(stats.SkippedFiles)),
		zap.Strings("missing_categories", stats.MissingCategories),
		zap.Duration("duration", stats.Duration))
	return stats, nil
}

func (p *Pipeline) flattenRegistries(ctx context.Context, log *zap.Logger, names *Names, stats *Stats) error {
	e := &env{m: p.model, names: names, log: log}
	categories := registryCategories()
	p.progress.OnFlattenStart(len(categories))

	for _, c := range categories {
		if err := ctx.Err(); err != nil {
			return err
		}
		res := c.run(e)
		for _, key := range res.Skipped {
			stats.SkippedEntries = append(stats.SkippedEntries, c.name+"/"+key)
		}
		doc := sink.Document{Category: c.name, KeyField: c.keyField, Records: res.Records}
		if err := p.emit(ctx, log, doc, stats); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) mergeGenerated(ctx context.Context, log *zap.Logger, stats *Stats) error {
	scratch, err := os.MkdirTemp(p.opts.ScratchParent, ScratchPattern(p.opts.Version))
	if err != nil {
		return fmt.Errorf("failed to create scratch directory: %w", err)
	}
	if p.opts.KeepScratch {
		log.Info("keeping scratch directory", zap.String("path", scratch))
	} else {
		defer func() {
			if err := os.RemoveAll(scratch); err != nil {
				log.Warn("failed to remove scratch directory", zap.String("path", scratch), zap.Error(err))
			}
		}()
	}

	p.progress.OnGeneratorStart(scratch)
	if err := p.generator.Generate(ctx, scratch); err != nil {
		return fmt.Errorf("failed to run data generator: %w", err)
	}

	merger, err := merge.New(log, p.opts.IgnorePatterns)
	if err != nil {
		return err
	}
	categories := append(merge.TagCategories(p.opts.NestedTagKeys), merge.LootTableCategories()...)
	p.progress.OnMergeStart(len(categories))

	res, err := merger.Merge(ctx, filepath.Join(scratch, generator.DataRoot), categories)
	if err != nil {
		return err
	}
	stats.SkippedFiles = append(stats.SkippedFiles, res.Skipped...)
	stats.MissingCategories = append(stats.MissingCategories, res.Missing...)

	for _, d := range res.Documents {
		doc := sink.Document{
			Category: d.Category.Output,
			Group:    d.Category.Group,
			KeyField: d.Category.KeyField,
			Records:  d.Records,
		}
		if err := p.emit(ctx, log, doc, stats); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) emit(ctx context.Context, log *zap.Logger, doc sink.Document, stats *Stats) error {
	if err := p.sink.Emit(ctx, doc); err != nil {
		return fmt.Errorf("failed to write %s: %w", doc.Category, err)
	}
	stats.Documents++
	stats.Records += len(doc.Records)
	p.progress.OnDocumentWritten(doc.Category, len(doc.Records))
	log.Debug("wrote document",
		zap.String("category", doc.Category),
		zap.String("group", doc.Group),
		zap.Int("records", len(doc.Records)))
	return nil
}
