// Package merge collects generated data file trees into one ordered
// document per category, stamping every file with a key derived from its
// path.
package merge

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/mvp-joe/datagen/internal/record"
	"go.uber.org/zap"
)

// extensionLength is the length of the ".json" suffix stripped from keys.
const extensionLength = len(".json")

// compiledPattern holds both the pattern string and compiled glob
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Document is the merged output of one category.
type Document struct {
	Category Category
	Records  []*record.Record
}

// Result is the outcome of a merge.
type Result struct {
	// Documents holds one document per category found, in category order.
	Documents []Document
	// Missing lists the output names of categories whose directory was
	// absent or unreadable.
	Missing []string
	// Skipped lists files (relative to the merge root) that were not merged.
	Skipped []string
}

// Merger merges category file trees.
type Merger struct {
	log    *zap.Logger
	ignore []compiledPattern
}

// New creates a merger. Files whose path relative to the merge root matches
// an ignore pattern are left out before parsing.
func New(log *zap.Logger, ignorePatterns []string) (*Merger, error) {
	m := &Merger{log: log}
	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		m.ignore = append(m.ignore, compiledPattern{pattern: pattern, glob: g})
	}
	return m, nil
}

// entry is one pending work list item.
type entry struct {
	rel string // relative to the category directory, slash separated
	de  os.DirEntry
}

// Merge merges every category under root. A missing category directory
// skips that category; an unparsable file skips that file. Both are logged
// and the merge continues. Only cancellation aborts.
func (m *Merger) Merge(ctx context.Context, root string, categories []Category) (*Result, error) {
	res := &Result{}
	for _, c := range categories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, ok, err := m.mergeCategory(ctx, root, c, res)
		if err != nil {
			return nil, err
		}
		if !ok {
			res.Missing = append(res.Missing, c.Output)
			continue
		}
		res.Documents = append(res.Documents, doc)
	}
	return res, nil
}

func (m *Merger) mergeCategory(ctx context.Context, root string, c Category, res *Result) (Document, bool, error) {
	dir := filepath.Join(root, filepath.FromSlash(c.Path()))
	children, err := readDir(dir)
	if err != nil {
		m.log.Warn("category directory unavailable, skipping category",
			zap.String("category", c.Output),
			zap.String("path", dir),
			zap.Error(err))
		return Document{}, false, nil
	}

	doc := Document{Category: c, Records: []*record.Record{}}
	work := make([]entry, 0, len(children))
	for _, de := range children {
		work = append(work, entry{rel: de.Name(), de: de})
	}

	// Subdirectory children are appended to the end of the work list as
	// they are discovered; listing order is the filesystem's.
	for i := 0; i < len(work); i++ {
		if err := ctx.Err(); err != nil {
			return Document{}, false, err
		}
		e := work[i]
		full := filepath.Join(dir, filepath.FromSlash(e.rel))
		display := path.Join(c.Path(), e.rel)

		if e.de.IsDir() {
			sub, err := readDir(full)
			if err != nil {
				m.log.Warn("unreadable directory, skipping", zap.String("path", display), zap.Error(err))
				res.Skipped = append(res.Skipped, display)
				continue
			}
			for _, de := range sub {
				work = append(work, entry{rel: path.Join(e.rel, de.Name()), de: de})
			}
			continue
		}
		if !e.de.Type().IsRegular() {
			m.log.Debug("not a regular file, ignoring", zap.String("path", display))
			continue
		}
		if m.shouldIgnore(display) {
			m.log.Debug("ignored by pattern", zap.String("path", display))
			continue
		}

		rec, err := m.load(full, e.rel, c)
		if err != nil {
			m.log.Warn("skipping file", zap.String("category", c.Output), zap.String("path", display), zap.Error(err))
			res.Skipped = append(res.Skipped, display)
			continue
		}
		doc.Records = append(doc.Records, rec)
	}

	m.log.Debug("merged category",
		zap.String("category", c.Output),
		zap.Int("files", len(doc.Records)))
	return doc, true, nil
}

func (m *Merger) load(full, rel string, c Category) (*record.Record, error) {
	key, err := DeriveKey(rel, c)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	rec, err := record.Parse(data)
	if err != nil {
		return nil, err
	}
	return rec.Set(c.KeyField, key), nil
}

// DeriveKey derives the logical key of the file at rel (slash separated,
// relative to the category directory): the base name, or the whole relative
// path for nested keys, without its extension and optionally namespaced.
func DeriveKey(rel string, c Category) (string, error) {
	base := path.Base(rel)
	if len(base) <= extensionLength {
		return "", fmt.Errorf("file name %q too short to carry a key", base)
	}
	key := base
	if c.NestedKey {
		key = rel
	}
	key = key[:len(key)-extensionLength]
	if c.Namespace != "" {
		key = c.Namespace + ":" + key
	}
	return key, nil
}

func (m *Merger) shouldIgnore(relPath string) bool {
	for _, cp := range m.ignore {
		if cp.glob.Match(relPath) {
			return true
		}
	}
	return false
}

// readDir lists dir in filesystem order. os.ReadDir would sort.
func readDir(dir string) ([]os.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ReadDir(-1)
}
