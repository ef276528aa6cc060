package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mvp-joe/datagen/internal/record"
)

// DefaultIndent is the indentation used when none is configured.
const DefaultIndent = "  "

// JSONSink writes each document to <root>/<group>/<category>.json.
// Files are written atomically using a temp -> rename pattern.
type JSONSink struct {
	root    string
	tempDir string
	indent  string
}

// NewJSONSink creates a sink rooted at root. Stale temp files from an
// interrupted run are removed.
func NewJSONSink(root, indent string) (*JSONSink, error) {
	tempDir := filepath.Join(root, ".tmp")

	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	// Clean up stale temp files
	if err := os.RemoveAll(tempDir); err != nil {
		return nil, fmt.Errorf("failed to clean temp directory: %w", err)
	}

	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	if indent == "" {
		indent = DefaultIndent
	}
	return &JSONSink{root: root, tempDir: tempDir, indent: indent}, nil
}

// Path returns the file a document would be written to.
func (s *JSONSink) Path(group, category string) string {
	return filepath.Join(s.root, filepath.FromSlash(group), category+".json")
}

// Emit writes doc atomically. An empty document is written as [].
func (s *JSONSink) Emit(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	records := doc.Records
	if records == nil {
		records = []*record.Record{}
	}

	data, err := json.MarshalIndent(records, "", s.indent)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", doc.Category, err)
	}
	data = append(data, '\n')

	finalPath := s.Path(doc.Group, doc.Category)
	if err := os.MkdirAll(filepath.Dir(finalPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", doc.Category, err)
	}

	// Write to temp file
	tmp, err := os.CreateTemp(s.tempDir, doc.Category+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	// Rename to final location (atomic operation)
	if err := os.Rename(tempPath, finalPath); err != nil {
		// Clean up temp file on error
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Close removes the temp directory.
func (s *JSONSink) Close() error {
	if err := os.RemoveAll(s.tempDir); err != nil {
		return fmt.Errorf("failed to remove temp directory: %w", err)
	}
	return nil
}
