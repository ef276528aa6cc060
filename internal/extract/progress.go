package extract

import "time"

// Stats summarizes one extraction run.
type Stats struct {
	RunID   string `json:"run_id"`
	Version string `json:"version"`
	// Documents is the number of documents emitted.
	Documents int `json:"documents"`
	// Records is the number of records across all documents.
	Records int `json:"records"`
	// SkippedEntries lists registry entries left out, as category/key.
	SkippedEntries []string `json:"skipped_entries,omitempty"`
	// SkippedFiles lists generated files left out, relative to the data root.
	SkippedFiles []string `json:"skipped_files,omitempty"`
	// MissingCategories lists merged categories with no directory.
	MissingCategories []string      `json:"missing_categories,omitempty"`
	Duration          time.Duration `json:"duration"`
}

// ProgressReporter receives progress events during a run.
type ProgressReporter interface {
	// OnFlattenStart is called before the registry documents are flattened.
	OnFlattenStart(totalCategories int)

	// OnDocumentWritten is called after each document is emitted.
	OnDocumentWritten(category string, records int)

	// OnGeneratorStart is called before the data generator runs.
	OnGeneratorStart(scratchDir string)

	// OnMergeStart is called before the generated tree is merged.
	OnMergeStart(totalCategories int)

	// OnComplete is called when the run completes successfully.
	OnComplete(stats *Stats)
}

// NoOpProgressReporter is a progress reporter that does nothing.
type NoOpProgressReporter struct{}

func (n *NoOpProgressReporter) OnFlattenStart(totalCategories int)            {}
func (n *NoOpProgressReporter) OnDocumentWritten(category string, records int) {}
func (n *NoOpProgressReporter) OnGeneratorStart(scratchDir string)            {}
func (n *NoOpProgressReporter) OnMergeStart(totalCategories int)              {}
func (n *NoOpProgressReporter) OnComplete(stats *Stats)                       {}
