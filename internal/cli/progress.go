package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/mvp-joe/datagen/internal/extract"
	"github.com/schollz/progressbar/v3"
)

// CLIProgressReporter implements progress reporting with progress bars.
// Everything is written to w so stdout stays reserved for the result.
type CLIProgressReporter struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

// NewCLIProgressReporter creates a new CLI progress reporter writing to w.
func NewCLIProgressReporter(w io.Writer) *CLIProgressReporter {
	return &CLIProgressReporter{w: w}
}

func (c *CLIProgressReporter) OnFlattenStart(totalCategories int) {
	c.startBar(totalCategories, "Flattening registries")
}

func (c *CLIProgressReporter) OnDocumentWritten(category string, records int) {
	if c.bar != nil {
		c.bar.Add(1)
	}
}

func (c *CLIProgressReporter) OnGeneratorStart(scratchDir string) {
	c.finishBar()
	fmt.Fprintf(c.w, "Running data generator in %s\n", scratchDir)
}

func (c *CLIProgressReporter) OnMergeStart(totalCategories int) {
	c.startBar(totalCategories, "Merging generated data")
}

func (c *CLIProgressReporter) OnComplete(stats *extract.Stats) {
	c.finishBar()

	fmt.Fprintln(c.w)
	fmt.Fprintf(c.w, "✓ Extraction complete: %s records in %d documents (%.1fs)\n",
		formatNumber(stats.Records), stats.Documents, stats.Duration.Seconds())
	if n := len(stats.SkippedEntries); n > 0 {
		fmt.Fprintf(c.w, "  Skipped entries:    %s\n", formatNumber(n))
	}
	if n := len(stats.SkippedFiles); n > 0 {
		fmt.Fprintf(c.w, "  Skipped files:      %s\n", formatNumber(n))
	}
	if n := len(stats.MissingCategories); n > 0 {
		fmt.Fprintf(c.w, "  Missing categories: %v\n", stats.MissingCategories)
	}
}

func (c *CLIProgressReporter) startBar(total int, description string) {
	c.finishBar()
	c.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(c.w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(c.w)
		}),
	)
}

// finishBar completes the current bar. Merged categories without a
// directory are never written, so the merge bar may end short of its total.
func (c *CLIProgressReporter) finishBar() {
	if c.bar == nil {
		return
	}
	if !c.bar.IsFinished() {
		c.bar.Finish()
	}
	c.bar = nil
}

// formatNumber formats integer with thousand separators.
// Examples: 1234 -> "1,234", 1234567 -> "1,234,567"
func formatNumber(n int) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return formatNumber(n/1000) + fmt.Sprintf(",%03d", n%1000)
}
