package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mvp-joe/datagen/internal/config"
	"github.com/mvp-joe/datagen/internal/extract"
	"github.com/mvp-joe/datagen/internal/generator"
	"github.com/mvp-joe/datagen/internal/sink"
	"github.com/mvp-joe/datagen/internal/vanilla"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	generateQuietFlag       bool
	generateSQLiteFlag      string
	generateGeneratorFlag   string
	generateKeepScratchFlag bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <version> [output-root]",
	Short: "Extract every registry and the generated data into JSON documents",
	Long: `Generate builds the game definition model and writes one JSON document per
registry category under the output root. It then runs the data generator into
a scratch directory and merges the tags and loot tables it produced into
documents under tags/ and loot_tables/.

On success the absolute output root is printed on stdout. Progress and logs
go to stderr.

Examples:
  # Extract into ./output
  datagen generate 1.16.5

  # Extract into a specific directory and mirror into SQLite
  datagen generate 1.16.5 /srv/mcdata --sqlite /srv/mcdata/data.db

  # Use an external generator and keep its output for inspection
  datagen generate 1.16.5 --generator "java -jar server.jar --output {output}" --keep-scratch
`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().BoolVarP(&generateQuietFlag, "quiet", "q", false, "Disable progress bars and the summary")
	generateCmd.Flags().StringVar(&generateSQLiteFlag, "sqlite", "", "Also mirror every document into this SQLite database")
	generateCmd.Flags().StringVar(&generateGeneratorFlag, "generator", "", "Data generator command line, {output} is replaced by the scratch directory")
	generateCmd.Flags().BoolVar(&generateKeepScratchFlag, "keep-scratch", false, "Keep the generator scratch directory")
}

// generateOptions is the resolved input of one generate run.
type generateOptions struct {
	Version          string
	OutputRoot       string
	Indent           string
	SQLitePath       string
	GeneratorCommand string
	ScratchDir       string
	KeepScratch      bool
	NestedTagKeys    bool
	IgnorePatterns   []string
	Quiet            bool
}

// resolveGenerateOptions applies explicitly set flags and positional
// arguments over the loaded configuration.
func resolveGenerateOptions(c *config.Config, cmd *cobra.Command, args []string) generateOptions {
	opts := generateOptions{
		Version:          args[0],
		OutputRoot:       c.Output.Dir,
		Indent:           c.Output.Indent,
		SQLitePath:       c.Output.SQLite,
		GeneratorCommand: c.Generator.Command,
		ScratchDir:       c.Generator.ScratchDir,
		KeepScratch:      c.Generator.KeepScratch,
		NestedTagKeys:    c.Merge.NestedTagKeys,
		IgnorePatterns:   c.Merge.Ignore,
	}
	if len(args) > 1 {
		opts.OutputRoot = args[1]
	}

	flags := cmd.Flags()
	if flags.Changed("quiet") {
		opts.Quiet, _ = flags.GetBool("quiet")
	}
	if flags.Changed("sqlite") {
		opts.SQLitePath, _ = flags.GetString("sqlite")
	}
	if flags.Changed("generator") {
		opts.GeneratorCommand, _ = flags.GetString("generator")
	}
	if flags.Changed("keep-scratch") {
		opts.KeepScratch, _ = flags.GetBool("keep-scratch")
	}
	return opts
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts := resolveGenerateOptions(cfg, cmd, args)

	var progress extract.ProgressReporter = &extract.NoOpProgressReporter{}
	if !opts.Quiet {
		progress = NewCLIProgressReporter(cmd.ErrOrStderr())
	}

	return generate(ctx, logger, opts, progress, cmd.OutOrStdout())
}

// generate runs one extraction and prints the absolute output root to out.
func generate(ctx context.Context, log *zap.Logger, opts generateOptions, progress extract.ProgressReporter, out io.Writer) (err error) {
	root, err := filepath.Abs(opts.OutputRoot)
	if err != nil {
		return fmt.Errorf("failed to resolve output root: %w", err)
	}

	m := vanilla.Bootstrap()

	var gen generator.Generator = generator.NewBuiltin(m)
	if opts.GeneratorCommand != "" {
		gen, err = generator.NewCommand(log, opts.GeneratorCommand, "")
		if err != nil {
			return err
		}
	}

	jsonSink, err := sink.NewJSONSink(root, opts.Indent)
	if err != nil {
		return err
	}
	sinks := sink.Multi{jsonSink}

	var mirror *sink.SQLiteSink
	if opts.SQLitePath != "" {
		mirror, err = sink.NewSQLiteSink(opts.SQLitePath)
		if err != nil {
			_ = jsonSink.Close()
			return err
		}
		sinks = append(sinks, mirror)
	}
	defer func() {
		if closeErr := sinks.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close output: %w", closeErr))
		}
	}()

	pipeline := extract.New(log, m, gen, sinks, progress, extract.Options{
		Version:        opts.Version,
		ScratchParent:  opts.ScratchDir,
		KeepScratch:    opts.KeepScratch,
		NestedTagKeys:  opts.NestedTagKeys,
		IgnorePatterns: opts.IgnorePatterns,
	})

	stats, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}

	if mirror != nil {
		summary, err := json.Marshal(stats)
		if err != nil {
			return fmt.Errorf("failed to encode run summary: %w", err)
		}
		metadata := map[string]string{
			"version":      stats.Version,
			"run_id":       stats.RunID,
			"generated_at": time.Now().UTC().Format(time.RFC3339),
			"stats":        string(summary),
		}
		for key, value := range metadata {
			if err := mirror.SetMetadata(ctx, key, value); err != nil {
				return err
			}
		}
	}

	fmt.Fprintln(out, root)
	return nil
}
