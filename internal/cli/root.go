package cli

import (
	"fmt"
	"os"

	"github.com/mvp-joe/datagen/internal/config"
	"github.com/mvp-joe/datagen/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool

	// cfg and logger are set by PersistentPreRunE before any command runs.
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "datagen",
	Short: "Extract game definition data into JSON documents",
	Long: `datagen walks every registry of the game definition model and writes
one JSON document per category, then runs the data generator and merges the
tags and loot tables it produces.

Configuration is read from .datagen/config.yml in the working directory,
with DATAGEN_* environment variables taking precedence and command flags
taking precedence over both.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .datagen/config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := loadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg = loaded

	logger, err = logging.New(cfg.Log.Level, cfg.Log.Format, verbose)
	if err != nil {
		return err
	}
	if cfgFile != "" {
		logger.Debug("using config file", zap.String("path", cfgFile))
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.NewFileLoader(path).Load()
	}
	return config.LoadConfig()
}
