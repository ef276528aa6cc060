package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "DATAGEN"

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir    string
	configFile string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// NewFileLoader creates a loader that reads an explicit config file instead
// of searching .datagen/ under a root directory. The file must exist.
func NewFileLoader(path string) Loader {
	return &loader{
		configFile: path,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (DATAGEN_*)
// 2. Config file (.datagen/config.yml or .datagen/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(l.rootDir, ".datagen"))
	}

	// Enable environment variable overrides
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., DATAGEN_OUTPUT_DIR)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Output configuration
	v.BindEnv("output.dir")
	v.BindEnv("output.indent")
	v.BindEnv("output.sqlite")

	// Generator configuration
	v.BindEnv("generator.command")
	v.BindEnv("generator.scratch_dir")
	v.BindEnv("generator.keep_scratch")

	// Merge configuration
	v.BindEnv("merge.ignore")
	v.BindEnv("merge.nested_tag_keys")

	// Log configuration
	v.BindEnv("log.level")
	v.BindEnv("log.format")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing file under the root is fine, an explicit file is not
		var notFound viper.ConfigFileNotFoundError
		if l.configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("output.dir", defaults.Output.Dir)
	v.SetDefault("output.indent", defaults.Output.Indent)
	v.SetDefault("output.sqlite", defaults.Output.SQLite)

	v.SetDefault("generator.command", defaults.Generator.Command)
	v.SetDefault("generator.scratch_dir", defaults.Generator.ScratchDir)
	v.SetDefault("generator.keep_scratch", defaults.Generator.KeepScratch)

	v.SetDefault("merge.ignore", defaults.Merge.Ignore)
	v.SetDefault("merge.nested_tag_keys", defaults.Merge.NestedTagKeys)

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
}

// LoadConfig is a convenience function that creates a loader and loads config.
// It uses the current working directory as the root.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd).Load()
}

// LoadConfigFromDir loads configuration from a specific directory.
func LoadConfigFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}
