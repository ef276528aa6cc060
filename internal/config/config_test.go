package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Config System:
// - Default() returns valid configuration with all expected defaults
// - Load() uses defaults when no config file exists
// - Load() loads from .datagen/config.yml when present
// - Load() loads from .datagen/config.yaml when present
// - Load() merges config file with defaults
// - Environment variables override config file values
// - Environment variables override defaults when no config file exists
// - NewFileLoader() reads an explicit file and fails when it is missing
// - Load() returns error for malformed YAML
// - Load() returns error for invalid configuration values
// - Validate() rejects empty output dir, bad indent, bad ignore patterns,
//   unknown log levels and formats
// - Validate() returns multiple errors for multiple invalid fields

func writeConfig(t *testing.T, rootDir, name, content string) {
	t.Helper()
	dir := filepath.Join(rootDir, ".datagen")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestDefault_ReturnsValidConfiguration(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, "output", cfg.Output.Dir)
	assert.Equal(t, "  ", cfg.Output.Indent)
	assert.Empty(t, cfg.Output.SQLite)

	assert.Empty(t, cfg.Generator.Command)
	assert.Empty(t, cfg.Generator.ScratchDir)
	assert.False(t, cfg.Generator.KeepScratch)

	assert.Empty(t, cfg.Merge.Ignore)
	assert.True(t, cfg.Merge.NestedTagKeys)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.NoError(t, Validate(cfg))
}

func TestLoadConfig_UsesDefaultsWhenNoConfigFile(t *testing.T) {
	t.Parallel()

	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)

	defaults := Default()
	assert.Equal(t, defaults.Output, cfg.Output)
	assert.Equal(t, defaults.Generator, cfg.Generator)
	assert.Equal(t, defaults.Log, cfg.Log)
	assert.Equal(t, defaults.Merge.NestedTagKeys, cfg.Merge.NestedTagKeys)
	assert.Empty(t, cfg.Merge.Ignore)
}

func TestLoadConfig_LoadsFromConfigYml(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", `
output:
  dir: /srv/mcdata
  indent: "    "
  sqlite: /srv/mcdata/data.db

generator:
  command: java -jar server.jar --output {output}
  scratch_dir: /var/tmp
  keep_scratch: true

merge:
  ignore:
    - "**/*.mcmeta"
    - "tags/functions/**"
  nested_tag_keys: false

log:
  level: debug
  format: json
`)

	cfg, err := NewLoader(tempDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/mcdata", cfg.Output.Dir)
	assert.Equal(t, "    ", cfg.Output.Indent)
	assert.Equal(t, "/srv/mcdata/data.db", cfg.Output.SQLite)

	assert.Equal(t, "java -jar server.jar --output {output}", cfg.Generator.Command)
	assert.Equal(t, "/var/tmp", cfg.Generator.ScratchDir)
	assert.True(t, cfg.Generator.KeepScratch)

	assert.Equal(t, []string{"**/*.mcmeta", "tags/functions/**"}, cfg.Merge.Ignore)
	assert.False(t, cfg.Merge.NestedTagKeys)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_LoadsFromConfigYaml(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yaml", `
output:
  dir: generated
`)

	cfg, err := NewLoader(tempDir).Load()
	require.NoError(t, err)
	assert.Equal(t, "generated", cfg.Output.Dir)
}

func TestLoadConfig_MergesConfigWithDefaults(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", `
log:
  level: warn
`)

	cfg, err := NewLoader(tempDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	// Everything else falls back to defaults
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "output", cfg.Output.Dir)
	assert.True(t, cfg.Merge.NestedTagKeys)
}

func TestLoadConfig_EnvironmentVariablesOverrideConfigFile(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv()
	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", `
output:
  dir: from-file
generator:
  keep_scratch: false
merge:
  nested_tag_keys: true
`)

	t.Setenv("DATAGEN_OUTPUT_DIR", "from-env")
	t.Setenv("DATAGEN_GENERATOR_KEEP_SCRATCH", "true")
	t.Setenv("DATAGEN_MERGE_NESTED_TAG_KEYS", "false")

	cfg, err := NewLoader(tempDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Output.Dir)
	assert.True(t, cfg.Generator.KeepScratch)
	assert.False(t, cfg.Merge.NestedTagKeys)
}

func TestLoadConfig_EnvironmentVariablesOverrideDefaults(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv()
	t.Setenv("DATAGEN_LOG_FORMAT", "json")
	t.Setenv("DATAGEN_OUTPUT_SQLITE", "/tmp/mirror.db")
	t.Setenv("DATAGEN_GENERATOR_COMMAND", "./gen.sh {output}")

	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/mirror.db", cfg.Output.SQLite)
	assert.Equal(t, "./gen.sh {output}", cfg.Generator.Command)
}

func TestFileLoader(t *testing.T) {
	t.Parallel()

	t.Run("reads explicit file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "datagen.yml")
		require.NoError(t, os.WriteFile(path, []byte("output:\n  dir: explicit\n"), 0644))

		cfg, err := NewFileLoader(path).Load()
		require.NoError(t, err)
		assert.Equal(t, "explicit", cfg.Output.Dir)
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		t.Parallel()
		_, err := NewFileLoader(filepath.Join(t.TempDir(), "nope.yml")).Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
}

func TestLoadConfig_ReturnsErrorForMalformedYaml(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", "output:\n  dir: [unclosed\n")

	_, err := NewLoader(tempDir).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_ReturnsErrorForInvalidValues(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", `
log:
  level: chatty
`)

	_, err := NewLoader(tempDir).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr error
	}{
		{
			name:    "empty output dir",
			mutate:  func(cfg *Config) { cfg.Output.Dir = "  " },
			wantErr: ErrEmptyOutputDir,
		},
		{
			name:    "indent with letters",
			mutate:  func(cfg *Config) { cfg.Output.Indent = "ab" },
			wantErr: ErrInvalidIndent,
		},
		{
			name:    "unbalanced ignore pattern",
			mutate:  func(cfg *Config) { cfg.Merge.Ignore = []string{"tags/[abc"} },
			wantErr: ErrInvalidIgnorePattern,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *Config) { cfg.Log.Level = "trace" },
			wantErr: ErrInvalidLogLevel,
		},
		{
			name:    "unknown log format",
			mutate:  func(cfg *Config) { cfg.Log.Format = "logfmt" },
			wantErr: ErrInvalidLogFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, Validate(cfg), tt.wantErr)
		})
	}

	t.Run("tab indent and empty indent are accepted", func(t *testing.T) {
		t.Parallel()
		cfg := Default()
		cfg.Output.Indent = "\t"
		assert.NoError(t, Validate(cfg))
		cfg.Output.Indent = ""
		assert.NoError(t, Validate(cfg))
	})

	t.Run("upper case level and format are accepted", func(t *testing.T) {
		t.Parallel()
		cfg := Default()
		cfg.Log.Level = "WARN"
		cfg.Log.Format = "JSON"
		assert.NoError(t, Validate(cfg))
	})
}

func TestValidate_ReturnsMultipleErrorsForMultipleInvalidFields(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Output.Dir = ""
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"

	err := Validate(cfg)
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "empty output directory")
	assert.Contains(t, msg, "invalid log level")
	assert.Contains(t, msg, "invalid log format")
}
