package config

// Config represents the complete datagen configuration.
// It can be loaded from .datagen/config.yml with environment variable overrides.
type Config struct {
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	Generator GeneratorConfig `yaml:"generator" mapstructure:"generator"`
	Merge     MergeConfig     `yaml:"merge" mapstructure:"merge"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// OutputConfig controls where and how documents are written.
type OutputConfig struct {
	Dir    string `yaml:"dir" mapstructure:"dir"`       // output root for JSON documents
	Indent string `yaml:"indent" mapstructure:"indent"` // pretty-print indent, spaces or tabs only
	SQLite string `yaml:"sqlite" mapstructure:"sqlite"` // optional SQLite mirror path, empty disables it
}

// GeneratorConfig controls the external data generator run.
type GeneratorConfig struct {
	Command     string `yaml:"command" mapstructure:"command"`           // command line, {output} is replaced by the scratch dir
	ScratchDir  string `yaml:"scratch_dir" mapstructure:"scratch_dir"`   // parent of the scratch dir, empty means system temp
	KeepScratch bool   `yaml:"keep_scratch" mapstructure:"keep_scratch"` // leave generated files on disk
}

// MergeConfig controls how the generated tree is merged.
type MergeConfig struct {
	Ignore        []string `yaml:"ignore" mapstructure:"ignore"`                   // glob patterns relative to the data root
	NestedTagKeys bool     `yaml:"nested_tag_keys" mapstructure:"nested_tag_keys"` // key tags by full relative path
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn or error
	Format string `yaml:"format" mapstructure:"format"` // console or json
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:    "output",
			Indent: "  ",
			SQLite: "",
		},
		Generator: GeneratorConfig{
			Command:     "", // Empty means use the built-in generator
			ScratchDir:  "",
			KeepScratch: false,
		},
		Merge: MergeConfig{
			Ignore:        []string{},
			NestedTagKeys: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
