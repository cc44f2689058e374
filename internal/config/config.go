package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/xll-gen/bin2c/internal/codec"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the manifest name looked up by the batch commands.
const DefaultFile = "bin2c.yaml"

// Config represents the batch manifest parsed from bin2c.yaml.
// It lists the files to embed and how the run is logged and scheduled.
type Config struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
	// Jobs is the number of conversions allowed to run at once.
	Jobs int `yaml:"jobs"`
	// Compress is the codec applied to embeds that do not set their own.
	Compress string `yaml:"compress"`
	// Embeds is the list of files to convert.
	Embeds []Embed `yaml:"embeds"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path string `yaml:"path"`
}

// Embed describes one input file rendered into one C source file.
type Embed struct {
	// Input is the binary file to read, relative to the manifest.
	Input string `yaml:"input"`
	// Output is the C file to write, relative to the manifest.
	Output string `yaml:"output"`
	// Name is the array identifier, also the prefix of "<name>_len".
	Name string `yaml:"name"`
	// Compress overrides the top-level codec for this embed.
	Compress string `yaml:"compress"`
}

// Load reads the manifest at path, applies defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the manifest for errors such as missing fields,
// unknown codecs or two embeds writing the same output.
// Array names are used verbatim and are not checked against C identifier rules.
func Validate(config *Config) error {
	if _, err := codec.ParseKind(config.Compress); err != nil {
		return fmt.Errorf("compress: %w", err)
	}

	seenOutputs := make(map[string]int)
	for i, e := range config.Embeds {
		switch {
		case e.Input == "":
			return fmt.Errorf("embed #%d: input cannot be empty", i+1)
		case e.Output == "":
			return fmt.Errorf("embed #%d (%s): output cannot be empty", i+1, e.Input)
		case e.Name == "":
			return fmt.Errorf("embed #%d (%s): name cannot be empty", i+1, e.Input)
		}
		if _, err := codec.ParseKind(e.Compress); err != nil {
			return fmt.Errorf("embed '%s': %w", e.Name, err)
		}
		out := filepath.Clean(e.Output)
		if prev, ok := seenOutputs[out]; ok {
			return fmt.Errorf("duplicate output: %s (embeds #%d and #%d)", e.Output, prev, i+1)
		}
		seenOutputs[out] = i + 1
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	return nil
}

// ApplyDefaults sets default values for fields that are missing.
// Embeds without a codec inherit the top-level one.
func ApplyDefaults(config *Config) {
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Jobs <= 0 {
		config.Jobs = runtime.NumCPU()
	}
	if config.Compress == "" {
		config.Compress = string(codec.None)
	}
	for i := range config.Embeds {
		if config.Embeds[i].Compress == "" {
			config.Embeds[i].Compress = config.Compress
		}
	}
}
