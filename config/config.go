package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/dhamidi/arith/arith"
	"github.com/dhamidi/arith/format"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "ARITH_CONFIG"

// Config holds the complete application configuration
type Config struct {
	Output  OutputConfig  `toml:"output"`
	Grammar GrammarConfig `toml:"grammar"`
	Log     LogConfig     `toml:"log"`
	Watch   WatchConfig   `toml:"watch"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `toml:"-"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format    string `toml:"format"`
	Precision int    `toml:"precision"`
}

// GrammarConfig holds evaluator limits
type GrammarConfig struct {
	MaxDepth int `toml:"max_depth"`
}

// LogConfig holds commonlog settings
type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// WatchConfig holds file watcher settings
type WatchConfig struct {
	Interval   Duration `toml:"interval"`
	Extensions []string `toml:"extensions"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{Output: OutputConfig{Precision: -1}}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := &Config{Output: OutputConfig{Precision: -1}}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Path = path

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads the configuration named by explicit, or else by $ARITH_CONFIG,
// or else the first of ./arith.toml and ~/.config/arith/config.toml that
// exists. Without any of these it returns the defaults.
func Discover(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths lists the locations searched by Discover.
func DefaultPaths() []string {
	paths := []string{"./arith.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "arith", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Grammar.MaxDepth == 0 {
		c.Grammar.MaxDepth = arith.DefaultMaxDepth
	}
	if c.Watch.Interval.Duration == 0 {
		c.Watch.Interval.Duration = time.Second
	}
	if len(c.Watch.Extensions) == 0 {
		c.Watch.Extensions = []string{".arith"}
	}
}

func (c *Config) expandEnvVars() {
	c.Log.File = os.ExpandEnv(c.Log.File)
}

// Validate reports settings no command could work with.
func (c *Config) Validate() error {
	if !slices.Contains(format.Names, c.Output.Format) {
		return fmt.Errorf("output.format %q is not one of %v", c.Output.Format, format.Names)
	}
	if c.Grammar.MaxDepth < 0 {
		return fmt.Errorf("grammar.max_depth must be positive, got %d", c.Grammar.MaxDepth)
	}
	if c.Watch.Interval.Duration < 0 {
		return fmt.Errorf("watch.interval must be positive, got %s", c.Watch.Interval)
	}
	return nil
}

// EvaluatorOptions returns the arith options described by the configuration.
func (c *Config) EvaluatorOptions() []arith.Option {
	return []arith.Option{arith.WithMaxDepth(c.Grammar.MaxDepth)}
}

// LogPath returns the log file for commonlog.Configure, nil for stderr.
func (c *Config) LogPath() *string {
	if c.Log.File == "" {
		return nil
	}
	path := c.Log.File
	return &path
}
