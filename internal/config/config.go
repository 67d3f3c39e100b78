// Package config loads gofuzzy settings from defaults, an optional TOML file
// and GOFUZZY_* environment variables, in increasing order of precedence.
// Command-line flags bound by the CLI sit on top of all three.
package config

import (
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. GOFUZZY_THRESHOLD
// or GOFUZZY_SERVER_PORT.
const EnvPrefix = "GOFUZZY"

// ErrInvalidConfig marks configuration values that fail validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the typed view of the configuration.
type Config struct {
	// Threshold is the edit distance k both automata of a comparison use.
	Threshold int `mapstructure:"threshold"`

	// Words are compared pairwise when the compare command gets no arguments.
	Words []string `mapstructure:"words"`

	// Workers bounds how many pairs are evaluated concurrently.
	Workers int `mapstructure:"workers"`

	// CacheSize is how many determinized automata are kept for reuse.
	CacheSize int `mapstructure:"cache_size"`

	// StateLimit caps the subsets of a single automaton; zero disables it.
	StateLimit int `mapstructure:"state_limit"`

	// Analyzer names the analyzer used to pull words out of text files.
	Analyzer string `mapstructure:"analyzer"`

	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
	// MaxBodyBytes bounds request bodies.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`
	// MaxThreshold is the largest k a request may ask for.
	MaxThreshold int `mapstructure:"max_threshold"`
	// MaxPatternRunes bounds every word a request names.
	MaxPatternRunes int `mapstructure:"max_pattern_runes"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("threshold", 1)
	v.SetDefault("words", []string{})
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("cache_size", 256)
	v.SetDefault("state_limit", 1<<16)
	v.SetDefault("analyzer", "standard")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.max_threshold", 3)
	v.SetDefault("server.max_pattern_runes", 256)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
}

// New returns a Viper instance with defaults, environment binding and, if
// found, the config file. An empty path looks for gofuzzy.toml in the
// working directory and tolerates its absence; an explicit path must exist.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
		return v, nil
	}

	v.SetConfigName("gofuzzy")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read gofuzzy.toml")
		}
	}
	return v, nil
}

// Load reads and validates the configuration. See New for path handling.
func Load(path string) (*Config, error) {
	v, err := New(path)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// LoadWithViper decodes and validates the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects values no component can work with.
func (c *Config) Validate() error {
	switch {
	case c.Threshold < 0:
		return errors.WithHint(
			errors.Wrapf(ErrInvalidConfig, "threshold %d", c.Threshold),
			"the edit distance threshold must be zero or positive")
	case c.Workers < 1:
		return errors.Wrapf(ErrInvalidConfig, "workers %d", c.Workers)
	case c.CacheSize < 1:
		return errors.Wrapf(ErrInvalidConfig, "cache_size %d", c.CacheSize)
	case c.StateLimit < 0:
		return errors.Wrapf(ErrInvalidConfig, "state_limit %d", c.StateLimit)
	case c.Server.Port < 0 || c.Server.Port > 65535:
		return errors.Wrapf(ErrInvalidConfig, "server.port %d", c.Server.Port)
	case c.Server.MaxBodyBytes < 1:
		return errors.Wrapf(ErrInvalidConfig, "server.max_body_bytes %d", c.Server.MaxBodyBytes)
	case c.Server.MaxThreshold < 0:
		return errors.Wrapf(ErrInvalidConfig, "server.max_threshold %d", c.Server.MaxThreshold)
	case c.Server.MaxPatternRunes < 1:
		return errors.Wrapf(ErrInvalidConfig, "server.max_pattern_runes %d", c.Server.MaxPatternRunes)
	}
	return nil
}
