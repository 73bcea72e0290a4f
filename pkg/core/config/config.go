package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/rawtime/foundation/core/error"
	mdwlog "github.com/msto63/rawtime/foundation/core/log"
	"github.com/msto63/rawtime/foundation/utils/timex"
	"github.com/msto63/rawtime/pkg/rawtime"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "RAWTIME_CONFIG"

// Config holds the complete tool configuration
type Config struct {
	Log      LogConfig      `toml:"log" yaml:"log"`
	Format   FormatConfig   `toml:"format" yaml:"format"`
	Rounding RoundingConfig `toml:"rounding" yaml:"rounding"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// FormatConfig holds text conversion settings
type FormatConfig struct {
	// Layout is the named or Go layout used for output
	Layout string `toml:"layout" yaml:"layout"`

	// Locale is a BCP 47 tag for month and weekday names
	Locale string `toml:"locale" yaml:"locale"`

	// ParseLayouts are tried in order when reading text; empty means the
	// timex defaults
	ParseLayouts []string `toml:"parse_layouts" yaml:"parse_layouts"`
}

// RoundingConfig holds the defaults of the round command
type RoundingConfig struct {
	Interval int    `toml:"interval" yaml:"interval"`
	Policy   string `toml:"policy" yaml:"policy"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "config file not readable").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
	default:
		return nil, mdwerror.Newf("unsupported config format %q", ext).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by RAWTIME_CONFIG, or the first file found
// in the default locations. Without any file it returns Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

func defaultPaths() []string {
	paths := []string{"./rawtime.toml", "./rawtime.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "rawtime", "config.toml"),
			filepath.Join(home, ".config", "rawtime", "config.yaml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Format.Layout == "" {
		c.Format.Layout = "log"
	}
	if c.Format.Locale == "" {
		c.Format.Locale = "en"
	}
	if c.Rounding.Interval == 0 {
		c.Rounding.Interval = 15
	}
	if c.Rounding.Policy == "" {
		c.Rounding.Policy = rawtime.RoundMath.String()
	}
}

// Validate checks every enumerated value and the rounding interval
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", c.Log.Level, err)
	}
	if _, err := mdwlog.ParseFormat(c.Log.Format); err != nil {
		return invalid("log.format", c.Log.Format, err)
	}
	if _, err := language.Parse(c.Format.Locale); err != nil {
		return invalid("format.locale", c.Format.Locale, err)
	}
	if _, err := rawtime.ParseRoundingPolicy(c.Rounding.Policy); err != nil {
		return invalid("rounding.policy", c.Rounding.Policy, err)
	}
	if c.Rounding.Interval < 1 || c.Rounding.Interval > 60 {
		return mdwerror.Newf("rounding.interval %d outside 1-60", c.Rounding.Interval).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("key", "rounding.interval")
	}
	return nil
}

func invalid(key, value string, cause error) error {
	return mdwerror.Wrap(cause, "invalid "+key).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value)
}

// LogLevel returns the parsed log level, info when invalid
func (c *Config) LogLevel() mdwlog.Level {
	level, _ := mdwlog.ParseLevel(c.Log.Level)
	return level
}

// LogFormat returns the parsed log format, JSON when invalid
func (c *Config) LogFormat() mdwlog.Format {
	format, _ := mdwlog.ParseFormat(c.Log.Format)
	return format
}

// Locale returns the configured language, English when invalid
func (c *Config) Locale() language.Tag {
	tag, err := language.Parse(c.Format.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// FormatSpec returns the output layout and locale
func (c *Config) FormatSpec() timex.FormatSpec {
	return timex.FormatSpec{Layout: c.Format.Layout, Locale: c.Locale()}
}

// ParseRules returns the input layouts and locale
func (c *Config) ParseRules() timex.ParseRules {
	return timex.ParseRules{Layouts: c.Format.ParseLayouts, Locale: c.Locale()}
}

// RoundingPolicy returns the parsed rounding policy, math when invalid
func (c *Config) RoundingPolicy() rawtime.RoundingPolicy {
	policy, err := rawtime.ParseRoundingPolicy(c.Rounding.Policy)
	if err != nil {
		return rawtime.RoundMath
	}
	return policy
}
