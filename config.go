package sqlbind

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

/*
Config describes a Dialect and logging in YAML:

	dialect: postgresql
	escape_quotes: true
	cache_size: 1024
	log:
	  level: debug
	  format: json

escape_quotes defaults to the dialect preset. A negative cache_size
disables the parsed template cache.
*/
type Config struct {
	Dialect      string    `yaml:"dialect"`
	EscapeQuotes *bool     `yaml:"escape_quotes,omitempty"`
	CacheSize    int       `yaml:"cache_size"`
	Log          LogConfig `yaml:"log"`
}

// LogConfig configures a slog logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns a configuration matching the MySQL dialect.
func DefaultConfig() Config {
	return Config{
		Dialect:   "mysql",
		CacheSize: DefaultCacheSize,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// ParseConfig decodes a YAML configuration on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	if _, err := cfg.NewDialect(); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Log.NewLogger(io.Discard); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}
	return ParseConfig(data)
}

// NewDialect creates a Dialect with its own template cache.
func (c Config) NewDialect() (*Dialect, error) {
	var base *Dialect
	switch strings.ToLower(c.Dialect) {
	case "", "mysql":
		base = MySQL
	case "postgres", "postgresql":
		base = PostgreSQL
	default:
		return nil, errors.Errorf("unknown dialect %q", c.Dialect)
	}
	escape := base.escapeQuotes
	if c.EscapeQuotes != nil {
		escape = *c.EscapeQuotes
	}
	backslash := escape && base.name == "mysql"
	cacheSize := c.CacheSize
	if cacheSize == 0 {
		cacheSize = DefaultCacheSize
	}
	return newDialect(base.name, base.identQuote, escape, backslash, cacheSize), nil
}

// NewLogger creates a logger writing to w.
func (c LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, errors.Errorf("unknown log format %q", c.Format)
}

func (c LogConfig) level() (slog.Level, error) {
	var level slog.Level
	if c.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return level, errors.Wrapf(err, "log level %q", c.Level)
	}
	return level, nil
}
