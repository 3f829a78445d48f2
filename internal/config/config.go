// Package config loads the builder's YAML configuration
package config

import (
	"bytes"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/smkun/MarvelPowers/internal/entities"
	"github.com/smkun/MarvelPowers/internal/errors"
)

// DefaultPath is read when no --config flag is given
const DefaultPath = "powers.yaml"

// Session backends
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config is the whole configuration file
type Config struct {
	Variant  string         `yaml:"variant"`
	LogLevel string         `yaml:"log_level"`
	LogFile  string         `yaml:"log_file"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Sessions SessionsConfig `yaml:"sessions"`
	Export   ExportConfig   `yaml:"export"`
}

// CatalogConfig locates the catalog documents
type CatalogConfig struct {
	Powers string `yaml:"powers"`
	Traits string `yaml:"traits"`
}

// SessionsConfig selects where sessions are saved
type SessionsConfig struct {
	Backend string      `yaml:"backend"`
	Dir     string      `yaml:"dir"`
	Redis   RedisConfig `yaml:"redis"`
}

// RedisConfig configures the redis session backend. URL wins over Addr.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	URL      string `yaml:"url"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// ExportConfig configures PDF export
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Variant:  entities.PresetNameCombined,
		LogLevel: "info",
		Catalog: CatalogConfig{
			Powers: "powers.xml",
			Traits: "traits.xml",
		},
		Sessions: SessionsConfig{
			Backend: BackendFile,
			Dir:     ".",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "powers:",
			},
		},
		Export: ExportConfig{
			Dir: ".",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error when
// optional is true; the defaults are returned. Relative paths in the file
// are resolved against the file's directory.
func Load(path string, optional bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && optional {
			slog.Debug("No config file, using defaults", "path", path)
			return cfg, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("config file '%s' was not found", path)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeIO, "failed to read config '%s'", path)
	}

	if err := decode(bytes.NewReader(data), cfg); err != nil {
		return nil, errors.Wrapf(err, "invalid config '%s'", path)
	}

	cfg.resolve(filepath.Dir(path))

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config '%s'", path)
	}

	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil {
		if err == io.EOF {
			// empty file
			return nil
		}
		return errors.WrapWithCode(err, errors.CodeMalformed, "failed to parse yaml")
	}
	return nil
}

func (c *Config) resolve(base string) {
	c.Catalog.Powers = resolvePath(base, c.Catalog.Powers)
	c.Catalog.Traits = resolvePath(base, c.Catalog.Traits)
	c.Sessions.Dir = resolvePath(base, c.Sessions.Dir)
	c.Export.Dir = resolvePath(base, c.Export.Dir)
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// Validate checks the values that have a fixed set of choices
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("variant", c.Variant, entities.PresetNames(), vb)
	errors.ValidateEnum("log_level", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateRequired("catalog.powers", c.Catalog.Powers, vb)
	if c.Variant == entities.PresetNameCombined {
		errors.ValidateRequired("catalog.traits", c.Catalog.Traits, vb)
	}
	errors.ValidateEnum("sessions.backend", c.Sessions.Backend, []string{BackendFile, BackendRedis}, vb)
	switch c.Sessions.Backend {
	case BackendFile:
		errors.ValidateRequired("sessions.dir", c.Sessions.Dir, vb)
	case BackendRedis:
		if c.Sessions.Redis.Addr == "" && c.Sessions.Redis.URL == "" {
			vb.Field("sessions.redis", "addr or url is required")
		}
		if c.Sessions.Redis.DB < 0 {
			vb.Field("sessions.redis.db", "must not be negative")
		}
	}

	return vb.Build()
}

// Preset returns the preset named by Variant
func (c *Config) Preset() entities.Preset {
	p, _ := entities.PresetByName(c.Variant)
	return p
}

// SlogLevel maps LogLevel to a slog level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
