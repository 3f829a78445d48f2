package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/smkun/MarvelPowers/internal/config"
	"github.com/smkun/MarvelPowers/internal/entities"
	"github.com/smkun/MarvelPowers/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) write(content string) string {
	path := filepath.Join(s.dir, "powers.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefault() {
	cfg := config.Default()
	s.Require().NoError(cfg.Validate())
	s.Equal(entities.Combined, cfg.Preset())
	s.Equal(config.BackendFile, cfg.Sessions.Backend)
	s.Equal(slog.LevelInfo, cfg.SlogLevel())
}

func (s *ConfigTestSuite) TestLoadMissingFile() {
	path := filepath.Join(s.dir, "nope.yaml")

	s.Run("optional", func() {
		cfg, err := config.Load(path, true)
		s.Require().NoError(err)
		s.Equal(config.Default(), cfg)
	})

	s.Run("required", func() {
		_, err := config.Load(path, false)
		s.True(errors.IsNotFound(err))
	})
}

func (s *ConfigTestSuite) TestLoadResolvesRelativePaths() {
	abs := filepath.Join(s.T().TempDir(), "traits.xml")
	path := s.write(`
variant: powers
log_level: debug
catalog:
  powers: data/powers.xml
  traits: ` + abs + `
sessions:
  dir: saves
export:
  dir: out
`)

	cfg, err := config.Load(path, false)
	s.Require().NoError(err)
	s.Equal(entities.PowersOnly, cfg.Preset())
	s.Equal(slog.LevelDebug, cfg.SlogLevel())
	s.Equal(filepath.Join(s.dir, "data", "powers.xml"), cfg.Catalog.Powers)
	s.Equal(abs, cfg.Catalog.Traits)
	s.Equal(filepath.Join(s.dir, "saves"), cfg.Sessions.Dir)
	s.Equal(filepath.Join(s.dir, "out"), cfg.Export.Dir)
	s.Equal(config.BackendFile, cfg.Sessions.Backend, "unset values keep defaults")
}

func (s *ConfigTestSuite) TestLoadRedisBackend() {
	path := s.write(`
sessions:
  backend: redis
  redis:
    addr: cache:6379
    db: 2
    prefix: "heroes:"
`)

	cfg, err := config.Load(path, false)
	s.Require().NoError(err)
	s.Equal(config.BackendRedis, cfg.Sessions.Backend)
	s.Equal("cache:6379", cfg.Sessions.Redis.Addr)
	s.Equal(2, cfg.Sessions.Redis.DB)
	s.Equal("heroes:", cfg.Sessions.Redis.Prefix)
}

func (s *ConfigTestSuite) TestLoadEmptyFile() {
	cfg, err := config.Load(s.write(""), false)
	s.Require().NoError(err)
	s.Equal(entities.PresetNameCombined, cfg.Variant)
}

func (s *ConfigTestSuite) TestLoadErrors() {
	testCases := []struct {
		name    string
		content string
		check   func(error) bool
	}{
		{name: "unknown key", content: "colour: red\n", check: errors.IsMalformed},
		{name: "bad yaml", content: "variant: [\n", check: errors.IsMalformed},
		{name: "unknown variant", content: "variant: spells\n", check: errors.IsInvalidArgument},
		{name: "unknown backend", content: "sessions:\n  backend: s3\n", check: errors.IsInvalidArgument},
		{name: "bad log level", content: "log_level: loud\n", check: errors.IsInvalidArgument},
		{name: "combined needs traits", content: "catalog:\n  traits: \"\"\n", check: errors.IsInvalidArgument},
		{name: "redis needs address", content: "sessions:\n  backend: redis\n  redis:\n    addr: \"\"\n", check: errors.IsInvalidArgument},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg, err := config.Load(s.write(tc.content), false)
			s.Require().Error(err)
			s.Nil(cfg)
			s.True(tc.check(err), "got %v", err)
		})
	}
}

func (s *ConfigTestSuite) TestPowersVariantDoesNotNeedTraits() {
	cfg, err := config.Load(s.write("variant: powers\ncatalog:\n  traits: \"\"\n"), false)
	s.Require().NoError(err)
	s.Empty(cfg.Catalog.Traits)
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
