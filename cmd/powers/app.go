package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/smkun/MarvelPowers/internal/catalog"
	"github.com/smkun/MarvelPowers/internal/config"
	"github.com/smkun/MarvelPowers/internal/entities"
	"github.com/smkun/MarvelPowers/internal/errors"
	"github.com/smkun/MarvelPowers/internal/orchestrators/builder"
	redisclient "github.com/smkun/MarvelPowers/internal/redis"
	"github.com/smkun/MarvelPowers/internal/repositories/session"
	"github.com/smkun/MarvelPowers/internal/selection"
	"github.com/smkun/MarvelPowers/internal/sheet"
)

const defaultConfigHint = "./" + config.DefaultPath

// app is one builder session wired from configuration
type app struct {
	cfg     *config.Config
	preset  entities.Preset
	bus     events.EventBus
	service builder.Service
	closers []func() error
}

// loadConfig reads the config file and applies flag overrides
func loadConfig() (*config.Config, error) {
	path, optional := configPath, false
	if path == "" {
		path, optional = config.DefaultPath, true
	}

	cfg, err := config.Load(path, optional)
	if err != nil {
		return nil, err
	}

	flags := rootCmd.PersistentFlags()
	if flags.Changed("variant") {
		cfg.Variant = variant
	}
	if flags.Changed("powers") {
		cfg.Catalog.Powers = powersPath
	}
	if flags.Changed("traits") {
		cfg.Catalog.Traits = traitsPath
	}
	if flags.Changed("session-backend") {
		cfg.Sessions.Backend = sessionBackend
	}
	if flags.Changed("redis-addr") {
		cfg.Sessions.Redis.Addr = redisAddr
		cfg.Sessions.Redis.URL = ""
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid flags")
	}
	return cfg, nil
}

// setupLogging installs the default slog handler. The terminal UI owns the
// screen, so it logs to the configured file or nowhere.
func setupLogging(cfg *config.Config, forTUI bool) (func() error, error) {
	var w io.Writer = os.Stderr
	closer := func() error { return nil }

	if forTUI {
		w = io.Discard
		if cfg.LogFile != "" {
			f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return nil, errors.WrapWithCodef(err, errors.CodeIO, "failed to open log file '%s'", cfg.LogFile)
			}
			w, closer = f, f.Close
		}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	return closer, nil
}

// newApp loads the catalogs and wires the builder. Catalog failures are
// KindLoad and end the command.
func newApp(cfg *config.Config) (*app, error) {
	preset := cfg.Preset()

	powers, err := catalog.Load(cfg.Catalog.Powers, catalog.PowerSchema)
	if err != nil {
		return nil, err
	}

	var traits *catalog.Catalog
	var traitSource sheet.Source
	if preset.IncludeTraits {
		traits, err = catalog.Load(cfg.Catalog.Traits, catalog.TraitSchema)
		if err != nil {
			return nil, err
		}
		traitSource = traits
	}

	a := &app{
		cfg:    cfg,
		preset: preset,
		bus:    events.NewBus(),
	}

	sessions, err := a.newSessionRepository()
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	exporter, err := sheet.NewExporter(&sheet.Config{
		Powers: powers,
		Traits: traitSource,
		Preset: preset,
	})
	if err != nil {
		_ = a.Close()
		return nil, errors.Wrap(err, "failed to create exporter")
	}

	model, err := selection.New(&selection.Config{
		Preset:   preset,
		EventBus: a.bus,
	})
	if err != nil {
		_ = a.Close()
		return nil, errors.Wrap(err, "failed to create selection")
	}

	a.service, err = builder.NewOrchestrator(&builder.Config{
		Preset:      preset,
		Powers:      powers,
		Traits:      traits,
		Selection:   model,
		SessionRepo: sessions,
		Exporter:    exporter,
		ExportDir:   cfg.Export.Dir,
	})
	if err != nil {
		_ = a.Close()
		return nil, errors.Wrap(err, "failed to create builder")
	}

	slog.Debug("Builder ready",
		"variant", preset.Name,
		"powers", powers.Len(),
		"sessions", cfg.Sessions.Backend,
	)
	return a, nil
}

func (a *app) newSessionRepository() (session.Repository, error) {
	if a.cfg.Sessions.Backend != config.BackendRedis {
		return session.NewFile(&session.FileConfig{Dir: a.cfg.Sessions.Dir})
	}

	rc := a.cfg.Sessions.Redis
	var client redisclient.Client
	var err error
	if rc.URL != "" {
		client, err = redisclient.NewClientFromURL(rc.URL)
	} else {
		client, err = redisclient.NewClient(rc.Addr, &redisclient.Options{
			DB:       rc.DB,
			Password: rc.Password,
		})
	}
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, client.Close)

	return session.NewRedis(&session.RedisConfig{
		Client:    client,
		KeyPrefix: rc.Prefix,
	})
}

// Close releases the session backend
func (a *app) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// withApp runs fn against a freshly wired builder
func withApp(ctx context.Context, forTUI bool, fn func(ctx context.Context, a *app) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg, forTUI)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	return fn(ctx, a)
}
