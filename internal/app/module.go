package app

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/matheus3301/estate/internal/bus"
	"github.com/matheus3301/estate/internal/collection"
	"github.com/matheus3301/estate/internal/config"
	"github.com/matheus3301/estate/internal/contact"
	"github.com/matheus3301/estate/internal/filestore"
	"github.com/matheus3301/estate/internal/listing"
	"github.com/matheus3301/estate/internal/logging"
	"github.com/matheus3301/estate/internal/profile"
	"github.com/matheus3301/estate/internal/remote"
	"github.com/matheus3301/estate/internal/review"
	"github.com/matheus3301/estate/internal/store"
	"github.com/matheus3301/estate/internal/wishlist"
)

// Params holds the resolved profile and per-binary options passed to the fx module.
type Params struct {
	Profile string
	// Console tees warnings to stderr. The TUI leaves it off.
	Console bool
	// APIBaseURL overrides the configured backend when non-empty.
	APIBaseURL string
}

// Module returns the fx module shared by estatetui and estatectl.
func Module(p Params) fx.Option {
	return fx.Module("estate",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideBus,
			provideBackend,
			provideStore,
			provideRemote,
			provideFormatter,
			provideAuthor,
			provideWishlist,
			provideDetail,
			provideComposer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig(p Params) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(profile.ConfigPath())
	if err != nil {
		return nil, err
	}
	if p.APIBaseURL != "" {
		cfg.APIBaseURL = p.APIBaseURL
	}
	return cfg, nil
}

func provideLogger(p Params, cfg *config.Config) (*zap.Logger, error) {
	if err := profile.EnsureDir(p.Profile); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}
	return logging.New(logging.Options{
		Path:    profile.LogPath(p.Profile),
		Profile: p.Profile,
		Level:   cfg.LogLevel,
		Console: p.Console,
	})
}

func provideBus() *bus.Bus {
	return bus.New()
}

// provideBackend opens the configured durable backend. If it cannot be
// opened the process continues on an in-memory backend: annotations are then
// lost on exit, but browsing keeps working.
func provideBackend(lc fx.Lifecycle, p Params, cfg *config.Config, logger *zap.Logger) collection.Backend {
	switch cfg.StoreBackend {
	case config.BackendJSON:
		dir := profile.CollectionsDir(p.Profile)
		fs, err := filestore.New(dir)
		if err != nil {
			logger.Error("json store unavailable, using memory", zap.String("dir", dir), zap.Error(err))
			return collection.NewMemory()
		}
		logger.Info("store initialized", zap.String("backend", cfg.StoreBackend), zap.String("dir", dir))
		return fs
	default:
		dbPath := profile.StoreDBPath(p.Profile)
		db, result, err := store.OpenMigrated(dbPath)
		if err != nil {
			logger.Error("sqlite store unavailable, using memory", zap.String("path", dbPath), zap.Error(err))
			return collection.NewMemory()
		}
		if result.Changed {
			logger.Info("migrations applied", zap.Uint("version", result.Version))
		} else {
			logger.Debug("migrations up to date", zap.Uint("version", result.Version))
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error { return db.Close() },
		})
		logger.Info("store initialized", zap.String("backend", config.BackendSQLite), zap.String("path", dbPath))
		return store.NewCollections(db)
	}
}

func provideStore(backend collection.Backend, logger *zap.Logger) *collection.Store {
	return collection.NewStore(backend, logger)
}

func provideRemote(cfg *config.Config, logger *zap.Logger) *remote.Client {
	return remote.New(remote.Options{
		BaseURL:         cfg.APIBaseURL,
		Timeout:         cfg.RequestTimeout.Duration,
		DefaultCurrency: cfg.Currency,
	}, logger)
}

func provideFormatter(cfg *config.Config) *listing.Formatter {
	return listing.NewFormatter(cfg.Locale, cfg.Currency)
}

func provideAuthor(cfg *config.Config) review.Author {
	return review.Author{Name: cfg.User.Name, Avatar: cfg.User.Avatar}
}

func provideWishlist(s *collection.Store, b *bus.Bus, logger *zap.Logger) *wishlist.Controller {
	return wishlist.New(s, b, logger)
}

func provideDetail(c *remote.Client, s *collection.Store, b *bus.Bus, cfg *config.Config, logger *zap.Logger) *listing.DetailController {
	return listing.NewDetailController(c, s, b, logger, cfg.AvatarPlaceholder)
}

func provideComposer(c *remote.Client, b *bus.Bus, logger *zap.Logger) *contact.Composer {
	return contact.NewComposer(c, b, logger)
}

func registerLifecycle(lc fx.Lifecycle, cfg *config.Config, detail *listing.DetailController, composer *contact.Composer, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Info("estate started",
				zap.String("api", cfg.APIBaseURL),
				zap.String("backend", cfg.StoreBackend))
			return nil
		},
		OnStop: func(context.Context) error {
			detail.Close()
			composer.Hide()
			logger.Info("estate stopped")
			_ = logger.Sync()
			return nil
		},
	})
}
