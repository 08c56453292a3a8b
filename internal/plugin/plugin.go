// Package plugin assembles the extension and binds it to a host.
//
// AuthMe is the composition root: it loads settings, builds the
// collaborators, and registers the shutdown flush with the host. The
// host process owns the lifecycle and calls Enable and Disable; the
// player join/login/quit handlers are the runtime surface the host's
// event dispatch invokes.
package plugin

import (
	"context"
	"errors"
	"fmt"

	"github.com/venus98/AuthMeReloaded/internal/core/domain"
	"github.com/venus98/AuthMeReloaded/internal/core/service"
	"github.com/venus98/AuthMeReloaded/internal/data/cache"
	"github.com/venus98/AuthMeReloaded/internal/data/limbo"
	"github.com/venus98/AuthMeReloaded/internal/datasource"
	"github.com/venus98/AuthMeReloaded/internal/host"
	"github.com/venus98/AuthMeReloaded/internal/initialization"
	"github.com/venus98/AuthMeReloaded/internal/service/bungee"
	"github.com/venus98/AuthMeReloaded/internal/settings"
	"github.com/venus98/AuthMeReloaded/internal/telemetry/logger"
	"github.com/venus98/AuthMeReloaded/internal/telemetry/metric"
	"github.com/venus98/AuthMeReloaded/internal/util/playerutils"
	"github.com/venus98/AuthMeReloaded/pkg/hostapi"
)

// AuthMe is the assembled extension.
type AuthMe struct {
	cfg        *settings.Settings
	configFile string
	log        logger.Logger
	metrics    *metric.Metrics

	cache      *cache.PlayerCache
	limbo      *limbo.Service
	validation *service.ValidationService
	throttler  *service.LoginThrottler
	store      datasource.DataSource
	sender     bungee.Sender

	host    *host.Service
	saver   *initialization.OnShutdownPlayerSaver
	watcher *settings.Watcher

	flushed bool
}

// Option configures the extension before assembly completes.
type Option func(*AuthMe)

// WithConfigFile loads settings from path and watches it for changes.
func WithConfigFile(path string) Option {
	return func(a *AuthMe) {
		a.configFile = path
	}
}

// WithSettings injects pre-built settings, skipping the loader.
func WithSettings(cfg *settings.Settings) Option {
	return func(a *AuthMe) {
		a.cfg = cfg
	}
}

// WithDataSource overrides the backend selected by settings.
func WithDataSource(store datasource.DataSource) Option {
	return func(a *AuthMe) {
		a.store = store
	}
}

// WithSender overrides the companion-proxy notification sender.
func WithSender(sender bungee.Sender) Option {
	return func(a *AuthMe) {
		a.sender = sender
	}
}

// New assembles the extension against the given host server.
func New(server hostapi.Server, opts ...Option) (*AuthMe, error) {
	a := &AuthMe{}
	for _, opt := range opts {
		opt(a)
	}

	if a.cfg == nil {
		cfg := settings.Default()
		loaderOpts := []settings.Option{}
		if a.configFile != "" {
			loaderOpts = append(loaderOpts, settings.WithConfigFile(a.configFile))
		}
		if err := settings.NewLoader(loaderOpts...).Load(cfg); err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}
		a.cfg = cfg
	}

	a.log = logger.New(logger.Config{
		Level:  a.cfg.Log.Level,
		Format: a.cfg.Log.Format,
	})
	logger.SetDefault(a.log)

	a.cache = cache.NewPlayerCache()
	a.limbo = limbo.NewService(a.log)
	a.validation = service.NewValidationService(a.cfg)
	a.throttler = service.NewLoginThrottler(a.cfg)

	if a.store == nil {
		store, err := openDataSource(a.cfg, a.log)
		if err != nil {
			return nil, err
		}
		a.store = store
	}

	if a.sender == nil {
		a.sender = defaultSender(a.cfg, a.log)
	}

	a.metrics = metric.New(a.cache.Size, a.limbo.Size)
	a.host = host.NewService(server,
		host.WithLogger(a.log),
		host.WithListFailureHook(a.metrics.HostListFailures.Inc))
	a.saver = initialization.NewOnShutdownPlayerSaver(a.host, a.validation, a.limbo, a.cache,
		initialization.WithLogger(a.log),
		initialization.WithOutcomeObserver(a.metrics.ObserveFlush))

	return a, nil
}

func openDataSource(cfg *settings.Settings, log logger.Logger) (datasource.DataSource, error) {
	switch cfg.Storage.Backend {
	case "", "memory":
		return datasource.NewMemoryStore(), nil
	case "badger":
		store, err := datasource.NewBadgerStore(cfg.Storage.DataDir, log)
		if err != nil {
			return nil, fmt.Errorf("open badger datasource: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func defaultSender(cfg *settings.Settings, log logger.Logger) bungee.Sender {
	if !cfg.Bungee.Enabled {
		return bungee.NoopSender{}
	}
	return bungee.SenderFunc{
		OnStart: func(key domain.Key) {
			log.Debug("bungee session start", "player", key.String())
		},
		OnEnd: func(key domain.Key) {
			log.Debug("bungee session end", "player", key.String())
		},
	}
}

// Enable binds the extension to the host: it registers the shutdown
// flush hook and starts watching the config file if one was given.
func (a *AuthMe) Enable() error {
	a.host.OnShutdown(func() {
		a.flush()
	})

	if a.configFile != "" {
		watcher, err := settings.NewWatcher(a.log)
		if err != nil {
			return fmt.Errorf("start settings watcher: %w", err)
		}
		if err := watcher.Watch(a.configFile); err != nil {
			watcher.Stop()
			return fmt.Errorf("watch %s: %w", a.configFile, err)
		}
		watcher.OnChange(func(path string) {
			a.reload(path)
		})
		watcher.StartAsync()
		a.watcher = watcher
	}

	a.log.Info("extension enabled",
		"typed_list", a.host.ListIsTyped(),
		"backend", a.cfg.Storage.Backend)
	return nil
}

// Disable runs the flush if the host never fired its shutdown hook,
// then releases resources. Safe to call after a host-driven flush.
func (a *AuthMe) Disable() error {
	a.flush()

	if a.watcher != nil {
		if err := a.watcher.Stop(); err != nil {
			a.log.Warn("stop settings watcher", "error", err)
		}
		a.watcher = nil
	}

	if err := a.store.Close(); err != nil {
		return fmt.Errorf("close datasource: %w", err)
	}

	a.log.Info("extension disabled")
	return nil
}

// flush runs the shutdown pass at most once and reconciles the
// persistent store with the in-memory outcome of each player.
func (a *AuthMe) flush() {
	if a.flushed {
		return
	}
	a.flushed = true

	ctx := context.Background()
	for _, outcome := range a.saver.SaveAllPlayers() {
		if outcome.Status != domain.SaveReconciled {
			continue
		}
		if err := a.store.SetUnlogged(ctx, outcome.Key); err != nil {
			a.log.Error("mark record unlogged", "player", outcome.Key.String(), "error", err)
		}
		a.sender.SendSessionEnd(outcome.Key)
	}
}

// reload re-reads settings from the changed file and applies the
// sections that support live reload.
func (a *AuthMe) reload(path string) {
	cfg := settings.Default()
	if err := settings.NewLoader(settings.WithConfigFile(path)).Load(cfg); err != nil {
		a.log.Error("reload settings", "path", path, "error", err)
		return
	}

	a.validation.Reload(cfg)
	logger.SetLevel(cfg.Log.Level)
	a.cfg.Restriction = cfg.Restriction
	a.cfg.Log.Level = cfg.Log.Level

	a.log.Info("settings reloaded", "path", path,
		"unrestricted", len(cfg.Restriction.UnrestrictedNames))
}

// HandleJoin is the player-join entry point: excluded players pass
// through untouched, everyone else is parked in limbo until they
// authenticate.
func (a *AuthMe) HandleJoin(p hostapi.Player) error {
	key := domain.NormalizeKey(p.Name())

	if playerutils.IsAutomationActor(p) || a.validation.IsUnrestricted(key) {
		a.log.Debug("join bypasses authentication", "player", key.String())
		return nil
	}

	if err := a.validation.ValidateName(p.Name()); err != nil {
		return fmt.Errorf("reject join for %q: %w", p.Name(), err)
	}

	a.limbo.CreateLimboPlayer(p)
	return nil
}

// HandleLogin authenticates a joined player: throttle the attempt,
// reconcile the persistent record, restore limbo state, and mark the
// session active.
func (a *AuthMe) HandleLogin(ctx context.Context, p hostapi.Player) error {
	key := domain.NormalizeKey(p.Name())

	if err := a.throttler.CheckAttempt(key); err != nil {
		return err
	}

	auth, err := a.store.GetAuth(ctx, key)
	switch {
	case err == nil:
		auth.Touch()
		auth.LoggedIn = true
	case errors.Is(err, domain.ErrAuthNotFound):
		auth, err = domain.NewPlayerAuth(p.Name(), p.Address())
		if err != nil {
			return fmt.Errorf("create auth record: %w", err)
		}
	default:
		return fmt.Errorf("load auth record: %w", err)
	}

	if err := a.store.SaveAuth(ctx, auth); err != nil {
		return fmt.Errorf("persist auth record: %w", err)
	}

	if a.limbo.HasLimboPlayer(key) {
		a.limbo.RestoreData(p)
	}
	if err := a.cache.Update(auth); err != nil {
		return fmt.Errorf("cache auth record: %w", err)
	}

	a.throttler.Reset(key)
	a.sender.SendSessionStart(key)
	a.log.Info("player logged in", "player", key.String(), "session", auth.SessionID)
	return nil
}

// HandleQuit is the player-quit entry point: persist last-seen for
// authenticated players, restore any limbo state, drop the session.
func (a *AuthMe) HandleQuit(ctx context.Context, p hostapi.Player) error {
	key := domain.NormalizeKey(p.Name())

	if playerutils.IsAutomationActor(p) || a.validation.IsUnrestricted(key) {
		return nil
	}

	if a.cache.IsAuthenticated(key) {
		if err := a.store.UpdateLastSeen(ctx, key); err != nil {
			a.log.Error("update last seen", "player", key.String(), "error", err)
		}
		a.sender.SendSessionEnd(key)
	}

	if a.limbo.HasLimboPlayer(key) {
		a.limbo.RestoreData(p)
	}
	a.cache.RemovePlayer(key)
	return nil
}

// Metrics exposes the Prometheus registry for scraping.
func (a *AuthMe) Metrics() *metric.Metrics {
	return a.metrics
}

// Cache exposes the session cache for host commands.
func (a *AuthMe) Cache() *cache.PlayerCache {
	return a.cache
}

// Host exposes the host capability accessor.
func (a *AuthMe) Host() *host.Service {
	return a.host
}
