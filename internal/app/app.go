package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"

	"github.com/hinatano/liveboard/internal/config"
	"github.com/hinatano/liveboard/internal/domain"
	"github.com/hinatano/liveboard/internal/httpserver"
	"github.com/hinatano/liveboard/internal/httpserver/deps"
	"github.com/hinatano/liveboard/internal/index"
	"github.com/hinatano/liveboard/internal/logger"
	"github.com/hinatano/liveboard/internal/metrics"
	"github.com/hinatano/liveboard/internal/redis"
	"github.com/hinatano/liveboard/internal/scheduler"
	"github.com/hinatano/liveboard/internal/sources/directus"
	"github.com/hinatano/liveboard/internal/sources/schedulefile"
	redisstore "github.com/hinatano/liveboard/internal/store/redis"
	"github.com/hinatano/liveboard/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	snapshot    *index.Snapshot
	reloader    *scheduler.ScheduleReloader
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	store := redisstore.NewStore(redisClient)
	snapshot := index.NewSnapshot()

	// Serve the last persisted schedule until the first live fetch lands.
	syncer := scheduler.NewSnapshotSyncer(store, snapshot, loggerClient)
	if err := syncer.Sync(context.Background()); err != nil {
		loggerClient.Warn("failed to restore snapshot from redis on startup",
			logger.Error(err))
	}

	source := buildSource(cfg, loggerClient)

	reloadTrigger := make(chan struct{}, 1)
	reloader := scheduler.NewScheduleReloader(
		source,
		store,
		snapshot,
		loggerClient,
		cfg.ReloadInterval,
		cfg.SnapshotTTL,
		reloadTrigger,
	)

	metrics.MustRegister(prometheus.DefaultRegisterer)

	resolver := domain.NewResolver(domain.Params{
		Offset:       cfg.CivilOffset,
		MaxOngoing:   cfg.MaxOngoing,
		InferredLead: cfg.InferredLead,
	})

	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		TimeNow:       time.Now,
		RedisClient:   redisClient,
		Store:         store,
		Snapshot:      snapshot,
		Resolver:      resolver,
		AdminToken:    cfg.AdminToken,
		AllowedCIDRS:  cfg.AllowedCIDRS,
		TrustProxy:    cfg.TrustProxy,
		ReloadTrigger: reloadTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		snapshot:    snapshot,
		reloader:    reloader,
	}
}

// buildSource picks the schedule source: the CMS when configured, the
// local file otherwise. Config guarantees at least one is set.
func buildSource(cfg *config.Config, log logger.Logger) scheduler.Source {
	if cfg.DirectusURL != "" {
		log.Info("using directus schedule source",
			logger.String("url", cfg.DirectusURL),
			logger.String("collection", cfg.DirectusCollection))
		return directus.NewSource(
			cfg.DirectusURL,
			cfg.DirectusToken,
			cfg.DirectusCollection,
			cfg.SourceTimeout,
			cfg.CivilOffset,
		)
	}
	log.Info("using local schedule file source",
		logger.String("file", cfg.ScheduleFile))
	return schedulefile.NewSource(cfg.ScheduleFile, cfg.CivilOffset)
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting liveboard v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("liveboard %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start schedule reloader (initial load plus periodic refresh).
	a.reloader.Start(ctx)
	a.logger.Info("schedule reloader started",
		logger.Duration("interval", a.cfg.ReloadInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.reloader.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ liveboard stopped cleanly")
	return nil
}
