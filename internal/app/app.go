package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/spiewnik/songbookd/internal/bus"
	"github.com/spiewnik/songbookd/internal/config"
	"github.com/spiewnik/songbookd/internal/httpserver"
	"github.com/spiewnik/songbookd/internal/httpserver/deps"
	"github.com/spiewnik/songbookd/internal/importer"
	"github.com/spiewnik/songbookd/internal/index"
	"github.com/spiewnik/songbookd/internal/kv"
	"github.com/spiewnik/songbookd/internal/logger"
	"github.com/spiewnik/songbookd/internal/redis"
	"github.com/spiewnik/songbookd/internal/scheduler"
	"github.com/spiewnik/songbookd/internal/store"
	"github.com/spiewnik/songbookd/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	memIndex    *index.MemoryIndex
	syncer      *scheduler.CatalogSyncer
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Pick the storage backend. Redis is the durable default; memory is
	// for development and tests only.
	var (
		kvStore     kv.Store
		redisClient *goredis.Client
	)
	switch cfg.StoreBackend {
	case "redis":
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(redis.ConnectOptions{
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
		redisClient = client
		kvStore = kv.NewRedis(client)
	case "memory":
		loggerClient.Warn("using in-memory store, data will not survive a restart")
		kvStore = kv.NewMemory()
	}

	presets := store.NewPresets(kvStore)
	favorites := store.NewFavorites(kvStore)
	catalog := store.NewCatalog(kvStore)

	memIndex := index.NewMemoryIndex()
	eventBus := bus.New()

	imp := importer.New(presets, eventBus, loggerClient, importer.Options{
		Scheme:   cfg.ImportScheme,
		TmpDir:   cfg.ImportTmpDir,
		MaxBytes: cfg.ImportMaxBytes,
		Client:   &http.Client{Timeout: cfg.ImportTimeout},
	})

	// Manual catalog sync trigger, wired to POST /reload.
	reloadTrigger := make(chan struct{}, 1)

	syncer := scheduler.NewCatalogSyncer(
		catalog,
		memIndex,
		loggerClient,
		cfg.SeedFile,
		cfg.SyncInterval,
		reloadTrigger,
	)

	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		TimeNow:         time.Now,
		Presets:         presets,
		Favorites:       favorites,
		MemoryIndex:     memIndex,
		Importer:        imp,
		Bus:             eventBus,
		RedisClient:     redisClient,
		ReloadTrigger:   reloadTrigger,
		ImportBurst:     cfg.ImportBurst,
		ImportPerMinute: cfg.ImportPerMinute,
		TrustProxy:      cfg.TrustProxy,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		memIndex:    memIndex,
		syncer:      syncer,
	}
}

func (a *App) Run() error {
	a.logger.Infof("Starting songbookd v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("songbookd %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.syncer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start catalog syncer: %w", err)
	}
	a.logger.Info("catalog syncer started",
		logger.Duration("interval", a.cfg.SyncInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.syncer.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("Redis connection closed")
		}
	}

	a.logger.Info("Shutdown complete")
	return nil
}
