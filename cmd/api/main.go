package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mgmacri/pool-maintenance-app/config"
	"github.com/mgmacri/pool-maintenance-app/internal/bootstrap"
	"github.com/mgmacri/pool-maintenance-app/internal/logger"
	"github.com/mgmacri/pool-maintenance-app/internal/version"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; fall back to a bare production one.
		zap.Must(zap.NewProduction()).Fatal("load config", zap.Error(err))
	}

	build := version.Info()

	base, err := logger.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		zap.Must(zap.NewProduction()).Fatal("init logger", zap.Error(err))
	}
	log := logger.WithService(base, cfg.App.ServiceName, build.Version)
	defer func() { _ = log.Sync() }()

	if !cfg.DotEnvLoaded {
		log.Debug("no .env file found, using environment variables")
	}
	for _, w := range cfg.Warnings {
		log.Warn("config fallback", zap.String("detail", w))
	}

	if err := run(cfg, build, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, build version.BuildInfo, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bootstrap.SetGinMode(cfg.App.Environment)

	policy, err := bootstrap.LoadPolicy(cfg.Commitlint.ConfigPath, cfg.Commitlint.StrictScope)
	if err != nil {
		return err
	}

	deps := bootstrap.RouterDeps{
		ServiceName:        cfg.App.ServiceName,
		Build:              build,
		Logger:             log,
		Policy:             policy,
		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
		RateLimitRPS:       cfg.HTTP.RateLimitRPS,
		RateLimitBurst:     cfg.HTTP.RateLimitBurst,
	}

	if cfg.Database.DSN != "" {
		pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
		if err != nil {
			return err
		}
		defer pool.Close()
		deps.DB = pool
		log.Info("postgres connected")
	}

	if cfg.Redis.Addr != "" {
		client, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		deps.Redis = client
		log.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
	}

	router, err := bootstrap.BuildRouter(deps)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening",
			zap.String("addr", srv.Addr),
			zap.String("commit", build.Commit),
			zap.Strings("extends", policy.Extends),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
