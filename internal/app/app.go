package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yyoonchul/murmur-blog/internal/http"
	"github.com/yyoonchul/murmur-blog/internal/observability"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
	"github.com/yyoonchul/murmur-blog/internal/realtime"
)

const serviceName = "murmur"

type App struct {
	Log      *logger.Logger
	Cfg      Config
	DB       *gorm.DB
	Metrics  *observability.Metrics
	Clients  Clients
	Repos    Repos
	Services Services
	SSEHub   *realtime.SSEHub
	Server   *http.Server

	otelShutdown func(context.Context) error
}

// New wires the application. Nothing runs until Run.
func New(ctx context.Context, log *logger.Logger, cfg Config) (*App, error) {
	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: serviceName,
		Environment: cfg.Environment,
	})
	metrics := observability.Init(log)

	gdb, err := openStorage(log, cfg)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	clients, err := wireClients(log, cfg, metrics)
	if err != nil {
		return nil, err
	}
	reposet := wireRepos(log, cfg, gdb)
	serviceset := wireServices(log, cfg, metrics, clients, reposet)

	hub := realtime.NewSSEHub(log)
	handlerset := wireHandlers(log, serviceset, hub, metrics)
	server := wireServer(log, cfg, handlerset, metrics, otelShutdown != nil)
	server.OnShutdown(hub.CloseAll)

	return &App{
		Log:          log,
		Cfg:          cfg,
		DB:           gdb,
		Metrics:      metrics,
		Clients:      clients,
		Repos:        reposet,
		Services:     serviceset,
		SSEHub:       hub,
		Server:       server,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP and runs background generation until ctx is done or a
// component fails, then drains the dispatcher.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)

	if err := a.Clients.Bus.StartForwarder(gctx, a.SSEHub.Broadcast); err != nil {
		return fmt.Errorf("start realtime forwarder: %w", err)
	}
	if a.Clients.Redis != nil {
		a.Metrics.StartRedisCollector(gctx, a.Log, a.Clients.Redis)
	}

	a.Services.Dispatcher.Start()
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := a.Services.Dispatcher.Shutdown(shutdownCtx); err != nil {
			a.Log.Warn("dispatcher shutdown incomplete", "error", err)
		}
		return nil
	})

	g.Go(func() error {
		a.Log.Info("HTTP server listening", "addr", a.Cfg.Addr())
		return a.Server.Run(gctx, a.Cfg.Addr())
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return err
}

func (a *App) Close() {
	if a == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if a.Clients.Bus != nil {
		_ = a.Clients.Bus.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	a.Log.Sync()
}
