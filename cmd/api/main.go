package main

import (
	"context"
	"log"
	"net/url"
	"os/signal"
	"syscall"

	"freight-quoter/internal/core/cache"
	"freight-quoter/internal/core/config"
	"freight-quoter/internal/core/database"
	"freight-quoter/internal/core/httpclient"
	"freight-quoter/internal/core/logger"
	"freight-quoter/internal/core/server"
	hubadapter "freight-quoter/internal/features/hubs/adapters"
	hubhandler "freight-quoter/internal/features/hubs/handler"
	quoteadapter "freight-quoter/internal/features/quotes/adapters"
	"freight-quoter/internal/features/quotes/engine"
	quotehandler "freight-quoter/internal/features/quotes/handler"
	quoteservice "freight-quoter/internal/features/quotes/service"
	tariffadapter "freight-quoter/internal/features/tariffs/adapters"
	tariffhandler "freight-quoter/internal/features/tariffs/handler"
	tariffports "freight-quoter/internal/features/tariffs/ports"
	tariffservice "freight-quoter/internal/features/tariffs/service"

	"go.uber.org/zap"
)

// @title Freight Quoter API
// @version 1.0
// @description Freight tariff resolution and multi-leg route quoting over a hot-reloadable tariff catalog.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("catalog_source", redactSource(cfg.Catalog.Source)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Quote history
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL, logger.ServiceName)
	if err != nil {
		l.Fatal("Failed to init Redis", zap.Error(err))
	}
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		l.Warn("Redis unreachable; quote history will not be recorded", zap.Error(err))
	}

	// Tariff catalog
	clientOpts := []httpclient.Option{}
	if cfg.Catalog.ProxyURL != "" {
		clientOpts = append(clientOpts, httpclient.WithProxy(cfg.Catalog.ProxyURL))
	}
	if cfg.Catalog.UserAgent != "" {
		clientOpts = append(clientOpts, httpclient.WithUserAgent(cfg.Catalog.UserAgent))
	}
	client, err := httpclient.NewClient(cfg.Catalog.FetchTimeout(), clientOpts...)
	if err != nil {
		l.Fatal("Failed to build catalog HTTP client", zap.Error(err))
	}

	var loader tariffports.CatalogLoader
	if tariffadapter.IsPostgresSource(cfg.Catalog.Source) {
		pool, err := database.NewPool(ctx, cfg.Catalog.Source)
		if err != nil {
			l.Fatal("Failed to init catalog database", zap.Error(err))
		}
		defer pool.Close()
		loader = tariffadapter.NewPostgresLoader(pool, cfg.Catalog.Table)
	} else {
		loader = tariffadapter.NewLoader(cfg.Catalog.Source, client)
	}

	catalogStore := tariffservice.NewCatalogStore(loader)
	if _, err := catalogStore.Reload(ctx); err != nil {
		l.Fatal("Initial catalog load failed", zap.Error(err))
	}
	go tariffservice.NewRefresher(catalogStore, cfg.Catalog.RefreshInterval()).Run(ctx)

	// Hub directory
	directory, err := hubadapter.LoadDirectory(cfg.Hubs.DirectoryPath)
	if err != nil {
		l.Fatal("Failed to load hub directory", zap.Error(err), zap.String("path", cfg.Hubs.DirectoryPath))
	}
	l.Info("Hub directory loaded", zap.Int("hubs", len(directory.Hubs())))

	// Quotes
	quoteRepo := quoteadapter.NewRedisQuoteRepository(redisCache, cfg.Redis.QuoteTTL())
	quoteSvc := quoteservice.NewQuoteService(catalogStore, directory, engine.New(), quoteRepo)

	srv := server.New(cfg)
	srv.RegisterRoutes(server.Handlers{
		Quotes:  quotehandler.NewQuoteHandler(quoteSvc),
		Hubs:    hubhandler.NewHubsHandler(directory),
		Catalog: tariffhandler.NewCatalogHandler(catalogStore),
	})

	go func() {
		<-ctx.Done()
		l.Info("Shutting down")
		if err := srv.Shutdown(); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}

// redactSource hides credentials of URL catalog sources before logging.
func redactSource(source string) string {
	u, err := url.Parse(source)
	if err != nil || u.Scheme == "" {
		return source
	}
	return u.Redacted()
}
