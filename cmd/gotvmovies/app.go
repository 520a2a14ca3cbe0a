package main

import (
	"github.com/amaumene/gotvmovies/internal/cache"
	"github.com/amaumene/gotvmovies/internal/config"
	"github.com/amaumene/gotvmovies/internal/database"
	"github.com/amaumene/gotvmovies/internal/handlers"
	"github.com/amaumene/gotvmovies/internal/services"
	"github.com/amaumene/gotvmovies/pkg/logger"
)

// Application globals, initialized once at startup.
var (
	appLogger        logger.Logger
	cfg              *config.Config
	db               database.Database
	feedCache        *cache.LRUCache
	feed             *services.Feed
	serviceContainer *services.Container
	handler          *handlers.Handler
)

// InitializeLogger sets up the application logger.
func InitializeLogger() {
	appLogger = logger.New()
}

// InitializeConfig loads and validates the configuration.
func InitializeConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		appLogger.Fatalf("failed to load configuration: %v", err)
	}
	appLogger.Infof("[App] configuration loaded, feed %s", cfg.FeedURL)
}

// InitializeDatabase opens the snapshot store.
func InitializeDatabase() {
	var err error
	db, err = database.NewBolt(cfg.DatabasePath)
	if err != nil {
		appLogger.Fatalf("failed to initialize database: %v", err)
	}
	appLogger.Infof("[App] snapshot database ready at %s", cfg.DatabasePath)
}

// InitializeServices wires the cache, feed resolver, cleanup service
// and HTTP handler together.
func InitializeServices() {
	feedCache = cache.New(cfg.CacheSize, cfg.CacheTTL)

	feed = services.NewFeed(cfg.FeedURL, cfg.CacheTTL, feedCache)
	feed.SetDB(db)

	serviceContainer = &services.Container{
		Feed:    feed,
		Cache:   feedCache,
		DB:      db,
		Logger:  appLogger,
		Cleanup: services.NewCleanupService(db),
	}

	handler = handlers.New(serviceContainer, cfg)
	appLogger.Infof("[App] services initialized")
}
