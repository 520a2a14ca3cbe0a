// Command gotvmovies serves a remote TV movie broadcast feed as a
// sortable, filtered HTML table with JSON endpoints alongside.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gotvmovies/internal/constants"
	"github.com/amaumene/gotvmovies/internal/middleware"
)

func main() {
	InitializeLogger()
	InitializeConfig()
	InitializeDatabase()
	InitializeServices()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(appLogger))
	router.Use(middleware.Gzip())
	router.Use(middleware.CORS())
	handler.RegisterRoutes(router)

	feedCache.StartCleanup(ctx, constants.CacheCleanupInterval)
	if err := serviceContainer.Cleanup.Start(ctx); err != nil {
		appLogger.Errorf("[App] cleanup service: %v", err)
	}
	feed.Warm(ctx)

	port := os.Getenv("PORT")
	if port == "" {
		port = constants.DefaultPort
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		appLogger.Infof("[App] %s %s listening on port %s", constants.AppName, constants.AppVersion, port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Infof("[App] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("[App] server shutdown: %v", err)
	}

	serviceContainer.Cleanup.Stop()
	if err := db.Close(); err != nil {
		appLogger.Errorf("[App] database close: %v", err)
	}
}
