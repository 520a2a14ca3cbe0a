package services

import (
	"context"

	"github.com/amaumene/gotvmovies/internal/cache"
	"github.com/amaumene/gotvmovies/internal/database"
	"github.com/amaumene/gotvmovies/internal/models"
	"github.com/amaumene/gotvmovies/pkg/logger"
)

// FeedService defines the feed operations the HTTP layer depends on.
type FeedService interface {
	FetchMovies(ctx context.Context) (*models.MoviesResponse, error)
	Resolve(ctx context.Context) models.FeedResult
	Result() models.FeedResult
	Status() models.FeedStatus
}

// Container holds all application services for dependency injection.
type Container struct {
	Feed    FeedService
	Cache   *cache.LRUCache
	DB      database.Database
	Logger  logger.Logger
	Cleanup *CleanupService
}
