// Package constants defines timeout values used throughout the application.
package constants

import "time"

const (
	// FeedTimeout bounds a single feed request, connect to decoded body.
	FeedTimeout = 10 * time.Second

	// WarmupTimeout bounds the background feed prime at startup.
	WarmupTimeout = 15 * time.Second

	// ShutdownTimeout bounds graceful HTTP server shutdown.
	ShutdownTimeout = 10 * time.Second

	// CleanupInterval is how often expired snapshots are purged.
	CleanupInterval = 1 * time.Hour

	// SnapshotRetention is how long stored feed snapshots are kept.
	SnapshotRetention = 24 * time.Hour

	// CacheCleanupInterval is how often the memory cache drops expired
	// entries.
	CacheCleanupInterval = 10 * time.Minute
)
