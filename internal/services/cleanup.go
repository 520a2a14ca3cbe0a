package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/amaumene/gotvmovies/internal/constants"
	"github.com/amaumene/gotvmovies/internal/database"
	"github.com/amaumene/gotvmovies/pkg/logger"
)

// CleanupService periodically deletes feed snapshots older than the
// retention period.
type CleanupService struct {
	db              database.Database
	logger          logger.Logger
	interval        time.Duration
	retentionPeriod time.Duration

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
}

// NewCleanupService creates a cleanup service with the default interval
// and retention period.
func NewCleanupService(db database.Database) *CleanupService {
	return &CleanupService{
		db:              db,
		logger:          logger.New(),
		interval:        constants.CleanupInterval,
		retentionPeriod: constants.SnapshotRetention,
	}
}

// SetInterval overrides how often cleanup runs. Must be called before
// Start.
func (c *CleanupService) SetInterval(interval time.Duration) {
	c.interval = interval
}

// SetRetentionPeriod overrides how long snapshots are kept. Must be
// called before Start.
func (c *CleanupService) SetRetentionPeriod(retention time.Duration) {
	c.retentionPeriod = retention
}

// Start launches the cleanup loop. It fails when already running.
func (c *CleanupService) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return fmt.Errorf("cleanup service already running")
	}
	c.running = true
	c.stopChan = make(chan struct{})
	c.mu.Unlock()

	go c.cleanupLoop(ctx)
	c.logger.Infof("[Cleanup] started, interval %v, retention %v", c.interval, c.retentionPeriod)
	return nil
}

// Stop halts the cleanup loop. Safe to call when not running.
func (c *CleanupService) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	close(c.stopChan)
	c.running = false
}

func (c *CleanupService) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.performCleanup()
		}
	}
}

func (c *CleanupService) performCleanup() {
	cutoff := time.Now().Add(-c.retentionPeriod)
	removed, err := c.db.DeleteSnapshotsBefore(cutoff)
	if err != nil {
		c.logger.Errorf("[Cleanup] failed to delete expired snapshots: %v", err)
		return
	}
	if removed > 0 {
		c.logger.Infof("[Cleanup] removed %d expired snapshots", removed)
	}
}
