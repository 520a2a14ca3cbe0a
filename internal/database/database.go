// Package database provides feed snapshot persistence using BoltDB.
package database

import (
	"time"

	"github.com/amaumene/gotvmovies/internal/models"
)

// FeedSnapshot is one successfully fetched feed payload, keyed by the
// feed URL it came from. It lets a restarted process serve the table
// without waiting for the first upstream fetch.
type FeedSnapshot struct {
	URL                string
	LastUpdateDateTime string
	Movies             []models.Movie
	FetchedAt          time.Time
}

// Database defines the persistence interface.
type Database interface {
	// GetSnapshot returns the stored snapshot for url, or nil when none
	// exists.
	GetSnapshot(url string) (*FeedSnapshot, error)
	// StoreSnapshot inserts or replaces the snapshot for its URL.
	StoreSnapshot(snapshot *FeedSnapshot) error
	// DeleteSnapshotsBefore removes snapshots fetched before cutoff and
	// returns how many were removed.
	DeleteSnapshotsBefore(cutoff time.Time) (int, error)
	// Close releases the underlying store.
	Close() error
}
