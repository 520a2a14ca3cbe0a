package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/timshannon/bolthold"
	bolt "go.etcd.io/bbolt"

	"github.com/amaumene/gotvmovies/internal/models"
)

const (
	dbFileMode  = 0600
	dbDirMode   = 0755
	openTimeout = 1 * time.Second
)

// BoltDB implements Database using bolthold on top of BoltDB.
type BoltDB struct {
	store *bolthold.Store
}

// boltFeedSnapshot is the stored representation of a snapshot.
type boltFeedSnapshot struct {
	URL                string `boltholdKey:"URL"`
	LastUpdateDateTime string
	Movies             []models.Movie
	FetchedAt          time.Time
}

// NewBolt opens (creating if needed) the snapshot store at dbPath.
func NewBolt(dbPath string) (*BoltDB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, dbDirMode); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	store, err := bolthold.Open(dbPath, dbFileMode, &bolthold.Options{
		Options: &bolt.Options{Timeout: openTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &BoltDB{store: store}, nil
}

// GetSnapshot returns the snapshot stored for url, or nil when none
// exists.
func (d *BoltDB) GetSnapshot(url string) (*FeedSnapshot, error) {
	var stored boltFeedSnapshot
	err := d.store.Get(url, &stored)
	if err == bolthold.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return &FeedSnapshot{
		URL:                stored.URL,
		LastUpdateDateTime: stored.LastUpdateDateTime,
		Movies:             stored.Movies,
		FetchedAt:          stored.FetchedAt,
	}, nil
}

// StoreSnapshot inserts or replaces the snapshot for its URL. A zero
// FetchedAt is stamped with the current time.
func (d *BoltDB) StoreSnapshot(snapshot *FeedSnapshot) error {
	fetchedAt := snapshot.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}
	stored := boltFeedSnapshot{
		URL:                snapshot.URL,
		LastUpdateDateTime: snapshot.LastUpdateDateTime,
		Movies:             snapshot.Movies,
		FetchedAt:          fetchedAt,
	}
	if err := d.store.Upsert(stored.URL, &stored); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}
	return nil
}

// DeleteSnapshotsBefore removes snapshots fetched before cutoff.
func (d *BoltDB) DeleteSnapshotsBefore(cutoff time.Time) (int, error) {
	query := bolthold.Where("FetchedAt").Lt(cutoff)

	count, err := d.store.Count(&boltFeedSnapshot{}, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count expired snapshots: %w", err)
	}
	if count == 0 {
		return 0, nil
	}
	if err := d.store.DeleteMatching(&boltFeedSnapshot{}, query); err != nil {
		return 0, fmt.Errorf("failed to delete expired snapshots: %w", err)
	}
	return count, nil
}

// Close closes the underlying store.
func (d *BoltDB) Close() error {
	return d.store.Close()
}
