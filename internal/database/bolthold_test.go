package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/gotvmovies/internal/models"
)

func newTestDB(t *testing.T) *BoltDB {
	t.Helper()
	db, err := NewBolt(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}

func sampleSnapshot(url string, fetchedAt time.Time) *FeedSnapshot {
	rotten := 93
	return &FeedSnapshot{
		URL:                url,
		LastUpdateDateTime: "2026-08-23T12:00:00Z",
		Movies: []models.Movie{
			{
				Title:         "Inception",
				Directors:     []string{"Christopher Nolan"},
				ChannelID:     "channel-1",
				StartDateTime: "2026-08-23T20:15:00Z",
				StopDateTime:  "2026-08-23T22:45:00Z",
				RatingsInfo:   &models.RatingsInfo{RottenRating: &rotten},
			},
		},
		FetchedAt: fetchedAt,
	}
}

func TestStoreAndGetSnapshot(t *testing.T) {
	db := newTestDB(t)
	fetchedAt := time.Now().Truncate(time.Second)

	require.NoError(t, db.StoreSnapshot(sampleSnapshot("https://feed.example.org/movies", fetchedAt)))

	got, err := db.GetSnapshot("https://feed.example.org/movies")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "2026-08-23T12:00:00Z", got.LastUpdateDateTime)
	require.Len(t, got.Movies, 1)
	assert.Equal(t, "Inception", got.Movies[0].Title)
	assert.Equal(t, []string{"Christopher Nolan"}, got.Movies[0].Directors)
	require.NotNil(t, got.Movies[0].RatingsInfo)
	require.NotNil(t, got.Movies[0].RatingsInfo.RottenRating)
	assert.Equal(t, 93, *got.Movies[0].RatingsInfo.RottenRating)
	assert.True(t, got.FetchedAt.Equal(fetchedAt))
}

func TestGetSnapshotMissing(t *testing.T) {
	db := newTestDB(t)

	got, err := db.GetSnapshot("https://feed.example.org/unknown")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreSnapshotReplaces(t *testing.T) {
	db := newTestDB(t)
	url := "https://feed.example.org/movies"

	first := sampleSnapshot(url, time.Now().Add(-time.Hour))
	require.NoError(t, db.StoreSnapshot(first))

	second := sampleSnapshot(url, time.Now())
	second.Movies[0].Title = "Memento"
	require.NoError(t, db.StoreSnapshot(second))

	got, err := db.GetSnapshot(url)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Movies, 1)
	assert.Equal(t, "Memento", got.Movies[0].Title)
}

func TestStoreSnapshotStampsZeroFetchedAt(t *testing.T) {
	db := newTestDB(t)
	snap := sampleSnapshot("https://feed.example.org/movies", time.Time{})

	require.NoError(t, db.StoreSnapshot(snap))

	got, err := db.GetSnapshot(snap.URL)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.FetchedAt.IsZero())
}

func TestDeleteSnapshotsBefore(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()

	require.NoError(t, db.StoreSnapshot(sampleSnapshot("https://feed.example.org/old", now.Add(-48*time.Hour))))
	require.NoError(t, db.StoreSnapshot(sampleSnapshot("https://feed.example.org/fresh", now)))

	removed, err := db.DeleteSnapshotsBefore(now.Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	old, err := db.GetSnapshot("https://feed.example.org/old")
	require.NoError(t, err)
	assert.Nil(t, old)

	fresh, err := db.GetSnapshot("https://feed.example.org/fresh")
	require.NoError(t, err)
	assert.NotNil(t, fresh)
}

func TestDeleteSnapshotsBeforeEmpty(t *testing.T) {
	db := newTestDB(t)

	removed, err := db.DeleteSnapshotsBefore(time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}
