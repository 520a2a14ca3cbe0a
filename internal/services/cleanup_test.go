package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestCleanupRunsPeriodically(t *testing.T) {
	defer goleak.VerifyNone(t)

	db := newFakeDB()
	svc := NewCleanupService(db)
	svc.SetInterval(5 * time.Millisecond)
	svc.SetRetentionPeriod(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, svc.Start(ctx))
	defer svc.Stop()

	assert.Eventually(t, func() bool {
		return db.deleteCount() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestCleanupCutoffHonorsRetention(t *testing.T) {
	db := newFakeDB()
	svc := NewCleanupService(db)
	svc.SetRetentionPeriod(24 * time.Hour)

	before := time.Now().Add(-24 * time.Hour)
	svc.performCleanup()
	after := time.Now().Add(-24 * time.Hour)

	require.Equal(t, 1, db.deleteCount())
	cutoff := db.deleted[0]
	assert.False(t, cutoff.Before(before))
	assert.False(t, cutoff.After(after))
}

func TestCleanupStartTwiceFails(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc := NewCleanupService(newFakeDB())
	svc.SetInterval(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, svc.Start(ctx))
	assert.Error(t, svc.Start(ctx), "second start must be rejected")

	svc.Stop()
}

func TestCleanupStopWithoutStart(t *testing.T) {
	svc := NewCleanupService(newFakeDB())
	assert.NotPanics(t, func() {
		svc.Stop()
	})
}

func TestCleanupSurvivesDeleteError(t *testing.T) {
	db := newFakeDB()
	db.deleteErr = assert.AnError
	svc := NewCleanupService(db)

	assert.NotPanics(t, func() {
		svc.performCleanup()
	})
	assert.Equal(t, 1, db.deleteCount())
}
