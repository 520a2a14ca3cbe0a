// Package services contains the business logic for resolving and
// serving the movie feed.
package services

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/amaumene/gotvmovies/internal/cache"
	"github.com/amaumene/gotvmovies/internal/constants"
	"github.com/amaumene/gotvmovies/internal/database"
	errs "github.com/amaumene/gotvmovies/internal/errors"
	"github.com/amaumene/gotvmovies/internal/metrics"
	"github.com/amaumene/gotvmovies/internal/models"
	"github.com/amaumene/gotvmovies/pkg/httputil"
	"github.com/amaumene/gotvmovies/pkg/logger"
	"github.com/amaumene/gotvmovies/pkg/ratelimiter"
)

// Feed resolves the remote movie feed and holds its latest resolution.
// Reads go memory cache, then snapshot store, then upstream; concurrent
// resolutions share a single upstream request.
type Feed struct {
	url         string
	ttl         time.Duration
	cache       *cache.LRUCache
	db          database.Database
	rateLimiter *ratelimiter.TokenBucket
	httpClient  *http.Client
	logger      logger.Logger
	group       singleflight.Group

	mu     sync.RWMutex
	result models.FeedResult
}

// cachedFeed is the memory cache entry for one feed URL.
type cachedFeed struct {
	payload   *models.MoviesResponse
	fetchedAt time.Time
}

// NewFeed creates a feed resolver for url. Payloads younger than ttl
// are served from cache without contacting upstream.
func NewFeed(url string, ttl time.Duration, memCache *cache.LRUCache) *Feed {
	return &Feed{
		url:         url,
		ttl:         ttl,
		cache:       memCache,
		rateLimiter: ratelimiter.NewTokenBucket(constants.FeedRateLimit, constants.FeedRateBurst),
		httpClient:  httputil.NewClientWithUserAgent(constants.FeedTimeout, constants.AppName+"/"+constants.AppVersion),
		logger:      logger.New(),
		result:      models.FeedResult{State: models.FeedStatePending},
	}
}

// SetDB sets the snapshot store used for cold starts and persistence.
func (f *Feed) SetDB(db database.Database) {
	f.db = db
}

// SetHTTPClient overrides the upstream HTTP client. Used by tests.
func (f *Feed) SetHTTPClient(client *http.Client) {
	f.httpClient = client
}

// FetchMovies performs one upstream feed request: a single GET with no
// retries. Transport failures, non-2xx responses and undecodable bodies
// all come back as a *errs.FetchError whose message is the underlying
// error text.
func (f *Feed) FetchMovies(ctx context.Context) (*models.MoviesResponse, error) {
	if err := f.rateLimiter.Wait(ctx); err != nil {
		return nil, errs.NewFetchError(errs.KindNetwork, err)
	}

	f.logger.Debugf("[Feed] fetching %s", f.url)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		metrics.IncFeedFetch("error")
		return nil, errs.NewFetchError(errs.KindNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		metrics.IncFeedFetch("error")
		return nil, errs.NewFetchError(errs.KindNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.IncFeedFetch("error")
		return nil, errs.NewStatusError(resp.StatusCode)
	}

	var payload models.MoviesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.IncFeedFetch("error")
		return nil, errs.NewFetchError(errs.KindDecode, err)
	}

	elapsed := time.Since(start)
	metrics.IncFeedFetch("success")
	metrics.ObserveFeedFetchDuration(elapsed)
	f.logger.Infof("[Feed] fetched %d movies in %v", len(payload.Movies), elapsed.Round(time.Millisecond))
	return &payload, nil
}

// Resolve returns the current feed result, fetching upstream only when
// no fresh payload is cached. The error state is never served from a
// stale snapshot: a failed fetch stays an error until a later fetch
// succeeds.
func (f *Feed) Resolve(ctx context.Context) models.FeedResult {
	key := f.cacheKey()

	if data, found := f.cache.Get(key); found {
		entry := data.(*cachedFeed)
		metrics.IncCacheHit("memory")
		return f.setSuccess(entry)
	}

	if entry := f.loadSnapshot(); entry != nil {
		f.cache.Set(key, entry)
		metrics.IncCacheHit("database")
		return f.setSuccess(entry)
	}

	v, err, _ := f.group.Do(key, func() (interface{}, error) {
		payload, err := f.FetchMovies(ctx)
		if err != nil {
			return nil, err
		}
		entry := &cachedFeed{payload: payload, fetchedAt: time.Now()}
		f.cache.Set(key, entry)
		f.storeSnapshot(entry)
		return entry, nil
	})
	if err != nil {
		return f.setError(err)
	}
	return f.setSuccess(v.(*cachedFeed))
}

// Result returns the latest observation without triggering a fetch.
func (f *Feed) Result() models.FeedResult {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.result
}

// Status summarizes the resource for the status endpoint.
func (f *Feed) Status() models.FeedStatus {
	res := f.Result()
	status := models.FeedStatus{State: res.State}
	switch res.State {
	case models.FeedStateSuccess:
		fetchedAt := res.FetchedAt
		status.FetchedAt = &fetchedAt
		status.LastUpdateDateTime = res.Data.LastUpdateDateTime
		status.MovieCount = len(res.Data.Movies)
	case models.FeedStateError:
		status.LastError = res.Err.Error()
	}
	return status
}

// Warm primes the resource in the background so the first page load
// finds a fresh payload. Failures are logged and left for the next
// resolution to retry.
func (f *Feed) Warm(ctx context.Context) {
	go func() {
		warmCtx, cancel := context.WithTimeout(ctx, constants.WarmupTimeout)
		defer cancel()
		if res := f.Resolve(warmCtx); res.State == models.FeedStateError {
			f.logger.Warnf("[Feed] warmup fetch failed: %v", res.Err)
		}
	}()
}

// loadSnapshot returns the persisted payload when it exists and is
// still fresh, nil otherwise.
func (f *Feed) loadSnapshot() *cachedFeed {
	if f.db == nil {
		return nil
	}
	snap, err := f.db.GetSnapshot(f.url)
	if err != nil {
		f.logger.Errorf("[Feed] failed to load snapshot: %v", err)
		return nil
	}
	if snap == nil || time.Since(snap.FetchedAt) >= f.ttl {
		return nil
	}
	return &cachedFeed{
		payload: &models.MoviesResponse{
			LastUpdateDateTime: snap.LastUpdateDateTime,
			Movies:             snap.Movies,
		},
		fetchedAt: snap.FetchedAt,
	}
}

func (f *Feed) storeSnapshot(entry *cachedFeed) {
	if f.db == nil {
		return
	}
	snap := &database.FeedSnapshot{
		URL:                f.url,
		LastUpdateDateTime: entry.payload.LastUpdateDateTime,
		Movies:             entry.payload.Movies,
		FetchedAt:          entry.fetchedAt,
	}
	if err := f.db.StoreSnapshot(snap); err != nil {
		f.logger.Errorf("[Feed] failed to store snapshot: %v", err)
	}
}

func (f *Feed) setSuccess(entry *cachedFeed) models.FeedResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.result = models.FeedResult{
		State:     models.FeedStateSuccess,
		Data:      entry.payload,
		FetchedAt: entry.fetchedAt,
	}
	return f.result
}

func (f *Feed) setError(err error) models.FeedResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.result = models.FeedResult{
		State: models.FeedStateError,
		Err:   err,
	}
	return f.result
}

func (f *Feed) cacheKey() string {
	return "feed:" + f.url
}
