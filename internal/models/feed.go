package models

import "time"

// FeedState is the lifecycle state of the feed resource. A resource is
// pending until its first resolution completes, then moves between
// error and success with every refresh.
type FeedState string

// Feed resource states.
const (
	FeedStatePending FeedState = "pending"
	FeedStateError   FeedState = "error"
	FeedStateSuccess FeedState = "success"
)

// FeedResult is one observation of the feed resource. Exactly one state
// is set: Data is non-nil only on success, Err only on error, and a
// pending result carries neither.
type FeedResult struct {
	State     FeedState
	Data      *MoviesResponse
	Err       error
	FetchedAt time.Time
}

// FeedStatus is the JSON summary served by the status endpoint.
type FeedStatus struct {
	State              FeedState  `json:"state"`
	FetchedAt          *time.Time `json:"fetchedAt,omitempty"`
	LastUpdateDateTime string     `json:"lastUpdateDateTime,omitempty"`
	MovieCount         int        `json:"movieCount"`
	LastError          string     `json:"lastError,omitempty"`
}
