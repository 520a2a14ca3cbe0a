// Package models defines the feed payload contract and shared view types.
package models

// MoviesResponse is the decoded payload of the remote movie feed.
// It is an immutable snapshot: never mutated after parse, replaced
// wholesale when a newer fetch supersedes it.
type MoviesResponse struct {
	LastUpdateDateTime string  `json:"lastUpdateDateTime"`
	Movies             []Movie `json:"movies"`
}

// Movie is one television broadcast of a movie, in feed order.
// The feed performs no schema validation upstream, so every field may
// be missing or malformed; absent values degrade per cell, they never
// fail the fetch.
type Movie struct {
	Title         string       `json:"title"`
	Directors     []string     `json:"directors,omitempty"`
	Categories    []string     `json:"categories,omitempty"`
	IconURL       string       `json:"iconUrl,omitempty"`
	StartDateTime string       `json:"startDateTime"`
	StopDateTime  string       `json:"stopDateTime"`
	ChannelID     string       `json:"channelId"`
	RatingsInfo   *RatingsInfo `json:"ratingsInfo,omitempty"`
}

// RatingsInfo aggregates the optional review scores of a movie.
// Pointer fields keep absent distinguishable from zero.
type RatingsInfo struct {
	RottenRating *int     `json:"rottenRating,omitempty"` // 0-100
	ImdbRating   *float64 `json:"imdbRating,omitempty"`   // 0.0-10.0
}
