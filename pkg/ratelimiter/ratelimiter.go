// Package ratelimiter provides rate limiting for outbound requests.
package ratelimiter

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter defines the interface for rate limiting implementations.
type RateLimiter interface {
	// TakeToken reports whether a request may proceed right now.
	TakeToken() bool
	// Wait blocks until a request may proceed or the context ends.
	Wait(ctx context.Context) error
}

// TokenBucket adapts rate.Limiter to the RateLimiter interface.
type TokenBucket struct {
	limiter *rate.Limiter
}

// NewTokenBucket creates a token bucket allowing perSecond requests per
// second with the given burst capacity. Non-positive arguments are
// clamped to 1.
func NewTokenBucket(perSecond, burst int) *TokenBucket {
	if perSecond <= 0 {
		perSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &TokenBucket{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// TakeToken attempts to take a token without blocking.
func (tb *TokenBucket) TakeToken() bool {
	return tb.limiter.Allow()
}

// Wait blocks until a token is available or ctx is done.
func (tb *TokenBucket) Wait(ctx context.Context) error {
	return tb.limiter.Wait(ctx)
}
