// Package errors provides typed errors for feed fetching.
package errors

import "fmt"

// Fetch failure kinds. Kinds label logs and metrics only; the message a
// caller sees is always the underlying error text, whatever the kind.
const (
	KindNetwork = "NETWORK"
	KindStatus  = "STATUS"
	KindDecode  = "DECODE"
)

// FetchError represents a failed feed fetch. Transport failures, bad
// HTTP statuses and undecodable bodies all collapse into this one type;
// Kind is the only way to tell them apart.
type FetchError struct {
	Kind string
	Err  error
}

// Error returns the underlying error message unchanged, so the text
// shown to users matches what the transport or decoder reported.
func (e *FetchError) Error() string {
	if e.Err == nil {
		return "feed fetch failed"
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a FetchError of the given kind.
func NewFetchError(kind string, err error) *FetchError {
	return &FetchError{
		Kind: kind,
		Err:  err,
	}
}

// NewStatusError creates the FetchError for a non-success HTTP response.
func NewStatusError(status int) *FetchError {
	return &FetchError{
		Kind: KindStatus,
		Err:  fmt.Errorf("feed request failed with status %d", status),
	}
}
