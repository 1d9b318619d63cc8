// Package catalog talks to the remote car listing service.
package catalog

import (
	"context"
	"errors"

	"carhub/internal/domain"
)

// ErrFetchFailed is the single failure kind of a listing fetch. Network
// errors, unexpected statuses, malformed payloads and an open breaker all
// wrap it.
var ErrFetchFailed = errors.New("fetch failed")

// Fetcher retrieves one page of cars for a request
type Fetcher interface {
	Fetch(ctx context.Context, req domain.FetchRequest) (domain.Listing, error)
}

// FetcherFunc adapts a function to the Fetcher interface
type FetcherFunc func(ctx context.Context, req domain.FetchRequest) (domain.Listing, error)

// Fetch calls f
func (f FetcherFunc) Fetch(ctx context.Context, req domain.FetchRequest) (domain.Listing, error) {
	return f(ctx, req)
}
