package content

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("content not found")
	ErrFetchFailed = errors.New("fetch failed")
)

// Store is the content-addressed blob store, keyed exclusively by item id.
// Put is an idempotent upsert; stored content is treated as immutable, so two
// concurrent writers for the same id are acceptable (last writer wins,
// content is equivalent).
type Store interface {
	Exists(ctx context.Context, id string) (bool, error)
	Get(ctx context.Context, id string) (data []byte, contentType string, err error)
	Put(ctx context.Context, id string, data []byte, contentType string) error
}

// Fetcher downloads the raw content of a url.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (data []byte, contentType string, err error)
}
