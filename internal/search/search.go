package search

import (
	"context"
	"errors"
)

var (
	ErrUnauthorized   = errors.New("invalid API key")
	ErrRateLimit      = errors.New("rate limit exceeded")
	ErrInvalidRequest = errors.New("invalid request parameters")
	ErrSearchFailed   = errors.New("search request failed")
)

// PageClient returns one result page per call. Pagination is driven by the
// caller: a Page with NextStart == 0 means there are no further pages.
type PageClient interface {
	SearchPage(ctx context.Context, engineID, query string, start int) (*Page, error)
}

type Page struct {
	Hits      []RawHit
	NextStart int // start index of the next page, 0 when this is the last one
}

// RawHit is one raw entry from the search engine. It is consumed only by the
// metadata normalizer; everything downstream works on domain.ItemMetadata.
type RawHit struct {
	Title       string  `json:"title"`
	Snippet     string  `json:"snippet"`
	HTMLSnippet string  `json:"htmlSnippet"`
	Link        string  `json:"link"`
	PageMap     PageMap `json:"pagemap"`
}

type PageMap struct {
	MetaTags     []map[string]string `json:"metatags"`
	CSEThumbnail []ImageRef          `json:"cse_thumbnail"`
	CSEImage     []ImageRef          `json:"cse_image"`
}

type ImageRef struct {
	Src string `json:"src"`
}
