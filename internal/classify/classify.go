package classify

import (
	"context"
	"errors"
)

var (
	ErrRequestFailed = errors.New("classification request failed")
	ErrRateLimit     = errors.New("rate limit exceeded")
	ErrScoreMismatch = errors.New("scores do not match submitted snippets")
	ErrEmptyBatch    = errors.New("empty batch")
)

// Classifier scores a batch of snippets for adverse-media risk against a name.
// The returned scores match the submitted snippets in length and order; any
// transport or shape problem is a single failure for the whole call.
type Classifier interface {
	Classify(ctx context.Context, req Request) (*Response, error)
}

type Request struct {
	Name     string    `json:"name"`
	Snippets []Snippet `json:"snippets"`
}

type Snippet struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
	Date    string `json:"date"`
}

type Response struct {
	Scores []Score `json:"scores"`
}

type Score struct {
	Score    float64 `json:"score"`
	Severity float64 `json:"severity"`
	Error    string  `json:"error"`
	Title    string  `json:"title"`
}
