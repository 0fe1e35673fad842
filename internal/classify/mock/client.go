package mock

import (
	"context"
	"sync"

	"github.com/kitbuilder587/adversify/internal/classify"
)

// Client scores every snippet with a fixed value, or fails with Error.
// ScoreFn overrides the fixed value when set.
type Client struct {
	Score   float64
	ScoreFn func(i int, s classify.Snippet) classify.Score
	Error   error

	CallCount   int
	LastRequest classify.Request
	AllRequests []classify.Request

	mu sync.Mutex
}

func New() *Client {
	return &Client{Score: 0.5}
}

func (c *Client) WithScore(score float64) *Client {
	c.Score = score
	return c
}

func (c *Client) WithScoreFn(fn func(i int, s classify.Snippet) classify.Score) *Client {
	c.ScoreFn = fn
	return c
}

func (c *Client) WithError(err error) *Client {
	c.Error = err
	return c
}

func (c *Client) Classify(ctx context.Context, req classify.Request) (*classify.Response, error) {
	c.mu.Lock()
	c.CallCount++
	c.LastRequest = req
	c.AllRequests = append(c.AllRequests, req)
	err := c.Error
	score := c.Score
	fn := c.ScoreFn
	c.mu.Unlock()

	if err != nil {
		return nil, err
	}

	scores := make([]classify.Score, len(req.Snippets))
	for i, s := range req.Snippets {
		if fn != nil {
			scores[i] = fn(i, s)
			continue
		}
		scores[i] = classify.Score{Score: score, Severity: score, Title: s.Title}
	}

	return &classify.Response{Scores: scores}, nil
}

func (c *Client) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CallCount = 0
	c.LastRequest = classify.Request{}
	c.AllRequests = nil
}
