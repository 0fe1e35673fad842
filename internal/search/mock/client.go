package mock

import (
	"context"
	"sync"

	"github.com/kitbuilder587/adversify/internal/search"
)

type Call struct {
	EngineID string
	Query    string
	Start    int
}

// Client is a scripted PageClient: each SearchPage call consumes the next
// entry of Pages. When the script runs out, an empty last page is returned.
type Client struct {
	Pages []*search.Page
	Error error

	CallCount int
	LastCall  Call
	AllCalls  []Call

	mu sync.Mutex
}

func New() *Client {
	return &Client{}
}

func (c *Client) WithPages(pages ...*search.Page) *Client {
	c.Pages = pages
	return c
}

func (c *Client) WithHits(hits ...search.RawHit) *Client {
	c.Pages = []*search.Page{{Hits: hits}}
	return c
}

func (c *Client) WithError(err error) *Client {
	c.Error = err
	return c
}

func (c *Client) SearchPage(ctx context.Context, engineID, query string, start int) (*search.Page, error) {
	c.mu.Lock()
	call := Call{EngineID: engineID, Query: query, Start: start}
	idx := c.CallCount
	c.CallCount++
	c.LastCall = call
	c.AllCalls = append(c.AllCalls, call)
	err := c.Error
	pages := c.Pages
	c.mu.Unlock()

	if err != nil {
		return nil, err
	}

	if idx < len(pages) {
		return pages[idx], nil
	}
	return &search.Page{}, nil
}

func (c *Client) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CallCount = 0
	c.LastCall = Call{}
	c.AllCalls = nil
}
