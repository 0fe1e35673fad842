package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/kitbuilder587/adversify/internal/search"
)

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client calls the Google Custom Search JSON API
// (https://developers.google.com/custom-search/v1), one result page per call.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.googleapis.com/customsearch/v1"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

type googleResponse struct {
	Items   []search.RawHit `json:"items"`
	Queries struct {
		NextPage []struct {
			StartIndex int `json:"startIndex"`
		} `json:"nextPage"`
	} `json:"queries"`
}

func (c *Client) SearchPage(ctx context.Context, engineID, query string, start int) (*search.Page, error) {
	if engineID == "" {
		return nil, fmt.Errorf("%w: empty engine id", search.ErrInvalidRequest)
	}
	if start < 1 {
		start = 1
	}

	params := url.Values{}
	params.Set("cx", engineID)
	params.Set("key", c.apiKey)
	params.Set("q", query)
	params.Set("start", strconv.Itoa(start))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", search.ErrSearchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleHTTPError(resp.StatusCode, body)
	}

	var gr googleResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	page := &search.Page{Hits: gr.Items}
	if len(gr.Queries.NextPage) > 0 {
		page.NextStart = gr.Queries.NextPage[0].StartIndex
	}

	return page, nil
}

func (c *Client) handleHTTPError(statusCode int, body []byte) error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return search.ErrUnauthorized
	case http.StatusTooManyRequests:
		return search.ErrRateLimit
	case http.StatusBadRequest:
		return fmt.Errorf("%w: status 400", search.ErrInvalidRequest)
	default:
		c.logger.Error("google search request failed",
			zap.Int("status", statusCode),
			zap.String("body", string(body)),
		)
		return fmt.Errorf("%w: status %d", search.ErrSearchFailed, statusCode)
	}
}
