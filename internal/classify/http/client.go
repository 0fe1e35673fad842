package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/kitbuilder587/adversify/internal/classify"
)

type Config struct {
	URL     string
	Timeout time.Duration
}

// Client submits batches to the classification service over JSON/HTTP.
type Client struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}

	return &Client{
		url:    cfg.URL,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (c *Client) Classify(ctx context.Context, req classify.Request) (*classify.Response, error) {
	if len(req.Snippets) == 0 {
		return nil, classify.ErrEmptyBatch
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", classify.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleHTTPError(resp.StatusCode, respBody)
	}

	var out classify.Response
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	// The positional score contract is the whole interface; a short or long
	// scores list means the response cannot be applied at all.
	if len(out.Scores) != len(req.Snippets) {
		return nil, fmt.Errorf("%w: got %d scores for %d snippets",
			classify.ErrScoreMismatch, len(out.Scores), len(req.Snippets))
	}

	return &out, nil
}

func (c *Client) handleHTTPError(statusCode int, body []byte) error {
	if statusCode == http.StatusTooManyRequests {
		return classify.ErrRateLimit
	}
	c.logger.Error("classify request failed",
		zap.Int("status", statusCode),
		zap.String("body", string(body)),
	)
	return fmt.Errorf("%w: status %d", classify.ErrRequestFailed, statusCode)
}
