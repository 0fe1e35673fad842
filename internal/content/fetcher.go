package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultMaxBodyBytes = 10 << 20 // 10 MiB, articles and PDFs fit comfortably

type FetcherConfig struct {
	Timeout      time.Duration
	MaxBodyBytes int64
	UserAgent    string
}

// HTTPFetcher downloads page content with a bounded body size.
type HTTPFetcher struct {
	client       *http.Client
	maxBodyBytes int64
	userAgent    string
}

func NewHTTPFetcher(cfg FetcherConfig) *HTTPFetcher {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxBodyBytes == 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "adversify/1.0"
	}

	return &HTTPFetcher{
		client:       &http.Client{Timeout: cfg.Timeout},
		maxBodyBytes: cfg.MaxBodyBytes,
		userAgent:    cfg.UserAgent,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}

	return data, resp.Header.Get("Content-Type"), nil
}
