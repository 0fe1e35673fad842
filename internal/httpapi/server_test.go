package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kitbuilder587/adversify/internal/domain"
	"github.com/kitbuilder587/adversify/internal/ratelimit"
	"github.com/kitbuilder587/adversify/internal/repository"
	"github.com/kitbuilder587/adversify/internal/runner"
)

type stubScreener struct {
	results []domain.ScoredItem
}

func (s *stubScreener) Screen(ctx context.Context, runID string, req domain.ScreeningRequest) ([]domain.ScoredItem, map[string]string, error) {
	return s.results, nil, nil
}

func testServer(t *testing.T, limiter *ratelimit.Limiter) *Server {
	t.Helper()
	runs := repository.NewMockRunRepository()
	r := runner.New(context.Background(), &stubScreener{
		results: []domain.ScoredItem{{Score: 0.7}},
	}, runs, zap.NewNop(), nil)
	return NewServer(Config{}, r, limiter, zap.NewNop(), nil)
}

func doJSON(s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body) //nolint:errcheck
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)
	return rec
}

func TestServer_StartScreening(t *testing.T) {
	s := testServer(t, nil)

	rec := doJSON(s, http.MethodPost, "/api/v1/screenings", map[string]interface{}{
		"name":  "John Doe",
		"depth": 2,
	})

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusAccepted, rec.Body.String())
	}

	var resp startResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.ID == "" {
		t.Error("response id is empty")
	}
	if want := "/api/v1/screenings/" + resp.ID; resp.StatusURL != want {
		t.Errorf("status url = %q, want %q", resp.StatusURL, want)
	}
}

func TestServer_StartScreeningValidation(t *testing.T) {
	s := testServer(t, nil)

	tests := []struct {
		name string
		body interface{}
	}{
		{name: "missing name", body: map[string]interface{}{"depth": 2}},
		{name: "blank name", body: map[string]interface{}{"name": "   "}},
		{name: "negative depth", body: map[string]interface{}{"name": "John Doe", "depth": -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(s, http.MethodPost, "/api/v1/screenings", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestServer_Status(t *testing.T) {
	s := testServer(t, nil)

	rec := doJSON(s, http.MethodPost, "/api/v1/screenings", map[string]interface{}{"name": "John Doe"})
	var started startResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &started); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	// the stub screener finishes almost immediately; poll until it does
	deadline := time.Now().Add(2 * time.Second)
	var status statusResponse
	for {
		rec = doJSON(s, http.MethodGet, "/api/v1/screenings/"+started.ID, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status code = %d, want %d", rec.Code, http.StatusOK)
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if status.Status.IsTerminal() {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("run stuck in status %q", status.Status)
		}
		time.Sleep(5 * time.Millisecond)
	}

	if status.Status != domain.RunCompleted {
		t.Fatalf("run status = %q, want %q", status.Status, domain.RunCompleted)
	}
	if len(status.Results) != 1 {
		t.Errorf("results = %d, want 1", len(status.Results))
	}
}

func TestServer_StatusNotFound(t *testing.T) {
	s := testServer(t, nil)

	rec := doJSON(s, http.MethodGet, "/api/v1/screenings/unknown", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestServer_RateLimit(t *testing.T) {
	limiter := ratelimit.New(ratelimit.Config{RequestsPerMinute: 2})
	s := testServer(t, limiter)

	body := map[string]interface{}{"name": "John Doe"}
	for i := 0; i < 2; i++ {
		if rec := doJSON(s, http.MethodPost, "/api/v1/screenings", body); rec.Code != http.StatusAccepted {
			t.Fatalf("request %d status = %d, want %d", i, rec.Code, http.StatusAccepted)
		}
	}

	rec := doJSON(s, http.MethodPost, "/api/v1/screenings", body)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}

	// reads are not limited
	rec = doJSON(s, http.MethodGet, "/api/v1/screenings/unknown", nil)
	if rec.Code == http.StatusTooManyRequests {
		t.Error("GET was rate limited, only POST should be")
	}
}

func TestServer_Health(t *testing.T) {
	s := testServer(t, nil)

	rec := doJSON(s, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
