package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kitbuilder587/adversify/internal/domain"
	"github.com/kitbuilder587/adversify/internal/repository"
)

type stubScreener struct {
	results    []domain.ScoredItem
	langErrors map[string]string
	err        error
}

func (s *stubScreener) Screen(ctx context.Context, runID string, req domain.ScreeningRequest) ([]domain.ScoredItem, map[string]string, error) {
	return s.results, s.langErrors, s.err
}

func waitForTerminal(t *testing.T, runs repository.RunRepository, id string) *domain.Run {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("run did not reach a terminal status in time")
		default:
		}

		run, err := runs.GetByID(context.Background(), id)
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if run.Status.IsTerminal() {
			return run
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestRunner_StartCompletes(t *testing.T) {
	runs := repository.NewMockRunRepository()
	screener := &stubScreener{
		results: []domain.ScoredItem{
			{Score: 0.9},
			{Score: 0.1},
		},
		langErrors: map[string]string{"sv-SE": "rate limit exceeded"},
	}
	r := New(context.Background(), screener, runs, zap.NewNop(), nil)

	id, err := r.Start(context.Background(), domain.ScreeningRequest{Name: "John Doe"})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if id == "" {
		t.Fatal("Start() returned empty id")
	}

	run := waitForTerminal(t, runs, id)

	if run.Status != domain.RunCompleted {
		t.Errorf("status = %q, want %q (error: %s)", run.Status, domain.RunCompleted, run.Error)
	}
	if len(run.Results) != 2 {
		t.Errorf("results = %d, want 2", len(run.Results))
	}
	if run.LanguageErrors["sv-SE"] == "" {
		t.Errorf("language errors = %v, want sv-SE entry", run.LanguageErrors)
	}
}

func TestRunner_StartFailure(t *testing.T) {
	runs := repository.NewMockRunRepository()
	screener := &stubScreener{err: errors.New("every language failed")}
	r := New(context.Background(), screener, runs, zap.NewNop(), nil)

	id, err := r.Start(context.Background(), domain.ScreeningRequest{Name: "John Doe"})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	run := waitForTerminal(t, runs, id)

	if run.Status != domain.RunFailed {
		t.Errorf("status = %q, want %q", run.Status, domain.RunFailed)
	}
	if run.Error == "" {
		t.Error("run.Error is empty, want the failure message")
	}
}

func TestRunner_StartRejectsInvalidRequest(t *testing.T) {
	runs := repository.NewMockRunRepository()
	r := New(context.Background(), &stubScreener{}, runs, zap.NewNop(), nil)

	_, err := r.Start(context.Background(), domain.ScreeningRequest{Name: ""})
	if !errors.Is(err, domain.ErrEmptyName) {
		t.Errorf("Start() error = %v, want %v", err, domain.ErrEmptyName)
	}
}

func TestRunner_StatusUnknownRun(t *testing.T) {
	runs := repository.NewMockRunRepository()
	r := New(context.Background(), &stubScreener{}, runs, zap.NewNop(), nil)

	_, err := r.Status(context.Background(), "no-such-run")
	if !errors.Is(err, domain.ErrRunNotFound) {
		t.Errorf("Status() error = %v, want %v", err, domain.ErrRunNotFound)
	}
}
