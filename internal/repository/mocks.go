package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/kitbuilder587/adversify/internal/classify"
	"github.com/kitbuilder587/adversify/internal/domain"
)

type MockRunRepository struct {
	mu   sync.RWMutex
	runs map[string]*domain.Run
}

func NewMockRunRepository() *MockRunRepository {
	return &MockRunRepository{
		runs: make(map[string]*domain.Run),
	}
}

func (m *MockRunRepository) Create(ctx context.Context, run *domain.Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.runs[run.ID]; exists {
		return domain.ErrDuplicateRun
	}

	copied := *run
	m.runs[run.ID] = &copied
	return nil
}

func (m *MockRunRepository) GetByID(ctx context.Context, id string) (*domain.Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	run, exists := m.runs[id]
	if !exists {
		return nil, domain.ErrRunNotFound
	}

	copied := *run
	return &copied, nil
}

func (m *MockRunRepository) UpdateStatus(ctx context.Context, id string, status domain.RunStatus, runErr string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	run, exists := m.runs[id]
	if !exists {
		return domain.ErrRunNotFound
	}

	run.Status = status
	run.Error = runErr
	return nil
}

func (m *MockRunRepository) SaveResults(ctx context.Context, id string, results []domain.ScoredItem, languageErrors map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	run, exists := m.runs[id]
	if !exists {
		return domain.ErrRunNotFound
	}

	run.Results = results
	run.LanguageErrors = languageErrors
	return nil
}

func (m *MockRunRepository) ListRecent(ctx context.Context, limit int) ([]domain.Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	runs := make([]domain.Run, 0, len(m.runs))
	for _, run := range m.runs {
		runs = append(runs, *run)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})

	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

type MockBatchScoreRepository struct {
	mu     sync.RWMutex
	scores map[string][]classify.Score

	GetCalls int
	PutCalls int
}

func NewMockBatchScoreRepository() *MockBatchScoreRepository {
	return &MockBatchScoreRepository{
		scores: make(map[string][]classify.Score),
	}
}

func (m *MockBatchScoreRepository) Get(ctx context.Context, runID, fingerprint string) ([]classify.Score, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GetCalls++
	scores, exists := m.scores[runID+"/"+fingerprint]
	if !exists {
		return nil, domain.ErrNotFound
	}
	return scores, nil
}

func (m *MockBatchScoreRepository) Put(ctx context.Context, runID, fingerprint string, scores []classify.Score) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PutCalls++
	m.scores[runID+"/"+fingerprint] = scores
	return nil
}
