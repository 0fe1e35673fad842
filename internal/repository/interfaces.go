package repository

import (
	"context"

	"github.com/kitbuilder587/adversify/internal/classify"
	"github.com/kitbuilder587/adversify/internal/domain"
)

type RunRepository interface {
	Create(ctx context.Context, run *domain.Run) error
	GetByID(ctx context.Context, id string) (*domain.Run, error)
	UpdateStatus(ctx context.Context, id string, status domain.RunStatus, runErr string) error
	SaveResults(ctx context.Context, id string, results []domain.ScoredItem, languageErrors map[string]string) error
	ListRecent(ctx context.Context, limit int) ([]domain.Run, error)
}

// BatchScoreRepository persists classification results keyed by run and batch
// fingerprint. Classification calls cost money; a replayed step looks here
// before submitting the same batch again.
type BatchScoreRepository interface {
	Get(ctx context.Context, runID, fingerprint string) ([]classify.Score, error)
	Put(ctx context.Context, runID, fingerprint string, scores []classify.Score) error
}
