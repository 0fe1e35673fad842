package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kitbuilder587/adversify/internal/classify"
	"github.com/kitbuilder587/adversify/internal/domain"
)

type BatchScoreRepo struct {
	db *DB
}

func NewBatchScoreRepo(db *DB) *BatchScoreRepo {
	return &BatchScoreRepo{db: db}
}

func (r *BatchScoreRepo) Get(ctx context.Context, runID, fingerprint string) ([]classify.Score, error) {
	query := `SELECT scores FROM batch_scores WHERE run_id = $1 AND fingerprint = $2`

	var data []byte
	err := r.db.Pool.QueryRow(ctx, query, runID, fingerprint).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get batch scores: %w", err)
	}

	var scores []classify.Score
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("unmarshal scores: %w", err)
	}
	return scores, nil
}

func (r *BatchScoreRepo) Put(ctx context.Context, runID, fingerprint string, scores []classify.Score) error {
	data, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}

	query := `
        INSERT INTO batch_scores (run_id, fingerprint, scores)
        VALUES ($1, $2, $3)
        ON CONFLICT (run_id, fingerprint) DO UPDATE SET scores = EXCLUDED.scores
    `

	if _, err := r.db.Pool.Exec(ctx, query, runID, fingerprint, data); err != nil {
		return fmt.Errorf("put batch scores: %w", err)
	}
	return nil
}
