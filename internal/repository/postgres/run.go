package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kitbuilder587/adversify/internal/domain"
)

type RunRepo struct {
	db *DB
}

func NewRunRepo(db *DB) *RunRepo {
	return &RunRepo{db: db}
}

func (r *RunRepo) Create(ctx context.Context, run *domain.Run) error {
	query := `
        INSERT INTO runs (id, name, depth, languages, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at
    `

	err := r.db.Pool.QueryRow(ctx, query,
		run.ID,
		run.Name,
		run.Depth,
		run.Languages,
		string(run.Status),
	).Scan(&run.CreatedAt)

	if err != nil {
		if isDuplicateError(err) {
			return domain.ErrDuplicateRun
		}
		return fmt.Errorf("create run: %w", err)
	}

	return nil
}

func (r *RunRepo) GetByID(ctx context.Context, id string) (*domain.Run, error) {
	query := `
        SELECT id, name, depth, languages, status, results, language_errors, error, created_at, completed_at
        FROM runs
        WHERE id = $1
    `

	var run domain.Run
	var status string
	var results, languageErrors []byte
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&run.ID,
		&run.Name,
		&run.Depth,
		&run.Languages,
		&status,
		&results,
		&languageErrors,
		&run.Error,
		&run.CreatedAt,
		&run.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRunNotFound
		}
		return nil, fmt.Errorf("get run: %w", err)
	}

	run.Status = domain.RunStatus(status)
	if len(results) > 0 {
		if err := json.Unmarshal(results, &run.Results); err != nil {
			return nil, fmt.Errorf("unmarshal results: %w", err)
		}
	}
	if len(languageErrors) > 0 {
		if err := json.Unmarshal(languageErrors, &run.LanguageErrors); err != nil {
			return nil, fmt.Errorf("unmarshal language errors: %w", err)
		}
	}

	return &run, nil
}

func (r *RunRepo) UpdateStatus(ctx context.Context, id string, status domain.RunStatus, runErr string) error {
	query := `
        UPDATE runs
        SET status = $2,
            error = $3,
            completed_at = CASE WHEN $2 IN ('completed', 'failed') THEN NOW() ELSE completed_at END
        WHERE id = $1
    `

	result, err := r.db.Pool.Exec(ctx, query, id, string(status), runErr)
	if err != nil {
		return fmt.Errorf("update run status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrRunNotFound
	}

	return nil
}

func (r *RunRepo) SaveResults(ctx context.Context, id string, results []domain.ScoredItem, languageErrors map[string]string) error {
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	errorsJSON, err := json.Marshal(languageErrors)
	if err != nil {
		return fmt.Errorf("marshal language errors: %w", err)
	}

	query := `UPDATE runs SET results = $2, language_errors = $3 WHERE id = $1`

	result, err := r.db.Pool.Exec(ctx, query, id, resultsJSON, errorsJSON)
	if err != nil {
		return fmt.Errorf("save results: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrRunNotFound
	}

	return nil
}

func (r *RunRepo) ListRecent(ctx context.Context, limit int) ([]domain.Run, error) {
	query := `
        SELECT id, name, depth, languages, status, error, created_at, completed_at
        FROM runs
        ORDER BY created_at DESC
        LIMIT $1
    `

	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run
	for rows.Next() {
		var run domain.Run
		var status string
		err := rows.Scan(
			&run.ID,
			&run.Name,
			&run.Depth,
			&run.Languages,
			&status,
			&run.Error,
			&run.CreatedAt,
			&run.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Status = domain.RunStatus(status)
		runs = append(runs, run)
	}

	return runs, rows.Err()
}
