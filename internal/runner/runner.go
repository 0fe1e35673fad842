// Package runner owns the lifecycle of screening runs: it registers a run,
// executes the screener in the background and persists the outcome. Durable
// replay is out of scope; what is persisted is enough for a restarted process
// to serve finished runs and to avoid re-paying for classified batches.
package runner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kitbuilder587/adversify/internal/domain"
	"github.com/kitbuilder587/adversify/internal/metrics"
	"github.com/kitbuilder587/adversify/internal/repository"
)

type Screener interface {
	Screen(ctx context.Context, runID string, req domain.ScreeningRequest) ([]domain.ScoredItem, map[string]string, error)
}

type Runner struct {
	screener Screener
	runs     repository.RunRepository
	logger   *zap.Logger
	metrics  *metrics.Metrics

	// base context for background runs, so they survive the HTTP request
	// but stop on shutdown
	baseCtx context.Context
}

func New(baseCtx context.Context, screener Screener, runs repository.RunRepository, logger *zap.Logger, m *metrics.Metrics) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		screener: screener,
		runs:     runs,
		logger:   logger,
		metrics:  m,
		baseCtx:  baseCtx,
	}
}

// Start validates the request, registers a pending run and kicks off its
// execution in the background. The returned id is immediately pollable.
func (r *Runner) Start(ctx context.Context, req domain.ScreeningRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	req.Sanitize()

	run := &domain.Run{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Depth:     req.Depth,
		Languages: req.Languages,
		Status:    domain.RunPending,
	}

	if err := r.runs.Create(ctx, run); err != nil {
		return "", err
	}

	go r.execute(run.ID, req)

	r.logger.Info("started screening run",
		zap.String("run_id", run.ID),
		zap.Int("depth", req.Depth),
		zap.Strings("languages", req.Languages),
	)

	return run.ID, nil
}

func (r *Runner) Status(ctx context.Context, id string) (*domain.Run, error) {
	return r.runs.GetByID(ctx, id)
}

func (r *Runner) execute(runID string, req domain.ScreeningRequest) {
	ctx := r.baseCtx
	start := time.Now()

	if err := r.runs.UpdateStatus(ctx, runID, domain.RunRunning, ""); err != nil {
		r.logger.Error("failed to mark run running", zap.String("run_id", runID), zap.Error(err))
	}

	results, langErrors, err := r.screener.Screen(ctx, runID, req)
	if err != nil {
		r.logger.Error("screening run failed",
			zap.String("run_id", runID),
			zap.Error(err),
		)
		if updateErr := r.runs.UpdateStatus(ctx, runID, domain.RunFailed, err.Error()); updateErr != nil {
			r.logger.Error("failed to mark run failed", zap.String("run_id", runID), zap.Error(updateErr))
		}
		if r.metrics != nil {
			r.metrics.RecordRun("failed", time.Since(start))
		}
		return
	}

	if err := r.runs.SaveResults(ctx, runID, results, langErrors); err != nil {
		r.logger.Error("failed to save run results", zap.String("run_id", runID), zap.Error(err))
		if updateErr := r.runs.UpdateStatus(ctx, runID, domain.RunFailed, "failed to persist results"); updateErr != nil {
			r.logger.Error("failed to mark run failed", zap.String("run_id", runID), zap.Error(updateErr))
		}
		if r.metrics != nil {
			r.metrics.RecordRun("failed", time.Since(start))
		}
		return
	}

	if err := r.runs.UpdateStatus(ctx, runID, domain.RunCompleted, ""); err != nil {
		r.logger.Error("failed to mark run completed", zap.String("run_id", runID), zap.Error(err))
	}
	if r.metrics != nil {
		r.metrics.RecordRun("completed", time.Since(start))
	}
}
