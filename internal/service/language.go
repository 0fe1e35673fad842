package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kitbuilder587/adversify/internal/domain"
	"github.com/kitbuilder587/adversify/internal/metadata"
	"github.com/kitbuilder587/adversify/internal/search"
)

// screenLanguage runs the whole pipeline for one language: search, extraction
// fan-out, batching, classification fan-out. Only the search step can fail
// outward; everything after it degrades per item or per batch.
func (s *Screener) screenLanguage(ctx context.Context, runID, lang, name string, depth int) ([]domain.ScoredItem, error) {
	hits, err := s.searchLanguage(ctx, lang, name, depth)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("search finished",
		zap.String("run_id", runID),
		zap.String("language", lang),
		zap.Int("hits", len(hits)),
	)

	// extraction fan-out: branches finish in any order, the indexed slice
	// keeps items in their original search order
	items := make([]domain.Item, len(hits))
	g, gctx := errgroup.WithContext(ctx)
	for i, hit := range hits {
		g.Go(func() error {
			items[i] = s.processItem(gctx, metadata.Normalize(hit))
			return nil
		})
	}
	g.Wait()

	batches := MakeBatches(items, s.maxBatchBytes())

	scored := make([][]domain.ScoredItem, len(batches))
	g, gctx = errgroup.WithContext(ctx)
	for i, batch := range batches {
		g.Go(func() error {
			scored[i] = s.classifyBatch(gctx, runID, lang, name, batch)
			return nil
		})
	}
	g.Wait()

	var results []domain.ScoredItem
	for _, batch := range scored {
		results = append(results, batch...)
	}
	return results, nil
}

// searchLanguage pages through the search engine up to depth pages and
// returns the flattened hits. Failures propagate: a broken search means the
// whole language query is suspect, partial pagination would be misleading.
func (s *Screener) searchLanguage(ctx context.Context, lang, name string, depth int) ([]search.RawHit, error) {
	lc := s.config.Languages[lang]
	query := fmt.Sprintf("%q AND (%s)", name, lc.SearchString)

	var hits []search.RawHit
	start := 1
	for page := 1; page <= depth; page++ {
		searchStart := time.Now()
		p, err := s.search.SearchPage(ctx, lc.SearchEngineID, query, start)
		if err != nil {
			if s.metrics != nil {
				s.metrics.RecordSearchRequest(lang, "error", time.Since(searchStart))
			}
			return nil, fmt.Errorf("search page %d: %w", page, err)
		}
		if s.metrics != nil {
			s.metrics.RecordSearchRequest(lang, "success", time.Since(searchStart))
		}

		hits = append(hits, p.Hits...)
		if p.NextStart == 0 {
			break
		}
		start = p.NextStart
	}

	return hits, nil
}
