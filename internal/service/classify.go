package service

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kitbuilder587/adversify/internal/classify"
	"github.com/kitbuilder587/adversify/internal/domain"
)

// classifyFailedMsg marks items whose batch could not be scored. A non-empty
// ScoringErrors with score 0 means "not reliably scored", not "high risk".
const classifyFailedMsg = "Classification call failed"

// classifyBatch scores one batch. Scores apply to items strictly by position:
// the order of the submitted snippets is the order of the batch, and the
// classifier contract guarantees the returned scores line up with it. On any
// call failure every item in the batch gets the neutral fallback; other
// batches are unaffected.
func (s *Screener) classifyBatch(ctx context.Context, runID, lang, name string, batch domain.Batch) []domain.ScoredItem {
	if len(batch) == 0 {
		return nil
	}

	fingerprint := batchFingerprint(batch)

	// a replayed step reuses persisted scores instead of paying for the
	// classifier call again
	if s.batchScores != nil {
		if scores, err := s.batchScores.Get(ctx, runID, fingerprint); err == nil && len(scores) == len(batch) {
			if s.metrics != nil {
				s.metrics.RecordClassifyReuse()
			}
			return applyScores(batch, scores)
		}
	}

	snippets := make([]classify.Snippet, len(batch))
	for i, item := range batch {
		snippets[i] = classify.Snippet{
			Title:   item.Title,
			Snippet: item.TextBody,
			URL:     item.Link,
			Date:    item.Date,
		}
	}

	callStart := time.Now()
	resp, err := s.classifier.Classify(ctx, classify.Request{Name: name, Snippets: snippets})
	if err != nil {
		s.logger.Warn("classification failed, applying neutral scores",
			zap.String("run_id", runID),
			zap.String("language", lang),
			zap.Int("batch_size", len(batch)),
			zap.Error(err),
		)
		if s.metrics != nil {
			s.metrics.RecordClassifyRequest(lang, "error", time.Since(callStart))
			s.metrics.RecordNeutralFallback(len(batch))
		}
		return fallbackScores(batch)
	}
	if s.metrics != nil {
		s.metrics.RecordClassifyRequest(lang, "success", time.Since(callStart))
	}

	if s.batchScores != nil {
		if err := s.batchScores.Put(ctx, runID, fingerprint, resp.Scores); err != nil {
			s.logger.Warn("failed to persist batch scores",
				zap.String("run_id", runID),
				zap.Error(err),
			)
		}
	}

	return applyScores(batch, resp.Scores)
}

func applyScores(batch domain.Batch, scores []classify.Score) []domain.ScoredItem {
	out := make([]domain.ScoredItem, len(batch))
	for i, item := range batch {
		out[i] = domain.ScoredItem{
			Item:          item,
			Score:         scores[i].Score,
			Severity:      scores[i].Severity,
			ScoringErrors: scores[i].Error,
			ScoringTitle:  scores[i].Title,
		}
	}
	return out
}

func fallbackScores(batch domain.Batch) []domain.ScoredItem {
	out := make([]domain.ScoredItem, len(batch))
	for i, item := range batch {
		out[i] = domain.ScoredItem{
			Item:          item,
			Score:         0.0,
			Severity:      0.0,
			ScoringErrors: classifyFailedMsg,
			ScoringTitle:  item.Title,
		}
	}
	return out
}

// batchFingerprint identifies a batch by its member ids, stable across
// re-execution of the same run.
func batchFingerprint(batch domain.Batch) string {
	ids := make([]string, len(batch))
	for i, item := range batch {
		ids[i] = item.ID
	}
	hash := sha256.Sum256([]byte(strings.Join(ids, "\n")))
	return fmt.Sprintf("%x", hash[:16])
}
