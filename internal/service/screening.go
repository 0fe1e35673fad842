package service

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kitbuilder587/adversify/internal/classify"
	"github.com/kitbuilder587/adversify/internal/config"
	"github.com/kitbuilder587/adversify/internal/content"
	"github.com/kitbuilder587/adversify/internal/domain"
	"github.com/kitbuilder587/adversify/internal/extract"
	"github.com/kitbuilder587/adversify/internal/metrics"
	"github.com/kitbuilder587/adversify/internal/repository"
	"github.com/kitbuilder587/adversify/internal/search"
)

type ScreenerConfig struct {
	Languages    map[string]config.LanguageConfig
	BatchKB      int // classification batch threshold, KB-like units (x1000 bytes)
	DefaultDepth int
}

// ScreenerDeps - dependencies for the Screener.
type ScreenerDeps struct {
	Search     search.PageClient
	Classifier classify.Classifier
	Store      content.Store
	Fetcher    content.Fetcher
	HTML       extract.Extractor
	PDF        extract.Extractor
	Logger     *zap.Logger
	Metrics    *metrics.Metrics
	Config     ScreenerConfig

	// optional: persisted batch scores so a replayed run does not re-submit
	// an already-paid-for classification call
	BatchScores repository.BatchScoreRepository
}

// Screener runs a full adverse-media screening: per-language search, content
// extraction fan-out, size-bounded classification batches, merged ranking.
type Screener struct {
	search      search.PageClient
	classifier  classify.Classifier
	store       content.Store
	fetcher     content.Fetcher
	html        extract.Extractor
	pdf         extract.Extractor
	batchScores repository.BatchScoreRepository
	logger      *zap.Logger
	metrics     *metrics.Metrics
	config      ScreenerConfig
}

func NewScreener(deps ScreenerDeps) *Screener {
	if deps.Config.BatchKB == 0 {
		deps.Config.BatchKB = 300
	}
	if deps.Config.DefaultDepth == 0 {
		deps.Config.DefaultDepth = domain.DefaultDepth
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &Screener{
		search:      deps.Search,
		classifier:  deps.Classifier,
		store:       deps.Store,
		fetcher:     deps.Fetcher,
		html:        deps.HTML,
		pdf:         deps.PDF,
		batchScores: deps.BatchScores,
		logger:      deps.Logger,
		metrics:     deps.Metrics,
		config:      deps.Config,
	}
}

// Screen executes one run and returns the merged result set ordered by score
// descending, plus per-language search errors. A failed language branch is
// isolated: its error is recorded and the other branches still contribute.
// Screen itself fails only when every selected branch failed.
func (s *Screener) Screen(ctx context.Context, runID string, req domain.ScreeningRequest) ([]domain.ScoredItem, map[string]string, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}
	req.Sanitize()

	if len(s.config.Languages) == 0 {
		s.logger.Error("no languages configured, returning empty result set")
		return []domain.ScoredItem{}, nil, nil
	}

	languages := s.selectLanguages(req.Languages)
	if len(languages) == 0 {
		return []domain.ScoredItem{}, nil, nil
	}

	if s.metrics != nil {
		s.metrics.IncRunsInFlight()
		defer s.metrics.DecRunsInFlight()
	}

	s.logger.Info("starting screening",
		zap.String("run_id", runID),
		zap.Int("name_length", len(req.Name)),
		zap.Int("depth", req.Depth),
		zap.Strings("languages", languages),
	)

	perLanguage := make([][]domain.ScoredItem, len(languages))
	langErrors := make(map[string]string)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for i, lang := range languages {
		g.Go(func() error {
			results, err := s.screenLanguage(gctx, runID, lang, req.Name, req.Depth)
			if err != nil {
				s.logger.Error("language branch failed",
					zap.String("run_id", runID),
					zap.String("language", lang),
					zap.Error(err),
				)
				mu.Lock()
				langErrors[lang] = err.Error()
				mu.Unlock()
				return nil
			}
			perLanguage[i] = results
			return nil
		})
	}
	g.Wait()

	if len(langErrors) == len(languages) {
		return nil, langErrors, domain.ErrAllFailed
	}

	// flatten in submission order, then rank; the stable sort keeps discovery
	// order for equal scores
	var merged []domain.ScoredItem
	for _, results := range perLanguage {
		merged = append(merged, results...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	s.logger.Info("screening finished",
		zap.String("run_id", runID),
		zap.Int("results", len(merged)),
		zap.Int("failed_languages", len(langErrors)),
	)

	return merged, langErrors, nil
}

// selectLanguages intersects the requested languages with the configured set.
// An empty request means every configured language, in a deterministic order.
func (s *Screener) selectLanguages(requested []string) []string {
	if len(requested) == 0 {
		all := make([]string, 0, len(s.config.Languages))
		for lang := range s.config.Languages {
			all = append(all, lang)
		}
		sort.Strings(all)
		return all
	}

	var selected []string
	for _, lang := range requested {
		if _, ok := s.config.Languages[lang]; !ok {
			s.logger.Warn("requested language not configured, skipping",
				zap.String("language", lang),
			)
			continue
		}
		selected = append(selected, lang)
	}
	return selected
}

func (s *Screener) maxBatchBytes() int {
	return s.config.BatchKB * 1000
}
