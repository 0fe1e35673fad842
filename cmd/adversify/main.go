package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kitbuilder587/adversify/internal/classify"
	classifyhttp "github.com/kitbuilder587/adversify/internal/classify/http"
	"github.com/kitbuilder587/adversify/internal/config"
	"github.com/kitbuilder587/adversify/internal/content"
	contentminio "github.com/kitbuilder587/adversify/internal/content/minio"
	"github.com/kitbuilder587/adversify/internal/content/memory"
	extracthtml "github.com/kitbuilder587/adversify/internal/extract/html"
	extractpdf "github.com/kitbuilder587/adversify/internal/extract/pdf"
	"github.com/kitbuilder587/adversify/internal/httpapi"
	"github.com/kitbuilder587/adversify/internal/metrics"
	"github.com/kitbuilder587/adversify/internal/ratelimit"
	"github.com/kitbuilder587/adversify/internal/repository/postgres"
	"github.com/kitbuilder587/adversify/internal/runner"
	"github.com/kitbuilder587/adversify/internal/search/google"
	"github.com/kitbuilder587/adversify/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	db, err := postgres.New(ctx, cfg.Database.URL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	store, err := buildStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize content store", zap.Error(err))
	}

	var classifier classify.Classifier = classifyhttp.New(classifyhttp.Config{
		URL:     cfg.Classify.URL,
		Timeout: cfg.Classify.Timeout,
	}, logger)

	screener := service.NewScreener(service.ScreenerDeps{
		Search: google.New(google.Config{
			APIKey:  cfg.Google.APIKey,
			BaseURL: cfg.Google.BaseURL,
			Timeout: cfg.Google.Timeout,
		}, logger),
		Classifier: classifier,
		Store:      store,
		Fetcher: content.NewHTTPFetcher(content.FetcherConfig{
			Timeout:      cfg.Fetch.Timeout,
			MaxBodyBytes: cfg.Fetch.MaxBodyBytes,
		}),
		HTML:        extracthtml.New(),
		PDF:         extractpdf.New(),
		Logger:      logger,
		Metrics:     m,
		BatchScores: postgres.NewBatchScoreRepo(db),
		Config: service.ScreenerConfig{
			Languages:    cfg.Languages,
			BatchKB:      cfg.Classify.BatchKB,
			DefaultDepth: cfg.Search.Depth,
		},
	})

	runs := postgres.NewRunRepo(db)
	r := runner.New(ctx, screener, runs, logger, m)

	limiter := ratelimit.New(ratelimit.Config{
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
	})

	server := httpapi.NewServer(httpapi.Config{Addr: cfg.HTTP.Addr}, r, limiter, logger, m)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			logger.Error("http server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("stopped")
}

func buildStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (content.Store, error) {
	if !cfg.Minio.Enabled {
		logger.Warn("minio disabled, downloaded content is kept in memory only")
		return memory.New(), nil
	}

	store, err := contentminio.New(contentminio.Config{
		Endpoint:  cfg.Minio.Endpoint,
		AccessKey: cfg.Minio.AccessKey,
		SecretKey: cfg.Minio.SecretKey,
		Bucket:    cfg.Minio.Bucket,
		UseSSL:    cfg.Minio.UseSSL,
	}, logger)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
