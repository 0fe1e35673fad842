// Package httpapi is the web front door: start a screening run, poll its
// status, fetch ranked results.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kitbuilder587/adversify/internal/domain"
	"github.com/kitbuilder587/adversify/internal/metrics"
	"github.com/kitbuilder587/adversify/internal/ratelimit"
	"github.com/kitbuilder587/adversify/internal/runner"
)

type Config struct {
	Addr string
}

type Server struct {
	runner  *runner.Runner
	limiter *ratelimit.Limiter
	logger  *zap.Logger
	metrics *metrics.Metrics
	server  *http.Server
}

func NewServer(cfg Config, r *runner.Runner, limiter *ratelimit.Limiter, logger *zap.Logger, m *metrics.Metrics) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}

	s := &Server{
		runner:  r,
		limiter: limiter,
		logger:  logger,
		metrics: m,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api/v1")
	api.POST("/screenings", s.rateLimited, s.handleStart)
	api.GET("/screenings/:id", s.handleStatus)

	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) Run() error {
	s.logger.Info("http server listening", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type startRequest struct {
	Name      string   `json:"name" binding:"required"`
	Depth     int      `json:"depth"`
	Languages []string `json:"languages"`
}

type startResponse struct {
	ID        string `json:"id"`
	StatusURL string `json:"status_url"`
}

func (s *Server) handleStart(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "json body with `name` required"})
		return
	}

	id, err := s.runner.Start(c.Request.Context(), domain.ScreeningRequest{
		Name:      req.Name,
		Depth:     req.Depth,
		Languages: req.Languages,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyName),
			errors.Is(err, domain.ErrNameTooLong),
			errors.Is(err, domain.ErrInvalidDepth):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			s.logger.Error("failed to start run", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusAccepted, startResponse{
		ID:        id,
		StatusURL: "/api/v1/screenings/" + id,
	})
}

type statusResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Status         domain.RunStatus    `json:"status"`
	Results        []domain.ScoredItem `json:"results,omitempty"`
	LanguageErrors map[string]string   `json:"language_errors,omitempty"`
	Error          string              `json:"error,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty"`
}

func (s *Server) handleStatus(c *gin.Context) {
	run, err := s.runner.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		s.logger.Error("failed to load run", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	resp := statusResponse{
		ID:          run.ID,
		Name:        run.Name,
		Status:      run.Status,
		Error:       run.Error,
		CreatedAt:   run.CreatedAt,
		CompletedAt: run.CompletedAt,
	}
	if run.Status == domain.RunCompleted {
		resp.Results = run.Results
		resp.LanguageErrors = run.LanguageErrors
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) rateLimited(c *gin.Context) {
	if s.limiter == nil {
		return
	}

	client := c.ClientIP()
	if !s.limiter.Allow(client) {
		if s.metrics != nil {
			s.metrics.RecordRateLimitHit(client)
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
	}
}
