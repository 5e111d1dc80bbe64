package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/esg-navigator/internal/catalog"
	"github.com/jonathan/esg-navigator/internal/config"
	"github.com/jonathan/esg-navigator/internal/recommend"
	"github.com/jonathan/esg-navigator/internal/server/middleware"
	"github.com/jonathan/esg-navigator/internal/server/ratelimit"
	"github.com/sirupsen/logrus"
)

// Server represents the HTTP server
type Server struct {
	httpServer      *http.Server
	handler         http.Handler
	catalog         *catalog.Service
	scorer          *recommend.Scorer
	logger          *logrus.Logger
	metrics         *Metrics
	rateLimiter     *ratelimit.Limiter
	corsOrigin      string
	minQueryLength  int
	shutdownTimeout time.Duration
}

// New creates a new server instance serving the given catalog.
func New(cfg *config.Config, svc *catalog.Service, scorer *recommend.Scorer, logger *logrus.Logger) *Server {
	s := &Server{
		catalog:         svc,
		scorer:          scorer,
		logger:          logger,
		metrics:         NewMetrics(),
		rateLimiter:     ratelimit.NewLimiter(ratelimit.FromConfig(cfg.RateLimit)),
		corsOrigin:      cfg.Server.CORSOrigin,
		minQueryLength:  max(cfg.Search.MinQueryLength, 1),
		shutdownTimeout: cfg.Server.ShutdownTimeout,
	}
	s.metrics.SetDatasetRecords(svc.Counts())

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/frameworks", s.handleListFrameworks)
	mux.HandleFunc("GET /api/frameworks/stats", s.handleFrameworkStats)
	mux.HandleFunc("GET /api/frameworks/{id}", s.handleGetFramework)
	mux.HandleFunc("GET /api/frameworks/{id}/related", s.handleRelatedFrameworks)
	mux.HandleFunc("GET /api/frameworks/{id}/resources", s.handleFrameworkResources)
	mux.HandleFunc("GET /api/resources", s.handleListResources)
	mux.HandleFunc("GET /api/selector/questions", s.handleSelectorQuestions)
	mux.HandleFunc("POST /api/selector/recommend", s.handleRecommend)
	mux.HandleFunc("GET /api/comparisons", s.handleComparisons)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", s.metrics.Handler())

	s.handler = middleware.Recovery(logger)(
		s.withRateLimit(
			middleware.RequestLogger(logger, s.metrics)(
				s.withCORS(mux))))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      s.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s
}

// Handler returns the fully wrapped request handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM,
// then shuts down gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is cancelled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", s.httpServer.Addr).Info("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.rateLimiter.Stop()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	if err := s.Shutdown(context.Background()); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests,
// bounded by the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	// Stop rate limiter cleanup goroutine
	defer s.rateLimiter.Stop()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, clientID, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status and record counts
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"records": s.catalog.Counts(),
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithError(err).Error("failed to encode JSON response")
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"message": message})
}

// writeError maps err to a status code. Internal errors are logged and
// reported with a generic message.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.WithError(err).Error("request failed")
		s.errorResponse(w, status, "Internal server error")
		return
	}

	var verr *ErrValidation
	if errors.As(err, &verr) {
		s.errorResponse(w, status, verr.Message)
		return
	}
	s.errorResponse(w, status, err.Error())
}

// extractClientID extracts the client identifier from the request.
// It uses the IP address from RemoteAddr; forwarded headers are not trusted.
func extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, clientID string, info ratelimit.Info) {
	response := map[string]any{
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["resetAt"] = info.ResetTime.Format(time.RFC3339)
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds()) + 1
		response["retryAfter"] = seconds
		w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
	}

	s.logger.WithFields(logrus.Fields{
		"client": clientID,
		"limit":  info.Limit,
	}).Warn("rate limit exceeded")

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
