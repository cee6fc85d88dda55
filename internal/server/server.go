// Package server provides the HTTP API for the ad copy generation service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/maya/adcopy-agent/internal/config"
	"github.com/maya/adcopy-agent/internal/db"
	"github.com/maya/adcopy-agent/internal/server/middleware"
	"github.com/maya/adcopy-agent/internal/server/ratelimit"
)

// Config holds the server configuration.
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	httpServer  *http.Server
	config      Config
	db          *db.DB
	jwtService  *JWTService
	passwordCfg *config.PasswordConfig
	rateLimiter *ratelimit.Limiter
}

// New creates a server with routes registered. The database connection is
// optional; endpoints that need it return 503 when it is unavailable.
func New(ctx context.Context, cfg Config) (*Server, error) {
	jwtCfg, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load JWT config: %w", err)
	}

	passwordCfg, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load password config: %w", err)
	}

	rateCfg, err := ratelimit.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load rate limit config: %w", err)
	}

	s := &Server{
		config:      cfg,
		jwtService:  NewJWTService(jwtCfg),
		passwordCfg: passwordCfg,
		rateLimiter: ratelimit.NewLimiter(rateCfg),
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("Warning: failed to connect to database: %v. Continuing without persistence.", err)
		} else {
			s.db = database
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/v1/auth/login", s.handleLogin)

	auth := middleware.AuthMiddleware(s.jwtService)
	mux.Handle("/api/v1/generate", auth(http.HandlerFunc(s.handleGenerate)))
	mux.Handle("/api/v1/runs", auth(http.HandlerFunc(s.handleListRuns)))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.withRateLimit(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// Start runs the server until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		s.rateLimiter.Stop()
		if s.db != nil {
			s.db.Close()
		}

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	}
}

// withLogging logs each request with method, path, status, and duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

// withCORS adds CORS headers and handles preflight requests.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := os.Getenv("CORS_ALLOWED_ORIGIN")
		if origin == "" {
			origin = "*"
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withRateLimit enforces per-client rate limits. Health checks are exempt.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		allowed, info := s.rateLimiter.Allow(clientKey(r))
		setRateLimitHeaders(w, info)
		if !allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(info.RetryAfter.Seconds())))
			errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey identifies the client for rate limiting. Rate limiting runs
// before authentication, so the remote address is all we have.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func setRateLimitHeaders(w http.ResponseWriter, info *ratelimit.Info) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func jsonResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}
