// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/improve"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/types"
)

// Improver rewrites resume sections; improve.Service implements it.
type Improver interface {
	Summary(ctx context.Context, rec *types.ResumeRecord) (string, error)
	ExperienceBullets(ctx context.Context, rec *types.ResumeRecord, entryID uuid.UUID) ([]string, error)
	ProjectBullets(ctx context.Context, rec *types.ResumeRecord, entryID uuid.UUID) ([]string, error)
}

// Exporter produces PDF documents; export.Exporter implements it.
type Exporter interface {
	Export(ctx context.Context, rec types.ResumeRecord, templateID string) (*export.Document, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          DBClient
	dbConn      *db.DB
	exporter    Exporter
	improver    Improver
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// Config holds server configuration
type Config struct {
	Port         int
	DatabaseURL  string
	GeminiAPIKey string
	GeminiModel  string
	ChromePath   string
}

// New creates a new server instance wired to real collaborators.
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	var improver Improver
	if cfg.GeminiAPIKey != "" {
		client, err := improve.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create improve client: %w", err)
		}
		improver = improve.NewService(client)
	}

	renderer := export.NewChromedpRenderer()
	if cfg.ChromePath != "" {
		renderer.ChromePath = cfg.ChromePath
	}

	s, err := newServer(database, export.NewExporter(renderer), improver)
	if err != nil {
		database.Close()
		return nil, err
	}
	s.dbConn = database
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // headless Chrome export can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// newServer builds a server around its collaborators without binding a port.
// Tests construct it directly with fakes.
func newServer(dbClient DBClient, exporter Exporter, improver Improver) (*Server, error) {
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	s := &Server{
		db:       dbClient,
		exporter: exporter,
		improver: improver,
	}
	s.userService = NewUserService(dbClient, passwordConfig)
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)
	return s, nil
}

// routes builds the API router.
func (s *Server) routes() http.Handler {
	requireAuth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /auth/signup", s.authHandler.Signup)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.HandleFunc("POST /auth/logout", s.authHandler.Logout)
	mux.Handle("GET /auth/me", requireAuth(http.HandlerFunc(s.authHandler.Me)))

	mux.Handle("GET /resumes", requireAuth(http.HandlerFunc(s.handleListResumes)))
	mux.Handle("POST /resumes", requireAuth(http.HandlerFunc(s.handleCreateResume)))
	mux.Handle("GET /resumes/{id}", requireAuth(http.HandlerFunc(s.handleGetResume)))
	mux.Handle("PUT /resumes/{id}", requireAuth(http.HandlerFunc(s.handleUpdateResume)))
	mux.Handle("DELETE /resumes/{id}", requireAuth(http.HandlerFunc(s.handleDeleteResume)))
	mux.Handle("GET /resumes/{id}/export", requireAuth(http.HandlerFunc(s.handleExportResume)))

	mux.Handle("POST /ai/improve", requireAuth(http.HandlerFunc(s.handleImprove)))

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	if s.dbConn != nil {
		s.dbConn.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.rateLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		clientID := s.extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// writeError writes an error JSON response: "error" carries the detail,
// "message" the user-facing text for the status.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{
		"error":   detail,
		"message": UserMessage(status),
	})
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	writeJSON(w, http.StatusTooManyRequests, response)
}
