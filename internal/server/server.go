package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-booster/internal/assistant"
	"github.com/jonathan/resume-booster/internal/export"
	"github.com/jonathan/resume-booster/internal/githubimport"
	"github.com/jonathan/resume-booster/internal/llm"
	"github.com/jonathan/resume-booster/internal/server/ratelimit"
	"github.com/jonathan/resume-booster/internal/store"
)

// Config holds server configuration.
type Config struct {
	Port         int
	GeminiAPIKey string
	GeminiModel  string
	DataDir      string
	GithubAPIURL string
	PrintTimeout time.Duration
}

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	rateLimiter *ratelimit.Limiter
	validate    *validator.Validate

	llm        llm.Client
	importer   *githubimport.Importer
	transcript *assistant.Transcript
	store      store.Store

	// printPDF and browserAvailable are swappable so handler tests do not
	// need Chrome installed.
	printPDF         func(ctx context.Context, html string, timeout time.Duration) ([]byte, error)
	browserAvailable func() bool
	printTimeout     time.Duration
}

// New creates a new server instance. The Gemini client is optional: with
// no API key configured the gemini endpoints report the missing key
// instead of the server refusing to start.
func New(cfg Config) (*Server, error) {
	s := &Server{
		validate:         validator.New(),
		importer:         &githubimport.Importer{BaseURL: cfg.GithubAPIURL},
		printPDF:         export.PrintPDF,
		browserAvailable: browserInstalled,
		printTimeout:     cfg.PrintTimeout,
	}
	if s.printTimeout <= 0 {
		s.printTimeout = export.DefaultPrintTimeout
	}

	if cfg.DataDir != "" {
		s.store = store.NewFileStore(cfg.DataDir)
	} else {
		s.store = store.NewMemStore()
	}
	s.transcript = assistant.NewTranscript(s.store)

	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.llm = client
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // headless printing can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes registers every API endpoint.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/exports", s.handleExportHub)

	mux.HandleFunc("POST /api/gemini/refine", s.handleGeminiRefine)
	mux.HandleFunc("POST /api/gemini/compile", s.handleGeminiCompile)

	mux.HandleFunc("POST /api/resume/score", s.handleResumeScore)
	mux.HandleFunc("POST /api/resume/preview", s.handleResumePreview)
	mux.HandleFunc("POST /api/resume/export/docx", s.handleResumeExportDOCX)
	mux.HandleFunc("POST /api/resume/export/pdf", s.handleResumeExportPDF)
	mux.HandleFunc("POST /api/resume/share", s.handleResumeShare)
	mux.HandleFunc("GET /api/resume/share", s.handleResumeShareDecode)

	mux.HandleFunc("POST /api/portfolio/export/html", s.handlePortfolioExportHTML)
	mux.HandleFunc("POST /api/portfolio/export/jsx", s.handlePortfolioExportJSX)
	mux.HandleFunc("POST /api/portfolio/share", s.handlePortfolioShare)
	mux.HandleFunc("GET /api/portfolio/share", s.handlePortfolioShareDecode)

	mux.HandleFunc("POST /api/github/import", s.handleGithubImport)
	mux.HandleFunc("POST /api/assistant/message", s.handleAssistantMessage)

	return mux
}

// Start begins listening and blocks until SIGINT/SIGTERM.
func (s *Server) Start() error {
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

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.llm != nil {
		_ = s.llm.Close()
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
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

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// decodeBody decodes and validates a JSON request body.
func (s *Server) decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	if err := s.validate.Struct(v); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return &ErrValidation{Field: errs[0].Field(), Message: "failed " + errs[0].Tag() + " validation"}
		}
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// extractClientID extracts the client identifier (IP) from the request.
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

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
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

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

// browserInstalled reports whether a Chrome-family binary is on PATH.
func browserInstalled() bool {
	for _, name := range []string{
		"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "headless-shell", "chrome",
	} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}
