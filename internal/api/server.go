// Package api serves wordcalc over HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/zephyrtronium/wordcalc"
	"github.com/zephyrtronium/wordcalc/internal/config"
)

// Server is the HTTP API server for wordcalc.
type Server struct {
	router chi.Router
	calc   *wordcalc.Context
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server. calc supplies the
// functions and precision used for every request.
func NewServer(calc *wordcalc.Context, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		calc: calc,
		log:  log,
		cfg:  cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}
		r.Use(middleware.AllowContentType("application/json"))

		r.Post("/api/number", s.handleNumber)
		r.Post("/api/evaluate", s.handleEvaluate)
		r.Post("/api/normalize", s.handleNormalize)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
