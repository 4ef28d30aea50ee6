package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dgallion1/tocgen/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Builder runs a publication build. *pipeline.Pipeline satisfies it.
type Builder interface {
	Build(ctx context.Context) (*pipeline.Result, error)
	Write(res *pipeline.Result) (string, error)
}

// Server is the HTTP preview server for tocgen.
type Server struct {
	router  chi.Router
	builder Builder
	log     *slog.Logger
	apiKey  string
}

// NewServer creates and configures the HTTP server. An empty apiKey leaves
// the build endpoint open.
func NewServer(builder Builder, log *slog.Logger, apiKey string) *Server {
	s := &Server{
		builder: builder,
		log:     log,
		apiKey:  apiKey,
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
	r.Get("/toc.html", s.handleTOC)
	r.Get("/api/outline", s.handleOutline)

	r.Group(func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(AuthMiddleware(s.apiKey, s.log))
		}
		r.Post("/api/build", s.handleBuild)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
