package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/molembed/molembed/internal/viewer"
)

// Config holds preview server configuration.
type Config struct {
	Addr           string   // listen address, e.g. "127.0.0.1:8475"
	GalleryDir     string   // directory containing the generated gallery
	AllowedOrigins []string // CORS origins; empty means localhost only
}

// Server previews a generated gallery and exposes the fragment and
// diagram rendering APIs.
type Server struct {
	cfg        Config
	events     *viewer.EventBus
	router     chi.Router
	httpServer *http.Server
}

// New creates a preview server. The event bus may be nil, in which case
// the /ws/events endpoint reports events from a bus created here.
func New(cfg Config, events *viewer.EventBus) *Server {
	if events == nil {
		events = viewer.NewEventBus()
	}
	s := &Server{
		cfg:    cfg,
		events: events,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if len(s.cfg.AllowedOrigins) > 0 {
		corsOpts.AllowedOrigins = s.cfg.AllowedOrigins
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Rendering APIs.
	r.Post("/api/fragment", s.handleFragment)
	r.Post("/api/diagram", s.handleDiagram)
	r.Get("/ws/events", s.handleEvents)

	// Static gallery files.
	if s.cfg.GalleryDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.cfg.GalleryDir)))
	}

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Events returns the viewer event bus the server publishes to.
func (s *Server) Events() *viewer.EventBus { return s.events }

// Start begins listening on the configured address.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("molembed server listening on %s", s.cfg.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
