// Package server exposes the scheduling engine over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// MaxBodyBytes caps the size of a scenario request body.
const MaxBodyBytes = 1 << 20

// Server is the seek-sim HTTP API.
type Server struct {
	router    chi.Router
	logger    logrus.FieldLogger
	startTime time.Time
	version   string
}

// Option configures optional Server settings.
type Option func(*Server)

// WithVersion sets the version string reported by /health.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.version = v
	}
}

// New creates a Server with all routes registered.
func New(logger logrus.FieldLogger, opts ...Option) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.WithField("component", "server"),
		startTime: time.Now(),
		version:   "dev",
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := s.router

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/algorithms", s.handleAlgorithms)
		r.Post("/schedule", s.handleSchedule)
	})
}
