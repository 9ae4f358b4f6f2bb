// Package server exposes the parsed model over HTTP: the dashboard,
// upload-and-parse, edits, and export downloads. The inference engine
// stays pure; this package owns the mutable "current model" state and
// serializes access to it.
package server

import (
	"io/fs"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"raciboard/pkg/raci"
	"raciboard/pkg/raci/models"
	"raciboard/web"
)

// Server is the dashboard HTTP application.
type Server struct {
	router *chi.Mux
	log    *zap.Logger
	opts   raci.Options

	maxUpload int64 // bytes

	mu    sync.Mutex
	model *models.Model
}

// New builds a server, optionally seeded with an already-parsed model.
func New(log *zap.Logger, opts raci.Options, initial *models.Model, maxUploadMB int64) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		log:       log,
		opts:      opts,
		maxUpload: maxUploadMB << 20,
		model:     initial,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server on addr until it fails.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("dashboard listening", zap.String("addr", "http://"+addr))
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(s.requestLogger)
}

func (s *Server) setupRoutes() {
	s.router.Get("/api/data", s.handleData)
	s.router.Post("/api/upload", s.handleUpload)
	s.router.Post("/api/export/html", s.handleExportHTML)
	s.router.Post("/api/export/bikit", s.handleExportKit)
	s.router.Put("/api/raci/cell", s.handleUpdateCell)
	s.router.Put("/api/raci/maturity", s.handleUpdateMaturity)

	assets, err := fs.Sub(web.FS, ".")
	if err == nil {
		s.router.Handle("/*", http.FileServer(http.FS(assets)))
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()))
	})
}

// currentModel returns the loaded model, or nil.
func (s *Server) currentModel() *models.Model {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model
}

func (s *Server) setModel(m *models.Model) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = m
}
