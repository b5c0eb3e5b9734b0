package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/resume-radar/internal/parser"
	"github.com/ziadkadry99/resume-radar/internal/store"
)

// Config holds API server configuration.
type Config struct {
	Addr     string // listen address, e.g. ":8000"
	DataDir  string // directory for the SQLite DB and saved uploads
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server is the resume analysis API server.
type Server struct {
	cfg        Config
	store      *store.Store
	analyzer   parser.ResumeAnalyzer
	hub        *statusHub
	router     chi.Router
	httpServer *http.Server
}

// New creates the API server with all dependencies.
func New(cfg Config, st *store.Store, analyzer parser.ResumeAnalyzer) *Server {
	s := &Server{
		cfg:      cfg,
		store:    st,
		analyzer: analyzer,
		hub:      newStatusHub(),
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
	r.Use(middleware.Timeout(120 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/health", s.handleHealth)
	r.Post("/upload-resume", s.handleUpload)
	r.Get("/resumes", s.handleList)
	r.Get("/resume/{id}", s.handleDetail)
	r.Delete("/resume/{id}", s.handleDelete)
	r.Get("/ws/status", s.hub.handleWebSocket)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// uploadsDir returns the directory saved PDFs live in, creating it on demand.
func (s *Server) uploadsDir() (string, error) {
	dir := filepath.Join(s.cfg.DataDir, "uploads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Start begins listening on the configured address.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("resume-radar API listening on %s", s.cfg.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
