package server

import (
	"context"
	"net/http"
	"time"

	"tangled.org/ashwam.app/langid/detect"
)

// Server serves the detection engine over HTTP
type Server struct {
	detector   *detect.Detector
	config     *Config
	startTime  time.Time
	httpServer *http.Server
}

// Config configures the server
type Config struct {
	Addr            string
	EnableWebSocket bool
	Version         string
}

// New creates a new HTTP server
func New(config *Config) *Server {
	if config.Version == "" {
		config.Version = "dev"
	}

	s := &Server{
		detector:  detect.NewDetector(),
		config:    config,
		startTime: time.Now(),
	}

	s.httpServer = &http.Server{
		Addr:    config.Addr,
		Handler: s.createHandler(),
	}

	return s
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler returns the HTTP handler (useful for tests)
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// createHandler creates the HTTP handler with all routes
func (s *Server) createHandler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot())
	mux.HandleFunc("GET /status", s.handleStatus())
	mux.HandleFunc("POST /detect", s.handleDetect())
	mux.HandleFunc("POST /detect/batch", s.handleDetectBatch())

	if s.config.EnableWebSocket {
		mux.HandleFunc("GET /ws", s.handleWebSocket())
	}

	return corsMiddleware(mux)
}

// GetStartTime returns when the server started
func (s *Server) GetStartTime() time.Time {
	return s.startTime
}
