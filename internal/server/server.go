// Package server provides the HTTP server for the Mudra sign recognition system.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/server/api"
	"github.com/ayusman/mudra/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	Camera    capture.Camera
	Status    StatusProvider
}

// Server represents the HTTP server for the Mudra application.
type Server struct {
	config      Config
	mux         *http.ServeMux
	start       time.Time
	recognition *RecognitionHandler
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	// Register transcript API handler if Store is configured
	if s.config.Store != nil {
		transcriptHandler := api.NewTranscriptHandler(s.config.Store)
		s.mux.Handle("/api/transcripts", transcriptHandler)
		s.mux.Handle("/api/transcripts/", transcriptHandler)
	}

	// Register camera stream endpoint if Camera is configured
	if s.config.Camera != nil {
		streamHandler := NewStreamHandler(s.config.Camera)
		s.mux.Handle("/api/stream", streamHandler)
	}

	// Register recognition WebSocket endpoint if a status provider is configured
	if s.config.Status != nil {
		s.recognition = NewRecognitionHandler(s.config.Status)
		s.mux.Handle("/api/recognition", s.recognition)
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}

// Close stops the background broadcast goroutine, if one was started.
func (s *Server) Close() {
	if s.recognition != nil {
		s.recognition.Close()
	}
}
