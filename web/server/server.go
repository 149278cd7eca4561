package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/config"
	"github.com/df07/go-phong-raytracer/pkg/publish"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

const (
	minDimension = 1
	maxDimension = 2000
)

// Server handles web requests for the raytracer
type Server struct {
	config    config.Config
	publisher *publish.Publisher // nil when publishing is not configured
}

// NewServer creates a new web server. publisher may be nil.
func NewServer(cfg config.Config, publisher *publish.Publisher) *Server {
	return &Server{config: cfg, publisher: publisher}
}

// Handler returns the HTTP handler serving every endpoint
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in and file scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes(s.config.ScenesDir)
	if err != nil {
		log.Printf("Failed to list scenes: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list scenes")
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseBoolParam parses a boolean parameter from URL query
func parseBoolParam(values url.Values, key string) (bool, error) {
	value := values.Get(key)
	if value == "" {
		return false, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %s", key, value)
	}
	return parsed, nil
}
