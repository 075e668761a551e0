package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/log"
	"github.com/df07/go-interactive-raytracer/pkg/renderer"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

const (
	consoleCapacity = 100
	maxRegionRadius = 50
)

var logger = log.New("server")

// Server exposes one render context over HTTP.
// Requests are serialized because the render context is single threaded.
type Server struct {
	addr    string
	mu      sync.Mutex
	tracer  *renderer.Raytracer
	console *Console
}

// NewServer creates a web server with a fresh render context
func NewServer(addr string, config renderer.Config) (*Server, error) {
	console := NewConsole(consoleCapacity, logger)
	tracer, err := renderer.NewRaytracer(config, console)
	if err != nil {
		return nil, err
	}
	return &Server{addr: addr, tracer: tracer, console: console}, nil
}

// Stats represents render statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	SampledPixels  int     `json:"sampledPixels"`
	TotalSamples   int     `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	MinSamples     int     `json:"minSamples"`
	MaxSamplesUsed int     `json:"maxSamplesUsed"`
}

// FrameResponse is returned by the frame and region endpoints
type FrameResponse struct {
	SceneID   int   `json:"sceneId"`
	Samples   int   `json:"samples"`
	ElapsedMs int64 `json:"elapsedMs"`
	Stats     Stats `json:"stats"`
}

// SceneInfo describes one catalog entry
type SceneInfo struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/scenes", s.handleScenes)
	mux.HandleFunc("POST /api/scene", s.handleScene)
	mux.HandleFunc("POST /api/frame", s.handleFrame)
	mux.HandleFunc("POST /api/region", s.handleRegion)
	mux.HandleFunc("GET /api/pick", s.handlePick)
	mux.HandleFunc("POST /api/reset", s.handleReset)
	mux.HandleFunc("GET /api/buffer", s.handleBuffer)
	mux.HandleFunc("GET /api/image.png", s.handleImage)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/console", s.handleConsole)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	logger.Noticef("Starting web server on http://%s", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	catalog := scene.Catalog()
	infos := make([]SceneInfo, 0, len(catalog))
	for _, info := range catalog {
		infos = append(infos, SceneInfo{ID: info.ID, Name: info.Name, Description: info.Description})
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	id, err := requireIntParam(r.URL.Query(), "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	err = s.tracer.LoadScene(id)
	current := s.tracer.Scene()
	s.mu.Unlock()

	if err != nil {
		s.console.Warningf("Scene load failed: %v", err)
		status := http.StatusInternalServerError
		if errors.Is(err, scene.ErrUnknownScene) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, SceneInfo{ID: current.ID, Name: current.Name})
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	eye, hasEye, err := parseEye(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	start := time.Now()
	if hasEye {
		s.tracer.RenderFrameFrom(eye)
	} else {
		s.tracer.RenderFrame()
	}
	response := s.frameResponse(s.tracer.Config().Width*s.tracer.Config().Height, start)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleRegion(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	u, err := requireFloatParam(values, "u")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	v, err := requireFloatParam(values, "v")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	radius, err := parseFloatParam(values, "radius", 3, 0, maxRegionRadius)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	start := time.Now()
	drawn := s.tracer.AccumulateRegion(u, v, radius)
	response := s.frameResponse(drawn, start)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handlePick(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	u, err := requireFloatParam(values, "u")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	v, err := requireFloatParam(values, "v")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	special := s.tracer.Pick(u, v)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]bool{"special": special})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.tracer.ResetAccumulation()
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// handleBuffer writes the display bytes, RGBA with the bottom row first
func (s *Server) handleBuffer(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	config := s.tracer.Config()
	buffer := append([]byte(nil), s.tracer.DisplayBuffer()...)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("X-Frame-Width", strconv.Itoa(config.Width))
	w.Header().Set("X-Frame-Height", strconv.Itoa(config.Height))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer)
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	img := s.tracer.FrameBuffer().Image()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	if err := png.Encode(w, img); err != nil {
		logger.Errorf("Failed to encode PNG: %v", err)
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	stats := toStats(s.tracer.FrameBuffer().Stats())
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.console.Messages())
}

// frameResponse must be called with the lock held
func (s *Server) frameResponse(samples int, start time.Time) FrameResponse {
	return FrameResponse{
		SceneID:   s.tracer.Scene().ID,
		Samples:   samples,
		ElapsedMs: time.Since(start).Milliseconds(),
		Stats:     toStats(s.tracer.FrameBuffer().Stats()),
	}
}

func toStats(stats renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:    stats.TotalPixels,
		SampledPixels:  stats.SampledPixels,
		TotalSamples:   stats.TotalSamples,
		AverageSamples: stats.AverageSamples,
		MinSamples:     stats.MinSamples,
		MaxSamplesUsed: stats.MaxSamplesUsed,
	}
}

// parseEye reads an optional camera position. Either all of x, y and z are given or none.
func parseEye(values url.Values) (core.Vec3, bool, error) {
	present := 0
	for _, key := range []string{"x", "y", "z"} {
		if values.Get(key) != "" {
			present++
		}
	}
	if present == 0 {
		return core.Vec3{}, false, nil
	}
	if present != 3 {
		return core.Vec3{}, false, fmt.Errorf("camera position needs x, y and z")
	}

	var coords [3]float64
	for i, key := range []string{"x", "y", "z"} {
		value, err := requireFloatParam(values, key)
		if err != nil {
			return core.Vec3{}, false, err
		}
		coords[i] = value
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), true, nil
}

func requireIntParam(values url.Values, key string) (int, error) {
	if values.Get(key) == "" {
		return 0, fmt.Errorf("missing %s", key)
	}
	return parseIntParam(values, key, 0, math.MinInt, math.MaxInt)
}

func requireFloatParam(values url.Values, key string) (float64, error) {
	if values.Get(key) == "" {
		return 0, fmt.Errorf("missing %s", key)
	}
	return parseFloatParam(values, key, 0, -math.MaxFloat64, math.MaxFloat64)
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

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(parsed) {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Errorf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
