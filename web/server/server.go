package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/log"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// Server serves scene listings and rendered images over HTTP
type Server struct {
	port   int
	logger log.Logger
	config renderer.Config
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	logger := log.New("server")
	config := renderer.DefaultConfig()
	config.Logger = logger
	return &Server{port: port, logger: logger, config: config}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  string  `json:"scene"`  // Scene ID (e.g., "cornell-box")
	Width  int     `json:"width"`  // Image width
	Height int     `json:"height"` // Image height
	FOV    float64 `json:"fov"`    // Field of view in degrees, 0 keeps the scene's
	Format string  `json:"format"` // "png" or "ppm"
}

// Handler returns the HTTP handler for all API endpoints
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/scenes", s.handleScenes)
	mux.HandleFunc("GET /api/render", s.handleRender)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Noticef("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the scene catalogue
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListScenes())
}

// handleRender renders a scene and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	override := scene.CameraConfig{Width: req.Width, Height: req.Height, FOV: req.FOV * math.Pi / 180}
	sc, err := scene.New(req.Scene, override)
	if errors.Is(err, scene.ErrUnknownScene) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err == nil {
		err = sc.World.Validate()
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	camera := renderer.NewCameraFromConfig(sc.Camera)
	canvas, stats, err := camera.RenderParallel(r.Context(), sc.World, s.config)
	if err != nil {
		s.logger.Warningf("Render of %s failed: %v", req.Scene, err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	contentType := "image/png"
	if req.Format == "ppm" {
		contentType = "image/x-portable-pixmap"
		err = canvas.WritePPM(&buf)
	} else {
		err = png.Encode(&buf, canvas.ToImage())
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	s.logger.Infof("Rendered %s at %dx%d in %v", req.Scene, canvas.Width(), canvas.Height(), stats.Duration.Round(time.Millisecond))
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses request parameters
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: "default", Format: "png"}

	if id := values.Get("scene"); id != "" {
		req.Scene = id
	}
	if format := values.Get("format"); format != "" {
		if format != "png" && format != "ppm" {
			return nil, fmt.Errorf("unsupported format: %s", format)
		}
		req.Format = format
	}

	// zero keeps the scene's default camera setting
	var err error
	if req.Width, err = parseIntParam(values, "width", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.FOV, err = parseFloatParam(values, "fov", 0, 1, 179); err != nil {
		return nil, err
	}

	return req, nil
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
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
