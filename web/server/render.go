package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string        // Scene ID, as listed by /api/scenes
	Width   int           // Image width
	Height  int           // Image height
	Format  canvas.Format // Response encoding
	Scale   int           // Integer upscale factor for png/jpeg
	Publish bool          // Also upload the image to S3
}

// parseRenderRequest parses request parameters, falling back to the server configuration
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: "default", Format: s.config.Format}

	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", s.config.Width, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", s.config.Height, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.Scale, err = parseIntParam(query, "scale", s.config.Scale, 1, 16); err != nil {
		return nil, err
	}
	if format := query.Get("format"); format != "" {
		if req.Format, err = canvas.ParseFormat(format); err != nil {
			return nil, err
		}
	}
	if req.Publish, err = parseBoolParam(query, "publish"); err != nil {
		return nil, err
	}

	return req, nil
}

// handleRender renders a scene and responds with the encoded image.
// The render ID and statistics are returned in response headers.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "use GET")
		return
	}

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	if req.Publish && s.publisher == nil {
		writeError(w, http.StatusBadRequest, "publishing is not configured")
		return
	}

	sceneObj, err := scene.Resolve(req.Scene, s.config.ScenesDir)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scene.ErrUnknownScene) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}

	renderID := uuid.NewString()
	logger := NewWebLogger(renderID, nil)

	rt, err := renderer.NewRenderer(sceneObj, renderer.Config{
		Width:      req.Width,
		Height:     req.Height,
		TileSize:   renderer.DefaultConfig().TileSize,
		NumWorkers: s.config.Workers,
	}, logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	img, stats, err := rt.Render(r.Context())
	if err != nil {
		// client went away or the render was cancelled
		logger.Printf("Render aborted: %v\n", err)
		writeError(w, http.StatusServiceUnavailable, "render cancelled")
		return
	}

	var buf bytes.Buffer
	if err := img.Encode(&buf, req.Format, req.Scale); err != nil {
		logger.Printf("Encoding failed: %v\n", err)
		writeError(w, http.StatusInternalServerError, "failed to encode image")
		return
	}

	if req.Publish {
		key := s.publisher.Key(sceneObj.Name, renderID, req.Format.Extension())
		url, err := s.publisher.Upload(r.Context(), key, buf.Bytes(), req.Format.ContentType())
		if err != nil {
			logger.Printf("Upload failed: %v\n", err)
			writeError(w, http.StatusBadGateway, "upload failed")
			return
		}
		w.Header().Set("X-Render-URL", url)
	}

	w.Header().Set("Content-Type", req.Format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-ID", renderID)
	w.Header().Set("X-Render-Hits", strconv.Itoa(stats.Hits))
	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Printf("Failed to write response: %v\n", err)
	}
}
