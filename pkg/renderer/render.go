package renderer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// ErrInvalidSize is returned when the requested image has no pixels
var ErrInvalidSize = errors.New("renderer: image dimensions must be positive")

// DefaultLogger implements core.Logger with the standard log package
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains configuration for a render
type Config struct {
	Width      int // Image width in pixels
	Height     int // Image height in pixels
	TileSize   int // Size of each tile (32x32 recommended)
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:      400,
		Height:     400,
		TileSize:   32,
		NumWorkers: 0,
	}
}

// Renderer renders a whole scene onto a canvas
type Renderer struct {
	scene      *scene.Scene
	config     Config
	raytracer  *Raytracer
	tiles      []*Tile
	workerPool *WorkerPool
	logger     core.Logger
}

// NewRenderer creates a renderer for the scene. A nil logger discards output.
func NewRenderer(s *scene.Scene, config Config, logger core.Logger) (*Renderer, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, config.Width, config.Height)
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultConfig().TileSize
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Renderer{
		scene:      s,
		config:     config,
		raytracer:  NewRaytracer(s, config.Width, config.Height),
		tiles:      NewTileGrid(config.Width, config.Height, config.TileSize),
		workerPool: NewWorkerPool(config.NumWorkers),
		logger:     logger,
	}, nil
}

// Raytracer returns the raytracer used for individual pixels
func (r *Renderer) Raytracer() *Raytracer {
	return r.raytracer
}

// Tiles returns the tile grid the image is split into
func (r *Renderer) Tiles() []*Tile {
	return r.tiles
}

// Render shades every pixel in parallel. On cancellation the partially
// rendered canvas is returned together with the context error.
func (r *Renderer) Render(ctx context.Context) (*canvas.Canvas, RenderStats, error) {
	start := time.Now()
	c := canvas.New(r.config.Width, r.config.Height)

	r.logger.Printf("Rendering %q at %dx%d: %d spheres, %d tiles, %d workers\n",
		r.scene.Name, r.config.Width, r.config.Height, len(r.scene.Spheres), len(r.tiles), r.workerPool.NumWorkers())

	stats, err := r.workerPool.Run(ctx, r.tiles, NewTileRenderer(r.raytracer, c))
	stats.Duration = time.Since(start)
	if err != nil {
		r.logger.Printf("Render of %q stopped after %v: %v\n", r.scene.Name, stats.Duration, err)
		return c, stats, err
	}

	r.logger.Printf("Render of %q complete: %v\n", r.scene.Name, stats)
	return c, stats, nil
}
