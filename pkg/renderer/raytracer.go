package renderer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// ErrInvalidSize is returned when a camera cannot produce an image
var ErrInvalidSize = errors.New("invalid image size")

// Config contains settings for parallel rendering
type Config struct {
	Workers  int         // Number of parallel workers (0 = auto-detect CPU count)
	TileSize int         // Width and height of a tile in pixels
	Logger   core.Logger // Progress logger (nil = silent)
}

// DefaultConfig returns sensible default settings
func DefaultConfig() Config {
	return Config{
		Workers:  0,
		TileSize: 64,
		Logger:   core.NopLogger{},
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.TileSize <= 0 {
		c.TileSize = defaults.TileSize
	}
	if c.Logger == nil {
		c.Logger = defaults.Logger
	}
	return c
}

func (c *Camera) validate() error {
	if c.hsize <= 0 || c.vsize <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.hsize, c.vsize)
	}
	if c.fov <= 0 || c.fov >= math.Pi || math.IsNaN(c.fov) {
		return fmt.Errorf("%w: field of view %.4f", ErrInvalidSize, c.fov)
	}
	return nil
}

// RenderParallel renders the world on a pool of workers. The result is
// identical to Render; only the order in which pixels are traced differs.
// The world must not be modified while rendering.
func (c *Camera) RenderParallel(ctx context.Context, w *scene.World, config Config) (*Canvas, RenderStats, error) {
	if err := c.validate(); err != nil {
		return nil, RenderStats{}, err
	}
	config = config.withDefaults()

	start := time.Now()
	canvas := NewCanvas(c.hsize, c.vsize)
	tiles := NewTileGrid(c.hsize, c.vsize, config.TileSize)
	pool := NewWorkerPool(config.Workers)
	tileRenderer := NewTileRenderer(w, c, canvas)

	config.Logger.Infof("Rendering %dx%d in %d tiles on %d workers", c.hsize, c.vsize, len(tiles), pool.NumWorkers())

	results, err := pool.Run(ctx, tiles, tileRenderer.RenderTile)
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("render cancelled after %d of %d tiles: %w", len(results), len(tiles), err)
	}

	stats := collectStats(canvas, tiles, results, pool.NumWorkers(), time.Since(start))
	config.Logger.Infof("Rendered %d pixels in %v", stats.TotalPixels, stats.Duration)
	for _, result := range results {
		config.Logger.Debugf("Tile %d: worker %d, %d pixels, %v", result.TaskID, result.WorkerID, result.Pixels, result.Duration)
	}

	return canvas, stats, nil
}
