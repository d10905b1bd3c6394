package renderer

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

func TestNewTileGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
		expectedTiles int
	}{
		{"exact fit", 128, 64, 32, 8},
		{"clipped edges", 100, 50, 32, 8},
		{"single tile", 10, 10, 64, 1},
		{"zero size", 0, 10, 64, 0},
		{"zero tile size", 10, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize)
			if len(tiles) != tt.expectedTiles {
				t.Fatalf("Expected %d tiles, got %d", tt.expectedTiles, len(tiles))
			}

			// every pixel belongs to exactly one tile
			covered := make([]int, tt.width*tt.height)
			for i, tile := range tiles {
				if tile.ID != i {
					t.Errorf("Expected tile %d to have ID %d, got %d", i, i, tile.ID)
				}
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						covered[y*tt.width+x]++
					}
				}
			}
			if tt.expectedTiles == 0 {
				return
			}
			for i, n := range covered {
				if n != 1 {
					t.Fatalf("Pixel %d covered %d times", i, n)
				}
			}
		})
	}
}

func TestWorkerPool_Run(t *testing.T) {
	tiles := NewTileGrid(40, 40, 8)
	var rendered atomic.Int32

	results, err := NewWorkerPool(4).Run(context.Background(), tiles, func(tile *Tile) TileResult {
		rendered.Add(1)
		return TileResult{Pixels: tile.Bounds.Dx() * tile.Bounds.Dy()}
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != len(tiles) || int(rendered.Load()) != len(tiles) {
		t.Fatalf("Expected %d results, got %d (%d rendered)", len(tiles), len(results), rendered.Load())
	}

	seen := make(map[int]bool)
	total := 0
	for _, result := range results {
		seen[result.TaskID] = true
		total += result.Pixels
		if result.WorkerID < 0 || result.WorkerID >= 4 {
			t.Errorf("Unexpected worker ID %d", result.WorkerID)
		}
	}
	if len(seen) != len(tiles) {
		t.Errorf("Expected %d distinct tasks, got %d", len(tiles), len(seen))
	}
	if total != 1600 {
		t.Errorf("Expected 1600 pixels, got %d", total)
	}
}

func TestNewWorkerPool_AutoDetect(t *testing.T) {
	if n := NewWorkerPool(0).NumWorkers(); n < 1 {
		t.Errorf("Expected at least one worker, got %d", n)
	}
	if n := NewWorkerPool(3).NumWorkers(); n != 3 {
		t.Errorf("Expected 3 workers, got %d", n)
	}
}

func TestRenderParallel_MatchesSequential(t *testing.T) {
	s, err := scene.New("default", scene.CameraConfig{Width: 40, Height: 30})
	if err != nil {
		t.Fatalf("Failed to build scene: %v", err)
	}
	camera := NewCameraFromConfig(s.Camera)

	sequential := camera.Render(s.World)
	parallel, stats, err := camera.RenderParallel(context.Background(), s.World, Config{Workers: 3, TileSize: 7})
	if err != nil {
		t.Fatalf("RenderParallel failed: %v", err)
	}

	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			if parallel.PixelAt(x, y) != sequential.PixelAt(x, y) {
				t.Fatalf("Pixel (%d,%d) differs: %v vs %v", x, y, parallel.PixelAt(x, y), sequential.PixelAt(x, y))
			}
		}
	}

	if stats.TotalPixels != 1200 {
		t.Errorf("Expected 1200 pixels, got %d", stats.TotalPixels)
	}
	if stats.Tiles != 6*5 {
		t.Errorf("Expected 30 tiles, got %d", stats.Tiles)
	}
	if stats.Workers != 3 {
		t.Errorf("Expected 3 workers, got %d", stats.Workers)
	}
	if stats.AverageLuminance <= 0 {
		t.Errorf("Expected a lit image, got average luminance %f", stats.AverageLuminance)
	}
}

func TestRenderParallel_DefaultWorld(t *testing.T) {
	canvas, _, err := defaultWorldCamera().RenderParallel(context.Background(), scene.DefaultWorld(), DefaultConfig())
	if err != nil {
		t.Fatalf("RenderParallel failed: %v", err)
	}

	expected := core.NewColor(0.38066, 0.47583, 0.2855)
	if got := canvas.PixelAt(5, 5); !approxColor(got, expected, 1e-4) {
		t.Errorf("Expected %v at (5,5), got %v", expected, got)
	}
}

func TestRenderParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := defaultWorldCamera().RenderParallel(ctx, scene.DefaultWorld(), Config{Workers: 2, TileSize: 2})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestRenderParallel_InvalidSize(t *testing.T) {
	tests := []struct {
		name   string
		camera *Camera
	}{
		{"zero width", NewCamera(0, 10, math.Pi/2)},
		{"negative height", NewCamera(10, -1, math.Pi/2)},
		{"zero field of view", NewCamera(10, 10, 0)},
		{"field of view of π", NewCamera(10, 10, math.Pi)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.camera.RenderParallel(context.Background(), scene.DefaultWorld(), DefaultConfig())
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("Expected ErrInvalidSize, got %v", err)
			}
		})
	}
}

func TestAverageLuminance(t *testing.T) {
	c := NewCanvas(2, 1)
	c.WritePixel(0, 0, core.White)

	if got := AverageLuminance(c); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Expected 0.5, got %f", got)
	}
	if got := AverageLuminance(NewCanvas(0, 0)); got != 0 {
		t.Errorf("Expected 0 for an empty canvas, got %f", got)
	}
}

func TestRenderStats_PixelsPerSecond(t *testing.T) {
	if got := (RenderStats{TotalPixels: 100}).PixelsPerSecond(); got != 0 {
		t.Errorf("Expected 0 without a duration, got %f", got)
	}
	if got := (RenderStats{TotalPixels: 100, Duration: 2e9}).PixelsPerSecond(); got != 50 {
		t.Errorf("Expected 50, got %f", got)
	}
}
