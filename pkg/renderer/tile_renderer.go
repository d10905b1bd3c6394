package renderer

import (
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// TileRenderer traces the pixels of individual tiles into a shared canvas.
// Tiles never overlap, so concurrent calls write disjoint cells.
type TileRenderer struct {
	world  *scene.World
	camera *Camera
	canvas *Canvas
}

// NewTileRenderer creates a renderer that writes into canvas
func NewTileRenderer(world *scene.World, camera *Camera, canvas *Canvas) *TileRenderer {
	return &TileRenderer{
		world:  world,
		camera: camera,
		canvas: canvas,
	}
}

// RenderTile traces every pixel inside the tile's bounds
func (tr *TileRenderer) RenderTile(tile *Tile) TileResult {
	start := time.Now()
	bounds := tile.Bounds

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := tr.camera.RayForPixel(x, y)
			tr.canvas.WritePixel(x, y, tr.world.ColorAt(ray))
		}
	}

	return TileResult{
		TaskID:   tile.ID,
		Pixels:   bounds.Dx() * bounds.Dy(),
		Duration: time.Since(start),
	}
}
