package renderer

import "image"

// Tile is a rectangular block of pixels rendered as one unit of work
type Tile struct {
	ID     int             // Position in the grid, row-major
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid splits a width x height image into tiles of at most
// tileSize x tileSize. Edge tiles are clipped to the image.
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	if width <= 0 || height <= 0 || tileSize <= 0 {
		return tiles
	}

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{
				ID:     len(tiles),
				Bounds: image.Rect(x0, y0, x1, y1),
			})
		}
	}

	return tiles
}
