package renderer

import "image"

// Tile is a rectangular region of the image with its own random seed.
// Tiles partition the image exactly once, so workers own disjoint pixel
// ranges and need no synchronization on the shared stats array.
type Tile struct {
	Bounds image.Rectangle
	Seed   int64
}

// NewTileGrid splits the image into tileSize x tileSize tiles (edge tiles
// may be smaller). Seeds derive from the base seed and the tile index so a
// fixed seed reproduces the image bit for bit regardless of worker count.
func NewTileGrid(width, height, tileSize int, baseSeed int64) []Tile {
	var tiles []Tile
	index := int64(0)

	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, Tile{
				Bounds: image.Rect(x, y, min(x+tileSize, width), min(y+tileSize, height)),
				Seed:   baseSeed + index,
			})
			index++
		}
	}

	return tiles
}
