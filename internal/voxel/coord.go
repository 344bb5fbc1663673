package voxel

import "voxel-engine/internal/config"

// NoChunk is returned for coordinates outside the world. Every caller treats
// it as "empty", never as a fault.
const NoChunk = -1

// Coord is an integer voxel coordinate, world or chunk-local depending on use.
type Coord struct {
	X, Y, Z int
}

// Add returns c+o.
func (c Coord) Add(o Coord) Coord {
	return Coord{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

// ChunkCoord is a chunk position in chunk units.
type ChunkCoord struct {
	X, Y, Z int
}

// Grid maps between world voxel space, chunk space and the flat arrays
// backing both. It is a small value type; copy it freely.
type Grid struct {
	Size   int // voxels per chunk edge
	Width  int // chunks along X
	Height int // chunks along Y
	Depth  int // chunks along Z

	area   int // Size^2
	volume int // Size^3
}

// NewGrid derives a Grid from a world config.
func NewGrid(cfg config.WorldConfig) Grid {
	return Grid{
		Size:   cfg.ChunkSize,
		Width:  cfg.Width,
		Height: cfg.Height,
		Depth:  cfg.Depth,
		area:   cfg.ChunkSize * cfg.ChunkSize,
		volume: cfg.ChunkSize * cfg.ChunkSize * cfg.ChunkSize,
	}
}

// ChunkVolume is the number of voxels per chunk.
func (g Grid) ChunkVolume() int { return g.volume }

// ChunkCount is the number of chunks in the world.
func (g Grid) ChunkCount() int { return g.Width * g.Height * g.Depth }

// ChunkIndex returns the flat index of a chunk position or NoChunk.
func (g Grid) ChunkIndex(cc ChunkCoord) int {
	if cc.X < 0 || cc.X >= g.Width || cc.Y < 0 || cc.Y >= g.Height || cc.Z < 0 || cc.Z >= g.Depth {
		return NoChunk
	}
	return cc.X + cc.Y*g.Width + cc.Z*g.Width*g.Height
}

// ChunkCoordOf is the inverse of ChunkIndex for valid indices.
func (g Grid) ChunkCoordOf(index int) ChunkCoord {
	wh := g.Width * g.Height
	return ChunkCoord{
		X: index % g.Width,
		Y: (index % wh) / g.Width,
		Z: index / wh,
	}
}

// ChunkOf returns the chunk containing a world voxel, which may lie outside the world.
func (g Grid) ChunkOf(c Coord) ChunkCoord {
	return ChunkCoord{floorDiv(c.X, g.Size), floorDiv(c.Y, g.Size), floorDiv(c.Z, g.Size)}
}

// ChunkIndexOf returns the flat index of the chunk holding world voxel c,
// or NoChunk when that chunk is outside the world.
func (g Grid) ChunkIndexOf(c Coord) int {
	return g.ChunkIndex(g.ChunkOf(c))
}

// Local wraps a coordinate into [0,Size) on every axis.
func (g Grid) Local(c Coord) Coord {
	return Coord{mod(c.X, g.Size), mod(c.Y, g.Size), mod(c.Z, g.Size)}
}

// LocalIndexOf returns the flat index x + y*C + z*C^2 of a coordinate
// after Euclidean wrapping, so world coordinates and out-by-one local
// coordinates (including negative ones) are both accepted.
func (g Grid) LocalIndexOf(c Coord) int {
	return mod(c.X, g.Size) + mod(c.Y, g.Size)*g.Size + mod(c.Z, g.Size)*g.area
}

// Origin returns the world coordinate of a chunk's (0,0,0) voxel.
func (g Grid) Origin(cc ChunkCoord) Coord {
	return Coord{cc.X * g.Size, cc.Y * g.Size, cc.Z * g.Size}
}

// Contains reports whether a world voxel lies inside the world.
func (g Grid) Contains(c Coord) bool {
	return g.ChunkIndexOf(c) != NoChunk
}

// Extent returns the world size in voxels.
func (g Grid) Extent() Coord {
	return Coord{g.Width * g.Size, g.Height * g.Size, g.Depth * g.Size}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
