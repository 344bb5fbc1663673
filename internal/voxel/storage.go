package voxel

// Storage is the single contiguous arena holding every voxel in the world,
// laid out as [chunk index][local index]. Chunks never own voxel memory;
// they address their slot in here by index.
type Storage struct {
	grid Grid
	data []uint8
}

// NewStorage allocates a zeroed (all air) arena for the grid.
func NewStorage(g Grid) *Storage {
	return &Storage{
		grid: g,
		data: make([]uint8, g.ChunkCount()*g.ChunkVolume()),
	}
}

// Grid returns the indexing scheme the arena was built with.
func (s *Storage) Grid() Grid { return s.grid }

// Slot returns the voxels of one chunk. The slice aliases the arena, so
// writes through it are visible to every other reader. Capacity is capped so
// appends can never spill into the next chunk.
func (s *Storage) Slot(chunkIndex int) []uint8 {
	vol := s.grid.ChunkVolume()
	lo := chunkIndex * vol
	return s.data[lo : lo+vol : lo+vol]
}

// At returns the voxel id stored at a local index of a chunk.
func (s *Storage) At(chunkIndex, localIndex int) uint8 {
	return s.data[chunkIndex*s.grid.ChunkVolume()+localIndex]
}

// Voxel returns the id at a world coordinate; outside the world is air.
func (s *Storage) Voxel(c Coord) uint8 {
	ci := s.grid.ChunkIndexOf(c)
	if ci == NoChunk {
		return 0
	}
	return s.At(ci, s.grid.LocalIndexOf(c))
}

// IsEmpty reports whether the world voxel is air or outside the world.
func (s *Storage) IsEmpty(c Coord) bool {
	return s.Voxel(c) == 0
}

// Set writes id at a world coordinate and returns the chunk index written,
// or NoChunk (and writes nothing) when c is outside the world.
func (s *Storage) Set(c Coord, id uint8) int {
	ci := s.grid.ChunkIndexOf(c)
	if ci == NoChunk {
		return NoChunk
	}
	s.data[ci*s.grid.ChunkVolume()+s.grid.LocalIndexOf(c)] = id
	return ci
}
