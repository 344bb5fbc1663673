package meshing

import (
	"voxel-engine/internal/profiling"
	"voxel-engine/internal/voxel"
)

// Mesher turns one chunk's voxels into a culled triangle mesh. Faces are
// emitted only where the neighbouring voxel is empty; coplanar faces are
// not merged. A Mesher keeps a scratch buffer between builds and must not
// be shared between goroutines.
type Mesher struct {
	grid    voxel.Grid
	scratch []uint8
}

// NewMesher returns a mesher for chunks of the given grid.
func NewMesher(g voxel.Grid) *Mesher {
	return &Mesher{grid: g}
}

// worstCaseBytes is the scratch capacity hint: the output of a 3D
// checkerboard, where every solid voxel shows all six faces. That is the
// most a chunk can emit, tighter than C^3*6*6. Build appends, so the
// buffer still grows if the hint is ever exceeded.
func worstCaseBytes(g voxel.Grid) int {
	solid := (g.ChunkVolume() + 1) / 2
	return solid * int(voxel.FaceCount) * VerticesPerFace * VertexSize
}

// Build meshes the chunk at cc whose voxels are chunkVoxels. Neighbours
// past the chunk edge are read from world; neighbours outside the world
// count as empty, so the world's outer shell is drawn. Returns nil when
// no face is visible.
func (m *Mesher) Build(chunkVoxels []uint8, cc voxel.ChunkCoord, world *voxel.Storage) *Mesh {
	defer profiling.Track("meshing.Build")()

	if m.scratch == nil {
		m.scratch = make([]uint8, 0, worstCaseBytes(m.grid))
	}
	buf := m.scratch[:0]

	size := m.grid.Size
	area := size * size
	origin := m.grid.Origin(cc)

	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			for z := 0; z < size; z++ {
				id := chunkVoxels[x+y*size+z*area]
				if id == 0 {
					continue
				}
				for f := voxel.Face(0); f < voxel.FaceCount; f++ {
					n := f.Normal()
					if m.neighborEmpty(chunkVoxels, origin, x+n.X, y+n.Y, z+n.Z, world) {
						buf = appendFace(buf, x, y, z, id, f)
					}
				}
			}
		}
	}
	m.scratch = buf[:0]

	if len(buf) == 0 {
		return nil
	}
	out := make([]uint8, len(buf))
	copy(out, buf)
	return &Mesh{Vertices: out}
}

// neighborEmpty tests local (x,y,z), which may be one step outside [0,C).
func (m *Mesher) neighborEmpty(chunkVoxels []uint8, origin voxel.Coord, x, y, z int, world *voxel.Storage) bool {
	size := m.grid.Size
	if x >= 0 && x < size && y >= 0 && y < size && z >= 0 && z < size {
		return chunkVoxels[x+y*size+z*size*size] == 0
	}

	wc := voxel.Coord{X: origin.X + x, Y: origin.Y + y, Z: origin.Z + z}
	ci := m.grid.ChunkIndexOf(wc)
	if ci == voxel.NoChunk {
		return true
	}
	return world.At(ci, m.grid.LocalIndexOf(voxel.Coord{X: x, Y: y, Z: z})) == 0
}
