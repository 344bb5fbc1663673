package world

import (
	"voxel-engine/internal/meshing"
	"voxel-engine/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

// Chunk is one cubic region of the world. It owns no voxel memory: its
// voxels are the arena slot at Index.
type Chunk struct {
	Index int
	Coord voxel.ChunkCoord

	storage     *voxel.Storage
	mesh        *meshing.Mesh
	meshVersion uint64
}

// Voxels returns the chunk's view of the world arena, laid out
// x + y*C + z*C^2. Writes through it are world writes.
func (c *Chunk) Voxels() []uint8 {
	return c.storage.Slot(c.Index)
}

// Mesh returns the current mesh, nil when nothing is visible.
func (c *Chunk) Mesh() *meshing.Mesh {
	return c.mesh
}

// MeshVersion increases every time the mesh is rebuilt. Renderers compare
// it against what they uploaded.
func (c *Chunk) MeshVersion() uint64 {
	return c.meshVersion
}

// ModelMatrix places the chunk's local vertex positions in world space.
func (c *Chunk) ModelMatrix() mgl32.Mat4 {
	o := c.storage.Grid().Origin(c.Coord)
	return mgl32.Translate3D(float32(o.X), float32(o.Y), float32(o.Z))
}

func (c *Chunk) setMesh(m *meshing.Mesh) {
	c.mesh = m
	c.meshVersion++
}
