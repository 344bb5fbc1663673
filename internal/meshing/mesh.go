package meshing

import "voxel-engine/internal/voxel"

// Vertex layout, one byte per attribute:
//
//	[0..2] local position x,y,z
//	[3]    voxel id
//	[4]    face id
//	[5..6] texture u,v
const (
	VertexSize     = 7
	OffsetPosition = 0
	OffsetVoxelID  = 3
	OffsetFaceID   = 4
	OffsetTexCoord = 5

	// VerticesPerFace is a quad as two triangles (v0,v1,v2, v2,v3,v0).
	VerticesPerFace = 6
)

// Mesh is the packed vertex stream for one chunk. A chunk with no visible
// faces has a nil *Mesh rather than an empty one.
type Mesh struct {
	Vertices []uint8
}

// VertexCount is the number of packed vertices, always a multiple of 6.
func (m *Mesh) VertexCount() int {
	if m == nil {
		return 0
	}
	return len(m.Vertices) / VertexSize
}

// FaceCount is the number of emitted quads.
func (m *Mesh) FaceCount() int {
	return m.VertexCount() / VerticesPerFace
}

// Vertex is one unpacked vertex, mainly for inspection and tests.
type Vertex struct {
	X, Y, Z uint8
	VoxelID uint8
	Face    voxel.Face
	U, V    uint8
}

// Vertex unpacks vertex i.
func (m *Mesh) Vertex(i int) Vertex {
	b := m.Vertices[i*VertexSize : (i+1)*VertexSize]
	return Vertex{
		X:       b[OffsetPosition],
		Y:       b[OffsetPosition+1],
		Z:       b[OffsetPosition+2],
		VoxelID: b[OffsetVoxelID],
		Face:    voxel.Face(b[OffsetFaceID]),
		U:       b[OffsetTexCoord],
		V:       b[OffsetTexCoord+1],
	}
}
