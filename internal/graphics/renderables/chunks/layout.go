package chunks

import "voxel-engine/internal/meshing"

// attrib is one integer vertex attribute in the packed 7-byte vertex.
type attrib struct {
	location uint32
	size     int32
	offset   uintptr
}

// Locations match the layout qualifiers in chunk.vert.
var vertexLayout = [...]attrib{
	{location: 0, size: 3, offset: meshing.OffsetPosition},
	{location: 1, size: 1, offset: meshing.OffsetVoxelID},
	{location: 2, size: 1, offset: meshing.OffsetFaceID},
	{location: 3, size: 2, offset: meshing.OffsetTexCoord},
}

const vertexStride = meshing.VertexSize
