package meshing

import "voxel-engine/internal/voxel"

// corner is a quad corner relative to the voxel's minimum corner, with its
// texture coordinate.
type corner struct {
	dx, dy, dz uint8
	u, v       uint8
}

// faceCorners lists v0..v3 for each face, wound counter-clockwise when
// seen from outside the voxel.
var faceCorners = [voxel.FaceCount][4]corner{
	voxel.FaceTop: {
		{1, 1, 1, 1, 0},
		{1, 1, 0, 1, 1},
		{0, 1, 0, 0, 1},
		{0, 1, 1, 0, 0},
	},
	voxel.FaceBottom: {
		{1, 0, 0, 1, 0},
		{1, 0, 1, 1, 1},
		{0, 0, 1, 0, 1},
		{0, 0, 0, 0, 0},
	},
	voxel.FaceRight: {
		{1, 0, 0, 1, 0},
		{1, 1, 0, 1, 1},
		{1, 1, 1, 0, 1},
		{1, 0, 1, 0, 0},
	},
	voxel.FaceLeft: {
		{0, 0, 1, 1, 0},
		{0, 1, 1, 1, 1},
		{0, 1, 0, 0, 1},
		{0, 0, 0, 0, 0},
	},
	voxel.FaceBack: {
		{1, 0, 1, 1, 0},
		{1, 1, 1, 1, 1},
		{0, 1, 1, 0, 1},
		{0, 0, 1, 0, 0},
	},
	voxel.FaceFront: {
		{0, 0, 0, 1, 0},
		{0, 1, 0, 1, 1},
		{1, 1, 0, 0, 1},
		{1, 0, 0, 0, 0},
	},
}

// quadOrder expands the four corners into two triangles.
var quadOrder = [VerticesPerFace]int{0, 1, 2, 2, 3, 0}

// appendFace packs one quad for the voxel at local (x,y,z).
func appendFace(dst []uint8, x, y, z int, id uint8, f voxel.Face) []uint8 {
	cs := &faceCorners[f]
	for _, ci := range quadOrder {
		c := cs[ci]
		dst = append(dst,
			uint8(x)+c.dx, uint8(y)+c.dy, uint8(z)+c.dz,
			id, uint8(f),
			c.u, c.v,
		)
	}
	return dst
}
