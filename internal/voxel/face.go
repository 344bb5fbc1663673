package voxel

// Face identifies one of the six axis-aligned faces of a voxel. The numeric
// values are written into mesh vertices and read by the chunk shader.
type Face uint8

const (
	FaceTop    Face = iota // +Y
	FaceBottom             // -Y
	FaceRight              // +X
	FaceLeft               // -X
	FaceBack               // +Z
	FaceFront              // -Z
	FaceCount
)

var faceNormals = [FaceCount]Coord{
	FaceTop:    {0, 1, 0},
	FaceBottom: {0, -1, 0},
	FaceRight:  {1, 0, 0},
	FaceLeft:   {-1, 0, 0},
	FaceBack:   {0, 0, 1},
	FaceFront:  {0, 0, -1},
}

// Normal returns the outward unit normal.
func (f Face) Normal() Coord {
	return faceNormals[f]
}

func (f Face) String() string {
	switch f {
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	case FaceRight:
		return "right"
	case FaceLeft:
		return "left"
	case FaceBack:
		return "back"
	case FaceFront:
		return "front"
	}
	return "unknown"
}
