package physics

import (
	"math"

	"voxel-engine/internal/profiling"
	"voxel-engine/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMaxSteps bounds a pick to roughly the span of the stock world.
const DefaultMaxSteps = 100

// RaycastResult is the outcome of a voxel pick.
type RaycastResult struct {
	Hit    bool
	Voxel  voxel.Coord // first solid voxel entered
	Normal voxel.Coord // outward normal of the face the ray entered through
	Steps  int         // cell boundaries crossed
}

// Adjacent returns the empty cell in front of the hit face, where a new
// voxel would be placed.
func (r RaycastResult) Adjacent() voxel.Coord {
	return r.Voxel.Add(r.Normal)
}

// Raycast marches a ray through the voxel grid one cell boundary at a time
// (Amanatides-Woo) and stops at the first solid voxel. The origin cell is
// never tested. Cells outside the world are stepped through as empty. The
// march gives up after maxSteps boundary crossings.
func Raycast(origin, direction mgl32.Vec3, maxSteps int, world *voxel.Storage) RaycastResult {
	defer profiling.Track("physics.Raycast")()

	if direction.X() == 0 && direction.Y() == 0 && direction.Z() == 0 {
		return RaycastResult{}
	}

	var (
		cell   [3]int
		step   [3]int
		tMax   [3]float64
		tDelta [3]float64
	)
	for axis := 0; axis < 3; axis++ {
		p := float64(origin[axis])
		d := float64(direction[axis])
		fl := math.Floor(p)
		cell[axis] = int(fl)

		switch {
		case d > 0:
			step[axis] = 1
			tMax[axis] = (fl + 1 - p) / d
			tDelta[axis] = 1 / d
		case d < 0:
			step[axis] = -1
			tMax[axis] = (p - fl) / -d
			tDelta[axis] = 1 / -d
		default:
			// never crosses a boundary on this axis
			tMax[axis] = math.Inf(1)
			tDelta[axis] = math.Inf(1)
		}
	}

	for i := 1; i <= maxSteps; i++ {
		axis := 2
		if tMax[0] < tMax[1] && tMax[0] < tMax[2] {
			axis = 0
		} else if tMax[1] < tMax[2] {
			axis = 1
		}
		cell[axis] += step[axis]
		tMax[axis] += tDelta[axis]

		c := voxel.Coord{X: cell[0], Y: cell[1], Z: cell[2]}
		if world.IsEmpty(c) {
			continue
		}

		var n [3]int
		n[axis] = -step[axis]
		return RaycastResult{
			Hit:    true,
			Voxel:  c,
			Normal: voxel.Coord{X: n[0], Y: n[1], Z: n[2]},
			Steps:  i,
		}
	}

	return RaycastResult{Steps: maxSteps}
}

// AimFromBasis returns the view direction implied by a camera's up and
// right vectors (up x right, i.e. -Z for the identity basis).
func AimFromBasis(up, right mgl32.Vec3) mgl32.Vec3 {
	return up.Cross(right)
}
