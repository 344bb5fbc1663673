package player

import (
	"math"

	"voxel-engine/internal/config"
	"voxel-engine/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const maxPitch = 89.0

var worldUp = mgl32.Vec3{0, 1, 0}

// Player is a free-flying camera plus the editing state it drives.
type Player struct {
	Position mgl32.Vec3
	CamYaw   float64
	CamPitch float64

	LastMouseX float64
	LastMouseY float64
	FirstMouse bool

	Mode     world.InteractionMode
	Material uint8

	materials int
}

// New places a player at position looking down -Z, in place mode with
// material 1 selected.
func New(position mgl32.Vec3, materials int) *Player {
	if materials < 1 {
		materials = 1
	}
	return &Player{
		Position:   position,
		CamYaw:     -90,
		FirstMouse: true,
		Mode:       world.ModePlace,
		Material:   1,
		materials:  materials,
	}
}

// HandleMouseMovement turns cursor deltas into yaw and pitch.
func (p *Player) HandleMouseMovement(_ *glfw.Window, xpos, ypos float64) {
	if p.FirstMouse {
		p.LastMouseX = xpos
		p.LastMouseY = ypos
		p.FirstMouse = false
		return
	}

	xoffset := xpos - p.LastMouseX
	yoffset := p.LastMouseY - ypos
	p.LastMouseX = xpos
	p.LastMouseY = ypos

	sensitivity := config.GetMouseSensitivity()
	p.CamYaw += xoffset * sensitivity
	p.CamPitch += yoffset * sensitivity

	if p.CamPitch > maxPitch {
		p.CamPitch = maxPitch
	}
	if p.CamPitch < -maxPitch {
		p.CamPitch = -maxPitch
	}
}

// Front is the unit view direction.
func (p *Player) Front() mgl32.Vec3 {
	y := mgl32.DegToRad(float32(p.CamYaw))
	pt := mgl32.DegToRad(float32(p.CamPitch))
	fx := float32(math.Cos(float64(y)) * math.Cos(float64(pt)))
	fy := float32(math.Sin(float64(pt)))
	fz := float32(math.Sin(float64(y)) * math.Cos(float64(pt)))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

// Right is the camera's unit right vector, always horizontal.
func (p *Player) Right() mgl32.Vec3 {
	return p.Front().Cross(worldUp).Normalize()
}

// Up is the camera's unit up vector.
func (p *Player) Up() mgl32.Vec3 {
	return p.Right().Cross(p.Front()).Normalize()
}

// ViewMatrix looks from Position along Front.
func (p *Player) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(p.Position, p.Position.Add(p.Front()), worldUp)
}
