package player

import (
	"voxel-engine/internal/config"
	"voxel-engine/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

// Update applies one frame of input: flying movement plus mode and
// material switching. It reports whether an edit was requested.
func (p *Player) Update(dt float64, im *input.InputManager) (applyEdit bool) {
	p.move(dt, im)

	if im.JustPressed(input.ActionToggleMode) {
		p.Mode = p.Mode.Toggle()
	}
	if im.JustPressed(input.ActionCycleMaterial) {
		p.CycleMaterial()
	}
	return im.JustPressed(input.ActionApplyEdit)
}

// CycleMaterial steps to the next id in 1..materials, wrapping to 1.
func (p *Player) CycleMaterial() {
	p.Material = uint8(int(p.Material)%p.materials + 1)
}

func (p *Player) move(dt float64, im *input.InputManager) {
	front, right := p.Front(), p.Right()
	var dir mgl32.Vec3
	if im.IsActive(input.ActionMoveForward) {
		dir = dir.Add(front)
	}
	if im.IsActive(input.ActionMoveBackward) {
		dir = dir.Sub(front)
	}
	if im.IsActive(input.ActionMoveRight) {
		dir = dir.Add(right)
	}
	if im.IsActive(input.ActionMoveLeft) {
		dir = dir.Sub(right)
	}
	if im.IsActive(input.ActionMoveUp) {
		dir = dir.Add(worldUp)
	}
	if im.IsActive(input.ActionMoveDown) {
		dir = dir.Sub(worldUp)
	}
	if dir.Len() == 0 {
		return
	}
	step := float32(config.GetMoveSpeed() * dt)
	p.Position = p.Position.Add(dir.Normalize().Mul(step))
}
