package renderer

import (
	"voxel-engine/internal/graphics"
	"voxel-engine/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext is everything a renderable may read for one frame. It is
// a closed set of fields; renderables add nothing to it.
type RenderContext struct {
	Camera *graphics.Camera
	World  *world.World
	View   mgl32.Mat4
	Proj   mgl32.Mat4

	// Selection outline state.
	Selection    world.Selection
	HasSelection bool
	Mode         world.InteractionMode
}

// Renderable is one independently initialised drawing feature.
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
}
