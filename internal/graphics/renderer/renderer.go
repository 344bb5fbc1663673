package renderer

import (
	"fmt"

	"voxel-engine/internal/graphics"
	"voxel-engine/internal/profiling"
	"voxel-engine/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Frame is the per-frame input from the application loop.
type Frame struct {
	View mgl32.Mat4
	Mode world.InteractionMode
}

// Renderer owns GL state setup and drives renderables in order.
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
}

// NewRenderer configures the context and initialises every renderable.
// Already initialised renderables are disposed if a later one fails.
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r := &Renderer{camera: graphics.NewCamera(width, height)}
	for _, rd := range rs {
		if err := rd.Init(); err != nil {
			r.Dispose()
			return nil, fmt.Errorf("init renderable %T: %w", rd, err)
		}
		r.renderables = append(r.renderables, rd)
	}
	return r, nil
}

// Render clears the frame and draws the world and its overlays.
func (r *Renderer) Render(w *world.World, f Frame) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0.58, 0.83, 0.99, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	sel, ok := w.Selection()
	ctx := RenderContext{
		Camera:       r.camera,
		World:        w,
		View:         f.View,
		Proj:         r.camera.ProjectionMatrix(),
		Selection:    sel,
		HasSelection: ok,
		Mode:         f.Mode,
	}
	for _, rd := range r.renderables {
		rd.Render(ctx)
	}
}

// Dispose releases renderables in reverse order.
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

func (r *Renderer) Camera() *graphics.Camera {
	return r.camera
}

// UpdateViewport resizes the GL viewport and the projection.
func (r *Renderer) UpdateViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
}
