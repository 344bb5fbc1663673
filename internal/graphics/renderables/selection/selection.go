package selection

import (
	"path/filepath"

	"voxel-engine/internal/graphics"
	"voxel-engine/internal/graphics/renderer"
	"voxel-engine/internal/profiling"
	"voxel-engine/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShadersDir = "assets/shaders"

	// place-mode outline shift along the hit normal, in voxels
	placeOffset = 1.1
)

var (
	VertShader = filepath.Join(ShadersDir, "selection.vert")
	FragShader = filepath.Join(ShadersDir, "selection.frag")
)

// unit cube edges, 12 lines
var cubeEdges = []float32{
	0, 0, 0, 1, 0, 0,
	1, 0, 0, 1, 1, 0,
	1, 1, 0, 0, 1, 0,
	0, 1, 0, 0, 0, 0,

	0, 0, 1, 1, 0, 1,
	1, 0, 1, 1, 1, 1,
	1, 1, 1, 0, 1, 1,
	0, 1, 1, 0, 0, 1,

	0, 0, 0, 0, 0, 1,
	1, 0, 0, 1, 0, 1,
	1, 1, 0, 1, 1, 1,
	0, 1, 0, 0, 1, 1,
}

// Outline draws the selected voxel, or in place mode the cell a new voxel
// would go into.
type Outline struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

func NewOutline() *Outline {
	return &Outline{}
}

func (o *Outline) Init() error {
	var err error
	o.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeEdges)*4, gl.Ptr(cubeEdges), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)
	return nil
}

func (o *Outline) Render(ctx renderer.RenderContext) {
	if !ctx.HasSelection {
		return
	}
	defer profiling.Track("renderer.renderSelection")()

	o.shader.Use()
	o.shader.SetMat4("m_proj", ctx.Proj)
	o.shader.SetMat4("m_view", ctx.View)
	o.shader.SetMat4("m_model", ModelMatrix(ctx.Selection, ctx.Mode))
	o.shader.SetVec3("u_color", modeColor(ctx.Mode))

	gl.BindVertexArray(o.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, int32(len(cubeEdges)/3))
	gl.BindVertexArray(0)
}

func (o *Outline) Dispose() {
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
	}
	if o.shader != nil {
		o.shader.Delete()
	}
}

// ModelMatrix positions the unit outline cube for sel.
func ModelMatrix(sel world.Selection, mode world.InteractionMode) mgl32.Mat4 {
	pos := mgl32.Vec3{float32(sel.Voxel.X), float32(sel.Voxel.Y), float32(sel.Voxel.Z)}
	if mode == world.ModePlace {
		n := mgl32.Vec3{float32(sel.Normal.X), float32(sel.Normal.Y), float32(sel.Normal.Z)}
		pos = pos.Add(n.Mul(placeOffset))
	}
	return mgl32.Translate3D(pos[0], pos[1], pos[2])
}

func modeColor(mode world.InteractionMode) mgl32.Vec3 {
	if mode == world.ModePlace {
		return mgl32.Vec3{0.1, 0.9, 0.2}
	}
	return mgl32.Vec3{0.9, 0.1, 0.1}
}
