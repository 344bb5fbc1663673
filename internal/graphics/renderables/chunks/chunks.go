package chunks

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

	// TextureUnit is the sampler unit the material array is bound to.
	TextureUnit = 0
)

var (
	VertShader = filepath.Join(ShadersDir, "chunk.vert")
	FragShader = filepath.Join(ShadersDir, "chunk.frag")
)

// gpuMesh is the uploaded copy of one chunk's mesh.
type gpuMesh struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
	version     uint64
}

// Chunks draws every chunk mesh with one VAO per chunk, re-uploading a
// chunk only when its mesh version moves.
type Chunks struct {
	shader       *graphics.Shader
	texturePath  string
	textureLayer int
	texture      uint32

	meshes    map[int]*gpuMesh
	Wireframe bool
}

// NewChunks creates the renderable. texturePath is a vertical strip of
// layers material tiles.
func NewChunks(texturePath string, layers int) *Chunks {
	return &Chunks{
		texturePath:  texturePath,
		textureLayer: layers,
		meshes:       make(map[int]*gpuMesh),
	}
}

func (c *Chunks) Init() error {
	var err error
	c.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}
	c.texture, err = graphics.LoadTextureArray(c.texturePath, c.textureLayer, true)
	if err != nil {
		return err
	}

	c.shader.Use()
	c.shader.SetInt("u_texture_array", TextureUnit)
	light := mgl32.Vec3{0.3, 1.0, 0.5}.Normalize()
	c.shader.SetVec3("u_light_dir", light)
	return nil
}

func (c *Chunks) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderChunks")()

	c.sync(ctx.World)

	if c.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	c.shader.Use()
	c.shader.SetMat4("m_proj", ctx.Proj)
	c.shader.SetMat4("m_view", ctx.View)
	gl.ActiveTexture(gl.TEXTURE0 + TextureUnit)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, c.texture)

	for _, ch := range ctx.World.Chunks() {
		m := c.meshes[ch.Index]
		if m == nil {
			continue
		}
		c.shader.SetMat4("m_model", ch.ModelMatrix())
		gl.BindVertexArray(m.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	}
	gl.BindVertexArray(0)
}

// sync uploads changed meshes and frees the GPU copy of chunks that no
// longer have any visible faces.
func (c *Chunks) sync(w *world.World) {
	defer profiling.Track("renderer.renderChunks.sync")()

	for _, ch := range w.Chunks() {
		m := c.meshes[ch.Index]
		if m != nil && m.version == ch.MeshVersion() {
			continue
		}
		mesh := ch.Mesh()
		if mesh == nil {
			if m != nil {
				m.delete()
				delete(c.meshes, ch.Index)
			}
			continue
		}
		if m == nil {
			m = newGPUMesh()
			c.meshes[ch.Index] = m
		}
		m.upload(mesh.Vertices, int32(mesh.VertexCount()))
		m.version = ch.MeshVersion()
	}
}

func (c *Chunks) Dispose() {
	for i, m := range c.meshes {
		m.delete()
		delete(c.meshes, i)
	}
	if c.texture != 0 {
		gl.DeleteTextures(1, &c.texture)
		c.texture = 0
	}
	if c.shader != nil {
		c.shader.Delete()
	}
}

func newGPUMesh() *gpuMesh {
	m := &gpuMesh{}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	for _, a := range vertexLayout {
		gl.EnableVertexAttribArray(a.location)
		gl.VertexAttribIPointerWithOffset(a.location, a.size, gl.UNSIGNED_BYTE, vertexStride, a.offset)
	}
	gl.BindVertexArray(0)
	return m
}

func (m *gpuMesh) upload(vertices []uint8, count int32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices), gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	m.vertexCount = count
}

func (m *gpuMesh) delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
}
