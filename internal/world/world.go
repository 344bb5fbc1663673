package world

import (
	"fmt"
	"log"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/mathgl/mgl32"

	"voxel-engine/internal/config"
	"voxel-engine/internal/meshing"
	"voxel-engine/internal/physics"
	"voxel-engine/internal/profiling"
	"voxel-engine/internal/terrain"
	"voxel-engine/internal/voxel"
)

// InteractionMode selects what SetVoxel does with the current selection.
type InteractionMode int

const (
	ModeBreak InteractionMode = iota
	ModePlace
)

// Toggle flips between place and break.
func (m InteractionMode) Toggle() InteractionMode {
	if m == ModePlace {
		return ModeBreak
	}
	return ModePlace
}

func (m InteractionMode) String() string {
	if m == ModePlace {
		return "place"
	}
	return "break"
}

// Selection is the voxel currently under the crosshair and the face the
// pick ray entered through.
type Selection struct {
	Voxel  voxel.Coord
	Normal voxel.Coord
}

// World is a fixed W x H x D block of chunks over one voxel arena. It is
// driven from a single goroutine; only the initial build passes fan out.
type World struct {
	cfg     config.WorldConfig
	grid    voxel.Grid
	storage *voxel.Storage
	chunks  []*Chunk

	generator *terrain.Generator
	mesher    *meshing.Mesher
	pool      *meshing.WorkerPool

	selection    Selection
	hasSelection bool
}

// New validates cfg, generates terrain and meshes every chunk.
func New(cfg config.WorldConfig) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewWithGenerator(cfg, terrain.NewGenerator(cfg))
}

// NewWithGenerator is New with a caller-supplied terrain generator. The
// generator must fill chunks of cfg's size.
func NewWithGenerator(cfg config.WorldConfig, gen *terrain.Generator) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid := voxel.NewGrid(cfg)
	if got := gen.Grid().Size; got != grid.Size {
		return nil, fmt.Errorf("%w: generator chunk size %d, world chunk size %d", config.ErrInvalid, got, grid.Size)
	}
	w := &World{
		cfg:       cfg,
		grid:      grid,
		generator: gen,
		mesher:    meshing.NewMesher(grid),
		pool:      meshing.NewWorkerPool(grid, cfg.MeshWorkers),
	}
	if err := w.buildChunks(); err != nil {
		return nil, err
	}
	if err := w.buildChunkMeshes(); err != nil {
		return nil, err
	}
	return w, nil
}

// NewEmpty builds a world with no terrain, for tests and tools.
func NewEmpty(cfg config.WorldConfig) (*World, error) {
	return NewWithGenerator(cfg, terrain.NewGeneratorWithNoise(cfg, terrain.Flat(-1)))
}

// buildChunks allocates the arena and chunk array and fills every chunk
// with terrain. Runs once, from the constructor.
func (w *World) buildChunks() error {
	defer profiling.Track("world.BuildChunks")()

	w.storage = voxel.NewStorage(w.grid)
	w.chunks = make([]*Chunk, w.grid.ChunkCount())
	for i := range w.chunks {
		w.chunks[i] = &Chunk{
			Index:   i,
			Coord:   w.grid.ChunkCoordOf(i),
			storage: w.storage,
		}
	}

	// each fill writes only its own slot
	pool := pond.NewPool(max(w.cfg.MeshWorkers, 1))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for _, c := range w.chunks {
		group.Submit(func() {
			w.generator.Fill(c.Coord, c.Voxels())
		})
	}
	if err := group.Wait(); err != nil {
		return fmt.Errorf("terrain fill: %w", err)
	}
	return nil
}

// buildChunkMeshes meshes every chunk. All voxel data must already exist
// so faces on chunk borders are culled against finished neighbours.
func (w *World) buildChunkMeshes() error {
	defer profiling.Track("world.BuildChunkMeshes")()
	start := time.Now()

	jobs := make([]meshing.MeshJob, len(w.chunks))
	for i, c := range w.chunks {
		jobs[i] = meshing.MeshJob{Index: c.Index, Coord: c.Coord}
	}
	results, err := w.pool.BuildAll(w.storage, jobs)
	if err != nil {
		return err
	}
	faces := 0
	for _, r := range results {
		w.chunks[r.Index].setMesh(r.Mesh)
		faces += r.Mesh.FaceCount()
	}

	log.Printf("world: meshed %d chunks, %d faces in %v (workers=%d)",
		len(w.chunks), faces, time.Since(start).Round(time.Millisecond), w.pool.GetWorkers())
	return nil
}

// UpdateChunk rebuilds one chunk's mesh. NoChunk is ignored.
func (w *World) UpdateChunk(index int) {
	if index == voxel.NoChunk {
		return
	}
	c := w.chunks[index]
	c.setMesh(w.mesher.Build(c.Voxels(), c.Coord, w.storage))
}

// AddVoxel writes id at a world coordinate and remeshes every chunk whose
// faces the change can affect. Returns false if pos is outside the world.
func (w *World) AddVoxel(pos voxel.Coord, id uint8) bool {
	defer profiling.Track("world.AddVoxel")()
	return w.writeVoxel(pos, id)
}

// RemoveVoxel clears a world voxel and remeshes the affected chunks.
// Returns false if pos is outside the world.
func (w *World) RemoveVoxel(pos voxel.Coord) bool {
	defer profiling.Track("world.RemoveVoxel")()
	return w.writeVoxel(pos, 0)
}

func (w *World) writeVoxel(pos voxel.Coord, id uint8) bool {
	ci := w.storage.Set(pos, id)
	if ci == voxel.NoChunk {
		return false
	}
	w.UpdateChunk(ci)

	// A voxel on a chunk face can hide or expose a face owned by the
	// chunk across that boundary.
	last := w.grid.Size - 1
	local := w.grid.Local(pos)
	if local.X == 0 {
		w.UpdateChunk(w.grid.ChunkIndexOf(voxel.Coord{X: pos.X - 1, Y: pos.Y, Z: pos.Z}))
	}
	if local.X == last {
		w.UpdateChunk(w.grid.ChunkIndexOf(voxel.Coord{X: pos.X + 1, Y: pos.Y, Z: pos.Z}))
	}
	if local.Y == 0 {
		w.UpdateChunk(w.grid.ChunkIndexOf(voxel.Coord{X: pos.X, Y: pos.Y - 1, Z: pos.Z}))
	}
	if local.Y == last {
		w.UpdateChunk(w.grid.ChunkIndexOf(voxel.Coord{X: pos.X, Y: pos.Y + 1, Z: pos.Z}))
	}
	if local.Z == 0 {
		w.UpdateChunk(w.grid.ChunkIndexOf(voxel.Coord{X: pos.X, Y: pos.Y, Z: pos.Z - 1}))
	}
	if local.Z == last {
		w.UpdateChunk(w.grid.ChunkIndexOf(voxel.Coord{X: pos.X, Y: pos.Y, Z: pos.Z + 1}))
	}
	return true
}

// UpdateVoxelSelection re-picks the voxel under the camera ray, replacing
// the previous selection or clearing it on a miss.
func (w *World) UpdateVoxelSelection(origin, direction mgl32.Vec3) (Selection, bool) {
	res := physics.Raycast(origin, direction, w.cfg.MaxRaySteps, w.storage)
	w.selection = Selection{Voxel: res.Voxel, Normal: res.Normal}
	w.hasSelection = res.Hit
	if !res.Hit {
		w.selection = Selection{}
	}
	return w.selection, w.hasSelection
}

// Selection returns the last pick, if it hit.
func (w *World) Selection() (Selection, bool) {
	return w.selection, w.hasSelection
}

// SetVoxel applies the interaction to the current selection: place puts
// material on the face the ray entered, break removes the selected voxel.
// Returns false when there is no selection or the target is outside the world.
func (w *World) SetVoxel(mode InteractionMode, material uint8) bool {
	if !w.hasSelection {
		return false
	}
	if mode == ModePlace {
		return w.AddVoxel(w.selection.Voxel.Add(w.selection.Normal), material)
	}
	return w.RemoveVoxel(w.selection.Voxel)
}

// Voxel returns the id at a world coordinate, 0 outside the world.
func (w *World) Voxel(pos voxel.Coord) uint8 {
	return w.storage.Voxel(pos)
}

// Chunks returns every chunk in index order.
func (w *World) Chunks() []*Chunk {
	return w.chunks
}

// Chunk returns the chunk at index, nil for NoChunk.
func (w *World) Chunk(index int) *Chunk {
	if index < 0 || index >= len(w.chunks) {
		return nil
	}
	return w.chunks[index]
}

// Grid returns the world's indexing scheme.
func (w *World) Grid() voxel.Grid {
	return w.grid
}

// Config returns the config the world was built with.
func (w *World) Config() config.WorldConfig {
	return w.cfg
}

// Center is the middle of the world in world units, the default camera start.
func (w *World) Center() mgl32.Vec3 {
	e := w.grid.Extent()
	return mgl32.Vec3{float32(e.X / 2), float32(e.Y / 2), float32(e.Z / 2)}
}
