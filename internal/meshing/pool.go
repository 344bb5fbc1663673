package meshing

import (
	"fmt"
	"sync"

	"github.com/alitto/pond/v2"

	"voxel-engine/internal/profiling"
	"voxel-engine/internal/voxel"
)

// MeshJob is one chunk to mesh.
type MeshJob struct {
	Index int // chunk index, also the chunk's slot in the storage arena
	Coord voxel.ChunkCoord
}

// MeshResult pairs a job with its mesh (nil when nothing is visible).
type MeshResult struct {
	MeshJob
	Mesh *Mesh
}

// WorkerPool meshes batches of chunks in parallel. Each job reads its own
// slot and its neighbours' slots and writes nothing shared, so a batch is
// safe as long as no voxel edits run concurrently with it.
type WorkerPool struct {
	grid    voxel.Grid
	workers int
	meshers sync.Pool
}

// NewWorkerPool creates a pool using up to workers goroutines per batch.
// workers <= 1 meshes one chunk at a time.
func NewWorkerPool(g voxel.Grid, workers int) *WorkerPool {
	p := &WorkerPool{grid: g, workers: max(workers, 1)}
	p.meshers.New = func() any { return NewMesher(g) }
	return p
}

// BuildAll meshes every job and returns results in job order. A job that
// panics fails the whole batch and no results are returned.
func (p *WorkerPool) BuildAll(world *voxel.Storage, jobs []MeshJob) ([]MeshResult, error) {
	defer profiling.Track("meshing.BuildAll")()

	results := make([]MeshResult, len(jobs))
	pool := pond.NewPool(p.workers)
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for i, job := range jobs {
		group.Submit(func() {
			m := p.meshers.Get().(*Mesher)
			defer p.meshers.Put(m)
			results[i] = MeshResult{MeshJob: job, Mesh: m.Build(world.Slot(job.Index), job.Coord, world)}
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("mesh batch of %d chunks: %w", len(jobs), err)
	}
	return results, nil
}

// GetWorkers returns the configured parallelism.
func (p *WorkerPool) GetWorkers() int {
	return p.workers
}
