package meshing

import (
	"bytes"
	"testing"

	"voxel-engine/internal/config"
	"voxel-engine/internal/terrain"
	"voxel-engine/internal/voxel"
)

func newStorage(size, w, h, d int) *voxel.Storage {
	cfg := config.Default()
	cfg.ChunkSize = size
	cfg.Width, cfg.Height, cfg.Depth = w, h, d
	return voxel.NewStorage(voxel.NewGrid(cfg))
}

func buildChunk(s *voxel.Storage, cc voxel.ChunkCoord) *Mesh {
	g := s.Grid()
	return NewMesher(g).Build(s.Slot(g.ChunkIndex(cc)), cc, s)
}

func countFaces(m *Mesh) map[voxel.Face]int {
	counts := make(map[voxel.Face]int)
	for i := 0; i < m.VertexCount(); i += VerticesPerFace {
		counts[m.Vertex(i).Face]++
	}
	return counts
}

func TestSingleVoxelMesh(t *testing.T) {
	s := newStorage(4, 2, 2, 2)
	s.Set(voxel.Coord{X: 1, Y: 1, Z: 1}, 5)

	m := buildChunk(s, voxel.ChunkCoord{})
	if m == nil {
		t.Fatal("expected a mesh")
	}
	if got := m.VertexCount(); got != 36 {
		t.Fatalf("single voxel: got %d vertices, want 36", got)
	}
	if got := len(m.Vertices); got != 36*VertexSize {
		t.Fatalf("single voxel: got %d bytes, want %d", got, 36*VertexSize)
	}

	faces := countFaces(m)
	for f := voxel.Face(0); f < voxel.FaceCount; f++ {
		if faces[f] != 1 {
			t.Errorf("face %v emitted %d times, want 1", f, faces[f])
		}
	}
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		if v.VoxelID != 5 {
			t.Fatalf("vertex %d voxel id = %d, want 5", i, v.VoxelID)
		}
		if v.U > 1 || v.V > 1 {
			t.Fatalf("vertex %d uv = (%d,%d)", i, v.U, v.V)
		}
		if v.X < 1 || v.X > 2 || v.Y < 1 || v.Y > 2 || v.Z < 1 || v.Z > 2 {
			t.Fatalf("vertex %d position (%d,%d,%d) outside voxel bounds", i, v.X, v.Y, v.Z)
		}
	}
}

func TestTwoAdjacentVoxelsShareHiddenFace(t *testing.T) {
	tests := []struct {
		name string
		b    voxel.Coord
	}{
		{"along x", voxel.Coord{X: 2, Y: 1, Z: 1}},
		{"along y", voxel.Coord{X: 1, Y: 2, Z: 1}},
		{"along z", voxel.Coord{X: 1, Y: 1, Z: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStorage(4, 1, 1, 1)
			s.Set(voxel.Coord{X: 1, Y: 1, Z: 1}, 1)
			s.Set(tt.b, 1)
			m := buildChunk(s, voxel.ChunkCoord{})
			// 2 voxels * 6 faces - 2 hidden = 10 faces
			if got := m.VertexCount(); got != 60 {
				t.Fatalf("got %d vertices, want 60", got)
			}
		})
	}
}

func TestTwoSeparatedVoxels(t *testing.T) {
	s := newStorage(4, 1, 1, 1)
	s.Set(voxel.Coord{X: 0, Y: 1, Z: 1}, 1)
	s.Set(voxel.Coord{X: 2, Y: 1, Z: 1}, 1)
	if got := buildChunk(s, voxel.ChunkCoord{}).VertexCount(); got != 72 {
		t.Fatalf("got %d vertices, want 72", got)
	}
}

func TestWorldEdgeFacesAreDrawn(t *testing.T) {
	s := newStorage(4, 2, 2, 2)
	// -x, -y and -z neighbours all lie outside the world
	s.Set(voxel.Coord{}, 1)
	m := buildChunk(s, voxel.ChunkCoord{})
	faces := countFaces(m)
	for _, f := range []voxel.Face{voxel.FaceLeft, voxel.FaceBottom, voxel.FaceFront} {
		if faces[f] != 1 {
			t.Errorf("world-edge face %v emitted %d times, want 1", f, faces[f])
		}
	}
	if got := m.VertexCount(); got != 36 {
		t.Errorf("got %d vertices, want 36", got)
	}

	// far corner of the far chunk
	far := newStorage(4, 2, 2, 2)
	far.Set(voxel.Coord{X: 7, Y: 7, Z: 7}, 1)
	if got := buildChunk(far, voxel.ChunkCoord{X: 1, Y: 1, Z: 1}).VertexCount(); got != 36 {
		t.Errorf("far corner: got %d vertices, want 36", got)
	}
}

func TestCrossChunkFaceCulling(t *testing.T) {
	s := newStorage(4, 2, 1, 1)
	s.Set(voxel.Coord{X: 3, Y: 1, Z: 1}, 1) // local x=3 in chunk 0
	s.Set(voxel.Coord{X: 4, Y: 1, Z: 1}, 1) // local x=0 in chunk 1

	left := buildChunk(s, voxel.ChunkCoord{X: 0})
	if got := left.VertexCount(); got != 30 {
		t.Errorf("chunk 0: got %d vertices, want 30", got)
	}
	if countFaces(left)[voxel.FaceRight] != 0 {
		t.Error("chunk 0 drew the +x face hidden by chunk 1")
	}

	right := buildChunk(s, voxel.ChunkCoord{X: 1})
	if got := right.VertexCount(); got != 30 {
		t.Errorf("chunk 1: got %d vertices, want 30", got)
	}
	if countFaces(right)[voxel.FaceLeft] != 0 {
		t.Error("chunk 1 drew the -x face hidden by chunk 0")
	}
}

func TestEmptyChunkHasNoMesh(t *testing.T) {
	s := newStorage(4, 1, 1, 1)
	m := buildChunk(s, voxel.ChunkCoord{})
	if m != nil {
		t.Fatalf("empty chunk produced %d vertices", m.VertexCount())
	}
	if m.VertexCount() != 0 || m.FaceCount() != 0 {
		t.Error("nil mesh should report zero counts")
	}
}

func TestFullChunkOnlyShowsShell(t *testing.T) {
	const size = 4
	s := newStorage(size, 1, 1, 1)
	slot := s.Slot(0)
	for i := range slot {
		slot[i] = 2
	}
	m := buildChunk(s, voxel.ChunkCoord{})
	if got, want := m.FaceCount(), 6*size*size; got != want {
		t.Fatalf("got %d faces, want %d", got, want)
	}
}

func TestCheckerboardWorstCase(t *testing.T) {
	const size = 3 // odd, so solids outnumber air
	s := newStorage(size, 1, 1, 1)
	solid := 0
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			for z := 0; z < size; z++ {
				if (x+y+z)%2 == 0 {
					s.Set(voxel.Coord{X: x, Y: y, Z: z}, 1)
					solid++
				}
			}
		}
	}
	m := buildChunk(s, voxel.ChunkCoord{})
	if got, want := m.FaceCount(), solid*6; got != want {
		t.Fatalf("got %d faces, want %d", got, want)
	}
	if got := len(m.Vertices); got > worstCaseBytes(s.Grid()) {
		t.Errorf("mesh %d bytes exceeds worst case %d", got, worstCaseBytes(s.Grid()))
	}
}

// The first triangle of every face must wind counter-clockwise around the
// outward normal.
func TestFaceWinding(t *testing.T) {
	for f := voxel.Face(0); f < voxel.FaceCount; f++ {
		c := faceCorners[f]
		v0 := [3]int{int(c[0].dx), int(c[0].dy), int(c[0].dz)}
		v1 := [3]int{int(c[1].dx), int(c[1].dy), int(c[1].dz)}
		v2 := [3]int{int(c[2].dx), int(c[2].dy), int(c[2].dz)}
		e1 := [3]int{v1[0] - v0[0], v1[1] - v0[1], v1[2] - v0[2]}
		e2 := [3]int{v2[0] - v0[0], v2[1] - v0[1], v2[2] - v0[2]}
		cross := voxel.Coord{
			X: e1[1]*e2[2] - e1[2]*e2[1],
			Y: e1[2]*e2[0] - e1[0]*e2[2],
			Z: e1[0]*e2[1] - e1[1]*e2[0],
		}
		if cross != f.Normal() {
			t.Errorf("face %v winds toward %v, want %v", f, cross, f.Normal())
		}

		seen := map[[2]uint8]bool{}
		for _, k := range c {
			seen[[2]uint8{k.u, k.v}] = true
		}
		if len(seen) != 4 {
			t.Errorf("face %v reuses texture corners: %v", f, seen)
		}
	}
}

func TestTerrainChunkMeshInvariants(t *testing.T) {
	cfg := config.Default()
	cfg.ChunkSize = 8
	cfg.Width, cfg.Height, cfg.Depth = 2, 2, 2
	cfg.NoiseFrequency = 0.08
	g := voxel.NewGrid(cfg)
	s := voxel.NewStorage(g)
	gen := terrain.NewGenerator(cfg)
	for i := 0; i < g.ChunkCount(); i++ {
		gen.Fill(g.ChunkCoordOf(i), s.Slot(i))
	}

	mesher := NewMesher(g)
	for i := 0; i < g.ChunkCount(); i++ {
		m := mesher.Build(s.Slot(i), g.ChunkCoordOf(i), s)
		if m == nil {
			continue
		}
		if m.VertexCount()%VerticesPerFace != 0 {
			t.Fatalf("chunk %d: %d vertices not a multiple of 6", i, m.VertexCount())
		}
		for v := 0; v < m.VertexCount(); v++ {
			vert := m.Vertex(v)
			if int(vert.X) > cfg.ChunkSize || int(vert.Y) > cfg.ChunkSize || int(vert.Z) > cfg.ChunkSize {
				t.Fatalf("chunk %d vertex %d out of range: %+v", i, v, vert)
			}
			if vert.Face >= voxel.FaceCount {
				t.Fatalf("chunk %d vertex %d bad face %d", i, v, vert.Face)
			}
		}
	}
}

// Reusing a mesher must not leak bytes from an earlier, larger build.
func TestMesherScratchReuse(t *testing.T) {
	s := newStorage(4, 1, 1, 1)
	mesher := NewMesher(s.Grid())

	slot := s.Slot(0)
	for i := range slot {
		slot[i] = 1
	}
	big := mesher.Build(slot, voxel.ChunkCoord{}, s)

	clear(slot)
	s.Set(voxel.Coord{X: 2, Y: 2, Z: 2}, 3)
	small := mesher.Build(slot, voxel.ChunkCoord{}, s)

	if small.VertexCount() != 36 {
		t.Fatalf("second build: %d vertices, want 36", small.VertexCount())
	}
	if big.FaceCount() != 96 {
		t.Fatalf("first build changed after reuse: %d faces", big.FaceCount())
	}
}

func TestWorkerPoolMatchesSequential(t *testing.T) {
	cfg := config.Default()
	cfg.ChunkSize = 8
	cfg.Width, cfg.Height, cfg.Depth = 3, 2, 3
	cfg.NoiseFrequency = 0.05
	g := voxel.NewGrid(cfg)
	s := voxel.NewStorage(g)
	gen := terrain.NewGenerator(cfg)

	jobs := make([]MeshJob, g.ChunkCount())
	for i := range jobs {
		jobs[i] = MeshJob{Index: i, Coord: g.ChunkCoordOf(i)}
		gen.Fill(jobs[i].Coord, s.Slot(i))
	}

	seq, err := NewWorkerPool(g, 1).BuildAll(s, jobs)
	if err != nil {
		t.Fatal(err)
	}
	par, err := NewWorkerPool(g, 4).BuildAll(s, jobs)
	if err != nil {
		t.Fatal(err)
	}
	for i := range jobs {
		if seq[i].Index != i || par[i].Index != i {
			t.Fatalf("result %d out of order", i)
		}
		if (seq[i].Mesh == nil) != (par[i].Mesh == nil) {
			t.Fatalf("chunk %d: nil mismatch", i)
		}
		if seq[i].Mesh != nil && !bytes.Equal(seq[i].Mesh.Vertices, par[i].Mesh.Vertices) {
			t.Fatalf("chunk %d: parallel mesh differs", i)
		}
	}
}

func TestWorkerPoolFailedJobFailsBatch(t *testing.T) {
	s := newStorage(4, 2, 1, 1)
	g := s.Grid()
	s.Set(voxel.Coord{X: 1, Y: 1, Z: 1}, 1)

	// index 5 has no slot in a two-chunk arena
	jobs := []MeshJob{
		{Index: 0, Coord: g.ChunkCoordOf(0)},
		{Index: 5, Coord: voxel.ChunkCoord{X: 5}},
		{Index: 1, Coord: g.ChunkCoordOf(1)},
	}
	for _, workers := range []int{0, 1, 4} {
		res, err := NewWorkerPool(g, workers).BuildAll(s, jobs)
		if err == nil {
			t.Errorf("workers=%d: expected error for out-of-range job", workers)
		}
		if res != nil {
			t.Errorf("workers=%d: got %d partial results", workers, len(res))
		}
	}
}

func BenchmarkBuildTerrainChunk(b *testing.B) {
	cfg := config.Default()
	cfg.Width, cfg.Height, cfg.Depth = 3, 3, 3
	g := voxel.NewGrid(cfg)
	s := voxel.NewStorage(g)
	gen := terrain.NewGenerator(cfg)
	for i := 0; i < g.ChunkCount(); i++ {
		gen.Fill(g.ChunkCoordOf(i), s.Slot(i))
	}
	cc := voxel.ChunkCoord{X: 1, Y: 0, Z: 1}
	slot := s.Slot(g.ChunkIndex(cc))
	mesher := NewMesher(g)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mesher.Build(slot, cc, s)
	}
}
