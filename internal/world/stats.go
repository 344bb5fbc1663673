package world

// Stats summarises world contents.
type Stats struct {
	Chunks       int
	MeshedChunks int
	SolidVoxels  int
	Faces        int
}

// Stats walks the arena and the meshes. O(world volume); not for per-frame use.
func (w *World) Stats() Stats {
	s := Stats{Chunks: len(w.chunks)}
	for _, c := range w.chunks {
		for _, v := range c.Voxels() {
			if v != 0 {
				s.SolidVoxels++
			}
		}
		if m := c.Mesh(); m != nil {
			s.MeshedChunks++
			s.Faces += m.FaceCount()
		}
	}
	return s
}
