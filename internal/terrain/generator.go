package terrain

import (
	"math"

	"voxel-engine/internal/config"
	"voxel-engine/internal/voxel"
)

// Generator fills chunks from a 2D height field. Heights depend only on the
// world (x,z) column, so neighbouring chunks always agree at shared edges.
type Generator struct {
	grid      voxel.Grid
	noise     Noise2D
	frequency float64
	amplitude float64 // heights span [0, 2*amplitude]
	material  uint8
}

// NewGenerator builds the stock generator for a config: seeded value noise,
// amplitude equal to one chunk edge.
func NewGenerator(cfg config.WorldConfig) *Generator {
	return NewGeneratorWithNoise(cfg, NewValueNoise(cfg.Seed, cfg.NoiseOctaves))
}

// NewGeneratorWithNoise lets callers supply the height field.
func NewGeneratorWithNoise(cfg config.WorldConfig, noise Noise2D) *Generator {
	return &Generator{
		grid:      voxel.NewGrid(cfg),
		noise:     noise,
		frequency: cfg.NoiseFrequency,
		amplitude: float64(cfg.ChunkSize),
		material:  cfg.TerrainMaterial,
	}
}

// Grid returns the chunk layout the generator fills for.
func (g *Generator) Grid() voxel.Grid {
	return g.grid
}

// HeightAt returns the number of solid voxels in the world column (wx,wz).
func (g *Generator) HeightAt(wx, wz int) int {
	n := g.noise.Eval(float64(wx)*g.frequency, float64(wz)*g.frequency)
	h := int(math.Floor(n*g.amplitude + g.amplitude))
	if h < 0 {
		return 0
	}
	return h
}

// Fill overwrites dst (one chunk's voxels) with terrain for chunk cc.
func (g *Generator) Fill(cc voxel.ChunkCoord, dst []uint8) {
	clear(dst)

	size := g.grid.Size
	area := size * size
	origin := g.grid.Origin(cc)

	for x := range size {
		for z := range size {
			local := g.HeightAt(origin.X+x, origin.Z+z) - origin.Y
			if local > size {
				local = size
			}
			for y := 0; y < local; y++ {
				dst[x+y*size+z*area] = g.material
			}
		}
	}
}

// Generate returns a freshly allocated voxel buffer for chunk cc.
func (g *Generator) Generate(cc voxel.ChunkCoord) []uint8 {
	buf := make([]uint8, g.grid.ChunkVolume())
	g.Fill(cc, buf)
	return buf
}
