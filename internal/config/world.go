package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid world config")

// WorldConfig describes the fixed shape of a world. It is passed by value
// to world construction and never mutated afterwards.
type WorldConfig struct {
	ChunkSize int `yaml:"chunk_size"` // voxels per chunk edge
	Width     int `yaml:"width"`      // chunks along X
	Height    int `yaml:"height"`     // chunks along Y
	Depth     int `yaml:"depth"`      // chunks along Z

	Seed           int64   `yaml:"seed"`
	NoiseFrequency float64 `yaml:"noise_frequency"`
	NoiseOctaves   int     `yaml:"noise_octaves"`

	TerrainMaterial uint8 `yaml:"terrain_material"`
	Materials       int   `yaml:"materials"` // number of placeable material ids, 1..Materials

	MaxRaySteps int `yaml:"max_ray_steps"`
	MeshWorkers int `yaml:"mesh_workers"` // <= 1 builds sequentially
}

// Default returns the stock 10x5x10 world of 32^3 chunks.
func Default() WorldConfig {
	return WorldConfig{
		ChunkSize:       32,
		Width:           10,
		Height:          5,
		Depth:           10,
		NoiseFrequency:  0.01,
		NoiseOctaves:    1,
		TerrainMaterial: 6,
		Materials:       7,
		MaxRaySteps:     100,
		MeshWorkers:     1,
	}
}

// ChunkVolume is the number of voxels in one chunk.
func (c WorldConfig) ChunkVolume() int {
	return c.ChunkSize * c.ChunkSize * c.ChunkSize
}

// ChunkCount is the number of chunks in the world.
func (c WorldConfig) ChunkCount() int {
	return c.Width * c.Height * c.Depth
}

// Validate reports the first problem with the config.
func (c WorldConfig) Validate() error {
	switch {
	case c.ChunkSize < 1 || c.ChunkSize > 254:
		// vertex positions reach ChunkSize and are packed into a byte
		return fmt.Errorf("%w: chunk_size %d not in [1,254]", ErrInvalid, c.ChunkSize)
	case c.Width < 1 || c.Height < 1 || c.Depth < 1:
		return fmt.Errorf("%w: extent %dx%dx%d must be positive", ErrInvalid, c.Width, c.Height, c.Depth)
	case c.Materials < 1 || c.Materials > 255:
		return fmt.Errorf("%w: materials %d not in [1,255]", ErrInvalid, c.Materials)
	case c.TerrainMaterial == 0 || int(c.TerrainMaterial) > c.Materials:
		return fmt.Errorf("%w: terrain_material %d not in [1,%d]", ErrInvalid, c.TerrainMaterial, c.Materials)
	case c.NoiseFrequency <= 0:
		return fmt.Errorf("%w: noise_frequency must be positive", ErrInvalid)
	case c.NoiseOctaves < 1:
		return fmt.Errorf("%w: noise_octaves must be at least 1", ErrInvalid)
	case c.MaxRaySteps < 1:
		return fmt.Errorf("%w: max_ray_steps must be at least 1", ErrInvalid)
	}
	return nil
}

// Load reads a YAML world config. Keys missing from the file keep their
// Default values.
func Load(path string) (WorldConfig, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
