package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if got, want := c.ChunkVolume(), 32*32*32; got != want {
		t.Errorf("ChunkVolume = %d, want %d", got, want)
	}
	if got, want := c.ChunkCount(), 500; got != want {
		t.Errorf("ChunkCount = %d, want %d", got, want)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*WorldConfig)
	}{
		{"zero chunk size", func(c *WorldConfig) { c.ChunkSize = 0 }},
		{"chunk size over byte range", func(c *WorldConfig) { c.ChunkSize = 255 }},
		{"zero width", func(c *WorldConfig) { c.Width = 0 }},
		{"negative depth", func(c *WorldConfig) { c.Depth = -1 }},
		{"air terrain", func(c *WorldConfig) { c.TerrainMaterial = 0 }},
		{"terrain past materials", func(c *WorldConfig) { c.TerrainMaterial = 8 }},
		{"no materials", func(c *WorldConfig) { c.Materials = 0 }},
		{"zero frequency", func(c *WorldConfig) { c.NoiseFrequency = 0 }},
		{"zero octaves", func(c *WorldConfig) { c.NoiseOctaves = 0 }},
		{"zero ray steps", func(c *WorldConfig) { c.MaxRaySteps = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	data := "chunk_size: 16\nwidth: 4\nseed: 99\nmesh_workers: 4\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ChunkSize != 16 || c.Width != 4 || c.Seed != 99 || c.MeshWorkers != 4 {
		t.Errorf("overrides not applied: %+v", c)
	}
	// untouched keys keep defaults
	if c.Height != 5 || c.Depth != 10 || c.MaxRaySteps != 100 || c.TerrainMaterial != 6 {
		t.Errorf("defaults lost: %+v", c)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	if err := os.WriteFile(path, []byte("chunk_size: 300\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load() = %v, want ErrInvalid", err)
	}

	if err := os.WriteFile(path, []byte("width: [1, 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected YAML syntax error")
	}
}

func TestFPSLimitClamp(t *testing.T) {
	old := GetFPSLimit()
	defer SetFPSLimit(old)

	SetFPSLimit(-5)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("negative limit stored as %d, want 0", got)
	}
	SetFPSLimit(5000)
	if got := GetFPSLimit(); got != 1000 {
		t.Errorf("huge limit stored as %d, want 1000", got)
	}
}

func TestShippedExampleConfigLoads(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "assets", "world.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Seed != 1337 || c.MeshWorkers != 4 {
		t.Errorf("example config not applied: %+v", c)
	}
}
