package terrain

import "math"

// Noise2D is a coherent 2D noise field returning values in [-1,1].
// Implementations must be pure: equal inputs give equal outputs.
type Noise2D interface {
	Eval(x, z float64) float64
}

// ValueNoise is seeded multi-octave lattice value noise.
type ValueNoise struct {
	Seed        int64
	Octaves     int
	Persistence float64
	Lacunarity  float64
}

// NewValueNoise returns value noise with the usual halving/doubling octave falloff.
func NewValueNoise(seed int64, octaves int) ValueNoise {
	if octaves < 1 {
		octaves = 1
	}
	return ValueNoise{
		Seed:        seed,
		Octaves:     octaves,
		Persistence: 0.5,
		Lacunarity:  2.0,
	}
}

// Eval samples the field, remapped from [0,1] to [-1,1].
func (n ValueNoise) Eval(x, z float64) float64 {
	return octaveNoise2D(x, z, n.Seed, n.Octaves, n.Persistence, n.Lacunarity)*2 - 1
}

// Flat is a constant field. Useful for worlds with a known surface height.
type Flat float64

// Eval returns the constant.
func (f Flat) Eval(_, _ float64) float64 { return float64(f) }

// quintic fade 6t^5 - 15t^4 + 10t^3
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// splitmix64 over the lattice point
func hash2(x, z, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(z)*0x517CC1B727220A95 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func latticeValue(x, z, seed int64) float64 {
	h := hash2(x, z, seed)
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func valueNoise2D(x, z float64, seed int64) float64 {
	x0 := math.Floor(x)
	z0 := math.Floor(z)

	fx := fade(x - x0)
	fz := fade(z - z0)

	ix, iz := int64(x0), int64(z0)
	v00 := latticeValue(ix, iz, seed)
	v10 := latticeValue(ix+1, iz, seed)
	v01 := latticeValue(ix, iz+1, seed)
	v11 := latticeValue(ix+1, iz+1, seed)

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fz) // [0,1]
}

func octaveNoise2D(x, z float64, seed int64, octaves int, persistence, lacunarity float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for i := range octaves {
		sum += valueNoise2D(x*frequency, z*frequency, seed+int64(i*131)) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm // [0,1]
}
