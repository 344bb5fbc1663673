package graphics

import (
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// SplitStrip cuts a vertical strip of equally sized tiles into layers.
// With flip set the whole strip is mirrored top to bottom first, so layer 0
// is the bottom tile, upright in GL's bottom-left texture origin.
func SplitStrip(src image.Image, layers int, flip bool) ([]*image.RGBA, error) {
	b := src.Bounds()
	if layers <= 0 {
		return nil, fmt.Errorf("layer count %d", layers)
	}
	if b.Dy()%layers != 0 {
		return nil, fmt.Errorf("strip height %d not divisible into %d layers", b.Dy(), layers)
	}

	strip := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if flip {
		// y' = h - y, sampled at pixel centres so every row maps exactly
		s2d := f64.Aff3{
			1, 0, float64(-b.Min.X),
			0, -1, float64(b.Dy() + b.Min.Y),
		}
		draw.NearestNeighbor.Transform(strip, s2d, src, b, draw.Src, nil)
	} else {
		draw.Copy(strip, image.Point{}, src, b, draw.Src, nil)
	}

	h := b.Dy() / layers
	out := make([]*image.RGBA, layers)
	for i := range out {
		layer := image.NewRGBA(image.Rect(0, 0, b.Dx(), h))
		draw.Copy(layer, image.Point{}, strip, image.Rect(0, i*h, b.Dx(), (i+1)*h), draw.Src, nil)
		out[i] = layer
	}
	return out, nil
}

// LoadTextureArray decodes a tile strip (PNG or BMP) and uploads it as a
// GL_TEXTURE_2D_ARRAY with one layer per tile.
func LoadTextureArray(path string, layers int, flip bool) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open texture array: %w", err)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", path, err)
	}

	tiles, err := SplitStrip(img, layers, flip)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	width := int32(tiles[0].Rect.Dx())
	height := int32(tiles[0].Rect.Dy())

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, texture)

	gl.TexImage3D(gl.TEXTURE_2D_ARRAY, 0, gl.RGBA8, width, height, int32(len(tiles)), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	for i, tile := range tiles {
		gl.TexSubImage3D(gl.TEXTURE_2D_ARRAY, 0, 0, 0, int32(i), width, height, 1, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(tile.Pix))
	}

	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MIN_FILTER, gl.NEAREST_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.GenerateMipmap(gl.TEXTURE_2D_ARRAY)

	gl.BindTexture(gl.TEXTURE_2D_ARRAY, 0)

	log.Printf("graphics: loaded %d texture layers (%dx%d) from %s", len(tiles), width, height, path)
	return texture, nil
}
