package main

import (
	"fmt"
	"log"

	"voxel-engine/internal/config"
	"voxel-engine/internal/graphics/renderables/chunks"
	"voxel-engine/internal/graphics/renderables/crosshair"
	"voxel-engine/internal/graphics/renderables/selection"
	"voxel-engine/internal/graphics/renderer"
	"voxel-engine/internal/input"
	"voxel-engine/internal/player"
	"voxel-engine/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	windowWidth  = 1600
	windowHeight = 900
)

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "voxel-engine", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	if config.GetVSync() {
		glfw.SwapInterval(1)
	} else {
		// frame pacing is left to the FPS limiter
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

// Engine holds the initialised components.
type Engine struct {
	Renderer *renderer.Renderer
	Chunks   *chunks.Chunks
	World    *world.World
	Player   *player.Player
	Input    *input.InputManager
}

func setupEngine(cfg config.WorldConfig, texturePath string) (*Engine, error) {
	w, err := world.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	s := w.Stats()
	log.Printf("world: %d chunks, %d solid voxels, %d faces", s.Chunks, s.SolidVoxels, s.Faces)

	chunkRenderer := chunks.NewChunks(texturePath, cfg.Materials)
	r, err := renderer.NewRenderer(windowWidth, windowHeight,
		chunkRenderer,
		selection.NewOutline(),
		crosshair.NewCrosshair(),
	)
	if err != nil {
		return nil, err
	}

	return &Engine{
		Renderer: r,
		Chunks:   chunkRenderer,
		World:    w,
		Player:   player.New(w.Center(), cfg.Materials),
		Input:    input.NewInputManager(),
	}, nil
}
