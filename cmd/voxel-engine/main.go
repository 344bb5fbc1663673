package main

import (
	"flag"
	"log"
	"runtime"

	"voxel-engine/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "world config YAML (defaults used when empty)")
	fpsLimit := flag.Int("fps", config.GetFPSLimit(), "frame cap, 0 for uncapped")
	vsync := flag.Bool("vsync", false, "enable vsync")
	texturePath := flag.String("textures", "assets/textures/materials.png", "material tile strip")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	config.SetFPSLimit(*fpsLimit)
	config.SetVSync(*vsync)

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		log.Fatalf("window: %v", err)
	}

	engine, err := setupEngine(cfg, *texturePath)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}
	defer engine.Renderer.Dispose()

	loop := NewEngineLoop(window, engine)
	setupInputHandlers(window, loop)
	loop.Run()
}
