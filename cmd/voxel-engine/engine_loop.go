package main

import (
	"log"
	"time"

	"voxel-engine/internal/config"
	"voxel-engine/internal/graphics/renderer"
	"voxel-engine/internal/input"
	"voxel-engine/internal/physics"
	"voxel-engine/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// EngineLoop runs update, pick and render once per frame.
type EngineLoop struct {
	window     *glfw.Window
	engine     *Engine
	fpsLimiter *FPSLimiter

	paused bool

	frames           int
	lastFPSCheckTime time.Time
	lastTime         time.Time
}

func NewEngineLoop(window *glfw.Window, e *Engine) *EngineLoop {
	now := time.Now()
	return &EngineLoop{
		window:           window,
		engine:           e,
		fpsLimiter:       NewFPSLimiter(),
		lastFPSCheckTime: now,
		lastTime:         now,
	}
}

func (l *EngineLoop) Run() {
	if w, h := l.window.GetFramebufferSize(); w > 0 {
		l.engine.Renderer.UpdateViewport(w, h)
	}
	for !l.window.ShouldClose() {
		l.tick()
	}
}

func (l *EngineLoop) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(l.lastTime).Seconds()
	l.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	l.handleGlobalActions()
	if !l.paused {
		l.update(dt)
	}

	p := l.engine.Player
	l.engine.Renderer.Render(l.engine.World, renderer.Frame{
		View: p.ViewMatrix(),
		Mode: p.Mode,
	})

	func() { defer profiling.Track("glfw.SwapBuffers")(); l.window.SwapBuffers() }()
	l.engine.Input.PostUpdate()

	l.reportTiming(now)
	l.fpsLimiter.Wait(l.paused)
}

func (l *EngineLoop) handleGlobalActions() {
	im := l.engine.Input
	if im.JustPressed(input.ActionPause) {
		l.paused = !l.paused
		if l.paused {
			l.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		} else {
			l.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
			l.engine.Player.FirstMouse = true
		}
	}
	if im.JustPressed(input.ActionToggleWireframe) {
		l.engine.Chunks.Wireframe = !l.engine.Chunks.Wireframe
	}
}

// update moves the camera, re-picks the voxel under the crosshair and
// applies a pending edit against that fresh selection.
func (l *EngineLoop) update(dt float64) {
	p := l.engine.Player
	w := l.engine.World

	var apply bool
	func() {
		defer profiling.Track("player.Update")()
		apply = p.Update(dt, l.engine.Input)
	}()

	func() {
		defer profiling.Track("world.UpdateVoxelSelection")()
		w.UpdateVoxelSelection(p.Position, physics.AimFromBasis(p.Up(), p.Right()))
	}()

	if apply {
		w.SetVoxel(p.Mode, p.Material)
	}
}

func (l *EngineLoop) reportTiming(frameStart time.Time) {
	l.frames++
	if time.Since(l.lastFPSCheckTime) >= time.Second {
		p := l.engine.Player
		log.Printf("FPS: %d mode=%v material=%d", l.frames, p.Mode, p.Material)
		l.frames = 0
		l.lastFPSCheckTime = time.Now()
	}

	limit := config.GetFPSLimit()
	if limit <= 0 || l.paused {
		return
	}
	budget := time.Second / time.Duration(limit)
	// GPU sync in SwapBuffers is part of the frame, limiter sleep is not
	if took := time.Since(frameStart); took > 2*budget {
		log.Printf("slow frame: %.2fms (budget %.2fms) %s",
			float64(took.Microseconds())/1000, float64(budget.Microseconds())/1000, profiling.TopN(5))
	}
}
