package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupInputHandlers(window *glfw.Window, loop *EngineLoop) {
	loop.engine.Input.SetCallbacks(window)

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if !loop.paused {
			loop.engine.Player.HandleMouseMovement(w, xpos, ypos)
		}
	})

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		loop.engine.Renderer.UpdateViewport(width, height)
	})
}
