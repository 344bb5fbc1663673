package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestPressEdgeLastsOneFrame(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	if !im.JustPressed(ActionToggleMode) || !im.IsActive(ActionToggleMode) {
		t.Fatal("expected press edge and held state")
	}

	im.PostUpdate()
	if im.JustPressed(ActionToggleMode) {
		t.Fatal("press edge survived PostUpdate")
	}
	if !im.IsActive(ActionToggleMode) {
		t.Fatal("held state lost")
	}

	// key repeat is not a new edge
	im.HandleKeyEvent(glfw.KeySpace, glfw.Repeat)
	if im.JustPressed(ActionToggleMode) {
		t.Fatal("repeat produced a press edge")
	}

	im.HandleKeyEvent(glfw.KeySpace, glfw.Release)
	if !im.JustReleased(ActionToggleMode) || im.IsActive(ActionToggleMode) {
		t.Fatal("expected release edge")
	}
}

func TestTapWithinOneFrame(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyX, glfw.Press)
	im.HandleKeyEvent(glfw.KeyX, glfw.Release)

	if !im.JustPressed(ActionCycleMaterial) || !im.JustReleased(ActionCycleMaterial) {
		t.Fatal("tap lost")
	}
}

func TestApplyEditFromKeyAndMouse(t *testing.T) {
	im := NewInputManager()

	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	if !im.JustPressed(ActionApplyEdit) {
		t.Fatal("mouse did not trigger apply")
	}
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Release)
	im.PostUpdate()

	im.HandleKeyEvent(glfw.KeyM, glfw.Press)
	if !im.JustPressed(ActionApplyEdit) {
		t.Fatal("M did not trigger apply")
	}
}

func TestUnboundAndRebound(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	for a := Action(0); a < ActionCount; a++ {
		if im.IsActive(a) {
			t.Fatalf("unbound key activated %d", a)
		}
	}

	im.UnbindKey(glfw.KeyW)
	im.BindKey(glfw.KeyUp, ActionMoveForward)
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if im.IsActive(ActionMoveForward) {
		t.Fatal("unbound W still active")
	}
	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	if !im.IsActive(ActionMoveForward) {
		t.Fatal("rebound key inactive")
	}

	if im.IsActive(ActionCount) || im.JustPressed(-1) {
		t.Fatal("out of range action reported active")
	}
}
