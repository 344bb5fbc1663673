package config

import "sync"

// DisplaySettings holds runtime display configuration
type DisplaySettings struct {
	mu               sync.RWMutex
	fpsLimit         int // 0 means uncapped
	vsync            bool
	mouseSensitivity float64
	moveSpeed        float64 // voxels per second
}

var globalDisplaySettings = &DisplaySettings{
	fpsLimit:         120,
	vsync:            false,
	mouseSensitivity: 0.1,
	moveSpeed:        20,
}

// GetFPSLimit returns the frame cap, 0 when uncapped
func GetFPSLimit() int {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Values below 0 disable the cap.
func SetFPSLimit(limit int) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalDisplaySettings.fpsLimit = limit
}

// GetVSync returns whether buffer swaps wait for vertical sync
func GetVSync() bool {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.vsync
}

// SetVSync toggles vertical sync
func SetVSync(enabled bool) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()
	globalDisplaySettings.vsync = enabled
}

// GetMouseSensitivity returns degrees of rotation per pixel of mouse travel
func GetMouseSensitivity() float64 {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.mouseSensitivity
}

// SetMouseSensitivity sets the mouse sensitivity, clamped to a usable range
func SetMouseSensitivity(s float64) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()

	if s < 0.01 {
		s = 0.01
	}
	if s > 1 {
		s = 1
	}

	globalDisplaySettings.mouseSensitivity = s
}

// GetMoveSpeed returns camera fly speed in voxels per second
func GetMoveSpeed() float64 {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.moveSpeed
}

// SetMoveSpeed sets the camera fly speed
func SetMoveSpeed(speed float64) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()

	if speed < 1 {
		speed = 1
	}
	globalDisplaySettings.moveSpeed = speed
}
