package config

import (
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
)

// PlatformDescriptor is a static snapshot of host capabilities, detected once
// at startup and consumed read-only by the engine (canvas sizing, quality
// scaling, haptic gating).
type PlatformDescriptor struct {
	Mobile          bool
	TouchCapable    bool
	SupportsHaptics bool
	PixelRatio      float64
}

// DetectPlatform builds the platform descriptor for the current host.
// Must be called from the main goroutine before the game loop starts.
func DetectPlatform() PlatformDescriptor {
	mobile := runtime.GOOS == "android" || runtime.GOOS == "ios"
	return PlatformDescriptor{
		Mobile:          mobile,
		TouchCapable:    mobile || runtime.GOOS == "js",
		SupportsHaptics: true, // gamepad rumble; actual support probed per-device at call time
		PixelRatio:      ebiten.Monitor().DeviceScaleFactor(),
	}
}
