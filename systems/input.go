package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls physical input and merges the virtual (touch) snapshot
// into the current frame. Must run before any system that reads actions.
// The merge is a pure recomputation: Current is rebuilt from scratch each
// frame from the physical poll and the virtual flags.
func UpdateInput(e *ecs.ECS) {
	input := components.Input.Get(session(e))

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Analog stick direction
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if x < -cfg.Input.AnalogDeadzone {
			input.Current[cfg.ActionMoveLeft] = true
		}
		if x > cfg.Input.AnalogDeadzone {
			input.Current[cfg.ActionMoveRight] = true
		}
	}

	// Virtual (on-screen) input injected by the host shell
	for id := cfg.ActionID(0); id < cfg.ActionCount; id++ {
		if input.Virtual[id] {
			input.Current[id] = true
		}
	}
}

// SetVirtualInput replaces the injected touch-control snapshot. The flags are
// held until the next call; they merge with physical input rather than
// replacing it.
func SetVirtualInput(e *ecs.ECS, pressed map[cfg.ActionID]bool) {
	input := components.Input.Get(session(e))
	input.Virtual = [cfg.ActionCount]bool{}
	for id, on := range pressed {
		if id > cfg.ActionNone && id < cfg.ActionCount {
			input.Virtual[id] = on
		}
	}
}
