package systems

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/components"
)

// Vibration presets per strength.
var hapticPatterns = map[components.HapticStrength]ebiten.VibrateGamepadOptions{
	components.HapticLight:  {Duration: 60 * time.Millisecond, StrongMagnitude: 0.2, WeakMagnitude: 0.4},
	components.HapticMedium: {Duration: 100 * time.Millisecond, StrongMagnitude: 0.5, WeakMagnitude: 0.6},
	components.HapticHeavy:  {Duration: 160 * time.Millisecond, StrongMagnitude: 1.0, WeakMagnitude: 0.8},
}

var hapticGamepadIDs []ebiten.GamepadID

// UpdateHaptics counts scheduled events down and fires the due ones.
func UpdateHaptics(e *ecs.ECS) {
	h := components.Haptics.Get(session(e))
	if len(h.Pending) == 0 {
		return
	}
	if !h.Enabled || !h.Supported {
		h.Pending = h.Pending[:0]
		return
	}

	dt := delta(e)
	kept := h.Pending[:0]
	for _, ev := range h.Pending {
		ev.Delay -= dt
		if ev.Delay > 0 {
			kept = append(kept, ev)
			continue
		}
		fireHaptic(ev.Strength)
	}
	h.Pending = kept
}

// ScheduleImpactHaptics queues the staggered damage rumble: a heavy pulse
// now, medium after 200ms, light after 400ms. The later pulses ride the
// pending queue so pausing or tearing down the session cancels them.
func ScheduleImpactHaptics(e *ecs.ECS) {
	h := components.Haptics.Get(session(e))
	if !h.Enabled || !h.Supported {
		return
	}
	h.Pending = append(h.Pending,
		components.HapticEvent{Delay: 0, Strength: components.HapticHeavy},
		components.HapticEvent{Delay: 0.2, Strength: components.HapticMedium},
		components.HapticEvent{Delay: 0.4, Strength: components.HapticLight},
	)
}

// ScheduleHaptic queues a single rumble after delay seconds.
func ScheduleHaptic(e *ecs.ECS, strength components.HapticStrength, delay float64) {
	h := components.Haptics.Get(session(e))
	if !h.Enabled || !h.Supported {
		return
	}
	h.Pending = append(h.Pending, components.HapticEvent{Delay: delay, Strength: strength})
}

// CancelHaptics drops every scheduled rumble. Called on pause and teardown.
func CancelHaptics(e *ecs.ECS) {
	h := components.Haptics.Get(session(e))
	h.Pending = h.Pending[:0]
}

func fireHaptic(strength components.HapticStrength) {
	opts := hapticPatterns[strength]
	hapticGamepadIDs = ebiten.AppendGamepadIDs(hapticGamepadIDs[:0])
	for _, id := range hapticGamepadIDs {
		ebiten.VibrateGamepad(id, &opts)
	}
}
