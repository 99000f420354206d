package components

import "github.com/yohamta/donburi"

// HapticStrength names a rumble preset.
type HapticStrength int

const (
	HapticLight HapticStrength = iota
	HapticMedium
	HapticHeavy
)

// HapticEvent is a scheduled rumble. Delay counts down each tick; the event
// fires when it reaches zero. Pending events are dropped on pause/destroy so a
// torn-down engine cannot buzz a dead session.
type HapticEvent struct {
	Delay    float64 // seconds until firing
	Strength HapticStrength
}

type HapticsData struct {
	Enabled   bool // from settings
	Supported bool // from the platform descriptor
	Pending   []HapticEvent
}

var Haptics = donburi.NewComponentType[HapticsData]()
