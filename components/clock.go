package components

import "github.com/yohamta/donburi"

// ClockData carries the frame's delta time (singleton). DT is wall-clock
// seconds since the previous tick, capped at 1/60 to keep physics stable on
// slow frames.
type ClockData struct {
	DT float64
}

var Clock = donburi.NewComponentType[ClockData]()
