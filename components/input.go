package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/dashware/skyhopper/config"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // currently held down
	JustPressed  bool // pressed this frame
	JustReleased bool // released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions. Each frame the physical poll and the virtual snapshot are merged
// into Current by pure recomputation; nothing caches the merged view.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Virtual holds injected on-screen/touch input flags. Written by the UI
	// shell between frames, read by the merge during the input refresh.
	Virtual [cfg.ActionCount]bool
}

// Action derives the temporal state for an action by comparing frames.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      in.Current[id],
		JustPressed:  in.Current[id] && !in.Previous[id],
		JustReleased: !in.Current[id] && in.Previous[id],
	}
}

var Input = donburi.NewComponentType[InputData]()
