package core

// Action is a semantic input, decoupled from the key or button that produced it.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, h, a
	ActionRight             // Right arrow, l, d
	ActionToggle            // Space or the play button - start, pause, resume
	ActionSpeed1            // 1 - first speed preset
	ActionSpeed2            // 2
	ActionSpeed3            // 3
	ActionSpeed4            // 4
	ActionQuit              // q, Ctrl+C
	ActionScreenshot        // Ctrl+S
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionToggle:
		return "Toggle"
	case ActionSpeed1:
		return "Speed1"
	case ActionSpeed2:
		return "Speed2"
	case ActionSpeed3:
		return "Speed3"
	case ActionSpeed4:
		return "Speed4"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// SpeedIndex returns the zero-based preset index for a speed action.
// ok is false for every other action.
func (a Action) SpeedIndex() (index int, ok bool) {
	if a < ActionSpeed1 || a > ActionSpeed4 {
		return 0, false
	}
	return int(a - ActionSpeed1), true
}

// SpeedAction returns the action that selects the preset at index.
func SpeedAction(index int) Action {
	if index < 0 || index > int(ActionSpeed4-ActionSpeed1) {
		return ActionNone
	}
	return ActionSpeed1 + Action(index)
}
