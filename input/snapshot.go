package input

import "github.com/lixenwraith/orrery/vmath"

// FollowNone means no follow change was requested this frame
const FollowNone = -1

// Snapshot is the input accumulated between two frames, consumed synchronously by the frame loop
type Snapshot struct {
	// PanDelta from arrow keys, DragDelta from left-button drag; screen cells
	PanDelta  vmath.Vec2
	DragDelta vmath.Vec2

	// ZoomSteps from keys, anchored at screen center; positive zooms in
	ZoomSteps int
	// WheelSteps from the mouse wheel, anchored at the cursor
	WheelSteps int

	Cursor      vmath.Vec2
	CursorValid bool

	Width, Height int
	Resized       bool

	// SpeedSteps doubles (positive) or halves (negative) simulation speed per step
	SpeedSteps int

	// Follow is 0 for the Sun, n for planet n, FollowNone otherwise
	Follow int

	TogglePause  bool
	ToggleZoom   bool
	ToggleTrails bool
	ToggleMute   bool
	Reset        bool
	Quit         bool
}
