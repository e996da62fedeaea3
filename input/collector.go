package input

import (
	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/vmath"
)

// Collector accumulates terminal events into a Snapshot between frames
// Not safe for concurrent use; the frame loop owns it
type Collector struct {
	snap    Snapshot
	panStep float64

	dragging bool
	lastDrag vmath.Vec2
}

// NewCollector creates a collector for a viewport, panStep is cells per arrow press
func NewCollector(panStep float64, width, height int) *Collector {
	c := &Collector{panStep: panStep}
	c.snap.Width, c.snap.Height = width, height
	c.snap.Follow = FollowNone
	return c
}

// Handle dispatches a tcell event
func (c *Collector) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		c.Key(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		c.Mouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		w, h := ev.Size()
		c.Resize(w, h)
	}
}

// Key records a key press
func (c *Collector) Key(key tcell.Key, r rune) {
	if key == tcell.KeyRune && r >= '0' && r <= '9' {
		c.snap.Follow = int(r - '0')
		return
	}

	switch Lookup(key, r) {
	case ActionQuit:
		c.snap.Quit = true
	case ActionPause:
		c.snap.TogglePause = !c.snap.TogglePause
	case ActionReset:
		c.snap.Reset = true
	case ActionZoomIn:
		c.snap.ZoomSteps++
	case ActionZoomOut:
		c.snap.ZoomSteps--
	case ActionZoomToggle:
		c.snap.ToggleZoom = !c.snap.ToggleZoom
	case ActionFaster:
		c.snap.SpeedSteps++
	case ActionSlower:
		c.snap.SpeedSteps--
	case ActionTrails:
		c.snap.ToggleTrails = !c.snap.ToggleTrails
	case ActionMute:
		c.snap.ToggleMute = !c.snap.ToggleMute
	// Arrow left moves the view left, so the scene shifts right
	case ActionPanLeft:
		c.pan(c.panStep, 0)
	case ActionPanRight:
		c.pan(-c.panStep, 0)
	case ActionPanUp:
		c.pan(0, c.panStep)
	case ActionPanDown:
		c.pan(0, -c.panStep)
	}
}

func (c *Collector) pan(dx, dy float64) {
	c.snap.PanDelta = r2.Add(c.snap.PanDelta, vmath.V2(dx, dy))
}

// Mouse records cursor position, wheel notches and left-button drag
func (c *Collector) Mouse(x, y int, buttons tcell.ButtonMask) {
	pos := vmath.V2(float64(x), float64(y))
	c.snap.Cursor = pos
	c.snap.CursorValid = true

	if buttons&tcell.WheelUp != 0 {
		c.snap.WheelSteps++
	}
	if buttons&tcell.WheelDown != 0 {
		c.snap.WheelSteps--
	}

	if buttons&tcell.Button1 != 0 {
		if c.dragging {
			// Scene follows the pointer
			c.snap.DragDelta = r2.Add(c.snap.DragDelta, r2.Sub(pos, c.lastDrag))
		}
		c.dragging = true
		c.lastDrag = pos
		return
	}
	c.dragging = false
}

// Resize records new viewport dimensions
func (c *Collector) Resize(width, height int) {
	c.snap.Width, c.snap.Height = width, height
	c.snap.Resized = true
}

// Drain returns the accumulated snapshot and clears per-frame deltas
// Cursor and viewport size persist across frames
func (c *Collector) Drain() Snapshot {
	out := c.snap
	c.snap = Snapshot{
		Cursor:      out.Cursor,
		CursorValid: out.CursorValid,
		Width:       out.Width,
		Height:      out.Height,
		Follow:      FollowNone,
	}
	return out
}
