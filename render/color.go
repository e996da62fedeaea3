package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/core"
)

// Palette
var (
	RgbBackground = core.RGB{R: 5, G: 5, B: 15}
	RgbHUDText    = core.RGB{R: 200, G: 200, B: 210}
	RgbHUDAccent  = core.RGB{R: 255, G: 200, B: 80}
	RgbLabelText  = core.RGBWhite
)

// ToTcell converts an RGB to a truecolor tcell color
func ToTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// FromTcell converts a tcell color back to RGB, used by tests and screen readback
func FromTcell(c tcell.Color) core.RGB {
	r, g, b := c.RGB()
	return core.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}
