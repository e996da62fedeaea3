package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// TerminalRenderer draws engine frames on a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	buf    *RenderBuffer
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		buf:    NewRenderBuffer(w, h),
	}
}

// Buffer exposes the composited cells of the latest frame
func (r *TerminalRenderer) Buffer() *RenderBuffer {
	return r.buf
}

// RenderFrame composites trails, bodies, hover label and HUD, then flushes
// Later layers overwrite earlier ones
func (r *TerminalRenderer) RenderFrame(f engine.Frame) {
	if w, h := r.buf.Size(); w != f.Width || h != f.Height {
		r.buf.Resize(f.Width, f.Height)
	} else {
		r.buf.Clear()
	}

	for _, p := range f.Planets {
		r.drawTrail(p)
	}
	r.drawBody(f.Sun, parameter.GlyphSun)
	for _, p := range f.Planets {
		r.drawBody(p, parameter.GlyphPlanet)
	}
	if f.Hovered {
		r.drawLabel(f.Hover.Label(), f.Hover.Anchor)
	}
	r.drawHUD(f.HUD, f.Width)

	r.buf.Flush(r.screen)
}

func (r *TerminalRenderer) drawTrail(p engine.BodyView) {
	for _, pt := range p.Trail {
		x, y := vmath.V2Round(pt.Screen)
		r.buf.SetFgAlpha(x, y, parameter.GlyphTrail, p.Color, pt.Opacity)
	}
}

// drawBody fills an aspect-corrected disc for bodies wider than one cell
func (r *TerminalRenderer) drawBody(b engine.BodyView, glyph rune) {
	cx, cy := vmath.V2Round(b.Screen)
	if b.Radius >= 1 {
		rx := b.Radius
		ry := math.Max(b.Radius*parameter.CellAspect, 0.5)
		for dy := -int(ry); dy <= int(ry); dy++ {
			for dx := -int(rx); dx <= int(rx); dx++ {
				nx, ny := float64(dx)/rx, float64(dy)/ry
				if nx*nx+ny*ny <= 1 {
					r.buf.SetFgOnly(cx+dx, cy+dy, parameter.GlyphPlanetFill, b.Color)
				}
			}
		}
	}
	r.buf.SetFgOnly(cx, cy, glyph, b.Color)
}

// drawLabel centers text above the anchor on a dark background, kept inside the viewport
func (r *TerminalRenderer) drawLabel(text string, anchor vmath.Vec2) {
	w, h := r.buf.Size()
	padded := " " + text + " "
	n := len([]rune(padded))

	ax, ay := vmath.V2Round(anchor)
	x := min(max(ax-n/2, 0), max(w-n, 0))
	y := ay - parameter.LabelOffsetY
	if y < parameter.HUDRows {
		y = ay + parameter.LabelOffsetY
	}
	y = min(max(y, 0), h-1)

	r.buf.Text(x, y, padded, RgbLabelText, core.RGBLabel)
}

func (r *TerminalRenderer) drawHUD(hud engine.HUD, width int) {
	top := fmt.Sprintf(" Zoom: %.2fx  Time Step: %.2f h  Speed: %.1f h/s  %s  JD %.2f",
		hud.Zoom, hud.StepHours, hud.Speed/parameter.SecondsPerHour,
		hud.SimTime.UTC().Format("2006-01-02 15:04"), hud.JulianDay)
	r.hudLine(0, top, RgbHUDText, width)

	bottom := fmt.Sprintf(" %s  drift %+.2e  planets %d", hud.Integrator, hud.EnergyDrift, hud.Active)
	if hud.Following != "" {
		bottom += "  following " + hud.Following
	}
	if !hud.ShowTrails {
		bottom += "  trails off"
	}
	if hud.Muted {
		bottom += "  muted"
	}
	color := RgbHUDText
	if hud.Paused {
		bottom += "  [PAUSED]"
		color = RgbHUDAccent
	}
	r.hudLine(1, bottom, color, width)
}

func (r *TerminalRenderer) hudLine(y int, text string, fg core.RGB, width int) {
	n := r.buf.Text(0, y, text, fg, RgbBackground)
	for x := n; x < width; x++ {
		r.buf.SetWithBg(x, y, ' ', fg, RgbBackground)
	}
}
