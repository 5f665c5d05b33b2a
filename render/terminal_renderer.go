// Package render draws simulation frames onto a tcell screen as a top-down chart.
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tidewake/camera"
	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/engine"
	"github.com/lixenwraith/tidewake/parameter"
	"github.com/lixenwraith/tidewake/status"
	"github.com/lixenwraith/tidewake/wave"
)

const (
	statusRows = 1
	hintRows   = 1

	// Cell height over width for typical terminal fonts
	cellAspect = 2.0

	// World units across the viewport while piloting
	chaseSpan = 80.0

	joystickCols = 9
	joystickRows = 5
)

const (
	hintAutonomous = "click the vessel to take the helm · q quits"
	hintPlayer     = "arrows/WASD steer · Esc returns to cruise · q quits"
)

// TerminalRenderer handles all terminal rendering
// The ocean area fills the screen above the status bar; one hint row sits at the top
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int

	showHints bool
	reg       *status.Registry
}

// NewTerminalRenderer creates a renderer sized to the screen
// reg may be nil; the status bar then omits FPS
func NewTerminalRenderer(screen tcell.Screen, reg *status.Registry) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, width: w, height: h, showHints: true, reg: reg}
}

// Resize updates the cached screen size
func (r *TerminalRenderer) Resize(w, h int) {
	r.width, r.height = w, h
}

// ToggleHints shows or hides the instruction row
func (r *TerminalRenderer) ToggleHints() {
	r.showHints = !r.showHints
}

// oceanRect returns the ocean area origin row and size
func (r *TerminalRenderer) oceanRect() (top, w, h int) {
	top = 0
	if r.showHints {
		top = hintRows
	}
	h = r.height - top - statusRows
	if h < 0 {
		h = 0
	}
	return top, r.width, h
}

// Viewport returns the projector for the ocean area in ocean-local cell coordinates
// Cruising shows the whole ocean; piloting follows the vessel at a closer span
func (r *TerminalRenderer) Viewport(f engine.Frame) camera.TopDown {
	_, w, h := r.oceanRect()
	td := camera.TopDown{Width: float64(w), Height: float64(h), CellAspect: cellAspect}
	if f.Mode == core.ModePlayer {
		td.Center = mgl64.Vec2{f.Vessel.Position.X(), f.Vessel.Position.Z()}
		td.Span = chaseSpan
		return td
	}
	// Fit the ocean in both directions
	span := float64(parameter.OceanSize)
	if w > 0 && h > 0 {
		tall := span / cellAspect * float64(w) / float64(h)
		span = math.Max(span, tall)
	}
	td.Span = span
	return td
}

// ScreenToViewport converts a screen cell to ocean-local coordinates at the cell center
// ok is false outside the ocean area
func (r *TerminalRenderer) ScreenToViewport(x, y int) (vx, vy float64, ok bool) {
	top, w, h := r.oceanRect()
	if x < 0 || x >= w || y < top || y >= top+h {
		return 0, 0, false
	}
	return float64(x) + 0.5, float64(y-top) + 0.5, true
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame(f engine.Frame) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	td := r.Viewport(f)
	r.drawOcean(f.Wave, td, defaultStyle)
	r.drawFragments(f, td, defaultStyle)
	r.drawVessel(f, td, defaultStyle)
	if f.Joystick.Active {
		r.drawJoystick(f.Joystick, defaultStyle)
	}
	if r.showHints {
		r.drawHints(f.Mode, defaultStyle)
	}
	r.drawStatusBar(f, defaultStyle)

	r.screen.Show()
}

func (r *TerminalRenderer) drawOcean(g *wave.Grid, td camera.TopDown, defaultStyle tcell.Style) {
	top, w, h := r.oceanRect()
	if g == nil {
		return
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			p := td.World(float64(col)+0.5, float64(row)+0.5)
			idx, ok := g.Nearest(p.X(), p.Y())
			if !ok {
				r.screen.SetContent(col, top+row, ' ', nil, defaultStyle)
				continue
			}
			bg := g.Colors[idx]
			n := wave.Normalize(g.Heights[idx])
			fg := bg.Lerp(core.RGBWhite, 0.25+0.5*n)
			style := defaultStyle.Background(Color(bg)).Foreground(Color(fg))
			r.screen.SetContent(col, top+row, SwellGlyph(n), nil, style)
		}
	}
}

func (r *TerminalRenderer) drawFragments(f engine.Frame, td camera.TopDown, defaultStyle tcell.Style) {
	for _, frag := range f.Fragments {
		if x, y, ok := r.cellOf(td, frag.Position); ok {
			r.screen.SetContent(x, y, '◆', nil, r.over(x, y, defaultStyle).Foreground(RgbFragment))
		}
	}
}

func (r *TerminalRenderer) drawVessel(f engine.Frame, td camera.TopDown, defaultStyle tcell.Style) {
	x, y, ok := r.cellOf(td, f.Vessel.Position)
	if !ok {
		return
	}
	color := RgbVessel
	if f.Mode == core.ModePlayer {
		color = RgbVesselPlayer
	}
	style := r.over(x, y, defaultStyle).Foreground(color).Bold(true)
	r.screen.SetContent(x, y, HeadingGlyph(f.Vessel.Yaw), nil, style)
}

// drawJoystick draws the virtual stick in the bottom-right corner of the ocean area
func (r *TerminalRenderer) drawJoystick(js engine.JoystickView, defaultStyle tcell.Style) {
	top, w, h := r.oceanRect()
	if w < joystickCols || h < joystickRows {
		return
	}
	x0 := w - joystickCols
	y0 := top + h - joystickRows
	ring := defaultStyle.Foreground(RgbJoystickRing)
	for dy := 0; dy < joystickRows; dy++ {
		for dx := 0; dx < joystickCols; dx++ {
			edge := dy == 0 || dy == joystickRows-1 || dx == 0 || dx == joystickCols-1
			ch := ' '
			if edge {
				ch = '·'
			}
			r.screen.SetContent(x0+dx, y0+dy, ch, nil, ring)
		}
	}
	n := js.Displacement
	if js.MaxRadius > 0 {
		n = n.Mul(1 / js.MaxRadius)
	}
	cx := x0 + joystickCols/2 + int(math.Round(n.X()*float64(joystickCols/2-1)))
	cy := y0 + joystickRows/2 + int(math.Round(n.Y()*float64(joystickRows/2-1)))
	r.screen.SetContent(cx, cy, '●', nil, defaultStyle.Foreground(RgbJoystickKnob))
}

func (r *TerminalRenderer) drawHints(mode core.Mode, defaultStyle tcell.Style) {
	text := hintAutonomous
	if mode == core.ModePlayer {
		text = hintPlayer
	}
	style := defaultStyle.Foreground(RgbHint)
	r.fillRow(0, style)
	r.drawText(1, 0, text, style)
}

func (r *TerminalRenderer) drawStatusBar(f engine.Frame, defaultStyle tcell.Style) {
	if r.height < 1 {
		return
	}
	y := r.height - 1
	base := defaultStyle.Background(RgbStatusBarBg).Foreground(RgbStatusBar)
	r.fillRow(y, base)

	label, labelColor := " CRUISE ", RgbModeAutonomous
	if f.Mode == core.ModePlayer {
		label, labelColor = " HELM ", RgbModePlayer
	}
	x := r.drawText(0, y, label, base.Background(labelColor).Foreground(tcell.ColorBlack).Bold(true))

	var text string
	if f.Mode == core.ModePlayer {
		total := f.Collected + f.Remaining
		text = fmt.Sprintf(" fragments %d/%d  speed %.2f", f.Collected, total, f.VesselSpeed)
	} else {
		text = fmt.Sprintf(" t %.1fs", f.Elapsed)
	}
	if !f.HitTestReady {
		text += "  [no hull]"
	}
	x = r.drawText(x, y, text, base)

	if r.reg != nil {
		fps := fmt.Sprintf("%3.0f fps ", r.reg.Floats.Get(status.KeyFPS).Get())
		if start := r.width - len(fps); start > x {
			r.drawText(start, y, fps, base)
		}
	}
}

// cellOf projects a world point to a screen cell inside the ocean area
func (r *TerminalRenderer) cellOf(td camera.TopDown, p mgl64.Vec3) (x, y int, ok bool) {
	top, w, h := r.oceanRect()
	fx, fy, ok := td.Project(p)
	if !ok {
		return 0, 0, false
	}
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0, 0, false
	}
	return x, y + top, true
}

// over keeps the background already drawn at (x, y)
func (r *TerminalRenderer) over(x, y int, defaultStyle tcell.Style) tcell.Style {
	_, _, style, _ := r.screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return defaultStyle.Background(bg)
}

func (r *TerminalRenderer) fillRow(y int, style tcell.Style) {
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawText writes s from column x, clipped to the screen; returns the next column
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
