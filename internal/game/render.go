package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/chaosflap/internal/core"
)

// Visual characters for rendering.
const (
	pipeChar    = '█'
	ghostChar   = '░'
	quantumChar = '▒'
	groundChar  = '═'
	birdChar    = '▶'
	bodyChar    = '●'
	sparkChar   = '~'
	starChar    = '✦'
)

// Render draws the snapshot to the screen buffer. The renderer is a pure
// consumer: it reads the snapshot and the buffer, nothing else. World
// coordinates are scaled to the cell grid, so any terminal size works.
func (s Snapshot) Render(dst *core.Screen) {
	dst.Clear()

	sx := float64(dst.Width()) / WorldW
	sy := float64(dst.Height()) / WorldH
	groundRow := int(GroundY * sy)

	// Ground band
	for y := groundRow; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), groundChar, core.ColorGray)
	}

	for _, z := range s.Zones {
		drawZone(dst, z, sx, groundRow)
	}
	for _, p := range s.Pipes {
		drawPipe(dst, p, sx, sy, groundRow)
	}
	for _, l := range s.Lasers {
		drawLaser(dst, l, sy)
	}
	for _, v := range s.Vortexes {
		drawVortex(dst, v, sx, sy)
	}
	for _, pr := range s.Projectiles {
		dst.SetColor(int(pr.X*sx), int(pr.Y*sy), starChar, core.ColorBrightYellow)
	}

	if s.Hole.Active {
		drawBlackHole(dst, s.Hole)
	} else {
		drawBird(dst, s.Bird, sx, sy)
	}

	drawHUD(dst, s)
}

func drawPipe(dst *core.Screen, p Pipe, sx, sy float64, groundRow int) {
	x0 := int(p.X * sx)
	w := core.Max(1, int(p.Width*sx))
	topRow := int(p.TopHeight * sy)
	bottomRow := int(p.BottomY * sy)

	ch := pipeChar
	color := core.ColorGreen
	switch {
	case p.Quantum && !p.Revealed:
		ch = quantumChar
		color = core.ColorCyan
	case p.Quantum && p.Ghost: // Revealed ghost: drawn, but permanently passable
		ch = ghostChar
		color = core.ColorGray
	case p.Charge != nil:
		color = core.ColorYellow
	}

	for dx := 0; dx < w; dx++ {
		dst.DrawVLine(x0+dx, 0, topRow, ch, color)
		dst.DrawVLine(x0+dx, bottomRow, groundRow-bottomRow, ch, color)
	}

	// Electrified gap arcs across while the charge is on
	if p.Charge != nil && p.Charge.Active() {
		for y := topRow; y < bottomRow; y++ {
			dst.DrawHLine(x0, y, w, sparkChar, core.ColorBrightYellow)
		}
	}
}

func drawLaser(dst *core.Screen, l Laser, sy float64) {
	row := int(l.Y * sy)
	switch l.Phase {
	case LaserWarning:
		// Telegraph blinks faster as firing approaches
		if int(l.Progress()*20)%2 == 0 {
			dst.DrawHLine(0, row, dst.Width(), '·', core.ColorRed)
		}
	case LaserActive:
		h := core.Max(1, int(LaserHeight*sy))
		for dy := 0; dy < h; dy++ {
			dst.DrawHLine(0, row-h/2+dy, dst.Width(), '━', core.ColorBrightRed)
		}
	case LaserFading:
		dst.DrawHLine(0, row, dst.Width(), '─', core.ColorRed)
	}
}

func drawZone(dst *core.Screen, z GravityZone, sx float64, groundRow int) {
	x0 := int(z.X * sx)
	w := core.Max(1, int(z.Width*sx))
	color := core.ColorBlue
	if z.Active {
		color = core.ColorBrightMagenta
	}
	for dx := 0; dx < w; dx += 2 {
		for y := 1; y < groundRow; y += 3 {
			dst.SetColor(x0+dx, y, '↑', color)
		}
	}
}

func drawVortex(dst *core.Screen, v Vortex, sx, sy float64) {
	cx, cy := int(v.X*sx), int(v.Y*sy)
	dst.SetColor(cx, cy, '◉', core.ColorBrightMagenta)

	// Spiral arms rotate with the vortex
	r := VortexRadius * 0.6
	for i := 0; i < 4; i++ {
		a := v.Rotation + float64(i)*math.Pi/2
		dst.SetColor(cx+int(math.Cos(a)*r*sx), cy+int(math.Sin(a)*r*sy), '∙', core.ColorMagenta)
	}
}

func drawBird(dst *core.Screen, b Bird, sx, sy float64) {
	x0 := int(b.X * sx)
	y0 := int(b.Y * sy)
	w := core.Max(1, int(BirdW*sx))
	h := core.Max(1, int(BirdH*sy))

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if dx == w-1 && dy == 0 {
				dst.SetColor(x0+dx, y0+dy, birdChar, core.ColorBrightYellow)
			} else {
				dst.SetColor(x0+dx, y0+dy, bodyChar, core.ColorYellow)
			}
		}
	}
}

func drawBlackHole(dst *core.Screen, h BlackHole) {
	cx := dst.Width() / 2
	cy := dst.Height() / 2

	switch h.Phase {
	case HolePulling:
		// Collapsing rings close in as progress grows
		maxR := float64(core.Min(dst.Width()/2, dst.Height()/2))
		r := maxR * (1 - h.Progress())
		for a := 0.0; a < 2*math.Pi; a += 0.2 {
			dst.SetColor(cx+int(math.Cos(a)*r*2), cy+int(math.Sin(a)*r), '∘', core.ColorBrightMagenta)
		}
		dst.SetColor(cx, cy, '●', core.ColorWhite)
	case HoleStretching:
		// The singularity stretches into a line and lets go
		span := int(h.Progress() * float64(dst.Width()/2))
		dst.DrawHLine(cx-span, cy, span*2, '─', core.ColorBrightMagenta)
		dst.SetColor(cx, cy, '●', core.ColorWhite)
	}
}

func drawHUD(dst *core.Screen, s Snapshot) {
	hud := fmt.Sprintf(" Score: %d  Best: %d ", s.Score, s.Best)
	if s.ChaosEnabled {
		hud += " [CHAOS] "
	}
	if s.Curve != CurveParabolic {
		hud += fmt.Sprintf(" curve:%s ", s.Curve)
	}
	dst.DrawTextColor(2, 0, hud, core.ColorWhite)

	switch {
	case s.Status == StatusReady:
		drawMessage(dst, "CHAOSFLAP", "Press SPACE to start")
	case s.Status == StatusOver:
		drawMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  SPACE to restart", s.Score))
	case s.Hole.WaitingToResume:
		drawMessage(dst, "NEW RECORD", "Press SPACE to resume")
	}
}

// drawMessage draws a boxed two-line message in the center of the screen.
func drawMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
