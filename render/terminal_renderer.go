package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/paper-arena/component"
	"github.com/lixenwraith/paper-arena/physics"
	"github.com/lixenwraith/paper-arena/scene"
	"github.com/lixenwraith/paper-arena/vmath"
)

const (
	hudRows    = 1
	statusRows = 1
	floorStep  = 50.0 // World units between floor grid dots
)

// Frame carries per-frame front-end state not held by the scene
type Frame struct {
	Paused bool
	Muted  bool
	Debug  string // Metric line, drawn when non-empty
}

// drawPriority orders kinds back to front
var drawPriority = map[component.Kind]int{
	component.KindFloor:      0,
	component.KindWall:       1,
	component.KindParticle:   2,
	component.KindPickup:     3,
	component.KindProjectile: 4,
	component.KindEnemy:      5,
	component.KindPlayer:     6,
}

// TerminalRenderer draws the scene top-down with the HUD above and the status line below
type TerminalRenderer struct {
	screen    tcell.Screen
	graph     *scene.Graph
	hud       *HUD
	arenaHalf float64
	wallMin   float64
	wallMax   float64

	// Follow centers the view on the camera target instead of the arena
	Follow bool
}

// NewTerminalRenderer creates a renderer; wall heights in [wallMin, wallMax] pick the wall glyph
func NewTerminalRenderer(screen tcell.Screen, graph *scene.Graph, hud *HUD, arenaHalf, wallMin, wallMax float64) *TerminalRenderer {
	return &TerminalRenderer{
		screen:    screen,
		graph:     graph,
		hud:       hud,
		arenaHalf: arenaHalf,
		wallMin:   wallMin,
		wallMax:   wallMax,
	}
}

// Viewport returns the arena rectangle for the current screen size
func (r *TerminalRenderer) Viewport() Viewport {
	w, h := r.screen.Size()
	center := mgl64.Vec3{}
	if r.Follow {
		center = r.graph.Camera().Target
		center[1] = 0
	}
	return FitViewport(0, hudRows, w, max(h-hudRows-statusRows, 1), r.arenaHalf, center)
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame(f Frame) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusBar)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	vp := r.Viewport()
	r.drawFloor(vp, defaultStyle)

	nodes := r.graph.Snapshot()
	for pass := 0; pass <= drawPriority[component.KindPlayer]; pass++ {
		for i := range nodes {
			if drawPriority[nodes[i].Body.Kind] == pass {
				r.drawNode(vp, &nodes[i], defaultStyle)
			}
		}
	}

	r.drawHUD(f, defaultStyle)
	r.drawStatus(f, defaultStyle)
	if o := r.hud.Overlay(); o != nil {
		r.drawOverlay(o, defaultStyle)
	}

	r.screen.Show()
}

// drawFloor dots a coarse grid and outlines the arena edge
func (r *TerminalRenderer) drawFloor(vp Viewport, style tcell.Style) {
	dot := style.Foreground(RgbFloorDot)
	for x := -r.arenaHalf; x <= r.arenaHalf; x += floorStep {
		for z := -r.arenaHalf; z <= r.arenaHalf; z += floorStep {
			if col, row, ok := vp.Project(mgl64.Vec3{x, 0, z}); ok {
				r.screen.SetContent(col, row, '·', nil, dot)
			}
		}
	}

	border := style.Foreground(RgbBorder)
	c0, r0, _ := vp.Project(mgl64.Vec3{r.arenaHalf, 0, r.arenaHalf})
	c1, r1, _ := vp.Project(mgl64.Vec3{-r.arenaHalf, 0, -r.arenaHalf})
	for col := c0; col <= c1; col++ {
		r.setClipped(vp, col, r0, '─', border)
		r.setClipped(vp, col, r1, '─', border)
	}
	for row := r0; row <= r1; row++ {
		r.setClipped(vp, c0, row, '│', border)
		r.setClipped(vp, c1, row, '│', border)
	}
}

func (r *TerminalRenderer) setClipped(vp Viewport, col, row int, ch rune, style tcell.Style) {
	if col >= vp.X && col < vp.X+vp.Width && row >= vp.Y && row < vp.Y+vp.Height {
		r.screen.SetContent(col, row, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawNode(vp Viewport, n *scene.Node, style tcell.Style) {
	switch n.Body.Kind {
	case component.KindWall:
		r.drawWall(vp, n, style)
		return
	case component.KindParticle:
		r.drawBurst(vp, n, style)
		return
	}

	col, row, ok := vp.Project(n.Position)
	if !ok {
		return
	}
	fg := style.Foreground(KindColor(n.Body.Kind))
	switch n.Body.Kind {
	case component.KindPlayer:
		r.screen.SetContent(col, row, HeadingGlyph(vmath.Yaw(n.Orientation)), nil, fg.Bold(true))
	case component.KindEnemy:
		r.screen.SetContent(col, row, 'E', nil, fg.Bold(true))
	case component.KindPickup:
		r.screen.SetContent(col, row, '◆', nil, fg)
	case component.KindProjectile:
		r.screen.SetContent(col, row, '•', nil, fg)
	}
}

// drawWall fills the segment footprint with a block sized by its current height
func (r *TerminalRenderer) drawWall(vp Viewport, n *scene.Node, style tcell.Style) {
	t := 0.0
	if span := r.wallMax - r.wallMin; span > 0 {
		t = (n.Position[1] - r.wallMin) / span
	}
	fg := style.Foreground(WallColor(t))
	glyph := WallGlyph(t)

	half := n.Body.Collider.HalfExtents
	if n.Body.Collider.Shape != physics.ShapeBox {
		half = mgl64.Vec3{}
	}
	col, row, _ := vp.Project(n.Position)
	spanC, spanR := vp.Span(half[0], half[2])
	for dc := -spanC; dc <= spanC; dc++ {
		for dr := -spanR; dr <= spanR; dr++ {
			r.setClipped(vp, col+dc, row+dr, glyph, fg)
		}
	}
}

// drawBurst rings an impact with a glyph that grows with its radius
func (r *TerminalRenderer) drawBurst(vp Viewport, n *scene.Node, style tcell.Style) {
	col, row, ok := vp.Project(n.Position)
	if !ok {
		return
	}
	fg := style.Foreground(RgbParticle)
	radius := n.Body.Collider.Radius
	switch {
	case radius < 4:
		r.screen.SetContent(col, row, '*', nil, fg)
	case radius < 7:
		r.screen.SetContent(col, row, '✶', nil, fg)
	default:
		r.screen.SetContent(col, row, '✺', nil, fg.Dim(true))
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	w, _ := r.screen.Size()
	for _, ch := range text {
		if x >= w {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// drawHUD writes score and ammo badges and the key hints
func (r *TerminalRenderer) drawHUD(f Frame, style tcell.Style) {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}

	x := r.drawText(0, 0, fmt.Sprintf(" SCORE %d ", r.hud.Score()), style.Background(RgbScoreBg).Foreground(RgbStatusText))
	x++
	ammoBg := RgbAmmoBg
	if r.hud.Ammo() == 0 {
		ammoBg = RgbAmmoEmptyBg
	}
	x = r.drawText(x, 0, fmt.Sprintf(" AMMO %d ", r.hud.Ammo()), style.Background(ammoBg).Foreground(RgbStatusText))
	x++
	if f.Paused {
		x = r.drawText(x, 0, " PAUSED ", style.Background(RgbPausedBg).Foreground(RgbStatusText))
		x++
	}
	if f.Muted {
		r.drawText(x, 0, "muted", style.Foreground(RgbDebugText))
	}

	hints := "wasd/arrows move  shift sprint  space fire  p pause  r restart  m mute  q quit"
	if start := w - len([]rune(hints)); start > x+8 {
		r.drawText(start, 0, hints, style.Foreground(RgbDebugText))
	}
}

func (r *TerminalRenderer) drawStatus(f Frame, style tcell.Style) {
	if f.Debug == "" {
		return
	}
	_, h := r.screen.Size()
	r.drawText(0, h-1, f.Debug, style.Foreground(RgbDebugText))
}

// drawOverlay boxes the final and best score in the middle of the screen
func (r *TerminalRenderer) drawOverlay(o *Overlay, style tcell.Style) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("score %d", o.Final),
		fmt.Sprintf("best  %d", o.Best),
		"",
		"r restart   q quit",
	}
	if o.Final >= o.Best && o.Final > 0 {
		lines[1] = "new high score"
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2

	w, h := r.screen.Size()
	x0 := max((w-boxW)/2, 0)
	y0 := max((h-boxH)/2, 0)

	bg := style.Background(RgbOverlayBg).Foreground(RgbStatusBar)
	border := bg.Foreground(RgbOverlayBorder)
	for y := 0; y < boxH; y++ {
		for x := 0; x < boxW; x++ {
			ch := ' '
			switch {
			case (y == 0 || y == boxH-1) && (x == 0 || x == boxW-1):
				ch = '+'
			case y == 0 || y == boxH-1:
				ch = '─'
			case x == 0 || x == boxW-1:
				ch = '│'
			}
			st := bg
			if ch != ' ' {
				st = border
			}
			r.screen.SetContent(x0+x, y0+y, ch, nil, st)
		}
	}
	for i, l := range lines {
		pad := (boxW - len([]rune(l))) / 2
		r.drawText(x0+pad, y0+1+i, l, bg.Bold(i == 0))
	}
}
