package render

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/paper-arena/component"
	"github.com/lixenwraith/paper-arena/engine"
	"github.com/lixenwraith/paper-arena/physics"
	"github.com/lixenwraith/paper-arena/scene"
	"github.com/lixenwraith/paper-arena/vmath"
)

var _ engine.Display = (*HUD)(nil)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = rowText(s, y)
	}
	return strings.Join(rows, "\n")
}

// TestViewportOrientation keeps +Z up and +X to the left of the center
func TestViewportOrientation(t *testing.T) {
	vp := Viewport{X: 0, Y: 0, Width: 21, Height: 11, UnitsPerCol: 1}

	col, row, ok := vp.Project(mgl64.Vec3{})
	if !ok || col != 10 || row != 5 {
		t.Fatalf("origin -> (%d,%d,%v), want (10,5,true)", col, row, ok)
	}
	if col, _, _ := vp.Project(mgl64.Vec3{3, 0, 0}); col != 7 {
		t.Errorf("+X col = %d, want 7", col)
	}
	if _, row, _ := vp.Project(mgl64.Vec3{0, 0, 4}); row != 3 {
		t.Errorf("+Z row = %d, want 3 (rows cover two units)", row)
	}
	if _, _, ok := vp.Project(mgl64.Vec3{100, 0, 0}); ok {
		t.Error("far point reported inside")
	}
}

func TestFitViewportCoversArena(t *testing.T) {
	vp := FitViewport(0, 1, 80, 23, 250, mgl64.Vec3{})
	for _, p := range []mgl64.Vec3{{250, 0, 250}, {-250, 0, -250}, {250, 0, -250}, {-250, 0, 250}} {
		if _, _, ok := vp.Project(p); !ok {
			t.Errorf("corner %v outside viewport", p)
		}
	}
}

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		yaw  float64
		want rune
	}{
		{0, '↑'},
		{math.Pi / 2, '←'},
		{-math.Pi / 2, '→'},
		{math.Pi, '↓'},
		{-math.Pi, '↓'},
		{math.Pi / 4, '↖'},
	}
	for _, tt := range tests {
		if got := HeadingGlyph(tt.yaw); got != tt.want {
			t.Errorf("HeadingGlyph(%v) = %q, want %q", tt.yaw, got, tt.want)
		}
	}
	// Left turn from identity draws toward the left
	if got := HeadingGlyph(vmath.Yaw(vmath.YawQuat(math.Pi / 2))); got != '←' {
		t.Errorf("left turn glyph = %q", got)
	}
}

func TestWallGlyphRange(t *testing.T) {
	if WallGlyph(-1) != '▁' || WallGlyph(0) != '▁' {
		t.Error("low wall glyph")
	}
	if WallGlyph(1) != '█' || WallGlyph(2) != '█' {
		t.Error("high wall glyph")
	}
}

func TestHUDStoresValues(t *testing.T) {
	h := NewHUD()
	h.UpdateScore(42)
	h.UpdateAmmo(7)
	if h.Score() != 42 || h.Ammo() != 7 {
		t.Errorf("hud = %d/%d", h.Score(), h.Ammo())
	}
	if h.Overlay() != nil {
		t.Fatal("overlay before game over")
	}
	h.ShowGameOverOverlay(12, 40)
	if o := h.Overlay(); o == nil || o.Final != 12 || o.Best != 40 {
		t.Errorf("overlay = %+v", o)
	}
	h.HideOverlay()
	if h.Overlay() != nil {
		t.Error("overlay still shown")
	}
}

// TestRenderFramePlayerAndHUD draws the player arrow at the arena center and the badges on top
func TestRenderFramePlayerAndHUD(t *testing.T) {
	screen := newScreen(t)
	g := scene.NewGraph()
	g.Add("player", scene.Body{Kind: component.KindPlayer, Collider: physics.Ball(1, mgl64.Vec3{})})
	g.SetTransform("player", mgl64.Vec3{}, vmath.Identity())
	g.Add("enemy-0", scene.Body{Kind: component.KindEnemy, Collider: physics.Ball(1, mgl64.Vec3{})})
	g.SetTransform("enemy-0", mgl64.Vec3{0, 0, 100}, vmath.Identity())

	hud := NewHUD()
	hud.UpdateScore(12)
	hud.UpdateAmmo(3)

	r := NewTerminalRenderer(screen, g, hud, 250, 10, 30)
	r.RenderFrame(Frame{Paused: true, Debug: "fps=60.0"})

	vp := r.Viewport()
	col, row, _ := vp.Project(mgl64.Vec3{})
	if ch, _, _, _ := screen.GetContent(col, row); ch != '↑' {
		t.Errorf("player glyph = %q, want ↑", ch)
	}
	col, row, _ = vp.Project(mgl64.Vec3{0, 0, 100})
	if ch, _, _, _ := screen.GetContent(col, row); ch != 'E' {
		t.Errorf("enemy glyph = %q, want E", ch)
	}

	top := rowText(screen, 0)
	for _, want := range []string{"SCORE 12", "AMMO 3", "PAUSED"} {
		if !strings.Contains(top, want) {
			t.Errorf("HUD row %q missing %q", top, want)
		}
	}
	if !strings.Contains(rowText(screen, 24), "fps=60.0") {
		t.Error("debug line missing")
	}
}

func TestRenderFrameOverlay(t *testing.T) {
	screen := newScreen(t)
	hud := NewHUD()
	r := NewTerminalRenderer(screen, scene.NewGraph(), hud, 250, 10, 30)

	r.RenderFrame(Frame{})
	if strings.Contains(screenText(screen), "GAME OVER") {
		t.Fatal("overlay drawn before game over")
	}

	hud.ShowGameOverOverlay(15, 15)
	r.RenderFrame(Frame{})
	text := screenText(screen)
	for _, want := range []string{"GAME OVER", "score 15", "best  15", "new high score"} {
		if !strings.Contains(text, want) {
			t.Errorf("overlay missing %q", want)
		}
	}
}

// TestRenderFrameWallHeight picks taller glyphs for taller walls
func TestRenderFrameWallHeight(t *testing.T) {
	screen := newScreen(t)
	g := scene.NewGraph()
	g.Add("wall-0", scene.Body{Kind: component.KindWall, Collider: physics.Box(mgl64.Vec3{1, 50, 1}, mgl64.Vec3{})})
	g.SetTransform("wall-0", mgl64.Vec3{0, 30, 0}, vmath.Identity())

	r := NewTerminalRenderer(screen, g, NewHUD(), 250, 10, 30)
	r.RenderFrame(Frame{})

	col, row, _ := r.Viewport().Project(mgl64.Vec3{})
	if ch, _, _, _ := screen.GetContent(col, row); ch != '█' {
		t.Errorf("max-height wall glyph = %q, want █", ch)
	}
}
