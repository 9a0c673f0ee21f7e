package render

import (
	"sync/atomic"
)

// Overlay is the game-over summary
type Overlay struct {
	Final int
	Best  int
}

// HUD holds what the session pushes for display
// Writes come from the frame loop; the renderer reads them when drawing
type HUD struct {
	score   atomic.Int64
	ammo    atomic.Int64
	overlay atomic.Pointer[Overlay]
}

// NewHUD creates an empty HUD
func NewHUD() *HUD {
	return &HUD{}
}

// UpdateScore implements engine.Display
func (h *HUD) UpdateScore(score int) {
	h.score.Store(int64(score))
}

// UpdateAmmo implements engine.Display
func (h *HUD) UpdateAmmo(ammo int) {
	h.ammo.Store(int64(ammo))
}

// ShowGameOverOverlay implements engine.Display
func (h *HUD) ShowGameOverOverlay(finalScore, bestScore int) {
	h.overlay.Store(&Overlay{Final: finalScore, Best: bestScore})
}

// HideOverlay clears the game-over overlay, on restart
func (h *HUD) HideOverlay() {
	h.overlay.Store(nil)
}

func (h *HUD) Score() int { return int(h.score.Load()) }

func (h *HUD) Ammo() int { return int(h.ammo.Load()) }

// Overlay returns the shown overlay, nil when hidden
func (h *HUD) Overlay() *Overlay {
	return h.overlay.Load()
}
