package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/paper-arena/component"
)

// Arena palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFloorDot   = tcell.NewRGBColor(45, 47, 64)    // Faint floor grid
	RgbBorder     = tcell.NewRGBColor(90, 90, 110)   // Arena edge
	RgbPlayer     = tcell.NewRGBColor(0, 255, 255)   // Cyan
	RgbEnemy      = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbPickup     = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbProjectile = tcell.NewRGBColor(255, 255, 255) // White paper ball
	RgbParticle   = tcell.NewRGBColor(255, 165, 0)   // Orange burst

	RgbWallLow  = tcell.NewRGBColor(60, 100, 200)  // Dark Blue
	RgbWallHigh = tcell.NewRGBColor(140, 190, 255) // Bright Blue

	RgbStatusText    = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbStatusBar     = tcell.NewRGBColor(255, 255, 255) // White
	RgbScoreBg       = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbAmmoBg        = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbAmmoEmptyBg   = tcell.NewRGBColor(200, 50, 50)   // Red when out of ammo
	RgbPausedBg      = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbOverlayBg     = tcell.NewRGBColor(128, 0, 128)   // Dark purple
	RgbOverlayBorder = tcell.NewRGBColor(255, 192, 203) // Pink
	RgbDebugText     = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// KindColor returns the foreground for an entity kind
func KindColor(k component.Kind) tcell.Color {
	switch k {
	case component.KindPlayer:
		return RgbPlayer
	case component.KindEnemy:
		return RgbEnemy
	case component.KindPickup:
		return RgbPickup
	case component.KindProjectile:
		return RgbProjectile
	case component.KindParticle:
		return RgbParticle
	case component.KindWall:
		return RgbWallLow
	default:
		return RgbStatusBar
	}
}

// WallColor blends from low to high blue by t in [0, 1]
func WallColor(t float64) tcell.Color {
	t = min(max(t, 0), 1)
	r1, g1, b1 := RgbWallLow.RGB()
	r2, g2, b2 := RgbWallHigh.RGB()
	lerp := func(a, b int32) int32 {
		return a + int32(float64(b-a)*t)
	}
	return tcell.NewRGBColor(lerp(r1, r2), lerp(g1, g2), lerp(b1, b2))
}
